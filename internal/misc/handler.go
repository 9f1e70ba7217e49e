package misc

import (
	"context"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"

	"github.com/2beens/gymmanager/internal/telemetry/tracing"
	"github.com/2beens/gymmanager/pkg"
)

const healthCheckTimeout = 3 * time.Second

// Pinger is a dependency checked by /health.
type Pinger interface {
	Ping(ctx context.Context) error
}

type PingFunc func(ctx context.Context) error

func (f PingFunc) Ping(ctx context.Context) error {
	return f(ctx)
}

type HealthResponse struct {
	Status   string            `json:"status"`
	Checks   map[string]string `json:"checks"`
	Version  string            `json:"version,omitempty"`
	Uptime   string            `json:"uptime"`
	Database string            `json:"database"`
}

type Handler struct {
	versionInfo string
	dbDriver    string
	checks      map[string]Pinger
	startedAt   time.Time
}

// NewHandler takes the named dependencies checked by /health, "database" is expected.
func NewHandler(versionInfo, dbDriver string, checks map[string]Pinger) *Handler {
	return &Handler{
		versionInfo: versionInfo,
		dbDriver:    dbDriver,
		checks:      checks,
		startedAt:   time.Now(),
	}
}

func (handler *Handler) SetupRoutes(mainRouter *mux.Router) {
	mainRouter.HandleFunc("/", handler.handleRoot).Methods("GET", "OPTIONS").Name("root")
	mainRouter.HandleFunc("/version", handler.handleGetVersionInfo).Methods("GET", "OPTIONS").Name("version")
	mainRouter.HandleFunc("/health", handler.handleHealth).Methods("GET", "OPTIONS").Name("health")
}

func (handler *Handler) handleRoot(w http.ResponseWriter, _ *http.Request) {
	pkg.WriteJSONResponse(w, http.StatusOK, map[string]string{
		"message": "Gym manager API is running",
	})
}

func (handler *Handler) handleGetVersionInfo(w http.ResponseWriter, _ *http.Request) {
	pkg.WriteTextResponseOK(w, handler.versionInfo)
}

func (handler *Handler) handleHealth(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "miscHandler.health")
	defer span.End()

	ctx, cancel := context.WithTimeout(ctx, healthCheckTimeout)
	defer cancel()

	resp := HealthResponse{
		Status:   "ok",
		Checks:   make(map[string]string, len(handler.checks)),
		Version:  handler.versionInfo,
		Uptime:   time.Since(handler.startedAt).Truncate(time.Second).String(),
		Database: handler.dbDriver,
	}
	for name, dep := range handler.checks {
		if err := dep.Ping(ctx); err != nil {
			log.Errorf("health check [%s]: %s", name, err)
			resp.Checks[name] = "unavailable"
			resp.Status = "degraded"
			continue
		}
		resp.Checks[name] = "ok"
	}

	span.SetAttributes(attribute.String("health.status", resp.Status))
	if resp.Status != "ok" {
		span.SetStatus(codes.Error, "dependency unavailable")
		pkg.WriteJSONResponse(w, http.StatusServiceUnavailable, resp)
		return
	}
	pkg.WriteJSONResponse(w, http.StatusOK, resp)
}
