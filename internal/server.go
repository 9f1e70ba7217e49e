package internal

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"strconv"
	"time"

	"github.com/getsentry/sentry-go"
	"github.com/go-redis/redis/v8"
	"github.com/go-redis/redis_rate/v9"
	"github.com/gorilla/mux"
	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gorilla/mux/otelmux"

	"github.com/2beens/gymmanager/internal/api"
	"github.com/2beens/gymmanager/internal/cache"
	"github.com/2beens/gymmanager/internal/config"
	"github.com/2beens/gymmanager/internal/db"
	"github.com/2beens/gymmanager/internal/managers"
	gymmcp "github.com/2beens/gymmanager/internal/mcp"
	"github.com/2beens/gymmanager/internal/members"
	"github.com/2beens/gymmanager/internal/middleware"
	"github.com/2beens/gymmanager/internal/misc"
	"github.com/2beens/gymmanager/internal/nutritionists"
	"github.com/2beens/gymmanager/internal/telemetry/metrics"
	"github.com/2beens/gymmanager/internal/telemetry/tracing"
	"github.com/2beens/gymmanager/internal/trainers"
	"github.com/2beens/gymmanager/pkg"
)

const maxRequestBodyBytes = 1 << 20

type Server struct {
	httpServer        *http.Server
	metricsHttpServer *http.Server
	versionInfo       string

	config      *config.Config
	db          *db.DB
	redisClient *redis.Client
	reportCache cache.ReportCache

	// metrics
	metricsManager *metrics.Manager
	promRegistry   *prometheus.Registry
	otelShutdown   func()
}

type NewServerParams struct {
	Config                  *config.Config
	VersionInfo             string
	HoneycombTracingEnabled bool
	InitSchema              bool
}

func NewServer(
	ctx context.Context,
	params NewServerParams,
) (*Server, error) {
	cfg := params.Config
	dialect, err := db.ParseDialect(cfg.DBDriver)
	if err != nil {
		return nil, err
	}

	gymDB, err := db.Open(ctx, db.Params{
		Dialect:        dialect,
		Host:           cfg.DBHost,
		Port:           cfg.DBPort,
		User:           cfg.DBUser,
		Password:       cfg.DBPassword,
		Name:           cfg.DBName,
		MaxOpenConns:   cfg.DBMaxOpenConns,
		TracingEnabled: params.HoneycombTracingEnabled,
	})
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}

	if err := gymDB.Ping(ctx); err != nil {
		log.Warnf("failed to ping db: %s", err)
	}

	if params.InitSchema {
		if err := db.ApplySchema(ctx, gymDB); err != nil {
			return nil, fmt.Errorf("apply schema: %w", err)
		}
		log.Infof("%s schema initialized", dialect)
	}

	promRegistry := metrics.SetupPrometheus(params.VersionInfo, gymDB.Collector())
	metricsManager := metrics.NewManager("gym", "api", promRegistry)
	metricsManager.GaugeLifeSignal.Set(0)

	var rdb *redis.Client
	if cfg.RedisHost != "" {
		rdb = redis.NewClient(&redis.Options{
			Addr:     net.JoinHostPort(cfg.RedisHost, cfg.RedisPort),
			Password: cfg.RedisPassword,
			DB:       0, // use default DB
		})

		rdbStatus := rdb.Ping(ctx)
		if err := rdbStatus.Err(); err != nil {
			log.Errorf("--> failed to ping redis: %s", err)
		} else {
			log.Debugf("redis ping: %s", rdbStatus.Val())
		}
	}

	// use honeycomb distro to setup OpenTelemetry SDK
	otelShutdown, err := tracing.HoneycombSetup(params.HoneycombTracingEnabled, "gym-manager-api", rdb)
	if err != nil {
		return nil, err
	}

	reportCache, err := cache.New(cfg.ReportCache, rdb, 0)
	if err != nil {
		return nil, fmt.Errorf("report cache: %w", err)
	}

	return &Server{
		versionInfo:    params.VersionInfo,
		config:         cfg,
		db:             gymDB,
		redisClient:    rdb,
		reportCache:    reportCache,
		metricsManager: metricsManager,
		promRegistry:   promRegistry,
		otelShutdown:   otelShutdown,
	}, nil
}

func (s *Server) routerSetup() *mux.Router {
	r := mux.NewRouter()
	r.Use(otelmux.Middleware("gym-router"))

	errs := api.NewErrors(s.config.ExposeDBErrors)

	healthChecks := map[string]misc.Pinger{"database": s.db}
	if s.redisClient != nil {
		healthChecks["redis"] = misc.PingFunc(func(ctx context.Context) error {
			return s.redisClient.Ping(ctx).Err()
		})
	}
	misc.NewHandler(s.versionInfo, s.config.DBDriver, healthChecks).SetupRoutes(r)

	membersRepo := members.NewRepo(s.db)
	members.NewHandler(membersRepo, errs, s.metricsManager).SetupRoutes(r)
	trainers.NewHandler(trainers.NewRepo(s.db), errs, s.metricsManager).SetupRoutes(r)
	nutritionists.NewHandler(nutritionists.NewRepo(s.db), errs, s.metricsManager).SetupRoutes(r)

	reportService := managers.NewService(
		managers.NewRepo(s.db),
		s.reportCache,
		s.config.ReportCacheTTL.Duration,
		s.metricsManager,
	)
	managers.NewHandler(reportService, errs).SetupRoutes(r)

	if s.config.MCPEnabled {
		mcpServer := gymmcp.NewServer(gymmcp.NewDBSchemaRepo(s.db), membersRepo, reportService)
		mcpHandler := mcp.NewStreamableHTTPHandler(func(*http.Request) *mcp.Server {
			return mcpServer
		}, nil)
		r.Handle("/mcp", mcpHandler).Name("mcp")
	}

	// all the rest - unhandled paths, any depth
	r.NotFoundHandler = http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		pkg.WriteJSONError(w, http.StatusNotFound, "Not found")
	})

	r.Use(middleware.PanicRecovery(s.metricsManager))
	r.Use(middleware.LogRequest())
	r.Use(middleware.RequestMetrics(s.metricsManager))
	r.Use(middleware.Cors(s.config.AllowedOrigins))
	if s.redisClient != nil && s.config.WriteRateLimitPerMin > 0 {
		r.Use(middleware.RateLimit(
			redis_rate.NewLimiter(s.redisClient),
			s.metricsManager,
			"gym:write",
			s.config.WriteRateLimitPerMin,
		))
	}
	r.Use(middleware.LimitRequestBody(maxRequestBodyBytes))
	r.Use(middleware.DrainAndCloseRequest())

	return r
}

func (s *Server) Serve(host string, port int) {
	router := s.routerSetup()

	ipAndPort := net.JoinHostPort(host, strconv.Itoa(port))
	s.httpServer = &http.Server{
		Handler:      router,
		Addr:         ipAndPort,
		WriteTimeout: time.Minute,
		ReadTimeout:  time.Minute,
		ConnState:    s.connStateMetrics,
	}

	metricsRouter := mux.NewRouter()
	metricsRouter.Handle("/metrics", promhttp.InstrumentMetricHandler(
		s.promRegistry,
		promhttp.HandlerFor(s.promRegistry, promhttp.HandlerOpts{}),
	))
	metricsAddr := net.JoinHostPort(s.config.PrometheusMetricsHost, s.config.PrometheusMetricsPort)
	s.metricsHttpServer = &http.Server{
		Addr:    metricsAddr,
		Handler: metricsRouter,
	}

	go func() {
		log.Infof(" > server listening on: [%s]", ipAndPort)
		err := s.httpServer.ListenAndServe()
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("main service, listen and serve: %s", err)
		}
	}()

	go func() {
		log.Debugf(" > metrics listening on: [%s]", metricsAddr)
		err := s.metricsHttpServer.ListenAndServe()
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("metrics service, listen and serve: %s", err)
		}
	}()

	s.metricsManager.GaugeLifeSignal.Set(1)
}

func (s *Server) GracefulShutdown() {
	log.Debug("graceful shutdown initiated ...")

	s.metricsManager.GaugeLifeSignal.Set(0)

	maxWaitDuration := time.Second * 15
	ctx, timeoutCancel := context.WithTimeout(context.Background(), maxWaitDuration)
	defer timeoutCancel()

	if s.httpServer != nil {
		if err := s.httpServer.Shutdown(ctx); err != nil {
			log.Error(" >>> failed to gracefully shutdown http server")
		}
		log.Warnln("server shut down")
	}

	if s.metricsHttpServer != nil {
		if err := s.metricsHttpServer.Shutdown(ctx); err != nil {
			log.Error(" >>> failed to gracefully shutdown metrics http server")
		}
		log.Warnln("metrics server shut down")
	}

	s.otelShutdown()
	log.Trace("otel shut down ...")

	if s.redisClient != nil {
		if err := s.redisClient.Close(); err != nil {
			log.Errorf("failed to close redis client conn: %s", err)
		}
	}

	if s.db != nil {
		log.Debugln("closing db ...")
		if err := s.db.Close(); err != nil {
			log.Errorf("failed to close db: %s", err)
		}
		log.Debugln("db closed")
	}

	if ok := sentry.Flush(5 * time.Second); ok {
		log.Debugf("sentry flush ok: %t", ok)
	}
}

func (s *Server) connStateMetrics(_ net.Conn, state http.ConnState) {
	switch state {
	case http.StateNew:
		s.metricsManager.GaugeRequests.Add(1)
	case http.StateClosed:
		s.metricsManager.GaugeRequests.Add(-1)
	default:
		// do nothing
	}
}
