package trainers

import (
	"context"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"

	"github.com/2beens/gymmanager/internal/api"
	"github.com/2beens/gymmanager/internal/db"
	"github.com/2beens/gymmanager/internal/gym"
	"github.com/2beens/gymmanager/internal/telemetry/metrics"
	"github.com/2beens/gymmanager/internal/telemetry/tracing"
	"github.com/2beens/gymmanager/pkg"
)

//go:generate mockgen -source=$GOFILE -destination=trainers_mocks_test.go -package=trainers_test

type trainersRepo interface {
	List(ctx context.Context, specialization *string) ([]gym.Trainer, error)
	Get(ctx context.Context, id int64) (*gym.Trainer, error)
	Add(ctx context.Context, trainer gym.Trainer) (int64, error)
	Update(ctx context.Context, id int64, changes *db.Changes) error
	Clients(ctx context.Context, trainerID int64) ([]gym.Client, error)
	Client(ctx context.Context, trainerID, memberID int64) (*gym.ClientProfile, error)
	UpdateClient(ctx context.Context, trainerID, memberID int64, changes *db.Changes) error
	WorkoutPlans(ctx context.Context, trainerID int64, memberID *int64) ([]gym.ClientWorkoutPlan, error)
	AddWorkoutPlan(ctx context.Context, trainerID int64, plan gym.WorkoutPlan) (int64, error)
	UpdateWorkoutPlan(ctx context.Context, id int64, changes *db.Changes) error
	WorkoutLogs(ctx context.Context, trainerID int64, memberID *int64) ([]gym.ClientWorkoutLog, error)
	AddWorkoutLog(ctx context.Context, l gym.WorkoutLog) (int64, error)
	UpdateWorkoutLog(ctx context.Context, id int64, changes *db.Changes) error
	DeleteWorkoutLog(ctx context.Context, id int64) error
	Sessions(ctx context.Context, params SessionParams) ([]gym.SessionWithEnrollment, error)
	AddSession(ctx context.Context, session gym.ClassSession) (int64, error)
	UpdateSession(ctx context.Context, id int64, changes *db.Changes) error
	DeleteSession(ctx context.Context, id int64) error
	Attendance(ctx context.Context, sessionID int64) ([]gym.Attendance, error)
	AddAttendance(ctx context.Context, a gym.Attendance) (int64, error)
	UpdateAttendance(ctx context.Context, id int64, changes *db.Changes) error
	Invoices(ctx context.Context, trainerID int64, status *string) ([]gym.ClientInvoice, error)
	AddInvoice(ctx context.Context, invoice gym.Invoice) (int64, error)
	UpdateInvoice(ctx context.Context, id int64, changes *db.Changes) error
	VoidInvoice(ctx context.Context, id int64) error
	Messages(ctx context.Context, trainerID int64, memberID *int64) ([]gym.ClientMessage, error)
	AddMessage(ctx context.Context, msg gym.Message) (int64, error)
}

const (
	msgTrainerNotFound    = "Trainer not found"
	msgClientNotFound     = "Client not found or not assigned to this trainer"
	msgPlanNotFound       = "Workout plan not found"
	msgLogNotFound        = "Workout log not found"
	msgSessionNotFound    = "Session not found"
	msgAttendanceNotFound = "Attendance record not found"
	msgInvoiceNotFound    = "Invoice not found"
)

type trainerRequest struct {
	FirstName      *string `json:"first_name"`
	LastName       *string `json:"last_name"`
	Specialization *string `json:"specialization"`
}

type clientRequest struct {
	FirstName *string `json:"first_name"`
	LastName  *string `json:"last_name"`
	Email     *string `json:"email"`
	Status    *string `json:"status"`
}

type Handler struct {
	repo    trainersRepo
	errs    api.Errors
	metrics *metrics.Manager
	now     func() time.Time
}

func NewHandler(repo trainersRepo, errs api.Errors, metricsManager *metrics.Manager) *Handler {
	return &Handler{
		repo:    repo,
		errs:    errs,
		metrics: metricsManager,
		now:     time.Now,
	}
}

func (handler *Handler) SetupRoutes(router *mux.Router) {
	router.HandleFunc("/trainers", handler.handleList).Methods("GET", "OPTIONS").Name("list-trainers")
	router.HandleFunc("/trainers", handler.handleAdd).Methods("POST", "OPTIONS").Name("new-trainer")
	router.HandleFunc("/trainers/{id}", handler.handleGet).Methods("GET", "OPTIONS").Name("get-trainer")
	router.HandleFunc("/trainers/{id}", handler.handleUpdate).Methods("PUT", "OPTIONS").Name("update-trainer")

	router.HandleFunc("/trainers/{id}/clients", handler.handleClients).Methods("GET", "OPTIONS").Name("trainer-clients")
	router.HandleFunc("/trainers/{id}/clients/{cid}", handler.handleClient).Methods("GET", "OPTIONS").Name("get-client")
	router.HandleFunc("/trainers/{id}/clients/{cid}", handler.handleUpdateClient).Methods("PUT", "OPTIONS").Name("update-client")

	router.HandleFunc("/trainers/{id}/workout-plans", handler.handleWorkoutPlans).Methods("GET", "OPTIONS").Name("trainer-workout-plans")
	router.HandleFunc("/trainers/{id}/workout-plans", handler.handleAddWorkoutPlan).Methods("POST", "OPTIONS").Name("new-workout-plan")
	router.HandleFunc("/workout-plans/{id}", handler.handleUpdateWorkoutPlan).Methods("PUT", "OPTIONS").Name("update-workout-plan")

	router.HandleFunc("/trainers/{id}/workout-logs", handler.handleWorkoutLogs).Methods("GET", "OPTIONS").Name("trainer-workout-logs")
	router.HandleFunc("/trainers/{id}/workout-logs", handler.handleAddWorkoutLog).Methods("POST", "OPTIONS").Name("new-workout-log")
	router.HandleFunc("/workout-logs/{id}", handler.handleUpdateWorkoutLog).Methods("PUT", "OPTIONS").Name("update-workout-log")
	router.HandleFunc("/workout-logs/{id}", handler.handleDeleteWorkoutLog).Methods("DELETE", "OPTIONS").Name("delete-workout-log")

	router.HandleFunc("/trainers/{id}/sessions", handler.handleSessions).Methods("GET", "OPTIONS").Name("trainer-sessions")
	router.HandleFunc("/trainers/{id}/sessions", handler.handleAddSession).Methods("POST", "OPTIONS").Name("new-session")
	router.HandleFunc("/sessions/{id}", handler.handleUpdateSession).Methods("PUT", "OPTIONS").Name("update-session")
	router.HandleFunc("/sessions/{id}", handler.handleDeleteSession).Methods("DELETE", "OPTIONS").Name("delete-session")

	router.HandleFunc("/sessions/{id}/attendance", handler.handleAttendance).Methods("GET", "OPTIONS").Name("session-attendance")
	router.HandleFunc("/sessions/{id}/attendance", handler.handleAddAttendance).Methods("POST", "OPTIONS").Name("new-attendance")
	router.HandleFunc("/attendance/{id}", handler.handleUpdateAttendance).Methods("PUT", "OPTIONS").Name("update-attendance")

	router.HandleFunc("/trainers/{id}/invoices", handler.handleInvoices).Methods("GET", "OPTIONS").Name("trainer-invoices")
	router.HandleFunc("/trainers/{id}/invoices", handler.handleAddInvoice).Methods("POST", "OPTIONS").Name("new-invoice")
	router.HandleFunc("/invoices/{id}", handler.handleUpdateInvoice).Methods("PUT", "OPTIONS").Name("update-invoice")
	router.HandleFunc("/invoices/{id}", handler.handleVoidInvoice).Methods("DELETE", "OPTIONS").Name("void-invoice")

	router.HandleFunc("/trainers/{id}/messages", handler.handleMessages).Methods("GET", "OPTIONS").Name("trainer-messages")
	router.HandleFunc("/trainers/{id}/messages", handler.handleAddMessage).Methods("POST", "OPTIONS").Name("new-trainer-message")
}

func (handler *Handler) handleList(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.trainers.list")
	defer span.End()

	trainers, err := handler.repo.List(ctx, api.QueryString(r, "specialization"))
	if err != nil {
		handler.errs.Write(w, err, msgTrainerNotFound)
		return
	}

	pkg.WriteJSONResponse(w, http.StatusOK, trainers)
}

func (handler *Handler) handleGet(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.trainers.get")
	defer span.End()

	id, err := api.PathID(r, "id")
	if err != nil {
		handler.errs.BadRequest(w, err.Error())
		return
	}

	t, err := handler.repo.Get(ctx, id)
	if err != nil {
		handler.errs.Write(w, err, msgTrainerNotFound)
		return
	}

	pkg.WriteJSONResponse(w, http.StatusOK, t)
}

func (handler *Handler) handleAdd(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.trainers.add")
	defer span.End()

	var req trainerRequest
	body, err := api.DecodeBody(r, &req)
	if err != nil {
		log.Tracef("new trainer, unmarshal json params: %s", err)
		handler.errs.BadRequest(w, err.Error())
		return
	}
	if missing := body.Missing("first_name", "last_name"); missing != "" {
		handler.errs.MissingField(w, missing)
		return
	}

	id, err := handler.repo.Add(ctx, gym.Trainer{
		FirstName:      *req.FirstName,
		LastName:       *req.LastName,
		Specialization: req.Specialization,
	})
	if err != nil {
		handler.errs.Write(w, err, msgTrainerNotFound)
		return
	}

	handler.metrics.EntityCreated("trainer")
	log.Debugf("new trainer added: %d", id)
	pkg.WriteJSONResponse(w, http.StatusCreated, gym.Created("Trainer created successfully", "trainer_id", id))
}

func (handler *Handler) handleUpdate(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.trainers.update")
	defer span.End()

	id, err := api.PathID(r, "id")
	if err != nil {
		handler.errs.BadRequest(w, err.Error())
		return
	}

	var req trainerRequest
	body, err := api.DecodeBody(r, &req)
	if err != nil {
		handler.errs.BadRequest(w, err.Error())
		return
	}

	changes := (&db.Changes{}).
		SetIf(body.Has("first_name"), "first_name", req.FirstName).
		SetIf(body.Has("last_name"), "last_name", req.LastName).
		SetIf(body.Has("specialization"), "specialization", req.Specialization)
	if changes.Empty() {
		handler.errs.BadRequest(w, api.MsgNoValidFields)
		return
	}

	if err := handler.repo.Update(ctx, id, changes); err != nil {
		handler.errs.Write(w, err, msgTrainerNotFound)
		return
	}

	pkg.WriteJSONResponse(w, http.StatusOK, gym.MessageResponse{Message: "Trainer updated successfully"})
}

func (handler *Handler) handleClients(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.trainers.clients")
	defer span.End()

	trainerID, err := api.PathID(r, "id")
	if err != nil {
		handler.errs.BadRequest(w, err.Error())
		return
	}

	clients, err := handler.repo.Clients(ctx, trainerID)
	if err != nil {
		handler.errs.Write(w, err, msgTrainerNotFound)
		return
	}

	pkg.WriteJSONResponse(w, http.StatusOK, clients)
}

func (handler *Handler) handleClient(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.trainers.client")
	defer span.End()

	trainerID, memberID, ok := handler.clientPath(w, r)
	if !ok {
		return
	}

	profile, err := handler.repo.Client(ctx, trainerID, memberID)
	if err != nil {
		handler.errs.Write(w, err, msgClientNotFound)
		return
	}

	pkg.WriteJSONResponse(w, http.StatusOK, profile)
}

func (handler *Handler) handleUpdateClient(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.trainers.client.update")
	defer span.End()

	trainerID, memberID, ok := handler.clientPath(w, r)
	if !ok {
		return
	}

	var req clientRequest
	body, err := api.DecodeBody(r, &req)
	if err != nil {
		handler.errs.BadRequest(w, err.Error())
		return
	}
	if req.Status != nil {
		if err := gym.ValidateStatus("status", *req.Status, gym.MemberStatuses); err != nil {
			handler.errs.BadRequest(w, err.Error())
			return
		}
	}

	changes := (&db.Changes{}).
		SetIf(body.Has("first_name"), "first_name", req.FirstName).
		SetIf(body.Has("last_name"), "last_name", req.LastName).
		SetIf(body.Has("email"), "email", req.Email).
		SetIf(body.Has("status"), "status", req.Status)
	if changes.Empty() {
		handler.errs.BadRequest(w, api.MsgNoValidFields)
		return
	}

	if err := handler.repo.UpdateClient(ctx, trainerID, memberID, changes); err != nil {
		handler.errs.Write(w, err, msgClientNotFound)
		return
	}

	pkg.WriteJSONResponse(w, http.StatusOK, gym.MessageResponse{Message: "Client profile updated successfully"})
}

func (handler *Handler) clientPath(w http.ResponseWriter, r *http.Request) (int64, int64, bool) {
	trainerID, err := api.PathID(r, "id")
	if err != nil {
		handler.errs.BadRequest(w, err.Error())
		return 0, 0, false
	}
	memberID, err := api.PathID(r, "cid")
	if err != nil {
		handler.errs.BadRequest(w, err.Error())
		return 0, 0, false
	}
	return trainerID, memberID, true
}
