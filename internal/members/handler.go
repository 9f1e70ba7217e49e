package members

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

//go:generate mockgen -source=$GOFILE -destination=members_mocks_test.go -package=members_test

type membersRepo interface {
	List(ctx context.Context, params ListParams) ([]gym.Member, error)
	Get(ctx context.Context, id int64) (*gym.Member, error)
	Add(ctx context.Context, member gym.Member) (int64, error)
	Update(ctx context.Context, id int64, changes *db.Changes) error
	Deactivate(ctx context.Context, id int64) error
	Goals(ctx context.Context, memberID int64) ([]gym.Goal, error)
	AddGoal(ctx context.Context, g gym.Goal) (int64, error)
	UpdateGoal(ctx context.Context, id int64, changes *db.Changes) error
	DeleteGoal(ctx context.Context, id int64) error
	WorkoutLogs(ctx context.Context, memberID int64) ([]gym.WorkoutLog, error)
	AddWorkoutLog(ctx context.Context, l gym.WorkoutLog) (int64, error)
	WorkoutPlans(ctx context.Context, memberID int64) ([]gym.WorkoutPlan, error)
	Progress(ctx context.Context, memberID int64) ([]gym.Progress, error)
	AddProgress(ctx context.Context, p gym.Progress) (int64, error)
	UpdateProgress(ctx context.Context, id int64, changes *db.Changes) error
	DeleteProgress(ctx context.Context, id int64) error
	Messages(ctx context.Context, memberID int64) ([]gym.Message, error)
	AddMessage(ctx context.Context, msg gym.Message) (int64, error)
}

const (
	msgMemberNotFound   = "Member not found"
	msgGoalNotFound     = "Goal not found"
	msgProgressNotFound = "Progress entry not found"
)

type memberRequest struct {
	FirstName      *string `json:"first_name"`
	LastName       *string `json:"last_name"`
	Email          *string `json:"email"`
	TrainerID      *int64  `json:"trainer_id"`
	NutritionistID *int64  `json:"nutritionist_id"`
	Status         *string `json:"status"`
}

type goalRequest struct {
	GoalType     *string   `json:"goal_type"`
	TargetValue  *float64  `json:"target_value"`
	CurrentValue *float64  `json:"current_value"`
	Deadline     *gym.Date `json:"deadline"`
}

type workoutLogRequest struct {
	TrainerID   *int64    `json:"trainer_id"`
	WorkoutDate *gym.Date `json:"workout_date"`
	Notes       *string   `json:"notes"`
	Sessions    *int      `json:"sessions"`
}

type progressRequest struct {
	ProgressDate      *gym.Date `json:"progress_date"`
	Weight            *float64  `json:"weight"`
	BodyFatPercentage *float64  `json:"body_fat_percentage"`
	Measurements      *string   `json:"measurements"`
	Photos            *string   `json:"photos"`
}

type messageRequest struct {
	TrainerID *int64  `json:"trainer_id"`
	Content   *string `json:"content"`
}

type Handler struct {
	repo    membersRepo
	errs    api.Errors
	metrics *metrics.Manager
	now     func() time.Time
}

func NewHandler(repo membersRepo, errs api.Errors, metricsManager *metrics.Manager) *Handler {
	return &Handler{
		repo:    repo,
		errs:    errs,
		metrics: metricsManager,
		now:     time.Now,
	}
}

func (handler *Handler) SetupRoutes(router *mux.Router) {
	router.HandleFunc("/members", handler.handleList).Methods("GET", "OPTIONS").Name("list-members")
	router.HandleFunc("/members", handler.handleAdd).Methods("POST", "OPTIONS").Name("new-member")
	router.HandleFunc("/members/{id}", handler.handleGet).Methods("GET", "OPTIONS").Name("get-member")
	router.HandleFunc("/members/{id}", handler.handleUpdate).Methods("PUT", "OPTIONS").Name("update-member")
	router.HandleFunc("/members/{id}", handler.handleDeactivate).Methods("DELETE", "OPTIONS").Name("deactivate-member")

	router.HandleFunc("/members/{id}/goals", handler.handleGoals).Methods("GET", "OPTIONS").Name("member-goals")
	router.HandleFunc("/members/{id}/goals", handler.handleAddGoal).Methods("POST", "OPTIONS").Name("new-goal")
	router.HandleFunc("/goals/{id}", handler.handleUpdateGoal).Methods("PUT", "OPTIONS").Name("update-goal")
	router.HandleFunc("/goals/{id}", handler.handleDeleteGoal).Methods("DELETE", "OPTIONS").Name("delete-goal")

	router.HandleFunc("/members/{id}/workout-logs", handler.handleWorkoutLogs).Methods("GET", "OPTIONS").Name("member-workout-logs")
	router.HandleFunc("/members/{id}/workout-logs", handler.handleAddWorkoutLog).Methods("POST", "OPTIONS").Name("new-member-workout-log")
	router.HandleFunc("/members/{id}/workout-plans", handler.handleWorkoutPlans).Methods("GET", "OPTIONS").Name("member-workout-plans")

	router.HandleFunc("/members/{id}/progress", handler.handleProgress).Methods("GET", "OPTIONS").Name("member-progress")
	router.HandleFunc("/members/{id}/progress", handler.handleAddProgress).Methods("POST", "OPTIONS").Name("new-progress")
	router.HandleFunc("/progress/{id}", handler.handleUpdateProgress).Methods("PUT", "OPTIONS").Name("update-progress")
	router.HandleFunc("/progress/{id}", handler.handleDeleteProgress).Methods("DELETE", "OPTIONS").Name("delete-progress")

	router.HandleFunc("/members/{id}/messages", handler.handleMessages).Methods("GET", "OPTIONS").Name("member-messages")
	router.HandleFunc("/members/{id}/messages", handler.handleAddMessage).Methods("POST", "OPTIONS").Name("new-member-message")
}

func (handler *Handler) handleList(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.members.list")
	defer span.End()

	trainerID, err := api.QueryInt(r, "trainer_id")
	if err != nil {
		handler.errs.BadRequest(w, err.Error())
		return
	}
	nutritionistID, err := api.QueryInt(r, "nutritionist_id")
	if err != nil {
		handler.errs.BadRequest(w, err.Error())
		return
	}

	members, err := handler.repo.List(ctx, ListParams{
		Status:         api.QueryString(r, "status"),
		TrainerID:      trainerID,
		NutritionistID: nutritionistID,
	})
	if err != nil {
		handler.errs.Write(w, err, msgMemberNotFound)
		return
	}

	pkg.WriteJSONResponse(w, http.StatusOK, members)
}

func (handler *Handler) handleGet(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.members.get")
	defer span.End()

	id, err := api.PathID(r, "id")
	if err != nil {
		handler.errs.BadRequest(w, err.Error())
		return
	}

	m, err := handler.repo.Get(ctx, id)
	if err != nil {
		handler.errs.Write(w, err, msgMemberNotFound)
		return
	}

	pkg.WriteJSONResponse(w, http.StatusOK, m)
}

func (handler *Handler) handleAdd(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.members.add")
	defer span.End()

	var req memberRequest
	body, err := api.DecodeBody(r, &req)
	if err != nil {
		log.Tracef("new member, unmarshal json params: %s", err)
		handler.errs.BadRequest(w, err.Error())
		return
	}
	if missing := body.Missing("first_name", "last_name"); missing != "" {
		handler.errs.MissingField(w, missing)
		return
	}

	status := gym.MemberStatus.Active
	if req.Status != nil {
		status = *req.Status
	}
	if err := gym.ValidateStatus("status", status, gym.MemberStatuses); err != nil {
		handler.errs.BadRequest(w, err.Error())
		return
	}

	id, err := handler.repo.Add(ctx, gym.Member{
		FirstName:      *req.FirstName,
		LastName:       *req.LastName,
		Email:          req.Email,
		Status:         status,
		TrainerID:      req.TrainerID,
		NutritionistID: req.NutritionistID,
	})
	if err != nil {
		handler.errs.Write(w, err, msgMemberNotFound)
		return
	}

	handler.metrics.EntityCreated("member")
	log.Debugf("new member added: %d", id)
	pkg.WriteJSONResponse(w, http.StatusCreated, gym.Created("Member created", "member_id", id))
}

func (handler *Handler) handleUpdate(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.members.update")
	defer span.End()

	id, err := api.PathID(r, "id")
	if err != nil {
		handler.errs.BadRequest(w, err.Error())
		return
	}

	var req memberRequest
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
		SetIf(body.Has("trainer_id"), "trainer_id", req.TrainerID).
		SetIf(body.Has("nutritionist_id"), "nutritionist_id", req.NutritionistID).
		SetIf(body.Has("status"), "status", req.Status)
	if changes.Empty() {
		handler.errs.BadRequest(w, api.MsgNoValidFields)
		return
	}

	if err := handler.repo.Update(ctx, id, changes); err != nil {
		handler.errs.Write(w, err, msgMemberNotFound)
		return
	}

	pkg.WriteJSONResponse(w, http.StatusOK, gym.MessageResponse{Message: "Member updated successfully"})
}

func (handler *Handler) handleDeactivate(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.members.deactivate")
	defer span.End()

	id, err := api.PathID(r, "id")
	if err != nil {
		handler.errs.BadRequest(w, err.Error())
		return
	}

	if err := handler.repo.Deactivate(ctx, id); err != nil {
		handler.errs.Write(w, err, msgMemberNotFound)
		return
	}

	pkg.WriteJSONResponse(w, http.StatusOK, gym.MessageResponse{Message: "Member deactivated"})
}

func (handler *Handler) handleGoals(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.members.goals")
	defer span.End()

	memberID, err := api.PathID(r, "id")
	if err != nil {
		handler.errs.BadRequest(w, err.Error())
		return
	}

	goals, err := handler.repo.Goals(ctx, memberID)
	if err != nil {
		handler.errs.Write(w, err, msgMemberNotFound)
		return
	}

	pkg.WriteJSONResponse(w, http.StatusOK, goals)
}

func (handler *Handler) handleAddGoal(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.members.goals.add")
	defer span.End()

	memberID, err := api.PathID(r, "id")
	if err != nil {
		handler.errs.BadRequest(w, err.Error())
		return
	}

	var req goalRequest
	if _, err := api.DecodeBody(r, &req); err != nil {
		handler.errs.BadRequest(w, err.Error())
		return
	}

	id, err := handler.repo.AddGoal(ctx, gym.Goal{
		MemberID:     memberID,
		GoalType:     req.GoalType,
		TargetValue:  req.TargetValue,
		CurrentValue: req.CurrentValue,
		Deadline:     req.Deadline,
	})
	if err != nil {
		handler.errs.Write(w, err, msgMemberNotFound)
		return
	}

	handler.metrics.EntityCreated("goal")
	pkg.WriteJSONResponse(w, http.StatusCreated, gym.Created("Goal created", "goal_id", id))
}

func (handler *Handler) handleUpdateGoal(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.members.goals.update")
	defer span.End()

	id, err := api.PathID(r, "id")
	if err != nil {
		handler.errs.BadRequest(w, err.Error())
		return
	}

	var req goalRequest
	body, err := api.DecodeBody(r, &req)
	if err != nil {
		handler.errs.BadRequest(w, err.Error())
		return
	}

	changes := (&db.Changes{}).
		SetIf(body.Has("target_value"), "target_value", req.TargetValue).
		SetIf(body.Has("current_value"), "current_value", req.CurrentValue).
		SetIf(body.Has("deadline"), "deadline", req.Deadline).
		SetIf(body.Has("goal_type"), "goal_type", req.GoalType)
	if changes.Empty() {
		handler.errs.BadRequest(w, api.MsgNoValidFields)
		return
	}

	if err := handler.repo.UpdateGoal(ctx, id, changes); err != nil {
		handler.errs.Write(w, err, msgGoalNotFound)
		return
	}

	pkg.WriteJSONResponse(w, http.StatusOK, gym.MessageResponse{Message: "Goal updated"})
}

func (handler *Handler) handleDeleteGoal(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.members.goals.delete")
	defer span.End()

	id, err := api.PathID(r, "id")
	if err != nil {
		handler.errs.BadRequest(w, err.Error())
		return
	}

	if err := handler.repo.DeleteGoal(ctx, id); err != nil {
		handler.errs.Write(w, err, msgGoalNotFound)
		return
	}

	pkg.WriteJSONResponse(w, http.StatusOK, gym.MessageResponse{Message: "Goal deleted"})
}

func (handler *Handler) handleWorkoutLogs(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.members.workoutlogs")
	defer span.End()

	memberID, err := api.PathID(r, "id")
	if err != nil {
		handler.errs.BadRequest(w, err.Error())
		return
	}

	logs, err := handler.repo.WorkoutLogs(ctx, memberID)
	if err != nil {
		handler.errs.Write(w, err, msgMemberNotFound)
		return
	}

	pkg.WriteJSONResponse(w, http.StatusOK, logs)
}

func (handler *Handler) handleAddWorkoutLog(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.members.workoutlogs.add")
	defer span.End()

	memberID, err := api.PathID(r, "id")
	if err != nil {
		handler.errs.BadRequest(w, err.Error())
		return
	}

	var req workoutLogRequest
	body, err := api.DecodeBody(r, &req)
	if err != nil {
		handler.errs.BadRequest(w, err.Error())
		return
	}
	if missing := body.Missing("workout_date"); missing != "" {
		handler.errs.MissingField(w, missing)
		return
	}

	sessions := 1
	if req.Sessions != nil {
		sessions = *req.Sessions
	}

	id, err := handler.repo.AddWorkoutLog(ctx, gym.WorkoutLog{
		MemberID:    memberID,
		TrainerID:   req.TrainerID,
		WorkoutDate: *req.WorkoutDate,
		Notes:       req.Notes,
		Sessions:    sessions,
	})
	if err != nil {
		handler.errs.Write(w, err, msgMemberNotFound)
		return
	}

	handler.metrics.EntityCreated("workout_log")
	pkg.WriteJSONResponse(w, http.StatusCreated, gym.Created("Workout logged", "log_id", id))
}

func (handler *Handler) handleWorkoutPlans(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.members.workoutplans")
	defer span.End()

	memberID, err := api.PathID(r, "id")
	if err != nil {
		handler.errs.BadRequest(w, err.Error())
		return
	}

	plans, err := handler.repo.WorkoutPlans(ctx, memberID)
	if err != nil {
		handler.errs.Write(w, err, msgMemberNotFound)
		return
	}

	pkg.WriteJSONResponse(w, http.StatusOK, plans)
}

func (handler *Handler) handleProgress(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.members.progress")
	defer span.End()

	memberID, err := api.PathID(r, "id")
	if err != nil {
		handler.errs.BadRequest(w, err.Error())
		return
	}

	entries, err := handler.repo.Progress(ctx, memberID)
	if err != nil {
		handler.errs.Write(w, err, msgMemberNotFound)
		return
	}

	pkg.WriteJSONResponse(w, http.StatusOK, entries)
}

func (handler *Handler) handleAddProgress(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.members.progress.add")
	defer span.End()

	memberID, err := api.PathID(r, "id")
	if err != nil {
		handler.errs.BadRequest(w, err.Error())
		return
	}

	var req progressRequest
	body, err := api.DecodeBody(r, &req)
	if err != nil {
		handler.errs.BadRequest(w, err.Error())
		return
	}
	if missing := body.Missing("progress_date"); missing != "" {
		handler.errs.MissingField(w, missing)
		return
	}

	id, err := handler.repo.AddProgress(ctx, gym.Progress{
		MemberID:          memberID,
		ProgressDate:      *req.ProgressDate,
		Weight:            req.Weight,
		BodyFatPercentage: req.BodyFatPercentage,
		Measurements:      req.Measurements,
		Photos:            req.Photos,
	})
	if err != nil {
		handler.errs.Write(w, err, msgMemberNotFound)
		return
	}

	handler.metrics.EntityCreated("progress")
	pkg.WriteJSONResponse(w, http.StatusCreated, gym.Created("Progress recorded", "progress_id", id))
}

func (handler *Handler) handleUpdateProgress(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.members.progress.update")
	defer span.End()

	id, err := api.PathID(r, "id")
	if err != nil {
		handler.errs.BadRequest(w, err.Error())
		return
	}

	var req progressRequest
	body, err := api.DecodeBody(r, &req)
	if err != nil {
		handler.errs.BadRequest(w, err.Error())
		return
	}

	changes := (&db.Changes{}).
		SetIf(body.Has("weight"), "weight", req.Weight).
		SetIf(body.Has("body_fat_percentage"), "body_fat_percentage", req.BodyFatPercentage).
		SetIf(body.Has("measurements"), "measurements", req.Measurements).
		SetIf(body.Has("photos"), "photos", req.Photos)
	if changes.Empty() {
		handler.errs.BadRequest(w, api.MsgNoValidFields)
		return
	}

	if err := handler.repo.UpdateProgress(ctx, id, changes); err != nil {
		handler.errs.Write(w, err, msgProgressNotFound)
		return
	}

	pkg.WriteJSONResponse(w, http.StatusOK, gym.MessageResponse{Message: "Progress updated"})
}

func (handler *Handler) handleDeleteProgress(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.members.progress.delete")
	defer span.End()

	id, err := api.PathID(r, "id")
	if err != nil {
		handler.errs.BadRequest(w, err.Error())
		return
	}

	if err := handler.repo.DeleteProgress(ctx, id); err != nil {
		handler.errs.Write(w, err, msgProgressNotFound)
		return
	}

	pkg.WriteJSONResponse(w, http.StatusOK, gym.MessageResponse{Message: "Progress entry deleted"})
}

func (handler *Handler) handleMessages(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.members.messages")
	defer span.End()

	memberID, err := api.PathID(r, "id")
	if err != nil {
		handler.errs.BadRequest(w, err.Error())
		return
	}

	messages, err := handler.repo.Messages(ctx, memberID)
	if err != nil {
		handler.errs.Write(w, err, msgMemberNotFound)
		return
	}

	pkg.WriteJSONResponse(w, http.StatusOK, messages)
}

func (handler *Handler) handleAddMessage(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.members.messages.add")
	defer span.End()

	memberID, err := api.PathID(r, "id")
	if err != nil {
		handler.errs.BadRequest(w, err.Error())
		return
	}

	var req messageRequest
	body, err := api.DecodeBody(r, &req)
	if err != nil {
		handler.errs.BadRequest(w, err.Error())
		return
	}
	if missing := body.Missing("content"); missing != "" {
		handler.errs.MissingField(w, missing)
		return
	}

	id, err := handler.repo.AddMessage(ctx, gym.Message{
		MemberID:         memberID,
		TrainerID:        req.TrainerID,
		Content:          *req.Content,
		MessageTimestamp: gym.NewTimestamp(handler.now()),
		ReadStatus:       gym.ReadStatus.Unread,
	})
	if err != nil {
		handler.errs.Write(w, err, msgMemberNotFound)
		return
	}

	handler.metrics.EntityCreated("message")
	pkg.WriteJSONResponse(w, http.StatusCreated, gym.Created("Message sent successfully", "message_id", id))
}
