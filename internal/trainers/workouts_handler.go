package trainers

import (
	"net/http"

	"github.com/2beens/gymmanager/internal/api"
	"github.com/2beens/gymmanager/internal/db"
	"github.com/2beens/gymmanager/internal/gym"
	"github.com/2beens/gymmanager/internal/telemetry/tracing"
	"github.com/2beens/gymmanager/pkg"
)

type workoutPlanRequest struct {
	MemberID *int64    `json:"member_id"`
	PlanName *string   `json:"plan_name"`
	Goals    *string   `json:"goals"`
	PlanDate *gym.Date `json:"plan_date"`
	Status   *string   `json:"status"`
}

type workoutLogRequest struct {
	MemberID    *int64    `json:"member_id"`
	WorkoutDate *gym.Date `json:"workout_date"`
	Notes       *string   `json:"notes"`
	Sessions    *int      `json:"sessions"`
}

func (handler *Handler) handleWorkoutPlans(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.trainers.workoutplans")
	defer span.End()

	trainerID, err := api.PathID(r, "id")
	if err != nil {
		handler.errs.BadRequest(w, err.Error())
		return
	}
	memberID, err := api.QueryInt(r, "member_id")
	if err != nil {
		handler.errs.BadRequest(w, err.Error())
		return
	}

	plans, err := handler.repo.WorkoutPlans(ctx, trainerID, memberID)
	if err != nil {
		handler.errs.Write(w, err, msgTrainerNotFound)
		return
	}

	pkg.WriteJSONResponse(w, http.StatusOK, plans)
}

func (handler *Handler) handleAddWorkoutPlan(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.trainers.workoutplans.add")
	defer span.End()

	trainerID, err := api.PathID(r, "id")
	if err != nil {
		handler.errs.BadRequest(w, err.Error())
		return
	}

	var req workoutPlanRequest
	body, err := api.DecodeBody(r, &req)
	if err != nil {
		handler.errs.BadRequest(w, err.Error())
		return
	}
	if missing := body.Missing("member_id", "goals", "plan_date"); missing != "" {
		handler.errs.MissingField(w, missing)
		return
	}

	status := gym.DefaultPlanStatus
	if req.Status != nil {
		status = *req.Status
	}

	id, err := handler.repo.AddWorkoutPlan(ctx, trainerID, gym.WorkoutPlan{
		MemberID: *req.MemberID,
		PlanName: req.PlanName,
		Goals:    *req.Goals,
		PlanDate: *req.PlanDate,
		Status:   status,
	})
	if err != nil {
		handler.errs.Write(w, err, msgClientNotFound)
		return
	}

	handler.metrics.EntityCreated("workout_plan")
	pkg.WriteJSONResponse(w, http.StatusCreated, gym.Created("Workout plan created successfully", "plan_id", id))
}

func (handler *Handler) handleUpdateWorkoutPlan(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.trainers.workoutplans.update")
	defer span.End()

	id, err := api.PathID(r, "id")
	if err != nil {
		handler.errs.BadRequest(w, err.Error())
		return
	}

	var req workoutPlanRequest
	body, err := api.DecodeBody(r, &req)
	if err != nil {
		handler.errs.BadRequest(w, err.Error())
		return
	}

	changes := (&db.Changes{}).
		SetIf(body.Has("plan_name"), "plan_name", req.PlanName).
		SetIf(body.Has("goals"), "goals", req.Goals).
		SetIf(body.Has("plan_date"), "plan_date", req.PlanDate).
		SetIf(body.Has("status"), "status", req.Status)
	if changes.Empty() {
		handler.errs.BadRequest(w, api.MsgNoValidFields)
		return
	}

	if err := handler.repo.UpdateWorkoutPlan(ctx, id, changes); err != nil {
		handler.errs.Write(w, err, msgPlanNotFound)
		return
	}

	pkg.WriteJSONResponse(w, http.StatusOK, gym.MessageResponse{Message: "Workout plan updated successfully"})
}

func (handler *Handler) handleWorkoutLogs(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.trainers.workoutlogs")
	defer span.End()

	trainerID, err := api.PathID(r, "id")
	if err != nil {
		handler.errs.BadRequest(w, err.Error())
		return
	}
	memberID, err := api.QueryInt(r, "member_id")
	if err != nil {
		handler.errs.BadRequest(w, err.Error())
		return
	}

	logs, err := handler.repo.WorkoutLogs(ctx, trainerID, memberID)
	if err != nil {
		handler.errs.Write(w, err, msgTrainerNotFound)
		return
	}

	pkg.WriteJSONResponse(w, http.StatusOK, logs)
}

func (handler *Handler) handleAddWorkoutLog(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.trainers.workoutlogs.add")
	defer span.End()

	trainerID, err := api.PathID(r, "id")
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
	if missing := body.Missing("member_id", "workout_date"); missing != "" {
		handler.errs.MissingField(w, missing)
		return
	}

	sessions := 1
	if req.Sessions != nil {
		sessions = *req.Sessions
	}

	id, err := handler.repo.AddWorkoutLog(ctx, gym.WorkoutLog{
		MemberID:    *req.MemberID,
		TrainerID:   &trainerID,
		WorkoutDate: *req.WorkoutDate,
		Notes:       req.Notes,
		Sessions:    sessions,
	})
	if err != nil {
		handler.errs.Write(w, err, msgClientNotFound)
		return
	}

	handler.metrics.EntityCreated("workout_log")
	pkg.WriteJSONResponse(w, http.StatusCreated, gym.Created("Workout log recorded successfully", "log_id", id))
}

func (handler *Handler) handleUpdateWorkoutLog(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.trainers.workoutlogs.update")
	defer span.End()

	id, err := api.PathID(r, "id")
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

	changes := (&db.Changes{}).
		SetIf(body.Has("notes"), "notes", req.Notes).
		SetIf(body.Has("sessions"), "sessions", req.Sessions).
		SetIf(body.Has("workout_date"), "workout_date", req.WorkoutDate)
	if changes.Empty() {
		handler.errs.BadRequest(w, api.MsgNoValidFields)
		return
	}

	if err := handler.repo.UpdateWorkoutLog(ctx, id, changes); err != nil {
		handler.errs.Write(w, err, msgLogNotFound)
		return
	}

	pkg.WriteJSONResponse(w, http.StatusOK, gym.MessageResponse{Message: "Workout log updated successfully"})
}

func (handler *Handler) handleDeleteWorkoutLog(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.trainers.workoutlogs.delete")
	defer span.End()

	id, err := api.PathID(r, "id")
	if err != nil {
		handler.errs.BadRequest(w, err.Error())
		return
	}

	if err := handler.repo.DeleteWorkoutLog(ctx, id); err != nil {
		handler.errs.Write(w, err, msgLogNotFound)
		return
	}

	pkg.WriteJSONResponse(w, http.StatusOK, gym.MessageResponse{Message: "Workout log deleted successfully"})
}
