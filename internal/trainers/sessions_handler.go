package trainers

import (
	"net/http"

	log "github.com/sirupsen/logrus"

	"github.com/2beens/gymmanager/internal/api"
	"github.com/2beens/gymmanager/internal/db"
	"github.com/2beens/gymmanager/internal/gym"
	"github.com/2beens/gymmanager/internal/telemetry/tracing"
	"github.com/2beens/gymmanager/pkg"
)

type sessionRequest struct {
	ClassName   *string        `json:"class_name"`
	SessionDate *gym.Timestamp `json:"session_date"`
	Cost        *float64       `json:"cost"`
}

type attendanceRequest struct {
	MemberID *int64  `json:"member_id"`
	Status   *string `json:"status"`
}

func (handler *Handler) handleSessions(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.trainers.sessions")
	defer span.End()

	trainerID, err := api.PathID(r, "id")
	if err != nil {
		handler.errs.BadRequest(w, err.Error())
		return
	}
	from, err := api.QueryDate(r, "date_from")
	if err != nil {
		handler.errs.BadRequest(w, err.Error())
		return
	}
	to, err := api.QueryDate(r, "date_to")
	if err != nil {
		handler.errs.BadRequest(w, err.Error())
		return
	}

	sessions, err := handler.repo.Sessions(ctx, SessionParams{
		TrainerID: trainerID,
		From:      from,
		To:        to,
	})
	if err != nil {
		handler.errs.Write(w, err, msgTrainerNotFound)
		return
	}

	pkg.WriteJSONResponse(w, http.StatusOK, sessions)
}

func (handler *Handler) handleAddSession(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.trainers.sessions.add")
	defer span.End()

	trainerID, err := api.PathID(r, "id")
	if err != nil {
		handler.errs.BadRequest(w, err.Error())
		return
	}

	var req sessionRequest
	body, err := api.DecodeBody(r, &req)
	if err != nil {
		handler.errs.BadRequest(w, err.Error())
		return
	}
	if missing := body.Missing("class_name", "session_date"); missing != "" {
		handler.errs.MissingField(w, missing)
		return
	}

	id, err := handler.repo.AddSession(ctx, gym.ClassSession{
		TrainerID:   trainerID,
		ClassName:   *req.ClassName,
		SessionDate: *req.SessionDate,
		Cost:        req.Cost,
	})
	if err != nil {
		handler.errs.Write(w, err, msgTrainerNotFound)
		return
	}

	handler.metrics.EntityCreated("class_session")
	log.Debugf("trainer %d scheduled session %d", trainerID, id)
	pkg.WriteJSONResponse(w, http.StatusCreated, gym.Created("Session created successfully", "session_id", id))
}

func (handler *Handler) handleUpdateSession(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.trainers.sessions.update")
	defer span.End()

	id, err := api.PathID(r, "id")
	if err != nil {
		handler.errs.BadRequest(w, err.Error())
		return
	}

	var req sessionRequest
	body, err := api.DecodeBody(r, &req)
	if err != nil {
		handler.errs.BadRequest(w, err.Error())
		return
	}

	changes := (&db.Changes{}).
		SetIf(body.Has("class_name"), "class_name", req.ClassName).
		SetIf(body.Has("session_date"), "session_date", req.SessionDate).
		SetIf(body.Has("cost"), "cost", req.Cost)
	if changes.Empty() {
		handler.errs.BadRequest(w, api.MsgNoValidFields)
		return
	}

	if err := handler.repo.UpdateSession(ctx, id, changes); err != nil {
		handler.errs.Write(w, err, msgSessionNotFound)
		return
	}

	pkg.WriteJSONResponse(w, http.StatusOK, gym.MessageResponse{Message: "Session updated successfully"})
}

func (handler *Handler) handleDeleteSession(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.trainers.sessions.delete")
	defer span.End()

	id, err := api.PathID(r, "id")
	if err != nil {
		handler.errs.BadRequest(w, err.Error())
		return
	}

	if err := handler.repo.DeleteSession(ctx, id); err != nil {
		handler.errs.Write(w, err, msgSessionNotFound)
		return
	}

	log.Debugf("session %d cancelled", id)
	pkg.WriteJSONResponse(w, http.StatusOK, gym.MessageResponse{Message: "Session cancelled successfully"})
}

func (handler *Handler) handleAttendance(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.trainers.attendance")
	defer span.End()

	sessionID, err := api.PathID(r, "id")
	if err != nil {
		handler.errs.BadRequest(w, err.Error())
		return
	}

	rows, err := handler.repo.Attendance(ctx, sessionID)
	if err != nil {
		handler.errs.Write(w, err, msgSessionNotFound)
		return
	}

	pkg.WriteJSONResponse(w, http.StatusOK, rows)
}

func (handler *Handler) handleAddAttendance(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.trainers.attendance.add")
	defer span.End()

	sessionID, err := api.PathID(r, "id")
	if err != nil {
		handler.errs.BadRequest(w, err.Error())
		return
	}

	var req attendanceRequest
	body, err := api.DecodeBody(r, &req)
	if err != nil {
		handler.errs.BadRequest(w, err.Error())
		return
	}
	if missing := body.Missing("member_id"); missing != "" {
		handler.errs.MissingField(w, missing)
		return
	}

	status := gym.AttendanceStatus.Registered
	if req.Status != nil {
		status = *req.Status
	}
	if err := gym.ValidateStatus("status", status, gym.AttendanceStatuses); err != nil {
		handler.errs.BadRequest(w, err.Error())
		return
	}

	id, err := handler.repo.AddAttendance(ctx, gym.Attendance{
		MemberID:  *req.MemberID,
		SessionID: sessionID,
		Status:    status,
	})
	if err != nil {
		handler.errs.Write(w, err, msgSessionNotFound)
		return
	}

	handler.metrics.EntityCreated("attendance")
	pkg.WriteJSONResponse(w, http.StatusCreated, gym.Created("Attendance recorded successfully", "attendance_id", id))
}

func (handler *Handler) handleUpdateAttendance(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.trainers.attendance.update")
	defer span.End()

	id, err := api.PathID(r, "id")
	if err != nil {
		handler.errs.BadRequest(w, err.Error())
		return
	}

	var req attendanceRequest
	body, err := api.DecodeBody(r, &req)
	if err != nil {
		handler.errs.BadRequest(w, err.Error())
		return
	}
	if req.Status != nil {
		if err := gym.ValidateStatus("status", *req.Status, gym.AttendanceStatuses); err != nil {
			handler.errs.BadRequest(w, err.Error())
			return
		}
	}

	changes := (&db.Changes{}).SetIf(body.Has("status"), "status", req.Status)
	if changes.Empty() {
		handler.errs.BadRequest(w, api.MsgNoValidFields)
		return
	}

	if err := handler.repo.UpdateAttendance(ctx, id, changes); err != nil {
		handler.errs.Write(w, err, msgAttendanceNotFound)
		return
	}

	pkg.WriteJSONResponse(w, http.StatusOK, gym.MessageResponse{Message: "Attendance updated successfully"})
}
