package trainers

import (
	"context"
	"fmt"

	"go.opentelemetry.io/otel/attribute"

	"github.com/2beens/gymmanager/internal/db"
	"github.com/2beens/gymmanager/internal/gym"
	"github.com/2beens/gymmanager/internal/telemetry/tracing"
)

const sessionColumns = "cs.session_id, cs.trainer_id, cs.class_name, cs.session_date, cs.cost"

type SessionParams struct {
	TrainerID int64
	// From and To bound session_date by day, both inclusive.
	From *gym.Date
	To   *gym.Date
}

func scanSessionWithEnrollment(s db.Scanner) (gym.SessionWithEnrollment, error) {
	var cs gym.SessionWithEnrollment
	err := s.Scan(&cs.SessionID, &cs.TrainerID, &cs.ClassName, &cs.SessionDate, &cs.Cost, &cs.EnrolledCount)
	return cs, err
}

func scanAttendance(s db.Scanner) (gym.Attendance, error) {
	var a gym.Attendance
	err := s.Scan(&a.AttendanceID, &a.MemberID, &a.SessionID, &a.Status)
	return a, err
}

func (r *Repo) Sessions(ctx context.Context, params SessionParams) (_ []gym.SessionWithEnrollment, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.trainers.sessions")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int64("trainer.id", params.TrainerID))

	var filter db.Filter
	if params.From != nil {
		filter.Add("cs.session_date >= ?", *params.From)
	}
	if params.To != nil {
		filter.Add("cs.session_date < ?", params.To.AddDays(1))
	}

	rows, err := r.db.Query(
		ctx,
		`SELECT `+sessionColumns+`, COUNT(ca.attendance_id) AS enrolled_count
			FROM class_session cs
			LEFT JOIN class_attendance ca ON cs.session_id = ca.session_id
			WHERE cs.trainer_id = ?`+filter.And()+`
			GROUP BY `+sessionColumns+`
			ORDER BY cs.session_date DESC`,
		filter.Args(params.TrainerID)...,
	)
	if err != nil {
		return nil, fmt.Errorf("list sessions: %w", err)
	}
	return db.CollectRows(rows, scanSessionWithEnrollment)
}

func (r *Repo) AddSession(ctx context.Context, session gym.ClassSession) (_ int64, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.trainers.sessions.add")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	id, err := r.db.InsertID(
		ctx,
		"INSERT INTO class_session (trainer_id, class_name, session_date, cost) VALUES (?, ?, ?, ?)",
		"session_id",
		session.TrainerID, session.ClassName, session.SessionDate, session.Cost,
	)
	if err != nil {
		return 0, fmt.Errorf("add session: %w", err)
	}
	span.SetAttributes(attribute.Int64("session.id", id))
	return id, nil
}

func (r *Repo) UpdateSession(ctx context.Context, id int64, changes *db.Changes) error {
	return r.update(ctx, "repo.trainers.sessions.update", "class_session", "session_id = ?", changes, id)
}

// DeleteSession removes the session and its attendance rows together.
func (r *Repo) DeleteSession(ctx context.Context, id int64) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.trainers.sessions.delete")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int64("session.id", id))

	return r.db.InTx(ctx, func(tx *db.Tx) error {
		if _, err := tx.Exec(ctx, "DELETE FROM class_attendance WHERE session_id = ?", id); err != nil {
			return fmt.Errorf("delete attendance of session %d: %w", id, err)
		}
		res, err := tx.Exec(ctx, "DELETE FROM class_session WHERE session_id = ?", id)
		if err != nil {
			return fmt.Errorf("delete session %d: %w", id, err)
		}
		return db.CheckAffected(res, gym.ErrNotFound)
	})
}

func (r *Repo) Attendance(ctx context.Context, sessionID int64) (_ []gym.Attendance, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.trainers.attendance")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int64("session.id", sessionID))

	rows, err := r.db.Query(
		ctx,
		"SELECT attendance_id, member_id, session_id, status FROM class_attendance WHERE session_id = ? ORDER BY attendance_id",
		sessionID,
	)
	if err != nil {
		return nil, fmt.Errorf("list attendance: %w", err)
	}
	return db.CollectRows(rows, scanAttendance)
}

func (r *Repo) AddAttendance(ctx context.Context, a gym.Attendance) (_ int64, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.trainers.attendance.add")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	id, err := r.db.InsertID(
		ctx,
		"INSERT INTO class_attendance (member_id, session_id, status) VALUES (?, ?, ?)",
		"attendance_id",
		a.MemberID, a.SessionID, a.Status,
	)
	if err != nil {
		return 0, fmt.Errorf("add attendance: %w", err)
	}
	return id, nil
}

func (r *Repo) UpdateAttendance(ctx context.Context, id int64, changes *db.Changes) error {
	return r.update(ctx, "repo.trainers.attendance.update", "class_attendance", "attendance_id = ?", changes, id)
}
