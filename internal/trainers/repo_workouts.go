package trainers

import (
	"context"
	"fmt"

	"go.opentelemetry.io/otel/attribute"

	"github.com/2beens/gymmanager/internal/db"
	"github.com/2beens/gymmanager/internal/gym"
	"github.com/2beens/gymmanager/internal/telemetry/tracing"
)

func scanClientWorkoutPlan(s db.Scanner) (gym.ClientWorkoutPlan, error) {
	var p gym.ClientWorkoutPlan
	err := s.Scan(&p.PlanID, &p.MemberID, &p.PlanName, &p.Goals, &p.PlanDate, &p.Status, &p.FirstName, &p.LastName)
	return p, err
}

func scanClientWorkoutLog(s db.Scanner) (gym.ClientWorkoutLog, error) {
	var l gym.ClientWorkoutLog
	err := s.Scan(&l.LogID, &l.MemberID, &l.TrainerID, &l.WorkoutDate, &l.Notes, &l.Sessions, &l.FirstName, &l.LastName)
	return l, err
}

// WorkoutPlans lists the plans of the trainer's clients, newest first.
func (r *Repo) WorkoutPlans(ctx context.Context, trainerID int64, memberID *int64) (_ []gym.ClientWorkoutPlan, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.trainers.workoutplans")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int64("trainer.id", trainerID))

	var filter db.Filter
	if memberID != nil {
		filter.Add("wp.member_id = ?", *memberID)
	}

	rows, err := r.db.Query(
		ctx,
		`SELECT wp.plan_id, wp.member_id, wp.plan_name, wp.goals, wp.plan_date, wp.status, gm.first_name, gm.last_name
			FROM workout_plan wp
			JOIN gym_member gm ON wp.member_id = gm.member_id
			WHERE gm.trainer_id = ?`+filter.And()+`
			ORDER BY wp.plan_date DESC, wp.plan_id DESC`,
		filter.Args(trainerID)...,
	)
	if err != nil {
		return nil, fmt.Errorf("list workout plans: %w", err)
	}
	return db.CollectRows(rows, scanClientWorkoutPlan)
}

// AddWorkoutPlan inserts a plan for one of the trainer's clients.
func (r *Repo) AddWorkoutPlan(ctx context.Context, trainerID int64, plan gym.WorkoutPlan) (_ int64, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.trainers.workoutplans.add")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int64("trainer.id", trainerID), attribute.Int64("member.id", plan.MemberID))

	var id int64
	err = r.db.InTx(ctx, func(tx *db.Tx) error {
		if err := checkAssigned(ctx, tx, trainerID, plan.MemberID); err != nil {
			return err
		}
		var err error
		id, err = tx.InsertID(
			ctx,
			`INSERT INTO workout_plan (member_id, plan_name, goals, plan_date, status)
				VALUES (?, ?, ?, ?, ?)`,
			"plan_id",
			plan.MemberID, plan.PlanName, plan.Goals, plan.PlanDate, plan.Status,
		)
		return err
	})
	if err != nil {
		return 0, fmt.Errorf("add workout plan: %w", err)
	}
	return id, nil
}

func (r *Repo) UpdateWorkoutPlan(ctx context.Context, id int64, changes *db.Changes) error {
	return r.update(ctx, "repo.trainers.workoutplans.update", "workout_plan", "plan_id = ?", changes, id)
}

// WorkoutLogs lists the logs recorded by the trainer, newest first.
func (r *Repo) WorkoutLogs(ctx context.Context, trainerID int64, memberID *int64) (_ []gym.ClientWorkoutLog, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.trainers.workoutlogs")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int64("trainer.id", trainerID))

	var filter db.Filter
	if memberID != nil {
		filter.Add("wl.member_id = ?", *memberID)
	}

	rows, err := r.db.Query(
		ctx,
		`SELECT wl.log_id, wl.member_id, wl.trainer_id, wl.workout_date, wl.notes, wl.sessions, gm.first_name, gm.last_name
			FROM workout_log wl
			JOIN gym_member gm ON wl.member_id = gm.member_id
			WHERE wl.trainer_id = ?`+filter.And()+`
			ORDER BY wl.workout_date DESC, wl.log_id DESC`,
		filter.Args(trainerID)...,
	)
	if err != nil {
		return nil, fmt.Errorf("list workout logs: %w", err)
	}
	return db.CollectRows(rows, scanClientWorkoutLog)
}

// AddWorkoutLog inserts a log for one of the trainer's clients; l.TrainerID must be set.
func (r *Repo) AddWorkoutLog(ctx context.Context, l gym.WorkoutLog) (_ int64, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.trainers.workoutlogs.add")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	if l.TrainerID == nil {
		return 0, fmt.Errorf("add workout log: %w", gym.ErrNotAssigned)
	}

	var id int64
	err = r.db.InTx(ctx, func(tx *db.Tx) error {
		if err := checkAssigned(ctx, tx, *l.TrainerID, l.MemberID); err != nil {
			return err
		}
		var err error
		id, err = tx.InsertID(
			ctx,
			`INSERT INTO workout_log (member_id, trainer_id, workout_date, notes, sessions)
				VALUES (?, ?, ?, ?, ?)`,
			"log_id",
			l.MemberID, l.TrainerID, l.WorkoutDate, l.Notes, l.Sessions,
		)
		return err
	})
	if err != nil {
		return 0, fmt.Errorf("add workout log: %w", err)
	}
	return id, nil
}

func (r *Repo) UpdateWorkoutLog(ctx context.Context, id int64, changes *db.Changes) error {
	return r.update(ctx, "repo.trainers.workoutlogs.update", "workout_log", "log_id = ?", changes, id)
}

func (r *Repo) DeleteWorkoutLog(ctx context.Context, id int64) error {
	return r.delete(ctx, "repo.trainers.workoutlogs.delete", "workout_log", "log_id", id)
}
