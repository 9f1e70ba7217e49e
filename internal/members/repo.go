package members

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"go.opentelemetry.io/otel/attribute"

	"github.com/2beens/gymmanager/internal/db"
	"github.com/2beens/gymmanager/internal/gym"
	"github.com/2beens/gymmanager/internal/telemetry/tracing"
)

const (
	memberColumns   = "member_id, first_name, last_name, email, status, trainer_id, nutritionist_id"
	goalColumns     = "goal_id, member_id, goal_type, target_value, current_value, deadline"
	logColumns      = "log_id, member_id, trainer_id, workout_date, notes, sessions"
	planColumns     = "plan_id, member_id, plan_name, goals, plan_date, status"
	progressColumns = "progress_id, member_id, progress_date, weight, body_fat_percentage, measurements, photos"
	messageColumns  = "message_id, member_id, trainer_id, content, message_timestamp, read_status"
)

type ListParams struct {
	Status         *string
	TrainerID      *int64
	NutritionistID *int64
}

type Repo struct {
	db *db.DB
}

func NewRepo(db *db.DB) *Repo {
	return &Repo{
		db: db,
	}
}

func scanMember(s db.Scanner) (gym.Member, error) {
	var m gym.Member
	err := s.Scan(&m.MemberID, &m.FirstName, &m.LastName, &m.Email, &m.Status, &m.TrainerID, &m.NutritionistID)
	return m, err
}

func scanGoal(s db.Scanner) (gym.Goal, error) {
	var g gym.Goal
	err := s.Scan(&g.GoalID, &g.MemberID, &g.GoalType, &g.TargetValue, &g.CurrentValue, &g.Deadline)
	return g, err
}

func scanWorkoutLog(s db.Scanner) (gym.WorkoutLog, error) {
	var l gym.WorkoutLog
	err := s.Scan(&l.LogID, &l.MemberID, &l.TrainerID, &l.WorkoutDate, &l.Notes, &l.Sessions)
	return l, err
}

func scanWorkoutPlan(s db.Scanner) (gym.WorkoutPlan, error) {
	var p gym.WorkoutPlan
	err := s.Scan(&p.PlanID, &p.MemberID, &p.PlanName, &p.Goals, &p.PlanDate, &p.Status)
	return p, err
}

func scanProgress(s db.Scanner) (gym.Progress, error) {
	var p gym.Progress
	err := s.Scan(&p.ProgressID, &p.MemberID, &p.ProgressDate, &p.Weight, &p.BodyFatPercentage, &p.Measurements, &p.Photos)
	return p, err
}

func scanMessage(s db.Scanner) (gym.Message, error) {
	var m gym.Message
	err := s.Scan(&m.MessageID, &m.MemberID, &m.TrainerID, &m.Content, &m.MessageTimestamp, &m.ReadStatus)
	return m, err
}

func (r *Repo) List(ctx context.Context, params ListParams) (_ []gym.Member, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.members.list")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	var filter db.Filter
	if params.Status != nil {
		filter.Add("status = ?", *params.Status)
	}
	if params.TrainerID != nil {
		filter.Add("trainer_id = ?", *params.TrainerID)
	}
	if params.NutritionistID != nil {
		filter.Add("nutritionist_id = ?", *params.NutritionistID)
	}

	rows, err := r.db.Query(
		ctx,
		"SELECT "+memberColumns+" FROM gym_member"+filter.Clause()+" ORDER BY member_id",
		filter.Args()...,
	)
	if err != nil {
		return nil, fmt.Errorf("list members: %w", err)
	}
	return db.CollectRows(rows, scanMember)
}

func (r *Repo) Get(ctx context.Context, id int64) (_ *gym.Member, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.members.get")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int64("member.id", id))

	m, err := db.ScanOne(
		r.db.QueryRow(ctx, "SELECT "+memberColumns+" FROM gym_member WHERE member_id = ?", id),
		scanMember,
	)
	if err != nil {
		return nil, fmt.Errorf("get member %d: %w", id, err)
	}
	return &m, nil
}

func (r *Repo) Add(ctx context.Context, m gym.Member) (_ int64, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.members.add")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	id, err := r.db.InsertID(
		ctx,
		`INSERT INTO gym_member (first_name, last_name, email, status, trainer_id, nutritionist_id)
			VALUES (?, ?, ?, ?, ?, ?)`,
		"member_id",
		m.FirstName, m.LastName, m.Email, m.Status, m.TrainerID, m.NutritionistID,
	)
	if err != nil {
		return 0, fmt.Errorf("add member: %w", err)
	}
	span.SetAttributes(attribute.Int64("member.id", id))
	return id, nil
}

func (r *Repo) Update(ctx context.Context, id int64, changes *db.Changes) error {
	return r.update(ctx, "repo.members.update", "gym_member", "member_id", id, changes)
}

// Deactivate is the member soft delete.
func (r *Repo) Deactivate(ctx context.Context, id int64) error {
	changes := (&db.Changes{}).Set("status", gym.MemberStatus.Cancelled)
	return r.update(ctx, "repo.members.deactivate", "gym_member", "member_id", id, changes)
}

func (r *Repo) Goals(ctx context.Context, memberID int64) (_ []gym.Goal, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.members.goals")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int64("member.id", memberID))

	rows, err := r.db.Query(ctx, "SELECT "+goalColumns+" FROM goal WHERE member_id = ? ORDER BY goal_id", memberID)
	if err != nil {
		return nil, fmt.Errorf("list goals: %w", err)
	}
	return db.CollectRows(rows, scanGoal)
}

func (r *Repo) AddGoal(ctx context.Context, g gym.Goal) (_ int64, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.members.goals.add")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	id, err := r.db.InsertID(
		ctx,
		`INSERT INTO goal (member_id, goal_type, target_value, current_value, deadline)
			VALUES (?, ?, ?, ?, ?)`,
		"goal_id",
		g.MemberID, g.GoalType, g.TargetValue, g.CurrentValue, g.Deadline,
	)
	if err != nil {
		return 0, fmt.Errorf("add goal: %w", err)
	}
	return id, nil
}

func (r *Repo) UpdateGoal(ctx context.Context, id int64, changes *db.Changes) error {
	return r.update(ctx, "repo.members.goals.update", "goal", "goal_id", id, changes)
}

func (r *Repo) DeleteGoal(ctx context.Context, id int64) error {
	return r.delete(ctx, "repo.members.goals.delete", "goal", "goal_id", id)
}

func (r *Repo) WorkoutLogs(ctx context.Context, memberID int64) (_ []gym.WorkoutLog, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.members.workoutlogs")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int64("member.id", memberID))

	rows, err := r.db.Query(
		ctx,
		"SELECT "+logColumns+" FROM workout_log WHERE member_id = ? ORDER BY workout_date DESC, log_id DESC",
		memberID,
	)
	if err != nil {
		return nil, fmt.Errorf("list workout logs: %w", err)
	}
	return db.CollectRows(rows, scanWorkoutLog)
}

func (r *Repo) AddWorkoutLog(ctx context.Context, l gym.WorkoutLog) (_ int64, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.members.workoutlogs.add")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	id, err := r.db.InsertID(
		ctx,
		`INSERT INTO workout_log (member_id, trainer_id, workout_date, notes, sessions)
			VALUES (?, ?, ?, ?, ?)`,
		"log_id",
		l.MemberID, l.TrainerID, l.WorkoutDate, l.Notes, l.Sessions,
	)
	if err != nil {
		return 0, fmt.Errorf("add workout log: %w", err)
	}
	return id, nil
}

func (r *Repo) WorkoutPlans(ctx context.Context, memberID int64) (_ []gym.WorkoutPlan, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.members.workoutplans")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int64("member.id", memberID))

	rows, err := r.db.Query(
		ctx,
		"SELECT "+planColumns+" FROM workout_plan WHERE member_id = ? ORDER BY plan_date DESC, plan_id DESC",
		memberID,
	)
	if err != nil {
		return nil, fmt.Errorf("list workout plans: %w", err)
	}
	return db.CollectRows(rows, scanWorkoutPlan)
}

func (r *Repo) Progress(ctx context.Context, memberID int64) (_ []gym.Progress, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.members.progress")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int64("member.id", memberID))

	rows, err := r.db.Query(
		ctx,
		"SELECT "+progressColumns+" FROM progress WHERE member_id = ? ORDER BY progress_date DESC, progress_id DESC",
		memberID,
	)
	if err != nil {
		return nil, fmt.Errorf("list progress: %w", err)
	}
	return db.CollectRows(rows, scanProgress)
}

func (r *Repo) AddProgress(ctx context.Context, p gym.Progress) (_ int64, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.members.progress.add")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	id, err := r.db.InsertID(
		ctx,
		`INSERT INTO progress (member_id, progress_date, weight, body_fat_percentage, measurements, photos)
			VALUES (?, ?, ?, ?, ?, ?)`,
		"progress_id",
		p.MemberID, p.ProgressDate, p.Weight, p.BodyFatPercentage, p.Measurements, p.Photos,
	)
	if err != nil {
		return 0, fmt.Errorf("add progress: %w", err)
	}
	return id, nil
}

func (r *Repo) UpdateProgress(ctx context.Context, id int64, changes *db.Changes) error {
	return r.update(ctx, "repo.members.progress.update", "progress", "progress_id", id, changes)
}

func (r *Repo) DeleteProgress(ctx context.Context, id int64) error {
	return r.delete(ctx, "repo.members.progress.delete", "progress", "progress_id", id)
}

func (r *Repo) Messages(ctx context.Context, memberID int64) (_ []gym.Message, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.members.messages")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int64("member.id", memberID))

	rows, err := r.db.Query(
		ctx,
		"SELECT "+messageColumns+" FROM message WHERE member_id = ? ORDER BY message_timestamp DESC, message_id DESC",
		memberID,
	)
	if err != nil {
		return nil, fmt.Errorf("list messages: %w", err)
	}
	return db.CollectRows(rows, scanMessage)
}

// AddMessage stores a member message. Without a trainer id the message goes
// to the member's assigned trainer.
func (r *Repo) AddMessage(ctx context.Context, m gym.Message) (_ int64, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.members.messages.add")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	var id int64
	err = r.db.InTx(ctx, func(tx *db.Tx) error {
		if m.TrainerID == nil {
			var assigned sql.NullInt64
			err := tx.QueryRow(ctx, "SELECT trainer_id FROM gym_member WHERE member_id = ?", m.MemberID).Scan(&assigned)
			if errors.Is(err, sql.ErrNoRows) {
				return gym.ErrNotFound
			}
			if err != nil {
				return fmt.Errorf("member trainer: %w", err)
			}
			if assigned.Valid {
				m.TrainerID = &assigned.Int64
			}
		}

		var err error
		id, err = tx.InsertID(
			ctx,
			`INSERT INTO message (member_id, trainer_id, content, message_timestamp, read_status)
				VALUES (?, ?, ?, ?, ?)`,
			"message_id",
			m.MemberID, m.TrainerID, m.Content, m.MessageTimestamp, m.ReadStatus,
		)
		return err
	})
	if err != nil {
		return 0, fmt.Errorf("add message: %w", err)
	}
	return id, nil
}

func (r *Repo) update(ctx context.Context, spanName, table, idColumn string, id int64, changes *db.Changes) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, spanName)
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int64("id", id))

	query, args := db.UpdateStatement(table, changes, idColumn+" = ?", id)
	res, err := r.db.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("update %s %d: %w", table, id, err)
	}
	return db.CheckAffected(res, gym.ErrNotFound)
}

func (r *Repo) delete(ctx context.Context, spanName, table, idColumn string, id int64) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, spanName)
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int64("id", id))

	res, err := r.db.Exec(ctx, "DELETE FROM "+table+" WHERE "+idColumn+" = ?", id)
	if err != nil {
		return fmt.Errorf("delete %s %d: %w", table, id, err)
	}
	return db.CheckAffected(res, gym.ErrNotFound)
}
