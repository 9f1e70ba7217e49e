package trainers

import (
	"context"
	"fmt"

	"go.opentelemetry.io/otel/attribute"

	"github.com/2beens/gymmanager/internal/db"
	"github.com/2beens/gymmanager/internal/gym"
	"github.com/2beens/gymmanager/internal/telemetry/tracing"
)

const (
	trainerColumns = "trainer_id, first_name, last_name, specialization"
	clientColumns  = "member_id, first_name, last_name, email, status"
)

type Repo struct {
	db *db.DB
}

func NewRepo(db *db.DB) *Repo {
	return &Repo{
		db: db,
	}
}

func scanTrainer(s db.Scanner) (gym.Trainer, error) {
	var t gym.Trainer
	err := s.Scan(&t.TrainerID, &t.FirstName, &t.LastName, &t.Specialization)
	return t, err
}

func scanClient(s db.Scanner) (gym.Client, error) {
	var c gym.Client
	err := s.Scan(&c.MemberID, &c.FirstName, &c.LastName, &c.Email, &c.Status)
	return c, err
}

func scanClientProfile(s db.Scanner) (gym.ClientProfile, error) {
	var p gym.ClientProfile
	err := s.Scan(
		&p.MemberID, &p.FirstName, &p.LastName, &p.Email, &p.Status, &p.TrainerID, &p.NutritionistID,
		&p.TrainerFirstName, &p.TrainerLastName,
	)
	return p, err
}

func (r *Repo) List(ctx context.Context, specialization *string) (_ []gym.Trainer, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.trainers.list")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	var filter db.Filter
	if specialization != nil {
		filter.Add("specialization = ?", *specialization)
	}

	rows, err := r.db.Query(
		ctx,
		"SELECT "+trainerColumns+" FROM trainer"+filter.Clause()+" ORDER BY trainer_id",
		filter.Args()...,
	)
	if err != nil {
		return nil, fmt.Errorf("list trainers: %w", err)
	}
	return db.CollectRows(rows, scanTrainer)
}

func (r *Repo) Get(ctx context.Context, id int64) (_ *gym.Trainer, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.trainers.get")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int64("trainer.id", id))

	t, err := db.ScanOne(
		r.db.QueryRow(ctx, "SELECT "+trainerColumns+" FROM trainer WHERE trainer_id = ?", id),
		scanTrainer,
	)
	if err != nil {
		return nil, fmt.Errorf("get trainer %d: %w", id, err)
	}
	return &t, nil
}

func (r *Repo) Add(ctx context.Context, trainer gym.Trainer) (_ int64, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.trainers.add")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	id, err := r.db.InsertID(
		ctx,
		"INSERT INTO trainer (first_name, last_name, specialization) VALUES (?, ?, ?)",
		"trainer_id",
		trainer.FirstName, trainer.LastName, trainer.Specialization,
	)
	if err != nil {
		return 0, fmt.Errorf("add trainer: %w", err)
	}
	span.SetAttributes(attribute.Int64("trainer.id", id))
	return id, nil
}

func (r *Repo) Update(ctx context.Context, id int64, changes *db.Changes) error {
	return r.update(ctx, "repo.trainers.update", "trainer", "trainer_id = ?", changes, id)
}

func (r *Repo) Clients(ctx context.Context, trainerID int64) (_ []gym.Client, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.trainers.clients")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int64("trainer.id", trainerID))

	rows, err := r.db.Query(
		ctx,
		"SELECT "+clientColumns+" FROM gym_member WHERE trainer_id = ? ORDER BY last_name, first_name",
		trainerID,
	)
	if err != nil {
		return nil, fmt.Errorf("list clients: %w", err)
	}
	return db.CollectRows(rows, scanClient)
}

// Client returns the member profile only when the member is assigned to the trainer.
func (r *Repo) Client(ctx context.Context, trainerID, memberID int64) (_ *gym.ClientProfile, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.trainers.client")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int64("trainer.id", trainerID), attribute.Int64("member.id", memberID))

	p, err := db.ScanOne(
		r.db.QueryRow(
			ctx,
			`SELECT gm.member_id, gm.first_name, gm.last_name, gm.email, gm.status, gm.trainer_id, gm.nutritionist_id,
					t.first_name, t.last_name
				FROM gym_member gm
				LEFT JOIN trainer t ON gm.trainer_id = t.trainer_id
				WHERE gm.member_id = ? AND gm.trainer_id = ?`,
			memberID, trainerID,
		),
		scanClientProfile,
	)
	if err != nil {
		return nil, fmt.Errorf("get client %d of trainer %d: %w", memberID, trainerID, err)
	}
	return &p, nil
}

func (r *Repo) UpdateClient(ctx context.Context, trainerID, memberID int64, changes *db.Changes) error {
	return r.update(ctx, "repo.trainers.client.update", "gym_member", "member_id = ? AND trainer_id = ?", changes, memberID, trainerID)
}

func (r *Repo) update(ctx context.Context, spanName, table, where string, changes *db.Changes, whereArgs ...any) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, spanName)
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	query, args := db.UpdateStatement(table, changes, where, whereArgs...)
	res, err := r.db.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("update %s: %w", table, err)
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

// checkAssigned fails with gym.ErrNotAssigned unless the member is the trainer's client.
func checkAssigned(ctx context.Context, q db.Querier, trainerID, memberID int64) error {
	var n int
	err := q.QueryRow(
		ctx,
		"SELECT COUNT(*) FROM gym_member WHERE member_id = ? AND trainer_id = ?",
		memberID, trainerID,
	).Scan(&n)
	if err != nil {
		return fmt.Errorf("check assignment: %w", err)
	}
	if n == 0 {
		return gym.ErrNotAssigned
	}
	return nil
}
