package trainers

import (
	"context"
	"fmt"

	"go.opentelemetry.io/otel/attribute"

	"github.com/2beens/gymmanager/internal/db"
	"github.com/2beens/gymmanager/internal/gym"
	"github.com/2beens/gymmanager/internal/telemetry/tracing"
)

func scanClientInvoice(s db.Scanner) (gym.ClientInvoice, error) {
	var i gym.ClientInvoice
	err := s.Scan(&i.InvoiceID, &i.MemberID, &i.TrainerID, &i.Amount, &i.InvoiceDate, &i.Status, &i.Category, &i.FirstName, &i.LastName)
	return i, err
}

func scanClientMessage(s db.Scanner) (gym.ClientMessage, error) {
	var m gym.ClientMessage
	err := s.Scan(&m.MessageID, &m.MemberID, &m.TrainerID, &m.Content, &m.MessageTimestamp, &m.ReadStatus, &m.FirstName, &m.LastName)
	return m, err
}

func (r *Repo) Invoices(ctx context.Context, trainerID int64, status *string) (_ []gym.ClientInvoice, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.trainers.invoices")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int64("trainer.id", trainerID))

	var filter db.Filter
	if status != nil {
		filter.Add("i.status = ?", *status)
	}

	rows, err := r.db.Query(
		ctx,
		`SELECT i.invoice_id, i.member_id, i.trainer_id, i.amount, i.invoice_date, i.status, i.category, gm.first_name, gm.last_name
			FROM invoice i
			JOIN gym_member gm ON i.member_id = gm.member_id
			WHERE i.trainer_id = ?`+filter.And()+`
			ORDER BY i.invoice_date DESC, i.invoice_id DESC`,
		filter.Args(trainerID)...,
	)
	if err != nil {
		return nil, fmt.Errorf("list invoices: %w", err)
	}
	return db.CollectRows(rows, scanClientInvoice)
}

func (r *Repo) AddInvoice(ctx context.Context, invoice gym.Invoice) (_ int64, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.trainers.invoices.add")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int64("trainer.id", invoice.TrainerID))

	id, err := r.db.InsertID(
		ctx,
		`INSERT INTO invoice (member_id, trainer_id, amount, invoice_date, status, category)
			VALUES (?, ?, ?, ?, ?, ?)`,
		"invoice_id",
		invoice.MemberID, invoice.TrainerID, invoice.Amount, invoice.InvoiceDate, invoice.Status, invoice.Category,
	)
	if err != nil {
		return 0, fmt.Errorf("add invoice: %w", err)
	}
	return id, nil
}

func (r *Repo) UpdateInvoice(ctx context.Context, id int64, changes *db.Changes) error {
	return r.update(ctx, "repo.trainers.invoices.update", "invoice", "invoice_id = ?", changes, id)
}

// VoidInvoice keeps the row for the books, only the status changes.
func (r *Repo) VoidInvoice(ctx context.Context, id int64) error {
	changes := (&db.Changes{}).Set("status", gym.InvoiceStatus.Voided)
	return r.update(ctx, "repo.trainers.invoices.void", "invoice", "invoice_id = ?", changes, id)
}

func (r *Repo) Messages(ctx context.Context, trainerID int64, memberID *int64) (_ []gym.ClientMessage, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.trainers.messages")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int64("trainer.id", trainerID))

	var filter db.Filter
	if memberID != nil {
		filter.Add("m.member_id = ?", *memberID)
	}

	rows, err := r.db.Query(
		ctx,
		`SELECT m.message_id, m.member_id, m.trainer_id, m.content, m.message_timestamp, m.read_status, gm.first_name, gm.last_name
			FROM message m
			JOIN gym_member gm ON m.member_id = gm.member_id
			WHERE m.trainer_id = ?`+filter.And()+`
			ORDER BY m.message_timestamp DESC, m.message_id DESC`,
		filter.Args(trainerID)...,
	)
	if err != nil {
		return nil, fmt.Errorf("list messages: %w", err)
	}
	return db.CollectRows(rows, scanClientMessage)
}

func (r *Repo) AddMessage(ctx context.Context, msg gym.Message) (_ int64, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.trainers.messages.add")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	id, err := r.db.InsertID(
		ctx,
		`INSERT INTO message (member_id, trainer_id, content, message_timestamp, read_status)
			VALUES (?, ?, ?, ?, ?)`,
		"message_id",
		msg.MemberID, msg.TrainerID, msg.Content, msg.MessageTimestamp, msg.ReadStatus,
	)
	if err != nil {
		return 0, fmt.Errorf("add message: %w", err)
	}
	return id, nil
}
