package managers

import (
	"context"
	"fmt"

	"github.com/2beens/gymmanager/internal/db"
	"github.com/2beens/gymmanager/internal/gym"
	"github.com/2beens/gymmanager/internal/telemetry/tracing"
)

// AttendanceParams filters class attendance; Range is nil for all time.
type AttendanceParams struct {
	TrainerID *int64
	Range     *gym.DateRange
}

type Repo struct {
	db *db.DB
}

func NewRepo(db *db.DB) *Repo {
	return &Repo{
		db: db,
	}
}

// revenue figures count invoices of every status, voided ones included in total_billed
const revenueWhere = "i.invoice_date >= ? AND i.invoice_date < ?"

func (r *Repo) RevenueSummary(ctx context.Context, dr gym.DateRange) (_ *gym.RevenueSummary, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.managers.revenue.summary")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	summary := &gym.RevenueSummary{
		StartDate: dr.Start,
		EndDate:   dr.End,
	}
	err = r.db.QueryRow(
		ctx,
		`SELECT
				COALESCE(SUM(i.amount), 0),
				COALESCE(SUM(CASE WHEN i.status = 'paid' THEN i.amount ELSE 0 END), 0),
				COALESCE(SUM(CASE WHEN i.status = 'pending' THEN i.amount ELSE 0 END), 0),
				COALESCE(SUM(CASE WHEN i.status = 'overdue' THEN i.amount ELSE 0 END), 0)
			FROM invoice i
			WHERE `+revenueWhere,
		dr.Start, dr.End,
	).Scan(&summary.TotalBilled, &summary.PaidRevenue, &summary.PendingRevenue, &summary.OverdueRevenue)
	if err != nil {
		return nil, fmt.Errorf("revenue summary: %w", err)
	}
	return summary, nil
}

func (r *Repo) RevenueByTrainer(ctx context.Context, dr gym.DateRange) (_ []gym.TrainerRevenue, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.managers.revenue.bytrainer")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	rows, err := r.db.Query(
		ctx,
		`SELECT
				t.trainer_id, t.first_name, t.last_name,
				COALESCE(SUM(i.amount), 0) AS total_billed,
				COALESCE(SUM(CASE WHEN i.status = 'paid' THEN i.amount ELSE 0 END), 0) AS paid_revenue
			FROM invoice i
			JOIN trainer t ON t.trainer_id = i.trainer_id
			WHERE `+revenueWhere+`
			GROUP BY t.trainer_id, t.first_name, t.last_name
			ORDER BY paid_revenue DESC, t.trainer_id`,
		dr.Start, dr.End,
	)
	if err != nil {
		return nil, fmt.Errorf("revenue by trainer: %w", err)
	}
	return db.CollectRows(rows, func(s db.Scanner) (gym.TrainerRevenue, error) {
		var tr gym.TrainerRevenue
		err := s.Scan(&tr.TrainerID, &tr.FirstName, &tr.LastName, &tr.TotalBilled, &tr.PaidRevenue)
		return tr, err
	})
}

// ClassRevenueTrend sums paid class invoices per trainer and day.
func (r *Repo) ClassRevenueTrend(ctx context.Context, dr gym.DateRange, trainerID *int64) (_ []gym.ClassRevenuePoint, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.managers.revenue.classtrend")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	var filter db.Filter
	if trainerID != nil {
		filter.Add("t.trainer_id = ?", *trainerID)
	}

	rows, err := r.db.Query(
		ctx,
		`SELECT t.trainer_id, t.first_name, t.last_name, i.invoice_date, SUM(i.amount)
			FROM invoice i
			JOIN trainer t ON t.trainer_id = i.trainer_id
			WHERE i.status = 'paid' AND LOWER(i.category) LIKE ?
				AND i.invoice_date >= ? AND i.invoice_date < ?`+filter.And()+`
			GROUP BY t.trainer_id, t.first_name, t.last_name, i.invoice_date
			ORDER BY i.invoice_date, t.last_name, t.first_name`,
		filter.Args("%class%", dr.Start, dr.End)...,
	)
	if err != nil {
		return nil, fmt.Errorf("class revenue trend: %w", err)
	}
	return db.CollectRows(rows, func(s db.Scanner) (gym.ClassRevenuePoint, error) {
		var p gym.ClassRevenuePoint
		err := s.Scan(&p.TrainerID, &p.FirstName, &p.LastName, &p.RevenueDate, &p.TotalRevenue)
		return p, err
	})
}

func (r *Repo) RevenueByCategory(ctx context.Context, dr gym.DateRange) (_ []gym.CategoryRevenuePoint, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.managers.revenue.bycategory")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	rows, err := r.db.Query(
		ctx,
		`SELECT
				i.category, i.invoice_date,
				COALESCE(SUM(i.amount), 0),
				COALESCE(SUM(CASE WHEN i.status = 'paid' THEN i.amount ELSE 0 END), 0)
			FROM invoice i
			WHERE `+revenueWhere+`
			GROUP BY i.category, i.invoice_date
			ORDER BY i.invoice_date, i.category`,
		dr.Start, dr.End,
	)
	if err != nil {
		return nil, fmt.Errorf("revenue by category: %w", err)
	}
	return db.CollectRows(rows, func(s db.Scanner) (gym.CategoryRevenuePoint, error) {
		var p gym.CategoryRevenuePoint
		err := s.Scan(&p.Category, &p.RevenueDate, &p.TotalRevenue, &p.PaidRevenue)
		return p, err
	})
}

func (r *Repo) ClassAttendance(ctx context.Context, params AttendanceParams) (_ []gym.ClassAttendanceRecord, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.managers.classattendance")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	var filter db.Filter
	if params.TrainerID != nil {
		filter.Add("cs.trainer_id = ?", *params.TrainerID)
	}
	if params.Range != nil {
		filter.Add("cs.session_date >= ?", params.Range.Start)
		filter.Add("cs.session_date < ?", params.Range.End)
	}

	rows, err := r.db.Query(
		ctx,
		`SELECT ca.attendance_id, ca.member_id, ca.session_id, ca.status, cs.class_name, cs.session_date, cs.trainer_id
			FROM class_attendance ca
			JOIN class_session cs ON cs.session_id = ca.session_id`+filter.Clause()+`
			ORDER BY cs.session_date, ca.attendance_id`,
		filter.Args()...,
	)
	if err != nil {
		return nil, fmt.Errorf("class attendance: %w", err)
	}
	return db.CollectRows(rows, func(s db.Scanner) (gym.ClassAttendanceRecord, error) {
		var a gym.ClassAttendanceRecord
		err := s.Scan(&a.AttendanceID, &a.MemberID, &a.SessionID, &a.Status, &a.ClassName, &a.ClassDatetime, &a.TrainerID)
		return a, err
	})
}
