package managers

import (
	"context"
	"errors"
	"net/http"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"

	"github.com/2beens/gymmanager/internal/api"
	"github.com/2beens/gymmanager/internal/gym"
	"github.com/2beens/gymmanager/internal/telemetry/tracing"
	"github.com/2beens/gymmanager/pkg"
)

//go:generate mockgen -source=$GOFILE -destination=managers_mocks_test.go -package=managers_test

type reportService interface {
	RevenueSummary(ctx context.Context, dr gym.DateRange) (*gym.RevenueSummary, error)
	RevenueByTrainer(ctx context.Context, dr gym.DateRange) (*gym.RevenueByTrainer, error)
	ClassRevenueTrend(ctx context.Context, dr gym.DateRange, trainerID *int64) (*gym.ClassRevenueTrend, error)
	RevenueByCategory(ctx context.Context, dr gym.DateRange) (*gym.CategoryRevenue, error)
	ClassAttendance(ctx context.Context, params AttendanceParams) ([]gym.ClassAttendanceRecord, error)
}

const (
	MsgDateRangeRequired = "Please provide both 'start_date' and 'end_date' in YYYY-MM-DD format."
	MsgDateRangeOrder    = "start_date must be before end_date"
	msgNotFound          = "Not found"
)

var (
	errDateRangeRequired = errors.New(MsgDateRangeRequired)
	errDateRangeOrder    = errors.New(MsgDateRangeOrder)
)

type Handler struct {
	service reportService
	errs    api.Errors
}

func NewHandler(service reportService, errs api.Errors) *Handler {
	return &Handler{
		service: service,
		errs:    errs,
	}
}

func (handler *Handler) SetupRoutes(router *mux.Router) {
	router.HandleFunc("/managers/revenue/summary", handler.handleRevenueSummary).Methods("GET", "OPTIONS").Name("revenue-summary")
	router.HandleFunc("/managers/revenue/by-trainer", handler.handleRevenueByTrainer).Methods("GET", "OPTIONS").Name("revenue-by-trainer")
	router.HandleFunc("/managers/revenue/class-trend", handler.handleClassRevenueTrend).Methods("GET", "OPTIONS").Name("revenue-class-trend")
	router.HandleFunc("/managers/revenue/by-category", handler.handleRevenueByCategory).Methods("GET", "OPTIONS").Name("revenue-by-category")
	router.HandleFunc("/managers/class-attendance", handler.handleClassAttendance).Methods("GET", "OPTIONS").Name("class-attendance")
}

// ParseDateRange reads start_date and end_date; both are required and start must precede end.
func ParseDateRange(r *http.Request) (gym.DateRange, error) {
	start, err := api.QueryDate(r, "start_date")
	if err != nil || start == nil {
		return gym.DateRange{}, errDateRangeRequired
	}
	end, err := api.QueryDate(r, "end_date")
	if err != nil || end == nil {
		return gym.DateRange{}, errDateRangeRequired
	}
	if !start.Before(end.Time) {
		return gym.DateRange{}, errDateRangeOrder
	}
	return gym.DateRange{Start: *start, End: *end}, nil
}

func (handler *Handler) handleRevenueSummary(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.managers.revenue.summary")
	defer span.End()

	dr, err := ParseDateRange(r)
	if err != nil {
		handler.errs.BadRequest(w, err.Error())
		return
	}
	log.Tracef("revenue summary: %s - %s", dr.Start, dr.End)

	summary, err := handler.service.RevenueSummary(ctx, dr)
	if err != nil {
		handler.errs.Write(w, err, msgNotFound)
		return
	}

	pkg.WriteJSONResponse(w, http.StatusOK, summary)
}

func (handler *Handler) handleRevenueByTrainer(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.managers.revenue.bytrainer")
	defer span.End()

	dr, err := ParseDateRange(r)
	if err != nil {
		handler.errs.BadRequest(w, err.Error())
		return
	}

	report, err := handler.service.RevenueByTrainer(ctx, dr)
	if err != nil {
		handler.errs.Write(w, err, msgNotFound)
		return
	}

	pkg.WriteJSONResponse(w, http.StatusOK, report)
}

func (handler *Handler) handleClassRevenueTrend(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.managers.revenue.classtrend")
	defer span.End()

	dr, err := ParseDateRange(r)
	if err != nil {
		handler.errs.BadRequest(w, err.Error())
		return
	}
	trainerID, err := api.QueryInt(r, "trainer_id")
	if err != nil {
		handler.errs.BadRequest(w, err.Error())
		return
	}

	report, err := handler.service.ClassRevenueTrend(ctx, dr, trainerID)
	if err != nil {
		handler.errs.Write(w, err, msgNotFound)
		return
	}

	pkg.WriteJSONResponse(w, http.StatusOK, report)
}

func (handler *Handler) handleRevenueByCategory(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.managers.revenue.bycategory")
	defer span.End()

	dr, err := ParseDateRange(r)
	if err != nil {
		handler.errs.BadRequest(w, err.Error())
		return
	}

	report, err := handler.service.RevenueByCategory(ctx, dr)
	if err != nil {
		handler.errs.Write(w, err, msgNotFound)
		return
	}

	pkg.WriteJSONResponse(w, http.StatusOK, report)
}

// handleClassAttendance takes an optional date pair; end_date is inclusive here,
// matching the date picker of the dashboard.
func (handler *Handler) handleClassAttendance(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.managers.classattendance")
	defer span.End()

	trainerID, err := api.QueryInt(r, "trainer_id")
	if err != nil {
		handler.errs.BadRequest(w, err.Error())
		return
	}

	params := AttendanceParams{TrainerID: trainerID}
	q := r.URL.Query()
	if q.Get("start_date") != "" || q.Get("end_date") != "" {
		start, errStart := api.QueryDate(r, "start_date")
		end, errEnd := api.QueryDate(r, "end_date")
		if errStart != nil || errEnd != nil || start == nil || end == nil {
			handler.errs.BadRequest(w, MsgDateRangeRequired)
			return
		}
		if end.Before(start.Time) {
			handler.errs.BadRequest(w, "start_date must not be after end_date")
			return
		}
		params.Range = &gym.DateRange{Start: *start, End: end.AddDays(1)}
	}

	records, err := handler.service.ClassAttendance(ctx, params)
	if err != nil {
		handler.errs.Write(w, err, msgNotFound)
		return
	}

	pkg.WriteJSONResponse(w, http.StatusOK, records)
}
