package managers

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/2beens/gymmanager/internal/cache"
	"github.com/2beens/gymmanager/internal/gym"
	"github.com/2beens/gymmanager/internal/telemetry/metrics"
	"github.com/2beens/gymmanager/internal/telemetry/tracing"
)

//go:generate mockgen -source=$GOFILE -destination=reports_repo_mocks_test.go -package=managers_test

type reportsRepo interface {
	RevenueSummary(ctx context.Context, dr gym.DateRange) (*gym.RevenueSummary, error)
	RevenueByTrainer(ctx context.Context, dr gym.DateRange) ([]gym.TrainerRevenue, error)
	ClassRevenueTrend(ctx context.Context, dr gym.DateRange, trainerID *int64) ([]gym.ClassRevenuePoint, error)
	RevenueByCategory(ctx context.Context, dr gym.DateRange) ([]gym.CategoryRevenuePoint, error)
	ClassAttendance(ctx context.Context, params AttendanceParams) ([]gym.ClassAttendanceRecord, error)
}

const (
	reportSummary    = "summary"
	reportByTrainer  = "by_trainer"
	reportClassTrend = "class_trend"
	reportByCategory = "by_category"
)

// Service builds manager reports. Revenue reports go through the report cache.
type Service struct {
	repo    reportsRepo
	cache   cache.ReportCache
	ttl     time.Duration
	metrics *metrics.Manager
}

func NewService(repo reportsRepo, reportCache cache.ReportCache, ttl time.Duration, metricsManager *metrics.Manager) *Service {
	if reportCache == nil {
		reportCache = cache.NopCache{}
	}
	return &Service{
		repo:    repo,
		cache:   reportCache,
		ttl:     ttl,
		metrics: metricsManager,
	}
}

func (s *Service) RevenueSummary(ctx context.Context, dr gym.DateRange) (*gym.RevenueSummary, error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.managers.revenue.summary")
	defer span.End()

	return cached(ctx, s, reportSummary, cacheKey(reportSummary, dr, nil), func(ctx context.Context) (*gym.RevenueSummary, error) {
		return s.repo.RevenueSummary(ctx, dr)
	})
}

func (s *Service) RevenueByTrainer(ctx context.Context, dr gym.DateRange) (*gym.RevenueByTrainer, error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.managers.revenue.bytrainer")
	defer span.End()

	return cached(ctx, s, reportByTrainer, cacheKey(reportByTrainer, dr, nil), func(ctx context.Context) (*gym.RevenueByTrainer, error) {
		trainers, err := s.repo.RevenueByTrainer(ctx, dr)
		if err != nil {
			return nil, err
		}
		return &gym.RevenueByTrainer{
			StartDate: dr.Start,
			EndDate:   dr.End,
			Trainers:  trainers,
		}, nil
	})
}

func (s *Service) ClassRevenueTrend(ctx context.Context, dr gym.DateRange, trainerID *int64) (*gym.ClassRevenueTrend, error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.managers.revenue.classtrend")
	defer span.End()

	return cached(ctx, s, reportClassTrend, cacheKey(reportClassTrend, dr, trainerID), func(ctx context.Context) (*gym.ClassRevenueTrend, error) {
		points, err := s.repo.ClassRevenueTrend(ctx, dr, trainerID)
		if err != nil {
			return nil, err
		}
		return &gym.ClassRevenueTrend{
			StartDate: dr.Start,
			EndDate:   dr.End,
			TrainerID: trainerID,
			Data:      points,
		}, nil
	})
}

func (s *Service) RevenueByCategory(ctx context.Context, dr gym.DateRange) (*gym.CategoryRevenue, error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.managers.revenue.bycategory")
	defer span.End()

	return cached(ctx, s, reportByCategory, cacheKey(reportByCategory, dr, nil), func(ctx context.Context) (*gym.CategoryRevenue, error) {
		points, err := s.repo.RevenueByCategory(ctx, dr)
		if err != nil {
			return nil, err
		}
		return &gym.CategoryRevenue{
			StartDate: dr.Start,
			EndDate:   dr.End,
			Data:      points,
		}, nil
	})
}

// ClassAttendance is not cached, trainers update attendance during the day.
func (s *Service) ClassAttendance(ctx context.Context, params AttendanceParams) ([]gym.ClassAttendanceRecord, error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.managers.classattendance")
	defer span.End()

	return s.repo.ClassAttendance(ctx, params)
}

func cacheKey(report string, dr gym.DateRange, trainerID *int64) string {
	key := fmt.Sprintf("%s:%s:%s", report, dr.Start, dr.End)
	if trainerID != nil {
		key += fmt.Sprintf(":%d", *trainerID)
	}
	return key
}

// cached serves the report from the cache, or loads and stores it.
// Cache failures are logged and never fail the request.
func cached[T any](ctx context.Context, s *Service, report, key string, load func(ctx context.Context) (T, error)) (T, error) {
	var result T

	payload, ok, err := s.cache.Get(ctx, key)
	switch {
	case err != nil:
		log.Errorf("report cache get [%s]: %s", key, err)
		s.metrics.ReportCacheResult(report, "error")
	case ok:
		if err := json.Unmarshal(payload, &result); err != nil {
			// corrupt entry, reload and overwrite it
			log.Errorf("report cache unmarshal [%s]: %s", key, err)
			s.metrics.ReportCacheResult(report, "error")
			break
		}
		s.metrics.ReportCacheResult(report, "hit")
		return result, nil
	default:
		s.metrics.ReportCacheResult(report, "miss")
	}

	result, err = load(ctx)
	if err != nil {
		return result, err
	}

	if payload, err := json.Marshal(result); err != nil {
		log.Errorf("report cache marshal [%s]: %s", key, err)
	} else if err := s.cache.Set(ctx, key, payload, s.ttl); err != nil {
		log.Errorf("report cache set [%s]: %s", key, err)
	}

	return result, nil
}
