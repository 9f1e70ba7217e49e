package apiclient

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"go.opentelemetry.io/otel/attribute"

	"github.com/2beens/gymmanager/internal/gym"
	"github.com/2beens/gymmanager/internal/telemetry/tracing"
	"github.com/2beens/gymmanager/pkg"
)

const DefaultTimeout = 10 * time.Second

// APIError is a non 2xx answer of the API.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api error %d: %s", e.StatusCode, e.Message)
}

// Client is a typed client of the gym manager API, used by gymctl.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient uses a traced http client with DefaultTimeout when httpClient is nil.
func NewClient(baseURL string, httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = &http.Client{
			Transport: otelhttp.NewTransport(http.DefaultTransport),
			Timeout:   DefaultTimeout,
		}
	}
	return &Client{
		baseURL:    strings.TrimSuffix(baseURL, "/"),
		httpClient: httpClient,
	}
}

func (c *Client) Members(ctx context.Context, status string) ([]gym.Member, error) {
	q := url.Values{}
	if status != "" {
		q.Set("status", status)
	}
	var list []gym.Member
	if err := c.get(ctx, "/members", q, &list); err != nil {
		return nil, err
	}
	return list, nil
}

func (c *Client) MemberWorkoutLogs(ctx context.Context, memberID int64) ([]gym.WorkoutLog, error) {
	var list []gym.WorkoutLog
	if err := c.get(ctx, fmt.Sprintf("/members/%d/workout-logs", memberID), nil, &list); err != nil {
		return nil, err
	}
	return list, nil
}

func (c *Client) Trainers(ctx context.Context) ([]gym.Trainer, error) {
	var list []gym.Trainer
	if err := c.get(ctx, "/trainers", nil, &list); err != nil {
		return nil, err
	}
	return list, nil
}

func (c *Client) Nutritionists(ctx context.Context) ([]gym.Nutritionist, error) {
	var list []gym.Nutritionist
	if err := c.get(ctx, "/nutritionists", nil, &list); err != nil {
		return nil, err
	}
	return list, nil
}

func rangeQuery(dr gym.DateRange) url.Values {
	q := url.Values{}
	q.Set("start_date", dr.Start.String())
	q.Set("end_date", dr.End.String())
	return q
}

func (c *Client) RevenueSummary(ctx context.Context, dr gym.DateRange) (*gym.RevenueSummary, error) {
	var summary gym.RevenueSummary
	if err := c.get(ctx, "/managers/revenue/summary", rangeQuery(dr), &summary); err != nil {
		return nil, err
	}
	return &summary, nil
}

func (c *Client) RevenueByTrainer(ctx context.Context, dr gym.DateRange) (*gym.RevenueByTrainer, error) {
	var report gym.RevenueByTrainer
	if err := c.get(ctx, "/managers/revenue/by-trainer", rangeQuery(dr), &report); err != nil {
		return nil, err
	}
	return &report, nil
}

func (c *Client) ClassRevenueTrend(ctx context.Context, dr gym.DateRange, trainerID *int64) (*gym.ClassRevenueTrend, error) {
	q := rangeQuery(dr)
	if trainerID != nil {
		q.Set("trainer_id", strconv.FormatInt(*trainerID, 10))
	}
	var report gym.ClassRevenueTrend
	if err := c.get(ctx, "/managers/revenue/class-trend", q, &report); err != nil {
		return nil, err
	}
	return &report, nil
}

func (c *Client) RevenueByCategory(ctx context.Context, dr gym.DateRange) (*gym.CategoryRevenue, error) {
	var report gym.CategoryRevenue
	if err := c.get(ctx, "/managers/revenue/by-category", rangeQuery(dr), &report); err != nil {
		return nil, err
	}
	return &report, nil
}

// ClassAttendance filters by day when both from and to are set, both included.
func (c *Client) ClassAttendance(ctx context.Context, trainerID *int64, from, to *gym.Date) ([]gym.ClassAttendanceRecord, error) {
	q := url.Values{}
	if trainerID != nil {
		q.Set("trainer_id", strconv.FormatInt(*trainerID, 10))
	}
	if from != nil && to != nil {
		q.Set("start_date", from.String())
		q.Set("end_date", to.String())
	}
	var records []gym.ClassAttendanceRecord
	if err := c.get(ctx, "/managers/class-attendance", q, &records); err != nil {
		return nil, err
	}
	return records, nil
}

func (c *Client) get(ctx context.Context, path string, query url.Values, dst any) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "apiclient.get")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("api.path", path))

	reqURL := c.baseURL + path
	if len(query) > 0 {
		reqURL += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return fmt.Errorf("new request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("get %s: %w", path, err)
	}
	defer resp.Body.Close()

	respBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read %s response: %w", path, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		apiErr := &APIError{StatusCode: resp.StatusCode, Message: strings.TrimSpace(string(respBytes))}
		var errResp pkg.ErrorResponse
		if json.Unmarshal(respBytes, &errResp) == nil && errResp.Error != "" {
			apiErr.Message = errResp.Error
		}
		return apiErr
	}

	log.Tracef("api get %s: %d bytes", path, len(respBytes))
	if err := json.Unmarshal(respBytes, dst); err != nil {
		return fmt.Errorf("unmarshal %s response: %w", path, err)
	}
	return nil
}

// IsNotFound reports whether err is a 404 answer.
func IsNotFound(err error) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.StatusCode == http.StatusNotFound
}
