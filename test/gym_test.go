//go:build integration_test || all_tests

package test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/stretchr/testify/require"

	"github.com/2beens/gymmanager/internal/apiclient"
	"github.com/2beens/gymmanager/internal/dashboard"
	"github.com/2beens/gymmanager/internal/gym"
)

func (s *IntegrationTestSuite) doJSON(ctx context.Context, method, path string, body any) (int, map[string]any) {
	var reqBody io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		require.NoError(s.T(), err)
		reqBody = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, serverEndpoint+path, reqBody)
	require.NoError(s.T(), err)
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.httpClient.Do(req)
	require.NoError(s.T(), err)
	defer resp.Body.Close()

	respBytes, err := io.ReadAll(resp.Body)
	require.NoError(s.T(), err)

	var decoded map[string]any
	if len(respBytes) > 0 && respBytes[0] == '{' {
		require.NoError(s.T(), json.Unmarshal(respBytes, &decoded))
	}
	return resp.StatusCode, decoded
}

// create posts body to path and returns the id under idKey.
func (s *IntegrationTestSuite) create(ctx context.Context, path, idKey string, body any) int64 {
	status, resp := s.doJSON(ctx, http.MethodPost, path, body)
	require.Equal(s.T(), http.StatusCreated, status, "POST %s: %v", path, resp)
	id, ok := resp[idKey].(float64)
	require.True(s.T(), ok, "missing %s in %v", idKey, resp)
	return int64(id)
}

func (s *IntegrationTestSuite) newTrainer(ctx context.Context) int64 {
	return s.create(ctx, "/trainers", "trainer_id", map[string]any{
		"first_name":     gofakeit.FirstName(),
		"last_name":      gofakeit.LastName(),
		"specialization": "Strength",
	})
}

func (s *IntegrationTestSuite) newMember(ctx context.Context, trainerID int64) int64 {
	return s.create(ctx, "/members", "member_id", map[string]any{
		"first_name": gofakeit.FirstName(),
		"last_name":  gofakeit.LastName(),
		"email":      gofakeit.Email(),
		"trainer_id": trainerID,
	})
}

func (s *IntegrationTestSuite) TestMembers_Lifecycle() {
	ctx := context.Background()
	t := s.T()

	trainerID := s.newTrainer(ctx)
	memberID := s.newMember(ctx, trainerID)

	client := apiclient.NewClient(serverEndpoint, s.httpClient)
	active, err := client.Members(ctx, gym.MemberStatus.Active)
	require.NoError(t, err)
	var found bool
	for _, m := range active {
		if m.MemberID == memberID {
			found = true
			require.NotNil(t, m.TrainerID)
			require.Equal(t, trainerID, *m.TrainerID)
		}
	}
	require.True(t, found)

	status, _ := s.doJSON(ctx, http.MethodPut, fmt.Sprintf("/members/%d", memberID), map[string]any{})
	require.Equal(t, http.StatusBadRequest, status)

	status, _ = s.doJSON(ctx, http.MethodPut, fmt.Sprintf("/members/%d", memberID), map[string]any{"status": "archived"})
	require.Equal(t, http.StatusBadRequest, status)

	status, _ = s.doJSON(ctx, http.MethodDelete, fmt.Sprintf("/members/%d", memberID), nil)
	require.Equal(t, http.StatusOK, status)

	status, resp := s.doJSON(ctx, http.MethodGet, fmt.Sprintf("/members/%d", memberID), nil)
	require.Equal(t, http.StatusOK, status)
	require.Equal(t, gym.MemberStatus.Cancelled, resp["status"])

	status, _ = s.doJSON(ctx, http.MethodGet, "/members/99999999", nil)
	require.Equal(t, http.StatusNotFound, status)
}

func (s *IntegrationTestSuite) TestMembers_UnknownTrainer() {
	status, _ := s.doJSON(context.Background(), http.MethodPost, "/members", map[string]any{
		"first_name": "Ana",
		"last_name":  "Kos",
		"trainer_id": 99999999,
	})
	s.Equal(http.StatusBadRequest, status)
}

func (s *IntegrationTestSuite) TestWorkoutLogs() {
	ctx := context.Background()
	t := s.T()

	trainerID := s.newTrainer(ctx)
	memberID := s.newMember(ctx, trainerID)

	s.create(ctx, fmt.Sprintf("/trainers/%d/workout-logs", trainerID), "log_id", map[string]any{
		"member_id":    memberID,
		"workout_date": "2025-03-01",
		"sessions":     2,
	})
	s.create(ctx, fmt.Sprintf("/members/%d/workout-logs", memberID), "log_id", map[string]any{
		"workout_date": "2025-03-04",
		"notes":        "legs",
	})

	client := apiclient.NewClient(serverEndpoint, s.httpClient)
	logs, err := client.MemberWorkoutLogs(ctx, memberID)
	require.NoError(t, err)
	require.Len(t, logs, 2)

	totals := dashboard.MemberWorkoutTotals(
		[]gym.Member{{MemberID: memberID}},
		map[int64][]gym.WorkoutLog{memberID: logs},
	)
	require.Len(t, totals, 1)
	require.Equal(t, 2, totals[0].Workouts)
	require.Equal(t, 3, totals[0].Sessions)
	require.Equal(t, "2025-03-04", totals[0].LastWorkout.String())
}

func (s *IntegrationTestSuite) TestTrainers_UnassignedMember() {
	ctx := context.Background()

	trainerID := s.newTrainer(ctx)
	otherTrainerID := s.newTrainer(ctx)
	memberID := s.newMember(ctx, otherTrainerID)

	status, _ := s.doJSON(ctx, http.MethodPost, fmt.Sprintf("/trainers/%d/workout-logs", trainerID), map[string]any{
		"member_id":    memberID,
		"workout_date": "2025-03-01",
	})
	s.Equal(http.StatusForbidden, status)

	status, _ = s.doJSON(ctx, http.MethodGet, fmt.Sprintf("/trainers/%d/clients/%d", trainerID, memberID), nil)
	s.Equal(http.StatusNotFound, status)

	status, _ = s.doJSON(ctx, http.MethodGet, fmt.Sprintf("/trainers/%d/clients/%d", otherTrainerID, memberID), nil)
	s.Equal(http.StatusOK, status)
}

func (s *IntegrationTestSuite) TestRevenueReports() {
	ctx := context.Background()
	t := s.T()

	// every run gets its own year so earlier invoices do not leak in
	year := 2000 + gofakeit.Number(0, 99)
	day := func(d int) string { return fmt.Sprintf("%d-04-%02d", year, d) }

	trainerID := s.newTrainer(ctx)
	memberID := s.newMember(ctx, trainerID)
	invoicesPath := fmt.Sprintf("/trainers/%d/invoices", trainerID)

	invoices := []map[string]any{
		{"amount": 100.0, "invoice_date": day(1), "status": "paid", "category": "Group Class"},
		{"amount": 50.0, "invoice_date": day(2), "status": "pending", "category": "Membership"},
		{"amount": 25.0, "invoice_date": day(3), "status": "overdue", "category": "Membership"},
		{"amount": 999.0, "invoice_date": day(3), "status": "voided", "category": "Membership"},
		// outside of the range
		{"amount": 70.0, "invoice_date": day(8), "status": "paid", "category": "Group Class"},
	}
	for _, inv := range invoices {
		inv["member_id"] = memberID
		s.create(ctx, invoicesPath, "invoice_id", inv)
	}

	start, err := gym.ParseDate(day(1))
	require.NoError(t, err)
	dr := gym.DateRange{Start: start, End: start.AddDays(7)}
	client := apiclient.NewClient(serverEndpoint, s.httpClient)

	for i := 0; i < 2; i++ {
		// second round is served from the report cache
		summary, err := client.RevenueSummary(ctx, dr)
		require.NoError(t, err)
		// voided invoices still count as billed
		require.InDelta(t, 1174.0, summary.TotalBilled, 0.001)
		require.InDelta(t, 100.0, summary.PaidRevenue, 0.001)
		require.InDelta(t, 50.0, summary.PendingRevenue, 0.001)
		require.InDelta(t, 25.0, summary.OverdueRevenue, 0.001)
	}

	byTrainer, err := client.RevenueByTrainer(ctx, dr)
	require.NoError(t, err)
	require.Len(t, byTrainer.Trainers, 1)
	require.Equal(t, trainerID, byTrainer.Trainers[0].TrainerID)

	trend, err := client.ClassRevenueTrend(ctx, dr, &trainerID)
	require.NoError(t, err)
	require.Len(t, trend.Data, 1)
	require.Equal(t, day(1), trend.Data[0].RevenueDate.String())
	require.InDelta(t, 100.0, trend.Data[0].TotalRevenue, 0.001)

	byCategory, err := client.RevenueByCategory(ctx, dr)
	require.NoError(t, err)
	totals := dashboard.CategoryTotals(byCategory.Data)
	require.Len(t, totals, 2)
	require.Equal(t, "Membership", totals[0].Category)
	require.InDelta(t, 1074.0, totals[0].TotalRevenue, 0.001)
	require.InDelta(t, 100.0, totals[1].TotalRevenue, 0.001)

	status, _ := s.doJSON(ctx, http.MethodGet, "/managers/revenue/summary?start_date="+day(1), nil)
	require.Equal(t, http.StatusBadRequest, status)
}

func (s *IntegrationTestSuite) TestClassAttendance() {
	ctx := context.Background()
	t := s.T()

	year := 2000 + gofakeit.Number(0, 99)
	trainerID := s.newTrainer(ctx)
	memberA := s.newMember(ctx, trainerID)
	memberB := s.newMember(ctx, trainerID)

	sessionID := s.create(ctx, fmt.Sprintf("/trainers/%d/sessions", trainerID), "session_id", map[string]any{
		"class_name":   "Spin",
		"session_date": fmt.Sprintf("%d-05-10T18:30:00Z", year),
		"cost":         12.5,
	})

	attendancePath := fmt.Sprintf("/sessions/%d/attendance", sessionID)
	s.create(ctx, attendancePath, "attendance_id", map[string]any{"member_id": memberA, "status": "attended"})
	s.create(ctx, attendancePath, "attendance_id", map[string]any{"member_id": memberB, "status": "absent"})

	status, _ := s.doJSON(ctx, http.MethodPost, attendancePath, map[string]any{"member_id": memberA, "status": "late"})
	require.Equal(t, http.StatusBadRequest, status)

	from, err := gym.ParseDate(fmt.Sprintf("%d-05-10", year))
	require.NoError(t, err)
	client := apiclient.NewClient(serverEndpoint, s.httpClient)

	records, err := client.ClassAttendance(ctx, &trainerID, &from, &from)
	require.NoError(t, err)
	require.Len(t, records, 2)

	summary := dashboard.AttendanceSummary(records)
	require.Len(t, summary, 1)
	require.Equal(t, sessionID, summary[0].SessionID)
	require.Equal(t, 1, summary[0].Attendees)

	status, _ = s.doJSON(ctx, http.MethodDelete, fmt.Sprintf("/sessions/%d", sessionID), nil)
	require.Equal(t, http.StatusOK, status)

	records, err = client.ClassAttendance(ctx, &trainerID, &from, &from)
	require.NoError(t, err)
	require.Empty(t, records)
}

func (s *IntegrationTestSuite) TestHealthAndUnknownRoute() {
	ctx := context.Background()

	status, resp := s.doJSON(ctx, http.MethodGet, "/health", nil)
	s.Equal(http.StatusOK, status)
	s.Equal("ok", resp["status"])

	for _, path := range []string{"/no-such-thing", "/no/such/thing"} {
		status, resp = s.doJSON(ctx, http.MethodGet, path, nil)
		s.Equal(http.StatusNotFound, status, path)
		s.Equal("Not found", resp["error"], path)
	}
}
