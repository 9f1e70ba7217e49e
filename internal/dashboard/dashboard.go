// Package dashboard reshapes API reports into the tables gymctl prints.
package dashboard

import (
	"fmt"
	"sort"
	"strings"

	"github.com/2beens/gymmanager/internal/gym"
)

// SessionAttendance counts unique attending members of one class session.
type SessionAttendance struct {
	SessionID     int64
	ClassName     string
	ClassDatetime gym.Timestamp
	Attendees     int
}

// AttendanceSummary keeps attended rows only and counts unique members per
// session, ordered by class time.
func AttendanceSummary(records []gym.ClassAttendanceRecord) []SessionAttendance {
	type sessionKey struct {
		sessionID int64
		className string
		unix      int64
	}

	sessions := make(map[sessionKey]*SessionAttendance)
	seen := make(map[sessionKey]map[int64]bool)
	for _, rec := range records {
		if !strings.EqualFold(rec.Status, gym.AttendanceStatus.Attended) {
			continue
		}
		key := sessionKey{rec.SessionID, rec.ClassName, rec.ClassDatetime.Unix()}
		if _, ok := sessions[key]; !ok {
			sessions[key] = &SessionAttendance{
				SessionID:     rec.SessionID,
				ClassName:     rec.ClassName,
				ClassDatetime: rec.ClassDatetime,
			}
			seen[key] = make(map[int64]bool)
		}
		if !seen[key][rec.MemberID] {
			seen[key][rec.MemberID] = true
			sessions[key].Attendees++
		}
	}

	summary := make([]SessionAttendance, 0, len(sessions))
	for _, s := range sessions {
		summary = append(summary, *s)
	}
	sort.Slice(summary, func(i, j int) bool {
		if !summary[i].ClassDatetime.Equal(summary[j].ClassDatetime.Time) {
			return summary[i].ClassDatetime.Before(summary[j].ClassDatetime.Time)
		}
		return summary[i].SessionID < summary[j].SessionID
	})
	return summary
}

// CumulativePoint is the running revenue of a category up to Date.
type CumulativePoint struct {
	Category   string
	Date       gym.Date
	Revenue    float64
	Cumulative float64
}

// CumulativeCategoryRevenue fills every day between the first and last revenue
// date with zero for each category, then sums total revenue per category.
// Points are ordered by category, then date.
func CumulativeCategoryRevenue(points []gym.CategoryRevenuePoint) []CumulativePoint {
	if len(points) == 0 {
		return []CumulativePoint{}
	}

	first, last := points[0].RevenueDate, points[0].RevenueDate
	byDay := make(map[string]map[string]float64)
	for _, p := range points {
		if p.RevenueDate.Before(first.Time) {
			first = p.RevenueDate
		}
		if p.RevenueDate.After(last.Time) {
			last = p.RevenueDate
		}
		if byDay[p.Category] == nil {
			byDay[p.Category] = make(map[string]float64)
		}
		byDay[p.Category][p.RevenueDate.String()] += p.TotalRevenue
	}

	categories := make([]string, 0, len(byDay))
	for c := range byDay {
		categories = append(categories, c)
	}
	sort.Strings(categories)

	var result []CumulativePoint
	for _, category := range categories {
		var running float64
		for day := first; !day.After(last.Time); day = day.AddDays(1) {
			revenue := byDay[category][day.String()]
			running += revenue
			result = append(result, CumulativePoint{
				Category:   category,
				Date:       day,
				Revenue:    revenue,
				Cumulative: running,
			})
		}
	}
	return result
}

type CategoryTotal struct {
	Category     string
	TotalRevenue float64
	PaidRevenue  float64
}

// CategoryTotals sums each category over the whole range, highest total first.
func CategoryTotals(points []gym.CategoryRevenuePoint) []CategoryTotal {
	totals := make(map[string]*CategoryTotal)
	for _, p := range points {
		t, ok := totals[p.Category]
		if !ok {
			t = &CategoryTotal{Category: p.Category}
			totals[p.Category] = t
		}
		t.TotalRevenue += p.TotalRevenue
		t.PaidRevenue += p.PaidRevenue
	}

	result := make([]CategoryTotal, 0, len(totals))
	for _, t := range totals {
		result = append(result, *t)
	}
	sort.Slice(result, func(i, j int) bool {
		if result[i].TotalRevenue != result[j].TotalRevenue {
			return result[i].TotalRevenue > result[j].TotalRevenue
		}
		return result[i].Category < result[j].Category
	})
	return result
}

// TrainerDisplayName renders "First Last (ID n)".
func TrainerDisplayName(firstName, lastName string, trainerID int64) string {
	return fmt.Sprintf("%s %s (ID %d)", firstName, lastName, trainerID)
}

type MemberWorkoutTotal struct {
	MemberID    int64
	Name        string
	Workouts    int
	Sessions    int
	LastWorkout *gym.Date
}

// MemberWorkoutTotals sums workout logs per member. A log without a session
// count counts as one session. Members keep the given order.
func MemberWorkoutTotals(members []gym.Member, logs map[int64][]gym.WorkoutLog) []MemberWorkoutTotal {
	totals := make([]MemberWorkoutTotal, 0, len(members))
	for _, m := range members {
		total := MemberWorkoutTotal{
			MemberID: m.MemberID,
			Name:     strings.TrimSpace(m.FirstName + " " + m.LastName),
		}
		for _, l := range logs[m.MemberID] {
			total.Workouts++
			if l.Sessions > 0 {
				total.Sessions += l.Sessions
			} else {
				total.Sessions++
			}
			if total.LastWorkout == nil || l.WorkoutDate.After(total.LastWorkout.Time) {
				d := l.WorkoutDate
				total.LastWorkout = &d
			}
		}
		totals = append(totals, total)
	}
	return totals
}
