package gym

// DateRange is half open: Start is included, End is not.
type DateRange struct {
	Start Date
	End   Date
}

type RevenueSummary struct {
	TotalBilled    float64 `json:"total_billed"`
	PaidRevenue    float64 `json:"paid_revenue"`
	PendingRevenue float64 `json:"pending_revenue"`
	OverdueRevenue float64 `json:"overdue_revenue"`
	StartDate      Date    `json:"start_date"`
	EndDate        Date    `json:"end_date"`
}

type TrainerRevenue struct {
	TrainerID   int64   `json:"trainer_id"`
	FirstName   string  `json:"first_name"`
	LastName    string  `json:"last_name"`
	TotalBilled float64 `json:"total_billed"`
	PaidRevenue float64 `json:"paid_revenue"`
}

type RevenueByTrainer struct {
	StartDate Date             `json:"start_date"`
	EndDate   Date             `json:"end_date"`
	Trainers  []TrainerRevenue `json:"trainers"`
}

type ClassRevenuePoint struct {
	TrainerID    int64   `json:"trainer_id"`
	FirstName    string  `json:"first_name"`
	LastName     string  `json:"last_name"`
	RevenueDate  Date    `json:"revenue_date"`
	TotalRevenue float64 `json:"total_revenue"`
}

type ClassRevenueTrend struct {
	StartDate Date                `json:"start_date"`
	EndDate   Date                `json:"end_date"`
	TrainerID *int64              `json:"trainer_id"`
	Data      []ClassRevenuePoint `json:"data"`
}

type CategoryRevenuePoint struct {
	Category     string  `json:"category"`
	RevenueDate  Date    `json:"revenue_date"`
	TotalRevenue float64 `json:"total_revenue"`
	PaidRevenue  float64 `json:"paid_revenue"`
}

type CategoryRevenue struct {
	StartDate Date                   `json:"start_date"`
	EndDate   Date                   `json:"end_date"`
	Data      []CategoryRevenuePoint `json:"data"`
}

// ClassAttendanceRecord is an attendance row with its session details.
type ClassAttendanceRecord struct {
	AttendanceID  int64     `json:"attendance_id"`
	MemberID      int64     `json:"member_id"`
	SessionID     int64     `json:"session_id"`
	Status        string    `json:"status"`
	ClassName     string    `json:"class_name"`
	ClassDatetime Timestamp `json:"class_datetime"`
	TrainerID     int64     `json:"trainer_id"`
}
