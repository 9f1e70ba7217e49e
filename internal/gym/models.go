package gym

type Member struct {
	MemberID       int64   `json:"member_id"`
	FirstName      string  `json:"first_name"`
	LastName       string  `json:"last_name"`
	Email          *string `json:"email"`
	Status         string  `json:"status"`
	TrainerID      *int64  `json:"trainer_id"`
	NutritionistID *int64  `json:"nutritionist_id"`
}

// Client is a member as seen in a trainer's client list.
type Client struct {
	MemberID  int64   `json:"member_id"`
	FirstName string  `json:"first_name"`
	LastName  string  `json:"last_name"`
	Email     *string `json:"email"`
	Status    string  `json:"status"`
}

type ClientProfile struct {
	Member
	TrainerFirstName *string `json:"trainer_first_name"`
	TrainerLastName  *string `json:"trainer_last_name"`
}

type Trainer struct {
	TrainerID      int64   `json:"trainer_id"`
	FirstName      string  `json:"first_name"`
	LastName       string  `json:"last_name"`
	Specialization *string `json:"specialization"`
}

type Nutritionist struct {
	NutritionistID int64  `json:"nutritionist_id"`
	FirstName      string `json:"first_name"`
	LastName       string `json:"last_name"`
}

type Goal struct {
	GoalID       int64    `json:"goal_id"`
	MemberID     int64    `json:"member_id"`
	GoalType     *string  `json:"goal_type"`
	TargetValue  *float64 `json:"target_value"`
	CurrentValue *float64 `json:"current_value"`
	Deadline     *Date    `json:"deadline"`
}

type WorkoutLog struct {
	LogID       int64   `json:"log_id"`
	MemberID    int64   `json:"member_id"`
	TrainerID   *int64  `json:"trainer_id"`
	WorkoutDate Date    `json:"workout_date"`
	Notes       *string `json:"notes"`
	Sessions    int     `json:"sessions"`
}

// ClientWorkoutLog carries the member name for trainer listings.
type ClientWorkoutLog struct {
	WorkoutLog
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
}

type WorkoutPlan struct {
	PlanID   int64   `json:"plan_id"`
	MemberID int64   `json:"member_id"`
	PlanName *string `json:"plan_name"`
	Goals    string  `json:"goals"`
	PlanDate Date    `json:"plan_date"`
	Status   string  `json:"status"`
}

type ClientWorkoutPlan struct {
	WorkoutPlan
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
}

type Progress struct {
	ProgressID        int64    `json:"progress_id"`
	MemberID          int64    `json:"member_id"`
	ProgressDate      Date     `json:"progress_date"`
	Weight            *float64 `json:"weight"`
	BodyFatPercentage *float64 `json:"body_fat_percentage"`
	Measurements      *string  `json:"measurements"`
	Photos            *string  `json:"photos"`
}

type MealPlan struct {
	PlanID       int64   `json:"plan_id"`
	MemberID     int64   `json:"member_id"`
	CalorieGoals int     `json:"calorie_goals"`
	MacroGoals   *string `json:"macro_goals"`
	PlanDate     Date    `json:"plan_date"`
}

type FoodLog struct {
	LogID        int64     `json:"log_id"`
	MemberID     int64     `json:"member_id"`
	Food         string    `json:"food"`
	LogTimestamp Timestamp `json:"log_timestamp"`
	PortionSize  *string   `json:"portion_size"`
	Calories     *float64  `json:"calories"`
	Proteins     *float64  `json:"proteins"`
	Carbs        *float64  `json:"carbs"`
	Fats         *float64  `json:"fats"`
}

type Message struct {
	MessageID        int64     `json:"message_id"`
	MemberID         int64     `json:"member_id"`
	TrainerID        *int64    `json:"trainer_id"`
	Content          string    `json:"content"`
	MessageTimestamp Timestamp `json:"message_timestamp"`
	ReadStatus       string    `json:"read_status"`
}

type ClientMessage struct {
	Message
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
}

type Invoice struct {
	InvoiceID   int64   `json:"invoice_id"`
	MemberID    int64   `json:"member_id"`
	TrainerID   int64   `json:"trainer_id"`
	Amount      float64 `json:"amount"`
	InvoiceDate Date    `json:"invoice_date"`
	Status      string  `json:"status"`
	Category    string  `json:"category"`
}

type ClientInvoice struct {
	Invoice
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
}

type ClassSession struct {
	SessionID   int64     `json:"session_id"`
	TrainerID   int64     `json:"trainer_id"`
	ClassName   string    `json:"class_name"`
	SessionDate Timestamp `json:"session_date"`
	Cost        *float64  `json:"cost"`
}

type SessionWithEnrollment struct {
	ClassSession
	EnrolledCount int `json:"enrolled_count"`
}

type Attendance struct {
	AttendanceID int64  `json:"attendance_id"`
	MemberID     int64  `json:"member_id"`
	SessionID    int64  `json:"session_id"`
	Status       string `json:"status"`
}

// CreatedResponse is returned by every POST, e.g. {"message": "Member created", "member_id": 7}.
type CreatedResponse map[string]any

func Created(message, idKey string, id int64) CreatedResponse {
	return CreatedResponse{
		"message": message,
		idKey:     id,
	}
}

type MessageResponse struct {
	Message string `json:"message"`
}
