package nutritionists

import (
	"context"
	"fmt"

	"go.opentelemetry.io/otel/attribute"

	"github.com/2beens/gymmanager/internal/db"
	"github.com/2beens/gymmanager/internal/gym"
	"github.com/2beens/gymmanager/internal/telemetry/tracing"
)

const (
	nutritionistColumns = "nutritionist_id, first_name, last_name"
	mealPlanColumns     = "plan_id, member_id, calorie_goals, macro_goals, plan_date"
	foodLogColumns      = "log_id, member_id, food, log_timestamp, portion_size, calories, proteins, carbs, fats"
)

type Repo struct {
	db *db.DB
}

func NewRepo(db *db.DB) *Repo {
	return &Repo{
		db: db,
	}
}

func scanNutritionist(s db.Scanner) (gym.Nutritionist, error) {
	var n gym.Nutritionist
	err := s.Scan(&n.NutritionistID, &n.FirstName, &n.LastName)
	return n, err
}

func scanMealPlan(s db.Scanner) (gym.MealPlan, error) {
	var p gym.MealPlan
	err := s.Scan(&p.PlanID, &p.MemberID, &p.CalorieGoals, &p.MacroGoals, &p.PlanDate)
	return p, err
}

func scanFoodLog(s db.Scanner) (gym.FoodLog, error) {
	var l gym.FoodLog
	err := s.Scan(&l.LogID, &l.MemberID, &l.Food, &l.LogTimestamp, &l.PortionSize, &l.Calories, &l.Proteins, &l.Carbs, &l.Fats)
	return l, err
}

func (r *Repo) List(ctx context.Context) (_ []gym.Nutritionist, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.nutritionists.list")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	rows, err := r.db.Query(ctx, "SELECT "+nutritionistColumns+" FROM nutritionist ORDER BY nutritionist_id")
	if err != nil {
		return nil, fmt.Errorf("list nutritionists: %w", err)
	}
	return db.CollectRows(rows, scanNutritionist)
}

func (r *Repo) Get(ctx context.Context, id int64) (_ *gym.Nutritionist, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.nutritionists.get")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int64("nutritionist.id", id))

	n, err := db.ScanOne(
		r.db.QueryRow(ctx, "SELECT "+nutritionistColumns+" FROM nutritionist WHERE nutritionist_id = ?", id),
		scanNutritionist,
	)
	if err != nil {
		return nil, fmt.Errorf("get nutritionist %d: %w", id, err)
	}
	return &n, nil
}

func (r *Repo) Add(ctx context.Context, n gym.Nutritionist) (_ int64, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.nutritionists.add")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	id, err := r.db.InsertID(
		ctx,
		"INSERT INTO nutritionist (first_name, last_name) VALUES (?, ?)",
		"nutritionist_id",
		n.FirstName, n.LastName,
	)
	if err != nil {
		return 0, fmt.Errorf("add nutritionist: %w", err)
	}
	return id, nil
}

func (r *Repo) Update(ctx context.Context, id int64, changes *db.Changes) error {
	return r.update(ctx, "repo.nutritionists.update", "nutritionist", "nutritionist_id", id, changes)
}

func (r *Repo) MealPlans(ctx context.Context, memberID *int64) (_ []gym.MealPlan, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.nutritionists.mealplans")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	var filter db.Filter
	if memberID != nil {
		filter.Add("member_id = ?", *memberID)
	}

	rows, err := r.db.Query(
		ctx,
		"SELECT "+mealPlanColumns+" FROM meal_plan"+filter.Clause()+" ORDER BY plan_date DESC, plan_id DESC",
		filter.Args()...,
	)
	if err != nil {
		return nil, fmt.Errorf("list meal plans: %w", err)
	}
	return db.CollectRows(rows, scanMealPlan)
}

func (r *Repo) MealPlan(ctx context.Context, id int64) (_ *gym.MealPlan, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.nutritionists.mealplans.get")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int64("mealplan.id", id))

	p, err := db.ScanOne(
		r.db.QueryRow(ctx, "SELECT "+mealPlanColumns+" FROM meal_plan WHERE plan_id = ?", id),
		scanMealPlan,
	)
	if err != nil {
		return nil, fmt.Errorf("get meal plan %d: %w", id, err)
	}
	return &p, nil
}

func (r *Repo) AddMealPlan(ctx context.Context, p gym.MealPlan) (_ int64, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.nutritionists.mealplans.add")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int64("member.id", p.MemberID))

	id, err := r.db.InsertID(
		ctx,
		"INSERT INTO meal_plan (member_id, calorie_goals, macro_goals, plan_date) VALUES (?, ?, ?, ?)",
		"plan_id",
		p.MemberID, p.CalorieGoals, p.MacroGoals, p.PlanDate,
	)
	if err != nil {
		return 0, fmt.Errorf("add meal plan: %w", err)
	}
	return id, nil
}

func (r *Repo) UpdateMealPlan(ctx context.Context, id int64, changes *db.Changes) error {
	return r.update(ctx, "repo.nutritionists.mealplans.update", "meal_plan", "plan_id", id, changes)
}

func (r *Repo) DeleteMealPlan(ctx context.Context, id int64) error {
	return r.delete(ctx, "repo.nutritionists.mealplans.delete", "meal_plan", "plan_id", id)
}

func (r *Repo) FoodLogs(ctx context.Context, memberID *int64) (_ []gym.FoodLog, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.nutritionists.foodlogs")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	var filter db.Filter
	if memberID != nil {
		filter.Add("member_id = ?", *memberID)
	}

	rows, err := r.db.Query(
		ctx,
		"SELECT "+foodLogColumns+" FROM food_log"+filter.Clause()+" ORDER BY log_timestamp DESC, log_id DESC",
		filter.Args()...,
	)
	if err != nil {
		return nil, fmt.Errorf("list food logs: %w", err)
	}
	return db.CollectRows(rows, scanFoodLog)
}

func (r *Repo) AddFoodLog(ctx context.Context, l gym.FoodLog) (_ int64, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.nutritionists.foodlogs.add")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int64("member.id", l.MemberID))

	id, err := r.db.InsertID(
		ctx,
		`INSERT INTO food_log (member_id, food, log_timestamp, portion_size, calories, proteins, carbs, fats)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		"log_id",
		l.MemberID, l.Food, l.LogTimestamp, l.PortionSize, l.Calories, l.Proteins, l.Carbs, l.Fats,
	)
	if err != nil {
		return 0, fmt.Errorf("add food log: %w", err)
	}
	return id, nil
}

func (r *Repo) UpdateFoodLog(ctx context.Context, id int64, changes *db.Changes) error {
	return r.update(ctx, "repo.nutritionists.foodlogs.update", "food_log", "log_id", id, changes)
}

func (r *Repo) DeleteFoodLog(ctx context.Context, id int64) error {
	return r.delete(ctx, "repo.nutritionists.foodlogs.delete", "food_log", "log_id", id)
}

func (r *Repo) update(ctx context.Context, spanName, table, idColumn string, id int64, changes *db.Changes) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, spanName)
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int64("id", id))

	query, args := db.UpdateStatement(table, changes, idColumn+" = ?", id)
	res, err := r.db.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("update %s %d: %w", table, id, err)
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
