package nutritionists

import (
	"context"
	"net/http"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"

	"github.com/2beens/gymmanager/internal/api"
	"github.com/2beens/gymmanager/internal/db"
	"github.com/2beens/gymmanager/internal/gym"
	"github.com/2beens/gymmanager/internal/telemetry/metrics"
	"github.com/2beens/gymmanager/internal/telemetry/tracing"
	"github.com/2beens/gymmanager/pkg"
)

//go:generate mockgen -source=$GOFILE -destination=nutritionists_mocks_test.go -package=nutritionists_test

type nutritionistsRepo interface {
	List(ctx context.Context) ([]gym.Nutritionist, error)
	Get(ctx context.Context, id int64) (*gym.Nutritionist, error)
	Add(ctx context.Context, n gym.Nutritionist) (int64, error)
	Update(ctx context.Context, id int64, changes *db.Changes) error
	MealPlans(ctx context.Context, memberID *int64) ([]gym.MealPlan, error)
	MealPlan(ctx context.Context, id int64) (*gym.MealPlan, error)
	AddMealPlan(ctx context.Context, p gym.MealPlan) (int64, error)
	UpdateMealPlan(ctx context.Context, id int64, changes *db.Changes) error
	DeleteMealPlan(ctx context.Context, id int64) error
	FoodLogs(ctx context.Context, memberID *int64) ([]gym.FoodLog, error)
	AddFoodLog(ctx context.Context, l gym.FoodLog) (int64, error)
	UpdateFoodLog(ctx context.Context, id int64, changes *db.Changes) error
	DeleteFoodLog(ctx context.Context, id int64) error
}

const (
	msgNutritionistNotFound = "Nutritionist not found"
	msgMealPlanNotFound     = "Meal plan not found"
	msgFoodLogNotFound      = "Food log not found"
	msgMemberNotFound       = "Member not found"
)

type nutritionistRequest struct {
	FirstName *string `json:"first_name"`
	LastName  *string `json:"last_name"`
}

type mealPlanRequest struct {
	MemberID     *int64    `json:"member_id"`
	CalorieGoals *int      `json:"calorie_goals"`
	MacroGoals   *string   `json:"macro_goals"`
	PlanDate     *gym.Date `json:"plan_date"`
}

type foodLogRequest struct {
	MemberID     *int64         `json:"member_id"`
	Food         *string        `json:"food"`
	LogTimestamp *gym.Timestamp `json:"log_timestamp"`
	PortionSize  *string        `json:"portion_size"`
	Calories     *float64       `json:"calories"`
	Proteins     *float64       `json:"proteins"`
	Carbs        *float64       `json:"carbs"`
	Fats         *float64       `json:"fats"`
}

type Handler struct {
	repo    nutritionistsRepo
	errs    api.Errors
	metrics *metrics.Manager
}

func NewHandler(repo nutritionistsRepo, errs api.Errors, metricsManager *metrics.Manager) *Handler {
	return &Handler{
		repo:    repo,
		errs:    errs,
		metrics: metricsManager,
	}
}

func (handler *Handler) SetupRoutes(router *mux.Router) {
	router.HandleFunc("/nutritionists", handler.handleList).Methods("GET", "OPTIONS").Name("list-nutritionists")
	router.HandleFunc("/nutritionists", handler.handleAdd).Methods("POST", "OPTIONS").Name("new-nutritionist")
	router.HandleFunc("/nutritionists/{id}", handler.handleGet).Methods("GET", "OPTIONS").Name("get-nutritionist")
	router.HandleFunc("/nutritionists/{id}", handler.handleUpdate).Methods("PUT", "OPTIONS").Name("update-nutritionist")

	router.HandleFunc("/meal-plans", handler.handleMealPlans).Methods("GET", "OPTIONS").Name("list-meal-plans")
	router.HandleFunc("/meal-plans", handler.handleAddMealPlan).Methods("POST", "OPTIONS").Name("new-meal-plan")
	router.HandleFunc("/meal-plans/{id}", handler.handleMealPlan).Methods("GET", "OPTIONS").Name("get-meal-plan")
	router.HandleFunc("/meal-plans/{id}", handler.handleUpdateMealPlan).Methods("PUT", "OPTIONS").Name("update-meal-plan")
	router.HandleFunc("/meal-plans/{id}", handler.handleDeleteMealPlan).Methods("DELETE", "OPTIONS").Name("delete-meal-plan")

	router.HandleFunc("/food-logs", handler.handleFoodLogs).Methods("GET", "OPTIONS").Name("list-food-logs")
	router.HandleFunc("/food-logs", handler.handleAddFoodLog).Methods("POST", "OPTIONS").Name("new-food-log")
	router.HandleFunc("/food-logs/{id}", handler.handleUpdateFoodLog).Methods("PUT", "OPTIONS").Name("update-food-log")
	router.HandleFunc("/food-logs/{id}", handler.handleDeleteFoodLog).Methods("DELETE", "OPTIONS").Name("delete-food-log")
}

func (handler *Handler) handleList(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.nutritionists.list")
	defer span.End()

	list, err := handler.repo.List(ctx)
	if err != nil {
		handler.errs.Write(w, err, msgNutritionistNotFound)
		return
	}

	log.Tracef("retrieved %d nutritionists", len(list))
	pkg.WriteJSONResponse(w, http.StatusOK, list)
}

func (handler *Handler) handleGet(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.nutritionists.get")
	defer span.End()

	id, err := api.PathID(r, "id")
	if err != nil {
		handler.errs.BadRequest(w, err.Error())
		return
	}

	n, err := handler.repo.Get(ctx, id)
	if err != nil {
		handler.errs.Write(w, err, msgNutritionistNotFound)
		return
	}

	pkg.WriteJSONResponse(w, http.StatusOK, n)
}

func (handler *Handler) handleAdd(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.nutritionists.add")
	defer span.End()

	var req nutritionistRequest
	body, err := api.DecodeBody(r, &req)
	if err != nil {
		handler.errs.BadRequest(w, err.Error())
		return
	}
	if missing := body.Missing("first_name", "last_name"); missing != "" {
		handler.errs.MissingField(w, missing)
		return
	}

	id, err := handler.repo.Add(ctx, gym.Nutritionist{
		FirstName: *req.FirstName,
		LastName:  *req.LastName,
	})
	if err != nil {
		handler.errs.Write(w, err, msgNutritionistNotFound)
		return
	}

	handler.metrics.EntityCreated("nutritionist")
	pkg.WriteJSONResponse(w, http.StatusCreated, gym.Created("Nutritionist created successfully", "nutritionist_id", id))
}

func (handler *Handler) handleUpdate(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.nutritionists.update")
	defer span.End()

	id, err := api.PathID(r, "id")
	if err != nil {
		handler.errs.BadRequest(w, err.Error())
		return
	}

	var req nutritionistRequest
	body, err := api.DecodeBody(r, &req)
	if err != nil {
		handler.errs.BadRequest(w, err.Error())
		return
	}

	changes := (&db.Changes{}).
		SetIf(body.Has("first_name"), "first_name", req.FirstName).
		SetIf(body.Has("last_name"), "last_name", req.LastName)
	if changes.Empty() {
		handler.errs.BadRequest(w, api.MsgNoValidFields)
		return
	}

	if err := handler.repo.Update(ctx, id, changes); err != nil {
		handler.errs.Write(w, err, msgNutritionistNotFound)
		return
	}

	pkg.WriteJSONResponse(w, http.StatusOK, gym.MessageResponse{Message: "Nutritionist updated successfully"})
}

func (handler *Handler) handleMealPlans(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.nutritionists.mealplans")
	defer span.End()

	memberID, err := api.QueryInt(r, "member_id")
	if err != nil {
		handler.errs.BadRequest(w, err.Error())
		return
	}

	plans, err := handler.repo.MealPlans(ctx, memberID)
	if err != nil {
		handler.errs.Write(w, err, msgMemberNotFound)
		return
	}

	pkg.WriteJSONResponse(w, http.StatusOK, plans)
}

func (handler *Handler) handleMealPlan(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.nutritionists.mealplans.get")
	defer span.End()

	id, err := api.PathID(r, "id")
	if err != nil {
		handler.errs.BadRequest(w, err.Error())
		return
	}

	plan, err := handler.repo.MealPlan(ctx, id)
	if err != nil {
		handler.errs.Write(w, err, msgMealPlanNotFound)
		return
	}

	pkg.WriteJSONResponse(w, http.StatusOK, plan)
}

func (handler *Handler) handleAddMealPlan(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.nutritionists.mealplans.add")
	defer span.End()

	var req mealPlanRequest
	body, err := api.DecodeBody(r, &req)
	if err != nil {
		handler.errs.BadRequest(w, err.Error())
		return
	}
	if missing := body.Missing("member_id", "calorie_goals", "plan_date"); missing != "" {
		handler.errs.MissingField(w, missing)
		return
	}

	id, err := handler.repo.AddMealPlan(ctx, gym.MealPlan{
		MemberID:     *req.MemberID,
		CalorieGoals: *req.CalorieGoals,
		MacroGoals:   req.MacroGoals,
		PlanDate:     *req.PlanDate,
	})
	if err != nil {
		handler.errs.Write(w, err, msgMemberNotFound)
		return
	}

	handler.metrics.EntityCreated("meal_plan")
	pkg.WriteJSONResponse(w, http.StatusCreated, gym.Created("Meal plan created successfully", "plan_id", id))
}

func (handler *Handler) handleUpdateMealPlan(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.nutritionists.mealplans.update")
	defer span.End()

	id, err := api.PathID(r, "id")
	if err != nil {
		handler.errs.BadRequest(w, err.Error())
		return
	}

	var req mealPlanRequest
	body, err := api.DecodeBody(r, &req)
	if err != nil {
		handler.errs.BadRequest(w, err.Error())
		return
	}

	changes := (&db.Changes{}).
		SetIf(body.Has("calorie_goals"), "calorie_goals", req.CalorieGoals).
		SetIf(body.Has("macro_goals"), "macro_goals", req.MacroGoals).
		SetIf(body.Has("plan_date"), "plan_date", req.PlanDate)
	if changes.Empty() {
		handler.errs.BadRequest(w, api.MsgNoValidFields)
		return
	}

	if err := handler.repo.UpdateMealPlan(ctx, id, changes); err != nil {
		handler.errs.Write(w, err, msgMealPlanNotFound)
		return
	}

	pkg.WriteJSONResponse(w, http.StatusOK, gym.MessageResponse{Message: "Meal plan updated successfully"})
}

func (handler *Handler) handleDeleteMealPlan(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.nutritionists.mealplans.delete")
	defer span.End()

	id, err := api.PathID(r, "id")
	if err != nil {
		handler.errs.BadRequest(w, err.Error())
		return
	}

	if err := handler.repo.DeleteMealPlan(ctx, id); err != nil {
		handler.errs.Write(w, err, msgMealPlanNotFound)
		return
	}

	pkg.WriteJSONResponse(w, http.StatusOK, gym.MessageResponse{Message: "Meal plan deleted"})
}

func (handler *Handler) handleFoodLogs(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.nutritionists.foodlogs")
	defer span.End()

	memberID, err := api.QueryInt(r, "member_id")
	if err != nil {
		handler.errs.BadRequest(w, err.Error())
		return
	}

	logs, err := handler.repo.FoodLogs(ctx, memberID)
	if err != nil {
		handler.errs.Write(w, err, msgMemberNotFound)
		return
	}

	pkg.WriteJSONResponse(w, http.StatusOK, logs)
}

func (handler *Handler) handleAddFoodLog(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.nutritionists.foodlogs.add")
	defer span.End()

	var req foodLogRequest
	body, err := api.DecodeBody(r, &req)
	if err != nil {
		handler.errs.BadRequest(w, err.Error())
		return
	}
	if missing := body.Missing("member_id", "food", "log_timestamp"); missing != "" {
		handler.errs.MissingField(w, missing)
		return
	}

	id, err := handler.repo.AddFoodLog(ctx, gym.FoodLog{
		MemberID:     *req.MemberID,
		Food:         *req.Food,
		LogTimestamp: *req.LogTimestamp,
		PortionSize:  req.PortionSize,
		Calories:     req.Calories,
		Proteins:     req.Proteins,
		Carbs:        req.Carbs,
		Fats:         req.Fats,
	})
	if err != nil {
		handler.errs.Write(w, err, msgMemberNotFound)
		return
	}

	handler.metrics.EntityCreated("food_log")
	pkg.WriteJSONResponse(w, http.StatusCreated, gym.Created("Food log created successfully", "log_id", id))
}

func (handler *Handler) handleUpdateFoodLog(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.nutritionists.foodlogs.update")
	defer span.End()

	id, err := api.PathID(r, "id")
	if err != nil {
		handler.errs.BadRequest(w, err.Error())
		return
	}

	var req foodLogRequest
	body, err := api.DecodeBody(r, &req)
	if err != nil {
		handler.errs.BadRequest(w, err.Error())
		return
	}

	changes := (&db.Changes{}).
		SetIf(body.Has("food"), "food", req.Food).
		SetIf(body.Has("portion_size"), "portion_size", req.PortionSize).
		SetIf(body.Has("calories"), "calories", req.Calories).
		SetIf(body.Has("proteins"), "proteins", req.Proteins).
		SetIf(body.Has("carbs"), "carbs", req.Carbs).
		SetIf(body.Has("fats"), "fats", req.Fats)
	if changes.Empty() {
		handler.errs.BadRequest(w, api.MsgNoValidFields)
		return
	}

	if err := handler.repo.UpdateFoodLog(ctx, id, changes); err != nil {
		handler.errs.Write(w, err, msgFoodLogNotFound)
		return
	}

	pkg.WriteJSONResponse(w, http.StatusOK, gym.MessageResponse{Message: "Food log updated successfully"})
}

func (handler *Handler) handleDeleteFoodLog(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.nutritionists.foodlogs.delete")
	defer span.End()

	id, err := api.PathID(r, "id")
	if err != nil {
		handler.errs.BadRequest(w, err.Error())
		return
	}

	if err := handler.repo.DeleteFoodLog(ctx, id); err != nil {
		handler.errs.Write(w, err, msgFoodLogNotFound)
		return
	}

	pkg.WriteJSONResponse(w, http.StatusOK, gym.MessageResponse{Message: "Food log deleted"})
}
