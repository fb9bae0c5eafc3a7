package services

import (
	"context"
	"fmt"
	"time"

	"fittrack/logger"
	"fittrack/models"
	"fittrack/storage"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type MealInput struct {
	Name     string
	Calories float64
	Protein  float64
	Carbs    float64
	Fats     float64
	MealType models.MealType
	Date     *time.Time
}

func (in MealInput) validate() error {
	v := &ValidationError{}
	if in.Name == "" {
		v.Add("name", "Meal name is required")
	}
	if !in.MealType.Valid() {
		v.Add("mealType", "Meal type is required")
	}
	return v.OrNil()
}

type MealService struct {
	meals  storage.MealStore
	users  storage.UserStore
	alerts *AlertService
	now    func() time.Time
}

// NewMealService wires the meal store. users and alerts may be nil, in which
// case no calorie budget alerts are raised.
func NewMealService(meals storage.MealStore, users storage.UserStore, alerts *AlertService) *MealService {
	return &MealService{meals: meals, users: users, alerts: alerts, now: time.Now}
}

func (s *MealService) Create(ctx context.Context, ownerID uuid.UUID, in MealInput) (*models.Meal, error) {
	if err := in.validate(); err != nil {
		return nil, err
	}
	meal := &models.Meal{
		UserID:   ownerID,
		Name:     in.Name,
		Calories: in.Calories,
		Protein:  in.Protein,
		Carbs:    in.Carbs,
		Fats:     in.Fats,
		MealType: in.MealType,
		Date:     s.now(),
	}
	if in.Date != nil {
		meal.Date = *in.Date
	}
	if err := s.meals.CreateMeal(ctx, meal); err != nil {
		return nil, fmt.Errorf("create meal: %w", err)
	}
	s.checkCalorieBudget(ctx, ownerID, meal)
	return meal, nil
}

// checkCalorieBudget warns the user when meal pushes today's intake above
// their daily calorie goal. Meals already over budget, or dated before today,
// raise nothing. Failures are logged and never reach the caller.
func (s *MealService) checkCalorieBudget(ctx context.Context, ownerID uuid.UUID, meal *models.Meal) {
	if s.alerts == nil || s.users == nil {
		return
	}
	if meal.Date.Before(dayStart(s.now())) {
		return
	}
	user, err := s.users.GetUser(ctx, ownerID)
	if err != nil {
		logger.Warn("calorie check: load user", zap.String("userID", ownerID.String()), zap.Error(err))
		return
	}
	goal := user.DailyCalorieGoal
	if goal <= 0 {
		return
	}
	sum, err := s.Summary(ctx, ownerID)
	if err != nil {
		logger.Warn("calorie check: summary", zap.String("userID", ownerID.String()), zap.Error(err))
		return
	}
	before := sum.TotalCalories - meal.Calories
	if before <= goal && sum.TotalCalories > goal {
		s.alerts.Emit(ctx, ownerID, models.AlertWarning, fmt.Sprintf(
			"You have eaten %.0f kcal today, above your goal of %.0f kcal",
			sum.TotalCalories, goal))
	}
}

func (s *MealService) List(ctx context.Context, ownerID uuid.UUID) ([]models.Meal, error) {
	meals, err := s.meals.ListMeals(ctx, ownerID)
	if err != nil {
		return nil, fmt.Errorf("list meals: %w", err)
	}
	return meals, nil
}

func (s *MealService) Get(ctx context.Context, ownerID uuid.UUID, rawID string) (*models.Meal, error) {
	id, err := parseID(rawID)
	if err != nil {
		return nil, err
	}
	meal, err := s.meals.GetMeal(ctx, id)
	if err != nil {
		return nil, lookupErr(err)
	}
	if meal.UserID != ownerID {
		return nil, ErrForbidden
	}
	return meal, nil
}

func (s *MealService) Delete(ctx context.Context, ownerID uuid.UUID, rawID string) error {
	meal, err := s.Get(ctx, ownerID, rawID)
	if err != nil {
		return err
	}
	return lookupErr(s.meals.DeleteMeal(ctx, meal.ID))
}

// Summary aggregates the owner's meals dated since local midnight.
func (s *MealService) Summary(ctx context.Context, ownerID uuid.UUID) (MealSummary, error) {
	meals, err := s.meals.MealsSince(ctx, ownerID, dayStart(s.now()))
	if err != nil {
		return MealSummary{}, fmt.Errorf("today's meals: %w", err)
	}
	return SummarizeMeals(meals), nil
}
