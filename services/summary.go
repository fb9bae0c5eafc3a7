package services

import (
	"encoding/json"
	"math"
	"time"

	"fittrack/models"

	"github.com/google/uuid"
)

// dayStart returns local midnight of t's day in t's location.
func dayStart(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

type MealSummary struct {
	TotalCalories float64                           `json:"totalCalories"`
	TotalProtein  float64                           `json:"totalProtein"`
	TotalCarbs    float64                           `json:"totalCarbs"`
	TotalFats     float64                           `json:"totalFats"`
	MealsByType   map[models.MealType][]models.Meal `json:"mealsByType"`
}

// SummarizeMeals totals the meals and groups them by meal type. Every meal
// type has an entry, and each list keeps the order meals were given in.
func SummarizeMeals(meals []models.Meal) MealSummary {
	sum := MealSummary{MealsByType: make(map[models.MealType][]models.Meal, len(models.MealTypes))}
	for _, t := range models.MealTypes {
		sum.MealsByType[t] = []models.Meal{}
	}
	for _, m := range meals {
		sum.TotalCalories += m.Calories
		sum.TotalProtein += m.Protein
		sum.TotalCarbs += m.Carbs
		sum.TotalFats += m.Fats
		sum.MealsByType[m.MealType] = append(sum.MealsByType[m.MealType], m)
	}
	return sum
}

type ExerciseSummary struct {
	TotalDuration       float64                                   `json:"totalDuration"`
	TotalCaloriesBurned float64                                   `json:"totalCaloriesBurned"`
	ExercisesByType     map[models.ExerciseType][]models.Exercise `json:"exercisesByType"`
}

func SummarizeExercises(exercises []models.Exercise) ExerciseSummary {
	sum := ExerciseSummary{ExercisesByType: make(map[models.ExerciseType][]models.Exercise, len(models.ExerciseTypes))}
	for _, t := range models.ExerciseTypes {
		sum.ExercisesByType[t] = []models.Exercise{}
	}
	for _, e := range exercises {
		sum.TotalDuration += e.Duration
		sum.TotalCaloriesBurned += e.CaloriesBurned
		sum.ExercisesByType[e.ExerciseType] = append(sum.ExercisesByType[e.ExerciseType], e)
	}
	return sum
}

// Percentage is an unclamped ratio in percent. A zero target yields NaN or
// ±Inf, which is encoded as JSON null.
type Percentage float64

func (p Percentage) MarshalJSON() ([]byte, error) {
	f := float64(p)
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return []byte("null"), nil
	}
	return json.Marshal(f)
}

type GoalProgress struct {
	ID       uuid.UUID       `json:"id"`
	GoalType models.GoalType `json:"goalType"`
	Target   float64         `json:"target"`
	Current  float64         `json:"current"`
	Progress Percentage      `json:"progress"`
	DaysLeft int             `json:"daysLeft"`
}

// ProgressFor computes progress for each goal in the order given.
func ProgressFor(goals []models.Goal, now time.Time) []GoalProgress {
	out := make([]GoalProgress, 0, len(goals))
	for _, g := range goals {
		out = append(out, GoalProgress{
			ID:       g.ID,
			GoalType: g.GoalType,
			Target:   g.Target,
			Current:  g.Current,
			Progress: Percentage(g.Current / g.Target * 100),
			DaysLeft: daysLeft(g.EndDate, now),
		})
	}
	return out
}

// daysLeft rounds the signed distance to end up to whole days. Overdue goals
// give zero or negative values.
func daysLeft(end, now time.Time) int {
	return int(math.Ceil(float64(end.Sub(now)) / float64(24*time.Hour)))
}
