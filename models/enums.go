package models

// MealType is the slot a meal was eaten in.
type MealType string

const (
	Breakfast MealType = "breakfast"
	Lunch     MealType = "lunch"
	Dinner    MealType = "dinner"
	Snack     MealType = "snack"
)

// MealTypes lists every meal slot in display order.
var MealTypes = []MealType{Breakfast, Lunch, Dinner, Snack}

func (t MealType) Valid() bool {
	switch t {
	case Breakfast, Lunch, Dinner, Snack:
		return true
	}
	return false
}

// ExerciseType groups exercises for the daily summary.
type ExerciseType string

const (
	Cardio      ExerciseType = "cardio"
	Strength    ExerciseType = "strength"
	Flexibility ExerciseType = "flexibility"
	Balance     ExerciseType = "balance"
)

var ExerciseTypes = []ExerciseType{Cardio, Strength, Flexibility, Balance}

func (t ExerciseType) Valid() bool {
	switch t {
	case Cardio, Strength, Flexibility, Balance:
		return true
	}
	return false
}

type GoalType string

const (
	WeightGoal    GoalType = "weight"
	CaloriesGoal  GoalType = "calories"
	ExerciseGoal  GoalType = "exercise"
	NutritionGoal GoalType = "nutrition"
)

func (t GoalType) Valid() bool {
	switch t {
	case WeightGoal, CaloriesGoal, ExerciseGoal, NutritionGoal:
		return true
	}
	return false
}

type Gender string

const (
	Male        Gender = "male"
	Female      Gender = "female"
	OtherGender Gender = "other"
)

func (g Gender) Valid() bool {
	switch g {
	case Male, Female, OtherGender:
		return true
	}
	return false
}

type FitnessGoal string

const (
	WeightLoss     FitnessGoal = "weight-loss"
	MuscleGain     FitnessGoal = "muscle-gain"
	Maintenance    FitnessGoal = "maintenance"
	ImproveFitness FitnessGoal = "improve-fitness"
)

func (g FitnessGoal) Valid() bool {
	switch g {
	case WeightLoss, MuscleGain, Maintenance, ImproveFitness:
		return true
	}
	return false
}

// AlertType mirrors the severity shown by clients.
type AlertType string

const (
	AlertInfo    AlertType = "info"
	AlertWarning AlertType = "warning"
)

type Platform string

const (
	Android Platform = "android"
	IOS     Platform = "ios"
)

func (p Platform) Valid() bool {
	return p == Android || p == IOS
}
