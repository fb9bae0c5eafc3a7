// Package storage declares the persistence contracts used by the services.
// storage/postgres backs them with gorm, storage/memory with maps for tests
// and local runs.
package storage

import (
	"context"
	"errors"
	"time"

	"fittrack/models"

	"github.com/google/uuid"
)

var (
	// ErrNotFound is returned when no record matches the lookup.
	ErrNotFound = errors.New("record not found")
	// ErrDuplicate is returned when a unique constraint would be violated.
	ErrDuplicate = errors.New("duplicate record")
)

type UserStore interface {
	CreateUser(ctx context.Context, u *models.User) error
	GetUser(ctx context.Context, id uuid.UUID) (*models.User, error)
	GetUserByEmail(ctx context.Context, email string) (*models.User, error)
	UpdateUser(ctx context.Context, u *models.User) error
}

type MealStore interface {
	CreateMeal(ctx context.Context, m *models.Meal) error
	GetMeal(ctx context.Context, id uuid.UUID) (*models.Meal, error)
	// ListMeals returns the owner's meals, newest first.
	ListMeals(ctx context.Context, userID uuid.UUID) ([]models.Meal, error)
	// MealsSince returns the owner's meals dated at or after from, oldest first.
	MealsSince(ctx context.Context, userID uuid.UUID, from time.Time) ([]models.Meal, error)
	DeleteMeal(ctx context.Context, id uuid.UUID) error
}

type ExerciseStore interface {
	CreateExercise(ctx context.Context, e *models.Exercise) error
	GetExercise(ctx context.Context, id uuid.UUID) (*models.Exercise, error)
	ListExercises(ctx context.Context, userID uuid.UUID) ([]models.Exercise, error)
	ExercisesSince(ctx context.Context, userID uuid.UUID, from time.Time) ([]models.Exercise, error)
	DeleteExercise(ctx context.Context, id uuid.UUID) error
}

type GoalStore interface {
	CreateGoal(ctx context.Context, g *models.Goal) error
	GetGoal(ctx context.Context, id uuid.UUID) (*models.Goal, error)
	// ListGoals returns the owner's goals ordered by end date, soonest first.
	ListGoals(ctx context.Context, userID uuid.UUID) ([]models.Goal, error)
	// OpenGoals returns the owner's goals that are not completed.
	OpenGoals(ctx context.Context, userID uuid.UUID) ([]models.Goal, error)
	UpdateGoal(ctx context.Context, g *models.Goal) error
	DeleteGoal(ctx context.Context, id uuid.UUID) error
}

type AlertStore interface {
	CreateAlert(ctx context.Context, a *models.Alert) error
	ListAlerts(ctx context.Context, userID uuid.UUID) ([]models.Alert, error)
}

type DeviceStore interface {
	// SaveDevice inserts the device or refreshes the row matching
	// (user, token hash).
	SaveDevice(ctx context.Context, d *models.UserDevice) error
	EnabledDevices(ctx context.Context, userID uuid.UUID) ([]models.UserDevice, error)
	SetDevicesEnabled(ctx context.Context, userID uuid.UUID, enabled bool) error
}

// Store is the full persistence surface plus its lifecycle.
type Store interface {
	UserStore
	MealStore
	ExerciseStore
	GoalStore
	AlertStore
	DeviceStore
	Close() error
}
