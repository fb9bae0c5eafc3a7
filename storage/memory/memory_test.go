package memory

import (
	"context"
	"testing"
	"time"

	"fittrack/models"
	"fittrack/storage"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateUserRejectsDuplicateEmail(t *testing.T) {
	s := New()
	ctx := context.Background()

	require.NoError(t, s.CreateUser(ctx, &models.User{Name: "A", Email: "a@example.com"}))
	err := s.CreateUser(ctx, &models.User{Name: "B", Email: "A@example.com"})
	assert.ErrorIs(t, err, storage.ErrDuplicate)
}

func TestMealsOrdering(t *testing.T) {
	s := New()
	ctx := context.Background()
	owner := uuid.New()
	base := time.Date(2026, 3, 10, 8, 0, 0, 0, time.UTC)

	for i, name := range []string{"first", "second", "third"} {
		m := &models.Meal{UserID: owner, Name: name, MealType: models.Lunch, Date: base.Add(time.Duration(i) * time.Hour)}
		require.NoError(t, s.CreateMeal(ctx, m))
	}
	require.NoError(t, s.CreateMeal(ctx, &models.Meal{UserID: uuid.New(), Name: "other", Date: base}))

	list, err := s.ListMeals(ctx, owner)
	require.NoError(t, err)
	require.Len(t, list, 3)
	assert.Equal(t, "third", list[0].Name)
	assert.Equal(t, "first", list[2].Name)

	since, err := s.MealsSince(ctx, owner, base.Add(30*time.Minute))
	require.NoError(t, err)
	require.Len(t, since, 2)
	assert.Equal(t, "second", since[0].Name)
	assert.Equal(t, "third", since[1].Name)
}

func TestDeleteMissingReturnsNotFound(t *testing.T) {
	s := New()
	ctx := context.Background()

	assert.ErrorIs(t, s.DeleteMeal(ctx, uuid.New()), storage.ErrNotFound)
	assert.ErrorIs(t, s.DeleteExercise(ctx, uuid.New()), storage.ErrNotFound)
	assert.ErrorIs(t, s.DeleteGoal(ctx, uuid.New()), storage.ErrNotFound)
}

func TestGoalsOrderAndOpenFilter(t *testing.T) {
	s := New()
	ctx := context.Background()
	owner := uuid.New()
	now := time.Now()

	late := &models.Goal{UserID: owner, GoalType: models.WeightGoal, EndDate: now.AddDate(0, 1, 0)}
	soon := &models.Goal{UserID: owner, GoalType: models.CaloriesGoal, EndDate: now.AddDate(0, 0, 2)}
	done := &models.Goal{UserID: owner, GoalType: models.ExerciseGoal, EndDate: now.AddDate(0, 0, 1), IsCompleted: true}
	for _, g := range []*models.Goal{late, soon, done} {
		require.NoError(t, s.CreateGoal(ctx, g))
	}

	list, err := s.ListGoals(ctx, owner)
	require.NoError(t, err)
	require.Len(t, list, 3)
	assert.Equal(t, done.ID, list[0].ID)
	assert.Equal(t, soon.ID, list[1].ID)
	assert.Equal(t, late.ID, list[2].ID)

	open, err := s.OpenGoals(ctx, owner)
	require.NoError(t, err)
	require.Len(t, open, 2)
	assert.Equal(t, late.ID, open[0].ID)
	assert.Equal(t, soon.ID, open[1].ID)
}

func TestSaveDeviceUpsertsByTokenHash(t *testing.T) {
	s := New()
	ctx := context.Background()
	owner := uuid.New()

	first := &models.UserDevice{UserID: owner, Platform: models.Android, TokenHash: "h1", EndpointARN: "arn:1"}
	require.NoError(t, s.SaveDevice(ctx, first))
	again := &models.UserDevice{UserID: owner, Platform: models.Android, TokenHash: "h1", EndpointARN: "arn:2"}
	require.NoError(t, s.SaveDevice(ctx, again))
	assert.Equal(t, first.ID, again.ID)

	devices, err := s.EnabledDevices(ctx, owner)
	require.NoError(t, err)
	require.Len(t, devices, 1)
	assert.Equal(t, "arn:2", devices[0].EndpointARN)

	require.NoError(t, s.SetDevicesEnabled(ctx, owner, false))
	devices, err = s.EnabledDevices(ctx, owner)
	require.NoError(t, err)
	assert.Empty(t, devices)
}
