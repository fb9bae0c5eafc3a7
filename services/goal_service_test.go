package services

import (
	"context"
	"testing"
	"time"

	"fittrack/models"
	"fittrack/storage/memory"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newGoalService() (*GoalService, *memory.Store) {
	store := memory.New()
	alerts := NewAlertService(store, nil, nil)
	alerts.now = clock
	svc := NewGoalService(store, alerts)
	svc.now = clock
	return svc, store
}

func float(v float64) *float64 { return &v }
func boolean(v bool) *bool     { return &v }

func TestGoalCreateDefaults(t *testing.T) {
	svc, _ := newGoalService()
	owner := uuid.New()
	end := fixedNow.Add(30 * 24 * time.Hour)

	goal, err := svc.Create(context.Background(), owner, GoalInput{GoalType: models.WeightGoal, Target: 70, EndDate: end})
	require.NoError(t, err)

	assert.Equal(t, owner, goal.UserID)
	assert.Equal(t, fixedNow, goal.StartDate)
	assert.Equal(t, end, goal.EndDate)
	assert.Zero(t, goal.Current)
	assert.False(t, goal.IsCompleted)
}

func TestGoalCreateValidation(t *testing.T) {
	svc, _ := newGoalService()

	_, err := svc.Create(context.Background(), uuid.New(), GoalInput{GoalType: "sleep", Target: 8})

	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, []FieldError{
		{Field: "goalType", Message: "Goal type is required"},
		{Field: "endDate", Message: "End date is required"},
	}, verr.Errors)
}

func TestGoalListOrderedByEndDate(t *testing.T) {
	svc, _ := newGoalService()
	ctx := context.Background()
	owner := uuid.New()

	late, err := svc.Create(ctx, owner, GoalInput{GoalType: models.WeightGoal, Target: 70, EndDate: fixedNow.Add(60 * 24 * time.Hour)})
	require.NoError(t, err)
	soon, err := svc.Create(ctx, owner, GoalInput{GoalType: models.ExerciseGoal, Target: 10, EndDate: fixedNow.Add(7 * 24 * time.Hour)})
	require.NoError(t, err)

	list, err := svc.List(ctx, owner)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, soon.ID, list[0].ID)
	assert.Equal(t, late.ID, list[1].ID)
}

func TestGoalPartialUpdate(t *testing.T) {
	svc, _ := newGoalService()
	ctx := context.Background()
	owner := uuid.New()

	goal, err := svc.Create(ctx, owner, GoalInput{GoalType: models.CaloriesGoal, Target: 100, EndDate: fixedNow.Add(24 * time.Hour)})
	require.NoError(t, err)
	id := goal.ID.String()

	updated, err := svc.Update(ctx, owner, id, GoalUpdate{Current: float(50)})
	require.NoError(t, err)
	assert.Equal(t, 50.0, updated.Current)
	assert.False(t, updated.IsCompleted)

	unchanged, err := svc.Update(ctx, owner, id, GoalUpdate{})
	require.NoError(t, err)
	assert.Equal(t, 50.0, unchanged.Current)
	assert.False(t, unchanged.IsCompleted)

	done, err := svc.Update(ctx, owner, id, GoalUpdate{IsCompleted: boolean(true)})
	require.NoError(t, err)
	assert.Equal(t, 50.0, done.Current)
	assert.True(t, done.IsCompleted)

	stored, err := svc.Get(ctx, owner, id)
	require.NoError(t, err)
	assert.Equal(t, done, stored)
}

func TestGoalUpdateOwnership(t *testing.T) {
	svc, _ := newGoalService()
	ctx := context.Background()
	owner := uuid.New()

	goal, err := svc.Create(ctx, owner, GoalInput{GoalType: models.CaloriesGoal, Target: 100, EndDate: fixedNow})
	require.NoError(t, err)

	_, err = svc.Update(ctx, uuid.New(), goal.ID.String(), GoalUpdate{Current: float(1)})
	assert.ErrorIs(t, err, ErrForbidden)
	_, err = svc.Update(ctx, owner, "bogus", GoalUpdate{Current: float(1)})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestGoalCompletionRaisesAlertOnce(t *testing.T) {
	svc, store := newGoalService()
	ctx := context.Background()
	owner := uuid.New()

	goal, err := svc.Create(ctx, owner, GoalInput{GoalType: models.ExerciseGoal, Target: 5, EndDate: fixedNow.Add(time.Hour)})
	require.NoError(t, err)

	_, err = svc.Update(ctx, owner, goal.ID.String(), GoalUpdate{IsCompleted: boolean(true)})
	require.NoError(t, err)
	_, err = svc.Update(ctx, owner, goal.ID.String(), GoalUpdate{IsCompleted: boolean(true), Current: float(5)})
	require.NoError(t, err)

	alerts, err := store.ListAlerts(ctx, owner)
	require.NoError(t, err)
	require.Len(t, alerts, 1)
	assert.Equal(t, models.AlertInfo, alerts[0].Type)
	assert.Contains(t, alerts[0].Message, "exercise goal")
}

func TestGoalProgressSkipsCompleted(t *testing.T) {
	svc, _ := newGoalService()
	ctx := context.Background()
	owner := uuid.New()

	open, err := svc.Create(ctx, owner, GoalInput{GoalType: models.WeightGoal, Target: 10, EndDate: fixedNow.Add(24 * time.Hour)})
	require.NoError(t, err)
	closed, err := svc.Create(ctx, owner, GoalInput{GoalType: models.CaloriesGoal, Target: 10, EndDate: fixedNow.Add(48 * time.Hour)})
	require.NoError(t, err)
	_, err = svc.Update(ctx, owner, closed.ID.String(), GoalUpdate{IsCompleted: boolean(true)})
	require.NoError(t, err)

	progress, err := svc.Progress(ctx, owner)
	require.NoError(t, err)
	require.Len(t, progress, 1)
	assert.Equal(t, open.ID, progress[0].ID)
	assert.Equal(t, Percentage(0), progress[0].Progress)
	assert.Equal(t, 1, progress[0].DaysLeft)
}

func TestGoalDelete(t *testing.T) {
	svc, _ := newGoalService()
	ctx := context.Background()
	owner := uuid.New()

	goal, err := svc.Create(ctx, owner, GoalInput{GoalType: models.NutritionGoal, Target: 3, EndDate: fixedNow})
	require.NoError(t, err)

	assert.ErrorIs(t, svc.Delete(ctx, uuid.New(), goal.ID.String()), ErrForbidden)
	require.NoError(t, svc.Delete(ctx, owner, goal.ID.String()))
	_, err = svc.Get(ctx, owner, goal.ID.String())
	assert.ErrorIs(t, err, ErrNotFound)
}
