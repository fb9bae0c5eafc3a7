package services

import (
	"context"
	"fmt"
	"time"

	"fittrack/models"
	"fittrack/storage"

	"github.com/google/uuid"
)

// GoalInput is what a client may set on creation. current starts at 0 and
// startDate at creation time.
type GoalInput struct {
	GoalType models.GoalType
	Target   float64
	EndDate  time.Time
}

func (in GoalInput) validate() error {
	v := &ValidationError{}
	if !in.GoalType.Valid() {
		v.Add("goalType", "Goal type is required")
	}
	if in.EndDate.IsZero() {
		v.Add("endDate", "End date is required")
	}
	return v.OrNil()
}

// GoalUpdate carries the only mutable goal fields. Nil means "leave as is".
type GoalUpdate struct {
	Current     *float64
	IsCompleted *bool
}

type GoalService struct {
	goals  storage.GoalStore
	alerts *AlertService
	now    func() time.Time
}

func NewGoalService(goals storage.GoalStore, alerts *AlertService) *GoalService {
	return &GoalService{goals: goals, alerts: alerts, now: time.Now}
}

func (s *GoalService) Create(ctx context.Context, ownerID uuid.UUID, in GoalInput) (*models.Goal, error) {
	if err := in.validate(); err != nil {
		return nil, err
	}
	goal := &models.Goal{
		UserID:    ownerID,
		GoalType:  in.GoalType,
		Target:    in.Target,
		StartDate: s.now(),
		EndDate:   in.EndDate,
	}
	if err := s.goals.CreateGoal(ctx, goal); err != nil {
		return nil, fmt.Errorf("create goal: %w", err)
	}
	return goal, nil
}

func (s *GoalService) List(ctx context.Context, ownerID uuid.UUID) ([]models.Goal, error) {
	goals, err := s.goals.ListGoals(ctx, ownerID)
	if err != nil {
		return nil, fmt.Errorf("list goals: %w", err)
	}
	return goals, nil
}

func (s *GoalService) Get(ctx context.Context, ownerID uuid.UUID, rawID string) (*models.Goal, error) {
	id, err := parseID(rawID)
	if err != nil {
		return nil, err
	}
	goal, err := s.goals.GetGoal(ctx, id)
	if err != nil {
		return nil, lookupErr(err)
	}
	if goal.UserID != ownerID {
		return nil, ErrForbidden
	}
	return goal, nil
}

// Update applies the fields present in upd. An empty update returns the
// stored goal untouched.
func (s *GoalService) Update(ctx context.Context, ownerID uuid.UUID, rawID string, upd GoalUpdate) (*models.Goal, error) {
	goal, err := s.Get(ctx, ownerID, rawID)
	if err != nil {
		return nil, err
	}
	if upd.Current == nil && upd.IsCompleted == nil {
		return goal, nil
	}

	wasCompleted := goal.IsCompleted
	if upd.Current != nil {
		goal.Current = *upd.Current
	}
	if upd.IsCompleted != nil {
		goal.IsCompleted = *upd.IsCompleted
	}
	if err := s.goals.UpdateGoal(ctx, goal); err != nil {
		return nil, fmt.Errorf("update goal: %w", lookupErr(err))
	}

	if !wasCompleted && goal.IsCompleted && s.alerts != nil {
		s.alerts.Emit(ctx, ownerID, models.AlertInfo,
			fmt.Sprintf("Congratulations! You completed your %s goal", goal.GoalType))
	}
	return goal, nil
}

func (s *GoalService) Delete(ctx context.Context, ownerID uuid.UUID, rawID string) error {
	goal, err := s.Get(ctx, ownerID, rawID)
	if err != nil {
		return err
	}
	return lookupErr(s.goals.DeleteGoal(ctx, goal.ID))
}

// Progress reports every open goal in fetch order.
func (s *GoalService) Progress(ctx context.Context, ownerID uuid.UUID) ([]GoalProgress, error) {
	goals, err := s.goals.OpenGoals(ctx, ownerID)
	if err != nil {
		return nil, fmt.Errorf("open goals: %w", err)
	}
	return ProgressFor(goals, s.now()), nil
}
