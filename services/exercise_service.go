package services

import (
	"context"
	"fmt"
	"time"

	"fittrack/models"
	"fittrack/storage"

	"github.com/google/uuid"
)

type ExerciseInput struct {
	Name           string
	Duration       float64
	CaloriesBurned float64
	ExerciseType   models.ExerciseType
	Date           *time.Time
}

func (in ExerciseInput) validate() error {
	v := &ValidationError{}
	if in.Name == "" {
		v.Add("name", "Exercise name is required")
	}
	if !in.ExerciseType.Valid() {
		v.Add("exerciseType", "Exercise type is required")
	}
	return v.OrNil()
}

type ExerciseService struct {
	exercises storage.ExerciseStore
	now       func() time.Time
}

func NewExerciseService(exercises storage.ExerciseStore) *ExerciseService {
	return &ExerciseService{exercises: exercises, now: time.Now}
}

func (s *ExerciseService) Create(ctx context.Context, ownerID uuid.UUID, in ExerciseInput) (*models.Exercise, error) {
	if err := in.validate(); err != nil {
		return nil, err
	}
	ex := &models.Exercise{
		UserID:         ownerID,
		Name:           in.Name,
		Duration:       in.Duration,
		CaloriesBurned: in.CaloriesBurned,
		ExerciseType:   in.ExerciseType,
		Date:           s.now(),
	}
	if in.Date != nil {
		ex.Date = *in.Date
	}
	if err := s.exercises.CreateExercise(ctx, ex); err != nil {
		return nil, fmt.Errorf("create exercise: %w", err)
	}
	return ex, nil
}

func (s *ExerciseService) List(ctx context.Context, ownerID uuid.UUID) ([]models.Exercise, error) {
	out, err := s.exercises.ListExercises(ctx, ownerID)
	if err != nil {
		return nil, fmt.Errorf("list exercises: %w", err)
	}
	return out, nil
}

func (s *ExerciseService) Get(ctx context.Context, ownerID uuid.UUID, rawID string) (*models.Exercise, error) {
	id, err := parseID(rawID)
	if err != nil {
		return nil, err
	}
	ex, err := s.exercises.GetExercise(ctx, id)
	if err != nil {
		return nil, lookupErr(err)
	}
	if ex.UserID != ownerID {
		return nil, ErrForbidden
	}
	return ex, nil
}

func (s *ExerciseService) Delete(ctx context.Context, ownerID uuid.UUID, rawID string) error {
	ex, err := s.Get(ctx, ownerID, rawID)
	if err != nil {
		return err
	}
	return lookupErr(s.exercises.DeleteExercise(ctx, ex.ID))
}

func (s *ExerciseService) Summary(ctx context.Context, ownerID uuid.UUID) (ExerciseSummary, error) {
	exercises, err := s.exercises.ExercisesSince(ctx, ownerID, dayStart(s.now()))
	if err != nil {
		return ExerciseSummary{}, fmt.Errorf("today's exercises: %w", err)
	}
	return SummarizeExercises(exercises), nil
}
