package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"fittrack/models"
	"fittrack/storage"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Store implements storage.Store on top of a gorm connection.
type Store struct {
	db *gorm.DB
}

var _ storage.Store = (*Store)(nil)

func New(db *gorm.DB) *Store {
	return &Store{db: db}
}

// Migrate creates or updates the tables for every persisted model.
func (s *Store) Migrate() error {
	return s.db.AutoMigrate(
		&models.User{},
		&models.Meal{},
		&models.Exercise{},
		&models.Goal{},
		&models.Alert{},
		&models.UserDevice{},
	)
}

func (s *Store) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return fmt.Errorf("retrieve sql.DB: %w", err)
	}
	return sqlDB.Close()
}

func translate(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		return storage.ErrNotFound
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return storage.ErrDuplicate
	}
	return err
}

// deleteByID removes one row and reports storage.ErrNotFound when nothing
// matched.
func (s *Store) deleteByID(ctx context.Context, model any, id uuid.UUID) error {
	res := s.db.WithContext(ctx).Where("id = ?", id).Delete(model)
	if res.Error != nil {
		return translate(res.Error)
	}
	if res.RowsAffected == 0 {
		return storage.ErrNotFound
	}
	return nil
}

// ---------- users ----------

func (s *Store) CreateUser(ctx context.Context, u *models.User) error {
	return translate(s.db.WithContext(ctx).Create(u).Error)
}

func (s *Store) GetUser(ctx context.Context, id uuid.UUID) (*models.User, error) {
	var u models.User
	if err := s.db.WithContext(ctx).Where("id = ?", id).First(&u).Error; err != nil {
		return nil, translate(err)
	}
	return &u, nil
}

func (s *Store) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	var u models.User
	if err := s.db.WithContext(ctx).Where("email = ?", email).First(&u).Error; err != nil {
		return nil, translate(err)
	}
	return &u, nil
}

func (s *Store) UpdateUser(ctx context.Context, u *models.User) error {
	return translate(s.db.WithContext(ctx).Save(u).Error)
}

// ---------- meals ----------

func (s *Store) CreateMeal(ctx context.Context, m *models.Meal) error {
	return translate(s.db.WithContext(ctx).Create(m).Error)
}

func (s *Store) GetMeal(ctx context.Context, id uuid.UUID) (*models.Meal, error) {
	var m models.Meal
	if err := s.db.WithContext(ctx).Where("id = ?", id).First(&m).Error; err != nil {
		return nil, translate(err)
	}
	return &m, nil
}

func (s *Store) ListMeals(ctx context.Context, userID uuid.UUID) ([]models.Meal, error) {
	var meals []models.Meal
	err := s.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("date DESC").
		Find(&meals).Error
	return meals, translate(err)
}

func (s *Store) MealsSince(ctx context.Context, userID uuid.UUID, from time.Time) ([]models.Meal, error) {
	var meals []models.Meal
	err := s.db.WithContext(ctx).
		Where("user_id = ? AND date >= ?", userID, from).
		Order("date ASC").
		Find(&meals).Error
	return meals, translate(err)
}

func (s *Store) DeleteMeal(ctx context.Context, id uuid.UUID) error {
	return s.deleteByID(ctx, &models.Meal{}, id)
}

// ---------- exercises ----------

func (s *Store) CreateExercise(ctx context.Context, e *models.Exercise) error {
	return translate(s.db.WithContext(ctx).Create(e).Error)
}

func (s *Store) GetExercise(ctx context.Context, id uuid.UUID) (*models.Exercise, error) {
	var e models.Exercise
	if err := s.db.WithContext(ctx).Where("id = ?", id).First(&e).Error; err != nil {
		return nil, translate(err)
	}
	return &e, nil
}

func (s *Store) ListExercises(ctx context.Context, userID uuid.UUID) ([]models.Exercise, error) {
	var out []models.Exercise
	err := s.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("date DESC").
		Find(&out).Error
	return out, translate(err)
}

func (s *Store) ExercisesSince(ctx context.Context, userID uuid.UUID, from time.Time) ([]models.Exercise, error) {
	var out []models.Exercise
	err := s.db.WithContext(ctx).
		Where("user_id = ? AND date >= ?", userID, from).
		Order("date ASC").
		Find(&out).Error
	return out, translate(err)
}

func (s *Store) DeleteExercise(ctx context.Context, id uuid.UUID) error {
	return s.deleteByID(ctx, &models.Exercise{}, id)
}

// ---------- goals ----------

func (s *Store) CreateGoal(ctx context.Context, g *models.Goal) error {
	return translate(s.db.WithContext(ctx).Create(g).Error)
}

func (s *Store) GetGoal(ctx context.Context, id uuid.UUID) (*models.Goal, error) {
	var g models.Goal
	if err := s.db.WithContext(ctx).Where("id = ?", id).First(&g).Error; err != nil {
		return nil, translate(err)
	}
	return &g, nil
}

func (s *Store) ListGoals(ctx context.Context, userID uuid.UUID) ([]models.Goal, error) {
	var goals []models.Goal
	err := s.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("end_date ASC").
		Find(&goals).Error
	return goals, translate(err)
}

func (s *Store) OpenGoals(ctx context.Context, userID uuid.UUID) ([]models.Goal, error) {
	var goals []models.Goal
	err := s.db.WithContext(ctx).
		Where("user_id = ? AND is_completed = ?", userID, false).
		Order("start_date ASC").
		Find(&goals).Error
	return goals, translate(err)
}

func (s *Store) UpdateGoal(ctx context.Context, g *models.Goal) error {
	return translate(s.db.WithContext(ctx).Save(g).Error)
}

func (s *Store) DeleteGoal(ctx context.Context, id uuid.UUID) error {
	return s.deleteByID(ctx, &models.Goal{}, id)
}

// ---------- alerts ----------

func (s *Store) CreateAlert(ctx context.Context, a *models.Alert) error {
	return translate(s.db.WithContext(ctx).Create(a).Error)
}

func (s *Store) ListAlerts(ctx context.Context, userID uuid.UUID) ([]models.Alert, error) {
	var alerts []models.Alert
	err := s.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&alerts).Error
	return alerts, translate(err)
}

// ---------- devices ----------

func (s *Store) SaveDevice(ctx context.Context, d *models.UserDevice) error {
	var existing models.UserDevice
	err := s.db.WithContext(ctx).
		Where("user_id = ? AND token_hash = ?", d.UserID, d.TokenHash).
		First(&existing).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return translate(s.db.WithContext(ctx).Create(d).Error)
	}
	if err != nil {
		return err
	}
	existing.EndpointARN = d.EndpointARN
	existing.Platform = d.Platform
	existing.Enabled = true
	if err := s.db.WithContext(ctx).Save(&existing).Error; err != nil {
		return translate(err)
	}
	*d = existing
	return nil
}

func (s *Store) EnabledDevices(ctx context.Context, userID uuid.UUID) ([]models.UserDevice, error) {
	var devices []models.UserDevice
	err := s.db.WithContext(ctx).
		Where("user_id = ? AND enabled = ?", userID, true).
		Find(&devices).Error
	return devices, translate(err)
}

func (s *Store) SetDevicesEnabled(ctx context.Context, userID uuid.UUID, enabled bool) error {
	return translate(s.db.WithContext(ctx).
		Model(&models.UserDevice{}).
		Where("user_id = ?", userID).
		Update("enabled", enabled).Error)
}
