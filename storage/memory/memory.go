package memory

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"fittrack/models"
	"fittrack/storage"

	"github.com/google/uuid"
)

// Store is an in-memory implementation of storage.Store. It is safe for
// concurrent use and is intended for tests and local development. Records
// are kept in insertion order so that "fetch order" is stable.
type Store struct {
	mu        sync.RWMutex
	now       func() time.Time
	users     []models.User
	meals     []models.Meal
	exercises []models.Exercise
	goals     []models.Goal
	alerts    []models.Alert
	devices   []models.UserDevice
}

var _ storage.Store = (*Store)(nil)

func New() *Store {
	return &Store{now: time.Now}
}

func (s *Store) Close() error { return nil }

// ---------- users ----------

func (s *Store) CreateUser(_ context.Context, u *models.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, existing := range s.users {
		if strings.EqualFold(existing.Email, u.Email) {
			return storage.ErrDuplicate
		}
	}
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	now := s.now()
	u.CreatedAt = now
	u.UpdatedAt = now
	s.users = append(s.users, *u)
	return nil
}

func (s *Store) GetUser(_ context.Context, id uuid.UUID) (*models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, u := range s.users {
		if u.ID == id {
			return &u, nil
		}
	}
	return nil, storage.ErrNotFound
}

func (s *Store) GetUserByEmail(_ context.Context, email string) (*models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, u := range s.users {
		if strings.EqualFold(u.Email, email) {
			return &u, nil
		}
	}
	return nil, storage.ErrNotFound
}

func (s *Store) UpdateUser(_ context.Context, u *models.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.users {
		if s.users[i].ID == u.ID {
			u.UpdatedAt = s.now()
			s.users[i] = *u
			return nil
		}
	}
	return storage.ErrNotFound
}

// ---------- meals ----------

func (s *Store) CreateMeal(_ context.Context, m *models.Meal) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	s.meals = append(s.meals, *m)
	return nil
}

func (s *Store) GetMeal(_ context.Context, id uuid.UUID) (*models.Meal, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, m := range s.meals {
		if m.ID == id {
			return &m, nil
		}
	}
	return nil, storage.ErrNotFound
}

func (s *Store) ListMeals(_ context.Context, userID uuid.UUID) ([]models.Meal, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.Meal, 0)
	for _, m := range s.meals {
		if m.UserID == userID {
			out = append(out, m)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Date.After(out[j].Date) })
	return out, nil
}

func (s *Store) MealsSince(_ context.Context, userID uuid.UUID, from time.Time) ([]models.Meal, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.Meal, 0)
	for _, m := range s.meals {
		if m.UserID == userID && !m.Date.Before(from) {
			out = append(out, m)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Date.Before(out[j].Date) })
	return out, nil
}

func (s *Store) DeleteMeal(_ context.Context, id uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, m := range s.meals {
		if m.ID == id {
			s.meals = append(s.meals[:i], s.meals[i+1:]...)
			return nil
		}
	}
	return storage.ErrNotFound
}

// ---------- exercises ----------

func (s *Store) CreateExercise(_ context.Context, e *models.Exercise) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if e.ID == uuid.Nil {
		e.ID = uuid.New()
	}
	s.exercises = append(s.exercises, *e)
	return nil
}

func (s *Store) GetExercise(_ context.Context, id uuid.UUID) (*models.Exercise, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, e := range s.exercises {
		if e.ID == id {
			return &e, nil
		}
	}
	return nil, storage.ErrNotFound
}

func (s *Store) ListExercises(_ context.Context, userID uuid.UUID) ([]models.Exercise, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.Exercise, 0)
	for _, e := range s.exercises {
		if e.UserID == userID {
			out = append(out, e)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Date.After(out[j].Date) })
	return out, nil
}

func (s *Store) ExercisesSince(_ context.Context, userID uuid.UUID, from time.Time) ([]models.Exercise, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.Exercise, 0)
	for _, e := range s.exercises {
		if e.UserID == userID && !e.Date.Before(from) {
			out = append(out, e)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Date.Before(out[j].Date) })
	return out, nil
}

func (s *Store) DeleteExercise(_ context.Context, id uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, e := range s.exercises {
		if e.ID == id {
			s.exercises = append(s.exercises[:i], s.exercises[i+1:]...)
			return nil
		}
	}
	return storage.ErrNotFound
}

// ---------- goals ----------

func (s *Store) CreateGoal(_ context.Context, g *models.Goal) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if g.ID == uuid.Nil {
		g.ID = uuid.New()
	}
	s.goals = append(s.goals, *g)
	return nil
}

func (s *Store) GetGoal(_ context.Context, id uuid.UUID) (*models.Goal, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, g := range s.goals {
		if g.ID == id {
			return &g, nil
		}
	}
	return nil, storage.ErrNotFound
}

func (s *Store) ListGoals(_ context.Context, userID uuid.UUID) ([]models.Goal, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.Goal, 0)
	for _, g := range s.goals {
		if g.UserID == userID {
			out = append(out, g)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].EndDate.Before(out[j].EndDate) })
	return out, nil
}

func (s *Store) OpenGoals(_ context.Context, userID uuid.UUID) ([]models.Goal, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.Goal, 0)
	for _, g := range s.goals {
		if g.UserID == userID && !g.IsCompleted {
			out = append(out, g)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].StartDate.Before(out[j].StartDate) })
	return out, nil
}

func (s *Store) UpdateGoal(_ context.Context, g *models.Goal) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.goals {
		if s.goals[i].ID == g.ID {
			s.goals[i] = *g
			return nil
		}
	}
	return storage.ErrNotFound
}

func (s *Store) DeleteGoal(_ context.Context, id uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, g := range s.goals {
		if g.ID == id {
			s.goals = append(s.goals[:i], s.goals[i+1:]...)
			return nil
		}
	}
	return storage.ErrNotFound
}

// ---------- alerts ----------

func (s *Store) CreateAlert(_ context.Context, a *models.Alert) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}
	if a.CreatedAt.IsZero() {
		a.CreatedAt = s.now()
	}
	s.alerts = append(s.alerts, *a)
	return nil
}

func (s *Store) ListAlerts(_ context.Context, userID uuid.UUID) ([]models.Alert, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.Alert, 0)
	for i := len(s.alerts) - 1; i >= 0; i-- {
		if s.alerts[i].UserID == userID {
			out = append(out, s.alerts[i])
		}
	}
	return out, nil
}

// ---------- devices ----------

func (s *Store) SaveDevice(_ context.Context, d *models.UserDevice) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	for i := range s.devices {
		existing := &s.devices[i]
		if existing.UserID == d.UserID && existing.TokenHash == d.TokenHash {
			existing.EndpointARN = d.EndpointARN
			existing.Platform = d.Platform
			existing.Enabled = true
			existing.UpdatedAt = now
			*d = *existing
			return nil
		}
	}
	if d.ID == uuid.Nil {
		d.ID = uuid.New()
	}
	d.Enabled = true
	d.CreatedAt = now
	d.UpdatedAt = now
	s.devices = append(s.devices, *d)
	return nil
}

func (s *Store) EnabledDevices(_ context.Context, userID uuid.UUID) ([]models.UserDevice, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.UserDevice, 0)
	for _, d := range s.devices {
		if d.UserID == userID && d.Enabled {
			out = append(out, d)
		}
	}
	return out, nil
}

func (s *Store) SetDevicesEnabled(_ context.Context, userID uuid.UUID, enabled bool) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.devices {
		if s.devices[i].UserID == userID {
			s.devices[i].Enabled = enabled
		}
	}
	return nil
}
