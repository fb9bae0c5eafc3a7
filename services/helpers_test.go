package services

import (
	"context"
	"sync"
	"time"

	"fittrack/models"

	"github.com/google/uuid"
)

var fixedNow = time.Date(2026, time.March, 10, 15, 0, 0, 0, time.Local)

func clock() time.Time { return fixedNow }

type broadcast struct {
	userID  uuid.UUID
	payload any
}

type recordingBroadcaster struct {
	mu   sync.Mutex
	sent []broadcast
}

func (r *recordingBroadcaster) BroadcastAlert(userID uuid.UUID, payload any) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.sent = append(r.sent, broadcast{userID: userID, payload: payload})
}

type pushed struct {
	userID      uuid.UUID
	title, body string
	data        map[string]string
}

type recordingNotifier struct {
	sent []pushed
}

func (r *recordingNotifier) PushToUser(_ context.Context, userID uuid.UUID, title, body string, data map[string]string) {
	r.sent = append(r.sent, pushed{userID: userID, title: title, body: body, data: data})
}

func newUser(name string) *models.User {
	return &models.User{
		ID:               uuid.New(),
		Name:             name,
		Email:            name + "@example.com",
		DailyCalorieGoal: models.DefaultDailyCalorieGoal,
	}
}
