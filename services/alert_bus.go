package services

import (
	"context"
	"time"

	"fittrack/logger"
	"fittrack/models"
	"fittrack/storage"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Broadcaster delivers payloads to a user's live connections.
type Broadcaster interface {
	BroadcastAlert(userID uuid.UUID, payload any)
}

// Notifier delivers a push notification to a user's devices.
type Notifier interface {
	PushToUser(ctx context.Context, userID uuid.UUID, title, body string, data map[string]string)
}

// AlertService persists alerts and fans them out to sockets and devices.
type AlertService struct {
	store storage.AlertStore
	rt    Broadcaster
	push  Notifier
	now   func() time.Time
}

// NewAlertService builds the bus. rt and push are optional.
func NewAlertService(store storage.AlertStore, rt Broadcaster, push Notifier) *AlertService {
	return &AlertService{store: store, rt: rt, push: push, now: time.Now}
}

// Emit records the alert and delivers it. It never fails the caller; errors
// are logged.
func (s *AlertService) Emit(ctx context.Context, userID uuid.UUID, typ models.AlertType, message string) {
	a := &models.Alert{UserID: userID, Type: typ, Message: message, CreatedAt: s.now()}
	if err := s.store.CreateAlert(ctx, a); err != nil {
		logger.Error("alert: persist", zap.String("userID", userID.String()), zap.Error(err))
		return
	}

	if s.rt != nil {
		s.rt.BroadcastAlert(userID, map[string]any{
			"kind":  "alert.created",
			"alert": a,
		})
	}
	if s.push != nil {
		s.push.PushToUser(ctx, userID, "New Alert", message, map[string]string{
			"type":    string(typ),
			"alertId": a.ID.String(),
		})
	}
}

func (s *AlertService) List(ctx context.Context, userID uuid.UUID) ([]models.Alert, error) {
	return s.store.ListAlerts(ctx, userID)
}
