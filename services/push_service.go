package services

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"

	"fittrack/logger"
	"fittrack/models"
	"fittrack/storage"

	"github.com/aws/aws-sdk-go-v2/aws"
	awssns "github.com/aws/aws-sdk-go-v2/service/sns"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// SNSAPI is the subset of the SNS client used for device push.
type SNSAPI interface {
	CreatePlatformEndpoint(ctx context.Context, in *awssns.CreatePlatformEndpointInput, optFns ...func(*awssns.Options)) (*awssns.CreatePlatformEndpointOutput, error)
	Publish(ctx context.Context, in *awssns.PublishInput, optFns ...func(*awssns.Options)) (*awssns.PublishOutput, error)
}

// PushService registers devices as SNS platform endpoints and publishes
// notifications to them. Android and iOS both go through FCM.
type PushService struct {
	devices     storage.DeviceStore
	sns         SNSAPI
	platformARN string
}

func NewPushService(devices storage.DeviceStore, client SNSAPI, platformARN string) *PushService {
	return &PushService{devices: devices, sns: client, platformARN: platformARN}
}

// Enabled reports whether SNS is wired and has a platform application.
func (p *PushService) Enabled() bool {
	return p != nil && p.sns != nil && p.platformARN != ""
}

func tokenHash(tok string) string {
	h := sha256.Sum256([]byte(tok))
	return hex.EncodeToString(h[:])
}

func (p *PushService) RegisterDevice(ctx context.Context, userID uuid.UUID, platform models.Platform, token string) (*models.UserDevice, error) {
	if !p.Enabled() {
		return nil, ErrPushDisabled
	}
	v := &ValidationError{}
	if !platform.Valid() {
		v.Add("platform", "Platform must be android or ios")
	}
	if token == "" {
		v.Add("token", "Device token is required")
	}
	if err := v.OrNil(); err != nil {
		return nil, err
	}

	out, err := p.sns.CreatePlatformEndpoint(ctx, &awssns.CreatePlatformEndpointInput{
		PlatformApplicationArn: aws.String(p.platformARN),
		Token:                  aws.String(token),
	})
	if err != nil {
		return nil, fmt.Errorf("create platform endpoint: %w", err)
	}

	dev := &models.UserDevice{
		UserID:      userID,
		Platform:    platform,
		TokenHash:   tokenHash(token),
		EndpointARN: aws.ToString(out.EndpointArn),
	}
	if err := p.devices.SaveDevice(ctx, dev); err != nil {
		return nil, fmt.Errorf("save device: %w", err)
	}
	return dev, nil
}

// SetNotifications toggles push for every device of the user.
func (p *PushService) SetNotifications(ctx context.Context, userID uuid.UUID, enabled bool) error {
	if p == nil || p.devices == nil {
		return ErrPushDisabled
	}
	if err := p.devices.SetDevicesEnabled(ctx, userID, enabled); err != nil {
		return fmt.Errorf("toggle devices: %w", err)
	}
	return nil
}

func (p *PushService) PushToUser(ctx context.Context, userID uuid.UUID, title, body string, data map[string]string) {
	if !p.Enabled() {
		return
	}
	endpoints, err := p.devices.EnabledDevices(ctx, userID)
	if err != nil {
		logger.Warn("push: load devices", zap.String("userID", userID.String()), zap.Error(err))
		return
	}
	if len(endpoints) == 0 {
		return
	}

	gcm, err := json.Marshal(map[string]any{
		"notification": map[string]string{"title": title, "body": body},
		"data":         data,
	})
	if err != nil {
		logger.Error("push: encode gcm payload", zap.Error(err))
		return
	}
	// SNS expects each platform payload as a JSON string inside the envelope.
	raw, err := json.Marshal(map[string]string{
		"default": body,
		"GCM":     string(gcm),
	})
	if err != nil {
		logger.Error("push: encode message", zap.Error(err))
		return
	}

	for _, d := range endpoints {
		_, err := p.sns.Publish(ctx, &awssns.PublishInput{
			MessageStructure: aws.String("json"),
			Message:          aws.String(string(raw)),
			TargetArn:        aws.String(d.EndpointARN),
		})
		if err != nil {
			logger.Warn("push: publish", zap.String("endpoint", d.EndpointARN), zap.Error(err))
		}
	}
}
