package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// UserDevice is a push endpoint registered with SNS.
type UserDevice struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	UserID      uuid.UUID `gorm:"type:uuid;index" json:"user"`
	Platform    Platform  `gorm:"size:16" json:"platform"`
	TokenHash   string    `gorm:"size:64;index" json:"-"`
	EndpointARN string    `gorm:"size:256" json:"endpointArn"`
	Enabled     bool      `gorm:"default:true" json:"enabled"`
	UpdatedAt   time.Time `json:"updatedAt"`
	CreatedAt   time.Time `json:"createdAt"`
}

func (d *UserDevice) BeforeCreate(*gorm.DB) error {
	if d.ID == uuid.Nil {
		d.ID = uuid.New()
	}
	return nil
}
