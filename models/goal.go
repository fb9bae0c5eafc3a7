package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Goal is a target the user works towards until EndDate. Only Current and
// IsCompleted change after creation.
type Goal struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	UserID      uuid.UUID `gorm:"type:uuid;index;not null" json:"user"`
	GoalType    GoalType  `gorm:"type:varchar(16);not null" json:"goalType"`
	Target      float64   `gorm:"not null" json:"target"`
	Current     float64   `json:"current"`
	StartDate   time.Time `gorm:"not null" json:"startDate"`
	EndDate     time.Time `gorm:"index;not null" json:"endDate"`
	IsCompleted bool      `gorm:"index" json:"isCompleted"`
}

func (g *Goal) BeforeCreate(*gorm.DB) error {
	if g.ID == uuid.Nil {
		g.ID = uuid.New()
	}
	return nil
}
