package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Exercise struct {
	ID             uuid.UUID    `gorm:"type:uuid;primaryKey" json:"id"`
	UserID         uuid.UUID    `gorm:"type:uuid;index;not null" json:"user"`
	Name           string       `gorm:"not null" json:"name"`
	Duration       float64      `gorm:"not null" json:"duration"` // minutes
	CaloriesBurned float64      `gorm:"not null" json:"caloriesBurned"`
	ExerciseType   ExerciseType `gorm:"type:varchar(16);not null" json:"exerciseType"`
	Date           time.Time    `gorm:"index;not null" json:"date"`
}

func (e *Exercise) BeforeCreate(*gorm.DB) error {
	if e.ID == uuid.Nil {
		e.ID = uuid.New()
	}
	return nil
}
