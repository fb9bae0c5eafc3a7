package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// DefaultDailyCalorieGoal applies when a user registers without a target.
const DefaultDailyCalorieGoal = 2000

type User struct {
	ID               uuid.UUID   `gorm:"type:uuid;primaryKey" json:"id"`
	Name             string      `gorm:"not null" json:"name"`
	Email            string      `gorm:"uniqueIndex;not null" json:"email"`
	PasswordHash     string      `gorm:"not null" json:"-"`
	Age              *int        `json:"age,omitempty"`
	Weight           *float64    `json:"weight,omitempty"`
	Height           *float64    `json:"height,omitempty"`
	Gender           Gender      `gorm:"type:varchar(16)" json:"gender,omitempty"`
	FitnessGoal      FitnessGoal `gorm:"type:varchar(32)" json:"fitnessGoal,omitempty"`
	DailyCalorieGoal float64     `gorm:"not null" json:"dailyCalorieGoal"`
	ProfilePicture   string      `json:"profilePicture,omitempty"`
	CreatedAt        time.Time   `json:"date"`
	UpdatedAt        time.Time   `json:"-"`
}

func (u *User) BeforeCreate(*gorm.DB) error {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	return nil
}
