package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Meal is a single logged meal. Meals are never edited, only deleted.
type Meal struct {
	ID       uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	UserID   uuid.UUID `gorm:"type:uuid;index;not null" json:"user"`
	Name     string    `gorm:"not null" json:"name"`
	Calories float64   `gorm:"not null" json:"calories"`
	Protein  float64   `json:"protein"`
	Carbs    float64   `json:"carbs"`
	Fats     float64   `json:"fats"`
	MealType MealType  `gorm:"type:varchar(16);not null" json:"mealType"`
	Date     time.Time `gorm:"index;not null" json:"date"`
}

func (m *Meal) BeforeCreate(*gorm.DB) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	return nil
}
