package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Completion records that a habit was done on a specific calendar day.
// Date may carry a time-of-day component; only the day is meaningful, so
// lookups always compare against a [midnight, midnight+24h) interval.
type Completion struct {
	ID        string    `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	HabitID string    `gorm:"not null;index" json:"habit_id"`
	Date    time.Time `gorm:"not null;index" json:"date"`
	Note    string    `json:"note"`

	// Relationships
	Habit Habit `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"habit"`
}

// BeforeCreate assigns the store identifier
func (c *Completion) BeforeCreate(*gorm.DB) error {
	if c.ID == "" {
		c.ID = uuid.NewString()
	}
	return nil
}
