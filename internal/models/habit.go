package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Frequency is how often a habit is meant to be done
type Frequency string

const (
	FrequencyDaily  Frequency = "daily"
	FrequencyWeekly Frequency = "weekly"
)

// Valid reports whether f is a known frequency
func (f Frequency) Valid() bool {
	return f == FrequencyDaily || f == FrequencyWeekly
}

// Habit represents a recurring activity the user wants to track
type Habit struct {
	ID        string    `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Name        string    `gorm:"not null" json:"name"`
	Description string    `json:"description"`
	Frequency   Frequency `gorm:"default:daily" json:"frequency"` // daily, weekly
	Archived    bool      `gorm:"default:false" json:"archived"`

	// Relationships
	CategoryID  *string      `gorm:"index" json:"category_id"`
	Category    *Category    `json:"category,omitempty"`
	Completions []Completion `gorm:"foreignKey:HabitID" json:"-"`
}

// BeforeCreate assigns the store identifier. All equality and
// cross-referencing goes through this ID, never struct identity.
func (h *Habit) BeforeCreate(*gorm.DB) error {
	if h.ID == "" {
		h.ID = uuid.NewString()
	}
	return nil
}

// ShortID returns the ID prefix shown in lists and accepted by commands
func (h *Habit) ShortID() string {
	if len(h.ID) < 8 {
		return h.ID
	}
	return h.ID[:8]
}
