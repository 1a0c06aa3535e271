package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Category is a named grouping for habits
type Category struct {
	ID        string    `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Name  string `gorm:"not null" json:"name"`
	Color string `json:"color"` // optional color name, e.g. "green"

	// Relationships
	Habits []Habit `gorm:"foreignKey:CategoryID" json:"-"`
}

// BeforeCreate assigns the store identifier
func (c *Category) BeforeCreate(*gorm.DB) error {
	if c.ID == "" {
		c.ID = uuid.NewString()
	}
	return nil
}

// ShortID returns the ID prefix shown in lists and accepted by commands
func (c *Category) ShortID() string {
	if len(c.ID) < 8 {
		return c.ID
	}
	return c.ID[:8]
}
