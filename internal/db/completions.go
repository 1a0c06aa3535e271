package db

import (
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/asetbek/habi/internal/models"
)

// CreateCompletion inserts a completion record as-is. It does not check
// whether the day already has one; SetCompleted is the entry point that
// keeps the one-per-day rule, so prefer it unless you really want a raw
// insert.
func (m *Manager) CreateCompletion(habitID string, date time.Time, note string) (*models.Completion, error) {
	habit, err := m.HabitByID(habitID)
	if err != nil {
		return nil, err
	}

	completion := models.Completion{
		HabitID: habit.ID,
		Date:    date,
		Note:    note,
	}

	if err := m.db.Omit(clause.Associations).Create(&completion).Error; err != nil {
		return nil, m.writeErr("create completion", err)
	}

	return &completion, nil
}

// CompletionsForHabit returns a habit's completions, most recent day first
func (m *Manager) CompletionsForHabit(habitID string) ([]models.Completion, error) {
	var completions []models.Completion
	err := m.db.Where("habit_id = ?", habitID).
		Order("date DESC").
		Find(&completions).Error
	if err != nil {
		return nil, m.readErr("list completions", err)
	}
	return completions, nil
}

// CompletionsBetween returns completions for any habit whose day falls in
// the inclusive [from, to] day range, most recent first
func (m *Manager) CompletionsBetween(from, to time.Time) ([]models.Completion, error) {
	start := startOfDay(from)
	_, end := dayInterval(to)

	var completions []models.Completion
	err := m.db.Where("date >= ? AND date < ?", start, end).
		Order("date DESC").
		Find(&completions).Error
	if err != nil {
		return nil, m.readErr("list completions in range", err)
	}
	return completions, nil
}

// IsCompleted reports whether the habit has a completion on the calendar
// day of date
func (m *Manager) IsCompleted(habitID string, date time.Time) (bool, error) {
	start, end := dayInterval(date)

	var count int64
	err := m.db.Model(&models.Completion{}).
		Where("habit_id = ? AND date >= ? AND date < ?", habitID, start, end).
		Count(&count).Error
	if err != nil {
		return false, m.readErr("check completion", err)
	}
	return count > 0, nil
}

// CompletionOn returns the habit's completion for the calendar day of
// date, or nil when the day is unmarked
func (m *Manager) CompletionOn(habitID string, date time.Time) (*models.Completion, error) {
	start, end := dayInterval(date)

	var completion models.Completion
	err := m.db.Where("habit_id = ? AND date >= ? AND date < ?", habitID, start, end).
		First(&completion).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil // An unmarked day is not an error
	}
	if err != nil {
		return nil, m.readErr("fetch completion", err)
	}
	return &completion, nil
}

// SetCompleted marks or unmarks a habit for the given day. It is
// idempotent: marking an already-complete day is a no-op that keeps the
// existing note, unmarking an empty day does nothing. The lookup and the
// write are separate store calls, so concurrent callers would need a
// transaction around the pair; habi itself always calls sequentially.
func (m *Manager) SetCompleted(habitID string, date time.Time, done bool) error {
	existing, err := m.CompletionOn(habitID, date)
	if err != nil {
		return err
	}

	if done {
		if existing != nil {
			return nil
		}
		_, err := m.CreateCompletion(habitID, date, "")
		return err
	}

	if existing == nil {
		return nil
	}
	return m.DeleteCompletion(existing.ID)
}

// UpdateCompletionParams describes a partial update: nil fields leave the
// record untouched
type UpdateCompletionParams struct {
	Date *time.Time
	Note *string
}

// UpdateCompletion applies the supplied fields to a completion and
// persists it. The owning habit never changes.
func (m *Manager) UpdateCompletion(id string, params UpdateCompletionParams) (*models.Completion, error) {
	var completion models.Completion
	err := m.db.First(&completion, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("%w: completion %q", ErrNotFound, id)
	}
	if err != nil {
		return nil, m.readErr("fetch completion", err)
	}

	if params.Date != nil {
		completion.Date = *params.Date
	}
	if params.Note != nil {
		completion.Note = *params.Note
	}

	if err := m.db.Omit(clause.Associations).Save(&completion).Error; err != nil {
		return nil, m.writeErr("update completion", err)
	}

	return &completion, nil
}

// DeleteCompletion removes a completion record
func (m *Manager) DeleteCompletion(id string) error {
	result := m.db.Delete(&models.Completion{}, "id = ?", id)
	if result.Error != nil {
		return m.writeErr("delete completion", result.Error)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("%w: completion %q", ErrNotFound, id)
	}
	return nil
}

// Reset unconditionally wipes every habit, category, and completion.
// There is no undo.
func (m *Manager) Reset() error {
	err := m.db.Transaction(func(tx *gorm.DB) error {
		for _, model := range []interface{}{
			&models.Completion{},
			&models.Habit{},
			&models.Category{},
		} {
			if err := tx.Where("1 = 1").Delete(model).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return m.writeErr("reset", err)
	}
	return nil
}
