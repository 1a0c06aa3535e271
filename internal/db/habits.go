package db

import (
	"errors"
	"fmt"
	"strings"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/asetbek/habi/internal/models"
)

// CreateHabitRequest holds the data needed to create a new habit
type CreateHabitRequest struct {
	Name        string
	Description string
	Frequency   models.Frequency // empty means daily
	Archived    bool
	CategoryID  string // optional, must reference an existing category
}

// CreateHabit creates a new habit
func (m *Manager) CreateHabit(req CreateHabitRequest) (*models.Habit, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, fmt.Errorf("%w: habit name is required", ErrInvalidInput)
	}

	freq := req.Frequency
	if freq == "" {
		freq = models.FrequencyDaily
	}
	if !freq.Valid() {
		return nil, fmt.Errorf("%w: unknown frequency %q, use daily or weekly", ErrInvalidInput, req.Frequency)
	}

	habit := models.Habit{
		Name:        name,
		Description: strings.TrimSpace(req.Description),
		Frequency:   freq,
		Archived:    req.Archived,
	}

	if req.CategoryID != "" {
		category, err := m.CategoryByID(req.CategoryID)
		if err != nil {
			return nil, err
		}
		habit.CategoryID = &category.ID
	}

	if err := m.db.Create(&habit).Error; err != nil {
		return nil, m.writeErr("create habit", err)
	}

	return &habit, nil
}

// Habits returns every habit, newest first
func (m *Manager) Habits() ([]models.Habit, error) {
	var habits []models.Habit
	err := m.db.Preload("Category").Order("created_at DESC").Find(&habits).Error
	if err != nil {
		return nil, m.readErr("list habits", err)
	}
	return habits, nil
}

// ActiveHabits returns every non-archived habit, newest first
func (m *Manager) ActiveHabits() ([]models.Habit, error) {
	var habits []models.Habit
	err := m.db.Preload("Category").
		Where("archived = ?", false).
		Order("created_at DESC").
		Find(&habits).Error
	if err != nil {
		return nil, m.readErr("list active habits", err)
	}
	return habits, nil
}

// HabitByID retrieves a habit by its full ID
func (m *Manager) HabitByID(id string) (*models.Habit, error) {
	var habit models.Habit
	err := m.db.Preload("Category").First(&habit, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("%w: habit %q", ErrNotFound, id)
	}
	if err != nil {
		return nil, m.readErr("fetch habit", err)
	}
	return &habit, nil
}

// FindHabit resolves a habit from the ways users refer to one on the
// command line: a full ID, a unique ID prefix, or a name
// (case-insensitive).
func (m *Manager) FindHabit(ref string) (*models.Habit, error) {
	ref = strings.TrimSpace(ref)
	if ref == "" {
		return nil, fmt.Errorf("%w: empty habit reference", ErrInvalidInput)
	}

	var matches []models.Habit
	err := m.db.Preload("Category").Where("id LIKE ?", ref+"%").Find(&matches).Error
	if err != nil {
		return nil, m.readErr("resolve habit", err)
	}
	switch len(matches) {
	case 1:
		return &matches[0], nil
	case 0:
		// Fall through to name lookup
	default:
		return nil, fmt.Errorf("%w: habit ID prefix %q matches %d habits", ErrAmbiguous, ref, len(matches))
	}

	err = m.db.Preload("Category").Where("LOWER(name) = LOWER(?)", ref).Find(&matches).Error
	if err != nil {
		return nil, m.readErr("resolve habit", err)
	}
	switch len(matches) {
	case 0:
		return nil, fmt.Errorf("%w: habit %q", ErrNotFound, ref)
	case 1:
		return &matches[0], nil
	default:
		return nil, fmt.Errorf("%w: habit name %q matches %d habits", ErrAmbiguous, ref, len(matches))
	}
}

// UpdateHabitParams describes a partial update: nil fields leave the
// record untouched. ClearCategory removes the category link and wins over
// CategoryID.
type UpdateHabitParams struct {
	Name          *string
	Description   *string
	Frequency     *models.Frequency
	Archived      *bool
	CategoryID    *string
	ClearCategory bool
}

// UpdateHabit applies the supplied fields to a habit and persists it
func (m *Manager) UpdateHabit(id string, params UpdateHabitParams) (*models.Habit, error) {
	habit, err := m.HabitByID(id)
	if err != nil {
		return nil, err
	}

	if params.Name != nil {
		name := strings.TrimSpace(*params.Name)
		if name == "" {
			return nil, fmt.Errorf("%w: habit name is required", ErrInvalidInput)
		}
		habit.Name = name
	}
	if params.Description != nil {
		habit.Description = strings.TrimSpace(*params.Description)
	}
	if params.Frequency != nil {
		if !params.Frequency.Valid() {
			return nil, fmt.Errorf("%w: unknown frequency %q, use daily or weekly", ErrInvalidInput, *params.Frequency)
		}
		habit.Frequency = *params.Frequency
	}
	if params.Archived != nil {
		habit.Archived = *params.Archived
	}

	switch {
	case params.ClearCategory:
		habit.CategoryID = nil
		habit.Category = nil
	case params.CategoryID != nil:
		category, err := m.CategoryByID(*params.CategoryID)
		if err != nil {
			return nil, err
		}
		habit.CategoryID = &category.ID
		habit.Category = nil
	}

	// Omit associations so a preloaded category is not written back
	if err := m.db.Omit(clause.Associations).Save(habit).Error; err != nil {
		return nil, m.writeErr("update habit", err)
	}

	return habit, nil
}

// DeleteHabit removes a habit together with everything recorded against
// it. Completions go in the same transaction so a failed delete cannot
// leave orphaned rows behind.
func (m *Manager) DeleteHabit(id string) error {
	habit, err := m.HabitByID(id)
	if err != nil {
		return err
	}

	err = m.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("habit_id = ?", habit.ID).Delete(&models.Completion{}).Error; err != nil {
			return err
		}
		return tx.Delete(&models.Habit{}, "id = ?", habit.ID).Error
	})
	if err != nil {
		return m.writeErr("delete habit", err)
	}

	return nil
}
