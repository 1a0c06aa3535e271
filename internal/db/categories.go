package db

import (
	"errors"
	"fmt"
	"strings"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/asetbek/habi/internal/models"
)

// CreateCategory creates a new category. Color is optional.
func (m *Manager) CreateCategory(name, color string) (*models.Category, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, fmt.Errorf("%w: category name is required", ErrInvalidInput)
	}

	category := models.Category{
		Name:  name,
		Color: strings.TrimSpace(color),
	}

	if err := m.db.Create(&category).Error; err != nil {
		return nil, m.writeErr("create category", err)
	}

	return &category, nil
}

// Categories returns every category sorted by name
func (m *Manager) Categories() ([]models.Category, error) {
	var categories []models.Category
	if err := m.db.Order("name ASC").Find(&categories).Error; err != nil {
		return nil, m.readErr("list categories", err)
	}
	return categories, nil
}

// CategoryByID retrieves a category by its full ID
func (m *Manager) CategoryByID(id string) (*models.Category, error) {
	var category models.Category
	err := m.db.First(&category, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("%w: category %q", ErrNotFound, id)
	}
	if err != nil {
		return nil, m.readErr("fetch category", err)
	}
	return &category, nil
}

// FindCategory resolves a category from a full ID, a unique ID prefix, or
// a name (case-insensitive)
func (m *Manager) FindCategory(ref string) (*models.Category, error) {
	ref = strings.TrimSpace(ref)
	if ref == "" {
		return nil, fmt.Errorf("%w: empty category reference", ErrInvalidInput)
	}

	var matches []models.Category
	if err := m.db.Where("id LIKE ?", ref+"%").Find(&matches).Error; err != nil {
		return nil, m.readErr("resolve category", err)
	}
	switch len(matches) {
	case 1:
		return &matches[0], nil
	case 0:
		// Fall through to name lookup
	default:
		return nil, fmt.Errorf("%w: category ID prefix %q matches %d categories", ErrAmbiguous, ref, len(matches))
	}

	if err := m.db.Where("LOWER(name) = LOWER(?)", ref).Find(&matches).Error; err != nil {
		return nil, m.readErr("resolve category", err)
	}
	switch len(matches) {
	case 0:
		return nil, fmt.Errorf("%w: category %q", ErrNotFound, ref)
	case 1:
		return &matches[0], nil
	default:
		return nil, fmt.Errorf("%w: category name %q matches %d categories", ErrAmbiguous, ref, len(matches))
	}
}

// UpdateCategoryParams describes a partial update: nil fields leave the
// record untouched
type UpdateCategoryParams struct {
	Name  *string
	Color *string
}

// UpdateCategory applies the supplied fields to a category and persists it
func (m *Manager) UpdateCategory(id string, params UpdateCategoryParams) (*models.Category, error) {
	category, err := m.CategoryByID(id)
	if err != nil {
		return nil, err
	}

	if params.Name != nil {
		name := strings.TrimSpace(*params.Name)
		if name == "" {
			return nil, fmt.Errorf("%w: category name is required", ErrInvalidInput)
		}
		category.Name = name
	}
	if params.Color != nil {
		category.Color = strings.TrimSpace(*params.Color)
	}

	if err := m.db.Omit(clause.Associations).Save(category).Error; err != nil {
		return nil, m.writeErr("update category", err)
	}

	return category, nil
}

// DeleteCategory removes a category. Habits that referenced it are kept
// and simply lose the link; the unlink and the delete run in one
// transaction.
func (m *Manager) DeleteCategory(id string) error {
	category, err := m.CategoryByID(id)
	if err != nil {
		return err
	}

	err = m.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&models.Habit{}).
			Where("category_id = ?", category.ID).
			Update("category_id", nil).Error; err != nil {
			return err
		}
		return tx.Delete(&models.Category{}, "id = ?", category.ID).Error
	})
	if err != nil {
		return m.writeErr("delete category", err)
	}

	return nil
}
