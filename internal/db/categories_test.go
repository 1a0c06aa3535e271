package db

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateCategory(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		m := newTestManager(t)

		category, err := m.CreateCategory("Health", "green")
		require.NoError(t, err)

		assert.NotEmpty(t, category.ID)
		assert.Equal(t, "Health", category.Name)
		assert.Equal(t, "green", category.Color)
	})

	t.Run("empty_name", func(t *testing.T) {
		m := newTestManager(t)

		_, err := m.CreateCategory("  ", "")
		assert.ErrorIs(t, err, ErrInvalidInput)
	})
}

func TestCategoriesSortedByName(t *testing.T) {
	m := newTestManager(t)

	for _, name := range []string{"Work", "Health", "Mind"} {
		_, err := m.CreateCategory(name, "")
		require.NoError(t, err)
	}

	categories, err := m.Categories()
	require.NoError(t, err)
	require.Len(t, categories, 3)

	assert.Equal(t, "Health", categories[0].Name)
	assert.Equal(t, "Mind", categories[1].Name)
	assert.Equal(t, "Work", categories[2].Name)
}

func TestUpdateCategory(t *testing.T) {
	m := newTestManager(t)

	category, err := m.CreateCategory("Health", "green")
	require.NoError(t, err)

	t.Run("partial_update", func(t *testing.T) {
		color := "blue"
		updated, err := m.UpdateCategory(category.ID, UpdateCategoryParams{Color: &color})
		require.NoError(t, err)

		assert.Equal(t, "blue", updated.Color)
		assert.Equal(t, "Health", updated.Name, "name untouched")
	})

	t.Run("empty_name_rejected", func(t *testing.T) {
		name := " "
		_, err := m.UpdateCategory(category.ID, UpdateCategoryParams{Name: &name})
		assert.ErrorIs(t, err, ErrInvalidInput)
	})

	t.Run("unknown_category", func(t *testing.T) {
		_, err := m.UpdateCategory("missing", UpdateCategoryParams{})
		assert.ErrorIs(t, err, ErrNotFound)
	})
}

func TestDeleteCategoryKeepsHabits(t *testing.T) {
	m := newTestManager(t)

	category, err := m.CreateCategory("Health", "")
	require.NoError(t, err)
	habit, err := m.CreateHabit(CreateHabitRequest{Name: "Run", CategoryID: category.ID})
	require.NoError(t, err)

	require.NoError(t, m.DeleteCategory(category.ID))

	_, err = m.CategoryByID(category.ID)
	assert.ErrorIs(t, err, ErrNotFound)

	// The habit survives with the link removed
	fetched, err := m.HabitByID(habit.ID)
	require.NoError(t, err)
	assert.Nil(t, fetched.CategoryID)
}

func TestFindCategory(t *testing.T) {
	t.Run("by_prefix_and_name", func(t *testing.T) {
		m := newTestManager(t)

		category, err := m.CreateCategory("Health", "")
		require.NoError(t, err)

		byPrefix, err := m.FindCategory(category.ID[:8])
		require.NoError(t, err)
		assert.Equal(t, category.ID, byPrefix.ID)

		byName, err := m.FindCategory("health")
		require.NoError(t, err)
		assert.Equal(t, category.ID, byName.ID)
	})

	t.Run("not_found", func(t *testing.T) {
		m := newTestManager(t)

		_, err := m.FindCategory("zzz")
		assert.ErrorIs(t, err, ErrNotFound)
	})
}
