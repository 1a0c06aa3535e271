package db

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/asetbek/habi/internal/models"
)

func TestCreateHabit(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		m := newTestManager(t)

		habit, err := m.CreateHabit(CreateHabitRequest{
			Name:        "Read 20 pages",
			Description: "Before bed",
			Frequency:   models.FrequencyWeekly,
		})
		require.NoError(t, err)

		assert.NotEmpty(t, habit.ID)
		assert.Equal(t, "Read 20 pages", habit.Name)
		assert.Equal(t, "Before bed", habit.Description)
		assert.Equal(t, models.FrequencyWeekly, habit.Frequency)
		assert.False(t, habit.Archived)
		assert.Nil(t, habit.CategoryID)
		assert.False(t, habit.CreatedAt.IsZero())
	})

	t.Run("trims_name", func(t *testing.T) {
		m := newTestManager(t)

		habit, err := m.CreateHabit(CreateHabitRequest{Name: "  Meditate  "})
		require.NoError(t, err)
		assert.Equal(t, "Meditate", habit.Name)
	})

	t.Run("empty_name", func(t *testing.T) {
		m := newTestManager(t)

		_, err := m.CreateHabit(CreateHabitRequest{Name: "   "})
		assert.ErrorIs(t, err, ErrInvalidInput)
	})

	t.Run("default_frequency_daily", func(t *testing.T) {
		m := newTestManager(t)

		habit, err := m.CreateHabit(CreateHabitRequest{Name: "Stretch"})
		require.NoError(t, err)
		assert.Equal(t, models.FrequencyDaily, habit.Frequency)
	})

	t.Run("unknown_frequency", func(t *testing.T) {
		m := newTestManager(t)

		_, err := m.CreateHabit(CreateHabitRequest{Name: "Stretch", Frequency: "hourly"})
		assert.ErrorIs(t, err, ErrInvalidInput)
	})

	t.Run("with_category", func(t *testing.T) {
		m := newTestManager(t)

		category, err := m.CreateCategory("Health", "green")
		require.NoError(t, err)

		habit, err := m.CreateHabit(CreateHabitRequest{Name: "Run", CategoryID: category.ID})
		require.NoError(t, err)
		require.NotNil(t, habit.CategoryID)
		assert.Equal(t, category.ID, *habit.CategoryID)
	})

	t.Run("missing_category", func(t *testing.T) {
		m := newTestManager(t)

		_, err := m.CreateHabit(CreateHabitRequest{Name: "Run", CategoryID: "nope"})
		assert.ErrorIs(t, err, ErrNotFound)
	})
}

func TestHabitsOrdering(t *testing.T) {
	m := newTestManager(t)

	oldest := mustCreateHabit(t, m, "Oldest")
	middle := mustCreateHabit(t, m, "Middle")
	newest := mustCreateHabit(t, m, "Newest")

	now := time.Now()
	setCreatedAt(t, m, oldest, now.AddDate(0, 0, -2))
	setCreatedAt(t, m, middle, now.AddDate(0, 0, -1))
	setCreatedAt(t, m, newest, now)

	habits, err := m.Habits()
	require.NoError(t, err)
	require.Len(t, habits, 3)

	assert.Equal(t, "Newest", habits[0].Name)
	assert.Equal(t, "Middle", habits[1].Name)
	assert.Equal(t, "Oldest", habits[2].Name)
}

func TestActiveHabits(t *testing.T) {
	m := newTestManager(t)

	mustCreateHabit(t, m, "Active one")
	_, err := m.CreateHabit(CreateHabitRequest{Name: "Shelved", Archived: true})
	require.NoError(t, err)

	habits, err := m.ActiveHabits()
	require.NoError(t, err)
	require.Len(t, habits, 1)
	assert.Equal(t, "Active one", habits[0].Name)

	all, err := m.Habits()
	require.NoError(t, err)
	assert.Len(t, all, 2)
}

func TestUpdateHabit(t *testing.T) {
	t.Run("partial_update_touches_only_given_fields", func(t *testing.T) {
		m := newTestManager(t)

		category, err := m.CreateCategory("Mind", "")
		require.NoError(t, err)
		habit, err := m.CreateHabit(CreateHabitRequest{
			Name:        "Journal",
			Description: "Three lines",
			CategoryID:  category.ID,
		})
		require.NoError(t, err)

		weekly := models.FrequencyWeekly
		updated, err := m.UpdateHabit(habit.ID, UpdateHabitParams{Frequency: &weekly})
		require.NoError(t, err)

		assert.Equal(t, models.FrequencyWeekly, updated.Frequency)
		assert.Equal(t, "Journal", updated.Name)
		assert.Equal(t, "Three lines", updated.Description)
		assert.False(t, updated.Archived)
		require.NotNil(t, updated.CategoryID)
		assert.Equal(t, category.ID, *updated.CategoryID)
	})

	t.Run("rename_and_archive", func(t *testing.T) {
		m := newTestManager(t)
		habit := mustCreateHabit(t, m, "Jog")

		name := "Run 5k"
		archived := true
		updated, err := m.UpdateHabit(habit.ID, UpdateHabitParams{Name: &name, Archived: &archived})
		require.NoError(t, err)

		assert.Equal(t, "Run 5k", updated.Name)
		assert.True(t, updated.Archived)
	})

	t.Run("empty_name_rejected", func(t *testing.T) {
		m := newTestManager(t)
		habit := mustCreateHabit(t, m, "Jog")

		name := "  "
		_, err := m.UpdateHabit(habit.ID, UpdateHabitParams{Name: &name})
		assert.ErrorIs(t, err, ErrInvalidInput)
	})

	t.Run("clear_category", func(t *testing.T) {
		m := newTestManager(t)

		category, err := m.CreateCategory("Mind", "")
		require.NoError(t, err)
		habit, err := m.CreateHabit(CreateHabitRequest{Name: "Journal", CategoryID: category.ID})
		require.NoError(t, err)

		updated, err := m.UpdateHabit(habit.ID, UpdateHabitParams{ClearCategory: true})
		require.NoError(t, err)
		assert.Nil(t, updated.CategoryID)

		// And it stays cleared after a re-read
		fetched, err := m.HabitByID(habit.ID)
		require.NoError(t, err)
		assert.Nil(t, fetched.CategoryID)
	})

	t.Run("unknown_habit", func(t *testing.T) {
		m := newTestManager(t)

		_, err := m.UpdateHabit("missing", UpdateHabitParams{})
		assert.ErrorIs(t, err, ErrNotFound)
	})
}

func TestDeleteHabitCascades(t *testing.T) {
	m := newTestManager(t)

	habit := mustCreateHabit(t, m, "Walk")
	other := mustCreateHabit(t, m, "Swim")

	_, err := m.CreateCompletion(habit.ID, daysAgo(0), "")
	require.NoError(t, err)
	_, err = m.CreateCompletion(habit.ID, daysAgo(1), "")
	require.NoError(t, err)
	_, err = m.CreateCompletion(other.ID, daysAgo(0), "")
	require.NoError(t, err)

	require.NoError(t, m.DeleteHabit(habit.ID))

	_, err = m.HabitByID(habit.ID)
	assert.ErrorIs(t, err, ErrNotFound)

	completions, err := m.CompletionsForHabit(habit.ID)
	require.NoError(t, err)
	assert.Empty(t, completions)

	// The other habit's history is untouched
	kept, err := m.CompletionsForHabit(other.ID)
	require.NoError(t, err)
	assert.Len(t, kept, 1)
}

func TestFindHabit(t *testing.T) {
	t.Run("by_id_prefix", func(t *testing.T) {
		m := newTestManager(t)
		habit := mustCreateHabit(t, m, "Read")

		found, err := m.FindHabit(habit.ID[:8])
		require.NoError(t, err)
		assert.Equal(t, habit.ID, found.ID)
	})

	t.Run("by_name_case_insensitive", func(t *testing.T) {
		m := newTestManager(t)
		habit := mustCreateHabit(t, m, "Read 20 Pages")

		found, err := m.FindHabit("read 20 pages")
		require.NoError(t, err)
		assert.Equal(t, habit.ID, found.ID)
	})

	t.Run("ambiguous_name", func(t *testing.T) {
		m := newTestManager(t)
		mustCreateHabit(t, m, "Read")
		mustCreateHabit(t, m, "read")

		_, err := m.FindHabit("READ")
		assert.ErrorIs(t, err, ErrAmbiguous)
	})

	t.Run("not_found", func(t *testing.T) {
		m := newTestManager(t)

		_, err := m.FindHabit("zzz")
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("empty_reference", func(t *testing.T) {
		m := newTestManager(t)

		_, err := m.FindHabit("  ")
		assert.ErrorIs(t, err, ErrInvalidInput)
	})
}
