package db

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStreak(t *testing.T) {
	t.Run("three_consecutive_days", func(t *testing.T) {
		m := newTestManager(t)
		habit := mustCreateHabit(t, m, "Read")

		for _, n := range []int{0, 1, 2} {
			require.NoError(t, m.SetCompleted(habit.ID, daysAgo(n), true))
		}
		// Gap at three days ago, then an older completion that must not count
		require.NoError(t, m.SetCompleted(habit.ID, daysAgo(4), true))

		streak, err := m.Streak(habit.ID)
		require.NoError(t, err)
		assert.Equal(t, 3, streak)
	})

	t.Run("zero_without_today", func(t *testing.T) {
		m := newTestManager(t)
		habit := mustCreateHabit(t, m, "Read")

		require.NoError(t, m.SetCompleted(habit.ID, daysAgo(1), true))
		require.NoError(t, m.SetCompleted(habit.ID, daysAgo(2), true))

		streak, err := m.Streak(habit.ID)
		require.NoError(t, err)
		assert.Equal(t, 0, streak)
	})

	t.Run("zero_with_no_history", func(t *testing.T) {
		m := newTestManager(t)
		habit := mustCreateHabit(t, m, "Read")

		streak, err := m.Streak(habit.ID)
		require.NoError(t, err)
		assert.Equal(t, 0, streak)
	})

	t.Run("today_only", func(t *testing.T) {
		m := newTestManager(t)
		habit := mustCreateHabit(t, m, "Read")

		require.NoError(t, m.SetCompleted(habit.ID, daysAgo(0), true))

		streak, err := m.Streak(habit.ID)
		require.NoError(t, err)
		assert.Equal(t, 1, streak)
	})
}

func TestCompletionRate(t *testing.T) {
	t.Run("three_of_seven", func(t *testing.T) {
		m := newTestManager(t)
		habit := mustCreateHabit(t, m, "Read")

		for _, n := range []int{0, 2, 4} {
			require.NoError(t, m.SetCompleted(habit.ID, daysAgo(n), true))
		}

		rate, err := m.CompletionRate(habit.ID, 7)
		require.NoError(t, err)
		assert.InDelta(t, 3.0/7.0*100, rate, 0.001)
	})

	t.Run("only_this_habit_counts", func(t *testing.T) {
		m := newTestManager(t)
		habit := mustCreateHabit(t, m, "Read")
		other := mustCreateHabit(t, m, "Run")

		require.NoError(t, m.SetCompleted(habit.ID, daysAgo(0), true))
		require.NoError(t, m.SetCompleted(other.ID, daysAgo(0), true))
		require.NoError(t, m.SetCompleted(other.ID, daysAgo(1), true))

		rate, err := m.CompletionRate(habit.ID, 10)
		require.NoError(t, err)
		assert.InDelta(t, 10.0, rate, 0.001)
	})

	t.Run("old_completions_excluded", func(t *testing.T) {
		m := newTestManager(t)
		habit := mustCreateHabit(t, m, "Read")

		require.NoError(t, m.SetCompleted(habit.ID, daysAgo(30), true))

		rate, err := m.CompletionRate(habit.ID, 7)
		require.NoError(t, err)
		assert.Zero(t, rate)
	})

	t.Run("non_positive_window_rejected", func(t *testing.T) {
		m := newTestManager(t)
		habit := mustCreateHabit(t, m, "Read")

		_, err := m.CompletionRate(habit.ID, 0)
		assert.ErrorIs(t, err, ErrInvalidInput)

		_, err = m.CompletionRate(habit.ID, -3)
		assert.ErrorIs(t, err, ErrInvalidInput)
	})
}
