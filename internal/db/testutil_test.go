package db

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/asetbek/habi/internal/models"
)

// newTestManager returns a manager over a fresh in-memory store
func newTestManager(t *testing.T) *Manager {
	t.Helper()

	gdb, err := OpenMemory()
	require.NoError(t, err, "failed to open test database")

	t.Cleanup(func() {
		if err := Close(gdb); err != nil {
			t.Errorf("failed to close test database: %v", err)
		}
	})

	return NewManager(gdb, zap.NewNop())
}

// mustCreateHabit creates a habit or fails the test
func mustCreateHabit(t *testing.T, m *Manager, name string) *models.Habit {
	t.Helper()

	habit, err := m.CreateHabit(CreateHabitRequest{Name: name})
	require.NoError(t, err)
	return habit
}

// setCreatedAt backdates a habit so ordering tests have distinct
// timestamps
func setCreatedAt(t *testing.T, m *Manager, habit *models.Habit, at time.Time) {
	t.Helper()

	err := m.db.Model(&models.Habit{}).
		Where("id = ?", habit.ID).
		Update("created_at", at).Error
	require.NoError(t, err)
}

// daysAgo returns midnight local time n days before today
func daysAgo(n int) time.Time {
	return startOfDay(time.Now()).AddDate(0, 0, -n)
}
