package db

import (
	"fmt"
	"time"

	"github.com/asetbek/habi/internal/models"
)

// Streak counts consecutive completed days ending today, walking backward
// until the first gap. A habit with nothing marked today has a streak of
// zero no matter what came before. Each day of streak costs one store
// lookup, which is fine at human scale but worth knowing: this is not
// O(1).
func (m *Manager) Streak(habitID string) (int, error) {
	day := startOfDay(time.Now())
	streak := 0

	for {
		done, err := m.IsCompleted(habitID, day)
		if err != nil {
			return 0, err
		}
		if !done {
			return streak, nil
		}
		streak++
		day = day.AddDate(0, 0, -1)
	}
}

// CompletionRate returns the percentage of days in the trailing window
// that have a completion. The window runs from days ago through the end
// of today, using the same day boundaries as CompletionsBetween. days
// must be positive.
func (m *Manager) CompletionRate(habitID string, days int) (float64, error) {
	if days <= 0 {
		return 0, fmt.Errorf("%w: days must be positive, got %d", ErrInvalidInput, days)
	}

	today := startOfDay(time.Now())
	start := today.AddDate(0, 0, -days)
	_, end := dayInterval(today)

	var count int64
	err := m.db.Model(&models.Completion{}).
		Where("habit_id = ? AND date >= ? AND date < ?", habitID, start, end).
		Count(&count).Error
	if err != nil {
		return 0, m.readErr("count completions", err)
	}

	return float64(count) / float64(days) * 100, nil
}
