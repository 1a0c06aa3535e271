package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/asetbek/habi/internal/db"
)

// RunTodayTUI starts the interactive checklist for today's habits
func RunTodayTUI(manager *db.Manager) error {
	model := NewTodayModel(manager)

	p := tea.NewProgram(model, tea.WithAltScreen())
	_, err := p.Run()
	return err
}
