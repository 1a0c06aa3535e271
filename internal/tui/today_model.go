package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/asetbek/habi/internal/db"
	"github.com/asetbek/habi/internal/models"
)

// keyMap defines the checklist keybindings
type keyMap struct {
	Up     key.Binding
	Down   key.Binding
	Toggle key.Binding
	Reload key.Binding
	Quit   key.Binding
}

// ShortHelp implements help.KeyMap
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Toggle, k.Up, k.Down, k.Reload, k.Quit}
}

// FullHelp implements help.KeyMap
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Toggle, k.Up, k.Down}, {k.Reload, k.Quit}}
}

var defaultKeys = keyMap{
	Up: key.NewBinding(
		key.WithKeys("up", "k"),
		key.WithHelp("↑/k", "move up"),
	),
	Down: key.NewBinding(
		key.WithKeys("down", "j"),
		key.WithHelp("↓/j", "move down"),
	),
	Toggle: key.NewBinding(
		key.WithKeys(" ", "enter"),
		key.WithHelp("space", "toggle"),
	),
	Reload: key.NewBinding(
		key.WithKeys("r"),
		key.WithHelp("r", "reload"),
	),
	Quit: key.NewBinding(
		key.WithKeys("q", "esc", "ctrl+c"),
		key.WithHelp("q", "quit"),
	),
}

// TodayModel is the TUI model for today's habit checklist
type TodayModel struct {
	width  int
	height int

	manager *db.Manager

	// Habit data, refreshed after every toggle
	habits   []models.Habit
	done     map[string]bool
	streaks  map[string]int
	selected int

	keys keyMap
	help help.Model

	err error
}

// NewTodayModel creates a checklist model over the given manager
func NewTodayModel(manager *db.Manager) TodayModel {
	model := TodayModel{
		manager: manager,
		done:    map[string]bool{},
		streaks: map[string]int{},
		keys:    defaultKeys,
		help:    help.New(),
	}
	model.reload()
	return model
}

// reload re-reads habits and their check state from the store
func (m *TodayModel) reload() {
	habits, err := m.manager.ActiveHabits()
	if err != nil {
		m.err = err
		return
	}

	m.habits = habits
	m.err = nil
	now := time.Now()
	for _, habit := range habits {
		completed, err := m.manager.IsCompleted(habit.ID, now)
		if err != nil {
			m.err = err
			return
		}
		m.done[habit.ID] = completed

		streak, err := m.manager.Streak(habit.ID)
		if err != nil {
			m.err = err
			return
		}
		m.streaks[habit.ID] = streak
	}

	if m.selected >= len(m.habits) {
		m.selected = len(m.habits) - 1
	}
	if m.selected < 0 {
		m.selected = 0
	}
}

// Init initializes the model
func (m TodayModel) Init() tea.Cmd {
	return nil
}

// Update handles messages
func (m TodayModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit

		case key.Matches(msg, m.keys.Up):
			if m.selected > 0 {
				m.selected--
			}
			return m, nil

		case key.Matches(msg, m.keys.Down):
			if m.selected < len(m.habits)-1 {
				m.selected++
			}
			return m, nil

		case key.Matches(msg, m.keys.Toggle):
			return m.toggleSelected(), nil

		case key.Matches(msg, m.keys.Reload):
			m.reload()
			return m, nil
		}
	}

	return m, nil
}

// toggleSelected flips today's completion for the habit under the cursor
func (m TodayModel) toggleSelected() TodayModel {
	if len(m.habits) == 0 {
		return m
	}

	habit := m.habits[m.selected]
	if err := m.manager.SetCompleted(habit.ID, time.Now(), !m.done[habit.ID]); err != nil {
		m.err = err
		return m
	}
	m.reload()
	return m
}

// View renders the checklist
func (m TodayModel) View() string {
	titleStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorAccentMain)).
		Bold(true)
	headerStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorSecondaryText))
	selectedStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorAccentBright)).
		Bold(true)
	normalStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorPrimaryText))
	checkStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorSuccess))
	streakStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorStreak))
	errorStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorError))

	var b strings.Builder

	b.WriteString(titleStyle.Render("habi"))
	b.WriteString("  ")
	b.WriteString(headerStyle.Render(time.Now().Format("Mon, 02 Jan 2006")))
	b.WriteString("\n\n")

	if m.err != nil {
		b.WriteString(errorStyle.Render(fmt.Sprintf("Error: %v", m.err)))
		b.WriteString("\n\n")
	}

	if len(m.habits) == 0 {
		b.WriteString(headerStyle.Render("No active habits. Add one with 'habi add'."))
		b.WriteString("\n")
	}

	for i, habit := range m.habits {
		check := "[ ]"
		if m.done[habit.ID] {
			check = checkStyle.Render("[✓]")
		}

		name := habit.Name
		if habit.Category != nil {
			name = fmt.Sprintf("%s · %s", name, habit.Category.Name)
		}

		row := fmt.Sprintf("%s %s", check, name)
		if streak := m.streaks[habit.ID]; streak > 0 {
			row = fmt.Sprintf("%s  %s", row, streakStyle.Render(fmt.Sprintf("🔥%d", streak)))
		}

		cursor := "  "
		if i == m.selected {
			cursor = "❯ "
			row = selectedStyle.Render(row)
		} else {
			row = normalStyle.Render(row)
		}

		b.WriteString(cursor + row + "\n")
	}

	b.WriteString("\n")
	b.WriteString(m.help.View(m.keys))
	b.WriteString("\n")

	return b.String()
}
