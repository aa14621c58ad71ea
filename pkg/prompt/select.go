package prompt

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
)

// selectModel represents the Bubble Tea model for workspace selection.
type selectModel struct {
	choices         []string
	filteredChoices []string
	cursor          int
	filter          string
	selected        *string
	quitting        bool
}

// initialSelectModel creates a new select model.
func initialSelectModel(choices []string) selectModel {
	return selectModel{
		choices:         choices,
		filteredChoices: choices,
	}
}

// Init initializes the model.
func (m selectModel) Init() tea.Cmd {
	return nil
}

// Update handles messages and updates the model.
func (m selectModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		return m.handleKeyInput(msg)
	}

	return m, nil
}

// handleKeyInput processes key input and returns the updated model and command.
func (m selectModel) handleKeyInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyCtrlC:
		m.quitting = true
		return m, tea.Quit
	case tea.KeyEnter:
		if len(m.filteredChoices) > 0 && m.cursor < len(m.filteredChoices) {
			selected := m.filteredChoices[m.cursor]
			m.selected = &selected
			return m, tea.Quit
		}
	case tea.KeyUp:
		if m.cursor > 0 {
			m.cursor--
		}
	case tea.KeyDown:
		if m.cursor < len(m.filteredChoices)-1 {
			m.cursor++
		}
	case tea.KeyBackspace:
		if len(m.filter) > 0 {
			m.filter = m.filter[:len(m.filter)-1]
			m = m.updateFilteredChoices()
		}
	case tea.KeyEsc:
		m.filter = ""
		m = m.updateFilteredChoices()
	case tea.KeyRunes:
		// Names can contain any printable rune, so every rune goes to the filter
		m.filter += string(msg.Runes)
		m = m.updateFilteredChoices()
	}

	return m, nil
}

// updateFilteredChoices updates the filtered choices based on the current filter.
func (m selectModel) updateFilteredChoices() selectModel {
	if m.filter == "" {
		m.filteredChoices = m.choices
	} else {
		m.filteredChoices = []string{}

		filterLower := strings.ToLower(m.filter)
		for _, choice := range m.choices {
			if strings.Contains(strings.ToLower(choice), filterLower) {
				m.filteredChoices = append(m.filteredChoices, choice)
			}
		}
	}

	// Reset cursor if it's out of bounds
	if m.cursor >= len(m.filteredChoices) || m.cursor < 0 {
		m.cursor = 0
	}

	return m
}

// View renders the UI.
func (m selectModel) View() string {
	if m.quitting {
		return ""
	}

	var s strings.Builder

	s.WriteString("? Choose the workspace to delete:  [Use arrows to move, type to filter]\n\n")

	if m.filter != "" {
		s.WriteString(fmt.Sprintf("Filter: %s\n\n", m.filter))
	}

	for i, choice := range m.filteredChoices {
		cursor := " "
		if m.cursor == i {
			cursor = ">"
		}
		s.WriteString(fmt.Sprintf("%s %s\n", cursor, choice))
	}

	s.WriteString("\nPress Enter to select, Ctrl+C to quit")
	if m.filter != "" {
		s.WriteString(", Esc to clear filter")
	}

	return s.String()
}

// promptSelectBubbleTea runs the Bubble Tea program for workspace selection.
func promptSelectBubbleTea(choices []string) (string, error) {
	if len(choices) == 0 {
		return "", ErrNoChoices
	}

	finalModel, err := tea.NewProgram(initialSelectModel(choices)).Run()
	if err != nil {
		return "", fmt.Errorf("failed to run selection program: %w", err)
	}

	model, ok := finalModel.(selectModel)
	if !ok {
		return "", fmt.Errorf("unexpected model type")
	}

	// Check if user quit without selecting
	if model.selected == nil {
		return "", ErrNoSelection
	}

	return *model.selected, nil
}
