// Package picker provides the interactive bundle picker used by
// `clkit search --pick`.
package picker

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/codalab/clkit/internal/usecase"
	"github.com/muesli/reflow/truncate"
)

const shortUUIDLen = 10

// Model is the bundle picker TUI model.
// Fields are ordered to minimize memory padding.
type Model struct {
	// State
	matches []usecase.SearchMatch

	// Components
	keys   KeyMap
	styles Styles

	// Numeric state
	cursor int
	width  int
	height int

	// Boolean state
	picked bool
}

// New creates a new picker model over the search matches.
func New(matches []usecase.SearchMatch) *Model {
	return &Model{
		matches: matches,
		keys:    DefaultKeyMap(),
		styles:  DefaultStyles(),
	}
}

// Init initializes the model.
func (m *Model) Init() tea.Cmd {
	return nil
}

// Update handles messages.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Up):
			if m.cursor > 0 {
				m.cursor--
			}
		case key.Matches(msg, m.keys.Down):
			if m.cursor < len(m.matches)-1 {
				m.cursor++
			}
		case key.Matches(msg, m.keys.Pick):
			if len(m.matches) > 0 {
				m.picked = true
			}
			return m, tea.Quit
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		}
	}
	return m, nil
}

// View renders the picker.
func (m *Model) View() string {
	s := m.styles.Title.Render("Select a bundle to re-inject") + "\n"

	lineWidth := m.width
	if lineWidth == 0 {
		lineWidth = 80
	}

	for i, match := range m.matches {
		row := fmt.Sprintf("%s  %-20s  %s", shortUUID(match.UUID), match.Name, match.Line)
		row = truncate.StringWithTail(row, uint(lineWidth-4), "…") //nolint:gosec // width is a small positive terminal dimension
		if i == m.cursor {
			s += m.styles.Selected.Render("> "+row) + "\n"
		} else {
			s += m.styles.Normal.Render("  "+row) + "\n"
		}
	}

	s += m.styles.Help.Render("↑/↓ move · enter inject · q cancel")
	return s
}

// Picked returns the selected match, if any.
func (m *Model) Picked() (usecase.SearchMatch, bool) {
	if !m.picked || m.cursor >= len(m.matches) {
		return usecase.SearchMatch{}, false
	}
	return m.matches[m.cursor], true
}

// shortUUID trims a bundle uuid for display.
func shortUUID(uuid string) string {
	if len(uuid) > shortUUIDLen {
		return uuid[:shortUUIDLen]
	}
	return uuid
}
