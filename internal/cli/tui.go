package cli

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// List styles
var (
	listSelectedStyle = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	listNormalStyle   = lipgloss.NewStyle().Foreground(colorWhite)
	listDimStyle      = lipgloss.NewStyle().Foreground(colorDim)
)

// =============================================================================
// ExampleListModel - Interactive example selection
// =============================================================================

// ExampleListModel is the bubbletea model for interactive example selection.
type ExampleListModel struct {
	Examples []exampleSpec
	Cursor   int
	Selected *exampleSpec
}

// NewExampleListModel creates a new example list model.
func NewExampleListModel(examples []exampleSpec) ExampleListModel {
	return ExampleListModel{Examples: examples}
}

func (m ExampleListModel) Init() tea.Cmd {
	return nil
}

func (m ExampleListModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "up", "k":
			if m.Cursor > 0 {
				m.Cursor--
			}
		case "down", "j":
			if m.Cursor < len(m.Examples)-1 {
				m.Cursor++
			}
		case "enter":
			m.Selected = &m.Examples[m.Cursor]
			return m, tea.Quit
		}
	}
	return m, nil
}

func (m ExampleListModel) View() string {
	var b strings.Builder

	b.WriteString(StyleTitle.Render("Select Example Circuit"))
	b.WriteString("\n")
	b.WriteString(listDimStyle.Render("↑/↓ navigate  ⏎ select  q quit"))
	b.WriteString("\n\n")

	for i, spec := range m.Examples {
		cursor := "  "
		if i == m.Cursor {
			cursor = "▸ "
		}

		line := fmt.Sprintf("%s%-10s %s", cursor, spec.Name, listDimStyle.Render(spec.Desc))
		if i == m.Cursor {
			b.WriteString(listSelectedStyle.Render(line))
		} else {
			b.WriteString(listNormalStyle.Render(line))
		}
		b.WriteString("\n")
	}

	return b.String()
}
