package ui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
)

// Choice is one entry in a Choose list.
type Choice struct {
	Label  string // wallet name
	Detail string // dimmed, e.g. truncated address
	Value  string
}

type chooseModel struct {
	title    string
	choices  []Choice
	cursor   int
	picked   string
	canceled bool
}

func (m chooseModel) Init() tea.Cmd { return nil }

func (m chooseModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	switch key.String() {
	case "q", "ctrl+c", "esc":
		m.canceled = true
		return m, tea.Quit
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < len(m.choices)-1 {
			m.cursor++
		}
	case "enter", " ":
		m.picked = m.choices[m.cursor].Value
		return m, tea.Quit
	}
	return m, nil
}

func (m chooseModel) View() string {
	if m.canceled || m.picked != "" {
		return ""
	}
	var sb strings.Builder
	sb.WriteString(StyleTitle.Render(m.title) + "\n")
	for i, c := range m.choices {
		line := "  " + StyleValue.Render(c.Label)
		if c.Detail != "" {
			line += "  " + StyleMeta.Render(c.Detail)
		}
		if i == m.cursor {
			line = StyleSelected.Render("▸ " + c.Label + "  " + c.Detail)
		}
		sb.WriteString(line + "\n")
	}
	sb.WriteString("\n" + StyleMeta.Render("↑/↓ move · Enter select · q cancel"))
	return StyleBorder.Render(sb.String()) + "\n"
}

// Choose shows a list and returns the Value of the selected entry, or ""
// when the user cancels.
func Choose(title string, choices []Choice) (string, error) {
	if len(choices) == 0 {
		return "", fmt.Errorf("nothing to choose from")
	}
	final, err := tea.NewProgram(chooseModel{title: title, choices: choices}).Run()
	if err != nil {
		return "", fmt.Errorf("choose: %w", err)
	}
	return final.(chooseModel).picked, nil
}
