package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

func (m Model) viewInput() string {
	box := inputBoxStyle
	if m.focus == focusInput {
		box = focusedBoxStyle
	}

	selected := 0
	if m.state.Toggle.Detailed {
		selected = 1
	}
	toggle := fieldLabel("Length:", m.focus == focusInput) + " " +
		renderRadio([]string{"Short", "Detailed"}, selected, m.focus == focusInput)

	return lipgloss.JoinVertical(lipgloss.Left,
		box.Render(m.input.View()),
		toggle,
	)
}

func fieldLabel(label string, focused bool) string {
	style := lipgloss.NewStyle().Width(8)
	if focused {
		style = style.Bold(true).Foreground(lipgloss.Color("39"))
	} else {
		style = style.Foreground(lipgloss.Color("252"))
	}
	return style.Render(label)
}

func renderRadio(options []string, selected int, focused bool) string {
	var parts []string
	for i, opt := range options {
		if i == selected {
			style := lipgloss.NewStyle().Bold(true)
			if focused {
				style = style.Foreground(lipgloss.Color("39"))
			} else {
				style = style.Foreground(lipgloss.Color("255"))
			}
			parts = append(parts, style.Render("● "+opt))
		} else {
			parts = append(parts, dimStyle.Render("○ "+opt))
		}
	}
	return strings.Join(parts, "   ")
}
