package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/jevan001/Turbomate-Ai/model"
)

func (m Model) viewSidebar() string {
	var b strings.Builder
	inner := sidebarWidth - 1

	b.WriteString(newChatStyle.Render(pad("+ New chat", inner-2)))
	b.WriteString("\n\n")
	b.WriteString(headerStyle.Render(pad("History", inner-2)))
	b.WriteString("\n")

	rows := max(m.height-4, 1)
	if len(m.state.History) == 0 {
		b.WriteString(dimStyle.Render("  No past chats"))
		b.WriteString("\n")
		rows--
	}

	// keep the cursor on screen
	offset := 0
	if m.cursor >= rows {
		offset = m.cursor - rows + 1
	}
	for i := offset; i < len(m.state.History) && i-offset < rows; i++ {
		b.WriteString(m.renderEntry(m.state.History[i], i, inner))
		b.WriteString("\n")
	}

	return sidebarStyle.Height(max(m.height, 1)).Width(inner).Render(b.String())
}

func (m Model) renderEntry(e model.HistoryEntry, i, width int) string {
	marker := "  "
	if m.focus == focusSidebar && i == m.cursor {
		marker = "› "
	}
	label := pad(marker+oneLine.Replace(e.Title), width-2)
	if e.Active {
		return selectedStyle.Render(label)
	}
	return normalStyle.Render(label)
}

// oneLine flattens titles taken from multi-line messages to a single row.
var oneLine = strings.NewReplacer("\r\n", " ", "\n", " ", "\r", " ")

// pad truncates or fills s to exactly width terminal cells.
func pad(s string, width int) string {
	runes := []rune(s)
	if n := runesFitting(runes, width); n < len(runes) {
		s = string(runes[:n])
	}
	return s + strings.Repeat(" ", max(width-lipgloss.Width(s), 0))
}
