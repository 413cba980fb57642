package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/jevan001/Turbomate-Ai/model"
)

const assistantIcon = "🤖"

// renderConversation renders every message as a bubble, one blank line apart.
func (m Model) renderConversation() string {
	width := max(m.chatWidth(), 20)
	blocks := make([]string, 0, len(m.state.Messages))
	for _, msg := range m.state.Messages {
		blocks = append(blocks, renderMessage(msg, width, m.userLabel))
	}
	return strings.Join(blocks, "\n\n")
}

// renderMessage lays out one message: assistant messages show the avatar
// then the text on the left, user messages show the text then the avatar
// label on the right.
func renderMessage(msg model.Message, width int, userLabel string) string {
	bubbleWidth := max(width*3/4, 10)
	lines := wrapText(msg.Text, bubbleWidth-2) // bubble padding

	switch msg.Sender {
	case model.SenderUser:
		bubble := userBubbleStyle.Render(strings.Join(lines, "\n"))
		row := lipgloss.JoinHorizontal(lipgloss.Top, bubble, " ", userAvatarStyle.Render(userLabel))
		return lipgloss.PlaceHorizontal(width, lipgloss.Right, row)
	default:
		bubble := assistantBubbleStyle.Render(strings.Join(lines, "\n"))
		return lipgloss.JoinHorizontal(lipgloss.Top, assistantAvatarStyle.Render(assistantIcon), " ", bubble)
	}
}

// wrapText splits text into lines that fit within maxWidth terminal cells,
// breaking on spaces where possible.
func wrapText(text string, maxWidth int) []string {
	if maxWidth < 1 {
		maxWidth = 1
	}
	var result []string
	for _, line := range strings.Split(text, "\n") {
		if line == "" {
			result = append(result, "")
			continue
		}
		runes := []rune(line)
		for lipgloss.Width(string(runes)) > maxWidth {
			// a glyph wider than the line still takes a line of its own
			cut := max(runesFitting(runes, maxWidth), 1)
			if cut < len(runes) {
				if i := lastSpace(runes[:cut+1]); i > 0 {
					cut = i
				}
			}
			result = append(result, strings.TrimRight(string(runes[:cut]), " "))
			runes = []rune(strings.TrimLeft(string(runes[cut:]), " "))
		}
		if len(runes) > 0 {
			result = append(result, string(runes))
		}
	}
	return result
}

// runesFitting returns how many leading runes fit in width cells.
func runesFitting(runes []rune, width int) int {
	used := 0
	for i, r := range runes {
		used += lipgloss.Width(string(r))
		if used > width {
			return i
		}
	}
	return len(runes)
}

func lastSpace(runes []rune) int {
	for i := len(runes) - 1; i >= 0; i-- {
		if runes[i] == ' ' {
			return i
		}
	}
	return -1
}
