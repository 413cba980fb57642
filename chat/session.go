package chat

import (
	"github.com/jevan001/Turbomate-Ai/model"
	"github.com/samber/lo"
)

const Greeting = "Hello! I'm TurboMate. I can help you summarize documents, draft essays, or answer questions. How can I help you today?"

const (
	titleLimit = 25
	ellipsis   = "..."
)

// Title derives a history title from a message: the first 25 characters,
// with "..." appended only when the text is longer than that.
func Title(text string) string {
	runes := []rune(text)
	if len(runes) <= titleLimit {
		return text
	}
	return string(runes[:titleLimit]) + ellipsis
}

// StartNewChat archives the current session and resets the conversation to
// the greeting. A session with no user message leaves no history entry.
// Replies already scheduled against the old session still fire and land in
// the new one.
func StartNewChat(v *ViewState) {
	if first, ok := v.FirstUserMessage(); ok {
		entry := model.HistoryEntry{
			ID:    v.newID(),
			Title: Title(first.Text),
		}
		v.History = append([]model.HistoryEntry{entry}, v.History...)
		v.log.Debug("session archived", "id", entry.ID, "title", entry.Title, "messages", len(v.Messages))
	}

	v.Messages = nil
	v.Anchor = -1
	Render(v, Greeting, model.SenderAssistant)

	v.clearActive()
	v.touch()
}

// Select marks the entry with the given ID as the only active one. Selection
// is cosmetic; the archived conversation is not restored. Unknown IDs change
// nothing and report false.
func Select(v *ViewState, id string) bool {
	_, idx, ok := lo.FindIndexOf(v.History, func(e model.HistoryEntry) bool {
		return e.ID == id
	})
	if !ok {
		return false
	}
	v.clearActive()
	v.History[idx].Active = true
	v.touch()
	v.log.Debug("history entry selected", "id", id, "position", idx)
	return true
}
