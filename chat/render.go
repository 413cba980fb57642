package chat

import "github.com/jevan001/Turbomate-Ai/model"

// Render appends a message to the end of the conversation and anchors the
// view on it. Text is not validated; empty input is filtered by Submit.
func Render(v *ViewState, text string, sender model.Sender) {
	v.Messages = append(v.Messages, model.Message{Text: text, Sender: sender})
	v.Anchor = len(v.Messages) - 1
	v.touch()
	v.log.Debug("message rendered", "sender", sender, "index", v.Anchor, "length", len(text))
}
