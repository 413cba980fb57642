package chat

import (
	"strings"
	"time"

	"github.com/jevan001/Turbomate-Ai/model"
	"github.com/jevan001/Turbomate-Ai/schedule"
)

// ReplyDelay is how long the simulated assistant takes to answer.
const ReplyDelay = 800 * time.Millisecond

const (
	ShortReply    = "Here is the short answer."
	DetailedReply = "Here is a detailed breakdown of your request based on our database analysis. I have considered multiple factors to ensure accuracy..."
)

// ReplyFor returns the canned assistant reply for a toggle value.
func ReplyFor(detailed bool) string {
	if detailed {
		return DetailedReply
	}
	return ShortReply
}

// Submit sends the current input. Whitespace-only input is ignored and left
// in the input box. Otherwise the trimmed text is rendered as a user
// message, the input is cleared, and one assistant reply is scheduled on s.
// The reply is chosen from the toggle as it is now, not when it fires.
func Submit(v *ViewState, s schedule.Scheduler) {
	text := strings.TrimSpace(v.Input)
	if text == "" {
		return
	}

	Render(v, text, model.SenderUser)
	v.Input = ""

	detailed := v.Toggle.Detailed
	reply := ReplyFor(detailed)
	s.Schedule(ReplyDelay, func() {
		Render(v, reply, model.SenderAssistant)
	})
	v.log.Debug("reply scheduled", "detailed", detailed, "delay", ReplyDelay)
}
