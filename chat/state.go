// Package chat holds the widget's view state and the three controllers that
// mutate it: the message renderer, the send controller and the
// session/history controller.
//
// A ViewState belongs to a single event loop. None of the functions in this
// package lock; callers must not share a ViewState across goroutines.
package chat

import (
	"io"
	"log/slog"

	"github.com/google/uuid"
	"github.com/jevan001/Turbomate-Ai/model"
	"github.com/samber/lo"
)

// ViewState is everything one screen shows: the conversation, the history
// sidebar, the reply-length toggle and the text in the input box.
type ViewState struct {
	Messages []model.Message
	History  []model.HistoryEntry // newest first
	Toggle   model.Toggle
	Input    string

	// Anchor is the index of the message that must be fully visible, or -1.
	Anchor int
	// Revision increases on every mutation of Messages or History.
	Revision uint64

	log   *slog.Logger
	newID func() string
}

type Option func(*ViewState)

func WithLogger(log *slog.Logger) Option {
	return func(v *ViewState) {
		if log != nil {
			v.log = log
		}
	}
}

// WithIDGenerator replaces the UUID source used for history entry IDs.
func WithIDGenerator(fn func() string) Option {
	return func(v *ViewState) {
		if fn != nil {
			v.newID = fn
		}
	}
}

func WithDetailed(detailed bool) Option {
	return func(v *ViewState) {
		v.Toggle.Detailed = detailed
	}
}

func NewViewState(opts ...Option) *ViewState {
	v := &ViewState{
		Anchor: -1,
		log:    slog.New(slog.NewTextHandler(io.Discard, nil)),
		newID:  uuid.NewString,
	}
	for _, opt := range opts {
		opt(v)
	}
	return v
}

// SetDetailed sets the reply-length toggle. It does not touch replies that
// are already scheduled.
func (v *ViewState) SetDetailed(detailed bool) {
	v.Toggle.Detailed = detailed
}

// FirstUserMessage returns the earliest user message in the conversation.
func (v *ViewState) FirstUserMessage() (model.Message, bool) {
	return lo.Find(v.Messages, model.Message.IsUser)
}

// LastAssistantMessage returns the newest assistant message, if any.
func (v *ViewState) LastAssistantMessage() (model.Message, bool) {
	msg, _, ok := lo.FindLastIndexOf(v.Messages, func(m model.Message) bool {
		return m.Sender == model.SenderAssistant
	})
	return msg, ok
}

// ActiveEntry returns the selected history entry, if any.
func (v *ViewState) ActiveEntry() (model.HistoryEntry, bool) {
	return lo.Find(v.History, func(e model.HistoryEntry) bool {
		return e.Active
	})
}

func (v *ViewState) clearActive() {
	for i := range v.History {
		v.History[i].Active = false
	}
}

func (v *ViewState) touch() {
	v.Revision++
}
