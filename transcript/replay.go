package transcript

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/jevan001/Turbomate-Ai/chat"
	"github.com/jevan001/Turbomate-Ai/model"
	"github.com/jevan001/Turbomate-Ai/schedule"
)

// Result is the screen at the end of a replay.
type Result struct {
	Detailed bool                 `yaml:"detailed"`
	Elapsed  time.Duration        `yaml:"elapsed"`
	Messages []model.Message      `yaml:"messages"`
	History  []model.HistoryEntry `yaml:"history"`
}

type Replayer struct {
	state *chat.ViewState
	clock *schedule.VirtualClock
	start time.Time
	log   *slog.Logger
}

// NewReplayer starts from a fresh screen showing the greeting, as the
// terminal UI does.
func NewReplayer(log *slog.Logger, opts ...chat.Option) *Replayer {
	start := time.Unix(0, 0).UTC()
	state := chat.NewViewState(append([]chat.Option{chat.WithLogger(log)}, opts...)...)
	chat.StartNewChat(state)
	return &Replayer{
		state: state,
		clock: schedule.NewVirtualClock(start),
		start: start,
		log:   log,
	}
}

// Run applies every step, then lets all pending replies fire.
func (r *Replayer) Run(steps []Step) (Result, error) {
	for _, step := range steps {
		if err := r.apply(step); err != nil {
			return Result{}, fmt.Errorf("line %d: %w", step.Line, err)
		}
	}
	if n := r.clock.Drain(); n > 0 {
		r.log.Debug("drained pending replies", "count", n)
	}
	return r.Result(), nil
}

func (r *Replayer) apply(step Step) error {
	switch step.Kind {
	case StepSubmit:
		r.state.Input = step.Text
		chat.Submit(r.state, r.clock)
	case StepNewChat:
		chat.StartNewChat(r.state)
	case StepDetailed:
		r.state.SetDetailed(step.Detailed)
	case StepWait:
		r.clock.Advance(step.Wait)
	case StepSelect:
		if step.Position > len(r.state.History) {
			return fmt.Errorf("select %d of %d history entries: %w", step.Position, len(r.state.History), ErrBadArgument)
		}
		chat.Select(r.state, r.state.History[step.Position-1].ID)
	}
	return nil
}

func (r *Replayer) Result() Result {
	return Result{
		Detailed: r.state.Toggle.Detailed,
		Elapsed:  r.clock.Now().Sub(r.start),
		Messages: append([]model.Message(nil), r.state.Messages...),
		History:  append([]model.HistoryEntry(nil), r.state.History...),
	}
}
