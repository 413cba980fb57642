package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/jevan001/Turbomate-Ai/schedule"
)

// replyDueMsg is delivered by tea.Tick when a scheduled task is due.
type replyDueMsg struct {
	id uint64
}

// teaScheduler bridges schedule.Scheduler onto the bubbletea event loop:
// each task becomes a tea.Tick command and runs inside Update when its
// message arrives, so it never races with key handling.
type teaScheduler struct {
	next  uint64
	tasks map[uint64]schedule.Task
	cmds  []tea.Cmd
}

func newTeaScheduler() *teaScheduler {
	return &teaScheduler{tasks: make(map[uint64]schedule.Task)}
}

func (s *teaScheduler) Schedule(delay time.Duration, task schedule.Task) {
	s.next++
	id := s.next
	s.tasks[id] = task
	s.cmds = append(s.cmds, tea.Tick(delay, func(time.Time) tea.Msg {
		return replyDueMsg{id: id}
	}))
}

// flush hands the ticks queued since the last call to the runtime.
func (s *teaScheduler) flush() tea.Cmd {
	if len(s.cmds) == 0 {
		return nil
	}
	cmds := s.cmds
	s.cmds = nil
	return tea.Batch(cmds...)
}

func (s *teaScheduler) fire(id uint64) bool {
	task, ok := s.tasks[id]
	if !ok {
		return false
	}
	delete(s.tasks, id)
	task()
	return true
}

func (s *teaScheduler) Pending() int {
	return len(s.tasks)
}
