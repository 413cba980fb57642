//go:generate go run go.uber.org/mock/mockgen -source=scheduler.go -destination=../mocks/mock_scheduler.go -package=mocks

// Package schedule runs one-shot tasks after a delay on the caller's event
// loop. Tasks never run concurrently with each other or with the code that
// scheduled them.
package schedule

import "time"

// Task is a unit of deferred work.
type Task func()

// Scheduler defers a task by a fixed delay. There is no cancellation: once
// scheduled, a task always fires.
type Scheduler interface {
	Schedule(delay time.Duration, task Task)
}
