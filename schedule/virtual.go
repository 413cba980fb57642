package schedule

import "time"

type pendingTask struct {
	at   time.Time
	seq  uint64
	task Task
}

// VirtualClock is a Scheduler driven by explicit calls to Advance. It is
// not safe for concurrent use; the owner advances it from the same
// goroutine that schedules on it.
type VirtualClock struct {
	now     time.Time
	seq     uint64
	pending []pendingTask
}

func NewVirtualClock(start time.Time) *VirtualClock {
	return &VirtualClock{now: start}
}

func (c *VirtualClock) Now() time.Time {
	return c.now
}

// Schedule records task to fire at Now()+delay. Negative delays fire on the
// next Advance.
func (c *VirtualClock) Schedule(delay time.Duration, task Task) {
	if delay < 0 {
		delay = 0
	}
	c.seq++
	c.pending = append(c.pending, pendingTask{
		at:   c.now.Add(delay),
		seq:  c.seq,
		task: task,
	})
}

// Pending returns the number of tasks that have not fired yet.
func (c *VirtualClock) Pending() int {
	return len(c.pending)
}

// Advance moves the clock forward by d, firing every task due on the way in
// fire-time order. Tasks due at the same instant fire in schedule order.
// Tasks scheduled by a firing task are considered too. Returns the number of
// tasks fired.
func (c *VirtualClock) Advance(d time.Duration) int {
	target := c.now.Add(d)
	fired := 0
	for {
		i := c.earliest()
		if i < 0 || c.pending[i].at.After(target) {
			break
		}
		p := c.pending[i]
		c.pending = append(c.pending[:i], c.pending[i+1:]...)
		c.now = p.at
		p.task()
		fired++
	}
	c.now = target
	return fired
}

// Drain advances the clock until nothing is pending.
func (c *VirtualClock) Drain() int {
	fired := 0
	for {
		i := c.earliest()
		if i < 0 {
			return fired
		}
		fired += c.Advance(c.pending[i].at.Sub(c.now))
	}
}

func (c *VirtualClock) earliest() int {
	best := -1
	for i, p := range c.pending {
		if best < 0 || p.at.Before(c.pending[best].at) ||
			(p.at.Equal(c.pending[best].at) && p.seq < c.pending[best].seq) {
			best = i
		}
	}
	return best
}
