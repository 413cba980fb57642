package schedule

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

var epoch = time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

func TestVirtualClock_AdvanceFiresDueTasksOnly(t *testing.T) {
	c := NewVirtualClock(epoch)
	var fired []string
	c.Schedule(800*time.Millisecond, func() { fired = append(fired, "a") })
	c.Schedule(time.Second, func() { fired = append(fired, "b") })

	require.Equal(t, 0, c.Advance(799*time.Millisecond))
	require.Empty(t, fired)
	require.Equal(t, 2, c.Pending())

	require.Equal(t, 1, c.Advance(time.Millisecond))
	require.Equal(t, []string{"a"}, fired)
	require.Equal(t, epoch.Add(800*time.Millisecond), c.Now())

	require.Equal(t, 1, c.Advance(time.Hour))
	require.Equal(t, []string{"a", "b"}, fired)
	require.Zero(t, c.Pending())
}

func TestVirtualClock_SameInstantKeepsScheduleOrder(t *testing.T) {
	c := NewVirtualClock(epoch)
	var fired []int
	for i := 0; i < 5; i++ {
		i := i
		c.Schedule(time.Second, func() { fired = append(fired, i) })
	}

	c.Advance(time.Second)
	require.Equal(t, []int{0, 1, 2, 3, 4}, fired)
}

func TestVirtualClock_TasksScheduledWhileFiring(t *testing.T) {
	c := NewVirtualClock(epoch)
	var fired []string
	c.Schedule(100*time.Millisecond, func() {
		fired = append(fired, "outer")
		// relative to the outer task's fire time, not the Advance start
		c.Schedule(100*time.Millisecond, func() { fired = append(fired, "inner") })
	})

	c.Advance(150 * time.Millisecond)
	require.Equal(t, []string{"outer"}, fired)

	c.Advance(50 * time.Millisecond)
	require.Equal(t, []string{"outer", "inner"}, fired)
}

func TestVirtualClock_Drain(t *testing.T) {
	c := NewVirtualClock(epoch)
	count := 0
	c.Schedule(time.Minute, func() { count++ })
	c.Schedule(-time.Second, func() { count++ })

	require.Equal(t, 2, c.Drain())
	require.Equal(t, 2, count)
	require.Equal(t, epoch.Add(time.Minute), c.Now())
	require.Zero(t, c.Drain())
}
