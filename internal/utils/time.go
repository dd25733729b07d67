package util

import (
	"sync"
	"time"
)

const DisplayLayout = "2 Jan 2006 15:04"

type Clock interface {
	Now() time.Time
}

type ClockFunc func() time.Time

func (f ClockFunc) Now() time.Time { return f() }

// MonotonicClock never hands out a time earlier than the last one it returned,
// even when the wall clock steps backwards.
type MonotonicClock struct {
	mu   sync.Mutex
	base Clock
	last time.Time
}

func NewMonotonicClock(base Clock) *MonotonicClock {
	if base == nil {
		base = ClockFunc(time.Now)
	}
	return &MonotonicClock{base: base}
}

func (c *MonotonicClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()

	// Round(0) strips the monotonic reading so values survive a JSON round trip unchanged.
	now := c.base.Now().UTC().Round(0)
	if now.Before(c.last) {
		now = c.last
	}
	c.last = now
	return now
}

func Later(a, b time.Time) time.Time {
	if a.After(b) {
		return a
	}
	return b
}

func FormatDisplay(t time.Time) string {
	if t.IsZero() {
		return "-"
	}
	return t.Local().Format(DisplayLayout)
}

func ToTimePtr(t time.Time) *time.Time {
	if t.IsZero() {
		return nil
	}
	return &t
}
