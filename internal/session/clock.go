package session

import "time"

// Clock supplies timestamps for lifecycle fields
type Clock interface {
	Now() time.Time
}

// MonotonicClock never returns a time earlier than one it already returned,
// even if the underlying source steps backwards. Equal readings are allowed.
type MonotonicClock struct {
	source func() time.Time
	last   time.Time
}

// NewMonotonicClock wraps source; a nil source uses time.Now
func NewMonotonicClock(source func() time.Time) *MonotonicClock {
	if source == nil {
		source = time.Now
	}
	return &MonotonicClock{source: source}
}

// Now returns the next non-decreasing timestamp
func (c *MonotonicClock) Now() time.Time {
	t := c.source()
	if t.Before(c.last) {
		t = c.last
	}
	c.last = t
	return t
}
