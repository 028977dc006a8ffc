// Package clock provides time utilities for the application
package clock

import "time"

// Clock provides time functionality
type Clock interface {
	Now() time.Time
}

// Real implements Clock using actual system time
type Real struct{}

// Now returns the current time
func (c *Real) Now() time.Time {
	return time.Now()
}

// New returns a new real clock
func New() Clock {
	return &Real{}
}

// Stepping is a Clock for tests that advances by Step on every call
type Stepping struct {
	Current time.Time
	Step    time.Duration
}

// Now returns the current time and moves the clock forward
func (c *Stepping) Now() time.Time {
	now := c.Current
	c.Current = c.Current.Add(c.Step)
	return now
}
