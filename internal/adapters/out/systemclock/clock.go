// Package systemclock implements the clock port on the system time.
package systemclock

import (
	"time"

	"mfgorder/internal/core/domain/model/kernel"
)

// Clock reads the current date from the system clock.
type Clock struct{}

// NewClock creates a system clock.
func NewClock() *Clock {
	return &Clock{}
}

// Today implements ports.Clock.
func (c *Clock) Today() kernel.CalendarDate {
	return kernel.CalendarDateFromTime(time.Now())
}
