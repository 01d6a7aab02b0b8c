package clock

import "time"

//go:generate mockgen -package=mocks -destination=mocks/mock_clock.go github.com/AvinashSingh09/WebBingo/internal/common/clock Clock,Timer

// Clock abstracts time so draw scheduling is testable.
type Clock interface {
	Now() time.Time

	// AfterFunc schedules f to run once after d and returns a cancellable
	// handle for it.
	AfterFunc(d time.Duration, f func()) Timer
}

// Timer is a cancellable scheduled callback.
type Timer interface {
	Stop() bool
	Reset(d time.Duration) bool
}

// DefaultClock implements the Clock interface using the system clock
type DefaultClock struct{}

// Now returns the current time
func (c *DefaultClock) Now() time.Time {
	return time.Now()
}

// AfterFunc schedules f on the runtime timer heap.
func (c *DefaultClock) AfterFunc(d time.Duration, f func()) Timer {
	return time.AfterFunc(d, f)
}
