package testutil

import (
	"time"

	"cloud.google.com/go/civil"

	"github.com/light-bringer/expiry-deals-service/internal/pkg/clock"
)

// NewFixedClock creates a mock clock fixed at the given time.
func NewFixedClock(t time.Time) clock.Clock {
	return clock.NewMockClock(t)
}

// NewMockClock creates a mock clock that can be controlled in tests.
func NewMockClock() *clock.MockClock {
	return clock.NewMockClock(time.Now())
}

// NewClockOn creates a mock clock at noon UTC on the given market day.
func NewClockOn(d civil.Date) *clock.MockClock {
	return clock.NewMockClockOn(d)
}
