package clock

import (
	"sync"
	"time"

	"cloud.google.com/go/civil"
)

// Clock is an interface for time operations to enable testability.
type Clock interface {
	Now() time.Time
}

// RealClock is the production implementation using actual system time.
type RealClock struct {
	loc *time.Location
}

// NewRealClock creates a new RealClock in the local time zone.
func NewRealClock() Clock {
	return &RealClock{loc: time.Local}
}

// NewRealClockIn creates a RealClock that reports time in the given location.
// Calendar-day computations (expiry, freshness) follow this location.
func NewRealClockIn(loc *time.Location) Clock {
	if loc == nil {
		loc = time.Local
	}
	return &RealClock{loc: loc}
}

// Now returns the current system time.
func (c *RealClock) Now() time.Time {
	return time.Now().In(c.loc)
}

// Today returns the calendar date of the clock's current time.
func Today(c Clock) civil.Date {
	return civil.DateOf(c.Now())
}

// MockClock is a test implementation that allows setting the current time.
type MockClock struct {
	mu      sync.RWMutex
	current time.Time
}

// NewMockClock creates a new MockClock starting at the given time.
func NewMockClock(startTime time.Time) *MockClock {
	return &MockClock{current: startTime}
}

// NewMockClockOn creates a MockClock fixed at noon UTC on the given date.
func NewMockClockOn(d civil.Date) *MockClock {
	return NewMockClock(d.In(time.UTC).Add(12 * time.Hour))
}

// Now returns the mock current time.
func (m *MockClock) Now() time.Time {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.current
}

// Set sets the mock current time.
func (m *MockClock) Set(t time.Time) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.current = t
}

// Advance advances the mock clock by the given duration.
func (m *MockClock) Advance(d time.Duration) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.current = m.current.Add(d)
}
