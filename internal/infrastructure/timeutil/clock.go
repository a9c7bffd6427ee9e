// Package timeutil provides a time source abstraction so run timing can
// be controlled in tests.
package timeutil

import "time"

// Clock abstracts time.Now().
type Clock interface {
	Now() time.Time
}

// RealClock uses the system time.
type RealClock struct{}

// NewRealClock creates a RealClock.
func NewRealClock() *RealClock {
	return &RealClock{}
}

// Now returns the current system time.
func (RealClock) Now() time.Time {
	return time.Now()
}

// MockClock returns a controllable time for tests.
type MockClock struct {
	fixed time.Time
}

// NewMockClock creates a mock clock fixed at t.
func NewMockClock(t time.Time) *MockClock {
	return &MockClock{fixed: t}
}

// Now returns the fixed time.
func (m *MockClock) Now() time.Time {
	return m.fixed
}

// Advance moves the mock clock forward by d.
func (m *MockClock) Advance(d time.Duration) {
	m.fixed = m.fixed.Add(d)
}

var (
	_ Clock = (*RealClock)(nil)
	_ Clock = (*MockClock)(nil)
)
