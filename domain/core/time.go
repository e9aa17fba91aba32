package core

import (
	"time"
)

// Timestamp represents a point in time with timezone awareness
type Timestamp time.Time

// NewTimestamp creates a new timestamp from time.Time
func NewTimestamp(t time.Time) Timestamp {
	return Timestamp(t)
}

// Now returns the current timestamp
func Now() Timestamp {
	return Timestamp(time.Now())
}

// Time returns the underlying time.Time
func (t Timestamp) Time() time.Time {
	return time.Time(t)
}

// IsZero checks if the timestamp is zero
func (t Timestamp) IsZero() bool {
	return time.Time(t).IsZero()
}

// Before returns true if t is before u
func (t Timestamp) Before(u Timestamp) bool {
	return time.Time(t).Before(time.Time(u))
}

// After returns true if t is after u
func (t Timestamp) After(u Timestamp) bool {
	return time.Time(t).After(time.Time(u))
}

// Domain-specific time types
type (
	// ObservedAt is the acquisition time of a radar composite.
	ObservedAt Timestamp
	// TimeStep is the interval between consecutive composites (typically 5 min).
	TimeStep time.Duration
)

// Constructors for domain time types
func NewObservedAt(t time.Time) ObservedAt { return ObservedAt(NewTimestamp(t)) }
func NewTimeStep(d time.Duration) TimeStep { return TimeStep(d) }

// Time conversions
func (t ObservedAt) Time() time.Time       { return Timestamp(t).Time() }
func (s TimeStep) Duration() time.Duration { return time.Duration(s) }

// Advance returns the observation time n steps later
func (t ObservedAt) Advance(step TimeStep, n int) ObservedAt {
	return NewObservedAt(t.Time().Add(time.Duration(n) * step.Duration()))
}

// JSON marshaling for Timestamp
func (t Timestamp) MarshalJSON() ([]byte, error) {
	return time.Time(t).MarshalJSON()
}

func (t *Timestamp) UnmarshalJSON(data []byte) error {
	var tm time.Time
	if err := tm.UnmarshalJSON(data); err != nil {
		return err
	}
	*t = Timestamp(tm)
	return nil
}

// String representations
func (t ObservedAt) String() string { return t.Time().Format(time.RFC3339) }
func (s TimeStep) String() string   { return s.Duration().String() }
