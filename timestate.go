package spiral

import (
	"fmt"
	"time"
)

// TimeState is the clock reading a frame is drawn for.
type TimeState struct {
	// Minutes elapsed in the current twelve-hour cycle. Faces with a shorter
	// cycle keep winding past the end of theirs.
	Minutes int

	// Hour of the day, 0 to 23.
	Hour int
}

// NewTimeState returns the state for the wall-clock time of t in its own
// location.
func NewTimeState(t time.Time) TimeState {
	return TimeState{
		Minutes: (t.Hour()*60 + t.Minute()) % DefaultCycleMinutes,
		Hour:    t.Hour(),
	}
}

// At returns the state for hour:minute.
func At(hour, minute int) TimeState {
	return TimeState{Minutes: (hour*60 + minute) % DefaultCycleMinutes, Hour: hour}
}

// String formats the state as HH:MM.
func (s TimeState) String() string {
	return fmt.Sprintf("%02d:%02d", s.Hour, s.Minutes%60)
}

// Clock supplies the current time.
type Clock interface {
	Now() time.Time
}

// RealClock reads the system clock.
type RealClock struct{}

// Now returns time.Now().
func (RealClock) Now() time.Time { return time.Now() }

// FixedClock always returns the same instant.
type FixedClock time.Time

// Now returns the fixed instant.
func (c FixedClock) Now() time.Time { return time.Time(c) }

// Now reads c and converts the reading to a TimeState.
func Now(c Clock) TimeState {
	return NewTimeState(c.Now())
}

// UntilNextMinute returns how long after t the next minute boundary falls.
func UntilNextMinute(t time.Time) time.Duration {
	return t.Truncate(time.Minute).Add(time.Minute).Sub(t)
}
