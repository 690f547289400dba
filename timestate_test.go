package spiral

import (
	"testing"
	"time"
)

func TestNewTimeState(t *testing.T) {
	tests := []struct {
		hour, minute int
		want         TimeState
	}{
		{0, 0, TimeState{Minutes: 0, Hour: 0}},
		{3, 15, TimeState{Minutes: 195, Hour: 3}},
		{11, 59, TimeState{Minutes: 719, Hour: 11}},
		{12, 0, TimeState{Minutes: 0, Hour: 12}},
		{15, 15, TimeState{Minutes: 195, Hour: 15}},
		{23, 59, TimeState{Minutes: 719, Hour: 23}},
	}

	for _, tt := range tests {
		ts := time.Date(2026, 3, 14, tt.hour, tt.minute, 42, 0, time.UTC)
		if got := NewTimeState(ts); got != tt.want {
			t.Errorf("NewTimeState(%02d:%02d) = %+v, want %+v", tt.hour, tt.minute, got, tt.want)
		}
		if got := At(tt.hour, tt.minute); got != tt.want {
			t.Errorf("At(%d, %d) = %+v, want %+v", tt.hour, tt.minute, got, tt.want)
		}
	}
}

func TestTimeStateString(t *testing.T) {
	if got := At(15, 7).String(); got != "15:07" {
		t.Errorf("String() = %q, want %q", got, "15:07")
	}
}

func TestClocks(t *testing.T) {
	fixedAt := time.Date(2026, 1, 2, 9, 41, 0, 0, time.UTC)
	if got := Now(FixedClock(fixedAt)); got != At(9, 41) {
		t.Errorf("Now(FixedClock) = %+v, want %+v", got, At(9, 41))
	}

	before := time.Now()
	got := RealClock{}.Now()
	if got.Before(before) {
		t.Errorf("RealClock.Now() = %v, before %v", got, before)
	}
}

func TestUntilNextMinute(t *testing.T) {
	tests := []struct {
		sec, nsec int
		want      time.Duration
	}{
		{0, 0, time.Minute},
		{30, 0, 30 * time.Second},
		{59, 500_000_000, 500 * time.Millisecond},
	}
	for _, tt := range tests {
		ts := time.Date(2026, 1, 1, 10, 0, tt.sec, tt.nsec, time.UTC)
		if got := UntilNextMinute(ts); got != tt.want {
			t.Errorf("UntilNextMinute(:%02d.%d) = %v, want %v", tt.sec, tt.nsec, got, tt.want)
		}
	}
}
