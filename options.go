package spiral

import "golang.org/x/image/math/fixed"

// FaceOption configures a Face during creation.
//
// Example:
//
//	// Default twelve-hour face
//	f := spiral.NewFace(image.Rect(0, 0, 144, 168))
//
//	// One minute band turn per quarter hour, hour hand moving every minute
//	f := spiral.NewFace(bounds, spiral.WithCycleMinutes(180), spiral.WithSmoothHour())
type FaceOption func(*faceOptions)

// faceOptions holds optional configuration for Face creation.
type faceOptions struct {
	margin        int
	cycleMinutes  int
	minuteSubdivs int
	hourSubdivs   int
	boostNum      int64
	boostDen      int64
	smoothHour    bool
	markerSlot    int
	hubRadius     fixed.Int26_6
}

// Defaults of the classic face.
const (
	DefaultMargin             = 5
	DefaultCycleMinutes       = 12 * 60
	DefaultMinuteSubdivisions = 4
	DefaultHourSubdivisions   = 32
	DefaultMarkerSlot         = 9
)

func defaultFaceOptions() faceOptions {
	return faceOptions{
		margin:        DefaultMargin,
		cycleMinutes:  DefaultCycleMinutes,
		minuteSubdivs: DefaultMinuteSubdivisions,
		hourSubdivs:   DefaultHourSubdivisions,
		boostNum:      3,
		boostDen:      2,
		markerSlot:    DefaultMarkerSlot,
	}
}

// WithMargin sets the gap in pixels between the face bounds and the outer
// edge of the minute band. Negative values are ignored.
func WithMargin(px int) FaceOption {
	return func(o *faceOptions) {
		if px >= 0 {
			o.margin = px
		}
	}
}

// WithCycleMinutes sets how many minutes the minute band takes for its twelve
// turns. Readings are taken modulo the cycle, so the band starts over at the
// end of each cycle. The stepped hour band always follows the twelve-hour
// dial; with WithSmoothHour it makes one turn per cycle instead. Values below
// 12 are ignored.
func WithCycleMinutes(n int) FaceOption {
	return func(o *faceOptions) {
		if n >= 12 {
			o.cycleMinutes = n
		}
	}
}

// WithSubdivisions sets the grid cells per turn for the minute and hour
// bands. Values below 4 are ignored.
func WithSubdivisions(minute, hour int) FaceOption {
	return func(o *faceOptions) {
		if minute >= 4 {
			o.minuteSubdivs = minute
		}
		if hour >= 4 {
			o.hourSubdivs = hour
		}
	}
}

// WithNewestLoopBoost scales the radius step and the half-width of the most
// recent minute loop by num/den when the minute band winds more than once.
// A ratio below one or a non-positive denominator is ignored.
func WithNewestLoopBoost(num, den int) FaceOption {
	return func(o *faceOptions) {
		if den > 0 && num >= den {
			o.boostNum, o.boostDen = int64(num), int64(den)
		}
	}
}

// WithSmoothHour moves the hour band every minute instead of once per hour.
func WithSmoothHour() FaceOption {
	return func(o *faceOptions) {
		o.smoothHour = true
	}
}

// WithMarkerSlot selects which of the twelve ticks is drawn enlarged. Slot 0
// points right; slot 9 is 12 o'clock. A negative slot disables the marker.
func WithMarkerSlot(slot int) FaceOption {
	return func(o *faceOptions) {
		if slot < 0 {
			o.markerSlot = -1
			return
		}
		o.markerSlot = slot % 12
	}
}

// WithHubRadius adds a filled disc of radius r at the center. Zero disables
// it.
func WithHubRadius(r fixed.Int26_6) FaceOption {
	return func(o *faceOptions) {
		if r >= 0 {
			o.hubRadius = r
		}
	}
}
