package spiral

import (
	"image"

	"golang.org/x/image/math/fixed"
)

// Layer identifies one filled layer of a frame. Layers are listed in paint
// order.
type Layer int

const (
	// MinuteCoverLayer covers the face except for the minute band.
	MinuteCoverLayer Layer = iota
	// HourCoverLayer is a wide band under the hour band that separates it
	// from the minute band.
	HourCoverLayer
	// HourLayer is the hour band.
	HourLayer
	// TickLayer holds the twelve hour ticks.
	TickLayer
	// HubLayer is the optional disc at the center.
	HubLayer
)

var layerNames = [...]string{
	MinuteCoverLayer: "minute-cover",
	HourCoverLayer:   "hour-cover",
	HourLayer:        "hour",
	TickLayer:        "ticks",
	HubLayer:         "hub",
}

// String returns the layer name.
func (l Layer) String() string {
	if l >= 0 && int(l) < len(layerNames) {
		return layerNames[l]
	}
	return "unknown"
}

// Layers returns every layer in paint order.
func Layers() []Layer {
	return []Layer{MinuteCoverLayer, HourCoverLayer, HourLayer, TickLayer, HubLayer}
}

// Face holds the geometry of a clock face fitted to a bounding box. It is
// immutable and safe for concurrent use.
//
// The minute band winds twelve times per cycle from "now" back to
// 12 o'clock, each turn pulling it inward by one radius step. The hour band
// makes one turn per cycle and nests inside the innermost minute turn.
type Face struct {
	bounds image.Rectangle
	center fixed.Point26_6
	opts   faceOptions

	minuteOuter     fixed.Int26_6
	minuteShift     fixed.Int26_6
	minuteHalfWidth fixed.Int26_6

	hourOuter      fixed.Int26_6
	hourHalfWidth  fixed.Int26_6
	coverHalfWidth fixed.Int26_6

	tickInner     fixed.Int26_6
	tickLength    fixed.Int26_6
	tickHalfWidth fixed.Int26_6
}

// NewFace resolves the face geometry for bounds. The face is sized to the
// shorter side of bounds and centered in it.
func NewFace(bounds image.Rectangle, opts ...FaceOption) *Face {
	o := defaultFaceOptions()
	for _, opt := range opts {
		opt(&o)
	}

	// Bounds too small for the margin collapse the face to its center.
	size := min(bounds.Dx(), bounds.Dy())
	outer := fixed.I(max(size/2-o.margin, 0))
	shift := -outer / 13

	f := &Face{
		bounds: bounds,
		center: fixed.P(bounds.Min.X+bounds.Dx()/2, bounds.Min.Y+bounds.Dy()/2),
		opts:   o,

		minuteOuter:     outer,
		minuteShift:     shift,
		minuteHalfWidth: outer / 50,

		hourOuter:      outer + shift*3/2,
		hourHalfWidth:  fixed.I(2),
		coverHalfWidth: fixed.I(9) / 2,

		tickInner:     outer + fixed.I(2),
		tickLength:    fixed.I(3),
		tickHalfWidth: fixed.I(1),
	}

	Logger().Debug("face geometry",
		"bounds", bounds,
		"minute_outer", outer,
		"minute_shift", shift,
		"minute_half_width", f.minuteHalfWidth,
		"hour_outer", f.hourOuter,
		"cycle_minutes", o.cycleMinutes)
	return f
}

// Bounds returns the rectangle the face was fitted to.
func (f *Face) Bounds() image.Rectangle { return f.bounds }

// Center returns the face center.
func (f *Face) Center() fixed.Point26_6 { return f.center }

// MinuteRadius returns the center-line radius of the minute band at "now".
func (f *Face) MinuteRadius() fixed.Int26_6 { return f.minuteOuter }

// HourRadius returns the largest center-line radius of the hour band.
func (f *Face) HourRadius() fixed.Int26_6 { return f.hourOuter }

// Frame is the geometry of one clock reading.
type Frame struct {
	Time   TimeState
	Center fixed.Point26_6
	Bounds image.Rectangle

	// Minute holds the minute band, split in two when it winds more than
	// once: the newest loop first, then the rest down to 12 o'clock.
	Minute []Band

	HourCover Band
	Hour      Band
	Ticks     []Tick

	// Hub is the radius of the center disc, zero for none.
	Hub fixed.Int26_6
}

// Frame computes the geometry for s. Minutes are taken modulo the cycle.
func (f *Face) Frame(s TimeState) Frame {
	fr := Frame{
		Time:   s,
		Center: f.center,
		Bounds: f.bounds,
		Hub:    f.opts.hubRadius,
	}

	minutes := s.Minutes % f.opts.cycleMinutes
	if minutes < 0 {
		minutes += f.opts.cycleMinutes
	}

	var innermost fixed.Int26_6
	fr.Minute, innermost = f.minuteBands(minutes)

	start := f.hourAngle(s.Hour, minutes)
	hourInner := min(innermost, f.hourOuter)
	fr.HourCover = f.hourBand(start, hourInner, f.coverHalfWidth)
	fr.Hour = f.hourBand(start, hourInner, f.hourHalfWidth)

	fr.Ticks = TickRing(f.center, f.tickInner, f.tickLength, f.tickHalfWidth, f.opts.markerSlot)
	return fr
}

// minuteBands returns the minute band and its center-line radius at
// 12 o'clock.
//
// A linear taper across several turns would shrink every loop by the same
// share of the sweep, so a band that winds more than once is cut one turn
// back from "now". The newest loop gets a larger radius step and a wider
// start; the rest shrinks at the uniform rate.
func (f *Face) minuteBands(minutes int) ([]Band, fixed.Int26_6) {
	sweep := int64(FullTurn) * 12 * int64(minutes) / int64(f.opts.cycleMinutes)
	start := TwelveOClock + Angle(sweep)

	rest := UniformBand{
		Center:            f.center,
		HalfWidth:         f.minuteHalfWidth,
		StartRadius:       f.minuteOuter,
		RatePerRevolution: f.minuteShift,
		StartAngle:        start,
		EndAngle:          TwelveOClock,
		Subdivisions:      f.opts.minuteSubdivs,
	}
	if sweep <= int64(FullTurn) {
		return []Band{rest.Band()}, rest.EndRadius()
	}

	num, den := f.opts.boostNum, f.opts.boostDen
	split := start - FullTurn
	splitRadius := f.minuteOuter + Scale(f.minuteShift, num, den)
	wide := Scale(f.minuteHalfWidth, num, den)

	newest := Band{
		Center:       f.center,
		StartAngle:   start,
		EndAngle:     split,
		StartOuter:   f.minuteOuter + wide,
		EndOuter:     splitRadius + f.minuteHalfWidth,
		StartInner:   f.minuteOuter - wide,
		EndInner:     splitRadius - f.minuteHalfWidth,
		Subdivisions: f.opts.minuteSubdivs,
	}
	rest.StartRadius = splitRadius
	rest.StartAngle = split

	Logger().Debug("minute band split",
		"minutes", minutes,
		"split_angle", int32(split),
		"split_radius", splitRadius)
	return []Band{newest, rest.Band()}, rest.EndRadius()
}

func (f *Face) hourAngle(hour, minutes int) Angle {
	if f.opts.smoothHour {
		return TwelveOClock + Angle(int64(FullTurn)*int64(minutes)/int64(f.opts.cycleMinutes))
	}
	return TwelveOClock + Angle(int64(FullTurn)*int64(hour%12)/12)
}

func (f *Face) hourBand(start Angle, inner, halfWidth fixed.Int26_6) Band {
	return Band{
		Center:       f.center,
		StartAngle:   start,
		EndAngle:     TwelveOClock,
		StartOuter:   f.hourOuter + halfWidth,
		EndOuter:     inner + halfWidth,
		StartInner:   max(f.hourOuter-halfWidth, 0),
		EndInner:     max(inner-halfWidth, 0),
		Subdivisions: f.opts.hourSubdivs,
	}
}

// MinuteCover returns the minute band outlines followed by the bounds
// rectangle. The band winds against the rectangle, so a nonzero fill leaves
// the band itself uncovered.
func (fr Frame) MinuteCover() *Path {
	p := NewPath()
	fr.Emit(MinuteCoverLayer, p)
	return p
}

// Path returns the contours of layer l as a new Path.
func (fr Frame) Path(l Layer) *Path {
	p := NewPath()
	fr.Emit(l, p)
	return p
}

// Emit sends the contours of layer l to sink. Unknown layers and a hub of
// radius zero emit nothing.
func (fr Frame) Emit(l Layer, sink PathSink) {
	switch l {
	case MinuteCoverLayer:
		for _, b := range fr.Minute {
			BuildBand(sink, b)
		}
		appendRectangle(sink, fixed.R(fr.Bounds.Min.X, fr.Bounds.Min.Y, fr.Bounds.Max.X, fr.Bounds.Max.Y))
	case HourCoverLayer:
		BuildBand(sink, fr.HourCover)
	case HourLayer:
		BuildBand(sink, fr.Hour)
	case TickLayer:
		for _, t := range fr.Ticks {
			t.Emit(sink)
		}
	case HubLayer:
		if fr.Hub > 0 {
			AppendCircle(sink, fr.Center, fr.Hub)
		}
	}
}
