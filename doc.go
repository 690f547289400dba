// Package spiral draws a clock face as two tapering spiral bands.
//
// # Overview
//
// The minute band winds from "now" back to 12 o'clock, one shrinking turn
// per hour. The hour band makes one turn per twelve hours and nests inside
// the innermost minute turn. Twelve rectangular ticks ring the face, one of
// them enlarged as an orientation marker.
//
// The package only produces outlines. Every shape is sent as MoveTo, LineTo,
// CubicTo and Close calls to a [PathSink]; filling them is left to the
// caller (see the render package).
//
// # Quick Start
//
//	import "github.com/gogpu/spiral"
//
//	face := spiral.NewFace(image.Rect(0, 0, 144, 168))
//	frame := face.Frame(spiral.Now(spiral.RealClock{}))
//	for _, layer := range spiral.Layers() {
//	    frame.Emit(layer, sink)
//	}
//
// # Arithmetic
//
// Coordinates and radii are [fixed.Int26_6] values (6 fractional bits).
// Angles are integers where [FullTurn] units make one revolution, and sines
// come from a lookup table scaled to 0xffff. Products of two fixed-point
// quantities are formed in 64 or 128 bits and descaled once.
//
// # Coordinate System
//
//   - Origin (0,0) at top-left
//   - X increases right
//   - Y increases down
//   - Angle 0 points right and angles increase clockwise on screen
//   - [TwelveOClock] is -[QuarterTurn]
//
// # Bands
//
// A band is the region between an outer and an inner edge whose radii vary
// linearly with the angle. The sweep is cut at multiples of
// FullTurn/Subdivisions and every piece becomes one cubic Bezier per edge,
// which keeps each piece within one quadrant of the arc fit.
//
// # Debugging
//
// Build with -tags spiraldebug to panic on caller contract violations such as
// an arc wider than one quadrant or an outer edge inside the inner edge.
package spiral

// Version information
const (
	// Version is the current version of the library
	Version = "0.1.0"

	// VersionMajor is the major version
	VersionMajor = 0

	// VersionMinor is the minor version
	VersionMinor = 1

	// VersionPatch is the patch version
	VersionPatch = 0
)
