package spiral

import "fmt"

// Caller contracts of the geometry engine. They are only checked when the
// package is built with -tags spiraldebug; release builds trust call sites
// and produce undefined (but non-crashing) outlines on violation.

func contractf(format string, args ...any) {
	panic(fmt.Sprintf("spiral: "+format, args...))
}

// checkArcSweep enforces the one-quadrant accuracy bound of ApproximateArc.
func checkArcSweep(start, end Angle) {
	if !debugAssertions {
		return
	}
	sweep := int64(end) - int64(start)
	if sweep > int64(QuarterTurn) || sweep < -int64(QuarterTurn) {
		contractf("arc sweep %d exceeds one quadrant (%d)", sweep, QuarterTurn)
	}
}

// checkSubdivisions requires at least four segments per turn so every
// stepped arc stays within one quadrant.
func checkSubdivisions(n int) {
	if !debugAssertions {
		return
	}
	if n < 4 {
		contractf("subdivision count %d, need at least 4", n)
	}
}

// checkEdges requires the outer edge to stay on or outside the inner edge.
func checkEdges(outer, inner Interpolator, start, end Angle) {
	if !debugAssertions {
		return
	}
	span := int64(end) - int64(start)
	for _, pos := range []int64{0, span} {
		if o, i := outer(pos, span), inner(pos, span); o < i {
			contractf("outer radius %v inside inner radius %v", o, i)
		}
	}
}
