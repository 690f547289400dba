package spiral

import (
	"math"
	"math/bits"

	"golang.org/x/image/math/fixed"

	"github.com/gogpu/spiral/internal/trig"
)

// Angle is a direction in trig units; FullTurn units make one turn.
// Angle 0 points right and angles grow clockwise on screen (y down).
//
// Arithmetic wraps when an Angle is evaluated, but sweeps are expressed with
// unwrapped values: the sign of end-start selects the direction and its
// magnitude may span several turns.
type Angle int32

const (
	// FullTurn is one revolution.
	FullTurn Angle = trig.MaxAngle

	// QuarterTurn is one quadrant.
	QuarterTurn = FullTurn / 4

	// TwelveOClock is the direction pointing straight up.
	TwelveOClock = -QuarterTurn
)

// Deg converts whole degrees to an Angle.
func Deg(d int) Angle {
	return Angle(int64(d) * int64(FullTurn) / 360)
}

// Degrees returns a in degrees.
func (a Angle) Degrees() float64 {
	return float64(a) * 360 / float64(FullTurn)
}

// Pt returns the point at whole pixel coordinates (x, y).
func Pt(x, y int) fixed.Point26_6 {
	return fixed.P(x, y)
}

// Polar returns the vector of length r pointing at angle a.
func Polar(r fixed.Int26_6, a Angle) fixed.Point26_6 {
	return fixed.Point26_6{
		X: ratio(r, trig.Cos(int32(a))),
		Y: ratio(r, trig.Sin(int32(a))),
	}
}

// PolarFrom returns the point at distance r and angle a from center.
func PolarFrom(center fixed.Point26_6, r fixed.Int26_6, a Angle) fixed.Point26_6 {
	return center.Add(Polar(r, a))
}

// Rotate returns v rotated by a around the origin.
func Rotate(v fixed.Point26_6, a Angle) fixed.Point26_6 {
	c := int64(trig.Cos(int32(a)))
	s := int64(trig.Sin(int32(a)))
	x, y := int64(v.X), int64(v.Y)
	return fixed.Point26_6{
		X: fixed.Int26_6((x*c - y*s) / trig.MaxRatio),
		Y: fixed.Int26_6((x*s + y*c) / trig.MaxRatio),
	}
}

// Lerp returns the value at position pos of a span that runs from a (at 0)
// to b (at span). The product is formed in 128 bits and descaled once.
// A zero span yields a.
func Lerp(a, b fixed.Int26_6, pos, span int64) fixed.Int26_6 {
	if span == 0 {
		return a
	}
	return a + fixed.Int26_6(mulDiv(int64(b)-int64(a), pos, span))
}

// Scale returns v*num/den with a 128-bit intermediate.
func Scale(v fixed.Int26_6, num, den int64) fixed.Int26_6 {
	return fixed.Int26_6(mulDiv(int64(v), num, den))
}

// ratio multiplies r by a trig ratio.
func ratio(r fixed.Int26_6, v int32) fixed.Int26_6 {
	return fixed.Int26_6(int64(r) * int64(v) / trig.MaxRatio)
}

// mulDiv computes a*b/c with a 128-bit intermediate, truncating toward
// zero. Quotients that do not fit in 64 bits saturate.
func mulDiv(a, b, c int64) int64 {
	if c == 0 || a == 0 || b == 0 {
		return 0
	}
	neg := ((a < 0) != (b < 0)) != (c < 0)
	hi, lo := bits.Mul64(abs64(a), abs64(b))
	uc := abs64(c)
	if hi >= uc {
		if neg {
			return math.MinInt64
		}
		return math.MaxInt64
	}
	q, _ := bits.Div64(hi, lo, uc)
	if q > math.MaxInt64 {
		if neg {
			return math.MinInt64
		}
		return math.MaxInt64
	}
	if neg {
		return -int64(q)
	}
	return int64(q)
}

func abs64(x int64) uint64 {
	if x < 0 {
		return uint64(-x)
	}
	return uint64(x)
}
