// Package trig provides fixed-point sine and cosine over a discrete angle
// domain.
//
// A full turn is MaxAngle units. Results are ratios scaled by MaxRatio, so
// Sin(MaxAngle/4) == MaxRatio. Any int32 angle is accepted; values outside
// [0, MaxAngle) wrap.
package trig

import "math"

const (
	// MaxAngle is one full turn.
	MaxAngle = 0x10000

	// MaxRatio is the scale of a returned ratio (1.0).
	MaxRatio = 0xffff

	angleMask = MaxAngle - 1
	quarter   = MaxAngle / 4
)

// sinTable holds sin over [0, quarter]; the other three quadrants are
// folded onto it so that Sin(-a) == -Sin(a) exactly.
var sinTable [quarter + 1]int32

func init() {
	for i := 0; i <= quarter; i++ {
		rad := 2.0 * math.Pi * float64(i) / MaxAngle
		sinTable[i] = int32(math.Round(math.Sin(rad) * MaxRatio))
	}
}

// Sin returns the sine of angle scaled by MaxRatio.
func Sin(angle int32) int32 {
	a := angle & angleMask
	switch {
	case a <= quarter:
		return sinTable[a]
	case a <= 2*quarter:
		return sinTable[2*quarter-a]
	case a <= 3*quarter:
		return -sinTable[a-2*quarter]
	default:
		return -sinTable[MaxAngle-a]
	}
}

// Cos returns the cosine of angle scaled by MaxRatio.
func Cos(angle int32) int32 {
	return Sin(angle + quarter)
}
