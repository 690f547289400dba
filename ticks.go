package spiral

import "golang.org/x/image/math/fixed"

// TickCount is the number of ticks on the ring.
const TickCount = 12

// Tick is one rectangular hour mark.
type Tick struct {
	Angle  Angle
	Marker bool

	// Corners run inner-left, outer-left, outer-right, inner-right in the
	// tick's own frame, where "left" is the side toward smaller angles.
	Corners [4]fixed.Point26_6
}

// Emit appends the tick as one closed contour.
func (t Tick) Emit(sink PathSink) {
	sink.MoveTo(t.Corners[0])
	sink.LineTo(t.Corners[1])
	sink.LineTo(t.Corners[2])
	sink.LineTo(t.Corners[3])
	sink.Close()
}

// TickRing returns TickCount ticks at equal spacing starting at angle 0.
// Each is a rectangle from radius inner to inner+length and 2*halfWidth wide,
// rotated about center. The tick in slot marker is twice as long and twice as
// wide; pass a negative marker for none.
func TickRing(center fixed.Point26_6, inner, length, halfWidth fixed.Int26_6, marker int) []Tick {
	ticks := make([]Tick, TickCount)
	for i := range ticks {
		l, hw := length, halfWidth
		if i == marker {
			l, hw = 2*length, 2*halfWidth
		}
		a := Angle(int64(FullTurn) * int64(i) / TickCount)
		local := [4]fixed.Point26_6{
			{X: inner, Y: -hw},
			{X: inner + l, Y: -hw},
			{X: inner + l, Y: hw},
			{X: inner, Y: hw},
		}
		t := Tick{Angle: a, Marker: i == marker}
		for j, p := range local {
			t.Corners[j] = center.Add(Rotate(p, a))
		}
		ticks[i] = t
	}
	return ticks
}
