package spiral

import (
	"golang.org/x/image/math/fixed"

	"github.com/gogpu/spiral/internal/trig"
)

// Arc is one segment of a circle or spiral around Center. The radius moves
// linearly from StartRadius to EndRadius while the angle sweeps from
// StartAngle to EndAngle.
//
// The sweep must not exceed one quadrant; the cubic fit degrades visibly
// beyond that.
type Arc struct {
	Center      fixed.Point26_6
	StartRadius fixed.Int26_6
	EndRadius   fixed.Int26_6
	StartAngle  Angle
	EndAngle    Angle
}

// Curve is a cubic Bezier segment in absolute coordinates. Its start point is
// the current point of whatever path it is appended to.
type Curve struct {
	Control1 fixed.Point26_6
	Control2 fixed.Point26_6
	End      fixed.Point26_6
}

// Emit appends the curve to sink.
func (c Curve) Emit(sink PathSink) {
	sink.CubicTo(c.Control1, c.Control2, c.End)
}

// ApproximateArc fits one cubic Bezier to a.
//
// The control handle length is k*r with k = 4/3*tan(sweep/4), evaluated as
// 4*sin(sweep/4) / (3*cos(sweep/4)) from the lookup table. Handles are
// tangent to the arc at both ends and point toward the sweep. When the radii
// differ the result approximates a spiral segment instead of a circular arc.
func ApproximateArc(a Arc) Curve {
	checkArcSweep(a.StartAngle, a.EndAngle)

	startVec := Polar(a.StartRadius, a.StartAngle)
	endVec := Polar(a.EndRadius, a.EndAngle)

	q := int32(a.EndAngle-a.StartAngle) / 4
	num := 4 * int64(trig.Sin(q))
	den := 3 * int64(trig.Cos(q)) * trig.MaxRatio

	s0 := int64(trig.Sin(int32(a.StartAngle)))
	c0 := int64(trig.Cos(int32(a.StartAngle)))
	s1 := int64(trig.Sin(int32(a.EndAngle)))
	c1 := int64(trig.Cos(int32(a.EndAngle)))
	r0 := int64(a.StartRadius)
	r1 := int64(a.EndRadius)

	// Tangent at the start is (-sin, cos); at the end it is reversed.
	cp1 := fixed.Point26_6{
		X: fixed.Int26_6(mulDiv(num*-s0, r0, den)),
		Y: fixed.Int26_6(mulDiv(num*c0, r0, den)),
	}
	cp2 := fixed.Point26_6{
		X: fixed.Int26_6(mulDiv(num*s1, r1, den)),
		Y: fixed.Int26_6(mulDiv(num*-c1, r1, den)),
	}

	return Curve{
		Control1: a.Center.Add(startVec).Add(cp1),
		Control2: a.Center.Add(endVec).Add(cp2),
		End:      a.Center.Add(endVec),
	}
}

// Handle ratio for an exact 90 degree sweep: 4/3*tan(pi/8) ~ 0.5523.
const (
	quarterHandleNum   = 153073
	quarterHandleDenom = 277163
)

// QuarterArc fits one cubic Bezier to a 90 degree sweep that starts on the
// quadrant boundary quadrant*QuarterTurn and turns clockwise on screen when
// positive is set, counter-clockwise otherwise.
//
// The curve is built in a frame rotated so the start lies on +x and the end
// on ±y, where every handle is parallel to an axis, then rotated back by a
// whole number of quadrants. It matches ApproximateArc for the same sweep.
func QuarterArc(center fixed.Point26_6, startR, endR fixed.Int26_6, quadrant int, positive bool) Curve {
	dir := fixed.Int26_6(1)
	if !positive {
		dir = -1
	}

	k0 := Scale(startR, quarterHandleNum, quarterHandleDenom)
	k1 := Scale(endR, quarterHandleNum, quarterHandleDenom)

	cp1 := fixed.Point26_6{X: startR, Y: dir * k0}
	cp2 := fixed.Point26_6{X: k1, Y: dir * endR}
	end := fixed.Point26_6{X: 0, Y: dir * endR}

	return Curve{
		Control1: center.Add(rotateQuadrant(cp1, quadrant)),
		Control2: center.Add(rotateQuadrant(cp2, quadrant)),
		End:      center.Add(rotateQuadrant(end, quadrant)),
	}
}

// rotateQuadrant rotates p clockwise on screen by quadrant quarter turns.
func rotateQuadrant(p fixed.Point26_6, quadrant int) fixed.Point26_6 {
	switch quadrant & 3 {
	case 1:
		return fixed.Point26_6{X: -p.Y, Y: p.X}
	case 2:
		return fixed.Point26_6{X: -p.X, Y: -p.Y}
	case 3:
		return fixed.Point26_6{X: p.Y, Y: -p.X}
	default:
		return p
	}
}

// AppendCircle adds a closed circle of radius r around center to sink as
// four quarter arcs, wound clockwise on screen.
func AppendCircle(sink PathSink, center fixed.Point26_6, r fixed.Int26_6) {
	sink.MoveTo(center.Add(fixed.Point26_6{X: r}))
	for q := 0; q < 4; q++ {
		QuarterArc(center, r, r, q, true).Emit(sink)
	}
	sink.Close()
}
