package spiral

import "golang.org/x/image/math/fixed"

// Interpolator returns a radius-like quantity at position pos along a sweep
// of length span. pos runs from 0 at the start angle to span at the end
// angle; both carry the sign of the sweep.
type Interpolator func(pos, span int64) fixed.Int26_6

// Linear interpolates from `from` at the start of the sweep to `to` at its
// end.
func Linear(from, to fixed.Int26_6) Interpolator {
	return func(pos, span int64) fixed.Int26_6 {
		return Lerp(from, to, pos, span)
	}
}

// Constant returns v everywhere along the sweep.
func Constant(v fixed.Int26_6) Interpolator {
	return func(int64, int64) fixed.Int26_6 {
		return v
	}
}

// Spiral describes a band by its center line and half-width, both functions
// of the position along the sweep.
type Spiral struct {
	Center       fixed.Point26_6
	StartAngle   Angle
	EndAngle     Angle
	Radius       Interpolator
	HalfWidth    Interpolator
	Subdivisions int
}

// BuildSpiral emits the closed outline of s to sink.
func BuildSpiral(sink PathSink, s Spiral) {
	outer := func(pos, span int64) fixed.Int26_6 {
		return s.Radius(pos, span) + s.HalfWidth(pos, span)
	}
	inner := func(pos, span int64) fixed.Int26_6 {
		return s.Radius(pos, span) - s.HalfWidth(pos, span)
	}
	buildOutline(sink, s.Center, s.StartAngle, s.EndAngle, s.Subdivisions, outer, inner)
}

// Band is a ring sector whose outer and inner radii vary linearly with the
// angle between StartAngle and EndAngle. The sweep may run in either
// direction and span any number of turns.
//
// Subdivisions is the number of grid cells per turn used to cut the sweep
// into curve segments; it must be at least 4. The outer radius must not fall
// below the inner radius anywhere along the sweep.
type Band struct {
	Center       fixed.Point26_6
	StartAngle   Angle
	EndAngle     Angle
	StartOuter   fixed.Int26_6
	EndOuter     fixed.Int26_6
	StartInner   fixed.Int26_6
	EndInner     fixed.Int26_6
	Subdivisions int
}

// Sweep returns EndAngle-StartAngle without wrapping.
func (b Band) Sweep() int64 {
	return int64(b.EndAngle) - int64(b.StartAngle)
}

// Path returns the outline of b as a new Path.
func (b Band) Path() *Path {
	p := NewPath()
	BuildBand(p, b)
	return p
}

// BuildBand emits the closed outline of b to sink: the outer edge from
// StartAngle to EndAngle, a line across the end cap, the inner edge back to
// StartAngle, and a close.
func BuildBand(sink PathSink, b Band) {
	buildOutline(sink, b.Center, b.StartAngle, b.EndAngle, b.Subdivisions,
		Linear(b.StartOuter, b.EndOuter), Linear(b.StartInner, b.EndInner))
}

// UniformBand is a band of constant half-width whose center line moves by
// RatePerRevolution for every full turn swept, whatever the direction.
type UniformBand struct {
	Center            fixed.Point26_6
	HalfWidth         fixed.Int26_6
	StartRadius       fixed.Int26_6
	RatePerRevolution fixed.Int26_6
	StartAngle        Angle
	EndAngle          Angle
	Subdivisions      int
}

// EndRadius returns the center-line radius at EndAngle.
func (u UniformBand) EndRadius() fixed.Int26_6 {
	sweep := int64(u.EndAngle) - int64(u.StartAngle)
	if sweep < 0 {
		sweep = -sweep
	}
	return u.StartRadius + Scale(u.RatePerRevolution, sweep, int64(FullTurn))
}

// Band returns the equivalent explicit band.
func (u UniformBand) Band() Band {
	end := u.EndRadius()
	return Band{
		Center:       u.Center,
		StartAngle:   u.StartAngle,
		EndAngle:     u.EndAngle,
		StartOuter:   u.StartRadius + u.HalfWidth,
		EndOuter:     end + u.HalfWidth,
		StartInner:   u.StartRadius - u.HalfWidth,
		EndInner:     end - u.HalfWidth,
		Subdivisions: u.Subdivisions,
	}
}

// BuildUniformBand emits the closed outline of u to sink.
func BuildUniformBand(sink PathSink, u UniformBand) {
	BuildSpiral(sink, Spiral{
		Center:       u.Center,
		StartAngle:   u.StartAngle,
		EndAngle:     u.EndAngle,
		Radius:       Linear(u.StartRadius, u.EndRadius()),
		HalfWidth:    Constant(u.HalfWidth),
		Subdivisions: u.Subdivisions,
	})
}

// buildOutline walks the outer edge forward and the inner edge backward over
// the same grid vertices. Edge values are interpolated over the whole sweep,
// not per segment, so the taper does not depend on the subdivision count.
func buildOutline(sink PathSink, center fixed.Point26_6, start, end Angle, subdivisions int, outer, inner Interpolator) {
	checkSubdivisions(subdivisions)
	checkEdges(outer, inner, start, end)

	span := int64(end) - int64(start)
	at := func(edge Interpolator, a Angle) fixed.Int26_6 {
		return edge(int64(a)-int64(start), span)
	}
	arc := func(edge Interpolator, a0, a1 Angle) Curve {
		return ApproximateArc(Arc{
			Center:      center,
			StartRadius: at(edge, a0),
			EndRadius:   at(edge, a1),
			StartAngle:  a0,
			EndAngle:    a1,
		})
	}

	vertices := sweepVertices(start, end, FullTurn/Angle(subdivisions))

	sink.MoveTo(PolarFrom(center, at(outer, start), start))
	for i := 1; i < len(vertices); i++ {
		arc(outer, vertices[i-1], vertices[i]).Emit(sink)
	}

	sink.LineTo(PolarFrom(center, at(inner, end), end))
	for i := len(vertices) - 1; i > 0; i-- {
		arc(inner, vertices[i], vertices[i-1]).Emit(sink)
	}

	sink.Close()
}

// sweepVertices returns start, every multiple of quad strictly between start
// and end in sweep order, and end. A sweep of at most one quad is returned as
// just its two end points.
func sweepVertices(start, end, quad Angle) []Angle {
	sweep := int64(end) - int64(start)
	flip := int64(1)
	if sweep < 0 {
		flip = -1
	}
	q := int64(quad)
	if sweep*flip <= q {
		return []Angle{start, end}
	}

	rem := int64(start) % q
	if rem < 0 {
		rem += q
	}
	cur := int64(start) - rem
	if flip > 0 {
		cur += q
	} else if rem == 0 {
		cur -= q
	}

	vertices := make([]Angle, 0, sweep*flip/q+3)
	vertices = append(vertices, start)
	for ; flip*cur < flip*int64(end); cur += flip * q {
		vertices = append(vertices, Angle(cur))
	}
	return append(vertices, end)
}
