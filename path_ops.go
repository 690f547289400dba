package spiral

import "golang.org/x/image/math/fixed"

// Path inspection: signed area, on-curve points, contour reversal.

// Area returns the signed area enclosed by the path in square pixels.
// Positive for contours wound clockwise on screen (y down), negative for
// counter-clockwise. Only closed contours contribute.
func (p *Path) Area() float64 {
	var area float64
	var current, start fixed.Point26_6

	for _, elem := range p.elements {
		switch e := elem.(type) {
		case MoveTo:
			start = e.Point
			current = e.Point
		case LineTo:
			area += lineArea(current, e.Point)
			current = e.Point
		case CubicTo:
			area += cubicArea(current, e.Control1, e.Control2, e.Point)
			current = e.Point
		case Close:
			area += lineArea(current, start)
			current = start
		}
	}

	return area
}

func toFloat(v fixed.Int26_6) float64 {
	return float64(v) / 64
}

// lineArea is the shoelace contribution of a segment.
func lineArea(p0, p1 fixed.Point26_6) float64 {
	x0, y0 := toFloat(p0.X), toFloat(p0.Y)
	x1, y1 := toFloat(p1.X), toFloat(p1.Y)
	return 0.5 * (x0*y1 - x1*y0)
}

// cubicArea integrates x*dy over a cubic Bezier (Green's theorem).
func cubicArea(p0, p1, p2, p3 fixed.Point26_6) float64 {
	x0, y0 := toFloat(p0.X), toFloat(p0.Y)
	x1, y1 := toFloat(p1.X), toFloat(p1.Y)
	x2, y2 := toFloat(p2.X), toFloat(p2.Y)
	x3, y3 := toFloat(p3.X), toFloat(p3.Y)
	return (x0*(6*y1+3*y2+y3) +
		3*x1*(-2*y0+y2+y3) +
		3*x2*(-y0-y1+2*y3) +
		x3*(-y0-3*y1-6*y2)) / 20.0
}

// Points returns the on-curve points of the path: contour starts and the
// end point of every line and curve. Control points are omitted.
func (p *Path) Points() []fixed.Point26_6 {
	pts := make([]fixed.Point26_6, 0, len(p.elements))
	for _, elem := range p.elements {
		switch e := elem.(type) {
		case MoveTo:
			pts = append(pts, e.Point)
		case LineTo:
			pts = append(pts, e.Point)
		case CubicTo:
			pts = append(pts, e.Point)
		}
	}
	return pts
}

// Contours returns the number of contours (MoveTo elements) in the path.
func (p *Path) Contours() int {
	n := 0
	for _, elem := range p.elements {
		if _, ok := elem.(MoveTo); ok {
			n++
		}
	}
	return n
}

// Reversed returns a new path with every contour traversed backwards.
func (p *Path) Reversed() *Path {
	result := NewPath()
	for _, sp := range p.collectSubpaths() {
		reverseSubpath(sp, result)
	}
	return result
}

// subpath is a single contour with its elements and closure state.
type subpath struct {
	elements []PathElement
	closed   bool
}

func (p *Path) collectSubpaths() []subpath {
	var subpaths []subpath
	var current subpath

	for _, elem := range p.elements {
		switch elem.(type) {
		case MoveTo:
			if len(current.elements) > 0 {
				subpaths = append(subpaths, current)
			}
			current = subpath{elements: []PathElement{elem}}
		case Close:
			current.closed = true
			subpaths = append(subpaths, current)
			current = subpath{}
		default:
			current.elements = append(current.elements, elem)
		}
	}

	if len(current.elements) > 0 {
		subpaths = append(subpaths, current)
	}
	return subpaths
}

func reverseSubpath(sp subpath, result *Path) {
	if len(sp.elements) == 0 {
		return
	}

	result.MoveTo(endPoint(sp.elements[len(sp.elements)-1]))
	for i := len(sp.elements) - 1; i > 0; i-- {
		prev := endPoint(sp.elements[i-1])
		switch e := sp.elements[i].(type) {
		case LineTo:
			result.LineTo(prev)
		case CubicTo:
			result.CubicTo(e.Control2, e.Control1, prev)
		}
	}

	if sp.closed {
		result.Close()
	}
}

func endPoint(elem PathElement) fixed.Point26_6 {
	switch e := elem.(type) {
	case MoveTo:
		return e.Point
	case LineTo:
		return e.Point
	case CubicTo:
		return e.Point
	}
	return fixed.Point26_6{}
}
