package spiral

import "golang.org/x/image/math/fixed"

// PathSink consumes path commands in order. A rasterizer, a recorder or any
// other consumer implements it; the geometry engine only ever calls these
// four methods.
type PathSink interface {
	MoveTo(p fixed.Point26_6)
	LineTo(p fixed.Point26_6)
	CubicTo(c1, c2, p fixed.Point26_6)
	Close()
}

// PathElement represents a single element in a path.
type PathElement interface {
	isPathElement()
}

// MoveTo starts a new contour at a point.
type MoveTo struct {
	Point fixed.Point26_6
}

func (MoveTo) isPathElement() {}

// LineTo draws a line to a point.
type LineTo struct {
	Point fixed.Point26_6
}

func (LineTo) isPathElement() {}

// CubicTo draws a cubic Bezier curve.
type CubicTo struct {
	Control1 fixed.Point26_6
	Control2 fixed.Point26_6
	Point    fixed.Point26_6
}

func (CubicTo) isPathElement() {}

// Close closes the current contour with a line back to its start.
type Close struct{}

func (Close) isPathElement() {}

// Path records path commands. It implements PathSink.
type Path struct {
	elements []PathElement
}

// NewPath creates a new empty path.
func NewPath() *Path {
	return &Path{
		elements: make([]PathElement, 0, 16),
	}
}

// MoveTo starts a new contour.
func (p *Path) MoveTo(pt fixed.Point26_6) {
	p.elements = append(p.elements, MoveTo{Point: pt})
}

// LineTo draws a line to a point.
func (p *Path) LineTo(pt fixed.Point26_6) {
	p.elements = append(p.elements, LineTo{Point: pt})
}

// CubicTo draws a cubic Bezier curve.
func (p *Path) CubicTo(c1, c2, pt fixed.Point26_6) {
	p.elements = append(p.elements, CubicTo{
		Control1: c1,
		Control2: c2,
		Point:    pt,
	})
}

// Close closes the current contour.
func (p *Path) Close() {
	p.elements = append(p.elements, Close{})
}

// Elements returns the path elements.
func (p *Path) Elements() []PathElement {
	return p.elements
}

// Replay sends every recorded element to sink in order.
func (p *Path) Replay(sink PathSink) {
	for _, elem := range p.elements {
		switch e := elem.(type) {
		case MoveTo:
			sink.MoveTo(e.Point)
		case LineTo:
			sink.LineTo(e.Point)
		case CubicTo:
			sink.CubicTo(e.Control1, e.Control2, e.Point)
		case Close:
			sink.Close()
		}
	}
}

// Rectangle adds an axis-aligned rectangle contour, wound clockwise on
// screen.
func (p *Path) Rectangle(r fixed.Rectangle26_6) {
	appendRectangle(p, r)
}

func appendRectangle(sink PathSink, r fixed.Rectangle26_6) {
	sink.MoveTo(r.Min)
	sink.LineTo(fixed.Point26_6{X: r.Max.X, Y: r.Min.Y})
	sink.LineTo(r.Max)
	sink.LineTo(fixed.Point26_6{X: r.Min.X, Y: r.Max.Y})
	sink.Close()
}
