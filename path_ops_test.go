package spiral

import (
	"math"
	"testing"

	"golang.org/x/image/math/fixed"
)

// TestPathArea tests the Area() method for various shapes.
func TestPathArea(t *testing.T) {
	tests := []struct {
		name      string
		buildPath func() *Path
		wantArea  float64
		tolerance float64
	}{
		{
			name: "unit square clockwise",
			buildPath: func() *Path {
				p := NewPath()
				p.MoveTo(Pt(0, 0))
				p.LineTo(Pt(1, 0))
				p.LineTo(Pt(1, 1))
				p.LineTo(Pt(0, 1))
				p.Close()
				return p
			},
			wantArea:  1.0,
			tolerance: 0.001,
		},
		{
			name: "unit square counter-clockwise",
			buildPath: func() *Path {
				p := NewPath()
				p.MoveTo(Pt(0, 0))
				p.LineTo(Pt(0, 1))
				p.LineTo(Pt(1, 1))
				p.LineTo(Pt(1, 0))
				p.Close()
				return p
			},
			wantArea:  -1.0,
			tolerance: 0.001,
		},
		{
			name: "10x20 rectangle",
			buildPath: func() *Path {
				p := NewPath()
				p.Rectangle(fixed.R(0, 0, 10, 20))
				return p
			},
			wantArea:  200,
			tolerance: 0.001,
		},
		{
			name: "circle",
			buildPath: func() *Path {
				p := NewPath()
				AppendCircle(p, Pt(50, 50), fixed.I(40))
				return p
			},
			wantArea:  math.Pi * 40 * 40,
			tolerance: 4,
		},
		{
			name:      "empty",
			buildPath: NewPath,
			wantArea:  0,
			tolerance: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.buildPath().Area()
			if math.Abs(got-tt.wantArea) > tt.tolerance {
				t.Errorf("Area() = %v, want %v (±%v)", got, tt.wantArea, tt.tolerance)
			}
		})
	}
}

func TestPathReversed(t *testing.T) {
	p := NewPath()
	p.MoveTo(Pt(0, 0))
	p.LineTo(Pt(10, 0))
	p.CubicTo(Pt(12, 2), Pt(12, 8), Pt(10, 10))
	p.Close()

	r := p.Reversed()
	want := []PathElement{
		MoveTo{Point: Pt(10, 10)},
		CubicTo{Control1: Pt(12, 8), Control2: Pt(12, 2), Point: Pt(10, 0)},
		LineTo{Point: Pt(0, 0)},
		Close{},
	}

	got := r.Elements()
	if len(got) != len(want) {
		t.Fatalf("Reversed() has %d elements, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("element %d = %#v, want %#v", i, got[i], want[i])
		}
	}

	if a, b := p.Area(), r.Area(); math.Abs(a+b) > 1e-9 {
		t.Errorf("reversed area = %v, want %v", b, -a)
	}
}

func TestPathReplay(t *testing.T) {
	p := NewPath()
	p.Rectangle(fixed.R(1, 2, 3, 4))
	p.MoveTo(Pt(5, 5))
	p.CubicTo(Pt(6, 5), Pt(7, 6), Pt(7, 7))
	p.Close()

	dst := NewPath()
	p.Replay(dst)

	if len(dst.Elements()) != len(p.Elements()) {
		t.Fatalf("Replay produced %d elements, want %d", len(dst.Elements()), len(p.Elements()))
	}
	for i, e := range p.Elements() {
		if dst.Elements()[i] != e {
			t.Errorf("element %d = %#v, want %#v", i, dst.Elements()[i], e)
		}
	}
	if got := dst.Contours(); got != 2 {
		t.Errorf("Contours() = %d, want 2", got)
	}
	if got := len(dst.Points()); got != 6 {
		t.Errorf("len(Points()) = %d, want 6", got)
	}
}
