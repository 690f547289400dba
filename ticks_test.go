package spiral

import (
	"math"
	"testing"

	"golang.org/x/image/math/fixed"
)

func TestTickRingLayout(t *testing.T) {
	center := Pt(72, 84)
	ticks := TickRing(center, fixed.I(69), fixed.I(3), fixed.I(1), 9)

	if len(ticks) != TickCount {
		t.Fatalf("TickRing returned %d ticks, want %d", len(ticks), TickCount)
	}
	for i, tk := range ticks {
		if want := Deg(30 * i); math.Abs(float64(tk.Angle-want)) > 1 {
			t.Errorf("tick %d angle = %v, want %v", i, tk.Angle, want)
		}
		if tk.Marker != (i == 9) {
			t.Errorf("tick %d Marker = %v", i, tk.Marker)
		}
	}

	// Slot 3 points straight down: an axis-aligned rectangle below center.
	want := [4]fixed.Point26_6{Pt(73, 153), Pt(73, 156), Pt(71, 156), Pt(71, 153)}
	for j, p := range ticks[3].Corners {
		if distance(p, want[j]) > 1.0/64 {
			t.Errorf("tick 3 corner %d = %v, want %v", j, p, want[j])
		}
	}
}

func TestTickRingMarker(t *testing.T) {
	center := Pt(0, 0)
	ticks := TickRing(center, fixed.I(50), fixed.I(3), fixed.I(1), 9)

	// Slot 9 is 12 o'clock: a rectangle above the center, doubled.
	m := ticks[9]
	for _, p := range m.Corners {
		x, y := px(p)
		if math.Abs(x) > 2+1.0/64 {
			t.Errorf("marker corner x = %v, want within [-2, 2]", x)
		}
		if y > -50+1.0/64 || y < -56-1.0/64 {
			t.Errorf("marker corner y = %v, want within [-56, -50]", y)
		}
	}

	area := func(tk Tick) float64 {
		p := NewPath()
		tk.Emit(p)
		return p.Area()
	}
	if a := area(m); math.Abs(a-24) > 0.1 {
		t.Errorf("marker area = %v, want 24", a)
	}
	if a := area(ticks[0]); math.Abs(a-6) > 0.1 {
		t.Errorf("plain tick area = %v, want 6", a)
	}
}

func TestTickRingNoMarker(t *testing.T) {
	for i, tk := range TickRing(Pt(0, 0), fixed.I(20), fixed.I(3), fixed.I(1), -1) {
		if tk.Marker {
			t.Errorf("tick %d is a marker, want none", i)
		}
	}
}

func TestTickEmit(t *testing.T) {
	tk := TickRing(Pt(10, 10), fixed.I(5), fixed.I(2), fixed.I(1), -1)[0]
	p := NewPath()
	tk.Emit(p)

	elems := p.Elements()
	if len(elems) != 5 {
		t.Fatalf("tick has %d elements, want 5", len(elems))
	}
	if m, ok := elems[0].(MoveTo); !ok || m.Point != Pt(15, 9) {
		t.Errorf("first element = %#v, want MoveTo (15, 9)", elems[0])
	}
	if _, ok := elems[4].(Close); !ok {
		t.Errorf("last element = %#v, want Close", elems[4])
	}
}
