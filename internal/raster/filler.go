// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package raster fills spiral outlines into images.
//
// A Filler is a spiral.PathSink that feeds golang.org/x/image/vector. Contours
// accumulate until Fill composites them onto a destination with one color and
// clears the accumulator for the next layer. Overlapping contours combine by
// absolute winding, so a contour wound against an enclosing one cuts a hole.
package raster

import (
	"image"
	"image/color"
	"image/draw"

	"golang.org/x/image/math/fixed"
	"golang.org/x/image/vector"

	"github.com/gogpu/spiral"
)

// Filler rasterizes path commands for one destination rectangle.
type Filler struct {
	ras    *vector.Rasterizer
	bounds image.Rectangle
	empty  bool
}

var _ spiral.PathSink = (*Filler)(nil)

// NewFiller creates a filler covering bounds. Path coordinates are absolute;
// the part outside bounds is clipped.
func NewFiller(bounds image.Rectangle) *Filler {
	f := &Filler{
		ras:    vector.NewRasterizer(bounds.Dx(), bounds.Dy()),
		bounds: bounds,
		empty:  true,
	}
	spiral.Logger().Debug("raster filler", "bounds", bounds)
	return f
}

// Bounds returns the rectangle the filler covers.
func (f *Filler) Bounds() image.Rectangle { return f.bounds }

// Empty reports whether no path command has been recorded since the last
// Fill or Reset.
func (f *Filler) Empty() bool { return f.empty }

func (f *Filler) xy(p fixed.Point26_6) (float32, float32) {
	return float32(p.X)/64 - float32(f.bounds.Min.X), float32(p.Y)/64 - float32(f.bounds.Min.Y)
}

// MoveTo starts a new contour at p.
func (f *Filler) MoveTo(p fixed.Point26_6) {
	f.empty = false
	f.ras.MoveTo(f.xy(p))
}

// LineTo adds a line to p.
func (f *Filler) LineTo(p fixed.Point26_6) {
	f.empty = false
	f.ras.LineTo(f.xy(p))
}

// CubicTo adds a cubic Bezier curve through c1 and c2 to p.
func (f *Filler) CubicTo(c1, c2, p fixed.Point26_6) {
	f.empty = false
	x1, y1 := f.xy(c1)
	x2, y2 := f.xy(c2)
	x, y := f.xy(p)
	f.ras.CubeTo(x1, y1, x2, y2, x, y)
}

// Close closes the current contour.
func (f *Filler) Close() {
	f.ras.ClosePath()
}

// Fill composites the accumulated coverage onto dst in color c (source-over)
// and resets the filler.
func (f *Filler) Fill(dst draw.Image, c color.Color) {
	if !f.empty {
		f.ras.DrawOp = draw.Over
		f.ras.Draw(dst, f.bounds, image.NewUniform(c), image.Point{})
	}
	f.Reset()
}

// Mask returns the accumulated coverage as an alpha mask the size of the
// filler bounds and resets the filler.
func (f *Filler) Mask() *image.Alpha {
	mask := image.NewAlpha(image.Rect(0, 0, f.bounds.Dx(), f.bounds.Dy()))
	if !f.empty {
		f.ras.DrawOp = draw.Src
		f.ras.Draw(mask, mask.Bounds(), image.Opaque, image.Point{})
	}
	f.Reset()
	return mask
}

// Reset discards all recorded contours.
func (f *Filler) Reset() {
	f.ras.Reset(f.bounds.Dx(), f.bounds.Dy())
	f.empty = true
}
