// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package render paints clock frames into images.
//
// A Renderer owns a face, a palette and a CPU filler. Each call to Draw
// computes the frame for a time and paints it layer by layer:
//
//	background (color or bitmap for the AM/PM phase)
//	minute cover, hour cover, hour band, ticks, hub
//	date label (optional)
//
// The minute cover is a filled rectangle with the minute band cut out, so
// the background shows only through the band.
//
// Usage:
//
//	face := spiral.NewFace(image.Rect(0, 0, 144, 168))
//	r := render.New(face, theme.Select(theme.Color))
//	img := r.Image(time.Now())
//
// A Renderer is not safe for concurrent use.
package render

import (
	"fmt"
	"image"
	"image/draw"
	_ "image/jpeg" // background decoders
	_ "image/png"
	"os"
	"time"

	xdraw "golang.org/x/image/draw"

	"github.com/gogpu/spiral"
	"github.com/gogpu/spiral/internal/raster"
	"github.com/gogpu/spiral/theme"
)

// Option configures a Renderer.
type Option func(*Renderer)

// WithBackground paints img, scaled to the face bounds, instead of the
// palette background during phase ph.
func WithBackground(ph theme.Phase, img image.Image) Option {
	return func(r *Renderer) {
		if img != nil {
			r.background[ph] = scaleTo(img, r.face.Bounds())
		}
	}
}

// WithLabel draws l below the face.
func WithLabel(l *Label) Option {
	return func(r *Renderer) {
		r.label = l
	}
}

// Renderer paints frames of one face.
type Renderer struct {
	face       *spiral.Face
	palette    theme.Palette
	background [2]*image.RGBA
	label      *Label
	filler     *raster.Filler
}

// New creates a renderer for face with palette p.
func New(face *spiral.Face, p theme.Palette, opts ...Option) *Renderer {
	r := &Renderer{
		face:    face,
		palette: p,
		filler:  raster.NewFiller(face.Bounds()),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Face returns the face the renderer draws.
func (r *Renderer) Face() *spiral.Face { return r.face }

// Image returns a new image holding the frame for t.
func (r *Renderer) Image(t time.Time) *image.RGBA {
	img := image.NewRGBA(r.face.Bounds())
	r.Draw(img, t)
	return img
}

// Draw paints the frame for the wall-clock time of t into dst.
func (r *Renderer) Draw(dst draw.Image, t time.Time) {
	state := spiral.NewTimeState(t)
	fr := r.face.Frame(state)
	ph := theme.PhaseOf(state.Hour)
	bounds := r.face.Bounds()

	if bg := r.background[ph]; bg != nil {
		draw.Draw(dst, bounds, bg, bounds.Min, draw.Src)
	} else {
		draw.Draw(dst, bounds, image.NewUniform(r.palette.Background(ph)), image.Point{}, draw.Src)
	}

	for _, l := range spiral.Layers() {
		fr.Emit(l, r.filler)
		r.filler.Fill(dst, r.palette.Layer(l))
	}

	if r.label != nil {
		r.label.Draw(dst, bounds, t, r.palette.Tick)
	}

	spiral.Logger().Debug("frame drawn", "time", state, "phase", ph)
}

// scaleTo resamples img to fill bounds.
func scaleTo(img image.Image, bounds image.Rectangle) *image.RGBA {
	dst := image.NewRGBA(bounds)
	xdraw.CatmullRom.Scale(dst, bounds, img, img.Bounds(), xdraw.Src, nil)
	return dst
}

// LoadImage decodes a PNG or JPEG file.
func LoadImage(path string) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("render: open background: %w", err)
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("render: decode %s: %w", path, err)
	}
	return img, nil
}
