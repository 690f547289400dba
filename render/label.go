// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package render

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"strings"
	"time"

	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Casing selects how the date label is cased.
type Casing int

const (
	// AsIs keeps the formatted date unchanged.
	AsIs Casing = iota
	// Upper upper-cases every letter.
	Upper
	// Lower lower-cases every letter.
	Lower
	// Title capitalizes the first letter of each word.
	Title
)

// ParseCasing parses "", "as-is", "upper", "lower" or "title".
func ParseCasing(s string) (Casing, error) {
	switch strings.ToLower(s) {
	case "", "as-is", "asis", "none":
		return AsIs, nil
	case "upper":
		return Upper, nil
	case "lower":
		return Lower, nil
	case "title":
		return Title, nil
	}
	return AsIs, fmt.Errorf("render: unknown casing %q", s)
}

// LabelOptions configures a date label.
type LabelOptions struct {
	// Layout is a time.Format layout. Default "Mon 2".
	Layout string
	// Size is the font size in pixels. Default 10.
	Size float64
	// Casing is applied with the rules of Language.
	Casing   Casing
	Language language.Tag
}

// Label draws the date below the face in the Go Regular font.
type Label struct {
	face   font.Face
	layout string
	caser  *cases.Caser
}

// NewLabel parses the bundled font and prepares a label.
func NewLabel(opts LabelOptions) (*Label, error) {
	if opts.Layout == "" {
		opts.Layout = "Mon 2"
	}
	if opts.Size <= 0 {
		opts.Size = 10
	}

	f, err := opentype.Parse(goregular.TTF)
	if err != nil {
		return nil, fmt.Errorf("render: parse font: %w", err)
	}
	face, err := opentype.NewFace(f, &opentype.FaceOptions{
		Size:    opts.Size,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return nil, fmt.Errorf("render: font face: %w", err)
	}

	l := &Label{face: face, layout: opts.Layout}
	var c cases.Caser
	switch opts.Casing {
	case Upper:
		c = cases.Upper(opts.Language)
	case Lower:
		c = cases.Lower(opts.Language)
	case Title:
		c = cases.Title(opts.Language)
	default:
		return l, nil
	}
	l.caser = &c
	return l, nil
}

// Text returns the label text for t.
func (l *Label) Text(t time.Time) string {
	s := t.Format(l.layout)
	if l.caser != nil {
		s = l.caser.String(s)
	}
	return s
}

// Draw writes the label for t centered horizontally at the bottom of bounds.
func (l *Label) Draw(dst draw.Image, bounds image.Rectangle, t time.Time, c color.Color) {
	text := l.Text(t)
	d := font.Drawer{
		Dst:  dst,
		Src:  image.NewUniform(c),
		Face: l.face,
	}
	width := d.MeasureString(text)
	descent := l.face.Metrics().Descent
	d.Dot = fixed.Point26_6{
		X: fixed.I(bounds.Min.X+bounds.Dx()/2) - width/2,
		Y: fixed.I(bounds.Max.Y) - descent,
	}
	d.DrawString(text)
}

// Close releases the font face.
func (l *Label) Close() error {
	return l.face.Close()
}
