// Package theme picks the colors a clock frame is painted with.
//
// The geometry in package spiral never sees a color. A [Palette] is chosen
// once at startup from the display [Capability] and then looked up per
// [spiral.Layer] and half-day [Phase].
package theme

import (
	"fmt"
	"image/color"
	"strings"

	"github.com/gogpu/spiral"
)

// Capability describes what the display can show.
type Capability int

const (
	// Color displays get the full palette.
	Color Capability = iota
	// Mono displays draw everything in one ink on black.
	Mono
)

// String returns "color" or "mono".
func (c Capability) String() string {
	switch c {
	case Color:
		return "color"
	case Mono:
		return "mono"
	}
	return fmt.Sprintf("Capability(%d)", int(c))
}

// ParseCapability parses "color" or "mono", ignoring case.
func ParseCapability(s string) (Capability, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "color", "colour":
		return Color, nil
	case "mono", "monochrome", "bw":
		return Mono, nil
	}
	return 0, fmt.Errorf("theme: unknown capability %q", s)
}

// Phase is the half of the day a frame is drawn in. The background changes
// at noon and at midnight.
type Phase int

const (
	// AM covers hours 0 through 11.
	AM Phase = iota
	// PM covers hours 12 through 23.
	PM
)

// String returns "am" or "pm".
func (p Phase) String() string {
	if p == PM {
		return "pm"
	}
	return "am"
}

// PhaseOf returns the phase of a 24-hour clock hour.
func PhaseOf(hour int) Phase {
	if hour%24 >= 12 {
		return PM
	}
	return AM
}

// Named colors of the classic watch palette.
var (
	ChromeYellow  = MustHex("#FFAA00")
	VividCerulean = MustHex("#00AAFF")
	LightGray     = MustHex("#AAAAAA")
	White         = MustHex("#FFFFFF")
	Black         = MustHex("#000000")
)

// Palette holds one color per role.
type Palette struct {
	AM          color.NRGBA
	PM          color.NRGBA
	Tick        color.NRGBA
	MinuteCover color.NRGBA
	Hour        color.NRGBA
	Hub         color.NRGBA
}

// Select returns the default palette for capability c.
func Select(c Capability) Palette {
	if c == Mono {
		return Palette{
			AM:          White,
			PM:          White,
			Tick:        White,
			MinuteCover: Black,
			Hour:        White,
			Hub:         White,
		}
	}
	return Palette{
		AM:          ChromeYellow,
		PM:          VividCerulean,
		Tick:        LightGray,
		MinuteCover: Black,
		Hour:        White,
		Hub:         White,
	}
}

// Background returns the face background for phase p.
func (p Palette) Background(ph Phase) color.NRGBA {
	if ph == PM {
		return p.PM
	}
	return p.AM
}

// Layer returns the fill color of layer l. The hour cover shares the minute
// cover color so it reads as a gap around the hour band.
func (p Palette) Layer(l spiral.Layer) color.NRGBA {
	switch l {
	case spiral.MinuteCoverLayer, spiral.HourCoverLayer:
		return p.MinuteCover
	case spiral.HourLayer:
		return p.Hour
	case spiral.TickLayer:
		return p.Tick
	case spiral.HubLayer:
		return p.Hub
	}
	return p.MinuteCover
}

// Override replaces each role of p whose entry in hex is non-empty. Keys are
// am, pm, tick, cover, hour and hub.
func (p Palette) Override(hex map[string]string) (Palette, error) {
	for key, v := range hex {
		if v == "" {
			continue
		}
		c, err := ParseHex(v)
		if err != nil {
			return p, fmt.Errorf("palette %s: %w", key, err)
		}
		switch key {
		case "am":
			p.AM = c
		case "pm":
			p.PM = c
		case "tick":
			p.Tick = c
		case "cover":
			p.MinuteCover = c
		case "hour":
			p.Hour = c
		case "hub":
			p.Hub = c
		default:
			return p, fmt.Errorf("theme: unknown palette role %q", key)
		}
	}
	return p, nil
}
