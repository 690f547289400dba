// Package config loads clock settings from a TOML file.
//
// Every field is optional; missing fields keep the values of [Default],
// which reproduce the classic face. Unknown keys are rejected so typos do
// not pass silently.
//
//	[face]
//	cycle_minutes = 720
//	smooth_hour = true
//
//	[palette]
//	capability = "color"
//	am = "#FFAA00"
//
//	[date]
//	enabled = true
//	case = "upper"
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"math"
	"os"

	"github.com/pelletier/go-toml/v2"
	"golang.org/x/image/math/fixed"
	"golang.org/x/text/language"

	"github.com/gogpu/spiral"
	"github.com/gogpu/spiral/render"
	"github.com/gogpu/spiral/theme"
)

// ErrInvalid is wrapped by every validation error.
var ErrInvalid = errors.New("config: invalid")

// Config is the full settings file.
type Config struct {
	Face       Face       `toml:"face"`
	Palette    Palette    `toml:"palette"`
	Background Background `toml:"background"`
	Date       Date       `toml:"date"`
}

// Face holds the geometry settings.
type Face struct {
	Margin                 int     `toml:"margin"`
	CycleMinutes           int     `toml:"cycle_minutes"`
	MinuteSubdivisions     int     `toml:"minute_subdivisions"`
	HourSubdivisions       int     `toml:"hour_subdivisions"`
	SmoothHour             bool    `toml:"smooth_hour"`
	NewestLoopBoostPercent int     `toml:"newest_loop_boost_percent"`
	MarkerSlot             int     `toml:"marker_slot"`
	HubRadius              float64 `toml:"hub_radius"`
}

// Palette selects the colors. Empty color entries keep the defaults of the
// capability.
type Palette struct {
	Capability string `toml:"capability"`
	AM         string `toml:"am"`
	PM         string `toml:"pm"`
	Tick       string `toml:"tick"`
	Cover      string `toml:"cover"`
	Hour       string `toml:"hour"`
	Hub        string `toml:"hub"`
}

// Background names PNG or JPEG files shown through the minute band before
// and after noon.
type Background struct {
	AM string `toml:"am"`
	PM string `toml:"pm"`
}

// Date configures the date label.
type Date struct {
	Enabled  bool    `toml:"enabled"`
	Layout   string  `toml:"layout"`
	Case     string  `toml:"case"`
	Language string  `toml:"language"`
	Size     float64 `toml:"size"`
}

// Default returns the settings of the classic face.
func Default() Config {
	return Config{
		Face: Face{
			Margin:                 spiral.DefaultMargin,
			CycleMinutes:           spiral.DefaultCycleMinutes,
			MinuteSubdivisions:     spiral.DefaultMinuteSubdivisions,
			HourSubdivisions:       spiral.DefaultHourSubdivisions,
			NewestLoopBoostPercent: 150,
			MarkerSlot:             spiral.DefaultMarkerSlot,
		},
		Palette: Palette{Capability: "color"},
		Date: Date{
			Layout:   "Mon 2",
			Case:     "upper",
			Language: "en",
			Size:     10,
		},
	}
}

// Load reads and validates the file at path.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: %w", err)
	}
	c, err := Parse(bytes.NewReader(data))
	if err != nil {
		return Config{}, fmt.Errorf("%s: %w", path, err)
	}
	return c, nil
}

// Parse decodes TOML from r over the defaults and validates the result.
func Parse(r io.Reader) (Config, error) {
	c := Default()
	dec := toml.NewDecoder(r).DisallowUnknownFields()
	if err := dec.Decode(&c); err != nil {
		var derr *toml.DecodeError
		if errors.As(err, &derr) {
			row, col := derr.Position()
			return Config{}, fmt.Errorf("config: line %d column %d: %w", row, col, err)
		}
		return Config{}, fmt.Errorf("config: %w", err)
	}
	if err := c.Validate(); err != nil {
		return Config{}, err
	}
	return c, nil
}

// Encode writes c as TOML.
func (c Config) Encode(w io.Writer) error {
	enc := toml.NewEncoder(w)
	if err := enc.Encode(c); err != nil {
		return fmt.Errorf("config: encode: %w", err)
	}
	return nil
}

// Validate reports every out-of-range setting. The returned error wraps
// ErrInvalid.
func (c Config) Validate() error {
	var errs []error
	bad := func(format string, args ...any) {
		errs = append(errs, fmt.Errorf("%w: "+format, append([]any{ErrInvalid}, args...)...))
	}

	f := c.Face
	if f.Margin < 0 {
		bad("face.margin %d is negative", f.Margin)
	}
	if f.CycleMinutes < 12 {
		bad("face.cycle_minutes %d is below 12", f.CycleMinutes)
	}
	if f.MinuteSubdivisions < 4 {
		bad("face.minute_subdivisions %d is below 4", f.MinuteSubdivisions)
	}
	if f.HourSubdivisions < 4 {
		bad("face.hour_subdivisions %d is below 4", f.HourSubdivisions)
	}
	if f.NewestLoopBoostPercent < 100 {
		bad("face.newest_loop_boost_percent %d is below 100", f.NewestLoopBoostPercent)
	}
	if f.MarkerSlot < -1 || f.MarkerSlot >= spiral.TickCount {
		bad("face.marker_slot %d is outside -1..%d", f.MarkerSlot, spiral.TickCount-1)
	}
	if f.HubRadius < 0 || math.IsNaN(f.HubRadius) || math.IsInf(f.HubRadius, 0) {
		bad("face.hub_radius %v is not a finite non-negative number", f.HubRadius)
	}

	if _, err := theme.ParseCapability(c.Palette.Capability); err != nil {
		bad("palette.capability: %v", err)
	}
	for key, v := range c.Palette.colors() {
		if v == "" {
			continue
		}
		if _, err := theme.ParseHex(v); err != nil {
			bad("palette.%s: %v", key, err)
		}
	}

	if _, err := render.ParseCasing(c.Date.Case); err != nil {
		bad("date.case: %v", err)
	}
	if c.Date.Language != "" {
		if _, err := language.Parse(c.Date.Language); err != nil {
			bad("date.language %q: %v", c.Date.Language, err)
		}
	}
	if c.Date.Size < 0 {
		bad("date.size %v is negative", c.Date.Size)
	}

	return errors.Join(errs...)
}

func (p Palette) colors() map[string]string {
	return map[string]string{
		"am":    p.AM,
		"pm":    p.PM,
		"tick":  p.Tick,
		"cover": p.Cover,
		"hour":  p.Hour,
		"hub":   p.Hub,
	}
}

// FaceOptions converts the face settings to options for spiral.NewFace.
func (c Config) FaceOptions() []spiral.FaceOption {
	f := c.Face
	opts := []spiral.FaceOption{
		spiral.WithMargin(f.Margin),
		spiral.WithCycleMinutes(f.CycleMinutes),
		spiral.WithSubdivisions(f.MinuteSubdivisions, f.HourSubdivisions),
		spiral.WithNewestLoopBoost(f.NewestLoopBoostPercent, 100),
		spiral.WithMarkerSlot(f.MarkerSlot),
		spiral.WithHubRadius(fixed.Int26_6(math.Round(f.HubRadius * 64))),
	}
	if f.SmoothHour {
		opts = append(opts, spiral.WithSmoothHour())
	}
	return opts
}

// Theme returns the palette for the configured capability with the color
// overrides applied.
func (c Config) Theme() (theme.Palette, error) {
	capability, err := theme.ParseCapability(c.Palette.Capability)
	if err != nil {
		return theme.Palette{}, fmt.Errorf("%w: %v", ErrInvalid, err)
	}
	return theme.Select(capability).Override(c.Palette.colors())
}

// Label returns the label options, and false when the date is disabled.
func (c Config) Label() (render.LabelOptions, bool, error) {
	if !c.Date.Enabled {
		return render.LabelOptions{}, false, nil
	}
	casing, err := render.ParseCasing(c.Date.Case)
	if err != nil {
		return render.LabelOptions{}, false, fmt.Errorf("%w: %v", ErrInvalid, err)
	}
	tag := language.English
	if c.Date.Language != "" {
		if tag, err = language.Parse(c.Date.Language); err != nil {
			return render.LabelOptions{}, false, fmt.Errorf("%w: %v", ErrInvalid, err)
		}
	}
	return render.LabelOptions{
		Layout:   c.Date.Layout,
		Size:     c.Date.Size,
		Casing:   casing,
		Language: tag,
	}, true, nil
}
