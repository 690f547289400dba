package config

import (
	"bytes"
	"context"
	"errors"
	"image"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"golang.org/x/text/language"

	"github.com/gogpu/spiral"
	"github.com/gogpu/spiral/render"
	"github.com/gogpu/spiral/theme"
)

func TestDefaultIsValid(t *testing.T) {
	if err := Default().Validate(); err != nil {
		t.Errorf("Default().Validate() = %v", err)
	}
}

func TestDefaultMatchesFace(t *testing.T) {
	bounds := image.Rect(0, 0, 144, 168)
	want := spiral.NewFace(bounds).Frame(spiral.At(3, 15))
	got := spiral.NewFace(bounds, Default().FaceOptions()...).Frame(spiral.At(3, 15))

	for _, l := range spiral.Layers() {
		a, b := got.Path(l).Elements(), want.Path(l).Elements()
		if len(a) != len(b) {
			t.Fatalf("%v: %d elements, want %d", l, len(a), len(b))
		}
		for i := range a {
			if a[i] != b[i] {
				t.Fatalf("%v: element %d = %#v, want %#v", l, i, a[i], b[i])
			}
		}
	}
}

func TestParse(t *testing.T) {
	src := `
[face]
cycle_minutes = 60
smooth_hour = true
hub_radius = 2.5

[palette]
capability = "mono"
tick = "#808080"

[background]
pm = "afternoon.png"

[date]
enabled = true
case = "title"
language = "de"
`
	c, err := Parse(strings.NewReader(src))
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}

	if c.Face.CycleMinutes != 60 || !c.Face.SmoothHour || c.Face.HubRadius != 2.5 {
		t.Errorf("face = %+v", c.Face)
	}
	// Untouched fields keep their defaults.
	if c.Face.Margin != spiral.DefaultMargin || c.Face.HourSubdivisions != spiral.DefaultHourSubdivisions {
		t.Errorf("defaults lost: %+v", c.Face)
	}
	if c.Background.PM != "afternoon.png" || c.Background.AM != "" {
		t.Errorf("background = %+v", c.Background)
	}
	if c.Date.Layout != "Mon 2" {
		t.Errorf("date layout = %q, want default", c.Date.Layout)
	}

	p, err := c.Theme()
	if err != nil {
		t.Fatalf("Theme() error = %v", err)
	}
	if p.Tick != theme.MustHex("#808080") || p.Hour != theme.White {
		t.Errorf("palette = %+v", p)
	}

	lo, ok, err := c.Label()
	if err != nil || !ok {
		t.Fatalf("Label() = %v, %v", ok, err)
	}
	if lo.Casing != render.Title || lo.Language != language.German {
		t.Errorf("label options = %+v", lo)
	}

	// One minute turn per five minutes: 70 minutes wrap to 10, two turns.
	fr := spiral.NewFace(image.Rect(0, 0, 144, 168), c.FaceOptions()...).Frame(spiral.At(1, 10))
	if len(fr.Minute) != 2 {
		t.Errorf("minute band parts = %d, want 2", len(fr.Minute))
	}
	if fr.Hub == 0 {
		t.Error("hub radius not applied")
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name    string
		src     string
		invalid bool
	}{
		{"unknown key", "[face]\ncolour = 1\n", false},
		{"unknown section", "[clock]\nx = 1\n", false},
		{"syntax", "[face\n", false},
		{"wrong type", "[face]\nmargin = \"wide\"\n", false},
		{"negative margin", "[face]\nmargin = -1\n", true},
		{"short cycle", "[face]\ncycle_minutes = 5\n", true},
		{"coarse grid", "[face]\nminute_subdivisions = 2\n", true},
		{"weak boost", "[face]\nnewest_loop_boost_percent = 50\n", true},
		{"marker slot", "[face]\nmarker_slot = 12\n", true},
		{"negative hub", "[face]\nhub_radius = -1.0\n", true},
		{"infinite hub", "[face]\nhub_radius = inf\n", true},
		{"nan hub", "[face]\nhub_radius = nan\n", true},
		{"capability", "[palette]\ncapability = \"sepia\"\n", true},
		{"bad color", "[palette]\nam = \"#12\"\n", true},
		{"bad case", "[date]\ncase = \"shouty\"\n", true},
		{"bad language", "[date]\nlanguage = \"not a tag!\"\n", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse(strings.NewReader(tt.src))
			if err == nil {
				t.Fatal("Parse() succeeded, want error")
			}
			if got := errors.Is(err, ErrInvalid); got != tt.invalid {
				t.Errorf("errors.Is(%v, ErrInvalid) = %v, want %v", err, got, tt.invalid)
			}
		})
	}
}

func TestValidateReportsAll(t *testing.T) {
	c := Default()
	c.Face.Margin = -1
	c.Face.HourSubdivisions = 0
	err := c.Validate()
	if !errors.Is(err, ErrInvalid) {
		t.Fatalf("Validate() = %v, want ErrInvalid", err)
	}
	msg := err.Error()
	if !strings.Contains(msg, "face.margin") || !strings.Contains(msg, "face.hour_subdivisions") {
		t.Errorf("Validate() = %q, want both problems", msg)
	}
}

func TestLabelDisabled(t *testing.T) {
	if _, ok, err := Default().Label(); ok || err != nil {
		t.Errorf("Default().Label() = %v, %v, want disabled", ok, err)
	}
}

func TestEncodeRoundTrip(t *testing.T) {
	c := Default()
	c.Face.SmoothHour = true
	c.Palette.AM = "#112233"

	var buf bytes.Buffer
	if err := c.Encode(&buf); err != nil {
		t.Fatalf("Encode() error = %v", err)
	}
	got, err := Parse(&buf)
	if err != nil {
		t.Fatalf("Parse(Encode()) error = %v", err)
	}
	if got != c {
		t.Errorf("round trip = %+v, want %+v", got, c)
	}
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "spiral.toml")
	if err := os.WriteFile(path, []byte("[face]\nmargin = 8\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	c, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if c.Face.Margin != 8 {
		t.Errorf("margin = %d, want 8", c.Face.Margin)
	}

	if _, err := Load(filepath.Join(dir, "missing.toml")); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("Load(missing) = %v, want ErrNotExist", err)
	}
}

func TestWatch(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "spiral.toml")
	if err := os.WriteFile(path, []byte("[face]\nmargin = 1\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	type result struct {
		c   Config
		err error
	}
	got := make(chan result, 8)
	done := make(chan error, 1)
	go func() {
		done <- Watch(ctx, path, func(c Config, err error) { got <- result{c, err} })
	}()

	// Give the watcher time to register before writing.
	deadline := time.After(5 * time.Second)
	tick := time.NewTicker(200 * time.Millisecond)
	defer tick.Stop()

	margin := 2
	for {
		select {
		case r := <-got:
			if r.err != nil {
				t.Fatalf("reload error = %v", r.err)
			}
			if r.c.Face.Margin < 2 {
				t.Fatalf("reloaded margin = %d, want a rewritten value", r.c.Face.Margin)
			}
			cancel()
			if err := <-done; err != nil {
				t.Errorf("Watch() = %v", err)
			}
			return
		case <-tick.C:
			data := []byte("[face]\nmargin = " + string(rune('0'+margin)) + "\n")
			if err := os.WriteFile(path, data, 0o644); err != nil {
				t.Fatal(err)
			}
			if margin < 9 {
				margin++
			}
		case <-deadline:
			cancel()
			t.Fatal("no reload within 5s")
		}
	}
}

func TestWatchBadFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "spiral.toml")
	if err := os.WriteFile(path, nil, 0o644); err != nil {
		t.Fatal(err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	errs := make(chan error, 8)
	go Watch(ctx, path, func(_ Config, err error) { errs <- err })

	deadline := time.After(5 * time.Second)
	tick := time.NewTicker(200 * time.Millisecond)
	defer tick.Stop()
	for {
		select {
		case err := <-errs:
			if !errors.Is(err, ErrInvalid) {
				t.Fatalf("reload error = %v, want ErrInvalid", err)
			}
			return
		case <-tick.C:
			if err := os.WriteFile(path, []byte("[face]\nmargin = -4\n"), 0o644); err != nil {
				t.Fatal(err)
			}
		case <-deadline:
			t.Fatal("no reload within 5s")
		}
	}
}
