// Command spiralclock draws the spiral clock face.
//
// In png mode it writes one frame to a file:
//
//	spiralclock -mode png -at 15:15 -size 144x168 -out face.png
//
// In term mode it shows a live face in the terminal using half-block
// characters, redrawing on every minute and on resize. The settings file
// given by -config is reloaded when it changes. Press q, Esc or Ctrl-C to
// quit.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"image"
	"image/png"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"time"

	"github.com/gogpu/spiral"
	"github.com/gogpu/spiral/config"
	"github.com/gogpu/spiral/render"
	"github.com/gogpu/spiral/theme"
)

type options struct {
	config  string
	out     string
	at      string
	size    image.Point
	mode    string
	debug   bool
	logFile string
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			os.Exit(2)
		}
		fmt.Fprintf(os.Stderr, "spiralclock: %v\n", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	opts, err := parseFlags(args, stderr)
	if err != nil {
		return err
	}

	cfg, err := loadConfig(opts.config)
	if err != nil {
		return err
	}

	clock := spiral.Clock(spiral.RealClock{})
	if opts.at != "" {
		t, err := parseClock(opts.at, time.Now())
		if err != nil {
			return err
		}
		clock = spiral.FixedClock(t)
	}

	switch opts.mode {
	case "png":
		if opts.debug {
			spiral.SetLogger(slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: slog.LevelDebug})))
		}
		r, closeR, err := newRenderer(cfg, image.Rectangle{Max: opts.size})
		if err != nil {
			return err
		}
		defer closeR()
		return writePNG(opts.out, stdout, r, clock.Now())
	case "term":
		if opts.debug {
			// The terminal owns stdout and stderr while the face is shown.
			f, err := os.OpenFile(opts.logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
			if err != nil {
				return fmt.Errorf("open log: %w", err)
			}
			defer f.Close()
			spiral.SetLogger(slog.New(slog.NewTextHandler(f, &slog.HandlerOptions{Level: slog.LevelDebug})))
		}
		return runTerminal(ctx, opts.config, cfg, clock)
	}
	return fmt.Errorf("unknown mode %q, want png or term", opts.mode)
}

func parseFlags(args []string, stderr io.Writer) (options, error) {
	fs := flag.NewFlagSet("spiralclock", flag.ContinueOnError)
	fs.SetOutput(stderr)

	var (
		opts options
		size string
	)
	fs.StringVar(&opts.config, "config", "", "TOML settings file")
	fs.StringVar(&opts.out, "out", "spiral.png", "output file for png mode, - for stdout")
	fs.StringVar(&opts.at, "at", "", "fixed time of day as HH:MM instead of the current time")
	fs.StringVar(&size, "size", "144x168", "image size as WxH for png mode")
	fs.StringVar(&opts.mode, "mode", "png", "png or term")
	fs.BoolVar(&opts.debug, "debug", false, "log geometry and frame events")
	fs.StringVar(&opts.logFile, "log", "spiralclock.log", "debug log file for term mode")

	if err := fs.Parse(args); err != nil {
		return options{}, err
	}
	if fs.NArg() > 0 {
		return options{}, fmt.Errorf("unexpected arguments %q", fs.Args())
	}

	p, err := parseSize(size)
	if err != nil {
		return options{}, err
	}
	opts.size = p
	return opts, nil
}

// parseClock returns day with its wall clock set to s, given as HH:MM.
func parseClock(s string, day time.Time) (time.Time, error) {
	hh, mm, ok := strings.Cut(s, ":")
	if !ok {
		return time.Time{}, fmt.Errorf("bad time %q, want HH:MM", s)
	}
	h, err := strconv.Atoi(hh)
	if err != nil || h < 0 || h > 23 {
		return time.Time{}, fmt.Errorf("bad hour in %q", s)
	}
	m, err := strconv.Atoi(mm)
	if err != nil || m < 0 || m > 59 {
		return time.Time{}, fmt.Errorf("bad minute in %q", s)
	}
	y, mo, d := day.Date()
	return time.Date(y, mo, d, h, m, 0, 0, day.Location()), nil
}

// parseSize parses WxH.
func parseSize(s string) (image.Point, error) {
	ws, hs, ok := strings.Cut(strings.ToLower(s), "x")
	if !ok {
		return image.Point{}, fmt.Errorf("bad size %q, want WxH", s)
	}
	w, err := strconv.Atoi(ws)
	if err != nil || w <= 0 {
		return image.Point{}, fmt.Errorf("bad width in %q", s)
	}
	h, err := strconv.Atoi(hs)
	if err != nil || h <= 0 {
		return image.Point{}, fmt.Errorf("bad height in %q", s)
	}
	return image.Pt(w, h), nil
}

func loadConfig(path string) (config.Config, error) {
	if path == "" {
		return config.Default(), nil
	}
	return config.Load(path)
}

// newRenderer builds a renderer for cfg filling bounds. The returned func
// releases the label font.
func newRenderer(cfg config.Config, bounds image.Rectangle) (*render.Renderer, func(), error) {
	p, err := cfg.Theme()
	if err != nil {
		return nil, nil, err
	}

	var ropts []render.Option
	for ph, path := range map[theme.Phase]string{theme.AM: cfg.Background.AM, theme.PM: cfg.Background.PM} {
		if path == "" {
			continue
		}
		img, err := render.LoadImage(path)
		if err != nil {
			return nil, nil, err
		}
		ropts = append(ropts, render.WithBackground(ph, img))
	}

	closeR := func() {}
	lo, ok, err := cfg.Label()
	if err != nil {
		return nil, nil, err
	}
	if ok {
		l, err := render.NewLabel(lo)
		if err != nil {
			return nil, nil, err
		}
		ropts = append(ropts, render.WithLabel(l))
		closeR = func() { l.Close() }
	}

	face := spiral.NewFace(bounds, cfg.FaceOptions()...)
	return render.New(face, p, ropts...), closeR, nil
}

func writePNG(path string, stdout io.Writer, r *render.Renderer, t time.Time) error {
	img := r.Image(t)
	if path == "-" {
		return png.Encode(stdout, img)
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := png.Encode(f, img); err != nil {
		f.Close()
		return fmt.Errorf("encode %s: %w", path, err)
	}
	return f.Close()
}
