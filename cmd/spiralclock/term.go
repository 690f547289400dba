package main

import (
	"context"
	"image"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/gogpu/spiral"
	"github.com/gogpu/spiral/config"
	"github.com/gogpu/spiral/render"
)

// halfBlock paints the upper pixel of a cell in the foreground color and the
// lower pixel in the background color.
const halfBlock = '▀'

type terminal struct {
	screen tcell.Screen
	clock  spiral.Clock
	cfg    config.Config

	r      *render.Renderer
	closeR func()
	img    *image.RGBA
}

func runTerminal(ctx context.Context, path string, cfg config.Config, clock spiral.Clock) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return err
	}
	if err := screen.Init(); err != nil {
		return err
	}

	t := &terminal{screen: screen, clock: clock, cfg: cfg, closeR: func() {}}
	defer t.cleanup()

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	events := make(chan tcell.Event, 16)
	go pollEvents(ctx, screen, events)

	reloads := make(chan config.Config, 1)
	if path != "" {
		go func() {
			err := config.Watch(ctx, path, func(c config.Config, err error) {
				if err != nil {
					spiral.Logger().Warn("config rejected", "err", err)
					return
				}
				select {
				case reloads <- c:
				case <-ctx.Done():
				}
			})
			if err != nil {
				spiral.Logger().Warn("config watch stopped", "err", err)
			}
		}()
	}

	if err := t.resize(); err != nil {
		return err
	}
	t.draw()

	timer := time.NewTimer(spiral.UntilNextMinute(time.Now()))
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case ev := <-events:
			switch ev := ev.(type) {
			case *tcell.EventKey:
				if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC ||
					(ev.Key() == tcell.KeyRune && ev.Rune() == 'q') {
					return nil
				}
			case *tcell.EventResize:
				screen.Sync()
				if err := t.resize(); err != nil {
					return err
				}
				t.draw()
			}
		case c := <-reloads:
			prev := t.cfg
			t.cfg = c
			if err := t.resize(); err != nil {
				spiral.Logger().Warn("config not applied", "err", err)
				t.cfg = prev
				continue
			}
			spiral.Logger().Info("config reloaded", "path", path)
			t.draw()
		case <-timer.C:
			t.draw()
			timer.Reset(spiral.UntilNextMinute(time.Now()))
		}
	}
}

// pollEvents forwards screen events until the screen is finalized or ctx
// is done.
func pollEvents(ctx context.Context, screen tcell.Screen, events chan<- tcell.Event) {
	for {
		ev := screen.PollEvent()
		if ev == nil {
			return
		}
		select {
		case events <- ev:
		case <-ctx.Done():
			return
		}
	}
}

// resize rebuilds the renderer for the current screen size. Each cell holds
// two pixels stacked vertically.
func (t *terminal) resize() error {
	w, h := t.screen.Size()
	bounds := image.Rect(0, 0, max(w, 1), max(2*h, 1))

	r, closeR, err := newRenderer(t.cfg, bounds)
	if err != nil {
		return err
	}
	t.closeR()
	t.r, t.closeR = r, closeR
	t.img = image.NewRGBA(bounds)
	return nil
}

func (t *terminal) draw() {
	t.r.Draw(t.img, t.clock.Now())

	b := t.img.Bounds()
	for y := 0; y+1 < b.Dy(); y += 2 {
		for x := 0; x < b.Dx(); x++ {
			top := t.img.RGBAAt(x, y)
			bottom := t.img.RGBAAt(x, y+1)
			style := tcell.StyleDefault.
				Foreground(tcell.NewRGBColor(int32(top.R), int32(top.G), int32(top.B))).
				Background(tcell.NewRGBColor(int32(bottom.R), int32(bottom.G), int32(bottom.B)))
			t.screen.SetContent(x, y/2, halfBlock, nil, style)
		}
	}
	t.screen.Show()
}

func (t *terminal) cleanup() {
	t.screen.Fini()
	t.closeR()
}
