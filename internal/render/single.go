package render

import (
	"context"
	"fmt"

	"github.com/vovakirdan/flaptiles/internal/assets"
	"github.com/vovakirdan/flaptiles/internal/core"
	"github.com/vovakirdan/flaptiles/internal/layout"
)

// hudMargin is the HUD's distance from the surface's top-left corner in device pixels.
const hudMargin = 5

// Single renders one game instance centered on the canvas, with an optional
// welcome banner and a text HUD. It shares the primitives with Tiled.
type Single struct {
	canvas  Canvas
	opts    Options
	set     *assets.Set
	layout  layout.Layout
	anim    *Animator
	welcome bool
	hud     []string
}

// NewSingle creates a single-instance renderer drawing onto c.
func NewSingle(c Canvas, opts Options) *Single {
	opts = opts.withDefaults()
	s := &Single{
		canvas: c,
		opts:   opts,
		anim:   NewAnimator(opts.FrameRate),
	}
	s.Resize()
	return s
}

// LoadSprites loads the asset set.
func (s *Single) LoadSprites(ctx context.Context, f assets.Fetcher) error {
	set, err := assets.Load(ctx, f, s.opts.AssetBase)
	if err != nil {
		s.opts.Logger.Error("sprite load failed", "err", err)
		return fmt.Errorf("render: %w", err)
	}
	s.set = set
	return nil
}

// SetAssets installs an already loaded asset set.
func (s *Single) SetAssets(set *assets.Set) {
	s.set = set
}

// IsLoaded reports whether sprites are available.
func (s *Single) IsLoaded() bool {
	return s.set != nil
}

// SetWelcome shows or hides the start message.
func (s *Single) SetWelcome(on bool) {
	s.welcome = on
}

// SetHUD replaces the HUD lines shown in the top-left corner.
func (s *Single) SetHUD(lines ...string) {
	s.hud = append(s.hud[:0], lines...)
}

// Layout returns the current layout.
func (s *Single) Layout() layout.Layout {
	return s.layout
}

// CanvasSize returns the canvas size in device pixels.
func (s *Single) CanvasSize() (int, int) {
	return s.canvas.Size()
}

// Resize recomputes the layout after the canvas changed size.
func (s *Single) Resize() {
	w, h := s.canvas.Size()
	s.layout = layout.Compute(1, w, h)
}

// Render draws one frame. Does nothing until sprites are loaded.
func (s *Single) Render(snap core.Snapshot) {
	if s.set == nil {
		return
	}
	s.anim.Tick()
	s.canvas.Clear(core.ColorSurface)

	if sc := s.layout.Scale; sc > 0 {
		w, h := s.canvas.Size()
		s.canvas.Save()
		s.canvas.Translate((float64(w)-core.LogicalW*sc)/2, (float64(h)-core.LogicalH*sc)/2)
		s.canvas.Scale(sc, sc)
		s.canvas.Clip(logicalFrame)

		frame := s.anim.Advance(0)
		drawScene(s.canvas, s.set, snap, birdCycle[frame], s.opts.ScoreScale)
		if s.welcome && !snap.GameOver {
			drawWelcome(s.canvas, s.set)
		}
		s.canvas.Restore()
	}

	y := float64(hudMargin)
	for _, line := range s.hud {
		drawOutlined(s.canvas, line, hudMargin, y, core.ColorLabel, TopLeft)
		y += s.canvas.LineHeight() + 2
	}
}
