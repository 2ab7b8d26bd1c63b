package render

import (
	"context"
	"fmt"
	"io"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/flaptiles/internal/assets"
	"github.com/vovakirdan/flaptiles/internal/core"
	"github.com/vovakirdan/flaptiles/internal/layout"
)

// borderWidth and labelInset are in device pixels.
const (
	borderWidth = 2
	labelInset  = 4
)

// Options configures a renderer.
type Options struct {
	FrameRate  int         // Renders per animation frame; defaults to DefaultFrameRate
	ScoreScale float64     // Digit glyph scale; defaults to 1
	AssetBase  string      // Base path the asset names are resolved against
	Logger     *log.Logger // Nil discards
}

func (o Options) withDefaults() Options {
	if o.FrameRate < 1 {
		o.FrameRate = DefaultFrameRate
	}
	if o.ScoreScale <= 0 {
		o.ScoreScale = 1
	}
	if o.Logger == nil {
		o.Logger = log.New(io.Discard)
	}
	return o
}

// Tiled composites up to layout.MaxInstances game instances into a grid of
// tiles on one canvas. It is not safe for concurrent use.
type Tiled struct {
	canvas    Canvas
	opts      Options
	set       *assets.Set
	instances int
	layout    layout.Layout
	anim      *Animator
}

// NewTiled creates a compositor drawing one instance onto c.
func NewTiled(c Canvas, opts Options) *Tiled {
	opts = opts.withDefaults()
	t := &Tiled{
		canvas:    c,
		opts:      opts,
		instances: 1,
		anim:      NewAnimator(opts.FrameRate),
	}
	t.relayout()
	return t
}

// LoadSprites loads the asset set. Rendering stays disabled until it succeeds.
func (t *Tiled) LoadSprites(ctx context.Context, f assets.Fetcher) error {
	set, err := assets.Load(ctx, f, t.opts.AssetBase)
	if err != nil {
		t.opts.Logger.Error("sprite load failed", "err", err)
		return fmt.Errorf("render: %w", err)
	}
	t.set = set
	t.opts.Logger.Debug("sprites loaded", "base", t.opts.AssetBase)
	return nil
}

// SetAssets installs an already loaded asset set.
func (t *Tiled) SetAssets(set *assets.Set) {
	t.set = set
}

// IsLoaded reports whether sprites are available.
func (t *Tiled) IsLoaded() bool {
	return t.set != nil
}

// SetInstanceCount changes the number of tiles, recomputes the layout and
// resets every tile's animation. Counts outside 1..layout.MaxInstances are clamped.
func (t *Tiled) SetInstanceCount(n int) {
	switch {
	case n < 1:
		t.opts.Logger.Warn("instance count clamped", "requested", n, "min", 1)
		n = 1
	case n > layout.MaxInstances:
		t.opts.Logger.Warn("instance count clamped", "requested", n, "max", layout.MaxInstances)
		n = layout.MaxInstances
	}
	t.instances = n
	t.anim.Reset()
	t.relayout()
}

// InstanceCount returns the number of tiles.
func (t *Tiled) InstanceCount() int {
	return t.instances
}

// Layout returns the current layout.
func (t *Tiled) Layout() layout.Layout {
	return t.layout
}

// CanvasSize returns the canvas size in device pixels.
func (t *Tiled) CanvasSize() (int, int) {
	return t.canvas.Size()
}

// Resize recomputes the layout after the canvas changed size.
func (t *Tiled) Resize() {
	t.relayout()
}

func (t *Tiled) relayout() {
	w, h := t.canvas.Size()
	t.layout = layout.Compute(t.instances, w, h)
}

// Render draws one frame. snaps fill the tiles in row-major order; instant and
// cumulative carry the per-tile rewards aligned by index and may be shorter or nil.
// Tiles without a snapshot show a placeholder. Does nothing until sprites are loaded.
func (t *Tiled) Render(snaps []core.Snapshot, instant, cumulative []float64) {
	if t.set == nil {
		return
	}
	t.anim.Tick()
	t.canvas.Clear(core.ColorSurface)
	if t.layout.Scale <= 0 {
		return
	}

	drawn := core.Min(len(snaps), t.instances)
	for i := 0; i < drawn; i++ {
		t.drawTile(i, snaps[i])
		if i < len(instant) {
			r := Reward{Instant: instant[i]}
			if i < len(cumulative) {
				r.Cumulative = cumulative[i]
				r.HasCumulative = true
			}
			t.drawOverlay(i, r)
		}
	}
	for i := drawn; i < t.instances; i++ {
		t.drawPlaceholder(i)
	}
}

// enterTile opens a scope mapping the logical frame onto tile i.
func (t *Tiled) enterTile(i int) {
	x, y := t.layout.Origin(i)
	t.canvas.Save()
	t.canvas.Translate(float64(x), float64(y))
	t.canvas.Scale(t.layout.Scale, t.layout.Scale)
	t.canvas.Clip(logicalFrame)
}

func (t *Tiled) drawTile(i int, snap core.Snapshot) {
	t.enterTile(i)
	defer t.canvas.Restore()

	frame := t.anim.Advance(i)
	drawScene(t.canvas, t.set, snap, birdCycle[frame], t.opts.ScoreScale)
	if t.instances > 1 {
		t.drawChrome(i)
	}
}

// drawPlaceholder fills the logical frame of an empty slot. Letterbox slack
// around the frame keeps the surface clear color, like a live tile.
func (t *Tiled) drawPlaceholder(i int) {
	t.enterTile(i)
	defer t.canvas.Restore()

	t.canvas.FillRect(logicalFrame, core.ColorPlaceholder)
	drawScreenText(t.canvas, tileLabel(i), core.LogicalW/2, core.LogicalH/2, t.layout.Scale, core.ColorLabel, Centered)
	if t.instances > 1 {
		t.canvas.StrokeRect(logicalFrame, borderWidth/t.layout.Scale, core.ColorBorder)
	}
}

// drawChrome adds the border and the index label to a multi-instance tile.
func (t *Tiled) drawChrome(i int) {
	s := t.layout.Scale
	t.canvas.StrokeRect(logicalFrame, borderWidth/s, core.ColorBorder)
	inset := (borderWidth + labelInset) / s
	drawScreenText(t.canvas, tileLabel(i), inset, inset, s, core.ColorLabel, TopLeft)
}

// drawOverlay draws tile i's reward readout unscaled, clipped to the tile.
func (t *Tiled) drawOverlay(i int, r Reward) {
	tile := t.layout.TileRect(i).F()
	t.canvas.Save()
	defer t.canvas.Restore()
	t.canvas.Clip(tile)
	drawRewardOverlay(t.canvas, tile, r)
}

func tileLabel(i int) string {
	return fmt.Sprintf("#%d", i+1)
}
