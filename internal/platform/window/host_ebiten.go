//go:build ebiten

package window

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/vovakirdan/flaptiles/internal/arena"
	"github.com/vovakirdan/flaptiles/internal/core"
	"github.com/vovakirdan/flaptiles/internal/input"
	"github.com/vovakirdan/flaptiles/internal/render"
)

// host adapts an arena to the ebiten.Game interface.
type host struct {
	opts    Options
	arena   *arena.Arena
	raster  *render.Raster
	tiled   *render.Tiled
	single  *render.Single
	capture *input.Capture
	frame   *ebiten.Image

	showRewards bool
	keys        []ebiten.Key
	touches     []ebiten.TouchID
}

func newHost(opts Options) *host {
	raster := render.NewRaster(opts.Width, opts.Height)
	h := &host{
		opts:        opts,
		arena:       opts.Arena,
		raster:      raster,
		tiled:       render.NewTiled(raster, opts.Render),
		single:      render.NewSingle(raster, opts.Render),
		capture:     input.NewCapture(opts.ActivateKey, opts.Logger),
		showRewards: opts.ShowRewards,
	}
	h.tiled.SetAssets(opts.Sprites)
	h.single.SetAssets(opts.Sprites)
	h.tiled.Resize()
	h.single.Resize()

	a := opts.Arena
	h.capture.Enable(h, func(core.Action) {
		a.SendInput(core.ActionActivate)
	})
	return h
}

// Run opens the window and blocks until it is closed or q is pressed.
func Run(opts Options) error {
	opts = opts.withDefaults()

	ebiten.SetWindowSize(opts.Width, opts.Height)
	ebiten.SetWindowTitle(opts.Title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(opts.TickRate)

	h := newHost(opts)
	defer h.capture.Disable()

	opts.Logger.Info("window opened", "width", opts.Width, "height", opts.Height, "tps", opts.TickRate)
	if err := ebiten.RunGame(h); err != nil {
		return fmt.Errorf("window: %w", err)
	}
	return nil
}

// Update polls input and advances the arena by one tick.
func (h *host) Update() error {
	h.keys = inpututil.AppendJustPressedKeys(h.keys[:0])
	for _, k := range h.keys {
		name := k.String()
		if h.capture.Dispatch(input.Event{Kind: input.KeyPress, Key: name}) {
			continue
		}
		switch act := hostAction(name); act {
		case core.ActionQuit:
			return ebiten.Termination
		case core.ActionRewards:
			h.showRewards = !h.showRewards
		case core.ActionNone:
		default:
			h.arena.SendInput(act)
		}
	}

	h.touches = inpututil.AppendJustPressedTouchIDs(h.touches[:0])
	for range h.touches {
		h.capture.Dispatch(input.Event{Kind: input.TouchStart, Target: h})
	}

	for _, b := range []ebiten.MouseButton{ebiten.MouseButtonLeft, ebiten.MouseButtonRight, ebiten.MouseButtonMiddle} {
		if !inpututil.IsMouseButtonJustPressed(b) {
			continue
		}
		ev := input.Event{Kind: input.Click, Button: mouseButton(b)}
		if h.inside(ebiten.CursorPosition()) {
			ev.Target = h
		}
		h.capture.Dispatch(ev)
	}

	h.arena.Step()
	return nil
}

func mouseButton(b ebiten.MouseButton) input.Button {
	switch b {
	case ebiten.MouseButtonRight:
		return input.ButtonSecondary
	case ebiten.MouseButtonMiddle:
		return input.ButtonMiddle
	default:
		return input.ButtonPrimary
	}
}

func (h *host) inside(x, y int) bool {
	w, ht := h.raster.Size()
	return x >= 0 && y >= 0 && x < w && y < ht
}

// Draw renders the arena into the raster and uploads it.
func (h *host) Draw(screen *ebiten.Image) {
	snaps := h.arena.Snapshots()
	instant, cumulative := h.arena.Rewards()
	if !h.showRewards {
		instant, cumulative = nil, nil
	}

	if len(snaps) == 1 {
		st := h.arena.Stats()[0]
		h.single.SetWelcome(h.arena.Waiting())
		h.single.SetHUD(
			fmt.Sprintf("ep: %d", st.Episode),
			fmt.Sprintf("best: %d", st.Best),
		)
		h.single.Render(snaps[0])
	} else {
		if h.tiled.InstanceCount() != len(snaps) {
			h.tiled.SetInstanceCount(len(snaps))
		}
		h.tiled.Render(snaps, instant, cumulative)
	}

	img := h.raster.Image()
	b := img.Bounds()
	if h.frame == nil || h.frame.Bounds().Size() != b.Size() {
		if h.frame != nil {
			h.frame.Deallocate()
		}
		h.frame = ebiten.NewImage(b.Dx(), b.Dy())
	}
	h.frame.WritePixels(img.Pix)
	screen.DrawImage(h.frame, nil)
}

// Layout follows the window size one to one and resizes the raster with it.
func (h *host) Layout(outsideWidth, outsideHeight int) (int, int) {
	w, ht := h.raster.Size()
	if outsideWidth != w || outsideHeight != ht {
		h.raster.Resize(outsideWidth, outsideHeight)
		h.tiled.Resize()
		h.single.Resize()
	}
	return outsideWidth, outsideHeight
}
