// Package window hosts an arena in a desktop window.
// The real host needs the ebiten build tag; without it Run reports ErrUnsupported.
package window

import (
	"errors"
	"io"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/flaptiles/internal/arena"
	"github.com/vovakirdan/flaptiles/internal/assets"
	"github.com/vovakirdan/flaptiles/internal/core"
	"github.com/vovakirdan/flaptiles/internal/render"
)

// ErrUnsupported is returned by Run in builds without a window backend.
var ErrUnsupported = errors.New("window: built without the ebiten tag")

// Options configures the window host.
type Options struct {
	Arena       *arena.Arena
	Sprites     *assets.Set
	ActivateKey string
	TickRate    int
	ShowRewards bool
	Render      render.Options
	Title       string
	Width       int // Initial window size in device-independent pixels
	Height      int
	Logger      *log.Logger
}

func (o Options) withDefaults() Options {
	if o.TickRate < 1 {
		o.TickRate = 30
	}
	if o.Title == "" {
		o.Title = "flaptiles"
	}
	if o.Width < 1 || o.Height < 1 {
		o.Width, o.Height = core.LogicalW*2, core.LogicalH
	}
	if o.Logger == nil {
		o.Logger = log.New(io.Discard)
	}
	o.Render.Logger = o.Logger
	return o
}

// hostAction maps a lowercased key name to the window's host controls.
// The activate key never reaches it; the capture consumes that first.
func hostAction(name string) core.Action {
	switch strings.ToLower(name) {
	case "q", "escape":
		return core.ActionQuit
	case "p":
		return core.ActionPause
	case "r":
		return core.ActionRestart
	case "equal", "bracketright", "numpadadd":
		return core.ActionMore
	case "minus", "bracketleft", "numpadsubtract":
		return core.ActionFewer
	case "tab":
		return core.ActionRewards
	default:
		return core.ActionNone
	}
}
