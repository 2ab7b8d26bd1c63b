// Package input turns raw key, touch and click events into the single
// activate action the game understands.
package input

import (
	"io"
	"reflect"
	"strings"
	"sync"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/flaptiles/internal/core"
)

// DefaultKey is the activate key when none is configured.
const DefaultKey = "space"

// Kind identifies the physical source of an event.
type Kind int

const (
	KeyPress Kind = iota
	TouchStart
	Click
)

// String returns a human-readable name for the kind.
func (k Kind) String() string {
	switch k {
	case KeyPress:
		return "key"
	case TouchStart:
		return "touch"
	case Click:
		return "click"
	default:
		return "unknown"
	}
}

// Button is a pointer button.
type Button int

const (
	ButtonPrimary Button = iota
	ButtonSecondary
	ButtonMiddle
)

// Event is one raw input event as reported by a host.
type Event struct {
	Kind   Kind
	Key    string // Key name for KeyPress, e.g. "space" or "enter"
	Button Button // Pressed button for Click
	Target any    // Surface the pointer event landed on
}

// Callback receives the normalized action. It carries no payload.
type Callback func(core.Action)

// Capture forwards matching events to a callback while enabled.
// Key presses count wherever they happen; touches and clicks only on the target.
// It is safe for concurrent use.
type Capture struct {
	mu       sync.Mutex
	key      string
	enabled  bool
	target   any
	callback Callback
	logger   *log.Logger
}

// NewCapture creates a disabled capture activated by the named key.
func NewCapture(key string, logger *log.Logger) *Capture {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Capture{key: NormalizeKey(key), logger: logger}
}

// Enable starts forwarding events for target to cb, replacing any earlier binding.
func (c *Capture) Enable(target any, cb Callback) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.enabled = cb != nil
	c.target = target
	c.callback = cb
	if target != nil && !reflect.TypeOf(target).Comparable() {
		c.logger.Warn("capture target is not comparable, touches and clicks will not match",
			"type", reflect.TypeOf(target).String())
	}
	c.logger.Debug("input capture enabled", "key", c.key)
}

// Disable stops forwarding. Events dispatched afterwards are dropped.
func (c *Capture) Disable() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.enabled = false
	c.target = nil
	c.callback = nil
	c.logger.Debug("input capture disabled")
}

// Enabled reports whether events are being forwarded.
func (c *Capture) Enabled() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.enabled
}

// Key returns the normalized activate key.
func (c *Capture) Key() string {
	return c.key
}

// Dispatch feeds one raw event through the capture and reports whether it
// produced an action. The callback runs on the caller's goroutine.
func (c *Capture) Dispatch(ev Event) bool {
	c.mu.Lock()
	if !c.enabled || !c.matches(ev) {
		c.mu.Unlock()
		return false
	}
	cb := c.callback
	c.mu.Unlock()

	cb(core.ActionActivate)
	return true
}

func (c *Capture) matches(ev Event) bool {
	switch ev.Kind {
	case KeyPress:
		return NormalizeKey(ev.Key) == c.key
	case TouchStart:
		return sameTarget(ev.Target, c.target)
	case Click:
		return ev.Button == ButtonPrimary && sameTarget(ev.Target, c.target)
	default:
		return false
	}
}

// sameTarget reports whether a and b are the same surface. Values of
// uncomparable types (slices, maps, funcs) never match; bind a pointer instead.
func sameTarget(a, b any) bool {
	if a == nil || b == nil {
		return a == b
	}
	ta := reflect.TypeOf(a)
	if ta != reflect.TypeOf(b) || !ta.Comparable() {
		return false
	}
	return a == b
}

// NormalizeKey folds the spellings hosts use for the same key.
func NormalizeKey(key string) string {
	switch k := strings.ToLower(strings.TrimSpace(key)); k {
	case "":
		if key == " " {
			return "space"
		}
		return DefaultKey
	case "spacebar", "space_bar":
		return "space"
	case "return":
		return "enter"
	case "arrowup":
		return "up"
	default:
		return k
	}
}
