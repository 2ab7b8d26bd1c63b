package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/flaptiles/internal/core"
	"github.com/vovakirdan/flaptiles/internal/input"
)

// KeyMap defines the key bindings of the arena screen.
// Activate is informational: flaps go through input.Capture so every host
// agrees on which key counts.
type KeyMap struct {
	Activate key.Binding
	Pause    key.Binding
	Restart  key.Binding
	More     key.Binding
	Fewer    key.Binding
	Rewards  key.Binding
	Stats    key.Binding
	Help     key.Binding
	Quit     key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Activate, k.Pause, k.More, k.Fewer, k.Help, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Activate, k.Pause, k.Restart},
		{k.More, k.Fewer},
		{k.Rewards, k.Stats},
		{k.Help, k.Quit},
	}
}

// DefaultKeyMap returns default key bindings with the given activate key.
func DefaultKeyMap(activateKey string) KeyMap {
	activateKey = input.NormalizeKey(activateKey)
	teaKey := activateKey
	if teaKey == "space" {
		teaKey = " "
	}
	return KeyMap{
		Activate: key.NewBinding(
			key.WithKeys(teaKey),
			key.WithHelp(activateKey, "flap"),
		),
		Pause: key.NewBinding(
			key.WithKeys("p", "esc"),
			key.WithHelp("p", "pause"),
		),
		Restart: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "restart all"),
		),
		More: key.NewBinding(
			key.WithKeys("+", "=", "]"),
			key.WithHelp("+", "more tiles"),
		),
		Fewer: key.NewBinding(
			key.WithKeys("-", "_", "["),
			key.WithHelp("-", "fewer tiles"),
		),
		Rewards: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "rewards"),
		),
		Stats: key.NewBinding(
			key.WithKeys("s"),
			key.WithHelp("s", "stats"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// MapKey translates a key message to a host action.
// Returns core.ActionNone for keys the screen does not bind; the stats and
// help toggles are handled by the model itself.
func (k KeyMap) MapKey(msg tea.KeyMsg) core.Action {
	switch {
	case key.Matches(msg, k.Quit):
		return core.ActionQuit
	case key.Matches(msg, k.Pause):
		return core.ActionPause
	case key.Matches(msg, k.Restart):
		return core.ActionRestart
	case key.Matches(msg, k.More):
		return core.ActionMore
	case key.Matches(msg, k.Fewer):
		return core.ActionFewer
	case key.Matches(msg, k.Rewards):
		return core.ActionRewards
	}
	return core.ActionNone
}

// KeyEvent converts a key message to a raw capture event.
func KeyEvent(msg tea.KeyMsg) input.Event {
	return input.Event{Kind: input.KeyPress, Key: msg.String()}
}

// MouseEvent converts a mouse press to a raw capture event. target is the
// surface the press landed on, nil when outside the board.
// Returns false for anything other than a button press.
func MouseEvent(msg tea.MouseMsg, target any) (input.Event, bool) {
	if msg.Action != tea.MouseActionPress {
		return input.Event{}, false
	}
	ev := input.Event{Kind: input.Click, Target: target}
	switch msg.Button {
	case tea.MouseButtonLeft:
		ev.Button = input.ButtonPrimary
	case tea.MouseButtonRight:
		ev.Button = input.ButtonSecondary
	case tea.MouseButtonMiddle:
		ev.Button = input.ButtonMiddle
	default:
		return input.Event{}, false
	}
	return ev, true
}
