package core

// Action represents a semantic action, abstracted from physical input.
// Key presses, taps and clicks are all reduced to one of these values.
type Action int

const (
	ActionNone     Action = iota
	ActionActivate        // Designated key, tap or primary click - flap / start
	ActionPause           // P, Escape - pause/unpause the simulation
	ActionRestart         // R key - restart every instance
	ActionMore            // + / ] - raise the instance count
	ActionFewer           // - / [ - lower the instance count
	ActionRewards         // Tab - toggle reward overlays
	ActionQuit            // Q, Ctrl+C - exit
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionActivate:
		return "Activate"
	case ActionPause:
		return "Pause"
	case ActionRestart:
		return "Restart"
	case ActionMore:
		return "More"
	case ActionFewer:
		return "Fewer"
	case ActionRewards:
		return "Rewards"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// InputFrame represents the actions triggered during one simulation tick.
type InputFrame struct {
	// Actions maps action types to whether they were triggered this frame.
	Actions map[Action]bool
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{
		Actions: make(map[Action]bool),
	}
}

// Set marks an action as triggered for this frame.
func (f *InputFrame) Set(a Action) {
	if f.Actions == nil {
		f.Actions = make(map[Action]bool)
	}
	f.Actions[a] = true
}

// Has returns true if the given action was triggered this frame.
func (f InputFrame) Has(a Action) bool {
	if f.Actions == nil {
		return false
	}
	return f.Actions[a]
}

// Clear resets all actions for the next frame.
func (f *InputFrame) Clear() {
	for k := range f.Actions {
		delete(f.Actions, k)
	}
}

// Clone creates a copy of this input frame.
func (f InputFrame) Clone() InputFrame {
	clone := NewInputFrame()
	for k, v := range f.Actions {
		clone.Actions[k] = v
	}
	return clone
}
