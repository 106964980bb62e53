package core

// Action represents a semantic game action, abstracted from physical key presses.
// Backends map their own keys onto these; the simulation never sees key codes.
type Action int

const (
	ActionNone    Action = iota
	ActionJump           // Space, Up
	ActionRestart        // R
	ActionQuit           // Escape, Q
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionJump:
		return "Jump"
	case ActionRestart:
		return "Restart"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// InputFrame is the polled input state for one simulation tick.
// It records which actions are held this tick and which were held on the
// previous tick, so the simulation can detect rising edges itself.
type InputFrame struct {
	Down    map[Action]bool
	WasDown map[Action]bool
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{
		Down:    make(map[Action]bool),
		WasDown: make(map[Action]bool),
	}
}

// Set marks an action as held during this frame.
func (f *InputFrame) Set(a Action) {
	if f.Down == nil {
		f.Down = make(map[Action]bool)
	}
	f.Down[a] = true
}

// SetPrevious marks an action as held during the previous frame.
func (f *InputFrame) SetPrevious(a Action) {
	if f.WasDown == nil {
		f.WasDown = make(map[Action]bool)
	}
	f.WasDown[a] = true
}

// Has returns true if the action is held this frame.
func (f InputFrame) Has(a Action) bool {
	return f.Down[a]
}

// Pressed returns true only on the tick the action goes from released to held.
func (f InputFrame) Pressed(a Action) bool {
	return f.Down[a] && !f.WasDown[a]
}

// Clear resets all actions for the next frame.
func (f *InputFrame) Clear() {
	for k := range f.Down {
		delete(f.Down, k)
	}
	for k := range f.WasDown {
		delete(f.WasDown, k)
	}
}

// KeyTracker remembers which actions were held on the previous tick.
// Backends feed it the raw "is down" set each tick and hand the resulting
// frame to the simulation.
type KeyTracker struct {
	prev map[Action]bool
}

// NewKeyTracker creates a tracker with nothing held.
func NewKeyTracker() *KeyTracker {
	return &KeyTracker{prev: make(map[Action]bool)}
}

// Next builds the frame for this tick from the actions currently held.
func (t *KeyTracker) Next(held ...Action) InputFrame {
	frame := NewInputFrame()
	for a, down := range t.prev {
		if down {
			frame.SetPrevious(a)
		}
	}
	for k := range t.prev {
		delete(t.prev, k)
	}
	for _, a := range held {
		if a == ActionNone {
			continue
		}
		frame.Set(a)
		t.prev[a] = true
	}
	return frame
}

// Reset forgets all held actions.
func (t *KeyTracker) Reset() {
	for k := range t.prev {
		delete(t.prev, k)
	}
}
