package core

// Action represents a semantic simulator action, abstracted from physical
// key presses. The host maps keys to actions; the model consumes actions.
type Action int

const (
	ActionNone         Action = iota
	ActionPause               // Space - pause/resume the simulation
	ActionStep                // N - advance one update while paused
	ActionReset               // R - reseed the board randomly
	ActionClear               // C - kill every cell
	ActionToggle              // Enter, T - toggle the cell under the cursor
	ActionGlider              // G - stamp a glider at the cursor
	ActionPulsar              // P - stamp a pulsar at the cursor
	ActionSpeedUp             // + - more generations per update
	ActionSpeedDown           // - - fewer generations per update
	ActionCursorUp            // W, Up, K
	ActionCursorDown          // S, Down, J
	ActionCursorLeft          // A, Left, H
	ActionCursorRight         // D, Right, L
	ActionGrowWidth           // ] - widen the grid (reseeds)
	ActionShrinkWidth         // [ - narrow the grid (reseeds)
	ActionGrowHeight          // } - heighten the grid (reseeds)
	ActionShrinkHeight        // { - flatten the grid (reseeds)
	ActionQuit                // Q, Ctrl+C - exit
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionPause:
		return "Pause"
	case ActionStep:
		return "Step"
	case ActionReset:
		return "Reset"
	case ActionClear:
		return "Clear"
	case ActionToggle:
		return "Toggle"
	case ActionGlider:
		return "Glider"
	case ActionPulsar:
		return "Pulsar"
	case ActionSpeedUp:
		return "SpeedUp"
	case ActionSpeedDown:
		return "SpeedDown"
	case ActionCursorUp:
		return "CursorUp"
	case ActionCursorDown:
		return "CursorDown"
	case ActionCursorLeft:
		return "CursorLeft"
	case ActionCursorRight:
		return "CursorRight"
	case ActionGrowWidth:
		return "GrowWidth"
	case ActionShrinkWidth:
		return "ShrinkWidth"
	case ActionGrowHeight:
		return "GrowHeight"
	case ActionShrinkHeight:
		return "ShrinkHeight"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// InputFrame collects the actions triggered between two host ticks.
type InputFrame struct {
	// Actions maps action types to whether they were triggered this frame.
	// Using a map allows checking multiple actions without order dependency.
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
