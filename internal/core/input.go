package core

// Action represents a semantic host action, abstracted from physical key presses.
// Content never sees keys; the host maps them to lifecycle transitions.
type Action int

const (
	ActionNone    Action = iota
	ActionStart          // Enter, Space - start from the menu
	ActionPause          // P, Escape - pause/resume
	ActionEnd            // E - end the current session
	ActionRestart        // R - start over from paused or ended
	ActionReset          // X - clear the persisted game data
	ActionBack           // B - back to the menu
	ActionQuit           // Q, Ctrl+C - exit
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionStart:
		return "Start"
	case ActionPause:
		return "Pause"
	case ActionEnd:
		return "End"
	case ActionRestart:
		return "Restart"
	case ActionReset:
		return "Reset"
	case ActionBack:
		return "Back"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// Transition returns the status an action leads to from the given status.
// ok is false when the action does nothing there. ActionQuit and
// ActionReset are handled by the host directly and never transition.
func Transition(from GameStatus, a Action) (to GameStatus, ok bool) {
	switch a {
	case ActionStart:
		if from == StatusMenu {
			return StatusPlaying, true
		}
	case ActionPause:
		switch from {
		case StatusPlaying:
			return StatusPaused, true
		case StatusPaused:
			return StatusPlaying, true
		}
	case ActionEnd:
		if from == StatusPlaying || from == StatusPaused {
			return StatusEnded, true
		}
	case ActionRestart:
		if from == StatusPaused || from == StatusEnded {
			return StatusPlaying, true
		}
	case ActionBack:
		if from == StatusPaused || from == StatusEnded {
			return StatusMenu, true
		}
	}
	return from, false
}
