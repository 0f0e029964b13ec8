package core

// GameStatus is the host-level lifecycle phase of a session.
type GameStatus int

const (
	StatusMenu    GameStatus = iota // Title screen, engine stopped
	StatusPlaying                   // Engine running
	StatusPaused                    // Engine stopped, session kept
	StatusEnded                     // Session over, score recorded
)

// String returns a human-readable name for the status.
func (s GameStatus) String() string {
	switch s {
	case StatusMenu:
		return "menu"
	case StatusPlaying:
		return "playing"
	case StatusPaused:
		return "paused"
	case StatusEnded:
		return "ended"
	default:
		return "unknown"
	}
}

// Active reports whether the engine should be running in this status.
func (s GameStatus) Active() bool {
	return s == StatusPlaying
}

// Overlay reports whether the host dims the screen in this status.
func (s GameStatus) Overlay() bool {
	return s != StatusPlaying
}
