package core

import "testing"

func TestTransition(t *testing.T) {
	tests := []struct {
		from   GameStatus
		action Action
		to     GameStatus
		ok     bool
	}{
		{StatusMenu, ActionStart, StatusPlaying, true},
		{StatusPlaying, ActionPause, StatusPaused, true},
		{StatusPaused, ActionPause, StatusPlaying, true},
		{StatusPlaying, ActionEnd, StatusEnded, true},
		{StatusPaused, ActionEnd, StatusEnded, true},
		{StatusPaused, ActionRestart, StatusPlaying, true},
		{StatusEnded, ActionRestart, StatusPlaying, true},
		{StatusEnded, ActionBack, StatusMenu, true},
		{StatusPaused, ActionBack, StatusMenu, true},
		{StatusMenu, ActionPause, StatusMenu, false},
		{StatusMenu, ActionRestart, StatusMenu, false},
		{StatusPlaying, ActionStart, StatusPlaying, false},
		{StatusPlaying, ActionQuit, StatusPlaying, false},
	}

	for _, tt := range tests {
		t.Run(tt.from.String()+"/"+tt.action.String(), func(t *testing.T) {
			to, ok := Transition(tt.from, tt.action)
			if ok != tt.ok || to != tt.to {
				t.Errorf("Transition(%s, %s) = (%s, %v), expected (%s, %v)",
					tt.from, tt.action, to, ok, tt.to, tt.ok)
			}
		})
	}
}

func TestGameStatus(t *testing.T) {
	if !StatusPlaying.Active() || StatusPaused.Active() {
		t.Error("only playing is active")
	}
	if StatusPlaying.Overlay() || !StatusPaused.Overlay() || !StatusEnded.Overlay() {
		t.Error("every status but playing shows an overlay")
	}
	if got := GameStatus(99).String(); got != "unknown" {
		t.Errorf("String() = %q, expected unknown", got)
	}
}
