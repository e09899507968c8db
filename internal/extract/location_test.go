package extract

import "testing"

func TestResolveLocation_Phrases(t *testing.T) {
	tests := []struct {
		name string
		text string
		want string
	}{
		{"hosting", "The Spurs are hosting the Lakers tonight", LocationHome},
		{"road", "The Spurs played on the road against the Lakers", LocationAway},
		{"at home", "Their first game at home in two weeks", LocationHome},
		{"in san antonio", "A festive crowd in San Antonio saw it all", LocationHome},
		{"arena", "A sellout at the Frost Bank Center", LocationHome},
		{"away game", "Another away game, another slow start", LocationAway},
		{"visiting", "The Spurs are visiting the Nuggets", LocationAway},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ResolveLocation(tt.text, "Lakers"); got != tt.want {
				t.Errorf("ResolveLocation(%q) = %q, want %q", tt.text, got, tt.want)
			}
		})
	}
}

func TestResolveLocation_ScheduleNotation(t *testing.T) {
	if got := ResolveLocation("Game thread: Spurs @ Lakers", "Lakers"); got != LocationAway {
		t.Errorf("Spurs @ Lakers = %q, want Away", got)
	}
	if got := ResolveLocation("Game thread: Lakers @ Spurs", "Lakers"); got != LocationHome {
		t.Errorf("Lakers @ Spurs = %q, want Home", got)
	}
}

func TestResolveLocation_NotationNeedsOpponent(t *testing.T) {
	// Without a known opponent the schedule fallback cannot run.
	if got := ResolveLocation("Game thread: Spurs @ Lakers", ""); got != Unknown {
		t.Errorf("got %q, want Unknown", got)
	}
	if got := ResolveLocation("Game thread: Spurs @ Lakers", Unknown); got != Unknown {
		t.Errorf("got %q, want Unknown for sentinel opponent", got)
	}
}

func TestResolveLocation_Unknown(t *testing.T) {
	if got := ResolveLocation("A film breakdown of the pick and roll", ""); got != Unknown {
		t.Errorf("got %q, want Unknown", got)
	}
}
