package game

// Kind is one of the six screens of the game.
type Kind int

const (
	KindStart Kind = iota
	KindGame
	KindPause
	KindWin
	KindLose
	KindScoreboard
)

var kindNames = [...]string{"start", "game", "pause", "win", "lose", "scoreboard"}

func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return "unknown"
	}
	return kindNames[k]
}

// Static reports whether the screen is drawn once on entry rather than every
// frame.
func (k Kind) Static() bool { return k != KindGame }

// State is the current screen. ReturnTo is only meaningful for
// KindScoreboard and names the screen it goes back to.
type State struct {
	Kind     Kind
	ReturnTo Kind
}

func (s State) String() string {
	if s.Kind == KindScoreboard {
		return s.Kind.String() + "(" + s.ReturnTo.String() + ")"
	}
	return s.Kind.String()
}

// Event drives state transitions.
type Event int

const (
	EventStart      Event = iota // START pressed
	EventSelect                  // SELECT pressed
	EventScoreboard              // open-scoreboard pressed
	EventWin                     // target score reached
	EventLose                    // out of lives
)

var eventNames = [...]string{"start", "select", "scoreboard", "win", "lose"}

func (e Event) String() string {
	if e < 0 || int(e) >= len(eventNames) {
		return "unknown"
	}
	return eventNames[e]
}

// Transition returns the state that follows s on e. Pairs without a defined
// transition return s unchanged.
func Transition(s State, e Event) State {
	switch s.Kind {
	case KindStart:
		switch e {
		case EventStart:
			return State{Kind: KindGame}
		case EventScoreboard:
			return State{Kind: KindScoreboard, ReturnTo: KindStart}
		}
	case KindGame:
		switch e {
		case EventStart:
			return State{Kind: KindPause}
		case EventWin:
			return State{Kind: KindWin}
		case EventLose:
			return State{Kind: KindLose}
		}
	case KindPause:
		switch e {
		case EventStart:
			return State{Kind: KindGame}
		case EventSelect:
			return State{Kind: KindStart}
		case EventScoreboard:
			return State{Kind: KindScoreboard, ReturnTo: KindPause}
		}
	case KindWin, KindLose:
		if e == EventStart {
			return State{Kind: KindStart}
		}
	case KindScoreboard:
		if e == EventScoreboard {
			return State{Kind: s.ReturnTo}
		}
	}
	return s
}

// resets reports whether entering GAME from prev starts a fresh session.
func resets(prev Kind) bool {
	return prev == KindStart || prev == KindWin || prev == KindLose
}
