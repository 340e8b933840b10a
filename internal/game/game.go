// Package game implements the rules: the play session, collisions and
// scoring, the screen state machine and the rendering of every screen.
package game

import (
	"github.com/tomz197/rockfall/internal/draw"
	"github.com/tomz197/rockfall/internal/input"
	"github.com/tomz197/rockfall/internal/sfx"
)

// Options configures a Game. A zero TargetScore selects the default; nil
// Effects and Scores select Nop and a MemoryScores.
type Options struct {
	TargetScore int
	DebugCheats bool
	Effects     sfx.Player
	Scores      HighScores
}

// Game owns one session and the screen it is on. It is driven by calling
// Update then Render once per frame; it is not safe for concurrent use.
type Game struct {
	state  State
	sess   *Session
	fx     sfx.Player
	scores HighScores
	cheats bool

	cheatLatch input.Button
	cheatFlash int

	lastScore int
	played    bool

	staticDue  int // Static draws still owed to the current screen
	presents   int // Static draws since entering the current screen
	paletteDue bool
	logo       *draw.Image
}

// New creates a game on the start screen.
func New(opts Options) *Game {
	fx := opts.Effects
	if fx == nil {
		fx = sfx.Nop{}
	}
	scores := opts.Scores
	if scores == nil {
		scores = &MemoryScores{}
	}
	g := &Game{
		sess:   NewSession(opts.TargetScore, fx),
		fx:     fx,
		scores: scores,
		cheats: opts.DebugCheats,
		logo:   newLogo(),
	}
	g.enter(State{Kind: KindStart})
	return g
}

// State returns the current screen.
func (g *Game) State() State { return g.state }

// Session returns the play session. It is reset on every new game.
func (g *Game) Session() *Session { return g.sess }

// HighScore returns the best score so far.
func (g *Game) HighScore() int { return g.scores.Best() }

// LastScore returns the score of the last finished session and whether one
// has finished yet.
func (g *Game) LastScore() (int, bool) { return g.lastScore, g.played }

// PresentCount returns how many times the current static screen has been
// drawn since it was entered. It stays at 2 once both pages hold it.
func (g *Game) PresentCount() int { return g.presents }

// Invalidate makes the next frames redraw the current screen into both
// pages, e.g. after something outside the game drew over them.
func (g *Game) Invalidate() {
	g.paletteDue = true
	if g.state.Kind.Static() {
		g.staticDue = 2
		g.presents = 0
	} else {
		g.sess.Dirty.RequestFullRedraw()
	}
}

// Update advances one frame with the given input.
func (g *Game) Update(in input.Snapshot) {
	g.sess.Dirty.BeginFrame()

	if g.state.Kind == KindGame {
		g.updateGame(in)
		return
	}

	for _, ev := range []struct {
		btn input.Button
		ev  Event
	}{
		{input.ButtonStart, EventStart},
		{input.ButtonSelect, EventSelect},
		{input.ButtonR, EventScoreboard},
	} {
		if !in.Hit(ev.btn) {
			continue
		}
		if next := Transition(g.state, ev.ev); next != g.state {
			g.enter(next)
			return
		}
	}
}

func (g *Game) updateGame(in input.Snapshot) {
	if g.cheatFlash > 0 {
		g.cheatFlash--
	}

	if g.cheats && in.Down(cheatModifier) {
		g.updateCheats(in)
		return
	}
	g.cheatLatch = 0

	if in.Hit(input.ButtonStart) {
		g.enter(Transition(g.state, EventStart))
		return
	}

	g.sess.Step(in)

	switch {
	case g.sess.Won():
		g.finish(EventWin)
	case g.sess.Lost():
		g.finish(EventLose)
	}
}

// finish ends the session with a WIN or LOSE event.
func (g *Game) finish(ev Event) {
	g.lastScore = g.sess.Score
	g.played = true
	g.scores.Submit(g.sess.Score)
	if ev == EventWin {
		g.fx.Play(sfx.Win)
	} else {
		g.fx.Play(sfx.Lose)
	}
	g.enter(Transition(g.state, ev))
}

func (g *Game) enter(next State) {
	prev := g.state
	g.state = next
	g.cheatLatch = 0
	g.paletteDue = true
	g.presents = 0

	if next.Kind.Static() {
		g.staticDue = 2
		return
	}
	g.staticDue = 0
	if resets(prev.Kind) {
		g.sess.Reset()
		g.cheatFlash = 0
	}
	g.sess.Dirty.RequestFullRedraw()
}
