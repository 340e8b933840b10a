package game

import (
	"github.com/tomz197/rockfall/internal/config"
	"github.com/tomz197/rockfall/internal/input"
)

// Debug combo: while SELECT is held, these keys are cheat triggers.
const (
	cheatModifier = input.ButtonSelect
	cheatKeys     = input.ButtonStart | input.ButtonA | input.ButtonB |
		input.ButtonLeft | input.ButtonRight | input.ButtonUp
)

// updateCheats runs a gameplay frame while the modifier is held. Normal
// input and the world update are skipped whether or not a cheat fires.
// Each cheat fires once per press of its key.
func (g *Game) updateCheats(in input.Snapshot) {
	held := in.Held & cheatKeys
	fresh := held &^ g.cheatLatch
	g.cheatLatch = held
	s := g.sess

	switch {
	case fresh.Has(input.ButtonStart):
		g.cheatLatch = 0
		g.finish(EventWin)
	case fresh.Has(input.ButtonLeft):
		g.cheatLatch = 0
		g.finish(EventLose)
	case fresh.Has(input.ButtonB):
		s.clearAsteroids()
		g.cheatFlash = config.CheatFlashFrames
	case fresh.Has(input.ButtonA):
		s.Score = 0
		s.Player.Lives = config.InitialLives
		s.Player.InvulnTimer = 0
		s.Player.Bombs = 0
		g.cheatFlash = config.CheatFlashFrames
	case fresh.Has(input.ButtonUp):
		s.Player.Lives = config.InitialLives
		s.Player.InvulnTimer = 0
		g.cheatFlash = config.CheatFlashFrames
	case fresh.Has(input.ButtonRight):
		s.Player.Bombs = config.MaxBombs
		g.cheatFlash = config.CheatFlashFrames
	}
}
