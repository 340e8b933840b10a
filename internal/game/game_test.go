package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tomz197/rockfall/internal/config"
	"github.com/tomz197/rockfall/internal/draw"
	"github.com/tomz197/rockfall/internal/input"
	"github.com/tomz197/rockfall/internal/object"
	"github.com/tomz197/rockfall/internal/sfx"
)

type harness struct {
	g   *Game
	rec *sfx.Recorder
	pb  *draw.PageBuffer
}

func newHarness(t *testing.T, cheats bool) *harness {
	t.Helper()
	rec := &sfx.Recorder{}
	return &harness{
		g:   New(Options{DebugCheats: cheats, Effects: rec}),
		rec: rec,
		pb:  draw.NewPageBuffer(nil),
	}
}

// frame runs one full Update, Render, Flip cycle.
func (h *harness) frame(t *testing.T, in input.Snapshot) {
	t.Helper()
	h.g.Update(in)
	h.g.Render(h.pb)
	require.NoError(t, h.pb.Flip())
}

func (h *harness) play(t *testing.T) *Session {
	t.Helper()
	h.frame(t, press(input.ButtonStart))
	require.Equal(t, KindGame, h.g.State().Kind)
	h.rec.Reset()
	return h.g.Session()
}

func TestGame_FireAndDestroyAsteroid(t *testing.T) {
	h := newHarness(t, false)
	s := h.play(t)
	p := s.Player
	placeAsteroid(t, s, object.Asteroid{X: p.X + 1, Y: p.Y - 10, Size: 6, HP: 1, DY: 1})

	h.frame(t, press(input.ButtonA))

	assert.Equal(t, 1, s.Score)
	assert.Zero(t, s.Bullets.Len())
	assert.Zero(t, s.Asteroids.Len())
	assert.Equal(t, 1, h.rec.Count(sfx.Hit))
	assert.Equal(t, 1, h.rec.Count(sfx.Shoot))
}

func TestGame_PlayerHitByAsteroid(t *testing.T) {
	h := newHarness(t, false)
	s := h.play(t)
	require.Zero(t, s.Player.InvulnTimer)
	slot := placeAsteroid(t, s, object.Asteroid{X: s.Player.X, Y: s.Player.Y, Size: 6, HP: 2})

	h.frame(t, input.Snapshot{})

	assert.Equal(t, 2, s.Player.Lives)
	assert.Equal(t, config.InvulnFrames, s.Player.InvulnTimer)
	assert.False(t, s.Asteroids.Active(slot))
	assert.Equal(t, 1, h.rec.Count(sfx.Hit))
	assert.Equal(t, 1, h.rec.Total())
}

func TestGame_BombClearsField(t *testing.T) {
	h := newHarness(t, false)
	s := h.play(t)
	for i := 0; i < 4; i++ {
		placeAsteroid(t, s, object.Asteroid{X: 20 + i*30, Y: 40, Size: 6, HP: 1})
	}
	s.Player.Bombs = 1
	score := s.Score

	h.frame(t, press(input.ButtonL))

	assert.Zero(t, s.Asteroids.Len())
	assert.Equal(t, score+2, s.Score)
	assert.Zero(t, s.Player.Bombs)
	assert.Equal(t, 1, h.rec.Count(sfx.Bomb))

	h.frame(t, press(input.ButtonL))
	assert.Equal(t, score+2, s.Score, "no charge left")
	assert.Equal(t, 1, h.rec.Count(sfx.Bomb))
}

func TestGame_WinOnTargetScore(t *testing.T) {
	h := newHarness(t, false)
	s := h.play(t)
	s.Score = s.TargetScore - 1
	p := s.Player
	placeAsteroid(t, s, object.Asteroid{X: p.X + 1, Y: p.Y - 10, Size: 6, HP: 1, DY: 1})

	h.frame(t, press(input.ButtonA))

	assert.Equal(t, KindWin, h.g.State().Kind)
	assert.Equal(t, config.DefaultTargetScore, h.g.HighScore())
	assert.Equal(t, 1, h.rec.Count(sfx.Win))

	h.frame(t, input.Snapshot{})
	h.frame(t, press(input.ButtonStart))
	assert.Equal(t, KindStart, h.g.State().Kind)
	assert.Equal(t, 1, h.rec.Count(sfx.Win), "win fires once")
}

func TestGame_LoseWhenOutOfLives(t *testing.T) {
	h := newHarness(t, false)
	s := h.play(t)
	s.Player.Lives = 1
	s.Score = 7
	placeAsteroid(t, s, object.Asteroid{X: s.Player.X, Y: s.Player.Y, Size: 6, HP: 1})

	h.frame(t, input.Snapshot{})

	assert.Equal(t, KindLose, h.g.State().Kind)
	assert.Equal(t, 7, h.g.HighScore())
	last, ok := h.g.LastScore()
	assert.True(t, ok)
	assert.Equal(t, 7, last)
	assert.Equal(t, 1, h.rec.Count(sfx.Lose))
}

func TestGame_HighScoreKeepsMaximum(t *testing.T) {
	scores := &MemoryScores{}
	g := New(Options{Scores: scores})
	scores.Submit(20)

	g.Update(press(input.ButtonStart))
	g.Session().Player.Lives = 0
	g.Session().Score = 5
	g.Update(input.Snapshot{})
	require.Equal(t, KindLose, g.State().Kind)
	assert.Equal(t, 20, g.HighScore())
}

func TestGame_PauseResumeKeepsSession(t *testing.T) {
	h := newHarness(t, false)
	s := h.play(t)
	s.Score = 9
	placeAsteroid(t, s, object.Asteroid{X: 10, Y: 30, Size: 6, HP: 1})
	frame := s.Frame

	h.frame(t, press(input.ButtonStart))
	require.Equal(t, KindPause, h.g.State().Kind)
	assert.Equal(t, frame, s.Frame, "pausing frame does not step the world")

	h.frame(t, press(input.ButtonStart))
	require.Equal(t, KindGame, h.g.State().Kind)
	assert.Equal(t, 9, s.Score)
	assert.Equal(t, 1, s.Asteroids.Len())

	// a new game from the start screen resets everything
	h.frame(t, press(input.ButtonStart))
	h.frame(t, press(input.ButtonSelect))
	require.Equal(t, KindStart, h.g.State().Kind)
	h.frame(t, press(input.ButtonStart))
	assert.Zero(t, s.Score)
	assert.Zero(t, s.Asteroids.Len())
}

func TestGame_ScoreboardReturnsWhereItCameFrom(t *testing.T) {
	h := newHarness(t, false)

	h.frame(t, press(input.ButtonR))
	assert.Equal(t, State{Kind: KindScoreboard, ReturnTo: KindStart}, h.g.State())
	h.frame(t, press(input.ButtonR))
	assert.Equal(t, KindStart, h.g.State().Kind)

	h.play(t)
	h.frame(t, press(input.ButtonStart))
	h.frame(t, press(input.ButtonR))
	assert.Equal(t, State{Kind: KindScoreboard, ReturnTo: KindPause}, h.g.State())
	h.frame(t, press(input.ButtonStart))
	assert.Equal(t, KindScoreboard, h.g.State().Kind, "START is ignored on the scoreboard")
	h.frame(t, press(input.ButtonR))
	assert.Equal(t, KindPause, h.g.State().Kind)
}

func TestGame_CheatsFireOncePerPress(t *testing.T) {
	h := newHarness(t, true)
	s := h.play(t)

	placeAsteroid(t, s, object.Asteroid{X: 10, Y: 30, Size: 6, HP: 1})
	h.frame(t, input.Snapshot{Held: input.ButtonSelect | input.ButtonB, Pressed: input.ButtonB})
	assert.Zero(t, s.Asteroids.Len())
	assert.Zero(t, s.Player.DashCooldown, "dash is suppressed")

	placeAsteroid(t, s, object.Asteroid{X: 10, Y: 30, Size: 6, HP: 1})
	h.frame(t, hold(input.ButtonSelect|input.ButtonB))
	assert.Equal(t, 1, s.Asteroids.Len(), "held cheat key does not re-fire")

	h.frame(t, hold(input.ButtonSelect))
	h.frame(t, hold(input.ButtonSelect|input.ButtonB))
	assert.Zero(t, s.Asteroids.Len(), "fires again after release")
}

func TestGame_CheatComboSuppressesInput(t *testing.T) {
	h := newHarness(t, true)
	s := h.play(t)
	s.Score = 5
	s.Player.Lives = 1
	frame := s.Frame

	h.frame(t, input.Snapshot{Held: input.ButtonSelect | input.ButtonA, Pressed: input.ButtonA})
	assert.Zero(t, s.Bullets.Len(), "no shot while the modifier is held")
	assert.Zero(t, s.Score)
	assert.Equal(t, config.InitialLives, s.Player.Lives)
	assert.Equal(t, frame, s.Frame, "world is frozen")
	assert.Zero(t, h.rec.Total())
}

func TestGame_CheatTransitions(t *testing.T) {
	for _, tt := range []struct {
		key  input.Button
		want Kind
	}{
		{input.ButtonStart, KindWin},
		{input.ButtonLeft, KindLose},
	} {
		h := newHarness(t, true)
		h.play(t)
		h.frame(t, hold(input.ButtonSelect))
		h.frame(t, input.Snapshot{Held: input.ButtonSelect | tt.key, Pressed: tt.key})
		assert.Equal(t, tt.want, h.g.State().Kind)
	}
}

func TestGame_CheatGrants(t *testing.T) {
	h := newHarness(t, true)
	s := h.play(t)
	s.Player.Lives = 1
	s.Player.InvulnTimer = 20

	h.frame(t, hold(input.ButtonSelect|input.ButtonUp))
	assert.Equal(t, config.InitialLives, s.Player.Lives)
	assert.Zero(t, s.Player.InvulnTimer)

	h.frame(t, hold(input.ButtonSelect|input.ButtonRight))
	assert.Equal(t, config.MaxBombs, s.Player.Bombs)
}

func TestGame_CheatsDisabled(t *testing.T) {
	h := newHarness(t, false)
	s := h.play(t)
	h.frame(t, input.Snapshot{Held: input.ButtonSelect | input.ButtonA, Pressed: input.ButtonA})
	assert.Equal(t, 1, s.Bullets.Len())
}

func TestGame_StaticScreenDrawnIntoBothPages(t *testing.T) {
	h := newHarness(t, false)
	h.play(t)
	h.frame(t, input.Snapshot{})

	h.frame(t, press(input.ButtonStart))
	require.Equal(t, KindPause, h.g.State().Kind)
	h.frame(t, input.Snapshot{})
	h.frame(t, input.Snapshot{})

	assert.Equal(t, 2, h.g.PresentCount())
	assert.Equal(t, draw.Orange, h.pb.VisibleAt(96, 70))
	assert.Equal(t, draw.Orange, h.pb.BackAt(96, 70))
	assert.Equal(t, draw.PausePalette, *h.pb.Visible().Palette)

	// nothing is drawn once both pages hold the screen
	h.pb.SetPixel(0, 0, draw.White)
	h.frame(t, input.Snapshot{})
	assert.Equal(t, draw.White, h.pb.VisibleAt(0, 0))
	assert.Equal(t, 2, h.g.PresentCount())

	h.g.Invalidate()
	h.frame(t, input.Snapshot{})
	assert.Equal(t, draw.Black, h.pb.VisibleAt(0, 0))
	assert.Equal(t, 1, h.g.PresentCount())
}

func TestGame_RenderGameplay(t *testing.T) {
	h := newHarness(t, false)
	s := h.play(t)
	h.frame(t, input.Snapshot{})

	assert.Equal(t, draw.GamePalette, *h.pb.Visible().Palette)
	assert.Equal(t, draw.White, h.pb.VisibleAt(2, 2), "HUD text starts with L")
	p := s.Player
	assert.Equal(t, draw.Cyan, h.pb.VisibleAt(p.X, p.Y))
	assert.Equal(t, draw.White, h.pb.VisibleAt(p.X+3, p.Y+2))

	s.Player.InvulnTimer = 8
	require.True(t, s.Player.Blinking())
	h.g.Render(h.pb)
	assert.Equal(t, draw.Black, h.pb.BackAt(p.X, p.Y), "blink phase hides the ship")

	s.Player.InvulnTimer = 4
	require.False(t, s.Player.Blinking())
	h.g.Render(h.pb)
	assert.Equal(t, draw.Cyan, h.pb.BackAt(p.X, p.Y))
}

func TestHUDText(t *testing.T) {
	assert.Equal(t, "L:3 P:00 B:0", HUDText(3, 0, 0))
	assert.Equal(t, "L:9 P:99 B:1", HUDText(12, 250, 4))
	assert.Equal(t, "L:0 P:00 B:0", HUDText(-1, -5, -2))
}

func TestHighScores(t *testing.T) {
	for name, hs := range map[string]HighScores{
		"memory": &MemoryScores{},
		"shared": &SharedScores{},
	} {
		t.Run(name, func(t *testing.T) {
			assert.Zero(t, hs.Best())
			assert.Equal(t, 4, hs.Submit(4))
			assert.Equal(t, 4, hs.Submit(2))
			assert.Equal(t, 9, hs.Submit(9))
			assert.Equal(t, 9, hs.Best())
		})
	}
}
