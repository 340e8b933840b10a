package game

import (
	"fmt"

	"github.com/tomz197/rockfall/internal/config"
	"github.com/tomz197/rockfall/internal/draw"
	"github.com/tomz197/rockfall/internal/object"
	"github.com/tomz197/rockfall/internal/physics"
)

// HUDText formats the status line, clamping each value to its field width.
func HUDText(lives, score, bombs int) string {
	return fmt.Sprintf("L:%d P:%02d B:%d",
		physics.Clamp(lives, 0, config.HUDMaxLives),
		physics.Clamp(score, 0, config.HUDMaxScore),
		physics.Clamp(bombs, 0, config.MaxBombs))
}

func paletteFor(k Kind) *draw.Palette {
	switch k {
	case KindGame:
		return &draw.GamePalette
	case KindPause, KindWin, KindLose:
		return &draw.PausePalette
	default:
		return &draw.StartPalette
	}
}

// Render draws the current screen into the back page of s. It never changes
// the session; it only consumes the erase queue.
func (g *Game) Render(s draw.Surface) {
	if g.paletteDue {
		s.LoadPalette(paletteFor(g.state.Kind))
		g.paletteDue = false
	}

	if g.state.Kind == KindGame {
		g.renderGame(s)
		return
	}
	if g.staticDue == 0 {
		return
	}
	g.staticDue--
	g.presents++

	switch g.state.Kind {
	case KindStart:
		g.drawStart(s)
	case KindPause:
		drawPause(s)
	case KindWin:
		drawEnd(s, "YOU WIN!")
	case KindLose:
		drawEnd(s, "YOU LOSE!")
	case KindScoreboard:
		g.drawScoreboard(s)
	}
}

func (g *Game) renderGame(s draw.Surface) {
	sess := g.sess
	// Both pages are repainted every frame; the queue only has to be emptied.
	_, _ = sess.Dirty.Flush(s, draw.Black)

	if sess.Dirty.TakeFullRedraw() {
		s.FillRect(0, 0, config.ScreenWidth, config.ScreenHeight, draw.Black)
	} else {
		pf := object.Playfield
		s.FillRect(pf.X, pf.Y, pf.W, pf.H, draw.Black)
	}

	pf := playfield{s: s}
	if sess.ShakeTimer > 0 {
		pf.dx = 1 - 2*(sess.ShakeTimer%2)
	}

	for _, st := range sess.Stars.All() {
		pf.pixel(st.X, st.Y, draw.Gray)
	}

	p := &sess.Player
	if !p.Blinking() {
		pf.rect(p.Rect(), draw.Cyan)
		pf.pixel(p.X+3, p.Y+2, draw.White)
	}

	for _, b := range sess.Bullets.All() {
		pf.rect(b.Rect(), draw.Yellow)
	}

	for _, a := range sess.Asteroids.All() {
		c := draw.Gray
		switch {
		case a.Bonus:
			c = draw.Magenta
		case a.HP >= 2:
			c = draw.Brown
		}
		pf.rect(a.Rect(), c)
	}

	g.drawHUD(s)
}

func (g *Game) drawHUD(s draw.Surface) {
	p := &g.sess.Player
	s.FillRect(0, 0, config.ScreenWidth, config.HUDHeight, draw.Black)
	s.DrawText(2, 2, HUDText(p.Lives, g.sess.Score, p.Bombs), draw.White)
	if g.cheatFlash > 0 {
		s.DrawText(config.ScreenWidth-2-draw.GlyphWidth, 2, "*", draw.Yellow)
	}
}

// playfield draws clipped to the area below the HUD, shifted by dx.
type playfield struct {
	s  draw.Surface
	dx int
}

func (p playfield) rect(r physics.Rect, c draw.Color) {
	r.X += p.dx
	r = physics.Clip(r, object.Playfield)
	if !r.Empty() {
		p.s.FillRect(r.X, r.Y, r.W, r.H, c)
	}
}

func (p playfield) pixel(x, y int, c draw.Color) {
	p.rect(physics.Rect{X: x, Y: y, W: 1, H: 1}, c)
}

func centered(s draw.Surface, y int, text string, c draw.Color) {
	s.DrawText((config.ScreenWidth-draw.TextWidth(text, 1))/2, y, text, c)
}

func newLogo() *draw.Image {
	const title = "ROCKFALL"
	w := draw.TextWidth(title, 3) + 8
	h := draw.GlyphHeight*3 + 8
	img := draw.NewImage(w, h)
	// drop shadow, then the title
	img.Text(6, 6, title, draw.Navy, 3)
	img.Text(4, 4, title, draw.Orange, 3)
	for i, x := range []int{1, w/3 + 2, w - 3} {
		img.SetPixel(x, 1+i%2, draw.Gray)
	}
	key := draw.Black
	img.Key = &key
	return img
}

func (g *Game) drawStart(s draw.Surface) {
	s.FillRect(0, 0, config.ScreenWidth, config.ScreenHeight, draw.Black)
	for i := 0; i < config.MaxStars; i++ {
		st := object.NewStar(i)
		s.SetPixel(st.X, st.Y, draw.Gray)
	}
	s.Blit((config.ScreenWidth-g.logo.W)/2, 30, g.logo)
	centered(s, 90, "PRESS START", draw.White)
	centered(s, 104, "R: SCORES", draw.Gray)
	centered(s, 140, fmt.Sprintf("HIGH SCORE %02d", physics.Clamp(g.scores.Best(), 0, config.HUDMaxScore)), draw.Yellow)
}

func drawPause(s draw.Surface) {
	s.FillRect(0, 0, config.ScreenWidth, config.ScreenHeight, draw.Black)
	s.DrawText(96, 70, "PAUSED", draw.Orange)
	s.DrawText(26, 92, "START: Resume  SELECT: Menu", draw.Orange)
	centered(s, 110, "R: SCORES", draw.Gray)
}

func drawEnd(s draw.Surface, title string) {
	s.FillRect(0, 0, config.ScreenWidth, config.ScreenHeight, draw.Black)
	s.DrawText(100, 70, title, draw.White)
	s.DrawText(60, 90, "Press START for menu", draw.White)
}

func (g *Game) drawScoreboard(s draw.Surface) {
	s.FillRect(0, 0, config.ScreenWidth, config.ScreenHeight, draw.Black)
	centered(s, 36, "SCOREBOARD", draw.Yellow)
	centered(s, 70, fmt.Sprintf("HIGH  %02d", physics.Clamp(g.scores.Best(), 0, config.HUDMaxScore)), draw.White)
	last := "LAST  --"
	if score, ok := g.LastScore(); ok {
		last = fmt.Sprintf("LAST  %02d", physics.Clamp(score, 0, config.HUDMaxScore))
	}
	centered(s, 86, last, draw.White)
	centered(s, 120, "R: BACK", draw.Gray)
}
