// Package object holds the game entities and the fixed-capacity pools they live in.
package object

import (
	"github.com/tomz197/rockfall/internal/config"
	"github.com/tomz197/rockfall/internal/physics"
)

// Playfield is the screen area below the HUD strip.
var Playfield = physics.Rect{
	X: 0,
	Y: config.HUDHeight,
	W: config.ScreenWidth,
	H: config.ScreenHeight - config.HUDHeight,
}

// Screen is the whole drawable area.
var Screen = physics.Rect{W: config.ScreenWidth, H: config.ScreenHeight}

// Bullet is a shot fired straight up by the player.
type Bullet struct {
	X, Y       int
	OldX, OldY int
	W, H       int
	DX, DY     int
}

// NewBullet returns a bullet whose top-left pixel is at (x, y).
func NewBullet(x, y int) Bullet {
	return Bullet{
		X: x, Y: y,
		OldX: x, OldY: y,
		W: config.BulletWidth, H: config.BulletHeight,
		DY: -config.BulletSpeed,
	}
}

// Step remembers the current position and advances one frame.
func (b *Bullet) Step() {
	b.OldX, b.OldY = b.X, b.Y
	b.X += b.DX
	b.Y += b.DY
}

// Rect returns the current bounds.
func (b *Bullet) Rect() physics.Rect { return physics.Rect{X: b.X, Y: b.Y, W: b.W, H: b.H} }

// PrevRect returns the bounds from the previous frame.
func (b *Bullet) PrevRect() physics.Rect { return physics.Rect{X: b.OldX, Y: b.OldY, W: b.W, H: b.H} }

// Star is a decorative background pixel that drifts down and wraps forever.
type Star struct {
	X, Y       int
	OldX, OldY int
	Speed      int
}

// NewStar places star i of the field on its fixed starting spot.
func NewStar(i int) Star {
	x := (i * 13) % config.ScreenWidth
	y := config.HUDHeight + (i*7)%(config.ScreenHeight-config.HUDHeight)
	return Star{X: x, Y: y, OldX: x, OldY: y, Speed: 1 + i%2}
}

// Step drifts the star downward; past the bottom it re-enters just below the HUD.
func (s *Star) Step() {
	s.OldX, s.OldY = s.X, s.Y
	s.Y += s.Speed
	if s.Y >= config.ScreenHeight {
		s.Y = config.HUDHeight
		s.X = (s.X + 53) % config.ScreenWidth
	}
}
