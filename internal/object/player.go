package object

import (
	"github.com/tomz197/rockfall/internal/config"
	"github.com/tomz197/rockfall/internal/physics"
)

// Player is the ship at the bottom of the playfield.
type Player struct {
	X, Y       int
	OldX, OldY int
	W, H       int
	Speed      int

	Lives        int
	InvulnTimer  int // Frames of immunity left; 0 means vulnerable
	DashCooldown int // Frames until the next dash is allowed
	Bombs        int // 0 or 1
}

// NewPlayer creates a ship centered near the bottom of the screen.
func NewPlayer() Player {
	x := config.ScreenWidth/2 - config.PlayerWidth/2
	y := config.ScreenHeight - 20
	return Player{
		X: x, Y: y,
		OldX: x, OldY: y,
		W: config.PlayerWidth, H: config.PlayerHeight,
		Speed: config.PlayerSpeed,
		Lives: config.InitialLives,
	}
}

// Tick counts down the invulnerability and dash timers.
func (p *Player) Tick() {
	if p.InvulnTimer > 0 {
		p.InvulnTimer--
	}
	if p.DashCooldown > 0 {
		p.DashCooldown--
	}
}

// Move shifts the ship by (dx, dy) and keeps it on screen and out of the HUD strip.
func (p *Player) Move(dx, dy int) {
	p.X = physics.Clamp(p.X+dx, 0, config.ScreenWidth-p.W)
	p.Y = physics.Clamp(p.Y+dy, config.HUDHeight, config.ScreenHeight-p.H)
}

// Hit costs one life and starts the invulnerability window.
func (p *Player) Hit() {
	p.Lives--
	p.InvulnTimer = config.InvulnFrames
}

// Vulnerable reports whether an asteroid collision would count.
func (p *Player) Vulnerable() bool {
	return p.InvulnTimer == 0
}

// GrantBomb gives the ship a bomb charge. Charges do not stack.
func (p *Player) GrantBomb() {
	p.Bombs = min(p.Bombs+1, config.MaxBombs)
}

// Blinking reports whether the ship is in the hidden phase of its
// invulnerability blink.
func (p *Player) Blinking() bool {
	return p.InvulnTimer > 0 && (p.InvulnTimer/config.InvulnBlinkPeriod)%2 == 0
}

// Rect returns the current bounds.
func (p *Player) Rect() physics.Rect {
	return physics.Rect{X: p.X, Y: p.Y, W: p.W, H: p.H}
}
