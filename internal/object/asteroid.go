package object

import (
	"github.com/tomz197/rockfall/internal/config"
	"github.com/tomz197/rockfall/internal/physics"
)

// Asteroid is a falling square rock. Bonus asteroids grant a bomb charge
// instead of score when destroyed.
type Asteroid struct {
	X, Y       int
	OldX, OldY int
	Size       int
	DX, DY     int
	HP         int
	Bonus      bool
}

// SpawnAsteroid builds the asteroid that enters slot at the given elapsed
// frame. Rocks grow and speed up with time; the bonus variant is always
// small and fragile.
func SpawnAsteroid(slot, frame int, bonus bool) Asteroid {
	a := Asteroid{Bonus: bonus}
	if bonus {
		a.Size = config.BonusAsteroidSize
		a.HP = 1
	} else {
		a.Size = config.AsteroidMinSize + (frame/config.AsteroidGrowFrames)%config.AsteroidSizeSteps
		a.HP = 1
		if a.Size >= config.AsteroidToughSize {
			a.HP = 2
		}
	}

	a.X = (slot*29 + frame*3) % (config.ScreenWidth - a.Size)
	a.Y = config.HUDHeight
	a.OldX, a.OldY = a.X, a.Y

	a.DX = slot%3 - 1
	a.DY = physics.Clamp(1+frame/config.AsteroidSpeedFrames, 1, config.AsteroidMaxSpeed)
	return a
}

// Step remembers the current position, advances one frame and bounces off
// the side walls.
func (a *Asteroid) Step() {
	a.OldX, a.OldY = a.X, a.Y
	a.X += a.DX
	a.Y += a.DY

	right := config.ScreenWidth - a.Size
	if a.X <= 0 || a.X >= right {
		a.DX = -a.DX
		a.X = physics.Clamp(a.X, 0, right)
	}
}

// Below reports whether the asteroid has fully left the bottom of the screen.
func (a *Asteroid) Below() bool {
	return a.Y >= config.ScreenHeight
}

// Rect returns the current bounds.
func (a *Asteroid) Rect() physics.Rect {
	return physics.Rect{X: a.X, Y: a.Y, W: a.Size, H: a.Size}
}

// PrevRect returns the bounds from the previous frame.
func (a *Asteroid) PrevRect() physics.Rect {
	return physics.Rect{X: a.OldX, Y: a.OldY, W: a.Size, H: a.Size}
}
