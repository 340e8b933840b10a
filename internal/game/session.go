package game

import (
	"github.com/tomz197/rockfall/internal/config"
	"github.com/tomz197/rockfall/internal/input"
	"github.com/tomz197/rockfall/internal/object"
	"github.com/tomz197/rockfall/internal/physics"
	"github.com/tomz197/rockfall/internal/sfx"
)

// Session is everything one play-through mutates: the player, the entity
// pools and the counters. Update code only queues erase rectangles; it
// never draws.
type Session struct {
	Player    object.Player
	Bullets   *object.Pool[object.Bullet]
	Asteroids *object.Pool[object.Asteroid]
	Stars     *object.Pool[object.Star]
	Dirty     DirtyTracker

	Score       int
	TargetScore int
	Frame       int // Gameplay frames since the session started
	SpawnTimer  int // Frames until the next spawn attempt
	SpawnCount  int // Successful spawns, drives the bonus cadence
	ShakeTimer  int // Cosmetic; read only by rendering

	fx sfx.Player
}

// NewSession allocates the pools and resets the session. fx may be nil.
func NewSession(targetScore int, fx sfx.Player) *Session {
	if fx == nil {
		fx = sfx.Nop{}
	}
	if targetScore <= 0 {
		targetScore = config.DefaultTargetScore
	}
	s := &Session{
		Bullets:     object.NewPool[object.Bullet](config.MaxBullets),
		Asteroids:   object.NewPool[object.Asteroid](config.MaxAsteroids),
		Stars:       object.NewPool[object.Star](config.MaxStars),
		TargetScore: targetScore,
		fx:          fx,
	}
	s.Reset()
	return s
}

// Reset starts a fresh play-through without reallocating.
func (s *Session) Reset() {
	s.Score = 0
	s.Frame = 0
	s.SpawnTimer = config.InitialSpawnTimer
	s.SpawnCount = 0
	s.ShakeTimer = 0

	s.Player = object.NewPlayer()
	s.Bullets.Reset()
	s.Asteroids.Reset()
	s.Stars.Reset()
	for i := 0; i < s.Stars.Cap(); i++ {
		_, st, _ := s.Stars.Acquire()
		*st = object.NewStar(i)
	}
	s.Dirty.Reset()
}

// Won reports whether the target score has been reached.
func (s *Session) Won() bool { return s.Score >= s.TargetScore }

// Lost reports whether the player is out of lives.
func (s *Session) Lost() bool { return s.Player.Lives <= 0 }

// Step advances the world by one frame.
func (s *Session) Step(in input.Snapshot) {
	s.Frame++
	for _, st := range s.Stars.All() {
		st.Step()
	}
	s.updatePlayer(in)
	s.updateBullets()

	s.SpawnTimer--
	if s.SpawnTimer <= 0 {
		s.spawnAsteroid()
		s.SpawnTimer = physics.Clamp(
			config.SpawnTimerBase-s.Frame/config.SpawnTimerRampFrames,
			config.SpawnTimerFloor, config.SpawnTimerBase)
	}

	s.updateAsteroids()
	s.handleCollisions()

	if s.ShakeTimer > 0 {
		s.ShakeTimer--
	}
}

// erase queues r if any part of it is on the playfield.
func (s *Session) erase(r physics.Rect) {
	r = physics.Clip(r, object.Playfield)
	if r.Empty() {
		return
	}
	_ = s.Dirty.Queue(r)
}

func (s *Session) updatePlayer(in input.Snapshot) {
	p := &s.Player
	p.OldX, p.OldY = p.X, p.Y
	p.Tick()

	dx, dy := 0, 0
	if in.Down(input.ButtonLeft) {
		dx -= p.Speed
	}
	if in.Down(input.ButtonRight) {
		dx += p.Speed
	}
	if in.Down(input.ButtonUp) {
		dy -= p.Speed
	}
	if in.Down(input.ButtonDown) {
		dy += p.Speed
	}
	p.Move(dx, dy)

	if in.Hit(input.ButtonA) {
		s.fire()
	}
	if in.Hit(input.ButtonB) && p.DashCooldown == 0 {
		s.dash(in)
	}
	if in.Hit(input.ButtonL) {
		s.UseBomb()
	}
}

// fire launches a bullet from the top centre of the player. A full pool
// drops the shot silently.
func (s *Session) fire() {
	_, b, ok := s.Bullets.Acquire()
	if !ok {
		return
	}
	*b = object.NewBullet(s.Player.X+s.Player.W/2, s.Player.Y)
	s.fx.Play(sfx.Shoot)
}

// dash jumps the player in the first held direction of left, right, down,
// up; upward when nothing is held.
func (s *Session) dash(in input.Snapshot) {
	p := &s.Player
	p.DashCooldown = config.DashCooldown

	dx, dy := 0, -1
	switch {
	case in.Down(input.ButtonLeft):
		dx, dy = -1, 0
	case in.Down(input.ButtonRight):
		dx, dy = 1, 0
	case in.Down(input.ButtonDown):
		dx, dy = 0, 1
	case in.Down(input.ButtonUp):
		dx, dy = 0, -1
	}
	p.Move(dx*config.DashDistance, dy*config.DashDistance)
}

func (s *Session) updateBullets() {
	for i, b := range s.Bullets.All() {
		b.Step()
		if b.Y < config.HUDHeight {
			s.erase(b.PrevRect())
			s.erase(b.Rect())
			s.Bullets.Release(i)
		}
	}
}

func (s *Session) spawnAsteroid() {
	slot, a, ok := s.Asteroids.Acquire()
	if !ok {
		return
	}
	s.SpawnCount++
	*a = object.SpawnAsteroid(slot, s.Frame, s.SpawnCount%config.BonusAsteroidEvery == 0)
}

func (s *Session) updateAsteroids() {
	for i, a := range s.Asteroids.All() {
		a.Step()
		if a.Below() {
			s.erase(a.PrevRect())
			s.Asteroids.Release(i)
		}
	}
}

// destroyAsteroid frees slot i and queues both of its positions for erasing.
func (s *Session) destroyAsteroid(i int, a *object.Asteroid) {
	s.erase(a.PrevRect())
	s.erase(a.Rect())
	s.Asteroids.Release(i)
}

func (s *Session) handleCollisions() {
	for bi, b := range s.Bullets.All() {
		for ai, a := range s.Asteroids.All() {
			if !physics.Overlaps(b.Rect(), a.Rect()) {
				continue
			}

			s.erase(b.PrevRect())
			s.erase(b.Rect())
			s.Bullets.Release(bi)

			a.HP--
			if a.HP <= 0 {
				bonus := a.Bonus
				s.destroyAsteroid(ai, a)
				if bonus {
					s.Player.GrantBomb()
					s.fx.Play(sfx.PowerUp)
				} else {
					s.Score += config.ScoreAsteroid
					s.fx.Play(sfx.Hit)
				}
			}
			break
		}
	}

	if !s.Player.Vulnerable() {
		return
	}
	for ai, a := range s.Asteroids.All() {
		if !physics.Overlaps(s.Player.Rect(), a.Rect()) {
			continue
		}
		s.Player.Hit()
		s.destroyAsteroid(ai, a)
		s.fx.Play(sfx.Hit)
		break
	}
}

// clearAsteroids destroys every active asteroid and returns how many there were.
func (s *Session) clearAsteroids() int {
	n := 0
	for i, a := range s.Asteroids.All() {
		s.destroyAsteroid(i, a)
		n++
	}
	return n
}

// UseBomb spends the bomb charge to clear the field. Without a charge it does
// nothing and returns false.
func (s *Session) UseBomb() bool {
	if s.Player.Bombs <= 0 {
		return false
	}
	s.Player.Bombs--

	if s.clearAsteroids() >= config.BombLargeCount {
		s.Score += config.ScoreBombLarge
	} else {
		s.Score += config.ScoreBombSmall
	}
	s.ShakeTimer = config.BombShakeFrames
	s.fx.Play(sfx.Bomb)
	return true
}
