// Package config centralizes all tunable game parameters.
package config

import "time"

// Screen geometry in pixels. All positions use this space.
const (
	ScreenWidth  = 240
	ScreenHeight = 160
	HUDHeight    = 12 // Top strip reserved for the HUD; the playfield starts below it
)

// Pool capacities.
const (
	MaxBullets   = 16
	MaxAsteroids = 12
	MaxStars     = 24
)

// Player
const (
	PlayerWidth       = 8
	PlayerHeight      = 8
	PlayerSpeed       = 2
	InitialLives      = 3
	InvulnFrames      = 45
	InvulnBlinkPeriod = 4 // Frames per blink phase while invulnerable
	DashCooldown      = 30
	DashDistance      = 18
	MaxBombs          = 1
)

// Bullets
const (
	BulletWidth  = 2
	BulletHeight = 2
	BulletSpeed  = 4 // Pixels per frame, upward
)

// Asteroids and spawning
const (
	AsteroidMinSize      = 6
	AsteroidSizeSteps    = 7   // Size cycles through MinSize..MinSize+Steps-1
	AsteroidGrowFrames   = 180 // Frames per size step
	AsteroidToughSize    = 10  // Asteroids this large take two hits
	AsteroidSpeedFrames  = 600 // Frames per +1 of downward speed
	AsteroidMaxSpeed     = 3
	BonusAsteroidEvery   = 15 // Every Nth successful spawn is a bonus asteroid
	BonusAsteroidSize    = 8
	InitialSpawnTimer    = 45
	SpawnTimerBase       = 60
	SpawnTimerFloor      = 18
	SpawnTimerRampFrames = 240 // Frames per -1 of spawn interval
)

// Session
const (
	DefaultTargetScore = 25
	BombShakeFrames    = 10
	CheatFlashFrames   = 10
)

// Scoring
const (
	ScoreAsteroid  = 1
	ScoreBombSmall = 1
	ScoreBombLarge = 2
	BombLargeCount = 3 // Clearing at least this many asteroids awards ScoreBombLarge
)

// HUD display bounds
const (
	HUDMaxLives = 9
	HUDMaxScore = 99
)

// Dirty-region tracking
const (
	DirtyCapacity     = 64
	DirtyFrameCeiling = 16
)

// Frame timing
const (
	TargetFPS       = 60
	TargetFrameTime = time.Second / TargetFPS
)

// Inactivity (remote sessions)
const (
	DefaultIdleWarn    = 90 * time.Second
	DefaultIdleTimeout = 120 * time.Second
)
