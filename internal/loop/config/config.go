// Package config centralizes the gameplay tunables. World size, wave size and
// timer lengths are runtime settings in internal/config.
package config

import "time"

// Ship
const (
	ShipRadius     = 30.0
	ShipRotateRate = 2.0  // radians/sec while a turn key is held
	ShipMaxSpin    = 5.0  // rotation rate clamp, radians/sec
	ShipThrust     = 60.0 // acceleration, units/sec²
	ShipMaxSpeed   = 600.0
)

// Firing
const (
	FireInterval  = 250 * time.Millisecond
	MaxBullets    = 3
	BulletSpeed   = 1000.0
	BulletLife    = 1.0 // seconds
	BulletRadius  = 7.5
	TeleportInset = 0.8 // fraction of the half extent a teleport may land in
)

// Asteroids
const (
	InitialScale       = 2.0
	SplitThreshold     = 0.1 // children at or below this scale are not spawned
	AsteroidBaseSpeed  = 30.0
	AsteroidJitter     = 1.0
	SpawnClearance     = 2.0 // multiple of the asteroid radius kept clear around the ship
	TitleWaveAsteroids = 5

	// WaveClearance is SpawnClearance radii of a full-size asteroid
	// (65 units per unit of scale).
	WaveClearance      = SpawnClearance * 65.0 * InitialScale
	// MinWorldHalfExtent bounds both half extents of the world from below,
	// leaving room for a wave to spawn clear of the ship wherever it is.
	MinWorldHalfExtent = 1.25 * WaveClearance
)

// UFO
const (
	UFORadius       = 50.0
	UFOFireDelay    = 0.5 // seconds before the first shot
	UFOFireInterval = 1.25
	UFOBulletSpeed  = 400.0
	UFOBulletLife   = 2.0
	UFOMaxSpeed     = 150.0
	UFOJitter       = 1.0 // velocity change per frame on each axis
)

// Scoring
const (
	ScoreAsteroid = 1
	ScoreUFO      = 10
)

// Explosions
const (
	ExplosionRadius   = 10.0
	ExplosionWidth    = 5.0
	ExplosionGrow     = 1.05
	ExplosionThin     = 0.15
	ExplosionFade     = 0.03
	ExplosionMaxWidth = 5.0
)

// Frame timing
const (
	TargetFPS       = 60
	TargetFrameTime = time.Second / TargetFPS
	MaxDelta        = 100 * time.Millisecond
)

// Prompt keys. Terminals report key repeats, never releases, so a held key
// looks like a stream of fresh presses.
const (
	RestartArmDelay = time.Second            // Space is ignored this long after game over
	BossToggleGuard = 500 * time.Millisecond // minimum time between boss key toggles
)
