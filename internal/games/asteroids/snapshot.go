package asteroids

import "math"

// Snapshot is a compact summary of the world used for determinism checks
// and run records. Float state is kept as raw bits so that two runs match
// only if they are bit-for-bit identical.
type Snapshot struct {
	Tick  uint64
	Score int
	Lives int
	Wave  int
	State int

	AsteroidCount     int
	SaucerCount       int
	PlayerBulletCount int
	EnemyBulletCount  int
	ParticleCount     int

	// Ship X, Y and rotation bits, then X, Y bits of every asteroid, saucer
	// and bullet.
	PositionData []uint64
}

// Snapshot returns the current world summary.
func (w *World) Snapshot() Snapshot {
	n := 1 + len(w.asteroids) + len(w.saucers) + len(w.playerBullets) + len(w.enemyBullets)
	data := make([]uint64, 0, n*2+1)

	data = append(data, math.Float64bits(w.ship.Pos.X), math.Float64bits(w.ship.Pos.Y), math.Float64bits(w.ship.Rotation))
	for _, a := range w.asteroids {
		data = append(data, math.Float64bits(a.Pos.X), math.Float64bits(a.Pos.Y))
	}
	for _, s := range w.saucers {
		data = append(data, math.Float64bits(s.Pos.X), math.Float64bits(s.Pos.Y))
	}
	for _, bl := range w.playerBullets {
		data = append(data, math.Float64bits(bl.Pos.X), math.Float64bits(bl.Pos.Y))
	}
	for _, bl := range w.enemyBullets {
		data = append(data, math.Float64bits(bl.Pos.X), math.Float64bits(bl.Pos.Y))
	}

	return Snapshot{
		Tick:              w.ticks,
		Score:             w.score,
		Lives:             w.lives,
		Wave:              w.wave,
		State:             int(w.state),
		AsteroidCount:     len(w.asteroids),
		SaucerCount:       len(w.saucers),
		PlayerBulletCount: len(w.playerBullets),
		EnemyBulletCount:  len(w.enemyBullets),
		ParticleCount:     len(w.particles),
		PositionData:      data,
	}
}

// Hash returns a simple hash of the snapshot for determinism testing.
func (snap *Snapshot) Hash() uint64 {
	h := snap.Tick
	h = h*31 + uint64(snap.Score)             //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Lives)             //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Wave)              //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.State)             //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.AsteroidCount)     //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.SaucerCount)       //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.PlayerBulletCount) //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.EnemyBulletCount)  //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.ParticleCount)     //#nosec G115 -- hash computation

	for _, v := range snap.PositionData {
		h = h*31 + v
	}
	return h
}
