package asteroids

import (
	"math"

	"github.com/vovakirdan/tui-asteroids/internal/config"
	"github.com/vovakirdan/tui-asteroids/internal/core"
)

// SaucerSize is the kind of enemy saucer. Small saucers are fast and aim
// at the ship; large ones are slow and fire at random.
type SaucerSize int

const (
	SaucerSmall SaucerSize = iota
	SaucerLarge
)

func (s SaucerSize) String() string {
	if s == SaucerSmall {
		return "small"
	}
	return "large"
}

// Saucer is an enemy ship crossing the playfield.
type Saucer struct {
	Size      SaucerSize
	Diameter  float64
	Pos       core.Vec2
	Vel       core.Vec2
	Direction float64
	Outline   []core.Vec2

	speed   float64
	turnAt  float64 // next steering decision
	shootAt float64 // next shooting decision
	tuning  config.AsteroidsSaucers
	dead    bool
}

// NewSaucer creates a saucer entering from the left or right edge at a
// random height. Both decision timers start one period from now.
func NewSaucer(size SaucerSize, b core.Bounds, now float64, rng core.Random, tuning config.AsteroidsSaucers) *Saucer {
	edge := b.MinEdge()

	diameter, speed := edge*0.07, edge*0.00125
	if size == SaucerSmall {
		diameter, speed = edge*0.035, edge*0.0025
	}

	var pos core.Vec2
	var dir float64
	if rng.Intn(2) == 0 {
		pos = core.V(0, core.RangeF(rng, 0, b.H))
	} else {
		pos, dir = core.V(b.W, core.RangeF(rng, 0, b.H)), math.Pi
	}

	return &Saucer{
		Size:      size,
		Diameter:  diameter,
		Pos:       pos,
		Vel:       core.FromAngle(dir, speed),
		Direction: dir,
		Outline:   saucerOutline(diameter / 2),
		speed:     speed,
		turnAt:    now + tuning.TurnPeriod,
		shootAt:   now + tuning.ShootPeriod,
		tuning:    tuning,
	}
}

// saucerOutline returns the 12-point hull, drawn as one polyline.
func saucerOutline(r float64) []core.Vec2 {
	return []core.Vec2{
		{X: -r * 1.25, Y: 0},
		{X: -r / 2, Y: r / 2},
		{X: r / 2, Y: r / 2},
		{X: r * 1.25, Y: 0},
		{X: -r * 1.25, Y: 0},
		{X: -r / 2, Y: -r / 2},
		{X: -r / 3, Y: -r},
		{X: r / 3, Y: -r},
		{X: r / 2, Y: -r / 2},
		{X: r * 1.25, Y: 0},
		{X: r / 2, Y: -r / 2},
		{X: -r / 2, Y: -r / 2},
	}
}

// MaybeShoot fires at most one enemy bullet. Once the shoot timer has run
// out it is rearmed, and the saucer fires with probability ShootChance.
// Returns nil when the saucer holds fire.
func (s *Saucer) MaybeShoot(target core.Vec2, now float64, rng core.Random) *Bullet {
	if !(s.shootAt < now) {
		return nil
	}
	s.shootAt = now + s.tuning.ShootPeriod

	if !(rng.Float64() > 1-s.tuning.ShootChance) {
		return nil
	}

	var vel core.Vec2
	aim := target.Sub(s.Pos)
	if s.Size == SaucerSmall && aim.Len() > 0 {
		vel = aim.Normalize().Scale(s.tuning.BulletSpeed)
	} else {
		vel = core.FromAngle(core.RangeF(rng, 0, 2*math.Pi), s.tuning.BulletSpeed)
	}
	return NewBullet(s.Pos, vel, s.tuning.BulletLifespan, EnemyBullet)
}

// Advance moves the saucer one tick and occasionally nudges its heading.
func (s *Saucer) Advance(b core.Bounds, now float64, rng core.Random) {
	s.Pos = s.Pos.Add(s.Vel)

	if s.turnAt < now {
		s.turnAt = now + s.tuning.TurnPeriod
		if rng.Float64() > 1-s.tuning.TurnChance {
			s.Direction += core.RangeF(rng, -1, 1) * s.tuning.TurnDegrees / 180 * math.Pi
			s.Vel = core.FromAngle(s.Direction, s.speed)
		}
	}

	s.Pos = core.WrapVec(s.Pos, b)
}

func (s *Saucer) Alive() bool         { return !s.dead }
func (s *Saucer) Destroy()            { s.dead = true }
func (s *Saucer) Position() core.Vec2 { return s.Pos }
func (s *Saucer) Radius() float64     { return s.Diameter / 2 }
