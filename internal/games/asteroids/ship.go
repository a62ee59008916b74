package asteroids

import (
	"github.com/vovakirdan/tui-asteroids/internal/config"
	"github.com/vovakirdan/tui-asteroids/internal/core"
)

// Ship is the player's ship. It is never removed: after a hit it respawns
// at the centre and sits out collisions until its shield runs down.
type Ship struct {
	Pos           core.Vec2
	Vel           core.Vec2
	Rotation      float64 // 0 points up the screen
	RotationSpeed float64

	MaxSpeed  float64
	ThrustAcc float64
	ShotSpeed float64
	Outline   [4]core.Vec2 // nose, right wing, exhaust, left wing

	// Deadlines are absolute clock values.
	ShotReadyAt       float64
	HyperspaceReadyAt float64
	RespawnUntil      float64
	ShieldUntil       float64

	radius float64
	tuning config.AsteroidsShip
}

// NewShip creates a ship at the centre of b, sized from its shorter edge.
func NewShip(b core.Bounds, tuning config.AsteroidsShip) *Ship {
	edge := b.MinEdge()
	return &Ship{
		Pos:       b.Center(),
		MaxSpeed:  edge * tuning.MaxSpeedFactor,
		ThrustAcc: edge * tuning.ThrustFactor,
		ShotSpeed: edge * tuning.ShotSpeedFactor,
		Outline: [4]core.Vec2{
			{X: 0, Y: -edge / 30},
			{X: edge / 60, Y: edge / 60},
			{X: 0, Y: edge / 100},
			{X: -edge / 60, Y: edge / 60},
		},
		radius: edge * tuning.RadiusFactor,
		tuning: tuning,
	}
}

// Heading returns the unit vector the nose points along.
func (s *Ship) Heading() core.Vec2 {
	return core.V(0, -1).Rotate(s.Rotation)
}

// Nose returns the world position of the nose vertex.
func (s *Ship) Nose() core.Vec2 {
	return s.Pos.Add(s.Outline[0].Rotate(s.Rotation))
}

// Exhaust returns the world position of the exhaust vertex.
func (s *Ship) Exhaust() core.Vec2 {
	return s.Pos.Add(s.Outline[2].Rotate(s.Rotation))
}

// Steer sets the rotation speed. It replaces, not adds to, the current rate.
func (s *Ship) Steer(rate float64) {
	s.RotationSpeed = rate
}

// Thrust accelerates along the heading, capped at MaxSpeed.
func (s *Ship) Thrust() {
	s.Vel = s.Vel.Add(s.Heading().Scale(s.ThrustAcc))
	if s.Vel.Len() > s.MaxSpeed {
		s.Vel = s.Vel.Normalize().Scale(s.MaxSpeed)
	}
}

// Shoot fires a bullet from the nose. Returns nil while recharging.
func (s *Ship) Shoot(now float64) *Bullet {
	if now < s.ShotReadyAt {
		return nil
	}
	s.ShotReadyAt = now + s.tuning.ShotRecharge
	return NewBullet(s.Nose(), s.Heading().Scale(s.ShotSpeed), s.tuning.ShotLifespan, PlayerBullet)
}

// Hyperspace teleports to a random point in b and returns the position it
// left. ok is false, and nothing happens, while recharging.
func (s *Ship) Hyperspace(now float64, b core.Bounds, rng core.Random) (from core.Vec2, ok bool) {
	if now < s.HyperspaceReadyAt {
		return core.Vec2{}, false
	}
	from = s.Pos
	s.HyperspaceReadyAt = now + s.tuning.HyperspaceRecharge
	s.Pos = core.V(core.RangeF(rng, 0, b.W), core.RangeF(rng, 0, b.H))
	return from, true
}

// Respawn puts the ship back at the centre with a respawn window followed
// by a shield window.
func (s *Ship) Respawn(now float64, b core.Bounds) {
	s.RespawnUntil = now + s.tuning.RespawnSeconds
	s.ShieldUntil = s.RespawnUntil + s.tuning.ShieldSeconds
	s.Reset(b)
}

// Reset centres the ship and stops it. Timers are left alone.
func (s *Ship) Reset(b core.Bounds) {
	s.Pos = b.Center()
	s.Vel = core.Vec2{}
	s.Rotation = 0
	s.RotationSpeed = 0
}

// Respawning reports whether the ship is inside its respawn window.
func (s *Ship) Respawning(now float64) bool { return now < s.RespawnUntil }

// ShieldActive reports whether the shield is still up.
func (s *Ship) ShieldActive(now float64) bool { return now < s.ShieldUntil }

// Advance moves the ship one tick and applies drag.
func (s *Ship) Advance(b core.Bounds) {
	s.Pos = core.WrapVec(s.Pos.Add(s.Vel), b)
	s.Rotation += s.RotationSpeed
	s.Vel = s.Vel.Scale(s.tuning.Drag)
}

func (s *Ship) Position() core.Vec2 { return s.Pos }
func (s *Ship) Radius() float64     { return s.radius }
