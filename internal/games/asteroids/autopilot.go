package asteroids

import (
	"math"

	"github.com/vovakirdan/tui-asteroids/internal/core"
)

// Autopilot plays the game from a View. It keeps no state and uses no
// randomness, so a seeded run driven by it replays exactly.
type Autopilot struct {
	// AimTolerance is the heading error, in radians, below which the ship
	// stops turning and fires.
	AimTolerance float64
}

// NewAutopilot returns an autopilot with a tolerance suited to the default
// steer rate.
func NewAutopilot() Autopilot {
	return Autopilot{AimTolerance: 0.15}
}

// Input picks the actions for the next tick.
func (a Autopilot) Input(v View) core.InputFrame {
	if v.State != StatePlaying {
		return core.Frame(core.ActionStart)
	}
	if v.Ship.Respawning {
		return core.NewInputFrame()
	}

	target, dist, ok := nearestBody(v)
	if !ok {
		return core.NewInputFrame()
	}

	// Escape anything about to land on the ship.
	if dist < (target.Radius+v.Ship.Radius)*1.5 && !v.Ship.Shielded {
		return core.Frame(core.ActionHyperspace)
	}

	d := core.V(
		core.ToroidalDelta(target.Pos.X, v.Ship.Pos.X, v.Bounds.W),
		core.ToroidalDelta(target.Pos.Y, v.Ship.Pos.Y, v.Bounds.H),
	)
	heading := core.V(0, -1).Rotate(v.Ship.Rotation)
	// Positive is clockwise on screen.
	aimErr := math.Atan2(heading.X*d.Y-heading.Y*d.X, heading.X*d.X+heading.Y*d.Y)

	f := core.NewInputFrame()
	switch {
	case aimErr > a.AimTolerance:
		f.Set(core.ActionRight)
	case aimErr < -a.AimTolerance:
		f.Set(core.ActionLeft)
	default:
		f.Set(core.ActionFire)
	}
	if math.Abs(aimErr) < 2*a.AimTolerance && dist > v.Bounds.MinEdge()/3 {
		f.Set(core.ActionThrust)
	}
	return f
}

// nearestBody returns the closest asteroid or saucer to the ship on the
// torus.
func nearestBody(v View) (BodyView, float64, bool) {
	var best BodyView
	bestDist := math.Inf(1)
	for _, group := range [][]BodyView{v.Asteroids, v.Saucers} {
		for _, b := range group {
			dx := core.ToroidalDelta(b.Pos.X, v.Ship.Pos.X, v.Bounds.W)
			dy := core.ToroidalDelta(b.Pos.Y, v.Ship.Pos.Y, v.Bounds.H)
			if d := math.Hypot(dx, dy); d < bestDist {
				best, bestDist = b, d
			}
		}
	}
	return best, bestDist, !math.IsInf(bestDist, 1)
}
