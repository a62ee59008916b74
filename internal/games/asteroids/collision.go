package asteroids

import "github.com/vovakirdan/tui-asteroids/internal/core"

// Collider is one of the four kinds that take part in collisions: *Ship,
// *Asteroid, *Saucer or *Bullet. The set is closed.
type Collider interface {
	Position() core.Vec2
	Radius() float64
	collider()
}

func (*Ship) collider()     {}
func (*Asteroid) collider() {}
func (*Saucer) collider()   {}
func (*Bullet) collider()   {}

// Colliding reports whether a and b overlap on the torus described by b.
// A ship inside its respawn or shield window never collides.
func Colliding(a, c Collider, b core.Bounds, now float64) bool {
	if !collidable(a, now) || !collidable(c, now) {
		return false
	}
	return core.CircleOverlap(a.Position(), a.Radius(), c.Position(), c.Radius(), b)
}

func collidable(c Collider, now float64) bool {
	switch c := c.(type) {
	case *Ship:
		return !c.Respawning(now) && !c.ShieldActive(now)
	case *Asteroid, *Saucer, *Bullet:
		return true
	default:
		return false
	}
}
