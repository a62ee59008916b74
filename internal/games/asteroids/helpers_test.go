package asteroids

import (
	"math"
	"testing"

	"github.com/vovakirdan/tui-asteroids/internal/core"
)

var testBounds = core.Bounds{W: 800, H: 600}

// scriptedRandom replays queued values, then falls back to fixed ones.
// With the fallback of 0.5 every "> 1-chance" roll at chance 0.5 or less
// fails, so saucers neither shoot nor turn unless a test asks them to.
type scriptedRandom struct {
	floats   []float64
	ints     []int
	fallback float64
}

func (r *scriptedRandom) Float64() float64 {
	if len(r.floats) > 0 {
		f := r.floats[0]
		r.floats = r.floats[1:]
		return f
	}
	return r.fallback
}

func (r *scriptedRandom) Intn(n int) int {
	if len(r.ints) > 0 {
		v := r.ints[0]
		r.ints = r.ints[1:]
		return v % n
	}
	return 0
}

func newScripted() *scriptedRandom {
	return &scriptedRandom{fallback: 0.5}
}

// newPlayingWorld returns a world in the middle of a session with an empty
// field, three lives and no saucer rolls pending. The clock reads 100.
func newPlayingWorld(t *testing.T, opts ...Option) (*World, *core.ManualClock, *scriptedRandom) {
	t.Helper()

	clock := &core.ManualClock{}
	rng := newScripted()
	w := NewWorld(testBounds, clock, rng, opts...)

	w.asteroids = nil
	w.saucers = nil
	w.particles = nil
	w.state = StatePlaying
	w.lives = 3
	w.wave = 1
	w.waveSpawnAt = math.Inf(1)
	clock.Set(100)
	return w, clock, rng
}

func legacyOption() Option {
	return func(w *World) {
		w.cfg.Rules.LegacyReevaluation = true
	}
}

// shield makes the ship ignore collisions without blocking its input.
func shield(w *World) {
	w.ship.ShieldUntil = math.Inf(1)
}

func addRock(w *World, size AsteroidSize, pos core.Vec2) *Asteroid {
	a := NewAsteroidAt(size, pos, w.bounds.MinEdge(), w.rng)
	a.Vel = core.Vec2{}
	a.RotationSpeed = 0
	w.asteroids = append(w.asteroids, a)
	return a
}

// addAnchor parks a small rock in a corner so the field never empties.
func addAnchor(w *World) *Asteroid {
	return addRock(w, AsteroidSmall, core.V(30, 570))
}

func addSaucer(w *World, size SaucerSize, pos core.Vec2) *Saucer {
	s := NewSaucer(size, w.bounds, w.now, w.rng, w.cfg.Saucers)
	s.Pos = pos
	s.Vel = core.Vec2{}
	s.turnAt = math.Inf(1)
	s.shootAt = math.Inf(1)
	w.saucers = append(w.saucers, s)
	return s
}

func addBullet(w *World, owner BulletOwner, pos core.Vec2) *Bullet {
	bl := NewBullet(pos, core.Vec2{}, 0.5, owner)
	if owner == EnemyBullet {
		bl.Lifespan = 100
		w.enemyBullets = append(w.enemyBullets, bl)
	} else {
		w.playerBullets = append(w.playerBullets, bl)
	}
	return bl
}

func step(w *World, actions ...core.Action) {
	w.Step(w.bounds, core.Frame(actions...))
}

func countSize(rocks []*Asteroid, size AsteroidSize) int {
	n := 0
	for _, a := range rocks {
		if a.Size == size {
			n++
		}
	}
	return n
}
