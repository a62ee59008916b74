package asteroids

import (
	"fmt"
	"io"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-asteroids/internal/config"
	"github.com/vovakirdan/tui-asteroids/internal/core"
)

// State is the session state driven by the director.
type State int

const (
	StateAttract State = iota
	StatePlaying
	StateGameOver
)

func (s State) String() string {
	switch s {
	case StateAttract:
		return "attract"
	case StatePlaying:
		return "playing"
	case StateGameOver:
		return "game over"
	default:
		return "unknown"
	}
}

// World owns every entity and runs the per-tick pipeline:
// input -> advance -> collisions -> sweep -> director bookkeeping.
// It is not safe for concurrent use; hosts that render from another
// goroutine should publish View values.
type World struct {
	cfg        config.AsteroidsConfig
	clock      core.Clock
	rng        core.Random
	logger     *log.Logger
	difficulty *config.DifficultyManager

	ship          *Ship
	asteroids     []*Asteroid
	saucers       []*Saucer
	playerBullets []*Bullet
	enemyBullets  []*Bullet
	particles     []Particle

	lives       int
	score       int
	wave        int
	waveSpawnAt float64
	state       State

	bounds core.Bounds
	now    float64
	ticks  uint64
}

// Option configures a World.
type Option func(*World)

// WithLogger sets the logger used for session events.
func WithLogger(l *log.Logger) Option {
	return func(w *World) {
		if l != nil {
			w.logger = l
		}
	}
}

// WithConfig replaces the default tuning.
func WithConfig(cfg config.AsteroidsConfig) Option {
	return func(w *World) {
		w.cfg = cfg
	}
}

// NewWorld creates a world in attract mode. It panics if b is not a
// positive finite size.
func NewWorld(b core.Bounds, clock core.Clock, rng core.Random, opts ...Option) *World {
	w := &World{
		cfg:    config.DefaultAsteroidsConfig(),
		clock:  clock,
		rng:    rng,
		logger: log.New(io.Discard),
		bounds: core.MustBounds(b),
	}
	for _, opt := range opts {
		opt(w)
	}
	w.difficulty = config.NewDifficultyManager(w.cfg.Difficulty)
	w.now = clock.Now()
	w.ship = NewShip(w.bounds, w.cfg.Ship)
	w.enterAttract()
	return w
}

// Step runs one tick against the current bounds.
func (w *World) Step(b core.Bounds, in core.InputFrame) {
	w.bounds = core.MustBounds(b)
	w.now = w.clock.Now()
	w.ticks++

	w.handleInput(in)

	target := w.ship.Pos
	w.advance(target)

	if w.state == StatePlaying {
		w.resolveCollisions()
	}

	w.sweep()
	w.bookkeeping()

	if !w.ship.Pos.IsFinite() || !w.ship.Vel.IsFinite() {
		panic(fmt.Sprintf("asteroids: ship state is not finite: pos=%v vel=%v", w.ship.Pos, w.ship.Vel))
	}
}

func (w *World) handleInput(in core.InputFrame) {
	switch w.state {
	case StateAttract:
		if in.Has(core.ActionStart) {
			w.start()
		}
	case StateGameOver:
		if in.Has(core.ActionStart) {
			w.enterAttract()
		}
	case StatePlaying:
		if !w.ship.Respawning(w.now) {
			w.shipInput(in)
		}
	}
}

func (w *World) shipInput(in core.InputFrame) {
	w.ship.Steer(float64(in.Steering()) * w.cfg.Ship.SteerRate)

	if in.Has(core.ActionThrust) {
		w.ship.Thrust()
		w.particles = AppendConical(w.particles, w.rng, w.ship.Exhaust(), w.ship.Rotation, 0.5, 1)
	}

	if in.Has(core.ActionHyperspace) {
		if from, ok := w.ship.Hyperspace(w.now, w.bounds, w.rng); ok {
			radius := w.ship.Radius() * 6
			w.particles = AppendRing(w.particles, w.rng, from, radius, 200)
			w.particles = AppendRing(w.particles, w.rng, w.ship.Pos, radius, 200)
			w.logger.Debug("hyperspace", "from", from, "to", w.ship.Pos)
		}
	}

	if in.Has(core.ActionFire) {
		if bl := w.ship.Shoot(w.now); bl != nil {
			w.playerBullets = append(w.playerBullets, bl)
		}
	}
}

// advance moves every entity once. Saucers aim at target, the ship
// position from before this tick's movement.
func (w *World) advance(target core.Vec2) {
	w.ship.Advance(w.bounds)

	for _, bl := range w.playerBullets {
		bl.Advance(w.bounds)
	}
	for _, bl := range w.enemyBullets {
		bl.Advance(w.bounds)
	}
	for _, a := range w.asteroids {
		a.Advance(w.bounds)
	}
	for _, s := range w.saucers {
		if bl := s.MaybeShoot(target, w.now, w.rng); bl != nil {
			w.enemyBullets = append(w.enemyBullets, bl)
		}
		s.Advance(w.bounds, w.now, w.rng)
	}
	for i := range w.particles {
		w.particles[i].Advance()
	}
}

// sweep drops everything that died this tick.
func (w *World) sweep() {
	w.playerBullets = keepAlive(w.playerBullets)
	w.enemyBullets = keepAlive(w.enemyBullets)
	w.asteroids = keepAlive(w.asteroids)
	w.saucers = keepAlive(w.saucers)
	w.particles = keepAlive(w.particles)
}

func keepAlive[T interface{ Alive() bool }](xs []T) []T {
	out := xs[:0]
	for _, x := range xs {
		if x.Alive() {
			out = append(out, x)
		}
	}
	clear(xs[len(out):])
	return out
}

// Accessors for hosts and tests.

func (w *World) State() State                   { return w.state }
func (w *World) Score() int                     { return w.score }
func (w *World) Lives() int                     { return w.lives }
func (w *World) Wave() int                      { return w.wave }
func (w *World) Ticks() uint64                  { return w.ticks }
func (w *World) Bounds() core.Bounds            { return w.bounds }
func (w *World) Config() config.AsteroidsConfig { return w.cfg }
