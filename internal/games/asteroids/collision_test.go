package asteroids

import (
	"testing"

	"github.com/vovakirdan/tui-asteroids/internal/config"
	"github.com/vovakirdan/tui-asteroids/internal/core"
)

func TestCollidingAcrossSeam(t *testing.T) {
	b := core.Bounds{W: 100, H: 100}
	rng := newScripted()
	a := NewAsteroidAt(AsteroidSmall, core.V(1, 50), 100, rng)
	bl := NewBullet(core.V(99, 50), core.Vec2{}, 0.5, PlayerBullet)

	// radii 2.5 + 2 against a wrapped distance of 2
	if !Colliding(a, bl, b, 0) {
		t.Error("bodies touching across the right edge should collide")
	}
	if !Colliding(bl, a, b, 0) {
		t.Error("Colliding() should be symmetric")
	}

	bl.Pos = core.V(50, 50)
	if Colliding(a, bl, b, 0) {
		t.Error("distant bodies should not collide")
	}
}

func TestShipInvulnerabilityWindow(t *testing.T) {
	s := NewShip(testBounds, config.DefaultAsteroidsConfig().Ship)
	a := NewAsteroidAt(AsteroidLarge, s.Pos, 600, newScripted())

	s.Respawn(10, testBounds)

	tests := []struct {
		name     string
		now      float64
		expected bool
	}{
		{"respawn start", 10, false},
		{"respawning", 11.99, false},
		{"shield", 12, false},
		{"shield end", 13.99, false},
		{"exposed", 14, true},
		{"later", 20, true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := Colliding(s, a, testBounds, tc.now); got != tc.expected {
				t.Errorf("Colliding(ship, asteroid, now=%v) = %v, expected %v", tc.now, got, tc.expected)
			}
		})
	}
}

func TestAsteroidSplit(t *testing.T) {
	w, _, _ := newPlayingWorld(t)
	w.rng = core.NewRandom(42)
	shield(w)

	pos := core.V(600, 150)
	addRock(w, AsteroidLarge, pos)
	addBullet(w, PlayerBullet, pos)

	step(w)

	if len(w.asteroids) != 2 {
		t.Fatalf("len(asteroids) = %d, expected 2", len(w.asteroids))
	}
	for i, a := range w.asteroids {
		if a.Size != AsteroidMedium {
			t.Errorf("fragment %d size = %v, expected medium", i, a.Size)
		}
		if a.Pos != pos {
			t.Errorf("fragment %d Pos = %v, expected parent position %v", i, a.Pos, pos)
		}
	}
	if w.asteroids[0].Vel == w.asteroids[1].Vel {
		t.Error("fragments should fly apart on different headings")
	}
	if w.score != 20 {
		t.Errorf("score = %d, expected 20", w.score)
	}
	if len(w.playerBullets) != 0 {
		t.Errorf("len(playerBullets) = %d, expected the bullet to be spent", len(w.playerBullets))
	}
	if len(w.particles) != 40 {
		t.Errorf("len(particles) = %d, expected 40", len(w.particles))
	}
}

func TestAsteroidScores(t *testing.T) {
	tests := []struct {
		size      AsteroidSize
		score     int
		fragments int
		particles int
	}{
		{AsteroidLarge, 20, 2, 40},
		{AsteroidMedium, 50, 2, 25},
		{AsteroidSmall, 100, 0, 10},
	}

	for _, tc := range tests {
		t.Run(tc.size.String(), func(t *testing.T) {
			w, _, _ := newPlayingWorld(t)
			shield(w)
			addAnchor(w)
			addRock(w, tc.size, core.V(600, 150))
			addBullet(w, PlayerBullet, core.V(600, 150))

			step(w)

			if w.score != tc.score {
				t.Errorf("score = %d, expected %d", w.score, tc.score)
			}
			if got := len(w.asteroids) - 1; got != tc.fragments {
				t.Errorf("fragments = %d, expected %d", got, tc.fragments)
			}
			if len(w.particles) != tc.particles {
				t.Errorf("len(particles) = %d, expected %d", len(w.particles), tc.particles)
			}
			if w.wave != 1 {
				t.Errorf("wave = %d, expected 1 while the anchor survives", w.wave)
			}
		})
	}
}

func TestEnemyBulletBreaksAsteroid(t *testing.T) {
	w, _, _ := newPlayingWorld(t)
	shield(w)
	addAnchor(w)
	addRock(w, AsteroidMedium, core.V(600, 150))
	addBullet(w, EnemyBullet, core.V(600, 150))

	step(w)

	if w.score != 50 {
		t.Errorf("score = %d, expected enemy hits to score 50", w.score)
	}
	if len(w.enemyBullets) != 0 {
		t.Errorf("len(enemyBullets) = %d, expected 0", len(w.enemyBullets))
	}
	if countSize(w.asteroids, AsteroidSmall) != 3 {
		t.Errorf("small asteroids = %d, expected 2 fragments plus the anchor", countSize(w.asteroids, AsteroidSmall))
	}
}

func TestSaucerHitsAsteroid(t *testing.T) {
	w, _, _ := newPlayingWorld(t)
	shield(w)
	addAnchor(w)
	addSaucer(w, SaucerLarge, core.V(600, 150))
	addRock(w, AsteroidLarge, core.V(600, 150))

	step(w)

	if w.score != 200 {
		t.Errorf("score = %d, expected 200", w.score)
	}
	if len(w.saucers) != 0 {
		t.Errorf("len(saucers) = %d, expected 0", len(w.saucers))
	}
	if len(w.asteroids) != 1 {
		t.Errorf("len(asteroids) = %d, expected only the anchor (no fragments)", len(w.asteroids))
	}
	if len(w.particles) != 450 {
		t.Errorf("len(particles) = %d, expected 450", len(w.particles))
	}
}

func TestPlayerBulletHitsSaucer(t *testing.T) {
	tests := []struct {
		size  SaucerSize
		score int
	}{
		{SaucerLarge, 200},
		{SaucerSmall, 1000},
	}

	for _, tc := range tests {
		t.Run(tc.size.String(), func(t *testing.T) {
			w, _, _ := newPlayingWorld(t)
			shield(w)
			addAnchor(w)
			addSaucer(w, tc.size, core.V(600, 150))
			addBullet(w, PlayerBullet, core.V(600, 150))

			step(w)

			if w.score != tc.score {
				t.Errorf("score = %d, expected %d", w.score, tc.score)
			}
			if len(w.saucers) != 0 || len(w.playerBullets) != 0 {
				t.Errorf("saucers=%d bullets=%d, expected both destroyed", len(w.saucers), len(w.playerBullets))
			}
		})
	}
}

func TestEnemyBulletIgnoresSaucer(t *testing.T) {
	w, _, _ := newPlayingWorld(t)
	shield(w)
	addSaucer(w, SaucerLarge, core.V(600, 150))
	addBullet(w, EnemyBullet, core.V(600, 150))

	step(w)

	if len(w.saucers) != 1 || len(w.enemyBullets) != 1 || w.score != 0 {
		t.Errorf("saucers=%d enemy=%d score=%d, expected no interaction", len(w.saucers), len(w.enemyBullets), w.score)
	}
}

func TestShipHitByAsteroid(t *testing.T) {
	w, _, _ := newPlayingWorld(t)
	rock := addRock(w, AsteroidLarge, w.ship.Pos.Add(core.V(20, 0)))
	w.ship.Vel = core.V(1, 1)

	step(w)

	if w.lives != 2 {
		t.Errorf("lives = %d, expected 2", w.lives)
	}
	if w.state != StatePlaying {
		t.Errorf("state = %v, expected playing", w.state)
	}
	if w.ship.Pos != testBounds.Center() || w.ship.Vel != (core.Vec2{}) {
		t.Errorf("ship at %v vel %v, expected respawn at centre", w.ship.Pos, w.ship.Vel)
	}
	if !w.ship.Respawning(w.now) {
		t.Error("ship should be respawning after a hit")
	}
	if !rock.Alive() || w.score != 0 {
		t.Error("ramming an asteroid should neither break nor score it")
	}
	if len(w.particles) != 150 {
		t.Errorf("len(particles) = %d, expected 150", len(w.particles))
	}
}

func TestShipHitBySaucer(t *testing.T) {
	w, _, _ := newPlayingWorld(t)
	addAnchor(w)
	addSaucer(w, SaucerSmall, w.ship.Pos)

	step(w)

	if w.score != 1000 {
		t.Errorf("score = %d, expected 1000", w.score)
	}
	if w.lives != 2 {
		t.Errorf("lives = %d, expected 2", w.lives)
	}
	if len(w.saucers) != 0 {
		t.Errorf("len(saucers) = %d, expected 0", len(w.saucers))
	}
}

func TestEnemyBulletRespectsShield(t *testing.T) {
	tests := []struct {
		name          string
		shielded      bool
		expectedLives int
		bulletAlive   bool
	}{
		{"exposed", false, 2, false},
		{"shielded", true, 3, true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			w, _, _ := newPlayingWorld(t)
			addAnchor(w)
			if tc.shielded {
				w.ship.Respawn(99, w.bounds)
				w.ship.RespawnUntil = 99.5
			}
			addBullet(w, EnemyBullet, w.ship.Pos)

			step(w)

			if w.lives != tc.expectedLives {
				t.Errorf("lives = %d, expected %d", w.lives, tc.expectedLives)
			}
			if got := len(w.enemyBullets) == 1; got != tc.bulletAlive {
				t.Errorf("bullet alive = %v, expected %v", got, tc.bulletAlive)
			}
		})
	}
}

func TestGameOverBoundary(t *testing.T) {
	w, _, _ := newPlayingWorld(t)
	w.lives = 0
	addRock(w, AsteroidLarge, w.ship.Pos)

	step(w)

	if w.state != StateGameOver {
		t.Errorf("state = %v, expected game over", w.state)
	}
	if w.lives != 0 {
		t.Errorf("lives = %d, expected 0", w.lives)
	}

	// Collisions stop once the game is over.
	score := w.score
	addBullet(w, PlayerBullet, w.asteroids[0].Pos)
	step(w)
	if w.score != score || len(w.asteroids) != 1 {
		t.Error("collisions should not resolve after game over")
	}
}

func TestBonusLife(t *testing.T) {
	tests := []struct {
		name          string
		before        int
		award         int
		expectedScore int
		expectedLives int
	}{
		{"crosses once", 9999, 51, 10050, 4},
		{"stays below", 9000, 100, 9100, 3},
		{"lands on boundary", 9900, 100, 10000, 4},
		{"crosses twice", 9999, 20001, 30000, 4},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			w, _, _ := newPlayingWorld(t)
			shield(w)
			addAnchor(w)
			w.score = tc.before
			w.cfg.Scoring.AsteroidSmall = tc.award
			addRock(w, AsteroidSmall, core.V(600, 150))
			addBullet(w, PlayerBullet, core.V(600, 150))

			step(w)

			if w.score != tc.expectedScore {
				t.Errorf("score = %d, expected %d", w.score, tc.expectedScore)
			}
			if w.lives != tc.expectedLives {
				t.Errorf("lives = %d, expected %d", w.lives, tc.expectedLives)
			}
		})
	}
}

func TestReevaluationModes(t *testing.T) {
	tests := []struct {
		name            string
		opts            []Option
		expectedScore   int
		expectedRocks   int
		expectedBullets int
	}{
		{"gated", nil, 20, 2, 1},
		{"legacy", []Option{legacyOption()}, 40, 4, 0},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			w, _, _ := newPlayingWorld(t, tc.opts...)
			shield(w)
			addRock(w, AsteroidLarge, core.V(600, 150))
			addBullet(w, PlayerBullet, core.V(600, 150))
			addBullet(w, PlayerBullet, core.V(600, 150))

			step(w)

			if w.score != tc.expectedScore {
				t.Errorf("score = %d, expected %d", w.score, tc.expectedScore)
			}
			if len(w.asteroids) != tc.expectedRocks {
				t.Errorf("len(asteroids) = %d, expected %d", len(w.asteroids), tc.expectedRocks)
			}
			if len(w.playerBullets) != tc.expectedBullets {
				t.Errorf("len(playerBullets) = %d, expected %d", len(w.playerBullets), tc.expectedBullets)
			}
		})
	}
}

func TestShipHitsAfterGameOverModes(t *testing.T) {
	tests := []struct {
		name              string
		opts              []Option
		expectedParticles int
	}{
		{"gated", nil, 150},
		{"legacy", []Option{legacyOption()}, 300},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			w, _, _ := newPlayingWorld(t, tc.opts...)
			w.lives = 0
			addRock(w, AsteroidLarge, w.ship.Pos)
			addRock(w, AsteroidLarge, w.ship.Pos)

			step(w)

			if w.state != StateGameOver || w.lives != 0 {
				t.Errorf("state=%v lives=%d, expected game over with 0 lives", w.state, w.lives)
			}
			if len(w.particles) != tc.expectedParticles {
				t.Errorf("len(particles) = %d, expected %d", len(w.particles), tc.expectedParticles)
			}
		})
	}
}

func TestCollisionsInertInAttract(t *testing.T) {
	w := NewWorld(testBounds, &core.ManualClock{}, newScripted())
	a := w.asteroids[0]
	a.Vel = core.Vec2{}
	bl := addBullet(w, PlayerBullet, a.Pos)

	step(w)

	if !a.Alive() || w.score != 0 {
		t.Error("asteroids should not break outside a game")
	}
	if !bl.Alive() {
		t.Error("bullets should not be spent outside a game")
	}
}
