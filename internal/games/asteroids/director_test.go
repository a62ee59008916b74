package asteroids

import (
	"testing"

	"github.com/vovakirdan/tui-asteroids/internal/config"
	"github.com/vovakirdan/tui-asteroids/internal/core"
)

func TestAttractPopulation(t *testing.T) {
	w := NewWorld(testBounds, &core.ManualClock{}, core.NewRandom(1))

	if w.State() != StateAttract {
		t.Errorf("State() = %v, expected attract", w.State())
	}
	if len(w.asteroids) != 20 {
		t.Errorf("len(asteroids) = %d, expected 20", len(w.asteroids))
	}
	if len(w.saucers) != 1 || w.saucers[0].Size != SaucerLarge {
		t.Errorf("saucers = %d, expected one large saucer", len(w.saucers))
	}
	if w.View().ShipVisible() {
		t.Error("ship should be hidden in attract mode")
	}
}

func TestStartSession(t *testing.T) {
	clock := &core.ManualClock{}
	w := NewWorld(testBounds, clock, newScripted())
	w.playerBullets = append(w.playerBullets, NewBullet(core.V(1, 1), core.Vec2{}, 0.5, PlayerBullet))
	clock.Set(5)

	step(w, core.ActionStart)

	if w.State() != StatePlaying {
		t.Fatalf("State() = %v, expected playing", w.State())
	}
	if w.Lives() != 3 || w.Score() != 0 || w.Wave() != 1 {
		t.Errorf("lives=%d score=%d wave=%d, expected 3/0/1", w.Lives(), w.Score(), w.Wave())
	}
	if len(w.asteroids) != 5 || countSize(w.asteroids, AsteroidLarge) != 5 {
		t.Errorf("asteroids = %d (large %d), expected 5 large", len(w.asteroids), countSize(w.asteroids, AsteroidLarge))
	}
	if len(w.saucers) != 0 {
		t.Errorf("len(saucers) = %d, expected 0", len(w.saucers))
	}
	if len(w.playerBullets) != 0 {
		t.Errorf("len(playerBullets) = %d, expected stale bullets cleared", len(w.playerBullets))
	}
	if w.waveSpawnAt != 15 {
		t.Errorf("waveSpawnAt = %v, expected 15", w.waveSpawnAt)
	}
}

func TestStartIgnoresFireOnSameFrame(t *testing.T) {
	w := NewWorld(testBounds, &core.ManualClock{}, newScripted())

	step(w, core.ActionStart, core.ActionFire)

	if w.State() != StatePlaying {
		t.Fatalf("State() = %v, expected playing", w.State())
	}
	if len(w.playerBullets) != 0 {
		t.Error("the frame that starts a game should not also fire")
	}

	step(w, core.ActionFire)
	if len(w.playerBullets) != 1 {
		t.Errorf("len(playerBullets) = %d, expected 1 on the next frame", len(w.playerBullets))
	}
}

func TestWaveClear(t *testing.T) {
	tests := []struct {
		wave      int
		expected  int
		asteroids int
	}{
		{1, 2, 6},
		{4, 5, 9},
	}

	for _, tc := range tests {
		w, _, _ := newPlayingWorld(t)
		w.wave = tc.wave
		w.enemyBullets = append(w.enemyBullets, NewBullet(core.V(5, 5), core.Vec2{}, 100, EnemyBullet))

		step(w)

		if w.Wave() != tc.expected {
			t.Errorf("wave %d: Wave() = %d, expected %d", tc.wave, w.Wave(), tc.expected)
		}
		if countSize(w.asteroids, AsteroidLarge) != tc.asteroids || len(w.asteroids) != tc.asteroids {
			t.Errorf("wave %d: asteroids = %d, expected %d large", tc.wave, len(w.asteroids), tc.asteroids)
		}
		if w.waveSpawnAt != 110 {
			t.Errorf("wave %d: waveSpawnAt = %v, expected 110", tc.wave, w.waveSpawnAt)
		}
		if len(w.enemyBullets) != 1 {
			t.Errorf("wave %d: bullets in flight should survive a wave change", tc.wave)
		}
	}
}

func TestSaucerSpawnRoll(t *testing.T) {
	tests := []struct {
		name     string
		roll     float64
		score    int
		expected int
		size     SaucerSize
	}{
		{"large", 0.9, 0, 1, SaucerLarge},
		{"small above threshold", 0.9, 10000, 1, SaucerSmall},
		{"losing roll", 0.5, 0, 0, SaucerLarge},
		{"boundary roll", 0.75, 0, 0, SaucerLarge},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			w, _, rng := newPlayingWorld(t)
			addAnchor(w)
			w.score = tc.score
			w.waveSpawnAt = 99
			rng.floats = []float64{tc.roll}

			step(w)

			if len(w.saucers) != tc.expected {
				t.Fatalf("len(saucers) = %d, expected %d", len(w.saucers), tc.expected)
			}
			if tc.expected == 1 && w.saucers[0].Size != tc.size {
				t.Errorf("saucer size = %v, expected %v", w.saucers[0].Size, tc.size)
			}
			if w.waveSpawnAt != 110 {
				t.Errorf("waveSpawnAt = %v, expected 110", w.waveSpawnAt)
			}
		})
	}
}

func TestSaucerSpawnTimerNotDue(t *testing.T) {
	w, _, rng := newPlayingWorld(t)
	addAnchor(w)
	w.waveSpawnAt = 100
	rng.floats = []float64{0.9}

	step(w)

	if len(w.saucers) != 0 || len(rng.floats) != 1 {
		t.Error("no roll should happen until the spawn deadline has passed")
	}
}

func TestDifficultyRaisesSaucerChance(t *testing.T) {
	w, _, rng := newPlayingWorld(t)
	addAnchor(w)
	w.difficulty = config.NewDifficultyManager(config.DifficultyConfig{
		Enabled:      true,
		InitialLevel: 1,
		Progression:  config.ProgressionConfig{Type: "none"},
		Scaling:      config.ScalingConfig{SaucerChance: 0.5},
	})
	w.waveSpawnAt = 99
	rng.floats = []float64{0.3}

	step(w)

	if len(w.saucers) != 1 {
		t.Errorf("len(saucers) = %d, expected a spawn at chance 0.75", len(w.saucers))
	}
}

func TestGameOverReturnsToAttract(t *testing.T) {
	w, _, _ := newPlayingWorld(t)
	addAnchor(w)
	w.state = StateGameOver

	step(w)
	if w.State() != StateGameOver {
		t.Fatalf("State() = %v, expected to stay in game over without input", w.State())
	}

	step(w, core.ActionStart)

	if w.State() != StateAttract {
		t.Errorf("State() = %v, expected attract", w.State())
	}
	if len(w.asteroids) != 20 || len(w.saucers) != 1 {
		t.Errorf("asteroids=%d saucers=%d, expected the attract field", len(w.asteroids), len(w.saucers))
	}

	step(w, core.ActionStart)
	if w.State() != StatePlaying || w.Lives() != 3 {
		t.Errorf("State()=%v Lives()=%d, expected a fresh game", w.State(), w.Lives())
	}
}

func TestInputIgnoredWhileRespawning(t *testing.T) {
	w, clock, _ := newPlayingWorld(t)
	addAnchor(w)
	w.ship.Respawn(100, w.bounds)

	step(w, core.ActionFire, core.ActionThrust, core.ActionLeft)
	if len(w.playerBullets) != 0 || w.ship.Vel != (core.Vec2{}) || w.ship.Rotation != 0 {
		t.Error("ship should not respond while respawning")
	}

	clock.Set(102)
	step(w, core.ActionFire)
	if len(w.playerBullets) != 1 {
		t.Errorf("len(playerBullets) = %d, expected 1 once the respawn window ends", len(w.playerBullets))
	}
}
