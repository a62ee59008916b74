package asteroids

import (
	"fmt"
	"slices"

	"github.com/vovakirdan/tui-asteroids/internal/core"
)

// Mode banners.
const (
	BannerTitle    = "Asteroids"
	BannerPrompt   = "Press [SPACE] to Start"
	BannerGameOver = "Game Over"
)

// ShipView is the drawable state of the ship.
type ShipView struct {
	Pos        core.Vec2
	Rotation   float64
	Radius     float64
	Outline    [4]core.Vec2
	Respawning bool
	Shielded   bool
}

// BodyView is the drawable state of an asteroid or saucer. Outline holds
// offsets from Pos before rotation.
type BodyView struct {
	Pos      core.Vec2
	Rotation float64
	Radius   float64
	Outline  []core.Vec2
}

// View is a read-only copy of the world after a tick. It shares nothing
// mutable with the World and may be handed to another goroutine.
type View struct {
	Bounds core.Bounds
	Now    float64
	State  State
	Score  int
	Lives  int
	Wave   int

	Ship          ShipView
	Asteroids     []BodyView
	Saucers       []BodyView
	PlayerBullets []core.Vec2
	EnemyBullets  []core.Vec2
	Particles     []Particle
}

// View returns a copy of the current world for drawing.
func (w *World) View() View {
	v := View{
		Bounds: w.bounds,
		Now:    w.now,
		State:  w.state,
		Score:  w.score,
		Lives:  w.lives,
		Wave:   w.wave,
		Ship: ShipView{
			Pos:        w.ship.Pos,
			Rotation:   w.ship.Rotation,
			Radius:     w.ship.Radius(),
			Outline:    w.ship.Outline,
			Respawning: w.ship.Respawning(w.now),
			Shielded:   w.ship.ShieldActive(w.now),
		},
		Asteroids:     make([]BodyView, len(w.asteroids)),
		Saucers:       make([]BodyView, len(w.saucers)),
		PlayerBullets: make([]core.Vec2, len(w.playerBullets)),
		EnemyBullets:  make([]core.Vec2, len(w.enemyBullets)),
		Particles:     slices.Clone(w.particles),
	}
	for i, a := range w.asteroids {
		v.Asteroids[i] = BodyView{Pos: a.Pos, Rotation: a.Rotation, Radius: a.Radius(), Outline: slices.Clone(a.Outline)}
	}
	for i, s := range w.saucers {
		v.Saucers[i] = BodyView{Pos: s.Pos, Radius: s.Radius(), Outline: slices.Clone(s.Outline)}
	}
	for i, bl := range w.playerBullets {
		v.PlayerBullets[i] = bl.Pos
	}
	for i, bl := range w.enemyBullets {
		v.EnemyBullets[i] = bl.Pos
	}
	return v
}

// ShipVisible reports whether the ship should be drawn.
func (v View) ShipVisible() bool {
	return v.State == StatePlaying && !v.Ship.Respawning
}

// HUD returns the score, lives and wave lines.
func (v View) HUD() []string {
	return []string{
		fmt.Sprintf("Score: %d", v.Score),
		fmt.Sprintf("Lives: %d", v.Lives),
		fmt.Sprintf("Wave: %d", v.Wave),
	}
}

// Banners returns the centred messages for the current state.
func (v View) Banners() []string {
	switch v.State {
	case StateAttract:
		return []string{BannerTitle, BannerPrompt}
	case StateGameOver:
		return []string{BannerGameOver}
	default:
		return nil
	}
}
