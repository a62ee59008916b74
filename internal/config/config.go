// Package config provides YAML-based game configuration loading and
// difficulty management for the asteroids platform.
package config

import (
	"errors"
	"fmt"
)

// AsteroidsConfig contains all tunable parameters of the simulation.
// Sizes and speeds marked "factor" are multiplied by the shorter world edge.
type AsteroidsConfig struct {
	World      AsteroidsWorld   `yaml:"world"`
	Ship       AsteroidsShip    `yaml:"ship"`
	Saucers    AsteroidsSaucers `yaml:"saucers"`
	Scoring    AsteroidsScoring `yaml:"scoring"`
	Rules      AsteroidsRules   `yaml:"rules"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// AsteroidsWorld defines field population and the cell-to-world mapping.
type AsteroidsWorld struct {
	AttractAsteroids  int     `yaml:"attract_asteroids"`
	WaveBaseAsteroids int     `yaml:"wave_base_asteroids"` // wave N spawns N + base Large asteroids
	WaveSpawnInterval float64 `yaml:"wave_spawn_interval"` // seconds between saucer rolls
	CellWidth         float64 `yaml:"cell_width"`          // world units per terminal column
	CellHeight        float64 `yaml:"cell_height"`         // world units per terminal row
}

// AsteroidsShip defines the player ship.
type AsteroidsShip struct {
	SteerRate          float64 `yaml:"steer_rate"` // radians per tick
	Drag               float64 `yaml:"drag"`
	ThrustFactor       float64 `yaml:"thrust_factor"`
	MaxSpeedFactor     float64 `yaml:"max_speed_factor"`
	RadiusFactor       float64 `yaml:"radius_factor"`
	ShotSpeedFactor    float64 `yaml:"shot_speed_factor"`
	ShotRecharge       float64 `yaml:"shot_recharge"`
	ShotLifespan       float64 `yaml:"shot_lifespan"`
	HyperspaceRecharge float64 `yaml:"hyperspace_recharge"`
	RespawnSeconds     float64 `yaml:"respawn_seconds"`
	ShieldSeconds      float64 `yaml:"shield_seconds"`
}

// AsteroidsSaucers defines enemy saucer behaviour.
type AsteroidsSaucers struct {
	SpawnChance         float64 `yaml:"spawn_chance"`
	SmallScoreThreshold int     `yaml:"small_score_threshold"` // at or above, spawn Small saucers
	TurnPeriod          float64 `yaml:"turn_period"`
	TurnChance          float64 `yaml:"turn_chance"`
	TurnDegrees         float64 `yaml:"turn_degrees"`
	ShootPeriod         float64 `yaml:"shoot_period"`
	ShootChance         float64 `yaml:"shoot_chance"`
	BulletSpeed         float64 `yaml:"bullet_speed"`
	BulletLifespan      float64 `yaml:"bullet_lifespan"`
}

// AsteroidsScoring defines lives and the score tables.
type AsteroidsScoring struct {
	Lives          int `yaml:"lives"`
	BonusLifeEvery int `yaml:"bonus_life_every"`
	AsteroidSmall  int `yaml:"asteroid_small"`
	AsteroidMedium int `yaml:"asteroid_medium"`
	AsteroidLarge  int `yaml:"asteroid_large"`
	SaucerSmall    int `yaml:"saucer_small"`
	SaucerLarge    int `yaml:"saucer_large"`
}

// AsteroidsRules selects between collision pass semantics.
type AsteroidsRules struct {
	// LegacyReevaluation keeps destroyed entities in play for the rest of the
	// collision pass, so one asteroid may be scored by several bullets.
	LegacyReevaluation bool `yaml:"legacy_reevaluation"`
}

// Validate reports the first out-of-range value.
func (c AsteroidsConfig) Validate() error {
	var errs []error
	if c.World.CellWidth <= 0 || c.World.CellHeight <= 0 {
		errs = append(errs, fmt.Errorf("world: cell size must be positive, got %vx%v", c.World.CellWidth, c.World.CellHeight))
	}
	if c.World.WaveSpawnInterval <= 0 {
		errs = append(errs, fmt.Errorf("world: wave_spawn_interval must be positive, got %v", c.World.WaveSpawnInterval))
	}
	if c.Ship.Drag <= 0 || c.Ship.Drag > 1 {
		errs = append(errs, fmt.Errorf("ship: drag must be in (0, 1], got %v", c.Ship.Drag))
	}
	if c.Ship.ShotLifespan <= 0 {
		errs = append(errs, fmt.Errorf("ship: shot_lifespan must be positive, got %v", c.Ship.ShotLifespan))
	}
	if c.Saucers.SpawnChance < 0 || c.Saucers.SpawnChance > 1 {
		errs = append(errs, fmt.Errorf("saucers: spawn_chance must be in [0, 1], got %v", c.Saucers.SpawnChance))
	}
	if c.Scoring.Lives < 0 {
		errs = append(errs, fmt.Errorf("scoring: lives must not be negative, got %d", c.Scoring.Lives))
	}
	if c.Scoring.BonusLifeEvery <= 0 {
		errs = append(errs, fmt.Errorf("scoring: bonus_life_every must be positive, got %d", c.Scoring.BonusLifeEvery))
	}
	return errors.Join(errs...)
}

// DifficultyConfig defines the difficulty progression system.
type DifficultyConfig struct {
	Enabled      bool              `yaml:"enabled"`
	InitialLevel float64           `yaml:"initial_level"` // 0.0 = easy, 1.0 = hard
	Progression  ProgressionConfig `yaml:"progression"`
	Scaling      ScalingConfig     `yaml:"scaling"`
}

// ProgressionConfig defines how difficulty increases over a session.
type ProgressionConfig struct {
	Type  string `yaml:"type"`   // "score", "wave", or "none"
	MaxAt int    `yaml:"max_at"` // Score/wave at which max difficulty is reached
}

// ScalingConfig defines the magnitude of difficulty changes.
type ScalingConfig struct {
	SaucerChance float64 `yaml:"saucer_chance"` // Added to spawn_chance at max difficulty
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset maps a flag value to a preset. Unknown values are an error.
func ParsePreset(s string) (DifficultyPreset, error) {
	switch p := DifficultyPreset(s); p {
	case "":
		return "", nil
	case DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return p, nil
	default:
		return "", fmt.Errorf("config: unknown difficulty %q (want easy, normal, hard or fixed)", s)
	}
}

// InitialLevelForPreset returns the initial_level for a difficulty preset.
func InitialLevelForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyEasy:
		return 0.0
	case DifficultyNormal:
		return 0.3
	case DifficultyHard:
		return 0.7
	default:
		return 0.0
	}
}

// ApplyAsteroidsPreset modifies the config based on a difficulty preset.
// The fixed preset leaves the file values untouched and turns progression off.
func ApplyAsteroidsPreset(cfg *AsteroidsConfig, preset DifficultyPreset) {
	if preset == DifficultyFixed {
		cfg.Difficulty.Enabled = false
		return
	}
	cfg.Difficulty.Enabled = true
	cfg.Difficulty.InitialLevel = InitialLevelForPreset(preset)

	switch preset {
	case DifficultyEasy:
		cfg.Scoring.Lives = 5
		cfg.Saucers.SpawnChance = 0.15
	case DifficultyHard:
		cfg.Scoring.Lives = 2
		cfg.Saucers.SpawnChance = 0.35
	}
}
