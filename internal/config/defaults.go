package config

import (
	_ "embed"
)

//go:embed defaults/asteroids.yaml
var defaultAsteroidsYAML []byte

// DefaultAsteroidsConfig returns the built-in configuration. It matches
// defaults/asteroids.yaml and is used when the embedded file cannot be parsed.
func DefaultAsteroidsConfig() AsteroidsConfig {
	return AsteroidsConfig{
		World: AsteroidsWorld{
			AttractAsteroids:  20,
			WaveBaseAsteroids: 4,
			WaveSpawnInterval: 10,
			CellWidth:         8,
			CellHeight:        16,
		},
		Ship: AsteroidsShip{
			SteerRate:          0.1,
			Drag:               0.99,
			ThrustFactor:       0.0003,
			MaxSpeedFactor:     0.005,
			RadiusFactor:       0.0125,
			ShotSpeedFactor:    0.01,
			ShotRecharge:       0.2,
			ShotLifespan:       0.5,
			HyperspaceRecharge: 5,
			RespawnSeconds:     2,
			ShieldSeconds:      2,
		},
		Saucers: AsteroidsSaucers{
			SpawnChance:         0.25,
			SmallScoreThreshold: 10000,
			TurnPeriod:          1,
			TurnChance:          0.5,
			TurnDegrees:         10,
			ShootPeriod:         1,
			ShootChance:         0.5,
			BulletSpeed:         2,
			BulletLifespan:      100,
		},
		Scoring: AsteroidsScoring{
			Lives:          3,
			BonusLifeEvery: 10000,
			AsteroidSmall:  100,
			AsteroidMedium: 50,
			AsteroidLarge:  20,
			SaucerSmall:    1000,
			SaucerLarge:    200,
		},
		Difficulty: DifficultyConfig{
			Enabled:      false,
			InitialLevel: 0.0,
			Progression: ProgressionConfig{
				Type:  "wave",
				MaxAt: 10,
			},
			Scaling: ScalingConfig{
				SaucerChance: 0.25,
			},
		},
	}
}

// GetDefaultYAML returns the embedded default YAML for a game.
func GetDefaultYAML(gameID string) []byte {
	switch gameID {
	case "asteroids", "asteroids_legacy":
		return defaultAsteroidsYAML
	default:
		return nil
	}
}
