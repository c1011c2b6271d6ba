package config

import (
	_ "embed"
)

//go:embed defaults/runner.yaml
var defaultRunnerYAML []byte

// DefaultRunnerConfig returns the built-in runner configuration.
// It mirrors defaults/runner.yaml and is used when the embedded file cannot be parsed.
func DefaultRunnerConfig() RunnerConfig {
	return RunnerConfig{
		Lanes: []float64{-2, 0, 2},
		Player: RunnerPlayer{
			StartLane: 1,
			Z:         0,
			Size:      [3]float64{0.9, 0.9, 0.9},
		},
		Physics: RunnerPhysics{
			Gravity:      -20,
			JumpVelocity: 9.5,
			GroundY:      0.45,
			LaneDamping:  12,
		},
		World: RunnerWorld{
			BaseSpeed:    10,
			MaxSpeed:     50,
			Acceleration: 0.25,
			SpawnZ:       -35,
			DespawnZ:     10,
			GroundStartZ: -20,
			GroundWrapZ:  0,
			RotationRate: 3,
		},
		Spawn: RunnerSpawn{
			Distance:    15,
			CoinChance:  0.25,
			HeartChance: 0.03,
		},
		Shapes: RunnerShapes{
			Obstacle: RunnerShape{Size: [3]float64{0.9, 0.9, 0.9}, Height: 0.45},
			Coin:     RunnerShape{Size: [3]float64{0.6, 0.6, 0.05}, Height: 0.5},
			Heart:    RunnerShape{Size: [3]float64{0.4, 0.4, 0.4}, Height: 0.5},
		},
		Rules: RunnerRules{
			Lives:               3,
			MaxLives:            3,
			CoinReward:          50,
			InvulnerableSeconds: 1.5,
			BlinkPeriod:         0.1,
		},
		Timing: RunnerTiming{
			MaxStep:       1.0 / 30,
			MaxFrameDelta: 1.0,
		},
	}
}

// DefaultYAML returns the embedded default YAML printed by `runner config`.
func DefaultYAML() []byte {
	return defaultRunnerYAML
}
