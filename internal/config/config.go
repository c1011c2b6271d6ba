// Package config provides YAML-based runner configuration loading and
// difficulty presets.
package config

import (
	"errors"
	"fmt"
)

// RunnerConfig contains all tunables of the lane runner simulation.
type RunnerConfig struct {
	Lanes   []float64     `yaml:"lanes"` // Lateral X offset of each lane, left to right
	Player  RunnerPlayer  `yaml:"player"`
	Physics RunnerPhysics `yaml:"physics"`
	World   RunnerWorld   `yaml:"world"`
	Spawn   RunnerSpawn   `yaml:"spawn"`
	Shapes  RunnerShapes  `yaml:"shapes"`
	Rules   RunnerRules   `yaml:"rules"`
	Timing  RunnerTiming  `yaml:"timing"`
}

// RunnerPlayer defines the player's body.
type RunnerPlayer struct {
	StartLane int        `yaml:"start_lane"`
	Z         float64    `yaml:"z"`
	Size      [3]float64 `yaml:"size"`
}

// RunnerPhysics defines jump and lane-change physics.
type RunnerPhysics struct {
	Gravity      float64 `yaml:"gravity"`       // units/s², negative is down
	JumpVelocity float64 `yaml:"jump_velocity"` // units/s, upward
	GroundY      float64 `yaml:"ground_y"`      // player center height when grounded
	LaneDamping  float64 `yaml:"lane_damping"`  // exponential rate toward the target lane, 1/s
}

// RunnerWorld defines scrolling speed and the Z layout of the track.
type RunnerWorld struct {
	BaseSpeed    float64 `yaml:"base_speed"`   // units/s at reset
	MaxSpeed     float64 `yaml:"max_speed"`    // units/s cap
	Acceleration float64 `yaml:"acceleration"` // units/s²
	SpawnZ       float64 `yaml:"spawn_z"`      // entities appear here
	DespawnZ     float64 `yaml:"despawn_z"`    // entities past this are culled
	GroundStartZ float64 `yaml:"ground_start_z"`
	GroundWrapZ  float64 `yaml:"ground_wrap_z"`
	RotationRate float64 `yaml:"rotation_rate"` // pickup spin, rad/s
}

// RunnerSpawn defines the distance-based spawn schedule and kind weights.
// A uniform [0,1) draw below HeartChance spawns a heart, below
// HeartChance+CoinChance a coin, otherwise an obstacle.
type RunnerSpawn struct {
	Distance    float64 `yaml:"distance"`
	CoinChance  float64 `yaml:"coin_chance"`
	HeartChance float64 `yaml:"heart_chance"`
}

// RunnerShape is the box and resting height of one entity kind.
type RunnerShape struct {
	Size   [3]float64 `yaml:"size"`
	Height float64    `yaml:"height"`
}

// RunnerShapes groups the shapes of every entity kind.
type RunnerShapes struct {
	Obstacle RunnerShape `yaml:"obstacle"`
	Coin     RunnerShape `yaml:"coin"`
	Heart    RunnerShape `yaml:"heart"`
}

// RunnerRules defines scoring and damage.
type RunnerRules struct {
	Lives               int     `yaml:"lives"`
	MaxLives            int     `yaml:"max_lives"`
	CoinReward          int     `yaml:"coin_reward"`
	InvulnerableSeconds float64 `yaml:"invulnerable_seconds"`
	BlinkPeriod         float64 `yaml:"blink_period"`
}

// RunnerTiming defines how raw frame deltas are turned into simulation steps.
type RunnerTiming struct {
	MaxStep       float64 `yaml:"max_step"`        // longest single integration step
	MaxFrameDelta float64 `yaml:"max_frame_delta"` // longer frames are treated as stalls; 0 disables
}

// Validate checks that the configuration describes a playable world.
func (c RunnerConfig) Validate() error {
	var errs []error

	if len(c.Lanes) == 0 {
		errs = append(errs, errors.New("lanes: at least one lane is required"))
	}
	for i := 1; i < len(c.Lanes); i++ {
		if c.Lanes[i] <= c.Lanes[i-1] {
			errs = append(errs, fmt.Errorf("lanes: offsets must increase left to right (index %d)", i))
			break
		}
	}
	if c.Player.StartLane < 0 || c.Player.StartLane >= len(c.Lanes) {
		errs = append(errs, fmt.Errorf("player.start_lane: %d out of range", c.Player.StartLane))
	}
	if c.Physics.Gravity >= 0 {
		errs = append(errs, errors.New("physics.gravity: must be negative"))
	}
	if c.Physics.JumpVelocity <= 0 {
		errs = append(errs, errors.New("physics.jump_velocity: must be positive"))
	}
	if c.Physics.LaneDamping <= 0 {
		errs = append(errs, errors.New("physics.lane_damping: must be positive"))
	}
	if c.World.BaseSpeed <= 0 || c.World.MaxSpeed < c.World.BaseSpeed {
		errs = append(errs, errors.New("world: need 0 < base_speed <= max_speed"))
	}
	if c.World.Acceleration < 0 {
		errs = append(errs, errors.New("world.acceleration: must not be negative"))
	}
	if c.World.DespawnZ <= c.World.SpawnZ {
		errs = append(errs, errors.New("world: despawn_z must be greater than spawn_z"))
	}
	if c.World.GroundWrapZ <= c.World.GroundStartZ {
		errs = append(errs, errors.New("world: ground_wrap_z must be greater than ground_start_z"))
	}
	if c.Spawn.Distance <= 0 {
		errs = append(errs, errors.New("spawn.distance: must be positive"))
	}
	if c.Spawn.CoinChance < 0 || c.Spawn.HeartChance < 0 || c.Spawn.CoinChance+c.Spawn.HeartChance >= 1 {
		errs = append(errs, errors.New("spawn: chances must be non-negative and leave room for obstacles"))
	}
	if c.Rules.Lives <= 0 || c.Rules.MaxLives < c.Rules.Lives {
		errs = append(errs, errors.New("rules: need 0 < lives <= max_lives"))
	}
	if c.Rules.CoinReward < 0 {
		errs = append(errs, errors.New("rules.coin_reward: must not be negative"))
	}
	if c.Rules.InvulnerableSeconds < 0 || c.Rules.BlinkPeriod <= 0 {
		errs = append(errs, errors.New("rules: invulnerable_seconds >= 0 and blink_period > 0 required"))
	}
	if c.Timing.MaxStep <= 0 {
		errs = append(errs, errors.New("timing.max_step: must be positive"))
	}
	if c.Timing.MaxFrameDelta < 0 {
		errs = append(errs, errors.New("timing.max_frame_delta: must not be negative"))
	}

	if len(errs) > 0 {
		return fmt.Errorf("config: invalid runner config: %w", errors.Join(errs...))
	}
	return nil
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset converts a flag value into a preset. Empty means "use the config as is".
func ParsePreset(s string) (DifficultyPreset, error) {
	switch p := DifficultyPreset(s); p {
	case "", DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return p, nil
	default:
		return "", fmt.Errorf("config: unknown difficulty %q (want easy, normal, hard or fixed)", s)
	}
}

// InitialLevelForPreset returns the starting difficulty level (0.0 to 1.0) for a preset.
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

// IsFixedPreset returns true if the preset disables progression.
func IsFixedPreset(preset DifficultyPreset) bool {
	return preset == DifficultyFixed
}
