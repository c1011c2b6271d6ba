package runner

import (
	"math/rand"

	"github.com/vovakirdan/lane-runner/internal/config"
)

// SpawnPolicy picks the kind of a new entity from a uniform [0,1) draw.
type SpawnPolicy struct {
	CoinChance  float64
	HeartChance float64
}

// Kind maps a draw r in [0,1) to an entity kind. Hearts take the lowest
// band, coins the next, obstacles the rest.
func (p SpawnPolicy) Kind(r float64) Kind {
	switch {
	case r < p.HeartChance:
		return KindHeart
	case r < p.HeartChance+p.CoinChance:
		return KindCoin
	default:
		return KindObstacle
	}
}

// World advances speed, the spawn schedule, the entities and the looping ground.
type World struct {
	reg    *Registry
	rng    *rand.Rand
	policy SpawnPolicy

	baseSpeed     float64
	maxSpeed      float64
	accel         float64
	spawnDistance float64
	despawnZ      float64
	groundStart   float64
	groundWrap    float64

	speed     float64
	distance  float64 // travelled since the last spawn
	travelled float64 // total this run
	groundZ   float64
	spawned   int
}

// NewWorld creates a world spawning into reg with draws from rng.
func NewWorld(cfg config.RunnerConfig, reg *Registry, rng *rand.Rand) *World {
	w := &World{
		reg: reg,
		rng: rng,
		policy: SpawnPolicy{
			CoinChance:  cfg.Spawn.CoinChance,
			HeartChance: cfg.Spawn.HeartChance,
		},
		baseSpeed:     cfg.World.BaseSpeed,
		maxSpeed:      cfg.World.MaxSpeed,
		accel:         cfg.World.Acceleration,
		spawnDistance: cfg.Spawn.Distance,
		despawnZ:      cfg.World.DespawnZ,
		groundStart:   cfg.World.GroundStartZ,
		groundWrap:    cfg.World.GroundWrapZ,
	}
	w.Reset()
	return w
}

// Reset restores base speed and zeroes the distance counters. It does not
// touch the registry.
func (w *World) Reset() {
	w.speed = w.baseSpeed
	w.distance = 0
	w.travelled = 0
	w.groundZ = w.groundStart
	w.spawned = 0
}

// accrualEpsilon absorbs float drift when a sum of frame distances should land
// exactly on a threshold, e.g. 144 frames of 1/144 s.
const accrualEpsilon = 1e-9

// Tick advances the world by dt seconds.
//
// The spawn accumulator keeps the remainder past each threshold, so the number
// of spawns over a stretch of constant speed depends only on the distance
// covered, not on how the time was split into frames.
func (w *World) Tick(dt float64) {
	w.speed = min(w.maxSpeed, w.speed+dt*w.accel)

	dz := w.speed * dt
	w.distance += dz
	w.travelled += dz
	for w.distance >= w.spawnDistance-accrualEpsilon {
		w.distance = max(0, w.distance-w.spawnDistance)
		w.spawn()
	}

	w.reg.AdvanceAll(dz, dt)
	w.reg.RemoveDespawned(w.despawnZ)

	w.groundZ += dz
	if w.groundZ > w.groundWrap {
		w.groundZ = w.groundStart
	}
}

func (w *World) spawn() {
	kind := w.policy.Kind(w.rng.Float64())
	lane := w.rng.Intn(w.reg.LaneCount())
	w.reg.Spawn(kind, lane)
	w.spawned++
}

// Speed returns the current scroll speed in units per second.
func (w *World) Speed() float64 { return w.speed }

// Distance returns the distance accumulated toward the next spawn.
func (w *World) Distance() float64 { return w.distance }

// Travelled returns the total distance covered this run.
func (w *World) Travelled() float64 { return w.travelled }

// GroundZ returns the Z offset of the looping ground segment.
func (w *World) GroundZ() float64 { return w.groundZ }

// Spawned returns the number of entities spawned this run.
func (w *World) Spawned() int { return w.spawned }
