// Package runner implements the simulation core of a three-lane endless runner:
// player physics, distance-driven spawning, collision detection and resolution,
// and the session state machine that ties them together.
//
// The package draws nothing and performs no IO of its own. Rendering, sound,
// bounding volumes and best-score persistence are collaborators supplied by the
// caller; see collaborators.go.
package runner

import (
	"fmt"

	"github.com/vovakirdan/lane-runner/internal/config"
	"github.com/vovakirdan/lane-runner/internal/core"
)

// Kind is the closed set of entity kinds living on the track.
type Kind uint8

const (
	KindObstacle Kind = iota
	KindCoin
	KindHeart

	kindCount
)

// Valid reports whether k is one of the defined kinds.
func (k Kind) Valid() bool {
	return k < kindCount
}

// IsPickup reports whether the kind is collected rather than avoided.
func (k Kind) IsPickup() bool {
	return k == KindCoin || k == KindHeart
}

func (k Kind) String() string {
	switch k {
	case KindObstacle:
		return "obstacle"
	case KindCoin:
		return "coin"
	case KindHeart:
		return "heart"
	default:
		return fmt.Sprintf("Kind(%d)", uint8(k))
	}
}

// EntityID identifies an entity for the lifetime of a Registry.
// IDs are never reused, even across Clear.
type EntityID uint64

// Entity is the simulation record of one obstacle or pickup.
type Entity struct {
	ID        EntityID
	Kind      Kind
	Lane      int
	Position  core.Vec3
	RotationY float64
}

// Registry owns the live entities in spawn order.
// Every removal is reported to the renderer.
type Registry struct {
	lanes        []float64
	heights      [kindCount]float64
	spawnZ       float64
	rotationRate float64

	entities []Entity
	nextID   EntityID
	renderer Renderer
}

// NewRegistry creates an empty registry laid out by cfg.
func NewRegistry(cfg config.RunnerConfig, renderer Renderer) *Registry {
	if renderer == nil {
		renderer = NopRenderer{}
	}
	return &Registry{
		lanes: append([]float64(nil), cfg.Lanes...),
		heights: [kindCount]float64{
			KindObstacle: cfg.Shapes.Obstacle.Height,
			KindCoin:     cfg.Shapes.Coin.Height,
			KindHeart:    cfg.Shapes.Heart.Height,
		},
		spawnZ:       cfg.World.SpawnZ,
		rotationRate: cfg.World.RotationRate,
		entities:     make([]Entity, 0, 16),
		renderer:     renderer,
	}
}

// Spawn places a new entity of the given kind at the far end of lane and
// attaches it to the renderer. Lanes and kinds are internal; an invalid one
// is a programming error and panics.
func (r *Registry) Spawn(kind Kind, lane int) EntityID {
	if !kind.Valid() {
		panic(fmt.Sprintf("runner: spawn of invalid kind %d", kind))
	}
	if lane < 0 || lane >= len(r.lanes) {
		panic(fmt.Sprintf("runner: spawn lane %d out of range [0, %d)", lane, len(r.lanes)))
	}

	r.nextID++
	e := Entity{
		ID:       r.nextID,
		Kind:     kind,
		Lane:     lane,
		Position: core.Vec3{r.lanes[lane], r.heights[kind], r.spawnZ},
	}
	r.entities = append(r.entities, e)
	r.renderer.Attach(e)
	return e.ID
}

// AdvanceAll moves every entity dz toward the camera. Pickups also spin
// about Y, which only affects their bounding box.
func (r *Registry) AdvanceAll(dz, dt float64) {
	for i := range r.entities {
		e := &r.entities[i]
		e.Position[2] += dz
		if e.Kind.IsPickup() {
			e.RotationY += dt * r.rotationRate
		}
	}
}

// RemoveDespawned removes every entity whose Z exceeds despawnZ and returns
// how many were removed.
func (r *Registry) RemoveDespawned(despawnZ float64) int {
	kept := r.entities[:0]
	removed := 0
	for _, e := range r.entities {
		if e.Position.Z() > despawnZ {
			r.renderer.Detach(e.ID)
			removed++
			continue
		}
		kept = append(kept, e)
	}
	r.entities = kept
	return removed
}

// Remove deletes a single entity. It returns false if id is not live.
func (r *Registry) Remove(id EntityID) bool {
	for i, e := range r.entities {
		if e.ID == id {
			r.entities = append(r.entities[:i], r.entities[i+1:]...)
			r.renderer.Detach(id)
			return true
		}
	}
	return false
}

// Clear removes all entities.
func (r *Registry) Clear() {
	for _, e := range r.entities {
		r.renderer.Detach(e.ID)
	}
	r.entities = r.entities[:0]
}

// Len returns the number of live entities.
func (r *Registry) Len() int {
	return len(r.entities)
}

// Get returns the live entity with the given id.
func (r *Registry) Get(id EntityID) (Entity, bool) {
	for _, e := range r.entities {
		if e.ID == id {
			return e, true
		}
	}
	return Entity{}, false
}

// Each calls fn for every live entity in spawn order until fn returns false.
// fn must not modify the registry.
func (r *Registry) Each(fn func(Entity) bool) {
	for _, e := range r.entities {
		if !fn(e) {
			return
		}
	}
}

// Entities returns a copy of the live entities in spawn order.
func (r *Registry) Entities() []Entity {
	return append([]Entity(nil), r.entities...)
}

// LaneCount returns the number of configured lanes.
func (r *Registry) LaneCount() int {
	return len(r.lanes)
}
