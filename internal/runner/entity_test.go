package runner

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/lane-runner/internal/config"
)

func TestRegistrySpawn(t *testing.T) {
	r := &recordingRenderer{}
	reg := NewRegistry(config.DefaultRunnerConfig(), r)

	id := reg.Spawn(KindCoin, 0)
	e, ok := reg.Get(id)
	require.True(t, ok)

	assert.Equal(t, KindCoin, e.Kind)
	assert.Equal(t, 0, e.Lane)
	assert.Equal(t, -2.0, e.Position.X())
	assert.Equal(t, 0.5, e.Position.Y())
	assert.Equal(t, -35.0, e.Position.Z())
	assert.Equal(t, []EntityID{id}, r.attached)

	obstacle := reg.Spawn(KindObstacle, 2)
	e, _ = reg.Get(obstacle)
	assert.Equal(t, 2.0, e.Position.X())
	assert.Equal(t, 0.45, e.Position.Y())
}

func TestRegistrySpawnContractViolations(t *testing.T) {
	reg := NewRegistry(config.DefaultRunnerConfig(), nil)

	assert.Panics(t, func() { reg.Spawn(KindObstacle, 3) })
	assert.Panics(t, func() { reg.Spawn(KindObstacle, -1) })
	assert.Panics(t, func() { reg.Spawn(kindCount, 0) })
	assert.Equal(t, 0, reg.Len())
}

func TestRegistryAdvanceAll(t *testing.T) {
	reg := NewRegistry(config.DefaultRunnerConfig(), nil)
	obstacle := reg.Spawn(KindObstacle, 1)
	coin := reg.Spawn(KindCoin, 1)
	heart := reg.Spawn(KindHeart, 1)

	reg.AdvanceAll(2, 0.5)

	for _, id := range []EntityID{obstacle, coin, heart} {
		e, _ := reg.Get(id)
		assert.Equal(t, -33.0, e.Position.Z(), "entity %d", id)
	}

	o, _ := reg.Get(obstacle)
	c, _ := reg.Get(coin)
	h, _ := reg.Get(heart)
	assert.Zero(t, o.RotationY, "obstacles do not spin")
	assert.InDelta(t, 1.5, c.RotationY, 1e-9)
	assert.InDelta(t, 1.5, h.RotationY, 1e-9)
}

func TestRegistryRemoveDespawned(t *testing.T) {
	r := &recordingRenderer{}
	reg := NewRegistry(config.DefaultRunnerConfig(), r)

	a := reg.Spawn(KindObstacle, 0)
	reg.AdvanceAll(40, 0) // a at z=5
	b := reg.Spawn(KindCoin, 1)
	reg.AdvanceAll(10, 0) // a at z=15, b at z=-25
	c := reg.Spawn(KindHeart, 2)

	removed := reg.RemoveDespawned(10)

	assert.Equal(t, 1, removed)
	assert.Equal(t, []EntityID{a}, r.detached)
	ids := []EntityID{}
	reg.Each(func(e Entity) bool {
		ids = append(ids, e.ID)
		return true
	})
	assert.Equal(t, []EntityID{b, c}, ids, "survivors keep spawn order")
}

func TestRegistryRemoveAndClear(t *testing.T) {
	r := &recordingRenderer{}
	reg := NewRegistry(config.DefaultRunnerConfig(), r)

	a := reg.Spawn(KindObstacle, 0)
	b := reg.Spawn(KindObstacle, 1)
	c := reg.Spawn(KindObstacle, 2)

	assert.True(t, reg.Remove(b))
	assert.False(t, reg.Remove(b), "second removal is a no-op")
	assert.Equal(t, []EntityID{b}, r.detached)

	reg.Clear()
	assert.Equal(t, 0, reg.Len())
	assert.ElementsMatch(t, []EntityID{b, a, c}, r.detached)

	next := reg.Spawn(KindCoin, 1)
	assert.Greater(t, next, c, "ids are not reused after Clear")
}

func TestRegistryEntitiesIsACopy(t *testing.T) {
	reg := NewRegistry(config.DefaultRunnerConfig(), nil)
	id := reg.Spawn(KindObstacle, 1)

	list := reg.Entities()
	list[0].Position[2] = 99

	e, _ := reg.Get(id)
	assert.Equal(t, -35.0, e.Position.Z())
}

func TestKindString(t *testing.T) {
	assert.Equal(t, "obstacle", KindObstacle.String())
	assert.Equal(t, "heart", KindHeart.String())
	assert.Equal(t, "Kind(9)", Kind(9).String())
	assert.False(t, Kind(9).Valid())
	assert.True(t, KindCoin.IsPickup())
	assert.False(t, KindObstacle.IsPickup())
}
