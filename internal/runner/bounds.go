package runner

import (
	"github.com/vovakirdan/lane-runner/internal/config"
	"github.com/vovakirdan/lane-runner/internal/core"
)

// KindBounds derives an entity's box from the configured size of its kind,
// grown to enclose the current Y rotation.
type KindBounds struct {
	half [kindCount]core.Vec3
}

// NewKindBounds builds a BoundsProvider from the shapes in cfg.
func NewKindBounds(cfg config.RunnerConfig) KindBounds {
	return KindBounds{half: [kindCount]core.Vec3{
		KindObstacle: core.Vec3(cfg.Shapes.Obstacle.Size).Mul(0.5),
		KindCoin:     core.Vec3(cfg.Shapes.Coin.Size).Mul(0.5),
		KindHeart:    core.Vec3(cfg.Shapes.Heart.Size).Mul(0.5),
	}}
}

// Bounds implements BoundsProvider.
func (b KindBounds) Bounds(e Entity) core.Box {
	half := b.half[e.Kind]
	if e.RotationY != 0 {
		half = core.RotatedExtentsY(half, e.RotationY)
	}
	return core.BoxAround(e.Position, half)
}
