package runner

import (
	"math"

	"github.com/vovakirdan/lane-runner/internal/config"
	"github.com/vovakirdan/lane-runner/internal/core"
)

// Player is the runner's body: lane target, damped lateral position,
// jump physics and the invulnerability window after a hit.
//
// Invariants: y >= groundY, and !jumping implies vy == 0 && y == groundY.
type Player struct {
	lanes     []float64
	startLane int
	z         float64
	half      core.Vec3

	gravity     float64
	jumpV       float64
	groundY     float64
	damping     float64
	blinkPeriod float64

	lane         int
	targetX      float64
	x, y, vy     float64
	jumping      bool
	invulnerable float64 // seconds left
	visible      bool
	tinted       bool
}

// NewPlayer creates a player standing in the configured start lane.
func NewPlayer(cfg config.RunnerConfig) *Player {
	p := &Player{
		lanes:       append([]float64(nil), cfg.Lanes...),
		startLane:   cfg.Player.StartLane,
		z:           cfg.Player.Z,
		half:        core.Vec3(cfg.Player.Size).Mul(0.5),
		gravity:     cfg.Physics.Gravity,
		jumpV:       cfg.Physics.JumpVelocity,
		groundY:     cfg.Physics.GroundY,
		damping:     cfg.Physics.LaneDamping,
		blinkPeriod: cfg.Rules.BlinkPeriod,
	}
	p.Reset()
	return p
}

// Reset puts the player back in the start lane, grounded, visible and untinted.
func (p *Player) Reset() {
	p.lane = p.startLane
	p.targetX = p.lanes[p.lane]
	p.x = p.targetX
	p.y = p.groundY
	p.vy = 0
	p.jumping = false
	p.invulnerable = 0
	p.visible = true
	p.tinted = false
}

// MoveLane shifts the lane target by dir (-1 left, +1 right). Moving past an
// edge lane is a no-op. It reports whether the target changed.
func (p *Player) MoveLane(dir int) bool {
	next := core.Clamp(p.lane+dir, 0, len(p.lanes)-1)
	if next == p.lane {
		return false
	}
	p.lane = next
	p.targetX = p.lanes[next]
	return true
}

// Jump starts a jump unless one is already in progress.
func (p *Player) Jump() bool {
	if p.jumping {
		return false
	}
	p.jumping = true
	p.vy = p.jumpV
	return true
}

// Hit opens an invulnerability window of the given length and tints the player.
func (p *Player) Hit(seconds float64) {
	p.invulnerable = seconds
	p.tinted = true
}

// Integrate advances the player by dt seconds. now is the session clock and
// drives the blink square wave. It returns true when the invulnerability
// window closed during this step.
func (p *Player) Integrate(dt, now float64) (recovered bool) {
	p.x = core.Damp(p.x, p.targetX, p.damping, dt)

	if p.jumping {
		p.vy += p.gravity * dt
		p.y += p.vy * dt
		if p.y <= p.groundY {
			p.y = p.groundY
			p.vy = 0
			p.jumping = false
		}
	}

	if p.invulnerable > 0 {
		p.invulnerable -= dt
		if p.invulnerable > 0 {
			p.visible = math.Mod(now, p.blinkPeriod) < p.blinkPeriod/2
		} else {
			p.invulnerable = 0
			p.visible = true
			p.tinted = false
			recovered = true
		}
	}
	return recovered
}

// Position returns the player's center in world space.
func (p Player) Position() core.Vec3 {
	return core.Vec3{p.x, p.y, p.z}
}

// Bounds returns the player's box in world space.
func (p Player) Bounds() core.Box {
	return core.BoxAround(p.Position(), p.half)
}

// Lane returns the index of the target lane.
func (p Player) Lane() int { return p.lane }

// TargetX returns the X offset of the target lane.
func (p Player) TargetX() float64 { return p.targetX }

// VelocityY returns the vertical velocity.
func (p Player) VelocityY() float64 { return p.vy }

// Jumping reports whether the player is airborne.
func (p Player) Jumping() bool { return p.jumping }

// Invulnerable returns the seconds left in the invulnerability window.
func (p Player) Invulnerable() float64 { return p.invulnerable }

// IsInvulnerable reports whether collisions are currently ignored.
func (p Player) IsInvulnerable() bool { return p.invulnerable > 0 }

// Visible reports whether the player should be drawn this frame.
func (p Player) Visible() bool { return p.visible }

// Tinted reports whether the hit tint is on.
func (p Player) Tinted() bool { return p.tinted }
