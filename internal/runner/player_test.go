package runner

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/lane-runner/internal/config"
)

func TestPlayerStartsCentered(t *testing.T) {
	p := NewPlayer(config.DefaultRunnerConfig())

	assert.Equal(t, 1, p.Lane())
	assert.Equal(t, 0.0, p.TargetX())
	assert.Equal(t, 0.45, p.Position().Y())
	assert.False(t, p.Jumping())
	assert.True(t, p.Visible())
}

func TestPlayerMoveLaneClampsAtEdges(t *testing.T) {
	p := NewPlayer(config.DefaultRunnerConfig())

	require.True(t, p.MoveLane(-1))
	assert.Equal(t, 0, p.Lane())
	assert.Equal(t, -2.0, p.TargetX())

	assert.False(t, p.MoveLane(-1), "left edge")
	assert.Equal(t, -2.0, p.TargetX())

	p.MoveLane(+1)
	p.MoveLane(+1)
	assert.False(t, p.MoveLane(+1), "right edge")
	assert.Equal(t, 2.0, p.TargetX())
}

func TestPlayerLateralDamping(t *testing.T) {
	p := NewPlayer(config.DefaultRunnerConfig())
	p.MoveLane(+1)

	prev := p.Position().X()
	for i := 0; i < 60; i++ {
		p.Integrate(1.0/60, float64(i)/60)
		x := p.Position().X()
		assert.GreaterOrEqual(t, x, prev, "approach is monotone")
		assert.LessOrEqual(t, x, 2.0, "no overshoot")
		prev = x
	}
	assert.InDelta(t, 2.0, prev, 1e-4)
}

func TestPlayerJumpArc(t *testing.T) {
	p := NewPlayer(config.DefaultRunnerConfig())

	require.True(t, p.Jump())
	assert.False(t, p.Jump(), "no double jump")
	assert.Equal(t, 9.5, p.VelocityY())

	dt := 1.0 / 120
	peak := 0.0
	airtime := 0.0
	for p.Jumping() {
		p.Integrate(dt, airtime)
		airtime += dt
		require.GreaterOrEqual(t, p.Position().Y(), 0.45)
		peak = max(peak, p.Position().Y())
		require.Less(t, airtime, 5.0, "player never landed")
	}

	assert.Equal(t, 0.0, p.VelocityY())
	assert.Equal(t, 0.45, p.Position().Y())
	assert.InDelta(t, 0.95, airtime, 0.02) // 2 * 9.5 / 20
	assert.InDelta(t, 0.45+9.5*9.5/40, peak, 0.1)
	assert.True(t, p.Jump(), "can jump again after landing")
}

func TestPlayerInvulnerabilityBlinkAndRecovery(t *testing.T) {
	p := NewPlayer(config.DefaultRunnerConfig())
	p.Hit(1.5)
	require.True(t, p.IsInvulnerable())
	require.True(t, p.Tinted())

	dt := 0.01
	now := 0.0
	sawHidden := false
	recoveries := 0
	for i := 0; i < 200; i++ {
		now += dt
		if p.Integrate(dt, now) {
			recoveries++
			assert.InDelta(t, 1.5, now, 0.011)
		}
		if p.IsInvulnerable() && !p.Visible() {
			sawHidden = true
		}
	}

	assert.True(t, sawHidden, "player blinks while invulnerable")
	assert.Equal(t, 1, recoveries)
	assert.True(t, p.Visible())
	assert.False(t, p.Tinted())
	assert.Zero(t, p.Invulnerable())
}

func TestPlayerReset(t *testing.T) {
	p := NewPlayer(config.DefaultRunnerConfig())
	p.MoveLane(-1)
	p.Jump()
	p.Integrate(0.1, 0.1)
	p.Hit(1.5)

	p.Reset()

	assert.Equal(t, 1, p.Lane())
	assert.Equal(t, 0.0, p.Position().X())
	assert.Equal(t, 0.45, p.Position().Y())
	assert.False(t, p.Jumping())
	assert.False(t, p.IsInvulnerable())
	assert.False(t, p.Tinted())
	assert.True(t, p.Visible())
}
