package runner

import (
	"math"

	"github.com/vovakirdan/lane-runner/internal/core"
)

// Autopilot plays a session without a human. It steers out of lanes with an
// obstacle inside the lookahead window and jumps when no lane is clear.
type Autopilot struct {
	// LookaheadSeconds is how far ahead, in time at the current speed, threats are considered.
	LookaheadSeconds float64
	// JumpSeconds is how close an unavoidable obstacle must be before jumping.
	JumpSeconds float64
}

// DefaultAutopilot returns an autopilot tuned for the default config.
func DefaultAutopilot() Autopilot {
	return Autopilot{LookaheadSeconds: 0.8, JumpSeconds: 0.12}
}

// Decide returns the next intent for s, if any. It only reads session state.
func (a Autopilot) Decide(s *Session) (Intent, bool) {
	if s.State() != StateRunning || s.Paused() {
		return 0, false
	}

	p := s.Player()
	playerZ := p.Position().Z()
	window := s.Speed() * a.LookaheadSeconds
	lanes := s.reg.LaneCount()

	danger := make([]bool, lanes)
	coins := make([]bool, lanes)
	nearest := math.Inf(1) // distance to the closest obstacle in the current lane
	s.reg.Each(func(e Entity) bool {
		ahead := playerZ - e.Position.Z()
		if ahead < -0.5 || ahead > window {
			return true
		}
		switch e.Kind {
		case KindObstacle:
			danger[e.Lane] = true
			if e.Lane == p.Lane() && ahead < nearest {
				nearest = ahead
			}
		case KindCoin, KindHeart:
			coins[e.Lane] = true
		}
		return true
	})

	cur := p.Lane()
	if !danger[cur] {
		for _, dir := range []int{-1, 1} {
			next := cur + dir
			if next >= 0 && next < lanes && coins[next] && !danger[next] && !coins[cur] {
				return laneIntent(dir), true
			}
		}
		return 0, false
	}

	best := -1
	for l := 0; l < lanes; l++ {
		if danger[l] {
			continue
		}
		if best == -1 || core.Abs(l-cur) < core.Abs(best-cur) || (core.Abs(l-cur) == core.Abs(best-cur) && coins[l] && !coins[best]) {
			best = l
		}
	}
	if best >= 0 {
		if best < cur {
			return IntentLeft, true
		}
		return IntentRight, true
	}

	if !p.Jumping() && nearest <= s.Speed()*a.JumpSeconds+1 {
		return IntentJump, true
	}
	return 0, false
}

// Drive applies the autopilot's decision, if any, to s.
func (a Autopilot) Drive(s *Session) {
	if in, ok := a.Decide(s); ok {
		s.HandleIntent(in)
	}
}

func laneIntent(dir int) Intent {
	if dir < 0 {
		return IntentLeft
	}
	return IntentRight
}
