package runner

import (
	"github.com/vovakirdan/lane-runner/internal/core"
)

// Sound names a fire-and-forget sound request.
type Sound string

const (
	SoundJump Sound = "jump"
	SoundCoin Sound = "coin"
	SoundHit  Sound = "hit"
)

// Intent is a discrete player input.
type Intent int

const (
	IntentLeft Intent = iota
	IntentRight
	IntentJump
)

func (i Intent) String() string {
	switch i {
	case IntentLeft:
		return "left"
	case IntentRight:
		return "right"
	case IntentJump:
		return "jump"
	default:
		return "unknown"
	}
}

// Renderer is commanded by the core and never queried.
type Renderer interface {
	// Attach is called once per spawned entity.
	Attach(e Entity)
	// Detach is called once per removed entity.
	Detach(id EntityID)
	// SetPlayerTint switches the "hit" tint of the player on or off.
	SetPlayerTint(hit bool)
}

// BoundsProvider returns the world-space box of an entity.
type BoundsProvider interface {
	Bounds(e Entity) core.Box
}

// SoundSink accepts sound requests. Implementations must not block.
type SoundSink interface {
	Play(s Sound)
}

// BestStore persists the best score as a single non-negative integer.
type BestStore interface {
	Load() (int, error)
	Save(best int) error
}

// FrameSource calls fn once per display frame with the elapsed seconds since
// the previous frame. Calls must happen on the goroutine that owns the session.
type FrameSource interface {
	OnFrame(fn func(dt float64)) (cancel func())
}

// InputSource delivers player intents on the goroutine that owns the session.
type InputSource interface {
	OnIntent(fn func(Intent)) (cancel func())
}

// Opener is implemented by collaborators that need setup when a session starts.
type Opener interface {
	Open() error
}

// Closer is implemented by collaborators that hold resources until a session stops.
type Closer interface {
	Close() error
}

// NopRenderer ignores every command.
type NopRenderer struct{}

func (NopRenderer) Attach(Entity)      {}
func (NopRenderer) Detach(EntityID)    {}
func (NopRenderer) SetPlayerTint(bool) {}

// NopSound discards sound requests.
type NopSound struct{}

func (NopSound) Play(Sound) {}

// MemoryBest keeps the best score in memory.
type MemoryBest struct {
	Value int
}

func (m *MemoryBest) Load() (int, error) { return m.Value, nil }

func (m *MemoryBest) Save(best int) error {
	m.Value = best
	return nil
}

// ManualClock is a FrameSource driven by explicit Advance calls.
// Headless runs and tests use it in place of a display clock.
type ManualClock struct {
	subs   map[int]func(float64)
	nextID int
}

// OnFrame registers fn for subsequent Advance calls.
func (c *ManualClock) OnFrame(fn func(dt float64)) func() {
	if c.subs == nil {
		c.subs = make(map[int]func(float64))
	}
	c.nextID++
	id := c.nextID
	c.subs[id] = fn
	return func() { delete(c.subs, id) }
}

// Advance delivers one frame of dt seconds to every subscriber.
func (c *ManualClock) Advance(dt float64) {
	for _, fn := range c.subs {
		fn(dt)
	}
}

// Subscribers returns the number of registered callbacks.
func (c *ManualClock) Subscribers() int {
	return len(c.subs)
}

// IntentQueue is an InputSource fed by explicit Push calls.
type IntentQueue struct {
	fn func(Intent)
}

// OnIntent registers the single consumer of pushed intents.
func (q *IntentQueue) OnIntent(fn func(Intent)) func() {
	q.fn = fn
	return func() { q.fn = nil }
}

// Push delivers an intent to the consumer, if any.
func (q *IntentQueue) Push(i Intent) {
	if q.fn != nil {
		q.fn(i)
	}
}

// Connected reports whether a consumer is registered.
func (q *IntentQueue) Connected() bool {
	return q.fn != nil
}
