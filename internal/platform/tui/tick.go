// Package tui provides the Bubble Tea front-end for the lane runner.
// It owns the terminal loop, maps keys to intents and draws the track.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg is sent to trigger a simulation frame.
type TickMsg time.Time

// tickCmd returns a Bubble Tea command that sends tick messages at the specified rate.
func tickCmd(tickRate int) tea.Cmd {
	interval := time.Second / time.Duration(tickRate)
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

// FrameClock is a runner.FrameSource fed by TickMsg timestamps. It runs on
// the Bubble Tea update goroutine, which also owns the session.
type FrameClock struct {
	tickRate int
	last     time.Time
	subs     map[int]func(float64)
	nextID   int
}

// NewFrameClock creates a clock whose first frame is one nominal tick long.
func NewFrameClock(tickRate int) *FrameClock {
	if tickRate <= 0 {
		tickRate = 60
	}
	return &FrameClock{tickRate: tickRate, subs: make(map[int]func(float64))}
}

// OnFrame implements runner.FrameSource.
func (c *FrameClock) OnFrame(fn func(dt float64)) func() {
	c.nextID++
	id := c.nextID
	c.subs[id] = fn
	return func() { delete(c.subs, id) }
}

// Deliver turns a tick timestamp into a frame delta and hands it to subscribers.
func (c *FrameClock) Deliver(t time.Time) float64 {
	dt := 1 / float64(c.tickRate)
	if !c.last.IsZero() {
		dt = t.Sub(c.last).Seconds()
	}
	c.last = t
	for _, fn := range c.subs {
		fn(dt)
	}
	return dt
}

// Hold forgets the last timestamp so the time spent paused or in a menu is
// not delivered as one long frame.
func (c *FrameClock) Hold() {
	c.last = time.Time{}
}
