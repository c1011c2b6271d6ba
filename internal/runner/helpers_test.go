package runner

import (
	"errors"

	"github.com/vovakirdan/lane-runner/internal/config"
)

// quietConfig disables natural spawning so tests place every entity themselves.
func quietConfig() config.RunnerConfig {
	cfg := config.DefaultRunnerConfig()
	cfg.Spawn.Distance = 1e9
	return cfg
}

type recordingRenderer struct {
	attached []EntityID
	detached []EntityID
	tints    []bool
	opened   int
	closed   int
}

func (r *recordingRenderer) Attach(e Entity)        { r.attached = append(r.attached, e.ID) }
func (r *recordingRenderer) Detach(id EntityID)     { r.detached = append(r.detached, id) }
func (r *recordingRenderer) SetPlayerTint(hit bool) { r.tints = append(r.tints, hit) }
func (r *recordingRenderer) Open() error            { r.opened++; return nil }
func (r *recordingRenderer) Close() error           { r.closed++; return nil }

type recordingSound struct {
	played []Sound
}

func (s *recordingSound) Play(snd Sound) { s.played = append(s.played, snd) }

type countingStore struct {
	value   int
	saves   []int
	loadErr error
	saveErr error
}

func (c *countingStore) Load() (int, error) { return c.value, c.loadErr }

func (c *countingStore) Save(best int) error {
	c.saves = append(c.saves, best)
	if c.saveErr != nil {
		return c.saveErr
	}
	c.value = best
	return nil
}

var errUnavailable = errors.New("unavailable")

// placeObstacle puts an obstacle right on top of the player.
func placeObstacle(s *Session) EntityID {
	return placeAtPlayer(s, KindObstacle)
}

func placeAtPlayer(s *Session, kind Kind) EntityID {
	id := s.reg.Spawn(kind, s.player.Lane())
	e := &s.reg.entities[len(s.reg.entities)-1]
	e.Position[0] = s.player.Position().X()
	e.Position[2] = s.player.Position().Z()
	return id
}
