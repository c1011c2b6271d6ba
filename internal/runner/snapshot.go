package runner

// Snapshot captures the observable session state for HUDs, determinism
// checks and replay verification.
type Snapshot struct {
	State        string  `msgpack:"state"`
	Paused       bool    `msgpack:"paused"`
	Score        int     `msgpack:"score"`
	Best         int     `msgpack:"best"`
	Lives        int     `msgpack:"lives"`
	Coins        int     `msgpack:"coins"`
	Speed        float64 `msgpack:"speed"`
	Travelled    float64 `msgpack:"travelled"`
	Elapsed      float64 `msgpack:"elapsed"`
	Spawned      int     `msgpack:"spawned"`
	Entities     int     `msgpack:"entities"`
	Lane         int     `msgpack:"lane"`
	PlayerX      float64 `msgpack:"player_x"`
	PlayerY      float64 `msgpack:"player_y"`
	Jumping      bool    `msgpack:"jumping"`
	Invulnerable float64 `msgpack:"invulnerable"`
}

// Snapshot returns the current session snapshot.
func (s *Session) Snapshot() Snapshot {
	pos := s.player.Position()
	return Snapshot{
		State:        s.state.String(),
		Paused:       s.paused,
		Score:        s.score,
		Best:         s.best,
		Lives:        s.lives,
		Coins:        s.coins,
		Speed:        s.world.Speed(),
		Travelled:    s.world.Travelled(),
		Elapsed:      s.elapsed,
		Spawned:      s.world.Spawned(),
		Entities:     s.reg.Len(),
		Lane:         s.player.Lane(),
		PlayerX:      pos.X(),
		PlayerY:      pos.Y(),
		Jumping:      s.player.Jumping(),
		Invulnerable: s.player.Invulnerable(),
	}
}
