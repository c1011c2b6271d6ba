package runner

import (
	"fmt"
	"io"
	"math"
	"math/rand"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/lane-runner/internal/config"
)

// State is the session lifecycle state.
type State int

const (
	StateIdle State = iota
	StateRunning
	StateGameOver
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateRunning:
		return "running"
	case StateGameOver:
		return "game_over"
	default:
		return "unknown"
	}
}

// Option configures a Session.
type Option func(*Session)

// WithRenderer sets the render collaborator.
func WithRenderer(r Renderer) Option { return func(s *Session) { s.renderer = r } }

// WithBounds overrides the default per-kind bounds provider.
func WithBounds(b BoundsProvider) Option { return func(s *Session) { s.bounds = b } }

// WithSound sets the sound sink.
func WithSound(snd SoundSink) Option { return func(s *Session) { s.sound = snd } }

// WithBestStore sets where the best score is loaded from and saved to.
func WithBestStore(b BestStore) Option { return func(s *Session) { s.store = b } }

// WithFrameSource sets the clock that drives Tick after Start.
func WithFrameSource(f FrameSource) Option { return func(s *Session) { s.frames = f } }

// WithInputSource sets where lane and jump intents come from after Start.
func WithInputSource(in InputSource) Option { return func(s *Session) { s.input = in } }

// WithLogger sets the logger used for collaborator failures.
func WithLogger(l *log.Logger) Option { return func(s *Session) { s.logger = l } }

// WithSeed seeds the spawn RNG. Equal seeds and inputs give equal runs.
func WithSeed(seed int64) Option { return func(s *Session) { s.seed = seed } }

// Session is the game controller. It owns score, lives, best and the
// Idle -> Running -> GameOver state machine, and runs one simulation frame per Tick.
//
// A Session is not safe for concurrent use; frame and input callbacks must be
// delivered on the goroutine that owns it.
type Session struct {
	cfg config.RunnerConfig

	renderer Renderer
	bounds   BoundsProvider
	sound    SoundSink
	store    BestStore
	frames   FrameSource
	input    InputSource
	logger   *log.Logger
	seed     int64

	reg    *Registry
	player *Player
	world  *World

	state      State
	paused     bool
	started    bool
	score      int
	scoreCarry float64
	best       int
	lives      int
	coins      int
	elapsed    float64

	cancelFrames func()
	cancelInput  func()
}

// NewSession builds a session in the Idle state and loads the best score.
// A failing best-score store is logged and treated as zero.
func NewSession(cfg config.RunnerConfig, opts ...Option) *Session {
	s := &Session{
		cfg:      cfg,
		renderer: NopRenderer{},
		sound:    NopSound{},
		store:    &MemoryBest{},
		seed:     time.Now().UnixNano(),
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.logger == nil {
		s.logger = log.New(io.Discard)
	}
	if s.bounds == nil {
		s.bounds = NewKindBounds(cfg)
	}

	s.reg = NewRegistry(cfg, s.renderer)
	s.player = NewPlayer(cfg)
	s.world = NewWorld(cfg, s.reg, rand.New(rand.NewSource(s.seed)))
	s.lives = cfg.Rules.Lives

	best, err := s.store.Load()
	if err != nil {
		s.logger.Warn("could not load best score", "error", err)
		best = 0
	}
	s.best = max(0, best)
	return s
}

// Start opens collaborators, resets the run and subscribes to the frame and
// input sources. Calling Start on a started session restarts the run.
func (s *Session) Start() {
	s.unsubscribe()
	if !s.started {
		s.open(s.renderer, "renderer")
		s.open(s.sound, "sound")
		s.open(s.store, "best store")
	}
	s.started = true

	s.state = StateRunning
	s.Reset()

	if s.frames != nil {
		s.cancelFrames = s.frames.OnFrame(s.Tick)
	}
	if s.input != nil {
		s.cancelInput = s.input.OnIntent(s.HandleIntent)
	}
}

// Stop detaches from the frame and input sources and closes collaborators.
// The session state is left as is. Stop is idempotent.
func (s *Session) Stop() {
	s.unsubscribe()
	if !s.started {
		return
	}
	s.started = false
	s.close(s.renderer, "renderer")
	s.close(s.sound, "sound")
	s.close(s.store, "best store")
}

func (s *Session) unsubscribe() {
	if s.cancelFrames != nil {
		s.cancelFrames()
		s.cancelFrames = nil
	}
	if s.cancelInput != nil {
		s.cancelInput()
		s.cancelInput = nil
	}
}

func (s *Session) open(c any, name string) {
	if o, ok := c.(Opener); ok {
		if err := o.Open(); err != nil {
			s.logger.Warn("collaborator unavailable", "collaborator", name, "error", err)
		}
	}
}

func (s *Session) close(c any, name string) {
	if cl, ok := c.(Closer); ok {
		if err := cl.Close(); err != nil {
			s.logger.Debug("collaborator close failed", "collaborator", name, "error", err)
		}
	}
}

// Reset clears the track and restores a fresh run: score 0, full lives,
// base speed, player centered. A session that has left Idle goes back to Running.
func (s *Session) Reset() {
	s.reg.Clear()
	s.world.Reset()
	s.player.Reset()
	s.renderer.SetPlayerTint(false)

	s.score = 0
	s.scoreCarry = 0
	s.coins = 0
	s.elapsed = 0
	s.lives = s.cfg.Rules.Lives
	s.paused = false
	if s.state != StateIdle {
		s.state = StateRunning
	}
}

// Tick advances the run by dt seconds of wall time. It does nothing unless
// the session is Running and unpaused.
//
// Frames longer than Timing.MaxFrameDelta are treated as stalls and cut to
// that length; the rest is integrated in equal steps no longer than
// Timing.MaxStep so a fast obstacle cannot pass through the player in one step.
func (s *Session) Tick(dt float64) {
	if s.state != StateRunning || s.paused {
		return
	}
	if !(dt > 0) {
		return
	}
	if limit := s.cfg.Timing.MaxFrameDelta; limit > 0 && dt > limit {
		dt = limit
	}
	if math.IsInf(dt, 1) {
		return
	}

	steps := int(math.Ceil(dt / s.cfg.Timing.MaxStep))
	if steps < 1 {
		steps = 1
	}
	h := dt / float64(steps)
	for i := 0; i < steps && s.state == StateRunning; i++ {
		s.step(h)
	}
}

// step runs one integration step: player, world, collision, score.
func (s *Session) step(dt float64) {
	s.elapsed += dt

	if s.player.Integrate(dt, s.elapsed) {
		s.renderer.SetPlayerTint(false)
	}
	s.world.Tick(dt)

	if e, ok := Scan(s.player, s.reg, s.bounds); ok {
		s.resolve(e)
	}
	if s.state != StateRunning {
		return
	}

	// Whole units of distance become score; the fraction carries over so
	// small frames still add up.
	s.scoreCarry += s.world.Speed() * dt
	whole := math.Floor(s.scoreCarry + accrualEpsilon)
	s.score += int(whole)
	s.scoreCarry = max(0, s.scoreCarry-whole)
}

// resolve applies the effect of colliding with e.
func (s *Session) resolve(e Entity) {
	switch e.Kind {
	case KindObstacle:
		s.lives--
		s.reg.Remove(e.ID)
		s.sound.Play(SoundHit)
		if s.lives <= 0 {
			s.lives = 0
			s.GameOver()
			return
		}
		s.player.Hit(s.cfg.Rules.InvulnerableSeconds)
		s.renderer.SetPlayerTint(true)
	case KindCoin:
		s.score += s.cfg.Rules.CoinReward
		s.coins++
		s.reg.Remove(e.ID)
		s.sound.Play(SoundCoin)
	case KindHeart:
		s.lives = min(s.cfg.Rules.MaxLives, s.lives+1)
		s.reg.Remove(e.ID)
		s.sound.Play(SoundCoin)
	default:
		panic(fmt.Sprintf("runner: unreachable entity kind %v", e.Kind))
	}
}

// GameOver ends a running run. The best score is raised and persisted only
// here, and only when the run beat it.
func (s *Session) GameOver() {
	if s.state != StateRunning {
		return
	}
	s.state = StateGameOver
	s.paused = false

	if s.score > s.best {
		s.best = s.score
		if err := s.store.Save(s.best); err != nil {
			s.logger.Warn("could not save best score", "best", s.best, "error", err)
		}
	}
}

// HandleIntent dispatches a player intent.
func (s *Session) HandleIntent(i Intent) {
	switch i {
	case IntentLeft:
		s.MoveLane(-1)
	case IntentRight:
		s.MoveLane(+1)
	case IntentJump:
		s.Jump()
	}
}

// MoveLane shifts the player one lane in dir. Ignored unless the run is live.
func (s *Session) MoveLane(dir int) {
	if !s.live() {
		return
	}
	s.player.MoveLane(dir)
}

// Jump starts a jump and requests the jump sound. Ignored unless the run is
// live or while already airborne.
func (s *Session) Jump() {
	if !s.live() {
		return
	}
	if s.player.Jump() {
		s.sound.Play(SoundJump)
	}
}

func (s *Session) live() bool {
	return s.state == StateRunning && !s.paused
}

// SetPaused pauses or resumes a running session.
func (s *Session) SetPaused(paused bool) {
	if s.state != StateRunning {
		return
	}
	s.paused = paused
}

// TogglePause flips the pause flag of a running session.
func (s *Session) TogglePause() {
	s.SetPaused(!s.paused)
}

// Score returns the current score.
func (s *Session) Score() int { return s.score }

// Best returns the best score seen, including runs before this process.
func (s *Session) Best() int { return s.best }

// Lives returns the remaining lives.
func (s *Session) Lives() int { return s.lives }

// Coins returns the coins collected this run.
func (s *Session) Coins() int { return s.coins }

// Speed returns the current scroll speed.
func (s *Session) Speed() float64 { return s.world.Speed() }

// IsGameOver reports whether the run has ended.
func (s *Session) IsGameOver() bool { return s.state == StateGameOver }

// State returns the lifecycle state.
func (s *Session) State() State { return s.state }

// Paused reports whether the session is paused.
func (s *Session) Paused() bool { return s.paused }

// Elapsed returns simulated seconds since the last reset.
func (s *Session) Elapsed() float64 { return s.elapsed }

// Player returns a copy of the player state.
func (s *Session) Player() Player { return *s.player }

// Entities returns a copy of the live entities in registry order.
func (s *Session) Entities() []Entity { return s.reg.Entities() }

// World returns read access to the world counters.
func (s *Session) World() *World { return s.world }

// Config returns the configuration the session was built with.
func (s *Session) Config() config.RunnerConfig { return s.cfg }

// Seed returns the spawn RNG seed.
func (s *Session) Seed() int64 { return s.seed }
