package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/lane-runner/internal/config"
	"github.com/vovakirdan/lane-runner/internal/core"
	"github.com/vovakirdan/lane-runner/internal/runner"
	"github.com/vovakirdan/lane-runner/internal/storage"
)

// GameOptions configures one terminal run.
type GameOptions struct {
	Config  config.RunnerConfig // preset already applied
	Preset  config.DifficultyPreset
	Runtime core.RuntimeConfig
	Store   *storage.Store   // run history and best score; nil keeps both in memory
	Sound   runner.SoundSink // nil is silent
	Logger  *log.Logger
	Player  string // recorded with SSH runs

	// QuitOnBack ends the program on back instead of handing control to a parent model.
	QuitOnBack bool
}

// GameModel is the Bubble Tea model for a run. It owns the session and
// feeds it frames from TickMsg and intents from key presses.
type GameModel struct {
	opts     GameOptions
	session  *runner.Session
	scene    *Scene
	screen   *core.Screen
	clock    *FrameClock
	input    *runner.IntentQueue
	keys     *KeyMapper
	help     help.Model
	logger   *log.Logger
	saved    *bool // run recorded for the current game over
	quitting bool
	back     bool
}

// NewGameModel builds the session and its terminal collaborators.
func NewGameModel(opts GameOptions) GameModel {
	if opts.Runtime.Seed == 0 {
		opts.Runtime.Seed = time.Now().UnixNano()
	}
	if opts.Runtime.TickRate <= 0 {
		opts.Runtime.TickRate = 60
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	var best runner.BestStore = &runner.MemoryBest{}
	if opts.Store != nil {
		best = storage.NewBestStore(opts.Store, string(opts.Preset))
	}
	sound := opts.Sound
	if sound == nil {
		sound = runner.NopSound{}
	}

	scene := NewScene(opts.Config)
	clock := NewFrameClock(opts.Runtime.TickRate)
	input := &runner.IntentQueue{}
	session := runner.NewSession(opts.Config,
		runner.WithRenderer(scene),
		runner.WithSound(sound),
		runner.WithBestStore(best),
		runner.WithFrameSource(clock),
		runner.WithInputSource(input),
		runner.WithLogger(logger),
		runner.WithSeed(opts.Runtime.Seed),
	)

	h := help.New()
	h.Width = opts.Runtime.ScreenW

	return GameModel{
		opts:    opts,
		session: session,
		scene:   scene,
		screen:  core.NewScreen(opts.Runtime.ScreenW, max(1, opts.Runtime.ScreenH-1)),
		clock:   clock,
		input:   input,
		keys:    NewKeyMapper(),
		help:    h,
		logger:  logger,
		saved:   new(bool),
	}
}

// Init starts the run and the tick loop.
func (m GameModel) Init() tea.Cmd {
	m.session.Start()
	return tickCmd(m.opts.Runtime.TickRate)
}

// Update handles messages and updates the model state.
func (m GameModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.opts.Runtime.ScreenW = msg.Width
		m.opts.Runtime.ScreenH = msg.Height
		m.screen.Resize(msg.Width, max(1, msg.Height-1))
		m.help.Width = msg.Width
		return m, nil

	case TickMsg:
		return m.handleTick(time.Time(msg))
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m GameModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+s" {
		m.saveScreenshot()
		return m, nil
	}

	action, isQuit := m.keys.MapKey(msg)
	if isQuit {
		m.quitting = true
		m.session.Stop()
		return m, tea.Quit
	}

	if in, ok := IntentFor(action); ok {
		m.input.Push(in)
		return m, nil
	}

	switch action {
	case core.ActionPause:
		m.session.TogglePause()
		if m.session.Paused() {
			m.clock.Hold()
		}
	case core.ActionRestart:
		if m.session.IsGameOver() {
			m.session.Start()
			m.clock.Hold()
			*m.saved = false
		}
	case core.ActionBack:
		if m.session.IsGameOver() || m.session.Paused() {
			m.back = true
			m.session.Stop()
			if m.opts.QuitOnBack {
				return m, tea.Quit
			}
		}
	}
	return m, nil
}

// handleTick delivers one frame and records the run once it ends.
func (m GameModel) handleTick(t time.Time) (tea.Model, tea.Cmd) {
	if m.back || m.quitting {
		return m, nil
	}
	if m.session.Paused() || m.session.IsGameOver() {
		m.clock.Hold()
	} else {
		m.clock.Deliver(t)
	}

	if m.session.IsGameOver() && !*m.saved {
		m.recordRun()
		*m.saved = true
	}
	return m, tickCmd(m.opts.Runtime.TickRate)
}

// recordRun stores the finished run in the history table.
func (m GameModel) recordRun() {
	if m.opts.Store == nil {
		return
	}
	snap := m.session.Snapshot()
	id, err := m.opts.Store.SaveRun(storage.Run{
		Score:    snap.Score,
		Coins:    snap.Coins,
		Distance: snap.Travelled,
		Duration: time.Duration(snap.Elapsed * float64(time.Second)),
		Preset:   string(m.opts.Preset),
		Seed:     m.session.Seed(),
	})
	if err != nil {
		m.logger.Warn("could not save run", "error", err)
		return
	}
	m.logger.Debug("run saved", "id", id, "score", snap.Score, "player", m.opts.Player)
}

// saveScreenshot saves the current screen to a file.
func (m GameModel) saveScreenshot() {
	m.draw()

	dir := filepath.Join(os.Getenv("HOME"), ".runner", "screenshots")
	//nolint:errcheck // Best-effort directory creation
	os.MkdirAll(dir, 0o755)

	path := filepath.Join(dir, fmt.Sprintf("runner_%s.txt", time.Now().Format("20060102_150405")))
	//nolint:errcheck // Best-effort save, game continues regardless
	os.WriteFile(path, []byte(m.screen.String()), 0o600)
}

func (m GameModel) draw() {
	m.screen.Clear()
	m.scene.Draw(m.screen, m.session)
	drawHUD(m.screen, m.session, string(m.opts.Preset))
}

var helpStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))

// View renders the current state to a string for display.
func (m GameModel) View() string {
	if m.quitting || m.back {
		return ""
	}
	m.draw()
	return RenderScreen(m.screen) + "\n" + helpStyle.Render(m.help.View(m.keys.Keys()))
}

// Session returns the underlying session.
func (m GameModel) Session() *runner.Session { return m.session }

// IsQuitting returns true if user requested to quit entirely.
func (m GameModel) IsQuitting() bool { return m.quitting }

// BackToMenu returns true if user requested to go back to menu.
func (m GameModel) BackToMenu() bool { return m.back }

// RunGame starts a Bubble Tea program that plays a single run.
func RunGame(opts GameOptions) error {
	opts.QuitOnBack = true
	model := NewGameModel(opts)
	p := tea.NewProgram(model, tea.WithAltScreen())

	final, err := p.Run()
	if gm, ok := final.(GameModel); ok {
		gm.session.Stop()
	}
	return err
}
