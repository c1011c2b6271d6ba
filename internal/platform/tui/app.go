package tui

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/lane-runner/internal/config"
	"github.com/vovakirdan/lane-runner/internal/core"
	"github.com/vovakirdan/lane-runner/internal/runner"
	"github.com/vovakirdan/lane-runner/internal/storage"
)

// AppOptions configures the full menu, run and scoreboard flow.
type AppOptions struct {
	Config  config.RunnerConfig // before any preset
	Preset  config.DifficultyPreset
	Runtime core.RuntimeConfig
	Store   *storage.Store
	Sound   runner.SoundSink
	Logger  *log.Logger
	Player  string
}

type appScreen int

const (
	screenMenu appScreen = iota
	screenGame
	screenScores
)

// AppModel manages the session flow: menu -> run -> menu, with the
// scoreboard one key away. Local play and every SSH connection use it.
type AppModel struct {
	opts     AppOptions
	screen   appScreen
	menu     MenuModel
	game     *GameModel
	scores   *ScoreboardModel
	quitting bool
}

// NewAppModel creates the top-level model.
func NewAppModel(opts AppOptions) AppModel {
	if opts.Preset == "" {
		opts.Preset = config.DifficultyNormal
	}
	return AppModel{
		opts: opts,
		menu: NewMenuModel(opts.Store, opts.Runtime, opts.Preset),
	}
}

// Init initializes the session.
func (m AppModel) Init() tea.Cmd {
	return m.menu.Init()
}

// Update handles messages for the session.
func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if wsm, ok := msg.(tea.WindowSizeMsg); ok {
		m.opts.Runtime.ScreenW = wsm.Width
		m.opts.Runtime.ScreenH = wsm.Height
	}

	switch m.screen {
	case screenGame:
		return m.updateGame(msg)
	case screenScores:
		return m.updateScores(msg)
	default:
		return m.updateMenu(msg)
	}
}

// updateMenu handles updates when in menu mode.
func (m AppModel) updateMenu(msg tea.Msg) (tea.Model, tea.Cmd) {
	next, cmd := m.menu.Update(msg)
	if menu, ok := next.(MenuModel); ok {
		m.menu = menu
	}

	switch {
	case m.menu.IsQuitting():
		m.quitting = true
		return m, tea.Quit

	case m.menu.WantsPlay():
		m.opts.Preset = m.menu.Preset()
		cfg := m.opts.Config
		config.ApplyRunnerPreset(&cfg, m.opts.Preset)

		game := NewGameModel(GameOptions{
			Config:  cfg,
			Preset:  m.opts.Preset,
			Runtime: m.opts.Runtime,
			Store:   m.opts.Store,
			Sound:   m.opts.Sound,
			Logger:  m.opts.Logger,
			Player:  m.opts.Player,
		})
		m.game = &game
		m.screen = screenGame
		return m, m.game.Init()

	case m.menu.WantsScoreboard():
		scores := NewScoreboardModel(m.opts.Store, m.opts.Runtime.ScreenW, m.opts.Runtime.ScreenH)
		m.scores = &scores
		m.screen = screenScores
		return m, nil
	}

	return m, cmd
}

// updateGame handles updates when a run is on screen.
func (m AppModel) updateGame(msg tea.Msg) (tea.Model, tea.Cmd) {
	next, cmd := m.game.Update(msg)
	if game, ok := next.(GameModel); ok {
		m.game = &game
	}

	if m.game.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}
	if m.game.BackToMenu() {
		return m.backToMenu()
	}
	return m, cmd
}

// updateScores handles updates when the scoreboard is on screen.
func (m AppModel) updateScores(msg tea.Msg) (tea.Model, tea.Cmd) {
	next, cmd := m.scores.Update(msg)
	if scores, ok := next.(ScoreboardModel); ok {
		m.scores = &scores
	}

	if m.scores.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}
	if m.scores.IsGoingBack() {
		return m.backToMenu()
	}
	return m, cmd
}

func (m AppModel) backToMenu() (tea.Model, tea.Cmd) {
	m.game = nil
	m.scores = nil
	m.screen = screenMenu
	m.menu = NewMenuModel(m.opts.Store, m.opts.Runtime, m.opts.Preset)
	return m, m.menu.Init()
}

// View renders the current view.
func (m AppModel) View() string {
	if m.quitting {
		return ""
	}
	switch m.screen {
	case screenGame:
		return m.game.View()
	case screenScores:
		return m.scores.View()
	default:
		return m.menu.View()
	}
}

// Close stops a run that is still on screen, releasing its collaborators.
func (m AppModel) Close() {
	if m.game != nil {
		m.game.Session().Stop()
	}
}

// RunApp starts the full flow as a local Bubble Tea program.
func RunApp(opts AppOptions) error {
	p := tea.NewProgram(NewAppModel(opts), tea.WithAltScreen())
	final, err := p.Run()
	if app, ok := final.(AppModel); ok {
		app.Close()
	}
	return err
}
