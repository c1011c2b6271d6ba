package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/lane-runner/internal/config"
	"github.com/vovakirdan/lane-runner/internal/core"
	"github.com/vovakirdan/lane-runner/internal/storage"
)

// menuEntry is one line of the start menu.
type menuEntry int

const (
	entryPlay menuEntry = iota
	entryDifficulty
	entryScores
	entryQuit
	entryCount
)

// presets lists the selectable difficulties in display order.
var presets = []config.DifficultyPreset{
	config.DifficultyEasy,
	config.DifficultyNormal,
	config.DifficultyHard,
	config.DifficultyFixed,
}

// MenuModel is the Bubble Tea model for the start menu. It runs inside
// AppModel, which reads the choice after each update.
type MenuModel struct {
	cursor         menuEntry
	preset         int
	width          int
	height         int
	store          *storage.Store
	config         core.RuntimeConfig
	keyMapper      *KeyMapper
	quitting       bool
	play           bool
	openScoreboard bool
}

// NewMenuModel creates a new menu model with the given preset preselected.
func NewMenuModel(store *storage.Store, cfg core.RuntimeConfig, preset config.DifficultyPreset) MenuModel {
	m := MenuModel{
		preset:    1,
		width:     cfg.ScreenW,
		height:    cfg.ScreenH,
		store:     store,
		config:    cfg,
		keyMapper: NewKeyMapper(),
	}
	for i, p := range presets {
		if p == preset {
			m.preset = i
		}
	}
	return m
}

// Init initializes the menu model.
func (m MenuModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the menu.
func (m MenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		return m, nil
	}

	return m, nil
}

// handleKey processes keyboard input for menu navigation.
func (m MenuModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.keyMapper.MapKeyToMenuAction(msg) {
	case MenuActionQuit:
		m.quitting = true
		return m, tea.Quit

	case MenuActionUp:
		if m.cursor > 0 {
			m.cursor--
		}

	case MenuActionDown:
		if m.cursor < entryCount-1 {
			m.cursor++
		}

	case MenuActionLeft:
		if m.cursor == entryDifficulty {
			m.preset = (m.preset + len(presets) - 1) % len(presets)
		}

	case MenuActionRight:
		if m.cursor == entryDifficulty {
			m.preset = (m.preset + 1) % len(presets)
		}

	case MenuActionSelect:
		switch m.cursor {
		case entryPlay:
			m.play = true
			return m, nil
		case entryDifficulty:
			m.preset = (m.preset + 1) % len(presets)
		case entryScores:
			m.openScoreboard = true
			return m, nil
		case entryQuit:
			m.quitting = true
			return m, tea.Quit
		}

	case MenuActionScoreboard:
		m.openScoreboard = true
		return m, nil
	}

	return m, nil
}

var (
	titleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	cursorStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("14"))
)

// bestLine shows the best score of the selected preset, which is the value a
// new run starts from, plus the overall high score when another mode beats it.
func (m MenuModel) bestLine() string {
	if m.store == nil {
		return ""
	}
	best, err := storage.NewBestStore(m.store, string(m.Preset())).Load()
	if err != nil {
		return ""
	}
	high, err := m.store.HighScore()
	if err != nil || high <= best {
		if best == 0 {
			return ""
		}
		return fmt.Sprintf("Best %d", best)
	}
	return fmt.Sprintf("Best %d   All modes %d", best, high)
}

// View renders the menu.
func (m MenuModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(centerText(titleStyle.Render("L A N E   R U N N E R"), m.width))
	b.WriteString("\n\n")

	if line := m.bestLine(); line != "" {
		b.WriteString(centerText(line, m.width))
		b.WriteString("\n\n")
	}

	for e := entryPlay; e < entryCount; e++ {
		line := m.label(e)
		if e == m.cursor {
			line = cursorStyle.Render("> " + line)
		} else {
			line = "  " + line
		}
		b.WriteString(centerText(line, m.width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(centerText("Up/Down: Navigate  |  Left/Right: Difficulty  |  Enter: Select  |  Q: Quit", m.width))
	b.WriteString("\n")
	return b.String()
}

func (m MenuModel) label(e menuEntry) string {
	switch e {
	case entryPlay:
		return "Play"
	case entryDifficulty:
		return fmt.Sprintf("Difficulty  < %s >", presets[m.preset])
	case entryScores:
		return "High scores"
	default:
		return "Quit"
	}
}

// Preset returns the selected difficulty.
func (m MenuModel) Preset() config.DifficultyPreset { return presets[m.preset] }

// WantsPlay returns true if the user chose to start a run.
func (m MenuModel) WantsPlay() bool { return m.play }

// IsQuitting returns true if user requested to quit.
func (m MenuModel) IsQuitting() bool { return m.quitting }

// WantsScoreboard returns true if user requested scoreboard.
func (m MenuModel) WantsScoreboard() bool { return m.openScoreboard }

// Config returns the current runtime config (may have been updated by resize).
func (m MenuModel) Config() core.RuntimeConfig { return m.config }

// centerText centers text within given width. Width is measured without
// ANSI escapes.
func centerText(text string, width int) string {
	w := lipgloss.Width(text)
	if w >= width {
		return text
	}
	return strings.Repeat(" ", (width-w)/2) + text
}
