package tui

import (
	"fmt"
	"strings"

	"github.com/vovakirdan/lane-runner/internal/core"
	"github.com/vovakirdan/lane-runner/internal/runner"
)

// drawHUD draws the status line and, when needed, the pause or game over panel.
func drawHUD(screen *core.Screen, s *runner.Session, preset string) {
	maxLives := s.Config().Rules.MaxLives
	hearts := strings.Repeat("♥", s.Lives()) + strings.Repeat("♡", max(0, maxLives-s.Lives()))

	left := fmt.Sprintf(" SCORE %06d  BEST %06d  SPEED %4.1f  COINS %d", s.Score(), s.Best(), s.Speed(), s.Coins())
	screen.DrawTextColored(0, 0, left, core.ColorHUD)
	screen.DrawTextColored(screen.Width()-len([]rune(hearts))-1, 0, hearts, core.ColorHeart)
	if preset != "" {
		screen.DrawTextColored(1, 1, strings.ToUpper(preset), core.ColorTrack)
	}

	switch {
	case s.IsGameOver():
		lines := []string{
			"GAME OVER",
			"",
			fmt.Sprintf("Score %d   Coins %d", s.Score(), s.Coins()),
			bestLine(s),
			"",
			"R restart   B menu   Q quit",
		}
		drawPanel(screen, lines, core.ColorBrightYellow)
	case s.Paused():
		drawPanel(screen, []string{"PAUSED", "", "P resume   B menu"}, core.ColorBrightCyan)
	}
}

func bestLine(s *runner.Session) string {
	if s.Score() > 0 && s.Score() == s.Best() {
		return "New best!"
	}
	return fmt.Sprintf("Best %d", s.Best())
}

// drawPanel draws a boxed, centred block of text over the track.
func drawPanel(screen *core.Screen, lines []string, color core.Color) {
	width := 0
	for _, l := range lines {
		width = max(width, len([]rune(l)))
	}
	width += 4
	height := len(lines) + 2

	r := core.NewRect((screen.Width()-width)/2, (screen.Height()-height)/2, width, height)
	screen.DrawRect(r, ' ')
	screen.DrawBox(r, color)
	for i, l := range lines {
		x := r.X + (width-len([]rune(l)))/2
		screen.DrawTextColored(x, r.Y+1+i, l, color)
	}
}
