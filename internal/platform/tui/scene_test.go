package tui

import (
	"math"
	"strings"
	"testing"

	"github.com/vovakirdan/lane-runner/internal/config"
	"github.com/vovakirdan/lane-runner/internal/core"
	"github.com/vovakirdan/lane-runner/internal/runner"
)

func newSceneSession(t *testing.T) (*Scene, *runner.Session) {
	t.Helper()
	cfg := config.DefaultRunnerConfig()
	scene := NewScene(cfg)
	s := runner.NewSession(cfg, runner.WithRenderer(scene), runner.WithSeed(7))
	s.Start()
	return scene, s
}

func TestSceneTracksAttachedEntities(t *testing.T) {
	scene, s := newSceneSession(t)

	for range 180 {
		s.Tick(1.0 / 60)
	}
	if n := len(s.Entities()); n == 0 || scene.Attached() != n {
		t.Fatalf("Attached() = %d, session has %d entities", scene.Attached(), n)
	}

	s.Reset()
	if scene.Attached() != 0 {
		t.Errorf("Attached() = %d after Reset, want 0", scene.Attached())
	}
}

func TestSceneTint(t *testing.T) {
	scene := NewScene(config.DefaultRunnerConfig())
	scene.SetPlayerTint(true)
	if !scene.Tinted() {
		t.Error("SetPlayerTint(true) not recorded")
	}
	scene.SetPlayerTint(false)
	if scene.Tinted() {
		t.Error("SetPlayerTint(false) not recorded")
	}
}

func TestSceneDrawsPlayerAndTrack(t *testing.T) {
	scene, s := newSceneSession(t)
	screen := core.NewScreen(80, 24)

	scene.Draw(screen, s)

	// Player box sits centred on the near rows.
	cell := screen.GetCell(40, 19)
	if cell.Rune != '▓' || cell.Color != core.ColorPlayer {
		t.Errorf("player cell = %q/%v, want ▓ in bright cyan", cell.Rune, cell.Color)
	}
	if row := screen.Row(horizonRow); !strings.Contains(row, "───") {
		t.Errorf("horizon row = %q, want a horizon line", row)
	}

	scene.SetPlayerTint(true)
	screen.Clear()
	scene.Draw(screen, s)
	if c := screen.GetCell(40, 19).Color; c != core.ColorPlayerHit {
		t.Errorf("tinted player colour = %v, want red", c)
	}
}

func TestSceneSkipsDetachedEntities(t *testing.T) {
	scene, s := newSceneSession(t)
	for range 180 {
		s.Tick(1.0 / 60)
	}
	for _, e := range s.Entities() {
		scene.Detach(e.ID)
	}

	screen := core.NewScreen(80, 24)
	scene.Draw(screen, s)
	for y := range screen.Height() {
		row := screen.Row(y)
		if strings.ContainsAny(row, "█$♥") {
			t.Fatalf("row %d draws a detached entity: %q", y, row)
		}
	}
}

func TestSceneDrawsSpinningCoinEdgeOn(t *testing.T) {
	scene := NewScene(config.DefaultRunnerConfig())
	width := func(rot float64) int {
		screen := core.NewScreen(80, 24)
		scene.fit(80, 24)
		scene.drawEntity(screen, runner.Entity{
			ID:        1,
			Kind:      runner.KindCoin,
			Position:  core.Vec3{0, 0.5, -2},
			RotationY: rot,
		})
		return strings.Count(screen.String(), "$")
	}

	faceOn, edgeOn := width(0), width(math.Pi/2)
	if edgeOn == 0 || edgeOn >= faceOn {
		t.Errorf("coin cells face-on %d, edge-on %d; want a narrower edge-on coin", faceOn, edgeOn)
	}
}

func TestSceneDividers(t *testing.T) {
	scene := NewScene(config.DefaultRunnerConfig())
	got := scene.dividers()
	want := []float64{-3, -1, 1, 3}
	if len(got) != len(want) {
		t.Fatalf("dividers = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("dividers[%d] = %v, want %v", i, got[i], want[i])
		}
	}
}
