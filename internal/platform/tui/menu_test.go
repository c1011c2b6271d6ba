package tui

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/vovakirdan/lane-runner/internal/config"
	"github.com/vovakirdan/lane-runner/internal/core"
	"github.com/vovakirdan/lane-runner/internal/storage"
)

func TestMenuShowsBestForSelectedPreset(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "runs.db"))
	if err != nil {
		t.Fatalf("Open() error: %v", err)
	}
	defer store.Close()

	if err := store.RaiseBest(string(config.DifficultyHard), 300); err != nil {
		t.Fatalf("RaiseBest() error: %v", err)
	}

	hard := NewMenuModel(store, core.DefaultConfig(), config.DifficultyHard).View()
	if !strings.Contains(hard, "Best 300") {
		t.Errorf("hard menu should show its best:\n%s", hard)
	}
	normal := NewMenuModel(store, core.DefaultConfig(), config.DifficultyNormal).View()
	if strings.Contains(normal, "300") {
		t.Errorf("normal menu shows the hard best:\n%s", normal)
	}

	if _, err := store.SaveRun(storage.Run{Score: 900, Preset: "easy"}); err != nil {
		t.Fatalf("SaveRun() error: %v", err)
	}
	hard = NewMenuModel(store, core.DefaultConfig(), config.DifficultyHard).View()
	if !strings.Contains(hard, "Best 300   All modes 900") {
		t.Errorf("hard menu should mention the overall high score:\n%s", hard)
	}
}
