// Package replay records the frame deltas and intents that drove a session
// and re-simulates them. A session with the same seed and config fed the same
// frames ends in the same state, so a recording is a few kilobytes per minute.
package replay

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/vmihailenco/msgpack/v5"

	"github.com/vovakirdan/lane-runner/internal/config"
	"github.com/vovakirdan/lane-runner/internal/runner"
)

// Version is the recording format version written by this package.
const Version = 1

// ErrVersion is returned when loading a recording of an unknown format version.
var ErrVersion = errors.New("replay: unsupported recording version")

// Frame is one frame callback: the intents delivered since the previous
// frame, then the frame's delta.
type Frame struct {
	Intents []runner.Intent `msgpack:"i,omitempty"`
	DT      float64         `msgpack:"dt"`
}

// Recording is everything needed to re-simulate a run.
type Recording struct {
	Version int                 `msgpack:"version"`
	Seed    int64               `msgpack:"seed"`
	Preset  string              `msgpack:"preset,omitempty"`
	Config  config.RunnerConfig `msgpack:"config"`
	Frames  []Frame             `msgpack:"frames"`
	Final   *runner.Snapshot    `msgpack:"final,omitempty"`
}

// Duration returns the summed frame time in seconds.
func (r *Recording) Duration() float64 {
	total := 0.0
	for _, f := range r.Frames {
		total += f.DT
	}
	return total
}

// Save encodes rec to w.
func Save(w io.Writer, rec *Recording) error {
	if err := msgpack.NewEncoder(w).Encode(rec); err != nil {
		return fmt.Errorf("replay: cannot encode recording: %w", err)
	}
	return nil
}

// Load decodes a recording from r.
func Load(r io.Reader) (*Recording, error) {
	var rec Recording
	if err := msgpack.NewDecoder(r).Decode(&rec); err != nil {
		return nil, fmt.Errorf("replay: cannot decode recording: %w", err)
	}
	if rec.Version != Version {
		return nil, fmt.Errorf("%w: %d", ErrVersion, rec.Version)
	}
	return &rec, nil
}

// SaveFile writes rec to path, creating parent directories as needed.
func SaveFile(path string, rec *Recording) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("replay: cannot create directory: %w", err)
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("replay: cannot create %s: %w", path, err)
	}

	w := bufio.NewWriter(f)
	if err := Save(w, rec); err != nil {
		f.Close()
		return err
	}
	if err := w.Flush(); err != nil {
		f.Close()
		return fmt.Errorf("replay: cannot write %s: %w", path, err)
	}
	return f.Close()
}

// LoadFile reads a recording from path.
func LoadFile(path string) (*Recording, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("replay: cannot open %s: %w", path, err)
	}
	defer f.Close()
	return Load(bufio.NewReader(f))
}

// Play re-simulates rec on a fresh session built from the recorded config and
// seed, with opts applied before the seed. It returns the final snapshot.
func Play(rec *Recording, opts ...runner.Option) runner.Snapshot {
	opts = append(opts, runner.WithSeed(rec.Seed))
	s := runner.NewSession(rec.Config, opts...)
	s.Start()
	defer s.Stop()

	for _, f := range rec.Frames {
		for _, in := range f.Intents {
			s.HandleIntent(in)
		}
		s.Tick(f.DT)
	}
	return s.Snapshot()
}

// Verify re-simulates rec and compares the result with the recorded final
// snapshot. Best is excluded, as it depends on the store the run was played against.
func Verify(rec *Recording) error {
	if rec.Final == nil {
		return errors.New("replay: recording has no final snapshot")
	}
	got := Play(rec)
	want := *rec.Final
	got.Best, want.Best = 0, 0
	if got != want {
		return fmt.Errorf("replay: diverged: recorded score %d lives %d, replayed score %d lives %d",
			want.Score, want.Lives, got.Score, got.Lives)
	}
	return nil
}
