package storage

import "github.com/vovakirdan/lane-runner/internal/runner"

// DefaultBestKey is the best-score slot used when no preset is selected.
const DefaultBestKey = "runner"

// BestStore adapts a Store to the session's single-integer best score.
// Each key is an independent slot, so presets can keep separate bests.
type BestStore struct {
	store *Store
	key   string
}

// NewBestStore returns a best-score adapter for key. An empty key means DefaultBestKey.
func NewBestStore(store *Store, key string) *BestStore {
	if key == "" {
		key = DefaultBestKey
	}
	return &BestStore{store: store, key: key}
}

// Load returns the stored best score.
func (b *BestStore) Load() (int, error) {
	return b.store.Best(b.key)
}

// Save persists best. A lower value never replaces a higher one.
func (b *BestStore) Save(best int) error {
	return b.store.RaiseBest(b.key, best)
}

// Key returns the slot this adapter reads and writes.
func (b *BestStore) Key() string { return b.key }

// Ensure BestStore implements runner.BestStore
var _ runner.BestStore = (*BestStore)(nil)
