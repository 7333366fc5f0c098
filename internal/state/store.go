// Package state holds every collection in one AppState and applies
// mutations to it: ID generation, timestamping, cascade rules, and a
// flush of the whole serialized state to the persistence adapter after
// each change. Mutations swap in a fresh state atomically, so a reader
// never observes a partial apply.
//
// Business-rule validation is a boundary concern and does not live here;
// the only store-level invariants are the MIT and weekly-outcome length
// clamps. Updates and deletes against unknown ids are silent no-ops.
package state

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/astralhq/astral/internal/derive"
	"github.com/astralhq/astral/internal/persist"
	"github.com/astralhq/astral/internal/types"
)

// Store owns the single app state and serializes all access to it.
type Store struct {
	mu    sync.RWMutex
	state *types.AppState
	blob  persist.Blob
	now   func() time.Time
}

// Option configures a Store.
type Option func(*Store)

// WithClock overrides the wall clock. Tests use this to pin "today".
func WithClock(now func() time.Time) Option {
	return func(s *Store) {
		s.now = now
	}
}

// New loads the last persisted blob through the adapter, merges it with the
// compiled-in defaults, and returns a ready Store. A missing blob yields the
// default state (including the seed areas).
func New(ctx context.Context, blob persist.Blob, opts ...Option) (*Store, error) {
	s := &Store{
		blob: blob,
		now:  time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}

	data, err := blob.Load(ctx)
	switch {
	case err == persist.ErrNotFound:
		s.state = DefaultState(s.now())
	case err != nil:
		return nil, fmt.Errorf("load state: %w", err)
	default:
		loaded := &types.AppState{}
		if err := json.Unmarshal(data, loaded); err != nil {
			return nil, fmt.Errorf("decode state: %w", err)
		}
		s.state = mergeWithDefaults(loaded, s.now())
	}

	return s, nil
}

// Read runs fn against the current state snapshot under a read lock.
// fn must not retain or mutate the state.
func (s *Store) Read(fn func(st *types.AppState, now time.Time)) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	fn(s.state, s.now())
}

// Snapshot returns a deep copy of the current state.
func (s *Store) Snapshot() *types.AppState {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state.Clone()
}

// Export returns the current state serialized as the persistence blob.
func (s *Store) Export() ([]byte, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return json.Marshal(s.state)
}

// Today returns the current local calendar date.
func (s *Store) Today() string {
	return derive.Today(s.now())
}

// Now returns the store's current wall-clock time.
func (s *Store) Now() time.Time {
	return s.now()
}

// mutate clones the current state, applies fn to the clone, swaps it in,
// and flushes the whole serialized state to the adapter. The lock is held
// through the flush so blob writes happen in mutation order.
func (s *Store) mutate(ctx context.Context, fn func(st *types.AppState)) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	next := s.state.Clone()
	fn(next)
	s.state = next

	data, err := json.Marshal(next)
	if err != nil {
		return fmt.Errorf("encode state: %w", err)
	}
	if err := s.blob.Save(ctx, data); err != nil {
		return fmt.Errorf("flush state: %w", err)
	}
	return nil
}

// nowISO returns the current instant as an RFC 3339 UTC timestamp, the
// format used for createdAt/updatedAt stamps.
func (s *Store) nowISO() string {
	return s.now().UTC().Format(time.RFC3339)
}

// today returns the current local calendar date for scheduling fields.
func (s *Store) today() string {
	return derive.Today(s.now())
}
