// Package store holds the in-memory group-order state for the lifetime of the process.
package store

import (
	"sync"

	"github.com/fairyhunter13/vendor-supply-hub/internal/model"
)

// Store guards a single GroupOrderState. Concurrent applies are last-write-wins.
type Store struct {
	mu    sync.RWMutex
	state model.GroupOrderState
	rev   revision
}

// New returns a Store initialized with seed.
func New(seed model.GroupOrderState) *Store {
	seed.Vendors = cloneVendors(seed.Vendors)
	return &Store{state: seed}
}

// Read returns a snapshot of the current state.
func (s *Store) Read() model.GroupOrderState {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.snapshot()
}

// Apply replaces every field present in p and returns the post-update snapshot.
func (s *Store) Apply(p model.GroupOrderPatch) model.GroupOrderState {
	s.mu.Lock()
	defer s.mu.Unlock()
	if p.Empty() {
		return s.snapshot()
	}
	if p.VendorCount != nil {
		s.state.VendorCount = *p.VendorCount
	}
	if p.OrderTotal != nil {
		s.state.OrderTotal = *p.OrderTotal
	}
	if p.TimeRemaining != nil {
		s.state.TimeRemaining = *p.TimeRemaining
	}
	if p.Vendors != nil {
		s.state.Vendors = cloneVendors(*p.Vendors)
	}
	s.rev.bump()
	return s.snapshot()
}

// Revision returns the number of non-empty patches applied so far.
func (s *Store) Revision() uint64 { return s.rev.load() }

// snapshot must be called with mu held.
func (s *Store) snapshot() model.GroupOrderState {
	st := s.state
	st.Vendors = cloneVendors(s.state.Vendors)
	return st
}

// cloneVendors never returns nil so the list always encodes as a JSON array.
func cloneVendors(v []string) []string {
	out := make([]string, len(v))
	copy(out, v)
	return out
}
