// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store

import "sync"

// MemStore is an in-memory Store used by tests and throwaway deployments.
// SaveErr, when set, makes the next Save fail; tests use it to exercise the
// ledger's rollback path.
type MemStore struct {
	mu      sync.Mutex
	snap    Snapshot
	saves   int
	SaveErr error
}

func NewMemStore() *MemStore {
	return &MemStore{snap: Empty()}
}

func (s *MemStore) Load() (Snapshot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snap.Clone(), nil
}

func (s *MemStore) Save(snap Snapshot) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.SaveErr != nil {
		err := s.SaveErr
		s.SaveErr = nil
		return err
	}
	s.snap = snap.Clone()
	s.saves++
	return nil
}

func (s *MemStore) Close() error { return nil }

// Saves reports how many snapshots were persisted.
func (s *MemStore) Saves() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.saves
}
