// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store

import (
	"fmt"
	"strconv"

	bolt "go.etcd.io/bbolt"
)

var (
	tallyBucket  = []byte("tally")
	choiceBucket = []byte("choices")
)

// BoltStore keeps snapshots in a single-file bbolt database. Each Save is
// one write transaction replacing both buckets, so readers never observe a
// half-written snapshot.
type BoltStore struct {
	db *bolt.DB
}

func OpenBolt(path string) (*BoltStore, error) {
	db, err := bolt.Open(path, 0o600, bolt.DefaultOptions)
	if err != nil {
		return nil, fmt.Errorf("failed to open bolt store: %w", err)
	}

	err = db.Update(func(tx *bolt.Tx) error {
		if _, err := tx.CreateBucketIfNotExists(tallyBucket); err != nil {
			return err
		}
		_, err := tx.CreateBucketIfNotExists(choiceBucket)
		return err
	})
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to init bolt store: %w", err)
	}

	return &BoltStore{db: db}, nil
}

func (s *BoltStore) Load() (Snapshot, error) {
	snap := Empty()

	err := s.db.View(func(tx *bolt.Tx) error {
		if err := tx.Bucket(tallyBucket).ForEach(func(k, v []byte) error {
			id, err := strconv.Atoi(string(k))
			if err != nil {
				return fmt.Errorf("corrupt tally key %q: %w", k, err)
			}
			count, err := strconv.Atoi(string(v))
			if err != nil {
				return fmt.Errorf("corrupt tally value %q: %w", v, err)
			}
			snap.Tally[id] = count
			return nil
		}); err != nil {
			return err
		}

		return tx.Bucket(choiceBucket).ForEach(func(k, v []byte) error {
			id, err := strconv.Atoi(string(v))
			if err != nil {
				return fmt.Errorf("corrupt choice value %q: %w", v, err)
			}
			snap.ChoiceByVoter[string(k)] = id
			return nil
		})
	})
	if err != nil {
		return Snapshot{}, fmt.Errorf("failed to load snapshot: %w", err)
	}

	return snap, nil
}

func (s *BoltStore) Save(snap Snapshot) error {
	err := s.db.Update(func(tx *bolt.Tx) error {
		if err := tx.DeleteBucket(tallyBucket); err != nil {
			return err
		}
		if err := tx.DeleteBucket(choiceBucket); err != nil {
			return err
		}

		tb, err := tx.CreateBucket(tallyBucket)
		if err != nil {
			return err
		}
		for id, count := range snap.Tally {
			if err := tb.Put([]byte(strconv.Itoa(id)), []byte(strconv.Itoa(count))); err != nil {
				return err
			}
		}

		cb, err := tx.CreateBucket(choiceBucket)
		if err != nil {
			return err
		}
		for voter, id := range snap.ChoiceByVoter {
			if err := cb.Put([]byte(voter), []byte(strconv.Itoa(id))); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("failed to save snapshot: %w", err)
	}
	return nil
}

func (s *BoltStore) Close() error {
	return s.db.Close()
}
