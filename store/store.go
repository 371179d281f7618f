// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store

import "fmt"

// Snapshot is the full durable state of the poll: per-candidate tallies and
// the current choice of every known voter. It is written in full after each
// mutating vote.
type Snapshot struct {
	Tally         map[int]int    `json:"tally"`
	ChoiceByVoter map[string]int `json:"choiceByVoter"`
}

// Empty returns a snapshot with initialized maps.
func Empty() Snapshot {
	return Snapshot{
		Tally:         make(map[int]int),
		ChoiceByVoter: make(map[string]int),
	}
}

// Clone deep-copies the snapshot so callers can hand it across a lock
// boundary.
func (s Snapshot) Clone() Snapshot {
	c := Snapshot{
		Tally:         make(map[int]int, len(s.Tally)),
		ChoiceByVoter: make(map[string]int, len(s.ChoiceByVoter)),
	}
	for k, v := range s.Tally {
		c.Tally[k] = v
	}
	for k, v := range s.ChoiceByVoter {
		c.ChoiceByVoter[k] = v
	}
	return c
}

// Store persists ledger snapshots. Save must be durable before it returns:
// the vote handler only acknowledges a vote after Save succeeds.
type Store interface {
	Load() (Snapshot, error)
	Save(Snapshot) error
	Close() error
}

// Open creates the configured backend. url is a file path for sqlite and
// bolt, a DSN for postgres.
func Open(storeType, url string) (Store, error) {
	switch storeType {
	case "bolt":
		return OpenBolt(url)
	case "sqlite":
		return OpenSQL("sqlite", url)
	case "postgres":
		return OpenSQL("postgres", url)
	default:
		return nil, fmt.Errorf("unknown store type %q", storeType)
	}
}
