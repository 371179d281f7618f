// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package ledger

import (
	"errors"
	"fmt"
	"math"
	"sync"

	"github.com/danielhkuo/pollgate/models"
	"github.com/danielhkuo/pollgate/store"
)

var ErrUnknownCandidate = errors.New("unknown_candidate")

// Outcome reports what a vote did to the ledger.
type Outcome string

const (
	FirstVote Outcome = "first_vote"
	Duplicate Outcome = "duplicate"
	Switched  Outcome = "switched"
)

// Ledger holds the authoritative vote state under the REPLACE policy: each
// voter has at most one current choice, and only that choice counts toward
// the tallies. sum(tally) == number of voters holds after every successful
// mutation.
type Ledger struct {
	mu         sync.Mutex
	candidates []models.Candidate
	byID       map[int]models.Candidate
	tally      map[int]int
	choice     map[string]int
	store      store.Store
}

// Open loads the persisted snapshot and initializes a zero tally for any
// configured candidate not yet present.
func Open(candidates []models.Candidate, st store.Store) (*Ledger, error) {
	snap, err := st.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load ledger: %w", err)
	}

	byID := make(map[int]models.Candidate, len(candidates))
	for _, c := range candidates {
		byID[c.ID] = c
		if _, ok := snap.Tally[c.ID]; !ok {
			snap.Tally[c.ID] = 0
		}
	}

	return &Ledger{
		candidates: candidates,
		byID:       byID,
		tally:      snap.Tally,
		choice:     snap.ChoiceByVoter,
		store:      st,
	}, nil
}

// Apply records a vote. It is atomic per call: the in-memory mutation and
// its persistence happen under one lock, and a failed persist rolls the
// memory state back so the caller is never told ok for a vote that is not
// durable.
func (l *Ledger) Apply(voter string, candidateID int) (Outcome, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if _, ok := l.byID[candidateID]; !ok {
		return "", ErrUnknownCandidate
	}

	prev, hasVoted := l.choice[voter]
	if hasVoted && prev == candidateID {
		// Idempotent no-op, nothing to persist
		return Duplicate, nil
	}

	outcome := FirstVote
	prevDecremented := false
	if hasVoted {
		outcome = Switched
		// Floor at zero: a tally must never go negative even if the
		// persisted state was corrupted out-of-band.
		if l.tally[prev] > 0 {
			l.tally[prev]--
			prevDecremented = true
		}
	}
	l.tally[candidateID]++
	l.choice[voter] = candidateID

	if err := l.persistLocked(); err != nil {
		l.tally[candidateID]--
		if prevDecremented {
			l.tally[prev]++
		}
		if hasVoted {
			l.choice[voter] = prev
		} else {
			delete(l.choice, voter)
		}
		return "", fmt.Errorf("failed to persist vote: %w", err)
	}

	return outcome, nil
}

func (l *Ledger) persistLocked() error {
	snap := store.Snapshot{Tally: l.tally, ChoiceByVoter: l.choice}
	return l.store.Save(snap.Clone())
}

// Candidates returns the configured candidate list in order.
func (l *Ledger) Candidates() []models.Candidate {
	return l.candidates
}

// Results computes the published tallies, percentages to one decimal, and
// the current leader.
func (l *Ledger) Results() models.ResultsResponse {
	l.mu.Lock()
	defer l.mu.Unlock()

	total := 0
	for _, c := range l.candidates {
		total += l.tally[c.ID]
	}

	results := make([]models.CandidateResult, 0, len(l.candidates))
	var leader *models.CandidateResult
	for _, c := range l.candidates {
		votes := l.tally[c.ID]
		percent := 0.0
		if total > 0 {
			percent = math.Round(float64(votes)*1000/float64(total)) / 10
		}
		results = append(results, models.CandidateResult{
			ID:      c.ID,
			Name:    c.Name,
			Votes:   votes,
			Percent: percent,
		})
		r := &results[len(results)-1]
		if leader == nil || r.Votes >= leader.Votes {
			leader = r
		}
	}
	// No leader until someone votes
	if total == 0 {
		leader = nil
	}

	return models.ResultsResponse{Total: total, Leader: leader, Results: results}
}

// Tally returns a copy of the current per-candidate counts.
func (l *Ledger) Tally() map[int]int {
	l.mu.Lock()
	defer l.mu.Unlock()
	out := make(map[int]int, len(l.tally))
	for k, v := range l.tally {
		out[k] = v
	}
	return out
}

// VoterCount reports how many voters currently hold a choice.
func (l *Ledger) VoterCount() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.choice)
}
