package models

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
)

// Candidate is one entry in the statically configured candidate list.
type Candidate struct {
	ID    int    `json:"id"`
	Name  string `json:"name"`
	Color string `json:"color"`
}

// Request types

// PowSolution carries a solved proof-of-work puzzle. The nonce must be an
// integer; anything else fails JSON decoding and is rejected as malformed.
type PowSolution struct {
	Challenge string `json:"challenge"`
	Nonce     int64  `json:"nonce"`
}

type VoteRequest struct {
	CandidateID           int         `json:"candidateId"`
	Nonce                 string      `json:"nonce"`
	TS                    int64       `json:"ts"` // epoch milliseconds
	Pow                   PowSolution `json:"pow"`
	VerifiedIdentityToken string      `json:"verifiedIdentityToken,omitempty"`
	CaptchaToken          string      `json:"captchaToken,omitempty"`
}

// Response types

type ChallengeResponse struct {
	Challenge string `json:"challenge"`
	Bits      int    `json:"bits"`
}

type VoteResponse struct {
	OK        bool `json:"ok"`
	FirstVote bool `json:"first_vote,omitempty"`
	Duplicate bool `json:"duplicate,omitempty"`
	Switched  bool `json:"switched,omitempty"`
}

type HealthResponse struct {
	OK      bool   `json:"ok"`
	PowBits int    `json:"pow_bits"`
	Today   string `json:"today"`
}

type CandidateResult struct {
	ID      int     `json:"id"`
	Name    string  `json:"name"`
	Votes   int     `json:"votes"`
	Percent float64 `json:"percent"`
}

type ResultsResponse struct {
	Total   int               `json:"total"`
	Leader  *CandidateResult  `json:"leader"`
	Results []CandidateResult `json:"results"`
}

// Error response

type ErrorResponse struct {
	Error string `json:"error"`
}

// DefaultCandidates returns the built-in candidate list used when no
// candidates file is configured.
func DefaultCandidates() []Candidate {
	return []Candidate{
		{ID: 1, Name: "Riverside Alliance", Color: "#0aa2c0"},
		{ID: 2, Name: "Harbour Coalition", Color: "#1b4db3"},
		{ID: 3, Name: "Greenfield Party", Color: "#2e7d32"},
		{ID: 4, Name: "Civic Renewal", Color: "#f36f21"},
		{ID: 5, Name: "Downtown Forward", Color: "#d32f2f"},
	}
}

// LoadCandidates reads a JSON candidate list from path, falling back to the
// default list when path is empty.
func LoadCandidates(path string) ([]Candidate, error) {
	if path == "" {
		return DefaultCandidates(), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read candidates file: %w", err)
	}

	var candidates []Candidate
	if err := json.Unmarshal(data, &candidates); err != nil {
		return nil, fmt.Errorf("failed to parse candidates file: %w", err)
	}
	if len(candidates) == 0 {
		return nil, errors.New("candidates file is empty")
	}

	seen := make(map[int]bool, len(candidates))
	for _, c := range candidates {
		if c.ID <= 0 {
			return nil, fmt.Errorf("candidate %q has invalid id %d", c.Name, c.ID)
		}
		if seen[c.ID] {
			return nil, fmt.Errorf("duplicate candidate id %d", c.ID)
		}
		seen[c.ID] = true
	}

	return candidates, nil
}
