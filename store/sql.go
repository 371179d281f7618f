// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store

import (
	"database/sql"
	"fmt"

	_ "github.com/lib/pq"
	_ "modernc.org/sqlite"
)

const schema = `
CREATE TABLE IF NOT EXISTS tally (
    candidate_id INTEGER PRIMARY KEY,
    votes INTEGER NOT NULL
);

CREATE TABLE IF NOT EXISTS voter_choice (
    voter TEXT PRIMARY KEY,
    candidate_id INTEGER NOT NULL
);
`

// SQLStore keeps snapshots in two tables, rewritten inside one transaction
// per Save. Works against sqlite (driver "sqlite") and postgres (driver
// "postgres").
type SQLStore struct {
	db *sql.DB
}

func OpenSQL(driver, dsn string) (*SQLStore, error) {
	db, err := sql.Open(driver, dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s store: %w", driver, err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to reach %s store: %w", driver, err)
	}
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to create schema: %w", err)
	}
	return &SQLStore{db: db}, nil
}

func (s *SQLStore) Load() (Snapshot, error) {
	snap := Empty()

	rows, err := s.db.Query(`SELECT candidate_id, votes FROM tally`)
	if err != nil {
		return Snapshot{}, fmt.Errorf("failed to load tally: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		var id, votes int
		if err := rows.Scan(&id, &votes); err != nil {
			return Snapshot{}, fmt.Errorf("failed to scan tally row: %w", err)
		}
		snap.Tally[id] = votes
	}
	if err := rows.Err(); err != nil {
		return Snapshot{}, fmt.Errorf("failed to load tally: %w", err)
	}

	choices, err := s.db.Query(`SELECT voter, candidate_id FROM voter_choice`)
	if err != nil {
		return Snapshot{}, fmt.Errorf("failed to load choices: %w", err)
	}
	defer choices.Close()
	for choices.Next() {
		var voter string
		var id int
		if err := choices.Scan(&voter, &id); err != nil {
			return Snapshot{}, fmt.Errorf("failed to scan choice row: %w", err)
		}
		snap.ChoiceByVoter[voter] = id
	}
	if err := choices.Err(); err != nil {
		return Snapshot{}, fmt.Errorf("failed to load choices: %w", err)
	}

	return snap, nil
}

func (s *SQLStore) Save(snap Snapshot) error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin save: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec(`DELETE FROM tally`); err != nil {
		return fmt.Errorf("failed to clear tally: %w", err)
	}
	if _, err := tx.Exec(`DELETE FROM voter_choice`); err != nil {
		return fmt.Errorf("failed to clear choices: %w", err)
	}

	for id, votes := range snap.Tally {
		if _, err := tx.Exec(`INSERT INTO tally (candidate_id, votes) VALUES ($1, $2)`, id, votes); err != nil {
			return fmt.Errorf("failed to write tally: %w", err)
		}
	}
	for voter, id := range snap.ChoiceByVoter {
		if _, err := tx.Exec(`INSERT INTO voter_choice (voter, candidate_id) VALUES ($1, $2)`, voter, id); err != nil {
			return fmt.Errorf("failed to write choice: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit save: %w", err)
	}
	return nil
}

func (s *SQLStore) Close() error {
	return s.db.Close()
}
