// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package store persists the vote ledger.

The unit of persistence is a full Snapshot: tallies plus every voter's
current choice, rewritten atomically on each mutating vote. The snapshot
stays small (one row per voter, one per candidate), which keeps the
full-rewrite strategy simple and crash-safe: a Save either lands entirely
or not at all.

Backends:

  - bolt: a single-file bbolt database, one write transaction per Save
  - sqlite: the default, a local file via the pure-Go modernc driver
  - postgres: same schema over lib/pq, for deployments that already run one
  - memory: test double with fault injection

The replay and rate-limit state is deliberately NOT persisted; only the
ledger survives restarts.
*/
package store
