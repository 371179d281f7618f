// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package main provides the entry point for the pollgate API server.

Pollgate runs a public opinion poll and approximates "one person, one vote"
without a verified identity provider. Every vote passes an admission gate
(rate limiting, an optional captcha, replay suppression, a hashcash-style
proof of work, and voter-identity resolution) before the tally is touched.

# Starting the Server

The server reads configuration from environment variables (a .env file is
honored) or CLI flags:

	SESSION_SECRET=... IDENTITY_SECRET=... go run .

Or with flags:

	go run . -p 3318 -t bolt -d poll.db --session-secret ... --identity-secret ...

# Configuration

Required settings:

  - SESSION_SECRET (--session-secret): session cookie signing key
  - IDENTITY_SECRET (--identity-secret): voter identity hashing key

Optional settings:

  - PORT (-p): server port (default: 3318)
  - STORE_TYPE (-t): sqlite (default), postgres, or bolt
  - DATABASE_URL (-d): file path or DSN (default: pollgate.db)
  - POW_BITS, REPLAY_WINDOW_MS, IP_MAX_10MIN, IP_MAX_DAY,
    SESSION_MIN_INTERVAL_MS, SESSION_MAX_DAY: gate tuning
  - TIMEZONE: calendar-day boundary for daily quotas
  - IDENTITY_REQUIRED, TRUST_PROXY, DEMO_MODE: booleans
  - TURNSTILE_SECRET: enables the captcha gate
  - CANDIDATES_FILE: JSON candidate list override

# Architecture

The server uses a handler-based architecture with dependency injection:

  - handlers: HTTP request handlers (challenge, vote, results)
  - router: route definitions and gate assembly using Go 1.22+ routing
  - middleware: CORS, logging, recovery, JSON helpers, client IP
  - session: signed session cookies
  - pow, replay, ratelimit, identity, captcha: the admission checks
  - ledger: the REPLACE-policy vote state machine
  - store: durable snapshot persistence (sqlite, postgres, bolt)
  - models: request/response types and the candidate list
  - cliparse: configuration parsing

See package documentation for each component.
*/
package main
