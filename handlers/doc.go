// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package handlers implements the HTTP endpoints.

# Endpoints

  - GET /api/pow: mint a session-bound proof-of-work challenge
  - POST /api/vote: the admission pipeline plus ledger mutation
  - GET /api/results: tallies, percentages, current leader
  - GET /api/candidates: the configured candidate list
  - GET /api/health: liveness plus advertised PoW difficulty

# The vote pipeline

SubmitVote runs six steps in a fixed order and stops at the first failure:

 1. rate limits (429)
 2. captcha gate (400/403/500)
 3. replay guard (400 stale or malformed, 409 replayed)
 4. proof of work, including the challenge/session binding (400)
 5. voter-identity resolution (403)
 6. ledger apply (400 unknown candidate, 500 storage)

Every rejection is a {"error": reason} body with a short stable reason
code. The security checks fail closed; only unexpected panics in plumbing
are mapped to a generic 500 by the router's recover middleware.
*/
package handlers
