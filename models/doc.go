// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package models defines the request, response, and domain types shared across
the API surface.

# Candidates

The poll runs against a fixed candidate list resolved once at boot: either
the built-in default or a JSON file named by CANDIDATES_FILE. Candidates are
never created or mutated at runtime; a vote for an id outside the list is
rejected before any state is touched.

# Vote Requests

A vote submission carries everything the admission gate needs in one body:

	{
	  "candidateId": 3,
	  "nonce": "b1946ac9...",
	  "ts": 1735689600000,
	  "pow": { "challenge": "ab12...:session-id", "nonce": 48213 },
	  "verifiedIdentityToken": "<optional JWT>",
	  "captchaToken": "<optional captcha response>"
	}

Successful votes answer {"ok":true} plus exactly one of first_vote,
duplicate, or switched. Rejections answer {"error":"<reason>"} where reason
is a short machine-readable code (rate_limited_ip, replay_detected,
bad_pow, ...), never an internal message.
*/
package models
