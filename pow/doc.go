// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package pow implements the hashcash-style proof-of-work gate.

Clients fetch a challenge, then search for an integer nonce such that
SHA-256("<challenge>:<nonce>") starts with the required number of zero bits.
Finding a solution costs about 2^bits hash attempts; verifying one costs a
single hash. This imposes cost on automated mass voting, it is not an
authorization check.

Challenges are stateless: "<random hex>:<session id>". There is no
server-side challenge table and no challenge expiry; request freshness is
enforced separately by the replay guard's timestamp bound. The session id
suffix lets the verifier confirm a challenge belongs to the presenting
session (BoundTo) without any lookup.
*/
package pow
