// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package session manages the signed session cookie.

Every caller gets an opaque random session id on first contact, carried in a
long-lived httpOnly cookie and signed with HMAC-SHA256 so clients cannot
forge ids. The session id is the bucket key for session-scoped rate limits
and the binding target for proof-of-work challenges.

Sessions are never expired or destroyed server-side; there is no session
registry. A cookie whose signature fails verification is treated the same as
no cookie at all and replaced with a fresh session.
*/
package session
