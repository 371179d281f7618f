// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package identity resolves the voter-identity key used to enforce one choice
per person.

Two sources, in preference order:

  - Verified: an HS256 JWT minted by an external identity flow (OAuth, OTP),
    consumed here only as proof that some stable subject exists. The subject
    claim is keyed-hashed into "v:<hash>"; the raw email or OAuth subject is
    never stored.
  - Fallback: "s:<hash of session|user-agent>". Weak on purpose: it is a
    policy knob, not a security boundary. Setting IDENTITY_REQUIRED disables
    it and makes votes without a token fail with identity_required.

The same human presenting the same verified identity from two browsers
resolves to the same key; the fallback does not have that property.
*/
package identity
