// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package pow

import (
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"strconv"
	"strings"
)

// Issuer mints proof-of-work challenges bound to a session.
type Issuer struct {
	bits int
}

func NewIssuer(bits int) *Issuer {
	return &Issuer{bits: bits}
}

// Bits returns the difficulty target advertised with each challenge.
func (i *Issuer) Bits() int {
	return i.bits
}

// Issue creates a challenge of the form "<random hex>:<session id>". The
// embedded session id lets the vote handler confirm a solved challenge was
// minted for the presenting session without keeping a challenge registry.
func (i *Issuer) Issue(sessionID string) (string, error) {
	b := make([]byte, 16)
	if _, err := rand.Read(b); err != nil {
		return "", fmt.Errorf("failed to generate challenge: %w", err)
	}
	return hex.EncodeToString(b) + ":" + sessionID, nil
}

// BoundTo reports whether the challenge embeds the given session id.
func BoundTo(challenge, sessionID string) bool {
	if sessionID == "" {
		return false
	}
	return strings.HasSuffix(challenge, ":"+sessionID)
}

// Verify checks a hashcash-style solution: the SHA-256 digest of
// "<challenge>:<nonce>" must start with at least bits zero bits. A missing
// challenge is a plain rejection, never an error.
func Verify(challenge string, nonce int64, bits int) bool {
	if challenge == "" {
		return false
	}
	h := sha256.Sum256([]byte(challenge + ":" + strconv.FormatInt(nonce, 10)))
	return LeadingZeroBits(h[:]) >= bits
}

// LeadingZeroBits counts zero bits from the most significant byte down,
// stopping at the first set bit.
func LeadingZeroBits(digest []byte) int {
	bits := 0
	for _, b := range digest {
		if b == 0 {
			bits += 8
			continue
		}
		for i := 7; i >= 0; i-- {
			if b&(1<<uint(i)) != 0 {
				return bits
			}
			bits++
		}
	}
	return bits
}
