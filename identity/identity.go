// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package identity

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"errors"

	"github.com/golang-jwt/jwt/v5"
)

var (
	ErrIdentityRequired = errors.New("identity_required")
	ErrInvalidToken     = errors.New("invalid_identity_token")
)

// Identity key prefixes distinguish how a voter was resolved without making
// the underlying value recoverable.
const (
	verifiedPrefix = "v:"
	sessionPrefix  = "s:"
)

// Resolver maps a request to the voter-identity key the ledger dedupes on.
type Resolver struct {
	secret   []byte
	required bool
}

func NewResolver(secret string, required bool) *Resolver {
	return &Resolver{secret: []byte(secret), required: required}
}

// Resolve prefers a verified identity token: an HS256 JWT whose subject is
// the external identity (email, OAuth subject). The subject is keyed-hashed
// before it becomes a ledger key, so personal data is never persisted in
// reversible form.
//
// Without a token the fallback is a keyed hash of (session, user agent).
// That is a deliberately soft uniqueness guarantee: clearing cookies mints a
// new identity. Deployments that care set required, which turns the
// fallback off entirely.
func (r *Resolver) Resolve(sessionID, userAgent, verifiedToken string) (string, error) {
	if verifiedToken != "" {
		sub, err := r.subject(verifiedToken)
		if err != nil {
			return "", ErrInvalidToken
		}
		return verifiedPrefix + r.keyedHash(sub), nil
	}

	if r.required {
		return "", ErrIdentityRequired
	}

	return sessionPrefix + r.keyedHash(sessionID+"|"+userAgent), nil
}

func (r *Resolver) subject(token string) (string, error) {
	parsed, err := jwt.Parse(token, func(t *jwt.Token) (interface{}, error) {
		return r.secret, nil
	}, jwt.WithValidMethods([]string{"HS256"}))
	if err != nil {
		return "", err
	}
	sub, err := parsed.Claims.GetSubject()
	if err != nil || sub == "" {
		return "", ErrInvalidToken
	}
	return sub, nil
}

// keyedHash returns the first 16 bytes of an HMAC-SHA256, hex encoded.
func (r *Resolver) keyedHash(value string) string {
	h := hmac.New(sha256.New, r.secret)
	h.Write([]byte(value))
	return hex.EncodeToString(h.Sum(nil)[:16])
}
