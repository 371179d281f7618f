// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package session

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
)

// CookieName is the session cookie issued to every caller.
const CookieName = "v_sid"

const maxAge = 365 * 24 * time.Hour

// Manager issues and verifies signed session cookies. Sessions are opaque
// random ids; the signature prevents a client from minting arbitrary ids to
// escape session-scoped rate limits.
type Manager struct {
	secret []byte
	secure bool
}

func NewManager(secret string, secure bool) *Manager {
	return &Manager{secret: []byte(secret), secure: secure}
}

// Ensure returns the caller's session id, minting a fresh session and
// setting the cookie when none is present or the signature does not verify.
func (m *Manager) Ensure(w http.ResponseWriter, r *http.Request) string {
	if c, err := r.Cookie(CookieName); err == nil {
		if sid, ok := m.verify(c.Value); ok {
			return sid
		}
	}

	sid := uuid.NewString()
	http.SetCookie(w, &http.Cookie{
		Name:     CookieName,
		Value:    m.sign(sid),
		Path:     "/",
		MaxAge:   int(maxAge.Seconds()),
		HttpOnly: true,
		Secure:   m.secure,
		SameSite: http.SameSiteLaxMode,
	})
	return sid
}

// sign produces "<sid>.<base64url hmac>" suitable for a cookie value.
func (m *Manager) sign(sid string) string {
	h := hmac.New(sha256.New, m.secret)
	h.Write([]byte(sid))
	sig := strings.TrimRight(base64.URLEncoding.EncodeToString(h.Sum(nil)), "=")
	return sid + "." + sig
}

// verify checks a cookie value and returns the embedded session id.
func (m *Manager) verify(value string) (string, bool) {
	i := strings.LastIndexByte(value, '.')
	if i <= 0 || i == len(value)-1 {
		return "", false
	}
	sid := value[:i]
	if !hmac.Equal([]byte(m.sign(sid)), []byte(value)) {
		return "", false
	}
	return sid, true
}
