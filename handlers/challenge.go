// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"log/slog"
	"net/http"

	"github.com/danielhkuo/pollgate/middleware"
	"github.com/danielhkuo/pollgate/models"
	"github.com/danielhkuo/pollgate/pow"
	"github.com/danielhkuo/pollgate/session"
)

type ChallengeHandler struct {
	sessions *session.Manager
	issuer   *pow.Issuer
}

func NewChallengeHandler(sessions *session.Manager, issuer *pow.Issuer) *ChallengeHandler {
	return &ChallengeHandler{sessions: sessions, issuer: issuer}
}

// GetChallenge handles GET /api/pow. Ensures the caller has a session and
// mints a proof-of-work challenge bound to it.
func (h *ChallengeHandler) GetChallenge(w http.ResponseWriter, r *http.Request) {
	sid := h.sessions.Ensure(w, r)

	challenge, err := h.issuer.Issue(sid)
	if err != nil {
		slog.Error("failed to issue challenge", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "internal_error")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, models.ChallengeResponse{
		Challenge: challenge,
		Bits:      h.issuer.Bits(),
	})
}
