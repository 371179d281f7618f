// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/danielhkuo/pollgate/captcha"
	"github.com/danielhkuo/pollgate/identity"
	"github.com/danielhkuo/pollgate/ledger"
	"github.com/danielhkuo/pollgate/middleware"
	"github.com/danielhkuo/pollgate/models"
	"github.com/danielhkuo/pollgate/pow"
	"github.com/danielhkuo/pollgate/ratelimit"
	"github.com/danielhkuo/pollgate/replay"
	"github.com/danielhkuo/pollgate/session"
)

// VoteHandler runs the admission pipeline in front of the ledger. The order
// is fixed: rate limit, captcha, replay, proof-of-work, identity, ledger.
// Cheap checks come first so load sheds early; the PoW check runs after the
// replay guard so a stale solution cannot be retried by refreshing only the
// timestamp.
type VoteHandler struct {
	sessions   *session.Manager
	limiter    *ratelimit.Limiter
	gate       captcha.Verifier
	guard      *replay.Guard
	powBits    int
	resolver   *identity.Resolver
	ledger     *ledger.Ledger
	trustProxy bool
}

func NewVoteHandler(
	sessions *session.Manager,
	limiter *ratelimit.Limiter,
	gate captcha.Verifier,
	guard *replay.Guard,
	powBits int,
	resolver *identity.Resolver,
	led *ledger.Ledger,
	trustProxy bool,
) *VoteHandler {
	return &VoteHandler{
		sessions:   sessions,
		limiter:    limiter,
		gate:       gate,
		guard:      guard,
		powBits:    powBits,
		resolver:   resolver,
		ledger:     led,
		trustProxy: trustProxy,
	}
}

// SubmitVote handles POST /api/vote
func (h *VoteHandler) SubmitVote(w http.ResponseWriter, r *http.Request) {
	now := time.Now()
	sid := h.sessions.Ensure(w, r)
	ip := middleware.ClientIP(r, h.trustProxy)

	// 1. Rate limits
	if err := h.limiter.Admit(ip, sid, now); err != nil {
		middleware.ErrorResponse(w, http.StatusTooManyRequests, err.Error())
		return
	}

	var req models.VoteRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "invalid_json")
		return
	}

	// 2. Captcha gate
	if err := h.gate.Verify(r.Context(), req.CaptchaToken, ip); err != nil {
		middleware.ErrorResponse(w, captchaStatus(err), err.Error())
		return
	}

	// 3. Replay suppression
	if err := h.guard.Check(req.Nonce, req.TS, now); err != nil {
		middleware.ErrorResponse(w, replayStatus(err), err.Error())
		return
	}

	// 4. Proof of work
	if req.Pow.Challenge == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "missing_pow")
		return
	}
	if !pow.BoundTo(req.Pow.Challenge, sid) {
		middleware.ErrorResponse(w, http.StatusBadRequest, "challenge_mismatch")
		return
	}
	if !pow.Verify(req.Pow.Challenge, req.Pow.Nonce, h.powBits) {
		middleware.ErrorResponse(w, http.StatusBadRequest, "bad_pow")
		return
	}

	// 5. Voter identity
	voter, err := h.resolver.Resolve(sid, r.UserAgent(), req.VerifiedIdentityToken)
	if err != nil {
		middleware.ErrorResponse(w, http.StatusForbidden, err.Error())
		return
	}

	// 6. Ledger mutation
	outcome, err := h.ledger.Apply(voter, req.CandidateID)
	if errors.Is(err, ledger.ErrUnknownCandidate) {
		middleware.ErrorResponse(w, http.StatusBadRequest, err.Error())
		return
	}
	if err != nil {
		slog.Error("failed to record vote", "error", err, "candidate", req.CandidateID)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "storage_error")
		return
	}

	slog.Info("vote recorded", "candidate", req.CandidateID, "outcome", outcome)

	resp := models.VoteResponse{OK: true}
	switch outcome {
	case ledger.FirstVote:
		resp.FirstVote = true
	case ledger.Duplicate:
		resp.Duplicate = true
	case ledger.Switched:
		resp.Switched = true
	}
	middleware.JSONResponse(w, http.StatusOK, resp)
}

func captchaStatus(err error) int {
	switch {
	case errors.Is(err, captcha.ErrMissingToken):
		return http.StatusBadRequest
	case errors.Is(err, captcha.ErrBadCaptcha):
		return http.StatusForbidden
	default:
		return http.StatusInternalServerError
	}
}

func replayStatus(err error) int {
	if errors.Is(err, replay.ErrReplayDetected) {
		return http.StatusConflict
	}
	return http.StatusBadRequest
}
