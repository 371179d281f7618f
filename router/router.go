// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package router

import (
	"net/http"

	"github.com/danielhkuo/pollgate/captcha"
	"github.com/danielhkuo/pollgate/cliparse"
	"github.com/danielhkuo/pollgate/handlers"
	"github.com/danielhkuo/pollgate/identity"
	"github.com/danielhkuo/pollgate/ledger"
	"github.com/danielhkuo/pollgate/middleware"
	"github.com/danielhkuo/pollgate/pow"
	"github.com/danielhkuo/pollgate/ratelimit"
	"github.com/danielhkuo/pollgate/replay"
	"github.com/danielhkuo/pollgate/session"
)

func NewRouter(led *ledger.Ledger, cfg cliparse.Config) *http.ServeMux {
	mux := http.NewServeMux()

	// Assemble the gate components
	sessions := session.NewManager(cfg.SessionSecret, cfg.CookieSecure)
	issuer := pow.NewIssuer(cfg.PowBits)
	limiter := ratelimit.New(ratelimit.LimitsFromConfig(cfg), cfg.Location)
	guard := replay.NewGuard(cfg.ReplayWindow, cfg.Location)
	resolver := identity.NewResolver(cfg.IdentitySecret, cfg.IdentityRequired)
	gate := captcha.New(cfg.TurnstileSecret)

	// Initialize handlers
	challengeHandler := handlers.NewChallengeHandler(sessions, issuer)
	voteHandler := handlers.NewVoteHandler(sessions, limiter, gate, guard, cfg.PowBits, resolver, led, cfg.TrustProxy)
	resultsHandler := handlers.NewResultsHandler(led, cfg.PowBits, cfg.Location)

	wrap := func(h http.HandlerFunc) http.HandlerFunc {
		return middleware.WithLogging(middleware.WithRecover(h))
	}

	mux.HandleFunc("GET /api/health", resultsHandler.GetHealth)
	mux.HandleFunc("GET /api/candidates", wrap(resultsHandler.GetCandidates))
	mux.HandleFunc("GET /api/results", wrap(resultsHandler.GetResults))
	mux.HandleFunc("GET /api/pow", wrap(challengeHandler.GetChallenge))
	mux.HandleFunc("POST /api/vote", wrap(voteHandler.SubmitVote))

	// Root endpoint
	mux.HandleFunc("GET /", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("pollgate API v1"))
	})

	return mux
}
