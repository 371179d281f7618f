// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"net/http"
	"time"

	"github.com/danielhkuo/pollgate/ledger"
	"github.com/danielhkuo/pollgate/middleware"
	"github.com/danielhkuo/pollgate/models"
)

type ResultsHandler struct {
	ledger  *ledger.Ledger
	powBits int
	loc     *time.Location
}

func NewResultsHandler(led *ledger.Ledger, powBits int, loc *time.Location) *ResultsHandler {
	return &ResultsHandler{ledger: led, powBits: powBits, loc: loc}
}

// GetHealth handles GET /api/health
func (h *ResultsHandler) GetHealth(w http.ResponseWriter, r *http.Request) {
	middleware.JSONResponse(w, http.StatusOK, models.HealthResponse{
		OK:      true,
		PowBits: h.powBits,
		Today:   time.Now().In(h.loc).Format("2006-01-02"),
	})
}

// GetCandidates handles GET /api/candidates
func (h *ResultsHandler) GetCandidates(w http.ResponseWriter, r *http.Request) {
	middleware.JSONResponse(w, http.StatusOK, h.ledger.Candidates())
}

// GetResults handles GET /api/results
func (h *ResultsHandler) GetResults(w http.ResponseWriter, r *http.Request) {
	middleware.JSONResponse(w, http.StatusOK, h.ledger.Results())
}
