// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package router

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/danielhkuo/pollgate/ledger"
	"github.com/danielhkuo/pollgate/models"
	"github.com/danielhkuo/pollgate/store"
	"github.com/danielhkuo/pollgate/testutil"
)

func newTestRouter(t *testing.T) *http.ServeMux {
	t.Helper()
	led, err := ledger.Open(models.DefaultCandidates(), store.NewMemStore())
	if err != nil {
		t.Fatalf("ledger.Open: %v", err)
	}
	return NewRouter(led, testutil.GetTestConfig(t))
}

func TestRoutes(t *testing.T) {
	mux := newTestRouter(t)

	tests := []struct {
		method     string
		path       string
		wantStatus int
	}{
		{"GET", "/api/health", http.StatusOK},
		{"GET", "/api/candidates", http.StatusOK},
		{"GET", "/api/results", http.StatusOK},
		{"GET", "/api/pow", http.StatusOK},
		{"GET", "/", http.StatusOK},
		// Method patterns reject the wrong verb
		{"POST", "/api/results", http.StatusMethodNotAllowed},
		{"GET", "/api/vote", http.StatusMethodNotAllowed},
	}

	for _, tt := range tests {
		t.Run(tt.method+" "+tt.path, func(t *testing.T) {
			w := httptest.NewRecorder()
			mux.ServeHTTP(w, testutil.MakeRequest(tt.method, tt.path, nil, nil))
			testutil.AssertStatus(t, w, tt.wantStatus)
		})
	}
}

func TestChallengeSetsSessionCookie(t *testing.T) {
	mux := newTestRouter(t)

	w := httptest.NewRecorder()
	mux.ServeHTTP(w, testutil.MakeRequest("GET", "/api/pow", nil, nil))
	testutil.AssertStatus(t, w, http.StatusOK)

	var found bool
	for _, c := range w.Result().Cookies() {
		if c.Name == "v_sid" && c.Value != "" && c.HttpOnly {
			found = true
		}
	}
	if !found {
		t.Error("expected an httpOnly v_sid cookie")
	}

	var resp models.ChallengeResponse
	testutil.AssertJSON(t, w, &resp)
	if resp.Challenge == "" || resp.Bits != 8 {
		t.Errorf("challenge response = %+v", resp)
	}
}

// Votes through the mux go through the full gate; an unauthenticated bare
// request fails on the replay guard, not with a panic or a 404.
func TestVoteRouteWired(t *testing.T) {
	mux := newTestRouter(t)

	w := httptest.NewRecorder()
	mux.ServeHTTP(w, testutil.MakeRequest("POST", "/api/vote", models.VoteRequest{CandidateID: 1}, nil))
	testutil.AssertStatus(t, w, http.StatusBadRequest)
	testutil.AssertErrorReason(t, w, "missing_nonce_or_ts")
}
