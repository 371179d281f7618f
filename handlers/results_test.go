// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/danielhkuo/pollgate/ledger"
	"github.com/danielhkuo/pollgate/models"
	"github.com/danielhkuo/pollgate/store"
	"github.com/danielhkuo/pollgate/testutil"
)

func newResultsHandler(t *testing.T) (*ResultsHandler, *ledger.Ledger) {
	t.Helper()
	led, err := ledger.Open(models.DefaultCandidates(), store.NewMemStore())
	if err != nil {
		t.Fatalf("ledger.Open: %v", err)
	}
	cfg := testutil.GetTestConfig(t)
	return NewResultsHandler(led, cfg.PowBits, cfg.Location), led
}

func TestGetHealth(t *testing.T) {
	h, _ := newResultsHandler(t)

	w := httptest.NewRecorder()
	h.GetHealth(w, testutil.MakeRequest("GET", "/api/health", nil, nil))
	testutil.AssertStatus(t, w, http.StatusOK)

	var resp models.HealthResponse
	testutil.AssertJSON(t, w, &resp)
	if !resp.OK {
		t.Error("expected ok")
	}
	if resp.PowBits != 8 {
		t.Errorf("pow_bits = %d, want 8", resp.PowBits)
	}
	if _, err := time.Parse("2006-01-02", resp.Today); err != nil {
		t.Errorf("today %q not a calendar date: %v", resp.Today, err)
	}
}

func TestGetCandidates(t *testing.T) {
	h, _ := newResultsHandler(t)

	w := httptest.NewRecorder()
	h.GetCandidates(w, testutil.MakeRequest("GET", "/api/candidates", nil, nil))
	testutil.AssertStatus(t, w, http.StatusOK)

	var resp []models.Candidate
	testutil.AssertJSON(t, w, &resp)
	if len(resp) != 5 {
		t.Fatalf("got %d candidates, want 5", len(resp))
	}
	if resp[0].ID != 1 || resp[0].Name == "" || resp[0].Color == "" {
		t.Errorf("first candidate incomplete: %+v", resp[0])
	}
}

func TestGetResults(t *testing.T) {
	h, led := newResultsHandler(t)

	// Empty poll first
	w := httptest.NewRecorder()
	h.GetResults(w, testutil.MakeRequest("GET", "/api/results", nil, nil))
	testutil.AssertStatus(t, w, http.StatusOK)

	var resp models.ResultsResponse
	testutil.AssertJSON(t, w, &resp)
	if resp.Total != 0 || resp.Leader != nil {
		t.Errorf("empty poll: total=%d leader=%v", resp.Total, resp.Leader)
	}
	if len(resp.Results) != 5 {
		t.Fatalf("got %d result rows, want 5", len(resp.Results))
	}

	// 3 votes for candidate 2, 1 for candidate 4
	for _, v := range []struct {
		voter string
		id    int
	}{
		{"s:a", 2}, {"s:b", 2}, {"s:c", 2}, {"s:d", 4},
	} {
		if _, err := led.Apply(v.voter, v.id); err != nil {
			t.Fatalf("Apply: %v", err)
		}
	}

	w = httptest.NewRecorder()
	h.GetResults(w, testutil.MakeRequest("GET", "/api/results", nil, nil))
	resp = models.ResultsResponse{}
	testutil.AssertJSON(t, w, &resp)

	if resp.Total != 4 {
		t.Errorf("total = %d, want 4", resp.Total)
	}
	if resp.Leader == nil || resp.Leader.ID != 2 {
		t.Fatalf("leader = %+v, want candidate 2", resp.Leader)
	}
	if resp.Leader.Votes != 3 || resp.Leader.Percent != 75.0 {
		t.Errorf("leader = %+v, want 3 votes at 75%%", resp.Leader)
	}
}
