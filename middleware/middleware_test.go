// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestClientIP(t *testing.T) {
	tests := []struct {
		name       string
		remoteAddr string
		xff        string
		trustProxy bool
		want       string
	}{
		{"plain ipv4", "203.0.113.9:51234", "", false, "203.0.113.9"},
		{"ipv6 with port", "[2001:db8::1]:443", "", false, "2001:db8::1"},
		{"ipv4-mapped ipv6", "[::ffff:203.0.113.9]:80", "", false, "203.0.113.9"},
		{"xff ignored without trust", "203.0.113.9:51234", "198.51.100.1", false, "203.0.113.9"},
		{"xff honored with trust", "203.0.113.9:51234", "198.51.100.1", true, "198.51.100.1"},
		{"xff first hop only", "203.0.113.9:51234", "198.51.100.1, 10.0.0.1", true, "198.51.100.1"},
		{"xff absent with trust", "203.0.113.9:51234", "", true, "203.0.113.9"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := httptest.NewRequest("POST", "/api/vote", nil)
			r.RemoteAddr = tt.remoteAddr
			if tt.xff != "" {
				r.Header.Set("X-Forwarded-For", tt.xff)
			}
			if got := ClientIP(r, tt.trustProxy); got != tt.want {
				t.Errorf("ClientIP() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestErrorResponse(t *testing.T) {
	w := httptest.NewRecorder()
	ErrorResponse(w, http.StatusConflict, "replay_detected")

	if w.Code != http.StatusConflict {
		t.Errorf("status = %d, want 409", w.Code)
	}
	if ct := w.Header().Get("Content-Type"); ct != "application/json" {
		t.Errorf("Content-Type = %q", ct)
	}
	var body struct {
		Error string `json:"error"`
	}
	if err := json.NewDecoder(w.Body).Decode(&body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if body.Error != "replay_detected" {
		t.Errorf("error = %q", body.Error)
	}
}

func TestWithRecover(t *testing.T) {
	h := WithRecover(func(w http.ResponseWriter, r *http.Request) {
		panic("boom")
	})

	w := httptest.NewRecorder()
	h(w, httptest.NewRequest("GET", "/api/results", nil))

	if w.Code != http.StatusInternalServerError {
		t.Errorf("status = %d, want 500", w.Code)
	}
	if !strings.Contains(w.Body.String(), "internal_error") {
		t.Errorf("body = %q, want internal_error reason", w.Body.String())
	}
}

func TestParseJSONBody(t *testing.T) {
	r := httptest.NewRequest("POST", "/api/vote", strings.NewReader(`{"candidateId": 3}`))
	var body struct {
		CandidateID int `json:"candidateId"`
	}
	if err := ParseJSONBody(r, &body); err != nil {
		t.Fatalf("ParseJSONBody: %v", err)
	}
	if body.CandidateID != 3 {
		t.Errorf("candidateId = %d, want 3", body.CandidateID)
	}

	r = httptest.NewRequest("POST", "/api/vote", strings.NewReader(`{broken`))
	if err := ParseJSONBody(r, &body); err == nil {
		t.Error("expected error for malformed JSON")
	}
}

func TestCORSPreflight(t *testing.T) {
	called := false
	h := CORS(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
	}))

	w := httptest.NewRecorder()
	r := httptest.NewRequest("OPTIONS", "/api/vote", nil)
	r.Header.Set("Origin", "https://poll.example.com")
	h.ServeHTTP(w, r)

	if called {
		t.Error("preflight should not reach the handler")
	}
	if got := w.Header().Get("Access-Control-Allow-Origin"); got != "https://poll.example.com" {
		t.Errorf("Allow-Origin = %q", got)
	}
	if w.Code != http.StatusOK {
		t.Errorf("status = %d, want 200", w.Code)
	}
}
