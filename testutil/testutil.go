// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package testutil

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/danielhkuo/pollgate/cliparse"
	"github.com/danielhkuo/pollgate/pow"
)

// GetTestConfig returns a standard test configuration with generous rate
// caps and a low proof-of-work difficulty so tests stay fast.
func GetTestConfig(t *testing.T) cliparse.Config {
	t.Helper()
	loc, err := time.LoadLocation("America/Toronto")
	if err != nil {
		t.Fatalf("LoadLocation: %v", err)
	}
	return cliparse.Config{
		Port:               3318,
		StoreType:          "sqlite",
		SessionSecret:      "test-session-secret",
		IdentitySecret:     "test-identity-secret",
		PowBits:            8,
		ReplayWindow:       120 * time.Second,
		IPMax10Min:         1000,
		IPMaxDay:           10000,
		SessionMinInterval: 0,
		SessionMaxDay:      10000,
		Timezone:           "America/Toronto",
		Location:           loc,
	}
}

// MakeRequest creates an HTTP test request
func MakeRequest(method, path string, body interface{}, headers map[string]string) *http.Request {
	var req *http.Request
	if body != nil {
		jsonBody, _ := json.Marshal(body)
		req = httptest.NewRequest(method, path, bytes.NewReader(jsonBody))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}

	for k, v := range headers {
		req.Header.Set(k, v)
	}

	return req
}

// AssertStatus checks that the response has the expected status code
func AssertStatus(t *testing.T, w *httptest.ResponseRecorder, expected int) {
	t.Helper()
	if w.Code != expected {
		t.Errorf("Expected status %d, got %d. Body: %s", expected, w.Code, w.Body.String())
	}
}

// AssertJSON decodes the response body into the provided struct
func AssertJSON(t *testing.T, w *httptest.ResponseRecorder, v interface{}) {
	t.Helper()
	if err := json.NewDecoder(w.Body).Decode(v); err != nil {
		t.Fatalf("Failed to decode JSON response: %v", err)
	}
}

// AssertErrorReason checks a rejection body's machine-readable reason
func AssertErrorReason(t *testing.T, w *httptest.ResponseRecorder, reason string) {
	t.Helper()
	var body struct {
		Error string `json:"error"`
	}
	AssertJSON(t, w, &body)
	if body.Error != reason {
		t.Errorf("Expected error reason %q, got %q", reason, body.Error)
	}
}

// SolvePow searches for a nonce satisfying the challenge at the given
// difficulty. Keep bits small in tests (8 is ~256 attempts).
func SolvePow(t *testing.T, challenge string, bits int) int64 {
	t.Helper()
	for nonce := int64(0); nonce < 1<<22; nonce++ {
		if pow.Verify(challenge, nonce, bits) {
			return nonce
		}
	}
	t.Fatal("no proof-of-work solution found")
	return 0
}
