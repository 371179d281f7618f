// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package captcha

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/url"
	"strings"
	"time"
)

var (
	ErrMissingToken = errors.New("missing_captcha")
	ErrBadCaptcha   = errors.New("bad_captcha")
	ErrUnavailable  = errors.New("captcha_error")
)

// Verifier is the external captcha gate consumed by the vote pipeline. The
// pipeline only cares about pass/fail; which provider sits behind it is a
// deployment concern.
type Verifier interface {
	Verify(ctx context.Context, token, remoteIP string) error
}

// New returns the Turnstile gate when a secret is configured, otherwise a
// gate that admits everything.
func New(secret string) Verifier {
	if secret == "" {
		return Disabled{}
	}
	return NewTurnstile(secret)
}

// Disabled is the no-op gate used when no captcha provider is configured.
type Disabled struct{}

func (Disabled) Verify(context.Context, string, string) error { return nil }

const turnstileEndpoint = "https://challenges.cloudflare.com/turnstile/v0/siteverify"

// Turnstile verifies Cloudflare Turnstile response tokens.
type Turnstile struct {
	secret   string
	endpoint string
	client   *http.Client
}

func NewTurnstile(secret string) *Turnstile {
	return &Turnstile{
		secret:   secret,
		endpoint: turnstileEndpoint,
		client:   &http.Client{Timeout: 10 * time.Second},
	}
}

func (t *Turnstile) Verify(ctx context.Context, token, remoteIP string) error {
	if token == "" {
		return ErrMissingToken
	}

	form := url.Values{
		"secret":   {t.secret},
		"response": {token},
		"remoteip": {remoteIP},
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, t.endpoint, strings.NewReader(form.Encode()))
	if err != nil {
		return ErrUnavailable
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := t.client.Do(req)
	if err != nil {
		return ErrUnavailable
	}
	defer resp.Body.Close()

	var result struct {
		Success bool `json:"success"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return ErrUnavailable
	}
	if !result.Success {
		return ErrBadCaptcha
	}
	return nil
}
