// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package captcha wraps the external captcha provider as a pass/fail gate.

The admission pipeline treats captcha as an opaque check: a token comes in
with the vote, the gate says yes or no. The Cloudflare Turnstile
implementation is used when TURNSTILE_SECRET is configured; otherwise the
gate is disabled and every request passes.

Failure reasons map to distinct statuses upstream: missing_captcha (400,
the client forgot the token), bad_captcha (403, the provider rejected it),
captcha_error (500, the provider was unreachable; this gate does not fail
open).
*/
package captcha
