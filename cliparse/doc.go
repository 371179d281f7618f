// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package cliparse handles configuration from CLI flags and environment
variables.

# Priority

CLI flags take precedence over environment variables; unset values fall back
to documented defaults.

# Required settings

  - SESSION_SECRET (--session-secret): signs the session cookie
  - IDENTITY_SECRET (--identity-secret): keys voter-identity hashing and
    verified-identity JWT validation
  - DATABASE_URL (-d): required for postgres; sqlite and bolt default to a
    local file

# Gate tuning

  - POW_BITS (default 18): proof-of-work difficulty
  - REPLAY_WINDOW_MS (default 120000): nonce/timestamp acceptance window
  - IP_MAX_10MIN (5), IP_MAX_DAY (100): per-address caps
  - SESSION_MIN_INTERVAL_MS (60000), SESSION_MAX_DAY (10): per-session caps
  - TIMEZONE (America/Toronto): calendar-day boundary for daily quotas
  - IDENTITY_REQUIRED, TRUST_PROXY, DEMO_MODE, COOKIE_SECURE: booleans
  - TURNSTILE_SECRET: enables the captcha gate when set
  - CANDIDATES_FILE: JSON candidate list override
*/
package cliparse
