// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package ratelimit enforces per-IP and per-session vote quotas.

Four independent checks run in order; the first failure names the rejection:

  - rate_limited_ip: more than IPMax10Min attempts from one address within a
    10-minute window (reset-on-expiry, not a sliding log)
  - daily_quota_ip: more than IPMaxDay attempts from one address in a local
    calendar day
  - vote_too_soon: less than SessionMinInterval since the session's last
    admitted vote
  - daily_quota_session: more than SessionMaxDay admitted votes from one
    session in a local calendar day

Day counters roll over at local midnight of the configured timezone, not on
a rolling 24-hour mark. Buckets are held in bounded TTL caches
(hashicorp/golang-lru expirable) so idle addresses and sessions age out.
*/
package ratelimit
