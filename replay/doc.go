// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package replay suppresses resubmission of previously seen vote requests.

Every vote carries a client-generated nonce and timestamp. A request is
rejected when the timestamp falls outside the acceptance window (stale_ts),
which bounds how old a captured request can be before it becomes worthless,
or when the nonce was already accepted earlier the same local calendar day
(replay_detected).

Entries are keyed (day, nonce) and expire at the end of their day. Expired
entries are purged opportunistically on each check; there is no background
task. All state is memory-resident and intentionally lost on restart.
*/
package replay
