// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package router wires the admission-gate components to HTTP routes.

NewRouter is the composition root: it builds the session manager, rate
limiter, replay guard, PoW issuer, identity resolver, and captcha gate from
configuration, injects them into the handlers, and registers the routes
using Go 1.22+ method patterns. All vote-path handlers are wrapped with
request logging and panic recovery.
*/
package router
