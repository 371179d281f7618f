// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package middleware provides HTTP middleware and helper functions.

# Middleware

  - WithLogging: structured request/completion logging via slog
  - WithRecover: maps handler panics to a generic 500 response
  - CORS: cross-origin support with preflight handling

# Helpers

  - JSONResponse: write JSON with status code
  - ErrorResponse: write a {"error": reason} rejection body
  - ParseJSONBody: decode request body into a struct
  - ClientIP: resolve the rate-limiting address; X-Forwarded-For is only
    trusted when the server is explicitly configured behind a proxy

# Usage

	mux.HandleFunc("POST /api/vote", middleware.WithLogging(
		middleware.WithRecover(handler.SubmitVote)))
*/
package middleware
