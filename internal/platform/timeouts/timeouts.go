// Package timeouts defines default timeouts for gateway boundaries. Commands
// may override the request-scoped values through configuration.
package timeouts

import "time"

// GRPCRequest caps a single RPC from the gateway to the game backend.
const GRPCRequest = 2 * time.Second

// SessionValidate caps the backend session validation call made per request.
const SessionValidate = 2 * time.Second

// ReadHeader limits how long an HTTP server waits for request headers.
const ReadHeader = 5 * time.Second

// Shutdown limits how long an HTTP server waits for in-flight requests
// during graceful shutdown.
const Shutdown = 5 * time.Second
