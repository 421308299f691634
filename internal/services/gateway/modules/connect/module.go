// Package connect serves game state lookups against the backend.
package connect

import (
	"errors"

	"github.com/go-chi/chi/v5"
	"github.com/louisbranch/boardbots/internal/platform/timeouts"
	module "github.com/louisbranch/boardbots/internal/services/gateway/module"
	"github.com/louisbranch/boardbots/internal/services/gateway/routepath"
)

// Module provides the /connect route.
type Module struct{}

// New returns a connect module.
func New() Module { return Module{} }

// ID returns a stable module identifier.
func (Module) ID() string { return "connect" }

// Mount wires connect route handlers.
func (Module) Mount(deps module.Dependencies, r chi.Router) error {
	if deps.Backend == nil {
		return errors.New("backend channel is required")
	}
	timeout := deps.RPCTimeout
	if timeout <= 0 {
		timeout = timeouts.GRPCRequest
	}
	h := handlers{backend: deps.Backend, timeout: timeout, logger: deps.Log()}
	r.Get(routepath.Connect, h.handleConnect)
	return nil
}
