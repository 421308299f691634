// Package auth serves the login form and login submission routes.
package auth

import (
	"errors"

	"github.com/go-chi/chi/v5"
	module "github.com/louisbranch/boardbots/internal/services/gateway/module"
	"github.com/louisbranch/boardbots/internal/services/gateway/routepath"
)

// Module provides the /auth routes.
type Module struct{}

// New returns an auth module.
func New() Module { return Module{} }

// ID returns a stable module identifier.
func (Module) ID() string { return "auth" }

// Mount wires auth route handlers.
func (Module) Mount(deps module.Dependencies, r chi.Router) error {
	if deps.Credentials == nil {
		return errors.New("credentials are required")
	}
	h := handlers{
		credentials: deps.Credentials,
		development: deps.DevelopmentMode,
		now:         deps.Clock(),
		logger:      deps.Log(),
	}
	r.Get(routepath.Login, h.handleLogin)
	r.Post(routepath.AuthSubmit, h.handleSubmit)
	return nil
}
