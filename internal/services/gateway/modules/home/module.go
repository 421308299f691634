// Package home serves the landing page and informational routes.
package home

import (
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"
	module "github.com/louisbranch/boardbots/internal/services/gateway/module"
	"github.com/louisbranch/boardbots/internal/services/gateway/platform/httpx"
	"github.com/louisbranch/boardbots/internal/services/gateway/routepath"
	"github.com/louisbranch/boardbots/internal/services/gateway/templates"
)

// usersPlaceholder is the body of the users route until it lists accounts.
const usersPlaceholder = "respond with a resource"

// Module provides the root and users routes.
type Module struct{}

// New returns a home module.
func New() Module { return Module{} }

// ID returns a stable module identifier.
func (Module) ID() string { return "home" }

// Mount wires home route handlers.
func (Module) Mount(deps module.Dependencies, r chi.Router) error {
	h := handlers{logger: deps.Log()}
	r.Get(routepath.Root, h.handleIndex)
	r.Get(routepath.Users, h.handleUsers)
	return nil
}

type handlers struct {
	logger *log.Logger
}

func (h handlers) handleIndex(w http.ResponseWriter, r *http.Request) {
	if err := httpx.WriteComponent(w, r, http.StatusOK, templates.HomePage()); err != nil {
		h.logger.Printf("home: render index: %v", err)
	}
}

func (h handlers) handleUsers(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	_, _ = w.Write([]byte(usersPlaceholder))
}
