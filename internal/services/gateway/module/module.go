// Package module defines the contract between the gateway server and its
// route modules.
package module

import (
	"context"
	"log"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/louisbranch/boardbots/internal/services/gateway/credentials"
	"google.golang.org/grpc"
)

// Authenticator issues session tokens for login submissions.
type Authenticator interface {
	Authenticate(ctx context.Context, username, password string) (credentials.Result, error)
}

// Dependencies carries shared collaborators into route modules.
type Dependencies struct {
	// Credentials backs the login submission route.
	Credentials Authenticator
	// Backend is the shared backend channel. Modules scope per-call
	// credentials with grpcauthctx.Intercept rather than mutating it.
	Backend grpc.ClientConnInterface
	// DevelopmentMode enables the built-in login form.
	DevelopmentMode bool
	// RPCTimeout bounds each backend call made by a route.
	RPCTimeout time.Duration
	Logger     *log.Logger
	// Now returns the current time; nil uses time.Now.
	Now func() time.Time
}

// Clock returns deps.Now or time.Now.
func (d Dependencies) Clock() func() time.Time {
	if d.Now != nil {
		return d.Now
	}
	return time.Now
}

// Log returns deps.Logger or the default logger.
func (d Dependencies) Log() *log.Logger {
	if d.Logger != nil {
		return d.Logger
	}
	return log.Default()
}

// Module contributes a group of routes to the gateway router.
type Module interface {
	ID() string
	Mount(deps Dependencies, r chi.Router) error
}
