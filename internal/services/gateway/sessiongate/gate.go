// Package sessiongate decides whether inbound requests may proceed.
//
// The gate fails closed: a request with a session cookie passes only when the
// backend confirms the session, and any error on the way counts as a denial.
package sessiongate

import (
	"errors"
	"log"
	"net/http"
	"strings"

	"github.com/louisbranch/boardbots/internal/services/gateway/platform/httpx"
	"github.com/louisbranch/boardbots/internal/services/gateway/platform/sessioncookie"
	"github.com/louisbranch/boardbots/internal/services/gateway/routepath"
	"github.com/louisbranch/boardbots/internal/services/shared/authctx"
)

// Outcome is the gate verdict for a request.
type Outcome int

const (
	Allow Outcome = iota
	Redirect
	Deny
)

func (o Outcome) String() string {
	switch o {
	case Allow:
		return "allow"
	case Redirect:
		return "redirect"
	case Deny:
		return "deny"
	default:
		return "unknown"
	}
}

// Decision is the result of Evaluate.
type Decision struct {
	Outcome Outcome
	// Target is set for Redirect.
	Target string
	// Err explains a Deny.
	Err error
}

// Config wires a Gate. Empty prefixes and paths fall back to routepath values.
type Config struct {
	Validator      authctx.SessionValidator
	PublicPrefixes []string
	AuthPrefix     string
	LoginPath      string
	Logger         *log.Logger
}

// Gate evaluates requests against session state.
type Gate struct {
	validator      authctx.SessionValidator
	publicPrefixes []string
	authPrefix     string
	loginPath      string
	logger         *log.Logger
}

// New validates cfg and returns a Gate.
func New(cfg Config) (*Gate, error) {
	if cfg.Validator == nil {
		return nil, errors.New("session validator is required")
	}
	if len(cfg.PublicPrefixes) == 0 {
		cfg.PublicPrefixes = []string{routepath.PublicPrefix}
	}
	if strings.TrimSpace(cfg.AuthPrefix) == "" {
		cfg.AuthPrefix = routepath.AuthPrefix
	}
	if strings.TrimSpace(cfg.LoginPath) == "" {
		cfg.LoginPath = routepath.Login
	}
	if cfg.Logger == nil {
		cfg.Logger = log.Default()
	}
	return &Gate{
		validator:      cfg.Validator,
		publicPrefixes: cfg.PublicPrefixes,
		authPrefix:     cfg.AuthPrefix,
		loginPath:      cfg.LoginPath,
		logger:         cfg.Logger,
	}, nil
}

// Evaluate returns the verdict for r. The only side effect is the backend
// validation call for requests that carry a session cookie.
func (g *Gate) Evaluate(r *http.Request) Decision {
	if r == nil || r.URL == nil {
		return Decision{Outcome: Deny, Err: errors.New("request is required")}
	}
	path := r.URL.Path
	for _, prefix := range g.publicPrefixes {
		if underPrefix(path, prefix) {
			return Decision{Outcome: Allow}
		}
	}

	token, ok := sessioncookie.Read(r)
	if !ok {
		if underPrefix(path, g.authPrefix) {
			return Decision{Outcome: Allow}
		}
		return Decision{Outcome: Redirect, Target: g.loginPath}
	}

	if err := g.validator.Validate(r.Context(), token); err != nil {
		return Decision{Outcome: Deny, Err: err}
	}
	return Decision{Outcome: Allow}
}

// Middleware enforces Evaluate in front of next and logs every decision.
func (g *Gate) Middleware() httpx.Middleware {
	return func(next http.Handler) http.Handler {
		if next == nil {
			next = http.NotFoundHandler()
		}
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			decision := g.Evaluate(r)
			switch decision.Outcome {
			case Allow:
				g.logger.Printf("session gate: allow method=%s path=%s", r.Method, r.URL.Path)
				next.ServeHTTP(w, r)
			case Redirect:
				g.logger.Printf("session gate: redirect method=%s path=%s to=%s", r.Method, r.URL.Path, decision.Target)
				http.Redirect(w, r, decision.Target, http.StatusFound)
			default:
				g.logger.Printf("session gate: deny method=%s path=%s: %v", r.Method, r.URL.Path, decision.Err)
				http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
			}
		})
	}
}

func underPrefix(path, prefix string) bool {
	prefix = strings.TrimRight(strings.TrimSpace(prefix), "/")
	if prefix == "" {
		return false
	}
	return path == prefix || strings.HasPrefix(path, prefix+"/")
}
