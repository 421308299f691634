// Package gateway hosts the browser-facing boardbots gateway.
package gateway

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/louisbranch/boardbots/internal/platform/timeouts"
	module "github.com/louisbranch/boardbots/internal/services/gateway/module"
	"github.com/louisbranch/boardbots/internal/services/gateway/modules"
	"github.com/louisbranch/boardbots/internal/services/gateway/platform/httpx"
	"github.com/louisbranch/boardbots/internal/services/gateway/platform/observability"
	"github.com/louisbranch/boardbots/internal/services/gateway/routepath"
	"github.com/louisbranch/boardbots/internal/services/gateway/sessiongate"
	"github.com/louisbranch/boardbots/internal/services/shared/authctx"
	"google.golang.org/grpc"
)

// Config defines startup inputs for the gateway service.
type Config struct {
	HTTPAddr string
	// PublicDir is served under routepath.PublicPrefix; empty disables it.
	PublicDir       string
	DevelopmentMode bool
	RPCTimeout      time.Duration
	Validator       authctx.SessionValidator
	Credentials     module.Authenticator
	Backend         grpc.ClientConnInterface
	Logger          *log.Logger
	Now             func() time.Time
}

// Server hosts the gateway HTTP surface and lifecycle.
type Server struct {
	httpAddr   string
	httpServer *http.Server
}

// NewHandler builds the root handler: shared middleware, the session gate,
// static assets and every default module.
func NewHandler(cfg Config) (http.Handler, error) {
	logger := cfg.Logger
	if logger == nil {
		logger = log.Default()
	}
	gate, err := sessiongate.New(sessiongate.Config{Validator: cfg.Validator, Logger: logger})
	if err != nil {
		return nil, fmt.Errorf("session gate: %w", err)
	}

	router := chi.NewRouter()
	if dir := strings.TrimSpace(cfg.PublicDir); dir != "" {
		router.Handle(routepath.PublicPrefix+"/*", http.StripPrefix(routepath.PublicPrefix+"/", http.FileServer(http.Dir(dir))))
	}
	deps := module.Dependencies{
		Credentials:     cfg.Credentials,
		Backend:         cfg.Backend,
		DevelopmentMode: cfg.DevelopmentMode,
		RPCTimeout:      cfg.RPCTimeout,
		Logger:          logger,
		Now:             cfg.Now,
	}
	if err := modules.MountAll(router, deps, modules.Default()); err != nil {
		return nil, err
	}

	return httpx.Chain(router,
		httpx.RecoverPanic(),
		httpx.RequestID(),
		observability.Tracing(nil),
		observability.RequestLogger(logger),
		gate.Middleware(),
	), nil
}

// NewServer validates config and constructs a gateway server.
func NewServer(_ context.Context, cfg Config) (*Server, error) {
	httpAddr := strings.TrimSpace(cfg.HTTPAddr)
	if httpAddr == "" {
		return nil, errors.New("http address is required")
	}
	handler, err := NewHandler(cfg)
	if err != nil {
		return nil, fmt.Errorf("compose gateway handler: %w", err)
	}
	return &Server{
		httpAddr: httpAddr,
		httpServer: &http.Server{
			Addr:              httpAddr,
			Handler:           handler,
			ReadHeaderTimeout: timeouts.ReadHeader,
		},
	}, nil
}

// Addr returns the configured listen address.
func (s *Server) Addr() string {
	if s == nil {
		return ""
	}
	return s.httpAddr
}

// ListenAndServe serves HTTP traffic until context cancellation or server stop.
func (s *Server) ListenAndServe(ctx context.Context) error {
	if s == nil {
		return errors.New("gateway server is nil")
	}
	if ctx == nil {
		return errors.New("context is required")
	}

	serveErr := make(chan error, 1)
	go func() {
		serveErr <- s.httpServer.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), timeouts.Shutdown)
		err := s.httpServer.Shutdown(shutdownCtx)
		cancel()
		if err != nil {
			return fmt.Errorf("shutdown gateway http server: %w", err)
		}
		return nil
	case err := <-serveErr:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("serve gateway http: %w", err)
	}
}

// Close closes open server resources.
func (s *Server) Close() {
	if s == nil || s.httpServer == nil {
		return
	}
	_ = s.httpServer.Close()
}
