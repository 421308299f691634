// Package credentials issues session tokens for gateway logins.
//
// The backend Authenticate RPC is the primary source. When it fails or
// declines to issue a token, the local fallback credential store is
// consulted instead.
package credentials

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	boardbotsv1 "github.com/louisbranch/boardbots/api/gen/go/boardbots/v1"
	"github.com/louisbranch/boardbots/internal/platform/timeouts"
	"github.com/louisbranch/boardbots/internal/services/gateway/credentialstore"
	"google.golang.org/grpc"
)

// FallbackTokenPrefix is prepended to stored issuance tokens.
const FallbackTokenPrefix = "FAKETOKEN"

// ErrAuthFailure reports credentials rejected by both the backend and the
// fallback store.
var ErrAuthFailure = errors.New("authentication failed")

// Source names which path issued a token.
type Source string

const (
	SourcePrimary  Source = "primary"
	SourceFallback Source = "fallback"
)

// Result is an issued session token.
type Result struct {
	Token  string
	Source Source
}

// AuthClient is the slice of the backend API used for logins.
type AuthClient interface {
	Authenticate(ctx context.Context, in *boardbotsv1.AuthRequest, opts ...grpc.CallOption) (*boardbotsv1.AuthResponse, error)
}

// Config wires a Service.
type Config struct {
	Client AuthClient
	Store  credentialstore.Store
	// RPCTimeout bounds the Authenticate call; zero uses timeouts.GRPCRequest.
	RPCTimeout time.Duration
	Logger     *log.Logger
}

// Service authenticates usernames and passwords.
type Service struct {
	client     AuthClient
	store      credentialstore.Store
	rpcTimeout time.Duration
	logger     *log.Logger
}

// NewService validates cfg and returns a Service.
func NewService(cfg Config) (*Service, error) {
	if cfg.Client == nil {
		return nil, errors.New("auth client is required")
	}
	if cfg.Store == nil {
		return nil, errors.New("credential store is required")
	}
	if cfg.RPCTimeout <= 0 {
		cfg.RPCTimeout = timeouts.GRPCRequest
	}
	if cfg.Logger == nil {
		cfg.Logger = log.Default()
	}
	return &Service{
		client:     cfg.Client,
		store:      cfg.Store,
		rpcTimeout: cfg.RPCTimeout,
		logger:     cfg.Logger,
	}, nil
}

// Authenticate returns a session token for username and password.
//
// ErrAuthFailure is returned when neither path accepts the credentials. A
// fallback store that cannot be read yields an error wrapping
// credentialstore.ErrUnavailable; callers treat it as a failed login for this
// request only.
func (s *Service) Authenticate(ctx context.Context, username, password string) (Result, error) {
	if s == nil {
		return Result{}, errors.New("credential service is not configured")
	}
	if ctx == nil {
		ctx = context.Background()
	}

	token, err := s.authenticateRPC(ctx, username, password)
	switch {
	case err != nil:
		s.logger.Printf("credentials: rpc authenticate user=%q failed, using fallback: %v", username, err)
	case token == "":
		s.logger.Printf("credentials: rpc authenticate user=%q issued no token, using fallback", username)
	default:
		return Result{Token: token, Source: SourcePrimary}, nil
	}

	record, err := s.store.Lookup(ctx, username, password)
	if err != nil {
		if errors.Is(err, credentialstore.ErrNotFound) {
			return Result{}, ErrAuthFailure
		}
		return Result{}, fmt.Errorf("fallback lookup: %w", err)
	}
	return Result{Token: FallbackTokenPrefix + record.Token, Source: SourceFallback}, nil
}

func (s *Service) authenticateRPC(ctx context.Context, username, password string) (string, error) {
	callCtx, cancel := context.WithTimeout(ctx, s.rpcTimeout)
	defer cancel()
	resp, err := s.client.Authenticate(callCtx, &boardbotsv1.AuthRequest{
		Username: username,
		Password: password,
	})
	if err != nil {
		return "", fmt.Errorf("rpc authenticate: %w", err)
	}
	return resp.GetToken(), nil
}
