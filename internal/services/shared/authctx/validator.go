// Package authctx validates browser sessions against the game backend.
package authctx

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// ValidatePath is the backend endpoint that confirms session tokens.
const ValidatePath = "/auth/validate"

// ClientIDHeader identifies the gateway to the backend.
const ClientIDHeader = "X-Client-Id"

// ErrSessionRejected reports that the backend answered but did not accept the
// session.
var ErrSessionRejected = errors.New("session rejected")

// SessionValidator confirms a session token with the backend. A nil error is
// the only acceptance signal.
type SessionValidator interface {
	Validate(ctx context.Context, token string) error
}

// SessionValidatorFunc adapts a function to SessionValidator.
type SessionValidatorFunc func(ctx context.Context, token string) error

// Validate implements SessionValidator.
func (fn SessionValidatorFunc) Validate(ctx context.Context, token string) error {
	return fn(ctx, token)
}

// HTTPValidator calls the backend session validation endpoint.
type HTTPValidator struct {
	url      string
	clientID string
	timeout  time.Duration
	client   *http.Client
}

// NewHTTPValidator creates a validator that POSTs to baseURL + ValidatePath.
// A positive timeout bounds each call on top of the caller context.
func NewHTTPValidator(baseURL, clientID string, timeout time.Duration, client *http.Client) *HTTPValidator {
	if client == nil {
		client = http.DefaultClient
	}
	return &HTTPValidator{
		url:      strings.TrimRight(strings.TrimSpace(baseURL), "/") + ValidatePath,
		clientID: strings.TrimSpace(clientID),
		timeout:  timeout,
		client:   client,
	}
}

// Validate presents token as a bearer credential and accepts only 200 OK.
func (h *HTTPValidator) Validate(ctx context.Context, token string) error {
	if h == nil {
		return errors.New("session validator is not configured")
	}
	if ctx == nil {
		ctx = context.Background()
	}
	if h.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, h.timeout)
		defer cancel()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, h.url, nil)
	if err != nil {
		return fmt.Errorf("build validate request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+token)
	if h.clientID != "" {
		req.Header.Set(ClientIDHeader, h.clientID)
	}

	resp, err := h.client.Do(req)
	if err != nil {
		return fmt.Errorf("validate request: %w", err)
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, 4096))

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("%w: backend returned %s", ErrSessionRejected, resp.Status)
	}
	return nil
}
