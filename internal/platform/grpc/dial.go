// Package grpc holds client connection helpers shared by gateway components.
package grpc

import (
	"crypto/tls"
	"fmt"
	"strings"

	"go.opentelemetry.io/contrib/instrumentation/google.golang.org/grpc/otelgrpc"
	gogrpc "google.golang.org/grpc"
	"google.golang.org/grpc/credentials"
	"google.golang.org/grpc/credentials/insecure"
)

// Connector constructs a client connection for a target.
type Connector interface {
	NewClient(target string, opts ...gogrpc.DialOption) (*gogrpc.ClientConn, error)
}

// ConnectorFunc adapts a constructor function to the Connector interface.
type ConnectorFunc func(target string, opts ...gogrpc.DialOption) (*gogrpc.ClientConn, error)

// NewClient implements Connector for ConnectorFunc.
func (fn ConnectorFunc) NewClient(target string, opts ...gogrpc.DialOption) (*gogrpc.ClientConn, error) {
	return fn(target, opts...)
}

// DialStage describes where a dial attempt failed.
type DialStage string

const (
	// DialStageConfig indicates the dial options could not be built.
	DialStageConfig DialStage = "config"
	// DialStageConnect indicates the client connection could not be created.
	DialStageConnect DialStage = "connect"
)

// DialError wraps client construction failures with a stage indicator.
type DialError struct {
	Stage DialStage
	Err   error
}

// Error implements the error interface.
func (e *DialError) Error() string {
	if e == nil {
		return "gRPC dial error"
	}
	return fmt.Sprintf("gRPC %s error: %v", e.Stage, e.Err)
}

// Unwrap returns the underlying error.
func (e *DialError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// TransportMode selects the transport security of a client connection.
type TransportMode string

const (
	// TransportInsecure sends plaintext HTTP/2.
	TransportInsecure TransportMode = "insecure"
	// TransportTLS verifies the server against the system roots.
	TransportTLS TransportMode = "tls"
)

// TransportCredentials returns the credentials for mode.
func TransportCredentials(mode TransportMode) (credentials.TransportCredentials, error) {
	switch TransportMode(strings.ToLower(strings.TrimSpace(string(mode)))) {
	case TransportInsecure, "":
		return insecure.NewCredentials(), nil
	case TransportTLS:
		return credentials.NewTLS(&tls.Config{MinVersion: tls.VersionTLS12}), nil
	default:
		return nil, fmt.Errorf("unknown transport mode %q", mode)
	}
}

// ClientDialOptions returns standard dial options for backend clients.
// Includes the OTel client stats handler so outbound calls carry trace
// context when a TracerProvider is registered.
func ClientDialOptions(mode TransportMode) ([]gogrpc.DialOption, error) {
	creds, err := TransportCredentials(mode)
	if err != nil {
		return nil, err
	}
	return []gogrpc.DialOption{
		gogrpc.WithTransportCredentials(creds),
		gogrpc.WithStatsHandler(otelgrpc.NewClientHandler()),
	}, nil
}

// NewClient builds a lazily connecting client for addr. The connection is
// established on first use, so no network I/O happens here.
func NewClient(connector Connector, addr string, mode TransportMode, opts ...gogrpc.DialOption) (*gogrpc.ClientConn, error) {
	addr = strings.TrimSpace(addr)
	if addr == "" {
		return nil, &DialError{Stage: DialStageConfig, Err: fmt.Errorf("address is required")}
	}
	if connector == nil {
		connector = ConnectorFunc(gogrpc.NewClient)
	}
	base, err := ClientDialOptions(mode)
	if err != nil {
		return nil, &DialError{Stage: DialStageConfig, Err: err}
	}
	conn, err := connector.NewClient(addr, append(base, opts...)...)
	if err != nil {
		return nil, &DialError{Stage: DialStageConnect, Err: err}
	}
	return conn, nil
}
