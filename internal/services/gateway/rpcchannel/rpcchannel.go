// Package rpcchannel owns the gateway's single connection to the game backend.
//
// A Channel is built once at startup and handed to every component that
// talks to the backend. The underlying client connection is created on the
// first Get and reused for the life of the process.
package rpcchannel

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	platformgrpc "github.com/louisbranch/boardbots/internal/platform/grpc"
	gogrpc "google.golang.org/grpc"
)

// Mode is the deployment mode that selects transport security.
type Mode string

const (
	ModeDevelopment Mode = "development"
	ModeProduction  Mode = "production"
)

// ParseMode normalizes a configured mode; anything other than development is
// treated as production.
func ParseMode(raw string) Mode {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "development", "dev":
		return ModeDevelopment
	default:
		return ModeProduction
	}
}

// Config describes how the backend connection is built.
type Config struct {
	Addr string
	Mode Mode
	// TLS opts production deployments into verified TLS. Without it the
	// channel stays on insecure transport in every mode.
	TLS bool
	// Connector overrides client construction; nil uses grpc.NewClient.
	Connector platformgrpc.Connector
	Options   []gogrpc.DialOption
}

// TransportMode returns the transport security the channel will use.
func (c Config) TransportMode() platformgrpc.TransportMode {
	if c.Mode != ModeDevelopment && c.TLS {
		return platformgrpc.TransportTLS
	}
	// TODO(gateway): default production to TLS once the backend serves certificates.
	return platformgrpc.TransportInsecure
}

// Channel lazily constructs one shared client connection.
type Channel struct {
	cfg  Config
	once sync.Once
	conn *gogrpc.ClientConn
	err  error
}

// New returns a channel for cfg. No connection is made until Get.
func New(cfg Config) *Channel {
	return &Channel{cfg: cfg}
}

// Get returns the shared connection, constructing it on first use. Concurrent
// first calls block on the same construction and observe the same result.
func (c *Channel) Get() (*gogrpc.ClientConn, error) {
	if c == nil {
		return nil, errors.New("rpc channel is not configured")
	}
	c.once.Do(func() {
		conn, err := platformgrpc.NewClient(c.cfg.Connector, c.cfg.Addr, c.cfg.TransportMode(), c.cfg.Options...)
		if err != nil {
			c.err = fmt.Errorf("backend channel %s: %w", c.cfg.Addr, err)
			return
		}
		c.conn = conn
	})
	return c.conn, c.err
}

// Invoke implements grpc.ClientConnInterface, connecting on first use.
func (c *Channel) Invoke(ctx context.Context, method string, args any, reply any, opts ...gogrpc.CallOption) error {
	conn, err := c.Get()
	if err != nil {
		return err
	}
	return conn.Invoke(ctx, method, args, reply, opts...)
}

// NewStream implements grpc.ClientConnInterface, connecting on first use.
func (c *Channel) NewStream(ctx context.Context, desc *gogrpc.StreamDesc, method string, opts ...gogrpc.CallOption) (gogrpc.ClientStream, error) {
	conn, err := c.Get()
	if err != nil {
		return nil, err
	}
	return conn.NewStream(ctx, desc, method, opts...)
}

var _ gogrpc.ClientConnInterface = (*Channel)(nil)

// Close releases the connection if one was built. It is meant for process
// shutdown only; a closed channel is not rebuilt.
func (c *Channel) Close() error {
	if c == nil {
		return nil
	}
	c.once.Do(func() {
		c.err = errors.New("rpc channel closed")
	})
	if c.conn == nil {
		return nil
	}
	return c.conn.Close()
}
