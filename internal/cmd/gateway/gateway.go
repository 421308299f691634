// Package gateway parses gateway command flags and composes the service.
package gateway

import (
	"context"
	"flag"
	"fmt"
	"log"
	"time"

	boardbotsv1 "github.com/louisbranch/boardbots/api/gen/go/boardbots/v1"
	entrypoint "github.com/louisbranch/boardbots/internal/platform/cmd"
	"github.com/louisbranch/boardbots/internal/platform/config"
	gatewayservice "github.com/louisbranch/boardbots/internal/services/gateway"
	"github.com/louisbranch/boardbots/internal/services/gateway/credentials"
	"github.com/louisbranch/boardbots/internal/services/gateway/credentialstore"
	"github.com/louisbranch/boardbots/internal/services/gateway/rpcchannel"
	"github.com/louisbranch/boardbots/internal/services/shared/authctx"
)

// Config holds gateway command configuration.
type Config struct {
	HTTPAddr        string        `env:"HTTP_ADDR" envDefault:"localhost:3000"`
	RPCAddr         string        `env:"RPC_ADDR" envDefault:"localhost:50051"`
	RPCTLS          bool          `env:"RPC_TLS" envDefault:"false"`
	BackendURL      string        `env:"BACKEND_URL" envDefault:"http://localhost:1323"`
	ClientID        string        `env:"CLIENT_ID" envDefault:"IN-DEVELOPMENT"`
	CredentialsPath string        `env:"CREDENTIALS_PATH" envDefault:"users.json"`
	Mode            string        `env:"MODE" envDefault:"development"`
	PublicDir       string        `env:"PUBLIC_DIR" envDefault:"public"`
	ValidateTimeout time.Duration `env:"VALIDATE_TIMEOUT" envDefault:"2s"`
	RPCTimeout      time.Duration `env:"RPC_TIMEOUT" envDefault:"2s"`
}

// ParseConfig parses environment and flags into a Config.
func ParseConfig(fs *flag.FlagSet, args []string) (Config, error) {
	var cfg Config
	if err := entrypoint.ParseConfig(config.GatewayPrefix, &cfg); err != nil {
		return Config{}, err
	}

	fs.StringVar(&cfg.HTTPAddr, "http-addr", cfg.HTTPAddr, "HTTP listen address")
	fs.StringVar(&cfg.RPCAddr, "rpc-addr", cfg.RPCAddr, "game backend gRPC address")
	fs.BoolVar(&cfg.RPCTLS, "rpc-tls", cfg.RPCTLS, "use TLS to the game backend outside development")
	fs.StringVar(&cfg.BackendURL, "backend-url", cfg.BackendURL, "game backend HTTP base URL")
	fs.StringVar(&cfg.ClientID, "client-id", cfg.ClientID, "client id presented to the backend")
	fs.StringVar(&cfg.CredentialsPath, "credentials", cfg.CredentialsPath, "fallback credential table (.json or .db)")
	fs.StringVar(&cfg.Mode, "mode", cfg.Mode, "deployment mode: development or production")
	fs.StringVar(&cfg.PublicDir, "public-dir", cfg.PublicDir, "static asset directory")
	fs.DurationVar(&cfg.ValidateTimeout, "validate-timeout", cfg.ValidateTimeout, "session validation timeout")
	fs.DurationVar(&cfg.RPCTimeout, "rpc-timeout", cfg.RPCTimeout, "per-RPC timeout")
	if err := entrypoint.ParseArgs(fs, args); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Run builds the gateway and serves until ctx is cancelled.
func Run(ctx context.Context, cfg Config) error {
	return entrypoint.RunWithTelemetry(ctx, entrypoint.ServiceGateway, func(ctx context.Context) error {
		mode := rpcchannel.ParseMode(cfg.Mode)
		channel := rpcchannel.New(rpcchannel.Config{Addr: cfg.RPCAddr, Mode: mode, TLS: cfg.RPCTLS})
		defer func() {
			if err := channel.Close(); err != nil {
				log.Printf("close backend channel: %v", err)
			}
		}()

		store, err := credentialstore.Open(cfg.CredentialsPath)
		if err != nil {
			return fmt.Errorf("open credential store: %w", err)
		}
		svc, err := credentials.NewService(credentials.Config{
			Client:     boardbotsv1.NewBoardbotsServiceClient(channel),
			Store:      store,
			RPCTimeout: cfg.RPCTimeout,
		})
		if err != nil {
			return fmt.Errorf("init credentials: %w", err)
		}

		server, err := gatewayservice.NewServer(ctx, gatewayservice.Config{
			HTTPAddr:        cfg.HTTPAddr,
			PublicDir:       cfg.PublicDir,
			DevelopmentMode: mode == rpcchannel.ModeDevelopment,
			RPCTimeout:      cfg.RPCTimeout,
			Validator:       authctx.NewHTTPValidator(cfg.BackendURL, cfg.ClientID, cfg.ValidateTimeout, nil),
			Credentials:     svc,
			Backend:         channel,
		})
		if err != nil {
			return fmt.Errorf("init gateway server: %w", err)
		}
		defer server.Close()

		log.Printf("gateway listening on %s (mode=%s backend=%s)", server.Addr(), mode, cfg.RPCAddr)
		if err := server.ListenAndServe(ctx); err != nil {
			return fmt.Errorf("serve gateway: %w", err)
		}
		return nil
	})
}
