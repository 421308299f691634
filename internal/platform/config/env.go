// Package config loads service settings from prefixed environment variables.
package config

import (
	"errors"
	"fmt"

	"github.com/caarlos0/env/v11"
)

// Environment prefixes owned by each configuration surface.
const (
	GatewayPrefix = "BOARDBOTS_GATEWAY_"
	OTelPrefix    = "BOARDBOTS_OTEL_"
)

// ParseEnv fills target from environment variables named prefix plus each
// field's env tag.
func ParseEnv(prefix string, target any) error {
	if target == nil {
		return errors.New("parse env: target is required")
	}
	if err := env.ParseWithOptions(target, env.Options{Prefix: prefix}); err != nil {
		return fmt.Errorf("parse env %s*: %w", prefix, err)
	}
	return nil
}
