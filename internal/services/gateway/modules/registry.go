// Package modules lists the gateway route modules in mount order.
package modules

import (
	"fmt"

	"github.com/go-chi/chi/v5"
	module "github.com/louisbranch/boardbots/internal/services/gateway/module"
	"github.com/louisbranch/boardbots/internal/services/gateway/modules/auth"
	"github.com/louisbranch/boardbots/internal/services/gateway/modules/connect"
	"github.com/louisbranch/boardbots/internal/services/gateway/modules/home"
)

// Default returns the modules every gateway serves.
func Default() []module.Module {
	return []module.Module{
		auth.New(),
		connect.New(),
		home.New(),
	}
}

// MountAll mounts mods onto r, rejecting duplicate ids.
func MountAll(r chi.Router, deps module.Dependencies, mods []module.Module) error {
	seen := make(map[string]struct{}, len(mods))
	for _, mod := range mods {
		if mod == nil {
			continue
		}
		id := mod.ID()
		if _, ok := seen[id]; ok {
			return fmt.Errorf("module %q registered twice", id)
		}
		seen[id] = struct{}{}
		if err := mod.Mount(deps, r); err != nil {
			return fmt.Errorf("mount module %q: %w", id, err)
		}
	}
	return nil
}
