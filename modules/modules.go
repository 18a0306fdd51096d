// Package modules bundles the stock infrastructure bindings: configuration,
// logging and routing. Import what the application needs:
//
//	b := container.NewBuilder()
//	if err := b.Import(modules.Config(), modules.Logging("api"), modules.Routing()); err != nil {
//	    ...
//	}
package modules

import (
	"github.com/km-arc/go-bindery/binding"
	"github.com/km-arc/go-bindery/config"
	"github.com/km-arc/go-bindery/container"
	"github.com/km-arc/go-bindery/logging"
	"github.com/km-arc/go-bindery/routing"
)

// Config returns the module binding the application configuration.
//
// Bound: *config.Config under tag "config" (singleton).
func Config(envFiles ...string) container.Module {
	return container.Module{
		Name: "bindery/config",
		Register: func(b *container.Builder) error {
			_, err := container.BindSingleton(b, "config",
				func(rc binding.ResolutionContext) (*config.Config, error) {
					return config.Load(envFiles...), nil
				})
			return err
		},
	}
}

// Logging returns the module binding the service logger, configured from the
// bound *config.Config.
//
// Bound: *logging.Logger under tag "log" (singleton). Imports Config.
func Logging(serviceName string) container.Module {
	return container.Module{
		Name: "bindery/logging",
		Register: func(b *container.Builder) error {
			if err := b.Import(Config()); err != nil {
				return err
			}
			_, err := container.BindSingleton(b, "log",
				func(rc binding.ResolutionContext) (*logging.Logger, error) {
					cfg, err := container.Resolve[*config.Config](rc.Resolver, "config")
					if err != nil {
						return nil, err
					}
					return logging.New(logging.Config{
						Level:     cfg.Log.Level,
						Format:    cfg.Log.Format,
						Timestamp: true,
					}, serviceName), nil
				})
			return err
		},
	}
}

// Routing returns the module binding the HTTP router.
//
// Bound: *routing.Router under tag "router" (singleton).
func Routing() container.Module {
	return container.Module{
		Name: "bindery/routing",
		Register: func(b *container.Builder) error {
			_, err := container.BindSingleton(b, "router",
				func(rc binding.ResolutionContext) (*routing.Router, error) {
					return routing.New(), nil
				})
			return err
		},
	}
}
