// Package di wires twine's stores and collaborators together.
package di

import (
	"github.com/samber/do/v2"

	"github.com/javiermolinar/twine/internal/config"
	"github.com/javiermolinar/twine/internal/di/providers"
	"github.com/javiermolinar/twine/internal/drag"
	"github.com/javiermolinar/twine/internal/grid"
	"github.com/javiermolinar/twine/internal/logger"
	"github.com/javiermolinar/twine/internal/planner"
	"github.com/javiermolinar/twine/internal/tags"
	"github.com/javiermolinar/twine/internal/validation"
)

// NewContainer creates and configures the DI container with all providers.
func NewContainer(settings providers.Settings) *do.RootScope {
	injector := do.New()

	do.ProvideValue(injector, &settings)

	// Core infrastructure
	do.Provide(injector, providers.ProvideConfig)
	do.Provide(injector, providers.ProvideLogger)
	do.Provide(injector, providers.ProvideSlogLogger)

	// Storage
	do.Provide(injector, providers.ProvideKV)
	do.Provide(injector, providers.ProvidePlanner)
	do.Provide(injector, providers.ProvideTags)

	// Board
	do.Provide(injector, providers.ProvideGridCache)
	do.Provide(injector, providers.ProvideCoordinator)
	do.Provide(injector, providers.ProvideValidator)

	return injector
}

// Bootstrap initializes the core services so configuration and storage
// errors surface before any command runs.
func Bootstrap(injector *do.RootScope) error {
	if _, err := do.Invoke[*config.Config](injector); err != nil {
		return err
	}
	if _, err := do.Invoke[*logger.Logger](injector); err != nil {
		return err
	}
	if _, err := do.Invoke[*planner.Store](injector); err != nil {
		return err
	}
	if _, err := do.Invoke[*tags.Store](injector); err != nil {
		return err
	}
	_ = do.MustInvoke[*grid.Cache](injector)
	_ = do.MustInvoke[*drag.Coordinator](injector)
	_ = do.MustInvoke[*validation.Validator](injector)
	return nil
}

// Shutdown stops every service in the container. It returns the shutdown
// report as an error only when a service failed to stop.
func Shutdown(injector *do.RootScope) error {
	if report := injector.Shutdown(); report != nil && !report.Succeed {
		return report
	}
	return nil
}
