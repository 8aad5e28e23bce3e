package providers

import (
	"github.com/samber/do/v2"

	"github.com/javiermolinar/twine/internal/drag"
	"github.com/javiermolinar/twine/internal/grid"
	"github.com/javiermolinar/twine/internal/logger"
	"github.com/javiermolinar/twine/internal/planner"
	"github.com/javiermolinar/twine/internal/validation"
)

// ProvideGridCache provides the memoized slot buckets over the block store.
func ProvideGridCache(i do.Injector) (*grid.Cache, error) {
	store := do.MustInvoke[*planner.Store](i)
	return grid.NewCache(store), nil
}

// ProvideCoordinator provides the drag coordinator.
func ProvideCoordinator(i do.Injector) (*drag.Coordinator, error) {
	store := do.MustInvoke[*planner.Store](i)
	log := do.MustInvoke[*logger.Logger](i)
	return drag.New(store, drag.WithLogger(log.Logger)), nil
}

// ProvideValidator provides the CLI input validator.
func ProvideValidator(i do.Injector) (*validation.Validator, error) {
	return validation.New(), nil
}
