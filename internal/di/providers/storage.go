package providers

import (
	"context"

	"github.com/samber/do/v2"

	"github.com/javiermolinar/twine/internal/config"
	"github.com/javiermolinar/twine/internal/db"
	"github.com/javiermolinar/twine/internal/logger"
	"github.com/javiermolinar/twine/internal/planner"
	"github.com/javiermolinar/twine/internal/tags"
)

// KVHandle wraps the KV backend with shutdown capability.
type KVHandle struct {
	db.KV
}

// Shutdown implements do.Shutdownable.
func (h *KVHandle) Shutdown() error {
	return h.Close()
}

// ProvideKV opens the configured KV backend.
func ProvideKV(i do.Injector) (*KVHandle, error) {
	cfg := do.MustInvoke[*config.Config](i)
	log := do.MustInvoke[*logger.Logger](i)

	kv, err := db.Open(cfg.Storage.Backend, cfg.Storage.Path)
	if err != nil {
		return nil, err
	}

	log.Debug("storage opened", "backend", cfg.Storage.Backend, "path", cfg.Storage.Path)

	return &KVHandle{KV: kv}, nil
}

// ProvidePlanner provides the block store, loaded once from storage.
func ProvidePlanner(i do.Injector) (*planner.Store, error) {
	kv := do.MustInvoke[*KVHandle](i)
	log := do.MustInvoke[*logger.Logger](i)

	store, err := planner.Open(context.Background(), kv.KV, planner.WithLogger(log.Logger))
	if err != nil {
		return nil, err
	}

	log.Debug("planner loaded", "blocks", store.Count())

	return store, nil
}

// ProvideTags provides the tag vocabularies, loaded once from storage.
func ProvideTags(i do.Injector) (*tags.Store, error) {
	kv := do.MustInvoke[*KVHandle](i)
	log := do.MustInvoke[*logger.Logger](i)

	return tags.Open(context.Background(), kv.KV, tags.WithLogger(log.Logger))
}
