// Package barber expone el punto de entrada de la capa de datos de la
// barbería: un Store sobre un backend clave-valor elegido por configuración.
package barber

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"

	"github.com/ecapdevilla/barber/internal/config"
	"github.com/ecapdevilla/barber/internal/storage"
	"github.com/ecapdevilla/barber/internal/store"
)

// Open construye el Store con el backend que indique la configuración y
// siembra el documento inicial si es la primera vez.
func Open(ctx context.Context, cfg *config.Config) (*store.Store, error) {
	var backend storage.Backend
	switch cfg.StorageBackend {
	case "memory":
		backend = storage.NewMemory()
	case "file":
		f, err := storage.NewFile(cfg.DataDir)
		if err != nil {
			return nil, err
		}
		backend = f
	case "redis":
		r, err := storage.NewRedis(cfg.RedisURL)
		if err != nil {
			return nil, fmt.Errorf("conectando a redis: %w", err)
		}
		backend = r
	default:
		return nil, fmt.Errorf("backend de almacenamiento desconocido: %q", cfg.StorageBackend)
	}

	log.Info().Str("backend", cfg.StorageBackend).Str("key", cfg.LedgerKey).Msg("abriendo store")
	return store.New(ctx, backend, store.WithKey(cfg.LedgerKey))
}
