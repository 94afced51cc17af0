// Package store implementa el acceso a datos de la barbería: un documento
// único con todas las colecciones, persistido entero en cada mutación a
// través de un storage.Backend inyectado.
package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/ecapdevilla/barber/internal/model"
	"github.com/ecapdevilla/barber/internal/storage"
)

// ErrNotFound indica que el id no existe en la colección. La operación que lo
// devuelve no dejó ningún efecto secundario.
var ErrNotFound = errors.New("registro no encontrado")

// DefaultKey es la clave bajo la que vive el documento en el backend.
const DefaultKey = "barberApp"

// Store es el punto de acceso único al documento. Cada operación es un ciclo
// síncrono cargar-mutar-guardar; no hay bloqueo sub-documento, el último
// guardado gana a granularidad de documento completo.
type Store struct {
	backend storage.Backend
	key     string
	now     func() time.Time
}

// Option configura el Store al construirlo.
type Option func(*Store)

// WithKey cambia la clave del documento en el backend.
func WithKey(key string) Option {
	return func(s *Store) { s.key = key }
}

// WithNow inyecta el reloj. Los tests lo usan para fijar "hoy".
func WithNow(now func() time.Time) Option {
	return func(s *Store) { s.now = now }
}

// New construye el Store y siembra el documento inicial si la clave no existe
// todavía. Idempotente: sobre un documento ya sembrado no toca nada.
func New(ctx context.Context, backend storage.Backend, opts ...Option) (*Store, error) {
	s := &Store{
		backend: backend,
		key:     DefaultKey,
		now:     time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}

	if _, err := s.backend.Get(ctx, s.key); err != nil {
		if !errors.Is(err, storage.ErrKeyNotFound) {
			return nil, fmt.Errorf("verificando documento: %w", err)
		}
		seed := s.seedDocument()
		if err := s.save(ctx, seed); err != nil {
			return nil, fmt.Errorf("sembrando documento inicial: %w", err)
		}
		log.Info().Str("key", s.key).Msg("documento inicial sembrado")
	}
	return s, nil
}

// today devuelve la fecha calendario actual como cadena YYYY-MM-DD. Todas las
// fechas del documento se comparan como cadenas de calendario, no como
// instantes.
func (s *Store) today() string {
	return s.now().Format("2006-01-02")
}

// generateID asigna el id de todo registro nuevo. Opaco, no es clave de
// orden.
func generateID() string {
	return uuid.NewString()
}

// load lee y decodifica el documento completo, normalizando toda colección
// ausente a vacía. Un documento que no decodifica sí es error.
func (s *Store) load(ctx context.Context) (*model.Documento, error) {
	data, err := s.backend.Get(ctx, s.key)
	if errors.Is(err, storage.ErrKeyNotFound) {
		doc := &model.Documento{}
		doc.Normalize()
		return doc, nil
	}
	if err != nil {
		return nil, fmt.Errorf("cargando documento: %w", err)
	}
	var doc model.Documento
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("decodificando documento: %w", err)
	}
	doc.Normalize()
	return &doc, nil
}

// save codifica y escribe el documento completo, pisando el valor anterior.
func (s *Store) save(ctx context.Context, doc *model.Documento) error {
	data, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("codificando documento: %w", err)
	}
	if err := s.backend.Set(ctx, s.key, data); err != nil {
		return fmt.Errorf("guardando documento: %w", err)
	}
	return nil
}

// Config devuelve el bloque de configuración vigente.
func (s *Store) Config(ctx context.Context) (model.Config, error) {
	doc, err := s.load(ctx)
	if err != nil {
		return model.Config{}, err
	}
	return doc.Config, nil
}

// UpdateConfig reemplaza el bloque de configuración.
func (s *Store) UpdateConfig(ctx context.Context, cfg model.Config) error {
	doc, err := s.load(ctx)
	if err != nil {
		return err
	}
	doc.Config = cfg
	return s.save(ctx, doc)
}
