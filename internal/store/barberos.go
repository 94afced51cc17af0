package store

import (
	"context"
	"slices"

	"github.com/rs/zerolog/log"

	"github.com/ecapdevilla/barber/internal/dto"
	"github.com/ecapdevilla/barber/internal/model"
)

// AddBarbero registra un barbero. Estado por defecto "activo".
func (s *Store) AddBarbero(ctx context.Context, b model.Barbero) (string, error) {
	doc, err := s.load(ctx)
	if err != nil {
		return "", err
	}
	b.ID = generateID()
	if b.Estado == "" {
		b.Estado = "activo"
	}
	doc.Barberos = append(doc.Barberos, b)
	if err := s.save(ctx, doc); err != nil {
		return "", err
	}
	log.Debug().Str("barbero_id", b.ID).Str("nombre", b.Nombre).Msg("barbero registrado")
	return b.ID, nil
}

// Barberos devuelve el equipo completo.
func (s *Store) Barberos(ctx context.Context) ([]model.Barbero, error) {
	doc, err := s.load(ctx)
	if err != nil {
		return nil, err
	}
	return slices.Clone(doc.Barberos), nil
}

// UpdateBarbero aplica un parche sobre un barbero.
func (s *Store) UpdateBarbero(ctx context.Context, id string, patch dto.BarberoPatch) error {
	doc, err := s.load(ctx)
	if err != nil {
		return err
	}
	for i := range doc.Barberos {
		if doc.Barberos[i].ID == id {
			patch.Apply(&doc.Barberos[i])
			return s.save(ctx, doc)
		}
	}
	return ErrNotFound
}
