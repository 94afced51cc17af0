package store

import (
	"context"
	"slices"

	"github.com/rs/zerolog/log"

	"github.com/ecapdevilla/barber/internal/dto"
	"github.com/ecapdevilla/barber/internal/model"
)

// AddServicio agrega un servicio al catálogo. Nace activo; el tipo por
// defecto es "servicio".
func (s *Store) AddServicio(ctx context.Context, sv model.Servicio) (string, error) {
	doc, err := s.load(ctx)
	if err != nil {
		return "", err
	}
	sv.ID = generateID()
	sv.Activo = true
	if sv.Tipo == "" {
		sv.Tipo = "servicio"
	}
	doc.Servicios = append(doc.Servicios, sv)
	if err := s.save(ctx, doc); err != nil {
		return "", err
	}
	log.Debug().Str("servicio_id", sv.ID).Str("nombre", sv.Nombre).Msg("servicio agregado al catálogo")
	return sv.ID, nil
}

// Servicios devuelve el catálogo completo, incluidos los inactivos.
func (s *Store) Servicios(ctx context.Context) ([]model.Servicio, error) {
	doc, err := s.load(ctx)
	if err != nil {
		return nil, err
	}
	return slices.Clone(doc.Servicios), nil
}

// UpdateServicio aplica un parche sobre un servicio del catálogo. Desactivar
// vía Activo=false deshabilita sin borrar.
func (s *Store) UpdateServicio(ctx context.Context, id string, patch dto.ServicioPatch) error {
	doc, err := s.load(ctx)
	if err != nil {
		return err
	}
	for i := range doc.Servicios {
		if doc.Servicios[i].ID == id {
			patch.Apply(&doc.Servicios[i])
			return s.save(ctx, doc)
		}
	}
	return ErrNotFound
}
