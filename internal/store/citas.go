package store

import (
	"context"
	"slices"

	"github.com/ecapdevilla/barber/internal/dto"
	"github.com/ecapdevilla/barber/internal/model"
)

// AddCita agenda una cita nueva. Estado inicial forzado a "pendiente".
func (s *Store) AddCita(ctx context.Context, c model.Cita) (string, error) {
	doc, err := s.load(ctx)
	if err != nil {
		return "", err
	}
	c.ID = generateID()
	c.Estado = "pendiente"
	doc.Citas = append(doc.Citas, c)
	if err := s.save(ctx, doc); err != nil {
		return "", err
	}
	return c.ID, nil
}

// Citas devuelve la agenda completa.
func (s *Store) Citas(ctx context.Context) ([]model.Cita, error) {
	doc, err := s.load(ctx)
	if err != nil {
		return nil, err
	}
	return slices.Clone(doc.Citas), nil
}

// UpdateCita aplica un parche sobre una cita (confirmar, cancelar,
// reagendar).
func (s *Store) UpdateCita(ctx context.Context, id string, patch dto.CitaPatch) error {
	doc, err := s.load(ctx)
	if err != nil {
		return err
	}
	for i := range doc.Citas {
		if doc.Citas[i].ID == id {
			patch.Apply(&doc.Citas[i])
			return s.save(ctx, doc)
		}
	}
	return ErrNotFound
}
