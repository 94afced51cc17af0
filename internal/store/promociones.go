package store

import (
	"context"
	"slices"
	"strings"

	"github.com/ecapdevilla/barber/internal/dto"
	"github.com/ecapdevilla/barber/internal/model"
)

// AddPromocion agrega una plantilla de promoción. Nace activa.
func (s *Store) AddPromocion(ctx context.Context, p model.Promocion) (string, error) {
	doc, err := s.load(ctx)
	if err != nil {
		return "", err
	}
	p.ID = generateID()
	p.Activo = true
	doc.Promociones = append(doc.Promociones, p)
	if err := s.save(ctx, doc); err != nil {
		return "", err
	}
	return p.ID, nil
}

// Promociones devuelve todas las plantillas.
func (s *Store) Promociones(ctx context.Context) ([]model.Promocion, error) {
	doc, err := s.load(ctx)
	if err != nil {
		return nil, err
	}
	return slices.Clone(doc.Promociones), nil
}

// UpdatePromocion aplica un parche sobre una promoción.
func (s *Store) UpdatePromocion(ctx context.Context, id string, patch dto.PromocionPatch) error {
	doc, err := s.load(ctx)
	if err != nil {
		return err
	}
	for i := range doc.Promociones {
		if doc.Promociones[i].ID == id {
			patch.Apply(&doc.Promociones[i])
			return s.save(ctx, doc)
		}
	}
	return ErrNotFound
}

// MensajePromocion renderiza la plantilla de la promoción para un cliente:
// cada {nombre} se sustituye por el nombre del cliente.
func (s *Store) MensajePromocion(ctx context.Context, promoID, clienteID string) (string, error) {
	doc, err := s.load(ctx)
	if err != nil {
		return "", err
	}
	var promo *model.Promocion
	for i := range doc.Promociones {
		if doc.Promociones[i].ID == promoID {
			promo = &doc.Promociones[i]
			break
		}
	}
	if promo == nil {
		return "", ErrNotFound
	}
	var cliente *model.Cliente
	for i := range doc.Clientes {
		if doc.Clientes[i].ID == clienteID {
			cliente = &doc.Clientes[i]
			break
		}
	}
	if cliente == nil {
		return "", ErrNotFound
	}
	return strings.ReplaceAll(promo.Mensaje, "{nombre}", cliente.Nombre), nil
}
