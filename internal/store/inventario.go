package store

import (
	"context"
	"slices"

	"github.com/rs/zerolog/log"

	"github.com/ecapdevilla/barber/internal/dto"
	"github.com/ecapdevilla/barber/internal/model"
)

// AddProducto agrega un producto al inventario con el stock que traiga.
func (s *Store) AddProducto(ctx context.Context, p model.Producto) (string, error) {
	doc, err := s.load(ctx)
	if err != nil {
		return "", err
	}
	p.ID = generateID()
	doc.Inventario = append(doc.Inventario, p)
	if err := s.save(ctx, doc); err != nil {
		return "", err
	}
	log.Debug().Str("producto_id", p.ID).Str("nombre", p.Nombre).Int("stock", p.Stock).Msg("producto agregado al inventario")
	return p.ID, nil
}

// Inventario devuelve todos los productos.
func (s *Store) Inventario(ctx context.Context) ([]model.Producto, error) {
	doc, err := s.load(ctx)
	if err != nil {
		return nil, err
	}
	return slices.Clone(doc.Inventario), nil
}

// UpdateProducto aplica un parche sobre un producto (ajuste de stock manual,
// precio, umbral mínimo).
func (s *Store) UpdateProducto(ctx context.Context, id string, patch dto.ProductoPatch) error {
	doc, err := s.load(ctx)
	if err != nil {
		return err
	}
	for i := range doc.Inventario {
		if doc.Inventario[i].ID == id {
			patch.Apply(&doc.Inventario[i])
			return s.save(ctx, doc)
		}
	}
	return ErrNotFound
}
