package store

import (
	"context"
	"slices"

	"github.com/rs/zerolog/log"

	"github.com/ecapdevilla/barber/internal/dto"
	"github.com/ecapdevilla/barber/internal/model"
)

// AddCliente registra un cliente nuevo. El store asigna el id y los valores
// iniciales: fecha de registro hoy, acumuladores en cero, sin última visita.
func (s *Store) AddCliente(ctx context.Context, c model.Cliente) (string, error) {
	doc, err := s.load(ctx)
	if err != nil {
		return "", err
	}
	c.ID = generateID()
	c.FechaRegistro = s.today()
	c.UltimaVisita = ""
	c.TotalVisitas = 0
	c.TotalGastado = 0
	doc.Clientes = append(doc.Clientes, c)
	if err := s.save(ctx, doc); err != nil {
		return "", err
	}
	log.Debug().Str("cliente_id", c.ID).Str("nombre", c.Nombre).Msg("cliente registrado")
	return c.ID, nil
}

// Clientes devuelve la colección completa. La copia es del llamador: mutarla
// no persiste nada.
func (s *Store) Clientes(ctx context.Context) ([]model.Cliente, error) {
	doc, err := s.load(ctx)
	if err != nil {
		return nil, err
	}
	return slices.Clone(doc.Clientes), nil
}

// UpdateCliente superpone los campos presentes del parche sobre el cliente.
// ErrNotFound si el id no existe; en ese caso no hay efecto alguno.
func (s *Store) UpdateCliente(ctx context.Context, id string, patch dto.ClientePatch) error {
	doc, err := s.load(ctx)
	if err != nil {
		return err
	}
	for i := range doc.Clientes {
		if doc.Clientes[i].ID == id {
			patch.Apply(&doc.Clientes[i])
			return s.save(ctx, doc)
		}
	}
	return ErrNotFound
}
