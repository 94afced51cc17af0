package store

import (
	"context"
	"slices"

	"github.com/rs/zerolog/log"

	"github.com/ecapdevilla/barber/internal/model"
)

// AddServicioRealizado registra un servicio completado en el log. La fecha
// por defecto es hoy y el estado se fuerza a "completado".
//
// Efecto secundario: si el clienteId referencia un cliente existente, su
// última visita pasa a la fecha del servicio y sus acumuladores suben en una
// visita y el precio del servicio. Un clienteId desconocido o vacío no toca
// ningún cliente.
func (s *Store) AddServicioRealizado(ctx context.Context, r model.ServicioRealizado) (string, error) {
	doc, err := s.load(ctx)
	if err != nil {
		return "", err
	}
	r.ID = generateID()
	if r.Fecha == "" {
		r.Fecha = s.today()
	}
	r.Estado = "completado"
	doc.ServiciosRealizados = append(doc.ServiciosRealizados, r)

	for i := range doc.Clientes {
		if r.ClienteID != "" && doc.Clientes[i].ID == r.ClienteID {
			doc.Clientes[i].UltimaVisita = r.Fecha
			doc.Clientes[i].TotalVisitas++
			doc.Clientes[i].TotalGastado += r.Precio
			break
		}
	}

	if err := s.save(ctx, doc); err != nil {
		return "", err
	}
	log.Debug().Str("registro_id", r.ID).Str("cliente_id", r.ClienteID).Int64("precio", r.Precio).Msg("servicio realizado registrado")
	return r.ID, nil
}

// ServiciosRealizados devuelve el log completo de servicios completados.
func (s *Store) ServiciosRealizados(ctx context.Context) ([]model.ServicioRealizado, error) {
	doc, err := s.load(ctx)
	if err != nil {
		return nil, err
	}
	return slices.Clone(doc.ServiciosRealizados), nil
}

// AddVenta registra una venta de productos. La fecha por defecto es hoy.
//
// Efecto secundario: cada item descuenta su cantidad del stock del producto
// referenciado. El stock puede quedar negativo; no se acota en cero. Un
// productoId desconocido se salta en silencio. La venta no toca los
// acumuladores del cliente: esos solo los mueven los servicios realizados.
func (s *Store) AddVenta(ctx context.Context, v model.Venta) (string, error) {
	doc, err := s.load(ctx)
	if err != nil {
		return "", err
	}
	v.ID = generateID()
	if v.Fecha == "" {
		v.Fecha = s.today()
	}
	doc.Ventas = append(doc.Ventas, v)

	for _, item := range v.Items {
		for i := range doc.Inventario {
			if doc.Inventario[i].ID == item.ProductoID {
				doc.Inventario[i].Stock -= item.Cantidad
				break
			}
		}
	}

	if err := s.save(ctx, doc); err != nil {
		return "", err
	}
	log.Debug().Str("venta_id", v.ID).Int64("total", v.Total).Int("items", len(v.Items)).Msg("venta registrada")
	return v.ID, nil
}

// Ventas devuelve el log completo de ventas.
func (s *Store) Ventas(ctx context.Context) ([]model.Venta, error) {
	doc, err := s.load(ctx)
	if err != nil {
		return nil, err
	}
	return slices.Clone(doc.Ventas), nil
}
