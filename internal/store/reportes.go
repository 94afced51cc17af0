package store

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/ecapdevilla/barber/internal/dto"
	"github.com/ecapdevilla/barber/internal/model"
)

// diasRecordatorio es el mínimo de días sin visita para que un cliente entre
// en la lista de recordatorio.
const diasRecordatorio = 15

// ClientesConRecordatorio devuelve los clientes con al menos 15 días desde la
// última visita y un número de whatsapp cargado. Quien nunca visitó queda
// afuera. La diferencia se cuenta en días enteros (piso).
func (s *Store) ClientesConRecordatorio(ctx context.Context) ([]model.Cliente, error) {
	doc, err := s.load(ctx)
	if err != nil {
		return nil, err
	}
	ahora := s.now()
	due := []model.Cliente{}
	for _, c := range doc.Clientes {
		if c.UltimaVisita == "" || c.Whatsapp == "" {
			continue
		}
		visita, err := time.Parse("2006-01-02", c.UltimaVisita)
		if err != nil {
			continue
		}
		dias := int(ahora.Sub(visita).Hours() / 24)
		if dias >= diasRecordatorio {
			due = append(due, c)
		}
	}
	return due, nil
}

// ProductosBajoStock devuelve los productos con stock en o bajo su mínimo.
func (s *Store) ProductosBajoStock(ctx context.Context) ([]model.Producto, error) {
	doc, err := s.load(ctx)
	if err != nil {
		return nil, err
	}
	bajos := []model.Producto{}
	for _, p := range doc.Inventario {
		if p.Stock <= p.StockMinimo {
			bajos = append(bajos, p)
		}
	}
	return bajos, nil
}

// GananciasHoy suma los precios de los servicios realizados hoy más los
// totales de las ventas de hoy. Las fechas se comparan como cadenas de
// calendario, así que una entrada de hoy cuenta sin importar la hora.
func (s *Store) GananciasHoy(ctx context.Context) (int64, error) {
	doc, err := s.load(ctx)
	if err != nil {
		return 0, err
	}
	hoy := s.today()
	var total int64
	for _, r := range doc.ServiciosRealizados {
		if r.Fecha == hoy {
			total += r.Precio
		}
	}
	for _, v := range doc.Ventas {
		if v.Fecha == hoy {
			total += v.Total
		}
	}
	return total, nil
}

// ServiciosPorBarbero filtra el log de servicios realizados al mes/año dado
// (cero = mes/año actual) y, si barberoID no es vacío, a ese barbero.
func (s *Store) ServiciosPorBarbero(ctx context.Context, barberoID string, mes time.Month, anio int) ([]model.ServicioRealizado, error) {
	doc, err := s.load(ctx)
	if err != nil {
		return nil, err
	}
	ahora := s.now()
	if mes == 0 {
		mes = ahora.Month()
	}
	if anio == 0 {
		anio = ahora.Year()
	}
	out := []model.ServicioRealizado{}
	for _, r := range doc.ServiciosRealizados {
		fecha, err := time.Parse("2006-01-02", r.Fecha)
		if err != nil {
			continue
		}
		if fecha.Month() != mes || fecha.Year() != anio {
			continue
		}
		if barberoID != "" && r.BarberoID != barberoID {
			continue
		}
		out = append(out, r)
	}
	return out, nil
}

// ComisionesPorBarbero liquida el mes: por cada barbero, lo facturado en
// servicios realizados y el monto a pagar según su porcentaje, redondeado al
// peso. Barberos sin servicios en el mes salen con todo en cero.
func (s *Store) ComisionesPorBarbero(ctx context.Context, mes time.Month, anio int) ([]dto.ComisionBarbero, error) {
	doc, err := s.load(ctx)
	if err != nil {
		return nil, err
	}
	servicios, err := s.ServiciosPorBarbero(ctx, "", mes, anio)
	if err != nil {
		return nil, err
	}

	out := make([]dto.ComisionBarbero, 0, len(doc.Barberos))
	for _, b := range doc.Barberos {
		fila := dto.ComisionBarbero{
			BarberoID: b.ID,
			Nombre:    b.Nombre,
			Comision:  b.Comision,
		}
		for _, r := range servicios {
			if r.BarberoID == b.ID {
				fila.Servicios++
				fila.Facturado += r.Precio
			}
		}
		fila.Monto = decimal.NewFromInt(fila.Facturado).
			Mul(decimal.NewFromInt(int64(b.Comision))).
			Div(decimal.NewFromInt(100)).
			Round(0).IntPart()
		out = append(out, fila)
	}
	return out, nil
}
