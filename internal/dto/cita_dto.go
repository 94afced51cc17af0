package dto

import "github.com/ecapdevilla/barber/internal/model"

// CitaPatch es la actualización parcial de una cita (reagendar, confirmar,
// cancelar, reasignar barbero).
type CitaPatch struct {
	ClienteID  *string `json:"clienteId,omitempty"`
	BarberoID  *string `json:"barberoId,omitempty"`
	ServicioID *string `json:"servicioId,omitempty"`
	Fecha      *string `json:"fecha,omitempty"`
	Hora       *string `json:"hora,omitempty"`
	Notas      *string `json:"notas,omitempty"`
	Estado     *string `json:"estado,omitempty"`
}

func (p CitaPatch) Apply(c *model.Cita) {
	if p.ClienteID != nil {
		c.ClienteID = *p.ClienteID
	}
	if p.BarberoID != nil {
		c.BarberoID = *p.BarberoID
	}
	if p.ServicioID != nil {
		c.ServicioID = *p.ServicioID
	}
	if p.Fecha != nil {
		c.Fecha = *p.Fecha
	}
	if p.Hora != nil {
		c.Hora = *p.Hora
	}
	if p.Notas != nil {
		c.Notas = *p.Notas
	}
	if p.Estado != nil {
		c.Estado = *p.Estado
	}
}
