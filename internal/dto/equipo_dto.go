package dto

import "github.com/ecapdevilla/barber/internal/model"

// BarberoPatch es la actualización parcial de un barbero.
type BarberoPatch struct {
	Nombre       *string `json:"nombre,omitempty"`
	Especialidad *string `json:"especialidad,omitempty"`
	Telefono     *string `json:"telefono,omitempty"`
	Comision     *int    `json:"comision,omitempty"`
	Estado       *string `json:"estado,omitempty"`
}

func (p BarberoPatch) Apply(b *model.Barbero) {
	if p.Nombre != nil {
		b.Nombre = *p.Nombre
	}
	if p.Especialidad != nil {
		b.Especialidad = *p.Especialidad
	}
	if p.Telefono != nil {
		b.Telefono = *p.Telefono
	}
	if p.Comision != nil {
		b.Comision = *p.Comision
	}
	if p.Estado != nil {
		b.Estado = *p.Estado
	}
}

// PromocionPatch es la actualización parcial de una promoción.
type PromocionPatch struct {
	Nombre  *string `json:"nombre,omitempty"`
	Mensaje *string `json:"mensaje,omitempty"`
	Activo  *bool   `json:"activo,omitempty"`
}

func (p PromocionPatch) Apply(pr *model.Promocion) {
	if p.Nombre != nil {
		pr.Nombre = *p.Nombre
	}
	if p.Mensaje != nil {
		pr.Mensaje = *p.Mensaje
	}
	if p.Activo != nil {
		pr.Activo = *p.Activo
	}
}
