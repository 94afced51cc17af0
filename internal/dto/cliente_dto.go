// Package dto define los tipos de parche para actualizaciones parciales.
// Cada parche cubre el conjunto de campos editables de su registro: los
// campos presentes (puntero no nil) pisan al registro, los ausentes se
// conservan. El id y los campos asignados por el store no son parchables.
package dto

import "github.com/ecapdevilla/barber/internal/model"

// ClientePatch es la actualización parcial de un cliente.
type ClientePatch struct {
	Nombre       *string `json:"nombre,omitempty"`
	Telefono     *string `json:"telefono,omitempty"`
	Whatsapp     *string `json:"whatsapp,omitempty"`
	Email        *string `json:"email,omitempty"`
	UltimaVisita *string `json:"ultimaVisita,omitempty"`
	TotalVisitas *int    `json:"totalVisitas,omitempty"`
	TotalGastado *int64  `json:"totalGastado,omitempty"`
	Notas        *string `json:"notas,omitempty"`
}

// Apply superpone los campos presentes del parche sobre el cliente.
func (p ClientePatch) Apply(c *model.Cliente) {
	if p.Nombre != nil {
		c.Nombre = *p.Nombre
	}
	if p.Telefono != nil {
		c.Telefono = *p.Telefono
	}
	if p.Whatsapp != nil {
		c.Whatsapp = *p.Whatsapp
	}
	if p.Email != nil {
		c.Email = *p.Email
	}
	if p.UltimaVisita != nil {
		c.UltimaVisita = *p.UltimaVisita
	}
	if p.TotalVisitas != nil {
		c.TotalVisitas = *p.TotalVisitas
	}
	if p.TotalGastado != nil {
		c.TotalGastado = *p.TotalGastado
	}
	if p.Notas != nil {
		c.Notas = *p.Notas
	}
}
