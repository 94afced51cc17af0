package dto

import "github.com/ecapdevilla/barber/internal/model"

// ServicioPatch es la actualización parcial de un servicio del catálogo.
type ServicioPatch struct {
	Nombre   *string `json:"nombre,omitempty"`
	Precio   *int64  `json:"precio,omitempty"`
	Duracion *int    `json:"duracion,omitempty"`
	Activo   *bool   `json:"activo,omitempty"`
	Tipo     *string `json:"tipo,omitempty"`
}

func (p ServicioPatch) Apply(s *model.Servicio) {
	if p.Nombre != nil {
		s.Nombre = *p.Nombre
	}
	if p.Precio != nil {
		s.Precio = *p.Precio
	}
	if p.Duracion != nil {
		s.Duracion = *p.Duracion
	}
	if p.Activo != nil {
		s.Activo = *p.Activo
	}
	if p.Tipo != nil {
		s.Tipo = *p.Tipo
	}
}

// ProductoPatch es la actualización parcial de un producto del inventario.
type ProductoPatch struct {
	Nombre      *string `json:"nombre,omitempty"`
	Stock       *int    `json:"stock,omitempty"`
	StockMinimo *int    `json:"stockMinimo,omitempty"`
	Precio      *int64  `json:"precio,omitempty"`
	Categoria   *string `json:"categoria,omitempty"`
}

func (p ProductoPatch) Apply(pr *model.Producto) {
	if p.Nombre != nil {
		pr.Nombre = *p.Nombre
	}
	if p.Stock != nil {
		pr.Stock = *p.Stock
	}
	if p.StockMinimo != nil {
		pr.StockMinimo = *p.StockMinimo
	}
	if p.Precio != nil {
		pr.Precio = *p.Precio
	}
	if p.Categoria != nil {
		pr.Categoria = *p.Categoria
	}
}
