package store

import "github.com/ecapdevilla/barber/internal/model"

// seedDocument arma el documento de arranque: config por defecto, catálogo de
// servicios inicial, dos barberos y dos promociones de plantilla. El resto de
// colecciones nacen vacías.
func (s *Store) seedDocument() *model.Documento {
	doc := &model.Documento{
		Config: model.DefaultConfig(),
		Servicios: []model.Servicio{
			{ID: generateID(), Nombre: "Corte", Precio: 15000, Duracion: 30, Activo: true, Tipo: "servicio"},
			{ID: generateID(), Nombre: "Corte y Barba", Precio: 20000, Duracion: 45, Activo: true, Tipo: "servicio"},
			{ID: generateID(), Nombre: "Barba", Precio: 8000, Duracion: 20, Activo: true, Tipo: "servicio"},
		},
		Barberos: []model.Barbero{
			{ID: generateID(), Nombre: "Carlos", Especialidad: "Corte clásico", Comision: 50, Estado: "activo"},
			{ID: generateID(), Nombre: "Andrés", Especialidad: "Barba y afeitado", Comision: 50, Estado: "activo"},
		},
		Promociones: []model.Promocion{
			{ID: generateID(), Nombre: "Recordatorio", Mensaje: "Hola {nombre}, hace rato no te vemos por la barbería. ¡Te esperamos!", Activo: true},
			{ID: generateID(), Nombre: "Cumpleaños", Mensaje: "¡Feliz cumpleaños {nombre}! Este mes tienes un descuento especial.", Activo: true},
		},
	}
	doc.Normalize()
	return doc
}
