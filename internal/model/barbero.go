package model

// Barbero representa un miembro del equipo.
// Comision es el porcentaje entero sobre lo facturado que le corresponde.
type Barbero struct {
	ID           string `json:"id"`
	Nombre       string `json:"nombre"`
	Especialidad string `json:"especialidad,omitempty"`
	Telefono     string `json:"telefono,omitempty"`
	Comision     int    `json:"comision"`
	Estado       string `json:"estado"`
}
