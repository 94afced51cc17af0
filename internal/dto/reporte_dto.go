package dto

// ComisionBarbero es una fila del reporte mensual de comisiones: lo facturado
// por el barbero en el mes y el monto que le corresponde según su porcentaje.
type ComisionBarbero struct {
	BarberoID string `json:"barberoId"`
	Nombre    string `json:"nombre"`
	Comision  int    `json:"comision"` // porcentaje
	Servicios int    `json:"servicios"`
	Facturado int64  `json:"facturado"`
	Monto     int64  `json:"monto"`
}
