package model

// Cita es un turno agendado. Nace con estado "pendiente".
type Cita struct {
	ID         string `json:"id"`
	ClienteID  string `json:"clienteId,omitempty"`
	BarberoID  string `json:"barberoId,omitempty"`
	ServicioID string `json:"servicioId,omitempty"`
	Fecha      string `json:"fecha"`
	Hora       string `json:"hora,omitempty"`
	Notas      string `json:"notas,omitempty"`
	Estado     string `json:"estado"`
}
