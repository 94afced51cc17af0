package model

// Servicio es una entrada del catálogo de servicios ofrecidos.
// Activo=false deshabilita el servicio sin borrarlo del catálogo.
// Precio está en pesos enteros, sin decimales.
type Servicio struct {
	ID       string `json:"id"`
	Nombre   string `json:"nombre"`
	Precio   int64  `json:"precio"`
	Duracion int    `json:"duracion"` // minutos
	Activo   bool   `json:"activo"`
	Tipo     string `json:"tipo"`
}

// ServicioRealizado es una entrada del registro de servicios completados.
// El registro es append-only; cada entrada actualiza los acumuladores del
// cliente referenciado al momento de registrarse.
type ServicioRealizado struct {
	ID         string `json:"id"`
	ClienteID  string `json:"clienteId,omitempty"`
	BarberoID  string `json:"barberoId,omitempty"`
	ServicioID string `json:"servicioId,omitempty"`
	Precio     int64  `json:"precio"`
	Fecha      string `json:"fecha"`
	Estado     string `json:"estado"`
}
