package model

// Cliente representa un cliente registrado de la barbería.
//
// TotalVisitas y TotalGastado son acumuladores derivados: los mantiene el
// store al registrar servicios, no se recalculan desde el historial.
type Cliente struct {
	ID            string `json:"id"`
	Nombre        string `json:"nombre"`
	Telefono      string `json:"telefono,omitempty"`
	Whatsapp      string `json:"whatsapp,omitempty"`
	Email         string `json:"email,omitempty"`
	FechaRegistro string `json:"fechaRegistro"`
	UltimaVisita  string `json:"ultimaVisita,omitempty"`
	TotalVisitas  int    `json:"totalVisitas"`
	TotalGastado  int64  `json:"totalGastado"`
	Notas         string `json:"notas,omitempty"`
}
