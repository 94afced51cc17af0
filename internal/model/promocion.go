package model

// Promocion es una plantilla de mensaje promocional. El campo Mensaje lleva
// el marcador {nombre}, sustituido por el nombre del cliente al renderizar.
type Promocion struct {
	ID      string `json:"id"`
	Nombre  string `json:"nombre"`
	Mensaje string `json:"mensaje"`
	Activo  bool   `json:"activo"`
}
