package model

// Venta es una venta de productos del inventario. Registro append-only; cada
// item descuenta stock del producto referenciado al registrarse.
type Venta struct {
	ID        string      `json:"id"`
	ClienteID string      `json:"clienteId,omitempty"`
	Items     []VentaItem `json:"items"`
	Total     int64       `json:"total"`
	Fecha     string      `json:"fecha"`
}

// VentaItem es una línea de venta: referencia a producto más cantidad.
type VentaItem struct {
	ProductoID string `json:"productoId"`
	Cantidad   int    `json:"cantidad"`
}
