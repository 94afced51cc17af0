package model

// Producto es un artículo del inventario. El stock se descuenta como efecto
// secundario de registrar ventas y puede quedar negativo; el reporte de bajo
// stock compara contra StockMinimo.
type Producto struct {
	ID          string `json:"id"`
	Nombre      string `json:"nombre"`
	Stock       int    `json:"stock"`
	StockMinimo int    `json:"stockMinimo"`
	Precio      int64  `json:"precio"`
	Categoria   string `json:"categoria,omitempty"`
}
