package model

// Documento es el libro completo de la barbería: todas las colecciones más la
// configuración, persistido como un único valor JSON bajo una sola clave.
// Cada operación del store carga el documento entero, lo muta en memoria y lo
// vuelve a guardar completo.
type Documento struct {
	Config              Config              `json:"config"`
	Servicios           []Servicio          `json:"servicios"`
	Barberos            []Barbero           `json:"barberos"`
	Promociones         []Promocion         `json:"promociones"`
	Clientes            []Cliente           `json:"clientes"`
	Inventario          []Producto          `json:"inventario"`
	ServiciosRealizados []ServicioRealizado `json:"serviciosRealizados"`
	Ventas              []Venta             `json:"ventas"`
	Citas               []Cita              `json:"citas"`
}

// Config es el bloque de configuración del negocio dentro del documento.
type Config struct {
	Currency           string `json:"currency"`
	Decimales          bool   `json:"decimales"`
	BusinessName       string `json:"businessName"`
	MensajePromocional string `json:"mensajePromocional,omitempty"`
}

// DefaultConfig devuelve la configuración de respaldo usada cuando el
// documento cargado no trae config.
func DefaultConfig() Config {
	return Config{
		Currency:     "COP",
		Decimales:    false,
		BusinessName: "Mi Barbería",
	}
}

// Normalize rellena toda colección ausente con una secuencia vacía y la
// config ausente con el fallback fijo. Se aplica en cada lectura para tolerar
// documentos con forma parcial (seed viejo, import incompleto). Nunca falla.
func (d *Documento) Normalize() {
	if d.Config.Currency == "" {
		d.Config.Currency = DefaultConfig().Currency
	}
	if d.Config.BusinessName == "" {
		d.Config.BusinessName = DefaultConfig().BusinessName
	}
	if d.Servicios == nil {
		d.Servicios = []Servicio{}
	}
	if d.Barberos == nil {
		d.Barberos = []Barbero{}
	}
	if d.Promociones == nil {
		d.Promociones = []Promocion{}
	}
	if d.Clientes == nil {
		d.Clientes = []Cliente{}
	}
	if d.Inventario == nil {
		d.Inventario = []Producto{}
	}
	if d.ServiciosRealizados == nil {
		d.ServiciosRealizados = []ServicioRealizado{}
	}
	if d.Ventas == nil {
		d.Ventas = []Venta{}
	}
	if d.Citas == nil {
		d.Citas = []Cita{}
	}
}
