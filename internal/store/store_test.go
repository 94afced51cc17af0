package store_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ecapdevilla/barber/internal/dto"
	"github.com/ecapdevilla/barber/internal/model"
	"github.com/ecapdevilla/barber/internal/storage"
	"github.com/ecapdevilla/barber/internal/store"
)

// ── Helpers ──────────────────────────────────────────────────────────────────

// fixedNow congela el reloj del store en una fecha conocida.
func fixedNow(t time.Time) func() time.Time {
	return func() time.Time { return t }
}

var hoy = time.Date(2025, 3, 20, 10, 30, 0, 0, time.UTC) // "2025-03-20"

func newTestStore(t *testing.T) (*store.Store, *storage.Memory) {
	t.Helper()
	backend := storage.NewMemory()
	s, err := store.New(context.Background(), backend, store.WithNow(fixedNow(hoy)))
	require.NoError(t, err)
	return s, backend
}

func strPtr(s string) *string { return &s }
func intPtr(i int) *int       { return &i }

// ── Inicialización ───────────────────────────────────────────────────────────

func TestNewSiembraDocumentoInicial(t *testing.T) {
	s, _ := newTestStore(t)
	ctx := context.Background()

	servicios, err := s.Servicios(ctx)
	require.NoError(t, err)
	require.Len(t, servicios, 3)
	assert.Equal(t, "Corte", servicios[0].Nombre)
	assert.Equal(t, int64(15000), servicios[0].Precio)
	assert.True(t, servicios[0].Activo)

	barberos, err := s.Barberos(ctx)
	require.NoError(t, err)
	assert.Len(t, barberos, 2)

	promos, err := s.Promociones(ctx)
	require.NoError(t, err)
	require.Len(t, promos, 2)
	assert.Contains(t, promos[0].Mensaje, "{nombre}")

	clientes, err := s.Clientes(ctx)
	require.NoError(t, err)
	assert.Empty(t, clientes)

	cfg, err := s.Config(ctx)
	require.NoError(t, err)
	assert.Equal(t, "COP", cfg.Currency)
	assert.Equal(t, "Mi Barbería", cfg.BusinessName)
	assert.False(t, cfg.Decimales)
}

func TestReinicializarEsNoOp(t *testing.T) {
	s, backend := newTestStore(t)
	ctx := context.Background()

	id, err := s.AddCliente(ctx, model.Cliente{Nombre: "Ana"})
	require.NoError(t, err)

	// Abrir de nuevo sobre el mismo backend no debe re-sembrar nada.
	s2, err := store.New(ctx, backend, store.WithNow(fixedNow(hoy)))
	require.NoError(t, err)

	clientes, err := s2.Clientes(ctx)
	require.NoError(t, err)
	require.Len(t, clientes, 1)
	assert.Equal(t, id, clientes[0].ID)

	servicios, err := s2.Servicios(ctx)
	require.NoError(t, err)
	assert.Len(t, servicios, 3)
}

func TestDocumentoCorruptoPropagaError(t *testing.T) {
	backend := storage.NewMemory()
	ctx := context.Background()
	require.NoError(t, backend.Set(ctx, store.DefaultKey, []byte("esto no es json")))

	// Presencia de la clave evita el seed; la lectura sí debe fallar.
	s, err := store.New(ctx, backend)
	require.NoError(t, err)

	_, err = s.Clientes(ctx)
	assert.Error(t, err)
}

func TestDocumentoParcialSeNormaliza(t *testing.T) {
	backend := storage.NewMemory()
	ctx := context.Background()
	parcial := []byte(`{"config":{"currency":"COP"},"clientes":[{"id":"c1","nombre":"Ana","fechaRegistro":"2024-01-01","totalVisitas":0,"totalGastado":0}]}`)
	require.NoError(t, backend.Set(ctx, store.DefaultKey, parcial))

	s, err := store.New(ctx, backend, store.WithNow(fixedNow(hoy)))
	require.NoError(t, err)

	// Colecciones ausentes leen como vacías, nunca error.
	citas, err := s.Citas(ctx)
	require.NoError(t, err)
	assert.Empty(t, citas)

	ventas, err := s.Ventas(ctx)
	require.NoError(t, err)
	assert.Empty(t, ventas)

	clientes, err := s.Clientes(ctx)
	require.NoError(t, err)
	assert.Len(t, clientes, 1)

	// Config incompleta recibe el fallback.
	cfg, err := s.Config(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Mi Barbería", cfg.BusinessName)
}

// ── CRUD de clientes ─────────────────────────────────────────────────────────

func TestAddClienteAsignaIDYDefaults(t *testing.T) {
	s, _ := newTestStore(t)
	ctx := context.Background()

	id, err := s.AddCliente(ctx, model.Cliente{
		Nombre:   "Pedro",
		Telefono: "3001234567",
		Whatsapp: "3001234567",
		// El llamador no controla estos campos:
		TotalVisitas: 99,
		TotalGastado: 99999,
		UltimaVisita: "2020-01-01",
	})
	require.NoError(t, err)
	require.NotEmpty(t, id)

	clientes, err := s.Clientes(ctx)
	require.NoError(t, err)
	require.Len(t, clientes, 1)

	c := clientes[0]
	assert.Equal(t, id, c.ID)
	assert.Equal(t, "Pedro", c.Nombre)
	assert.Equal(t, "2025-03-20", c.FechaRegistro)
	assert.Empty(t, c.UltimaVisita)
	assert.Zero(t, c.TotalVisitas)
	assert.Zero(t, c.TotalGastado)
}

func TestAddAsignaIDsUnicos(t *testing.T) {
	s, _ := newTestStore(t)
	ctx := context.Background()

	vistos := map[string]bool{}
	for i := 0; i < 20; i++ {
		id, err := s.AddCliente(ctx, model.Cliente{Nombre: "Cliente"})
		require.NoError(t, err)
		assert.False(t, vistos[id], "id repetido: %s", id)
		vistos[id] = true
	}
}

func TestUpdateClienteAplicaParcheParcial(t *testing.T) {
	s, _ := newTestStore(t)
	ctx := context.Background()

	id, err := s.AddCliente(ctx, model.Cliente{Nombre: "Ana", Telefono: "300111"})
	require.NoError(t, err)

	err = s.UpdateCliente(ctx, id, dto.ClientePatch{Whatsapp: strPtr("300222")})
	require.NoError(t, err)

	clientes, err := s.Clientes(ctx)
	require.NoError(t, err)
	c := clientes[0]
	// Campo parchado pisa, los demás se conservan.
	assert.Equal(t, "300222", c.Whatsapp)
	assert.Equal(t, "Ana", c.Nombre)
	assert.Equal(t, "300111", c.Telefono)
}

func TestUpdateClienteDesconocidoFallaSinEfectos(t *testing.T) {
	s, _ := newTestStore(t)
	ctx := context.Background()

	_, err := s.AddCliente(ctx, model.Cliente{Nombre: "Ana"})
	require.NoError(t, err)

	err = s.UpdateCliente(ctx, "no-existe", dto.ClientePatch{Nombre: strPtr("Otro")})
	assert.ErrorIs(t, err, store.ErrNotFound)

	clientes, err := s.Clientes(ctx)
	require.NoError(t, err)
	require.Len(t, clientes, 1)
	assert.Equal(t, "Ana", clientes[0].Nombre)
}

// ── Catálogo, barberos, citas ────────────────────────────────────────────────

func TestAddServicioNaceActivo(t *testing.T) {
	s, _ := newTestStore(t)
	ctx := context.Background()

	id, err := s.AddServicio(ctx, model.Servicio{Nombre: "Tinte", Precio: 30000, Duracion: 60, Activo: false})
	require.NoError(t, err)

	servicios, err := s.Servicios(ctx)
	require.NoError(t, err)
	require.Len(t, servicios, 4) // 3 del seed + 1

	var tinte model.Servicio
	for _, sv := range servicios {
		if sv.ID == id {
			tinte = sv
		}
	}
	assert.True(t, tinte.Activo)
	assert.Equal(t, "servicio", tinte.Tipo)
}

func TestUpdateServicioDesactivaSinBorrar(t *testing.T) {
	s, _ := newTestStore(t)
	ctx := context.Background()

	servicios, err := s.Servicios(ctx)
	require.NoError(t, err)
	id := servicios[0].ID

	err = s.UpdateServicio(ctx, id, dto.ServicioPatch{Activo: boolPtr(false)})
	require.NoError(t, err)

	servicios, err = s.Servicios(ctx)
	require.NoError(t, err)
	assert.Len(t, servicios, 3)
	assert.False(t, servicios[0].Activo)
	assert.Equal(t, "Corte", servicios[0].Nombre)
}

func TestAddBarberoEstadoPorDefecto(t *testing.T) {
	s, _ := newTestStore(t)
	ctx := context.Background()

	id, err := s.AddBarbero(ctx, model.Barbero{Nombre: "Luis", Comision: 40})
	require.NoError(t, err)

	barberos, err := s.Barberos(ctx)
	require.NoError(t, err)
	require.Len(t, barberos, 3)
	assert.Equal(t, "activo", barberos[2].Estado)
	assert.Equal(t, id, barberos[2].ID)

	err = s.UpdateBarbero(ctx, id, dto.BarberoPatch{Comision: intPtr(45)})
	require.NoError(t, err)
	barberos, err = s.Barberos(ctx)
	require.NoError(t, err)
	assert.Equal(t, 45, barberos[2].Comision)
}

func TestAddCitaNacePendiente(t *testing.T) {
	s, _ := newTestStore(t)
	ctx := context.Background()

	id, err := s.AddCita(ctx, model.Cita{Fecha: "2025-03-22", Hora: "15:00", Estado: "confirmada"})
	require.NoError(t, err)

	citas, err := s.Citas(ctx)
	require.NoError(t, err)
	require.Len(t, citas, 1)
	assert.Equal(t, "pendiente", citas[0].Estado)

	err = s.UpdateCita(ctx, id, dto.CitaPatch{Estado: strPtr("confirmada")})
	require.NoError(t, err)
	citas, err = s.Citas(ctx)
	require.NoError(t, err)
	assert.Equal(t, "confirmada", citas[0].Estado)
}

func boolPtr(b bool) *bool { return &b }

// ── Servicios realizados: acumuladores del cliente ───────────────────────────

func TestAddServicioRealizadoActualizaCliente(t *testing.T) {
	s, _ := newTestStore(t)
	ctx := context.Background()

	clienteID, err := s.AddCliente(ctx, model.Cliente{Nombre: "Ana"})
	require.NoError(t, err)

	_, err = s.AddServicioRealizado(ctx, model.ServicioRealizado{ClienteID: clienteID, Precio: 15000})
	require.NoError(t, err)
	_, err = s.AddServicioRealizado(ctx, model.ServicioRealizado{ClienteID: clienteID, Precio: 8000, Fecha: "2025-03-18"})
	require.NoError(t, err)

	clientes, err := s.Clientes(ctx)
	require.NoError(t, err)
	c := clientes[0]
	assert.Equal(t, 2, c.TotalVisitas)
	assert.Equal(t, int64(23000), c.TotalGastado)
	// La última visita es la fecha del último registro, no la mayor.
	assert.Equal(t, "2025-03-18", c.UltimaVisita)

	registros, err := s.ServiciosRealizados(ctx)
	require.NoError(t, err)
	require.Len(t, registros, 2)
	assert.Equal(t, "completado", registros[0].Estado)
	assert.Equal(t, "2025-03-20", registros[0].Fecha) // fecha por defecto = hoy
}

func TestAddServicioRealizadoClienteDesconocidoNoTocaNada(t *testing.T) {
	s, _ := newTestStore(t)
	ctx := context.Background()

	_, err := s.AddCliente(ctx, model.Cliente{Nombre: "Ana"})
	require.NoError(t, err)

	_, err = s.AddServicioRealizado(ctx, model.ServicioRealizado{ClienteID: "fantasma", Precio: 15000})
	require.NoError(t, err)

	clientes, err := s.Clientes(ctx)
	require.NoError(t, err)
	assert.Zero(t, clientes[0].TotalVisitas)
	assert.Zero(t, clientes[0].TotalGastado)

	// El registro sí queda en el log.
	registros, err := s.ServiciosRealizados(ctx)
	require.NoError(t, err)
	assert.Len(t, registros, 1)
}

// ── Ventas: descuento de stock ───────────────────────────────────────────────

func TestAddVentaDescuentaStock(t *testing.T) {
	s, _ := newTestStore(t)
	ctx := context.Background()

	prodID, err := s.AddProducto(ctx, model.Producto{Nombre: "Cera", Stock: 10, StockMinimo: 3, Precio: 25000})
	require.NoError(t, err)

	_, err = s.AddVenta(ctx, model.Venta{
		Items: []model.VentaItem{{ProductoID: prodID, Cantidad: 4}},
		Total: 100000,
	})
	require.NoError(t, err)

	inventario, err := s.Inventario(ctx)
	require.NoError(t, err)
	assert.Equal(t, 6, inventario[0].Stock)
}

func TestAddVentaPermiteStockNegativo(t *testing.T) {
	s, _ := newTestStore(t)
	ctx := context.Background()

	prodID, err := s.AddProducto(ctx, model.Producto{Nombre: "Shampoo", Stock: 2, StockMinimo: 1, Precio: 18000})
	require.NoError(t, err)

	_, err = s.AddVenta(ctx, model.Venta{
		Items: []model.VentaItem{{ProductoID: prodID, Cantidad: 5}},
		Total: 90000,
	})
	require.NoError(t, err)

	inventario, err := s.Inventario(ctx)
	require.NoError(t, err)
	assert.Equal(t, -3, inventario[0].Stock)
}

func TestAddVentaProductoDesconocidoSeSalta(t *testing.T) {
	s, _ := newTestStore(t)
	ctx := context.Background()

	prodID, err := s.AddProducto(ctx, model.Producto{Nombre: "Cera", Stock: 10, StockMinimo: 3})
	require.NoError(t, err)

	_, err = s.AddVenta(ctx, model.Venta{
		Items: []model.VentaItem{{ProductoID: "fantasma", Cantidad: 2}},
		Total: 50000,
	})
	require.NoError(t, err)

	inventario, err := s.Inventario(ctx)
	require.NoError(t, err)
	require.Len(t, inventario, 1)
	assert.Equal(t, prodID, inventario[0].ID)
	assert.Equal(t, 10, inventario[0].Stock)
}

func TestAddVentaNoTocaAcumuladoresDelCliente(t *testing.T) {
	s, _ := newTestStore(t)
	ctx := context.Background()

	clienteID, err := s.AddCliente(ctx, model.Cliente{Nombre: "Ana"})
	require.NoError(t, err)

	_, err = s.AddVenta(ctx, model.Venta{ClienteID: clienteID, Total: 50000})
	require.NoError(t, err)

	clientes, err := s.Clientes(ctx)
	require.NoError(t, err)
	assert.Zero(t, clientes[0].TotalGastado)
	assert.Empty(t, clientes[0].UltimaVisita)
}

// ── Promociones ──────────────────────────────────────────────────────────────

func TestMensajePromocionSustituyeNombre(t *testing.T) {
	s, _ := newTestStore(t)
	ctx := context.Background()

	promoID, err := s.AddPromocion(ctx, model.Promocion{Nombre: "Descuento", Mensaje: "Hola {nombre}, hoy 2x1 para {nombre}."})
	require.NoError(t, err)
	clienteID, err := s.AddCliente(ctx, model.Cliente{Nombre: "Pedro"})
	require.NoError(t, err)

	msg, err := s.MensajePromocion(ctx, promoID, clienteID)
	require.NoError(t, err)
	assert.Equal(t, "Hola Pedro, hoy 2x1 para Pedro.", msg)

	_, err = s.MensajePromocion(ctx, promoID, "fantasma")
	assert.ErrorIs(t, err, store.ErrNotFound)
}
