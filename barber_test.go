package barber_test

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	barber "github.com/ecapdevilla/barber"
	"github.com/ecapdevilla/barber/internal/config"
	"github.com/ecapdevilla/barber/internal/model"
)

func TestOpenConBackendEnMemoria(t *testing.T) {
	s, err := barber.Open(context.Background(), &config.Config{
		StorageBackend: "memory",
		LedgerKey:      "barberApp",
	})
	require.NoError(t, err)

	servicios, err := s.Servicios(context.Background())
	require.NoError(t, err)
	assert.Len(t, servicios, 3)
}

func TestOpenConBackendDeArchivo(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "data")
	cfg := &config.Config{StorageBackend: "file", DataDir: dir, LedgerKey: "barberApp"}
	ctx := context.Background()

	s, err := barber.Open(ctx, cfg)
	require.NoError(t, err)

	id, err := s.AddProducto(ctx, model.Producto{Nombre: "Cera", Stock: 8, StockMinimo: 2, Precio: 25000})
	require.NoError(t, err)

	// Reabrir sobre el mismo directorio conserva los datos.
	s2, err := barber.Open(ctx, cfg)
	require.NoError(t, err)
	inventario, err := s2.Inventario(ctx)
	require.NoError(t, err)
	require.Len(t, inventario, 1)
	assert.Equal(t, id, inventario[0].ID)
}

func TestOpenBackendDesconocido(t *testing.T) {
	_, err := barber.Open(context.Background(), &config.Config{StorageBackend: "s3"})
	assert.Error(t, err)
}
