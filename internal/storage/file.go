package storage

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
)

// File es un Backend respaldado por archivos: cada clave es un archivo
// <key>.json dentro del directorio. La escritura va a un archivo temporal y
// se renombra encima, para no dejar un documento a medio escribir si el
// proceso muere durante el Set.
type File struct {
	dir string
}

func NewFile(dir string) (*File, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("creando directorio de datos: %w", err)
	}
	return &File{dir: dir}, nil
}

func (f *File) path(key string) string {
	return filepath.Join(f.dir, key+".json")
}

func (f *File) Get(_ context.Context, key string) ([]byte, error) {
	data, err := os.ReadFile(f.path(key))
	if os.IsNotExist(err) {
		return nil, ErrKeyNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("leyendo %s: %w", f.path(key), err)
	}
	return data, nil
}

func (f *File) Set(_ context.Context, key string, value []byte) error {
	tmp := f.path(key) + ".tmp"
	if err := os.WriteFile(tmp, value, 0o644); err != nil {
		return fmt.Errorf("escribiendo %s: %w", tmp, err)
	}
	if err := os.Rename(tmp, f.path(key)); err != nil {
		return fmt.Errorf("renombrando %s: %w", tmp, err)
	}
	return nil
}

var _ Backend = (*File)(nil)
