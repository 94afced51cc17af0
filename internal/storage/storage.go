// Package storage abstrae el almacén clave-valor donde vive el documento.
// El store depende de esta interfaz, no de una implementación concreta, lo
// que permite sustituir un backend en memoria en los tests.
package storage

import (
	"context"
	"errors"
)

// ErrKeyNotFound indica que la clave no existe todavía en el backend.
var ErrKeyNotFound = errors.New("clave no encontrada")

// Backend es un almacén clave-valor mínimo: un valor opaco por clave. El
// documento completo es la unidad de lectura y escritura; no hay
// actualización parcial en esta frontera.
type Backend interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
}
