package storage

import (
	"context"
	"errors"

	"github.com/redis/go-redis/v9"
)

// Redis es un Backend sobre go-redis: el documento entero vive bajo una sola
// clave, GET y SET planos sin TTL.
type Redis struct {
	rdb *redis.Client
}

// NewRedis crea y valida la conexión a partir de una URL redis://.
func NewRedis(redisURL string) (*Redis, error) {
	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, err
	}

	rdb := redis.NewClient(opts)

	// Validar conectividad al arrancar
	if err := rdb.Ping(context.Background()).Err(); err != nil {
		return nil, err
	}

	return &Redis{rdb: rdb}, nil
}

// NewRedisFromClient envuelve un cliente existente (tests de integración).
func NewRedisFromClient(rdb *redis.Client) *Redis {
	return &Redis{rdb: rdb}
}

func (r *Redis) Get(ctx context.Context, key string) ([]byte, error) {
	data, err := r.rdb.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, ErrKeyNotFound
	}
	if err != nil {
		return nil, err
	}
	return data, nil
}

func (r *Redis) Set(ctx context.Context, key string, value []byte) error {
	return r.rdb.Set(ctx, key, value, 0).Err()
}

// Close cierra la conexión subyacente.
func (r *Redis) Close() error {
	return r.rdb.Close()
}

var _ Backend = (*Redis)(nil)
