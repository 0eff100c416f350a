package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// Client envuelve el cliente go-redis con las operaciones que usa la aplicación.
type Client struct {
	rdb *redis.Client
}

// NewClient crea el cliente a partir de REDIS_URL y verifica la conexión.
func NewClient(ctx context.Context, url string) (*Client, error) {
	opts, err := redis.ParseURL(url)
	if err != nil {
		return nil, fmt.Errorf("redis url inválida: %w", err)
	}

	rdb := redis.NewClient(opts)

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := rdb.Ping(pingCtx).Err(); err != nil {
		_ = rdb.Close()
		return nil, fmt.Errorf("conectar a redis: %w", err)
	}

	return &Client{rdb: rdb}, nil
}

// NewClientFrom envuelve un *redis.Client ya construido (tests con miniredis).
func NewClientFrom(rdb *redis.Client) *Client {
	return &Client{rdb: rdb}
}

// Ping verifica la conectividad (readiness).
func (c *Client) Ping(ctx context.Context) error {
	return c.rdb.Ping(ctx).Err()
}

// Close cierra las conexiones.
func (c *Client) Close() error {
	return c.rdb.Close()
}
