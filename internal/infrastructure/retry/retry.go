package retry

import (
	"context"
	"fmt"
	"time"

	"github.com/cenkalti/backoff/v5"
	"github.com/rs/zerolog"
)

// Config estrategia de reintento con backoff exponencial.
type Config struct {
	MaxAttempts    uint
	InitialBackoff time.Duration
	MaxBackoff     time.Duration
}

// StartupConfig valores para conectar dependencias al arrancar (base recién levantada en docker-compose).
func StartupConfig(attempts int) Config {
	return Config{
		MaxAttempts:    uint(attempts),
		InitialBackoff: 500 * time.Millisecond,
		MaxBackoff:     5 * time.Second,
	}
}

// Do ejecuta fn con backoff exponencial hasta MaxAttempts. Solo para el arranque:
// las peticiones HTTP nunca reintentan.
func Do[T any](ctx context.Context, cfg Config, log zerolog.Logger, op string, fn func(ctx context.Context) (T, error)) (T, error) {
	b := backoff.NewExponentialBackOff()
	b.InitialInterval = cfg.InitialBackoff
	b.MaxInterval = cfg.MaxBackoff

	attempt := 0
	result, err := backoff.Retry(ctx, func() (T, error) {
		attempt++
		return fn(ctx)
	},
		backoff.WithBackOff(b),
		backoff.WithMaxTries(cfg.MaxAttempts),
		backoff.WithNotify(func(err error, wait time.Duration) {
			log.Warn().
				Err(err).
				Str("operation", op).
				Int("attempt", attempt).
				Uint("max_attempts", cfg.MaxAttempts).
				Dur("backoff", wait).
				Msg("operación fallida, reintentando")
		}),
	)
	if err != nil {
		var zero T
		return zero, fmt.Errorf("%s falló tras %d intentos: %w", op, attempt, err)
	}
	return result, nil
}
