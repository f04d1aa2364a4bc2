package cache

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/tu-usuario/auth-api/pkg/config"
)

// NewRedisClient instancia un cliente Redis y verifica la conexión con un
// ping acotado.
func NewRedisClient(cfg config.RedisConfig) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("ping redis: %w", err)
	}
	return client, nil
}

// RateLimiter impone un intervalo mínimo entre solicitudes por clave de
// identidad, con la expiración nativa de Redis. La existencia de la clave es
// el bloqueo: no hace falta payload.
type RateLimiter struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRateLimiter construye el limitador con el TTL de la ventana.
func NewRateLimiter(client *redis.Client, ttl time.Duration) *RateLimiter {
	return &RateLimiter{client: client, ttl: ttl}
}

// TryAcquire intenta tomar el cupo de la clave de forma atómica (SET NX EX):
// dos solicitudes concurrentes para la misma clave nunca adquieren ambas.
// Si la clave ya existe devuelve false sin tocar su TTL.
func (l *RateLimiter) TryAcquire(ctx context.Context, key string) (bool, error) {
	ok, err := l.client.SetNX(ctx, key, 1, l.ttl).Result()
	if err != nil {
		return false, fmt.Errorf("ratelimit setnx: %w", err)
	}
	return ok, nil
}

// Release libera el cupo antes de que expire. Se usa cuando la operación
// protegida falla después de adquirir (p. ej. el correo no se pudo enviar)
// para no dejar al usuario bloqueado una hora sin haber recibido nada.
func (l *RateLimiter) Release(ctx context.Context, key string) error {
	if err := l.client.Del(ctx, key).Err(); err != nil {
		return fmt.Errorf("ratelimit del: %w", err)
	}
	return nil
}
