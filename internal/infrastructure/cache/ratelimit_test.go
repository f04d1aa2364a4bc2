package cache

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestLimiter(t *testing.T, ttl time.Duration) (*RateLimiter, *miniredis.Miniredis) {
	t.Helper()
	srv := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: srv.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return NewRateLimiter(client, ttl), srv
}

func TestTryAcquire_PrimeraVezAdquiere_SegundaNo(t *testing.T) {
	limiter, _ := newTestLimiter(t, time.Hour)
	ctx := context.Background()

	ok, err := limiter.TryAcquire(ctx, "pwdreset:a@x.com")
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = limiter.TryAcquire(ctx, "pwdreset:a@x.com")
	require.NoError(t, err)
	assert.False(t, ok, "la segunda solicitud dentro de la ventana debe negarse")
}

func TestTryAcquire_ClavesDistintasSonIndependientes(t *testing.T) {
	limiter, _ := newTestLimiter(t, time.Hour)
	ctx := context.Background()

	ok, err := limiter.TryAcquire(ctx, "pwdreset:a@x.com")
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = limiter.TryAcquire(ctx, "pwdreset:b@x.com")
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestTryAcquire_VentanaExpirada_AdquiereDeNuevo(t *testing.T) {
	limiter, srv := newTestLimiter(t, time.Hour)
	ctx := context.Background()

	ok, err := limiter.TryAcquire(ctx, "pwdreset:a@x.com")
	require.NoError(t, err)
	require.True(t, ok)

	srv.FastForward(time.Hour + time.Second)

	ok, err = limiter.TryAcquire(ctx, "pwdreset:a@x.com")
	require.NoError(t, err)
	assert.True(t, ok, "expirada la ventana el cupo vuelve a estar libre")
}

// Un intento negado no reinicia la ventana: el TTL corre desde la primera
// adquisición, no desde el último intento.
func TestTryAcquire_IntentoNegadoNoRefrescaTTL(t *testing.T) {
	limiter, srv := newTestLimiter(t, time.Hour)
	ctx := context.Background()

	ok, err := limiter.TryAcquire(ctx, "pwdreset:a@x.com")
	require.NoError(t, err)
	require.True(t, ok)

	srv.FastForward(30 * time.Minute)
	ok, err = limiter.TryAcquire(ctx, "pwdreset:a@x.com")
	require.NoError(t, err)
	require.False(t, ok)

	// 31 minutos después (61 en total) la clave original ya expiró.
	srv.FastForward(31 * time.Minute)
	ok, err = limiter.TryAcquire(ctx, "pwdreset:a@x.com")
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestRelease_LiberaElCupoAntesDeExpirar(t *testing.T) {
	limiter, _ := newTestLimiter(t, time.Hour)
	ctx := context.Background()

	ok, err := limiter.TryAcquire(ctx, "pwdreset:a@x.com")
	require.NoError(t, err)
	require.True(t, ok)

	require.NoError(t, limiter.Release(ctx, "pwdreset:a@x.com"))

	ok, err = limiter.TryAcquire(ctx, "pwdreset:a@x.com")
	require.NoError(t, err)
	assert.True(t, ok, "tras liberar, la clave vuelve a adquirirse de inmediato")
}
