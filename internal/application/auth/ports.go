package auth

import "context"

// RateLimiter es el contrato mínimo del limitador de solicitudes de reseteo.
// TryAcquire debe ser atómico: dos llamadas concurrentes con la misma clave no
// pueden adquirir ambas. Lo implementa cache.RateLimiter sobre Redis; el uso
// de interfaz permite fakes en tests.
type RateLimiter interface {
	TryAcquire(ctx context.Context, key string) (bool, error)
	Release(ctx context.Context, key string) error
}

// MailSender es el contrato del transporte de correo. Un error se propaga como
// fallo fatal de la solicitud de reseteo; no hay reintentos internos.
type MailSender interface {
	SendPasswordReset(to, link string) error
}
