package domain

import "errors"

// Errores de dominio (sin dependencias externas).
//
// ErrInvalidCredentials cubre tanto email desconocido como contraseña
// incorrecta: la distinción no debe filtrarse al cliente (401). En cambio
// ErrAccountNotAuthorized indica credenciales correctas con cuenta no
// autorizada por estado (403); el contraste 401/403 es parte del contrato.
var (
	ErrInvalidCredentials   = errors.New("credenciales inválidas")
	ErrAccountNotAuthorized = errors.New("usuario no autorizado por su estado")
	ErrEmailNotFound        = errors.New("correo no registrado")
	ErrTooManyRequests      = errors.New("demasiadas solicitudes, intente más tarde")
	ErrInvalidResetToken    = errors.New("token inválido o expirado")
	ErrPasswordMismatch     = errors.New("las contraseñas no coinciden")
	ErrWeakPassword         = errors.New("la contraseña no cumple la política")
	ErrDeliveryFailed       = errors.New("no se pudo enviar el correo")
	ErrEmailAlreadyExists   = errors.New("el correo ya está registrado")
	ErrUserNotFound         = errors.New("usuario no encontrado")
	ErrInvalidInput         = errors.New("entrada inválida")
)

// ValidationError agrega mensajes por campo para operaciones con varias
// entradas validadas de forma independiente (registro, confirmación de
// reseteo). Reemplazo tipado de los diccionarios ad hoc del cliente anterior.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	return "validación fallida"
}

// NewValidationError construye un ValidationError con un campo inicial.
func NewValidationError(field, msg string) *ValidationError {
	return &ValidationError{Fields: map[string]string{field: msg}}
}

// Add agrega un mensaje de campo (conserva el primero si se repite el campo).
func (e *ValidationError) Add(field, msg string) *ValidationError {
	if _, ok := e.Fields[field]; !ok {
		e.Fields[field] = msg
	}
	return e
}
