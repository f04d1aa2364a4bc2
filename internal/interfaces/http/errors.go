package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/tu-usuario/auth-api/internal/application/dto"
	"github.com/tu-usuario/auth-api/internal/domain"
)

// errorResponse mapea los errores de dominio al contrato HTTP. La distinción
// 401 (credenciales) / 403 (estado de cuenta) es deliberada y los clientes
// dependen de ella.
func errorResponse(c *fiber.Ctx, err error) error {
	var verr *domain.ValidationError
	if errors.As(err, &verr) {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Code: "VALIDATION", Message: "validación fallida", Fields: verr.Fields,
		})
	}

	switch {
	case errors.Is(err, domain.ErrInvalidCredentials):
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Code: "UNAUTHORIZED", Message: "credenciales inválidas"})
	case errors.Is(err, domain.ErrAccountNotAuthorized):
		return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{
			Code: "FORBIDDEN", Message: "usuario no autorizado, verifica tu estado"})
	case errors.Is(err, domain.ErrEmailNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
			Code: "EMAIL_NOT_FOUND", Message: "correo no registrado"})
	case errors.Is(err, domain.ErrTooManyRequests):
		return c.Status(fiber.StatusTooManyRequests).JSON(dto.ErrorResponse{
			Code: "TOO_MANY_REQUESTS", Message: "ya se solicitó un restablecimiento, intente más tarde"})
	case errors.Is(err, domain.ErrInvalidResetToken):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Code: "INVALID_TOKEN", Message: "token inválido o expirado"})
	case errors.Is(err, domain.ErrPasswordMismatch):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Code: "VALIDATION", Message: "validación fallida",
			Fields: map[string]string{"new_password_confirm": "las contraseñas no coinciden"}})
	case errors.Is(err, domain.ErrWeakPassword):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Code: "VALIDATION", Message: "validación fallida",
			Fields: map[string]string{"new_password": "la contraseña debe tener mínimo 8 caracteres e incluir letras y números"}})
	case errors.Is(err, domain.ErrDeliveryFailed):
		return c.Status(fiber.StatusBadGateway).JSON(dto.ErrorResponse{
			Code: "DELIVERY_FAILED", Message: "no se pudo enviar el correo, intente más tarde"})
	case errors.Is(err, domain.ErrEmailAlreadyExists):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{
			Code: "EMAIL_EXISTS", Message: "el correo ya está registrado"})
	case errors.Is(err, domain.ErrUserNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
			Code: "NOT_FOUND", Message: "usuario no encontrado"})
	case errors.Is(err, domain.ErrInvalidInput):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Code: "VALIDATION", Message: err.Error()})
	}

	return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
		Code: "INTERNAL", Message: "error interno"})
}
