package auth

import (
	"context"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"github.com/tu-usuario/auth-api/internal/application/dto"
	"github.com/tu-usuario/auth-api/internal/domain"
	"github.com/tu-usuario/auth-api/pkg/resettoken"
)

// rateLimitPrefix antecede al email (en minúsculas) para formar la clave del
// limitador de solicitudes de reseteo.
const rateLimitPrefix = "pwdreset:"

// RequestReset implementa el primer paso del reseteo de contraseña:
//
//  1. Resuelve el usuario por email; desconocido → ErrEmailNotFound (aquí sí
//     se acepta revelar existencia, a diferencia del login).
//  2. Adquiere el cupo del limitador; denegado → ErrTooManyRequests.
//  3. Emite el token firmado sobre el hash vigente y compone el enlace.
//  4. Envía el correo. Un fallo de transporte es fatal (ErrDeliveryFailed) y
//     libera el cupo: no debe quedar un token emitido que el usuario nunca vio
//     bloqueando la ventana de una hora.
func (uc *AuthUseCase) RequestReset(ctx context.Context, in dto.ResetRequest) (*dto.ResetAck, error) {
	if in.Email == "" {
		return nil, domain.NewValidationError("email", "email es requerido")
	}

	user, err := uc.users.GetByEmail(in.Email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrEmailNotFound
	}

	key := rateLimitPrefix + strings.ToLower(in.Email)
	acquired, err := uc.limiter.TryAcquire(ctx, key)
	if err != nil {
		return nil, err
	}
	if !acquired {
		return nil, domain.ErrTooManyRequests
	}

	uid := resettoken.EncodeUID(user.ID)
	token := uc.resetTokens.Generate(user.ID, user.PasswordHash)
	link := uc.composeResetLink(uid, token)

	if err := uc.mailer.SendPasswordReset(user.Email, link); err != nil {
		_ = uc.limiter.Release(ctx, key)
		return nil, domain.ErrDeliveryFailed
	}

	ack := &dto.ResetAck{Message: "correo de restablecimiento enviado"}
	if uc.resetCfg.DebugEcho {
		ack.Debug = &dto.ResetDebugInfo{UID: uid, Token: token}
	}
	return ack, nil
}

// ConfirmReset implementa el segundo paso:
//
//  1. Contraseñas distintas → ErrPasswordMismatch, sin tocar el verificador.
//  2. Política de contraseña → ErrWeakPassword.
//  3. Decodifica uid, carga el usuario y verifica el token contra el hash
//     vigente; cualquier fallo → ErrInvalidResetToken.
//  4. Persiste el nuevo hash. Esa mutación es lo que invalida el token para
//     un segundo uso.
func (uc *AuthUseCase) ConfirmReset(ctx context.Context, in dto.ResetConfirmRequest) error {
	if in.NewPassword != in.NewPasswordConfirm {
		return domain.ErrPasswordMismatch
	}
	if !CheckPasswordStrength(in.NewPassword) {
		return domain.ErrWeakPassword
	}

	userID, err := resettoken.DecodeUID(in.UID)
	if err != nil {
		return domain.ErrInvalidResetToken
	}
	user, err := uc.users.GetByID(userID)
	if err != nil {
		return err
	}
	if user == nil {
		return domain.ErrInvalidResetToken
	}
	if !uc.resetTokens.Check(user.ID, user.PasswordHash, in.Token) {
		return domain.ErrInvalidResetToken
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.NewPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	return uc.users.UpdatePassword(user.ID, string(hash))
}

// composeResetLink arma el enlace {frontend}?uid=..&token=.. con fallback a la
// ruta de confirmación del backend si no hay front-end configurado.
func (uc *AuthUseCase) composeResetLink(uid, token string) string {
	base := uc.resetCfg.FrontendURL
	if base == "" {
		base = strings.TrimRight(uc.resetCfg.PublicBaseURL, "/") + "/api/auth/password/reset/confirm"
	}
	sep := "?"
	if strings.Contains(base, "?") {
		sep = "&"
	}
	return base + sep + "uid=" + uid + "&token=" + token
}
