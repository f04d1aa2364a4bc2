package auth

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/tu-usuario/auth-api/internal/application/dto"
	"github.com/tu-usuario/auth-api/internal/domain"
	"github.com/tu-usuario/auth-api/internal/domain/entity"
	"github.com/tu-usuario/auth-api/internal/domain/repository"
	"github.com/tu-usuario/auth-api/pkg/jwt"
	"github.com/tu-usuario/auth-api/pkg/resettoken"
)

// JWTConfig configuración para la emisión de tokens de sesión.
type JWTConfig struct {
	Secret        string
	AccessMinutes int
	RefreshDays   int
	Issuer        string
}

// ResetConfig configuración del flujo de reseteo que necesita el use case.
type ResetConfig struct {
	FrontendURL   string // base del enlace; vacío = fallback al backend
	PublicBaseURL string
	DebugEcho     bool // eco de uid/token en la respuesta; solo development
}

// AuthUseCase casos de uso de autenticación: registro, login, refresh, me y
// reseteo de contraseña.
type AuthUseCase struct {
	users       repository.UserRepository
	limiter     RateLimiter
	mailer      MailSender
	resetTokens *resettoken.Generator
	jwtCfg      JWTConfig
	resetCfg    ResetConfig
}

// NewAuthUseCase construye el caso de uso de auth.
func NewAuthUseCase(
	users repository.UserRepository,
	limiter RateLimiter,
	mailer MailSender,
	resetTokens *resettoken.Generator,
	jwtCfg JWTConfig,
	resetCfg ResetConfig,
) *AuthUseCase {
	return &AuthUseCase{
		users:       users,
		limiter:     limiter,
		mailer:      mailer,
		resetTokens: resetTokens,
		jwtCfg:      jwtCfg,
		resetCfg:    resetCfg,
	}
}

// Register crea un usuario: valida entradas campo a campo, hashea password
// con bcrypt y persiste. Rol vacío queda EMPLOYEE y estado ACTIVE. Devuelve
// domain.ErrEmailAlreadyExists si el email ya existe (case-insensitive).
func (uc *AuthUseCase) Register(in dto.RegisterRequest) (*dto.UserResponse, error) {
	if verr := validateRegister(in); verr != nil {
		return nil, verr
	}

	existing, err := uc.users.GetByEmail(in.Email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrEmailAlreadyExists
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	role := in.Role
	if role == "" {
		role = entity.RoleEmployee
	}
	now := time.Now()
	user := &entity.User{
		ID:           uuid.New().String(),
		Email:        in.Email,
		PasswordHash: string(hash),
		FirstName:    in.FirstName,
		LastName:     in.LastName,
		Telefono:     in.Telefono,
		Role:         role,
		Status:       entity.StatusActive,
		IsActive:     true,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := uc.users.Create(user); err != nil {
		return nil, err
	}
	return ToUserResponse(user), nil
}

func validateRegister(in dto.RegisterRequest) *domain.ValidationError {
	verr := &domain.ValidationError{Fields: map[string]string{}}
	if in.Email == "" || !strings.Contains(in.Email, "@") {
		verr.Add("email", "email inválido")
	}
	if !CheckPasswordStrength(in.Password) {
		verr.Add("password", PasswordPolicyMessage)
	}
	if in.PasswordConfirm != "" && in.PasswordConfirm != in.Password {
		verr.Add("password_confirm", "las contraseñas no coinciden")
	}
	if in.Role != "" && !entity.ValidRole(in.Role) {
		verr.Add("role", "rol inválido")
	}
	if len(verr.Fields) > 0 {
		return verr
	}
	return nil
}

// Authenticate evalúa la máquina de estados de autenticación:
//
//  1. Email (case-insensitive) + contraseña. Cualquier fallo — email
//     desconocido o contraseña incorrecta — devuelve ErrInvalidCredentials,
//     indistinguibles a propósito.
//  2. Credenciales correctas pero estado no autenticable (status != ACTIVE o
//     is_active = false) devuelve ErrAccountNotAuthorized, distinto del paso 1.
func (uc *AuthUseCase) Authenticate(email, password string) (*entity.User, error) {
	user, err := uc.users.GetByEmail(email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		// Comparación dummy para no delatar por timing qué parte falló.
		_ = bcrypt.CompareHashAndPassword([]byte("$2a$10$N9qo8uLOickgx2ZMRZoMye"), []byte(password))
		return nil, domain.ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, domain.ErrInvalidCredentials
	}
	if !user.CanAuthenticate() {
		return nil, domain.ErrAccountNotAuthorized
	}
	return user, nil
}

// Login autentica y emite el par access/refresh. Registra last_login como en
// el sistema anterior; un fallo en ese bookkeeping no aborta el login.
func (uc *AuthUseCase) Login(in dto.LoginRequest) (*dto.LoginResponse, error) {
	user, err := uc.Authenticate(in.Email, in.Password)
	if err != nil {
		return nil, err
	}

	pair, err := jwt.GeneratePair(uc.jwtCfg.Secret, user.ID, user.Role, uc.jwtCfg.Issuer,
		uc.jwtCfg.AccessMinutes, uc.jwtCfg.RefreshDays)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	_ = uc.users.UpdateLastLogin(user.ID, now)
	user.LastLoginAt = &now

	return &dto.LoginResponse{
		AccessToken:  pair.AccessToken,
		RefreshToken: pair.RefreshToken,
		User:         *ToUserResponse(user),
	}, nil
}

// Refresh verifica el refresh token y acuña un nuevo access token. El rol se
// relee de la DB y el estado de la cuenta se reevalúa: un usuario bloqueado
// después del login no puede seguir refrescando.
func (uc *AuthUseCase) Refresh(in dto.RefreshRequest) (*dto.RefreshResponse, error) {
	userID, err := jwt.ParseRefresh(uc.jwtCfg.Secret, in.RefreshToken)
	if err != nil {
		return nil, domain.ErrInvalidCredentials
	}
	user, err := uc.users.GetByID(userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrInvalidCredentials
	}
	if !user.CanAuthenticate() {
		return nil, domain.ErrAccountNotAuthorized
	}
	access, err := jwt.GenerateAccess(uc.jwtCfg.Secret, user.ID, user.Role, uc.jwtCfg.Issuer,
		uc.jwtCfg.AccessMinutes)
	if err != nil {
		return nil, err
	}
	return &dto.RefreshResponse{AccessToken: access}, nil
}

// Me devuelve el usuario autenticado.
func (uc *AuthUseCase) Me(userID string) (*dto.UserResponse, error) {
	user, err := uc.users.GetByID(userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}
	return ToUserResponse(user), nil
}

// ToUserResponse mapea la entidad a su representación pública.
func ToUserResponse(u *entity.User) *dto.UserResponse {
	if u == nil {
		return nil
	}
	return &dto.UserResponse{
		ID:          u.ID,
		Email:       u.Email,
		FirstName:   u.FirstName,
		LastName:    u.LastName,
		Telefono:    u.Telefono,
		Role:        u.Role,
		Status:      u.Status,
		IsActive:    u.IsActive,
		LastLoginAt: u.LastLoginAt,
		CreatedAt:   u.CreatedAt,
		UpdatedAt:   u.UpdatedAt,
	}
}
