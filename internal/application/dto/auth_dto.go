package dto

// RegisterRequest entrada del registro público. PasswordConfirm es opcional:
// si viene, debe coincidir con Password.
type RegisterRequest struct {
	Email           string `json:"email"`
	Password        string `json:"password"`
	PasswordConfirm string `json:"password_confirm"`
	FirstName       string `json:"first_name"`
	LastName        string `json:"last_name"`
	Telefono        string `json:"telefono"`
	Role            string `json:"role"` // vacío = EMPLOYEE
}

// RegisterResponse salida del registro.
type RegisterResponse struct {
	Message string       `json:"message"`
	User    UserResponse `json:"user"`
}

// LoginRequest entrada del login.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginResponse salida con el par de tokens de sesión.
type LoginResponse struct {
	AccessToken  string       `json:"access_token"`
	RefreshToken string       `json:"refresh_token"`
	User         UserResponse `json:"user"`
}

// RefreshRequest entrada del refresco de access token.
type RefreshRequest struct {
	RefreshToken string `json:"refresh_token"`
}

// RefreshResponse salida con el nuevo access token.
type RefreshResponse struct {
	AccessToken string `json:"access_token"`
}

// ResetRequest entrada de la solicitud de reseteo de contraseña.
type ResetRequest struct {
	Email string `json:"email"`
}

// ResetAck confirmación de la solicitud de reseteo. Debug solo se llena fuera
// de producción (eco de uid/token para pruebas manuales); nunca en producción.
type ResetAck struct {
	Message string          `json:"message"`
	Debug   *ResetDebugInfo `json:"debug,omitempty"`
}

// ResetDebugInfo eco de uid/token para entornos de desarrollo.
type ResetDebugInfo struct {
	UID   string `json:"uid"`
	Token string `json:"token"`
}

// ResetConfirmRequest entrada de la confirmación de reseteo.
type ResetConfirmRequest struct {
	UID                string `json:"uid"`
	Token              string `json:"token"`
	NewPassword        string `json:"new_password"`
	NewPasswordConfirm string `json:"new_password_confirm"`
}
