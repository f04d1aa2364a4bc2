package dto

import "time"

// CreateUserRequest entrada del alta administrativa (password en texto, se hashea en use case).
type CreateUserRequest struct {
	Email     string `json:"email"`
	Password  string `json:"password"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Telefono  string `json:"telefono"`
	Role      string `json:"role"`   // MANAGER, ADMIN, EMPLOYEE; vacío = EMPLOYEE
	Status    string `json:"status"` // vacío = ACTIVE
}

// UpdateUserRequest entrada de la edición administrativa.
type UpdateUserRequest struct {
	Email     string `json:"email"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Telefono  string `json:"telefono"`
	Role      string `json:"role"`
	Status    string `json:"status"`
	IsActive  *bool  `json:"is_active"` // nil = sin cambio
}

// SetAccessRequest entrada del toggle de habilitación.
type SetAccessRequest struct {
	IsActive bool `json:"is_active"`
}

// UserResponse salida de un usuario (sin hash de contraseña).
type UserResponse struct {
	ID          string     `json:"id"`
	Email       string     `json:"email"`
	FirstName   string     `json:"first_name"`
	LastName    string     `json:"last_name"`
	Telefono    string     `json:"telefono"`
	Role        string     `json:"role"`
	Status      string     `json:"status"`
	IsActive    bool       `json:"is_active"`
	LastLoginAt *time.Time `json:"last_login_at,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

// UserListResponse listado paginado de usuarios.
type UserListResponse struct {
	Users  []UserResponse `json:"users"`
	Limit  int            `json:"limit"`
	Offset int            `json:"offset"`
}
