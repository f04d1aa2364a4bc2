package entity

import "time"

// Roles válidos para User.
const (
	RoleManager  = "MANAGER"
	RoleAdmin    = "ADMIN"
	RoleEmployee = "EMPLOYEE"
)

// Estados de cuenta.
const (
	StatusActive   = "ACTIVE"
	StatusBlocked  = "BLOCKED"
	StatusInactive = "INACTIVE"
)

// User representa una cuenta del sistema. El email es único de forma
// case-insensitive. IsActive es un flag de deshabilitación independiente
// de Status.
type User struct {
	ID           string
	Email        string
	PasswordHash string // bcrypt hash, nunca plano en dominio después de persistir
	FirstName    string
	LastName     string
	Telefono     string
	Role         string // MANAGER, ADMIN, EMPLOYEE
	Status       string // ACTIVE, BLOCKED, INACTIVE
	IsActive     bool
	LastLoginAt  *time.Time
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// CanAuthenticate indica si el estado de la cuenta permite iniciar sesión.
// Solo ACTIVE con IsActive=true autentica; cualquier otra combinación rechaza.
func (u *User) CanAuthenticate() bool {
	return u.Status == StatusActive && u.IsActive
}

// ValidRole indica si r es uno de los roles conocidos.
func ValidRole(r string) bool {
	switch r {
	case RoleManager, RoleAdmin, RoleEmployee:
		return true
	}
	return false
}

// ValidStatus indica si s es uno de los estados conocidos.
func ValidStatus(s string) bool {
	switch s {
	case StatusActive, StatusBlocked, StatusInactive:
		return true
	}
	return false
}
