package repository

import (
	"time"

	"github.com/tu-usuario/auth-api/internal/domain/entity"
)

// UserRepository define el puerto de persistencia para User (DIP).
// Las búsquedas por email son case-insensitive. Los métodos que no encuentran
// el registro devuelven (nil, nil); los errores son solo de infraestructura.
type UserRepository interface {
	Create(user *entity.User) error
	GetByID(id string) (*entity.User, error)
	GetByEmail(email string) (*entity.User, error)
	Update(user *entity.User) error
	// UpdatePassword reemplaza solo el hash de contraseña. Es la mutación que
	// invalida los tokens de reseteo emitidos sobre el hash anterior.
	UpdatePassword(id, passwordHash string) error
	UpdateLastLogin(id string, at time.Time) error
	SetStatus(id, status string) error
	SetActive(id string, active bool) error
	List(limit, offset int) ([]*entity.User, error)
	Delete(id string) error
}
