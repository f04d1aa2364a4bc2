package usecase

import (
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/tu-usuario/auth-api/internal/application/auth"
	"github.com/tu-usuario/auth-api/internal/application/dto"
	"github.com/tu-usuario/auth-api/internal/domain"
	"github.com/tu-usuario/auth-api/internal/domain/entity"
	"github.com/tu-usuario/auth-api/internal/domain/repository"
)

// UserUseCase gestión administrativa de usuarios: alta, detalle, edición,
// baja, bloqueo y toggle de acceso. Todas las operaciones se exponen solo a
// administradores (lo impone el router).
type UserUseCase struct {
	repo repository.UserRepository
}

// NewUserUseCase construye el caso de uso con el puerto de persistencia.
func NewUserUseCase(repo repository.UserRepository) *UserUseCase {
	return &UserUseCase{repo: repo}
}

// Create da de alta un usuario con rol y estado explícitos.
func (uc *UserUseCase) Create(in dto.CreateUserRequest) (*dto.UserResponse, error) {
	if verr := validateCreate(in); verr != nil {
		return nil, verr
	}

	existing, err := uc.repo.GetByEmail(in.Email)
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
	status := in.Status
	if status == "" {
		status = entity.StatusActive
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
		Status:       status,
		IsActive:     true,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := uc.repo.Create(user); err != nil {
		return nil, err
	}
	return auth.ToUserResponse(user), nil
}

func validateCreate(in dto.CreateUserRequest) *domain.ValidationError {
	verr := &domain.ValidationError{Fields: map[string]string{}}
	if in.Email == "" {
		verr.Add("email", "email es requerido")
	}
	if !auth.CheckPasswordStrength(in.Password) {
		verr.Add("password", auth.PasswordPolicyMessage)
	}
	if in.Role != "" && !entity.ValidRole(in.Role) {
		verr.Add("role", "rol inválido")
	}
	if in.Status != "" && !entity.ValidStatus(in.Status) {
		verr.Add("status", "estado inválido")
	}
	if len(verr.Fields) > 0 {
		return verr
	}
	return nil
}

// GetByID obtiene un usuario por ID.
func (uc *UserUseCase) GetByID(id string) (*dto.UserResponse, error) {
	user, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}
	return auth.ToUserResponse(user), nil
}

// Update edita perfil, rol y estado de un usuario. Los campos vacíos se
// conservan; IsActive solo cambia si viene en el body.
func (uc *UserUseCase) Update(id string, in dto.UpdateUserRequest) (*dto.UserResponse, error) {
	user, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}

	if in.Email != "" {
		user.Email = in.Email
	}
	if in.FirstName != "" {
		user.FirstName = in.FirstName
	}
	if in.LastName != "" {
		user.LastName = in.LastName
	}
	if in.Telefono != "" {
		user.Telefono = in.Telefono
	}
	if in.Role != "" {
		if !entity.ValidRole(in.Role) {
			return nil, domain.NewValidationError("role", "rol inválido")
		}
		user.Role = in.Role
	}
	if in.Status != "" {
		if !entity.ValidStatus(in.Status) {
			return nil, domain.NewValidationError("status", "estado inválido")
		}
		user.Status = in.Status
	}
	if in.IsActive != nil {
		user.IsActive = *in.IsActive
	}
	user.UpdatedAt = time.Now()

	if err := uc.repo.Update(user); err != nil {
		return nil, err
	}
	return auth.ToUserResponse(user), nil
}

// Delete elimina un usuario.
func (uc *UserUseCase) Delete(id string) error {
	return uc.repo.Delete(id)
}

// Block marca la cuenta como BLOCKED; el login pasa a responder 403.
func (uc *UserUseCase) Block(id string) (*dto.UserResponse, error) {
	if err := uc.repo.SetStatus(id, entity.StatusBlocked); err != nil {
		return nil, err
	}
	return uc.GetByID(id)
}

// SetAccess habilita o deshabilita la cuenta (flag is_active, independiente
// del status).
func (uc *UserUseCase) SetAccess(id string, active bool) (*dto.UserResponse, error) {
	if err := uc.repo.SetActive(id, active); err != nil {
		return nil, err
	}
	return uc.GetByID(id)
}

// List lista usuarios con paginación.
func (uc *UserUseCase) List(page dto.PageRequest) (*dto.UserListResponse, error) {
	page.DefaultPage()
	users, err := uc.repo.List(page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	out := &dto.UserListResponse{Users: make([]dto.UserResponse, 0, len(users)), Limit: page.Limit, Offset: page.Offset}
	for _, u := range users {
		out.Users = append(out.Users, *auth.ToUserResponse(u))
	}
	return out, nil
}
