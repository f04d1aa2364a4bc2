package usecase_test

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/auth-api/internal/application/dto"
	"github.com/tu-usuario/auth-api/internal/application/usecase"
	"github.com/tu-usuario/auth-api/internal/domain"
	"github.com/tu-usuario/auth-api/internal/domain/entity"
)

// memRepo es un repositorio de usuarios en memoria para los tests del use case.
type memRepo struct {
	users map[string]*entity.User
}

func newMemRepo() *memRepo { return &memRepo{users: map[string]*entity.User{}} }

func (r *memRepo) Create(u *entity.User) error {
	for _, existing := range r.users {
		if strings.EqualFold(existing.Email, u.Email) {
			return domain.ErrEmailAlreadyExists
		}
	}
	cp := *u
	r.users[u.ID] = &cp
	return nil
}

func (r *memRepo) GetByID(id string) (*entity.User, error) {
	if u, ok := r.users[id]; ok {
		cp := *u
		return &cp, nil
	}
	return nil, nil
}

func (r *memRepo) GetByEmail(email string) (*entity.User, error) {
	for _, u := range r.users {
		if strings.EqualFold(u.Email, email) {
			cp := *u
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *memRepo) Update(u *entity.User) error {
	if _, ok := r.users[u.ID]; !ok {
		return domain.ErrUserNotFound
	}
	cp := *u
	r.users[u.ID] = &cp
	return nil
}

func (r *memRepo) UpdatePassword(id, hash string) error {
	u, ok := r.users[id]
	if !ok {
		return domain.ErrUserNotFound
	}
	u.PasswordHash = hash
	return nil
}

func (r *memRepo) UpdateLastLogin(id string, at time.Time) error {
	if u, ok := r.users[id]; ok {
		u.LastLoginAt = &at
	}
	return nil
}

func (r *memRepo) SetStatus(id, status string) error {
	u, ok := r.users[id]
	if !ok {
		return domain.ErrUserNotFound
	}
	u.Status = status
	return nil
}

func (r *memRepo) SetActive(id string, active bool) error {
	u, ok := r.users[id]
	if !ok {
		return domain.ErrUserNotFound
	}
	u.IsActive = active
	return nil
}

func (r *memRepo) List(limit, offset int) ([]*entity.User, error) {
	var out []*entity.User
	for _, u := range r.users {
		cp := *u
		out = append(out, &cp)
	}
	return out, nil
}

func (r *memRepo) Delete(id string) error {
	if _, ok := r.users[id]; !ok {
		return domain.ErrUserNotFound
	}
	delete(r.users, id)
	return nil
}

func newUC() (*usecase.UserUseCase, *memRepo) {
	repo := newMemRepo()
	return usecase.NewUserUseCase(repo), repo
}

func crearUsuario(t *testing.T, uc *usecase.UserUseCase, email string) *dto.UserResponse {
	t.Helper()
	user, err := uc.Create(dto.CreateUserRequest{Email: email, Password: "abc12345"})
	require.NoError(t, err)
	return user
}

func TestCreate_ValoresPorDefecto(t *testing.T) {
	uc, _ := newUC()

	user := crearUsuario(t, uc, "a@x.com")
	assert.Equal(t, entity.RoleEmployee, user.Role)
	assert.Equal(t, entity.StatusActive, user.Status)
	assert.True(t, user.IsActive)
}

func TestCreate_RolYEstadoExplicitos(t *testing.T) {
	uc, _ := newUC()

	user, err := uc.Create(dto.CreateUserRequest{
		Email: "m@x.com", Password: "abc12345",
		Role: entity.RoleManager, Status: entity.StatusInactive,
	})
	require.NoError(t, err)
	assert.Equal(t, entity.RoleManager, user.Role)
	assert.Equal(t, entity.StatusInactive, user.Status)
}

func TestCreate_ValidacionAgregada(t *testing.T) {
	uc, _ := newUC()

	_, err := uc.Create(dto.CreateUserRequest{
		Email: "", Password: "corta1", Role: "SUPERUSER", Status: "PAUSED",
	})
	var verr *domain.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Contains(t, verr.Fields, "email")
	assert.Contains(t, verr.Fields, "password")
	assert.Contains(t, verr.Fields, "role")
	assert.Contains(t, verr.Fields, "status")
}

func TestCreate_EmailDuplicado(t *testing.T) {
	uc, _ := newUC()
	crearUsuario(t, uc, "a@x.com")

	_, err := uc.Create(dto.CreateUserRequest{Email: "A@X.com", Password: "abc12345"})
	assert.ErrorIs(t, err, domain.ErrEmailAlreadyExists)
}

func TestGetByID_NoExiste(t *testing.T) {
	uc, _ := newUC()

	_, err := uc.GetByID("00000000-0000-0000-0000-000000000099")
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}

// Los campos vacíos del body no pisan los valores existentes.
func TestUpdate_ParcialConservaCampos(t *testing.T) {
	uc, _ := newUC()
	user, err := uc.Create(dto.CreateUserRequest{
		Email: "a@x.com", Password: "abc12345",
		FirstName: "Ana", LastName: "García", Telefono: "555-0001",
	})
	require.NoError(t, err)

	updated, err := uc.Update(user.ID, dto.UpdateUserRequest{FirstName: "Anabel"})
	require.NoError(t, err)
	assert.Equal(t, "Anabel", updated.FirstName)
	assert.Equal(t, "García", updated.LastName)
	assert.Equal(t, "555-0001", updated.Telefono)
	assert.Equal(t, "a@x.com", updated.Email)
}

func TestUpdate_RolInvalido(t *testing.T) {
	uc, _ := newUC()
	user := crearUsuario(t, uc, "a@x.com")

	_, err := uc.Update(user.ID, dto.UpdateUserRequest{Role: "SUPERUSER"})
	var verr *domain.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Contains(t, verr.Fields, "role")
}

func TestUpdate_IsActiveSoloCambiaSiViene(t *testing.T) {
	uc, _ := newUC()
	user := crearUsuario(t, uc, "a@x.com")

	// Sin IsActive en el body: se conserva.
	updated, err := uc.Update(user.ID, dto.UpdateUserRequest{FirstName: "Ana"})
	require.NoError(t, err)
	assert.True(t, updated.IsActive)

	inactivo := false
	updated, err = uc.Update(user.ID, dto.UpdateUserRequest{IsActive: &inactivo})
	require.NoError(t, err)
	assert.False(t, updated.IsActive)
}

func TestBlock_CambiaStatus(t *testing.T) {
	uc, _ := newUC()
	user := crearUsuario(t, uc, "a@x.com")

	blocked, err := uc.Block(user.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.StatusBlocked, blocked.Status)
}

func TestSetAccess_Toggle(t *testing.T) {
	uc, _ := newUC()
	user := crearUsuario(t, uc, "a@x.com")

	out, err := uc.SetAccess(user.ID, false)
	require.NoError(t, err)
	assert.False(t, out.IsActive)

	out, err = uc.SetAccess(user.ID, true)
	require.NoError(t, err)
	assert.True(t, out.IsActive)
}

func TestDelete_NoExiste(t *testing.T) {
	uc, _ := newUC()

	err := uc.Delete("00000000-0000-0000-0000-000000000099")
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}

func TestList_PaginacionPorDefecto(t *testing.T) {
	uc, _ := newUC()
	crearUsuario(t, uc, "a@x.com")
	crearUsuario(t, uc, "b@x.com")

	out, err := uc.List(dto.PageRequest{})
	require.NoError(t, err)
	assert.Equal(t, 20, out.Limit, "el límite por defecto es 20")
	assert.Equal(t, 0, out.Offset)
	assert.Len(t, out.Users, 2)
}
