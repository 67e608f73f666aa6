package auth_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jcastano/moda-admin-api/internal/application/auth"
	"github.com/jcastano/moda-admin-api/internal/application/dto"
	"github.com/jcastano/moda-admin-api/internal/domain"
	"github.com/jcastano/moda-admin-api/internal/domain/entity"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

const testBrandID = "00000000-0000-0000-0000-00000000000a"

// fakeUserRepo implementa UserRepository en memoria; findErr fuerza un fallo
// de almacenamiento en FindByEmail.
type fakeUserRepo struct {
	byEmail map[string]*entity.User
	findErr error
	created []*entity.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{byEmail: make(map[string]*entity.User)}
}

func (f *fakeUserRepo) Create(_ context.Context, user *entity.User) error {
	f.byEmail[user.Email] = user
	f.created = append(f.created, user)
	return nil
}

func (f *fakeUserRepo) FindByEmail(_ context.Context, email string) (*entity.User, error) {
	if f.findErr != nil {
		return nil, f.findErr
	}
	return f.byEmail[email], nil
}

func (f *fakeUserRepo) GetByID(_ context.Context, id string) (*entity.User, error) {
	for _, u := range f.byEmail {
		if u.ID == id {
			return u, nil
		}
	}
	return nil, nil
}

// fakeBrandRepo implementa BrandRepository con un conjunto fijo de marcas.
type fakeBrandRepo struct {
	brands map[string]*entity.Brand
}

func (f *fakeBrandRepo) Create(_ context.Context, _ *entity.Brand) error { return nil }
func (f *fakeBrandRepo) Update(_ context.Context, _ *entity.Brand) error { return nil }
func (f *fakeBrandRepo) Delete(_ context.Context, _ string) error        { return nil }

func (f *fakeBrandRepo) GetByID(_ context.Context, id string) (*entity.Brand, error) {
	return f.brands[id], nil
}

func (f *fakeBrandRepo) List(_ context.Context, _, _ int) ([]*entity.Brand, error) {
	out := make([]*entity.Brand, 0, len(f.brands))
	for _, b := range f.brands {
		out = append(out, b)
	}
	return out, nil
}

func newAuthFixture() (*auth.AuthUseCase, *fakeUserRepo) {
	users := newFakeUserRepo()
	brands := &fakeBrandRepo{brands: map[string]*entity.Brand{
		testBrandID: {ID: testBrandID, Name: "Marca A", Status: "active"},
	}}
	uc := auth.NewAuthUseCase(users, brands, auth.JWTConfig{
		Secret:     "test-secret-key-for-unit-tests",
		ExpMinutes: 60,
		Issuer:     "moda-admin-test",
	})
	return uc, users
}

// ──────────────────────────────────────────────────────────────────────────────
// RegisterUser
// ──────────────────────────────────────────────────────────────────────────────

// Un fallo de almacenamiento durante la verificación de email NO debe tratarse
// como "email libre": el registro falla y no se crea ningún usuario.
func TestRegisterUser_FalloAlVerificarEmail_NoCreaUsuario(t *testing.T) {
	uc, users := newAuthFixture()
	users.findErr = domain.ErrStorageUnavailable

	out, err := uc.RegisterUser(context.Background(), dto.RegisterRequest{
		Email:    "a@b.com",
		Password: "supersecreta",
		Role:     entity.RoleBrandOwner,
		BrandID:  testBrandID,
	})

	assert.ErrorIs(t, err, domain.ErrStorageUnavailable)
	assert.Nil(t, out)
	assert.Empty(t, users.created, "con el almacenamiento caído no debe crearse ningún usuario")
}

func TestRegisterUser_EmailDuplicado_RetornaError(t *testing.T) {
	uc, users := newAuthFixture()
	users.byEmail["a@b.com"] = &entity.User{ID: "u1", Email: "a@b.com"}

	_, err := uc.RegisterUser(context.Background(), dto.RegisterRequest{
		Email:    "a@b.com",
		Password: "supersecreta",
		Role:     entity.RoleBrandOwner,
		BrandID:  testBrandID,
	})

	assert.ErrorIs(t, err, domain.ErrEmailAlreadyExists)
	assert.Empty(t, users.created)
}

func TestRegisterUser_BrandOwnerRequiereMarcaExistente(t *testing.T) {
	uc, users := newAuthFixture()

	_, err := uc.RegisterUser(context.Background(), dto.RegisterRequest{
		Email:    "a@b.com",
		Password: "supersecreta",
		Role:     entity.RoleBrandOwner,
		BrandID:  "no-existe",
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)

	_, err = uc.RegisterUser(context.Background(), dto.RegisterRequest{
		Email:    "a@b.com",
		Password: "supersecreta",
		Role:     entity.RoleBrandOwner,
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "brand_owner sin marca es inválido")
	assert.Empty(t, users.created)
}

func TestRegisterUser_AdminNoLlevaMarca(t *testing.T) {
	uc, users := newAuthFixture()

	out, err := uc.RegisterUser(context.Background(), dto.RegisterRequest{
		Email:    "admin@b.com",
		Password: "supersecreta",
		Role:     entity.RoleAdmin,
		BrandID:  testBrandID, // se descarta para admin
	})
	require.NoError(t, err)

	assert.Equal(t, entity.RoleAdmin, out.Role)
	assert.Empty(t, out.BrandID, "un admin no queda atado a ninguna marca")
	require.Len(t, users.created, 1)
	assert.NotEqual(t, "supersecreta", users.created[0].PasswordHash, "el password nunca se persiste en plano")
}

// ──────────────────────────────────────────────────────────────────────────────
// Login
// ──────────────────────────────────────────────────────────────────────────────

func TestLogin_CredencialesValidas_EmiteToken(t *testing.T) {
	uc, _ := newAuthFixture()

	_, err := uc.RegisterUser(context.Background(), dto.RegisterRequest{
		Email:    "a@b.com",
		Password: "supersecreta",
		Role:     entity.RoleBrandOwner,
		BrandID:  testBrandID,
	})
	require.NoError(t, err)

	out, err := uc.Login(context.Background(), dto.LoginRequest{Email: "a@b.com", Password: "supersecreta"})
	require.NoError(t, err)
	assert.NotEmpty(t, out.Token)
	assert.Equal(t, "a@b.com", out.User.Email)
}

func TestLogin_PasswordIncorrecto_RetornaUnauthorized(t *testing.T) {
	uc, _ := newAuthFixture()

	_, err := uc.RegisterUser(context.Background(), dto.RegisterRequest{
		Email:    "a@b.com",
		Password: "supersecreta",
		Role:     entity.RoleBrandOwner,
		BrandID:  testBrandID,
	})
	require.NoError(t, err)

	_, err = uc.Login(context.Background(), dto.LoginRequest{Email: "a@b.com", Password: "otra"})
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}
