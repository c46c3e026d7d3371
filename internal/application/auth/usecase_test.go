package auth_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/vendor-earnings-api/internal/application/auth"
	"github.com/jhoicas/vendor-earnings-api/internal/application/dto"
	"github.com/jhoicas/vendor-earnings-api/internal/domain"
	"github.com/jhoicas/vendor-earnings-api/internal/domain/entity"
	pkgjwt "github.com/jhoicas/vendor-earnings-api/pkg/jwt"
)

const secret = "test-secret"

type memUsers struct {
	byEmail map[string]*entity.User
}

func (m *memUsers) Create(_ context.Context, u *entity.User) error {
	m.byEmail[u.Email] = u
	return nil
}

func (m *memUsers) GetByID(_ context.Context, id string) (*entity.User, error) {
	for _, u := range m.byEmail {
		if u.ID == id {
			return u, nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (m *memUsers) GetByEmail(_ context.Context, email string) (*entity.User, error) {
	u, ok := m.byEmail[email]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	return u, nil
}

type memVendors struct{}

func (memVendors) GetByID(_ context.Context, id string) (*entity.Vendor, error) {
	if id != "v-1" {
		return nil, domain.ErrNotFound
	}
	return &entity.Vendor{ID: "v-1", Name: "Spice Hub"}, nil
}

func newAuth() *auth.AuthUseCase {
	return auth.NewAuthUseCase(&memUsers{byEmail: map[string]*entity.User{}}, memVendors{},
		auth.JWTConfig{Secret: secret, ExpMinutes: 10, Issuer: "test"})
}

func TestRegisterYLogin(t *testing.T) {
	uc := newAuth()
	ctx := context.Background()

	u, err := uc.RegisterUser(ctx, dto.RegisterRequest{Email: "Owner@SpiceHub.in", Password: "supersecret", VendorID: "v-1"})
	require.NoError(t, err)
	assert.Equal(t, "owner@spicehub.in", u.Email)
	assert.Equal(t, entity.RoleVendor, u.Role)

	res, err := uc.Login(ctx, dto.LoginRequest{Email: "owner@spicehub.in", Password: "supersecret"})
	require.NoError(t, err)

	claims, err := pkgjwt.Parse(secret, res.Token)
	require.NoError(t, err)
	assert.Equal(t, "v-1", claims.VendorID)
	assert.Equal(t, u.ID, claims.UserID)
}

func TestRegister_EmailDuplicado(t *testing.T) {
	uc := newAuth()
	ctx := context.Background()
	in := dto.RegisterRequest{Email: "a@b.in", Password: "supersecret", VendorID: "v-1"}
	_, err := uc.RegisterUser(ctx, in)
	require.NoError(t, err)
	_, err = uc.RegisterUser(ctx, in)
	assert.ErrorIs(t, err, domain.ErrEmailAlreadyExists)
}

func TestRegister_VendedorInexistente(t *testing.T) {
	_, err := newAuth().RegisterUser(context.Background(), dto.RegisterRequest{Email: "a@b.in", Password: "supersecret", VendorID: "nope"})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestLogin_CredencialesInvalidas(t *testing.T) {
	uc := newAuth()
	ctx := context.Background()
	_, err := uc.RegisterUser(ctx, dto.RegisterRequest{Email: "a@b.in", Password: "supersecret", VendorID: "v-1"})
	require.NoError(t, err)

	_, err = uc.Login(ctx, dto.LoginRequest{Email: "a@b.in", Password: "otra"})
	assert.ErrorIs(t, err, domain.ErrUnauthorized)

	_, err = uc.Login(ctx, dto.LoginRequest{Email: "nadie@b.in", Password: "supersecret"})
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}
