package auth_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/stock-ledger/internal/application/auth"
	"github.com/jhoicas/stock-ledger/internal/application/dto"
	"github.com/jhoicas/stock-ledger/internal/domain"
	"github.com/jhoicas/stock-ledger/internal/domain/entity"
	"github.com/jhoicas/stock-ledger/internal/infrastructure/memory"
	"github.com/jhoicas/stock-ledger/pkg/jwt"
	"github.com/jhoicas/stock-ledger/pkg/logger"
)

const secret = "test-secret"

func newAuth(t *testing.T) *auth.AuthUseCase {
	t.Helper()
	store := memory.NewStore()
	hash, err := auth.HashPassword("admin123")
	require.NoError(t, err)
	require.NoError(t, store.Users().Create(context.Background(), &entity.User{Username: "admin", PasswordHash: hash, Role: entity.RoleAdmin}))
	return auth.NewAuthUseCase(store.Users(), auth.JWTConfig{Secret: secret, ExpMinutes: 60, Issuer: "test"}, logger.Nop())
}

func TestLogin_OK(t *testing.T) {
	uc := newAuth(t)

	res, err := uc.Login(context.Background(), dto.LoginRequest{Username: " admin ", Password: "admin123"})
	require.NoError(t, err)
	assert.Equal(t, "admin", res.User.Username)
	assert.Equal(t, 3600, res.ExpiresIn)

	id, username, role, err := jwt.Parse(secret, res.Token)
	require.NoError(t, err)
	assert.Equal(t, res.User.ID, id)
	assert.Equal(t, "admin", username)
	assert.Equal(t, entity.RoleAdmin, role)
}

func TestLogin_CredencialesIncorrectas(t *testing.T) {
	uc := newAuth(t)

	_, err := uc.Login(context.Background(), dto.LoginRequest{Username: "admin", Password: "nope"})
	assert.ErrorIs(t, err, domain.ErrUnauthorized)

	_, err = uc.Login(context.Background(), dto.LoginRequest{Username: "ghost", Password: "admin123"})
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestLogin_CamposFaltantes(t *testing.T) {
	uc := newAuth(t)

	_, err := uc.Login(context.Background(), dto.LoginRequest{})
	var ve *domain.ValidationError
	require.True(t, errors.As(err, &ve))
	assert.ElementsMatch(t, []string{"username", "password"}, ve.Missing)
}
