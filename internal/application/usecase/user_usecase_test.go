package usecase_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/stock-ledger/internal/application/dto"
	"github.com/jhoicas/stock-ledger/internal/application/usecase"
	"github.com/jhoicas/stock-ledger/internal/domain"
	"github.com/jhoicas/stock-ledger/internal/domain/entity"
	"github.com/jhoicas/stock-ledger/internal/infrastructure/memory"
	"github.com/jhoicas/stock-ledger/pkg/logger"
)

func TestUserUseCase_AltaRolYBorrado(t *testing.T) {
	ctx := context.Background()
	store := memory.NewStore()
	uc := usecase.NewUserUseCase(store.Users(), logger.Nop())

	admin, err := uc.Create(ctx, dto.CreateUserRequest{Username: "admin", Password: "admin123", Role: entity.RoleAdmin})
	require.NoError(t, err)
	staf, err := uc.Create(ctx, dto.CreateUserRequest{Username: "staf", Password: "staf123", Role: entity.RoleStandard})
	require.NoError(t, err)

	_, err = uc.Create(ctx, dto.CreateUserRequest{Username: "staf", Password: "otro123", Role: entity.RoleStandard})
	assert.ErrorIs(t, err, domain.ErrDuplicate)
	_, err = uc.Create(ctx, dto.CreateUserRequest{Username: "x", Password: "123", Role: "root"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	stored, err := store.Users().GetByUsername(ctx, "staf")
	require.NoError(t, err)
	assert.NotEqual(t, "staf123", stored.PasswordHash)

	require.NoError(t, uc.ChangeRole(ctx, admin.ID, staf.ID, dto.UpdateRoleRequest{Role: entity.RoleAdmin}))
	assert.ErrorIs(t, uc.ChangeRole(ctx, admin.ID, admin.ID, dto.UpdateRoleRequest{Role: entity.RoleStandard}), domain.ErrForbidden)

	require.NoError(t, uc.ChangePassword(ctx, staf.ID, dto.UpdatePasswordRequest{Password: "nueva123"}))
	assert.ErrorIs(t, uc.ChangePassword(ctx, 99, dto.UpdatePasswordRequest{Password: "nueva123"}), domain.ErrUserNotFound)

	assert.ErrorIs(t, uc.Delete(ctx, admin.ID, admin.ID), domain.ErrForbidden)
	require.NoError(t, uc.Delete(ctx, admin.ID, staf.ID))

	list, err := uc.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "admin", list[0].Username)
}
