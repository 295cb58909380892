package usecase_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/stock-ledger/internal/application/dto"
	"github.com/jhoicas/stock-ledger/internal/application/usecase"
	"github.com/jhoicas/stock-ledger/internal/domain"
	"github.com/jhoicas/stock-ledger/internal/infrastructure/memory"
	"github.com/jhoicas/stock-ledger/pkg/logger"
)

func TestSupplierUseCase_CRUD(t *testing.T) {
	ctx := context.Background()
	uc := usecase.NewSupplierUseCase(memory.NewStore().Suppliers())

	_, err := uc.Create(ctx, dto.SupplierRequest{Name: "  "})
	var ve *domain.ValidationError
	require.True(t, errors.As(err, &ve))
	assert.Equal(t, []string{"name"}, ve.Missing)

	s, err := uc.Create(ctx, dto.SupplierRequest{Name: "CV Sejahtera", Address: "Jl. Mawar 5"})
	require.NoError(t, err)
	_, err = uc.Create(ctx, dto.SupplierRequest{Name: "UD Makmur", Address: "Jl. Anggrek 9"})
	require.NoError(t, err)

	list, err := uc.List(ctx, "mawar")
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "CV Sejahtera", list[0].Name)

	updated, err := uc.Update(ctx, s.ID, dto.SupplierRequest{Name: "CV Sejahtera Abadi", Address: "Jl. Mawar 7"})
	require.NoError(t, err)
	assert.Equal(t, "Jl. Mawar 7", updated.Address)

	require.NoError(t, uc.Delete(ctx, s.ID))
	_, err = uc.Get(ctx, s.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestItemSinProveedorTrasBorrarlo(t *testing.T) {
	f := newFixture(t, logger.Nop())
	created, err := f.items.Create(context.Background(), beras(f))
	require.NoError(t, err)

	suppliers := usecase.NewSupplierUseCase(f.store.Suppliers())
	require.NoError(t, suppliers.Delete(context.Background(), f.supID))

	got, err := f.items.Get(context.Background(), created.ID)
	require.NoError(t, err)
	assert.Nil(t, got.SupplierID)
	assert.Equal(t, "-", got.SupplierName)
}
