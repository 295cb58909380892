package usecase_test

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/stock-ledger/internal/application/dto"
	"github.com/jhoicas/stock-ledger/internal/application/usecase"
	"github.com/jhoicas/stock-ledger/internal/domain"
	"github.com/jhoicas/stock-ledger/internal/domain/entity"
	"github.com/jhoicas/stock-ledger/internal/infrastructure/memory"
	"github.com/jhoicas/stock-ledger/pkg/logger"
)

func ptr(v int64) *int64 { return &v }

type fixture struct {
	store *memory.Store
	items *usecase.ItemUseCase
	catID int64
	supID int64
}

func newFixture(t *testing.T, log *logger.Logger) fixture {
	t.Helper()
	ctx := context.Background()
	store := memory.NewStore()
	cat := &entity.Category{Name: "Sembako"}
	require.NoError(t, store.Categories().Create(ctx, cat))
	sup := &entity.Supplier{Name: "PT Nusantara", Address: "Jl. Raya 1"}
	require.NoError(t, store.Suppliers().Create(ctx, sup))
	return fixture{
		store: store,
		items: usecase.NewItemUseCase(store.Items(), store.Categories(), store.Suppliers(), log),
		catID: cat.ID,
		supID: sup.ID,
	}
}

func beras(f fixture) dto.ItemRequest {
	return dto.ItemRequest{
		Code:          "BRG-001",
		Name:          "Beras 5kg",
		CategoryID:    ptr(f.catID),
		Stock:         30,
		PurchasePrice: decimal.NewFromInt(55000),
		SellingPrice:  decimal.NewFromInt(65000),
		SupplierID:    ptr(f.supID),
	}
}

func TestItemUseCase_CreateYGet(t *testing.T) {
	f := newFixture(t, logger.Nop())

	created, err := f.items.Create(context.Background(), beras(f))
	require.NoError(t, err)
	assert.Equal(t, "Sembako", created.CategoryName)
	assert.Equal(t, "PT Nusantara", created.SupplierName)
	assert.Equal(t, int64(30), created.Stock)

	got, err := f.items.Get(context.Background(), created.ID)
	require.NoError(t, err)
	assert.Equal(t, created.Code, got.Code)

	_, err = f.items.Get(context.Background(), 999)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestItemUseCase_Validaciones(t *testing.T) {
	f := newFixture(t, logger.Nop())

	in := beras(f)
	in.Code, in.Name = "  ", ""
	in.PurchasePrice = decimal.NewFromInt(-1)
	_, err := f.items.Create(context.Background(), in)
	var ve *domain.ValidationError
	require.True(t, errors.As(err, &ve))
	assert.ElementsMatch(t, []string{"code", "name"}, ve.Missing)
	assert.Contains(t, ve.Invalid, "purchase_price")

	in = beras(f)
	in.Stock = -3
	_, err = f.items.Create(context.Background(), in)
	require.True(t, errors.As(err, &ve))
	assert.Contains(t, ve.Invalid, "stock")

	in = beras(f)
	in.CategoryID = ptr(77)
	in.SupplierID = ptr(88)
	_, err = f.items.Create(context.Background(), in)
	require.True(t, errors.As(err, &ve))
	assert.ElementsMatch(t, []string{"category_id", "supplier_id"}, ve.Invalid)
}

func TestItemUseCase_CodigoDuplicado(t *testing.T) {
	f := newFixture(t, logger.Nop())
	_, err := f.items.Create(context.Background(), beras(f))
	require.NoError(t, err)

	_, err = f.items.Create(context.Background(), beras(f))
	assert.ErrorIs(t, err, domain.ErrDuplicate)

	other := beras(f)
	other.Code = "BRG-002"
	created, err := f.items.Create(context.Background(), other)
	require.NoError(t, err)

	other.Code = "BRG-001"
	_, err = f.items.Update(context.Background(), created.ID, other)
	assert.ErrorIs(t, err, domain.ErrDuplicate)
}

func TestItemUseCase_UpdateStockDirectoQuedaEnLog(t *testing.T) {
	var buf bytes.Buffer
	f := newFixture(t, logger.New(logger.Config{Env: "test", Level: "info", Output: &buf}))
	created, err := f.items.Create(context.Background(), beras(f))
	require.NoError(t, err)

	in := beras(f)
	in.Stock = 12
	in.Name = "Beras Premium 5kg"
	updated, err := f.items.Update(context.Background(), created.ID, in)
	require.NoError(t, err)
	assert.Equal(t, int64(12), updated.Stock)
	assert.Equal(t, "Beras Premium 5kg", updated.Name)
	assert.Contains(t, buf.String(), `"old_stock":30`)
	assert.Contains(t, buf.String(), `"new_stock":12`)

	_, err = f.items.Update(context.Background(), 999, in)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestItemUseCase_ListYDelete(t *testing.T) {
	f := newFixture(t, logger.Nop())
	created, err := f.items.Create(context.Background(), beras(f))
	require.NoError(t, err)
	gula := beras(f)
	gula.Code, gula.Name, gula.CategoryID = "BRG-002", "Gula 1kg", nil
	_, err = f.items.Create(context.Background(), gula)
	require.NoError(t, err)

	list, err := f.items.List(context.Background(), "sembako")
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "BRG-001", list[0].Code)

	require.NoError(t, f.items.Delete(context.Background(), created.ID))
	assert.ErrorIs(t, f.items.Delete(context.Background(), created.ID), domain.ErrNotFound)

	list, err = f.items.List(context.Background(), "")
	require.NoError(t, err)
	assert.Len(t, list, 1)
}
