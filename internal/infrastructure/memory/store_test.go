package memory

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/stock-ledger/internal/domain"
	"github.com/jhoicas/stock-ledger/internal/domain/entity"
	"github.com/jhoicas/stock-ledger/internal/domain/repository"
)

func ptr(v int64) *int64 { return &v }

func seedCatalog(t *testing.T, s *Store) (catID, supID int64) {
	t.Helper()
	ctx := context.Background()
	cat := &entity.Category{Name: "Sembako"}
	require.NoError(t, s.Categories().Create(ctx, cat))
	sup := &entity.Supplier{Name: "PT Nusantara", Address: "Jl. Raya 1"}
	require.NoError(t, s.Suppliers().Create(ctx, sup))
	return cat.ID, sup.ID
}

func TestStore_RunDescartaCambiosSiFalla(t *testing.T) {
	s := NewStore()
	ctx := context.Background()
	item := &entity.Item{Code: "A", Name: "Alpha", Stock: 3}
	require.NoError(t, s.Items().Create(ctx, item))

	boom := errors.New("boom")
	err := s.Run(ctx, func(items repository.ItemRepository, txs repository.TransactionRepository) error {
		require.NoError(t, txs.Append(ctx, &entity.Transaction{Date: time.Now(), ItemID: item.ID, Quantity: 2, Type: "IN"}))
		require.NoError(t, items.ApplyStockDelta(ctx, item.ID, 2))
		return boom
	})
	assert.ErrorIs(t, err, boom)

	got, err := s.Items().GetByID(ctx, item.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(3), got.Stock)
	n, err := s.Transactions().Count(ctx)
	require.NoError(t, err)
	assert.Zero(t, n)
}

func TestStore_RunConfirma(t *testing.T) {
	s := NewStore()
	ctx := context.Background()
	item := &entity.Item{Code: "A", Name: "Alpha", Stock: 3}
	require.NoError(t, s.Items().Create(ctx, item))

	err := s.Run(ctx, func(items repository.ItemRepository, txs repository.TransactionRepository) error {
		stock, err := items.GetStockForUpdate(ctx, item.ID)
		require.NoError(t, err)
		assert.Equal(t, int64(3), stock)
		if err := txs.Append(ctx, &entity.Transaction{Date: time.Now(), ItemID: item.ID, Quantity: 3, Type: "OUT"}); err != nil {
			return err
		}
		return items.ApplyStockDelta(ctx, item.ID, -3)
	})
	require.NoError(t, err)

	got, _ := s.Items().GetByID(ctx, item.ID)
	assert.Equal(t, int64(0), got.Stock)
}

func TestItemRepo_StockNoNegativo(t *testing.T) {
	s := NewStore()
	ctx := context.Background()
	item := &entity.Item{Code: "A", Name: "Alpha", Stock: 1}
	require.NoError(t, s.Items().Create(ctx, item))

	assert.Error(t, s.Items().ApplyStockDelta(ctx, item.ID, -2))
	assert.ErrorIs(t, s.Items().ApplyStockDelta(ctx, 99, 1), domain.ErrNotFound)
	_, err := s.Items().GetStockForUpdate(ctx, 99)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestItemRepo_ListBusquedaYNombresResueltos(t *testing.T) {
	s := NewStore()
	ctx := context.Background()
	catID, supID := seedCatalog(t, s)

	require.NoError(t, s.Items().Create(ctx, &entity.Item{Code: "BRG-002", Name: "Gula 1kg", CategoryID: ptr(catID), SupplierID: ptr(supID), PurchasePrice: decimal.NewFromInt(12000)}))
	require.NoError(t, s.Items().Create(ctx, &entity.Item{Code: "BRG-005", Name: "Kabel USB"}))
	require.NoError(t, s.Items().Create(ctx, &entity.Item{Code: "BRG-001", Name: "Beras 5kg", CategoryID: ptr(catID)}))

	all, err := s.Items().List(ctx, "")
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, "Beras 5kg", all[0].Name)
	assert.Equal(t, "-", all[2].CategoryName)
	assert.Equal(t, "-", all[2].SupplierName)

	bycat, err := s.Items().List(ctx, "sembako")
	require.NoError(t, err)
	assert.Len(t, bycat, 2)
	assert.Equal(t, "PT Nusantara", bycat[1].SupplierName)

	bycode, err := s.Items().List(ctx, "brg-005")
	require.NoError(t, err)
	require.Len(t, bycode, 1)
	assert.Equal(t, "Kabel USB", bycode[0].Name)
}

func TestItemRepo_CodigoDuplicadoYReferencias(t *testing.T) {
	s := NewStore()
	ctx := context.Background()
	require.NoError(t, s.Items().Create(ctx, &entity.Item{Code: "A", Name: "Alpha"}))

	assert.ErrorIs(t, s.Items().Create(ctx, &entity.Item{Code: "A", Name: "Otro"}), domain.ErrDuplicate)
	assert.ErrorIs(t, s.Items().Create(ctx, &entity.Item{Code: "B", Name: "Beta", CategoryID: ptr(42)}), domain.ErrInvalidInput)
}

func TestItemRepo_DeleteEnCascada(t *testing.T) {
	s := NewStore()
	ctx := context.Background()
	a := &entity.Item{Code: "A", Name: "Alpha", Stock: 5}
	b := &entity.Item{Code: "B", Name: "Beta", Stock: 5}
	require.NoError(t, s.Items().Create(ctx, a))
	require.NoError(t, s.Items().Create(ctx, b))
	require.NoError(t, s.Transactions().Append(ctx, &entity.Transaction{Date: time.Now(), ItemID: a.ID, Quantity: 1, Type: "IN"}))
	require.NoError(t, s.Transactions().Append(ctx, &entity.Transaction{Date: time.Now(), ItemID: b.ID, Quantity: 1, Type: "IN"}))

	require.NoError(t, s.Items().Delete(ctx, a.ID))

	list, err := s.Transactions().List(ctx, entity.TransactionFilter{})
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, b.ID, list[0].ItemID)
	assert.ErrorIs(t, s.Items().Delete(ctx, a.ID), domain.ErrNotFound)
}

func TestSupplierRepo_DeleteDejaArticulosSinProveedor(t *testing.T) {
	s := NewStore()
	ctx := context.Background()
	_, supID := seedCatalog(t, s)
	item := &entity.Item{Code: "A", Name: "Alpha", SupplierID: ptr(supID)}
	require.NoError(t, s.Items().Create(ctx, item))

	require.NoError(t, s.Suppliers().Delete(ctx, supID))

	got, err := s.Items().GetByID(ctx, item.ID)
	require.NoError(t, err)
	assert.Nil(t, got.SupplierID)
	assert.Equal(t, "-", got.SupplierName)
}

func TestItemRepo_LowestStockYResumen(t *testing.T) {
	s := NewStore()
	ctx := context.Background()
	for i, stock := range []int64{30, 40, 25, 15, 20, 50} {
		require.NoError(t, s.Items().Create(ctx, &entity.Item{Code: string(rune('A' + i)), Name: string(rune('a' + i)), Stock: stock}))
	}

	low, err := s.Items().LowestStock(ctx, 5)
	require.NoError(t, err)
	require.Len(t, low, 5)
	assert.Equal(t, int64(15), low[0].Stock)
	assert.Equal(t, int64(40), low[4].Stock)

	n, total, err := s.Items().StockSummary(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(6), n)
	assert.Equal(t, int64(180), total)
}

func TestUserRepo_UsuarioDuplicadoYActualizaciones(t *testing.T) {
	s := NewStore()
	ctx := context.Background()
	u := &entity.User{Username: "admin", PasswordHash: "x", Role: entity.RoleAdmin}
	require.NoError(t, s.Users().Create(ctx, u))
	assert.ErrorIs(t, s.Users().Create(ctx, &entity.User{Username: "admin"}), domain.ErrDuplicate)

	require.NoError(t, s.Users().UpdateRole(ctx, u.ID, entity.RoleStandard))
	got, err := s.Users().GetByUsername(ctx, "admin")
	require.NoError(t, err)
	assert.Equal(t, entity.RoleStandard, got.Role)

	assert.ErrorIs(t, s.Users().UpdatePassword(ctx, 77, "h"), domain.ErrUserNotFound)
}

func TestStore_ContextoCancelado(t *testing.T) {
	s := NewStore()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	err := s.Items().Create(ctx, &entity.Item{Code: "A", Name: "Alpha"})
	assert.ErrorIs(t, err, context.Canceled)
}
