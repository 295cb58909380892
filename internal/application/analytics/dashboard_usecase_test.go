package analytics_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/stock-ledger/internal/application/analytics"
	"github.com/jhoicas/stock-ledger/internal/domain/entity"
	"github.com/jhoicas/stock-ledger/internal/infrastructure/memory"
)

func TestDashboard_GetSummary(t *testing.T) {
	ctx := context.Background()
	store := memory.NewStore()

	var ids []int64
	for i := 0; i < 10; i++ {
		it := &entity.Item{Code: fmt.Sprintf("BRG-%03d", i), Name: fmt.Sprintf("Item %02d", i), Stock: int64(100 - i*10)}
		require.NoError(t, store.Items().Create(ctx, it))
		ids = append(ids, it.ID)
	}
	day := time.Date(2025, 11, 1, 0, 0, 0, 0, time.UTC)
	for i := 0; i < 12; i++ {
		require.NoError(t, store.Transactions().Append(ctx, &entity.Transaction{
			Date: day.AddDate(0, 0, i), ItemID: ids[0], Quantity: int64(i + 1), Type: entity.TransactionTypeIN,
		}))
	}

	sum, err := analytics.NewDashboardUseCase(store.Items(), store.Transactions()).GetSummary(ctx)
	require.NoError(t, err)

	assert.Equal(t, int64(10), sum.TotalItems)
	assert.Equal(t, int64(550), sum.TotalStock)

	require.Len(t, sum.LowStock, 5)
	assert.Equal(t, int64(10), sum.LowStock[0].Stock)
	assert.Equal(t, int64(50), sum.LowStock[4].Stock)

	require.Len(t, sum.RecentTransactions, 10)
	assert.Equal(t, "2025-11-12", sum.RecentTransactions[0].Date)
	assert.Equal(t, "Item 00", sum.RecentTransactions[0].ItemName)

	require.Len(t, sum.StockChart, 8)
	assert.Equal(t, "Item 00", sum.StockChart[0].Name)
	assert.Equal(t, int64(100), sum.StockChart[0].Stock)
}

func TestDashboard_AlmacenVacio(t *testing.T) {
	store := memory.NewStore()
	sum, err := analytics.NewDashboardUseCase(store.Items(), store.Transactions()).GetSummary(context.Background())
	require.NoError(t, err)
	assert.Zero(t, sum.TotalItems)
	assert.NotNil(t, sum.LowStock)
	assert.NotNil(t, sum.RecentTransactions)
	assert.Empty(t, sum.StockChart)
}
