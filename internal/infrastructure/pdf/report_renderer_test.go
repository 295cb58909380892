package pdf

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/stock-ledger/internal/application/report"
	"github.com/jhoicas/stock-ledger/internal/domain/entity"
)

func sampleDoc() *report.Document {
	return &report.Document{
		Title:       "Laporan Lengkap Inventori",
		GeneratedAt: time.Date(2025, 11, 5, 10, 30, 0, 0, time.UTC),
		Items: []*entity.Item{
			{ID: 1, Code: "BRG-001", Name: "Beras 5kg", Stock: 30, PurchasePrice: decimal.NewFromInt(55000), SellingPrice: decimal.NewFromInt(65000), SupplierName: "PT Nusantara"},
		},
		Transactions: []*entity.Transaction{
			{ID: 1, Date: time.Date(2025, 11, 1, 0, 0, 0, 0, time.UTC), ItemID: 1, ItemName: "Beras 5kg", Quantity: 10, Type: "IN", Note: "Restock awal dari gudang pusat"},
		},
		IncludeItems:        true,
		IncludeTransactions: true,
	}
}

func TestRender_Completo(t *testing.T) {
	data, err := NewReportRenderer().Render(context.Background(), sampleDoc())
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(data, []byte("%PDF")))
}

func TestRender_SoloTransaccionesVacias(t *testing.T) {
	doc := sampleDoc()
	doc.IncludeItems = false
	doc.Transactions = nil

	data, err := NewReportRenderer().Render(context.Background(), doc)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(data, []byte("%PDF")))
}

func TestTransactionRows_TruncaNotas(t *testing.T) {
	rows := transactionRows(sampleDoc().Transactions)
	assert.Len(t, rows, 1)
	assert.Equal(t, "Restock awal dari...", report.TruncateNote("Restock awal dari gudang pusat"))
}
