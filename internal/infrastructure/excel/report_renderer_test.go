package excel

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/jhoicas/stock-ledger/internal/application/report"
	"github.com/jhoicas/stock-ledger/internal/domain/entity"
)

func sampleDoc() *report.Document {
	return &report.Document{
		Title:       "Laporan Lengkap Inventori",
		GeneratedAt: time.Date(2025, 11, 5, 10, 30, 0, 0, time.UTC),
		Items: []*entity.Item{
			{ID: 1, Code: "BRG-001", Name: "Beras 5kg", CategoryName: "Sembako", Stock: 30,
				PurchasePrice: decimal.NewFromInt(55000), SellingPrice: decimal.NewFromInt(65000), SupplierName: "PT Nusantara"},
		},
		Transactions: []*entity.Transaction{
			{ID: 1, Date: time.Date(2025, 11, 1, 0, 0, 0, 0, time.UTC), ItemID: 1, ItemName: "Beras 5kg",
				Quantity: 10, Type: "IN", Note: "Restock awal dari gudang pusat"},
		},
		IncludeItems:        true,
		IncludeTransactions: true,
	}
}

func open(t *testing.T, data []byte) *excelize.File {
	t.Helper()
	f, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	t.Cleanup(func() { _ = f.Close() })
	return f
}

func TestRender_CompletoDosHojas(t *testing.T) {
	data, err := NewReportRenderer().Render(context.Background(), sampleDoc())
	require.NoError(t, err)

	f := open(t, data)
	assert.Equal(t, []string{SheetItems, SheetTransactions}, f.GetSheetList())

	v, err := f.GetCellValue(SheetItems, "A2")
	require.NoError(t, err)
	assert.Equal(t, "BRG-001", v)
	v, err = f.GetCellValue(SheetItems, "C2")
	require.NoError(t, err)
	assert.Equal(t, "Sembako", v)

	// En XLSX la nota va completa.
	v, err = f.GetCellValue(SheetTransactions, "E2")
	require.NoError(t, err)
	assert.Equal(t, "Restock awal dari gudang pusat", v)
}

func TestRender_AnchosDeColumna(t *testing.T) {
	data, err := NewReportRenderer().Render(context.Background(), sampleDoc())
	require.NoError(t, err)
	f := open(t, data)

	w, err := f.GetColWidth(SheetTransactions, "A")
	require.NoError(t, err)
	assert.Equal(t, float64(12), w) // "2025-11-01" + 2

	w, err = f.GetColWidth(SheetTransactions, "E")
	require.NoError(t, err)
	assert.Equal(t, float64(30), w) // 30 caracteres + 2, con tope

	w, err = f.GetColWidth(SheetItems, "G")
	require.NoError(t, err)
	assert.Equal(t, float64(14), w) // "PT Nusantara" + 2
}

func TestRender_SoloArticulos(t *testing.T) {
	doc := sampleDoc()
	doc.IncludeTransactions = false

	data, err := NewReportRenderer().Render(context.Background(), doc)
	require.NoError(t, err)
	f := open(t, data)
	assert.Equal(t, []string{SheetItems}, f.GetSheetList())
}

func TestColumnWidth(t *testing.T) {
	assert.Equal(t, 6, columnWidth(4))
	assert.Equal(t, 30, columnWidth(28))
	assert.Equal(t, 30, columnWidth(45))
}
