// Package excel genera los reportes de inventario en XLSX con excelize.
package excel

import (
	"context"
	"fmt"
	"strconv"
	"unicode/utf8"

	"github.com/xuri/excelize/v2"

	"github.com/jhoicas/stock-ledger/internal/application/report"
	"github.com/jhoicas/stock-ledger/internal/domain/entity"
)

// Nombres de hoja.
const (
	SheetItems        = "Stok Barang"
	SheetTransactions = "Riwayat Transaksi"
)

const maxColWidth = 30

var (
	itemHeaders        = []string{"Kode", "Nama", "Kategori", "Stok", "Harga Beli", "Harga Jual", "Pemasok"}
	transactionHeaders = []string{"Tanggal", "Nama Barang", "Jenis Transaksi", "Quantity", "Catatan"}
)

var _ report.Renderer = (*ReportRenderer)(nil)

// ReportRenderer implementa report.Renderer. Una hoja por sección.
type ReportRenderer struct{}

func NewReportRenderer() *ReportRenderer { return &ReportRenderer{} }

// cell valor a escribir y su texto para medir el ancho de la columna.
type cell struct {
	value any
	text  string
}

func (r *ReportRenderer) Render(_ context.Context, doc *report.Document) ([]byte, error) {
	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	headerStyle, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return nil, fmt.Errorf("excel: estilo: %w", err)
	}

	// NewFile crea "Sheet1"; la primera sección la reutiliza renombrándola.
	first := true
	addSheet := func(name string) error {
		if first {
			first = false
			return f.SetSheetName("Sheet1", name)
		}
		_, err := f.NewSheet(name)
		return err
	}

	if doc.IncludeItems {
		if err := addSheet(SheetItems); err != nil {
			return nil, fmt.Errorf("excel: hoja %s: %w", SheetItems, err)
		}
		if err := writeTable(f, SheetItems, headerStyle, itemHeaders, itemCells(doc.Items)); err != nil {
			return nil, err
		}
	}
	if doc.IncludeTransactions {
		if err := addSheet(SheetTransactions); err != nil {
			return nil, fmt.Errorf("excel: hoja %s: %w", SheetTransactions, err)
		}
		if err := writeTable(f, SheetTransactions, headerStyle, transactionHeaders, transactionCells(doc.Transactions)); err != nil {
			return nil, err
		}
	}
	f.SetActiveSheet(0)

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("excel: escribir libro: %w", err)
	}
	return buf.Bytes(), nil
}

func itemCells(items []*entity.Item) [][]cell {
	rows := make([][]cell, 0, len(items))
	for _, it := range items {
		rows = append(rows, []cell{
			{it.Code, it.Code},
			{it.Name, it.Name},
			{nonEmpty(it.CategoryName), nonEmpty(it.CategoryName)},
			{it.Stock, strconv.FormatInt(it.Stock, 10)},
			{it.PurchasePrice.InexactFloat64(), it.PurchasePrice.String()},
			{it.SellingPrice.InexactFloat64(), it.SellingPrice.String()},
			{nonEmpty(it.SupplierName), nonEmpty(it.SupplierName)},
		})
	}
	return rows
}

func transactionCells(txs []*entity.Transaction) [][]cell {
	rows := make([][]cell, 0, len(txs))
	for _, t := range txs {
		date := t.Date.Format(entity.DateLayout)
		rows = append(rows, []cell{
			{date, date},
			{t.ItemName, t.ItemName},
			{t.Type, t.Type},
			{t.Quantity, strconv.FormatInt(t.Quantity, 10)},
			{nonEmpty(t.Note), nonEmpty(t.Note)},
		})
	}
	return rows
}

// writeTable escribe cabecera y filas y ajusta cada columna al valor más largo + 2, con tope maxColWidth.
func writeTable(f *excelize.File, sheet string, headerStyle int, headers []string, rows [][]cell) error {
	widths := make([]int, len(headers))
	for i, h := range headers {
		name, err := excelize.CoordinatesToCellName(i+1, 1)
		if err != nil {
			return err
		}
		if err := f.SetCellValue(sheet, name, h); err != nil {
			return fmt.Errorf("excel: %s!%s: %w", sheet, name, err)
		}
		widths[i] = utf8.RuneCountInString(h)
	}
	last, _ := excelize.CoordinatesToCellName(len(headers), 1)
	if err := f.SetCellStyle(sheet, "A1", last, headerStyle); err != nil {
		return fmt.Errorf("excel: estilo cabecera: %w", err)
	}

	for r, cells := range rows {
		for c, v := range cells {
			name, err := excelize.CoordinatesToCellName(c+1, r+2)
			if err != nil {
				return err
			}
			if err := f.SetCellValue(sheet, name, v.value); err != nil {
				return fmt.Errorf("excel: %s!%s: %w", sheet, name, err)
			}
			if n := utf8.RuneCountInString(v.text); n > widths[c] {
				widths[c] = n
			}
		}
	}

	for i, w := range widths {
		colName, err := excelize.ColumnNumberToName(i + 1)
		if err != nil {
			return err
		}
		if err := f.SetColWidth(sheet, colName, colName, float64(columnWidth(w))); err != nil {
			return fmt.Errorf("excel: ancho %s!%s: %w", sheet, colName, err)
		}
	}
	return nil
}

func columnWidth(longest int) int {
	if longest+2 > maxColWidth {
		return maxColWidth
	}
	return longest + 2
}

func nonEmpty(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
