// Package pdf genera los reportes de inventario en PDF con Maroto v2.
//
// Layout de cada sección (A4):
//
//	┌──────────────────────────────────────────────┐
//	│  TÍTULO                                      │
//	│  Tanggal Cetak: dd-mm-aaaa hh:mm             │
//	│  ──────────────────────────────────────────  │
//	│  CABECERA DE TABLA                           │
//	│  una fila por artículo / transacción         │
//	└──────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"
	"strconv"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	"github.com/jhoicas/stock-ledger/internal/application/report"
	"github.com/jhoicas/stock-ledger/internal/domain/entity"
	"github.com/jhoicas/stock-ledger/pkg/money"
)

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

var _ report.Renderer = (*ReportRenderer)(nil)

// ReportRenderer implementa report.Renderer.
type ReportRenderer struct{}

func NewReportRenderer() *ReportRenderer { return &ReportRenderer{} }

// Render arma el PDF con las secciones que pida el documento, una tras otra.
func (g *ReportRenderer) Render(_ context.Context, doc *report.Document) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(15).WithRightMargin(15).
		WithTopMargin(15).WithBottomMargin(15).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle(doc.Title, true).
		Build()

	m := maroto.New(cfg)
	printed := "Tanggal Cetak: " + doc.GeneratedAt.Format("02-01-2006 15:04")

	if doc.IncludeItems {
		m.AddRows(titleRows(report.ItemsSectionTitle, printed)...)
		m.AddRows(itemHeaderRow())
		m.AddRows(itemRows(doc.Items)...)
	}
	if doc.IncludeTransactions {
		if doc.IncludeItems {
			m.AddRows(line.NewRow(8))
		}
		m.AddRows(titleRows(report.TransactionsSectionTitle, printed)...)
		m.AddRows(transactionHeaderRow())
		m.AddRows(transactionRows(doc.Transactions)...)
	}

	out, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return out.GetBytes(), nil
}

func titleRows(title, printed string) []core.Row {
	return []core.Row{
		row.New(10).Add(col.New(12).Add(text.New(title, props.Text{
			Style: fontstyle.Bold, Size: 16, Color: colorPrimary,
		}))),
		row.New(6).Add(col.New(12).Add(text.New(printed, props.Text{Size: 9, Color: colorGray}))),
		line.NewRow(2, props.Line{Color: colorPrimary, Thickness: 0.4}),
	}
}

type column struct {
	label string
	size  int
	align align.Type
}

func headerRow(cols []column) core.Row {
	r := row.New(7)
	for _, c := range cols {
		r.Add(col.New(c.size).Add(text.New(c.label, props.Text{
			Style: fontstyle.Bold, Size: 9, Align: c.align, Top: 1.5, Left: 1, Right: 1,
		})))
	}
	return r
}

func dataRow(cols []column, values ...string) core.Row {
	r := row.New(6)
	for i, c := range cols {
		r.Add(col.New(c.size).Add(text.New(values[i], props.Text{
			Size: 8, Align: c.align, Top: 1, Left: 1, Right: 1,
		})))
	}
	return r
}

var itemColumns = []column{
	{"Kode", 2, align.Left},
	{"Nama", 3, align.Left},
	{"Stok", 1, align.Right},
	{"Harga Beli", 2, align.Right},
	{"Harga Jual", 2, align.Right},
	{"Pemasok", 2, align.Left},
}

func itemHeaderRow() core.Row { return headerRow(itemColumns) }

func itemRows(items []*entity.Item) []core.Row {
	rows := make([]core.Row, 0, len(items))
	for _, it := range items {
		rows = append(rows, dataRow(itemColumns,
			it.Code,
			it.Name,
			strconv.FormatInt(it.Stock, 10),
			money.FormatRupiah(it.PurchasePrice),
			money.FormatRupiah(it.SellingPrice),
			nonEmpty(it.SupplierName, "-"),
		))
	}
	return rows
}

var transactionColumns = []column{
	{"Tanggal", 2, align.Left},
	{"Nama Barang", 4, align.Left},
	{"Jenis", 1, align.Center},
	{"Qty", 1, align.Right},
	{"Catatan", 4, align.Left},
}

func transactionHeaderRow() core.Row { return headerRow(transactionColumns) }

func transactionRows(txs []*entity.Transaction) []core.Row {
	rows := make([]core.Row, 0, len(txs))
	for _, t := range txs {
		rows = append(rows, dataRow(transactionColumns,
			t.Date.Format(entity.DateLayout),
			t.ItemName,
			t.Type,
			strconv.FormatInt(t.Quantity, 10),
			report.TruncateNote(nonEmpty(t.Note, "-")),
		))
	}
	return rows
}

func nonEmpty(s, fallback string) string {
	if s == "" {
		return fallback
	}
	return s
}
