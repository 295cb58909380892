// Package report exporta instantáneas del catálogo y del libro de movimientos a PDF o XLSX.
package report

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/jhoicas/stock-ledger/internal/domain"
	"github.com/jhoicas/stock-ledger/internal/domain/entity"
	"github.com/jhoicas/stock-ledger/internal/domain/repository"
	"github.com/jhoicas/stock-ledger/pkg/logger"
)

// Tipos de reporte.
const (
	KindItems        = "items"
	KindTransactions = "transactions"
	KindComplete     = "complete"
)

// Formatos soportados.
const (
	FormatPDF  = "pdf"
	FormatXLSX = "xlsx"
)

var contentTypes = map[string]string{
	FormatPDF:  "application/pdf",
	FormatXLSX: "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet",
}

var titles = map[string]string{
	KindItems:        "Laporan Stok Barang",
	KindTransactions: "Laporan Riwayat Transaksi",
	KindComplete:     "Laporan Lengkap Inventori",
}

// Títulos de cada sección dentro de un documento.
const (
	ItemsSectionTitle        = "Laporan Stok Barang"
	TransactionsSectionTitle = "Laporan Riwayat Transaksi"
)

// Document datos ya resueltos que recibe un Renderer.
type Document struct {
	Title               string
	GeneratedAt         time.Time
	Items               []*entity.Item
	Transactions        []*entity.Transaction
	IncludeItems        bool
	IncludeTransactions bool
}

// Renderer convierte un Document en los bytes de un formato concreto.
type Renderer interface {
	Render(ctx context.Context, doc *Document) ([]byte, error)
}

// Output resultado de una exportación.
type Output struct {
	FileName    string
	ContentType string
	Data        []byte
}

// ReportUseCase lee catálogo e historial y delega el formato en un Renderer por extensión.
type ReportUseCase struct {
	items     repository.ItemRepository
	txs       repository.TransactionRepository
	renderers map[string]Renderer
	log       *logger.Logger
	now       func() time.Time
}

// NewReportUseCase construye el caso de uso con un renderer por formato.
func NewReportUseCase(items repository.ItemRepository, txs repository.TransactionRepository, pdf, xlsx Renderer, log *logger.Logger) *ReportUseCase {
	if log == nil {
		log = logger.Nop()
	}
	return &ReportUseCase{
		items:     items,
		txs:       txs,
		renderers: map[string]Renderer{FormatPDF: pdf, FormatXLSX: xlsx},
		log:       log.Named("reports"),
		now:       time.Now,
	}
}

// Export genera el reporte kind en el formato pedido.
// El nombre sigue el patrón laporan_<kind>_<AAAAMMDD_HHMMSS>.<formato>.
func (uc *ReportUseCase) Export(ctx context.Context, kind, format string) (*Output, error) {
	title, okKind := titles[kind]
	renderer, okFormat := uc.renderers[format]
	var invalid []string
	if !okKind {
		invalid = append(invalid, "kind")
	}
	if !okFormat || renderer == nil {
		invalid = append(invalid, "format")
	}
	if len(invalid) > 0 {
		return nil, domain.NewInvalidFields(invalid...)
	}

	now := uc.now()
	doc := &Document{
		Title:               title,
		GeneratedAt:         now,
		IncludeItems:        kind != KindTransactions,
		IncludeTransactions: kind != KindItems,
	}
	if doc.IncludeItems {
		list, err := uc.items.List(ctx, "")
		if err != nil {
			return nil, domain.WrapStore("report items", err)
		}
		doc.Items = list
	}
	if doc.IncludeTransactions {
		list, err := uc.txs.List(ctx, entity.TransactionFilter{})
		if err != nil {
			return nil, domain.WrapStore("report transactions", err)
		}
		doc.Transactions = list
	}

	data, err := renderer.Render(ctx, doc)
	if err != nil {
		return nil, fmt.Errorf("report %s/%s: %w", kind, format, err)
	}
	return &Output{
		FileName:    fmt.Sprintf("laporan_%s_%s.%s", kind, now.Format("20060102_150405"), format),
		ContentType: contentTypes[format],
		Data:        data,
	}, nil
}

// ExportToDir genera el reporte y lo escribe en dir (creando los directorios que falten).
// Devuelve la ruta del archivo escrito.
func (uc *ReportUseCase) ExportToDir(ctx context.Context, dir, kind, format string) (string, error) {
	out, err := uc.Export(ctx, kind, format)
	if err != nil {
		return "", err
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("crear directorio de reportes: %w", err)
	}
	path := filepath.Join(dir, out.FileName)
	if err := os.WriteFile(path, out.Data, 0o644); err != nil {
		return "", fmt.Errorf("escribir reporte: %w", err)
	}
	uc.log.Info().Str("path", path).Int("bytes", len(out.Data)).Msg("reporte exportado")
	return path, nil
}

// TruncateNote acorta notas de más de 20 caracteres a 17 más "...". Cuenta runas, no bytes.
func TruncateNote(s string) string {
	r := []rune(s)
	if len(r) > 20 {
		return string(r[:17]) + "..."
	}
	return s
}
