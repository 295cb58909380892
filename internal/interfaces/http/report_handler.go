package http

import (
	"fmt"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/stock-ledger/internal/application/report"
	"github.com/jhoicas/stock-ledger/pkg/logger"
)

// ReportHandler descarga de reportes PDF/XLSX.
type ReportHandler struct {
	uc  *report.ReportUseCase
	log *logger.Logger
}

func NewReportHandler(uc *report.ReportUseCase, log *logger.Logger) *ReportHandler {
	return &ReportHandler{uc: uc, log: log}
}

// Export GET /api/reports/:kind?format=pdf|xlsx (pdf por defecto).
func (h *ReportHandler) Export(c *fiber.Ctx) error {
	out, err := h.uc.Export(c.UserContext(), c.Params("kind"), c.Query("format", report.FormatPDF))
	if err != nil {
		return writeError(c, h.log, err)
	}
	c.Set(fiber.HeaderContentType, out.ContentType)
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`attachment; filename="%s"`, out.FileName))
	return c.Send(out.Data)
}
