// Package scheduler exporta reportes de forma periódica según una expresión cron.
package scheduler

import (
	"context"
	"fmt"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/jhoicas/stock-ledger/internal/application/report"
	"github.com/jhoicas/stock-ledger/pkg/logger"
)

const runTimeout = 2 * time.Minute

// Exporter genera un reporte y lo deja en un directorio.
type Exporter interface {
	ExportToDir(ctx context.Context, dir, kind, format string) (string, error)
}

// ReportScheduler exporta el reporte completo en PDF y XLSX en cada disparo.
type ReportScheduler struct {
	cron     *cron.Cron
	exporter Exporter
	dir      string
	log      *logger.Logger
}

// New valida la expresión (5 campos, sintaxis robfig/cron) y registra el trabajo; no arranca.
func New(schedule, dir string, exporter Exporter, log *logger.Logger) (*ReportScheduler, error) {
	if log == nil {
		log = logger.Nop()
	}
	s := &ReportScheduler{
		cron:     cron.New(),
		exporter: exporter,
		dir:      dir,
		log:      log.Named("scheduler"),
	}
	if _, err := s.cron.AddFunc(schedule, func() { s.RunOnce(context.Background()) }); err != nil {
		return nil, fmt.Errorf("scheduler: expresión %q: %w", schedule, err)
	}
	return s, nil
}

func (s *ReportScheduler) Start() {
	s.log.Info().Str("dir", s.dir).Msg("scheduler iniciado")
	s.cron.Start()
}

// Stop detiene el cron y espera a que termine la ejecución en curso o a que venza ctx.
func (s *ReportScheduler) Stop(ctx context.Context) {
	done := s.cron.Stop()
	select {
	case <-done.Done():
	case <-ctx.Done():
		s.log.Warn().Msg("scheduler detenido con exportación en curso")
	}
}

// RunOnce exporta el reporte completo en ambos formatos. Devuelve las rutas escritas;
// un formato que falla se registra y no impide el otro.
func (s *ReportScheduler) RunOnce(ctx context.Context) []string {
	ctx, cancel := context.WithTimeout(ctx, runTimeout)
	defer cancel()

	var paths []string
	for _, format := range []string{report.FormatPDF, report.FormatXLSX} {
		path, err := s.exporter.ExportToDir(ctx, s.dir, report.KindComplete, format)
		if err != nil {
			s.log.Error().Err(err).Str("format", format).Msg("exportación programada fallida")
			continue
		}
		paths = append(paths, path)
	}
	s.log.Info().Int("files", len(paths)).Msg("exportación programada terminada")
	return paths
}
