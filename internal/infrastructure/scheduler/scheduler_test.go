package scheduler

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/stock-ledger/internal/application/report"
)

type fakeExporter struct {
	mu      sync.Mutex
	calls   []string
	failFor string
}

func (f *fakeExporter) ExportToDir(_ context.Context, dir, kind, format string) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = append(f.calls, kind+"/"+format)
	if format == f.failFor {
		return "", errors.New("disco lleno")
	}
	return dir + "/laporan_" + kind + "." + format, nil
}

func TestNew_ExpresionInvalida(t *testing.T) {
	_, err := New("cada lunes", "reports", &fakeExporter{}, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "cada lunes")
}

func TestRunOnce_AmbosFormatos(t *testing.T) {
	exp := &fakeExporter{}
	s, err := New("0 20 * * 5", "out", exp, nil)
	require.NoError(t, err)

	paths := s.RunOnce(context.Background())
	assert.Equal(t, []string{"out/laporan_complete.pdf", "out/laporan_complete.xlsx"}, paths)
	assert.Equal(t, []string{"complete/pdf", "complete/xlsx"}, exp.calls)
}

func TestRunOnce_UnFalloNoDetieneElOtro(t *testing.T) {
	exp := &fakeExporter{failFor: report.FormatPDF}
	s, err := New("@daily", "out", exp, nil)
	require.NoError(t, err)

	paths := s.RunOnce(context.Background())
	assert.Equal(t, []string{"out/laporan_complete.xlsx"}, paths)
	assert.Len(t, exp.calls, 2)
}

func TestStartStop(t *testing.T) {
	s, err := New("@every 1h", "out", &fakeExporter{}, nil)
	require.NoError(t, err)
	s.Start()
	s.Stop(context.Background())
}
