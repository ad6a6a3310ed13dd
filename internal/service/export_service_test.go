package service

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/noah-isme/skpi-portal/internal/models"
	appErrors "github.com/noah-isme/skpi-portal/pkg/errors"
	"github.com/noah-isme/skpi-portal/pkg/export"
)

type recordingRenderer struct {
	last export.Dataset
	err  error
}

func (r *recordingRenderer) Render(data export.Dataset) ([]byte, error) {
	r.last = data
	if r.err != nil {
		return nil, r.err
	}
	return []byte("rendered"), nil
}

func selectorAt(role models.Role, menu string) *Selector {
	selector := NewSelector()
	selector.SelectRole(role)
	if menu != "" {
		selector.SelectMenu(menu)
	}
	return selector
}

func TestExportServiceAchievementsCSV(t *testing.T) {
	metrics := NewMetricsService()
	svc := NewExportService(newTestPanelService(nil, nil), export.NewCSVExporter(), nil, metrics, zap.NewNop())

	file, err := svc.Export(context.Background(), selectorAt(models.RoleStudent, "aktivitas"), "csv")
	require.NoError(t, err)
	assert.Equal(t, "skpi-achievements.csv", file.Filename)
	assert.Equal(t, "text/csv; charset=utf-8", file.ContentType)

	lines := strings.Split(strings.TrimSpace(string(file.Payload)), "\n")
	require.Len(t, lines, 4)
	assert.Equal(t, "Daftar Aktivitas & Prestasi", lines[0])
	assert.Equal(t, "Nama Aktivitas,Kategori,Tahun,Status", lines[1])
	assert.Equal(t, "Juara 1 Debat Ekonomi Nasional,Prestasi,2023,Verified", lines[2])
	assert.Equal(t, "Sertifikasi Analis Keuangan Syariah,Sertifikasi,2023,Pending", lines[3])
	assert.Equal(t, uint64(1), metrics.Snapshot().Exports)
}

func TestExportServicePrintQueuePDF(t *testing.T) {
	pdf := &recordingRenderer{}
	svc := NewExportService(newTestPanelService(nil, nil), &recordingRenderer{}, pdf, nil, nil)

	file, err := svc.Export(context.Background(), selectorAt(models.RoleOperator, ""), "PDF")
	require.NoError(t, err)
	assert.Equal(t, "skpi-print_queue.pdf", file.Filename)
	assert.Equal(t, "application/pdf", file.ContentType)
	assert.Equal(t, []string{"ID Pengajuan", "Nama Mahasiswa", "Prodi"}, pdf.last.Headers)
	require.Len(t, pdf.last.Rows, 1)
	assert.Equal(t, "#SKPI-102", pdf.last.Rows[0]["ID Pengajuan"])
}

func TestExportServiceReviewQueue(t *testing.T) {
	csv := &recordingRenderer{}
	svc := NewExportService(newTestPanelService(nil, nil), csv, nil, nil, nil)

	_, err := svc.Export(context.Background(), selectorAt(models.RoleDepartment, ""), "")
	require.NoError(t, err)
	require.Len(t, csv.last.Rows, 3)
	assert.Equal(t, "Budi Santoso", csv.last.Rows[2]["Nama Mahasiswa"])
	assert.Equal(t, "Menunggu", csv.last.Rows[2]["Status"])
}

func TestExportServiceRejectsNonTablePanels(t *testing.T) {
	svc := NewExportService(newTestPanelService(nil, nil), export.NewCSVExporter(), nil, nil, nil)

	_, err := svc.Export(context.Background(), selectorAt(models.RoleStudent, "biodata"), "csv")
	require.Error(t, err)
	assert.True(t, errors.Is(err, appErrors.ErrNotExportable))
}

func TestExportServiceRejectsUnknownFormat(t *testing.T) {
	svc := NewExportService(newTestPanelService(nil, nil), export.NewCSVExporter(), nil, nil, nil)

	_, err := svc.Export(context.Background(), selectorAt(models.RoleStudent, "aktivitas"), "xlsx")
	require.Error(t, err)
	assert.True(t, errors.Is(err, appErrors.ErrValidation))
}

func TestExportServiceMissingRenderer(t *testing.T) {
	svc := NewExportService(newTestPanelService(nil, nil), export.NewCSVExporter(), nil, nil, nil)

	_, err := svc.Export(context.Background(), selectorAt(models.RoleStudent, "aktivitas"), "pdf")
	require.Error(t, err)
	assert.True(t, errors.Is(err, appErrors.ErrServiceUnavailable))
}

func TestExportServiceRenderFailure(t *testing.T) {
	svc := NewExportService(newTestPanelService(nil, nil), &recordingRenderer{err: errors.New("disk full")}, nil, nil, nil)

	_, err := svc.Export(context.Background(), selectorAt(models.RoleStudent, "aktivitas"), "csv")
	require.Error(t, err)
	assert.True(t, errors.Is(err, appErrors.ErrInternal))
}
