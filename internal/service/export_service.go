package service

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/noah-isme/skpi-portal/internal/dto"
	"github.com/noah-isme/skpi-portal/internal/models"
	appErrors "github.com/noah-isme/skpi-portal/pkg/errors"
	"github.com/noah-isme/skpi-portal/pkg/export"
)

type panelProvider interface {
	Panel(ctx context.Context, id models.PanelID) (*dto.PanelView, bool, error)
}

type datasetRenderer interface {
	Render(data export.Dataset) ([]byte, error)
}

// ExportFile is a rendered export ready to be streamed.
type ExportFile struct {
	Filename    string
	ContentType string
	Payload     []byte
}

// ExportService renders table panels as downloadable listings. It does not
// produce credential documents; the per-row print controls stay inert.
type ExportService struct {
	panels  panelProvider
	csv     datasetRenderer
	pdf     datasetRenderer
	metrics *MetricsService
	logger  *zap.Logger
}

// NewExportService constructs an ExportService.
func NewExportService(panels panelProvider, csv, pdf datasetRenderer, metrics *MetricsService, logger *zap.Logger) *ExportService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ExportService{panels: panels, csv: csv, pdf: pdf, metrics: metrics, logger: logger}
}

// Export renders the panel resolved by selector in the requested format.
func (s *ExportService) Export(ctx context.Context, selector *Selector, rawFormat string) (*ExportFile, error) {
	format, err := export.ParseFormat(rawFormat)
	if err != nil {
		return nil, appErrors.Clone(appErrors.ErrValidation, err.Error())
	}
	res := selector.Panel()
	if !res.Panel.Exportable() {
		return nil, appErrors.Clone(appErrors.ErrNotExportable, fmt.Sprintf("panel %s cannot be exported", res.Panel))
	}
	panel, _, err := s.panels.Panel(ctx, res.Panel)
	if err != nil {
		return nil, err
	}
	dataset := Dataset(panel)

	renderer := s.csv
	if format == export.FormatPDF {
		renderer = s.pdf
	}
	if renderer == nil {
		return nil, appErrors.Clone(appErrors.ErrServiceUnavailable, fmt.Sprintf("%s export unavailable", format))
	}
	payload, err := renderer.Render(dataset)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to render export")
	}
	s.metrics.RecordExport(res.Panel, string(format))
	s.logger.Info("panel exported",
		zap.String("panel", string(res.Panel)),
		zap.String("format", string(format)),
		zap.Int("rows", len(dataset.Rows)),
		zap.Int("bytes", len(payload)))

	return &ExportFile{
		Filename:    fmt.Sprintf("skpi-%s.%s", res.Panel, format.Extension()),
		ContentType: format.ContentType(),
		Payload:     payload,
	}, nil
}

// Dataset flattens a table or queue panel into export rows. Action columns are dropped.
func Dataset(panel *dto.PanelView) export.Dataset {
	data := export.Dataset{Title: panel.Title}
	switch {
	case panel.Table != nil:
		keep := make([]int, 0, len(panel.Table.Columns))
		for i, col := range panel.Table.Columns {
			if col.Control {
				continue
			}
			keep = append(keep, i)
			data.Headers = append(data.Headers, col.Label)
		}
		for _, row := range panel.Table.Rows {
			record := make(map[string]string, len(keep))
			for _, i := range keep {
				if i < len(row.Cells) {
					record[panel.Table.Columns[i].Label] = row.Cells[i].Text
				}
			}
			data.Rows = append(data.Rows, record)
		}
	case panel.Queue != nil:
		data.Headers = []string{"ID", "Nama Mahasiswa", "NIM • Prodi", "Status"}
		for _, item := range panel.Queue {
			data.Rows = append(data.Rows, map[string]string{
				"ID":             item.ID,
				"Nama Mahasiswa": item.Title,
				"NIM • Prodi":    item.Subtitle,
				"Status":         item.Badge.Text,
			})
		}
	}
	return data
}
