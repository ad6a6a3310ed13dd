package export

import (
	"bytes"
	"encoding/csv"
	"fmt"
)

// CSVOption customises a CSVExporter.
type CSVOption func(*CSVExporter)

// WithSeparator sets the field separator. Spreadsheets running an Indonesian
// locale expect ';'.
func WithSeparator(sep rune) CSVOption {
	return func(e *CSVExporter) {
		e.separator = sep
	}
}

// CSVExporter renders a Dataset as a caption line, a header line and one line per row.
type CSVExporter struct {
	separator rune
}

// NewCSVExporter builds a comma separated exporter.
func NewCSVExporter(opts ...CSVOption) *CSVExporter {
	e := &CSVExporter{separator: ','}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Render encodes the dataset. The caption is the panel title and is omitted when empty.
// Cells are looked up by header; a row carrying a key outside Headers is rejected
// so a renamed column cannot silently drop data.
func (e *CSVExporter) Render(data Dataset) ([]byte, error) {
	if len(data.Headers) == 0 {
		return nil, fmt.Errorf("csv requires at least one header")
	}
	known := make(map[string]struct{}, len(data.Headers))
	for _, h := range data.Headers {
		known[h] = struct{}{}
	}

	buf := &bytes.Buffer{}
	w := csv.NewWriter(buf)
	w.Comma = e.separator
	if data.Title != "" {
		if err := w.Write([]string{data.Title}); err != nil {
			return nil, fmt.Errorf("write csv caption: %w", err)
		}
	}
	if err := w.Write(data.Headers); err != nil {
		return nil, fmt.Errorf("write csv headers: %w", err)
	}
	for n, row := range data.Rows {
		for key := range row {
			if _, ok := known[key]; !ok {
				return nil, fmt.Errorf("csv row %d: column %q not in headers", n+1, key)
			}
		}
		record := make([]string, len(data.Headers))
		for i, h := range data.Headers {
			record[i] = row[h]
		}
		if err := w.Write(record); err != nil {
			return nil, fmt.Errorf("write csv row %d: %w", n+1, err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, fmt.Errorf("flush csv: %w", err)
	}
	return buf.Bytes(), nil
}
