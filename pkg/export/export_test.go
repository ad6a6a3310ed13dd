package export

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleDataset() Dataset {
	return Dataset{
		Title:   "Antrean Cetak Dokumen",
		Headers: []string{"ID Pengajuan", "Nama Mahasiswa"},
		Rows: []map[string]string{
			{"ID Pengajuan": "#SKPI-102", "Nama Mahasiswa": "Siti Aminah"},
		},
	}
}

func TestParseFormat(t *testing.T) {
	f, err := ParseFormat(" PDF ")
	require.NoError(t, err)
	assert.Equal(t, FormatPDF, f)

	f, err = ParseFormat("")
	require.NoError(t, err)
	assert.Equal(t, FormatCSV, f)

	_, err = ParseFormat("xlsx")
	assert.Error(t, err)
}

func TestCSVExporterRender(t *testing.T) {
	out, err := NewCSVExporter().Render(sampleDataset())
	require.NoError(t, err)
	assert.Equal(t, "Antrean Cetak Dokumen\nID Pengajuan,Nama Mahasiswa\n#SKPI-102,Siti Aminah\n", string(out))
}

func TestCSVExporterSeparatorWithoutCaption(t *testing.T) {
	data := sampleDataset()
	data.Title = ""
	out, err := NewCSVExporter(WithSeparator(';')).Render(data)
	require.NoError(t, err)
	assert.Equal(t, "ID Pengajuan;Nama Mahasiswa\n#SKPI-102;Siti Aminah\n", string(out))
}

func TestCSVExporterRejectsUnknownColumn(t *testing.T) {
	data := sampleDataset()
	data.Rows[0]["Cetak"] = "x"
	_, err := NewCSVExporter().Render(data)
	assert.ErrorContains(t, err, `column "Cetak" not in headers`)
}

func TestCSVExporterRequiresHeaders(t *testing.T) {
	_, err := NewCSVExporter().Render(Dataset{})
	assert.Error(t, err)
}

func TestPDFExporterRender(t *testing.T) {
	out, err := NewPDFExporter("SKPI FEBI").Render(sampleDataset())
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(out, []byte("%PDF-")))
}

func TestPDFExporterRequiresHeaders(t *testing.T) {
	_, err := NewPDFExporter("").Render(Dataset{Title: "empty"})
	assert.Error(t, err)
}

func TestFormatContentType(t *testing.T) {
	assert.Equal(t, "application/pdf", FormatPDF.ContentType())
	assert.Contains(t, FormatCSV.ContentType(), "text/csv")
	assert.Equal(t, "csv", FormatCSV.Extension())
}
