package document_test

import (
	"bytes"
	"context"
	"testing"

	"github.com/straye-as/fieldservice-api/internal/document"
	"github.com/straye-as/fieldservice-api/internal/domain"
	"github.com/straye-as/fieldservice-api/internal/pdfsettings"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func TestPDFRenderer_Render(t *testing.T) {
	renderer := document.NewPDFRenderer()

	tests := []struct {
		name   string
		modify func(*pdfsettings.PdfSettings)
	}{
		{"defaults", func(*pdfsettings.PdfSettings) {}},
		{"landscape letter", func(s *pdfsettings.PdfSettings) {
			s.Document.Orientation = pdfsettings.OrientationLandscape
			s.Document.PaperSize = pdfsettings.PaperSizeLetter
		}},
		{"everything hidden", func(s *pdfsettings.PdfSettings) { s.ShowElements = pdfsettings.ShowElements{} }},
		{"signature and watermark", func(s *pdfsettings.PdfSettings) {
			s.ShowElements.Signature = true
			s.Advanced.Watermark = true
			s.Table.HeaderStyle = pdfsettings.HeaderStyleOutlined
			s.FontFamily = "courier"
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := pdfsettings.Default()
			tt.modify(&s)

			model := document.BuildOfferDocument(sampleOffer(t), s, issued)
			out, err := renderer.Render(context.Background(), model, s)
			require.NoError(t, err)
			assert.True(t, bytes.HasPrefix(out, []byte("%PDF")))
		})
	}
}

func TestPDFRenderer_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	s := pdfsettings.Default()
	_, err := document.NewPDFRenderer().Render(ctx, document.BuildOfferDocument(sampleOffer(t), s, issued), s)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestExportOffers(t *testing.T) {
	offer := sampleOffer(t)
	out, err := document.ExportOffers([]domain.Offer{*offer, *offer}, pdfsettings.Default())
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(out))
	require.NoError(t, err)
	defer f.Close()

	title, err := f.GetCellValue("Offers", "B4")
	require.NoError(t, err)
	assert.Equal(t, "Heat pump installation", title)

	label, err := f.GetCellValue("Offers", "E6")
	require.NoError(t, err)
	assert.Equal(t, "Total", label)

	total, err := f.GetCellValue("Offers", "I6", excelize.Options{RawCellValue: true})
	require.NoError(t, err)
	assert.Equal(t, "11600", total)
}

func TestExportTimeSheet(t *testing.T) {
	entries := []domain.TimeEntry{
		{TechnicianID: "tech-1", WorkType: domain.WorkTypeWork, Duration: 150, Billable: true, HourlyRate: 85},
		{TechnicianID: "tech-2", WorkType: domain.WorkTypeTravel, Duration: 60, Billable: false, HourlyRate: 100},
	}

	out, err := document.ExportTimeSheet("SO-2026-0003", entries, pdfsettings.Default())
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(out))
	require.NoError(t, err)
	defer f.Close()

	v, err := f.GetCellValue("Time sheet", "A1")
	require.NoError(t, err)
	assert.Equal(t, "SO-2026-0003", v)

	v, err = f.GetCellValue("Time sheet", "E7")
	require.NoError(t, err)
	assert.Equal(t, "3h 30m", v)

	v, err = f.GetCellValue("Time sheet", "H8", excelize.Options{RawCellValue: true})
	require.NoError(t, err)
	assert.Equal(t, "212.5", v)
}

func TestExportTimeSheet_InvalidEntry(t *testing.T) {
	_, err := document.ExportTimeSheet("x", []domain.TimeEntry{{Duration: -1}}, pdfsettings.Default())
	var verr *domain.ValidationError
	assert.ErrorAs(t, err, &verr)
}
