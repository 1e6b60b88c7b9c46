package document_test

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/straye-as/fieldservice-api/internal/document"
	"github.com/straye-as/fieldservice-api/internal/domain"
	"github.com/straye-as/fieldservice-api/internal/pdfsettings"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var issued = time.Date(2026, 5, 4, 9, 0, 0, 0, time.UTC)

func sampleOffer(t *testing.T) *domain.Offer {
	t.Helper()
	offer := &domain.Offer{
		OfferNumber: "OFF-2026-0007",
		Title:       "Heat pump installation",
		ContactName: "Fjord Bakery",
		Taxes:       200,
		Discount:    100,
		Notes:       "Access through the back door",
		Status:      domain.OfferStatusDraft,
		Items: []domain.OfferItem{
			{Type: domain.OfferItemTypeArticle, ItemID: "HP-200", Name: "Heat pump", Description: "Air to water", Quantity: 2, UnitPrice: 150},
			{Type: domain.OfferItemTypeService, ItemID: "SRV-INST", Name: "Installation", Quantity: 40, UnitPrice: 150, Discount: 10, DiscountType: domain.DiscountTypePercentage},
		},
	}
	offer.ID = uuid.New()
	require.NoError(t, offer.Recalculate())
	return offer
}

func TestBuildOfferDocument_AllSections(t *testing.T) {
	s := pdfsettings.Default()
	s.ShowElements.Signature = true

	m := document.BuildOfferDocument(sampleOffer(t), s, issued)

	assert.Equal(t, "OFF-2026-0007.pdf", m.Filename)
	require.NotNil(t, m.Header)
	assert.Equal(t, "Offer OFF-2026-0007", m.Header.Title)
	require.NotNil(t, m.Company)
	require.NotNil(t, m.Customer)
	assert.Equal(t, "Fjord Bakery", m.Customer.Name)
	require.NotNil(t, m.Info)
	assert.Contains(t, m.Info.Fields, document.Field{Label: "Date", Value: "04.05.2026"})
	require.NotNil(t, m.Items)
	require.Len(t, m.Items.Rows, 2)
	require.NotNil(t, m.Summary)
	assert.Equal(t, document.SummaryLine{Label: "Total", Value: "€5,800.00", Emphasis: true}, m.Summary.Lines[len(m.Summary.Lines)-1])
	require.NotNil(t, m.Notes)
	require.NotNil(t, m.Terms)
	require.NotNil(t, m.Signature)
	require.NotNil(t, m.Footer)
	assert.True(t, m.PageNumbers)
	assert.Empty(t, m.Watermark)
}

func TestBuildOfferDocument_HiddenSectionsAreAbsent(t *testing.T) {
	s := pdfsettings.Default()
	s.ShowElements = pdfsettings.ShowElements{}

	m := document.BuildOfferDocument(sampleOffer(t), s, issued)

	assert.Nil(t, m.Header)
	assert.Nil(t, m.Company)
	assert.Nil(t, m.Customer)
	assert.Nil(t, m.Info)
	assert.Nil(t, m.Items)
	assert.Nil(t, m.Summary)
	assert.Nil(t, m.Notes)
	assert.Nil(t, m.Terms)
	assert.Nil(t, m.Signature)
	assert.Nil(t, m.Footer)
	assert.False(t, m.PageNumbers)
}

func TestBuildOfferDocument_LogoNeedsHeaderAndLogoFlag(t *testing.T) {
	s := pdfsettings.Default()
	s.Company.Logo = "https://cdn.example.com/logo.png"

	m := document.BuildOfferDocument(sampleOffer(t), s, issued)
	assert.Equal(t, s.Company.Logo, m.Header.Logo)

	s.ShowElements.Logo = false
	m = document.BuildOfferDocument(sampleOffer(t), s, issued)
	assert.Empty(t, m.Header.Logo)
}

func columnKeys(tbl *document.Table) []string {
	keys := make([]string, 0, len(tbl.Columns))
	for _, c := range tbl.Columns {
		keys = append(keys, c.Key)
	}
	return keys
}

func TestBuildOfferDocument_TableColumnsFollowFlags(t *testing.T) {
	s := pdfsettings.Default()
	m := document.BuildOfferDocument(sampleOffer(t), s, issued)
	assert.Equal(t, []string{"code", "name", "description", "quantity", "unitPrice", "discount", "total"}, columnKeys(m.Items))
	assert.Equal(t, []string{"HP-200", "Heat pump", "Air to water", "2", "€150.00", "", "€300.00"}, m.Items.Rows[0])
	assert.Equal(t, "10%", m.Items.Rows[1][5])

	s.Table = pdfsettings.TableOptions{ShowItemType: true}
	m = document.BuildOfferDocument(sampleOffer(t), s, issued)
	assert.Equal(t, []string{"type", "name", "total"}, columnKeys(m.Items))
	assert.Equal(t, []string{"service", "Installation", "€5,400.00"}, m.Items.Rows[1])

	for _, opts := range []pdfsettings.TableOptions{
		pdfsettings.Default().Table,
		{},
		{ShowItemCodes: true, ShowDescriptions: true, ShowQuantity: true, ShowUnitPrice: true, ShowDiscount: true, ShowItemType: true},
	} {
		s.Table = opts
		m = document.BuildOfferDocument(sampleOffer(t), s, issued)
		width := 0
		for _, c := range m.Items.Columns {
			assert.Positive(t, c.Width, c.Key)
			width += c.Width
		}
		assert.Equal(t, document.GridSize, width)
	}
}

func TestBuildOfferDocument_Watermark(t *testing.T) {
	s := pdfsettings.Default()
	s.Advanced.Watermark = true
	m := document.BuildOfferDocument(sampleOffer(t), s, issued)
	assert.Equal(t, "DRAFT", m.Watermark)
}

func TestBuildServiceOrderDocument(t *testing.T) {
	order := &domain.ServiceOrder{
		OrderNumber: "SO-2026-0003",
		Title:       "Annual service",
		ContactName: "Fjord Bakery",
		Status:      domain.ServiceOrderStatusPlanned,
		Priority:    domain.PriorityHigh,
		Financials:  domain.Financials{LaborCost: 212.5, MaterialCost: 60, ActualCost: 272.5},
	}
	order.ID = uuid.New()
	articleID := uuid.New()

	m, err := document.BuildServiceOrderDocument(document.ServiceOrderReport{
		Order: order,
		Time: []domain.TimeEntry{
			{WorkType: domain.WorkTypeWork, Duration: 150, Billable: true, HourlyRate: 85},
			{WorkType: domain.WorkTypeTravel, Duration: 60, Billable: false, HourlyRate: 100},
		},
		Materials: []domain.MaterialUsage{
			{ArticleID: &articleID, Name: "Filter", Quantity: 2, UnitPrice: 30, TotalCost: 60,
				Replacing: &domain.MaterialReplacement{OldArticleModel: "F-100", OldArticleStatus: domain.OldArticleStatusBroken}},
		},
	}, pdfsettings.Default(), issued)
	require.NoError(t, err)

	assert.Equal(t, "SO-2026-0003.pdf", m.Filename)
	assert.Equal(t, domain.EntityTypeServiceOrder, m.Kind)
	assert.Contains(t, m.Info.Fields, document.Field{Label: "Time spent", Value: "3h 30m"})
	require.Len(t, m.Items.Rows, 3)
	assert.Contains(t, m.Items.Rows[0], "Replaces F-100 (broken)")
	assert.Contains(t, m.Items.Rows[1], "Labor: work")
	assert.Contains(t, m.Items.Rows[1], "€212.50")
	assert.Contains(t, m.Items.Rows[2], "Labor: travel")
	assert.Contains(t, m.Items.Rows[2], "€0.00")
	assert.Contains(t, m.Summary.Lines, document.SummaryLine{Label: "Total cost", Value: "€272.50", Emphasis: true})
}
