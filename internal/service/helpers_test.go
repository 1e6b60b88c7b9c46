package service_test

import (
	"context"
	"testing"

	"github.com/straye-as/fieldservice-api/internal/document"
	"github.com/straye-as/fieldservice-api/internal/domain"
	"github.com/straye-as/fieldservice-api/internal/pdfsettings"
	"github.com/straye-as/fieldservice-api/internal/repository"
	"github.com/straye-as/fieldservice-api/internal/service"
	"github.com/straye-as/fieldservice-api/internal/testutil"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type fixture struct {
	db         *gorm.DB
	numbers    *service.NumberSequenceService
	offers     *service.OfferService
	orders     *service.ServiceOrderService
	jobs       *service.JobService
	dispatches *service.DispatchService
	entries    *service.EntryService
	articles   *service.ArticleService
	settings   *service.SettingsService
	store      *pdfsettings.MemoryStore
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	db := testutil.SetupTestDB(t)
	log := zap.NewNop()
	numbers := service.NewNumberSequenceService(repository.NewNumberSequenceRepository(db), log)
	store := pdfsettings.NewMemoryStore()

	return &fixture{
		db:         db,
		numbers:    numbers,
		offers:     service.NewOfferService(db, numbers, log),
		orders:     service.NewServiceOrderService(db, numbers, log),
		jobs:       service.NewJobService(db, log),
		dispatches: service.NewDispatchService(db, numbers, log),
		entries:    service.NewEntryService(db, log),
		articles:   service.NewArticleService(db, log),
		settings:   service.NewSettingsService(store, pdfsettings.DefaultKey, log),
		store:      store,
	}
}

func offerRequest(title string, items ...domain.OfferItemRequest) *domain.CreateOfferRequest {
	return &domain.CreateOfferRequest{
		Title:       title,
		ContactName: "Fjord Bakery",
		Items:       items,
	}
}

func articleItem(name string, qty int, price float64) domain.OfferItemRequest {
	return domain.OfferItemRequest{Type: domain.OfferItemTypeArticle, ItemID: "ART-" + name, Name: name, Quantity: qty, UnitPrice: price}
}

func serviceItem(name string, qty int, price float64) domain.OfferItemRequest {
	return domain.OfferItemRequest{Type: domain.OfferItemTypeService, ItemID: "SRV-" + name, Name: name, Quantity: qty, UnitPrice: price}
}

// acceptedOffer creates an offer and walks it through send and accept
func (f *fixture) acceptedOffer(t *testing.T, items ...domain.OfferItemRequest) *domain.OfferDTO {
	t.Helper()
	ctx := context.Background()

	offer, err := f.offers.Create(ctx, offerRequest("Heat pump install", items...))
	require.NoError(t, err)
	_, err = f.offers.Send(ctx, offer.ID, &domain.SendOfferRequest{Recipient: "buyer@example.com"})
	require.NoError(t, err)
	accepted, err := f.offers.Accept(ctx, offer.ID)
	require.NoError(t, err)
	return accepted
}

func (f *fixture) serviceOrder(t *testing.T) *domain.ServiceOrderDTO {
	t.Helper()
	order, err := f.orders.Create(context.Background(), &domain.CreateServiceOrderRequest{
		Title:               "Annual maintenance",
		AssignedTechnicians: []string{"tech-1"},
	})
	require.NoError(t, err)
	return order
}

func (f *fixture) dispatch(t *testing.T, orderID domain.ServiceOrderDTO) *domain.DispatchDTO {
	t.Helper()
	d, err := f.dispatches.Create(context.Background(), orderID.ID, &domain.CreateDispatchRequest{})
	require.NoError(t, err)
	return d
}

// walkDispatch advances a dispatch until it reaches status
func (f *fixture) walkDispatch(t *testing.T, id domain.DispatchDTO, status domain.DispatchStatus) {
	t.Helper()
	ctx := context.Background()
	for i := 0; i < len(domain.DispatchSteps); i++ {
		current, err := f.dispatches.GetByID(ctx, id.ID)
		require.NoError(t, err)
		if current.Status == status {
			return
		}
		res, err := f.dispatches.Transition(ctx, id.ID, service.Advance())
		require.NoError(t, err)
		require.True(t, res.Changed, res.Reason)
	}
	t.Fatalf("dispatch never reached %s", status)
}

// fakeRenderer returns a small fixed payload instead of laying out a PDF
type fakeRenderer struct{}

func (fakeRenderer) Render(ctx context.Context, m *document.Model, _ pdfsettings.PdfSettings) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return []byte("%PDF-1.4 " + m.Title), nil
}
