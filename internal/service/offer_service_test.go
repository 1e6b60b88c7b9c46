package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/straye-as/fieldservice-api/internal/domain"
	"github.com/straye-as/fieldservice-api/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type failingDelivery struct{ calls int }

func (d *failingDelivery) DeliverOffer(context.Context, *domain.Offer, string, string) error {
	d.calls++
	return &domain.ExternalServiceError{Service: "mail", Op: "send", Err: errors.New("smtp down")}
}

// ============================================================================
// Create / Update
// ============================================================================

func TestOfferService_Create_DerivesTotals(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	req := offerRequest("Heat pump", articleItem("pump", 2, 150), serviceItem("install", 40, 150))
	req.Taxes = 200
	req.Discount = 100

	offer, err := f.offers.Create(ctx, req)
	require.NoError(t, err)

	assert.Equal(t, domain.OfferStatusDraft, offer.Status)
	assert.Equal(t, 6300.0, offer.Amount)
	assert.Equal(t, 6400.0, offer.TotalAmount)
	assert.True(t, service.ValidateNumber(offer.OfferNumber), offer.OfferNumber)
	require.Len(t, offer.Items, 2)
	assert.Equal(t, 300.0, offer.Items[0].TotalPrice)
	assert.Equal(t, 6000.0, offer.Items[1].TotalPrice)

	history, err := f.offers.History(ctx, offer.ID)
	require.NoError(t, err)
	require.Len(t, history, 1)
	assert.Equal(t, "draft", history[0].ToStatus)
}

func TestOfferService_Create_DiscountLargerThanSubtotal(t *testing.T) {
	f := newFixture(t)

	item := articleItem("filter", 1, 10)
	item.Discount = 50
	item.DiscountType = domain.DiscountTypeFixed

	offer, err := f.offers.Create(context.Background(), offerRequest("Filter", item))
	require.NoError(t, err)
	assert.Equal(t, -40.0, offer.Items[0].TotalPrice)
	assert.Equal(t, -40.0, offer.Amount)
}

func TestOfferService_Update_SentBecomesModified(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	offer, err := f.offers.Create(ctx, offerRequest("Heat pump", articleItem("pump", 1, 100)))
	require.NoError(t, err)
	_, err = f.offers.Send(ctx, offer.ID, &domain.SendOfferRequest{Recipient: "buyer@example.com"})
	require.NoError(t, err)

	updated, err := f.offers.Update(ctx, offer.ID, &domain.UpdateOfferRequest{
		Title: "Heat pump (revised)",
		Items: []domain.OfferItemRequest{articleItem("pump", 3, 100)},
	})
	require.NoError(t, err)

	assert.Equal(t, domain.OfferStatusModified, updated.Status)
	assert.Equal(t, 300.0, updated.Amount)
	require.Len(t, updated.Items, 1)
}

func TestOfferService_Update_AcceptedIsNotEditable(t *testing.T) {
	f := newFixture(t)
	offer := f.acceptedOffer(t, articleItem("pump", 1, 100))

	_, err := f.offers.Update(context.Background(), offer.ID, &domain.UpdateOfferRequest{Title: "changed"})
	assert.ErrorIs(t, err, service.ErrOfferNotEditable)
}

// ============================================================================
// Lifecycle
// ============================================================================

func TestOfferService_Send_DeliveryFailureLeavesDraft(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	delivery := &failingDelivery{}
	f.offers.SetDelivery(delivery)

	offer, err := f.offers.Create(ctx, offerRequest("Heat pump", articleItem("pump", 1, 100)))
	require.NoError(t, err)

	_, err = f.offers.Send(ctx, offer.ID, &domain.SendOfferRequest{Recipient: "buyer@example.com"})
	var extErr *domain.ExternalServiceError
	require.ErrorAs(t, err, &extErr)
	assert.Equal(t, 1, delivery.calls)

	reloaded, err := f.offers.GetByID(ctx, offer.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.OfferStatusDraft, reloaded.Status)
	assert.Empty(t, reloaded.SentAt)
}

func TestOfferService_StatusGraph(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	offer, err := f.offers.Create(ctx, offerRequest("Heat pump", articleItem("pump", 1, 100)))
	require.NoError(t, err)

	_, err = f.offers.Accept(ctx, offer.ID)
	assert.ErrorIs(t, err, service.ErrOfferInvalidTransition, "draft cannot be accepted")

	sent, err := f.offers.Send(ctx, offer.ID, &domain.SendOfferRequest{Recipient: "buyer@example.com"})
	require.NoError(t, err)
	assert.Equal(t, domain.OfferStatusSent, sent.Status)
	assert.NotEmpty(t, sent.SentAt)

	declined, err := f.offers.Decline(ctx, offer.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.OfferStatusDeclined, declined.Status)
	assert.NotEmpty(t, declined.RespondedAt)

	_, err = f.offers.Cancel(ctx, offer.ID, "too late")
	assert.ErrorIs(t, err, service.ErrOfferInvalidTransition)

	history, err := f.offers.History(ctx, offer.ID)
	require.NoError(t, err)
	assert.Len(t, history, 3)
}

func TestOfferService_Renew(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	source := f.acceptedOffer(t, articleItem("pump", 2, 150), serviceItem("install", 4, 100))

	renewed, err := f.offers.Renew(ctx, source.ID)
	require.NoError(t, err)

	assert.NotEqual(t, source.ID, renewed.ID)
	assert.NotEqual(t, source.OfferNumber, renewed.OfferNumber)
	assert.Equal(t, domain.OfferStatusDraft, renewed.Status)
	require.NotNil(t, renewed.RenewedFromID)
	assert.Equal(t, source.ID, *renewed.RenewedFromID)
	assert.Equal(t, source.Amount, renewed.Amount)
	assert.Len(t, renewed.Items, 2)
}

func TestOfferService_Delete(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	t.Run("draft offer is removed", func(t *testing.T) {
		offer, err := f.offers.Create(ctx, offerRequest("Scrap", articleItem("pump", 1, 100)))
		require.NoError(t, err)

		require.NoError(t, f.offers.Delete(ctx, offer.ID))
		_, err = f.offers.GetByID(ctx, offer.ID)
		assert.ErrorIs(t, err, service.ErrOfferNotFound)
	})

	t.Run("converted offer is kept", func(t *testing.T) {
		offer := f.acceptedOffer(t, articleItem("pump", 1, 100))
		_, err := f.offers.Convert(ctx, offer.ID, domain.ConversionRequest{ToSale: true})
		require.NoError(t, err)

		assert.ErrorIs(t, f.offers.Delete(ctx, offer.ID), service.ErrOfferConverted)
	})
}
