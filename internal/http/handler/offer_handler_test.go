package handler_test

import (
	"net/http"
	"testing"

	"github.com/google/uuid"
	"github.com/straye-as/fieldservice-api/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newOfferBody(title string) domain.CreateOfferRequest {
	return domain.CreateOfferRequest{
		Title:       title,
		ContactName: "Fjord Bakery",
		Items: []domain.OfferItemRequest{
			{Type: domain.OfferItemTypeArticle, ItemID: "HP-200", Name: "Heat pump", Quantity: 1, UnitPrice: 1200},
			{Type: domain.OfferItemTypeService, ItemID: "SRV-INST", Name: "Installation", Quantity: 4, UnitPrice: 150},
		},
	}
}

func createOffer(t *testing.T, h *handlers, title string) domain.OfferDTO {
	t.Helper()
	rr := call(t, h.offers.Create, http.MethodPost, "/offers", newOfferBody(title), nil)
	require.Equal(t, http.StatusCreated, rr.Code, rr.Body.String())
	return decode[domain.OfferDTO](t, rr)
}

func TestOfferHandler_Create(t *testing.T) {
	h := setupHandlers(t)

	t.Run("valid offer", func(t *testing.T) {
		rr := call(t, h.offers.Create, http.MethodPost, "/offers", newOfferBody("Heat pump install"), nil)

		require.Equal(t, http.StatusCreated, rr.Code)
		offer := decode[domain.OfferDTO](t, rr)
		assert.Equal(t, domain.OfferStatusDraft, offer.Status)
		assert.Equal(t, 1800.0, offer.Amount)
		assert.Equal(t, "/api/v1/offers/"+offer.ID.String(), rr.Header().Get("Location"))
	})

	t.Run("missing title", func(t *testing.T) {
		rr := call(t, h.offers.Create, http.MethodPost, "/offers", domain.CreateOfferRequest{}, nil)

		require.Equal(t, http.StatusBadRequest, rr.Code)
		apiErr := decode[domain.APIError](t, rr)
		assert.Equal(t, domain.ErrorTypeValidation, apiErr.Type)
		assert.Contains(t, apiErr.Errors, "title")
	})

	t.Run("malformed JSON", func(t *testing.T) {
		rr := call(t, h.offers.Create, http.MethodPost, "/offers", "{not json", nil)
		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})
}

func TestOfferHandler_GetByID(t *testing.T) {
	h := setupHandlers(t)
	offer := createOffer(t, h, "Boiler service")

	t.Run("existing", func(t *testing.T) {
		rr := call(t, h.offers.GetByID, http.MethodGet, "/", nil, map[string]string{"id": offer.ID.String()})
		require.Equal(t, http.StatusOK, rr.Code)
		assert.Equal(t, offer.ID, decode[domain.OfferDTO](t, rr).ID)
	})

	t.Run("unknown", func(t *testing.T) {
		rr := call(t, h.offers.GetByID, http.MethodGet, "/", nil, map[string]string{"id": uuid.NewString()})
		assert.Equal(t, http.StatusNotFound, rr.Code)
	})

	t.Run("invalid id", func(t *testing.T) {
		rr := call(t, h.offers.GetByID, http.MethodGet, "/", nil, map[string]string{"id": "invalid-id"})
		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})
}

func TestOfferHandler_List(t *testing.T) {
	h := setupHandlers(t)
	createOffer(t, h, "First")
	second := createOffer(t, h, "Second")

	rr := call(t, h.offers.Send, http.MethodPost, "/", domain.SendOfferRequest{Recipient: "buyer@example.com"},
		map[string]string{"id": second.ID.String()})
	require.Equal(t, http.StatusOK, rr.Code, rr.Body.String())

	rr = call(t, h.offers.List, http.MethodGet, "/offers?status=sent", nil, nil)
	require.Equal(t, http.StatusOK, rr.Code)
	page := decode[domain.PaginatedResponse](t, rr)
	assert.EqualValues(t, 1, page.Total)

	rr = call(t, h.offers.List, http.MethodGet, "/offers?contactId=nope", nil, nil)
	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestOfferHandler_LifecycleAndConversion(t *testing.T) {
	h := setupHandlers(t)
	offer := createOffer(t, h, "Heat pump install")
	params := map[string]string{"id": offer.ID.String()}

	t.Run("convert before acceptance is rejected", func(t *testing.T) {
		rr := call(t, h.offers.Convert, http.MethodPost, "/", domain.ConversionRequest{ToSale: true}, params)

		require.Equal(t, http.StatusUnprocessableEntity, rr.Code)
		apiErr := decode[domain.APIError](t, rr)
		assert.Equal(t, domain.ErrorTypeConversion, apiErr.Type)
		assert.Equal(t, string(domain.ConversionNotAccepted), apiErr.Errors["kind"])
	})

	t.Run("accept a draft conflicts", func(t *testing.T) {
		rr := call(t, h.offers.Accept, http.MethodPost, "/", nil, params)
		assert.Equal(t, http.StatusConflict, rr.Code)
	})

	rr := call(t, h.offers.Send, http.MethodPost, "/", domain.SendOfferRequest{Recipient: "buyer@example.com"}, params)
	require.Equal(t, http.StatusOK, rr.Code, rr.Body.String())
	rr = call(t, h.offers.Accept, http.MethodPost, "/", nil, params)
	require.Equal(t, http.StatusOK, rr.Code, rr.Body.String())
	assert.Equal(t, domain.OfferStatusAccepted, decode[domain.OfferDTO](t, rr).Status)

	t.Run("convert to both targets", func(t *testing.T) {
		rr := call(t, h.offers.Convert, http.MethodPost, "/",
			domain.ConversionRequest{ToSale: true, ToServiceOrder: true}, params)

		require.Equal(t, http.StatusOK, rr.Code, rr.Body.String())
		result := decode[domain.ConversionResultDTO](t, rr)
		require.NotNil(t, result.SaleID)
		require.NotNil(t, result.ServiceOrderID)

		rr = call(t, h.offers.GetSale, http.MethodGet, "/", nil, map[string]string{"id": result.SaleID.String()})
		require.Equal(t, http.StatusOK, rr.Code)
		assert.Equal(t, offer.ID, decode[domain.SaleDTO](t, rr).OfferID)
	})

	t.Run("history records every step", func(t *testing.T) {
		rr := call(t, h.offers.History, http.MethodGet, "/", nil, params)
		require.Equal(t, http.StatusOK, rr.Code)
		history := decode[[]domain.StatusHistoryDTO](t, rr)
		assert.GreaterOrEqual(t, len(history), 2)
	})
}

func TestOfferHandler_Delete(t *testing.T) {
	h := setupHandlers(t)
	offer := createOffer(t, h, "Short lived")
	params := map[string]string{"id": offer.ID.String()}

	rr := call(t, h.offers.Delete, http.MethodDelete, "/", nil, params)
	assert.Equal(t, http.StatusNoContent, rr.Code)

	rr = call(t, h.offers.Delete, http.MethodDelete, "/", nil, params)
	assert.Equal(t, http.StatusNotFound, rr.Code)
}
