package handler_test

import (
	"net/http"
	"testing"

	"github.com/google/uuid"
	"github.com/straye-as/fieldservice-api/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEntryHandler_TimeOnOrderAndDispatch(t *testing.T) {
	h := setupHandlers(t)
	order := createServiceOrder(t, h, "Heat pump install")
	orderParams := map[string]string{"id": order.ID.String()}

	rr := call(t, h.dispatch.Create, http.MethodPost, "/", nil, orderParams)
	require.Equal(t, http.StatusCreated, rr.Code, rr.Body.String())
	dispatch := decode[domain.DispatchDTO](t, rr)
	dispatchParams := map[string]string{"id": order.ID.String(), "dispatchId": dispatch.ID.String()}

	entry := domain.CreateTimeEntryRequest{TechnicianID: "tech-1", WorkType: domain.WorkTypeWork, Duration: 60, HourlyRate: 100}

	rr = call(t, h.entries.AddTime, http.MethodPost, "/", entry, orderParams)
	require.Equal(t, http.StatusCreated, rr.Code, rr.Body.String())
	rr = call(t, h.entries.AddTime, http.MethodPost, "/", entry, dispatchParams)
	require.Equal(t, http.StatusCreated, rr.Code, rr.Body.String())
	onDispatch := decode[domain.TimeEntryDTO](t, rr)
	require.NotNil(t, onDispatch.DispatchID)
	assert.Equal(t, dispatch.ID, *onDispatch.DispatchID)

	t.Run("dispatch scope lists only its entries", func(t *testing.T) {
		rr := call(t, h.entries.ListTime, http.MethodGet, "/", nil, dispatchParams)
		require.Equal(t, http.StatusOK, rr.Code)
		assert.Len(t, decode[[]domain.TimeEntryDTO](t, rr), 1)
	})

	t.Run("order totals include both", func(t *testing.T) {
		rr := call(t, h.orders.GetByID, http.MethodGet, "/", nil, orderParams)
		require.Equal(t, http.StatusOK, rr.Code)
		got := decode[domain.ServiceOrderDTO](t, rr)
		assert.Equal(t, 200.0, got.Financials.LaborCost)
		assert.Equal(t, 120, got.ActualDuration)
	})

	t.Run("dispatch of another order", func(t *testing.T) {
		rr := call(t, h.entries.AddTime, http.MethodPost, "/", entry,
			map[string]string{"id": order.ID.String(), "dispatchId": uuid.NewString()})
		assert.Equal(t, http.StatusNotFound, rr.Code)
	})

	t.Run("invalid work type", func(t *testing.T) {
		bad := entry
		bad.WorkType = "napping"
		rr := call(t, h.entries.AddTime, http.MethodPost, "/", bad, orderParams)
		require.Equal(t, http.StatusBadRequest, rr.Code)
		assert.Contains(t, decode[domain.APIError](t, rr).Errors, "workType")
	})

	t.Run("delete", func(t *testing.T) {
		params := map[string]string{"id": onDispatch.ID.String()}
		assert.Equal(t, http.StatusNoContent, call(t, h.entries.DeleteTime, http.MethodDelete, "/", nil, params).Code)
		assert.Equal(t, http.StatusNotFound, call(t, h.entries.DeleteTime, http.MethodDelete, "/", nil, params).Code)
	})
}

func TestEntryHandler_ExpenseDecisions(t *testing.T) {
	h := setupHandlers(t)
	order := createServiceOrder(t, h, "Roof vent repair")
	orderParams := map[string]string{"id": order.ID.String()}

	rr := call(t, h.entries.AddExpense, http.MethodPost, "/", domain.CreateExpenseEntryRequest{
		TechnicianID: "tech-1",
		Type:         domain.ExpenseTypeMeal,
		Amount:       25,
	}, orderParams)
	require.Equal(t, http.StatusCreated, rr.Code, rr.Body.String())
	expense := decode[domain.ExpenseEntryDTO](t, rr)
	assert.Equal(t, domain.ExpenseStatusPending, expense.Status)
	params := map[string]string{"id": expense.ID.String()}

	rr = call(t, h.entries.ApproveExpense, http.MethodPost, "/", nil, params)
	require.Equal(t, http.StatusOK, rr.Code, rr.Body.String())
	assert.Equal(t, domain.ExpenseStatusApproved, decode[domain.ExpenseEntryDTO](t, rr).Status)

	rr = call(t, h.entries.RejectExpense, http.MethodPost, "/", domain.CancelRequest{Reason: "late"}, params)
	assert.Equal(t, http.StatusConflict, rr.Code)

	rr = call(t, h.entries.ListExpenses, http.MethodGet, "/?status=approved", nil, orderParams)
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Len(t, decode[[]domain.ExpenseEntryDTO](t, rr), 1)
}

func TestEntryHandler_MaterialFromCatalog(t *testing.T) {
	h := setupHandlers(t)
	order := createServiceOrder(t, h, "Valve swap")

	rr := call(t, h.articles.Create, http.MethodPost, "/articles", domain.CreateArticleRequest{
		SKU: "VLV-22", Name: "Ball valve 22mm", Type: domain.OfferItemTypeArticle, UnitPrice: 45.5,
	}, nil)
	require.Equal(t, http.StatusCreated, rr.Code, rr.Body.String())
	article := decode[domain.ArticleDTO](t, rr)

	rr = call(t, h.entries.AddMaterial, http.MethodPost, "/", domain.CreateMaterialUsageRequest{
		ArticleID: &article.ID,
		Quantity:  2,
	}, map[string]string{"id": order.ID.String()})
	require.Equal(t, http.StatusCreated, rr.Code, rr.Body.String())
	usage := decode[domain.MaterialUsageDTO](t, rr)
	assert.Equal(t, "Ball valve 22mm", usage.Name)
	assert.Equal(t, 91.0, usage.TotalCost)

	t.Run("duplicate SKU", func(t *testing.T) {
		rr := call(t, h.articles.Create, http.MethodPost, "/articles", domain.CreateArticleRequest{
			SKU: "VLV-22", Name: "Another valve", Type: domain.OfferItemTypeArticle,
		}, nil)
		assert.Equal(t, http.StatusConflict, rr.Code)
	})

	t.Run("article filter", func(t *testing.T) {
		rr := call(t, h.articles.List, http.MethodGet, "/articles?type=service", nil, nil)
		require.Equal(t, http.StatusOK, rr.Code)
		assert.EqualValues(t, 0, decode[domain.PaginatedResponse](t, rr).Total)

		rr = call(t, h.articles.List, http.MethodGet, "/articles?type=gadget", nil, nil)
		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})
}
