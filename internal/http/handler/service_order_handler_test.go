package handler_test

import (
	"net/http"
	"testing"

	"github.com/straye-as/fieldservice-api/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createServiceOrder(t *testing.T, h *handlers, title string) domain.ServiceOrderDTO {
	t.Helper()
	rr := call(t, h.orders.Create, http.MethodPost, "/service-orders", domain.CreateServiceOrderRequest{
		Title:               title,
		ContactName:         "Fjord Bakery",
		Priority:            domain.PriorityHigh,
		AssignedTechnicians: []string{"tech-1"},
	}, nil)
	require.Equal(t, http.StatusCreated, rr.Code, rr.Body.String())
	return decode[domain.ServiceOrderDTO](t, rr)
}

func TestServiceOrderHandler_Transition(t *testing.T) {
	h := setupHandlers(t)
	order := createServiceOrder(t, h, "Annual boiler check")
	id := order.ID.String()

	transition := func(action string, body interface{}) domain.TransitionResultDTO {
		rr := call(t, h.orders.Transition, http.MethodPost, "/", body, map[string]string{"id": id, "action": action})
		require.Equal(t, http.StatusOK, rr.Code, rr.Body.String())
		return decode[domain.TransitionResultDTO](t, rr)
	}

	t.Run("advance", func(t *testing.T) {
		result := transition("advance", nil)
		assert.True(t, result.Changed)
		assert.Equal(t, "open", result.From)
		assert.Equal(t, "ready_for_planning", result.To)
		assert.Equal(t, "planned", result.Window.Next.Status)
	})

	t.Run("jump outside the window is not an error", func(t *testing.T) {
		result := transition("jump", domain.JumpStatusRequest{Status: "closed"})
		assert.False(t, result.Changed)
		assert.NotEmpty(t, result.Reason)
		assert.Equal(t, "ready_for_planning", result.Window.Current.Status)
	})

	t.Run("retreat", func(t *testing.T) {
		result := transition("retreat", nil)
		assert.True(t, result.Changed)
		assert.Equal(t, "open", result.To)
		assert.True(t, result.Window.Previous.Empty)
	})

	t.Run("jump without a target", func(t *testing.T) {
		rr := call(t, h.orders.Transition, http.MethodPost, "/", domain.JumpStatusRequest{},
			map[string]string{"id": id, "action": "jump"})
		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})

	t.Run("unknown action", func(t *testing.T) {
		rr := call(t, h.orders.Transition, http.MethodPost, "/", nil, map[string]string{"id": id, "action": "skip"})
		assert.Equal(t, http.StatusNotFound, rr.Code)
	})

	t.Run("history", func(t *testing.T) {
		rr := call(t, h.orders.History, http.MethodGet, "/", nil, map[string]string{"id": id})
		require.Equal(t, http.StatusOK, rr.Code)
		assert.Len(t, decode[[]domain.StatusHistoryDTO](t, rr), 2)
	})
}

func TestServiceOrderHandler_ListAndWindow(t *testing.T) {
	h := setupHandlers(t)
	order := createServiceOrder(t, h, "Filter replacement")
	createServiceOrder(t, h, "Leak inspection")

	rr := call(t, h.orders.List, http.MethodGet, "/service-orders?search=Filter", nil, nil)
	require.Equal(t, http.StatusOK, rr.Code)
	assert.EqualValues(t, 1, decode[domain.PaginatedResponse](t, rr).Total)

	rr = call(t, h.orders.StatusWindow, http.MethodGet, "/", nil, map[string]string{"id": order.ID.String()})
	require.Equal(t, http.StatusOK, rr.Code)
	window := decode[domain.StatusWindowDTO](t, rr)
	assert.Equal(t, "open", window.Current.Status)
	assert.Equal(t, 0, window.Current.Index)
}

func TestServiceOrderHandler_UpdateValidation(t *testing.T) {
	h := setupHandlers(t)
	order := createServiceOrder(t, h, "Pump service")

	rr := call(t, h.orders.Update, http.MethodPut, "/", domain.UpdateServiceOrderRequest{Title: "Pump service"},
		map[string]string{"id": order.ID.String()})
	require.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Contains(t, decode[domain.APIError](t, rr).Errors, "priority")
}

func TestJobAndDispatchHandlers(t *testing.T) {
	h := setupHandlers(t)
	order := createServiceOrder(t, h, "Ventilation overhaul")
	orderParams := map[string]string{"id": order.ID.String()}

	rr := call(t, h.jobs.Create, http.MethodPost, "/", domain.CreateJobRequest{Title: "Replace fan"}, orderParams)
	require.Equal(t, http.StatusCreated, rr.Code, rr.Body.String())
	job := decode[domain.JobDTO](t, rr)

	rr = call(t, h.jobs.ListByServiceOrder, http.MethodGet, "/?status=unscheduled", nil, orderParams)
	require.Equal(t, http.StatusOK, rr.Code)

	rr = call(t, h.dispatch.Create, http.MethodPost, "/", domain.CreateDispatchRequest{JobID: &job.ID}, orderParams)
	require.Equal(t, http.StatusCreated, rr.Code, rr.Body.String())
	dispatch := decode[domain.DispatchDTO](t, rr)
	dispatchParams := map[string]string{"id": dispatch.ID.String()}
	assert.Equal(t, domain.PriorityHigh, dispatch.Priority)

	rr = call(t, h.dispatch.Cancel, http.MethodPost, "/", domain.CancelRequest{Reason: "customer away"}, dispatchParams)
	require.Equal(t, http.StatusOK, rr.Code, rr.Body.String())
	assert.Equal(t, "cancelled", decode[domain.TransitionResultDTO](t, rr).To)

	t.Run("cancelled dispatch has no flow", func(t *testing.T) {
		rr := call(t, h.dispatch.Transition, http.MethodPost, "/", nil,
			map[string]string{"id": dispatch.ID.String(), "action": "advance"})
		require.Equal(t, http.StatusOK, rr.Code)
		assert.False(t, decode[domain.TransitionResultDTO](t, rr).Changed)
	})

	t.Run("cancelled dispatch rejects edits", func(t *testing.T) {
		rr := call(t, h.dispatch.Update, http.MethodPut, "/", domain.UpdateDispatchRequest{Priority: domain.PriorityLow}, dispatchParams)
		assert.Equal(t, http.StatusConflict, rr.Code)
	})

	t.Run("filter by service order", func(t *testing.T) {
		rr := call(t, h.dispatch.List, http.MethodGet, "/dispatches?serviceOrderId="+order.ID.String(), nil, nil)
		require.Equal(t, http.StatusOK, rr.Code)
		assert.EqualValues(t, 1, decode[domain.PaginatedResponse](t, rr).Total)
	})
}
