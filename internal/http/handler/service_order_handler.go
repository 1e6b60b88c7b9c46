package handler

import (
	"net/http"

	"github.com/straye-as/fieldservice-api/internal/domain"
	"github.com/straye-as/fieldservice-api/internal/repository"
	"github.com/straye-as/fieldservice-api/internal/service"
	"go.uber.org/zap"
)

type ServiceOrderHandler struct {
	orderService *service.ServiceOrderService
	logger       *zap.Logger
}

func NewServiceOrderHandler(orderService *service.ServiceOrderService, logger *zap.Logger) *ServiceOrderHandler {
	return &ServiceOrderHandler{orderService: orderService, logger: logger}
}

// @Summary List service orders
// @Tags ServiceOrders
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param pageSize query int false "Page size" default(20)
// @Param status query string false "Filter by status" Enums(open, ready_for_planning, planned, technically_completed, invoiced, closed)
// @Param priority query string false "Filter by priority" Enums(low, medium, high, urgent)
// @Param technician query string false "Filter by assigned technician"
// @Param offerId query string false "Filter by source offer ID"
// @Param search query string false "Search in title and number"
// @Param sortBy query string false "Sort order" Enums(created_desc, created_asc, updated_desc, title_asc, title_desc, amount_desc, amount_asc, number_asc, number_desc) default(created_desc)
// @Success 200 {object} domain.PaginatedResponse
// @Failure 400 {object} domain.APIError
// @Router /service-orders [get]
func (h *ServiceOrderHandler) List(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	filters := &repository.ServiceOrderFilters{
		Technician: optionalStringQuery(r, "technician"),
		Search:     q.Get("search"),
	}
	if s := q.Get("status"); s != "" {
		status := domain.ServiceOrderStatus(s)
		filters.Status = &status
	}
	if p := q.Get("priority"); p != "" {
		priority := domain.Priority(p)
		filters.Priority = &priority
	}
	offerID, ok := optionalUUIDQuery(w, r, "offerId")
	if !ok {
		return
	}
	filters.OfferID = offerID

	page, pageSize := parsePagination(r)
	result, err := h.orderService.List(r.Context(), page, pageSize, filters, parseSort(r))
	if err != nil {
		respondServiceError(w, h.logger, err, "Failed to list service orders")
		return
	}
	respondJSON(w, http.StatusOK, result)
}

// @Summary Create service order
// @Tags ServiceOrders
// @Accept json
// @Produce json
// @Param request body domain.CreateServiceOrderRequest true "Service order data"
// @Success 201 {object} domain.ServiceOrderDTO
// @Failure 400 {object} domain.APIError
// @Router /service-orders [post]
func (h *ServiceOrderHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req domain.CreateServiceOrderRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	order, err := h.orderService.Create(r.Context(), &req)
	if err != nil {
		respondServiceError(w, h.logger, err, "Failed to create service order")
		return
	}
	w.Header().Set("Location", "/api/v1/service-orders/"+order.ID.String())
	respondJSON(w, http.StatusCreated, order)
}

// @Summary Get service order
// @Tags ServiceOrders
// @Produce json
// @Param id path string true "Service order ID"
// @Success 200 {object} domain.ServiceOrderDTO
// @Failure 404 {object} domain.APIError
// @Router /service-orders/{id} [get]
func (h *ServiceOrderHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	id, ok := parseIDParam(w, r, "id")
	if !ok {
		return
	}

	order, err := h.orderService.GetByID(r.Context(), id)
	if err != nil {
		respondServiceError(w, h.logger, err, "Failed to get service order")
		return
	}
	respondJSON(w, http.StatusOK, order)
}

// @Summary Update service order
// @Tags ServiceOrders
// @Accept json
// @Produce json
// @Param id path string true "Service order ID"
// @Param request body domain.UpdateServiceOrderRequest true "Service order data"
// @Success 200 {object} domain.ServiceOrderDTO
// @Failure 400 {object} domain.APIError
// @Failure 404 {object} domain.APIError
// @Router /service-orders/{id} [put]
func (h *ServiceOrderHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := parseIDParam(w, r, "id")
	if !ok {
		return
	}
	var req domain.UpdateServiceOrderRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	order, err := h.orderService.Update(r.Context(), id, &req)
	if err != nil {
		respondServiceError(w, h.logger, err, "Failed to update service order")
		return
	}
	respondJSON(w, http.StatusOK, order)
}

// @Summary Delete service order
// @Tags ServiceOrders
// @Param id path string true "Service order ID"
// @Success 204
// @Failure 404 {object} domain.APIError
// @Router /service-orders/{id} [delete]
func (h *ServiceOrderHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := parseIDParam(w, r, "id")
	if !ok {
		return
	}

	if err := h.orderService.Delete(r.Context(), id); err != nil {
		respondServiceError(w, h.logger, err, "Failed to delete service order")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// @Summary Move service order status
// @Description Moves the order one step. A move outside the allowed window answers 200 with changed=false and the reason.
// @Tags ServiceOrders
// @Accept json
// @Produce json
// @Param id path string true "Service order ID"
// @Param action path string true "Transition" Enums(advance, retreat, jump)
// @Param request body domain.JumpStatusRequest false "Target status, only read for jump"
// @Success 200 {object} domain.TransitionResultDTO
// @Failure 400 {object} domain.APIError
// @Failure 404 {object} domain.APIError
// @Router /service-orders/{id}/status/{action} [post]
func (h *ServiceOrderHandler) Transition(w http.ResponseWriter, r *http.Request) {
	id, ok := parseIDParam(w, r, "id")
	if !ok {
		return
	}
	req, ok := transitionFromAction(w, r)
	if !ok {
		return
	}

	result, err := h.orderService.Transition(r.Context(), id, req)
	if err != nil {
		respondServiceError(w, h.logger, err, "Failed to change service order status")
		return
	}
	respondJSON(w, http.StatusOK, result)
}

// @Summary Service order status window
// @Tags ServiceOrders
// @Produce json
// @Param id path string true "Service order ID"
// @Success 200 {object} domain.StatusWindowDTO
// @Failure 404 {object} domain.APIError
// @Router /service-orders/{id}/status [get]
func (h *ServiceOrderHandler) StatusWindow(w http.ResponseWriter, r *http.Request) {
	id, ok := parseIDParam(w, r, "id")
	if !ok {
		return
	}

	window, err := h.orderService.StatusWindow(r.Context(), id)
	if err != nil {
		respondServiceError(w, h.logger, err, "Failed to get status window")
		return
	}
	respondJSON(w, http.StatusOK, window)
}

// @Summary Service order status history
// @Tags ServiceOrders
// @Produce json
// @Param id path string true "Service order ID"
// @Success 200 {array} domain.StatusHistoryDTO
// @Failure 404 {object} domain.APIError
// @Router /service-orders/{id}/history [get]
func (h *ServiceOrderHandler) History(w http.ResponseWriter, r *http.Request) {
	id, ok := parseIDParam(w, r, "id")
	if !ok {
		return
	}

	history, err := h.orderService.History(r.Context(), id)
	if err != nil {
		respondServiceError(w, h.logger, err, "Failed to get service order history")
		return
	}
	respondJSON(w, http.StatusOK, history)
}

// @Summary Recalculate service order costs
// @Description Rebuilds the derived costs from the recorded entries.
// @Tags ServiceOrders
// @Produce json
// @Param id path string true "Service order ID"
// @Success 200 {object} domain.ServiceOrderDTO
// @Failure 404 {object} domain.APIError
// @Router /service-orders/{id}/recalculate [post]
func (h *ServiceOrderHandler) Recalculate(w http.ResponseWriter, r *http.Request) {
	id, ok := parseIDParam(w, r, "id")
	if !ok {
		return
	}

	order, err := h.orderService.RecalculateFinancials(r.Context(), id)
	if err != nil {
		respondServiceError(w, h.logger, err, "Failed to recalculate financials")
		return
	}
	respondJSON(w, http.StatusOK, order)
}

// @Summary Service order time summary
// @Description Totals recorded time, optionally for one dispatch.
// @Tags ServiceOrders
// @Produce json
// @Param id path string true "Service order ID"
// @Param dispatchId query string false "Limit to one dispatch"
// @Success 200 {object} domain.TimeSummaryDTO
// @Failure 400 {object} domain.APIError
// @Failure 404 {object} domain.APIError
// @Router /service-orders/{id}/time-summary [get]
func (h *ServiceOrderHandler) TimeSummary(w http.ResponseWriter, r *http.Request) {
	id, ok := parseIDParam(w, r, "id")
	if !ok {
		return
	}
	dispatchID, ok := optionalUUIDQuery(w, r, "dispatchId")
	if !ok {
		return
	}

	summary, err := h.orderService.TimeSummary(r.Context(), id, dispatchID)
	if err != nil {
		respondServiceError(w, h.logger, err, "Failed to summarize time")
		return
	}
	respondJSON(w, http.StatusOK, summary)
}
