package handler

import (
	"net/http"

	"github.com/straye-as/fieldservice-api/internal/domain"
	"github.com/straye-as/fieldservice-api/internal/repository"
	"github.com/straye-as/fieldservice-api/internal/service"
	"go.uber.org/zap"
)

type DispatchHandler struct {
	dispatchService *service.DispatchService
	logger          *zap.Logger
}

func NewDispatchHandler(dispatchService *service.DispatchService, logger *zap.Logger) *DispatchHandler {
	return &DispatchHandler{dispatchService: dispatchService, logger: logger}
}

// @Summary List dispatches
// @Tags Dispatches
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param pageSize query int false "Page size" default(20)
// @Param serviceOrderId query string false "Filter by service order ID"
// @Param jobId query string false "Filter by job ID"
// @Param status query string false "Filter by status" Enums(pending, assigned, acknowledged, en_route, on_site, in_progress, completed, cancelled)
// @Param priority query string false "Filter by priority" Enums(low, medium, high, urgent)
// @Param technician query string false "Filter by assigned technician"
// @Param sortBy query string false "Sort order" Enums(created_desc, created_asc, updated_desc, title_asc, title_desc, amount_desc, amount_asc, number_asc, number_desc) default(created_desc)
// @Success 200 {object} domain.PaginatedResponse
// @Failure 400 {object} domain.APIError
// @Router /dispatches [get]
func (h *DispatchHandler) List(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	filters := &repository.DispatchFilters{Technician: optionalStringQuery(r, "technician")}

	var ok bool
	if filters.ServiceOrderID, ok = optionalUUIDQuery(w, r, "serviceOrderId"); !ok {
		return
	}
	if filters.JobID, ok = optionalUUIDQuery(w, r, "jobId"); !ok {
		return
	}
	if s := q.Get("status"); s != "" {
		status := domain.DispatchStatus(s)
		filters.Status = &status
	}
	if p := q.Get("priority"); p != "" {
		priority := domain.Priority(p)
		filters.Priority = &priority
	}

	page, pageSize := parsePagination(r)
	result, err := h.dispatchService.List(r.Context(), page, pageSize, filters, parseSort(r))
	if err != nil {
		respondServiceError(w, h.logger, err, "Failed to list dispatches")
		return
	}
	respondJSON(w, http.StatusOK, result)
}

// @Summary Create dispatch
// @Description Priority and technicians default to the service order's.
// @Tags Dispatches
// @Accept json
// @Produce json
// @Param id path string true "Service order ID"
// @Param request body domain.CreateDispatchRequest true "Dispatch data"
// @Success 201 {object} domain.DispatchDTO
// @Failure 400 {object} domain.APIError
// @Failure 404 {object} domain.APIError
// @Router /service-orders/{id}/dispatches [post]
func (h *DispatchHandler) Create(w http.ResponseWriter, r *http.Request) {
	orderID, ok := parseIDParam(w, r, "id")
	if !ok {
		return
	}
	var req domain.CreateDispatchRequest
	if !decodeOptionalJSON(w, r, &req) {
		return
	}

	dispatch, err := h.dispatchService.Create(r.Context(), orderID, &req)
	if err != nil {
		respondServiceError(w, h.logger, err, "Failed to create dispatch")
		return
	}
	w.Header().Set("Location", "/api/v1/dispatches/"+dispatch.ID.String())
	respondJSON(w, http.StatusCreated, dispatch)
}

// @Summary Get dispatch
// @Tags Dispatches
// @Produce json
// @Param id path string true "Dispatch ID"
// @Success 200 {object} domain.DispatchDTO
// @Failure 404 {object} domain.APIError
// @Router /dispatches/{id} [get]
func (h *DispatchHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	id, ok := parseIDParam(w, r, "id")
	if !ok {
		return
	}

	dispatch, err := h.dispatchService.GetByID(r.Context(), id)
	if err != nil {
		respondServiceError(w, h.logger, err, "Failed to get dispatch")
		return
	}
	respondJSON(w, http.StatusOK, dispatch)
}

// @Summary Update dispatch
// @Tags Dispatches
// @Accept json
// @Produce json
// @Param id path string true "Dispatch ID"
// @Param request body domain.UpdateDispatchRequest true "Dispatch data"
// @Success 200 {object} domain.DispatchDTO
// @Failure 400 {object} domain.APIError
// @Failure 404 {object} domain.APIError
// @Failure 409 {object} domain.APIError
// @Router /dispatches/{id} [put]
func (h *DispatchHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := parseIDParam(w, r, "id")
	if !ok {
		return
	}
	var req domain.UpdateDispatchRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	dispatch, err := h.dispatchService.Update(r.Context(), id, &req)
	if err != nil {
		respondServiceError(w, h.logger, err, "Failed to update dispatch")
		return
	}
	respondJSON(w, http.StatusOK, dispatch)
}

// @Summary Delete dispatch
// @Description Entries recorded on the dispatch stay with the service order.
// @Tags Dispatches
// @Param id path string true "Dispatch ID"
// @Success 204
// @Failure 404 {object} domain.APIError
// @Router /dispatches/{id} [delete]
func (h *DispatchHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := parseIDParam(w, r, "id")
	if !ok {
		return
	}

	if err := h.dispatchService.Delete(r.Context(), id); err != nil {
		respondServiceError(w, h.logger, err, "Failed to delete dispatch")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// @Summary Move dispatch status
// @Description A cancelled dispatch has no flow. Dispatches of an invoiced or closed service order are locked.
// @Tags Dispatches
// @Accept json
// @Produce json
// @Param id path string true "Dispatch ID"
// @Param action path string true "Transition" Enums(advance, retreat, jump)
// @Param request body domain.JumpStatusRequest false "Target status, only read for jump"
// @Success 200 {object} domain.TransitionResultDTO
// @Failure 400 {object} domain.APIError
// @Failure 404 {object} domain.APIError
// @Router /dispatches/{id}/status/{action} [post]
func (h *DispatchHandler) Transition(w http.ResponseWriter, r *http.Request) {
	id, ok := parseIDParam(w, r, "id")
	if !ok {
		return
	}
	req, ok := transitionFromAction(w, r)
	if !ok {
		return
	}

	result, err := h.dispatchService.Transition(r.Context(), id, req)
	if err != nil {
		respondServiceError(w, h.logger, err, "Failed to change dispatch status")
		return
	}
	respondJSON(w, http.StatusOK, result)
}

// @Summary Cancel dispatch
// @Tags Dispatches
// @Accept json
// @Produce json
// @Param id path string true "Dispatch ID"
// @Param request body domain.CancelRequest false "Reason"
// @Success 200 {object} domain.TransitionResultDTO
// @Failure 404 {object} domain.APIError
// @Router /dispatches/{id}/cancel [post]
func (h *DispatchHandler) Cancel(w http.ResponseWriter, r *http.Request) {
	id, ok := parseIDParam(w, r, "id")
	if !ok {
		return
	}
	var req domain.CancelRequest
	if !decodeOptionalJSON(w, r, &req) {
		return
	}

	result, err := h.dispatchService.Cancel(r.Context(), id, req.Reason)
	if err != nil {
		respondServiceError(w, h.logger, err, "Failed to cancel dispatch")
		return
	}
	respondJSON(w, http.StatusOK, result)
}

// @Summary Dispatch status window
// @Tags Dispatches
// @Produce json
// @Param id path string true "Dispatch ID"
// @Success 200 {object} domain.StatusWindowDTO
// @Failure 404 {object} domain.APIError
// @Router /dispatches/{id}/status [get]
func (h *DispatchHandler) StatusWindow(w http.ResponseWriter, r *http.Request) {
	id, ok := parseIDParam(w, r, "id")
	if !ok {
		return
	}

	window, err := h.dispatchService.StatusWindow(r.Context(), id)
	if err != nil {
		respondServiceError(w, h.logger, err, "Failed to get status window")
		return
	}
	respondJSON(w, http.StatusOK, window)
}

// @Summary Dispatch status history
// @Tags Dispatches
// @Produce json
// @Param id path string true "Dispatch ID"
// @Success 200 {array} domain.StatusHistoryDTO
// @Failure 404 {object} domain.APIError
// @Router /dispatches/{id}/history [get]
func (h *DispatchHandler) History(w http.ResponseWriter, r *http.Request) {
	id, ok := parseIDParam(w, r, "id")
	if !ok {
		return
	}

	history, err := h.dispatchService.History(r.Context(), id)
	if err != nil {
		respondServiceError(w, h.logger, err, "Failed to get dispatch history")
		return
	}
	respondJSON(w, http.StatusOK, history)
}
