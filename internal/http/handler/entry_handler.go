package handler

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/straye-as/fieldservice-api/internal/domain"
	"github.com/straye-as/fieldservice-api/internal/service"
	"go.uber.org/zap"
)

// EntryHandler serves time, expense and material entries. Every collection
// route exists twice: under /service-orders/{id} for entries booked on the
// order itself, and under /service-orders/{id}/dispatches/{dispatchId} for
// entries booked on one visit.
type EntryHandler struct {
	entryService *service.EntryService
	logger       *zap.Logger
}

func NewEntryHandler(entryService *service.EntryService, logger *zap.Logger) *EntryHandler {
	return &EntryHandler{entryService: entryService, logger: logger}
}

// scope reads the service order id and the optional dispatch id from the route
func scope(w http.ResponseWriter, r *http.Request) (uuid.UUID, *uuid.UUID, bool) {
	orderID, ok := parseIDParam(w, r, "id")
	if !ok {
		return uuid.Nil, nil, false
	}
	if !hasURLParam(r, "dispatchId") {
		return orderID, nil, true
	}
	dispatchID, ok := parseIDParam(w, r, "dispatchId")
	if !ok {
		return uuid.Nil, nil, false
	}
	return orderID, &dispatchID, true
}

// ============================================================================
// Time
// ============================================================================

// @Summary Record time
// @Description Duration is authoritative and is only derived from the timestamps when zero.
// @Tags Entries
// @Accept json
// @Produce json
// @Param id path string true "Service order ID"
// @Param dispatchId path string true "Dispatch ID"
// @Param request body domain.CreateTimeEntryRequest true "Time entry"
// @Success 201 {object} domain.TimeEntryDTO
// @Failure 400 {object} domain.APIError
// @Failure 404 {object} domain.APIError
// @Failure 409 {object} domain.APIError
// @Router /service-orders/{id}/time [post]
// @Router /service-orders/{id}/dispatches/{dispatchId}/time [post]
func (h *EntryHandler) AddTime(w http.ResponseWriter, r *http.Request) {
	orderID, dispatchID, ok := scope(w, r)
	if !ok {
		return
	}
	var req domain.CreateTimeEntryRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	entry, err := h.entryService.AddTime(r.Context(), orderID, dispatchID, &req)
	if err != nil {
		respondServiceError(w, h.logger, err, "Failed to add time entry")
		return
	}
	respondJSON(w, http.StatusCreated, entry)
}

// @Summary List time entries
// @Tags Entries
// @Produce json
// @Param id path string true "Service order ID"
// @Param dispatchId path string true "Dispatch ID"
// @Success 200 {array} domain.TimeEntryDTO
// @Failure 404 {object} domain.APIError
// @Router /service-orders/{id}/time [get]
// @Router /service-orders/{id}/dispatches/{dispatchId}/time [get]
func (h *EntryHandler) ListTime(w http.ResponseWriter, r *http.Request) {
	orderID, dispatchID, ok := scope(w, r)
	if !ok {
		return
	}

	entries, err := h.entryService.ListTime(r.Context(), orderID, dispatchID)
	if err != nil {
		respondServiceError(w, h.logger, err, "Failed to list time entries")
		return
	}
	respondJSON(w, http.StatusOK, entries)
}

// @Summary Delete time entry
// @Tags Entries
// @Param id path string true "Time entry ID"
// @Success 204
// @Failure 404 {object} domain.APIError
// @Router /time-entries/{id} [delete]
func (h *EntryHandler) DeleteTime(w http.ResponseWriter, r *http.Request) {
	id, ok := parseIDParam(w, r, "id")
	if !ok {
		return
	}

	if err := h.entryService.DeleteTime(r.Context(), id); err != nil {
		respondServiceError(w, h.logger, err, "Failed to delete time entry")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// ============================================================================
// Expenses
// ============================================================================

// @Summary Record expense
// @Description Expenses start pending and count towards the costs once approved.
// @Tags Entries
// @Accept json
// @Produce json
// @Param id path string true "Service order ID"
// @Param dispatchId path string true "Dispatch ID"
// @Param request body domain.CreateExpenseEntryRequest true "Expense"
// @Success 201 {object} domain.ExpenseEntryDTO
// @Failure 400 {object} domain.APIError
// @Failure 404 {object} domain.APIError
// @Failure 409 {object} domain.APIError
// @Router /service-orders/{id}/expenses [post]
// @Router /service-orders/{id}/dispatches/{dispatchId}/expenses [post]
func (h *EntryHandler) AddExpense(w http.ResponseWriter, r *http.Request) {
	orderID, dispatchID, ok := scope(w, r)
	if !ok {
		return
	}
	var req domain.CreateExpenseEntryRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	entry, err := h.entryService.AddExpense(r.Context(), orderID, dispatchID, &req)
	if err != nil {
		respondServiceError(w, h.logger, err, "Failed to add expense")
		return
	}
	respondJSON(w, http.StatusCreated, entry)
}

// @Summary List expenses
// @Tags Entries
// @Produce json
// @Param id path string true "Service order ID"
// @Param dispatchId path string true "Dispatch ID"
// @Param status query string false "Filter by status" Enums(pending, approved, rejected)
// @Success 200 {array} domain.ExpenseEntryDTO
// @Failure 404 {object} domain.APIError
// @Router /service-orders/{id}/expenses [get]
// @Router /service-orders/{id}/dispatches/{dispatchId}/expenses [get]
func (h *EntryHandler) ListExpenses(w http.ResponseWriter, r *http.Request) {
	orderID, dispatchID, ok := scope(w, r)
	if !ok {
		return
	}
	var status *domain.ExpenseStatus
	if s := r.URL.Query().Get("status"); s != "" {
		st := domain.ExpenseStatus(s)
		status = &st
	}

	entries, err := h.entryService.ListExpenses(r.Context(), orderID, dispatchID, status)
	if err != nil {
		respondServiceError(w, h.logger, err, "Failed to list expenses")
		return
	}
	respondJSON(w, http.StatusOK, entries)
}

// @Summary Approve expense
// @Description Approved expenses count towards the order's costs; pending and rejected do not.
// @Tags Entries
// @Produce json
// @Param id path string true "Expense ID"
// @Success 200 {object} domain.ExpenseEntryDTO
// @Failure 404 {object} domain.APIError
// @Failure 409 {object} domain.APIError
// @Router /expenses/{id}/approve [post]
func (h *EntryHandler) ApproveExpense(w http.ResponseWriter, r *http.Request) {
	id, ok := parseIDParam(w, r, "id")
	if !ok {
		return
	}

	entry, err := h.entryService.ApproveExpense(r.Context(), id)
	if err != nil {
		respondServiceError(w, h.logger, err, "Failed to approve expense")
		return
	}
	respondJSON(w, http.StatusOK, entry)
}

// @Summary Reject expense
// @Tags Entries
// @Accept json
// @Produce json
// @Param id path string true "Expense ID"
// @Param request body domain.CancelRequest false "Reason"
// @Success 200 {object} domain.ExpenseEntryDTO
// @Failure 404 {object} domain.APIError
// @Failure 409 {object} domain.APIError
// @Router /expenses/{id}/reject [post]
func (h *EntryHandler) RejectExpense(w http.ResponseWriter, r *http.Request) {
	id, ok := parseIDParam(w, r, "id")
	if !ok {
		return
	}
	var req domain.CancelRequest
	if !decodeOptionalJSON(w, r, &req) {
		return
	}

	entry, err := h.entryService.RejectExpense(r.Context(), id, req.Reason)
	if err != nil {
		respondServiceError(w, h.logger, err, "Failed to reject expense")
		return
	}
	respondJSON(w, http.StatusOK, entry)
}

// @Summary Delete expense
// @Tags Entries
// @Param id path string true "Expense ID"
// @Success 204
// @Failure 404 {object} domain.APIError
// @Router /expenses/{id} [delete]
func (h *EntryHandler) DeleteExpense(w http.ResponseWriter, r *http.Request) {
	id, ok := parseIDParam(w, r, "id")
	if !ok {
		return
	}

	if err := h.entryService.DeleteExpense(r.Context(), id); err != nil {
		respondServiceError(w, h.logger, err, "Failed to delete expense")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// ============================================================================
// Materials
// ============================================================================

// @Summary Record material usage
// @Description A catalog article fills in the name and, when no price is given, the unit price.
// @Tags Entries
// @Accept json
// @Produce json
// @Param id path string true "Service order ID"
// @Param dispatchId path string true "Dispatch ID"
// @Param request body domain.CreateMaterialUsageRequest true "Material usage"
// @Success 201 {object} domain.MaterialUsageDTO
// @Failure 400 {object} domain.APIError
// @Failure 404 {object} domain.APIError
// @Failure 409 {object} domain.APIError
// @Router /service-orders/{id}/materials [post]
// @Router /service-orders/{id}/dispatches/{dispatchId}/materials [post]
func (h *EntryHandler) AddMaterial(w http.ResponseWriter, r *http.Request) {
	orderID, dispatchID, ok := scope(w, r)
	if !ok {
		return
	}
	var req domain.CreateMaterialUsageRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	usage, err := h.entryService.AddMaterial(r.Context(), orderID, dispatchID, &req)
	if err != nil {
		respondServiceError(w, h.logger, err, "Failed to add material")
		return
	}
	respondJSON(w, http.StatusCreated, usage)
}

// @Summary List material usage
// @Tags Entries
// @Produce json
// @Param id path string true "Service order ID"
// @Param dispatchId path string true "Dispatch ID"
// @Success 200 {array} domain.MaterialUsageDTO
// @Failure 404 {object} domain.APIError
// @Router /service-orders/{id}/materials [get]
// @Router /service-orders/{id}/dispatches/{dispatchId}/materials [get]
func (h *EntryHandler) ListMaterials(w http.ResponseWriter, r *http.Request) {
	orderID, dispatchID, ok := scope(w, r)
	if !ok {
		return
	}

	usages, err := h.entryService.ListMaterials(r.Context(), orderID, dispatchID)
	if err != nil {
		respondServiceError(w, h.logger, err, "Failed to list materials")
		return
	}
	respondJSON(w, http.StatusOK, usages)
}

// @Summary Delete material usage
// @Tags Entries
// @Param id path string true "Material usage ID"
// @Success 204
// @Failure 404 {object} domain.APIError
// @Router /materials/{id} [delete]
func (h *EntryHandler) DeleteMaterial(w http.ResponseWriter, r *http.Request) {
	id, ok := parseIDParam(w, r, "id")
	if !ok {
		return
	}

	if err := h.entryService.DeleteMaterial(r.Context(), id); err != nil {
		respondServiceError(w, h.logger, err, "Failed to delete material")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
