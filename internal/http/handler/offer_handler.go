package handler

import (
	"context"
	"net/http"

	"github.com/google/uuid"
	"github.com/straye-as/fieldservice-api/internal/domain"
	"github.com/straye-as/fieldservice-api/internal/repository"
	"github.com/straye-as/fieldservice-api/internal/service"
	"go.uber.org/zap"
)

type OfferHandler struct {
	offerService *service.OfferService
	logger       *zap.Logger
}

func NewOfferHandler(offerService *service.OfferService, logger *zap.Logger) *OfferHandler {
	return &OfferHandler{
		offerService: offerService,
		logger:       logger,
	}
}

// @Summary List offers
// @Tags Offers
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param pageSize query int false "Page size" default(20)
// @Param status query string false "Filter by status" Enums(draft, sent, accepted, declined, cancelled, modified)
// @Param category query string false "Filter by category"
// @Param source query string false "Filter by source"
// @Param contactId query string false "Filter by contact ID"
// @Param search query string false "Search in title and number"
// @Param sortBy query string false "Sort order" Enums(created_desc, created_asc, updated_desc, title_asc, title_desc, amount_desc, amount_asc, number_asc, number_desc) default(created_desc)
// @Success 200 {object} domain.PaginatedResponse
// @Failure 400 {object} domain.APIError
// @Router /offers [get]
func (h *OfferHandler) List(w http.ResponseWriter, r *http.Request) {
	filters, ok := offerFiltersFromQuery(w, r)
	if !ok {
		return
	}
	page, pageSize := parsePagination(r)

	result, err := h.offerService.List(r.Context(), page, pageSize, filters, parseSort(r))
	if err != nil {
		respondServiceError(w, h.logger, err, "Failed to list offers")
		return
	}
	respondJSON(w, http.StatusOK, result)
}

func offerFiltersFromQuery(w http.ResponseWriter, r *http.Request) (*repository.OfferFilters, bool) {
	q := r.URL.Query()
	filters := &repository.OfferFilters{
		Category: optionalStringQuery(r, "category"),
		Source:   optionalStringQuery(r, "source"),
		Search:   q.Get("search"),
	}
	if s := q.Get("status"); s != "" {
		status := domain.OfferStatus(s)
		filters.Status = &status
	}
	contactID, ok := optionalUUIDQuery(w, r, "contactId")
	if !ok {
		return nil, false
	}
	filters.ContactID = contactID
	return filters, true
}

// @Summary Create offer
// @Description Creates an offer in draft status. Totals are derived from the items.
// @Tags Offers
// @Accept json
// @Produce json
// @Param request body domain.CreateOfferRequest true "Offer data"
// @Success 201 {object} domain.OfferDTO
// @Failure 400 {object} domain.APIError
// @Router /offers [post]
func (h *OfferHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req domain.CreateOfferRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	offer, err := h.offerService.Create(r.Context(), &req)
	if err != nil {
		respondServiceError(w, h.logger, err, "Failed to create offer")
		return
	}

	w.Header().Set("Location", "/api/v1/offers/"+offer.ID.String())
	respondJSON(w, http.StatusCreated, offer)
}

// @Summary Get offer
// @Tags Offers
// @Produce json
// @Param id path string true "Offer ID"
// @Success 200 {object} domain.OfferDTO
// @Failure 404 {object} domain.APIError
// @Router /offers/{id} [get]
func (h *OfferHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	id, ok := parseIDParam(w, r, "id")
	if !ok {
		return
	}

	offer, err := h.offerService.GetByID(r.Context(), id)
	if err != nil {
		respondServiceError(w, h.logger, err, "Failed to get offer")
		return
	}
	respondJSON(w, http.StatusOK, offer)
}

// @Summary Update offer
// @Description Only draft offers can be edited. Items are replaced and totals recomputed.
// @Tags Offers
// @Accept json
// @Produce json
// @Param id path string true "Offer ID"
// @Param request body domain.UpdateOfferRequest true "Offer data"
// @Success 200 {object} domain.OfferDTO
// @Failure 400 {object} domain.APIError
// @Failure 404 {object} domain.APIError
// @Failure 409 {object} domain.APIError
// @Router /offers/{id} [put]
func (h *OfferHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := parseIDParam(w, r, "id")
	if !ok {
		return
	}
	var req domain.UpdateOfferRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	offer, err := h.offerService.Update(r.Context(), id, &req)
	if err != nil {
		respondServiceError(w, h.logger, err, "Failed to update offer")
		return
	}
	respondJSON(w, http.StatusOK, offer)
}

// @Summary Delete offer
// @Tags Offers
// @Param id path string true "Offer ID"
// @Success 204
// @Failure 404 {object} domain.APIError
// @Failure 409 {object} domain.APIError
// @Router /offers/{id} [delete]
func (h *OfferHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := parseIDParam(w, r, "id")
	if !ok {
		return
	}

	if err := h.offerService.Delete(r.Context(), id); err != nil {
		respondServiceError(w, h.logger, err, "Failed to delete offer")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// @Summary Count offers per status
// @Tags Offers
// @Produce json
// @Success 200 {object} map[string]int64
// @Router /offers/stats [get]
func (h *OfferHandler) StatusCounts(w http.ResponseWriter, r *http.Request) {
	counts, err := h.offerService.StatusCounts(r.Context())
	if err != nil {
		respondServiceError(w, h.logger, err, "Failed to count offers")
		return
	}
	respondJSON(w, http.StatusOK, counts)
}

// @Summary Offer status history
// @Tags Offers
// @Produce json
// @Param id path string true "Offer ID"
// @Success 200 {array} domain.StatusHistoryDTO
// @Failure 404 {object} domain.APIError
// @Router /offers/{id}/history [get]
func (h *OfferHandler) History(w http.ResponseWriter, r *http.Request) {
	id, ok := parseIDParam(w, r, "id")
	if !ok {
		return
	}

	history, err := h.offerService.History(r.Context(), id)
	if err != nil {
		respondServiceError(w, h.logger, err, "Failed to get offer history")
		return
	}
	respondJSON(w, http.StatusOK, history)
}

// ============================================================================
// Lifecycle
// ============================================================================

// @Summary Send offer
// @Description E-mails the offer PDF to the recipient and marks the offer sent.
// @Tags Offers
// @Accept json
// @Produce json
// @Param id path string true "Offer ID"
// @Param request body domain.SendOfferRequest true "Recipient"
// @Success 200 {object} domain.OfferDTO
// @Failure 400 {object} domain.APIError
// @Failure 404 {object} domain.APIError
// @Failure 409 {object} domain.APIError
// @Router /offers/{id}/send [post]
func (h *OfferHandler) Send(w http.ResponseWriter, r *http.Request) {
	id, ok := parseIDParam(w, r, "id")
	if !ok {
		return
	}
	var req domain.SendOfferRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	offer, err := h.offerService.Send(r.Context(), id, &req)
	if err != nil {
		respondServiceError(w, h.logger, err, "Failed to send offer")
		return
	}
	respondJSON(w, http.StatusOK, offer)
}

// @Summary Accept offer
// @Tags Offers
// @Produce json
// @Param id path string true "Offer ID"
// @Success 200 {object} domain.OfferDTO
// @Failure 404 {object} domain.APIError
// @Failure 409 {object} domain.APIError
// @Router /offers/{id}/accept [post]
func (h *OfferHandler) Accept(w http.ResponseWriter, r *http.Request) {
	h.respond(w, r, "Failed to accept offer", h.offerService.Accept)
}

// @Summary Decline offer
// @Tags Offers
// @Produce json
// @Param id path string true "Offer ID"
// @Success 200 {object} domain.OfferDTO
// @Failure 404 {object} domain.APIError
// @Failure 409 {object} domain.APIError
// @Router /offers/{id}/decline [post]
func (h *OfferHandler) Decline(w http.ResponseWriter, r *http.Request) {
	h.respond(w, r, "Failed to decline offer", h.offerService.Decline)
}

// @Summary Renew offer
// @Description Copies the offer into a new draft linked to the original.
// @Tags Offers
// @Produce json
// @Param id path string true "Offer ID"
// @Success 201 {object} domain.OfferDTO
// @Failure 404 {object} domain.APIError
// @Failure 409 {object} domain.APIError
// @Router /offers/{id}/renew [post]
func (h *OfferHandler) Renew(w http.ResponseWriter, r *http.Request) {
	id, ok := parseIDParam(w, r, "id")
	if !ok {
		return
	}

	offer, err := h.offerService.Renew(r.Context(), id)
	if err != nil {
		respondServiceError(w, h.logger, err, "Failed to renew offer")
		return
	}
	w.Header().Set("Location", "/api/v1/offers/"+offer.ID.String())
	respondJSON(w, http.StatusCreated, offer)
}

// @Summary Cancel offer
// @Tags Offers
// @Accept json
// @Produce json
// @Param id path string true "Offer ID"
// @Param request body domain.CancelRequest false "Reason"
// @Success 200 {object} domain.OfferDTO
// @Failure 404 {object} domain.APIError
// @Failure 409 {object} domain.APIError
// @Router /offers/{id}/cancel [post]
func (h *OfferHandler) Cancel(w http.ResponseWriter, r *http.Request) {
	id, ok := parseIDParam(w, r, "id")
	if !ok {
		return
	}
	var req domain.CancelRequest
	if !decodeOptionalJSON(w, r, &req) {
		return
	}

	offer, err := h.offerService.Cancel(r.Context(), id, req.Reason)
	if err != nil {
		respondServiceError(w, h.logger, err, "Failed to cancel offer")
		return
	}
	respondJSON(w, http.StatusOK, offer)
}

// @Summary Convert offer
// @Description Turns an accepted offer into a sale, a service order, or both.
// @Description Converting again to a target that already exists returns the existing record.
// @Tags Offers
// @Accept json
// @Produce json
// @Param id path string true "Offer ID"
// @Param request body domain.ConversionRequest true "Conversion targets"
// @Success 200 {object} domain.ConversionResultDTO
// @Failure 400 {object} domain.APIError
// @Failure 404 {object} domain.APIError
// @Failure 409 {object} domain.APIError
// @Router /offers/{id}/convert [post]
func (h *OfferHandler) Convert(w http.ResponseWriter, r *http.Request) {
	id, ok := parseIDParam(w, r, "id")
	if !ok {
		return
	}
	var req domain.ConversionRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	result, err := h.offerService.Convert(r.Context(), id, req)
	if err != nil {
		respondServiceError(w, h.logger, err, "Failed to convert offer")
		return
	}
	respondJSON(w, http.StatusOK, result)
}

func (h *OfferHandler) respond(w http.ResponseWriter, r *http.Request, msg string, fn func(ctx context.Context, id uuid.UUID) (*domain.OfferDTO, error)) {
	id, ok := parseIDParam(w, r, "id")
	if !ok {
		return
	}
	offer, err := fn(r.Context(), id)
	if err != nil {
		respondServiceError(w, h.logger, err, msg)
		return
	}
	respondJSON(w, http.StatusOK, offer)
}

// ============================================================================
// Sales
// ============================================================================

// @Summary List sales
// @Tags Sales
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param pageSize query int false "Page size" default(20)
// @Param status query string false "Filter by status" Enums(open, invoiced, cancelled)
// @Success 200 {object} domain.PaginatedResponse
// @Router /sales [get]
func (h *OfferHandler) ListSales(w http.ResponseWriter, r *http.Request) {
	var status *domain.SaleStatus
	if s := r.URL.Query().Get("status"); s != "" {
		st := domain.SaleStatus(s)
		status = &st
	}
	page, pageSize := parsePagination(r)

	result, err := h.offerService.ListSales(r.Context(), page, pageSize, status)
	if err != nil {
		respondServiceError(w, h.logger, err, "Failed to list sales")
		return
	}
	respondJSON(w, http.StatusOK, result)
}

// @Summary Get sale
// @Tags Sales
// @Produce json
// @Param id path string true "Sale ID"
// @Success 200 {object} domain.SaleDTO
// @Failure 404 {object} domain.APIError
// @Router /sales/{id} [get]
func (h *OfferHandler) GetSale(w http.ResponseWriter, r *http.Request) {
	id, ok := parseIDParam(w, r, "id")
	if !ok {
		return
	}

	sale, err := h.offerService.GetSale(r.Context(), id)
	if err != nil {
		respondServiceError(w, h.logger, err, "Failed to get sale")
		return
	}
	respondJSON(w, http.StatusOK, sale)
}
