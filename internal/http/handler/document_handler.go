package handler

import (
	"fmt"
	"io"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/straye-as/fieldservice-api/internal/domain"
	"github.com/straye-as/fieldservice-api/internal/service"
	"go.uber.org/zap"
)

type DocumentHandler struct {
	documentService *service.DocumentService
	logger          *zap.Logger
}

func NewDocumentHandler(documentService *service.DocumentService, logger *zap.Logger) *DocumentHandler {
	return &DocumentHandler{documentService: documentService, logger: logger}
}

// entityTypes maps the {entity} route segment to the documents it can produce
var entityTypes = map[string]domain.EntityType{
	"offers":         domain.EntityTypeOffer,
	"service-orders": domain.EntityTypeServiceOrder,
}

// entityFromRoute reads {entity} and {id}
func entityFromRoute(w http.ResponseWriter, r *http.Request) (domain.EntityType, uuid.UUID, bool) {
	entityType, ok := entityTypes[chi.URLParam(r, "entity")]
	if !ok {
		respondWithError(w, http.StatusNotFound, "Unknown document source")
		return "", uuid.Nil, false
	}
	id, ok := parseIDParam(w, r, "id")
	if !ok {
		return "", uuid.Nil, false
	}
	return entityType, id, true
}

// ============================================================================
// Rendering and storage
// ============================================================================

// @Summary Render PDF
// @Description Returns a fresh PDF without storing it.
// @Tags Documents
// @Produce application/pdf
// @Param entity path string true "Document source" Enums(offers, service-orders)
// @Param id path string true "Entity ID"
// @Param inline query bool false "Display inline instead of download"
// @Success 200 {file} binary
// @Failure 400 {object} domain.APIError
// @Failure 404 {object} domain.APIError
// @Router /documents/{entity}/{id}/pdf [get]
func (h *DocumentHandler) Render(w http.ResponseWriter, r *http.Request) {
	entityType, id, ok := entityFromRoute(w, r)
	if !ok {
		return
	}

	rendered, err := h.documentService.Render(r.Context(), entityType, id)
	if err != nil {
		respondServiceError(w, h.logger, err, "Failed to render document")
		return
	}
	inline, _ := strconv.ParseBool(r.URL.Query().Get("inline"))
	respondFile(w, rendered, inline)
}

// @Summary Render and store PDF
// @Tags Documents
// @Produce json
// @Param entity path string true "Document source" Enums(offers, service-orders)
// @Param id path string true "Entity ID"
// @Success 201 {object} domain.StoredDocumentDTO
// @Failure 400 {object} domain.APIError
// @Failure 404 {object} domain.APIError
// @Router /documents/{entity}/{id} [post]
func (h *DocumentHandler) Store(w http.ResponseWriter, r *http.Request) {
	entityType, id, ok := entityFromRoute(w, r)
	if !ok {
		return
	}

	doc, err := h.documentService.Store(r.Context(), entityType, id)
	if err != nil {
		respondServiceError(w, h.logger, err, "Failed to store document")
		return
	}
	w.Header().Set("Location", fmt.Sprintf("/api/v1/documents/%s/download", doc.ID))
	respondJSON(w, http.StatusCreated, doc)
}

// @Summary List stored documents
// @Tags Documents
// @Produce json
// @Param entity path string true "Document source" Enums(offers, service-orders)
// @Param id path string true "Entity ID"
// @Success 200 {array} domain.StoredDocumentDTO
// @Failure 400 {object} domain.APIError
// @Failure 404 {object} domain.APIError
// @Router /documents/{entity}/{id} [get]
func (h *DocumentHandler) ListStored(w http.ResponseWriter, r *http.Request) {
	entityType, id, ok := entityFromRoute(w, r)
	if !ok {
		return
	}

	docs, err := h.documentService.ListStored(r.Context(), entityType, id)
	if err != nil {
		respondServiceError(w, h.logger, err, "Failed to list documents")
		return
	}
	respondJSON(w, http.StatusOK, docs)
}

// @Summary Download stored document
// @Tags Documents
// @Produce application/pdf
// @Param id path string true "Document ID"
// @Success 200 {file} binary
// @Failure 404 {object} domain.APIError
// @Router /documents/{id}/download [get]
func (h *DocumentHandler) Download(w http.ResponseWriter, r *http.Request) {
	id, ok := parseIDParam(w, r, "id")
	if !ok {
		return
	}

	doc, body, err := h.documentService.Download(r.Context(), id)
	if err != nil {
		respondServiceError(w, h.logger, err, "Failed to download document")
		return
	}
	defer body.Close()

	w.Header().Set("Content-Type", doc.ContentType)
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", doc.Filename))
	if doc.Size > 0 {
		w.Header().Set("Content-Length", strconv.FormatInt(doc.Size, 10))
	}
	w.WriteHeader(http.StatusOK)
	if _, err := io.Copy(w, body); err != nil {
		h.logger.Warn("document download interrupted", zap.String("document_id", id.String()), zap.Error(err))
	}
}

// @Summary Delete stored document
// @Tags Documents
// @Param id path string true "Document ID"
// @Success 204
// @Failure 404 {object} domain.APIError
// @Router /documents/{id} [delete]
func (h *DocumentHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := parseIDParam(w, r, "id")
	if !ok {
		return
	}

	if err := h.documentService.DeleteStored(r.Context(), id); err != nil {
		respondServiceError(w, h.logger, err, "Failed to delete document")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// ============================================================================
// Delivery
// ============================================================================

// @Summary Share document
// @Description Stores the PDF and mails it when a recipient is given.
// @Description Without one the download link is copied to the clipboard instead.
// @Tags Documents
// @Accept json
// @Produce json
// @Param entity path string true "Document source" Enums(offers, service-orders)
// @Param id path string true "Entity ID"
// @Param request body domain.ShareDocumentRequest false "Recipient and message"
// @Success 200 {object} domain.ShareResultDTO
// @Failure 400 {object} domain.APIError
// @Failure 404 {object} domain.APIError
// @Router /documents/{entity}/{id}/share [post]
func (h *DocumentHandler) Share(w http.ResponseWriter, r *http.Request) {
	entityType, id, ok := entityFromRoute(w, r)
	if !ok {
		return
	}
	var req domain.ShareDocumentRequest
	if !decodeOptionalJSON(w, r, &req) {
		return
	}

	result, err := h.documentService.Share(r.Context(), entityType, id, &req)
	if err != nil {
		respondServiceError(w, h.logger, err, "Failed to share document")
		return
	}
	respondJSON(w, http.StatusOK, result)
}

// @Summary Print document
// @Tags Documents
// @Param entity path string true "Document source" Enums(offers, service-orders)
// @Param id path string true "Entity ID"
// @Success 202
// @Failure 400 {object} domain.APIError
// @Failure 404 {object} domain.APIError
// @Router /documents/{entity}/{id}/print [post]
func (h *DocumentHandler) Print(w http.ResponseWriter, r *http.Request) {
	entityType, id, ok := entityFromRoute(w, r)
	if !ok {
		return
	}

	if err := h.documentService.Print(r.Context(), entityType, id); err != nil {
		respondServiceError(w, h.logger, err, "Failed to print document")
		return
	}
	w.WriteHeader(http.StatusAccepted)
}

// ============================================================================
// Exports
// ============================================================================

// @Summary Export offers as spreadsheet
// @Tags Exports
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param status query string false "Filter by status" Enums(draft, sent, accepted, declined, cancelled, modified)
// @Param category query string false "Filter by category"
// @Param source query string false "Filter by source"
// @Param contactId query string false "Filter by contact ID"
// @Param search query string false "Search in title and number"
// @Success 200 {file} binary
// @Failure 400 {object} domain.APIError
// @Router /exports/offers [get]
func (h *DocumentHandler) ExportOffers(w http.ResponseWriter, r *http.Request) {
	filters, ok := offerFiltersFromQuery(w, r)
	if !ok {
		return
	}

	rendered, err := h.documentService.ExportOffers(r.Context(), filters)
	if err != nil {
		respondServiceError(w, h.logger, err, "Failed to export offers")
		return
	}
	respondFile(w, rendered, false)
}

// @Summary Export service order timesheet
// @Tags Exports
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param id path string true "Service order ID"
// @Param dispatchId query string false "Limit to one dispatch"
// @Success 200 {file} binary
// @Failure 400 {object} domain.APIError
// @Failure 404 {object} domain.APIError
// @Router /exports/service-orders/{id}/timesheet [get]
func (h *DocumentHandler) ExportTimeSheet(w http.ResponseWriter, r *http.Request) {
	orderID, ok := parseIDParam(w, r, "id")
	if !ok {
		return
	}
	dispatchID, ok := optionalUUIDQuery(w, r, "dispatchId")
	if !ok {
		return
	}

	rendered, err := h.documentService.ExportTimeSheet(r.Context(), orderID, dispatchID)
	if err != nil {
		respondServiceError(w, h.logger, err, "Failed to export time sheet")
		return
	}
	respondFile(w, rendered, false)
}

// ============================================================================
// Previews
// ============================================================================

// @Summary Open live preview
// @Description Starts a preview session that re-renders whenever the PDF settings change.
// @Tags Previews
// @Produce json
// @Param entity path string true "Document source" Enums(offers, service-orders)
// @Param id path string true "Entity ID"
// @Success 201 {object} domain.PreviewDTO
// @Failure 400 {object} domain.APIError
// @Failure 404 {object} domain.APIError
// @Router /documents/{entity}/{id}/preview [post]
func (h *DocumentHandler) OpenPreview(w http.ResponseWriter, r *http.Request) {
	entityType, id, ok := entityFromRoute(w, r)
	if !ok {
		return
	}

	preview, err := h.documentService.OpenPreview(r.Context(), entityType, id)
	if err != nil {
		respondServiceError(w, h.logger, err, "Failed to open preview")
		return
	}
	respondJSON(w, http.StatusCreated, preview)
}

// @Summary Get preview status
// @Tags Previews
// @Produce json
// @Param id path string true "Preview ID"
// @Success 200 {object} domain.PreviewDTO
// @Failure 404 {object} domain.APIError
// @Router /previews/{id} [get]
func (h *DocumentHandler) PreviewStatus(w http.ResponseWriter, r *http.Request) {
	id, ok := parseIDParam(w, r, "id")
	if !ok {
		return
	}

	preview, err := h.documentService.PreviewStatus(id)
	if err != nil {
		respondServiceError(w, h.logger, err, "Failed to get preview")
		return
	}
	respondJSON(w, http.StatusOK, preview)
}

// @Summary Refresh preview
// @Tags Previews
// @Produce json
// @Param id path string true "Preview ID"
// @Success 202 {object} domain.PreviewDTO
// @Failure 404 {object} domain.APIError
// @Router /previews/{id}/refresh [post]
func (h *DocumentHandler) RefreshPreview(w http.ResponseWriter, r *http.Request) {
	id, ok := parseIDParam(w, r, "id")
	if !ok {
		return
	}

	preview, err := h.documentService.RefreshPreview(id)
	if err != nil {
		respondServiceError(w, h.logger, err, "Failed to refresh preview")
		return
	}
	respondJSON(w, http.StatusAccepted, preview)
}

// @Summary Get preview PDF
// @Description Serves the latest rendered PDF inline. X-Preview-Version changes with every render.
// @Tags Previews
// @Produce application/pdf
// @Param id path string true "Preview ID"
// @Success 200 {file} binary
// @Failure 404 {object} domain.APIError
// @Failure 409 {object} domain.APIError
// @Router /previews/{id}/content [get]
func (h *DocumentHandler) PreviewContent(w http.ResponseWriter, r *http.Request) {
	id, ok := parseIDParam(w, r, "id")
	if !ok {
		return
	}

	rendered, version, err := h.documentService.PreviewContent(id)
	if err != nil {
		respondServiceError(w, h.logger, err, "Failed to get preview content")
		return
	}
	w.Header().Set("X-Preview-Version", strconv.Itoa(version))
	w.Header().Set("Cache-Control", "no-store")
	respondFile(w, rendered, true)
}

// @Summary Close preview
// @Tags Previews
// @Param id path string true "Preview ID"
// @Success 204
// @Failure 404 {object} domain.APIError
// @Router /previews/{id} [delete]
func (h *DocumentHandler) ClosePreview(w http.ResponseWriter, r *http.Request) {
	id, ok := parseIDParam(w, r, "id")
	if !ok {
		return
	}

	if err := h.documentService.ClosePreview(id); err != nil {
		respondServiceError(w, h.logger, err, "Failed to close preview")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
