package handler_test

import (
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/straye-as/fieldservice-api/internal/document"
	"github.com/straye-as/fieldservice-api/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDocumentHandler_Render(t *testing.T) {
	h := setupHandlers(t)
	order := createServiceOrder(t, h, "Heat pump install")

	t.Run("inline pdf", func(t *testing.T) {
		rr := call(t, h.documents.Render, http.MethodGet, "/?inline=true", nil,
			map[string]string{"entity": "service-orders", "id": order.ID.String()})

		require.Equal(t, http.StatusOK, rr.Code, rr.Body.String())
		assert.Equal(t, document.ContentTypePDF, rr.Header().Get("Content-Type"))
		assert.True(t, strings.HasPrefix(rr.Header().Get("Content-Disposition"), "inline"))
		assert.True(t, strings.HasPrefix(rr.Body.String(), "%PDF"))
	})

	t.Run("unknown source", func(t *testing.T) {
		rr := call(t, h.documents.Render, http.MethodGet, "/", nil,
			map[string]string{"entity": "dispatches", "id": order.ID.String()})
		assert.Equal(t, http.StatusNotFound, rr.Code)
	})

	t.Run("unknown order", func(t *testing.T) {
		rr := call(t, h.documents.Render, http.MethodGet, "/", nil,
			map[string]string{"entity": "service-orders", "id": uuid.NewString()})
		assert.Equal(t, http.StatusNotFound, rr.Code)
	})
}

func TestDocumentHandler_StoreShareDownload(t *testing.T) {
	h := setupHandlers(t)
	offer := createOffer(t, h, "Boiler replacement")
	params := map[string]string{"entity": "offers", "id": offer.ID.String()}

	rr := call(t, h.documents.Store, http.MethodPost, "/", nil, params)
	require.Equal(t, http.StatusCreated, rr.Code, rr.Body.String())
	stored := decode[domain.StoredDocumentDTO](t, rr)

	rr = call(t, h.documents.Download, http.MethodGet, "/", nil, map[string]string{"id": stored.ID.String()})
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, int(stored.Size), rr.Body.Len())

	rr = call(t, h.documents.Share, http.MethodPost, "/", nil, params)
	require.Equal(t, http.StatusOK, rr.Code, rr.Body.String())
	shared := decode[domain.ShareResultDTO](t, rr)
	assert.Equal(t, "copied", shared.Outcome)
	assert.Contains(t, shared.CopiedLink, "/download")

	rr = call(t, h.documents.ListStored, http.MethodGet, "/", nil, params)
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Len(t, decode[[]domain.StoredDocumentDTO](t, rr), 2)

	rr = call(t, h.documents.Delete, http.MethodDelete, "/", nil, map[string]string{"id": stored.ID.String()})
	assert.Equal(t, http.StatusNoContent, rr.Code)
	rr = call(t, h.documents.Download, http.MethodGet, "/", nil, map[string]string{"id": stored.ID.String()})
	assert.Equal(t, http.StatusNotFound, rr.Code)
}

func TestDocumentHandler_Preview(t *testing.T) {
	h := setupHandlers(t)
	order := createServiceOrder(t, h, "Ventilation service")

	rr := call(t, h.documents.OpenPreview, http.MethodPost, "/", nil,
		map[string]string{"entity": "service-orders", "id": order.ID.String()})
	require.Equal(t, http.StatusCreated, rr.Code, rr.Body.String())
	preview := decode[domain.PreviewDTO](t, rr)
	params := map[string]string{"id": preview.SessionID.String()}

	rr = call(t, h.documents.PreviewContent, http.MethodGet, "/", nil, params)
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "1", rr.Header().Get("X-Preview-Version"))
	assert.Equal(t, "no-store", rr.Header().Get("Cache-Control"))

	rr = call(t, h.documents.RefreshPreview, http.MethodPost, "/", nil, params)
	require.Equal(t, http.StatusAccepted, rr.Code)

	assert.Eventually(t, func() bool {
		rr := call(t, h.documents.PreviewStatus, http.MethodGet, "/", nil, params)
		return rr.Code == http.StatusOK && decode[domain.PreviewDTO](t, rr).Version >= 2
	}, 2*time.Second, 10*time.Millisecond)

	rr = call(t, h.documents.ClosePreview, http.MethodDelete, "/", nil, params)
	assert.Equal(t, http.StatusNoContent, rr.Code)
	rr = call(t, h.documents.PreviewStatus, http.MethodGet, "/", nil, params)
	assert.Equal(t, http.StatusNotFound, rr.Code)
}

func TestDocumentHandler_Exports(t *testing.T) {
	h := setupHandlers(t)
	createOffer(t, h, "Heat pump install")
	order := createServiceOrder(t, h, "Heat pump install")

	rr := call(t, h.documents.ExportOffers, http.MethodGet, "/exports/offers?status=draft", nil, nil)
	require.Equal(t, http.StatusOK, rr.Code, rr.Body.String())
	assert.Equal(t, document.ContentTypeXLSX, rr.Header().Get("Content-Type"))
	assert.True(t, strings.HasPrefix(rr.Body.String(), "PK"))

	rr = call(t, h.documents.ExportTimeSheet, http.MethodGet, "/", nil, map[string]string{"id": order.ID.String()})
	require.Equal(t, http.StatusOK, rr.Code, rr.Body.String())
	assert.Contains(t, rr.Header().Get("Content-Disposition"), "timesheet-")

	rr = call(t, h.documents.ExportTimeSheet, http.MethodGet, "/?dispatchId=bad", nil, map[string]string{"id": order.ID.String()})
	assert.Equal(t, http.StatusBadRequest, rr.Code)
}
