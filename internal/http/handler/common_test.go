package handler

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/straye-as/fieldservice-api/internal/domain"
	"github.com/straye-as/fieldservice-api/internal/pdfsettings"
	"github.com/straye-as/fieldservice-api/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestRespondServiceError(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		status   int
		errType  string
		contains string
	}{
		{"wrapped not found", fmt.Errorf("load: %w", service.ErrDispatchNotFound), http.StatusNotFound, domain.ErrorTypeNotFound, service.ErrDispatchNotFound.Error()},
		{"conversion", &domain.ConversionError{Kind: domain.ConversionNoEligibleItems}, http.StatusUnprocessableEntity, domain.ErrorTypeConversion, "no_eligible_items"},
		{"validation", &domain.ValidationError{Field: "amount", Message: "must not be negative"}, http.StatusBadRequest, domain.ErrorTypeValidation, "amount"},
		{"conflict", service.ErrExpenseNotPending, http.StatusConflict, domain.ErrorTypeConflict, ""},
		{"bad settings value", fmt.Errorf("%w: colors.primary", pdfsettings.ErrInvalidValue), http.StatusBadRequest, domain.ErrorTypeBadRequest, ""},
		{"upstream", &domain.ExternalServiceError{Service: "blob-storage", Op: "upload", Err: errors.New("timeout")}, http.StatusBadGateway, domain.ErrorTypeUpstream, "blob-storage"},
		{"deadline", fmt.Errorf("render: %w", context.DeadlineExceeded), http.StatusGatewayTimeout, domain.ErrorTypeUpstream, ""},
		{"unknown", errors.New("disk on fire"), http.StatusInternalServerError, domain.ErrorTypeInternal, "Failed to do it"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			respondServiceError(w, zap.NewNop(), tt.err, "Failed to do it")

			require.Equal(t, tt.status, w.Code)
			var body domain.APIError
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
			assert.Equal(t, tt.errType, body.Type)
			if tt.contains != "" {
				assert.Contains(t, w.Body.String(), tt.contains)
			}
		})
	}
}

func TestRootMessage(t *testing.T) {
	err := fmt.Errorf("outer: %w", fmt.Errorf("inner: %w", service.ErrOfferNotFound))
	assert.Equal(t, service.ErrOfferNotFound.Error(), rootMessage(err))
}

func TestToJSONFieldName(t *testing.T) {
	assert.Equal(t, "sku", toJSONFieldName("SKU"))
	assert.Equal(t, "technicianId", toJSONFieldName("TechnicianID"))
	assert.Equal(t, "", toJSONFieldName(""))
}

func TestParsePagination(t *testing.T) {
	page, size := parsePagination(httptest.NewRequest(http.MethodGet, "/?page=0&pageSize=5000", nil))
	assert.Equal(t, 1, page)
	assert.Equal(t, 200, size)

	page, size = parsePagination(httptest.NewRequest(http.MethodGet, "/?page=3&pageSize=10", nil))
	assert.Equal(t, 3, page)
	assert.Equal(t, 10, size)
}
