package handler_test

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/straye-as/fieldservice-api/internal/domain"
	"github.com/straye-as/fieldservice-api/internal/pdfsettings"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSettingsHandler_Patch(t *testing.T) {
	h := setupHandlers(t)

	rr := call(t, h.settings.Patch, http.MethodPatch, "/", domain.UpdateSettingRequest{
		Path:  "company.name",
		Value: json.RawMessage(`"Fjord Service AS"`),
	}, nil)
	require.Equal(t, http.StatusOK, rr.Code, rr.Body.String())
	assert.Equal(t, "Fjord Service AS", decode[pdfsettings.PdfSettings](t, rr).Company.Name)

	tests := []struct {
		name string
		req  domain.UpdateSettingRequest
	}{
		{"unknown path", domain.UpdateSettingRequest{Path: "colors.neon", Value: json.RawMessage(`"#FFFFFF"`)}},
		{"invalid color", domain.UpdateSettingRequest{Path: "colors.primary", Value: json.RawMessage(`"red"`)}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rr := call(t, h.settings.Patch, http.MethodPatch, "/", tt.req, nil)
			assert.Equal(t, http.StatusBadRequest, rr.Code)
		})
	}

	rr = call(t, h.settings.Get, http.MethodGet, "/", nil, nil)
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "Fjord Service AS", decode[pdfsettings.PdfSettings](t, rr).Company.Name, "failed patches change nothing")
}

func TestSettingsHandler_ThemesExportImport(t *testing.T) {
	h := setupHandlers(t)

	rr := call(t, h.settings.Themes, http.MethodGet, "/", nil, nil)
	require.Equal(t, http.StatusOK, rr.Code)
	themes := decode[[]pdfsettings.Theme](t, rr)
	require.NotEmpty(t, themes)

	rr = call(t, h.settings.ApplyTheme, http.MethodPost, "/", domain.ApplyThemeRequest{Theme: themes[0].Name}, nil)
	require.Equal(t, http.StatusOK, rr.Code, rr.Body.String())
	assert.Equal(t, themes[0].Primary, decode[pdfsettings.PdfSettings](t, rr).Colors.Primary)

	rr = call(t, h.settings.ApplyTheme, http.MethodPost, "/", domain.ApplyThemeRequest{Theme: "no-such-theme"}, nil)
	assert.Equal(t, http.StatusBadRequest, rr.Code)

	rr = call(t, h.settings.Export, http.MethodGet, "/", nil, nil)
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Header().Get("Content-Disposition"), "attachment")
	exported := rr.Body.String()

	rr = call(t, h.settings.Reset, http.MethodPost, "/", nil, nil)
	require.Equal(t, http.StatusOK, rr.Code)

	rr = call(t, h.settings.Import, http.MethodPost, "/", exported, nil)
	require.Equal(t, http.StatusOK, rr.Code, rr.Body.String())
	assert.Equal(t, themes[0].Primary, decode[pdfsettings.PdfSettings](t, rr).Colors.Primary)

	rr = call(t, h.settings.Import, http.MethodPost, "/", "{broken", nil)
	assert.Equal(t, http.StatusBadRequest, rr.Code)
}
