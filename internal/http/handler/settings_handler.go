package handler

import (
	"io"
	"net/http"

	"github.com/straye-as/fieldservice-api/internal/domain"
	"github.com/straye-as/fieldservice-api/internal/service"
	"go.uber.org/zap"
)

// SettingsHandler exposes the PDF settings document
type SettingsHandler struct {
	settingsService *service.SettingsService
	logger          *zap.Logger
}

func NewSettingsHandler(settingsService *service.SettingsService, logger *zap.Logger) *SettingsHandler {
	return &SettingsHandler{settingsService: settingsService, logger: logger}
}

// @Summary Get PDF settings
// @Tags Settings
// @Produce json
// @Success 200 {object} pdfsettings.PdfSettings
// @Router /settings/pdf [get]
func (h *SettingsHandler) Get(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, h.settingsService.Get(r.Context()))
}

// @Summary Update one PDF setting
// @Description Replaces a single value addressed by a dotted path such as colors.primary.
// @Description An invalid value leaves the stored settings untouched.
// @Tags Settings
// @Accept json
// @Produce json
// @Param request body domain.UpdateSettingRequest true "Path and value"
// @Success 200 {object} pdfsettings.PdfSettings
// @Failure 400 {object} domain.APIError
// @Router /settings/pdf [patch]
func (h *SettingsHandler) Patch(w http.ResponseWriter, r *http.Request) {
	var req domain.UpdateSettingRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	settings, err := h.settingsService.Patch(r.Context(), req.Path, req.Value)
	if err != nil {
		respondServiceError(w, h.logger, err, "Failed to update settings")
		return
	}
	respondJSON(w, http.StatusOK, settings)
}

// @Summary Reset PDF settings to defaults
// @Tags Settings
// @Produce json
// @Success 200 {object} pdfsettings.PdfSettings
// @Failure 500 {object} domain.APIError
// @Router /settings/pdf/reset [post]
func (h *SettingsHandler) Reset(w http.ResponseWriter, r *http.Request) {
	settings, err := h.settingsService.Reset(r.Context())
	if err != nil {
		respondServiceError(w, h.logger, err, "Failed to reset settings")
		return
	}
	respondJSON(w, http.StatusOK, settings)
}

// @Summary Apply a colour theme
// @Tags Settings
// @Accept json
// @Produce json
// @Param request body domain.ApplyThemeRequest true "Theme name"
// @Success 200 {object} pdfsettings.PdfSettings
// @Failure 400 {object} domain.APIError
// @Router /settings/pdf/theme [post]
func (h *SettingsHandler) ApplyTheme(w http.ResponseWriter, r *http.Request) {
	var req domain.ApplyThemeRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	settings, err := h.settingsService.ApplyTheme(r.Context(), req.Theme)
	if err != nil {
		respondServiceError(w, h.logger, err, "Failed to apply theme")
		return
	}
	respondJSON(w, http.StatusOK, settings)
}

// @Summary List colour themes
// @Tags Settings
// @Produce json
// @Success 200 {array} pdfsettings.Theme
// @Router /settings/pdf/themes [get]
func (h *SettingsHandler) Themes(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, h.settingsService.Themes())
}

// @Summary Export PDF settings
// @Tags Settings
// @Produce json
// @Success 200 {object} pdfsettings.PdfSettings
// @Failure 500 {object} domain.APIError
// @Router /settings/pdf/export [get]
func (h *SettingsHandler) Export(w http.ResponseWriter, r *http.Request) {
	data, err := h.settingsService.Export(r.Context())
	if err != nil {
		respondServiceError(w, h.logger, err, "Failed to export settings")
		return
	}
	respondFile(w, &service.Rendered{
		Filename:    "pdf-settings.json",
		ContentType: "application/json",
		Data:        data,
	}, false)
}

// @Summary Import PDF settings
// @Description Replaces all settings with an exported document merged over the defaults.
// @Tags Settings
// @Accept json
// @Produce json
// @Param request body pdfsettings.PdfSettings true "Exported settings"
// @Success 200 {object} pdfsettings.PdfSettings
// @Failure 400 {object} domain.APIError
// @Router /settings/pdf/import [post]
func (h *SettingsHandler) Import(w http.ResponseWriter, r *http.Request) {
	data, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err != nil {
		respondWithError(w, http.StatusRequestEntityTooLarge, "Settings document too large")
		return
	}

	settings, err := h.settingsService.Import(r.Context(), data)
	if err != nil {
		respondServiceError(w, h.logger, err, "Failed to import settings")
		return
	}
	respondJSON(w, http.StatusOK, settings)
}
