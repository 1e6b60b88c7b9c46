package handler

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/straye-as/fieldservice-api/internal/domain"
	"github.com/straye-as/fieldservice-api/internal/pdfsettings"
	"github.com/straye-as/fieldservice-api/internal/repository"
	"github.com/straye-as/fieldservice-api/internal/service"
	"go.uber.org/zap"
)

var validate = validator.New()

// maxBodyBytes bounds JSON request bodies; settings imports are the largest
const maxBodyBytes = 1 << 20

func respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if data != nil {
		_ = json.NewEncoder(w).Encode(data)
	}
}

// respondValidationError sends a standardized validation error response with specific field messages
func respondValidationError(w http.ResponseWriter, err error) {
	fields := make(map[string]string)
	var ve validator.ValidationErrors
	if errors.As(err, &ve) {
		for _, fe := range ve {
			fields[toJSONFieldName(fe.Field())] = formatValidationError(fe)
		}
	}

	respondJSON(w, http.StatusBadRequest, domain.APIError{
		Type:   domain.ErrorTypeValidation,
		Title:  "Validation Error",
		Status: http.StatusBadRequest,
		Detail: "One or more fields failed validation",
		Errors: fields,
	})
}

// formatValidationError creates a human-readable validation error message
func formatValidationError(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", toJSONFieldName(fe.Field()))
	case "email":
		return "Must be a valid email address"
	case "max":
		return fmt.Sprintf("Must be at most %s characters", fe.Param())
	case "min":
		return fmt.Sprintf("Must be at least %s", fe.Param())
	case "gte":
		return fmt.Sprintf("Must be greater than or equal to %s", fe.Param())
	case "oneof":
		return fmt.Sprintf("Must be one of: %s", fe.Param())
	default:
		return domain.GetValidationMessage(fe.Tag())
	}
}

// toJSONFieldName converts a Go struct field name to its JSON equivalent (camelCase)
func toJSONFieldName(field string) string {
	if len(field) == 0 {
		return field
	}
	if strings.HasPrefix(field, "SKU") {
		return "sku" + field[3:]
	}
	return strings.ToLower(field[:1]) + field[1:]
}

// respondWithError sends a standardized JSON error response
func respondWithError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, domain.APIError{
		Type:   getErrorType(status),
		Title:  http.StatusText(status),
		Status: status,
		Detail: message,
	})
}

// getErrorType returns the appropriate error type for an HTTP status code
func getErrorType(status int) string {
	switch status {
	case http.StatusBadRequest, http.StatusUnprocessableEntity:
		return domain.ErrorTypeBadRequest
	case http.StatusNotFound:
		return domain.ErrorTypeNotFound
	case http.StatusConflict:
		return domain.ErrorTypeConflict
	case http.StatusBadGateway, http.StatusGatewayTimeout:
		return domain.ErrorTypeUpstream
	default:
		return domain.ErrorTypeInternal
	}
}

var notFoundErrors = []error{
	service.ErrNotFound,
	service.ErrOfferNotFound,
	service.ErrSaleNotFound,
	service.ErrServiceOrderNotFound,
	service.ErrJobNotFound,
	service.ErrDispatchNotFound,
	service.ErrEntryNotFound,
	service.ErrArticleNotFound,
	service.ErrDocumentNotFound,
	service.ErrPreviewNotFound,
}

var conflictErrors = []error{
	service.ErrConflict,
	service.ErrOfferInvalidTransition,
	service.ErrOfferNotEditable,
	service.ErrOfferConverted,
	service.ErrServiceOrderHasWork,
	service.ErrDispatchCancelled,
	service.ErrExpenseNotPending,
	service.ErrDuplicateSKU,
}

var badRequestErrors = []error{
	service.ErrInvalidInput,
	service.ErrInvalidStatus,
	service.ErrJobNotInOrder,
	service.ErrMaterialNameNeeded,
	service.ErrUnknownSettingsPath,
	service.ErrInvalidSettingsImport,
	pdfsettings.ErrInvalidValue,
	pdfsettings.ErrUnknownPath,
}

func matchesAny(err error, targets []error) bool {
	for _, target := range targets {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}

// respondServiceError maps a service error to its HTTP response. Unknown
// errors are logged and answered with 500 and msg.
func respondServiceError(w http.ResponseWriter, logger *zap.Logger, err error, msg string) {
	var (
		validationErr *domain.ValidationError
		conversionErr *domain.ConversionError
		externalErr   *domain.ExternalServiceError
	)

	switch {
	case matchesAny(err, notFoundErrors):
		respondWithError(w, http.StatusNotFound, rootMessage(err))
	case errors.As(err, &conversionErr):
		respondJSON(w, http.StatusUnprocessableEntity, domain.APIError{
			Type:   domain.ErrorTypeConversion,
			Title:  "Conversion Rejected",
			Status: http.StatusUnprocessableEntity,
			Detail: conversionErr.Error(),
			Errors: map[string]string{"kind": string(conversionErr.Kind)},
		})
	case errors.As(err, &validationErr):
		apiErr := domain.APIError{
			Type:   domain.ErrorTypeValidation,
			Title:  "Validation Error",
			Status: http.StatusBadRequest,
			Detail: validationErr.Error(),
		}
		if validationErr.Field != "" {
			apiErr.Errors = map[string]string{validationErr.Field: validationErr.Message}
		}
		respondJSON(w, http.StatusBadRequest, apiErr)
	case matchesAny(err, conflictErrors):
		respondWithError(w, http.StatusConflict, err.Error())
	case matchesAny(err, badRequestErrors):
		respondWithError(w, http.StatusBadRequest, err.Error())
	case errors.As(err, &externalErr):
		logger.Error(msg, zap.Error(err), zap.String("service", externalErr.Service), zap.String("op", externalErr.Op))
		respondWithError(w, http.StatusBadGateway, fmt.Sprintf("%s is unavailable", externalErr.Service))
	case errors.Is(err, context.DeadlineExceeded):
		logger.Warn(msg, zap.Error(err))
		respondWithError(w, http.StatusGatewayTimeout, "Request timed out")
	default:
		logger.Error(msg, zap.Error(err))
		respondWithError(w, http.StatusInternalServerError, msg)
	}
}

// rootMessage strips wrapping context so not-found responses stay short
func rootMessage(err error) string {
	for {
		next := errors.Unwrap(err)
		if next == nil {
			return err.Error()
		}
		err = next
	}
}

// decodeJSON decodes and validates the request body into dst. It writes the
// error response itself and reports whether the handler may continue.
func decodeJSON(w http.ResponseWriter, r *http.Request, dst interface{}) bool {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err := dec.Decode(dst); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request body: malformed JSON")
		return false
	}
	if err := validate.Struct(dst); err != nil {
		respondValidationError(w, err)
		return false
	}
	return true
}

// decodeOptionalJSON is decodeJSON for endpoints where the body may be empty
func decodeOptionalJSON(w http.ResponseWriter, r *http.Request, dst interface{}) bool {
	if r.Body == nil || r.ContentLength == 0 {
		return true
	}
	return decodeJSON(w, r, dst)
}

func parseIDParam(w http.ResponseWriter, r *http.Request, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(chi.URLParam(r, name))
	if err != nil {
		respondWithError(w, http.StatusBadRequest, fmt.Sprintf("Invalid %s", name))
		return uuid.Nil, false
	}
	return id, true
}

// optionalUUIDQuery parses a UUID query parameter. An absent parameter is
// nil, a malformed one is reported with ok=false.
func optionalUUIDQuery(w http.ResponseWriter, r *http.Request, name string) (*uuid.UUID, bool) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return nil, true
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		respondWithError(w, http.StatusBadRequest, fmt.Sprintf("Invalid %s", name))
		return nil, false
	}
	return &id, true
}

func optionalStringQuery(r *http.Request, name string) *string {
	if v := r.URL.Query().Get(name); v != "" {
		return &v
	}
	return nil
}

func parsePagination(r *http.Request) (int, int) {
	page, _ := strconv.Atoi(r.URL.Query().Get("page"))
	pageSize, _ := strconv.Atoi(r.URL.Query().Get("pageSize"))
	return repository.NormalizePagination(page, pageSize)
}

func parseSort(r *http.Request) repository.SortOption {
	if s := r.URL.Query().Get("sortBy"); s != "" {
		return repository.SortOption(s)
	}
	return repository.SortByCreatedDesc
}

// respondFile streams a generated file. inline asks the browser to display
// it rather than download it.
func respondFile(w http.ResponseWriter, rendered *service.Rendered, inline bool) {
	disposition := "attachment"
	if inline {
		disposition = "inline"
	}
	w.Header().Set("Content-Type", rendered.ContentType)
	w.Header().Set("Content-Disposition", fmt.Sprintf("%s; filename=%q", disposition, rendered.Filename))
	w.Header().Set("Content-Length", strconv.Itoa(len(rendered.Data)))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(rendered.Data)
}

// transitionFromAction builds the transition request for the {action} route parameter
func transitionFromAction(w http.ResponseWriter, r *http.Request) (service.TransitionRequest, bool) {
	switch service.TransitionAction(chi.URLParam(r, "action")) {
	case service.ActionAdvance:
		return service.Advance(), true
	case service.ActionRetreat:
		return service.Retreat(), true
	case service.ActionJump:
		var req domain.JumpStatusRequest
		if !decodeJSON(w, r, &req) {
			return service.TransitionRequest{}, false
		}
		return service.JumpTo(req.Status), true
	default:
		respondWithError(w, http.StatusNotFound, "Unknown transition")
		return service.TransitionRequest{}, false
	}
}

func hasURLParam(r *http.Request, name string) bool {
	return chi.URLParam(r, name) != ""
}
