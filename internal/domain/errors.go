package domain

import (
	"fmt"

	"github.com/straye-as/fieldservice-api/internal/statusflow"
)

// ErrTransitionRejected is returned for transitions outside the allowed window,
// on a disabled flow, or from a terminal state. The entity is left unchanged.
var ErrTransitionRejected = statusflow.ErrRejected

// ValidationError reports malformed input to a derivation or cost function
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return "validation failed: " + e.Message
	}
	return fmt.Sprintf("validation failed: %s %s", e.Field, e.Message)
}

// NewValidationError builds a ValidationError for field
func NewValidationError(field, format string, args ...any) *ValidationError {
	return &ValidationError{Field: field, Message: fmt.Sprintf(format, args...)}
}

// ConversionErrorKind enumerates why an offer conversion was refused
type ConversionErrorKind string

const (
	ConversionNothingSelected ConversionErrorKind = "nothing_selected"
	ConversionNoEligibleItems ConversionErrorKind = "no_eligible_items"
	ConversionNotAccepted     ConversionErrorKind = "not_accepted"
)

// ConversionError reports unmet conversion preconditions. The offer is unchanged.
type ConversionError struct {
	Kind   ConversionErrorKind
	Detail string
}

func (e *ConversionError) Error() string {
	if e.Detail == "" {
		return "conversion rejected: " + string(e.Kind)
	}
	return fmt.Sprintf("conversion rejected: %s: %s", e.Kind, e.Detail)
}

// ExternalServiceError wraps a failure from a renderer, storage backend,
// settings store or platform capability.
type ExternalServiceError struct {
	Service string
	Op      string
	Err     error
}

func (e *ExternalServiceError) Error() string {
	return fmt.Sprintf("%s %s failed: %v", e.Service, e.Op, e.Err)
}

func (e *ExternalServiceError) Unwrap() error {
	return e.Err
}

// APIError represents a standardized API error with HTTP status code
type APIError struct {
	Type   string            `json:"type"`
	Title  string            `json:"title"`
	Status int               `json:"status"`
	Detail string            `json:"detail,omitempty"`
	Errors map[string]string `json:"errors,omitempty"`
}

// Error implements the error interface
func (e *APIError) Error() string {
	if e.Detail != "" {
		return e.Detail
	}
	return e.Title
}

// ValidationMessages provides human-readable validation error messages
// These map validator tags to user-friendly messages
var ValidationMessages = map[string]string{
	"required": "This field is required",
	"email":    "Must be a valid email address",
	"max":      "Exceeds maximum length",
	"min":      "Below minimum length",
	"gte":      "Must be greater than or equal to minimum value",
	"gt":       "Must be greater than minimum value",
	"lte":      "Must be less than or equal to maximum value",
	"lt":       "Must be less than maximum value",
	"uuid":     "Must be a valid UUID",
	"url":      "Must be a valid URL",
	"oneof":    "Must be one of the allowed values",
	"numeric":  "Must be a numeric value",
	"gtfield":  "Must be after the related field",
	"dive":     "Contains an invalid entry",
}

// GetValidationMessage returns a human-readable message for a validation tag
func GetValidationMessage(tag string) string {
	if msg, ok := ValidationMessages[tag]; ok {
		return msg
	}
	return "Validation failed: " + tag
}

// Common error types for RFC 7807 Problem Details
const (
	ErrorTypeValidation = "validation_error"
	ErrorTypeNotFound   = "not_found"
	ErrorTypeBadRequest = "bad_request"
	ErrorTypeConflict   = "conflict"
	ErrorTypeInternal   = "internal_error"
	ErrorTypeUpstream   = "upstream_error"
	ErrorTypeConversion = "conversion_rejected"
)
