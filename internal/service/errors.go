package service

import "errors"

// Common service errors
var (
	// ErrNotFound is returned when a resource is not found
	ErrNotFound = errors.New("resource not found")

	// ErrInvalidInput is returned when input validation fails
	ErrInvalidInput = errors.New("invalid input")

	// ErrConflict is returned when there's a conflict (e.g., duplicate)
	ErrConflict = errors.New("resource conflict")
)

// Offer errors
var (
	ErrOfferNotFound          = errors.New("offer not found")
	ErrOfferInvalidTransition = errors.New("offer status transition not allowed")
	ErrOfferNotEditable       = errors.New("offer can no longer be edited")
	ErrOfferConverted         = errors.New("offer has been converted and cannot be deleted")
	ErrSaleNotFound           = errors.New("sale not found")
)

// Work execution errors
var (
	ErrServiceOrderNotFound = errors.New("service order not found")
	ErrServiceOrderHasWork  = errors.New("service order has dispatches and cannot be deleted")
	ErrJobNotFound          = errors.New("job not found")
	ErrJobNotInOrder        = errors.New("job does not belong to the service order")
	ErrDispatchNotFound     = errors.New("dispatch not found")
	ErrDispatchCancelled    = errors.New("dispatch is cancelled")
	ErrInvalidStatus        = errors.New("unknown status")
)

// Entry errors
var (
	ErrEntryNotFound      = errors.New("entry not found")
	ErrExpenseNotPending  = errors.New("expense has already been reviewed")
	ErrArticleNotFound    = errors.New("article not found")
	ErrDuplicateSKU       = errors.New("an article with this SKU already exists")
	ErrMaterialNameNeeded = errors.New("material name is required when no article is referenced")
)

// Document and settings errors
var (
	ErrDocumentNotFound      = errors.New("document not found")
	ErrPreviewNotFound       = errors.New("preview session not found")
	ErrUnknownSettingsPath   = errors.New("unknown settings path")
	ErrInvalidSettingsImport = errors.New("invalid settings document")
)
