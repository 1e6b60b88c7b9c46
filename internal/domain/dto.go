package domain

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// DTOs for API responses

type OfferItemDTO struct {
	ID           uuid.UUID     `json:"id"`
	Type         OfferItemType `json:"type"`
	ItemID       string        `json:"itemId,omitempty"`
	Name         string        `json:"name"`
	Description  string        `json:"description,omitempty"`
	Quantity     int           `json:"quantity"`
	UnitPrice    float64       `json:"unitPrice"`
	Discount     float64       `json:"discount"`
	DiscountType DiscountType  `json:"discountType"`
	TotalPrice   float64       `json:"totalPrice"`
	Position     int           `json:"position"`
}

type OfferDTO struct {
	ID                        uuid.UUID      `json:"id"`
	OfferNumber               string         `json:"offerNumber,omitempty"`
	Title                     string         `json:"title"`
	ContactID                 *uuid.UUID     `json:"contactId,omitempty"`
	ContactName               string         `json:"contactName,omitempty"`
	Amount                    float64        `json:"amount"`
	Taxes                     float64        `json:"taxes"`
	Discount                  float64        `json:"discount"`
	TotalAmount               float64        `json:"totalAmount"`
	Status                    OfferStatus    `json:"status"`
	Category                  string         `json:"category,omitempty"`
	Source                    string         `json:"source,omitempty"`
	Description               string         `json:"description,omitempty"`
	Notes                     string         `json:"notes,omitempty"`
	ValidUntil                string         `json:"validUntil,omitempty"`
	SentAt                    string         `json:"sentAt,omitempty"`
	RespondedAt               string         `json:"respondedAt,omitempty"`
	ConvertedToSaleID         *uuid.UUID     `json:"convertedToSaleId,omitempty"`
	ConvertedToServiceOrderID *uuid.UUID     `json:"convertedToServiceOrderId,omitempty"`
	ConvertedAt               string         `json:"convertedAt,omitempty"`
	RenewedFromID             *uuid.UUID     `json:"renewedFromId,omitempty"`
	Items                     []OfferItemDTO `json:"items"`
	CreatedAt                 string         `json:"createdAt"` // ISO 8601
	UpdatedAt                 string         `json:"updatedAt"` // ISO 8601
}

type SaleItemDTO struct {
	ID         uuid.UUID `json:"id"`
	ItemID     string    `json:"itemId,omitempty"`
	Name       string    `json:"name"`
	Quantity   int       `json:"quantity"`
	UnitPrice  float64   `json:"unitPrice"`
	TotalPrice float64   `json:"totalPrice"`
}

type SaleDTO struct {
	ID          uuid.UUID     `json:"id"`
	SaleNumber  string        `json:"saleNumber,omitempty"`
	OfferID     uuid.UUID     `json:"offerId"`
	Title       string        `json:"title"`
	ContactID   *uuid.UUID    `json:"contactId,omitempty"`
	ContactName string        `json:"contactName,omitempty"`
	Amount      float64       `json:"amount"`
	Status      SaleStatus    `json:"status"`
	Items       []SaleItemDTO `json:"items"`
	CreatedAt   string        `json:"createdAt"`
}

type FinancialsDTO struct {
	EstimatedCost float64 `json:"estimatedCost"`
	LaborCost     float64 `json:"laborCost"`
	MaterialCost  float64 `json:"materialCost"`
	TravelCost    float64 `json:"travelCost"`
	EquipmentCost float64 `json:"equipmentCost"`
	OverheadCost  float64 `json:"overheadCost"`
	ActualCost    float64 `json:"actualCost"`
}

type ServiceOrderDTO struct {
	ID                  uuid.UUID          `json:"id"`
	OrderNumber         string             `json:"orderNumber,omitempty"`
	Title               string             `json:"title"`
	Description         string             `json:"description,omitempty"`
	ContactID           *uuid.UUID         `json:"contactId,omitempty"`
	ContactName         string             `json:"contactName,omitempty"`
	OfferID             *uuid.UUID         `json:"offerId,omitempty"`
	Status              ServiceOrderStatus `json:"status"`
	Priority            Priority           `json:"priority"`
	AssignedTechnicians []string           `json:"assignedTechnicians"`
	EstimatedDuration   int                `json:"estimatedDuration"`
	ActualDuration      int                `json:"actualDuration"`
	Financials          FinancialsDTO      `json:"financials"`
	ScheduledAt         string             `json:"scheduledAt,omitempty"`
	CompletedAt         string             `json:"completedAt,omitempty"`
	Jobs                []JobDTO           `json:"jobs,omitempty"`
	CreatedAt           string             `json:"createdAt"`
	UpdatedAt           string             `json:"updatedAt"`
}

type JobDTO struct {
	ID                  uuid.UUID     `json:"id"`
	ServiceOrderID      uuid.UUID     `json:"serviceOrderId"`
	Title               string        `json:"title"`
	Description         string        `json:"description,omitempty"`
	Status              JobStatus     `json:"status"`
	AssignedTechnicians []string      `json:"assignedTechnicians"`
	EstimatedDuration   int           `json:"estimatedDuration"`
	ActualDuration      int           `json:"actualDuration"`
	Financials          FinancialsDTO `json:"financials"`
	ScheduledAt         string        `json:"scheduledAt,omitempty"`
	CreatedAt           string        `json:"createdAt"`
	UpdatedAt           string        `json:"updatedAt"`
}

type DispatchDTO struct {
	ID                  uuid.UUID      `json:"id"`
	DispatchNumber      string         `json:"dispatchNumber,omitempty"`
	ServiceOrderID      uuid.UUID      `json:"serviceOrderId"`
	JobID               *uuid.UUID     `json:"jobId,omitempty"`
	Status              DispatchStatus `json:"status"`
	Priority            Priority       `json:"priority"`
	AssignedTechnicians []string       `json:"assignedTechnicians"`
	ScheduledStart      string         `json:"scheduledStart,omitempty"`
	EstimatedDuration   int            `json:"estimatedDuration"`
	ActualDuration      int            `json:"actualDuration"`
	Financials          FinancialsDTO  `json:"financials"`
	CancelledAt         string         `json:"cancelledAt,omitempty"`
	CancelReason        string         `json:"cancelReason,omitempty"`
	Notes               string         `json:"notes,omitempty"`
	CreatedAt           string         `json:"createdAt"`
	UpdatedAt           string         `json:"updatedAt"`
}

type TimeEntryDTO struct {
	ID             uuid.UUID  `json:"id"`
	ServiceOrderID uuid.UUID  `json:"serviceOrderId"`
	DispatchID     *uuid.UUID `json:"dispatchId,omitempty"`
	TechnicianID   string     `json:"technicianId"`
	WorkType       WorkType   `json:"workType"`
	StartTime      string     `json:"startTime,omitempty"`
	EndTime        string     `json:"endTime,omitempty"`
	Duration       int        `json:"duration"`
	Billable       bool       `json:"billable"`
	HourlyRate     float64    `json:"hourlyRate"`
	TotalCost      float64    `json:"totalCost"`
	Description    string     `json:"description,omitempty"`
	CreatedAt      string     `json:"createdAt"`
}

type ExpenseEntryDTO struct {
	ID             uuid.UUID     `json:"id"`
	ServiceOrderID uuid.UUID     `json:"serviceOrderId"`
	DispatchID     *uuid.UUID    `json:"dispatchId,omitempty"`
	TechnicianID   string        `json:"technicianId"`
	Type           ExpenseType   `json:"type"`
	Amount         float64       `json:"amount"`
	Status         ExpenseStatus `json:"status"`
	Description    string        `json:"description,omitempty"`
	ReceiptRef     string        `json:"receiptRef,omitempty"`
	IncurredAt     string        `json:"incurredAt"`
	CreatedAt      string        `json:"createdAt"`
}

type MaterialUsageDTO struct {
	ID             uuid.UUID            `json:"id"`
	ServiceOrderID uuid.UUID            `json:"serviceOrderId"`
	DispatchID     *uuid.UUID           `json:"dispatchId,omitempty"`
	ArticleID      *uuid.UUID           `json:"articleId,omitempty"`
	Name           string               `json:"name"`
	Quantity       int                  `json:"quantity"`
	UnitPrice      float64              `json:"unitPrice"`
	TotalCost      float64              `json:"totalCost"`
	Replacing      *MaterialReplacement `json:"replacing,omitempty"`
	UsedAt         string               `json:"usedAt"`
}

type ArticleDTO struct {
	ID        uuid.UUID     `json:"id"`
	SKU       string        `json:"sku"`
	Name      string        `json:"name"`
	Type      OfferItemType `json:"type"`
	Category  string        `json:"category,omitempty"`
	Unit      string        `json:"unit,omitempty"`
	UnitPrice float64       `json:"unitPrice"`
	Stock     int           `json:"stock"`
	IsActive  bool          `json:"isActive"`
}

type StatusHistoryDTO struct {
	ID         uuid.UUID  `json:"id"`
	EntityType EntityType `json:"entityType"`
	EntityID   uuid.UUID  `json:"entityId"`
	FromStatus string     `json:"fromStatus,omitempty"`
	ToStatus   string     `json:"toStatus"`
	Note       string     `json:"note,omitempty"`
	ChangedAt  string     `json:"changedAt"`
}

type StoredDocumentDTO struct {
	ID          uuid.UUID    `json:"id"`
	EntityType  EntityType   `json:"entityType"`
	EntityID    uuid.UUID    `json:"entityId"`
	Kind        DocumentKind `json:"kind"`
	Filename    string       `json:"filename"`
	ContentType string       `json:"contentType"`
	Size        int64        `json:"size"`
	CreatedAt   string       `json:"createdAt"`
}

// StepSlotDTO is one position of the previous/current/next status window
type StepSlotDTO struct {
	Status string `json:"status,omitempty"`
	Index  int    `json:"index"`
	Empty  bool   `json:"empty"`
}

type StatusWindowDTO struct {
	Steps    []string    `json:"steps"`
	Previous StepSlotDTO `json:"previous"`
	Current  StepSlotDTO `json:"current"`
	Next     StepSlotDTO `json:"next"`
}

// TransitionResultDTO reports a status transition. Changed=false means the
// request was outside the allowed window and nothing was modified.
type TransitionResultDTO struct {
	Changed bool            `json:"changed"`
	From    string          `json:"from"`
	To      string          `json:"to"`
	Reason  string          `json:"reason,omitempty"`
	Window  StatusWindowDTO `json:"window"`
}

type ConversionResultDTO struct {
	OfferID        uuid.UUID  `json:"offerId"`
	SaleID         *uuid.UUID `json:"saleId,omitempty"`
	ServiceOrderID *uuid.UUID `json:"serviceOrderId,omitempty"`
	ConvertedAt    string     `json:"convertedAt,omitempty"`
}

// PreviewDTO describes a live preview session. Version increases with every
// applied re-render; stale renders are dropped and never bump it.
type PreviewDTO struct {
	SessionID  uuid.UUID  `json:"sessionId"`
	EntityType EntityType `json:"entityType"`
	EntityID   uuid.UUID  `json:"entityId"`
	Filename   string     `json:"filename"`
	Version    int        `json:"version"`
	RenderedAt string     `json:"renderedAt,omitempty"`
	Error      string     `json:"error,omitempty"`
}

type ShareResultDTO struct {
	Outcome    string             `json:"outcome"`
	Document   *StoredDocumentDTO `json:"document,omitempty"`
	Recipient  string             `json:"recipient,omitempty"`
	CopiedLink string             `json:"copiedLink,omitempty"`
}

type TimeSummaryDTO struct {
	TotalMinutes    int     `json:"totalMinutes"`
	Hours           int     `json:"hours"`
	Minutes         int     `json:"minutes"`
	BillableMinutes int     `json:"billableMinutes"`
	BillableCost    float64 `json:"billableCost"`
}

// Pagination response wrapper
type PaginatedResponse struct {
	Data       interface{} `json:"data"`
	Total      int64       `json:"total"`
	Page       int         `json:"page"`
	PageSize   int         `json:"pageSize"`
	TotalPages int         `json:"totalPages"`
}

// API Response wrapper
type APIResponse struct {
	Data    interface{} `json:"data,omitempty"`
	Success bool        `json:"success"`
	Message string      `json:"message,omitempty"`
}

// Request DTOs

type OfferItemRequest struct {
	Type         OfferItemType `json:"type" validate:"required,oneof=article service"`
	ItemID       string        `json:"itemId,omitempty" validate:"max=100"`
	Name         string        `json:"name" validate:"required,max=200"`
	Description  string        `json:"description,omitempty"`
	Quantity     int           `json:"quantity" validate:"required,min=1"`
	UnitPrice    float64       `json:"unitPrice" validate:"gte=0"`
	Discount     float64       `json:"discount" validate:"gte=0"`
	DiscountType DiscountType  `json:"discountType,omitempty" validate:"omitempty,oneof=percentage fixed"`
}

type CreateOfferRequest struct {
	Title       string             `json:"title" validate:"required,max=200"`
	ContactID   *uuid.UUID         `json:"contactId,omitempty"`
	ContactName string             `json:"contactName,omitempty" validate:"max=200"`
	Taxes       float64            `json:"taxes" validate:"gte=0"`
	Discount    float64            `json:"discount" validate:"gte=0"`
	Category    string             `json:"category,omitempty" validate:"max=100"`
	Source      string             `json:"source,omitempty" validate:"max=100"`
	Description string             `json:"description,omitempty"`
	Notes       string             `json:"notes,omitempty"`
	ValidUntil  *time.Time         `json:"validUntil,omitempty"`
	Items       []OfferItemRequest `json:"items,omitempty" validate:"dive"`
}

// UpdateOfferRequest replaces the editable fields. Items, when non-nil,
// replace the full item list.
type UpdateOfferRequest struct {
	Title       string             `json:"title" validate:"required,max=200"`
	ContactID   *uuid.UUID         `json:"contactId,omitempty"`
	ContactName string             `json:"contactName,omitempty" validate:"max=200"`
	Taxes       float64            `json:"taxes" validate:"gte=0"`
	Discount    float64            `json:"discount" validate:"gte=0"`
	Category    string             `json:"category,omitempty" validate:"max=100"`
	Source      string             `json:"source,omitempty" validate:"max=100"`
	Description string             `json:"description,omitempty"`
	Notes       string             `json:"notes,omitempty"`
	ValidUntil  *time.Time         `json:"validUntil,omitempty"`
	Items       []OfferItemRequest `json:"items,omitempty" validate:"omitempty,dive"`
}

type SendOfferRequest struct {
	Recipient string `json:"recipient" validate:"required,email"`
	Message   string `json:"message,omitempty" validate:"max=2000"`
}

type CreateServiceOrderRequest struct {
	Title               string     `json:"title" validate:"required,max=200"`
	Description         string     `json:"description,omitempty"`
	ContactID           *uuid.UUID `json:"contactId,omitempty"`
	ContactName         string     `json:"contactName,omitempty" validate:"max=200"`
	Priority            Priority   `json:"priority,omitempty" validate:"omitempty,oneof=low medium high urgent"`
	AssignedTechnicians []string   `json:"assignedTechnicians,omitempty"`
	EstimatedDuration   int        `json:"estimatedDuration" validate:"gte=0"`
	EstimatedCost       float64    `json:"estimatedCost" validate:"gte=0"`
	ScheduledAt         *time.Time `json:"scheduledAt,omitempty"`
}

type UpdateServiceOrderRequest struct {
	Title               string     `json:"title" validate:"required,max=200"`
	Description         string     `json:"description,omitempty"`
	ContactName         string     `json:"contactName,omitempty" validate:"max=200"`
	Priority            Priority   `json:"priority" validate:"required,oneof=low medium high urgent"`
	AssignedTechnicians []string   `json:"assignedTechnicians,omitempty"`
	EstimatedDuration   int        `json:"estimatedDuration" validate:"gte=0"`
	EstimatedCost       float64    `json:"estimatedCost" validate:"gte=0"`
	EquipmentCost       float64    `json:"equipmentCost" validate:"gte=0"`
	ScheduledAt         *time.Time `json:"scheduledAt,omitempty"`
}

// JumpStatusRequest targets a step adjacent to the current one
type JumpStatusRequest struct {
	Status string `json:"status" validate:"required"`
}

type CreateJobRequest struct {
	Title               string     `json:"title" validate:"required,max=200"`
	Description         string     `json:"description,omitempty"`
	AssignedTechnicians []string   `json:"assignedTechnicians,omitempty"`
	EstimatedDuration   int        `json:"estimatedDuration" validate:"gte=0"`
	ScheduledAt         *time.Time `json:"scheduledAt,omitempty"`
}

type UpdateJobRequest struct {
	Title               string     `json:"title" validate:"required,max=200"`
	Description         string     `json:"description,omitempty"`
	AssignedTechnicians []string   `json:"assignedTechnicians,omitempty"`
	EstimatedDuration   int        `json:"estimatedDuration" validate:"gte=0"`
	ActualDuration      int        `json:"actualDuration" validate:"gte=0"`
	ScheduledAt         *time.Time `json:"scheduledAt,omitempty"`
}

type CreateDispatchRequest struct {
	JobID               *uuid.UUID `json:"jobId,omitempty"`
	Priority            Priority   `json:"priority,omitempty" validate:"omitempty,oneof=low medium high urgent"`
	AssignedTechnicians []string   `json:"assignedTechnicians,omitempty"`
	ScheduledStart      *time.Time `json:"scheduledStart,omitempty"`
	EstimatedDuration   int        `json:"estimatedDuration" validate:"gte=0"`
	Notes               string     `json:"notes,omitempty"`
}

type UpdateDispatchRequest struct {
	Priority            Priority   `json:"priority" validate:"required,oneof=low medium high urgent"`
	AssignedTechnicians []string   `json:"assignedTechnicians,omitempty"`
	ScheduledStart      *time.Time `json:"scheduledStart,omitempty"`
	EstimatedDuration   int        `json:"estimatedDuration" validate:"gte=0"`
	EquipmentCost       float64    `json:"equipmentCost" validate:"gte=0"`
	Notes               string     `json:"notes,omitempty"`
}

type CancelRequest struct {
	Reason string `json:"reason,omitempty" validate:"max=1000"`
}

// CreateTimeEntryRequest records time. Duration wins over the timestamps
// and is only derived from them when zero.
type CreateTimeEntryRequest struct {
	TechnicianID string     `json:"technicianId" validate:"required,max=100"`
	WorkType     WorkType   `json:"workType" validate:"required,oneof=travel setup work cleanup documentation"`
	StartTime    *time.Time `json:"startTime,omitempty"`
	EndTime      *time.Time `json:"endTime,omitempty"`
	Duration     int        `json:"duration" validate:"gte=0"`
	Billable     *bool      `json:"billable,omitempty"`
	HourlyRate   float64    `json:"hourlyRate" validate:"gte=0"`
	Description  string     `json:"description,omitempty"`
}

type CreateExpenseEntryRequest struct {
	TechnicianID string      `json:"technicianId" validate:"required,max=100"`
	Type         ExpenseType `json:"type" validate:"required,oneof=travel meal accommodation materials other"`
	Amount       float64     `json:"amount" validate:"gte=0"`
	Description  string      `json:"description,omitempty"`
	ReceiptRef   string      `json:"receiptRef,omitempty" validate:"max=500"`
	IncurredAt   *time.Time  `json:"incurredAt,omitempty"`
}

type MaterialReplacementRequest struct {
	OldArticleModel  string           `json:"oldArticleModel" validate:"required,max=200"`
	OldArticleStatus OldArticleStatus `json:"oldArticleStatus" validate:"required,oneof=broken not_broken unknown"`
	Photos           []string         `json:"photos,omitempty"`
}

type CreateMaterialUsageRequest struct {
	ArticleID *uuid.UUID                  `json:"articleId,omitempty"`
	Name      string                      `json:"name,omitempty" validate:"max=200"`
	Quantity  int                         `json:"quantity" validate:"required,min=1"`
	UnitPrice *float64                    `json:"unitPrice,omitempty" validate:"omitempty,gte=0"`
	Replacing *MaterialReplacementRequest `json:"replacing,omitempty"`
	UsedAt    *time.Time                  `json:"usedAt,omitempty"`
}

type CreateArticleRequest struct {
	SKU       string        `json:"sku" validate:"required,max=100"`
	Name      string        `json:"name" validate:"required,max=200"`
	Type      OfferItemType `json:"type" validate:"required,oneof=article service"`
	Category  string        `json:"category,omitempty" validate:"max=100"`
	Unit      string        `json:"unit,omitempty" validate:"max=50"`
	UnitPrice float64       `json:"unitPrice" validate:"gte=0"`
	Stock     int           `json:"stock" validate:"gte=0"`
}

type UpdateArticleRequest struct {
	Name      string  `json:"name" validate:"required,max=200"`
	Category  string  `json:"category,omitempty" validate:"max=100"`
	Unit      string  `json:"unit,omitempty" validate:"max=50"`
	UnitPrice float64 `json:"unitPrice" validate:"gte=0"`
	Stock     int     `json:"stock" validate:"gte=0"`
	IsActive  bool    `json:"isActive"`
}

// UpdateSettingRequest replaces the field at a dotted path, e.g. "colors.primary"
type UpdateSettingRequest struct {
	Path  string          `json:"path" validate:"required"`
	Value json.RawMessage `json:"value" validate:"required"`
}

type ApplyThemeRequest struct {
	Theme string `json:"theme" validate:"required"`
}

type ShareDocumentRequest struct {
	Recipient string `json:"recipient,omitempty" validate:"omitempty,email"`
	Message   string `json:"message,omitempty" validate:"max=2000"`
}
