package domain

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Base model with common fields
type BaseModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key"`
	CreatedAt time.Time `gorm:"not null"`
	UpdatedAt time.Time `gorm:"not null"`
}

// BeforeCreate assigns an identity when the caller has not minted one.
func (m *BaseModel) BeforeCreate(tx *gorm.DB) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	return nil
}

// Priority is shared by service orders and dispatches
type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
	PriorityUrgent Priority = "urgent"
)

// Offer represents a sales proposal
type Offer struct {
	BaseModel
	OfferNumber               string      `gorm:"type:varchar(50);index"`
	Title                     string      `gorm:"type:varchar(200);not null;index"`
	ContactID                 *uuid.UUID  `gorm:"type:uuid;index"`
	ContactName               string      `gorm:"type:varchar(200)"`
	Amount                    float64     `gorm:"type:decimal(15,2);not null;default:0"`
	Taxes                     float64     `gorm:"type:decimal(15,2);not null;default:0"`
	Discount                  float64     `gorm:"type:decimal(15,2);not null;default:0"`
	TotalAmount               float64     `gorm:"type:decimal(15,2);not null;default:0"`
	Status                    OfferStatus `gorm:"type:varchar(50);not null;index"`
	Category                  string      `gorm:"type:varchar(100);index"`
	Source                    string      `gorm:"type:varchar(100);index"`
	Description               string      `gorm:"type:text"`
	Notes                     string      `gorm:"type:text"`
	ValidUntil                *time.Time
	SentAt                    *time.Time
	RespondedAt               *time.Time
	ConvertedToSaleID         *uuid.UUID  `gorm:"type:uuid"`
	ConvertedToServiceOrderID *uuid.UUID  `gorm:"type:uuid"`
	ConvertedAt               *time.Time
	RenewedFromID             *uuid.UUID  `gorm:"type:uuid"`
	Items                     []OfferItem `gorm:"foreignKey:OfferID;constraint:OnDelete:CASCADE"`
}

// OfferItem represents a line entry of an offer. TotalPrice is derived, see Recalculate.
type OfferItem struct {
	BaseModel
	OfferID      uuid.UUID     `gorm:"type:uuid;not null;index"`
	Type         OfferItemType `gorm:"type:varchar(20);not null"`
	ItemID       string        `gorm:"type:varchar(100)"`
	Name         string        `gorm:"type:varchar(200);not null"`
	Description  string        `gorm:"type:text"`
	Quantity     int           `gorm:"not null"`
	UnitPrice    float64       `gorm:"type:decimal(15,2);not null"`
	Discount     float64       `gorm:"type:decimal(15,2);not null;default:0"`
	DiscountType DiscountType  `gorm:"type:varchar(20);not null"`
	TotalPrice   float64       `gorm:"type:decimal(15,2);not null"`
	Position     int           `gorm:"not null;default:0"`
}

// Sale is created from the article lines of an accepted offer
type Sale struct {
	BaseModel
	SaleNumber  string     `gorm:"type:varchar(50);index"`
	OfferID     uuid.UUID  `gorm:"type:uuid;not null;index"`
	Title       string     `gorm:"type:varchar(200);not null"`
	ContactID   *uuid.UUID `gorm:"type:uuid"`
	ContactName string     `gorm:"type:varchar(200)"`
	Amount      float64    `gorm:"type:decimal(15,2);not null"`
	Status      SaleStatus `gorm:"type:varchar(50);not null"`
	Items       []SaleItem `gorm:"foreignKey:SaleID;constraint:OnDelete:CASCADE"`
}

type SaleItem struct {
	BaseModel
	SaleID     uuid.UUID `gorm:"type:uuid;not null;index"`
	ItemID     string    `gorm:"type:varchar(100)"`
	Name       string    `gorm:"type:varchar(200);not null"`
	Quantity   int       `gorm:"not null"`
	UnitPrice  float64   `gorm:"type:decimal(15,2);not null"`
	TotalPrice float64   `gorm:"type:decimal(15,2);not null"`
}

// Financials holds the cost breakdown of a work entity.
// ActualCost is always the sum of the five cost fields.
type Financials struct {
	EstimatedCost float64 `gorm:"type:decimal(15,2);not null;default:0"`
	LaborCost     float64 `gorm:"type:decimal(15,2);not null;default:0"`
	MaterialCost  float64 `gorm:"type:decimal(15,2);not null;default:0"`
	TravelCost    float64 `gorm:"type:decimal(15,2);not null;default:0"`
	EquipmentCost float64 `gorm:"type:decimal(15,2);not null;default:0"`
	OverheadCost  float64 `gorm:"type:decimal(15,2);not null;default:0"`
	ActualCost    float64 `gorm:"type:decimal(15,2);not null;default:0"`
}

// ServiceOrder is the top-level work execution entity
type ServiceOrder struct {
	BaseModel
	OrderNumber         string             `gorm:"type:varchar(50);index"`
	Title               string             `gorm:"type:varchar(200);not null;index"`
	Description         string             `gorm:"type:text"`
	ContactID           *uuid.UUID         `gorm:"type:uuid;index"`
	ContactName         string             `gorm:"type:varchar(200)"`
	OfferID             *uuid.UUID         `gorm:"type:uuid;index"`
	Status              ServiceOrderStatus `gorm:"type:varchar(50);not null;index"`
	Priority            Priority           `gorm:"type:varchar(20);not null"`
	AssignedTechnicians []string           `gorm:"type:text;serializer:json"`
	EstimatedDuration   int                `gorm:"not null;default:0"`
	ActualDuration      int                `gorm:"not null;default:0"`
	Financials          Financials         `gorm:"embedded;embeddedPrefix:fin_"`
	ScheduledAt         *time.Time
	CompletedAt         *time.Time
	Jobs                []Job              `gorm:"foreignKey:ServiceOrderID;constraint:OnDelete:CASCADE"`
}

// Job is a work package under a service order
type Job struct {
	BaseModel
	ServiceOrderID      uuid.UUID  `gorm:"type:uuid;not null;index"`
	Title               string     `gorm:"type:varchar(200);not null"`
	Description         string     `gorm:"type:text"`
	Status              JobStatus  `gorm:"type:varchar(50);not null;index"`
	AssignedTechnicians []string   `gorm:"type:text;serializer:json"`
	EstimatedDuration   int        `gorm:"not null;default:0"`
	ActualDuration      int        `gorm:"not null;default:0"`
	Financials          Financials `gorm:"embedded;embeddedPrefix:fin_"`
	ScheduledAt         *time.Time
}

// Dispatch assigns technicians to go on site for a service order
type Dispatch struct {
	BaseModel
	DispatchNumber      string         `gorm:"type:varchar(50);index"`
	ServiceOrderID      uuid.UUID      `gorm:"type:uuid;not null;index"`
	JobID               *uuid.UUID     `gorm:"type:uuid;index"`
	Status              DispatchStatus `gorm:"type:varchar(50);not null;index"`
	Priority            Priority       `gorm:"type:varchar(20);not null"`
	AssignedTechnicians []string       `gorm:"type:text;serializer:json"`
	ScheduledStart      *time.Time
	EstimatedDuration   int            `gorm:"not null;default:0"`
	ActualDuration      int            `gorm:"not null;default:0"`
	Financials          Financials     `gorm:"embedded;embeddedPrefix:fin_"`
	CancelledAt         *time.Time
	CancelReason        string         `gorm:"type:text"`
	Notes               string         `gorm:"type:text"`
}

// TimeEntry records technician time against a service order and optionally a dispatch.
// Duration (minutes) is authoritative; StartTime/EndTime are informational.
type TimeEntry struct {
	BaseModel
	ServiceOrderID uuid.UUID  `gorm:"type:uuid;not null;index"`
	DispatchID     *uuid.UUID `gorm:"type:uuid;index"`
	TechnicianID   string     `gorm:"type:varchar(100);not null;index"`
	WorkType       WorkType   `gorm:"type:varchar(30);not null"`
	StartTime      *time.Time
	EndTime        *time.Time
	Duration       int     `gorm:"not null"`
	Billable       bool    `gorm:"not null;default:true"`
	HourlyRate     float64 `gorm:"type:decimal(15,2);not null;default:0"`
	TotalCost      float64 `gorm:"type:decimal(15,2);not null;default:0"`
	Description    string  `gorm:"type:text"`
}

// ExpenseEntry records an out-of-pocket technician expense
type ExpenseEntry struct {
	BaseModel
	ServiceOrderID uuid.UUID     `gorm:"type:uuid;not null;index"`
	DispatchID     *uuid.UUID    `gorm:"type:uuid;index"`
	TechnicianID   string        `gorm:"type:varchar(100);not null;index"`
	Type           ExpenseType   `gorm:"type:varchar(30);not null"`
	Amount         float64       `gorm:"type:decimal(15,2);not null"`
	Status         ExpenseStatus `gorm:"type:varchar(20);not null;index"`
	Description    string        `gorm:"type:text"`
	ReceiptRef     string        `gorm:"type:varchar(500)"`
	IncurredAt     time.Time
}

// MaterialReplacement describes the part a material usage replaced
type MaterialReplacement struct {
	OldArticleModel  string           `json:"oldArticleModel"`
	OldArticleStatus OldArticleStatus `json:"oldArticleStatus"`
	Photos           []string         `json:"photos,omitempty"`
}

// MaterialUsage records consumed material. TotalCost is derived.
type MaterialUsage struct {
	BaseModel
	ServiceOrderID uuid.UUID            `gorm:"type:uuid;not null;index"`
	DispatchID     *uuid.UUID           `gorm:"type:uuid;index"`
	ArticleID      *uuid.UUID           `gorm:"type:uuid"`
	Name           string               `gorm:"type:varchar(200);not null"`
	Quantity       int                  `gorm:"not null"`
	UnitPrice      float64              `gorm:"type:decimal(15,2);not null"`
	TotalCost      float64              `gorm:"type:decimal(15,2);not null"`
	Replacing      *MaterialReplacement `gorm:"type:text;serializer:json"`
	UsedAt         time.Time
}

// Article is a catalog entry referenced by offer items and material usage
type Article struct {
	BaseModel
	SKU       string        `gorm:"type:varchar(100);uniqueIndex"`
	Name      string        `gorm:"type:varchar(200);not null;index"`
	Type      OfferItemType `gorm:"type:varchar(20);not null;index"`
	Category  string        `gorm:"type:varchar(100);index"`
	Unit      string        `gorm:"type:varchar(50)"`
	UnitPrice float64       `gorm:"type:decimal(15,2);not null"`
	Stock     int           `gorm:"not null;default:0"`
	IsActive  bool          `gorm:"not null;default:true"`
}

// StatusHistory records every successful status transition
type StatusHistory struct {
	ID         uuid.UUID  `gorm:"type:uuid;primary_key"`
	EntityType EntityType `gorm:"type:varchar(50);not null;index:idx_status_history_entity"`
	EntityID   uuid.UUID  `gorm:"type:uuid;not null;index:idx_status_history_entity"`
	FromStatus string     `gorm:"type:varchar(50)"`
	ToStatus   string     `gorm:"type:varchar(50);not null"`
	Note       string     `gorm:"type:text"`
	ChangedAt  time.Time  `gorm:"not null;index"`
}

// TableName overrides the default table name to match the migration
func (StatusHistory) TableName() string {
	return "status_history"
}

func (h *StatusHistory) BeforeCreate(tx *gorm.DB) error {
	if h.ID == uuid.Nil {
		h.ID = uuid.New()
	}
	return nil
}

// NumberSequence tracks the last used sequence per prefix/year
type NumberSequence struct {
	Prefix       string    `gorm:"type:varchar(10);primaryKey"`
	Year         int       `gorm:"primaryKey"`
	LastSequence int       `gorm:"not null;default:0"`
	CreatedAt    time.Time `gorm:"not null"`
	UpdatedAt    time.Time `gorm:"not null"`
}

// StoredDocument is a rendered document persisted to blob storage
type StoredDocument struct {
	BaseModel
	EntityType  EntityType   `gorm:"type:varchar(50);not null;index"`
	EntityID    uuid.UUID    `gorm:"type:uuid;not null;index"`
	Kind        DocumentKind `gorm:"type:varchar(20);not null"`
	Filename    string       `gorm:"type:varchar(255);not null"`
	ContentType string       `gorm:"type:varchar(100);not null"`
	StoragePath string       `gorm:"type:varchar(500);not null"`
	Size        int64        `gorm:"not null"`
}

// SettingsEntry is one key of the persisted settings key-value table
type SettingsEntry struct {
	Key       string    `gorm:"type:varchar(200);primaryKey"`
	Value     string    `gorm:"type:text;not null"`
	UpdatedAt time.Time `gorm:"not null"`
}

// TableName overrides the default table name to match the migration
func (SettingsEntry) TableName() string {
	return "settings_entries"
}
