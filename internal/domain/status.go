package domain

import (
	"fmt"

	"github.com/straye-as/fieldservice-api/internal/statusflow"
)

// EntityType names the owner of a status history row or stored document
type EntityType string

const (
	EntityTypeOffer        EntityType = "offer"
	EntityTypeServiceOrder EntityType = "service_order"
	EntityTypeJob          EntityType = "job"
	EntityTypeDispatch     EntityType = "dispatch"
	EntityTypeExpense      EntityType = "expense"
)

// OfferStatus represents the status of an offer
type OfferStatus string

const (
	OfferStatusDraft     OfferStatus = "draft"
	OfferStatusSent      OfferStatus = "sent"
	OfferStatusAccepted  OfferStatus = "accepted"
	OfferStatusDeclined  OfferStatus = "declined"
	OfferStatusCancelled OfferStatus = "cancelled"
	OfferStatusModified  OfferStatus = "modified"
)

// IsValid checks if the status is a valid OfferStatus value
func (s OfferStatus) IsValid() bool {
	switch s {
	case OfferStatusDraft, OfferStatusSent, OfferStatusAccepted,
		OfferStatusDeclined, OfferStatusCancelled, OfferStatusModified:
		return true
	}
	return false
}

// Offer status is not a linear flow. Conversion is not a status change,
// an accepted offer stays accepted once converted.
var offerTransitions = map[OfferStatus][]OfferStatus{
	OfferStatusDraft:    {OfferStatusSent},
	OfferStatusModified: {OfferStatusSent},
	OfferStatusSent:     {OfferStatusAccepted, OfferStatusDeclined, OfferStatusModified},
	OfferStatusAccepted: {OfferStatusCancelled},
}

// CanTransitionTo reports whether the offer may move from s to next
func (s OfferStatus) CanTransitionTo(next OfferStatus) bool {
	for _, allowed := range offerTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// IsEditable reports whether items and amounts of an offer in this status may change
func (s OfferStatus) IsEditable() bool {
	return s == OfferStatusDraft || s == OfferStatusModified || s == OfferStatusSent
}

// OfferItemType separates sale-eligible articles from service-order-eligible services
type OfferItemType string

const (
	OfferItemTypeArticle OfferItemType = "article"
	OfferItemTypeService OfferItemType = "service"
)

func (t OfferItemType) IsValid() bool {
	return t == OfferItemTypeArticle || t == OfferItemTypeService
}

type DiscountType string

const (
	DiscountTypePercentage DiscountType = "percentage"
	DiscountTypeFixed      DiscountType = "fixed"
)

func (t DiscountType) IsValid() bool {
	return t == DiscountTypePercentage || t == DiscountTypeFixed
}

type SaleStatus string

const (
	SaleStatusOpen      SaleStatus = "open"
	SaleStatusInvoiced  SaleStatus = "invoiced"
	SaleStatusCancelled SaleStatus = "cancelled"
)

// ServiceOrderStatus values in traversal order
type ServiceOrderStatus string

const (
	ServiceOrderStatusOpen                 ServiceOrderStatus = "open"
	ServiceOrderStatusReadyForPlanning     ServiceOrderStatus = "ready_for_planning"
	ServiceOrderStatusPlanned              ServiceOrderStatus = "planned"
	ServiceOrderStatusTechnicallyCompleted ServiceOrderStatus = "technically_completed"
	ServiceOrderStatusInvoiced             ServiceOrderStatus = "invoiced"
	ServiceOrderStatusClosed               ServiceOrderStatus = "closed"
)

// ServiceOrderSteps is the ordered service order vocabulary
var ServiceOrderSteps = []ServiceOrderStatus{
	ServiceOrderStatusOpen,
	ServiceOrderStatusReadyForPlanning,
	ServiceOrderStatusPlanned,
	ServiceOrderStatusTechnicallyCompleted,
	ServiceOrderStatusInvoiced,
	ServiceOrderStatusClosed,
}

func (s ServiceOrderStatus) IsValid() bool {
	return contains(ServiceOrderSteps, s)
}

// LocksWork reports whether the order has been billed. Jobs and dispatches of
// a locked order keep their status.
func (s ServiceOrderStatus) LocksWork() bool {
	return s == ServiceOrderStatusInvoiced || s == ServiceOrderStatusClosed
}

// NewServiceOrderFlow positions a service order flow at current
func NewServiceOrderFlow(current ServiceOrderStatus) (*statusflow.Flow[ServiceOrderStatus], error) {
	return statusflow.New(ServiceOrderSteps, current)
}

// DispatchStatus values in traversal order, plus the absorbing cancelled state
type DispatchStatus string

const (
	DispatchStatusPending      DispatchStatus = "pending"
	DispatchStatusAssigned     DispatchStatus = "assigned"
	DispatchStatusAcknowledged DispatchStatus = "acknowledged"
	DispatchStatusEnRoute      DispatchStatus = "en_route"
	DispatchStatusOnSite       DispatchStatus = "on_site"
	DispatchStatusInProgress   DispatchStatus = "in_progress"
	DispatchStatusCompleted    DispatchStatus = "completed"
	DispatchStatusCancelled    DispatchStatus = "cancelled"
)

// DispatchSteps excludes cancelled, which is reachable from anywhere but is not a step
var DispatchSteps = []DispatchStatus{
	DispatchStatusPending,
	DispatchStatusAssigned,
	DispatchStatusAcknowledged,
	DispatchStatusEnRoute,
	DispatchStatusOnSite,
	DispatchStatusInProgress,
	DispatchStatusCompleted,
}

func (s DispatchStatus) IsValid() bool {
	return s == DispatchStatusCancelled || contains(DispatchSteps, s)
}

// IsTerminal reports whether no further transitions apply
func (s DispatchStatus) IsTerminal() bool {
	return s == DispatchStatusCancelled
}

// NewDispatchFlow positions a dispatch flow at current. A cancelled dispatch has no flow.
func NewDispatchFlow(current DispatchStatus) (*statusflow.Flow[DispatchStatus], error) {
	if current.IsTerminal() {
		return nil, fmt.Errorf("%w: dispatch is %s", ErrTransitionRejected, current)
	}
	return statusflow.New(DispatchSteps, current)
}

// JobStatus values in traversal order, plus the absorbing cancelled state
type JobStatus string

const (
	JobStatusUnscheduled JobStatus = "unscheduled"
	JobStatusScheduled   JobStatus = "scheduled"
	JobStatusInProgress  JobStatus = "in_progress"
	JobStatusCompleted   JobStatus = "completed"
	JobStatusCancelled   JobStatus = "cancelled"
)

var JobSteps = []JobStatus{
	JobStatusUnscheduled,
	JobStatusScheduled,
	JobStatusInProgress,
	JobStatusCompleted,
}

func (s JobStatus) IsValid() bool {
	return s == JobStatusCancelled || contains(JobSteps, s)
}

func (s JobStatus) IsTerminal() bool {
	return s == JobStatusCancelled
}

// NewJobFlow positions a job flow at current. A cancelled job has no flow.
func NewJobFlow(current JobStatus) (*statusflow.Flow[JobStatus], error) {
	if current.IsTerminal() {
		return nil, fmt.Errorf("%w: job is %s", ErrTransitionRejected, current)
	}
	return statusflow.New(JobSteps, current)
}

type WorkType string

const (
	WorkTypeTravel        WorkType = "travel"
	WorkTypeSetup         WorkType = "setup"
	WorkTypeWork          WorkType = "work"
	WorkTypeCleanup       WorkType = "cleanup"
	WorkTypeDocumentation WorkType = "documentation"
)

func (t WorkType) IsValid() bool {
	switch t {
	case WorkTypeTravel, WorkTypeSetup, WorkTypeWork, WorkTypeCleanup, WorkTypeDocumentation:
		return true
	}
	return false
}

type ExpenseType string

const (
	ExpenseTypeTravel        ExpenseType = "travel"
	ExpenseTypeMeal          ExpenseType = "meal"
	ExpenseTypeAccommodation ExpenseType = "accommodation"
	ExpenseTypeMaterials     ExpenseType = "materials"
	ExpenseTypeOther         ExpenseType = "other"
)

func (t ExpenseType) IsValid() bool {
	switch t {
	case ExpenseTypeTravel, ExpenseTypeMeal, ExpenseTypeAccommodation, ExpenseTypeMaterials, ExpenseTypeOther:
		return true
	}
	return false
}

type ExpenseStatus string

const (
	ExpenseStatusPending  ExpenseStatus = "pending"
	ExpenseStatusApproved ExpenseStatus = "approved"
	ExpenseStatusRejected ExpenseStatus = "rejected"
)

type OldArticleStatus string

const (
	OldArticleStatusBroken    OldArticleStatus = "broken"
	OldArticleStatusNotBroken OldArticleStatus = "not_broken"
	OldArticleStatusUnknown   OldArticleStatus = "unknown"
)

func (s OldArticleStatus) IsValid() bool {
	return s == OldArticleStatusBroken || s == OldArticleStatusNotBroken || s == OldArticleStatusUnknown
}

type DocumentKind string

const (
	DocumentKindPDF  DocumentKind = "pdf"
	DocumentKindXLSX DocumentKind = "xlsx"
)

func contains[S comparable](steps []S, s S) bool {
	for _, step := range steps {
		if step == s {
			return true
		}
	}
	return false
}
