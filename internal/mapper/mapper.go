package mapper

import (
	"time"

	"github.com/straye-as/fieldservice-api/internal/costing"
	"github.com/straye-as/fieldservice-api/internal/domain"
	"github.com/straye-as/fieldservice-api/internal/statusflow"
)

const timeLayout = "2006-01-02T15:04:05Z"

// FormatTime renders t in UTC as ISO 8601, empty for the zero time
func FormatTime(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.UTC().Format(timeLayout)
}

func formatTimePtr(t *time.Time) string {
	if t == nil {
		return ""
	}
	return FormatTime(*t)
}

func technicians(ids []string) []string {
	if ids == nil {
		return []string{}
	}
	return ids
}

// ToOfferDTO converts Offer to OfferDTO
func ToOfferDTO(offer *domain.Offer) domain.OfferDTO {
	dto := domain.OfferDTO{
		ID:                        offer.ID,
		OfferNumber:               offer.OfferNumber,
		Title:                     offer.Title,
		ContactID:                 offer.ContactID,
		ContactName:               offer.ContactName,
		Amount:                    offer.Amount,
		Taxes:                     offer.Taxes,
		Discount:                  offer.Discount,
		TotalAmount:               offer.TotalAmount,
		Status:                    offer.Status,
		Category:                  offer.Category,
		Source:                    offer.Source,
		Description:               offer.Description,
		Notes:                     offer.Notes,
		ValidUntil:                formatTimePtr(offer.ValidUntil),
		SentAt:                    formatTimePtr(offer.SentAt),
		RespondedAt:               formatTimePtr(offer.RespondedAt),
		ConvertedToSaleID:         offer.ConvertedToSaleID,
		ConvertedToServiceOrderID: offer.ConvertedToServiceOrderID,
		ConvertedAt:               formatTimePtr(offer.ConvertedAt),
		RenewedFromID:             offer.RenewedFromID,
		CreatedAt:                 FormatTime(offer.CreatedAt),
		UpdatedAt:                 FormatTime(offer.UpdatedAt),
	}

	dto.Items = make([]domain.OfferItemDTO, 0, len(offer.Items))
	for i := range offer.Items {
		dto.Items = append(dto.Items, ToOfferItemDTO(&offer.Items[i]))
	}
	return dto
}

// ToOfferItemDTO converts OfferItem to OfferItemDTO
func ToOfferItemDTO(item *domain.OfferItem) domain.OfferItemDTO {
	return domain.OfferItemDTO{
		ID:           item.ID,
		Type:         item.Type,
		ItemID:       item.ItemID,
		Name:         item.Name,
		Description:  item.Description,
		Quantity:     item.Quantity,
		UnitPrice:    item.UnitPrice,
		Discount:     item.Discount,
		DiscountType: item.DiscountType,
		TotalPrice:   item.TotalPrice,
		Position:     item.Position,
	}
}

// ToSaleDTO converts Sale to SaleDTO
func ToSaleDTO(sale *domain.Sale) domain.SaleDTO {
	dto := domain.SaleDTO{
		ID:          sale.ID,
		SaleNumber:  sale.SaleNumber,
		OfferID:     sale.OfferID,
		Title:       sale.Title,
		ContactID:   sale.ContactID,
		ContactName: sale.ContactName,
		Amount:      sale.Amount,
		Status:      sale.Status,
		CreatedAt:   FormatTime(sale.CreatedAt),
		Items:       make([]domain.SaleItemDTO, 0, len(sale.Items)),
	}
	for _, item := range sale.Items {
		dto.Items = append(dto.Items, domain.SaleItemDTO{
			ID:         item.ID,
			ItemID:     item.ItemID,
			Name:       item.Name,
			Quantity:   item.Quantity,
			UnitPrice:  item.UnitPrice,
			TotalPrice: item.TotalPrice,
		})
	}
	return dto
}

func ToFinancialsDTO(f domain.Financials) domain.FinancialsDTO {
	return domain.FinancialsDTO{
		EstimatedCost: f.EstimatedCost,
		LaborCost:     f.LaborCost,
		MaterialCost:  f.MaterialCost,
		TravelCost:    f.TravelCost,
		EquipmentCost: f.EquipmentCost,
		OverheadCost:  f.OverheadCost,
		ActualCost:    f.ActualCost,
	}
}

// ToServiceOrderDTO converts ServiceOrder to ServiceOrderDTO. Jobs are
// included only when they were loaded.
func ToServiceOrderDTO(order *domain.ServiceOrder) domain.ServiceOrderDTO {
	dto := domain.ServiceOrderDTO{
		ID:                  order.ID,
		OrderNumber:         order.OrderNumber,
		Title:               order.Title,
		Description:         order.Description,
		ContactID:           order.ContactID,
		ContactName:         order.ContactName,
		OfferID:             order.OfferID,
		Status:              order.Status,
		Priority:            order.Priority,
		AssignedTechnicians: technicians(order.AssignedTechnicians),
		EstimatedDuration:   order.EstimatedDuration,
		ActualDuration:      order.ActualDuration,
		Financials:          ToFinancialsDTO(order.Financials),
		ScheduledAt:         formatTimePtr(order.ScheduledAt),
		CompletedAt:         formatTimePtr(order.CompletedAt),
		CreatedAt:           FormatTime(order.CreatedAt),
		UpdatedAt:           FormatTime(order.UpdatedAt),
	}
	if len(order.Jobs) > 0 {
		dto.Jobs = make([]domain.JobDTO, 0, len(order.Jobs))
		for i := range order.Jobs {
			dto.Jobs = append(dto.Jobs, ToJobDTO(&order.Jobs[i]))
		}
	}
	return dto
}

func ToJobDTO(job *domain.Job) domain.JobDTO {
	return domain.JobDTO{
		ID:                  job.ID,
		ServiceOrderID:      job.ServiceOrderID,
		Title:               job.Title,
		Description:         job.Description,
		Status:              job.Status,
		AssignedTechnicians: technicians(job.AssignedTechnicians),
		EstimatedDuration:   job.EstimatedDuration,
		ActualDuration:      job.ActualDuration,
		Financials:          ToFinancialsDTO(job.Financials),
		ScheduledAt:         formatTimePtr(job.ScheduledAt),
		CreatedAt:           FormatTime(job.CreatedAt),
		UpdatedAt:           FormatTime(job.UpdatedAt),
	}
}

func ToDispatchDTO(d *domain.Dispatch) domain.DispatchDTO {
	return domain.DispatchDTO{
		ID:                  d.ID,
		DispatchNumber:      d.DispatchNumber,
		ServiceOrderID:      d.ServiceOrderID,
		JobID:               d.JobID,
		Status:              d.Status,
		Priority:            d.Priority,
		AssignedTechnicians: technicians(d.AssignedTechnicians),
		ScheduledStart:      formatTimePtr(d.ScheduledStart),
		EstimatedDuration:   d.EstimatedDuration,
		ActualDuration:      d.ActualDuration,
		Financials:          ToFinancialsDTO(d.Financials),
		CancelledAt:         formatTimePtr(d.CancelledAt),
		CancelReason:        d.CancelReason,
		Notes:               d.Notes,
		CreatedAt:           FormatTime(d.CreatedAt),
		UpdatedAt:           FormatTime(d.UpdatedAt),
	}
}

func ToTimeEntryDTO(e *domain.TimeEntry) domain.TimeEntryDTO {
	return domain.TimeEntryDTO{
		ID:             e.ID,
		ServiceOrderID: e.ServiceOrderID,
		DispatchID:     e.DispatchID,
		TechnicianID:   e.TechnicianID,
		WorkType:       e.WorkType,
		StartTime:      formatTimePtr(e.StartTime),
		EndTime:        formatTimePtr(e.EndTime),
		Duration:       e.Duration,
		Billable:       e.Billable,
		HourlyRate:     e.HourlyRate,
		TotalCost:      e.TotalCost,
		Description:    e.Description,
		CreatedAt:      FormatTime(e.CreatedAt),
	}
}

func ToExpenseEntryDTO(e *domain.ExpenseEntry) domain.ExpenseEntryDTO {
	return domain.ExpenseEntryDTO{
		ID:             e.ID,
		ServiceOrderID: e.ServiceOrderID,
		DispatchID:     e.DispatchID,
		TechnicianID:   e.TechnicianID,
		Type:           e.Type,
		Amount:         e.Amount,
		Status:         e.Status,
		Description:    e.Description,
		ReceiptRef:     e.ReceiptRef,
		IncurredAt:     FormatTime(e.IncurredAt),
		CreatedAt:      FormatTime(e.CreatedAt),
	}
}

func ToMaterialUsageDTO(m *domain.MaterialUsage) domain.MaterialUsageDTO {
	return domain.MaterialUsageDTO{
		ID:             m.ID,
		ServiceOrderID: m.ServiceOrderID,
		DispatchID:     m.DispatchID,
		ArticleID:      m.ArticleID,
		Name:           m.Name,
		Quantity:       m.Quantity,
		UnitPrice:      m.UnitPrice,
		TotalCost:      m.TotalCost,
		Replacing:      m.Replacing,
		UsedAt:         FormatTime(m.UsedAt),
	}
}

func ToArticleDTO(a *domain.Article) domain.ArticleDTO {
	return domain.ArticleDTO{
		ID:        a.ID,
		SKU:       a.SKU,
		Name:      a.Name,
		Type:      a.Type,
		Category:  a.Category,
		Unit:      a.Unit,
		UnitPrice: a.UnitPrice,
		Stock:     a.Stock,
		IsActive:  a.IsActive,
	}
}

func ToStatusHistoryDTO(h *domain.StatusHistory) domain.StatusHistoryDTO {
	return domain.StatusHistoryDTO{
		ID:         h.ID,
		EntityType: h.EntityType,
		EntityID:   h.EntityID,
		FromStatus: h.FromStatus,
		ToStatus:   h.ToStatus,
		Note:       h.Note,
		ChangedAt:  FormatTime(h.ChangedAt),
	}
}

func ToStoredDocumentDTO(d *domain.StoredDocument) domain.StoredDocumentDTO {
	return domain.StoredDocumentDTO{
		ID:          d.ID,
		EntityType:  d.EntityType,
		EntityID:    d.EntityID,
		Kind:        d.Kind,
		Filename:    d.Filename,
		ContentType: d.ContentType,
		Size:        d.Size,
		CreatedAt:   FormatTime(d.CreatedAt),
	}
}

func ToTimeSummaryDTO(s costing.TimeSummary) domain.TimeSummaryDTO {
	return domain.TimeSummaryDTO{
		TotalMinutes:    s.TotalMinutes,
		Hours:           s.Hours,
		Minutes:         s.Minutes,
		BillableMinutes: s.BillableMinutes,
		BillableCost:    s.BillableCost,
	}
}

// ToStatusWindowDTO projects the previous/current/next window of current
// within steps.
func ToStatusWindowDTO[S ~string](steps []S, current S) domain.StatusWindowDTO {
	view := statusflow.Window(steps, current)

	dto := domain.StatusWindowDTO{
		Steps:    make([]string, 0, len(steps)),
		Previous: toSlotDTO(view.Previous),
		Current:  toSlotDTO(view.Current),
		Next:     toSlotDTO(view.Next),
	}
	for _, s := range steps {
		dto.Steps = append(dto.Steps, string(s))
	}
	return dto
}

func toSlotDTO[S ~string](slot statusflow.Slot[S]) domain.StepSlotDTO {
	return domain.StepSlotDTO{
		Status: string(slot.Step),
		Index:  slot.Index,
		Empty:  slot.Empty,
	}
}

// ToTransitionResultDTO reports a transition attempt. The window is built
// around to, which equals from for a rejected attempt.
func ToTransitionResultDTO[S ~string](steps []S, from, to S, changed bool, reason string) domain.TransitionResultDTO {
	return domain.TransitionResultDTO{
		Changed: changed,
		From:    string(from),
		To:      string(to),
		Reason:  reason,
		Window:  ToStatusWindowDTO(steps, to),
	}
}
