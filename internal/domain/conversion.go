package domain

import "github.com/google/uuid"

// ConversionRequest selects the targets an accepted offer is converted into
type ConversionRequest struct {
	ToSale         bool `json:"convertToSale"`
	ToServiceOrder bool `json:"convertToServiceOrder"`
}

// ConversionPlan is the outcome of checking a conversion request against an offer.
// A target with an existing id is reused and never minted again.
type ConversionPlan struct {
	CreateSale         bool
	CreateServiceOrder bool
	SaleID             *uuid.UUID
	ServiceOrderID     *uuid.UUID
	ArticleItems       []OfferItem
	ServiceItems       []OfferItem
}

// NothingToCreate reports whether every requested target already exists
func (p *ConversionPlan) NothingToCreate() bool {
	return !p.CreateSale && !p.CreateServiceOrder
}

// PlanConversion validates req against o without modifying it.
// Order of checks: nothing selected, not accepted, no eligible items.
func PlanConversion(o *Offer, req ConversionRequest) (*ConversionPlan, error) {
	if !req.ToSale && !req.ToServiceOrder {
		return nil, &ConversionError{Kind: ConversionNothingSelected}
	}
	if o.Status != OfferStatusAccepted {
		return nil, &ConversionError{Kind: ConversionNotAccepted, Detail: "offer is " + string(o.Status)}
	}

	plan := &ConversionPlan{
		ArticleItems: o.ItemsOfType(OfferItemTypeArticle),
		ServiceItems: o.ItemsOfType(OfferItemTypeService),
	}

	if req.ToSale && len(plan.ArticleItems) == 0 {
		return nil, &ConversionError{Kind: ConversionNoEligibleItems, Detail: "sale requires at least one article item"}
	}
	if req.ToServiceOrder && len(plan.ServiceItems) == 0 {
		return nil, &ConversionError{Kind: ConversionNoEligibleItems, Detail: "service order requires at least one service item"}
	}

	if req.ToSale {
		if o.ConvertedToSaleID != nil {
			plan.SaleID = o.ConvertedToSaleID
		} else {
			id := uuid.New()
			plan.SaleID = &id
			plan.CreateSale = true
		}
	}
	if req.ToServiceOrder {
		if o.ConvertedToServiceOrderID != nil {
			plan.ServiceOrderID = o.ConvertedToServiceOrderID
		} else {
			id := uuid.New()
			plan.ServiceOrderID = &id
			plan.CreateServiceOrder = true
		}
	}

	return plan, nil
}

// Renewal copies o into a fresh draft. Identity, status, timestamps and
// conversion references are not carried over.
func (o *Offer) Renewal() *Offer {
	sourceID := o.ID
	renewed := &Offer{
		Title:         o.Title,
		ContactID:     o.ContactID,
		ContactName:   o.ContactName,
		Taxes:         o.Taxes,
		Discount:      o.Discount,
		Status:        OfferStatusDraft,
		Category:      o.Category,
		Source:        o.Source,
		Description:   o.Description,
		Notes:         o.Notes,
		RenewedFromID: &sourceID,
	}
	renewed.Items = make([]OfferItem, 0, len(o.Items))
	for _, item := range o.Items {
		renewed.Items = append(renewed.Items, OfferItem{
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
		})
	}
	return renewed
}
