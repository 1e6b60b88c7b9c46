package domain

import (
	"math"

	"github.com/shopspring/decimal"
)

var hundred = decimal.NewFromInt(100)

// RoundMoney rounds to currency minor units, half away from zero
func RoundMoney(v float64) float64 {
	return decimal.NewFromFloat(v).Round(2).InexactFloat64()
}

// CheckAmount rejects NaN, infinities and negative values
func CheckAmount(field string, v float64) error {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return NewValidationError(field, "must be a number")
	}
	if v < 0 {
		return NewValidationError(field, "must not be negative")
	}
	return nil
}

// ComputeItemTotal returns quantity*unitPrice minus the discount. A fixed
// discount larger than the subtotal yields a negative total.
func ComputeItemTotal(quantity int, unitPrice, discount float64, discountType DiscountType) (float64, error) {
	if quantity < 1 {
		return 0, NewValidationError("quantity", "must be at least 1")
	}
	if err := CheckAmount("unitPrice", unitPrice); err != nil {
		return 0, err
	}
	if err := CheckAmount("discount", discount); err != nil {
		return 0, err
	}
	if !discountType.IsValid() {
		return 0, NewValidationError("discountType", "must be percentage or fixed")
	}

	subtotal := decimal.NewFromInt(int64(quantity)).Mul(decimal.NewFromFloat(unitPrice))
	discountAmount := decimal.NewFromFloat(discount)
	if discountType == DiscountTypePercentage {
		discountAmount = subtotal.Mul(discountAmount).Div(hundred)
	}

	return subtotal.Sub(discountAmount).Round(2).InexactFloat64(), nil
}

// Recalculate derives TotalPrice from the item's inputs
func (i *OfferItem) Recalculate() error {
	if !i.Type.IsValid() {
		return NewValidationError("type", "must be article or service")
	}
	if i.DiscountType == "" {
		i.DiscountType = DiscountTypeFixed
	}
	total, err := ComputeItemTotal(i.Quantity, i.UnitPrice, i.Discount, i.DiscountType)
	if err != nil {
		return err
	}
	i.TotalPrice = total
	return nil
}

// Recalculate derives every item total, Amount and TotalAmount.
// TotalAmount = Amount + Taxes - Discount.
func (o *Offer) Recalculate() error {
	if err := CheckAmount("taxes", o.Taxes); err != nil {
		return err
	}
	if err := CheckAmount("discount", o.Discount); err != nil {
		return err
	}

	amount := decimal.Zero
	for idx := range o.Items {
		if err := o.Items[idx].Recalculate(); err != nil {
			return err
		}
		amount = amount.Add(decimal.NewFromFloat(o.Items[idx].TotalPrice))
	}

	o.Amount = amount.Round(2).InexactFloat64()
	o.TotalAmount = amount.
		Add(decimal.NewFromFloat(o.Taxes)).
		Sub(decimal.NewFromFloat(o.Discount)).
		Round(2).InexactFloat64()
	return nil
}

// ItemsOfType returns the items of the given type in their original order
func (o *Offer) ItemsOfType(t OfferItemType) []OfferItem {
	var out []OfferItem
	for _, item := range o.Items {
		if item.Type == t {
			out = append(out, item)
		}
	}
	return out
}

// Recalculate derives TotalCost = Quantity * UnitPrice
func (m *MaterialUsage) Recalculate() error {
	if m.Quantity < 1 {
		return NewValidationError("quantity", "must be at least 1")
	}
	if err := CheckAmount("unitPrice", m.UnitPrice); err != nil {
		return err
	}
	m.TotalCost = decimal.NewFromInt(int64(m.Quantity)).
		Mul(decimal.NewFromFloat(m.UnitPrice)).
		Round(2).InexactFloat64()
	return nil
}

// Sum sets ActualCost to the sum of the five cost fields
func (f *Financials) Sum() {
	f.ActualCost = decimal.NewFromFloat(f.LaborCost).
		Add(decimal.NewFromFloat(f.MaterialCost)).
		Add(decimal.NewFromFloat(f.TravelCost)).
		Add(decimal.NewFromFloat(f.EquipmentCost)).
		Add(decimal.NewFromFloat(f.OverheadCost)).
		Round(2).InexactFloat64()
}
