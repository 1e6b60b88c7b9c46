// Package costing derives monetary amounts from time, expense and material
// records. All functions are pure; amounts are rounded to 2 decimals and
// invalid input is reported as *domain.ValidationError, never as NaN.
package costing

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/straye-as/fieldservice-api/internal/domain"
)

var sixty = decimal.NewFromInt(60)

// ComputeTimeCost returns duration/60 * hourlyRate, or 0 for non-billable time.
func ComputeTimeCost(entry domain.TimeEntry) (float64, error) {
	if entry.Duration < 0 {
		return 0, domain.NewValidationError("duration", "must not be negative")
	}
	if err := domain.CheckAmount("hourlyRate", entry.HourlyRate); err != nil {
		return 0, err
	}
	if !entry.Billable {
		return 0, nil
	}
	return timeCost(entry).Round(2).InexactFloat64(), nil
}

func timeCost(entry domain.TimeEntry) decimal.Decimal {
	if !entry.Billable {
		return decimal.Zero
	}
	return decimal.NewFromInt(int64(entry.Duration)).
		Div(sixty).
		Mul(decimal.NewFromFloat(entry.HourlyRate))
}

// ComputeMaterialCost returns quantity * unitPrice.
func ComputeMaterialCost(usage domain.MaterialUsage) (float64, error) {
	if usage.Quantity < 1 {
		return 0, domain.NewValidationError("quantity", "must be at least 1")
	}
	if err := domain.CheckAmount("unitPrice", usage.UnitPrice); err != nil {
		return 0, err
	}
	return decimal.NewFromInt(int64(usage.Quantity)).
		Mul(decimal.NewFromFloat(usage.UnitPrice)).
		Round(2).InexactFloat64(), nil
}

// AggregateTimeTracking returns the total minutes across entries.
func AggregateTimeTracking(entries []domain.TimeEntry) (int, error) {
	total := 0
	for _, e := range entries {
		if e.Duration < 0 {
			return 0, domain.NewValidationError("duration", "must not be negative")
		}
		total += e.Duration
	}
	return total, nil
}

// HoursMinutes splits minutes into whole hours and the remainder.
func HoursMinutes(totalMinutes int) (hours, minutes int) {
	return totalMinutes / 60, totalMinutes % 60
}

// TimeSummary aggregates a set of time entries for reporting.
type TimeSummary struct {
	TotalMinutes    int
	Hours           int
	Minutes         int
	BillableMinutes int
	BillableCost    float64
}

// SummarizeTime totals minutes and billable cost. Cost is summed before
// rounding so per-entry rounding does not accumulate.
func SummarizeTime(entries []domain.TimeEntry) (TimeSummary, error) {
	var summary TimeSummary
	cost := decimal.Zero

	for _, e := range entries {
		if _, err := ComputeTimeCost(e); err != nil {
			return TimeSummary{}, err
		}
		summary.TotalMinutes += e.Duration
		if e.Billable {
			summary.BillableMinutes += e.Duration
			cost = cost.Add(timeCost(e))
		}
	}

	summary.Hours, summary.Minutes = HoursMinutes(summary.TotalMinutes)
	summary.BillableCost = cost.Round(2).InexactFloat64()
	return summary, nil
}

// ResolveDuration returns the authoritative duration in minutes. When both
// timestamps are given start must precede end. The duration is derived from
// the timestamps only when it is zero.
func ResolveDuration(start, end *time.Time, duration int) (int, error) {
	if duration < 0 {
		return 0, domain.NewValidationError("duration", "must not be negative")
	}
	if start == nil || end == nil {
		return duration, nil
	}
	if !start.Before(*end) {
		return 0, domain.NewValidationError("endTime", "must be after startTime")
	}
	if duration == 0 {
		return int(end.Sub(*start) / time.Minute), nil
	}
	return duration, nil
}

// Entries groups the records a financial rollup is computed from.
type Entries struct {
	Time      []domain.TimeEntry
	Expenses  []domain.ExpenseEntry
	Materials []domain.MaterialUsage
}

// RollupFinancials recomputes the derived cost fields of current:
//
//	labor     billable time that is not travel
//	travel    billable travel time + approved travel, meal and accommodation expenses
//	material  material usage + approved materials expenses
//	overhead  approved other expenses
//
// EstimatedCost and EquipmentCost are entered manually and kept as is.
// Pending and rejected expenses are ignored.
func RollupFinancials(current domain.Financials, entries Entries) (domain.Financials, error) {
	labor, travel, material, overhead := decimal.Zero, decimal.Zero, decimal.Zero, decimal.Zero

	for _, e := range entries.Time {
		if _, err := ComputeTimeCost(e); err != nil {
			return domain.Financials{}, err
		}
		if e.WorkType == domain.WorkTypeTravel {
			travel = travel.Add(timeCost(e))
		} else {
			labor = labor.Add(timeCost(e))
		}
	}

	for _, m := range entries.Materials {
		cost, err := ComputeMaterialCost(m)
		if err != nil {
			return domain.Financials{}, err
		}
		material = material.Add(decimal.NewFromFloat(cost))
	}

	for _, x := range entries.Expenses {
		if err := domain.CheckAmount("amount", x.Amount); err != nil {
			return domain.Financials{}, err
		}
		if x.Status != domain.ExpenseStatusApproved {
			continue
		}
		amount := decimal.NewFromFloat(x.Amount)
		switch x.Type {
		case domain.ExpenseTypeTravel, domain.ExpenseTypeMeal, domain.ExpenseTypeAccommodation:
			travel = travel.Add(amount)
		case domain.ExpenseTypeMaterials:
			material = material.Add(amount)
		default:
			overhead = overhead.Add(amount)
		}
	}

	out := domain.Financials{
		EstimatedCost: current.EstimatedCost,
		EquipmentCost: current.EquipmentCost,
		LaborCost:     labor.Round(2).InexactFloat64(),
		TravelCost:    travel.Round(2).InexactFloat64(),
		MaterialCost:  material.Round(2).InexactFloat64(),
		OverheadCost:  overhead.Round(2).InexactFloat64(),
	}
	out.Sum()
	return out, nil
}
