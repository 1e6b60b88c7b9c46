package mapper_test

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/straye-as/fieldservice-api/internal/domain"
	"github.com/straye-as/fieldservice-api/internal/mapper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToOfferDTO(t *testing.T) {
	created := time.Date(2026, 2, 1, 8, 30, 0, 0, time.UTC)
	sent := created.Add(48 * time.Hour)
	saleID := uuid.New()

	offer := &domain.Offer{
		OfferNumber:       "OFF-2026-0001",
		Title:             "Boiler replacement",
		Status:            domain.OfferStatusAccepted,
		SentAt:            &sent,
		ConvertedToSaleID: &saleID,
		Items: []domain.OfferItem{
			{Type: domain.OfferItemTypeArticle, Name: "Boiler", Quantity: 1, UnitPrice: 900, TotalPrice: 900},
		},
	}
	offer.ID = uuid.New()
	offer.CreatedAt = created
	offer.UpdatedAt = created

	dto := mapper.ToOfferDTO(offer)

	assert.Equal(t, offer.ID, dto.ID)
	assert.Equal(t, "2026-02-01T08:30:00Z", dto.CreatedAt)
	assert.Equal(t, "2026-02-03T08:30:00Z", dto.SentAt)
	assert.Empty(t, dto.RespondedAt)
	assert.Equal(t, &saleID, dto.ConvertedToSaleID)
	require.Len(t, dto.Items, 1)
	assert.Equal(t, "Boiler", dto.Items[0].Name)
}

func TestToOfferDTO_EmptyItemsIsNotNil(t *testing.T) {
	dto := mapper.ToOfferDTO(&domain.Offer{Title: "x"})
	assert.NotNil(t, dto.Items)
	assert.Empty(t, dto.Items)
}

func TestToServiceOrderDTO(t *testing.T) {
	order := &domain.ServiceOrder{
		Title:      "Annual service",
		Status:     domain.ServiceOrderStatusPlanned,
		Financials: domain.Financials{LaborCost: 100, ActualCost: 100},
	}

	dto := mapper.ToServiceOrderDTO(order)
	assert.NotNil(t, dto.AssignedTechnicians)
	assert.Nil(t, dto.Jobs)
	assert.Equal(t, 100.0, dto.Financials.ActualCost)

	order.Jobs = []domain.Job{{Title: "Inspect", Status: domain.JobStatusScheduled}}
	dto = mapper.ToServiceOrderDTO(order)
	require.Len(t, dto.Jobs, 1)
	assert.Equal(t, domain.JobStatusScheduled, dto.Jobs[0].Status)
}

func TestToStatusWindowDTO(t *testing.T) {
	tests := []struct {
		name     string
		current  domain.ServiceOrderStatus
		previous domain.StepSlotDTO
		next     domain.StepSlotDTO
	}{
		{
			name:     "first step",
			current:  domain.ServiceOrderStatusOpen,
			previous: domain.StepSlotDTO{Index: -1, Empty: true},
			next:     domain.StepSlotDTO{Status: "ready_for_planning", Index: 1},
		},
		{
			name:     "middle step",
			current:  domain.ServiceOrderStatusPlanned,
			previous: domain.StepSlotDTO{Status: "ready_for_planning", Index: 1},
			next:     domain.StepSlotDTO{Status: "technically_completed", Index: 3},
		},
		{
			name:     "last step",
			current:  domain.ServiceOrderStatusClosed,
			previous: domain.StepSlotDTO{Status: "invoiced", Index: 4},
			next:     domain.StepSlotDTO{Index: 6, Empty: true},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dto := mapper.ToStatusWindowDTO(domain.ServiceOrderSteps, tt.current)
			assert.Len(t, dto.Steps, len(domain.ServiceOrderSteps))
			assert.Equal(t, string(tt.current), dto.Current.Status)
			assert.Equal(t, tt.previous, dto.Previous)
			assert.Equal(t, tt.next, dto.Next)
		})
	}
}

func TestToTransitionResultDTO_Rejected(t *testing.T) {
	dto := mapper.ToTransitionResultDTO(domain.JobSteps, domain.JobStatusScheduled, domain.JobStatusScheduled, false, "skips 1 steps")

	assert.False(t, dto.Changed)
	assert.Equal(t, "scheduled", dto.From)
	assert.Equal(t, "scheduled", dto.To)
	assert.Equal(t, "scheduled", dto.Window.Current.Status)
	assert.Equal(t, "unscheduled", dto.Window.Previous.Status)
}
