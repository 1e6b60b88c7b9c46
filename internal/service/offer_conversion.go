package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/straye-as/fieldservice-api/internal/domain"
	"github.com/straye-as/fieldservice-api/internal/mapper"
	"github.com/straye-as/fieldservice-api/internal/repository"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Convert turns an accepted offer into a sale (article items) and/or a
// service order (service items) in one transaction. A target that already
// exists is returned as is, so converting twice never creates duplicates.
// Precondition failures come back as *domain.ConversionError and leave the
// offer unchanged.
func (s *OfferService) Convert(ctx context.Context, id uuid.UUID, req domain.ConversionRequest) (*domain.ConversionResultDTO, error) {
	var result domain.ConversionResultDTO
	var created []string

	err := s.db.Transaction(func(tx *gorm.DB) error {
		offerRepo := s.offerRepo.WithTx(tx)

		offer, err := s.getOfferForUpdate(ctx, offerRepo, id)
		if err != nil {
			return err
		}

		plan, err := domain.PlanConversion(offer, req)
		if err != nil {
			return err
		}

		result = domain.ConversionResultDTO{
			OfferID:        offer.ID,
			SaleID:         plan.SaleID,
			ServiceOrderID: plan.ServiceOrderID,
		}
		if plan.NothingToCreate() {
			if offer.ConvertedAt != nil {
				result.ConvertedAt = mapper.FormatTime(*offer.ConvertedAt)
			}
			return nil
		}

		now := s.now()
		numbers := s.numbers.WithTx(tx)
		updates := map[string]interface{}{"converted_at": now}

		if plan.CreateSale {
			sale, err := s.buildSale(ctx, numbers, offer, *plan.SaleID, plan.ArticleItems)
			if err != nil {
				return err
			}
			if err := s.saleRepo.WithTx(tx).Create(ctx, sale); err != nil {
				return fmt.Errorf("failed to create sale: %w", err)
			}
			updates["converted_to_sale_id"] = sale.ID
			created = append(created, "sale "+sale.SaleNumber)
		}

		if plan.CreateServiceOrder {
			order, err := s.buildServiceOrder(ctx, numbers, offer, *plan.ServiceOrderID, plan.ServiceItems)
			if err != nil {
				return err
			}
			if err := s.orderRepo.WithTx(tx).Create(ctx, order); err != nil {
				return fmt.Errorf("failed to create service order: %w", err)
			}
			jobRepo := s.jobRepo.WithTx(tx)
			for i := range order.Jobs {
				if err := jobRepo.Create(ctx, &order.Jobs[i]); err != nil {
					return fmt.Errorf("failed to create job: %w", err)
				}
			}
			if err := s.historyRepo.WithTx(tx).RecordTransition(ctx, domain.EntityTypeServiceOrder, order.ID, "", string(order.Status), "created from offer "+offer.OfferNumber); err != nil {
				return err
			}
			updates["converted_to_service_order_id"] = order.ID
			created = append(created, "service order "+order.OrderNumber)
		}

		if err := offerRepo.UpdateFields(ctx, offer.ID, updates); err != nil {
			return err
		}
		result.ConvertedAt = mapper.FormatTime(now)
		return nil
	})
	if err != nil {
		var convErr *domain.ConversionError
		if errors.As(err, &convErr) {
			s.logger.Info("offer conversion rejected",
				zap.String("offerID", id.String()),
				zap.String("kind", string(convErr.Kind)))
		}
		return nil, err
	}

	if len(created) > 0 {
		s.logger.Info("offer converted",
			zap.String("offerID", id.String()),
			zap.Strings("created", created))
	}
	return &result, nil
}

func (s *OfferService) buildSale(ctx context.Context, numbers *NumberSequenceService, offer *domain.Offer, id uuid.UUID, items []domain.OfferItem) (*domain.Sale, error) {
	number, err := numbers.Generate(ctx, PrefixSale)
	if err != nil {
		return nil, err
	}

	sale := &domain.Sale{
		SaleNumber:  number,
		OfferID:     offer.ID,
		Title:       offer.Title,
		ContactID:   offer.ContactID,
		ContactName: offer.ContactName,
		Status:      domain.SaleStatusOpen,
	}
	sale.ID = id

	amount := decimal.Zero
	for _, item := range items {
		sale.Items = append(sale.Items, domain.SaleItem{
			ItemID:     item.ItemID,
			Name:       item.Name,
			Quantity:   item.Quantity,
			UnitPrice:  item.UnitPrice,
			TotalPrice: item.TotalPrice,
		})
		amount = amount.Add(decimal.NewFromFloat(item.TotalPrice))
	}
	sale.Amount = amount.Round(2).InexactFloat64()
	return sale, nil
}

// buildServiceOrder opens a service order with one unscheduled job per service item.
// The service item totals become the estimated cost.
func (s *OfferService) buildServiceOrder(ctx context.Context, numbers *NumberSequenceService, offer *domain.Offer, id uuid.UUID, items []domain.OfferItem) (*domain.ServiceOrder, error) {
	number, err := numbers.Generate(ctx, PrefixServiceOrder)
	if err != nil {
		return nil, err
	}

	offerID := offer.ID
	order := &domain.ServiceOrder{
		OrderNumber: number,
		Title:       offer.Title,
		Description: offer.Description,
		ContactID:   offer.ContactID,
		ContactName: offer.ContactName,
		OfferID:     &offerID,
		Status:      domain.ServiceOrderStatusOpen,
		Priority:    domain.PriorityMedium,
	}
	order.ID = id

	estimate := decimal.Zero
	for _, item := range items {
		order.Jobs = append(order.Jobs, domain.Job{
			ServiceOrderID: id,
			Title:          item.Name,
			Description:    item.Description,
			Status:         domain.JobStatusUnscheduled,
			Financials:     domain.Financials{EstimatedCost: item.TotalPrice},
		})
		estimate = estimate.Add(decimal.NewFromFloat(item.TotalPrice))
	}
	order.Financials.EstimatedCost = estimate.Round(2).InexactFloat64()
	return order, nil
}

// GetSale returns a sale created by conversion
func (s *OfferService) GetSale(ctx context.Context, id uuid.UUID) (*domain.SaleDTO, error) {
	sale, err := s.saleRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrSaleNotFound
		}
		return nil, fmt.Errorf("failed to get sale: %w", err)
	}
	dto := mapper.ToSaleDTO(sale)
	return &dto, nil
}

func (s *OfferService) ListSales(ctx context.Context, page, pageSize int, status *domain.SaleStatus) (*domain.PaginatedResponse, error) {
	page, pageSize = repository.NormalizePagination(page, pageSize)

	sales, total, err := s.saleRepo.List(ctx, page, pageSize, status)
	if err != nil {
		return nil, fmt.Errorf("failed to list sales: %w", err)
	}

	dtos := make([]domain.SaleDTO, len(sales))
	for i := range sales {
		dtos[i] = mapper.ToSaleDTO(&sales[i])
	}
	return paginated(dtos, total, page, pageSize), nil
}
