package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/straye-as/fieldservice-api/internal/costing"
	"github.com/straye-as/fieldservice-api/internal/document"
	"github.com/straye-as/fieldservice-api/internal/domain"
	"github.com/straye-as/fieldservice-api/internal/mapper"
	"github.com/straye-as/fieldservice-api/internal/repository"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// ServiceOrderService manages service orders and their status flow
type ServiceOrderService struct {
	db           *gorm.DB
	orderRepo    *repository.ServiceOrderRepository
	jobRepo      *repository.JobRepository
	dispatchRepo *repository.DispatchRepository
	historyRepo  *repository.StatusHistoryRepository
	numbers      *NumberSequenceService
	logger       *zap.Logger
	now          func() time.Time
}

func NewServiceOrderService(db *gorm.DB, numbers *NumberSequenceService, logger *zap.Logger) *ServiceOrderService {
	return &ServiceOrderService{
		db:           db,
		orderRepo:    repository.NewServiceOrderRepository(db),
		jobRepo:      repository.NewJobRepository(db),
		dispatchRepo: repository.NewDispatchRepository(db),
		historyRepo:  repository.NewStatusHistoryRepository(db),
		numbers:      numbers,
		logger:       logger,
		now:          time.Now,
	}
}

func (s *ServiceOrderService) Create(ctx context.Context, req *domain.CreateServiceOrderRequest) (*domain.ServiceOrderDTO, error) {
	priority := req.Priority
	if priority == "" {
		priority = domain.PriorityMedium
	}

	order := &domain.ServiceOrder{
		Title:               req.Title,
		Description:         req.Description,
		ContactID:           req.ContactID,
		ContactName:         req.ContactName,
		Status:              domain.ServiceOrderStatusOpen,
		Priority:            priority,
		AssignedTechnicians: req.AssignedTechnicians,
		EstimatedDuration:   req.EstimatedDuration,
		Financials:          domain.Financials{EstimatedCost: req.EstimatedCost},
		ScheduledAt:         req.ScheduledAt,
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		number, err := s.numbers.WithTx(tx).Generate(ctx, PrefixServiceOrder)
		if err != nil {
			return err
		}
		order.OrderNumber = number

		if err := s.orderRepo.WithTx(tx).Create(ctx, order); err != nil {
			return fmt.Errorf("failed to create service order: %w", err)
		}
		return s.historyRepo.WithTx(tx).RecordTransition(ctx, domain.EntityTypeServiceOrder, order.ID, "", string(order.Status), "created")
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("service order created",
		zap.String("serviceOrderID", order.ID.String()),
		zap.String("orderNumber", order.OrderNumber))

	return s.GetByID(ctx, order.ID)
}

func (s *ServiceOrderService) GetByID(ctx context.Context, id uuid.UUID) (*domain.ServiceOrderDTO, error) {
	order, err := getServiceOrder(ctx, s.orderRepo, id)
	if err != nil {
		return nil, err
	}
	dto := mapper.ToServiceOrderDTO(order)
	return &dto, nil
}

// Update replaces the manually entered fields. Derived costs are left to the rollup.
func (s *ServiceOrderService) Update(ctx context.Context, id uuid.UUID, req *domain.UpdateServiceOrderRequest) (*domain.ServiceOrderDTO, error) {
	err := s.db.Transaction(func(tx *gorm.DB) error {
		order, err := getServiceOrder(ctx, s.orderRepo.WithTx(tx), id)
		if err != nil {
			return err
		}

		order.Title = req.Title
		order.Description = req.Description
		order.ContactName = req.ContactName
		order.Priority = req.Priority
		order.AssignedTechnicians = req.AssignedTechnicians
		order.EstimatedDuration = req.EstimatedDuration
		order.ScheduledAt = req.ScheduledAt
		order.Financials.EstimatedCost = req.EstimatedCost
		order.Financials.EquipmentCost = req.EquipmentCost
		order.Financials.Sum()

		if err := s.orderRepo.WithTx(tx).Update(ctx, order); err != nil {
			return fmt.Errorf("failed to update service order: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return s.GetByID(ctx, id)
}

// Delete removes a service order and its jobs. Orders with dispatches are kept.
func (s *ServiceOrderService) Delete(ctx context.Context, id uuid.UUID) error {
	if _, err := getServiceOrder(ctx, s.orderRepo, id); err != nil {
		return err
	}

	dispatches, err := s.dispatchRepo.ListByServiceOrder(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to list dispatches: %w", err)
	}
	if len(dispatches) > 0 {
		return ErrServiceOrderHasWork
	}

	return s.db.Transaction(func(tx *gorm.DB) error {
		if err := s.jobRepo.WithTx(tx).DeleteByServiceOrder(ctx, id); err != nil {
			return fmt.Errorf("failed to delete jobs: %w", err)
		}
		if err := s.orderRepo.WithTx(tx).Delete(ctx, id); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrServiceOrderNotFound
			}
			return fmt.Errorf("failed to delete service order: %w", err)
		}
		return s.historyRepo.WithTx(tx).DeleteByEntity(ctx, domain.EntityTypeServiceOrder, id)
	})
}

func (s *ServiceOrderService) List(ctx context.Context, page, pageSize int, filters *repository.ServiceOrderFilters, sortBy repository.SortOption) (*domain.PaginatedResponse, error) {
	page, pageSize = repository.NormalizePagination(page, pageSize)

	orders, total, err := s.orderRepo.List(ctx, page, pageSize, filters, sortBy)
	if err != nil {
		return nil, fmt.Errorf("failed to list service orders: %w", err)
	}

	dtos := make([]domain.ServiceOrderDTO, len(orders))
	for i := range orders {
		dtos[i] = mapper.ToServiceOrderDTO(&orders[i])
	}
	return paginated(dtos, total, page, pageSize), nil
}

// Transition moves the order along its status flow. A move outside the
// previous/current/next window is not an error: the result has Changed=false
// and the order is untouched.
func (s *ServiceOrderService) Transition(ctx context.Context, id uuid.UUID, req TransitionRequest) (*domain.TransitionResultDTO, error) {
	var result *domain.TransitionResultDTO

	err := s.db.Transaction(func(tx *gorm.DB) error {
		orderRepo := s.orderRepo.WithTx(tx)
		order, err := getServiceOrder(ctx, orderRepo, id)
		if err != nil {
			return err
		}

		flow, err := domain.NewServiceOrderFlow(order.Status)
		if err != nil {
			return fmt.Errorf("%w: %v", ErrInvalidStatus, err)
		}

		t, rejected, err := applyTransition(flow, req)
		if err != nil {
			return err
		}
		if rejected != nil {
			result = rejectedResult(domain.ServiceOrderSteps, order.Status, rejected)
			return nil
		}
		result = appliedResult(domain.ServiceOrderSteps, t)
		if !t.Changed {
			return nil
		}

		order.Status = t.To
		switch {
		case t.To == domain.ServiceOrderStatusTechnicallyCompleted && order.CompletedAt == nil:
			now := s.now()
			order.CompletedAt = &now
		case t.To == domain.ServiceOrderStatusPlanned:
			order.CompletedAt = nil
		}
		if err := orderRepo.Update(ctx, order); err != nil {
			return fmt.Errorf("failed to update service order status: %w", err)
		}
		return s.historyRepo.WithTx(tx).RecordTransition(ctx, domain.EntityTypeServiceOrder, id, string(t.From), string(t.To), "")
	})
	if err != nil {
		return nil, err
	}

	if result.Changed {
		s.logger.Info("service order status changed",
			zap.String("serviceOrderID", id.String()),
			zap.String("from", result.From),
			zap.String("to", result.To))
	} else if result.Reason != "" {
		s.logger.Debug("service order transition ignored",
			zap.String("serviceOrderID", id.String()),
			zap.String("action", string(req.Action)),
			zap.String("reason", result.Reason))
	}
	return result, nil
}

// StatusWindow returns the previous/current/next projection without changing anything
func (s *ServiceOrderService) StatusWindow(ctx context.Context, id uuid.UUID) (*domain.StatusWindowDTO, error) {
	order, err := getServiceOrder(ctx, s.orderRepo, id)
	if err != nil {
		return nil, err
	}
	w := mapper.ToStatusWindowDTO(domain.ServiceOrderSteps, order.Status)
	return &w, nil
}

// RecalculateFinancials refreshes derived costs from all recorded entries
func (s *ServiceOrderService) RecalculateFinancials(ctx context.Context, id uuid.UUID) (*domain.ServiceOrderDTO, error) {
	err := s.db.Transaction(func(tx *gorm.DB) error {
		order, err := getServiceOrder(ctx, s.orderRepo.WithTx(tx), id)
		if err != nil {
			return err
		}
		return rollupServiceOrder(ctx, tx, order)
	})
	if err != nil {
		return nil, err
	}
	return s.GetByID(ctx, id)
}

// TimeSummary totals the time recorded against the order, or one of its dispatches
func (s *ServiceOrderService) TimeSummary(ctx context.Context, id uuid.UUID, dispatchID *uuid.UUID) (*domain.TimeSummaryDTO, error) {
	if _, err := getServiceOrder(ctx, s.orderRepo, id); err != nil {
		return nil, err
	}

	entries, err := repository.NewTimeEntryRepository(s.db).List(ctx, repository.EntryScope{ServiceOrderID: id, DispatchID: dispatchID})
	if err != nil {
		return nil, fmt.Errorf("failed to list time entries: %w", err)
	}
	summary, err := costing.SummarizeTime(entries)
	if err != nil {
		return nil, err
	}
	dto := mapper.ToTimeSummaryDTO(summary)
	return &dto, nil
}

// Report gathers the order and its records for the work report document
func (s *ServiceOrderService) Report(ctx context.Context, id uuid.UUID) (document.ServiceOrderReport, error) {
	order, err := getServiceOrder(ctx, s.orderRepo, id)
	if err != nil {
		return document.ServiceOrderReport{}, err
	}
	entries, err := loadEntries(ctx, s.db, repository.EntryScope{ServiceOrderID: id})
	if err != nil {
		return document.ServiceOrderReport{}, err
	}
	return document.ServiceOrderReport{
		Order:     order,
		Time:      entries.Time,
		Materials: entries.Materials,
		Expenses:  entries.Expenses,
	}, nil
}

func (s *ServiceOrderService) History(ctx context.Context, id uuid.UUID) ([]domain.StatusHistoryDTO, error) {
	if _, err := getServiceOrder(ctx, s.orderRepo, id); err != nil {
		return nil, err
	}
	return listHistory(ctx, s.historyRepo, domain.EntityTypeServiceOrder, id)
}

func getServiceOrder(ctx context.Context, repo *repository.ServiceOrderRepository, id uuid.UUID) (*domain.ServiceOrder, error) {
	order, err := repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrServiceOrderNotFound
		}
		return nil, fmt.Errorf("failed to get service order: %w", err)
	}
	return order, nil
}
