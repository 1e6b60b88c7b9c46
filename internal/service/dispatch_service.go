package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/straye-as/fieldservice-api/internal/domain"
	"github.com/straye-as/fieldservice-api/internal/logger"
	"github.com/straye-as/fieldservice-api/internal/mapper"
	"github.com/straye-as/fieldservice-api/internal/repository"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// DispatchService manages technician dispatches for service orders
type DispatchService struct {
	db           *gorm.DB
	dispatchRepo *repository.DispatchRepository
	orderRepo    *repository.ServiceOrderRepository
	jobRepo      *repository.JobRepository
	historyRepo  *repository.StatusHistoryRepository
	numbers      *NumberSequenceService
	logger       *zap.Logger
	now          func() time.Time
}

func NewDispatchService(db *gorm.DB, numbers *NumberSequenceService, logger *zap.Logger) *DispatchService {
	return &DispatchService{
		db:           db,
		dispatchRepo: repository.NewDispatchRepository(db),
		orderRepo:    repository.NewServiceOrderRepository(db),
		jobRepo:      repository.NewJobRepository(db),
		historyRepo:  repository.NewStatusHistoryRepository(db),
		numbers:      numbers,
		logger:       logger,
		now:          time.Now,
	}
}

func (s *DispatchService) Create(ctx context.Context, serviceOrderID uuid.UUID, req *domain.CreateDispatchRequest) (*domain.DispatchDTO, error) {
	order, err := getServiceOrder(ctx, s.orderRepo, serviceOrderID)
	if err != nil {
		return nil, err
	}
	if req.JobID != nil {
		job, err := getJob(ctx, s.jobRepo, *req.JobID)
		if err != nil {
			return nil, err
		}
		if job.ServiceOrderID != serviceOrderID {
			return nil, ErrJobNotInOrder
		}
	}

	priority := req.Priority
	if priority == "" {
		priority = order.Priority
	}
	technicians := req.AssignedTechnicians
	if len(technicians) == 0 {
		technicians = order.AssignedTechnicians
	}

	dispatch := &domain.Dispatch{
		ServiceOrderID:      serviceOrderID,
		JobID:               req.JobID,
		Status:              domain.DispatchStatusPending,
		Priority:            priority,
		AssignedTechnicians: technicians,
		ScheduledStart:      req.ScheduledStart,
		EstimatedDuration:   req.EstimatedDuration,
		Notes:               req.Notes,
	}

	err = s.db.Transaction(func(tx *gorm.DB) error {
		number, err := s.numbers.WithTx(tx).Generate(ctx, PrefixDispatch)
		if err != nil {
			return err
		}
		dispatch.DispatchNumber = number

		if err := s.dispatchRepo.WithTx(tx).Create(ctx, dispatch); err != nil {
			return fmt.Errorf("failed to create dispatch: %w", err)
		}
		return s.historyRepo.WithTx(tx).RecordTransition(ctx, domain.EntityTypeDispatch, dispatch.ID, "", string(dispatch.Status), "created")
	})
	if err != nil {
		return nil, err
	}

	logger.WithEntity(s.logger, string(domain.EntityTypeDispatch), dispatch.ID.String()).Info("dispatch created",
		zap.String("dispatchNumber", dispatch.DispatchNumber),
		zap.String("serviceOrderID", serviceOrderID.String()))

	dto := mapper.ToDispatchDTO(dispatch)
	return &dto, nil
}

func (s *DispatchService) GetByID(ctx context.Context, id uuid.UUID) (*domain.DispatchDTO, error) {
	dispatch, err := getDispatch(ctx, s.dispatchRepo, id)
	if err != nil {
		return nil, err
	}
	dto := mapper.ToDispatchDTO(dispatch)
	return &dto, nil
}

func (s *DispatchService) List(ctx context.Context, page, pageSize int, filters *repository.DispatchFilters, sortBy repository.SortOption) (*domain.PaginatedResponse, error) {
	page, pageSize = repository.NormalizePagination(page, pageSize)

	dispatches, total, err := s.dispatchRepo.List(ctx, page, pageSize, filters, sortBy)
	if err != nil {
		return nil, fmt.Errorf("failed to list dispatches: %w", err)
	}

	dtos := make([]domain.DispatchDTO, len(dispatches))
	for i := range dispatches {
		dtos[i] = mapper.ToDispatchDTO(&dispatches[i])
	}
	return paginated(dtos, total, page, pageSize), nil
}

// Update edits planning fields. Cancelled dispatches are read-only.
func (s *DispatchService) Update(ctx context.Context, id uuid.UUID, req *domain.UpdateDispatchRequest) (*domain.DispatchDTO, error) {
	var dispatch *domain.Dispatch

	err := s.db.Transaction(func(tx *gorm.DB) error {
		var err error
		dispatch, err = getDispatch(ctx, s.dispatchRepo.WithTx(tx), id)
		if err != nil {
			return err
		}
		if dispatch.Status.IsTerminal() {
			return ErrDispatchCancelled
		}

		dispatch.Priority = req.Priority
		dispatch.AssignedTechnicians = req.AssignedTechnicians
		dispatch.ScheduledStart = req.ScheduledStart
		dispatch.EstimatedDuration = req.EstimatedDuration
		dispatch.Notes = req.Notes
		dispatch.Financials.EquipmentCost = req.EquipmentCost
		dispatch.Financials.Sum()

		if err := s.dispatchRepo.WithTx(tx).Update(ctx, dispatch); err != nil {
			return fmt.Errorf("failed to update dispatch: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	dto := mapper.ToDispatchDTO(dispatch)
	return &dto, nil
}

func (s *DispatchService) Delete(ctx context.Context, id uuid.UUID) error {
	dispatch, err := getDispatch(ctx, s.dispatchRepo, id)
	if err != nil {
		return err
	}

	return s.db.Transaction(func(tx *gorm.DB) error {
		// entries recorded on the dispatch stay with the service order
		if err := detachEntries(ctx, tx, id); err != nil {
			return err
		}
		if err := s.dispatchRepo.WithTx(tx).Delete(ctx, id); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrDispatchNotFound
			}
			return fmt.Errorf("failed to delete dispatch: %w", err)
		}
		if err := s.historyRepo.WithTx(tx).DeleteByEntity(ctx, domain.EntityTypeDispatch, id); err != nil {
			return err
		}
		return rollupScope(ctx, tx, dispatch.ServiceOrderID, nil)
	})
}

// Transition moves the dispatch along pending -> ... -> completed. Reaching
// completed fixes the actual duration from the recorded time.
func (s *DispatchService) Transition(ctx context.Context, id uuid.UUID, req TransitionRequest) (*domain.TransitionResultDTO, error) {
	var result *domain.TransitionResultDTO

	err := s.db.Transaction(func(tx *gorm.DB) error {
		dispatchRepo := s.dispatchRepo.WithTx(tx)
		dispatch, err := getDispatch(ctx, dispatchRepo, id)
		if err != nil {
			return err
		}

		flow, err := domain.NewDispatchFlow(dispatch.Status)
		if err != nil {
			if errors.Is(err, domain.ErrTransitionRejected) {
				result = rejectedResult(domain.DispatchSteps, dispatch.Status, err)
				return nil
			}
			return fmt.Errorf("%w: %v", ErrInvalidStatus, err)
		}
		if err := lockForOrder(ctx, s.orderRepo.WithTx(tx), dispatch.ServiceOrderID, flow); err != nil {
			return err
		}

		t, rejected, err := applyTransition(flow, req)
		if err != nil {
			return err
		}
		if rejected != nil {
			result = rejectedResult(domain.DispatchSteps, dispatch.Status, rejected)
			return nil
		}
		result = appliedResult(domain.DispatchSteps, t)
		if !t.Changed {
			return nil
		}

		dispatch.Status = t.To
		if err := dispatchRepo.Update(ctx, dispatch); err != nil {
			return fmt.Errorf("failed to update dispatch status: %w", err)
		}
		if err := s.historyRepo.WithTx(tx).RecordTransition(ctx, domain.EntityTypeDispatch, id, string(t.From), string(t.To), ""); err != nil {
			return err
		}
		if t.To == domain.DispatchStatusCompleted {
			return rollupDispatch(ctx, tx, dispatch)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	if result.Changed {
		s.logger.Info("dispatch status changed",
			zap.String("dispatchID", id.String()),
			zap.String("from", result.From),
			zap.String("to", result.To))
	} else if result.Reason != "" {
		s.logger.Debug("dispatch transition ignored",
			zap.String("dispatchID", id.String()),
			zap.String("reason", result.Reason))
	}
	return result, nil
}

// Cancel moves a dispatch to cancelled from any step and records why
func (s *DispatchService) Cancel(ctx context.Context, id uuid.UUID, reason string) (*domain.TransitionResultDTO, error) {
	var result *domain.TransitionResultDTO

	err := s.db.Transaction(func(tx *gorm.DB) error {
		dispatchRepo := s.dispatchRepo.WithTx(tx)
		dispatch, err := getDispatch(ctx, dispatchRepo, id)
		if err != nil {
			return err
		}
		if dispatch.Status.IsTerminal() {
			result = rejectedResult(domain.DispatchSteps, dispatch.Status, fmt.Errorf("%w: dispatch is already cancelled", domain.ErrTransitionRejected))
			return nil
		}

		from := dispatch.Status
		now := s.now()
		dispatch.Status = domain.DispatchStatusCancelled
		dispatch.CancelledAt = &now
		dispatch.CancelReason = reason
		if err := dispatchRepo.Update(ctx, dispatch); err != nil {
			return fmt.Errorf("failed to cancel dispatch: %w", err)
		}
		dto := mapper.ToTransitionResultDTO(domain.DispatchSteps, from, dispatch.Status, true, "")
		result = &dto
		return s.historyRepo.WithTx(tx).RecordTransition(ctx, domain.EntityTypeDispatch, id, string(from), string(dispatch.Status), reason)
	})
	if err != nil {
		return nil, err
	}

	if result.Changed {
		s.logger.Info("dispatch cancelled", zap.String("dispatchID", id.String()), zap.String("reason", reason))
	}
	return result, nil
}

func (s *DispatchService) StatusWindow(ctx context.Context, id uuid.UUID) (*domain.StatusWindowDTO, error) {
	dispatch, err := getDispatch(ctx, s.dispatchRepo, id)
	if err != nil {
		return nil, err
	}
	w := mapper.ToStatusWindowDTO(domain.DispatchSteps, dispatch.Status)
	return &w, nil
}

func (s *DispatchService) History(ctx context.Context, id uuid.UUID) ([]domain.StatusHistoryDTO, error) {
	if _, err := getDispatch(ctx, s.dispatchRepo, id); err != nil {
		return nil, err
	}
	return listHistory(ctx, s.historyRepo, domain.EntityTypeDispatch, id)
}

// detachEntries clears dispatch_id on every time, expense and material entry
// of the dispatch.
func detachEntries(ctx context.Context, tx *gorm.DB, dispatchID uuid.UUID) error {
	for _, model := range []interface{}{&domain.TimeEntry{}, &domain.ExpenseEntry{}, &domain.MaterialUsage{}} {
		if err := tx.WithContext(ctx).Model(model).
			Where("dispatch_id = ?", dispatchID).
			Update("dispatch_id", nil).Error; err != nil {
			return fmt.Errorf("failed to detach entries from dispatch: %w", err)
		}
	}
	return nil
}

func getDispatch(ctx context.Context, repo *repository.DispatchRepository, id uuid.UUID) (*domain.Dispatch, error) {
	dispatch, err := repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrDispatchNotFound
		}
		return nil, fmt.Errorf("failed to get dispatch: %w", err)
	}
	return dispatch, nil
}
