package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/straye-as/fieldservice-api/internal/costing"
	"github.com/straye-as/fieldservice-api/internal/domain"
	"github.com/straye-as/fieldservice-api/internal/mapper"
	"github.com/straye-as/fieldservice-api/internal/repository"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// EntryService records time, expenses and material usage against a service
// order (optionally a dispatch) and keeps the owners' financials current.
type EntryService struct {
	db           *gorm.DB
	timeRepo     *repository.TimeEntryRepository
	expenseRepo  *repository.ExpenseEntryRepository
	materialRepo *repository.MaterialUsageRepository
	orderRepo    *repository.ServiceOrderRepository
	dispatchRepo *repository.DispatchRepository
	articleRepo  *repository.ArticleRepository
	historyRepo  *repository.StatusHistoryRepository
	logger       *zap.Logger
	now          func() time.Time
}

func NewEntryService(db *gorm.DB, logger *zap.Logger) *EntryService {
	return &EntryService{
		db:           db,
		timeRepo:     repository.NewTimeEntryRepository(db),
		expenseRepo:  repository.NewExpenseEntryRepository(db),
		materialRepo: repository.NewMaterialUsageRepository(db),
		orderRepo:    repository.NewServiceOrderRepository(db),
		dispatchRepo: repository.NewDispatchRepository(db),
		articleRepo:  repository.NewArticleRepository(db),
		historyRepo:  repository.NewStatusHistoryRepository(db),
		logger:       logger,
		now:          time.Now,
	}
}

// resolveScope checks the service order exists and that the dispatch, when
// given, belongs to it and is still open for recording.
func (s *EntryService) resolveScope(ctx context.Context, serviceOrderID uuid.UUID, dispatchID *uuid.UUID) (repository.EntryScope, error) {
	scope := repository.EntryScope{ServiceOrderID: serviceOrderID, DispatchID: dispatchID}

	if _, err := getServiceOrder(ctx, s.orderRepo, serviceOrderID); err != nil {
		return scope, err
	}
	if dispatchID == nil {
		return scope, nil
	}
	dispatch, err := getDispatch(ctx, s.dispatchRepo, *dispatchID)
	if err != nil {
		return scope, err
	}
	if dispatch.ServiceOrderID != serviceOrderID {
		return scope, ErrDispatchNotFound
	}
	return scope, nil
}

func (s *EntryService) writableScope(ctx context.Context, serviceOrderID uuid.UUID, dispatchID *uuid.UUID) (repository.EntryScope, error) {
	scope, err := s.resolveScope(ctx, serviceOrderID, dispatchID)
	if err != nil || dispatchID == nil {
		return scope, err
	}
	dispatch, err := getDispatch(ctx, s.dispatchRepo, *dispatchID)
	if err != nil {
		return scope, err
	}
	if dispatch.Status.IsTerminal() {
		return scope, ErrDispatchCancelled
	}
	return scope, nil
}

// ============================================================================
// Time entries
// ============================================================================

// AddTime records technician time. Duration is authoritative and is only
// derived from the timestamps when it is zero.
func (s *EntryService) AddTime(ctx context.Context, serviceOrderID uuid.UUID, dispatchID *uuid.UUID, req *domain.CreateTimeEntryRequest) (*domain.TimeEntryDTO, error) {
	scope, err := s.writableScope(ctx, serviceOrderID, dispatchID)
	if err != nil {
		return nil, err
	}

	duration, err := costing.ResolveDuration(req.StartTime, req.EndTime, req.Duration)
	if err != nil {
		return nil, err
	}
	billable := true
	if req.Billable != nil {
		billable = *req.Billable
	}

	entry := &domain.TimeEntry{
		ServiceOrderID: scope.ServiceOrderID,
		DispatchID:     scope.DispatchID,
		TechnicianID:   req.TechnicianID,
		WorkType:       req.WorkType,
		StartTime:      req.StartTime,
		EndTime:        req.EndTime,
		Duration:       duration,
		Billable:       billable,
		HourlyRate:     req.HourlyRate,
		Description:    req.Description,
	}
	if entry.TotalCost, err = costing.ComputeTimeCost(*entry); err != nil {
		return nil, err
	}

	err = s.db.Transaction(func(tx *gorm.DB) error {
		if err := s.timeRepo.WithTx(tx).Create(ctx, entry); err != nil {
			return fmt.Errorf("failed to create time entry: %w", err)
		}
		return rollupScope(ctx, tx, scope.ServiceOrderID, scope.DispatchID)
	})
	if err != nil {
		return nil, err
	}

	s.logger.Debug("time recorded",
		zap.String("serviceOrderID", serviceOrderID.String()),
		zap.String("technician", entry.TechnicianID),
		zap.Int("minutes", entry.Duration),
		zap.Float64("cost", entry.TotalCost))

	dto := mapper.ToTimeEntryDTO(entry)
	return &dto, nil
}

func (s *EntryService) ListTime(ctx context.Context, serviceOrderID uuid.UUID, dispatchID *uuid.UUID) ([]domain.TimeEntryDTO, error) {
	scope, err := s.resolveScope(ctx, serviceOrderID, dispatchID)
	if err != nil {
		return nil, err
	}
	entries, err := s.timeRepo.List(ctx, scope)
	if err != nil {
		return nil, fmt.Errorf("failed to list time entries: %w", err)
	}
	dtos := make([]domain.TimeEntryDTO, len(entries))
	for i := range entries {
		dtos[i] = mapper.ToTimeEntryDTO(&entries[i])
	}
	return dtos, nil
}

// ListTimeEntities returns the raw entries, used by the time sheet export
func (s *EntryService) ListTimeEntities(ctx context.Context, serviceOrderID uuid.UUID, dispatchID *uuid.UUID) ([]domain.TimeEntry, error) {
	scope, err := s.resolveScope(ctx, serviceOrderID, dispatchID)
	if err != nil {
		return nil, err
	}
	entries, err := s.timeRepo.List(ctx, scope)
	if err != nil {
		return nil, fmt.Errorf("failed to list time entries: %w", err)
	}
	return entries, nil
}

func (s *EntryService) DeleteTime(ctx context.Context, id uuid.UUID) error {
	entry, err := s.timeRepo.GetByID(ctx, id)
	if err != nil {
		return entryLookupError(err)
	}
	return s.db.Transaction(func(tx *gorm.DB) error {
		if err := s.timeRepo.WithTx(tx).Delete(ctx, id); err != nil {
			return entryLookupError(err)
		}
		return rollupScope(ctx, tx, entry.ServiceOrderID, entry.DispatchID)
	})
}

// ============================================================================
// Expenses
// ============================================================================

// AddExpense records an expense as pending. It does not count towards the
// financials until approved.
func (s *EntryService) AddExpense(ctx context.Context, serviceOrderID uuid.UUID, dispatchID *uuid.UUID, req *domain.CreateExpenseEntryRequest) (*domain.ExpenseEntryDTO, error) {
	scope, err := s.writableScope(ctx, serviceOrderID, dispatchID)
	if err != nil {
		return nil, err
	}
	if err := domain.CheckAmount("amount", req.Amount); err != nil {
		return nil, err
	}

	incurred := s.now()
	if req.IncurredAt != nil {
		incurred = *req.IncurredAt
	}
	entry := &domain.ExpenseEntry{
		ServiceOrderID: scope.ServiceOrderID,
		DispatchID:     scope.DispatchID,
		TechnicianID:   req.TechnicianID,
		Type:           req.Type,
		Amount:         domain.RoundMoney(req.Amount),
		Status:         domain.ExpenseStatusPending,
		Description:    req.Description,
		ReceiptRef:     req.ReceiptRef,
		IncurredAt:     incurred,
	}

	if err := s.expenseRepo.Create(ctx, entry); err != nil {
		return nil, fmt.Errorf("failed to create expense: %w", err)
	}

	dto := mapper.ToExpenseEntryDTO(entry)
	return &dto, nil
}

func (s *EntryService) ListExpenses(ctx context.Context, serviceOrderID uuid.UUID, dispatchID *uuid.UUID, status *domain.ExpenseStatus) ([]domain.ExpenseEntryDTO, error) {
	scope, err := s.resolveScope(ctx, serviceOrderID, dispatchID)
	if err != nil {
		return nil, err
	}
	entries, err := s.expenseRepo.List(ctx, scope, status)
	if err != nil {
		return nil, fmt.Errorf("failed to list expenses: %w", err)
	}
	dtos := make([]domain.ExpenseEntryDTO, len(entries))
	for i := range entries {
		dtos[i] = mapper.ToExpenseEntryDTO(&entries[i])
	}
	return dtos, nil
}

func (s *EntryService) ApproveExpense(ctx context.Context, id uuid.UUID) (*domain.ExpenseEntryDTO, error) {
	return s.decideExpense(ctx, id, domain.ExpenseStatusApproved, "")
}

func (s *EntryService) RejectExpense(ctx context.Context, id uuid.UUID, reason string) (*domain.ExpenseEntryDTO, error) {
	return s.decideExpense(ctx, id, domain.ExpenseStatusRejected, reason)
}

// decideExpense moves a pending expense to approved or rejected. The status
// update is conditional so two concurrent decisions cannot both win.
func (s *EntryService) decideExpense(ctx context.Context, id uuid.UUID, to domain.ExpenseStatus, note string) (*domain.ExpenseEntryDTO, error) {
	var entry *domain.ExpenseEntry

	err := s.db.Transaction(func(tx *gorm.DB) error {
		repo := s.expenseRepo.WithTx(tx)
		var err error
		if entry, err = repo.GetByID(ctx, id); err != nil {
			return entryLookupError(err)
		}

		ok, err := repo.UpdateStatus(ctx, id, domain.ExpenseStatusPending, to)
		if err != nil {
			return err
		}
		if !ok {
			return ErrExpenseNotPending
		}
		if err := s.historyRepo.WithTx(tx).RecordTransition(ctx, domain.EntityTypeExpense, id, string(domain.ExpenseStatusPending), string(to), note); err != nil {
			return err
		}
		entry.Status = to
		return rollupScope(ctx, tx, entry.ServiceOrderID, entry.DispatchID)
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("expense decided",
		zap.String("expenseID", id.String()),
		zap.String("status", string(to)))

	dto := mapper.ToExpenseEntryDTO(entry)
	return &dto, nil
}

func (s *EntryService) DeleteExpense(ctx context.Context, id uuid.UUID) error {
	entry, err := s.expenseRepo.GetByID(ctx, id)
	if err != nil {
		return entryLookupError(err)
	}
	return s.db.Transaction(func(tx *gorm.DB) error {
		if err := s.expenseRepo.WithTx(tx).Delete(ctx, id); err != nil {
			return entryLookupError(err)
		}
		if err := s.historyRepo.WithTx(tx).DeleteByEntity(ctx, domain.EntityTypeExpense, id); err != nil {
			return err
		}
		return rollupScope(ctx, tx, entry.ServiceOrderID, entry.DispatchID)
	})
}

// ============================================================================
// Material usage
// ============================================================================

// AddMaterial records consumed material. A catalog article fills in the name
// and, when no price is given, the unit price.
func (s *EntryService) AddMaterial(ctx context.Context, serviceOrderID uuid.UUID, dispatchID *uuid.UUID, req *domain.CreateMaterialUsageRequest) (*domain.MaterialUsageDTO, error) {
	scope, err := s.writableScope(ctx, serviceOrderID, dispatchID)
	if err != nil {
		return nil, err
	}

	usage := &domain.MaterialUsage{
		ServiceOrderID: scope.ServiceOrderID,
		DispatchID:     scope.DispatchID,
		ArticleID:      req.ArticleID,
		Name:           strings.TrimSpace(req.Name),
		Quantity:       req.Quantity,
		UsedAt:         s.now(),
	}
	if req.UsedAt != nil {
		usage.UsedAt = *req.UsedAt
	}
	if req.UnitPrice != nil {
		usage.UnitPrice = *req.UnitPrice
	}

	if req.ArticleID != nil {
		article, err := s.articleRepo.GetByID(ctx, *req.ArticleID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, ErrArticleNotFound
			}
			return nil, fmt.Errorf("failed to get article: %w", err)
		}
		if usage.Name == "" {
			usage.Name = article.Name
		}
		if req.UnitPrice == nil {
			usage.UnitPrice = article.UnitPrice
		}
	}
	if usage.Name == "" {
		return nil, ErrMaterialNameNeeded
	}

	if req.Replacing != nil {
		usage.Replacing = &domain.MaterialReplacement{
			OldArticleModel:  req.Replacing.OldArticleModel,
			OldArticleStatus: req.Replacing.OldArticleStatus,
			Photos:           req.Replacing.Photos,
		}
	}
	if err := usage.Recalculate(); err != nil {
		return nil, err
	}

	err = s.db.Transaction(func(tx *gorm.DB) error {
		if err := s.materialRepo.WithTx(tx).Create(ctx, usage); err != nil {
			return fmt.Errorf("failed to create material usage: %w", err)
		}
		return rollupScope(ctx, tx, scope.ServiceOrderID, scope.DispatchID)
	})
	if err != nil {
		return nil, err
	}

	dto := mapper.ToMaterialUsageDTO(usage)
	return &dto, nil
}

func (s *EntryService) ListMaterials(ctx context.Context, serviceOrderID uuid.UUID, dispatchID *uuid.UUID) ([]domain.MaterialUsageDTO, error) {
	scope, err := s.resolveScope(ctx, serviceOrderID, dispatchID)
	if err != nil {
		return nil, err
	}
	usages, err := s.materialRepo.List(ctx, scope)
	if err != nil {
		return nil, fmt.Errorf("failed to list material usage: %w", err)
	}
	dtos := make([]domain.MaterialUsageDTO, len(usages))
	for i := range usages {
		dtos[i] = mapper.ToMaterialUsageDTO(&usages[i])
	}
	return dtos, nil
}

func (s *EntryService) DeleteMaterial(ctx context.Context, id uuid.UUID) error {
	usage, err := s.materialRepo.GetByID(ctx, id)
	if err != nil {
		return entryLookupError(err)
	}
	return s.db.Transaction(func(tx *gorm.DB) error {
		if err := s.materialRepo.WithTx(tx).Delete(ctx, id); err != nil {
			return entryLookupError(err)
		}
		return rollupScope(ctx, tx, usage.ServiceOrderID, usage.DispatchID)
	})
}

func entryLookupError(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrEntryNotFound
	}
	return fmt.Errorf("failed to get entry: %w", err)
}
