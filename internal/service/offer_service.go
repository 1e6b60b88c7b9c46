package service

import (
	"context"
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/google/uuid"
	"github.com/straye-as/fieldservice-api/internal/domain"
	"github.com/straye-as/fieldservice-api/internal/logger"
	"github.com/straye-as/fieldservice-api/internal/mapper"
	"github.com/straye-as/fieldservice-api/internal/repository"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// OfferDelivery hands an offer that is being sent to the customer
type OfferDelivery interface {
	DeliverOffer(ctx context.Context, offer *domain.Offer, recipient, message string) error
}

// OfferService owns the offer lifecycle. Conversion lives in offer_conversion.go.
type OfferService struct {
	db          *gorm.DB
	offerRepo   *repository.OfferRepository
	itemRepo    *repository.OfferItemRepository
	saleRepo    *repository.SaleRepository
	orderRepo   *repository.ServiceOrderRepository
	jobRepo     *repository.JobRepository
	historyRepo *repository.StatusHistoryRepository
	numbers     *NumberSequenceService
	delivery    OfferDelivery
	logger      *zap.Logger
	now         func() time.Time
}

func NewOfferService(
	db *gorm.DB,
	numbers *NumberSequenceService,
	logger *zap.Logger,
) *OfferService {
	return &OfferService{
		db:          db,
		offerRepo:   repository.NewOfferRepository(db),
		itemRepo:    repository.NewOfferItemRepository(db),
		saleRepo:    repository.NewSaleRepository(db),
		orderRepo:   repository.NewServiceOrderRepository(db),
		jobRepo:     repository.NewJobRepository(db),
		historyRepo: repository.NewStatusHistoryRepository(db),
		numbers:     numbers,
		logger:      logger,
		now:         time.Now,
	}
}

// SetDelivery wires the channel used by Send. Without one, Send only changes status.
func (s *OfferService) SetDelivery(d OfferDelivery) {
	s.delivery = d
}

// ============================================================================
// CRUD
// ============================================================================

func (s *OfferService) Create(ctx context.Context, req *domain.CreateOfferRequest) (*domain.OfferDTO, error) {
	offer := &domain.Offer{
		Title:       req.Title,
		ContactID:   req.ContactID,
		ContactName: req.ContactName,
		Taxes:       req.Taxes,
		Discount:    req.Discount,
		Status:      domain.OfferStatusDraft,
		Category:    req.Category,
		Source:      req.Source,
		Description: req.Description,
		Notes:       req.Notes,
		ValidUntil:  req.ValidUntil,
		Items:       itemsFromRequest(req.Items),
	}
	if err := offer.Recalculate(); err != nil {
		return nil, err
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		number, err := s.numbers.WithTx(tx).Generate(ctx, PrefixOffer)
		if err != nil {
			return err
		}
		offer.OfferNumber = number

		if err := s.offerRepo.WithTx(tx).Create(ctx, offer); err != nil {
			return fmt.Errorf("failed to create offer: %w", err)
		}
		return s.historyRepo.WithTx(tx).RecordTransition(ctx, domain.EntityTypeOffer, offer.ID, "", string(offer.Status), "created")
	})
	if err != nil {
		return nil, err
	}

	logger.WithEntity(s.logger, string(domain.EntityTypeOffer), offer.ID.String()).Info("offer created",
		zap.String("offerNumber", offer.OfferNumber),
		zap.Float64("totalAmount", offer.TotalAmount))

	return s.GetByID(ctx, offer.ID)
}

func (s *OfferService) GetByID(ctx context.Context, id uuid.UUID) (*domain.OfferDTO, error) {
	offer, err := s.getOffer(ctx, s.offerRepo, id)
	if err != nil {
		return nil, err
	}
	dto := mapper.ToOfferDTO(offer)
	return &dto, nil
}

// GetModel returns the offer entity with items, for document rendering
func (s *OfferService) GetModel(ctx context.Context, id uuid.UUID) (*domain.Offer, error) {
	return s.getOffer(ctx, s.offerRepo, id)
}

// Update replaces the editable fields. Editing a sent offer moves it to
// modified so it has to be sent again.
func (s *OfferService) Update(ctx context.Context, id uuid.UUID, req *domain.UpdateOfferRequest) (*domain.OfferDTO, error) {
	err := s.db.Transaction(func(tx *gorm.DB) error {
		offerRepo := s.offerRepo.WithTx(tx)

		offer, err := s.getOfferForUpdate(ctx, offerRepo, id)
		if err != nil {
			return err
		}
		if !offer.Status.IsEditable() {
			return fmt.Errorf("%w: offer is %s", ErrOfferNotEditable, offer.Status)
		}

		offer.Title = req.Title
		offer.ContactID = req.ContactID
		offer.ContactName = req.ContactName
		offer.Taxes = req.Taxes
		offer.Discount = req.Discount
		offer.Category = req.Category
		offer.Source = req.Source
		offer.Description = req.Description
		offer.Notes = req.Notes
		offer.ValidUntil = req.ValidUntil

		itemsChanged := req.Items != nil
		if itemsChanged {
			offer.Items = itemsFromRequest(req.Items)
		}
		if err := offer.Recalculate(); err != nil {
			return err
		}

		from := offer.Status
		if from == domain.OfferStatusSent {
			offer.Status = domain.OfferStatusModified
		}

		if err := offerRepo.Update(ctx, offer); err != nil {
			return fmt.Errorf("failed to update offer: %w", err)
		}
		if itemsChanged {
			if err := s.itemRepo.WithTx(tx).ReplaceForOffer(ctx, id, offer.Items); err != nil {
				return fmt.Errorf("failed to replace offer items: %w", err)
			}
		}
		if from != offer.Status {
			return s.historyRepo.WithTx(tx).RecordTransition(ctx, domain.EntityTypeOffer, id, string(from), string(offer.Status), "edited after sending")
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return s.GetByID(ctx, id)
}

// Delete removes an offer. Converted offers are kept as the source of their sale or service order.
func (s *OfferService) Delete(ctx context.Context, id uuid.UUID) error {
	offer, err := s.getOffer(ctx, s.offerRepo, id)
	if err != nil {
		return err
	}
	if offer.ConvertedToSaleID != nil || offer.ConvertedToServiceOrderID != nil {
		return ErrOfferConverted
	}

	err = s.db.Transaction(func(tx *gorm.DB) error {
		if err := s.offerRepo.WithTx(tx).Delete(ctx, id); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrOfferNotFound
			}
			return fmt.Errorf("failed to delete offer: %w", err)
		}
		return s.historyRepo.WithTx(tx).DeleteByEntity(ctx, domain.EntityTypeOffer, id)
	})
	if err != nil {
		return err
	}

	s.logger.Info("offer deleted", zap.String("offerID", id.String()))
	return nil
}

func (s *OfferService) List(ctx context.Context, page, pageSize int, filters *repository.OfferFilters, sortBy repository.SortOption) (*domain.PaginatedResponse, error) {
	page, pageSize = repository.NormalizePagination(page, pageSize)

	offers, total, err := s.offerRepo.List(ctx, page, pageSize, filters, sortBy)
	if err != nil {
		return nil, fmt.Errorf("failed to list offers: %w", err)
	}

	dtos := make([]domain.OfferDTO, len(offers))
	for i := range offers {
		dtos[i] = mapper.ToOfferDTO(&offers[i])
	}
	return paginated(dtos, total, page, pageSize), nil
}

// ListForExport returns offers with items, newest first, capped at limit
func (s *OfferService) ListForExport(ctx context.Context, filters *repository.OfferFilters, limit int) ([]domain.Offer, error) {
	offers, err := s.offerRepo.ListWithItems(ctx, filters, repository.SortByCreatedDesc, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list offers: %w", err)
	}
	return offers, nil
}

// StatusCounts returns the number of offers per status
func (s *OfferService) StatusCounts(ctx context.Context) (map[domain.OfferStatus]int64, error) {
	return s.offerRepo.CountByStatus(ctx)
}

func (s *OfferService) History(ctx context.Context, id uuid.UUID) ([]domain.StatusHistoryDTO, error) {
	if _, err := s.getOffer(ctx, s.offerRepo, id); err != nil {
		return nil, err
	}
	return listHistory(ctx, s.historyRepo, domain.EntityTypeOffer, id)
}

// ============================================================================
// Lifecycle
// ============================================================================

// Send delivers a draft or modified offer and marks it sent. A delivery
// failure leaves the offer untouched.
func (s *OfferService) Send(ctx context.Context, id uuid.UUID, req *domain.SendOfferRequest) (*domain.OfferDTO, error) {
	offer, err := s.getOffer(ctx, s.offerRepo, id)
	if err != nil {
		return nil, err
	}
	if !offer.Status.CanTransitionTo(domain.OfferStatusSent) {
		return nil, fmt.Errorf("%w: %s -> %s", ErrOfferInvalidTransition, offer.Status, domain.OfferStatusSent)
	}

	if s.delivery != nil {
		if err := s.delivery.DeliverOffer(ctx, offer, req.Recipient, req.Message); err != nil {
			s.logger.Warn("offer delivery failed",
				zap.String("offerID", id.String()),
				zap.String("recipient", req.Recipient),
				zap.Error(err))
			return nil, err
		}
	}

	now := s.now()
	return s.transition(ctx, id, domain.OfferStatusSent, "sent to "+req.Recipient, map[string]interface{}{"sent_at": now})
}

// Accept records the customer's acceptance of a sent offer
func (s *OfferService) Accept(ctx context.Context, id uuid.UUID) (*domain.OfferDTO, error) {
	return s.transition(ctx, id, domain.OfferStatusAccepted, "", map[string]interface{}{"responded_at": s.now()})
}

// Decline records the customer's rejection of a sent offer
func (s *OfferService) Decline(ctx context.Context, id uuid.UUID) (*domain.OfferDTO, error) {
	return s.transition(ctx, id, domain.OfferStatusDeclined, "", map[string]interface{}{"responded_at": s.now()})
}

// Cancel withdraws an accepted offer
func (s *OfferService) Cancel(ctx context.Context, id uuid.UUID, reason string) (*domain.OfferDTO, error) {
	return s.transition(ctx, id, domain.OfferStatusCancelled, reason, nil)
}

// Renew copies an offer into a new draft with a fresh number
func (s *OfferService) Renew(ctx context.Context, id uuid.UUID) (*domain.OfferDTO, error) {
	source, err := s.getOffer(ctx, s.offerRepo, id)
	if err != nil {
		return nil, err
	}

	renewed := source.Renewal()
	if err := renewed.Recalculate(); err != nil {
		return nil, err
	}

	err = s.db.Transaction(func(tx *gorm.DB) error {
		number, err := s.numbers.WithTx(tx).Generate(ctx, PrefixOffer)
		if err != nil {
			return err
		}
		renewed.OfferNumber = number

		if err := s.offerRepo.WithTx(tx).Create(ctx, renewed); err != nil {
			return fmt.Errorf("failed to create renewed offer: %w", err)
		}
		return s.historyRepo.WithTx(tx).RecordTransition(ctx, domain.EntityTypeOffer, renewed.ID, "", string(renewed.Status), "renewed from "+source.OfferNumber)
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("offer renewed",
		zap.String("offerID", renewed.ID.String()),
		zap.String("renewedFromID", source.ID.String()),
		zap.String("offerNumber", renewed.OfferNumber))

	return s.GetByID(ctx, renewed.ID)
}

// transition moves an offer to status `to` when the offer status graph allows it
func (s *OfferService) transition(ctx context.Context, id uuid.UUID, to domain.OfferStatus, note string, extra map[string]interface{}) (*domain.OfferDTO, error) {
	var from domain.OfferStatus

	err := s.db.Transaction(func(tx *gorm.DB) error {
		offerRepo := s.offerRepo.WithTx(tx)

		offer, err := s.getOfferForUpdate(ctx, offerRepo, id)
		if err != nil {
			return err
		}
		from = offer.Status
		if !from.CanTransitionTo(to) {
			return fmt.Errorf("%w: %s -> %s", ErrOfferInvalidTransition, from, to)
		}

		updates := map[string]interface{}{"status": to}
		for k, v := range extra {
			updates[k] = v
		}
		if err := offerRepo.UpdateFields(ctx, id, updates); err != nil {
			return err
		}
		return s.historyRepo.WithTx(tx).RecordTransition(ctx, domain.EntityTypeOffer, id, string(from), string(to), note)
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("offer status changed",
		zap.String("offerID", id.String()),
		zap.String("from", string(from)),
		zap.String("to", string(to)))

	return s.GetByID(ctx, id)
}

// ============================================================================
// Helpers
// ============================================================================

func (s *OfferService) getOffer(ctx context.Context, repo *repository.OfferRepository, id uuid.UUID) (*domain.Offer, error) {
	offer, err := repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrOfferNotFound
		}
		return nil, fmt.Errorf("failed to get offer: %w", err)
	}
	return offer, nil
}

func (s *OfferService) getOfferForUpdate(ctx context.Context, repo *repository.OfferRepository, id uuid.UUID) (*domain.Offer, error) {
	offer, err := repo.GetForUpdate(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrOfferNotFound
		}
		return nil, fmt.Errorf("failed to get offer: %w", err)
	}
	return offer, nil
}

func itemsFromRequest(reqs []domain.OfferItemRequest) []domain.OfferItem {
	items := make([]domain.OfferItem, 0, len(reqs))
	for i, r := range reqs {
		items = append(items, domain.OfferItem{
			Type:         r.Type,
			ItemID:       r.ItemID,
			Name:         r.Name,
			Description:  r.Description,
			Quantity:     r.Quantity,
			UnitPrice:    r.UnitPrice,
			Discount:     r.Discount,
			DiscountType: r.DiscountType,
			Position:     i,
		})
	}
	return items
}

func listHistory(ctx context.Context, repo *repository.StatusHistoryRepository, entityType domain.EntityType, id uuid.UUID) ([]domain.StatusHistoryDTO, error) {
	rows, err := repo.ListByEntity(ctx, entityType, id)
	if err != nil {
		return nil, fmt.Errorf("failed to list status history: %w", err)
	}
	dtos := make([]domain.StatusHistoryDTO, len(rows))
	for i := range rows {
		dtos[i] = mapper.ToStatusHistoryDTO(&rows[i])
	}
	return dtos, nil
}

func paginated(data interface{}, total int64, page, pageSize int) *domain.PaginatedResponse {
	return &domain.PaginatedResponse{
		Data:       data,
		Total:      total,
		Page:       page,
		PageSize:   pageSize,
		TotalPages: int(math.Ceil(float64(total) / float64(pageSize))),
	}
}
