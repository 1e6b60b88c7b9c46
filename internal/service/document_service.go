package service

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/straye-as/fieldservice-api/internal/document"
	"github.com/straye-as/fieldservice-api/internal/domain"
	"github.com/straye-as/fieldservice-api/internal/mapper"
	"github.com/straye-as/fieldservice-api/internal/pdfsettings"
	"github.com/straye-as/fieldservice-api/internal/repository"
	"github.com/straye-as/fieldservice-api/internal/storage"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Rendered is a generated file ready to be streamed to the client
type Rendered struct {
	Filename    string
	ContentType string
	Data        []byte
}

// DocumentPlatform bundles the external capabilities documents are handed to
type DocumentPlatform struct {
	Renderer  document.Renderer
	Storage   storage.Storage
	Sharer    document.Sharer
	Clipboard document.Clipboard
	Printer   document.Printer
}

// DocumentService renders offers and service orders with the current PDF
// settings, persists them and hands them to the platform.
type DocumentService struct {
	docRepo  *repository.StoredDocumentRepository
	offers   *OfferService
	orders   *ServiceOrderService
	entries  *EntryService
	settings *SettingsService
	platform DocumentPlatform
	linkBase string
	logger   *zap.Logger
	now      func() time.Time

	previews *previewRegistry
}

func NewDocumentService(
	db *gorm.DB,
	offers *OfferService,
	orders *ServiceOrderService,
	entries *EntryService,
	settings *SettingsService,
	platform DocumentPlatform,
	previewDebounce time.Duration,
	logger *zap.Logger,
) *DocumentService {
	if platform.Renderer == nil {
		platform.Renderer = document.NewPDFRenderer()
	}
	if previewDebounce <= 0 {
		previewDebounce = document.DefaultDebounce
	}

	s := &DocumentService{
		docRepo:  repository.NewStoredDocumentRepository(db),
		offers:   offers,
		orders:   orders,
		entries:  entries,
		settings: settings,
		platform: platform,
		linkBase: "/api/v1/documents",
		logger:   logger,
		now:      time.Now,
	}
	s.previews = newPreviewRegistry(s, previewDebounce)
	settings.OnChange(func(pdfsettings.PdfSettings) { s.previews.refreshAll() })
	return s
}

// SetLinkBase sets the URL prefix used for shared download links
func (s *DocumentService) SetLinkBase(base string) {
	s.linkBase = strings.TrimRight(base, "/")
}

// ============================================================================
// Rendering
// ============================================================================

func (s *DocumentService) buildModel(ctx context.Context, entityType domain.EntityType, id uuid.UUID, settings pdfsettings.PdfSettings) (*document.Model, error) {
	switch entityType {
	case domain.EntityTypeOffer:
		offer, err := s.offers.GetModel(ctx, id)
		if err != nil {
			return nil, err
		}
		return document.BuildOfferDocument(offer, settings, s.now()), nil
	case domain.EntityTypeServiceOrder:
		report, err := s.orders.Report(ctx, id)
		if err != nil {
			return nil, err
		}
		return document.BuildServiceOrderDocument(report, settings, s.now())
	default:
		return nil, fmt.Errorf("%w: no document for %s", ErrInvalidInput, entityType)
	}
}

// Render produces the PDF for an offer or service order
func (s *DocumentService) Render(ctx context.Context, entityType domain.EntityType, id uuid.UUID) (*Rendered, error) {
	settings := s.settings.Get(ctx)
	model, err := s.buildModel(ctx, entityType, id, settings)
	if err != nil {
		return nil, err
	}

	start := time.Now()
	data, err := s.platform.Renderer.Render(ctx, model, settings)
	if err != nil {
		s.logger.Error("document render failed",
			zap.String("entityType", string(entityType)),
			zap.String("entityID", id.String()),
			zap.Error(err))
		return nil, err
	}

	s.logger.Debug("document rendered",
		zap.String("entityType", string(entityType)),
		zap.String("entityID", id.String()),
		zap.Int("size", len(data)),
		zap.Duration("took", time.Since(start)))

	return &Rendered{Filename: model.Filename, ContentType: document.ContentTypePDF, Data: data}, nil
}

// Store renders the document and keeps a copy in blob storage
func (s *DocumentService) Store(ctx context.Context, entityType domain.EntityType, id uuid.UUID) (*domain.StoredDocumentDTO, error) {
	rendered, err := s.Render(ctx, entityType, id)
	if err != nil {
		return nil, err
	}
	doc, err := s.persist(ctx, entityType, id, domain.DocumentKindPDF, rendered)
	if err != nil {
		return nil, err
	}
	dto := mapper.ToStoredDocumentDTO(doc)
	return &dto, nil
}

func (s *DocumentService) persist(ctx context.Context, entityType domain.EntityType, id uuid.UUID, kind domain.DocumentKind, r *Rendered) (*domain.StoredDocument, error) {
	if s.platform.Storage == nil {
		return nil, &domain.ExternalServiceError{Service: "storage", Op: "upload", Err: errors.New("no storage configured")}
	}

	path, size, err := s.platform.Storage.Upload(ctx, r.Filename, r.ContentType, bytes.NewReader(r.Data))
	if err != nil {
		return nil, &domain.ExternalServiceError{Service: "storage", Op: "upload", Err: err}
	}

	doc := &domain.StoredDocument{
		EntityType:  entityType,
		EntityID:    id,
		Kind:        kind,
		Filename:    r.Filename,
		ContentType: r.ContentType,
		StoragePath: path,
		Size:        size,
	}
	if err := s.docRepo.Create(ctx, doc); err != nil {
		// don't leave an orphaned blob behind
		if delErr := s.platform.Storage.Delete(ctx, path); delErr != nil {
			s.logger.Warn("failed to remove orphaned document", zap.String("path", path), zap.Error(delErr))
		}
		return nil, fmt.Errorf("failed to save document record: %w", err)
	}

	s.logger.Info("document stored",
		zap.String("documentID", doc.ID.String()),
		zap.String("entityType", string(entityType)),
		zap.String("entityID", id.String()),
		zap.Int64("size", size))
	return doc, nil
}

func (s *DocumentService) ListStored(ctx context.Context, entityType domain.EntityType, id uuid.UUID) ([]domain.StoredDocumentDTO, error) {
	docs, err := s.docRepo.ListByEntity(ctx, entityType, id)
	if err != nil {
		return nil, fmt.Errorf("failed to list documents: %w", err)
	}
	dtos := make([]domain.StoredDocumentDTO, len(docs))
	for i := range docs {
		dtos[i] = mapper.ToStoredDocumentDTO(&docs[i])
	}
	return dtos, nil
}

// Download opens a stored document. The caller closes the reader.
func (s *DocumentService) Download(ctx context.Context, docID uuid.UUID) (*domain.StoredDocument, io.ReadCloser, error) {
	doc, err := s.getStored(ctx, docID)
	if err != nil {
		return nil, nil, err
	}
	if s.platform.Storage == nil {
		return nil, nil, ErrDocumentNotFound
	}

	rc, err := s.platform.Storage.Download(ctx, doc.StoragePath)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, nil, ErrDocumentNotFound
		}
		return nil, nil, &domain.ExternalServiceError{Service: "storage", Op: "download", Err: err}
	}
	return doc, rc, nil
}

func (s *DocumentService) DeleteStored(ctx context.Context, docID uuid.UUID) error {
	doc, err := s.getStored(ctx, docID)
	if err != nil {
		return err
	}
	return s.remove(ctx, doc)
}

func (s *DocumentService) remove(ctx context.Context, doc *domain.StoredDocument) error {
	if s.platform.Storage != nil {
		if err := s.platform.Storage.Delete(ctx, doc.StoragePath); err != nil {
			return &domain.ExternalServiceError{Service: "storage", Op: "delete", Err: err}
		}
	}
	if err := s.docRepo.Delete(ctx, doc.ID); err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return fmt.Errorf("failed to delete document record: %w", err)
	}
	return nil
}

// PurgeOlderThan removes stored documents created before cutoff, in batches.
// It returns how many were removed; a failing document is skipped and logged.
func (s *DocumentService) PurgeOlderThan(ctx context.Context, cutoff time.Time, batch int) (int, error) {
	if batch <= 0 {
		batch = 100
	}

	removed := 0
	for {
		docs, err := s.docRepo.ListOlderThan(ctx, cutoff, batch)
		if err != nil {
			return removed, fmt.Errorf("failed to list expired documents: %w", err)
		}
		if len(docs) == 0 {
			return removed, nil
		}

		progressed := false
		for i := range docs {
			if err := ctx.Err(); err != nil {
				return removed, err
			}
			if err := s.remove(ctx, &docs[i]); err != nil {
				s.logger.Warn("failed to purge document",
					zap.String("documentID", docs[i].ID.String()),
					zap.Error(err))
				continue
			}
			removed++
			progressed = true
		}
		if !progressed || len(docs) < batch {
			return removed, nil
		}
	}
}

func (s *DocumentService) getStored(ctx context.Context, id uuid.UUID) (*domain.StoredDocument, error) {
	doc, err := s.docRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrDocumentNotFound
		}
		return nil, fmt.Errorf("failed to get document: %w", err)
	}
	return doc, nil
}

// ============================================================================
// Share and print
// ============================================================================

// Share stores the rendered document and shares it. Without a recipient the
// download link is copied to the clipboard instead.
func (s *DocumentService) Share(ctx context.Context, entityType domain.EntityType, id uuid.UUID, req *domain.ShareDocumentRequest) (*domain.ShareResultDTO, error) {
	rendered, err := s.Render(ctx, entityType, id)
	if err != nil {
		return nil, err
	}
	doc, err := s.persist(ctx, entityType, id, domain.DocumentKindPDF, rendered)
	if err != nil {
		return nil, err
	}

	payload := document.SharePayload{
		Title:       strings.TrimSuffix(rendered.Filename, ".pdf"),
		Text:        req.Message,
		URL:         s.link(doc.ID),
		Recipient:   req.Recipient,
		Filename:    rendered.Filename,
		ContentType: rendered.ContentType,
		Data:        rendered.Data,
	}
	outcome, err := document.ShareOrCopy(ctx, s.platform.Sharer, s.platform.Clipboard, payload)
	if err != nil {
		return nil, err
	}

	s.logger.Info("document shared",
		zap.String("documentID", doc.ID.String()),
		zap.String("outcome", string(outcome)))

	dto := mapper.ToStoredDocumentDTO(doc)
	result := &domain.ShareResultDTO{Outcome: string(outcome), Document: &dto}
	if outcome == document.ShareOutcomeShared {
		result.Recipient = req.Recipient
	} else {
		result.CopiedLink = payload.URL
	}
	return result, nil
}

// DeliverOffer e-mails the offer PDF as part of sending it
func (s *DocumentService) DeliverOffer(ctx context.Context, offer *domain.Offer, recipient, message string) error {
	settings := s.settings.Get(ctx)
	model := document.BuildOfferDocument(offer, settings, s.now())
	data, err := s.platform.Renderer.Render(ctx, model, settings)
	if err != nil {
		return err
	}

	text := message
	if text == "" {
		text = fmt.Sprintf("Please find offer %s attached.", offer.OfferNumber)
	}
	_, err = document.ShareOrCopy(ctx, s.platform.Sharer, s.platform.Clipboard, document.SharePayload{
		Title:       "Offer " + offer.OfferNumber,
		Text:        text,
		Recipient:   recipient,
		Filename:    model.Filename,
		ContentType: document.ContentTypePDF,
		Data:        data,
	})
	return err
}

// Print sends the rendered document to the print spool
func (s *DocumentService) Print(ctx context.Context, entityType domain.EntityType, id uuid.UUID) error {
	if s.platform.Printer == nil {
		return &domain.ExternalServiceError{Service: "printer", Op: "print", Err: errors.New("no printer configured")}
	}
	rendered, err := s.Render(ctx, entityType, id)
	if err != nil {
		return err
	}
	if err := s.platform.Printer.Print(ctx, rendered.Filename, rendered.Data); err != nil {
		return &domain.ExternalServiceError{Service: "printer", Op: "print", Err: err}
	}
	return nil
}

func (s *DocumentService) link(docID uuid.UUID) string {
	return fmt.Sprintf("%s/%s/download", s.linkBase, docID)
}

// ============================================================================
// Spreadsheet exports
// ============================================================================

const maxExportRows = 5000

// ExportOffers writes the offers matching filters to a spreadsheet
func (s *DocumentService) ExportOffers(ctx context.Context, filters *repository.OfferFilters) (*Rendered, error) {
	offers, err := s.offers.ListForExport(ctx, filters, maxExportRows)
	if err != nil {
		return nil, err
	}
	data, err := document.ExportOffers(offers, s.settings.Get(ctx))
	if err != nil {
		return nil, &domain.ExternalServiceError{Service: "spreadsheet", Op: "export", Err: err}
	}
	return &Rendered{
		Filename:    fmt.Sprintf("offers-%s.xlsx", s.now().Format("20060102")),
		ContentType: document.ContentTypeXLSX,
		Data:        data,
	}, nil
}

// ExportTimeSheet writes the time recorded on a service order, or one of
// its dispatches, to a spreadsheet.
func (s *DocumentService) ExportTimeSheet(ctx context.Context, serviceOrderID uuid.UUID, dispatchID *uuid.UUID) (*Rendered, error) {
	order, err := getServiceOrder(ctx, s.orders.orderRepo, serviceOrderID)
	if err != nil {
		return nil, err
	}
	entries, err := s.entries.ListTimeEntities(ctx, serviceOrderID, dispatchID)
	if err != nil {
		return nil, err
	}

	title := order.OrderNumber
	if title == "" {
		title = order.Title
	}
	data, err := document.ExportTimeSheet(title, entries, s.settings.Get(ctx))
	if err != nil {
		return nil, &domain.ExternalServiceError{Service: "spreadsheet", Op: "export", Err: err}
	}
	return &Rendered{
		Filename:    fmt.Sprintf("timesheet-%s.xlsx", strings.ToLower(strings.ReplaceAll(title, " ", "-"))),
		ContentType: document.ContentTypeXLSX,
		Data:        data,
	}, nil
}

// ============================================================================
// Preview sessions
// ============================================================================

func (s *DocumentService) OpenPreview(ctx context.Context, entityType domain.EntityType, id uuid.UUID) (*domain.PreviewDTO, error) {
	return s.previews.open(ctx, entityType, id)
}

// RefreshPreview schedules a debounced re-render of the session
func (s *DocumentService) RefreshPreview(sessionID uuid.UUID) (*domain.PreviewDTO, error) {
	return s.previews.refresh(sessionID)
}

func (s *DocumentService) PreviewStatus(sessionID uuid.UUID) (*domain.PreviewDTO, error) {
	return s.previews.status(sessionID)
}

// PreviewContent returns the latest applied render of the session
func (s *DocumentService) PreviewContent(sessionID uuid.UUID) (*Rendered, int, error) {
	return s.previews.content(sessionID)
}

// ClosePreview ends the session; renders still in flight are discarded
func (s *DocumentService) ClosePreview(sessionID uuid.UUID) error {
	return s.previews.close(sessionID)
}

// Shutdown closes every open preview session
func (s *DocumentService) Shutdown() {
	s.previews.closeAll()
}
