package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/straye-as/fieldservice-api/internal/domain"
	"github.com/straye-as/fieldservice-api/internal/mapper"
	"github.com/straye-as/fieldservice-api/internal/repository"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// ArticleService maintains the catalog of materials and services
type ArticleService struct {
	repo   *repository.ArticleRepository
	logger *zap.Logger
}

func NewArticleService(db *gorm.DB, logger *zap.Logger) *ArticleService {
	return &ArticleService{
		repo:   repository.NewArticleRepository(db),
		logger: logger,
	}
}

func (s *ArticleService) Create(ctx context.Context, req *domain.CreateArticleRequest) (*domain.ArticleDTO, error) {
	sku := strings.TrimSpace(req.SKU)
	if _, err := s.repo.GetBySKU(ctx, sku); err == nil {
		return nil, ErrDuplicateSKU
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to check sku: %w", err)
	}

	article := &domain.Article{
		SKU:       sku,
		Name:      req.Name,
		Type:      req.Type,
		Category:  req.Category,
		Unit:      req.Unit,
		UnitPrice: domain.RoundMoney(req.UnitPrice),
		Stock:     req.Stock,
		IsActive:  true,
	}
	if err := s.repo.Create(ctx, article); err != nil {
		return nil, fmt.Errorf("failed to create article: %w", err)
	}

	s.logger.Info("article created", zap.String("articleID", article.ID.String()), zap.String("sku", sku))

	dto := mapper.ToArticleDTO(article)
	return &dto, nil
}

func (s *ArticleService) GetByID(ctx context.Context, id uuid.UUID) (*domain.ArticleDTO, error) {
	article, err := s.get(ctx, id)
	if err != nil {
		return nil, err
	}
	dto := mapper.ToArticleDTO(article)
	return &dto, nil
}

func (s *ArticleService) Update(ctx context.Context, id uuid.UUID, req *domain.UpdateArticleRequest) (*domain.ArticleDTO, error) {
	article, err := s.get(ctx, id)
	if err != nil {
		return nil, err
	}

	article.Name = req.Name
	article.Category = req.Category
	article.Unit = req.Unit
	article.UnitPrice = domain.RoundMoney(req.UnitPrice)
	article.Stock = req.Stock
	article.IsActive = req.IsActive

	if err := s.repo.Update(ctx, article); err != nil {
		return nil, fmt.Errorf("failed to update article: %w", err)
	}
	dto := mapper.ToArticleDTO(article)
	return &dto, nil
}

func (s *ArticleService) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrArticleNotFound
		}
		return fmt.Errorf("failed to delete article: %w", err)
	}
	return nil
}

func (s *ArticleService) List(ctx context.Context, page, pageSize int, filters *repository.ArticleFilters) (*domain.PaginatedResponse, error) {
	page, pageSize = repository.NormalizePagination(page, pageSize)

	articles, total, err := s.repo.List(ctx, page, pageSize, filters)
	if err != nil {
		return nil, fmt.Errorf("failed to list articles: %w", err)
	}
	dtos := make([]domain.ArticleDTO, len(articles))
	for i := range articles {
		dtos[i] = mapper.ToArticleDTO(&articles[i])
	}
	return paginated(dtos, total, page, pageSize), nil
}

func (s *ArticleService) get(ctx context.Context, id uuid.UUID) (*domain.Article, error) {
	article, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrArticleNotFound
		}
		return nil, fmt.Errorf("failed to get article: %w", err)
	}
	return article, nil
}
