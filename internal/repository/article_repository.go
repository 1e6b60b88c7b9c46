package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/straye-as/fieldservice-api/internal/domain"
	"gorm.io/gorm"
)

// ArticleFilters narrows catalog queries
type ArticleFilters struct {
	Type     *domain.OfferItemType
	Category *string
	IsActive *bool
	Search   string
}

type ArticleRepository struct {
	db *gorm.DB
}

func NewArticleRepository(db *gorm.DB) *ArticleRepository {
	return &ArticleRepository{db: db}
}

func (r *ArticleRepository) Create(ctx context.Context, article *domain.Article) error {
	return r.db.WithContext(ctx).Create(article).Error
}

func (r *ArticleRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Article, error) {
	var article domain.Article
	if err := r.db.WithContext(ctx).First(&article, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &article, nil
}

func (r *ArticleRepository) GetBySKU(ctx context.Context, sku string) (*domain.Article, error) {
	var article domain.Article
	if err := r.db.WithContext(ctx).Where("sku = ?", sku).First(&article).Error; err != nil {
		return nil, err
	}
	return &article, nil
}

func (r *ArticleRepository) Update(ctx context.Context, article *domain.Article) error {
	return r.db.WithContext(ctx).Save(article).Error
}

func (r *ArticleRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return deleteByID(ctx, r.db, &domain.Article{}, id)
}

func (r *ArticleRepository) List(ctx context.Context, page, pageSize int, filters *ArticleFilters) ([]domain.Article, int64, error) {
	var articles []domain.Article
	var total int64

	query := r.db.WithContext(ctx).Model(&domain.Article{})
	if filters != nil {
		if filters.Type != nil {
			query = query.Where("type = ?", *filters.Type)
		}
		if filters.Category != nil {
			query = query.Where("category = ?", *filters.Category)
		}
		if filters.IsActive != nil {
			query = query.Where("is_active = ?", *filters.IsActive)
		}
		if filters.Search != "" {
			p := likePattern(filters.Search)
			query = query.Where("LOWER(name) LIKE ? OR LOWER(sku) LIKE ?", p, p)
		}
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := paginate(query.Order("name ASC"), page, pageSize).Find(&articles).Error
	return articles, total, err
}
