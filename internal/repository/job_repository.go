package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/straye-as/fieldservice-api/internal/domain"
	"gorm.io/gorm"
)

type JobRepository struct {
	db *gorm.DB
}

func NewJobRepository(db *gorm.DB) *JobRepository {
	return &JobRepository{db: db}
}

func (r *JobRepository) WithTx(tx *gorm.DB) *JobRepository {
	return &JobRepository{db: tx}
}

func (r *JobRepository) Create(ctx context.Context, job *domain.Job) error {
	return r.db.WithContext(ctx).Create(job).Error
}

func (r *JobRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Job, error) {
	var job domain.Job
	err := r.db.WithContext(ctx).First(&job, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &job, nil
}

func (r *JobRepository) ListByServiceOrder(ctx context.Context, serviceOrderID uuid.UUID, status *domain.JobStatus) ([]domain.Job, error) {
	var jobs []domain.Job
	query := r.db.WithContext(ctx).Where("service_order_id = ?", serviceOrderID)
	if status != nil {
		query = query.Where("status = ?", *status)
	}
	err := query.Order("created_at ASC").Find(&jobs).Error
	return jobs, err
}

func (r *JobRepository) Update(ctx context.Context, job *domain.Job) error {
	return r.db.WithContext(ctx).Save(job).Error
}

func (r *JobRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&domain.Job{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// DeleteByServiceOrder removes all jobs of a service order
func (r *JobRepository) DeleteByServiceOrder(ctx context.Context, serviceOrderID uuid.UUID) error {
	return r.db.WithContext(ctx).Where("service_order_id = ?", serviceOrderID).Delete(&domain.Job{}).Error
}
