package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/straye-as/fieldservice-api/internal/domain"
	"github.com/straye-as/fieldservice-api/internal/mapper"
	"github.com/straye-as/fieldservice-api/internal/repository"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// JobService manages the work packages of a service order
type JobService struct {
	db          *gorm.DB
	jobRepo     *repository.JobRepository
	orderRepo   *repository.ServiceOrderRepository
	historyRepo *repository.StatusHistoryRepository
	logger      *zap.Logger
}

func NewJobService(db *gorm.DB, logger *zap.Logger) *JobService {
	return &JobService{
		db:          db,
		jobRepo:     repository.NewJobRepository(db),
		orderRepo:   repository.NewServiceOrderRepository(db),
		historyRepo: repository.NewStatusHistoryRepository(db),
		logger:      logger,
	}
}

func (s *JobService) Create(ctx context.Context, serviceOrderID uuid.UUID, req *domain.CreateJobRequest) (*domain.JobDTO, error) {
	if _, err := getServiceOrder(ctx, s.orderRepo, serviceOrderID); err != nil {
		return nil, err
	}

	status := domain.JobStatusUnscheduled
	if req.ScheduledAt != nil {
		status = domain.JobStatusScheduled
	}
	job := &domain.Job{
		ServiceOrderID:      serviceOrderID,
		Title:               req.Title,
		Description:         req.Description,
		Status:              status,
		AssignedTechnicians: req.AssignedTechnicians,
		EstimatedDuration:   req.EstimatedDuration,
		ScheduledAt:         req.ScheduledAt,
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := s.jobRepo.WithTx(tx).Create(ctx, job); err != nil {
			return fmt.Errorf("failed to create job: %w", err)
		}
		return s.historyRepo.WithTx(tx).RecordTransition(ctx, domain.EntityTypeJob, job.ID, "", string(job.Status), "created")
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("job created",
		zap.String("jobID", job.ID.String()),
		zap.String("serviceOrderID", serviceOrderID.String()))

	dto := mapper.ToJobDTO(job)
	return &dto, nil
}

func (s *JobService) GetByID(ctx context.Context, id uuid.UUID) (*domain.JobDTO, error) {
	job, err := getJob(ctx, s.jobRepo, id)
	if err != nil {
		return nil, err
	}
	dto := mapper.ToJobDTO(job)
	return &dto, nil
}

func (s *JobService) ListByServiceOrder(ctx context.Context, serviceOrderID uuid.UUID, status *domain.JobStatus) ([]domain.JobDTO, error) {
	if _, err := getServiceOrder(ctx, s.orderRepo, serviceOrderID); err != nil {
		return nil, err
	}

	jobs, err := s.jobRepo.ListByServiceOrder(ctx, serviceOrderID, status)
	if err != nil {
		return nil, fmt.Errorf("failed to list jobs: %w", err)
	}
	dtos := make([]domain.JobDTO, len(jobs))
	for i := range jobs {
		dtos[i] = mapper.ToJobDTO(&jobs[i])
	}
	return dtos, nil
}

func (s *JobService) Update(ctx context.Context, id uuid.UUID, req *domain.UpdateJobRequest) (*domain.JobDTO, error) {
	job, err := getJob(ctx, s.jobRepo, id)
	if err != nil {
		return nil, err
	}

	job.Title = req.Title
	job.Description = req.Description
	job.AssignedTechnicians = req.AssignedTechnicians
	job.EstimatedDuration = req.EstimatedDuration
	job.ActualDuration = req.ActualDuration
	job.ScheduledAt = req.ScheduledAt

	if err := s.jobRepo.Update(ctx, job); err != nil {
		return nil, fmt.Errorf("failed to update job: %w", err)
	}
	dto := mapper.ToJobDTO(job)
	return &dto, nil
}

func (s *JobService) Delete(ctx context.Context, id uuid.UUID) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		if err := s.jobRepo.WithTx(tx).Delete(ctx, id); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrJobNotFound
			}
			return fmt.Errorf("failed to delete job: %w", err)
		}
		return s.historyRepo.WithTx(tx).DeleteByEntity(ctx, domain.EntityTypeJob, id)
	})
}

// Transition moves the job along unscheduled -> scheduled -> in_progress -> completed.
// Cancelled jobs have no flow and every request is answered with Changed=false.
func (s *JobService) Transition(ctx context.Context, id uuid.UUID, req TransitionRequest) (*domain.TransitionResultDTO, error) {
	var result *domain.TransitionResultDTO

	err := s.db.Transaction(func(tx *gorm.DB) error {
		jobRepo := s.jobRepo.WithTx(tx)
		job, err := getJob(ctx, jobRepo, id)
		if err != nil {
			return err
		}

		flow, err := domain.NewJobFlow(job.Status)
		if err != nil {
			if errors.Is(err, domain.ErrTransitionRejected) {
				result = rejectedResult(domain.JobSteps, job.Status, err)
				return nil
			}
			return fmt.Errorf("%w: %v", ErrInvalidStatus, err)
		}
		if err := lockForOrder(ctx, s.orderRepo.WithTx(tx), job.ServiceOrderID, flow); err != nil {
			return err
		}

		t, rejected, err := applyTransition(flow, req)
		if err != nil {
			return err
		}
		if rejected != nil {
			result = rejectedResult(domain.JobSteps, job.Status, rejected)
			return nil
		}
		result = appliedResult(domain.JobSteps, t)
		if !t.Changed {
			return nil
		}

		job.Status = t.To
		if err := jobRepo.Update(ctx, job); err != nil {
			return fmt.Errorf("failed to update job status: %w", err)
		}
		return s.historyRepo.WithTx(tx).RecordTransition(ctx, domain.EntityTypeJob, id, string(t.From), string(t.To), "")
	})
	if err != nil {
		return nil, err
	}

	if result.Changed {
		s.logger.Info("job status changed",
			zap.String("jobID", id.String()),
			zap.String("from", result.From),
			zap.String("to", result.To))
	}
	return result, nil
}

// Cancel moves the job to the absorbing cancelled state from any step
func (s *JobService) Cancel(ctx context.Context, id uuid.UUID, reason string) (*domain.TransitionResultDTO, error) {
	var result *domain.TransitionResultDTO

	err := s.db.Transaction(func(tx *gorm.DB) error {
		jobRepo := s.jobRepo.WithTx(tx)
		job, err := getJob(ctx, jobRepo, id)
		if err != nil {
			return err
		}
		if job.Status.IsTerminal() {
			result = rejectedResult(domain.JobSteps, job.Status, fmt.Errorf("%w: job is already cancelled", domain.ErrTransitionRejected))
			return nil
		}

		from := job.Status
		job.Status = domain.JobStatusCancelled
		if err := jobRepo.Update(ctx, job); err != nil {
			return fmt.Errorf("failed to cancel job: %w", err)
		}
		dto := mapper.ToTransitionResultDTO(domain.JobSteps, from, job.Status, true, "")
		result = &dto
		return s.historyRepo.WithTx(tx).RecordTransition(ctx, domain.EntityTypeJob, id, string(from), string(job.Status), reason)
	})
	if err != nil {
		return nil, err
	}

	if result.Changed {
		s.logger.Info("job cancelled", zap.String("jobID", id.String()), zap.String("reason", reason))
	}
	return result, nil
}

func (s *JobService) History(ctx context.Context, id uuid.UUID) ([]domain.StatusHistoryDTO, error) {
	if _, err := getJob(ctx, s.jobRepo, id); err != nil {
		return nil, err
	}
	return listHistory(ctx, s.historyRepo, domain.EntityTypeJob, id)
}

func getJob(ctx context.Context, repo *repository.JobRepository, id uuid.UUID) (*domain.Job, error) {
	job, err := repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrJobNotFound
		}
		return nil, fmt.Errorf("failed to get job: %w", err)
	}
	return job, nil
}
