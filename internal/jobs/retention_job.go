package jobs

import (
	"context"
	"time"

	"go.uber.org/zap"
)

const RetentionJobName = "document_retention"

// retentionBatch bounds how many documents one purge call removes
const retentionBatch = 200

// DocumentPurger removes stored documents created before cutoff, at most
// batch per call, and reports how many were removed.
type DocumentPurger interface {
	PurgeOlderThan(ctx context.Context, cutoff time.Time, batch int) (int, error)
}

// RetentionJob deletes stored documents once they are older than the
// configured retention window.
type RetentionJob struct {
	purger    DocumentPurger
	retention time.Duration
	timeout   time.Duration
	logger    *zap.Logger
	now       func() time.Time
}

func NewRetentionJob(purger DocumentPurger, retention, timeout time.Duration, logger *zap.Logger) *RetentionJob {
	return &RetentionJob{
		purger:    purger,
		retention: retention,
		timeout:   timeout,
		logger:    logger,
		now:       time.Now,
	}
}

// Run purges in batches until a batch comes back short, the timeout expires
// or a purge fails. It returns the number of documents removed.
func (j *RetentionJob) Run() int {
	ctx, cancel := context.WithTimeout(context.Background(), j.timeout)
	defer cancel()

	start := j.now()
	cutoff := start.Add(-j.retention)
	total := 0
	for {
		n, err := j.purger.PurgeOlderThan(ctx, cutoff, retentionBatch)
		total += n
		if err != nil {
			j.logger.Error("document retention sweep failed",
				zap.Error(err),
				zap.Int("removed", total))
			return total
		}
		if n < retentionBatch || ctx.Err() != nil {
			break
		}
	}

	j.logger.Info("document retention sweep completed",
		zap.Int("removed", total),
		zap.Time("cutoff", cutoff),
		zap.Duration("duration", time.Since(start)))
	return total
}

// RegisterRetentionJob schedules the sweep. A zero retention disables it and
// nothing is registered.
func RegisterRetentionJob(s *Scheduler, purger DocumentPurger, retention time.Duration, cronExpr string, logger *zap.Logger) error {
	if retention <= 0 {
		logger.Info("document retention disabled")
		return nil
	}
	job := NewRetentionJob(purger, retention, 10*time.Minute, logger)
	return s.AddJob(RetentionJobName, cronExpr, func() { job.Run() })
}
