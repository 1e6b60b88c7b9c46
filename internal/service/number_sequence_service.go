package service

import (
	"context"
	"fmt"
	"regexp"
	"time"

	"github.com/straye-as/fieldservice-api/internal/repository"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Document number prefixes. Each prefix has its own counter per year.
const (
	PrefixOffer        = "OFF"
	PrefixSale         = "SAL"
	PrefixServiceOrder = "SO"
	PrefixDispatch     = "DSP"
)

var numberFormat = regexp.MustCompile(`^[A-Z]{2,3}-\d{4}-\d{4,}$`)

// NumberSequenceService hands out human readable document numbers.
//
// Format: {PREFIX}-{YEAR}-{SEQUENCE}
// Example: OFF-2026-0001, SO-2026-0042
type NumberSequenceService struct {
	repo   *repository.NumberSequenceRepository
	logger *zap.Logger
	now    func() time.Time
}

func NewNumberSequenceService(repo *repository.NumberSequenceRepository, logger *zap.Logger) *NumberSequenceService {
	return &NumberSequenceService{repo: repo, logger: logger, now: time.Now}
}

// WithTx returns a copy drawing numbers inside tx
func (s *NumberSequenceService) WithTx(tx *gorm.DB) *NumberSequenceService {
	return &NumberSequenceService{repo: s.repo.WithTx(tx), logger: s.logger, now: s.now}
}

// Generate returns the next number for prefix in the current year
func (s *NumberSequenceService) Generate(ctx context.Context, prefix string) (string, error) {
	year := s.now().Year()

	next, err := s.repo.GetNextNumber(ctx, prefix, year)
	if err != nil {
		s.logger.Error("failed to get next sequence number",
			zap.String("prefix", prefix),
			zap.Int("year", year),
			zap.Error(err))
		return "", fmt.Errorf("failed to generate %s number: %w", prefix, err)
	}

	number := FormatNumber(prefix, year, next)
	s.logger.Debug("generated number", zap.String("number", number))
	return number, nil
}

// GetCurrentSequence returns the last issued value, 0 when none
func (s *NumberSequenceService) GetCurrentSequence(ctx context.Context, prefix string, year int) (int, error) {
	return s.repo.GetCurrentSequence(ctx, prefix, year)
}

// InitializeSequence raises the counter to value, e.g. after importing numbered records.
// The value is the LAST USED sequence number.
func (s *NumberSequenceService) InitializeSequence(ctx context.Context, prefix string, year, value int) error {
	return s.repo.SetSequence(ctx, prefix, year, value)
}

// FormatNumber zero-pads the sequence to four digits
func FormatNumber(prefix string, year, seq int) string {
	return fmt.Sprintf("%s-%d-%04d", prefix, year, seq)
}

// ValidateNumber checks the PREFIX-YYYY-NNNN shape
func ValidateNumber(number string) bool {
	return numberFormat.MatchString(number)
}
