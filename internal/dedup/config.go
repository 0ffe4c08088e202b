package dedup

import (
	"fmt"

	errs "github.com/vacantry/housing-backend/internal/pkg/errors"
	"github.com/vacantry/housing-backend/internal/pkg/logger"
	"github.com/vacantry/housing-backend/internal/utils"
)

const (
	// DefaultMatchThreshold is the score at or above which a duplicate is an
	// outright match, eligible for automatic merging.
	DefaultMatchThreshold = 0.85
	// DefaultReviewThreshold is the score at or above which a duplicate is at
	// least worth a manual look.
	DefaultReviewThreshold = 0.70
)

// Config tunes one deduplication run.
type Config struct {
	MatchThreshold  float64
	ReviewThreshold float64
	// BatchSize is the page size used when streaming owners out of the store.
	BatchSize int
	// BufferSize bounds the pipeline channels, providing backpressure between
	// evaluation and merging.
	BufferSize int
}

func DefaultConfig() Config {
	return Config{
		MatchThreshold:  DefaultMatchThreshold,
		ReviewThreshold: DefaultReviewThreshold,
		BatchSize:       500,
		BufferSize:      64,
	}
}

func ConfigFromEnv(log *logger.Logger) Config {
	return Config{
		MatchThreshold:  utils.GetEnvAsFloat("DEDUP_MATCH_THRESHOLD", DefaultMatchThreshold, log),
		ReviewThreshold: utils.GetEnvAsFloat("DEDUP_REVIEW_THRESHOLD", DefaultReviewThreshold, log),
		BatchSize:       utils.GetEnvAsInt("DEDUP_BATCH_SIZE", 500, log),
		BufferSize:      utils.GetEnvAsInt("DEDUP_BUFFER_SIZE", 64, log),
	}
}

func (c Config) Validate() error {
	if c.ReviewThreshold <= 0 || c.ReviewThreshold > 1 {
		return fmt.Errorf("review threshold %v out of (0, 1]: %w", c.ReviewThreshold, errs.ErrInvalidArgument)
	}
	if c.MatchThreshold <= 0 || c.MatchThreshold > 1 {
		return fmt.Errorf("match threshold %v out of (0, 1]: %w", c.MatchThreshold, errs.ErrInvalidArgument)
	}
	if c.ReviewThreshold > c.MatchThreshold {
		return fmt.Errorf("review threshold %v above match threshold %v: %w", c.ReviewThreshold, c.MatchThreshold, errs.ErrInvalidArgument)
	}
	if c.BatchSize <= 0 {
		return fmt.Errorf("batch size %d must be positive: %w", c.BatchSize, errs.ErrInvalidArgument)
	}
	if c.BufferSize <= 0 {
		return fmt.Errorf("buffer size %d must be positive: %w", c.BufferSize, errs.ErrInvalidArgument)
	}
	return nil
}
