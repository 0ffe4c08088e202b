package dedup

import (
	"time"

	"github.com/vacantry/housing-backend/internal/types"
)

// Classifier turns comparator scores plus auxiliary signals into one of the
// three dispositions. A clean auto-merge requires at least one duplicate above
// the match threshold and no contradictory biographical evidence.
type Classifier struct {
	cfg Config
}

func NewClassifier(cfg Config) (*Classifier, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &Classifier{cfg: cfg}, nil
}

// IsMatch reports whether score qualifies as an outright match.
func (c *Classifier) IsMatch(score float64) bool {
	return score >= c.cfg.MatchThreshold
}

// IsReviewMatch reports whether score falls in the manual-review band.
func (c *Classifier) IsReviewMatch(score float64) bool {
	return score >= c.cfg.ReviewThreshold && score < c.cfg.MatchThreshold
}

// NeedsManualReview decides whether the comparison of source against its
// scored duplicates must go to a case worker instead of being auto-merged.
// Review is required when the candidates above the review threshold all stay
// below the match threshold, or when the source and those candidates carry at
// least two distinct birth dates.
func (c *Classifier) NeedsManualReview(source *types.Owner, duplicates []ScoredOwner) bool {
	var matches []ScoredOwner
	for _, d := range duplicates {
		if d.Score >= c.cfg.ReviewThreshold {
			matches = append(matches, d)
		}
	}
	if len(matches) == 0 {
		return false
	}
	noOutrightMatch := true
	for _, m := range matches {
		if c.IsMatch(m.Score) {
			noOutrightMatch = false
			break
		}
	}
	if noOutrightMatch {
		return true
	}
	return hasBirthDateConflict(source, matches)
}

// Classify maps a comparison outcome onto the Disposition union.
func (c *Classifier) Classify(score float64, needsReview bool) Disposition {
	switch {
	case needsReview:
		return DispositionNeedsReview
	case c.IsMatch(score):
		return DispositionMatch
	default:
		return DispositionNonMatch
	}
}

// hasBirthDateConflict reports whether source and matches together carry two
// non-nil birth dates that disagree. With fewer than two dates present no
// conflict is possible, whatever the scores.
func hasBirthDateConflict(source *types.Owner, matches []ScoredOwner) bool {
	var dates []time.Time
	if source.BirthDate != nil {
		dates = append(dates, *source.BirthDate)
	}
	for _, m := range matches {
		if m.Owner.BirthDate != nil {
			dates = append(dates, *m.Owner.BirthDate)
		}
	}
	if len(dates) < 2 {
		return false
	}
	for _, d := range dates[1:] {
		if !d.Equal(dates[0]) {
			return true
		}
	}
	return false
}
