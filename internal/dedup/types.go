package dedup

import (
	"github.com/vacantry/housing-backend/internal/types"
)

// ScoredOwner is a candidate duplicate with its similarity score against a
// given source owner. It only lives for the duration of one evaluation.
type ScoredOwner struct {
	Owner *types.Owner
	Score float64
}

// Comparison is the unit of work flowing from the Evaluator to the Merger and
// the Recorder. Score is the best duplicate's score, 0 when there is no
// candidate.
type Comparison struct {
	Source      *types.Owner
	Duplicates  []ScoredOwner
	Score       float64
	NeedsReview bool
}

// Disposition is the terminal classification of a comparison.
type Disposition int

const (
	DispositionNonMatch Disposition = iota
	DispositionNeedsReview
	DispositionMatch
)

func (d Disposition) String() string {
	switch d {
	case DispositionMatch:
		return "match"
	case DispositionNeedsReview:
		return "needs_review"
	case DispositionNonMatch:
		return "non_match"
	default:
		return "unknown"
	}
}
