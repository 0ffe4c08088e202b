package dedup

import (
	"context"
	"fmt"
	"sort"

	"github.com/vacantry/housing-backend/internal/pkg/logger"
	"github.com/vacantry/housing-backend/internal/repos"
	"github.com/vacantry/housing-backend/internal/types"
)

// Evaluator discovers candidate duplicates for an owner, scores them and
// classifies the outcome into one Comparison per owner. Candidate discovery is
// symmetric, so every member of a name-sharing cluster ends up with its own
// Comparison; the pair cache keeps each pair from being scored twice.
type Evaluator struct {
	owners     repos.OwnerRepo
	classifier *Classifier
	cache      *PairCache
	log        *logger.Logger
}

func NewEvaluator(owners repos.OwnerRepo, classifier *Classifier, cache *PairCache, baseLog *logger.Logger) *Evaluator {
	return &Evaluator{
		owners:     owners,
		classifier: classifier,
		cache:      cache,
		log:        baseLog.With("component", "Evaluator"),
	}
}

func (e *Evaluator) Evaluate(ctx context.Context, owner *types.Owner) (*Comparison, error) {
	candidates, err := e.owners.FindByFullName(ctx, nil, owner)
	if err != nil {
		return nil, fmt.Errorf("find candidates for owner %s: %w", owner.ID, err)
	}

	scored := make([]ScoredOwner, 0, len(candidates))
	for _, candidate := range candidates {
		if e.cache.Has(owner.ID, candidate.ID) {
			continue
		}
		score := Compare(owner, candidate)
		e.cache.Add(owner.ID, candidate.ID)
		scored = append(scored, ScoredOwner{Owner: candidate, Score: score})
	}

	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].Score > scored[j].Score
	})

	best := 0.0
	if len(scored) > 0 {
		best = scored[0].Score
	}

	comparison := &Comparison{
		Source:      owner,
		Duplicates:  scored,
		Score:       best,
		NeedsReview: e.classifier.NeedsManualReview(owner, scored),
	}
	e.log.Debug("Owner evaluated",
		"owner_id", owner.ID,
		"candidates", len(candidates),
		"scored", len(scored),
		"score", comparison.Score,
		"needs_review", comparison.NeedsReview,
	)
	return comparison, nil
}
