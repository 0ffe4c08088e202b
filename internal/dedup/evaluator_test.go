package dedup

import (
	"context"
	"testing"

	"github.com/vacantry/housing-backend/internal/repos"
	"github.com/vacantry/housing-backend/internal/types"
)

func TestEvaluateScoresAndSortsCandidates(t *testing.T) {
	db := newTestDB(t)
	log := testLogger()
	ctx := context.Background()

	owner := seedOwner(t, db, &types.Owner{
		FullName:   "JEAN DUPONT",
		RawAddress: address("0017 RUE DE LA GABARRE", "64500 SAINT-JEAN-DE-LUZ"),
	})
	closeMatch := seedOwner(t, db, &types.Owner{
		FullName:   "JEAN DUPONT",
		RawAddress: address("17 RUE DE LA GABARRE", "64500 SAINT-JEAN-DE-LUZ"),
	})
	farMatch := seedOwner(t, db, &types.Owner{
		FullName:   "JEAN DUPONT",
		RawAddress: address("0168 AV DU PRESIDENT WILSON", "93100 MONTREUIL"),
	})
	seedOwner(t, db, &types.Owner{
		FullName:   "MARIE LAFONT",
		RawAddress: address("17 RUE DE LA GABARRE", "64500 SAINT-JEAN-DE-LUZ"),
	})

	evaluator := NewEvaluator(repos.NewOwnerRepo(db, log), testClassifier(t), NewPairCache(), log)
	comparison, err := evaluator.Evaluate(ctx, owner)
	if err != nil {
		t.Fatalf("evaluate: %v", err)
	}

	if comparison.Source.ID != owner.ID {
		t.Fatalf("comparison source should be the evaluated owner")
	}
	if len(comparison.Duplicates) != 2 {
		t.Fatalf("expected 2 candidates sharing the name, got %d", len(comparison.Duplicates))
	}
	if comparison.Duplicates[0].Owner.ID != closeMatch.ID {
		t.Fatal("duplicates should be sorted by descending score")
	}
	if comparison.Duplicates[1].Owner.ID != farMatch.ID {
		t.Fatal("second duplicate should be the weaker candidate")
	}
	if comparison.Score != comparison.Duplicates[0].Score {
		t.Fatalf("comparison score should be the best duplicate's score, got %v", comparison.Score)
	}
	if comparison.Duplicates[0].Score < DefaultMatchThreshold {
		t.Fatalf("identical normalized address should score a match, got %v", comparison.Duplicates[0].Score)
	}
	if comparison.NeedsReview {
		t.Fatal("an outright match without date conflict needs no review")
	}
}

func TestEvaluateSkipsCachedPairs(t *testing.T) {
	db := newTestDB(t)
	log := testLogger()
	ctx := context.Background()

	first := seedOwner(t, db, &types.Owner{
		FullName:   "JEAN DUPONT",
		RawAddress: address("17 RUE DE LA GABARRE", "64500 SAINT-JEAN-DE-LUZ"),
	})
	second := seedOwner(t, db, &types.Owner{
		FullName:   "JEAN DUPONT",
		RawAddress: address("17 RUE DE LA GABARRE", "64500 SAINT-JEAN-DE-LUZ"),
	})
	third := seedOwner(t, db, &types.Owner{
		FullName:   "JEAN DUPONT",
		RawAddress: address("62 AV DE LA ROUDET", "33500 LIBOURNE"),
	})

	cache := NewPairCache()
	evaluator := NewEvaluator(repos.NewOwnerRepo(db, log), testClassifier(t), cache, log)

	comparison, err := evaluator.Evaluate(ctx, first)
	if err != nil {
		t.Fatalf("evaluate first: %v", err)
	}
	if len(comparison.Duplicates) != 2 {
		t.Fatalf("first evaluation should score both cluster members, got %d", len(comparison.Duplicates))
	}

	comparison, err = evaluator.Evaluate(ctx, second)
	if err != nil {
		t.Fatalf("evaluate second: %v", err)
	}
	if len(comparison.Duplicates) != 1 {
		t.Fatalf("pair with the first owner is cached; expected 1 fresh candidate, got %d", len(comparison.Duplicates))
	}
	if comparison.Duplicates[0].Owner.ID != third.ID {
		t.Fatal("only the unscored pair should be evaluated")
	}

	comparison, err = evaluator.Evaluate(ctx, third)
	if err != nil {
		t.Fatalf("evaluate third: %v", err)
	}
	if len(comparison.Duplicates) != 0 {
		t.Fatalf("every pair is cached; expected no duplicates, got %d", len(comparison.Duplicates))
	}
	if comparison.Score != 0 {
		t.Fatalf("score should be 0 without candidates, got %v", comparison.Score)
	}
	if comparison.NeedsReview {
		t.Fatal("no candidates means no review")
	}
}
