package dedup

import (
	"github.com/vacantry/housing-backend/internal/normalization"
	"github.com/vacantry/housing-backend/internal/types"
)

// Compare scores the similarity of two owners in [0, 1]. The overall score is
// the arithmetic mean of the defined sub-scores; a sub-score whose inputs are
// missing is skipped rather than counted as zero. Address similarity is the
// only sub-score for now.
func Compare(source, candidate *types.Owner) float64 {
	var scores []float64
	if s, ok := compareAddresses(source.RawAddress, candidate.RawAddress); ok {
		scores = append(scores, s)
	}
	if len(scores) == 0 {
		return 0
	}
	var sum float64
	for _, s := range scores {
		sum += s
	}
	return sum / float64(len(scores))
}

func compareAddresses(a, b []string) (float64, bool) {
	if len(a) == 0 || len(b) == 0 {
		return 0, false
	}
	return jaccard(normalization.NormalizeAddress(a), normalization.NormalizeAddress(b)), true
}

// jaccard is the overlap ratio of the character sets of both strings.
func jaccard(a, b string) float64 {
	setA := runeSet(a)
	setB := runeSet(b)
	intersection := 0
	for r := range setA {
		if setB[r] {
			intersection++
		}
	}
	union := len(setA) + len(setB) - intersection
	if union == 0 {
		return 1
	}
	return float64(intersection) / float64(union)
}

func runeSet(s string) map[rune]bool {
	set := make(map[rune]bool, len(s))
	for _, r := range s {
		set[r] = true
	}
	return set
}
