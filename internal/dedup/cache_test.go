package dedup

import (
	"testing"

	"github.com/google/uuid"
)

func TestPairCacheUnordered(t *testing.T) {
	cache := NewPairCache()
	a, b := uuid.New(), uuid.New()

	if cache.Has(a, b) {
		t.Fatal("fresh cache should not contain the pair")
	}
	cache.Add(a, b)
	if !cache.Has(a, b) {
		t.Fatal("pair should be present after Add")
	}
	if !cache.Has(b, a) {
		t.Fatal("pair lookup should ignore argument order")
	}
}

func TestPairCacheDistinctPairs(t *testing.T) {
	cache := NewPairCache()
	a, b, c := uuid.New(), uuid.New(), uuid.New()

	cache.Add(a, b)
	if cache.Has(a, c) || cache.Has(b, c) {
		t.Fatal("unrelated pairs must not be reported as seen")
	}
}
