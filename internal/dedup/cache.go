package dedup

import (
	"bytes"
	"sync"

	"github.com/google/uuid"
)

// PairCache remembers which unordered (owner, candidate) pairs were already
// scored during the current run. Candidate discovery revisits the same name
// cluster from every member, so without it each pair would be compared twice.
// One instance lives per run; it is never persisted.
type PairCache struct {
	mu   sync.Mutex
	seen map[pairKey]struct{}
}

type pairKey [2]uuid.UUID

func NewPairCache() *PairCache {
	return &PairCache{seen: make(map[pairKey]struct{})}
}

func (c *PairCache) Has(a, b uuid.UUID) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	_, ok := c.seen[orderedPair(a, b)]
	return ok
}

func (c *PairCache) Add(a, b uuid.UUID) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.seen[orderedPair(a, b)] = struct{}{}
}

func orderedPair(a, b uuid.UUID) pairKey {
	if bytes.Compare(a[:], b[:]) > 0 {
		return pairKey{b, a}
	}
	return pairKey{a, b}
}
