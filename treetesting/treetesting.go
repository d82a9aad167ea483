// Package treetesting generates deterministic leaf content for exercising
// merkle trees in tests and demonstrations. Generation is seeded so that a
// failing case reproduces from run to run.
package treetesting

import (
	"fmt"
	"math/rand"

	"github.com/google/uuid"
)

type TestConfig struct {
	// Seed fixes the RNG so the generated content is the same from run to
	// run. Use the failing seed from a test log to reproduce.
	Seed int64
	// LabelPrefix namespaces the generated content, typically the test name.
	LabelPrefix string
}

type TestGenerator struct {
	Cfg TestConfig
	Rng *rand.Rand
}

func NewTestGenerator(cfg TestConfig) *TestGenerator {
	return &TestGenerator{
		Cfg: cfg,
		Rng: rand.New(rand.NewSource(cfg.Seed)),
	}
}

// GenerateLeafContent returns count distinct items of leaf content. Each item
// carries the generator prefix, a uuid drawn from the seeded RNG and its
// ordinal, so items are unique across a run but reproducible given the seed.
func (g *TestGenerator) GenerateLeafContent(count int) [][]byte {
	items := make([][]byte, 0, count)
	for i := 0; i < count; i++ {
		// NewRandomFromReader only fails if the reader does, and the seeded
		// RNG never does.
		id, _ := uuid.NewRandomFromReader(g.Rng)
		items = append(items, fmt.Appendf(nil, "%s/%s/%d", g.Cfg.LabelPrefix, id, i))
	}
	return items
}

// ShuffledIndices returns the leaf indices [0, count) in a seeded random
// order, for exercising assignment order independence.
func (g *TestGenerator) ShuffledIndices(count int) []uint64 {
	indices := make([]uint64, count)
	for i := range indices {
		indices[i] = uint64(i)
	}
	g.Rng.Shuffle(count, func(i, j int) {
		indices[i], indices[j] = indices[j], indices[i]
	})
	return indices
}
