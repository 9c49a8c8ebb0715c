package embedding

import (
	"context"
	"hash/fnv"
	"math"
)

// MockEmbedder is a deterministic Embedder for tests and offline runs.
// The same text always produces the same unit vector, so similarity scores
// are reproducible without a model.
type MockEmbedder struct {
	// EmbedTextFunc overrides the default behavior when set.
	EmbedTextFunc func(ctx context.Context, text string) ([]float32, error)

	// Dim is the vector dimension. Zero means 384.
	Dim int
}

// EmbedText generates a deterministic embedding derived from the text hash.
func (m *MockEmbedder) EmbedText(ctx context.Context, text string) ([]float32, error) {
	if m.EmbedTextFunc != nil {
		return m.EmbedTextFunc(ctx, text)
	}
	dim := m.Dim
	if dim <= 0 {
		dim = 384
	}
	return deterministicVector(text, dim), nil
}

// deterministicVector creates a pseudo-random unit vector seeded by an FNV
// hash of the text.
func deterministicVector(text string, dim int) []float32 {
	h := fnv.New32a()
	h.Write([]byte(text))
	seed := h.Sum32()

	vector := make([]float32, dim)
	var sumSquares float32
	for i := range vector {
		seed = seed*1664525 + 1013904223 // LCG constants
		vector[i] = float32(seed%1000) / 1000.0
		sumSquares += vector[i] * vector[i]
	}

	if sumSquares > 0 {
		norm := float32(math.Sqrt(float64(sumSquares)))
		for i := range vector {
			vector[i] /= norm
		}
	}
	return vector
}
