// Package embedding defines the semantic-embedding collaborator boundary:
// an Embedder producing fixed-length vectors and the cosine similarity used
// to compare them.
package embedding

import (
	"context"
	"math"
)

// Embedder generates vector embeddings from text. Implementations must be
// safe for concurrent use and deterministic for a given text.
type Embedder interface {
	// EmbedText generates a vector embedding for a single text string.
	EmbedText(ctx context.Context, text string) ([]float32, error)
}

// Cosine returns the cosine similarity of two vectors in [-1,1].
// Mismatched lengths or zero vectors yield 0.
func Cosine(a, b []float32) float64 {
	if len(a) == 0 || len(a) != len(b) {
		return 0
	}

	var dot, normA, normB float64
	for i := range a {
		dot += float64(a[i]) * float64(b[i])
		normA += float64(a[i]) * float64(a[i])
		normB += float64(b[i]) * float64(b[i])
	}
	if normA == 0 || normB == 0 {
		return 0
	}

	cos := dot / (math.Sqrt(normA) * math.Sqrt(normB))
	return math.Max(-1, math.Min(1, cos))
}

// Similarity maps cosine similarity onto the [0,1] scale the scorer blends.
// Negative cosine means "no semantic overlap" for scoring purposes and
// clamps to 0.
func Similarity(a, b []float32) float64 {
	return math.Max(0, Cosine(a, b))
}
