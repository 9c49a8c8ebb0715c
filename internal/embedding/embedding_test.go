package embedding

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCosine(t *testing.T) {
	tests := []struct {
		name     string
		a        []float32
		b        []float32
		expected float64
	}{
		{"Identical vectors", []float32{1, 2, 3}, []float32{1, 2, 3}, 1.0},
		{"Opposite vectors", []float32{1, 0}, []float32{-1, 0}, -1.0},
		{"Orthogonal vectors", []float32{1, 0}, []float32{0, 1}, 0.0},
		{"Zero vector", []float32{0, 0}, []float32{1, 1}, 0.0},
		{"Empty vectors", nil, nil, 0.0},
		{"Mismatched lengths", []float32{1, 2}, []float32{1, 2, 3}, 0.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.expected, Cosine(tt.a, tt.b), 1e-9)
		})
	}
}

func TestSimilarityClampsNegativeToZero(t *testing.T) {
	assert.Equal(t, 0.0, Similarity([]float32{1, 0}, []float32{-1, 0}))
	assert.InDelta(t, 1.0, Similarity([]float32{2, 2}, []float32{1, 1}), 1e-9)
}

func TestMockEmbedderDeterministic(t *testing.T) {
	mock := &MockEmbedder{}
	ctx := context.Background()

	a, err := mock.EmbedText(ctx, "resume text")
	require.NoError(t, err)
	b, err := mock.EmbedText(ctx, "resume text")
	require.NoError(t, err)
	assert.Equal(t, a, b, "same text must embed identically")

	c, err := mock.EmbedText(ctx, "different text")
	require.NoError(t, err)
	assert.NotEqual(t, a, c)
	assert.Len(t, a, 384)
}

func TestMockEmbedderProducesUnitVectors(t *testing.T) {
	mock := &MockEmbedder{Dim: 16}

	vector, err := mock.EmbedText(context.Background(), "unit norm check")
	require.NoError(t, err)

	var sumSquares float64
	for _, v := range vector {
		sumSquares += float64(v) * float64(v)
	}
	assert.InDelta(t, 1.0, sumSquares, 1e-5)
}

func TestCacheEmbedsOncePerContent(t *testing.T) {
	calls := 0
	mock := &MockEmbedder{
		EmbedTextFunc: func(_ context.Context, _ string) ([]float32, error) {
			calls++
			return []float32{1, 2, 3}, nil
		},
	}
	cache := NewCache(mock)
	ctx := context.Background()

	for i := 0; i < 5; i++ {
		_, err := cache.Embed(ctx, "same document")
		require.NoError(t, err)
	}

	assert.Equal(t, 1, calls, "embedding is computed at most once per document")
	assert.Equal(t, 1, cache.Len())
}

func TestCacheDoesNotCacheFailures(t *testing.T) {
	fail := true
	mock := &MockEmbedder{
		EmbedTextFunc: func(_ context.Context, _ string) ([]float32, error) {
			if fail {
				return nil, errors.New("embedding service down")
			}
			return []float32{1}, nil
		},
	}
	cache := NewCache(mock)
	ctx := context.Background()

	_, err := cache.Embed(ctx, "doc")
	assert.Error(t, err)

	fail = false
	vector, err := cache.Embed(ctx, "doc")
	require.NoError(t, err)
	assert.Equal(t, []float32{1}, vector)
}

func TestKeyStable(t *testing.T) {
	assert.Equal(t, Key("abc"), Key("abc"))
	assert.NotEqual(t, Key("abc"), Key("abd"))
	assert.Len(t, Key(""), 64)
}
