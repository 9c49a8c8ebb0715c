package embedding

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"sync"
)

// Cache memoizes embedding vectors keyed by document content hash, so the
// expensive embedding call happens at most once per document regardless of
// how many comparisons consume it. Safe for concurrent use.
type Cache struct {
	embedder Embedder

	mu      sync.Mutex
	vectors map[string][]float32
}

// NewCache wraps an embedder with content-hash memoization.
func NewCache(embedder Embedder) *Cache {
	return &Cache{
		embedder: embedder,
		vectors:  make(map[string][]float32),
	}
}

// Key returns the stable identity of a document's content.
func Key(text string) string {
	sum := sha256.Sum256([]byte(text))
	return hex.EncodeToString(sum[:])
}

// Embed returns the cached vector for text, computing and storing it on the
// first call. Failures are not cached; a later call retries.
func (c *Cache) Embed(ctx context.Context, text string) ([]float32, error) {
	key := Key(text)

	c.mu.Lock()
	vector, ok := c.vectors[key]
	c.mu.Unlock()
	if ok {
		return vector, nil
	}

	vector, err := c.embedder.EmbedText(ctx, text)
	if err != nil {
		return nil, err
	}

	c.mu.Lock()
	c.vectors[key] = vector
	c.mu.Unlock()
	return vector, nil
}

// Len returns the number of cached vectors.
func (c *Cache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.vectors)
}
