package matching

import (
	"context"
	"fmt"
	"runtime"
	"sort"
	"sync"

	"github.com/google/uuid"
	"github.com/panjf2000/ants/v2"

	"github.com/jonathan/resume-matcher/internal/embedding"
	"github.com/jonathan/resume-matcher/internal/types"
)

// SortOrder selects the batch result ordering.
type SortOrder string

const (
	// SortScoreDesc orders by score descending, ties broken by matched
	// count descending. The default.
	SortScoreDesc SortOrder = "score_desc"
	// SortScoreAsc orders by score ascending.
	SortScoreAsc SortOrder = "score_asc"
	// SortMatchedDesc orders by matched-capability count descending.
	SortMatchedDesc SortOrder = "matched_desc"
	// SortMatchedAsc orders by matched-capability count ascending.
	SortMatchedAsc SortOrder = "matched_asc"
)

// ParseSortOrder resolves a sort order by name; empty means the default.
func ParseSortOrder(name string) (SortOrder, error) {
	switch SortOrder(name) {
	case "":
		return SortScoreDesc, nil
	case SortScoreDesc, SortScoreAsc, SortMatchedDesc, SortMatchedAsc:
		return SortOrder(name), nil
	default:
		return "", fmt.Errorf("unknown sort order: %q", name)
	}
}

// Requirement is one pre-analyzed requirement document entering a batch
// comparison. Vector is its cached embedding; Err records an upstream
// embedding failure, which fails this one comparison but not the batch.
type Requirement struct {
	ID       string
	Analysis types.AnalysisResult
	Vector   []float32
	Err      error
}

// Options configures a batch comparison.
type Options struct {
	Weights Weights

	// MinScore and MinMatched filter successful results after scoring.
	MinScore   float64
	MinMatched int

	SortBy SortOrder

	// PoolSize bounds comparison concurrency. Zero means half the CPUs.
	PoolSize int
}

// Report is the outcome of one batch comparison run.
type Report struct {
	RunID   string              `json:"run_id"`
	Results []types.MatchResult `json:"results"`
}

// CompareMany compares one candidate against every requirement concurrently.
// Each worker reads its own requirement and writes one result slot, so
// result identity is preserved regardless of completion order. Filtering and
// sorting happen after all workers finish and never re-query the embedding
// collaborator. Failed comparisons survive filtering and sort to the end.
func CompareMany(ctx context.Context, candidate types.AnalysisResult, candidateVector []float32, requirements []Requirement, opts Options) (Report, error) {
	if opts.Weights == (Weights{}) {
		opts.Weights = DefaultWeights()
	}
	if err := opts.Weights.Validate(); err != nil {
		return Report{}, err
	}
	sortBy := opts.SortBy
	if sortBy == "" {
		sortBy = SortScoreDesc
	}

	poolSize := opts.PoolSize
	if poolSize <= 0 {
		poolSize = runtime.NumCPU() / 2
		if poolSize < 1 {
			poolSize = 1
		}
	}

	pool, err := ants.NewPool(poolSize)
	if err != nil {
		return Report{}, fmt.Errorf("failed to create worker pool: %w", err)
	}
	defer pool.Release()

	results := make([]types.MatchResult, len(requirements))
	var wg sync.WaitGroup
	for i := range requirements {
		wg.Add(1)
		req := requirements[i]
		slot := &results[i]
		if submitErr := pool.Submit(func() {
			defer wg.Done()
			*slot = compareOne(ctx, candidate, candidateVector, req, opts.Weights)
		}); submitErr != nil {
			wg.Done()
			*slot = failedResult(candidate, req, submitErr)
		}
	}
	wg.Wait()

	return Report{
		RunID:   uuid.NewString(),
		Results: filterAndSort(results, opts.MinScore, opts.MinMatched, sortBy),
	}, nil
}

// compareOne scores a single requirement. Embedding faults and cancellation
// fail this comparison only.
func compareOne(ctx context.Context, candidate types.AnalysisResult, candidateVector []float32, req Requirement, w Weights) types.MatchResult {
	if req.Err != nil {
		return failedResult(candidate, req, req.Err)
	}
	if err := ctx.Err(); err != nil {
		return failedResult(candidate, req, err)
	}
	if len(candidateVector) == 0 || len(req.Vector) == 0 {
		return failedResult(candidate, req, fmt.Errorf("missing embedding vector"))
	}

	similarity := embedding.Similarity(candidateVector, req.Vector)
	result := Compare(candidate.Capabilities, req.Analysis.Capabilities, similarity, w)
	result.RequirementID = req.ID
	result.RequirementLocation = req.Analysis.Location
	result.Candidate = candidate
	return result
}

func failedResult(candidate types.AnalysisResult, req Requirement, err error) types.MatchResult {
	return types.MatchResult{
		RequirementID:       req.ID,
		RequirementLocation: req.Analysis.Location,
		Candidate:           candidate,
		Matched:             types.NewCapabilitySet(),
		Missing:             types.NewCapabilitySet(),
		Failed:              true,
		Error:               err.Error(),
	}
}

// filterAndSort applies the minimum-score and minimum-matched filters to
// successful results, sorts them stably, and appends failed results in their
// original order.
func filterAndSort(results []types.MatchResult, minScore float64, minMatched int, sortBy SortOrder) []types.MatchResult {
	kept := make([]types.MatchResult, 0, len(results))
	var failed []types.MatchResult
	for _, r := range results {
		switch {
		case r.Failed:
			failed = append(failed, r)
		case r.Score >= minScore && r.MatchedCount() >= minMatched:
			kept = append(kept, r)
		}
	}

	less := lessFunc(sortBy)
	sort.SliceStable(kept, func(i, j int) bool {
		return less(kept[i], kept[j])
	})

	return append(kept, failed...)
}

func lessFunc(sortBy SortOrder) func(a, b types.MatchResult) bool {
	switch sortBy {
	case SortScoreAsc:
		return func(a, b types.MatchResult) bool { return a.Score < b.Score }
	case SortMatchedDesc:
		return func(a, b types.MatchResult) bool { return a.MatchedCount() > b.MatchedCount() }
	case SortMatchedAsc:
		return func(a, b types.MatchResult) bool { return a.MatchedCount() < b.MatchedCount() }
	default: // SortScoreDesc
		return func(a, b types.MatchResult) bool {
			if a.Score != b.Score {
				return a.Score > b.Score
			}
			return a.MatchedCount() > b.MatchedCount()
		}
	}
}
