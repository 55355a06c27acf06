package scoring

import (
	"context"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/jonathan/resume-scorer/internal/jd"
	"github.com/jonathan/resume-scorer/internal/logger"
	"github.com/jonathan/resume-scorer/internal/types"
)

// ScoreBatch scores many resumes against one JD concurrently. The JD is
// normalized once up front; each resume then scores independently with no
// shared mutable state beyond the read-only embedder. Parallelism bounds the
// number of in-flight scorings; values below 1 mean unbounded. Results
// preserve input order.
func (e *Engine) ScoreBatch(ctx context.Context, req *types.JobRequirement, candidates []*types.CandidateProfile, parallelism int) []*types.MatchResult {
	runID := uuid.NewString()
	logger.Info().
		Str("run_id", runID).
		Int("resumes", len(candidates)).
		Int("parallelism", parallelism).
		Msg("batch scoring started")

	jd.Normalize(req)

	results := make([]*types.MatchResult, len(candidates))
	g, gctx := errgroup.WithContext(ctx)
	if parallelism > 0 {
		g.SetLimit(parallelism)
	}

	for i, cand := range candidates {
		g.Go(func() error {
			results[i] = e.scoreNormalized(gctx, req, cand)
			return nil
		})
	}

	// Scoring never returns an error; Wait only synchronizes the workers.
	_ = g.Wait()

	logger.Info().Str("run_id", runID).Msg("batch scoring finished")
	return results
}
