package scoring

import (
	"context"
	"errors"
	"sync"

	"resumerank/internal/engine"
	"resumerank/internal/types"
)

// ErrSuperseded is returned when a newer scoring run started before this
// one finished. The superseded run's results are discarded.
var ErrSuperseded = errors.New("scoring run superseded by a newer run")

// Runner serializes scoring runs with last-run-wins semantics. Starting
// a new run cancels any run in flight; a cancelled run never publishes
// its results.
type Runner struct {
	scorer Scorer

	mu      sync.Mutex
	cancel  context.CancelFunc
	gen     uint64
	results []types.ScoredCandidate
}

// NewRunner creates a runner for the given scorer.
func NewRunner(scorer Scorer) *Runner {
	return &Runner{scorer: scorer}
}

// Run scores the candidates and publishes the ranked results. If another
// run starts while this one is in progress, this run returns
// ErrSuperseded and its results are dropped.
func (r *Runner) Run(ctx context.Context, jobDescription string, candidates []types.Candidate) ([]types.ScoredCandidate, error) {
	r.mu.Lock()
	if r.cancel != nil {
		r.cancel()
	}
	runCtx, cancel := context.WithCancel(ctx)
	r.cancel = cancel
	r.gen++
	gen := r.gen
	r.mu.Unlock()

	defer cancel()

	scored, err := r.scorer.Score(runCtx, jobDescription, candidates)
	if err != nil {
		if runCtx.Err() != nil && ctx.Err() == nil {
			return nil, ErrSuperseded
		}
		return nil, err
	}

	ranked := engine.Rank(scored)

	r.mu.Lock()
	defer r.mu.Unlock()

	// A newer run may have started after scoring finished but before we
	// publish. The generation check keeps stale results out.
	if gen != r.gen {
		return nil, ErrSuperseded
	}
	r.results = ranked

	return ranked, nil
}

// Results returns the most recently published ranked results.
func (r *Runner) Results() []types.ScoredCandidate {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]types.ScoredCandidate, len(r.results))
	copy(out, r.results)
	return out
}
