// Package scoring provides the scoring backends (local engine and remote
// HTTP service), result reconciliation, and the run supersession model.
package scoring

import (
	"context"

	"resumerank/internal/config"
	"resumerank/internal/engine"
	"resumerank/internal/errors"
	"resumerank/internal/types"
)

// Scorer scores a set of candidates against a job description. Results
// are returned in the same order as the input candidates.
type Scorer interface {
	Score(ctx context.Context, jobDescription string, candidates []types.Candidate) ([]types.ScoredCandidate, error)
	Name() string
}

// LocalScorer runs the deterministic scoring engine in-process.
type LocalScorer struct{}

// NewLocalScorer creates the local scoring backend.
func NewLocalScorer() *LocalScorer {
	return &LocalScorer{}
}

func (s *LocalScorer) Name() string { return "local" }

// Score scores every candidate with the local engine. Cancellation is
// checked between candidates so a superseded run stops promptly.
func (s *LocalScorer) Score(ctx context.Context, jobDescription string, candidates []types.Candidate) ([]types.ScoredCandidate, error) {
	scored := make([]types.ScoredCandidate, 0, len(candidates))

	for _, c := range candidates {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		scored = append(scored, types.ScoredCandidate{
			Candidate: c,
			Scores:    engine.Score(jobDescription, c.RawText),
		})
	}

	return scored, nil
}

// ForConfig builds the scorer selected by configuration.
func ForConfig(cfg *config.Config, logger *errors.Logger) (Scorer, error) {
	switch cfg.Scoring.Mode {
	case "local":
		return NewLocalScorer(), nil
	case "remote":
		return NewRemoteScorer(cfg.Scoring.Remote, logger)
	default:
		return nil, errors.NewConfigError(
			errors.ErrCodeInvalidConfig,
			"unknown scoring mode: "+cfg.Scoring.Mode,
			nil,
		)
	}
}
