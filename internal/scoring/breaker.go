package scoring

import (
	"resumerank/internal/config"
	"resumerank/internal/errors"
	"resumerank/internal/types"

	"github.com/sony/gobreaker/v2"
)

// ScoringCircuitBreaker wraps remote scoring calls with circuit breaker
// protection. A nil breaker means protection is disabled and calls pass
// straight through.
type ScoringCircuitBreaker struct {
	cb *gobreaker.CircuitBreaker[*types.ScoreResponse]
}

// NewScoringCircuitBreaker creates a circuit breaker for the remote
// scoring backend. Returns nil when disabled in configuration.
func NewScoringCircuitBreaker(cfg config.CircuitBreakerConfig, logger *errors.Logger) *ScoringCircuitBreaker {
	if !cfg.Enabled {
		return nil
	}

	settings := gobreaker.Settings{
		Name:        "remote-scoring",
		MaxRequests: cfg.MaxRequests,
		Interval:    cfg.Interval,
		Timeout:     cfg.Timeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			failureRatio := float64(counts.TotalFailures) / float64(counts.Requests)
			return counts.Requests >= cfg.MinRequests &&
				failureRatio >= cfg.FailureThreshold
		},
		OnStateChange: func(name string, from gobreaker.State, to gobreaker.State) {
			if logger != nil {
				logger.Info("Circuit breaker state changed",
					"name", name,
					"from", from.String(),
					"to", to.String(),
					"max_requests", cfg.MaxRequests,
					"failure_threshold", cfg.FailureThreshold)
			}
		},
	}

	return &ScoringCircuitBreaker{
		cb: gobreaker.NewCircuitBreaker[*types.ScoreResponse](settings),
	}
}

// Execute executes the provided function with circuit breaker protection
func (cb *ScoringCircuitBreaker) Execute(fn func() (*types.ScoreResponse, error)) (*types.ScoreResponse, error) {
	if cb == nil || cb.cb == nil {
		// If breaker is disabled/nil, just execute the function directly
		return fn()
	}
	return cb.cb.Execute(fn)
}

// GetStats returns circuit breaker statistics
func (cb *ScoringCircuitBreaker) GetStats() map[string]any {
	if cb == nil || cb.cb == nil {
		return map[string]any{
			"enabled": false,
		}
	}

	return map[string]any{
		"name":    cb.cb.Name(),
		"state":   cb.cb.State().String(),
		"counts":  cb.cb.Counts(),
		"enabled": true,
	}
}

// IsHealthy returns true if the circuit breaker is in closed state
func (cb *ScoringCircuitBreaker) IsHealthy() bool {
	if cb == nil || cb.cb == nil {
		return true // If no circuit breaker, consider it healthy
	}
	return cb.cb.State() == gobreaker.StateClosed
}
