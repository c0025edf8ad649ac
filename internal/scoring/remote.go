package scoring

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"resumerank/internal/config"
	"resumerank/internal/errors"
	"resumerank/internal/types"

	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

// RemoteScorer delegates scoring to an HTTP service. Responses pass
// through reconciliation since remote backends vary in field naming.
type RemoteScorer struct {
	url     string
	apiKey  string
	client  *http.Client
	breaker *ScoringCircuitBreaker
	logger  *errors.Logger
}

// NewRemoteScorer creates the remote scoring backend from configuration.
func NewRemoteScorer(cfg config.RemoteScoringConfig, logger *errors.Logger) (*RemoteScorer, error) {
	if cfg.URL == "" {
		return nil, errors.NewConfigError(
			errors.ErrCodeProviderNotConfigured,
			"remote scoring URL is not configured (set scoring.remote.url)",
			nil,
		)
	}

	return &RemoteScorer{
		url:    cfg.URL,
		apiKey: cfg.APIKey,
		client: &http.Client{
			Timeout:   cfg.Timeout,
			Transport: otelhttp.NewTransport(http.DefaultTransport),
		},
		breaker: NewScoringCircuitBreaker(cfg.CircuitBreaker, logger),
		logger:  logger,
	}, nil
}

func (s *RemoteScorer) Name() string { return "remote" }

// Breaker exposes the circuit breaker for health reporting.
func (s *RemoteScorer) Breaker() *ScoringCircuitBreaker {
	return s.breaker
}

// Score sends the candidates to the remote service and reconciles the
// response against them.
func (s *RemoteScorer) Score(ctx context.Context, jobDescription string, candidates []types.Candidate) ([]types.ScoredCandidate, error) {
	request := types.ScoreRequest{
		JobDescription: jobDescription,
		Candidates:     make([]types.ScoreRequestCandidate, 0, len(candidates)),
	}
	for _, c := range candidates {
		request.Candidates = append(request.Candidates, types.ScoreRequestCandidate{
			ID:   c.ID,
			Name: c.Name,
			Text: c.RawText,
		})
	}

	response, err := s.breaker.Execute(func() (*types.ScoreResponse, error) {
		return s.post(ctx, request)
	})
	if err != nil {
		return nil, err
	}

	if s.logger != nil {
		s.logger.Debug("Remote scoring completed",
			"candidates", len(candidates),
			"results", len(response.Results))
	}

	return Reconcile(candidates, response.Results), nil
}

func (s *RemoteScorer) post(ctx context.Context, request types.ScoreRequest) (*types.ScoreResponse, error) {
	body, err := json.Marshal(request)
	if err != nil {
		return nil, errors.NewInternalError(errors.ErrCodeInvalidFormat, "failed to encode scoring request", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, s.url, bytes.NewReader(body))
	if err != nil {
		return nil, errors.NewInternalError(errors.ErrCodeInvalidRequest, "failed to build scoring request", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	if s.apiKey != "" {
		httpReq.Header.Set("X-API-Key", s.apiKey)
	}

	resp, err := s.client.Do(httpReq)
	if err != nil {
		return nil, errors.NewNetworkError(
			errors.ErrCodeProviderUnavailable,
			"remote scoring request failed",
			err,
		).WithContext("url", s.url)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, errors.NewNetworkError(
			errors.ErrCodeProviderUnavailable,
			fmt.Sprintf("remote scoring service returned status %d", resp.StatusCode),
			nil,
		).WithContext("status", resp.StatusCode)
	}

	var response types.ScoreResponse
	if err := json.NewDecoder(resp.Body).Decode(&response); err != nil {
		return nil, errors.NewScoringError(
			errors.ErrCodeInvalidFormat,
			"failed to decode scoring response",
			err,
		)
	}

	return &response, nil
}
