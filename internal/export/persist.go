package export

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"resumerank/internal/config"
	"resumerank/internal/errors"
	"resumerank/internal/types"

	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

const jobTitleMaxLen = 120

// BuildPersistRequest assembles the payload for the persistence endpoint.
// The job title is the first line of the description, truncated, with a
// placeholder when the description is empty.
func BuildPersistRequest(jobDescription string, scored []types.ScoredCandidate) types.PersistRequest {
	title := jobTitle(jobDescription)

	candidates := make([]types.PersistCandidate, 0, len(scored))
	scores := make([]types.PersistScore, 0, len(scored))
	for _, c := range scored {
		candidates = append(candidates, types.PersistCandidate{
			Name:     c.Name,
			Filename: c.Filename,
			RawText:  c.RawText,
		})
		scores = append(scores, types.PersistScore{
			Name:   c.Name,
			Scores: c.Scores,
		})
	}

	return types.PersistRequest{
		Job: types.PersistJob{
			Title:       title,
			Description: jobDescription,
		},
		Candidates: candidates,
		Scores:     scores,
	}
}

func jobTitle(jobDescription string) string {
	firstLine := jobDescription
	if idx := strings.IndexByte(jobDescription, '\n'); idx >= 0 {
		firstLine = jobDescription[:idx]
	}
	firstLine = strings.TrimSpace(firstLine)

	runes := []rune(firstLine)
	if len(runes) > jobTitleMaxLen {
		firstLine = string(runes[:jobTitleMaxLen])
	}

	if firstLine == "" {
		return "Role"
	}
	return firstLine
}

// PersistClient sends scoring results to a configured persistence endpoint.
type PersistClient struct {
	url    string
	apiKey string
	client *http.Client
	logger *errors.Logger
}

// NewPersistClient creates a persistence client from configuration.
func NewPersistClient(cfg config.RemoteScoringConfig, logger *errors.Logger) *PersistClient {
	return &PersistClient{
		url:    cfg.PersistURL,
		apiKey: cfg.APIKey,
		client: &http.Client{
			Timeout:   cfg.Timeout,
			Transport: otelhttp.NewTransport(http.DefaultTransport),
		},
		logger: logger,
	}
}

// Save posts the payload to the persistence endpoint.
func (p *PersistClient) Save(ctx context.Context, req types.PersistRequest) error {
	if p.url == "" {
		return errors.NewConfigError(
			errors.ErrCodeInvalidConfig,
			"persistence endpoint is not configured (set scoring.remote.persistURL)",
			nil,
		)
	}

	body, err := json.Marshal(req)
	if err != nil {
		return errors.NewInternalError(errors.ErrCodePersistFailed, "failed to encode persistence payload", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, p.url, bytes.NewReader(body))
	if err != nil {
		return errors.NewInternalError(errors.ErrCodePersistFailed, "failed to build persistence request", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	if p.apiKey != "" {
		httpReq.Header.Set("X-API-Key", p.apiKey)
	}

	resp, err := p.client.Do(httpReq)
	if err != nil {
		return errors.NewNetworkError(errors.ErrCodePersistFailed, "persistence request failed", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return errors.NewNetworkError(
			errors.ErrCodePersistFailed,
			fmt.Sprintf("persistence endpoint returned status %d", resp.StatusCode),
			nil,
		).WithContext("status", resp.StatusCode)
	}

	if p.logger != nil {
		p.logger.Info("Scoring results persisted",
			"candidates", len(req.Candidates),
			"endpoint", p.url)
	}

	return nil
}
