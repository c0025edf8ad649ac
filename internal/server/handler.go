package server

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"resumerank/internal/engine"
	"resumerank/internal/export"
	"resumerank/internal/ingest"
	"resumerank/internal/observability"
	"resumerank/internal/types"

	"go.opentelemetry.io/otel/attribute"
)

// createScoreHandler wraps the score handler with observability
func (s *Server) createScoreHandler(om *observability.ObservabilityManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		tracer := om.Tracer("resumerank.api")
		ctx, span := tracer.Start(ctx, "api.score")
		defer span.End()

		var req types.ScoreRequest
		if err := parseJSONRequest(r, &req); err != nil {
			span.RecordError(err)
			span.SetAttributes(attribute.String("error.type", "validation"))
			writeErrorResponse(w, "Invalid request body", err.Error(), http.StatusBadRequest)
			return
		}

		if strings.TrimSpace(req.JobDescription) == "" {
			err := fmt.Errorf("missing job description")
			span.RecordError(err)
			span.SetAttributes(attribute.String("error.type", "validation"))
			writeErrorResponse(w, "Missing job description", "job_description field is required", http.StatusBadRequest)
			return
		}
		if len(req.Candidates) == 0 {
			err := fmt.Errorf("missing candidates")
			span.RecordError(err)
			span.SetAttributes(attribute.String("error.type", "validation"))
			writeErrorResponse(w, "Missing candidates", "candidates field is required", http.StatusBadRequest)
			return
		}

		candidates := requestCandidates(req.Candidates)

		span.SetAttributes(
			attribute.Int("request.job_length", len(req.JobDescription)),
			attribute.Int("request.candidates", len(candidates)),
			attribute.String("operation", "score"),
		)

		metrics := om.GetMetrics()
		var ranked []types.ScoredCandidate
		err := metrics.TrackScoringRun(ctx, s.Scorer.Name(), len(candidates), func(ctx context.Context) error {
			scored, scoreErr := s.Scorer.Score(ctx, req.JobDescription, candidates)
			if scoreErr != nil {
				return scoreErr
			}
			ranked = engine.Rank(scored)
			return nil
		})

		if err != nil {
			span.RecordError(err)
			span.SetAttributes(attribute.String("error.type", "scoring"))
			writeErrorResponse(w, "Failed to score candidates", err.Error(), http.StatusInternalServerError)
			return
		}

		span.SetAttributes(attribute.Bool("success", true))

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(map[string]any{"results": ranked}); err != nil {
			span.RecordError(err)
			http.Error(w, "Failed to encode response", http.StatusInternalServerError)
		}
	}
}

// createParseHandler wraps the file extraction handler with observability
func (s *Server) createParseHandler(om *observability.ObservabilityManager) http.HandlerFunc {
	extractor := ingest.NewExtractor(s.Logger)

	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		tracer := om.Tracer("resumerank.api")
		ctx, span := tracer.Start(ctx, "api.parse")
		defer span.End()

		metrics := om.GetMetrics()

		file, header, err := r.FormFile("file")
		if err != nil {
			span.RecordError(err)
			span.SetAttributes(attribute.String("error.type", "validation"))
			writeErrorResponse(w, "Missing file", "multipart field 'file' is required", http.StatusBadRequest)
			return
		}
		defer func() {
			if err := file.Close(); err != nil {
				s.Logger.Warn("Failed to close uploaded file", "error", err)
			}
		}()

		if !ingest.IsSupportedFile(header.Filename) {
			err := fmt.Errorf("unsupported file type: %s", header.Filename)
			span.RecordError(err)
			span.SetAttributes(attribute.String("error.type", "validation"))
			metrics.RecordFilesParsed(ctx, 1, false)
			writeErrorResponse(w, "Unsupported file type", err.Error(), http.StatusBadRequest)
			return
		}

		span.SetAttributes(
			attribute.String("operation", "parse"),
			attribute.String("request.filename", header.Filename),
			attribute.Int64("request.file_size", header.Size),
		)

		text, err := s.extractUpload(ctx, extractor, file, header.Filename)
		if err != nil {
			span.RecordError(err)
			span.SetAttributes(attribute.String("error.type", "extraction"))
			metrics.RecordFilesParsed(ctx, 1, false)
			writeErrorResponse(w, "Failed to extract text", err.Error(), http.StatusUnprocessableEntity)
			return
		}

		resp := ParseResponse{Filename: header.Filename, Text: text}
		if strings.TrimSpace(text) == "" {
			resp.Note = "no text content extracted"
		}

		metrics.RecordFilesParsed(ctx, 1, true)
		span.SetAttributes(
			attribute.Bool("success", true),
			attribute.Int("response.text_length", len(text)),
		)

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(resp); err != nil {
			span.RecordError(err)
			http.Error(w, "Failed to encode response", http.StatusInternalServerError)
		}
	}
}

// extractUpload spools an uploaded file to disk and runs text extraction on it.
// The extractor backends (docx reader, pdftotext) operate on paths.
func (s *Server) extractUpload(ctx context.Context, extractor *ingest.Extractor, file multipart.File, filename string) (string, error) {
	tmp, err := os.CreateTemp("", "resumerank-upload-*"+filepath.Ext(filename))
	if err != nil {
		return "", fmt.Errorf("failed to spool upload: %w", err)
	}
	defer func() {
		if err := os.Remove(tmp.Name()); err != nil {
			s.Logger.Warn("Failed to remove spooled upload", "path", tmp.Name(), "error", err)
		}
	}()

	if _, err := io.Copy(tmp, file); err != nil {
		_ = tmp.Close()
		return "", fmt.Errorf("failed to spool upload: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return "", fmt.Errorf("failed to spool upload: %w", err)
	}

	return extractor.ExtractText(ctx, tmp.Name())
}

// createExportHandler wraps the CSV export handler with observability
func (s *Server) createExportHandler(om *observability.ObservabilityManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		tracer := om.Tracer("resumerank.api")
		ctx, span := tracer.Start(ctx, "api.export")
		defer span.End()

		var req ExportRequest
		if err := parseJSONRequest(r, &req); err != nil {
			span.RecordError(err)
			span.SetAttributes(attribute.String("error.type", "validation"))
			writeErrorResponse(w, "Invalid request body", err.Error(), http.StatusBadRequest)
			return
		}

		if strings.TrimSpace(req.JobDescription) == "" {
			err := fmt.Errorf("missing job description")
			span.RecordError(err)
			span.SetAttributes(attribute.String("error.type", "validation"))
			writeErrorResponse(w, "Missing job description", "job_description field is required", http.StatusBadRequest)
			return
		}
		if req.MinScore < 0 || req.MinScore > 100 {
			err := fmt.Errorf("min score out of range: %d", req.MinScore)
			span.RecordError(err)
			span.SetAttributes(attribute.String("error.type", "validation"))
			writeErrorResponse(w, "Invalid minimum score", "min_score must be between 0 and 100", http.StatusBadRequest)
			return
		}

		candidates := requestCandidates(req.Candidates)

		span.SetAttributes(
			attribute.Int("request.candidates", len(candidates)),
			attribute.Int("request.min_score", req.MinScore),
			attribute.String("operation", "export"),
		)

		metrics := om.GetMetrics()
		var csv string
		err := metrics.TrackScoringRun(ctx, s.Scorer.Name(), len(candidates), func(ctx context.Context) error {
			scored, scoreErr := s.Scorer.Score(ctx, req.JobDescription, candidates)
			if scoreErr != nil {
				return scoreErr
			}
			csv = export.CSVString(engine.Rank(scored), req.MinScore)
			return nil
		})

		if err != nil {
			span.RecordError(err)
			span.SetAttributes(attribute.String("error.type", "scoring"))
			writeErrorResponse(w, "Failed to export candidates", err.Error(), http.StatusInternalServerError)
			return
		}

		span.SetAttributes(attribute.Bool("success", true))

		w.Header().Set("Content-Type", "text/csv")
		if _, err := w.Write([]byte(csv)); err != nil {
			span.RecordError(err)
		}
	}
}

// requestCandidates converts wire candidates into internal candidates
func requestCandidates(payload []types.ScoreRequestCandidate) []types.Candidate {
	candidates := make([]types.Candidate, 0, len(payload))
	for _, c := range payload {
		candidates = append(candidates, types.Candidate{
			ID:      c.ID,
			Name:    c.Name,
			RawText: c.Text,
		})
	}
	return candidates
}

// createRateLimitMiddleware adds observability to rate limiting
func (s *Server) createRateLimitMiddleware(om *observability.ObservabilityManager) func(http.HandlerFunc) http.HandlerFunc {
	originalMiddleware := s.rateLimitMiddleware()

	return func(next http.HandlerFunc) http.HandlerFunc {
		return originalMiddleware(func(w http.ResponseWriter, r *http.Request) {
			// Wrap the ResponseWriter to detect rate limit responses
			wrapper := &responseWrapper{ResponseWriter: w, statusCode: 200}

			next(wrapper, r)

			// If rate limited, record metric
			if wrapper.statusCode == http.StatusTooManyRequests {
				metrics := om.GetMetrics()
				metrics.RecordRateLimitHit(r.Context(),
					attribute.String("endpoint", r.URL.Path),
					attribute.String("method", r.Method))
			}
		})
	}
}

// responseWrapper wraps http.ResponseWriter to capture status code
type responseWrapper struct {
	http.ResponseWriter
	statusCode int
}

func (rw *responseWrapper) WriteHeader(code int) {
	rw.statusCode = code
	rw.ResponseWriter.WriteHeader(code)
}
