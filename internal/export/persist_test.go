package export

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"resumerank/internal/config"
	"resumerank/internal/types"
)

func TestBuildPersistRequest(t *testing.T) {
	scored := []types.ScoredCandidate{
		{
			Candidate: types.Candidate{Name: "alice", Filename: "alice.txt", RawText: "Senior engineer"},
			Scores:    types.ScoreResult{Overall: 55, Seniority: types.SenioritySenior},
		},
	}

	t.Run("title from first line", func(t *testing.T) {
		req := BuildPersistRequest("Backend Engineer\nWe are hiring...", scored)
		if req.Job.Title != "Backend Engineer" {
			t.Errorf("Title = %q", req.Job.Title)
		}
		if req.Job.Description != "Backend Engineer\nWe are hiring..." {
			t.Errorf("Description = %q", req.Job.Description)
		}
	})

	t.Run("title truncated", func(t *testing.T) {
		long := strings.Repeat("x", 200)
		req := BuildPersistRequest(long, scored)
		if len(req.Job.Title) != 120 {
			t.Errorf("Title length = %d, want 120", len(req.Job.Title))
		}
	})

	t.Run("empty description falls back to Role", func(t *testing.T) {
		req := BuildPersistRequest("", scored)
		if req.Job.Title != "Role" {
			t.Errorf("Title = %q, want Role", req.Job.Title)
		}
	})

	t.Run("candidates and scores populated", func(t *testing.T) {
		req := BuildPersistRequest("Engineer", scored)
		if len(req.Candidates) != 1 || len(req.Scores) != 1 {
			t.Fatalf("got %d candidates, %d scores", len(req.Candidates), len(req.Scores))
		}
		if req.Candidates[0].RawText != "Senior engineer" {
			t.Errorf("RawText = %q", req.Candidates[0].RawText)
		}
		if req.Scores[0].Name != "alice" || req.Scores[0].Scores.Overall != 55 {
			t.Errorf("score entry = %+v", req.Scores[0])
		}
	})
}

func TestPersistClientSave(t *testing.T) {
	t.Run("posts payload", func(t *testing.T) {
		var received types.PersistRequest
		var gotKey string
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			gotKey = r.Header.Get("X-API-Key")
			if err := json.NewDecoder(r.Body).Decode(&received); err != nil {
				t.Errorf("decode: %v", err)
			}
			w.WriteHeader(http.StatusCreated)
		}))
		defer srv.Close()

		client := NewPersistClient(config.RemoteScoringConfig{
			PersistURL: srv.URL,
			APIKey:     "secret",
			Timeout:    5 * time.Second,
		}, nil)

		req := BuildPersistRequest("Engineer", nil)
		if err := client.Save(context.Background(), req); err != nil {
			t.Fatalf("Save() error = %v", err)
		}
		if received.Job.Title != "Engineer" {
			t.Errorf("received title = %q", received.Job.Title)
		}
		if gotKey != "secret" {
			t.Errorf("X-API-Key = %q", gotKey)
		}
	})

	t.Run("unconfigured url", func(t *testing.T) {
		client := NewPersistClient(config.RemoteScoringConfig{Timeout: time.Second}, nil)
		err := client.Save(context.Background(), types.PersistRequest{})
		if err == nil {
			t.Fatal("expected configuration error")
		}
	})

	t.Run("server error surfaced", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
		}))
		defer srv.Close()

		client := NewPersistClient(config.RemoteScoringConfig{
			PersistURL: srv.URL,
			Timeout:    5 * time.Second,
		}, nil)

		err := client.Save(context.Background(), types.PersistRequest{})
		if err == nil {
			t.Fatal("expected error for 500 response")
		}
	})
}
