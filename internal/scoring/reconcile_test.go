package scoring

import (
	"reflect"
	"testing"

	"resumerank/internal/types"
)

func TestReconcile(t *testing.T) {
	candidates := []types.Candidate{
		{ID: "id-1", Name: "alice"},
		{ID: "id-2", Name: "bob"},
	}

	t.Run("match by id", func(t *testing.T) {
		results := []map[string]any{
			{"id": "id-1", "scores": map[string]any{"skill_match": 80, "overall": 75}},
		}
		scored := Reconcile(candidates, results)

		if scored[0].Scores.SkillMatch != 80 || scored[0].Scores.Overall != 75 {
			t.Errorf("alice scores = %+v", scored[0].Scores)
		}
		// Unmatched candidates get defaults, not dropped.
		if scored[1].Scores.Overall != 0 || scored[1].Scores.Seniority != types.SeniorityUnknown {
			t.Errorf("bob scores = %+v", scored[1].Scores)
		}
	})

	t.Run("match by name fallback", func(t *testing.T) {
		results := []map[string]any{
			{"name": "bob", "overall": 42},
		}
		scored := Reconcile(candidates, results)
		if scored[1].Scores.Overall != 42 {
			t.Errorf("bob overall = %d, want 42", scored[1].Scores.Overall)
		}
	})

	t.Run("later duplicate wins", func(t *testing.T) {
		results := []map[string]any{
			{"id": "id-1", "overall": 10},
			{"id": "id-1", "overall": 90},
		}
		scored := Reconcile(candidates, results)
		if scored[0].Scores.Overall != 90 {
			t.Errorf("overall = %d, want 90", scored[0].Scores.Overall)
		}
	})

	t.Run("output preserves candidate order", func(t *testing.T) {
		scored := Reconcile(candidates, nil)
		if len(scored) != 2 || scored[0].ID != "id-1" || scored[1].ID != "id-2" {
			t.Errorf("order = %v", scored)
		}
	})
}

func TestResultFromPayload(t *testing.T) {
	t.Run("nested scores take priority over flat", func(t *testing.T) {
		r := map[string]any{
			"skill_match": 10,
			"scores":      map[string]any{"skill_match": 90},
		}
		got := resultFromPayload(r)
		if got.SkillMatch != 90 {
			t.Errorf("SkillMatch = %d, want 90", got.SkillMatch)
		}
	})

	t.Run("camelCase synonyms accepted", func(t *testing.T) {
		r := map[string]any{
			"skillMatch": 70,
			"topSkills":  []any{"python", "go"},
		}
		got := resultFromPayload(r)
		if got.SkillMatch != 70 {
			t.Errorf("SkillMatch = %d, want 70", got.SkillMatch)
		}
		if !reflect.DeepEqual(got.TopSkills, []string{"go", "python"}) {
			t.Errorf("TopSkills = %v", got.TopSkills)
		}
	})

	t.Run("weakly typed numbers coerced", func(t *testing.T) {
		r := map[string]any{
			"overall": "85",
			"years":   6.0,
		}
		got := resultFromPayload(r)
		if got.Overall != 85 {
			t.Errorf("Overall = %d, want 85", got.Overall)
		}
		if got.Years != 6 {
			t.Errorf("Years = %d, want 6", got.Years)
		}
	})

	t.Run("scores clamped to 0-100", func(t *testing.T) {
		r := map[string]any{"overall": 250, "skill_match": -5}
		got := resultFromPayload(r)
		if got.Overall != 100 {
			t.Errorf("Overall = %d, want 100", got.Overall)
		}
		if got.SkillMatch != 0 {
			t.Errorf("SkillMatch = %d, want 0", got.SkillMatch)
		}
	})

	t.Run("seniority normalized", func(t *testing.T) {
		tests := []struct {
			in   any
			want types.Seniority
		}{
			{"senior", types.SenioritySenior},
			{"SENIOR", types.SenioritySenior},
			{"intermediate", types.SeniorityMid},
			{"wizard", types.SeniorityUnknown},
		}
		for _, tt := range tests {
			got := resultFromPayload(map[string]any{"seniority": tt.in})
			if got.Seniority != tt.want {
				t.Errorf("seniority %v = %q, want %q", tt.in, got.Seniority, tt.want)
			}
		}
	})

	t.Run("empty payload yields defaults", func(t *testing.T) {
		got := resultFromPayload(map[string]any{})
		want := types.ScoreResult{Seniority: types.SeniorityUnknown, TopSkills: []string{}}
		if !reflect.DeepEqual(got, want) {
			t.Errorf("got %+v, want %+v", got, want)
		}
	})

	t.Run("top skills deduped and sorted", func(t *testing.T) {
		r := map[string]any{"top_skills": []any{"python", "go", "python", ""}}
		got := resultFromPayload(r)
		if !reflect.DeepEqual(got.TopSkills, []string{"go", "python"}) {
			t.Errorf("TopSkills = %v", got.TopSkills)
		}
	})
}
