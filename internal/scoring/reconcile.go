package scoring

import (
	"fmt"
	"sort"

	"resumerank/internal/types"

	"github.com/mitchellh/mapstructure"
)

// Reconcile matches raw remote results to candidates and normalizes the
// score payloads. Results are keyed by id when present, falling back to
// name; a later entry for the same key wins. Candidates with no matching
// result get a default score rather than being dropped.
func Reconcile(candidates []types.Candidate, results []map[string]any) []types.ScoredCandidate {
	index := make(map[string]map[string]any, len(results))
	for _, r := range results {
		key := stringField(r, "id")
		if key == "" {
			key = stringField(r, "name")
		}
		if key == "" {
			continue
		}
		index[key] = r
	}

	scored := make([]types.ScoredCandidate, 0, len(candidates))
	for _, c := range candidates {
		r, ok := index[c.ID]
		if !ok {
			r, ok = index[c.Name]
		}

		result := defaultScoreResult()
		if ok {
			result = resultFromPayload(r)
		}

		scored = append(scored, types.ScoredCandidate{
			Candidate: c,
			Scores:    result,
		})
	}

	return scored
}

func defaultScoreResult() types.ScoreResult {
	return types.ScoreResult{
		Seniority: types.SeniorityUnknown,
		TopSkills: []string{},
	}
}

// externalFields is the flexible shape decoded from a normalized result
// payload. WeaklyTypedInput handles backends that send numbers as strings
// or floats.
type externalFields struct {
	SkillMatch *int     `mapstructure:"skill_match"`
	Years      *int     `mapstructure:"years"`
	Seniority  string   `mapstructure:"seniority"`
	Overall    *int     `mapstructure:"overall"`
	TopSkills  []string `mapstructure:"top_skills"`
}

// fieldSynonyms maps each canonical field to the names remote backends
// use for it, in lookup priority order.
var fieldSynonyms = map[string][]string{
	"skill_match": {"skill_match", "skillMatch", "skill_score"},
	"years":       {"years", "experience_years", "experienceYears"},
	"seniority":   {"seniority", "level"},
	"overall":     {"overall", "score"},
	"top_skills":  {"top_skills", "topSkills", "skills"},
}

// resultFromPayload normalizes one raw result entry. For each field the
// nested "scores" object takes priority over a flat field of the same
// name; missing fields fall back to defaults.
func resultFromPayload(r map[string]any) types.ScoreResult {
	nested, _ := r["scores"].(map[string]any)

	normalized := make(map[string]any, len(fieldSynonyms))
	for canonical, names := range fieldSynonyms {
		if v, ok := pick(nested, names); ok {
			normalized[canonical] = v
			continue
		}
		if v, ok := pick(r, names); ok {
			normalized[canonical] = v
		}
	}

	var fields externalFields
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		WeaklyTypedInput: true,
		Result:           &fields,
	})
	if err == nil {
		// Best effort: a field that fails to coerce just keeps its default.
		_ = decoder.Decode(normalized)
	}

	result := defaultScoreResult()
	if fields.SkillMatch != nil {
		result.SkillMatch = clampScore(*fields.SkillMatch)
	}
	if fields.Years != nil && *fields.Years > 0 {
		result.Years = *fields.Years
	}
	if fields.Seniority != "" {
		result.Seniority = types.ParseSeniority(fields.Seniority)
	}
	if fields.Overall != nil {
		result.Overall = clampScore(*fields.Overall)
	}
	if len(fields.TopSkills) > 0 {
		result.TopSkills = dedupeSorted(fields.TopSkills)
	}

	return result
}

// pick returns the first present field among the given names.
func pick(m map[string]any, names []string) (any, bool) {
	if m == nil {
		return nil, false
	}
	for _, name := range names {
		if v, ok := m[name]; ok && v != nil {
			return v, true
		}
	}
	return nil, false
}

func stringField(m map[string]any, key string) string {
	v, ok := m[key]
	if !ok || v == nil {
		return ""
	}
	switch s := v.(type) {
	case string:
		return s
	default:
		return fmt.Sprintf("%v", v)
	}
}

func clampScore(n int) int {
	if n < 0 {
		return 0
	}
	if n > 100 {
		return 100
	}
	return n
}

func dedupeSorted(skills []string) []string {
	seen := make(map[string]struct{}, len(skills))
	out := make([]string, 0, len(skills))
	for _, s := range skills {
		if s == "" {
			continue
		}
		if _, dup := seen[s]; dup {
			continue
		}
		seen[s] = struct{}{}
		out = append(out, s)
	}
	sort.Strings(out)
	return out
}
