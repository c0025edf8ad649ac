// Package types contains the shared data structures used across the application.
package types

import "strings"

// Seniority is the seniority level inferred from a resume.
type Seniority string

const (
	SenioritySenior  Seniority = "Senior"
	SeniorityMid     Seniority = "Mid"
	SeniorityJunior  Seniority = "Junior"
	SeniorityUnknown Seniority = "Unknown"
)

// ParseSeniority normalizes a free-form seniority label to one of the
// known levels. Anything unrecognized maps to SeniorityUnknown.
func ParseSeniority(s string) Seniority {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "senior":
		return SenioritySenior
	case "mid", "middle", "intermediate":
		return SeniorityMid
	case "junior", "entry":
		return SeniorityJunior
	default:
		return SeniorityUnknown
	}
}

// Candidate is a single ingested resume.
type Candidate struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Filename string `json:"filename"`
	RawText  string `json:"raw_text"`
	// Note carries a human-readable extraction warning when text
	// extraction failed or produced no content.
	Note string `json:"note,omitempty"`
}

// ScoreResult holds the per-candidate scoring outcome.
type ScoreResult struct {
	SkillMatch int       `json:"skill_match"`
	Years      int       `json:"years"`
	Seniority  Seniority `json:"seniority"`
	Overall    int       `json:"overall"`
	TopSkills  []string  `json:"top_skills"`
}

// ScoredCandidate pairs a candidate with its scores.
type ScoredCandidate struct {
	Candidate
	Scores ScoreResult `json:"scores"`
}

// ScoreRequestCandidate is the candidate payload sent to a remote scorer.
type ScoreRequestCandidate struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Text string `json:"text"`
}

// ScoreRequest is the request body for remote scoring.
type ScoreRequest struct {
	JobDescription string                  `json:"job_description"`
	Candidates     []ScoreRequestCandidate `json:"candidates"`
}

// ScoreResponse is the response body from a remote scorer. Result entries
// are kept as raw maps because remote backends disagree on field naming
// and nesting; reconciliation normalizes them.
type ScoreResponse struct {
	Results []map[string]any `json:"results"`
}

// PersistJob is the job portion of a persistence payload.
type PersistJob struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

// PersistCandidate is the candidate portion of a persistence payload.
type PersistCandidate struct {
	Name     string `json:"name"`
	Filename string `json:"filename"`
	RawText  string `json:"raw_text"`
}

// PersistScore is the score portion of a persistence payload.
type PersistScore struct {
	Name   string      `json:"name"`
	Scores ScoreResult `json:"scores"`
}

// PersistRequest is the full payload sent to a persistence endpoint.
type PersistRequest struct {
	Job        PersistJob         `json:"job"`
	Candidates []PersistCandidate `json:"candidates"`
	Scores     []PersistScore     `json:"scores"`
}
