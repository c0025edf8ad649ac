package engine

import (
	"strings"

	"resumerank/internal/types"
)

// InferSeniority classifies a resume's seniority from its wording.
// Leadership titles outrank an explicit "senior" mention, which in turn
// outranks mid and junior markers. Substring matching is intentional:
// "entry-level" and "mid-level" both tokenize poorly but match here.
func InferSeniority(text string) types.Seniority {
	lower := strings.ToLower(text)

	switch {
	case containsAny(lower, "principal", "staff", "lead", "manager", "architect"):
		return types.SenioritySenior
	case strings.Contains(lower, "senior"):
		return types.SenioritySenior
	case containsAny(lower, "mid", "intermediate"):
		return types.SeniorityMid
	case containsAny(lower, "junior", "entry"):
		return types.SeniorityJunior
	default:
		return types.SeniorityUnknown
	}
}
