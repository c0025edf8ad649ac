package engine

import (
	"math"
	"sort"

	"resumerank/internal/types"
)

const (
	skillWeight      = 0.7
	experienceWeight = 0.2
	seniorityWeight  = 0.1

	// experienceCapYears is where the experience score saturates.
	experienceCapYears = 12
)

// seniorityScores maps each level to its contribution. Unknown scores
// above Junior because absence of signal is neutral, not negative.
var seniorityScores = map[types.Seniority]int{
	types.SenioritySenior:  100,
	types.SeniorityMid:     60,
	types.SeniorityJunior:  30,
	types.SeniorityUnknown: 40,
}

// Score computes the full deterministic score for one resume against one
// job description.
func Score(jobDescription, resumeText string) types.ScoreResult {
	jdKeywords := UniqueKeywords(jobDescription)

	resumeTokens := Tokenize(resumeText)
	resumeSet := make(map[string]struct{}, len(resumeTokens))
	for _, tok := range resumeTokens {
		resumeSet[tok] = struct{}{}
	}

	matched := make([]string, 0, len(jdKeywords))
	for _, kw := range jdKeywords {
		if _, ok := resumeSet[kw]; ok {
			matched = append(matched, kw)
		}
	}
	sort.Strings(matched)

	skillMatch := 0
	if len(jdKeywords) > 0 {
		skillMatch = int(math.Round(float64(len(matched)) / float64(len(jdKeywords)) * 100))
	}

	years := ExtractYears(resumeText)
	expScore := int(math.Round(float64(years) / experienceCapYears * 100))
	if expScore > 100 {
		expScore = 100
	}

	seniority := InferSeniority(resumeText)

	overall := int(math.Round(
		float64(skillMatch)*skillWeight +
			float64(expScore)*experienceWeight +
			float64(seniorityScores[seniority])*seniorityWeight))
	overall = clamp(overall, 0, 100)

	return types.ScoreResult{
		SkillMatch: clamp(skillMatch, 0, 100),
		Years:      years,
		Seniority:  seniority,
		Overall:    overall,
		TopSkills:  matched,
	}
}

func clamp(n, lo, hi int) int {
	if n < lo {
		return lo
	}
	if n > hi {
		return hi
	}
	return n
}
