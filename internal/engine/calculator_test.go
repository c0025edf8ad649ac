package engine

import (
	"reflect"
	"testing"

	"resumerank/internal/types"
)

func TestScore(t *testing.T) {
	jd := "Looking for a senior python developer with 5 years experience in distributed systems."

	t.Run("end to end", func(t *testing.T) {
		resume := "Senior Python Engineer. 6 years building distributed systems at scale."
		got := Score(jd, resume)

		// 8 JD keywords, 4 matched (senior, python, years, distributed).
		// "systems." in the JD does not match the resume's "systems"
		// because the trailing period is part of the token.
		want := types.ScoreResult{
			SkillMatch: 50,
			Years:      6,
			Seniority:  types.SenioritySenior,
			Overall:    55,
			TopSkills:  []string{"distributed", "python", "senior", "years"},
		}
		if !reflect.DeepEqual(got, want) {
			t.Errorf("Score() = %+v, want %+v", got, want)
		}
	})

	t.Run("empty job description", func(t *testing.T) {
		got := Score("", "Senior engineer, 6 years")
		if got.SkillMatch != 0 {
			t.Errorf("SkillMatch = %d, want 0", got.SkillMatch)
		}
		if len(got.TopSkills) != 0 {
			t.Errorf("TopSkills = %v, want empty", got.TopSkills)
		}
	})

	t.Run("empty resume", func(t *testing.T) {
		got := Score(jd, "")
		want := types.ScoreResult{
			SkillMatch: 0,
			Years:      0,
			Seniority:  types.SeniorityUnknown,
			Overall:    4,
			TopSkills:  []string{},
		}
		// Overall 4 comes entirely from the Unknown seniority share.
		if !reflect.DeepEqual(got, want) {
			t.Errorf("Score() = %+v, want %+v", got, want)
		}
	})

	t.Run("unknown seniority outranks junior", func(t *testing.T) {
		if seniorityScores[types.SeniorityUnknown] <= seniorityScores[types.SeniorityJunior] {
			t.Errorf("Unknown score %d should exceed Junior score %d",
				seniorityScores[types.SeniorityUnknown], seniorityScores[types.SeniorityJunior])
		}
	})

	t.Run("experience saturates at cap", func(t *testing.T) {
		got := Score(jd, "Developer with 30 years experience")
		if got.Years != 30 {
			t.Errorf("Years = %d, want 30", got.Years)
		}
		// Experience contribution is capped at 100 before weighting,
		// so 30 years yields the same overall score as 12 years.
		atCap := Score(jd, "Developer with 12 years experience")
		if got.Overall != atCap.Overall {
			t.Errorf("Overall = %d, want %d (same as at the cap)", got.Overall, atCap.Overall)
		}
	})

	t.Run("perfect match bounded at 100", func(t *testing.T) {
		text := "principal python developer distributed systems. looking senior years experience 20 years"
		got := Score(jd, text)
		if got.Overall > 100 {
			t.Errorf("Overall = %d, want <= 100", got.Overall)
		}
		if got.SkillMatch > 100 {
			t.Errorf("SkillMatch = %d, want <= 100", got.SkillMatch)
		}
	})

	t.Run("top skills sorted", func(t *testing.T) {
		got := Score("zebra apple mango", "mango zebra apple")
		want := []string{"apple", "mango", "zebra"}
		if !reflect.DeepEqual(got.TopSkills, want) {
			t.Errorf("TopSkills = %v, want %v", got.TopSkills, want)
		}
	})
}

func BenchmarkScore(b *testing.B) {
	jd := "Looking for a senior python developer with 5 years experience in distributed systems."
	resume := "Senior Python Engineer. 6 years building distributed systems at scale."
	for b.Loop() {
		Score(jd, resume)
	}
}
