package engine

import (
	"regexp"
	"strconv"
	"strings"
)

// yearsPattern matches phrases like "5 years" or "12 Years". One or two
// digits only; longer numbers are almost never year counts in resumes.
var yearsPattern = regexp.MustCompile(`(?i)(\d{1,2})\s+years?`)

// ExtractYears returns the largest explicit "N years" figure found in the
// text. When no explicit figure exists, it falls back to a rough estimate
// based on seniority wording, and finally to zero.
func ExtractYears(text string) int {
	matches := yearsPattern.FindAllStringSubmatch(text, -1)
	best := -1
	for _, m := range matches {
		n, err := strconv.Atoi(m[1])
		if err != nil {
			continue
		}
		if n > best {
			best = n
		}
	}
	if best >= 0 {
		return best
	}

	lower := strings.ToLower(text)
	switch {
	case containsAny(lower, "senior", "lead", "principal", "staff"):
		return 7
	case containsAny(lower, "mid", "intermediate"):
		return 4
	case containsAny(lower, "junior", "entry"):
		return 1
	default:
		return 0
	}
}

func containsAny(s string, subs ...string) bool {
	for _, sub := range subs {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}
