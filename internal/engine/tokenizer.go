// Package engine implements the deterministic resume scoring pipeline:
// tokenization, keyword extraction, experience and seniority inference,
// score calculation, and ranking.
package engine

import "strings"

// Tokenize lowercases the input, strips everything except letters, digits,
// and the characters '+', '#', and '.' (so tokens like "c++", "c#", and
// "node.js" survive), then splits on whitespace and drops tokens of two
// bytes or fewer.
func Tokenize(text string) []string {
	var b strings.Builder
	b.Grow(len(text))

	for _, r := range strings.ToLower(text) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
		case r == '+' || r == '#' || r == '.':
			b.WriteRune(r)
		default:
			b.WriteByte(' ')
		}
	}

	fields := strings.Fields(b.String())
	tokens := make([]string, 0, len(fields))
	for _, f := range fields {
		if len(f) > 2 {
			tokens = append(tokens, f)
		}
	}

	return tokens
}
