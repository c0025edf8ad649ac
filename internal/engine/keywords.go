package engine

// stopwords are high-frequency words that carry no signal about skills
// or requirements. Filtering happens after deduplication so the keyword
// order still reflects first occurrence in the source text.
var stopwords = map[string]struct{}{
	"and":  {},
	"the":  {},
	"with": {},
	"for":  {},
	"you":  {},
	"are":  {},
	"our":  {},
	"this": {},
	"that": {},
	"from": {},
	"your": {},
	"will": {},
	"have": {},
}

// UniqueKeywords tokenizes the text and returns its distinct non-stopword
// tokens in order of first occurrence.
func UniqueKeywords(text string) []string {
	tokens := Tokenize(text)
	seen := make(map[string]struct{}, len(tokens))
	keywords := make([]string, 0, len(tokens))

	for _, tok := range tokens {
		if _, dup := seen[tok]; dup {
			continue
		}
		seen[tok] = struct{}{}
		if _, stop := stopwords[tok]; stop {
			continue
		}
		keywords = append(keywords, tok)
	}

	return keywords
}
