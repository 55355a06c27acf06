package matching

import (
	"regexp"
	"strings"
)

// nonAlnum collapses anything outside [a-z0-9 ] when tokenizing phrases.
var nonAlnum = regexp.MustCompile(`[^a-z0-9 ]+`)

// stopwords are dropped from project keyword extraction. The list mirrors the
// filler terms that dominate JD project blurbs.
var stopwords = map[string]struct{}{
	"the": {}, "and": {}, "a": {}, "an": {}, "for": {}, "in": {}, "of": {},
	"to": {}, "on": {}, "with": {}, "using": {}, "based": {}, "related": {},
	"system": {}, "create": {}, "build": {}, "built": {}, "develop": {},
	"developed": {}, "developer": {}, "development": {},
}

// TokenizePhrase lowercases, strips punctuation, splits on whitespace and
// removes stopwords.
func TokenizePhrase(text string) []string {
	lowered := nonAlnum.ReplaceAllString(strings.ToLower(text), " ")

	var tokens []string
	for _, tok := range strings.Fields(lowered) {
		if _, skip := stopwords[tok]; skip {
			continue
		}
		tokens = append(tokens, tok)
	}
	return tokens
}

// ProjectKeywords tokenizes every JD project description and returns the
// deduplicated keywords in first-seen order.
func ProjectKeywords(jdProjects []string) []string {
	var keywords []string
	seen := make(map[string]struct{})

	for _, item := range jdProjects {
		if item == "" {
			continue
		}
		for _, tok := range TokenizePhrase(item) {
			if _, dup := seen[tok]; dup {
				continue
			}
			seen[tok] = struct{}{}
			keywords = append(keywords, tok)
		}
	}
	return keywords
}
