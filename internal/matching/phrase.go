// Package matching decides whether JD requirement phrases are evidenced by
// resume text, first by exact word-boundary matching and then by semantic
// similarity over whatever the exact pass left missing.
package matching

import (
	"regexp"
	"strings"
)

// wordOnly matches phrases made purely of word characters.
var wordOnly = regexp.MustCompile(`^\w+$`)

// phraseTerminator rejects characters that would extend a symbol-suffixed
// token: "C++" may be followed by ",", " " or end-of-input, but not by a word
// character or another symbol run ("C+++Lib"). RE2 has no lookahead, so the
// terminator is matched as an explicit alternative instead.
const phraseTerminator = `(?:[^0-9A-Za-z_+#]|$)`

// BuildPhrasePattern compiles a case-insensitive pattern for one requirement
// phrase. Pure-word phrases get word boundaries on both ends. Phrases ending
// in a symbol (C++, C#) anchor the start only if it begins with a word
// character and require a terminating character instead of a trailing \b.
func BuildPhrasePattern(phrase string) (*regexp.Regexp, error) {
	t := strings.TrimSpace(phrase)
	escaped := regexp.QuoteMeta(t)

	if wordOnly.MatchString(t) {
		return regexp.Compile(`(?i)\b` + escaped + `\b`)
	}

	var b strings.Builder
	b.WriteString(`(?i)`)
	if len(t) > 0 && isWordByte(t[0]) {
		b.WriteString(`\b`)
	}
	b.WriteString(escaped)
	if len(t) > 0 && isWordByte(t[len(t)-1]) {
		b.WriteString(`\b`)
	} else {
		b.WriteString(phraseTerminator)
	}
	return regexp.Compile(b.String())
}

// ExtractMatches partitions targets into those found as whole words somewhere
// in the corpus and those not. Empty or whitespace-only targets are dropped.
// The corpus is joined once so results do not depend on fragment iteration
// order, and target order is preserved in both outputs.
func ExtractMatches(corpus []string, targets []string) (matched, missing []string) {
	combined := JoinCorpus(corpus)

	for _, target := range targets {
		clean := strings.TrimSpace(target)
		if clean == "" {
			continue
		}

		pattern, err := BuildPhrasePattern(clean)
		if err != nil {
			missing = append(missing, target)
			continue
		}

		if pattern.MatchString(combined) {
			matched = append(matched, target)
		} else {
			missing = append(missing, target)
		}
	}

	return matched, missing
}

// JoinCorpus flattens corpus fragments into one searchable string. Fragments
// are separated by newlines so a phrase never spans two fragments.
func JoinCorpus(corpus []string) string {
	var parts []string
	for _, fragment := range corpus {
		if fragment != "" {
			parts = append(parts, fragment)
		}
	}
	return strings.Join(parts, " \n ")
}

func isWordByte(c byte) bool {
	return c == '_' ||
		(c >= 'a' && c <= 'z') ||
		(c >= 'A' && c <= 'Z') ||
		(c >= '0' && c <= '9')
}
