// Package textutil provides the text normalization and keyword extraction
// primitives used by the matching engine. All functions are pure and
// deterministic.
package textutil

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

// ExtendedLetters is the default set of letters preserved by Normalize in
// addition to ASCII word characters. It covers the Vietnamese alphabet,
// matching the markets the feature catalog was written for.
const ExtendedLetters = "àáạảãâầấậẩẫăằắặẳẵèéẹẻẽêềếệểễìíịỉĩòóọỏõôồốộổỗơờớợởỡùúụủũưừứựửữỳýỵỷỹđ"

// DefaultMinKeywordLength is the minimum token length kept by ExtractKeywords.
const DefaultMinKeywordLength = 3

// stopWords are tokens that carry no matching signal and are dropped during
// keyword extraction.
var stopWords = map[string]struct{}{
	"and": {}, "or": {}, "the": {}, "a": {}, "an": {}, "in": {}, "on": {},
	"at": {}, "to": {}, "for": {}, "of": {}, "with": {}, "by": {}, "from": {},
	"up": {}, "about": {}, "into": {}, "through": {}, "during": {},
	"before": {}, "after": {}, "above": {}, "below": {}, "between": {},
	"among": {}, "this": {}, "that": {}, "these": {}, "those": {},
	"is": {}, "are": {}, "was": {}, "were": {}, "be": {}, "been": {},
	"being": {}, "have": {}, "has": {}, "had": {}, "do": {}, "does": {},
	"did": {}, "will": {}, "would": {}, "should": {}, "could": {}, "can": {},
	"may": {}, "might": {}, "must": {},
}

var (
	disallowedRe = regexp.MustCompile(`[^\w\s` + ExtendedLetters + `]`)
	whitespaceRe = regexp.MustCompile(`\s+`)
	wordRe       = regexp.MustCompile(`[\w` + ExtendedLetters + `]+`)
)

// Normalize lowercases the text, replaces characters outside the word
// alphabet (plus ExtendedLetters) with spaces, and collapses runs of
// whitespace. Empty input yields empty output.
func Normalize(text string) string {
	if text == "" {
		return ""
	}
	text = strings.ToLower(strings.TrimSpace(text))
	text = disallowedRe.ReplaceAllString(text, " ")
	text = whitespaceRe.ReplaceAllString(text, " ")
	return strings.TrimSpace(text)
}

// ExtractKeywords normalizes the text, tokenizes it on word boundaries, and
// returns the tokens that are at least minLength characters long and not stop
// words. The result is de-duplicated with first-occurrence order preserved.
func ExtractKeywords(text string, minLength int) []string {
	if minLength <= 0 {
		minLength = DefaultMinKeywordLength
	}

	words := wordRe.FindAllString(Normalize(text), -1)

	seen := make(map[string]struct{}, len(words))
	var keywords []string
	for _, w := range words {
		if len([]rune(w)) < minLength {
			continue
		}
		if _, stop := stopWords[w]; stop {
			continue
		}
		if _, dup := seen[w]; dup {
			continue
		}
		seen[w] = struct{}{}
		keywords = append(keywords, w)
	}
	return keywords
}

// IsStopWord reports whether the word is in the fixed stop-word list.
func IsStopWord(word string) bool {
	_, ok := stopWords[strings.ToLower(word)]
	return ok
}

// Similarity computes the Jaccard similarity of the keyword sets of two
// texts. It returns 0 when either text has no keywords.
func Similarity(text1, text2 string) float64 {
	kw1 := ExtractKeywords(text1, DefaultMinKeywordLength)
	kw2 := ExtractKeywords(text2, DefaultMinKeywordLength)
	if len(kw1) == 0 || len(kw2) == 0 {
		return 0
	}

	set1 := make(map[string]struct{}, len(kw1))
	for _, k := range kw1 {
		set1[k] = struct{}{}
	}

	intersection := 0
	union := len(set1)
	seen2 := make(map[string]struct{}, len(kw2))
	for _, k := range kw2 {
		if _, dup := seen2[k]; dup {
			continue
		}
		seen2[k] = struct{}{}
		if _, ok := set1[k]; ok {
			intersection++
		} else {
			union++
		}
	}
	return float64(intersection) / float64(union)
}

// Truncate shortens s to at most max runes, appending "..." when it had to
// cut. Cuts land on rune boundaries so accented text stays valid UTF-8.
func Truncate(s string, max int) string {
	if utf8.RuneCountInString(s) <= max {
		return s
	}
	runes := []rune(s)
	if max <= 3 {
		return string(runes[:max])
	}
	return string(runes[:max-3]) + "..."
}
