// Package token implements the shared text normalizer used by both
// retrieval scoring and intent classification.
package token

import (
	"strings"
	"unicode"
)

// stopWords are dropped during normalization: articles, prepositions,
// auxiliaries, and question words that carry no retrieval signal.
var stopWords = map[string]struct{}{
	"the": {}, "is": {}, "at": {}, "which": {}, "on": {}, "and": {},
	"a": {}, "an": {}, "as": {}, "are": {}, "was": {}, "were": {},
	"in": {}, "of": {}, "to": {}, "for": {}, "with": {}, "that": {},
	"it": {}, "can": {}, "i": {}, "what": {}, "when": {}, "where": {},
	"how": {}, "why": {}, "my": {}, "our": {},
}

// Normalize lowercases text, splits on non-alphanumeric boundaries,
// and removes stop words. The result preserves token order and may
// contain duplicates. Empty input yields an empty slice.
func Normalize(text string) []string {
	fields := strings.FieldsFunc(strings.ToLower(text), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})

	tokens := make([]string, 0, len(fields))
	for _, f := range fields {
		if _, skip := stopWords[f]; skip {
			continue
		}
		tokens = append(tokens, f)
	}
	return tokens
}

// Set is an unordered term set for membership tests.
type Set map[string]struct{}

// NewSet builds a Set from a token slice, deduplicating terms.
func NewSet(tokens []string) Set {
	s := make(Set, len(tokens))
	for _, t := range tokens {
		s[t] = struct{}{}
	}
	return s
}

// Has reports whether term is in the set.
func (s Set) Has(term string) bool {
	_, ok := s[term]
	return ok
}
