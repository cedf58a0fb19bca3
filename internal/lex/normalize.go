package lex

import (
	"regexp"
	"strings"
)

var nonLetter = regexp.MustCompile(`[^a-z]+`)

// stopwords are function words that carry no naming signal when a concept
// string is tokenized.
var stopwords = map[string]struct{}{
	"a": {}, "an": {}, "and": {}, "are": {}, "as": {}, "at": {},
	"by": {}, "for": {}, "from": {}, "in": {}, "into": {}, "is": {},
	"it": {}, "of": {}, "on": {}, "or": {}, "our": {}, "that": {},
	"the": {}, "their": {}, "to": {}, "with": {}, "your": {},
}

// ConceptProfile captures the normalization output for a concept string.
type ConceptProfile struct {
	Original string
	Compact  string
	Tokens   []string
}

// NormalizeConcept lowercases and tokenizes a free-text concept description.
// Stopwords are removed and the remaining tokens keep their original order, so
// the most significant words of the concept come first.
func NormalizeConcept(input string) ConceptProfile {
	lower := strings.ToLower(strings.TrimSpace(input))
	parts := nonLetter.Split(lower, -1)

	var tokens []string
	for _, part := range parts {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		if _, skip := stopwords[part]; skip {
			continue
		}
		tokens = AppendUnique(tokens, part)
	}

	return ConceptProfile{
		Original: input,
		Compact:  SanitizeLabel(lower),
		Tokens:   tokens,
	}
}

// SanitizeLabel reduces a label to lowercase ascii letters and digits.
func SanitizeLabel(label string) string {
	label = strings.ToLower(strings.TrimSpace(label))
	if label == "" {
		return ""
	}
	var b strings.Builder
	b.Grow(len(label))
	for _, r := range label {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// AppendUnique appends v to s unless it is empty or already present.
func AppendUnique(s []string, v string) []string {
	if v == "" {
		return s
	}
	for _, existing := range s {
		if existing == v {
			return s
		}
	}
	return append(s, v)
}

// Dedupe returns the input with duplicates removed, keeping first occurrences.
func Dedupe(items []string) []string {
	if len(items) == 0 {
		return items
	}
	seen := make(map[string]struct{}, len(items))
	out := make([]string, 0, len(items))
	for _, item := range items {
		key := strings.ToLower(strings.TrimSpace(item))
		if key == "" {
			continue
		}
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, item)
	}
	return out
}
