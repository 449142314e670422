package nlu

import "strings"

// Entities maps a category to the terms found in an utterance, in
// vocabulary scan order. Categories with no matches are absent.
type Entities map[Category][]string

// Has reports whether any of the given values was extracted for the
// category.
func (e Entities) Has(cat Category, values ...string) bool {
	found := e[cat]
	if len(values) == 0 {
		return len(found) > 0
	}
	for _, v := range values {
		for _, f := range found {
			if f == v {
				return true
			}
		}
	}
	return false
}

// Extractor scans utterances against fixed vocabulary lists.
type Extractor struct {
	vocabs []Vocabulary
}

// NewExtractor builds an extractor over the given vocabularies. Pass
// DefaultVocabularies() for the standard table.
func NewExtractor(vocabs []Vocabulary) *Extractor {
	return &Extractor{vocabs: vocabs}
}

// Extract returns every vocabulary term contained in the normalized
// utterance, grouped by category. Duplicate terms within a category
// collapse; empty categories are omitted. Pure function of its input.
func (e *Extractor) Extract(utterance string) Entities {
	text := Normalize(utterance)

	found := make(Entities)
	for _, vocab := range e.vocabs {
		var matched []string
		seen := make(map[string]bool)
		for _, term := range vocab.Terms {
			if seen[term] {
				continue
			}
			if strings.Contains(text, term) {
				matched = append(matched, term)
				seen[term] = true
			}
		}
		if len(matched) > 0 {
			found[vocab.Category] = matched
		}
	}
	return found
}
