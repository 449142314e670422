package nlu

import "strings"

// Classifier scores an utterance against each keyword set and keeps the
// first strictly-best label.
type Classifier struct {
	sets []KeywordSet
}

// NewClassifier builds a classifier over the given keyword sets. Pass
// DefaultKeywordSets() for the standard table.
func NewClassifier(sets []KeywordSet) *Classifier {
	return &Classifier{sets: sets}
}

// Classify returns the best-scoring intent for the utterance.
//
// Each set scores matched/|set|, where a keyword matches by substring
// containment in the normalized utterance. A later label replaces the
// current best only on a strictly greater score, so ties resolve to the
// first set in table order. A best score of zero yields IntentUnknown.
// Scores are not normalized across sets of different sizes; a small set
// can outrank a large one on a single match. That asymmetry is part of
// the contract and is pinned by tests.
func (c *Classifier) Classify(utterance string) Result {
	text := Normalize(utterance)

	best := Result{Intent: IntentUnknown, Confidence: 0}
	for _, set := range c.sets {
		if len(set.Keywords) == 0 {
			continue
		}
		matches := 0
		for _, kw := range set.Keywords {
			if strings.Contains(text, kw) {
				matches++
			}
		}
		score := float64(matches) / float64(len(set.Keywords))
		if score > best.Confidence {
			best = Result{Intent: set.Intent, Confidence: score}
		}
	}
	return best
}
