// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package knowledge holds the hand-curated topic knowledge base and the
// curated evidence link directory. All data is static and loaded at
// process start; lookups are pure functions with explicit neutral
// defaults, never fabricated claims.
package knowledge

import (
	"strings"

	"github.com/neurobloom/coach-engine/pkg/types"
)

// Management groups setting-specific guidance lines for a topic.
type Management struct {
	General   []string
	Home      []string
	School    []string
	Workplace []string
	Immediate []string
}

// Entry is the static per-topic knowledge record. Fields may be empty;
// the synthesizer substitutes neutral fallbacks per slot.
type Entry struct {
	Topic      types.Topic
	Keywords   []string
	Definition []string
	Strengths  []string
	Management Management
	Assessment []string
	WhenToSeek []string
	Myths      []string
	Clinician  []string
}

// Known reports whether the entry describes a specific topic rather than
// the neutral default.
func (e Entry) Known() bool { return e.Topic != types.TopicNone }

// Lookup returns the best-matching entry for a topic tag and question.
// Scoring: +3 for an exact topic-field match, +2 per entry keyword found
// as a substring of the question. The highest score wins; ties resolve by
// table declaration order. No positive score returns the neutral default
// entry.
func Lookup(topic types.Topic, question string) Entry {
	q := strings.ToLower(question)

	best := defaultEntry
	bestScore := 0
	for _, e := range entries {
		score := 0
		if topic != types.TopicNone && e.Topic == topic {
			score += 3
		}
		for _, kw := range e.Keywords {
			if strings.Contains(q, kw) {
				score += 2
			}
		}
		if score > bestScore {
			best = e
			bestScore = score
		}
	}
	return best
}
