// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package intent classifies a free-text question into a primary and
// secondary intent kind and extracts a topic tag.
package intent

import (
	"sort"
	"strings"

	"github.com/neurobloom/coach-engine/internal/crisis"
	"github.com/neurobloom/coach-engine/pkg/types"
)

// kindOrder lists the scoreable kinds in declaration order. Score ties
// resolve by this order, never alphabetically or by map iteration; the
// tie-break is a deliberate, testable policy and changing it silently
// changes classification outcomes.
var kindOrder = []types.IntentKind{
	types.IntentDefinition,
	types.IntentManagement,
	types.IntentSchool,
	types.IntentWorkplace,
	types.IntentSleep,
	types.IntentAssessment,
}

// triggers maps each scoreable kind to its substring trigger list. Each
// trigger found in the question adds one point to that kind; a question
// may score for several kinds at once.
var triggers = map[types.IntentKind][]string{
	types.IntentDefinition: {
		"what is", "what are", "what does", "explain", "meaning of",
		"definition", "tell me about", "difference between",
	},
	types.IntentManagement: {
		"how to", "how do i", "how can i", "manage", "cope", "coping",
		"deal with", "help with", "strategies", "strategy", "support",
		"calm", "reduce", "improve",
	},
	types.IntentSchool: {
		"school", "classroom", "teacher", "homework", "exam", "lesson",
		"pupil", "student", "college",
	},
	types.IntentWorkplace: {
		"work", "workplace", "job", "office", "colleague", "employer",
		"manager", "career", "interview",
	},
	types.IntentSleep: {
		"sleep", "insomnia", "bedtime", "tired", "can't sleep",
		"cannot sleep", "night", "waking up",
	},
	types.IntentAssessment: {
		"diagnos", "assessment", "assessed", "test for", "screening",
		"referral", "evaluate", "signs of", "symptoms of",
	},
}

// Classify scores the question against each kind's trigger list and
// extracts a topic from the fixed vocabulary.
func Classify(question string) types.Intent {
	if crisis.Detect(question) {
		return types.Intent{
			Primary:             types.IntentCrisis,
			Topic:               ExtractTopic(question),
			NeedsCrisisResponse: true,
		}
	}

	q := strings.ToLower(question)

	scores := make(map[types.IntentKind]int, len(kindOrder))
	for _, kind := range kindOrder {
		for _, trigger := range triggers[kind] {
			if strings.Contains(q, trigger) {
				scores[kind]++
			}
		}
	}

	// Stable sort over the fixed kind order keeps declaration-order
	// tie-breaks.
	ranked := make([]types.IntentKind, len(kindOrder))
	copy(ranked, kindOrder)
	sort.SliceStable(ranked, func(i, j int) bool {
		return scores[ranked[i]] > scores[ranked[j]]
	})

	in := types.Intent{
		Primary: types.IntentGeneral,
		Topic:   ExtractTopic(question),
	}
	if scores[ranked[0]] > 0 {
		in.Primary = ranked[0]
		if scores[ranked[1]] > 0 {
			in.Secondary = ranked[1]
		}
	}
	return in
}

// ExtractTopic scans the question for topic names in vocabulary order and
// returns the first match. First-substring-match in declaration order is
// the reference behavior: a question mentioning two topics resolves to
// the earlier vocabulary entry. Longest-match would change downstream
// content selection, so the policy is preserved as-is.
func ExtractTopic(question string) types.Topic {
	q := strings.ToLower(question)
	for _, t := range types.TopicVocabulary() {
		if strings.Contains(q, string(t)) {
			return t
		}
	}
	return types.TopicNone
}
