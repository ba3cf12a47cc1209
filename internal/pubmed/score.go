// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package pubmed

import (
	"sort"
	"strings"

	"github.com/neurobloom/coach-engine/pkg/types"
)

// The service ranks topically; callers want actionable evidence. Scoring
// promotes intervention and management studies over mechanistic ones.
var interventionTerms = []string{
	"intervention", "treatment", "therapy", "training", "programme",
	"program", "support", "management", "strategy", "strategies",
	"effectiveness", "efficacy", "improvement", "outcomes",
	"cognitive behavioural", "cognitive behavioral", "cbt",
}

var etiologyTerms = []string{
	"etiology", "aetiology", "pathophysiology", "genetic", "genome",
	"neuroimaging", "biomarker", "prevalence", "mechanism", "mechanisms",
	"mouse model", "rat model",
}

// Score rates an article for actionable relevance: +2 per intervention
// term in title+abstract, -1 per etiology term, +3 if the text mentions
// a systematic review or meta-analysis.
func Score(a types.Article) int {
	text := strings.ToLower(a.Title + " " + a.Abstract)

	score := 0
	for _, term := range interventionTerms {
		if strings.Contains(text, term) {
			score += 2
		}
	}
	for _, term := range etiologyTerms {
		if strings.Contains(text, term) {
			score--
		}
	}
	if strings.Contains(text, "systematic review") || strings.Contains(text, "meta-analysis") {
		score += 3
	}
	return score
}

// Rank sorts articles by descending score, keeping the service's
// relevance order for equal scores, and returns the top max.
func Rank(articles []types.Article, max int) []types.Article {
	ranked := make([]types.Article, len(articles))
	copy(ranked, articles)

	sort.SliceStable(ranked, func(i, j int) bool {
		return Score(ranked[i]) > Score(ranked[j])
	})

	if max > 0 && len(ranked) > max {
		ranked = ranked[:max]
	}
	return ranked
}
