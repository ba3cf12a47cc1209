// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package pubmed

import (
	"strings"

	"github.com/neurobloom/coach-engine/pkg/types"
)

// maxQueryClauses caps the AND-joined term groups to keep the query
// tractable for the service.
const maxQueryClauses = 5

// conditionTerms maps each topic to its boosted search clause.
var conditionTerms = map[types.Topic]string{
	types.TopicAutism:      `("autism" OR "autism spectrum disorder" OR "ASD")`,
	types.TopicADHD:        `("ADHD" OR "attention deficit hyperactivity disorder")`,
	types.TopicDyslexia:    `("dyslexia" OR "reading disability")`,
	types.TopicAnxiety:     `("anxiety" OR "anxiety disorder")`,
	types.TopicDepression:  `("depression" OR "depressive disorder")`,
	types.TopicBipolar:     `("bipolar disorder")`,
	types.TopicStress:      `("psychological stress" OR "occupational stress")`,
	types.TopicSleep:       `("sleep" OR "insomnia")`,
	types.TopicBreathing:   `("breathing exercises" OR "diaphragmatic breathing" OR "slow breathing")`,
	types.TopicMindfulness: `("mindfulness" OR "mindfulness-based intervention")`,
}

const (
	interventionClause = `(intervention OR treatment OR therapy OR support OR management)`
	pubTypeClause      = `(systematic review[pt] OR meta-analysis[pt] OR randomized controlled trial[pt] OR review[pt])`
	recencyClause      = `("last 10 years"[dp])`
)

// BuildQuery combines condition terms, an intervention group when the
// intent is management-oriented, context qualifiers, and closing filters
// restricting to review-grade publications in a recent window.
func BuildQuery(topic types.Topic, in types.Intent, uc *types.UserContext) string {
	var clauses []string

	if cond, ok := conditionTerms[topic]; ok {
		clauses = append(clauses, cond)
	} else {
		clauses = append(clauses, `("mental health" OR "wellbeing")`)
	}

	if in.ManagementOriented() {
		clauses = append(clauses, interventionClause)
	}

	if q := contextClause(in, uc); q != "" {
		clauses = append(clauses, q)
	}

	clauses = append(clauses, pubTypeClause, recencyClause)

	if len(clauses) > maxQueryClauses {
		clauses = clauses[:maxQueryClauses]
	}
	return strings.Join(clauses, " AND ")
}

// contextClause derives one qualifier group from intent and user context.
func contextClause(in types.Intent, uc *types.UserContext) string {
	setting := ""
	if uc != nil {
		setting = strings.ToLower(uc.Setting)
	}

	switch {
	case in.Primary == types.IntentSchool || strings.Contains(setting, "school") || strings.Contains(setting, "classroom"):
		return `(school OR classroom OR education)`
	case in.Primary == types.IntentWorkplace || strings.Contains(setting, "work"):
		return `(workplace OR occupational OR employees)`
	case strings.Contains(setting, "home") || strings.Contains(setting, "family"):
		return `(parents OR family OR caregivers)`
	}

	if uc != nil {
		switch ageBand(uc.AgeGroup) {
		case "child":
			return `(child OR children OR adolescent)`
		case "adult":
			return `(adult OR adults)`
		}
	}
	return ""
}

// ageBand collapses free-text age groups into coarse query bands.
func ageBand(ageGroup string) string {
	a := strings.ToLower(ageGroup)
	switch {
	case a == "":
		return ""
	case strings.Contains(a, "child"), strings.Contains(a, "teen"),
		strings.Contains(a, "adolescent"), strings.Contains(a, "young"):
		return "child"
	default:
		return "adult"
	}
}
