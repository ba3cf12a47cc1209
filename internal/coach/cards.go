// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package coach

import (
	"fmt"
	"strings"

	"github.com/neurobloom/coach-engine/pkg/types"
)

// maxCards caps the visual learning cards per answer.
const maxCards = 10

// maxActionCards caps how many practical actions become cards.
const maxActionCards = 3

var topicEmoji = map[types.Topic]string{
	types.TopicAutism:      "🧩",
	types.TopicADHD:        "⚡",
	types.TopicDyslexia:    "📖",
	types.TopicAnxiety:     "🌊",
	types.TopicDepression:  "🌤️",
	types.TopicBipolar:     "⚖️",
	types.TopicStress:      "🧯",
	types.TopicSleep:       "🌙",
	types.TopicBreathing:   "🫁",
	types.TopicMindfulness: "🧘",
}

// generateCards derives the card set in a fixed sequential order:
// definition, strengths, up to three action cards, when-to-seek,
// audience, evidence. The list is truncated to maxCards at the end, so
// later generators may be silently dropped under the cap; that is
// accepted behavior, not a bug to fix by reordering.
func generateCards(in synthInput, ans *types.Answer) []types.VisualLearningCard {
	var cards []types.VisualLearningCard

	title := "Overview"
	if name, ok := topicTitles[in.topic]; ok {
		title = name
	}

	if len(ans.Summary) > 0 {
		card := types.VisualLearningCard{
			ID:      "card-definition",
			Title:   title,
			Lines:   firstN(ans.Summary, 3),
			IconKey: "book",
			Emoji:   topicEmoji[in.topic],
		}
		if rest := ans.Summary[min(len(ans.Summary), 3):]; len(rest) > 0 {
			card.Back = &types.CardBack{Title: "More", Lines: rest}
		}
		cards = append(cards, card)
	}

	if len(in.entry.Strengths) > 0 {
		cards = append(cards, types.VisualLearningCard{
			ID:      "card-strengths",
			Title:   "Strengths",
			Lines:   firstN(in.entry.Strengths, 3),
			IconKey: "star",
			Emoji:   "⭐",
		})
	}

	for i, action := range firstN(ans.PracticalActions, maxActionCards) {
		cards = append(cards, types.VisualLearningCard{
			ID:      fmt.Sprintf("card-action-%d", i+1),
			Title:   fmt.Sprintf("Try this %d", i+1),
			Lines:   []string{action},
			IconKey: "action",
		})
	}

	if len(ans.Evidence.WhenToSeekHelp) > 0 {
		cards = append(cards, types.VisualLearningCard{
			ID:      "card-seek-help",
			Title:   "When to seek help",
			Lines:   firstN(ans.Evidence.WhenToSeekHelp, 3),
			IconKey: "alert",
			Emoji:   "🚩",
		})
	}

	if in.audience != "" {
		if lines := ans.TailoredGuidance[in.audience]; len(lines) > 0 {
			cards = append(cards, types.VisualLearningCard{
				ID:          "card-audience",
				Title:       "For " + audienceLabel(in.audience),
				Lines:       firstN(lines, 3),
				IconKey:     "people",
				AudienceTag: in.audience,
			})
		}
	}

	if n := len(ans.GuidelineSources) + len(ans.ResearchSources); n > 0 {
		cards = append(cards, types.VisualLearningCard{
			ID:      "card-evidence",
			Title:   "Where this comes from",
			Lines:   evidenceLines(ans),
			IconKey: "evidence",
			Emoji:   "🔍",
		})
	}

	if len(cards) > maxCards {
		cards = cards[:maxCards]
	}
	return cards
}

func evidenceLines(ans *types.Answer) []string {
	var lines []string
	if n := len(ans.GuidelineSources); n > 0 {
		lines = append(lines, fmt.Sprintf("%d national guidance sources", n))
	}
	if n := len(ans.ResearchSources); n > 0 {
		lines = append(lines, fmt.Sprintf("%d peer-reviewed studies", n))
	}
	return lines
}

func audienceLabel(a types.Audience) string {
	return strings.ReplaceAll(string(a), "_", " ")
}
