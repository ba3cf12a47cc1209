// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package knowledge

import (
	"strings"

	"github.com/neurobloom/coach-engine/pkg/types"
)

const (
	maxGeneralLinks   = 5
	maxGuidelineLinks = 3
)

// linkGroup pairs a topic and trigger keywords with its curated links.
type linkGroup struct {
	topic     types.Topic
	keywords  []string
	general   []types.EvidenceSource // NHS-tier
	guideline []types.EvidenceSource // NICE-tier
}

var linkGroups = []linkGroup{
	{
		topic:    types.TopicAutism,
		keywords: []string{"autism", "autistic", "asd"},
		general: []types.EvidenceSource{
			{Title: "NHS: What is autism?", URL: "https://www.nhs.uk/conditions/autism/what-is-autism/", Kind: types.SourceNHS},
			{Title: "NHS: Signs of autism", URL: "https://www.nhs.uk/conditions/autism/signs/", Kind: types.SourceNHS},
			{Title: "CDC: Autism spectrum disorder", URL: "https://www.cdc.gov/autism/index.html", Kind: types.SourceCDC},
		},
		guideline: []types.EvidenceSource{
			{Title: "NICE CG170: Autism in under 19s - support and management", URL: "https://www.nice.org.uk/guidance/cg170", Kind: types.SourceNICE},
			{Title: "NICE CG142: Autism in adults - diagnosis and management", URL: "https://www.nice.org.uk/guidance/cg142", Kind: types.SourceNICE},
		},
	},
	{
		topic:    types.TopicADHD,
		keywords: []string{"adhd", "attention deficit", "hyperactiv"},
		general: []types.EvidenceSource{
			{Title: "NHS: Attention deficit hyperactivity disorder (ADHD)", URL: "https://www.nhs.uk/conditions/attention-deficit-hyperactivity-disorder-adhd/", Kind: types.SourceNHS},
			{Title: "CDC: ADHD information", URL: "https://www.cdc.gov/adhd/index.html", Kind: types.SourceCDC},
		},
		guideline: []types.EvidenceSource{
			{Title: "NICE NG87: ADHD - diagnosis and management", URL: "https://www.nice.org.uk/guidance/ng87", Kind: types.SourceNICE},
		},
	},
	{
		topic:    types.TopicDyslexia,
		keywords: []string{"dyslexia", "dyslexic", "reading"},
		general: []types.EvidenceSource{
			{Title: "NHS: Dyslexia", URL: "https://www.nhs.uk/conditions/dyslexia/", Kind: types.SourceNHS},
		},
	},
	{
		topic:    types.TopicAnxiety,
		keywords: []string{"anxiety", "anxious", "panic", "worry"},
		general: []types.EvidenceSource{
			{Title: "NHS: Anxiety, fear and panic", URL: "https://www.nhs.uk/mental-health/feelings-symptoms-behaviours/feelings-and-symptoms/anxiety-fear-panic/", Kind: types.SourceNHS},
			{Title: "NHS: Generalised anxiety disorder in adults", URL: "https://www.nhs.uk/mental-health/conditions/generalised-anxiety-disorder/", Kind: types.SourceNHS},
		},
		guideline: []types.EvidenceSource{
			{Title: "NICE CG113: Generalised anxiety disorder and panic disorder", URL: "https://www.nice.org.uk/guidance/cg113", Kind: types.SourceNICE},
		},
	},
	{
		topic:    types.TopicDepression,
		keywords: []string{"depress", "low mood"},
		general: []types.EvidenceSource{
			{Title: "NHS: Depression in adults", URL: "https://www.nhs.uk/mental-health/conditions/depression-in-adults/", Kind: types.SourceNHS},
		},
		guideline: []types.EvidenceSource{
			{Title: "NICE NG222: Depression in adults - treatment and management", URL: "https://www.nice.org.uk/guidance/ng222", Kind: types.SourceNICE},
		},
	},
	{
		topic:    types.TopicBipolar,
		keywords: []string{"bipolar", "mania", "manic"},
		general: []types.EvidenceSource{
			{Title: "NHS: Bipolar disorder", URL: "https://www.nhs.uk/mental-health/conditions/bipolar-disorder/", Kind: types.SourceNHS},
		},
		guideline: []types.EvidenceSource{
			{Title: "NICE CG185: Bipolar disorder - assessment and management", URL: "https://www.nice.org.uk/guidance/cg185", Kind: types.SourceNICE},
		},
	},
	{
		topic:    types.TopicStress,
		keywords: []string{"stress", "burnout", "pressure"},
		general: []types.EvidenceSource{
			{Title: "NHS: Stress", URL: "https://www.nhs.uk/mental-health/feelings-symptoms-behaviours/feelings-and-symptoms/stress/", Kind: types.SourceNHS},
			{Title: "NHS: Breathing exercises for stress", URL: "https://www.nhs.uk/mental-health/self-help/guides-tools-and-activities/breathing-exercises-for-stress/", Kind: types.SourceNHS},
		},
	},
	{
		topic:    types.TopicSleep,
		keywords: []string{"sleep", "insomnia", "bedtime"},
		general: []types.EvidenceSource{
			{Title: "NHS: Insomnia", URL: "https://www.nhs.uk/conditions/insomnia/", Kind: types.SourceNHS},
			{Title: "NHS: Sleep problems", URL: "https://www.nhs.uk/mental-health/feelings-symptoms-behaviours/feelings-and-symptoms/sleep-problems/", Kind: types.SourceNHS},
		},
		guideline: []types.EvidenceSource{
			{Title: "NICE: Insomnia management (CKS)", URL: "https://cks.nice.org.uk/topics/insomnia/", Kind: types.SourceNICE},
		},
	},
	{
		topic:    types.TopicBreathing,
		keywords: []string{"breathing", "breathe", "breath"},
		general: []types.EvidenceSource{
			{Title: "NHS: Breathing exercises for stress", URL: "https://www.nhs.uk/mental-health/self-help/guides-tools-and-activities/breathing-exercises-for-stress/", Kind: types.SourceNHS},
		},
	},
	{
		topic:    types.TopicMindfulness,
		keywords: []string{"mindful", "meditat"},
		general: []types.EvidenceSource{
			{Title: "NHS: Mindfulness", URL: "https://www.nhs.uk/mental-health/self-help/tips-and-support/mindfulness/", Kind: types.SourceNHS},
		},
	},
}

// generalFallbackLinks is returned when no group scores, so every answer
// can cite at least one authoritative starting point.
var generalFallbackLinks = []types.EvidenceSource{
	{Title: "NHS: Mental health", URL: "https://www.nhs.uk/mental-health/", Kind: types.SourceNHS},
	{Title: "NHS: Every Mind Matters", URL: "https://www.nhs.uk/every-mind-matters/", Kind: types.SourceNHS},
}

// Links returns curated evidence links for a topic tag and question,
// deduplicated by URL. Matching uses the same +3 topic / +2 keyword
// scoring as Lookup. The result is truncated to 5 general links and 3
// guideline-body links to bound answer size.
func Links(topic types.Topic, question string) []types.EvidenceSource {
	q := strings.ToLower(question)

	var best *linkGroup
	bestScore := 0
	for i := range linkGroups {
		g := &linkGroups[i]
		score := 0
		if topic != types.TopicNone && g.topic == topic {
			score += 3
		}
		for _, kw := range g.keywords {
			if strings.Contains(q, kw) {
				score += 2
			}
		}
		if score > bestScore {
			best = g
			bestScore = score
		}
	}

	if best == nil {
		return dedupeByURL(generalFallbackLinks)
	}

	general := dedupeByURL(best.general)
	if len(general) > maxGeneralLinks {
		general = general[:maxGeneralLinks]
	}
	guideline := dedupeByURL(best.guideline)
	if len(guideline) > maxGuidelineLinks {
		guideline = guideline[:maxGuidelineLinks]
	}
	return dedupeByURL(append(general, guideline...))
}

// dedupeByURL keeps the first occurrence of each URL.
func dedupeByURL(sources []types.EvidenceSource) []types.EvidenceSource {
	seen := make(map[string]bool, len(sources))
	out := make([]types.EvidenceSource, 0, len(sources))
	for _, s := range sources {
		if s.URL == "" || seen[s.URL] {
			continue
		}
		seen[s.URL] = true
		out = append(out, s)
	}
	return out
}
