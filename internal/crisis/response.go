// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package crisis

import (
	"strings"

	"github.com/google/uuid"

	"github.com/neurobloom/coach-engine/pkg/types"
)

// hotlineBlock holds the country-specific numbers surfaced in a crisis
// answer.
type hotlineBlock struct {
	emergency string
	lines     []string
	sources   []types.EvidenceSource
}

var ukHotlines = hotlineBlock{
	emergency: "999",
	lines: []string{
		"Call 999 now if you or someone else is in immediate danger.",
		"Call Samaritans free on 116 123, any time, day or night.",
		"Text SHOUT to 85258 to talk by text.",
		"Call NHS 111 and select the mental health option for urgent advice.",
	},
	sources: []types.EvidenceSource{
		{Title: "NHS: Help for suicidal thoughts", URL: "https://www.nhs.uk/mental-health/feelings-symptoms-behaviours/behaviours/help-for-suicidal-thoughts/", Kind: types.SourceNHS},
		{Title: "NHS: Where to get urgent help for mental health", URL: "https://www.nhs.uk/nhs-services/mental-health-services/where-to-get-urgent-help-for-mental-health/", Kind: types.SourceNHS},
	},
}

var usHotlines = hotlineBlock{
	emergency: "911",
	lines: []string{
		"Call 911 now if you or someone else is in immediate danger.",
		"Call or text 988 to reach the Suicide & Crisis Lifeline, any time.",
		"Text HOME to 741741 to reach the Crisis Text Line.",
	},
	sources: []types.EvidenceSource{
		{Title: "988 Suicide & Crisis Lifeline", URL: "https://988lifeline.org/", Kind: types.SourceNHS},
		{Title: "CDC: Suicide prevention resources", URL: "https://www.cdc.gov/suicide/resources/index.html", Kind: types.SourceCDC},
	},
}

var internationalHotlines = hotlineBlock{
	emergency: "your local emergency number",
	lines: []string{
		"Call your local emergency number now if you or someone else is in immediate danger.",
		"Find a helpline in your country at https://www.befrienders.org/.",
	},
	sources: []types.EvidenceSource{
		{Title: "NHS: Help for suicidal thoughts", URL: "https://www.nhs.uk/mental-health/feelings-symptoms-behaviours/behaviours/help-for-suicidal-thoughts/", Kind: types.SourceNHS},
		{Title: "Befrienders Worldwide helpline directory", URL: "https://www.befrienders.org/", Kind: types.SourceOther},
	},
}

// hotlinesFor picks the hotline block for a user context. The UK block is
// the default; unknown countries get the international block rather than
// a wrong number.
func hotlinesFor(uc *types.UserContext) hotlineBlock {
	if uc == nil || uc.Country == "" {
		return ukHotlines
	}
	switch strings.ToLower(strings.TrimSpace(uc.Country)) {
	case "uk", "gb", "united kingdom", "great britain", "england", "scotland", "wales", "northern ireland":
		return ukHotlines
	case "us", "usa", "united states", "united states of america":
		return usHotlines
	}
	return internationalHotlines
}

// Response builds the fixed crisis answer. Every call produces a freshly
// generated ID: crisis answers are never cached under a normal key, and
// must never look stale.
func Response(uc *types.UserContext) *types.Answer {
	h := hotlinesFor(uc)

	actions := make([]string, 0, len(h.lines)+2)
	actions = append(actions, h.lines...)
	actions = append(actions,
		"Stay with someone you trust, or ask someone to stay with you.",
		"Remove anything you could use to hurt yourself from easy reach.",
	)
	if len(actions) > 7 {
		actions = actions[:7]
	}

	guidance := map[types.Audience][]string{}
	for _, a := range types.CanonicalAudiences() {
		guidance[a] = []string{
			"Take any mention of suicide or self-harm seriously.",
			"Stay with the person and help them contact a crisis line.",
			"If there is immediate danger, call " + h.emergency + ".",
		}
	}

	return &types.Answer{
		ID:          uuid.NewString(),
		Title:       "Urgent support: you are not alone",
		ContextLine: "Crisis support",
		Summary: []string{
			"What you are feeling right now can change, and help is available immediately.",
			"You do not have to go through this alone - trained people are ready to listen.",
			"The fastest way to get support is to call one of the numbers below.",
		},
		Evidence: types.EvidenceSnapshot{
			GuidelineSummaries: []string{"National health guidance on urgent mental-health support is linked below."},
			ResearchSummaries:  []string{},
			PracticalSupports:  h.lines,
			WhenToSeekHelp:     []string{"Seek help now. Do not wait for an appointment if you feel unsafe."},
		},
		TailoredGuidance: guidance,
		PracticalActions: actions,
		Cards: []types.VisualLearningCard{
			{
				ID:      uuid.NewString(),
				Title:   "Get help now",
				Lines:   firstN(h.lines, 3),
				IconKey: "alert",
				Emoji:   "📞",
			},
		},
		GuidelineSources: h.sources,
		SafetyNotice:     types.SafetyNotice,
	}
}

func firstN(lines []string, n int) []string {
	if len(lines) <= n {
		return lines
	}
	return lines[:n]
}
