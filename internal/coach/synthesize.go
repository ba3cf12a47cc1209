// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package coach

import (
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/neurobloom/coach-engine/internal/knowledge"
	"github.com/neurobloom/coach-engine/pkg/types"
)

// Output bounds. These are invariants the UI layout depends on.
const (
	maxSummaryLines  = 5
	maxActions       = 7
	maxGuidanceLines = 5
	maxSnapshotLines = 3
)

// topicTitles maps topics to display names.
var topicTitles = map[types.Topic]string{
	types.TopicAutism:      "Autism",
	types.TopicADHD:        "ADHD",
	types.TopicDyslexia:    "Dyslexia",
	types.TopicAnxiety:     "Anxiety",
	types.TopicDepression:  "Depression",
	types.TopicBipolar:     "Bipolar disorder",
	types.TopicStress:      "Stress",
	types.TopicSleep:       "Sleep",
	types.TopicBreathing:   "Breathing exercises",
	types.TopicMindfulness: "Mindfulness",
}

// TopicTitle returns the display name for a topic, or an empty string
// for topics without one.
func TopicTitle(t types.Topic) string {
	return topicTitles[t]
}

// genericGuidance is the topic-neutral fallback per audience, used when
// the knowledge base lacks the audience's slot.
var genericGuidance = map[types.Audience][]string{
	types.AudienceParents: {
		"Keep routines predictable and name changes in advance.",
		"Listen first; solving can wait until the feelings are heard.",
		"Model the calm habits you want your child to copy.",
	},
	types.AudienceYoungPeople: {
		"What you are feeling is common, and support works.",
		"Tell one trusted adult what is going on.",
		"Small daily habits (sleep, movement, breathing) add up fast.",
	},
	types.AudienceTeachers: {
		"Predictability and clear instructions help every pupil.",
		"Watch for quiet withdrawal as much as visible disruption.",
		"A named safe adult and a quiet exit route cost nothing.",
	},
	types.AudienceAdults: {
		"Protect the basics first: sleep, movement, and daylight.",
		"Break what feels unmanageable into one next step.",
		"Talking to your GP is a reasonable first move, not a last resort.",
	},
	types.AudienceWorkplace: {
		"Reasonable adjustments are a conversation, not a confession.",
		"Put priorities and deadlines in writing to reduce ambiguity.",
		"Protect breaks; recovery time is part of performance.",
	},
}

// synthInput bundles everything the synthesizer merges.
type synthInput struct {
	question string
	intent   types.Intent
	topic    types.Topic
	entry    knowledge.Entry
	links    []types.EvidenceSource
	articles []types.Article
	audience types.Audience
	userCtx  *types.UserContext
	pages    []Page
}

// synthesize merges the knowledge entry, curated links, and retrieved
// articles into the final answer. Callers must check for a crisis match
// first; this function never runs for crisis questions.
func synthesize(in synthInput) *types.Answer {
	guideline := dedupeSources(in.links)
	research := dedupeSources(articleSources(in.articles))

	ans := &types.Answer{
		ID:               uuid.NewString(),
		Title:            buildTitle(in.topic, in.intent),
		ContextLine:      buildContextLine(in.userCtx, in.topic),
		Summary:          buildSummary(in.entry),
		Evidence:         buildSnapshot(in.entry, len(guideline), in.articles),
		TailoredGuidance: buildGuidance(in.entry, in.audience),
		PracticalActions: buildActions(in.entry, in.intent, in.pages),
		Cards:            []types.VisualLearningCard{},
		GuidelineSources: guideline,
		ResearchSources:  research,
		SafetyNotice:     types.SafetyNotice,
	}

	// Omitted entirely, not empty, when the topic defines none.
	if len(in.entry.Myths) > 0 {
		ans.Myths = append([]string(nil), in.entry.Myths...)
	}
	if len(in.entry.Clinician) > 0 {
		ans.ClinicianNotes = append([]string(nil), in.entry.Clinician...)
	}

	ans.Cards = generateCards(in, ans)
	return ans
}

func buildTitle(topic types.Topic, in types.Intent) string {
	name, ok := topicTitles[topic]
	if !ok {
		return "General wellbeing guidance"
	}
	switch in.Primary {
	case types.IntentSchool:
		return name + ": support at school"
	case types.IntentWorkplace:
		return name + ": support at work"
	case types.IntentAssessment:
		return name + ": assessment and next steps"
	default:
		return name + ": guidance and evidence"
	}
}

// buildContextLine makes personalization auditable: it lists exactly the
// context fields that influenced the answer.
func buildContextLine(uc *types.UserContext, topic types.Topic) string {
	var parts []string
	if name, ok := topicTitles[topic]; ok {
		parts = append(parts, "topic "+name)
	}
	if uc != nil {
		if uc.Country != "" {
			parts = append(parts, "country "+uc.Country)
		}
		if uc.AgeGroup != "" {
			parts = append(parts, "age "+uc.AgeGroup)
		}
		if uc.Setting != "" {
			parts = append(parts, "setting "+uc.Setting)
		}
		if uc.MainChallenge != "" {
			parts = append(parts, "challenge "+uc.MainChallenge)
		}
		if uc.Goal != "" {
			parts = append(parts, "goal "+uc.Goal)
		}
	}
	if len(parts) == 0 {
		return "General guidance"
	}
	return "Context used: " + strings.Join(parts, ", ")
}

func buildSummary(entry knowledge.Entry) []string {
	summary := append([]string(nil), entry.Definition...)
	if entry.Known() && len(entry.Strengths) > 0 && len(summary) < maxSummaryLines {
		summary = append(summary, "Common strengths: "+strings.Join(entry.Strengths, " "))
	}
	if len(summary) > maxSummaryLines {
		summary = summary[:maxSummaryLines]
	}
	return summary
}

// buildSnapshot states counts of available sources rather than
// paraphrasing content that was not actually retrieved.
func buildSnapshot(entry knowledge.Entry, guidelineCount int, articles []types.Article) types.EvidenceSnapshot {
	snap := types.EvidenceSnapshot{
		GuidelineSummaries: []string{},
		ResearchSummaries:  []string{},
		PracticalSupports:  []string{},
		WhenToSeekHelp:     []string{},
	}

	if guidelineCount > 0 {
		snap.GuidelineSummaries = append(snap.GuidelineSummaries,
			fmt.Sprintf("%d national guidance sources are linked with this answer.", guidelineCount))
	}
	snap.GuidelineSummaries = append(snap.GuidelineSummaries, firstN(entry.Assessment, maxSnapshotLines-1)...)

	if len(articles) > 0 {
		snap.ResearchSummaries = append(snap.ResearchSummaries,
			fmt.Sprintf("%d peer-reviewed studies support the practical approaches here.", len(articles)))
		reviews := 0
		for _, a := range articles {
			text := strings.ToLower(a.Title + " " + a.Abstract)
			if strings.Contains(text, "systematic review") || strings.Contains(text, "meta-analysis") {
				reviews++
			}
		}
		if reviews > 0 {
			snap.ResearchSummaries = append(snap.ResearchSummaries,
				fmt.Sprintf("%d of them are systematic reviews or meta-analyses.", reviews))
		}
	}

	snap.PracticalSupports = append(snap.PracticalSupports, firstN(entry.Management.General, maxSnapshotLines)...)
	snap.WhenToSeekHelp = append(snap.WhenToSeekHelp, firstN(entry.WhenToSeek, maxSnapshotLines)...)
	return snap
}

// audienceLines picks the knowledge-base slot for an audience.
func audienceLines(entry knowledge.Entry, a types.Audience) []string {
	var lines []string
	switch a {
	case types.AudienceParents:
		lines = entry.Management.Home
	case types.AudienceTeachers:
		lines = entry.Management.School
	case types.AudienceWorkplace:
		lines = entry.Management.Workplace
	case types.AudienceYoungPeople, types.AudienceAdults:
		lines = entry.Management.General
	}
	if len(lines) == 0 {
		lines = genericGuidance[a]
	}
	return firstN(lines, maxGuidanceLines)
}

func buildGuidance(entry knowledge.Entry, requested types.Audience) map[types.Audience][]string {
	audiences := types.CanonicalAudiences()
	if requested != "" {
		audiences = []types.Audience{requested}
	}
	guidance := make(map[types.Audience][]string, len(audiences))
	for _, a := range audiences {
		guidance[a] = audienceLines(entry, a)
	}
	return guidance
}

// buildActions orders practical actions safety-first: immediate steps,
// then setting-specific ones when the intent matches, then general, with
// one internal page pointer appended last.
func buildActions(entry knowledge.Entry, in types.Intent, pages []Page) []string {
	var actions []string
	seen := map[string]bool{}
	add := func(lines []string) {
		for _, l := range lines {
			if !seen[l] {
				seen[l] = true
				actions = append(actions, l)
			}
		}
	}

	add(entry.Management.Immediate)
	switch in.Primary {
	case types.IntentSchool:
		add(entry.Management.School)
	case types.IntentWorkplace:
		add(entry.Management.Workplace)
	}
	add(entry.Management.General)

	if len(pages) > 0 {
		if len(actions) > maxActions-1 {
			actions = actions[:maxActions-1]
		}
		p := pages[0]
		actions = append(actions, fmt.Sprintf("Try the %s on this site (%s).", p.Title, p.Path))
	} else if len(actions) > maxActions {
		actions = actions[:maxActions]
	}
	return actions
}

func articleSources(articles []types.Article) []types.EvidenceSource {
	sources := make([]types.EvidenceSource, 0, len(articles))
	for _, a := range articles {
		sources = append(sources, a.Source())
	}
	return sources
}

func dedupeSources(sources []types.EvidenceSource) []types.EvidenceSource {
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

func firstN(lines []string, n int) []string {
	if len(lines) <= n {
		return lines
	}
	return lines[:n]
}
