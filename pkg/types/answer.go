// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import "time"

// SafetyNotice is the fixed disclaimer attached to every answer. It never
// varies per topic; the invariance is deliberate, not a customization
// point.
const SafetyNotice = "This guidance is educational and does not replace advice " +
	"from a qualified health professional. If you are worried about your safety " +
	"or someone else's, call 999 (UK) or your local emergency number, or contact " +
	"Samaritans on 116 123."

// EvidenceSnapshot groups short evidence statements into four fixed
// buckets. Buckets are always non-nil, possibly empty. Statements about
// retrieved sources state counts rather than paraphrasing content that
// was not actually fetched.
type EvidenceSnapshot struct {
	GuidelineSummaries []string `json:"guideline_summaries" yaml:"guideline_summaries"`
	ResearchSummaries  []string `json:"research_summaries" yaml:"research_summaries"`
	PracticalSupports  []string `json:"practical_supports" yaml:"practical_supports"`
	WhenToSeekHelp     []string `json:"when_to_seek_help" yaml:"when_to_seek_help"`
}

// CardBack is the optional reverse side of a visual learning card.
type CardBack struct {
	Title string   `json:"title,omitempty" yaml:"title,omitempty"`
	Lines []string `json:"lines" yaml:"lines"`
}

// VisualLearningCard is a short flash-card-style summary derived from
// answer content for compact display. At most ten per answer.
type VisualLearningCard struct {
	ID          string    `json:"id" yaml:"id"`
	Title       string    `json:"title" yaml:"title"`
	Lines       []string  `json:"lines" yaml:"lines"`
	IconKey     string    `json:"icon_key" yaml:"icon_key"`
	Emoji       string    `json:"emoji,omitempty" yaml:"emoji,omitempty"`
	AudienceTag Audience  `json:"audience_tag,omitempty" yaml:"audience_tag,omitempty"`
	Back        *CardBack `json:"back,omitempty" yaml:"back,omitempty"`
}

// Answer is the synthesized output of the pipeline. It is immutable once
// constructed: cached answers are served read-only until TTL expiry.
//
// Bounds are invariants, not suggestions: Summary holds at most 5 lines,
// PracticalActions at most 7, Cards at most 10. The UI layout depends on
// them.
type Answer struct {
	// ID identifies this synthesized answer. Crisis answers get a fresh
	// ID on every request so they never look stale.
	ID string `json:"id" yaml:"id"`

	// Title is the answer headline.
	Title string `json:"title" yaml:"title"`

	// ContextLine makes personalization auditable to the end user:
	// "Context used: ..." built from whichever context fields were
	// present, or "General guidance" when there were none.
	ContextLine string `json:"context_line" yaml:"context_line"`

	// Summary holds up to 5 ordered summary lines.
	Summary []string `json:"summary" yaml:"summary"`

	// Evidence is the four-bucket evidence snapshot.
	Evidence EvidenceSnapshot `json:"evidence" yaml:"evidence"`

	// TailoredGuidance maps audience to up to 5 guidance lines each.
	TailoredGuidance map[Audience][]string `json:"tailored_guidance" yaml:"tailored_guidance"`

	// PracticalActions holds up to 7 ordered actions, safety-first.
	PracticalActions []string `json:"practical_actions" yaml:"practical_actions"`

	// Myths lists topic-keyed misconception corrections. Omitted
	// entirely (nil, not empty) when the topic defines none.
	Myths []string `json:"myths,omitempty" yaml:"myths,omitempty"`

	// ClinicianNotes lists notes for professional readers. Omitted when
	// the topic defines none.
	ClinicianNotes []string `json:"clinician_notes,omitempty" yaml:"clinician_notes,omitempty"`

	// Cards holds up to 10 visual learning cards.
	Cards []VisualLearningCard `json:"cards" yaml:"cards"`

	// GuidelineSources lists curated NHS/NICE-tier links.
	GuidelineSources []EvidenceSource `json:"guideline_sources" yaml:"guideline_sources"`

	// ResearchSources lists bibliographic citations.
	ResearchSources []EvidenceSource `json:"research_sources" yaml:"research_sources"`

	// SafetyNotice is always the fixed SafetyNotice constant.
	SafetyNotice string `json:"safety_notice" yaml:"safety_notice"`
}

// Coverage flags which evidence categories actually contributed to an
// answer. The caller can trust these even on the degraded path.
type Coverage struct {
	NHS    bool `json:"nhs" yaml:"nhs"`
	NICE   bool `json:"nice" yaml:"nice"`
	PubMed bool `json:"pubmed" yaml:"pubmed"`
}

// CoverageOf derives coverage flags from an answer's source lists.
func CoverageOf(a *Answer) Coverage {
	var c Coverage
	for _, s := range a.GuidelineSources {
		switch s.Kind {
		case SourceNHS, SourceCDC:
			c.NHS = true
		case SourceNICE:
			c.NICE = true
		}
	}
	c.PubMed = len(a.ResearchSources) > 0
	return c
}

// Meta describes how an answer was produced.
type Meta struct {
	Cached      bool      `json:"cached" yaml:"cached"`
	QueryKey    string    `json:"query_key" yaml:"query_key"`
	Coverage    Coverage  `json:"coverage" yaml:"coverage"`
	GeneratedAt time.Time `json:"generated_at" yaml:"generated_at"`
}
