// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// Topic is a closed condition/subject tag. The zero value TopicNone means
// no topic was supplied or extracted; lookups then fall through to the
// neutral default entry rather than inventing content.
type Topic string

const (
	TopicNone        Topic = ""
	TopicAutism      Topic = "autism"
	TopicADHD        Topic = "adhd"
	TopicDyslexia    Topic = "dyslexia"
	TopicAnxiety     Topic = "anxiety"
	TopicDepression  Topic = "depression"
	TopicBipolar     Topic = "bipolar"
	TopicStress      Topic = "stress"
	TopicSleep       Topic = "sleep"
	TopicBreathing   Topic = "breathing"
	TopicMindfulness Topic = "mindfulness"
)

// TopicVocabulary returns all topics in declaration order. Order matters:
// topic extraction scans a question for these names as substrings and the
// first match wins, so reordering this list changes classification
// outcomes. Keep it stable.
func TopicVocabulary() []Topic {
	return []Topic{
		TopicAutism,
		TopicADHD,
		TopicDyslexia,
		TopicAnxiety,
		TopicDepression,
		TopicBipolar,
		TopicStress,
		TopicSleep,
		TopicBreathing,
		TopicMindfulness,
	}
}

// ParseTopic maps a caller-supplied string to a known Topic, or TopicNone.
func ParseTopic(s string) Topic {
	for _, t := range TopicVocabulary() {
		if string(t) == s {
			return t
		}
	}
	return TopicNone
}

// IntentKind classifies the purpose of a question.
type IntentKind string

const (
	IntentDefinition IntentKind = "definition"
	IntentManagement IntentKind = "management"
	IntentSchool     IntentKind = "school"
	IntentWorkplace  IntentKind = "workplace"
	IntentSleep      IntentKind = "sleep"
	IntentAssessment IntentKind = "assessment"
	IntentCrisis     IntentKind = "crisis"
	IntentGeneral    IntentKind = "general"
)

// Intent is the classified purpose of a question. Derived per request,
// never persisted.
type Intent struct {
	// Primary is the top-scoring kind, or IntentGeneral when nothing scores.
	Primary IntentKind `json:"primary"`

	// Secondary is the next-highest kind with a positive score, if any.
	Secondary IntentKind `json:"secondary,omitempty"`

	// Topic is the extracted condition tag, or TopicNone.
	Topic Topic `json:"topic,omitempty"`

	// NeedsCrisisResponse is true when the question matched a crisis
	// phrase. It overrides everything else in the pipeline.
	NeedsCrisisResponse bool `json:"needs_crisis_response"`
}

// ManagementOriented reports whether the intent calls for actionable
// guidance rather than background explanation. The article query builder
// uses this to pick intervention terms over condition terms.
func (i Intent) ManagementOriented() bool {
	switch i.Primary {
	case IntentManagement, IntentSchool, IntentWorkplace, IntentSleep:
		return true
	}
	return false
}
