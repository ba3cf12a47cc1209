// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package types defines shared data structures for the coach-engine
// answer pipeline: questions, intents, topics, evidence records, and the
// synthesized answer consumed by the front end.
package types

// Audience identifies the intended reader persona for tailored guidance.
type Audience string

const (
	AudienceParents     Audience = "parents"
	AudienceYoungPeople Audience = "young_people"
	AudienceTeachers    Audience = "teachers"
	AudienceAdults      Audience = "adults"
	AudienceWorkplace   Audience = "workplace"
)

// CanonicalAudiences returns the five audiences every answer covers when
// the caller does not request a specific one.
func CanonicalAudiences() []Audience {
	return []Audience{
		AudienceParents,
		AudienceYoungPeople,
		AudienceTeachers,
		AudienceAdults,
		AudienceWorkplace,
	}
}

// ParseAudience maps a caller-supplied string to a known Audience.
// Unknown values return "" so the pipeline falls back to all audiences.
func ParseAudience(s string) Audience {
	for _, a := range CanonicalAudiences() {
		if string(a) == s {
			return a
		}
	}
	return ""
}

// UserContext carries the optional structured context a user supplies
// alongside their question. All fields are free text and may be empty.
type UserContext struct {
	Country       string `json:"country,omitempty" yaml:"country,omitempty"`
	AgeGroup      string `json:"age_group,omitempty" yaml:"age_group,omitempty"`
	Setting       string `json:"setting,omitempty" yaml:"setting,omitempty"`
	MainChallenge string `json:"main_challenge,omitempty" yaml:"main_challenge,omitempty"`
	Goal          string `json:"goal,omitempty" yaml:"goal,omitempty"`
}

// IsZero reports whether no context field is set.
func (c *UserContext) IsZero() bool {
	return c == nil || (c.Country == "" && c.AgeGroup == "" && c.Setting == "" &&
		c.MainChallenge == "" && c.Goal == "")
}
