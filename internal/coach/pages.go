// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package coach

import (
	"strings"

	"github.com/neurobloom/coach-engine/pkg/types"
)

// Page is an internal site page the synthesizer can point a reader at.
type Page struct {
	Title       string `json:"title" yaml:"title"`
	Path        string `json:"path" yaml:"path"`
	Description string `json:"description" yaml:"description"`
}

type pageEntry struct {
	page     Page
	topics   []types.Topic
	keywords []string
}

// pageDirectory is the curated internal page index, consumed read-only.
var pageDirectory = []pageEntry{
	{
		page:     Page{Title: "Box breathing timer", Path: "/breathing/box", Description: "Guided 4-4-4-4 breathing exercise"},
		topics:   []types.Topic{types.TopicBreathing, types.TopicAnxiety, types.TopicStress},
		keywords: []string{"breath", "calm", "panic"},
	},
	{
		page:     Page{Title: "4-7-8 bedtime breathing", Path: "/breathing/478", Description: "Wind-down breathing for sleep"},
		topics:   []types.Topic{types.TopicSleep, types.TopicBreathing},
		keywords: []string{"sleep", "bedtime", "insomnia"},
	},
	{
		page:     Page{Title: "ADHD support hub", Path: "/conditions/adhd", Description: "Strategies for home, school, and work"},
		topics:   []types.Topic{types.TopicADHD},
		keywords: []string{"adhd", "attention", "focus"},
	},
	{
		page:     Page{Title: "Autism support hub", Path: "/conditions/autism", Description: "Understanding and supporting autistic people"},
		topics:   []types.Topic{types.TopicAutism},
		keywords: []string{"autism", "autistic", "sensory"},
	},
	{
		page:     Page{Title: "Dyslexia support hub", Path: "/conditions/dyslexia", Description: "Reading support for learners and teachers"},
		topics:   []types.Topic{types.TopicDyslexia},
		keywords: []string{"dyslexia", "reading", "spelling"},
	},
	{
		page:     Page{Title: "Teacher's classroom guide", Path: "/guides/teachers", Description: "Inclusive classroom strategies"},
		topics:   nil,
		keywords: []string{"school", "classroom", "teacher", "pupil"},
	},
	{
		page:     Page{Title: "Mindfulness starter course", Path: "/mindfulness/start", Description: "Three-minute daily practices"},
		topics:   []types.Topic{types.TopicMindfulness, types.TopicStress},
		keywords: []string{"mindful", "meditat", "grounding"},
	},
	{
		page:     Page{Title: "Sleep routine builder", Path: "/sleep/routine", Description: "Build a consistent wind-down routine"},
		topics:   []types.Topic{types.TopicSleep},
		keywords: []string{"sleep", "routine", "tired"},
	},
}

// RelevantPages returns internal pages matching the topic or question
// keywords, best match first. The synthesizer only uses the first one.
func RelevantPages(question string, topic types.Topic) []Page {
	q := strings.ToLower(question)

	type scored struct {
		page  Page
		score int
	}
	var matches []scored
	for _, e := range pageDirectory {
		score := 0
		for _, t := range e.topics {
			if t == topic && topic != types.TopicNone {
				score += 3
			}
		}
		for _, kw := range e.keywords {
			if strings.Contains(q, kw) {
				score += 2
			}
		}
		if score > 0 {
			matches = append(matches, scored{e.page, score})
		}
	}

	// Insertion-order stable selection sort keeps directory order for
	// equal scores.
	var pages []Page
	for len(matches) > 0 {
		best := 0
		for i, m := range matches {
			if m.score > matches[best].score {
				best = i
			}
		}
		pages = append(pages, matches[best].page)
		matches = append(matches[:best], matches[best+1:]...)
	}
	return pages
}
