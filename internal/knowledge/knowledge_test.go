// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package knowledge

import (
	"strings"
	"testing"

	"github.com/neurobloom/coach-engine/pkg/types"
)

func TestLookupByTopicTag(t *testing.T) {
	e := Lookup(types.TopicADHD, "anything at all")
	if e.Topic != types.TopicADHD {
		t.Fatalf("Topic = %s, want adhd", e.Topic)
	}
	if len(e.Management.School) == 0 {
		t.Error("ADHD entry must carry school management lines")
	}
}

func TestLookupByKeywords(t *testing.T) {
	tests := []struct {
		name     string
		question string
		want     types.Topic
	}{
		{"keyword match", "my son keeps stimming and has meltdowns", types.TopicAutism},
		{"stem keyword", "I cannot concentrate on anything", types.TopicADHD},
		{"sleep", "I lie awake at bedtime with insomnia", types.TopicSleep},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := Lookup(types.TopicNone, tt.question)
			if e.Topic != tt.want {
				t.Errorf("Lookup topic = %s, want %s", e.Topic, tt.want)
			}
		})
	}
}

func TestLookupTopicTagOutweighsSingleKeyword(t *testing.T) {
	// Question mentions sleep (one keyword, +2) but the caller supplied
	// the anxiety tag (+3).
	e := Lookup(types.TopicAnxiety, "my sleep is bad")
	if e.Topic != types.TopicAnxiety {
		t.Errorf("Lookup topic = %s, want anxiety (tag outweighs one keyword)", e.Topic)
	}
}

func TestLookupNoMatchReturnsNeutralDefault(t *testing.T) {
	e := Lookup(types.TopicNone, "what colour should I paint my fence")
	if e.Known() {
		t.Fatalf("expected neutral default, got topic %s", e.Topic)
	}
	if len(e.Definition) == 0 || len(e.Management.General) == 0 {
		t.Error("default entry must still carry neutral content")
	}
	for _, line := range e.Definition {
		lower := strings.ToLower(line)
		for _, claim := range []string{"diagnos", "medicat", "disorder"} {
			if strings.Contains(lower, claim) {
				t.Errorf("default entry must not make specific claims, found %q in %q", claim, line)
			}
		}
	}
}

func TestLinksDeduplicatedAndCapped(t *testing.T) {
	links := Links(types.TopicAutism, "what is autism and is my child autistic")

	if len(links) == 0 {
		t.Fatal("expected links for autism")
	}
	seen := map[string]bool{}
	general, guideline := 0, 0
	for _, l := range links {
		if seen[l.URL] {
			t.Errorf("duplicate URL %s", l.URL)
		}
		seen[l.URL] = true
		if l.Kind == types.SourceNICE {
			guideline++
		} else {
			general++
		}
	}
	if general > 5 {
		t.Errorf("general links = %d, want <= 5", general)
	}
	if guideline > 3 {
		t.Errorf("guideline links = %d, want <= 3", guideline)
	}
}

func TestLinksNoMatchFallsBackToGeneral(t *testing.T) {
	links := Links(types.TopicNone, "nothing relevant here")
	if len(links) == 0 {
		t.Fatal("fallback links must be non-empty")
	}
	for _, l := range links {
		if l.Kind != types.SourceNHS {
			t.Errorf("fallback link kind = %s, want nhs", l.Kind)
		}
	}
}

func TestEveryTopicHasAnEntry(t *testing.T) {
	for _, topic := range types.TopicVocabulary() {
		e := Lookup(topic, "")
		if e.Topic != topic {
			t.Errorf("no entry for topic %s", topic)
		}
	}
}
