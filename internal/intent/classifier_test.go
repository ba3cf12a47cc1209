// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package intent

import (
	"testing"

	"github.com/neurobloom/coach-engine/pkg/types"
)

func TestClassifyPrimary(t *testing.T) {
	tests := []struct {
		name     string
		question string
		primary  types.IntentKind
	}{
		{"definition", "What is autism?", types.IntentDefinition},
		{"management", "how can I cope with anxiety", types.IntentManagement},
		{"school", "my pupil struggles in the classroom", types.IntentSchool},
		{"workplace", "adjustments my employer can make at the office", types.IntentWorkplace},
		{"sleep", "I have insomnia and lie awake at night", types.IntentSleep},
		{"assessment", "referral routes for an adhd assessment", types.IntentAssessment},
		{"no triggers", "hello there", types.IntentGeneral},
		{"empty", "", types.IntentGeneral},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Classify(tt.question)
			if got.Primary != tt.primary {
				t.Errorf("Classify(%q).Primary = %s, want %s", tt.question, got.Primary, tt.primary)
			}
			if got.NeedsCrisisResponse {
				t.Errorf("Classify(%q) flagged crisis", tt.question)
			}
		})
	}
}

func TestClassifySecondary(t *testing.T) {
	// Two school triggers, one management trigger.
	in := Classify("strategies for homework battles at school")
	if in.Primary != types.IntentSchool {
		t.Fatalf("Primary = %s, want school", in.Primary)
	}
	if in.Secondary != types.IntentManagement {
		t.Errorf("Secondary = %s, want management", in.Secondary)
	}
}

func TestClassifyTieBreakUsesDeclarationOrder(t *testing.T) {
	// One definition trigger and one sleep trigger: equal scores, and
	// definition is declared first.
	in := Classify("what is a normal night")
	if in.Primary != types.IntentDefinition {
		t.Errorf("Primary = %s, want definition (declaration-order tie-break)", in.Primary)
	}
	if in.Secondary != types.IntentSleep {
		t.Errorf("Secondary = %s, want sleep", in.Secondary)
	}
}

func TestClassifyCrisisOverridesEverything(t *testing.T) {
	in := Classify("I want to end my life because of school stress")
	if !in.NeedsCrisisResponse {
		t.Fatal("NeedsCrisisResponse = false, want true")
	}
	if in.Primary != types.IntentCrisis {
		t.Errorf("Primary = %s, want crisis", in.Primary)
	}
}

func TestExtractTopic(t *testing.T) {
	tests := []struct {
		name     string
		question string
		want     types.Topic
	}{
		{"single topic", "is ADHD hereditary", types.TopicADHD},
		{"case insensitive", "What Is AUTISM", types.TopicAutism},
		{"no topic", "why is the sky blue", types.TopicNone},
		// Two topics: first vocabulary entry wins, not the longest or
		// most frequent mention.
		{"two topics resolve by vocabulary order", "is my adhd making my autism worse", types.TopicAutism},
		{"stress before sleep in vocabulary", "sleep problems caused by stress", types.TopicStress},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ExtractTopic(tt.question); got != tt.want {
				t.Errorf("ExtractTopic(%q) = %s, want %s", tt.question, got, tt.want)
			}
		})
	}
}
