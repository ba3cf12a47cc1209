// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package pubmed

import (
	"strings"
	"testing"

	"github.com/neurobloom/coach-engine/pkg/types"
)

func TestBuildQueryConditionAndFilters(t *testing.T) {
	q := BuildQuery(types.TopicADHD, types.Intent{Primary: types.IntentDefinition}, nil)

	if !strings.Contains(q, `"attention deficit hyperactivity disorder"`) {
		t.Errorf("query missing condition terms: %q", q)
	}
	if !strings.Contains(q, "systematic review[pt]") {
		t.Errorf("query missing publication-type filter: %q", q)
	}
	if !strings.Contains(q, `"last 10 years"[dp]`) {
		t.Errorf("query missing recency filter: %q", q)
	}
	// Definition intent is not management-oriented.
	if strings.Contains(q, "(intervention OR treatment") {
		t.Errorf("definition query should not carry intervention clause: %q", q)
	}
}

func TestBuildQueryManagementIntentAddsInterventionClause(t *testing.T) {
	q := BuildQuery(types.TopicAnxiety, types.Intent{Primary: types.IntentManagement}, nil)
	if !strings.Contains(q, "(intervention OR treatment OR therapy OR support OR management)") {
		t.Errorf("management query missing intervention clause: %q", q)
	}
}

func TestBuildQueryContextQualifiers(t *testing.T) {
	tests := []struct {
		name string
		in   types.Intent
		uc   *types.UserContext
		want string
	}{
		{"school intent", types.Intent{Primary: types.IntentSchool}, nil, "(school OR classroom OR education)"},
		{"workplace setting", types.Intent{Primary: types.IntentGeneral}, &types.UserContext{Setting: "remote work"}, "(workplace OR occupational OR employees)"},
		{"family setting", types.Intent{Primary: types.IntentGeneral}, &types.UserContext{Setting: "home"}, "(parents OR family OR caregivers)"},
		{"child age band", types.Intent{Primary: types.IntentGeneral}, &types.UserContext{AgeGroup: "teenager"}, "(child OR children OR adolescent)"},
		{"adult age band", types.Intent{Primary: types.IntentGeneral}, &types.UserContext{AgeGroup: "45-60"}, "(adult OR adults)"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q := BuildQuery(types.TopicStress, tt.in, tt.uc)
			if !strings.Contains(q, tt.want) {
				t.Errorf("query %q missing %q", q, tt.want)
			}
		})
	}
}

func TestBuildQueryClauseCap(t *testing.T) {
	// Management intent + school context + both closing filters would be
	// five clauses with the condition group; the cap must hold.
	q := BuildQuery(types.TopicADHD, types.Intent{Primary: types.IntentSchool}, &types.UserContext{AgeGroup: "child"})
	if n := strings.Count(q, " AND "); n > maxQueryClauses-1 {
		t.Errorf("query has %d AND joins (%d clauses), want <= %d clauses: %q",
			n, n+1, maxQueryClauses, q)
	}
}

func TestBuildQueryUnknownTopicUsesNeutralTerms(t *testing.T) {
	q := BuildQuery(types.TopicNone, types.Intent{Primary: types.IntentGeneral}, nil)
	if !strings.Contains(q, `"mental health"`) {
		t.Errorf("unknown topic should fall back to neutral terms: %q", q)
	}
}
