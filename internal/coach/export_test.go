// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package coach

import (
	"path/filepath"
	"testing"

	"github.com/neurobloom/coach-engine/pkg/types"
)

func TestSaveAndLoadAnswer(t *testing.T) {
	ans := synthesize(adhdInput(types.AudienceParents))
	res := &Result{
		Answer: ans,
		Meta:   types.Meta{QueryKey: "k", Coverage: types.CoverageOf(ans)},
	}

	path := filepath.Join(t.TempDir(), "out", "answer.yaml")
	if err := SaveAnswer("how do I support adhd", res, path); err != nil {
		t.Fatalf("SaveAnswer: %v", err)
	}

	exp, err := LoadAnswer(path)
	if err != nil {
		t.Fatalf("LoadAnswer: %v", err)
	}
	if exp.Question != "how do I support adhd" {
		t.Errorf("question = %q", exp.Question)
	}
	if exp.Meta.QueryKey != "k" {
		t.Errorf("meta.query_key = %q", exp.Meta.QueryKey)
	}
	if exp.Answer == nil || exp.Answer.ID != ans.ID {
		t.Error("answer did not survive the round trip")
	}
	if len(exp.Answer.Cards) != len(ans.Cards) {
		t.Errorf("cards = %d, want %d", len(exp.Answer.Cards), len(ans.Cards))
	}
}
