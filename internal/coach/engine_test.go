// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package coach

import (
	"context"
	"strings"
	"testing"

	"github.com/neurobloom/coach-engine/internal/cache"
	"github.com/neurobloom/coach-engine/pkg/types"
)

// stubSearcher returns a canned article list and records the queries it
// was asked for.
type stubSearcher struct {
	articles []types.Article
	queries  []string
}

func (s *stubSearcher) Search(_ context.Context, query string, max int) []types.Article {
	s.queries = append(s.queries, query)
	if len(s.articles) > max {
		return s.articles[:max]
	}
	return s.articles
}

var stubArticles = []types.Article{
	{
		PMID:    "31000001",
		Title:   "Behavioral interventions for ADHD: a systematic review",
		Journal: "J Atten Disord",
		Year:    2022,
		URL:     "https://pubmed.ncbi.nlm.nih.gov/31000001/",
	},
	{
		PMID:    "31000002",
		Title:   "Classroom accommodations and academic outcomes",
		Journal: "Sch Psychol Rev",
		Year:    2021,
		URL:     "https://pubmed.ncbi.nlm.nih.gov/31000002/",
	},
}

func newTestEngine(t *testing.T, searcher ArticleSearcher) *Engine {
	t.Helper()
	store, err := cache.NewStore(types.CacheConfig{})
	if err != nil {
		t.Fatalf("NewStore: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return New(store, searcher, 5, nil)
}

func TestHandleBuildsCompleteAnswer(t *testing.T) {
	search := &stubSearcher{articles: stubArticles}
	eng := newTestEngine(t, search)

	res, err := eng.Handle(context.Background(), Request{
		Question: "how can I help my child focus with adhd at school",
		Audience: "teachers",
		Context:  &types.UserContext{Country: "UK", Setting: "school"},
	})
	if err != nil {
		t.Fatalf("Handle: %v", err)
	}
	ans := res.Answer

	if ans.ID == "" {
		t.Error("answer has no ID")
	}
	if !strings.HasPrefix(ans.Title, "ADHD") {
		t.Errorf("title = %q, want ADHD prefix", ans.Title)
	}
	if len(ans.Summary) == 0 || len(ans.Summary) > 5 {
		t.Errorf("summary has %d lines, want 1-5", len(ans.Summary))
	}
	if len(ans.PracticalActions) == 0 || len(ans.PracticalActions) > 7 {
		t.Errorf("actions has %d entries, want 1-7", len(ans.PracticalActions))
	}
	if len(ans.Cards) == 0 || len(ans.Cards) > 10 {
		t.Errorf("cards has %d entries, want 1-10", len(ans.Cards))
	}
	if ans.SafetyNotice != types.SafetyNotice {
		t.Error("safety notice missing or altered")
	}

	// Audience requested, so guidance is narrowed to that audience and
	// drawn from the topic's school strategies.
	if len(ans.TailoredGuidance) != 1 {
		t.Fatalf("guidance covers %d audiences, want 1", len(ans.TailoredGuidance))
	}
	lines, ok := ans.TailoredGuidance[types.AudienceTeachers]
	if !ok || len(lines) == 0 {
		t.Fatal("no guidance for teachers")
	}
	joined := strings.ToLower(strings.Join(lines, " "))
	if !strings.Contains(joined, "pupil") {
		t.Errorf("teacher guidance looks generic: %q", lines)
	}

	if len(ans.ResearchSources) != len(stubArticles) {
		t.Errorf("research sources = %d, want %d", len(ans.ResearchSources), len(stubArticles))
	}
	if len(search.queries) != 1 {
		t.Fatalf("searcher called %d times, want 1", len(search.queries))
	}
	if !strings.Contains(search.queries[0], "ADHD") {
		t.Errorf("query %q does not target the topic", search.queries[0])
	}

	if !res.Meta.Coverage.PubMed {
		t.Error("coverage should report pubmed")
	}
	if res.Meta.Cached {
		t.Error("first answer reported as cached")
	}
	if res.Meta.QueryKey == "" || res.Meta.GeneratedAt.IsZero() {
		t.Error("meta incomplete")
	}
}

func TestHandleEmptyQuestion(t *testing.T) {
	eng := newTestEngine(t, &stubSearcher{})

	res, err := eng.Handle(context.Background(), Request{Question: ""})
	if err != nil {
		t.Fatalf("Handle: %v", err)
	}
	ans := res.Answer

	if ans.Title != "General wellbeing guidance" {
		t.Errorf("title = %q", ans.Title)
	}
	if ans.ContextLine != "General guidance" {
		t.Errorf("context line = %q", ans.ContextLine)
	}
	if len(ans.Summary) == 0 {
		t.Error("empty question should still get a summary")
	}
	// All audiences covered when none was requested.
	if got, want := len(ans.TailoredGuidance), len(types.CanonicalAudiences()); got != want {
		t.Errorf("guidance covers %d audiences, want %d", got, want)
	}
	if len(ans.GuidelineSources) == 0 {
		t.Error("fallback guideline links missing")
	}
}

func TestHandleServesFromCache(t *testing.T) {
	search := &stubSearcher{articles: stubArticles}
	eng := newTestEngine(t, search)

	req := Request{Question: "how do I manage adhd", Topic: "adhd"}

	first, err := eng.Handle(context.Background(), req)
	if err != nil {
		t.Fatalf("first Handle: %v", err)
	}
	second, err := eng.Handle(context.Background(), req)
	if err != nil {
		t.Fatalf("second Handle: %v", err)
	}

	if first.Meta.Cached {
		t.Error("first response marked cached")
	}
	if !second.Meta.Cached {
		t.Error("second response not served from cache")
	}
	if first.Answer.ID != second.Answer.ID {
		t.Error("cached answer is not the same answer")
	}
	if len(search.queries) != 1 {
		t.Errorf("searcher called %d times, want 1", len(search.queries))
	}
	if second.Meta.QueryKey != first.Meta.QueryKey {
		t.Errorf("query keys differ: %q vs %q", first.Meta.QueryKey, second.Meta.QueryKey)
	}
}

func TestHandleCrisisShortCircuits(t *testing.T) {
	search := &stubSearcher{articles: stubArticles}
	eng := newTestEngine(t, search)

	// Topic and audience hints must not dilute the crisis response.
	res, err := eng.Handle(context.Background(), Request{
		Question: "I want to end my life",
		Topic:    "anxiety",
		Audience: "parents",
		Context:  &types.UserContext{Country: "UK"},
	})
	if err != nil {
		t.Fatalf("Handle: %v", err)
	}

	if res.Meta.QueryKey != "crisis" {
		t.Errorf("query key = %q, want crisis", res.Meta.QueryKey)
	}
	if res.Answer.Title != "Urgent support: you are not alone" {
		t.Errorf("title = %q", res.Answer.Title)
	}
	acts := strings.Join(res.Answer.PracticalActions, " ")
	if !strings.Contains(acts, "999") {
		t.Errorf("UK crisis actions missing emergency number: %q", acts)
	}
	// Crisis answers cite NHS guidance only.
	cov := res.Meta.Coverage
	if !cov.NHS || cov.NICE || cov.PubMed {
		t.Errorf("crisis coverage = %+v, want NHS only", cov)
	}
	if len(search.queries) != 0 {
		t.Error("crisis question reached the article searcher")
	}

	// A second identical request must produce a fresh answer, never a
	// cached one.
	again, err := eng.Handle(context.Background(), Request{Question: "I want to end my life"})
	if err != nil {
		t.Fatalf("Handle: %v", err)
	}
	if again.Meta.Cached {
		t.Error("crisis response served from cache")
	}
	if again.Answer.ID == res.Answer.ID {
		t.Error("crisis answers must have fresh IDs")
	}
}

func TestHandleTopicHintUsedWhenQuestionIsVague(t *testing.T) {
	search := &stubSearcher{}
	eng := newTestEngine(t, search)

	res, err := eng.Handle(context.Background(), Request{
		Question: "what should I do about it",
		Topic:    "dyslexia",
	})
	if err != nil {
		t.Fatalf("Handle: %v", err)
	}
	if !strings.HasPrefix(res.Answer.Title, "Dyslexia") {
		t.Errorf("title = %q, want Dyslexia prefix", res.Answer.Title)
	}
}

func TestHandleNilCacheAndEmptyResults(t *testing.T) {
	eng := New(nil, &stubSearcher{}, 5, nil)

	res, err := eng.Handle(context.Background(), Request{Question: "tips for better sleep"})
	if err != nil {
		t.Fatalf("Handle: %v", err)
	}
	if res.Meta.Cached {
		t.Error("cached without a cache")
	}
	if res.Meta.Coverage.PubMed {
		t.Error("pubmed coverage reported with no articles")
	}
	if len(res.Answer.ResearchSources) != 0 {
		t.Error("research sources present with no articles")
	}
}
