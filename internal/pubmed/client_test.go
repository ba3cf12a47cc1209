// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package pubmed

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"go.uber.org/zap"

	"github.com/neurobloom/coach-engine/pkg/types"
)

const sampleEsearch = `{"esearchresult":{"count":"2","idlist":["1001","1002"]}}`

const sampleEsummary = `{"result":{
	"uids":["1001","1002"],
	"1001":{"title":"CBT intervention outcomes in adolescents","fulljournalname":"Journal of Testing","source":"J Test","pubdate":"2021 Mar 15","authors":[{"name":"Smith J"},{"name":"Jones K"}]},
	"1002":{"title":"Genetic biomarker mechanisms","fulljournalname":"Genetics Weekly","source":"Genet Wkly","pubdate":"2019 Jan","authors":[{"name":"Doe A"}]}
}}`

const sampleEfetch = `<?xml version="1.0"?>
<PubmedArticleSet>
  <PubmedArticle>
    <PMID Version="1">1001</PMID>
    <Abstract>
      <AbstractText Label="BACKGROUND">Therapy and support improve outcomes.</AbstractText>
      <AbstractText Label="CONCLUSIONS">A systematic review confirms treatment effectiveness.</AbstractText>
    </Abstract>
  </PubmedArticle>
  <PubmedArticle>
    <PMID Version="1">1002</PMID>
    <Abstract>
      <AbstractText>Pathophysiology and genetic mechanism findings in a mouse model.</AbstractText>
    </Abstract>
  </PubmedArticle>
</PubmedArticleSet>`

// newTestClient points the endpoint vars at a routing test server and
// returns a client with a short rate-limit interval. The caller must
// invoke the returned cleanup.
func newTestClient(t *testing.T, handler http.HandlerFunc, interval time.Duration) (*Client, func()) {
	t.Helper()
	ts := httptest.NewServer(handler)

	oldSearch, oldSummary, oldFetch := esearchBase, esummaryBase, efetchBase
	esearchBase = ts.URL + "/esearch"
	esummaryBase = ts.URL + "/esummary"
	efetchBase = ts.URL + "/efetch"

	c := NewClient(types.SearchConfig{
		HTTPConfig:  types.HTTPConfig{Timeout: 5 * time.Second, UserAgent: "coach-engine/test"},
		MinInterval: interval,
	}, zap.NewNop())
	c.client = ts.Client()

	return c, func() {
		esearchBase, esummaryBase, efetchBase = oldSearch, oldSummary, oldFetch
		ts.Close()
	}
}

func routeSamples(w http.ResponseWriter, r *http.Request) {
	switch r.URL.Path {
	case "/esearch":
		fmt.Fprint(w, sampleEsearch)
	case "/esummary":
		fmt.Fprint(w, sampleEsummary)
	case "/efetch":
		fmt.Fprint(w, sampleEfetch)
	default:
		http.NotFound(w, r)
	}
}

func TestSearchLiveProtocol(t *testing.T) {
	c, cleanup := newTestClient(t, routeSamples, time.Millisecond)
	defer cleanup()

	articles := c.Search(context.Background(), "adhd intervention", 5)
	if len(articles) != 2 {
		t.Fatalf("got %d articles, want 2", len(articles))
	}

	// The intervention-heavy article outranks the etiology one.
	first := articles[0]
	if first.PMID != "1001" {
		t.Errorf("top article PMID = %s, want 1001", first.PMID)
	}
	if first.Title != "CBT intervention outcomes in adolescents" {
		t.Errorf("title = %q", first.Title)
	}
	if first.Journal != "Journal of Testing" {
		t.Errorf("journal = %q", first.Journal)
	}
	if first.Year != 2021 {
		t.Errorf("year = %d, want 2021", first.Year)
	}
	if len(first.Authors) != 2 || first.Authors[0] != "Smith J" {
		t.Errorf("authors = %v", first.Authors)
	}
	if first.URL != "https://pubmed.ncbi.nlm.nih.gov/1001/" {
		t.Errorf("url = %q", first.URL)
	}
	if first.Abstract == "" {
		t.Error("abstract not extracted")
	}
}

func TestSearchRateLimitSpacing(t *testing.T) {
	const interval = 40 * time.Millisecond

	var mu sync.Mutex
	var stamps []time.Time
	c, cleanup := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		mu.Lock()
		stamps = append(stamps, time.Now())
		mu.Unlock()
		routeSamples(w, r)
	}, interval)
	defer cleanup()

	c.Search(context.Background(), "adhd", 5)

	mu.Lock()
	defer mu.Unlock()
	if len(stamps) != 3 {
		t.Fatalf("got %d outbound calls, want 3", len(stamps))
	}
	for i := 1; i < len(stamps); i++ {
		gap := stamps[i].Sub(stamps[i-1])
		// Allow a small scheduling tolerance below the configured floor.
		if gap < interval-5*time.Millisecond {
			t.Errorf("gap between call %d and %d = %v, want >= %v", i-1, i, gap, interval)
		}
	}
}

func TestSearchFallbackOnServerError(t *testing.T) {
	c, cleanup := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}, time.Millisecond)
	defer cleanup()

	articles := c.Search(context.Background(), "breathing exercises for stress", 5)
	if len(articles) == 0 {
		t.Fatal("fallback must return a non-empty article set")
	}
	for _, a := range articles {
		if a.PMID == "" || a.Title == "" || a.URL == "" || a.Year == 0 {
			t.Errorf("fallback article missing fields: %+v", a)
		}
	}
}

func TestSearchFallbackOnEmptyResult(t *testing.T) {
	c, cleanup := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"esearchresult":{"count":"0","idlist":[]}}`)
	}, time.Millisecond)
	defer cleanup()

	articles := c.Search(context.Background(), "adhd", 2)
	if len(articles) == 0 {
		t.Fatal("empty live result must fall back to curated articles")
	}
	if len(articles) > 2 {
		t.Errorf("got %d articles, want <= 2", len(articles))
	}
}

func TestSearchFallbackOnMalformedJSON(t *testing.T) {
	c, cleanup := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"esearchresult": not json`)
	}, time.Millisecond)
	defer cleanup()

	if articles := c.Search(context.Background(), "sleep", 5); len(articles) == 0 {
		t.Fatal("malformed response must fall back, not fail")
	}
}

func TestFallbackArticlesMatching(t *testing.T) {
	tests := []struct {
		name  string
		query string
		pmid  string
	}{
		{"breathing topic", "slow breathing and stress", "31436595"},
		{"adhd topic", "ADHD classroom strategies", "29802231"},
		{"no match uses general set", "completely unrelated query", "28942748"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			articles := FallbackArticles(tt.query, 5)
			if len(articles) == 0 {
				t.Fatal("fallback set empty")
			}
			if articles[0].PMID != tt.pmid {
				t.Errorf("first fallback PMID = %s, want %s", articles[0].PMID, tt.pmid)
			}
		})
	}
}
