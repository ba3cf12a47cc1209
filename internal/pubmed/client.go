// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package pubmed searches the NCBI E-utilities service for peer-reviewed
// articles. A search is three sequential calls (esearch, esummary,
// efetch) sharing one rate-limit checkpoint; any failure degrades to a
// static curated fallback set rather than surfacing an error.
package pubmed

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/neurobloom/coach-engine/internal/httputil"
	"github.com/neurobloom/coach-engine/pkg/types"
)

// E-utilities endpoints. Declared as vars so tests can substitute
// httptest servers.
var (
	esearchBase  = "https://eutils.ncbi.nlm.nih.gov/entrez/eutils/esearch.fcgi"
	esummaryBase = "https://eutils.ncbi.nlm.nih.gov/entrez/eutils/esummary.fcgi"
	efetchBase   = "https://eutils.ncbi.nlm.nih.gov/entrez/eutils/efetch.fcgi"
)

// searchRetMax caps the candidate identifiers retrieved per search; the
// service returns them in its own relevance order.
const searchRetMax = 20

// Client queries the E-utilities service. The rate-limit checkpoint is
// shared across all three call types: concurrent callers serialize
// through the mutex, and the sleep happens while it is held so two
// callers can never compute the same sleep target.
type Client struct {
	client *http.Client
	cfg    types.SearchConfig
	log    *zap.Logger

	mu          sync.Mutex
	lastRequest time.Time
}

// NewClient builds a Client, filling config zero values with the
// reference defaults (10s timeout, 350ms minimum interval, roughly 3
// requests per second).
func NewClient(cfg types.SearchConfig, log *zap.Logger) *Client {
	if cfg.Timeout <= 0 {
		cfg.Timeout = 10 * time.Second
	}
	if cfg.MinInterval <= 0 {
		cfg.MinInterval = 350 * time.Millisecond
	}
	if cfg.UserAgent == "" {
		cfg.UserAgent = "coach-engine/0.1"
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &Client{client: &http.Client{}, cfg: cfg, log: log}
}

// Search runs the three-step protocol and returns up to max articles
// ranked by intervention relevance. On any network or parse failure, a
// non-2xx response, or zero results, it returns the static fallback set
// for the query instead; the caller never sees an error.
func (c *Client) Search(ctx context.Context, query string, max int) []types.Article {
	if max <= 0 {
		max = c.cfg.MaxResults
	}
	if max <= 0 {
		max = 5
	}

	articles, err := c.live(ctx, query, max)
	if err != nil {
		c.log.Warn("article search degraded to fallback",
			zap.String("query", query), zap.Error(err))
		return FallbackArticles(query, max)
	}
	if len(articles) == 0 {
		return FallbackArticles(query, max)
	}
	return articles
}

func (c *Client) live(ctx context.Context, query string, max int) ([]types.Article, error) {
	ids, err := c.esearch(ctx, query)
	if err != nil {
		return nil, err
	}
	if len(ids) == 0 {
		return nil, nil
	}

	summaries, err := c.esummary(ctx, ids)
	if err != nil {
		return nil, err
	}

	abstracts, err := c.efetch(ctx, ids)
	if err != nil {
		return nil, err
	}

	// Assemble in identifier order, which is the service's relevance
	// order; Rank then re-sorts for actionable evidence.
	articles := make([]types.Article, 0, len(ids))
	for _, id := range ids {
		a, ok := summaries[id]
		if !ok {
			continue
		}
		a.Abstract = abstracts[id]
		articles = append(articles, a)
	}
	return Rank(articles, max), nil
}

// throttle enforces the minimum inter-request interval globally across
// all three call types.
func (c *Client) throttle(ctx context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.lastRequest.IsZero() {
		if wait := c.cfg.MinInterval - time.Since(c.lastRequest); wait > 0 {
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-time.After(wait):
			}
		}
	}
	c.lastRequest = time.Now()
	return nil
}

// get performs one rate-limited, time-bounded call and returns the body.
func (c *Client) get(ctx context.Context, base string, params url.Values) ([]byte, error) {
	if err := c.throttle(ctx); err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(ctx, c.cfg.Timeout)
	defer cancel()

	if c.cfg.NCBIAPIKey != "" {
		params.Set("api_key", c.cfg.NCBIAPIKey)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, base+"?"+params.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("User-Agent", c.cfg.UserAgent)

	resp, err := httputil.DoWithRetry(ctx, c.client, req, 2)
	if err != nil {
		return nil, fmt.Errorf("E-utilities request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("E-utilities returned HTTP %d", resp.StatusCode)
	}
	return io.ReadAll(resp.Body)
}

// esearch submits the query and returns up to searchRetMax candidate
// identifiers in the service's relevance order.
func (c *Client) esearch(ctx context.Context, query string) ([]string, error) {
	body, err := c.get(ctx, esearchBase, url.Values{
		"db":      {"pubmed"},
		"term":    {query},
		"retmax":  {strconv.Itoa(searchRetMax)},
		"retmode": {"json"},
		"sort":    {"relevance"},
	})
	if err != nil {
		return nil, err
	}

	var sr esearchResponse
	if err := json.Unmarshal(body, &sr); err != nil {
		return nil, fmt.Errorf("parsing esearch response: %w", err)
	}
	c.log.Debug("esearch completed",
		zap.String("matches", sr.Result.Count),
		zap.Int("returned", len(sr.Result.IDList)))
	return sr.Result.IDList, nil
}

// esummary batch-fetches structured metadata for all candidate
// identifiers in one call.
func (c *Client) esummary(ctx context.Context, ids []string) (map[string]types.Article, error) {
	body, err := c.get(ctx, esummaryBase, url.Values{
		"db":      {"pubmed"},
		"id":      {strings.Join(ids, ",")},
		"retmode": {"json"},
	})
	if err != nil {
		return nil, err
	}

	var er esummaryResponse
	if err := json.Unmarshal(body, &er); err != nil {
		return nil, fmt.Errorf("parsing esummary response: %w", err)
	}

	articles := make(map[string]types.Article, len(ids))
	for id, raw := range er.Result {
		if id == "uids" {
			continue
		}
		var rec esummaryRecord
		if err := json.Unmarshal(raw, &rec); err != nil {
			// One malformed record must not abort the batch.
			continue
		}
		a := types.Article{
			PMID:    id,
			Title:   rec.Title,
			Journal: rec.FullJournalName,
			Year:    yearOf(rec.PubDate),
			URL:     articleURL(id),
		}
		if a.Journal == "" {
			a.Journal = rec.Source
		}
		for _, au := range rec.Authors {
			a.Authors = append(a.Authors, au.Name)
		}
		articles[id] = a
	}
	return articles, nil
}

// efetch batch-fetches full-record XML for abstract extraction.
func (c *Client) efetch(ctx context.Context, ids []string) (map[string]string, error) {
	body, err := c.get(ctx, efetchBase, url.Values{
		"db":      {"pubmed"},
		"id":      {strings.Join(ids, ",")},
		"retmode": {"xml"},
		"rettype": {"abstract"},
	})
	if err != nil {
		return nil, err
	}
	return ParseAbstracts(body), nil
}

func articleURL(pmid string) string {
	return "https://pubmed.ncbi.nlm.nih.gov/" + pmid + "/"
}

// yearOf extracts the leading year from a pubdate like "2021 Mar 15".
func yearOf(pubdate string) int {
	fields := strings.Fields(pubdate)
	if len(fields) == 0 {
		return 0
	}
	y, err := strconv.Atoi(fields[0])
	if err != nil {
		return 0
	}
	return y
}

// E-utilities JSON structures.
type esearchResponse struct {
	Result esearchResult `json:"esearchresult"`
}

type esearchResult struct {
	Count  string   `json:"count"`
	IDList []string `json:"idlist"`
}

type esummaryResponse struct {
	Result map[string]json.RawMessage `json:"result"`
}

type esummaryRecord struct {
	Title           string            `json:"title"`
	FullJournalName string            `json:"fulljournalname"`
	Source          string            `json:"source"`
	PubDate         string            `json:"pubdate"`
	Authors         []esummaryAuthor  `json:"authors"`
}

type esummaryAuthor struct {
	Name string `json:"name"`
}
