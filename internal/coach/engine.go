// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package coach assembles complete answers to wellbeing questions. It
// combines crisis screening, intent classification, the curated
// knowledge base, evidence link lookup, and live literature search
// into a single Handle call, with a TTL cache in front of the
// expensive path.
package coach

import (
	"context"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/neurobloom/coach-engine/internal/cache"
	"github.com/neurobloom/coach-engine/internal/crisis"
	"github.com/neurobloom/coach-engine/internal/intent"
	"github.com/neurobloom/coach-engine/internal/knowledge"
	"github.com/neurobloom/coach-engine/internal/pubmed"
	"github.com/neurobloom/coach-engine/pkg/types"
)

// ArticleSearcher finds research articles for a query. Implemented by
// pubmed.Client; tests substitute stubs.
type ArticleSearcher interface {
	Search(ctx context.Context, query string, max int) []types.Article
}

// Request is one question with optional steering hints. Topic and
// Audience narrow the answer when the caller already knows them;
// Context carries the situational fields gathered from the user.
type Request struct {
	Question string             `json:"question"`
	Topic    string             `json:"topic,omitempty"`
	Audience string             `json:"audience,omitempty"`
	Context  *types.UserContext `json:"context,omitempty"`
}

// Result pairs the answer with generation metadata.
type Result struct {
	Answer *types.Answer `json:"answer"`
	Meta   types.Meta    `json:"meta"`
}

// Engine runs the answer pipeline.
type Engine struct {
	cache    *cache.Store
	articles ArticleSearcher
	maxArts  int
	log      *zap.Logger
	now      func() time.Time
}

// New builds an engine around a cache store and an article searcher.
// A nil logger is replaced with a no-op one.
func New(store *cache.Store, searcher ArticleSearcher, maxArticles int, log *zap.Logger) *Engine {
	if log == nil {
		log = zap.NewNop()
	}
	if maxArticles <= 0 {
		maxArticles = 5
	}
	return &Engine{
		cache:    store,
		articles: searcher,
		maxArts:  maxArticles,
		log:      log,
		now:      time.Now,
	}
}

// Handle answers one question. Crisis questions short-circuit the
// pipeline entirely and are never cached. Everything else goes through
// classify, gather, synthesize, with the finished answer cached under
// the normalized question key.
func (e *Engine) Handle(ctx context.Context, req Request) (*Result, error) {
	if crisis.Detect(req.Question) {
		e.log.Info("crisis response issued")
		ans := crisis.Response(req.Context)
		return &Result{
			Answer: ans,
			Meta: types.Meta{
				QueryKey:    "crisis",
				Coverage:    types.CoverageOf(ans),
				GeneratedAt: e.now().UTC(),
			},
		}, nil
	}

	reqTopic := types.ParseTopic(req.Topic)
	audience := types.ParseAudience(req.Audience)

	key := cache.Key(req.Question, reqTopic, audience)
	if e.cache != nil {
		if ans, ok := e.cache.Get(ctx, key); ok {
			e.log.Debug("cache hit", zap.String("key", key))
			return &Result{
				Answer: ans,
				Meta: types.Meta{
					Cached:      true,
					QueryKey:    key,
					Coverage:    types.CoverageOf(ans),
					GeneratedAt: e.now().UTC(),
				},
			}, nil
		}
	}

	in := intent.Classify(req.Question)
	topic := in.Topic
	if topic == types.TopicNone {
		topic = reqTopic
	}

	var (
		entry    knowledge.Entry
		links    []types.EvidenceSource
		articles []types.Article
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		entry = knowledge.Lookup(topic, req.Question)
		return nil
	})
	g.Go(func() error {
		links = knowledge.Links(topic, req.Question)
		return nil
	})
	g.Go(func() error {
		query := pubmed.BuildQuery(topic, in, req.Context)
		articles = e.articles.Search(gctx, query, e.maxArts)
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	ans := synthesize(synthInput{
		question: req.Question,
		intent:   in,
		topic:    topic,
		entry:    entry,
		links:    links,
		articles: articles,
		audience: audience,
		userCtx:  req.Context,
		pages:    RelevantPages(req.Question, topic),
	})

	if e.cache != nil {
		if err := e.cache.Set(ctx, key, ans); err != nil {
			e.log.Warn("cache store failed", zap.String("key", key), zap.Error(err))
		}
	}

	return &Result{
		Answer: ans,
		Meta: types.Meta{
			QueryKey:    key,
			Coverage:    types.CoverageOf(ans),
			GeneratedAt: e.now().UTC(),
		},
	}, nil
}
