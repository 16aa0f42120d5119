// Package engine orchestrates a full discovery run: fan-out, normalization,
// scoring, enrichment, categorization, ranking, and caching.
package engine

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"

	"github.com/jonathan/opportunity-scout/internal/aggregate"
	"github.com/jonathan/opportunity-scout/internal/cache"
	"github.com/jonathan/opportunity-scout/internal/config"
	"github.com/jonathan/opportunity-scout/internal/popularity"
	"github.com/jonathan/opportunity-scout/internal/providers"
	"github.com/jonathan/opportunity-scout/internal/ranking"
	"github.com/jonathan/opportunity-scout/internal/scoring"
	"github.com/jonathan/opportunity-scout/internal/skillgap"
	"github.com/jonathan/opportunity-scout/internal/stories"
	"github.com/jonathan/opportunity-scout/internal/types"
)

// Engine runs discovery requests end to end. Construct with New and share
// freely: Discover is safe for concurrent use.
type Engine struct {
	cfg         *config.Config
	registry    *providers.Registry
	scorer      *scoring.Scorer
	categorizer *ranking.Categorizer
	store       cache.Store
	resolver    *skillgap.Resolver
	engagement  popularity.EngagementSource
	stories     *stories.Pool

	// ownedStore is set when the engine created its own memory store and
	// is responsible for its retention sweeper.
	ownedStore *cache.MemoryStore
	now        func() time.Time
}

// Option configures an Engine beyond its required collaborators.
type Option func(*Engine)

// WithStore replaces the default in-memory result cache.
func WithStore(store cache.Store) Option {
	return func(e *Engine) { e.store = store }
}

// WithEngagement replaces the default neutral engagement source.
func WithEngagement(src popularity.EngagementSource) Option {
	return func(e *Engine) { e.engagement = src }
}

// WithStories replaces the default success-story pool.
func WithStories(pool *stories.Pool) Option {
	return func(e *Engine) { e.stories = pool }
}

// WithClock replaces the wall clock, for tests.
func WithClock(now func() time.Time) Option {
	return func(e *Engine) { e.now = now }
}

// New creates an Engine over a provider registry. When no store option is
// given the engine creates an in-memory store and starts its retention
// sweeper; call Close to stop it.
func New(cfg *config.Config, registry *providers.Registry, opts ...Option) *Engine {
	e := &Engine{
		cfg:         cfg,
		registry:    registry,
		scorer:      scoring.NewScorer(cfg.Scoring),
		categorizer: ranking.NewCategorizer(cfg.Scoring),
		resolver:    skillgap.NewResolver(cfg.SkillGap),
		engagement:  popularity.NewStaticSource(nil),
		stories:     stories.NewPool(),
		now:         time.Now,
	}
	for _, opt := range opts {
		opt(e)
	}
	if e.store == nil {
		store := cache.NewMemoryStore(cache.MemoryConfig{TTL: cfg.Cache.TTL, Retention: cfg.Cache.Retention, SweepSpec: cfg.Cache.SweepSpec})
		if err := store.StartSweeper(); err != nil {
			log.Printf("[engine] retention sweeper disabled: %v", err)
		}
		e.store = store
		e.ownedStore = store
	}
	return e
}

// Close stops background work owned by the engine.
func (e *Engine) Close() {
	if e.ownedStore != nil {
		e.ownedStore.StopSweeper()
	}
}

// Discover runs one discovery request. Provider failures silently reduce
// coverage; failures in the engine's own stages return an error.
func (e *Engine) Discover(ctx context.Context, input *types.DiscoveryInput) (*types.DiscoveryResult, error) {
	if err := input.Validate(); err != nil {
		return nil, fmt.Errorf("invalid discovery input: %w", err)
	}

	start := e.now()
	key := cache.Key(input)
	if cached, ok := e.store.Get(ctx, key); ok {
		log.Printf("[engine] cache hit for %s", key)
		out := *cached
		out.Metrics.CacheHit = true
		out.Metrics.ProcessingTime = e.now().Sub(start)
		return &out, nil
	}

	fetched := aggregate.Fetch(ctx, e.registry.Enabled(), input)

	enriched := make([]types.EnrichedOpportunity, 0, len(fetched.Opportunities))
	for i := range fetched.Opportunities {
		raw := fetched.Opportunities[i]
		raw.Normalize()

		id := providers.OpportunityID(raw.Source, raw.Title)
		engagement := float64(e.engagement.Score(ctx, id))
		scored := e.scorer.Score(&raw, input, engagement)
		if scored.Score < e.cfg.Scoring.MatchThreshold {
			continue
		}

		opp := types.EnrichedOpportunity{
			RawOpportunity:     raw,
			ID:                 id,
			MatchScore:         scored.Score,
			SkillMatch:         scored.SkillMatch,
			TimeToFirstRevenue: scoring.EstimateTimeToFirstRevenue(&raw),
			SuccessStories:     e.stories.For(raw.Type),
			SkillGap:           e.resolver.Resolve(scored.SkillMatch.Missing),
		}
		opp.Category = e.categorizer.Assign(&opp, input)
		enriched = append(enriched, opp)
	}

	ranking.Sort(enriched, e.cfg.Scoring.NoiseWindow)

	result := &types.DiscoveryResult{
		RequestID:     uuid.NewString(),
		GeneratedAt:   e.now().UTC(),
		Input:         *input,
		Opportunities: enriched,
		Categories:    ranking.Index(enriched),
		Metrics: types.Metrics{
			SourcesSearched: fetched.SourcesSearched,
			TotalFound:      len(fetched.Opportunities),
			MatchThreshold:  e.cfg.Scoring.MatchThreshold,
			ProcessingTime:  e.now().Sub(start),
		},
	}

	e.store.Set(ctx, key, result)
	return result, nil
}
