// Package service orchestrates candidate assembly, the search engine, the
// response cache, and analytics for catalog searches.
package service

import (
	"context"
	"log/slog"
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	apperrors "github.com/ashford-menswear/catalog-search/pkg/errors"

	"github.com/ashford-menswear/catalog-search/internal/cache"
	"github.com/ashford-menswear/catalog-search/internal/catalog"
	"github.com/ashford-menswear/catalog-search/internal/domain"
	"github.com/ashford-menswear/catalog-search/internal/engine"
	"github.com/ashford-menswear/catalog-search/internal/event"
	"github.com/ashford-menswear/catalog-search/internal/repository"
)

var (
	searchesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "catalog_searches_total",
			Help: "Total number of catalog searches",
		},
		[]string{"cache_hit", "zero_results"},
	)

	searchCandidates = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "catalog_search_candidates",
			Help:    "Candidate set size per search",
			Buckets: []float64{10, 50, 100, 500, 1000, 5000},
		},
	)
)

// SearchService implements the business logic for catalog search.
type SearchService struct {
	engine *engine.Engine
	repo   repository.ProductRepository
	cache  *cache.ResultCache
	events event.Publisher
	logger *slog.Logger
}

// NewSearchService creates a new search service. The cache and the event
// publisher are optional; pass nil to disable them.
func NewSearchService(eng *engine.Engine, repo repository.ProductRepository, resultCache *cache.ResultCache, events event.Publisher, logger *slog.Logger) *SearchService {
	return &SearchService{
		engine: eng,
		repo:   repo,
		cache:  resultCache,
		events: events,
		logger: logger,
	}
}

// Search runs one catalog search: cache lookup, candidate assembly from
// every source, engine computation, cache fill, and analytics.
func (s *SearchService) Search(ctx context.Context, f *domain.FilterConfig) (*domain.SearchResult, error) {
	if f.SortBy != "" && !domain.IsValidSort(f.SortBy) {
		return nil, apperrors.InvalidInput("invalid sort option: " + f.SortBy)
	}

	// Normalize up front so the cache key and the engine see the same
	// configuration.
	f.Normalize()

	if s.cache != nil {
		cached, err := s.cache.Get(ctx, f)
		if err != nil {
			s.logger.WarnContext(ctx, "result cache read failed",
				slog.String("error", err.Error()),
			)
		}
		if cached != nil {
			searchesTotal.WithLabelValues("true", strconv.FormatBool(cached.FilteredCount == 0)).Inc()
			s.publishAnalytics(ctx, f, cached, true)
			return cached, nil
		}
	}

	candidates := s.assembleCandidates(ctx)
	searchCandidates.Observe(float64(len(candidates)))

	result := s.engine.Search(candidates, f)
	searchesTotal.WithLabelValues("false", strconv.FormatBool(result.FilteredCount == 0)).Inc()

	if s.cache != nil {
		if err := s.cache.Set(ctx, f, result); err != nil {
			s.logger.WarnContext(ctx, "result cache write failed",
				slog.String("error", err.Error()),
			)
		}
	}

	s.publishAnalytics(ctx, f, result, false)

	s.logger.DebugContext(ctx, "search executed",
		slog.String("query", f.Search),
		slog.Int("total", result.TotalCount),
		slog.Int("filtered", result.FilteredCount),
		slog.Int64("took_ms", result.TookMs),
	)

	return result, nil
}

// assembleCandidates maps every source into the unified representation; the
// engine applies the bundle and individual toggles. A repository failure
// degrades that source to empty rather than failing the whole search.
func (s *SearchService) assembleCandidates(ctx context.Context) []domain.UnifiedProduct {
	var candidates []domain.UnifiedProduct

	for _, item := range catalog.CoreCatalog() {
		candidates = append(candidates, catalog.NormalizeCore(item))
	}

	rows, err := s.repo.ListActive(ctx)
	if err != nil {
		s.logger.ErrorContext(ctx, "product rows unavailable, continuing without them",
			slog.String("error", err.Error()),
		)
	}
	for _, row := range rows {
		candidates = append(candidates, catalog.NormalizeRow(row))
	}

	for _, b := range catalog.BundleCatalog() {
		candidates = append(candidates, catalog.NormalizeBundle(b))
	}

	return candidates
}

// publishAnalytics emits search analytics. Failures are logged, never
// surfaced; analytics must not break a search.
func (s *SearchService) publishAnalytics(ctx context.Context, f *domain.FilterConfig, result *domain.SearchResult, cacheHit bool) {
	if s.events == nil {
		return
	}

	if err := s.events.PublishSearchPerformed(ctx, f, result, cacheHit); err != nil {
		s.logger.WarnContext(ctx, "search.performed publish failed",
			slog.String("error", err.Error()),
		)
	}

	if result.FilteredCount == 0 {
		if err := s.events.PublishSearchNoResults(ctx, f, result); err != nil {
			s.logger.WarnContext(ctx, "search.no_results publish failed",
				slog.String("error", err.Error()),
			)
		}
	}
}
