// Package event publishes search analytics events to Kafka.
package event

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/ashford-menswear/catalog-search/internal/domain"
	pkgkafka "github.com/ashford-menswear/catalog-search/pkg/kafka"
)

// Kafka topic constants for search analytics events.
const (
	TopicSearchPerformed = "catalog.search.performed"
	TopicSearchNoResults = "catalog.search.no_results"
)

// Aggregate type constant.
const AggregateTypeSearch = "search"

// Source identifier for events originating from this service.
const SourceCatalogSearch = "catalog-search"

// SearchPerformedData is the payload for a search.performed event.
type SearchPerformedData struct {
	Query         string   `json:"query,omitempty"`
	Categories    []string `json:"categories,omitempty"`
	Colors        []string `json:"colors,omitempty"`
	SortBy        string   `json:"sort_by,omitempty"`
	Page          int      `json:"page"`
	FilteredCount int      `json:"filtered_count"`
	TotalCount    int      `json:"total_count"`
	CacheHit      bool     `json:"cache_hit"`
	TookMs        int64    `json:"took_ms"`
}

// SearchNoResultsData is the payload for a search.no_results event.
type SearchNoResultsData struct {
	Query      string   `json:"query,omitempty"`
	Categories []string `json:"categories,omitempty"`
	Colors     []string `json:"colors,omitempty"`
	DidYouMean string   `json:"did_you_mean,omitempty"`
}

// Publisher is the analytics sink the service layer depends on.
type Publisher interface {
	PublishSearchPerformed(ctx context.Context, f *domain.FilterConfig, result *domain.SearchResult, cacheHit bool) error
	PublishSearchNoResults(ctx context.Context, f *domain.FilterConfig, result *domain.SearchResult) error
}

// Producer publishes search analytics events to Kafka.
type Producer struct {
	kafka  *pkgkafka.Producer
	logger *slog.Logger
}

// NewProducer creates a new analytics event producer.
func NewProducer(kafka *pkgkafka.Producer, logger *slog.Logger) *Producer {
	return &Producer{
		kafka:  kafka,
		logger: logger,
	}
}

// PublishSearchPerformed publishes a search.performed event. The aggregate is
// keyed by the canonical filter serialization so repeated identical queries
// land on the same partition.
func (p *Producer) PublishSearchPerformed(ctx context.Context, f *domain.FilterConfig, result *domain.SearchResult, cacheHit bool) error {
	data := SearchPerformedData{
		Query:         f.Search,
		Categories:    f.Category,
		Colors:        f.Color,
		SortBy:        f.SortBy,
		Page:          f.Page,
		FilteredCount: result.FilteredCount,
		TotalCount:    result.TotalCount,
		CacheHit:      cacheHit,
		TookMs:        result.TookMs,
	}

	event, err := pkgkafka.NewEvent(TopicSearchPerformed, f.CacheKey(), AggregateTypeSearch, SourceCatalogSearch, data)
	if err != nil {
		return fmt.Errorf("create search.performed event: %w", err)
	}

	if err := p.kafka.Publish(ctx, TopicSearchPerformed, event); err != nil {
		return fmt.Errorf("publish search.performed event: %w", err)
	}

	p.logger.DebugContext(ctx, "published search.performed event",
		slog.String("query", f.Search),
		slog.Int("filtered_count", result.FilteredCount),
		slog.Bool("cache_hit", cacheHit),
	)

	return nil
}

// PublishSearchNoResults publishes a search.no_results event, including the
// correction the suggestion layer offered, if any.
func (p *Producer) PublishSearchNoResults(ctx context.Context, f *domain.FilterConfig, result *domain.SearchResult) error {
	data := SearchNoResultsData{
		Query:      f.Search,
		Categories: f.Category,
		Colors:     f.Color,
	}
	if result.Suggestions != nil {
		data.DidYouMean = result.Suggestions.DidYouMean
	}

	event, err := pkgkafka.NewEvent(TopicSearchNoResults, f.CacheKey(), AggregateTypeSearch, SourceCatalogSearch, data)
	if err != nil {
		return fmt.Errorf("create search.no_results event: %w", err)
	}

	if err := p.kafka.Publish(ctx, TopicSearchNoResults, event); err != nil {
		return fmt.Errorf("publish search.no_results event: %w", err)
	}

	p.logger.DebugContext(ctx, "published search.no_results event",
		slog.String("query", f.Search),
	)

	return nil
}
