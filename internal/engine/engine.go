// Package engine implements the unified product search computation: filter
// evaluation, relevance scoring, sorting, facet aggregation, pagination, and
// zero-result suggestions. The engine is pure and stateless; every call
// operates on a candidate list assembled fresh by the caller.
package engine

import (
	"sort"
	"time"

	"github.com/ashford-menswear/catalog-search/internal/domain"
)

// Engine runs searches over in-memory candidate sets. It holds no mutable
// state and is safe for concurrent use.
type Engine struct{}

// New creates a search engine.
func New() *Engine {
	return &Engine{}
}

// Search filters, ranks, sorts, and paginates the combined product set
// according to the filter configuration, returning the full result envelope
// (page of products, counts, facets, suggestions, pagination). The bundle and
// individual source toggles are applied here, so callers always pass every
// source; suggestions still see the full set, letting them recommend
// re-including a source the caller toggled off.
func (e *Engine) Search(all []domain.UnifiedProduct, f *domain.FilterConfig) *domain.SearchResult {
	start := time.Now()

	f.Normalize()

	candidates := selectSources(all, f)

	matched := evaluate(candidates, f)

	// Search results are ordered by relevance. The score lives in a parallel
	// structure and never leaks into the returned products; ties break by
	// product ID so identical queries always return identical order.
	if f.Search != "" {
		sort.SliceStable(matched, func(i, j int) bool {
			if matched[i].score != matched[j].score {
				return matched[i].score > matched[j].score
			}
			return matched[i].product.ID < matched[j].product.ID
		})
	}

	filtered := make([]domain.UnifiedProduct, len(matched))
	for i, m := range matched {
		filtered[i] = m.product
	}

	if f.Search == "" {
		applySort(filtered, f.SortBy)
	}

	facets := buildFacets(filtered)

	page, pagination := paginate(filtered, f.Page, f.Limit)

	suggestions := buildSuggestions(all, filtered, f)

	return &domain.SearchResult{
		Products:       page,
		TotalCount:     len(candidates),
		FilteredCount:  len(filtered),
		Facets:         facets,
		AppliedFilters: *f,
		Suggestions:    suggestions,
		Pagination:     pagination,
		TookMs:         time.Since(start).Milliseconds(),
	}
}
