package engine

import (
	"strings"

	"github.com/ashford-menswear/catalog-search/internal/domain"
)

// buildFacets tallies the filtered (pre-pagination) set for UI refinement
// controls. A product contributes at most once per distinct value on each
// dimension; bundle-component colors count alongside the product's own color.
func buildFacets(filtered []domain.UnifiedProduct) domain.Facets {
	facets := domain.Facets{
		Categories:  make(map[string]int),
		Colors:      make(map[string]int),
		Occasions:   make(map[string]int),
		Sizes:       make(map[string]int),
		Materials:   make(map[string]int),
		BundleTiers: make(map[string]domain.TierFacet),
	}

	bucketCounts := make([]int, len(domain.PriceBuckets))

	for i := range filtered {
		p := &filtered[i]

		if p.Category != "" {
			facets.Categories[p.Category]++
		}

		seen := make(map[string]bool)
		for _, c := range p.AllColors() {
			lower := strings.ToLower(c)
			if !seen[lower] {
				seen[lower] = true
				facets.Colors[lower]++
			}
		}

		for _, o := range p.Occasions {
			facets.Occasions[o]++
		}

		for _, s := range p.Sizes {
			facets.Sizes[s]++
		}

		if p.Material != "" {
			facets.Materials[p.Material]++
		}

		if p.Type == domain.TypeBundle && p.BundleTier != "" {
			tf := facets.BundleTiers[p.BundleTier]
			tf.Count++
			tf.Price = domain.TierPrices[p.BundleTier]
			facets.BundleTiers[p.BundleTier] = tf
		}

		for bi, bucket := range domain.PriceBuckets {
			if p.Price >= bucket.Min && (bucket.Max == 0 || p.Price < bucket.Max) {
				bucketCounts[bi]++
				break
			}
		}
	}

	// Empty buckets are omitted from the output.
	for bi, count := range bucketCounts {
		if count > 0 {
			facets.PriceRanges = append(facets.PriceRanges, domain.PriceRangeFacet{
				PriceBucket: domain.PriceBuckets[bi],
				Count:       count,
			})
		}
	}

	return facets
}
