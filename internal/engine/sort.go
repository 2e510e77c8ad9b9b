package engine

import (
	"sort"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/ashford-menswear/catalog-search/internal/domain"
)

// applySort orders the filtered set in place. It is used only when no search
// term is active; search implies relevance order.
func applySort(products []domain.UnifiedProduct, sortBy string) {
	switch sortBy {
	case domain.SortPriceAsc:
		sort.SliceStable(products, func(i, j int) bool {
			return products[i].Price < products[j].Price
		})
	case domain.SortPriceDesc:
		sort.SliceStable(products, func(i, j int) bool {
			return products[i].Price > products[j].Price
		})
	case domain.SortName:
		// Locale-aware comparison; a fresh collator per call because
		// collate.Collator is not safe for concurrent use.
		c := collate.New(language.English)
		sort.SliceStable(products, func(i, j int) bool {
			return c.CompareString(products[i].Name, products[j].Name) < 0
		})
	case domain.SortTrending:
		sort.SliceStable(products, func(i, j int) bool {
			return products[i].Trending && !products[j].Trending
		})
	case domain.SortAIScore:
		sort.SliceStable(products, func(i, j int) bool {
			return products[i].AIScoreOrZero() > products[j].AIScoreOrZero()
		})
	default:
		// newest/unset: bundles first, then descending AI score. A proxy for
		// recency since legacy and bundle products carry no creation time.
		sort.SliceStable(products, func(i, j int) bool {
			iBundle := products[i].Type == domain.TypeBundle
			jBundle := products[j].Type == domain.TypeBundle
			if iBundle != jBundle {
				return iBundle
			}
			return products[i].AIScoreOrZero() > products[j].AIScoreOrZero()
		})
	}
}
