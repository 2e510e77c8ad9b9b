package engine

import (
	"sort"
	"strings"

	"github.com/ashford-menswear/catalog-search/internal/domain"
)

// Result sets larger than this trigger refinement recommendations.
const largeResultThreshold = 20

// refinementPriceCeiling is the max-price hint offered when expensive items
// dominate an unconstrained result set.
const refinementPriceCeiling = 500.0

// misspellings is the fixed correction dictionary. First matching entry wins;
// the replacement is a single substring substitution.
var misspellings = []struct{ wrong, right string }{
	{"suite", "suit"},
	{"grey", "gray"},
	{"weding", "wedding"},
	{"tuxido", "tuxedo"},
	{"shrit", "shirt"},
	{"blazzer", "blazer"},
}

// Curated related-search lists per query theme.
var (
	weddingSearches  = []string{"wedding suits", "wedding guest attire", "groomsmen bundles"}
	promSearches     = []string{"prom tuxedos", "prom bundles", "bow ties"}
	businessSearches = []string{"business suits", "navy suits", "dress shirts"}
	genericSearches  = []string{"all products", "new arrivals", "best sellers"}
)

// buildSuggestions produces advisory hints. Zero-result queries get a
// "did you mean" plus related searches (or filter-relaxation advice when
// filters rather than search emptied the set); large result sets get
// refinement recommendations. The first argument is the full pre-toggle
// product set, so refinements can point at sources the caller excluded.
// Returns nil when there is nothing to say.
func buildSuggestions(all, filtered []domain.UnifiedProduct, f *domain.FilterConfig) *domain.Suggestions {
	var s domain.Suggestions

	if len(filtered) == 0 {
		if f.Search != "" {
			s.DidYouMean = didYouMean(f.Search)
			s.RelatedSearches = relatedSearches(f.Search)
		} else {
			s.RelaxFilters = relaxHints(f)
			s.RelatedSearches = genericSearches
		}
	}

	if len(filtered) > largeResultThreshold {
		s.Refinements = refinements(all, filtered, f)
	}

	if s.DidYouMean == "" && len(s.RelatedSearches) == 0 && len(s.RelaxFilters) == 0 && s.Refinements == nil {
		return nil
	}
	return &s
}

// didYouMean corrects a zero-result search term: dictionary replacement on
// the first matching entry, otherwise a plural toggle.
func didYouMean(term string) string {
	lower := strings.ToLower(term)

	for _, m := range misspellings {
		if strings.Contains(lower, m.wrong) {
			return strings.Replace(lower, m.wrong, m.right, 1)
		}
	}

	if strings.HasSuffix(lower, "s") {
		return strings.TrimSuffix(lower, "s")
	}
	return lower + "s"
}

// relatedSearches returns the curated list for the query's theme.
func relatedSearches(term string) []string {
	lower := strings.ToLower(term)
	switch {
	case strings.Contains(lower, "wedding"):
		return weddingSearches
	case strings.Contains(lower, "prom"):
		return promSearches
	case strings.Contains(lower, "business"), strings.Contains(lower, "work"):
		return businessSearches
	default:
		return genericSearches
	}
}

// relaxHints lists the set filters whose removal is most likely to bring
// results back.
func relaxHints(f *domain.FilterConfig) []string {
	var hints []string
	if len(f.Category) > 0 {
		hints = append(hints, "clear category filter")
	}
	if len(f.Color) > 0 {
		hints = append(hints, "clear color filter")
	}
	if len(f.Occasions) > 0 {
		hints = append(hints, "clear occasion filter")
	}
	return hints
}

// refinements recommends narrowing filters for a large result set.
func refinements(all, filtered []domain.UnifiedProduct, f *domain.FilterConfig) *domain.Refinements {
	var r domain.Refinements
	any := false

	if f.MaxPrice == nil {
		for i := range filtered {
			if filtered[i].Price > refinementPriceCeiling {
				ceiling := refinementPriceCeiling
				r.MaxPrice = &ceiling
				any = true
				break
			}
		}
	}

	if !f.WantsBundles() {
		for i := range all {
			if all[i].Type == domain.TypeBundle {
				r.IncludeBundles = true
				any = true
				break
			}
		}
	}

	if len(f.Color) == 0 {
		if color := dominantColor(filtered); color != "" {
			r.Color = color
			any = true
		}
	}

	if !any {
		return nil
	}
	return &r
}

// dominantColor returns the single most frequent color when the filtered set
// spans more than five distinct colors. Ties break lexicographically so the
// hint is deterministic.
func dominantColor(filtered []domain.UnifiedProduct) string {
	counts := make(map[string]int)
	for i := range filtered {
		seen := make(map[string]bool)
		for _, c := range filtered[i].AllColors() {
			lower := strings.ToLower(c)
			if !seen[lower] {
				seen[lower] = true
				counts[lower]++
			}
		}
	}

	if len(counts) <= 5 {
		return ""
	}

	colors := make([]string, 0, len(counts))
	for c := range counts {
		colors = append(colors, c)
	}
	sort.Slice(colors, func(i, j int) bool {
		if counts[colors[i]] != counts[colors[j]] {
			return counts[colors[i]] > counts[colors[j]]
		}
		return colors[i] < colors[j]
	})

	return colors[0]
}
