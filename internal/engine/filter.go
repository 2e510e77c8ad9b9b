package engine

import (
	"strings"

	"github.com/ashford-menswear/catalog-search/internal/domain"
)

// scoredProduct pairs a candidate with its transient relevance score. The
// pair exists only inside one Search call.
type scoredProduct struct {
	product domain.UnifiedProduct
	score   float64
}

// selectSources applies the bundle and individual source toggles, returning
// the candidate set the rest of the search operates on.
func selectSources(all []domain.UnifiedProduct, f *domain.FilterConfig) []domain.UnifiedProduct {
	if f.WantsBundles() && f.WantsIndividual() {
		return all
	}

	out := make([]domain.UnifiedProduct, 0, len(all))
	for i := range all {
		if all[i].Type == domain.TypeBundle {
			if f.WantsBundles() {
				out = append(out, all[i])
			}
			continue
		}
		if f.WantsIndividual() {
			out = append(out, all[i])
		}
	}
	return out
}

// evaluate returns the candidates satisfying every configured constraint.
// Dimensions combine with AND; within a list-valued dimension any value may
// match. Each candidate short-circuits on its first failing predicate.
func evaluate(candidates []domain.UnifiedProduct, f *domain.FilterConfig) []scoredProduct {
	term := strings.ToLower(f.Search)

	matched := make([]scoredProduct, 0, len(candidates))
	for i := range candidates {
		p := &candidates[i]

		var score float64
		if term != "" {
			if !strings.Contains(searchableText(p), term) {
				continue
			}
			score = relevanceScore(p, term)
		}

		if !matchesFilters(p, f) {
			continue
		}

		matched = append(matched, scoredProduct{product: *p, score: score})
	}
	return matched
}

// matchesFilters applies every non-search predicate in order.
func matchesFilters(p *domain.UnifiedProduct, f *domain.FilterConfig) bool {
	if len(f.Type) > 0 && !containsFold(f.Type, p.Type) {
		return false
	}

	if len(f.Category) > 0 {
		if p.Category == "" || !containsFold(f.Category, p.Category) {
			return false
		}
	}

	if len(f.BundleTier) > 0 {
		if p.Type != domain.TypeBundle || !containsFold(f.BundleTier, p.BundleTier) {
			return false
		}
	}

	if len(f.Color) > 0 && !anyContainsFold(f.Color, p.AllColors()) {
		return false
	}

	if !matchesComponentColor(f.SuitColor, componentOf(p).Suit) {
		return false
	}
	if !matchesComponentColor(f.ShirtColor, componentOf(p).Shirt) {
		return false
	}
	if !matchesComponentColor(f.TieColor, componentOf(p).Tie) {
		return false
	}

	if f.MinPrice != nil && p.Price < *f.MinPrice {
		return false
	}
	if f.MaxPrice != nil && p.Price > *f.MaxPrice {
		return false
	}

	if len(f.Occasions) > 0 && !anyContainsFold(f.Occasions, p.Occasions) {
		return false
	}

	if len(f.Material) > 0 {
		if p.Material == "" || !containsFold(f.Material, p.Material) {
			return false
		}
	}

	if len(f.Fit) > 0 && !matchesFit(p, f.Fit) {
		return false
	}

	if f.Trending && !p.Trending {
		return false
	}
	if f.OnSale && p.Savings <= 0 {
		return false
	}
	if f.NewArrivals && !p.HasTag("new") {
		return false
	}

	if f.MinAIScore != nil {
		if p.AIScore == nil || *p.AIScore < *f.MinAIScore {
			return false
		}
	}

	if len(f.Sizes) > 0 && !anyContainsFold(f.Sizes, p.Sizes) {
		return false
	}

	return true
}

// searchableText builds the case-folded haystack for free-text matching:
// name, description, category, every color (own and component), occasions,
// and tags.
func searchableText(p *domain.UnifiedProduct) string {
	var b strings.Builder
	b.WriteString(p.Name)
	b.WriteByte(' ')
	b.WriteString(p.Description)
	b.WriteByte(' ')
	b.WriteString(p.Category)
	for _, c := range p.AllColors() {
		b.WriteByte(' ')
		b.WriteString(c)
	}
	for _, o := range p.Occasions {
		b.WriteByte(' ')
		b.WriteString(o)
	}
	for _, t := range p.Tags {
		b.WriteByte(' ')
		b.WriteString(t)
	}
	return strings.ToLower(b.String())
}

// componentOf returns the product's components, or an empty value for
// individual products so callers can inspect parts without nil checks.
func componentOf(p *domain.UnifiedProduct) *domain.BundleComponents {
	if p.Components == nil {
		return &domain.BundleComponents{}
	}
	return p.Components
}

// matchesComponentColor applies a component-specific color filter: the
// product must have the component and its color must be in the wanted set.
func matchesComponentColor(wanted []string, c *domain.BundleComponent) bool {
	if len(wanted) == 0 {
		return true
	}
	return c != nil && containsFold(wanted, c.Color)
}

// matchesFit checks the product's own fit or, for bundles, the shirt's fit.
func matchesFit(p *domain.UnifiedProduct, wanted []string) bool {
	if p.Fit != "" && containsFold(wanted, p.Fit) {
		return true
	}
	if shirt := componentOf(p).Shirt; shirt != nil && shirt.Attribute != "" {
		return containsFold(wanted, shirt.Attribute)
	}
	return false
}

// containsFold reports whether list contains v, case-insensitively.
func containsFold(list []string, v string) bool {
	for _, item := range list {
		if strings.EqualFold(item, v) {
			return true
		}
	}
	return false
}

// anyContainsFold reports whether any value in vs appears in list.
func anyContainsFold(list, vs []string) bool {
	for _, v := range vs {
		if containsFold(list, v) {
			return true
		}
	}
	return false
}
