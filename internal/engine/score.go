package engine

import (
	"strings"

	"github.com/ashford-menswear/catalog-search/internal/domain"
)

// Relevance weights. The absolute values matter less than the ordering they
// induce: an exact name match must always outrank a bare substring hit.
const (
	weightNameExact     = 10
	weightNameSubstring = 5
	weightColorExact    = 4
	weightCategory      = 3
	weightColorPartial  = 2
	weightTag           = 2
	weightOccasion      = 2
	weightDescription   = 1
	weightTrending      = 0.5
	weightAIScoreFactor = 0.1
)

// relevanceScore computes the weighted additive score of a product for the
// given lowercased search term. Only called for products that already passed
// the substring match.
func relevanceScore(p *domain.UnifiedProduct, term string) float64 {
	var score float64

	name := strings.ToLower(p.Name)
	switch {
	case name == term:
		score += weightNameExact
	case strings.Contains(name, term):
		score += weightNameSubstring
	}

	if p.Category != "" && strings.Contains(strings.ToLower(p.Category), term) {
		score += weightCategory
	}

	// Colors score once at the best matching strength.
	bestColor := 0.0
	for _, c := range p.AllColors() {
		lower := strings.ToLower(c)
		if lower == term {
			bestColor = weightColorExact
			break
		}
		if strings.Contains(lower, term) && bestColor < weightColorPartial {
			bestColor = weightColorPartial
		}
	}
	score += bestColor

	if strings.Contains(strings.ToLower(p.Description), term) {
		score += weightDescription
	}

	for _, tag := range p.Tags {
		if strings.Contains(strings.ToLower(tag), term) {
			score += weightTag
			break
		}
	}

	for _, occ := range p.Occasions {
		if strings.Contains(strings.ToLower(occ), term) {
			score += weightOccasion
			break
		}
	}

	if p.Trending {
		score += weightTrending
	}

	if p.AIScore != nil {
		score += *p.AIScore * weightAIScoreFactor
	}

	return score
}
