package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ashford-menswear/catalog-search/internal/domain"
)

func TestBuildFacets_SeedCatalog(t *testing.T) {
	facets := buildFacets(seedCandidates(t))

	assert.Equal(t, 3, facets.Categories["suits"])
	assert.Equal(t, 2, facets.Categories["shirts"])
	assert.Equal(t, 6, facets.Categories["bundles"])

	assert.Equal(t, 2, facets.BundleTiers[domain.TierStarter].Count)
	assert.Equal(t, 2, facets.BundleTiers[domain.TierProfessional].Count)
	assert.Equal(t, 1, facets.BundleTiers[domain.TierExecutive].Count)
	assert.Equal(t, 1, facets.BundleTiers[domain.TierPremium].Count)
	assert.Equal(t, 199.0, facets.BundleTiers[domain.TierStarter].Price)
	assert.Equal(t, 249.0, facets.BundleTiers[domain.TierExecutive].Price)
}

func TestBuildFacets_ColorCountedOncePerProduct(t *testing.T) {
	// Product color "navy" plus a navy suit component must contribute one
	// navy count, not two.
	p := domain.UnifiedProduct{
		ID:    "b-navy",
		Type:  domain.TypeBundle,
		Color: "navy",
		Components: &domain.BundleComponents{
			Suit:  &domain.BundleComponent{Color: "navy"},
			Shirt: &domain.BundleComponent{Color: "white"},
		},
	}

	facets := buildFacets([]domain.UnifiedProduct{p})

	assert.Equal(t, 1, facets.Colors["navy"])
	assert.Equal(t, 1, facets.Colors["white"])
}

func TestBuildFacets_TierCountsSumToBundleCount(t *testing.T) {
	candidates := seedCandidates(t)
	facets := buildFacets(candidates)

	bundles := 0
	for _, c := range candidates {
		if c.Type == domain.TypeBundle {
			bundles++
		}
	}
	sum := 0
	for _, tf := range facets.BundleTiers {
		sum += tf.Count
	}
	assert.Equal(t, bundles, sum)
}

func TestBuildFacets_CategoryCountsSumToCategorizedProducts(t *testing.T) {
	products := []domain.UnifiedProduct{
		{ID: "a", Category: "suits", Price: 450},
		{ID: "b", Category: "suits", Price: 380},
		{ID: "c", Category: "shirts", Price: 89},
		// Accessory row without a category stays out of the facet.
		{ID: "d", Price: 35},
	}

	facets := buildFacets(products)

	sum := 0
	for _, n := range facets.Categories {
		sum += n
	}
	categorized := 0
	for _, p := range products {
		if p.Category != "" {
			categorized++
		}
	}
	assert.Equal(t, categorized, sum)
	assert.Equal(t, 3, sum)
}

func TestBuildFacets_PriceBuckets_EmptyOmitted(t *testing.T) {
	facets := buildFacets(seedCandidates(t))

	// No seed product costs 500 or more, so only three buckets appear.
	require.Len(t, facets.PriceRanges, 3)
	total := 0
	for _, pr := range facets.PriceRanges {
		assert.Positive(t, pr.Count)
		total += pr.Count
	}
	assert.Equal(t, 14, total)
}

func TestBuildFacets_PriceBucket_Boundaries(t *testing.T) {
	products := []domain.UnifiedProduct{
		{ID: "a", Price: 199.99},
		{ID: "b", Price: 200},
		{ID: "c", Price: 500},
	}

	facets := buildFacets(products)

	require.Len(t, facets.PriceRanges, 3)
	assert.Equal(t, "under-200", facets.PriceRanges[0].Label)
	assert.Equal(t, 1, facets.PriceRanges[0].Count)
	assert.Equal(t, "200-300", facets.PriceRanges[1].Label)
	assert.Equal(t, 1, facets.PriceRanges[1].Count)
	assert.Equal(t, "over-500", facets.PriceRanges[2].Label)
	assert.Equal(t, 1, facets.PriceRanges[2].Count)
}

func TestBuildFacets_Empty(t *testing.T) {
	facets := buildFacets(nil)

	assert.Empty(t, facets.Categories)
	assert.Empty(t, facets.Colors)
	assert.Empty(t, facets.PriceRanges)
}
