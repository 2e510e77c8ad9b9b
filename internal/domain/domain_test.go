package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTierForPrice_Boundaries(t *testing.T) {
	tests := []struct {
		price float64
		tier  string
	}{
		{149, TierStarter},
		{199, TierStarter},
		{200, TierProfessional},
		{229, TierProfessional},
		{230, TierExecutive},
		{249, TierExecutive},
		{250, TierPremium},
		{399, TierPremium},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.tier, TierForPrice(tt.price), "price %.0f", tt.price)
	}
}

func TestAllColors_IncludesComponentColors(t *testing.T) {
	p := UnifiedProduct{
		Color: "charcoal",
		Components: &BundleComponents{
			Suit:  &BundleComponent{Name: "Charcoal Suit", Color: "charcoal"},
			Shirt: &BundleComponent{Name: "White Shirt", Color: "white"},
			Tie:   &BundleComponent{Name: "Burgundy Tie", Color: "burgundy"},
		},
	}

	assert.Equal(t, []string{"charcoal", "charcoal", "white", "burgundy"}, p.AllColors())
}

func TestAllColors_NoComponents(t *testing.T) {
	p := UnifiedProduct{Color: "navy"}
	assert.Equal(t, []string{"navy"}, p.AllColors())

	empty := UnifiedProduct{}
	assert.Empty(t, empty.AllColors())
}

func TestAIScoreOrZero(t *testing.T) {
	var p UnifiedProduct
	assert.Zero(t, p.AIScoreOrZero())

	score := 7.5
	p.AIScore = &score
	assert.Equal(t, 7.5, p.AIScoreOrZero())
}

func TestFilterConfig_Normalize(t *testing.T) {
	f := FilterConfig{Search: "  navy suit  ", Page: 0, Limit: 0}
	f.Normalize()

	assert.Equal(t, "navy suit", f.Search)
	assert.Equal(t, DefaultPage, f.Page)
	assert.Equal(t, DefaultLimit, f.Limit)

	f = FilterConfig{Page: 3, Limit: 5000}
	f.Normalize()
	assert.Equal(t, 3, f.Page)
	assert.Equal(t, MaxLimit, f.Limit)
}

func TestFilterConfig_SourceToggles(t *testing.T) {
	var f FilterConfig
	assert.True(t, f.WantsBundles())
	assert.True(t, f.WantsIndividual())

	no := false
	f.IncludeBundles = &no
	assert.False(t, f.WantsBundles())
}

func TestCacheKey_StableUnderListOrder(t *testing.T) {
	a := FilterConfig{Category: []string{"Suits", "shirts"}, Color: []string{"navy", "black"}, Page: 1, Limit: 24}
	b := FilterConfig{Category: []string{"shirts", "suits"}, Color: []string{"Black", "Navy"}, Page: 1, Limit: 24}

	assert.Equal(t, a.CacheKey(), b.CacheKey())
}

func TestCacheKey_DistinguishesQueries(t *testing.T) {
	a := FilterConfig{Search: "suit", Page: 1, Limit: 24}
	b := FilterConfig{Search: "shirt", Page: 1, Limit: 24}
	c := FilterConfig{Search: "suit", Page: 2, Limit: 24}

	assert.NotEqual(t, a.CacheKey(), b.CacheKey())
	assert.NotEqual(t, a.CacheKey(), c.CacheKey())
}

func TestIsValidSort(t *testing.T) {
	assert.True(t, IsValidSort(SortPriceAsc))
	assert.True(t, IsValidSort(SortNewest))
	assert.False(t, IsValidSort("random"))
}
