package domain

import (
	"fmt"
	"sort"
	"strings"
)

// Sort options for search results.
const (
	SortPriceAsc  = "price-asc"
	SortPriceDesc = "price-desc"
	SortName      = "name"
	SortTrending  = "trending"
	SortAIScore   = "ai-score"
	SortNewest    = "newest"
)

// ValidSortOptions returns the list of valid sort options.
func ValidSortOptions() []string {
	return []string{SortPriceAsc, SortPriceDesc, SortName, SortTrending, SortAIScore, SortNewest}
}

// IsValidSort checks whether the given sort string is a valid sort option.
func IsValidSort(s string) bool {
	for _, v := range ValidSortOptions() {
		if v == s {
			return true
		}
	}
	return false
}

// Default pagination values.
const (
	DefaultPage  = 1
	DefaultLimit = 24
	MaxLimit     = 100
)

// FilterConfig is the query contract. Every field is optional; absence means
// "no constraint on this dimension". List-valued fields match with OR
// semantics within the list; dimensions combine with AND.
type FilterConfig struct {
	Search string `json:"search,omitempty"`

	Type       []string `json:"type,omitempty"`
	Category   []string `json:"category,omitempty"`
	BundleTier []string `json:"bundle_tier,omitempty"`

	Color      []string `json:"color,omitempty"`
	SuitColor  []string `json:"suit_color,omitempty"`
	ShirtColor []string `json:"shirt_color,omitempty"`
	TieColor   []string `json:"tie_color,omitempty"`

	MinPrice *float64 `json:"min_price,omitempty"`
	MaxPrice *float64 `json:"max_price,omitempty"`

	Occasions []string `json:"occasions,omitempty"`
	Material  []string `json:"material,omitempty"`
	Fit       []string `json:"fit,omitempty"`

	// Boolean dimensions constrain only when true.
	Trending    bool `json:"trending,omitempty"`
	OnSale      bool `json:"on_sale,omitempty"`
	NewArrivals bool `json:"new_arrivals,omitempty"`

	MinAIScore *float64 `json:"min_ai_score,omitempty"`

	Sizes []string `json:"sizes,omitempty"`

	// Source toggles; nil means include.
	IncludeBundles    *bool `json:"include_bundles,omitempty"`
	IncludeIndividual *bool `json:"include_individual,omitempty"`

	SortBy string `json:"sort_by,omitempty"`

	Page  int `json:"page,omitempty"`
	Limit int `json:"limit,omitempty"`
}

// WantsBundles reports whether bundle sources should be included.
func (f *FilterConfig) WantsBundles() bool {
	return f.IncludeBundles == nil || *f.IncludeBundles
}

// WantsIndividual reports whether individual product sources should be included.
func (f *FilterConfig) WantsIndividual() bool {
	return f.IncludeIndividual == nil || *f.IncludeIndividual
}

// Normalize clamps pagination and trims the search term in place.
func (f *FilterConfig) Normalize() {
	f.Search = strings.TrimSpace(f.Search)
	if f.Page < 1 {
		f.Page = DefaultPage
	}
	if f.Limit < 1 {
		f.Limit = DefaultLimit
	}
	if f.Limit > MaxLimit {
		f.Limit = MaxLimit
	}
}

// CacheKey returns a canonical serialization of the configuration, stable
// under list reordering, for use as a response-cache key.
func (f *FilterConfig) CacheKey() string {
	var b strings.Builder
	b.WriteString("v1")

	writeStr := func(name, v string) {
		if v != "" {
			fmt.Fprintf(&b, "|%s=%s", name, strings.ToLower(v))
		}
	}
	writeList := func(name string, vs []string) {
		if len(vs) == 0 {
			return
		}
		sorted := make([]string, len(vs))
		for i, v := range vs {
			sorted[i] = strings.ToLower(v)
		}
		sort.Strings(sorted)
		fmt.Fprintf(&b, "|%s=%s", name, strings.Join(sorted, ","))
	}
	writeFloat := func(name string, v *float64) {
		if v != nil {
			fmt.Fprintf(&b, "|%s=%g", name, *v)
		}
	}
	writeBool := func(name string, v bool) {
		if v {
			fmt.Fprintf(&b, "|%s=1", name)
		}
	}

	writeStr("q", f.Search)
	writeList("type", f.Type)
	writeList("cat", f.Category)
	writeList("tier", f.BundleTier)
	writeList("color", f.Color)
	writeList("suit", f.SuitColor)
	writeList("shirt", f.ShirtColor)
	writeList("tie", f.TieColor)
	writeFloat("minp", f.MinPrice)
	writeFloat("maxp", f.MaxPrice)
	writeList("occ", f.Occasions)
	writeList("mat", f.Material)
	writeList("fit", f.Fit)
	writeBool("trend", f.Trending)
	writeBool("sale", f.OnSale)
	writeBool("new", f.NewArrivals)
	writeFloat("minai", f.MinAIScore)
	writeList("size", f.Sizes)
	if f.IncludeBundles != nil {
		fmt.Fprintf(&b, "|ib=%t", *f.IncludeBundles)
	}
	if f.IncludeIndividual != nil {
		fmt.Fprintf(&b, "|ii=%t", *f.IncludeIndividual)
	}
	writeStr("sort", f.SortBy)
	fmt.Fprintf(&b, "|page=%d|limit=%d", f.Page, f.Limit)

	return b.String()
}
