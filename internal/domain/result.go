package domain

// Fixed price-range buckets for the price facet. Boundaries are merchandising
// constants (see also TierPrices).
var PriceBuckets = []PriceBucket{
	{Label: "under-200", Min: 0, Max: 200},
	{Label: "200-300", Min: 200, Max: 300},
	{Label: "300-500", Min: 300, Max: 500},
	{Label: "over-500", Min: 500, Max: 0},
}

// PriceBucket is one fixed price range. Max == 0 means unbounded above.
type PriceBucket struct {
	Label string  `json:"label"`
	Min   float64 `json:"min"`
	Max   float64 `json:"max,omitempty"`
}

// PriceRangeFacet is a price bucket with its result count.
type PriceRangeFacet struct {
	PriceBucket
	Count int `json:"count"`
}

// TierFacet is a bundle-tier count plus the tier's nominal price.
type TierFacet struct {
	Count int     `json:"count"`
	Price float64 `json:"price"`
}

// Facets summarizes the filtered (pre-pagination) result set for UI
// refinement controls. All counts are plain tallies.
type Facets struct {
	Categories  map[string]int       `json:"categories"`
	Colors      map[string]int       `json:"colors"`
	Occasions   map[string]int       `json:"occasions"`
	Sizes       map[string]int       `json:"sizes"`
	Materials   map[string]int       `json:"materials"`
	BundleTiers map[string]TierFacet `json:"bundle_tiers"`
	PriceRanges []PriceRangeFacet    `json:"price_ranges"`
}

// Refinements recommends additional filters when a result set is large.
type Refinements struct {
	MaxPrice       *float64 `json:"max_price,omitempty"`
	IncludeBundles bool     `json:"include_bundles,omitempty"`
	Color          string   `json:"color,omitempty"`
}

// Suggestions carries advisory UI hints. They never affect the returned
// product set.
type Suggestions struct {
	DidYouMean      string       `json:"did_you_mean,omitempty"`
	RelatedSearches []string     `json:"related_searches,omitempty"`
	RelaxFilters    []string     `json:"relax_filters,omitempty"`
	Refinements     *Refinements `json:"refinements,omitempty"`
}

// Pagination describes the returned page slice.
type Pagination struct {
	Page       int  `json:"page"`
	Limit      int  `json:"limit"`
	TotalPages int  `json:"total_pages"`
	HasNext    bool `json:"has_next"`
	HasPrev    bool `json:"has_prev"`
}

// SearchResult is the full caller contract: one page of products plus the
// counts, facets, applied filters, suggestions, and pagination block.
type SearchResult struct {
	Products       []UnifiedProduct `json:"products"`
	TotalCount     int              `json:"total_count"`
	FilteredCount  int              `json:"filtered_count"`
	Facets         Facets           `json:"facets"`
	AppliedFilters FilterConfig     `json:"applied_filters"`
	Suggestions    *Suggestions     `json:"suggestions,omitempty"`
	Pagination     Pagination       `json:"pagination"`
	TookMs         int64            `json:"took_ms"`
}
