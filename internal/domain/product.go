package domain

// Product type discriminators.
const (
	TypeIndividual = "individual"
	TypeBundle     = "bundle"
)

// Seasonal labels.
const (
	SeasonSpring    = "spring"
	SeasonSummer    = "summer"
	SeasonFall      = "fall"
	SeasonWinter    = "winter"
	SeasonYearRound = "year-round"
)

// Bundle tiers, derived purely from the bundle price.
const (
	TierStarter      = "starter"
	TierProfessional = "professional"
	TierExecutive    = "executive"
	TierPremium      = "premium"
)

// Tier price thresholds and nominal tier prices. These are merchandising
// constants, not derived values; keep them as data.
var (
	tierThresholds = []struct {
		maxPrice float64
		tier     string
	}{
		{199, TierStarter},
		{229, TierProfessional},
		{249, TierExecutive},
	}

	// TierPrices maps each tier to its nominal display price.
	TierPrices = map[string]float64{
		TierStarter:      199,
		TierProfessional: 229,
		TierExecutive:    249,
		TierPremium:      299,
	}
)

// TierForPrice returns the bundle tier for the given bundle price.
func TierForPrice(bundlePrice float64) string {
	for _, t := range tierThresholds {
		if bundlePrice <= t.maxPrice {
			return t.tier
		}
	}
	return TierPremium
}

// BundleComponent describes one named part of a bundle (suit, shirt, tie,
// pocket square). Attribute carries the part-specific descriptor: the shirt's
// fit, the tie's style, the pocket square's fold.
type BundleComponent struct {
	Name      string `json:"name"`
	Color     string `json:"color"`
	Attribute string `json:"attribute,omitempty"`
	Image     string `json:"image,omitempty"`
}

// BundleComponents holds the parts of a bundle. Tie and PocketSquare are
// mutually optional: formal bundles carry a tie, casual bundles a pocket square.
type BundleComponents struct {
	Suit         *BundleComponent `json:"suit,omitempty"`
	Shirt        *BundleComponent `json:"shirt,omitempty"`
	Tie          *BundleComponent `json:"tie,omitempty"`
	PocketSquare *BundleComponent `json:"pocket_square,omitempty"`
}

// ComponentColors returns the colors of all present components.
func (bc *BundleComponents) ComponentColors() []string {
	if bc == nil {
		return nil
	}
	var colors []string
	for _, c := range []*BundleComponent{bc.Suit, bc.Shirt, bc.Tie, bc.PocketSquare} {
		if c != nil && c.Color != "" {
			colors = append(colors, c.Color)
		}
	}
	return colors
}

// UnifiedProduct is the common representation every catalog source is mapped
// into. It is rebuilt fresh on every search call; there is no persisted
// unified form.
type UnifiedProduct struct {
	ID          string  `json:"id"`
	Type        string  `json:"type"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`

	// Bundle pricing. Zero for individual products.
	BundlePrice   float64 `json:"bundle_price,omitempty"`
	OriginalPrice float64 `json:"original_price,omitempty"`
	Savings       float64 `json:"savings,omitempty"`

	Category string `json:"category,omitempty"`
	Color    string `json:"color,omitempty"`

	// Sizes normalizes the upstream scalar-or-list size field: a scalar size
	// becomes a single-element list.
	Sizes []string `json:"sizes,omitempty"`

	Material string `json:"material,omitempty"`
	Fit      string `json:"fit,omitempty"`

	Occasions []string `json:"occasions,omitempty"`
	Tags      []string `json:"tags,omitempty"`

	Trending bool   `json:"trending"`
	Seasonal string `json:"seasonal,omitempty"`

	// AIScore is an externally supplied ranking hint; nil when the source
	// carries none.
	AIScore *float64 `json:"ai_score,omitempty"`

	InStock    bool `json:"in_stock"`
	StockLevel *int `json:"stock_level,omitempty"`

	BundleTier string            `json:"bundle_tier,omitempty"`
	Components *BundleComponents `json:"bundle_components,omitempty"`

	Image string `json:"image,omitempty"`
}

// AIScoreOrZero returns the AI score, treating a missing score as 0.
func (p *UnifiedProduct) AIScoreOrZero() float64 {
	if p.AIScore == nil {
		return 0
	}
	return *p.AIScore
}

// AllColors returns the product's own color plus every bundle-component color.
func (p *UnifiedProduct) AllColors() []string {
	var colors []string
	if p.Color != "" {
		colors = append(colors, p.Color)
	}
	colors = append(colors, p.Components.ComponentColors()...)
	return colors
}

// HasTag reports whether the product carries the given tag (case-insensitive
// comparison is the caller's concern; tags are stored lowercased by the
// normalizer).
func (p *UnifiedProduct) HasTag(tag string) bool {
	for _, t := range p.Tags {
		if t == tag {
			return true
		}
	}
	return false
}
