package catalog

import (
	"regexp"
	"strings"

	"github.com/ashford-menswear/catalog-search/pkg/slug"

	"github.com/ashford-menswear/catalog-search/internal/domain"
)

// PlaceholderImage is served when no usable image can be resolved for a row.
const PlaceholderImage = "/images/placeholder-product.jpg"

const imageCDNBase = "https://cdn.ashford-menswear.com/products/"

// Fixed stock level assigned to core catalog items, which are always sellable.
const coreStockLevel = 100

// colorNames is the fixed list of recognized color words, probed in order
// against titles and tags.
var colorNames = []string{
	"black", "navy", "charcoal", "gray", "grey", "blue", "white", "ivory",
	"burgundy", "red", "green", "olive", "brown", "tan", "beige", "pink",
	"purple", "silver", "gold", "teal",
}

var colorPattern = regexp.MustCompile(`(?i)\b(` + strings.Join(colorNames, "|") + `)\b`)

// occasionKeywords is the fixed list of tags recognized as occasions.
var occasionKeywords = []string{
	"wedding", "business", "formal", "casual", "prom", "cocktail",
	"black-tie", "gala", "party",
}

var seasonNames = []string{
	domain.SeasonSpring, domain.SeasonSummer, domain.SeasonFall, domain.SeasonWinter,
}

// NormalizeCore maps a hardcoded core catalog item into the unified shape.
// Core items are always in stock at a fixed level and get synthesized tags.
func NormalizeCore(item CoreItem) domain.UnifiedProduct {
	stock := coreStockLevel
	score := item.AIScore

	seasonal := item.Seasonal
	if seasonal == "" {
		seasonal = domain.SeasonYearRound
	}

	return domain.UnifiedProduct{
		ID:          item.ID,
		Type:        domain.TypeIndividual,
		Name:        item.Name,
		Description: item.Description,
		Price:       float64(item.PriceCents) / 100,
		Category:    strings.ToLower(item.Category),
		Color:       strings.ToLower(item.Color),
		Sizes:       item.Sizes,
		Material:    strings.ToLower(item.Material),
		Fit:         strings.ToLower(item.Fit),
		Occasions:   lowerAll(item.Occasions),
		Tags:        []string{strings.ToLower(item.Category), "core", "premium"},
		Trending:    item.Trending,
		Seasonal:    seasonal,
		AIScore:     &score,
		InStock:     true,
		StockLevel:  &stock,
		Image:       item.Image,
	}
}

// NormalizeBundle maps a bundle composite into the unified shape. The tier is
// derived from the bundle price; component sub-objects are built only for the
// parts the bundle actually has.
func NormalizeBundle(b Bundle) domain.UnifiedProduct {
	components := &domain.BundleComponents{
		Suit:  pieceComponent(b.Suit),
		Shirt: pieceComponent(b.Shirt),
	}
	if b.Tie != nil {
		components.Tie = pieceComponent(*b.Tie)
	}
	if b.PocketSquare != nil {
		components.PocketSquare = pieceComponent(*b.PocketSquare)
	}

	savings := b.OriginalPrice - b.BundlePrice
	if savings < 0 {
		savings = 0
	}

	score := b.AIScore
	stock := b.StockLevel

	seasonal := b.Seasonal
	if seasonal == "" {
		seasonal = domain.SeasonYearRound
	}

	return domain.UnifiedProduct{
		ID:            b.ID,
		Type:          domain.TypeBundle,
		Name:          b.Name,
		Description:   b.Description,
		Price:         b.BundlePrice,
		BundlePrice:   b.BundlePrice,
		OriginalPrice: b.OriginalPrice,
		Savings:       savings,
		Category:      "bundles",
		Color:         strings.ToLower(b.Suit.Color),
		Occasions:     lowerAll(b.Occasions),
		Tags:          lowerAll(b.Tags),
		Trending:      b.Trending,
		Seasonal:      seasonal,
		AIScore:       &score,
		InStock:       b.InStock,
		StockLevel:    &stock,
		BundleTier:    domain.TierForPrice(b.BundlePrice),
		Components:    components,
		Image:         b.Suit.Image,
	}
}

// NormalizeRow maps a database-backed product row into the unified shape.
// Missing fields degrade to safe defaults; this never fails.
func NormalizeRow(row ProductRow) domain.UnifiedProduct {
	return domain.UnifiedProduct{
		ID:          row.ID,
		Type:        domain.TypeIndividual,
		Name:        row.Title,
		Description: row.Description,
		Price:       row.Price,
		Category:    strings.ToLower(row.Category),
		Color:       rowColor(row),
		Sizes:       row.Sizes,
		Material:    strings.ToLower(row.Material),
		Fit:         strings.ToLower(row.Fit),
		Occasions:   rowOccasions(row.Tags),
		Tags:        lowerAll(row.Tags),
		Trending:    row.Trending,
		Seasonal:    rowSeason(row.Tags),
		AIScore:     row.AIScore,
		InStock:     row.InStock,
		StockLevel:  row.StockLevel,
		Image:       rowImage(row),
	}
}

func pieceComponent(p Piece) *domain.BundleComponent {
	return &domain.BundleComponent{
		Name:      p.Name,
		Color:     strings.ToLower(p.Color),
		Attribute: strings.ToLower(p.Attribute),
		Image:     p.Image,
	}
}

// rowImage resolves a row's image through the fallback chain:
// primary_image, image, featured_image.src, first gallery entry, a URL
// generated from the title, and finally the placeholder path.
func rowImage(row ProductRow) string {
	if row.PrimaryImage != "" {
		return row.PrimaryImage
	}
	if row.Image != "" {
		return row.Image
	}
	if row.FeaturedImage != nil && row.FeaturedImage.Src != "" {
		return row.FeaturedImage.Src
	}
	if len(row.Images) > 0 && row.Images[0].Src != "" {
		return row.Images[0].Src
	}
	if url := imageURLFromName(row.Title); url != "" {
		return url
	}
	return PlaceholderImage
}

// imageURLFromName derives a CDN image URL from a product name. Returns ""
// when the name yields no usable slug.
func imageURLFromName(name string) string {
	s := slug.Generate(name)
	if s == "" {
		return ""
	}
	return imageCDNBase + s + ".jpg"
}

// rowColor extracts a row's color: explicit field, then additional info,
// then a color word in the title, then the first tag naming a color.
func rowColor(row ProductRow) string {
	if row.Color != "" {
		return strings.ToLower(row.Color)
	}
	if c, ok := row.AdditionalInfo["color"]; ok && c != "" {
		return strings.ToLower(c)
	}
	if m := colorPattern.FindString(row.Title); m != "" {
		return strings.ToLower(m)
	}
	for _, tag := range row.Tags {
		if m := colorPattern.FindString(tag); m != "" && strings.EqualFold(m, tag) {
			return strings.ToLower(tag)
		}
	}
	return ""
}

// rowOccasions derives occasions by filtering tags against the fixed
// occasion keyword list.
func rowOccasions(tags []string) []string {
	var occasions []string
	for _, tag := range tags {
		lower := strings.ToLower(tag)
		for _, kw := range occasionKeywords {
			if lower == kw {
				occasions = append(occasions, kw)
				break
			}
		}
	}
	return occasions
}

// rowSeason scans tags for a season name, defaulting to year-round.
func rowSeason(tags []string) string {
	for _, tag := range tags {
		lower := strings.ToLower(tag)
		for _, season := range seasonNames {
			if lower == season {
				return season
			}
		}
	}
	return domain.SeasonYearRound
}

func lowerAll(values []string) []string {
	if len(values) == 0 {
		return nil
	}
	out := make([]string, len(values))
	for i, v := range values {
		out[i] = strings.ToLower(v)
	}
	return out
}
