package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ashford-menswear/catalog-search/internal/domain"
)

func TestNormalizeCore_ConvertsCentsAndSynthesizesTags(t *testing.T) {
	p := NormalizeCore(CoreItem{
		ID:         "core-1",
		Name:       "Navy Suit",
		Category:   "Suits",
		PriceCents: 29900,
		Color:      "Navy",
		AIScore:    9.2,
	})

	assert.Equal(t, domain.TypeIndividual, p.Type)
	assert.Equal(t, 299.0, p.Price)
	assert.Equal(t, "suits", p.Category)
	assert.Equal(t, "navy", p.Color)
	assert.Equal(t, []string{"suits", "core", "premium"}, p.Tags)
	assert.True(t, p.InStock)
	require.NotNil(t, p.StockLevel)
	assert.Equal(t, 100, *p.StockLevel)
	require.NotNil(t, p.AIScore)
	assert.Equal(t, 9.2, *p.AIScore)
	assert.Equal(t, domain.SeasonYearRound, p.Seasonal)
}

func TestNormalizeBundle_TierFromPrice(t *testing.T) {
	tests := []struct {
		price float64
		tier  string
	}{
		{199, domain.TierStarter},
		{200, domain.TierProfessional},
		{249, domain.TierExecutive},
		{250, domain.TierPremium},
	}

	for _, tt := range tests {
		p := NormalizeBundle(Bundle{
			ID:          "b",
			BundlePrice: tt.price,
			Suit:        Piece{Name: "Suit", Color: "navy"},
			Shirt:       Piece{Name: "Shirt", Color: "white"},
		})
		assert.Equal(t, tt.tier, p.BundleTier, "price %.0f", tt.price)
	}
}

func TestNormalizeBundle_TieFlavor(t *testing.T) {
	p := NormalizeBundle(Bundle{
		ID:          "b-tie",
		BundlePrice: 199,
		Suit:        Piece{Name: "Navy Suit", Color: "navy"},
		Shirt:       Piece{Name: "White Shirt", Color: "white"},
		Tie:         &Piece{Name: "Burgundy Tie", Color: "Burgundy"},
	})

	require.NotNil(t, p.Components)
	require.NotNil(t, p.Components.Tie)
	assert.Equal(t, "burgundy", p.Components.Tie.Color)
	assert.Nil(t, p.Components.PocketSquare)
}

func TestNormalizeBundle_PocketSquareFlavor(t *testing.T) {
	p := NormalizeBundle(Bundle{
		ID:           "b-ps",
		BundlePrice:  219,
		Suit:         Piece{Name: "Tan Suit", Color: "tan"},
		Shirt:        Piece{Name: "White Shirt", Color: "white"},
		PocketSquare: &Piece{Name: "Ivory Square", Color: "ivory"},
	})

	require.NotNil(t, p.Components)
	assert.Nil(t, p.Components.Tie)
	require.NotNil(t, p.Components.PocketSquare)
	assert.Equal(t, "ivory", p.Components.PocketSquare.Color)
}

func TestNormalizeBundle_Savings(t *testing.T) {
	p := NormalizeBundle(Bundle{
		ID:            "b",
		BundlePrice:   199,
		OriginalPrice: 249,
		Suit:          Piece{Name: "Suit", Color: "navy"},
		Shirt:         Piece{Name: "Shirt", Color: "white"},
	})
	assert.Equal(t, 50.0, p.Savings)

	// Never negative, even on bad upstream data.
	p = NormalizeBundle(Bundle{
		ID:          "b2",
		BundlePrice: 249,
		Suit:        Piece{Name: "Suit", Color: "navy"},
		Shirt:       Piece{Name: "Shirt", Color: "white"},
	})
	assert.Zero(t, p.Savings)
}

func TestNormalizeRow_ImageFallbackChain(t *testing.T) {
	base := ProductRow{ID: "r", Title: "Green Blazer"}

	withPrimary := base
	withPrimary.PrimaryImage = "a.jpg"
	withPrimary.Image = "b.jpg"
	assert.Equal(t, "a.jpg", NormalizeRow(withPrimary).Image)

	withImage := base
	withImage.Image = "b.jpg"
	assert.Equal(t, "b.jpg", NormalizeRow(withImage).Image)

	withFeatured := base
	withFeatured.FeaturedImage = &ImageRef{Src: "c.jpg"}
	assert.Equal(t, "c.jpg", NormalizeRow(withFeatured).Image)

	withGallery := base
	withGallery.Images = []ImageRef{{Src: "d.jpg"}, {Src: "e.jpg"}}
	assert.Equal(t, "d.jpg", NormalizeRow(withGallery).Image)

	// No image anywhere: URL derived from the title.
	assert.Equal(t,
		"https://cdn.ashford-menswear.com/products/green-blazer.jpg",
		NormalizeRow(base).Image,
	)

	// No title either: literal placeholder.
	assert.Equal(t, PlaceholderImage, NormalizeRow(ProductRow{ID: "r2"}).Image)
}

func TestNormalizeRow_ColorExtractionOrder(t *testing.T) {
	assert.Equal(t, "olive",
		NormalizeRow(ProductRow{Title: "Navy Jacket", Color: "Olive"}).Color,
		"explicit field wins")

	assert.Equal(t, "teal",
		NormalizeRow(ProductRow{Title: "Navy Jacket", AdditionalInfo: map[string]string{"color": "teal"}}).Color,
		"additional info next")

	assert.Equal(t, "navy",
		NormalizeRow(ProductRow{Title: "Classic Navy Jacket"}).Color,
		"title regex next")

	assert.Equal(t, "burgundy",
		NormalizeRow(ProductRow{Title: "Evening Jacket", Tags: []string{"formal", "Burgundy"}}).Color,
		"first color-named tag last")

	assert.Empty(t, NormalizeRow(ProductRow{Title: "Evening Jacket"}).Color)
}

func TestNormalizeRow_OccasionsFromTags(t *testing.T) {
	p := NormalizeRow(ProductRow{
		Title: "Jacket",
		Tags:  []string{"Wedding", "slim-cut", "business", "velvet"},
	})

	assert.Equal(t, []string{"wedding", "business"}, p.Occasions)
}

func TestNormalizeRow_SeasonFromTags(t *testing.T) {
	p := NormalizeRow(ProductRow{Title: "Jacket", Tags: []string{"linen", "Summer"}})
	assert.Equal(t, domain.SeasonSummer, p.Seasonal)

	p = NormalizeRow(ProductRow{Title: "Jacket", Tags: []string{"linen"}})
	assert.Equal(t, domain.SeasonYearRound, p.Seasonal)
}

func TestNormalizeRow_EmptyRowDegradesSafely(t *testing.T) {
	p := NormalizeRow(ProductRow{})

	assert.Equal(t, domain.TypeIndividual, p.Type)
	assert.Empty(t, p.Name)
	assert.Empty(t, p.Color)
	assert.Nil(t, p.AIScore)
	assert.Equal(t, PlaceholderImage, p.Image)
	assert.Equal(t, domain.SeasonYearRound, p.Seasonal)
}

func TestSeedCatalogs_UniqueIDs(t *testing.T) {
	seen := make(map[string]bool)
	for _, item := range CoreCatalog() {
		assert.False(t, seen[item.ID], "duplicate id %s", item.ID)
		seen[item.ID] = true
	}
	for _, b := range BundleCatalog() {
		assert.False(t, seen[b.ID], "duplicate id %s", b.ID)
		seen[b.ID] = true
	}
}
