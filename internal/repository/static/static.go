// Package static provides a fixture-backed product repository for running
// without a database.
package static

import (
	"context"

	"github.com/ashford-menswear/catalog-search/internal/catalog"
)

// Repository serves a fixed set of product rows. Safe for concurrent use.
type Repository struct {
	rows []catalog.ProductRow
}

// New creates a static repository with the built-in accessory fixture.
func New() *Repository {
	return &Repository{rows: fixtureRows()}
}

// NewWithRows creates a static repository serving the given rows.
func NewWithRows(rows []catalog.ProductRow) *Repository {
	return &Repository{rows: rows}
}

// ListActive returns a copy of the fixture rows.
func (r *Repository) ListActive(_ context.Context) ([]catalog.ProductRow, error) {
	out := make([]catalog.ProductRow, len(r.rows))
	copy(out, r.rows)
	return out, nil
}

func fixtureRows() []catalog.ProductRow {
	score := func(v float64) *float64 { return &v }
	stock := func(n int) *int { return &n }

	return []catalog.ProductRow{
		{
			ID:           "row-leather-belt",
			Title:        "Brown Leather Belt",
			Description:  "Full-grain leather belt with brushed brass buckle",
			Category:     "accessories",
			Price:        59,
			Color:        "brown",
			Sizes:        []string{"32", "34", "36", "38"},
			Material:     "leather",
			Tags:         []string{"belt", "leather"},
			PrimaryImage: "https://cdn.ashford-menswear.com/products/brown-leather-belt.jpg",
			AIScore:      score(7.2),
			InStock:      true,
			StockLevel:   stock(60),
		},
		{
			ID:          "row-silver-cufflinks",
			Title:       "Silver Knot Cufflinks",
			Description: "Sterling silver knot cufflinks in a gift box",
			Category:    "accessories",
			Price:       45,
			Sizes:       []string{"one-size"},
			Tags:        []string{"cufflinks", "silver", "wedding", "gift"},
			FeaturedImage: &catalog.ImageRef{
				Src: "https://cdn.ashford-menswear.com/products/silver-knot-cufflinks.jpg",
				Alt: "Silver knot cufflinks",
			},
			AIScore:    score(6.9),
			InStock:    true,
			StockLevel: stock(80),
		},
		{
			ID:          "row-white-pocket-square",
			Title:       "White Linen Pocket Square",
			Description: "Hand-rolled white linen pocket square",
			Category:    "accessories",
			Price:       25,
			Material:    "linen",
			AdditionalInfo: map[string]string{
				"color": "white",
				"fold":  "presidential",
			},
			Tags: []string{"pocket-square", "formal", "wedding"},
			Images: []catalog.ImageRef{
				{Src: "https://cdn.ashford-menswear.com/products/white-linen-pocket-square.jpg"},
			},
			AIScore:    score(7.0),
			InStock:    true,
			StockLevel: stock(120),
		},
		{
			ID:          "row-navy-knit-tie",
			Title:       "Navy Knit Tie",
			Description: "Square-end navy knit tie in silk",
			Category:    "ties",
			Price:       39,
			Material:    "silk",
			Tags:        []string{"tie", "knit", "casual", "new"},
			Trending:    true,
			AIScore:     score(7.8),
			InStock:     true,
			StockLevel:  stock(50),
		},
	}
}
