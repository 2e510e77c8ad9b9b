// Package postgres implements the product repository against PostgreSQL.
package postgres

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/ashford-menswear/catalog-search/internal/catalog"
	"github.com/ashford-menswear/catalog-search/pkg/database"
)

// ProductRepository implements repository.ProductRepository using PostgreSQL.
type ProductRepository struct {
	pool database.DBTX
}

// NewProductRepository creates a new PostgreSQL-backed product repository.
func NewProductRepository(pool database.DBTX) *ProductRepository {
	return &ProductRepository{pool: pool}
}

// ListActive returns every active product row ordered by id. List-valued and
// map-valued columns are stored as jsonb and may be NULL.
func (r *ProductRepository) ListActive(ctx context.Context) ([]catalog.ProductRow, error) {
	query := `
		SELECT id, title, description, category, price, color, sizes, material, fit,
		       occasions, tags, additional_info, primary_image, image, featured_image,
		       images, ai_score, trending, in_stock, stock_level
		FROM products
		WHERE status = 'active'
		ORDER BY id`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("query products: %w", err)
	}
	defer rows.Close()

	var products []catalog.ProductRow
	for rows.Next() {
		var (
			row            catalog.ProductRow
			description    *string
			category       *string
			color          *string
			material       *string
			fit            *string
			primaryImage   *string
			image          *string
			sizesJSON      []byte
			occasionsJSON  []byte
			tagsJSON       []byte
			additionalJSON []byte
			featuredJSON   []byte
			imagesJSON     []byte
		)

		err := rows.Scan(
			&row.ID,
			&row.Title,
			&description,
			&category,
			&row.Price,
			&color,
			&sizesJSON,
			&material,
			&fit,
			&occasionsJSON,
			&tagsJSON,
			&additionalJSON,
			&primaryImage,
			&image,
			&featuredJSON,
			&imagesJSON,
			&row.AIScore,
			&row.Trending,
			&row.InStock,
			&row.StockLevel,
		)
		if err != nil {
			return nil, fmt.Errorf("scan product row: %w", err)
		}

		row.Description = deref(description)
		row.Category = deref(category)
		row.Color = deref(color)
		row.Material = deref(material)
		row.Fit = deref(fit)
		row.PrimaryImage = deref(primaryImage)
		row.Image = deref(image)

		if err := unmarshalColumn(sizesJSON, &row.Sizes); err != nil {
			return nil, fmt.Errorf("decode sizes for %s: %w", row.ID, err)
		}
		if err := unmarshalColumn(occasionsJSON, &row.Occasions); err != nil {
			return nil, fmt.Errorf("decode occasions for %s: %w", row.ID, err)
		}
		if err := unmarshalColumn(tagsJSON, &row.Tags); err != nil {
			return nil, fmt.Errorf("decode tags for %s: %w", row.ID, err)
		}
		if err := unmarshalColumn(additionalJSON, &row.AdditionalInfo); err != nil {
			return nil, fmt.Errorf("decode additional_info for %s: %w", row.ID, err)
		}
		if err := unmarshalColumn(featuredJSON, &row.FeaturedImage); err != nil {
			return nil, fmt.Errorf("decode featured_image for %s: %w", row.ID, err)
		}
		if err := unmarshalColumn(imagesJSON, &row.Images); err != nil {
			return nil, fmt.Errorf("decode images for %s: %w", row.ID, err)
		}

		products = append(products, row)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate product rows: %w", err)
	}

	return products, nil
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

// unmarshalColumn decodes a nullable jsonb column, leaving the target zero
// when the column is NULL.
func unmarshalColumn(data []byte, target any) error {
	if len(data) == 0 {
		return nil
	}
	return json.Unmarshal(data, target)
}
