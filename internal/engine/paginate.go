package engine

import (
	"github.com/ashford-menswear/catalog-search/internal/domain"
)

// paginate slices the sorted, filtered set into one 1-based page.
func paginate(products []domain.UnifiedProduct, page, limit int) ([]domain.UnifiedProduct, domain.Pagination) {
	total := len(products)

	totalPages := total / limit
	if total%limit > 0 {
		totalPages++
	}

	offset := (page - 1) * limit
	if offset > total {
		offset = total
	}
	end := offset + limit
	if end > total {
		end = total
	}

	return products[offset:end], domain.Pagination{
		Page:       page,
		Limit:      limit,
		TotalPages: totalPages,
		HasNext:    end < total,
		HasPrev:    page > 1 && offset > 0,
	}
}
