// Package catalog defines the three product source shapes and their pure
// mappings into the unified representation the search engine consumes.
package catalog

// CoreItem is a hardcoded catalog entry shipped in-process. Prices are stored
// in minor units (cents).
type CoreItem struct {
	ID          string
	Name        string
	Description string
	Category    string
	PriceCents  int64
	Color       string
	Sizes       []string
	Material    string
	Fit         string
	Occasions   []string
	Image       string
	AIScore     float64
	Trending    bool
	Seasonal    string
}

// Piece is one garment inside a bundle composite.
type Piece struct {
	Name      string
	Color     string
	Attribute string
	Image     string
}

// Bundle is a composite product (suit + shirt + optional tie or pocket
// square) sold as one SKU with a blended price. Tie and PocketSquare are the
// two bundle flavors; at most one of them is normally set.
type Bundle struct {
	ID            string
	Name          string
	Description   string
	BundlePrice   float64
	OriginalPrice float64
	Suit          Piece
	Shirt         Piece
	Tie           *Piece
	PocketSquare  *Piece
	Occasions     []string
	Tags          []string
	Trending      bool
	Seasonal      string
	AIScore       float64
	InStock       bool
	StockLevel    int
}

// ImageRef is a single gallery image reference on a database row.
type ImageRef struct {
	Src string `json:"src"`
	Alt string `json:"alt,omitempty"`
}

// ProductRow is a database-backed individual product as fetched by the
// repository. Field presence is unreliable; the normalizer degrades every
// missing field to a safe default.
type ProductRow struct {
	ID             string            `json:"id"`
	Title          string            `json:"title"`
	Description    string            `json:"description"`
	Category       string            `json:"category"`
	Price          float64           `json:"price"`
	Color          string            `json:"color"`
	AdditionalInfo map[string]string `json:"additional_info"`
	PrimaryImage   string            `json:"primary_image"`
	Image          string            `json:"image"`
	FeaturedImage  *ImageRef         `json:"featured_image"`
	Images         []ImageRef        `json:"images"`
	Occasions      []string          `json:"occasions"`
	Tags           []string          `json:"tags"`
	Sizes          []string          `json:"sizes"`
	Material       string            `json:"material"`
	Fit            string            `json:"fit"`
	InStock        bool              `json:"in_stock"`
	StockLevel     *int              `json:"stock_level"`
	AIScore        *float64          `json:"ai_score"`
	Trending       bool              `json:"trending"`
}
