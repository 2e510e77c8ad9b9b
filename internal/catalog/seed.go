package catalog

// CoreCatalog returns the fixed in-process list of core catalog entries.
// Prices are in cents.
func CoreCatalog() []CoreItem {
	return []CoreItem{
		{
			ID:          "core-navy-suit",
			Name:        "Navy Suit",
			Description: "Two-piece navy suit in all-season wool, half-canvas construction",
			Category:    "suits",
			PriceCents:  29900,
			Color:       "navy",
			Sizes:       []string{"36R", "38R", "40R", "42R", "44R", "46R"},
			Material:    "wool",
			Fit:         "modern",
			Occasions:   []string{"business", "wedding"},
			Image:       "https://cdn.ashford-menswear.com/products/navy-suit.jpg",
			AIScore:     9.2,
			Trending:    true,
		},
		{
			ID:          "core-charcoal-suit",
			Name:        "Charcoal Suit",
			Description: "Charcoal gray suit with a clean notch lapel, the boardroom standard",
			Category:    "suits",
			PriceCents:  29900,
			Color:       "charcoal",
			Sizes:       []string{"36R", "38R", "40R", "42R", "44R"},
			Material:    "wool",
			Fit:         "modern",
			Occasions:   []string{"business", "formal"},
			Image:       "https://cdn.ashford-menswear.com/products/charcoal-suit.jpg",
			AIScore:     8.8,
		},
		{
			ID:          "core-black-tuxedo",
			Name:        "Black Tuxedo",
			Description: "Peak-lapel black tuxedo with satin trim for black-tie evenings",
			Category:    "tuxedos",
			PriceCents:  39900,
			Color:       "black",
			Sizes:       []string{"38R", "40R", "42R", "44R"},
			Material:    "wool",
			Fit:         "slim",
			Occasions:   []string{"black-tie", "gala", "prom"},
			Image:       "https://cdn.ashford-menswear.com/products/black-tuxedo.jpg",
			AIScore:     9.5,
			Trending:    true,
		},
		{
			ID:          "core-white-dress-shirt",
			Name:        "White Dress Shirt",
			Description: "Crisp white spread-collar dress shirt in two-ply cotton",
			Category:    "shirts",
			PriceCents:  7900,
			Color:       "white",
			Sizes:       []string{"S", "M", "L", "XL", "XXL"},
			Material:    "cotton",
			Fit:         "slim",
			Occasions:   []string{"business", "formal", "wedding"},
			Image:       "https://cdn.ashford-menswear.com/products/white-dress-shirt.jpg",
			AIScore:     8.1,
		},
		{
			ID:          "core-light-blue-shirt",
			Name:        "Light Blue Dress Shirt",
			Description: "Light blue twill dress shirt, the everyday office anchor",
			Category:    "shirts",
			PriceCents:  7900,
			Color:       "blue",
			Sizes:       []string{"S", "M", "L", "XL"},
			Material:    "cotton",
			Fit:         "modern",
			Occasions:   []string{"business", "casual"},
			Image:       "https://cdn.ashford-menswear.com/products/light-blue-dress-shirt.jpg",
			AIScore:     7.6,
		},
		{
			ID:          "core-burgundy-tie",
			Name:        "Burgundy Silk Tie",
			Description: "Hand-finished burgundy silk tie, seven-fold",
			Category:    "ties",
			PriceCents:  4900,
			Color:       "burgundy",
			Material:    "silk",
			Occasions:   []string{"wedding", "business"},
			Image:       "https://cdn.ashford-menswear.com/products/burgundy-silk-tie.jpg",
			AIScore:     7.9,
			Seasonal:    "fall",
		},
		{
			ID:          "core-tan-suit",
			Name:        "Tan Suit",
			Description: "Lightweight tan suit in a cotton-linen blend for warm months",
			Category:    "suits",
			PriceCents:  27900,
			Color:       "tan",
			Sizes:       []string{"38R", "40R", "42R"},
			Material:    "linen",
			Fit:         "slim",
			Occasions:   []string{"wedding", "casual", "cocktail"},
			Image:       "https://cdn.ashford-menswear.com/products/tan-suit.jpg",
			AIScore:     8.4,
			Seasonal:    "summer",
		},
		{
			ID:          "core-navy-blazer",
			Name:        "Navy Blazer",
			Description: "Unstructured navy blazer with patch pockets, dress it up or down",
			Category:    "blazers",
			PriceCents:  21900,
			Color:       "navy",
			Sizes:       []string{"38R", "40R", "42R", "44R"},
			Material:    "wool",
			Fit:         "modern",
			Occasions:   []string{"casual", "business", "cocktail"},
			Image:       "https://cdn.ashford-menswear.com/products/navy-blazer.jpg",
			AIScore:     8.0,
		},
	}
}

// BundleCatalog returns the fixed in-process list of bundle composites.
func BundleCatalog() []Bundle {
	return []Bundle{
		{
			ID:            "bundle-essential-navy",
			Name:          "Essential Navy Bundle",
			Description:   "Navy suit, white shirt, and burgundy tie: the first-suit formula",
			BundlePrice:   199,
			OriginalPrice: 249,
			Suit:          Piece{Name: "Navy Suit", Color: "navy", Attribute: "modern", Image: "https://cdn.ashford-menswear.com/products/navy-suit.jpg"},
			Shirt:         Piece{Name: "White Dress Shirt", Color: "white", Attribute: "slim"},
			Tie:           &Piece{Name: "Burgundy Silk Tie", Color: "burgundy", Attribute: "silk"},
			Occasions:     []string{"wedding", "business"},
			Tags:          []string{"bundle", "starter", "bestseller"},
			Trending:      true,
			AIScore:       9.0,
			InStock:       true,
			StockLevel:    40,
		},
		{
			ID:            "bundle-boardroom-charcoal",
			Name:          "Boardroom Charcoal Bundle",
			Description:   "Charcoal suit with light blue shirt and silver tie for the office",
			BundlePrice:   229,
			OriginalPrice: 289,
			Suit:          Piece{Name: "Charcoal Suit", Color: "charcoal", Attribute: "modern", Image: "https://cdn.ashford-menswear.com/products/charcoal-suit.jpg"},
			Shirt:         Piece{Name: "Light Blue Dress Shirt", Color: "blue", Attribute: "modern"},
			Tie:           &Piece{Name: "Silver Tie", Color: "silver", Attribute: "silk"},
			Occasions:     []string{"business", "formal"},
			Tags:          []string{"bundle", "office"},
			AIScore:       8.5,
			InStock:       true,
			StockLevel:    35,
		},
		{
			ID:            "bundle-black-tie-classic",
			Name:          "Black Tie Classic Bundle",
			Description:   "Black tuxedo, white shirt, and black bow tie for formal evenings",
			BundlePrice:   279,
			OriginalPrice: 349,
			Suit:          Piece{Name: "Black Tuxedo", Color: "black", Attribute: "slim", Image: "https://cdn.ashford-menswear.com/products/black-tuxedo.jpg"},
			Shirt:         Piece{Name: "White Tuxedo Shirt", Color: "white", Attribute: "slim"},
			Tie:           &Piece{Name: "Black Bow Tie", Color: "black", Attribute: "silk"},
			Occasions:     []string{"black-tie", "gala", "prom"},
			Tags:          []string{"bundle", "formal", "new"},
			Trending:      true,
			AIScore:       9.3,
			InStock:       true,
			StockLevel:    25,
		},
		{
			ID:            "bundle-summer-tan",
			Name:          "Summer Tan Bundle",
			Description:   "Tan suit with white shirt and linen pocket square, garden-party ready",
			BundlePrice:   219,
			OriginalPrice: 269,
			Suit:          Piece{Name: "Tan Suit", Color: "tan", Attribute: "slim", Image: "https://cdn.ashford-menswear.com/products/tan-suit.jpg"},
			Shirt:         Piece{Name: "White Dress Shirt", Color: "white", Attribute: "slim"},
			PocketSquare:  &Piece{Name: "Ivory Pocket Square", Color: "ivory", Attribute: "presidential"},
			Occasions:     []string{"wedding", "cocktail", "casual"},
			Tags:          []string{"bundle", "summer"},
			Seasonal:      "summer",
			AIScore:       8.2,
			InStock:       true,
			StockLevel:    30,
		},
		{
			ID:            "bundle-weekend-navy",
			Name:          "Weekend Navy Bundle",
			Description:   "Navy blazer and light blue shirt with a patterned pocket square",
			BundlePrice:   189,
			OriginalPrice: 229,
			Suit:          Piece{Name: "Navy Blazer", Color: "navy", Attribute: "modern", Image: "https://cdn.ashford-menswear.com/products/navy-blazer.jpg"},
			Shirt:         Piece{Name: "Light Blue Dress Shirt", Color: "blue", Attribute: "modern"},
			PocketSquare:  &Piece{Name: "Paisley Pocket Square", Color: "burgundy", Attribute: "puff"},
			Occasions:     []string{"casual", "cocktail"},
			Tags:          []string{"bundle", "casual"},
			AIScore:       7.8,
			InStock:       true,
			StockLevel:    45,
		},
		{
			ID:            "bundle-premium-wedding",
			Name:          "Premium Wedding Bundle",
			Description:   "Three-piece navy suit, ivory shirt, and gold tie for the big day",
			BundlePrice:   259,
			OriginalPrice: 329,
			Suit:          Piece{Name: "Navy Three-Piece Suit", Color: "navy", Attribute: "slim", Image: "https://cdn.ashford-menswear.com/products/navy-three-piece.jpg"},
			Shirt:         Piece{Name: "Ivory Dress Shirt", Color: "ivory", Attribute: "slim"},
			Tie:           &Piece{Name: "Gold Silk Tie", Color: "gold", Attribute: "silk"},
			Occasions:     []string{"wedding", "formal"},
			Tags:          []string{"bundle", "wedding", "new"},
			Trending:      true,
			AIScore:       9.1,
			InStock:       true,
			StockLevel:    20,
		},
	}
}
