package model

// Product represents a single catalogue entry. Products are immutable:
// they are loaded once from the static dataset and never modified.
type Product struct {
	ID            string   `json:"id"`
	Name          string   `json:"name"`
	Description   string   `json:"description"`
	Price         float64  `json:"price"`
	OriginalPrice *float64 `json:"originalPrice,omitempty"`
	Category      string   `json:"category"`
	Rating        float64  `json:"rating"`
	ReviewCount   int      `json:"reviewCount"`
	InStock       bool     `json:"inStock"`
	Featured      bool     `json:"featured"`
	Image         string   `json:"image"`
}

// CategoryAll is the sentinel category that disables category filtering.
const CategoryAll = "All"
