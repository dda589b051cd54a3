// internal/domain/catalog/entity.go
package catalog

import (
	"math"
	"time"
)

// Game represents one pre-owned game listing. JSON field names follow the
// persisted catalog schema and must not change.
type Game struct {
	ID            int64     `json:"id"`
	Title         string    `json:"title"`
	Description   string    `json:"description"`
	Price         float64   `json:"price"`
	OriginalPrice float64   `json:"originalPrice"`
	Discount      int       `json:"discount"` // informational only, not derived from prices
	Image         string    `json:"image,omitempty"`
	Category      string    `json:"category"`
	Platforms     []string  `json:"platforms"`
	Rating        float64   `json:"rating"`
	ReviewCount   int       `json:"reviewCount"`
	Condition     string    `json:"condition"`
	Seller        string    `json:"seller"`
	CreatedAt     time.Time `json:"createdAt"`
}

// Fixed enumerations the storefront filters over.
var (
	Categories  = []string{"Action", "RPG", "Adventure", "Sports", "Racing", "Horror", "Puzzle", "Strategy"}
	Platforms   = []string{"PC", "PS5", "PS4", "Xbox", "Switch"}
	Conditions  = []string{"Like New", "Excellent", "Very Good", "Good"}
	PriceRanges = []string{PriceUnder20, Price20To40, Price40To60, PriceOver60}
)

// HasCreatedAt reports whether the record carries a creation timestamp.
// Records written before timestamps existed unmarshal to the zero time.
func (g Game) HasCreatedAt() bool {
	return !g.CreatedAt.IsZero()
}

// SuggestedDiscount derives a discount percentage from the two prices, for
// pre-filling the listing form. The persisted discount field is free to
// disagree with it; nothing recomputes it after the fact.
func SuggestedDiscount(price, originalPrice float64) int {
	if price <= 0 || originalPrice <= price {
		return 0
	}
	return int(math.Round((originalPrice - price) / originalPrice * 100))
}
