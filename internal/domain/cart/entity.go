// internal/domain/cart/entity.go
package cart

import "github.com/your-org/gamevault-backend/internal/domain/catalog"

// Line is one cart entry: a snapshot of a catalog record taken at add time
// plus a quantity. Later catalog edits never reach into existing lines.
type Line struct {
	catalog.Game
	Quantity int `json:"quantity"`
}

// Totals summarizes the cart for display.
type Totals struct {
	ItemCount int     `json:"itemCount"` // sum of quantities, for the cart badge
	LineCount int     `json:"lineCount"` // distinct items
	Total     float64 `json:"total"`     // sum of captured price * quantity
}
