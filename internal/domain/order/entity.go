// internal/domain/order/entity.go
package order

import (
	"time"

	"github.com/your-org/gamevault-backend/internal/domain/cart"
)

// PaymentStatus tags an order's payment outcome. Without a real gateway the
// only value ever written is "completed".
type PaymentStatus string

const (
	PaymentStatusCompleted PaymentStatus = "completed"
)

// TaxRate is the fixed storefront tax applied at checkout. Shipping is free.
const TaxRate = 0.10

// ShippingAddress holds the checkout shipping fields. JSON names follow the
// persisted orders schema.
type ShippingAddress struct {
	FullName string `json:"fullName"`
	Email    string `json:"email"`
	Address  string `json:"address"`
	City     string `json:"city"`
	State    string `json:"state"`
	ZipCode  string `json:"zipCode"`
}

// Order is a frozen snapshot of a cart plus shipping and payment metadata.
// Orders are immutable once created.
type Order struct {
	ID              string          `json:"id"`
	Items           []cart.Line     `json:"items"`
	Total           float64         `json:"total"` // cart total plus tax
	ShippingAddress ShippingAddress `json:"shippingAddress"`
	PaymentMethod   string          `json:"paymentMethod"`
	PaymentStatus   PaymentStatus   `json:"paymentStatus"`
	CreatedAt       time.Time       `json:"createdAt"`
}
