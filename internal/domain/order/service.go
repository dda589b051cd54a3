// internal/domain/order/service.go
package order

import (
	"context"
	"errors"
	"strconv"
	"time"

	"github.com/your-org/gamevault-backend/internal/domain/cart"
	"github.com/your-org/gamevault-backend/internal/infrastructure/storage"
)

// ErrNotFound is returned when no order has the requested id.
var ErrNotFound = errors.New("order not found")

// Service is the append-only order ledger. Create is the sole write
// operation; there is no update or delete.
type Service struct {
	store storage.Store
}

// NewService creates a new order service
func NewService(store storage.Store) *Service {
	return &Service{store: store}
}

// List returns all orders in insertion order. Callers wanting most-recent
// first must reverse explicitly.
func (s *Service) List(ctx context.Context) ([]Order, error) {
	var orders []Order
	if err := storage.ReadJSON(ctx, s.store, storage.KeyOrders, &orders); err != nil {
		return nil, err
	}
	return orders, nil
}

// Get returns the order with the given id, or ErrNotFound.
func (s *Service) Get(ctx context.Context, id string) (*Order, error) {
	orders, err := s.List(ctx)
	if err != nil {
		return nil, err
	}
	for i := range orders {
		if orders[i].ID == id {
			return &orders[i], nil
		}
	}
	return nil, ErrNotFound
}

// Create freezes the given cart snapshot into a new order, applying the fixed
// tax to the cart total, and appends it to the ledger. The id is the creation
// time in milliseconds, stringified; two orders within the same millisecond
// would collide, which is an accepted limitation.
func (s *Service) Create(ctx context.Context, items []cart.Line, cartTotal float64, address ShippingAddress, paymentMethod string) (*Order, error) {
	orders, err := s.List(ctx)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	newOrder := Order{
		ID:              strconv.FormatInt(now.UnixMilli(), 10),
		Items:           items,
		Total:           cartTotal * (1 + TaxRate),
		ShippingAddress: address,
		PaymentMethod:   paymentMethod,
		PaymentStatus:   PaymentStatusCompleted,
		CreatedAt:       now,
	}

	orders = append(orders, newOrder)
	if err := storage.WriteJSON(ctx, s.store, storage.KeyOrders, orders); err != nil {
		return nil, err
	}
	return &newOrder, nil
}
