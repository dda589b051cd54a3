// internal/domain/checkout/service.go
package checkout

import (
	"context"
	"errors"
	"strings"

	"github.com/your-org/gamevault-backend/internal/domain/cart"
	"github.com/your-org/gamevault-backend/internal/domain/order"
	"github.com/your-org/gamevault-backend/internal/infrastructure/storage"
)

// ErrEmptyCart is returned when checkout is entered with nothing in the cart;
// callers should redirect back before accepting any input.
var ErrEmptyCart = errors.New("cart is empty")

// ErrValidation signals that one or more form fields failed validation. The
// per-field messages travel alongside it.
var ErrValidation = errors.New("checkout form validation failed")

// Form carries the shipping and payment fields from the checkout form.
// Payment fields are collected but never charged; there is no gateway.
type Form struct {
	FullName   string `json:"fullName"`
	Email      string `json:"email"`
	Address    string `json:"address"`
	City       string `json:"city"`
	State      string `json:"state"`
	ZipCode    string `json:"zipCode"`
	CardNumber string `json:"cardNumber"`
	CardName   string `json:"cardName"`
	ExpiryDate string `json:"expiryDate"`
	CVV        string `json:"cvv"`
}

// Validate checks that every field is non-empty and returns a field-name to
// message map for the ones that are not. No deeper validation (card number
// format, expiry) is performed; that gap is known and kept.
func (f Form) Validate() map[string]string {
	fields := map[string]string{
		"fullName":   f.FullName,
		"email":      f.Email,
		"address":    f.Address,
		"city":       f.City,
		"state":      f.State,
		"zipCode":    f.ZipCode,
		"cardNumber": f.CardNumber,
		"cardName":   f.CardName,
		"expiryDate": f.ExpiryDate,
		"cvv":        f.CVV,
	}

	errs := make(map[string]string)
	for name, value := range fields {
		if strings.TrimSpace(value) == "" {
			errs[name] = "Required"
		}
	}
	return errs
}

// Service handles checkout sequencing: validate, freeze the cart into an
// order, clear the cart.
type Service struct {
	cartService  *cart.Service
	orderService *order.Service
}

// NewService creates a new checkout service
func NewService(store storage.Store) *Service {
	return &Service{
		cartService:  cart.NewService(store),
		orderService: order.NewService(store),
	}
}

// Submit runs the checkout contract. On validation failure it returns the
// field error map with ErrValidation. On success the cart is cleared and the
// created order returned; the confirmation view is keyed by its id. A crash
// between the order append and the cart clear can duplicate state, which the
// storage model accepts.
func (s *Service) Submit(ctx context.Context, form Form) (*order.Order, map[string]string, error) {
	lines, err := s.cartService.List(ctx)
	if err != nil {
		return nil, nil, err
	}
	if len(lines) == 0 {
		return nil, nil, ErrEmptyCart
	}

	if fieldErrs := form.Validate(); len(fieldErrs) > 0 {
		return nil, fieldErrs, ErrValidation
	}

	total, err := s.cartService.Total(ctx)
	if err != nil {
		return nil, nil, err
	}

	address := order.ShippingAddress{
		FullName: form.FullName,
		Email:    form.Email,
		Address:  form.Address,
		City:     form.City,
		State:    form.State,
		ZipCode:  form.ZipCode,
	}

	newOrder, err := s.orderService.Create(ctx, lines, total, address, "card")
	if err != nil {
		return nil, nil, err
	}

	if err := s.cartService.Clear(ctx); err != nil {
		return nil, nil, err
	}

	return newOrder, nil, nil
}
