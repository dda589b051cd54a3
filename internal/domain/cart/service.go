// internal/domain/cart/service.go
package cart

import (
	"context"

	"github.com/your-org/gamevault-backend/internal/domain/catalog"
	"github.com/your-org/gamevault-backend/internal/infrastructure/storage"
)

// Service handles cart business logic. Every operation reads and rewrites the
// whole cart collection; there are no partial updates.
type Service struct {
	store storage.Store
}

// NewService creates a new cart service
func NewService(store storage.Store) *Service {
	return &Service{store: store}
}

// List returns the current cart lines in insertion order.
func (s *Service) List(ctx context.Context) ([]Line, error) {
	var lines []Line
	if err := storage.ReadJSON(ctx, s.store, storage.KeyCart, &lines); err != nil {
		return nil, err
	}
	return lines, nil
}

// Add puts one more of the given game in the cart. An existing line for the
// same id has its quantity incremented; otherwise a new line captures the
// game's fields as they are right now.
func (s *Service) Add(ctx context.Context, game catalog.Game) ([]Line, error) {
	lines, err := s.List(ctx)
	if err != nil {
		return nil, err
	}

	found := false
	for i := range lines {
		if lines[i].ID == game.ID {
			lines[i].Quantity++
			found = true
			break
		}
	}
	if !found {
		lines = append(lines, Line{Game: game, Quantity: 1})
	}

	if err := s.save(ctx, lines); err != nil {
		return nil, err
	}
	return lines, nil
}

// Remove deletes the line for id. Removing an absent id is a no-op.
func (s *Service) Remove(ctx context.Context, id int64) ([]Line, error) {
	lines, err := s.List(ctx)
	if err != nil {
		return nil, err
	}

	remaining := make([]Line, 0, len(lines))
	for _, line := range lines {
		if line.ID != id {
			remaining = append(remaining, line)
		}
	}

	if err := s.save(ctx, remaining); err != nil {
		return nil, err
	}
	return remaining, nil
}

// SetQuantity sets the line's quantity to exactly the given value. A quantity
// of zero or less removes the line; an absent id is a no-op.
func (s *Service) SetQuantity(ctx context.Context, id int64, quantity int) ([]Line, error) {
	if quantity <= 0 {
		return s.Remove(ctx, id)
	}

	lines, err := s.List(ctx)
	if err != nil {
		return nil, err
	}

	for i := range lines {
		if lines[i].ID == id {
			lines[i].Quantity = quantity
			break
		}
	}

	if err := s.save(ctx, lines); err != nil {
		return nil, err
	}
	return lines, nil
}

// Clear deletes the entire cart collection.
func (s *Service) Clear(ctx context.Context) error {
	return s.store.Delete(ctx, storage.KeyCart)
}

// Total sums captured price * quantity over all lines. Prices are the ones
// snapshotted at add time, never a fresh catalog lookup.
func (s *Service) Total(ctx context.Context) (float64, error) {
	lines, err := s.List(ctx)
	if err != nil {
		return 0, err
	}

	var total float64
	for _, line := range lines {
		total += line.Price * float64(line.Quantity)
	}
	return total, nil
}

// ItemCount sums quantities over all lines, for the cart badge.
func (s *Service) ItemCount(ctx context.Context) (int, error) {
	lines, err := s.List(ctx)
	if err != nil {
		return 0, err
	}

	count := 0
	for _, line := range lines {
		count += line.Quantity
	}
	return count, nil
}

// CalculateTotals computes the display summary for a set of lines.
func CalculateTotals(lines []Line) Totals {
	var totals Totals
	totals.LineCount = len(lines)
	for _, line := range lines {
		totals.ItemCount += line.Quantity
		totals.Total += line.Price * float64(line.Quantity)
	}
	return totals
}

func (s *Service) save(ctx context.Context, lines []Line) error {
	return storage.WriteJSON(ctx, s.store, storage.KeyCart, lines)
}
