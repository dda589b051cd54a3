// internal/domain/catalog/repository.go
package catalog

import (
	"context"
	"errors"
	"time"

	"github.com/your-org/gamevault-backend/internal/infrastructure/storage"
)

// ErrNotFound is returned when no catalog record has the requested id.
var ErrNotFound = errors.New("game not found")

// Repository is the CRUD surface over the catalog collection. Every operation
// reads and rewrites the whole collection; concurrent writers are
// last-write-wins by design.
type Repository struct {
	store storage.Store
}

// NewRepository creates a catalog repository over the given store.
func NewRepository(store storage.Store) *Repository {
	return &Repository{store: store}
}

// UpdateRequest carries the fields to merge into an existing record. Nil
// fields are left untouched; the id is immutable.
type UpdateRequest struct {
	Title         *string   `json:"title"`
	Description   *string   `json:"description"`
	Price         *float64  `json:"price"`
	OriginalPrice *float64  `json:"originalPrice"`
	Discount      *int      `json:"discount"`
	Image         *string   `json:"image"`
	Category      *string   `json:"category"`
	Platforms     *[]string `json:"platforms"`
	Rating        *float64  `json:"rating"`
	ReviewCount   *int      `json:"reviewCount"`
	Condition     *string   `json:"condition"`
	Seller        *string   `json:"seller"`
}

// List returns the current catalog in insertion order.
func (r *Repository) List(ctx context.Context) ([]Game, error) {
	var games []Game
	if err := storage.ReadJSON(ctx, r.store, storage.KeyCatalog, &games); err != nil {
		return nil, err
	}
	return games, nil
}

// Seed runs the dual-mode migration on every catalog load. An empty
// collection is populated from defaults with synthetic timestamps spaced one
// day apart in descending order, so earlier-indexed defaults appear older.
// A populated collection instead gets missing createdAt fields backfilled
// from each record's time-derived id; populated timestamps are untouched.
func (r *Repository) Seed(ctx context.Context, defaults []Game) error {
	games, err := r.List(ctx)
	if err != nil {
		return err
	}

	if len(games) == 0 {
		now := time.Now()
		seeded := make([]Game, len(defaults))
		for i, game := range defaults {
			game.CreatedAt = now.Add(-time.Duration(i) * 24 * time.Hour)
			seeded[i] = game
		}
		return r.save(ctx, seeded)
	}

	changed := false
	for i, game := range games {
		if game.HasCreatedAt() {
			continue
		}
		if game.ID > 0 {
			games[i].CreatedAt = time.UnixMilli(game.ID)
		} else {
			games[i].CreatedAt = time.Now()
		}
		changed = true
	}
	if !changed {
		return nil
	}
	return r.save(ctx, games)
}

// Add assigns a new time-derived id and createdAt, appends the record and
// returns it. Two listings created within the same millisecond would collide;
// that limitation is accepted, not worked around.
func (r *Repository) Add(ctx context.Context, game Game) (Game, error) {
	games, err := r.List(ctx)
	if err != nil {
		return Game{}, err
	}

	now := time.Now()
	game.ID = now.UnixMilli()
	game.CreatedAt = now

	games = append(games, game)
	if err := r.save(ctx, games); err != nil {
		return Game{}, err
	}
	return game, nil
}

// Update merges the request into the record with the given id and returns the
// merged record, or ErrNotFound.
func (r *Repository) Update(ctx context.Context, id int64, req UpdateRequest) (*Game, error) {
	games, err := r.List(ctx)
	if err != nil {
		return nil, err
	}

	for i := range games {
		if games[i].ID != id {
			continue
		}
		applyUpdate(&games[i], req)
		if err := r.save(ctx, games); err != nil {
			return nil, err
		}
		updated := games[i]
		return &updated, nil
	}

	return nil, ErrNotFound
}

// Remove filters out the record with the given id and returns the remaining
// collection. Removing an unknown id is a no-op.
func (r *Repository) Remove(ctx context.Context, id int64) ([]Game, error) {
	games, err := r.List(ctx)
	if err != nil {
		return nil, err
	}

	remaining := make([]Game, 0, len(games))
	for _, game := range games {
		if game.ID != id {
			remaining = append(remaining, game)
		}
	}

	if err := r.save(ctx, remaining); err != nil {
		return nil, err
	}
	return remaining, nil
}

func (r *Repository) save(ctx context.Context, games []Game) error {
	return storage.WriteJSON(ctx, r.store, storage.KeyCatalog, games)
}

func applyUpdate(game *Game, req UpdateRequest) {
	if req.Title != nil {
		game.Title = *req.Title
	}
	if req.Description != nil {
		game.Description = *req.Description
	}
	if req.Price != nil {
		game.Price = *req.Price
	}
	if req.OriginalPrice != nil {
		game.OriginalPrice = *req.OriginalPrice
	}
	if req.Discount != nil {
		game.Discount = *req.Discount
	}
	if req.Image != nil {
		game.Image = *req.Image
	}
	if req.Category != nil {
		game.Category = *req.Category
	}
	if req.Platforms != nil {
		game.Platforms = *req.Platforms
	}
	if req.Rating != nil {
		game.Rating = *req.Rating
	}
	if req.ReviewCount != nil {
		game.ReviewCount = *req.ReviewCount
	}
	if req.Condition != nil {
		game.Condition = *req.Condition
	}
	if req.Seller != nil {
		game.Seller = *req.Seller
	}
}
