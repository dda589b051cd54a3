package cart

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/your-org/gamevault-backend/internal/domain/catalog"
	"github.com/your-org/gamevault-backend/internal/infrastructure/storage"
)

func testGame(id int64, title string, price float64) catalog.Game {
	return catalog.Game{ID: id, Title: title, Price: price, Category: "Action"}
}

func TestAddIncrementsExistingLine(t *testing.T) {
	ctx := context.Background()
	svc := NewService(storage.NewMemoryStore())

	game := testGame(1, "Hades", 15)
	_, err := svc.Add(ctx, game)
	require.NoError(t, err)
	_, err = svc.Add(ctx, game)
	require.NoError(t, err)
	lines, err := svc.Add(ctx, game)
	require.NoError(t, err)

	require.Len(t, lines, 1)
	assert.Equal(t, 3, lines[0].Quantity)

	count, err := svc.ItemCount(ctx)
	require.NoError(t, err)
	assert.Equal(t, 3, count)
}

func TestAddKeepsDistinctLinesPerGame(t *testing.T) {
	ctx := context.Background()
	svc := NewService(storage.NewMemoryStore())

	_, err := svc.Add(ctx, testGame(1, "A", 10))
	require.NoError(t, err)
	lines, err := svc.Add(ctx, testGame(2, "B", 20))
	require.NoError(t, err)

	require.Len(t, lines, 2)
	assert.Equal(t, int64(1), lines[0].ID)
	assert.Equal(t, int64(2), lines[1].ID)
}

func TestAddSnapshotsGameFields(t *testing.T) {
	ctx := context.Background()
	store := storage.NewMemoryStore()
	svc := NewService(store)
	repo := catalog.NewRepository(store)

	added, err := repo.Add(ctx, catalog.Game{Title: "Portal", Price: 9.99})
	require.NoError(t, err)
	_, err = svc.Add(ctx, added)
	require.NoError(t, err)

	// A later catalog price change must not touch the captured line.
	newPrice := 19.99
	_, err = repo.Update(ctx, added.ID, catalog.UpdateRequest{Price: &newPrice})
	require.NoError(t, err)

	lines, err := svc.List(ctx)
	require.NoError(t, err)
	require.Len(t, lines, 1)
	assert.Equal(t, 9.99, lines[0].Price)

	total, err := svc.Total(ctx)
	require.NoError(t, err)
	assert.InDelta(t, 9.99, total, 1e-9)
}

func TestSetQuantity(t *testing.T) {
	ctx := context.Background()
	svc := NewService(storage.NewMemoryStore())

	_, err := svc.Add(ctx, testGame(1, "A", 10))
	require.NoError(t, err)

	lines, err := svc.SetQuantity(ctx, 1, 5)
	require.NoError(t, err)
	require.Len(t, lines, 1)
	assert.Equal(t, 5, lines[0].Quantity)

	// Zero removes the line, same as Remove.
	lines, err = svc.SetQuantity(ctx, 1, 0)
	require.NoError(t, err)
	assert.Empty(t, lines)

	// Absent id is a no-op.
	lines, err = svc.SetQuantity(ctx, 99, 3)
	require.NoError(t, err)
	assert.Empty(t, lines)
}

func TestRemoveAndClear(t *testing.T) {
	ctx := context.Background()
	svc := NewService(storage.NewMemoryStore())

	_, err := svc.Add(ctx, testGame(1, "A", 10))
	require.NoError(t, err)
	_, err = svc.Add(ctx, testGame(2, "B", 20))
	require.NoError(t, err)

	lines, err := svc.Remove(ctx, 1)
	require.NoError(t, err)
	require.Len(t, lines, 1)
	assert.Equal(t, int64(2), lines[0].ID)

	// Removing an absent id leaves the cart unchanged.
	lines, err = svc.Remove(ctx, 1)
	require.NoError(t, err)
	assert.Len(t, lines, 1)

	require.NoError(t, svc.Clear(ctx))
	lines, err = svc.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, lines)
}

func TestTotalMultipliesPriceByQuantity(t *testing.T) {
	ctx := context.Background()
	svc := NewService(storage.NewMemoryStore())

	_, err := svc.Add(ctx, testGame(1, "A", 10.50))
	require.NoError(t, err)
	_, err = svc.Add(ctx, testGame(1, "A", 10.50))
	require.NoError(t, err)
	_, err = svc.Add(ctx, testGame(2, "B", 4.25))
	require.NoError(t, err)

	total, err := svc.Total(ctx)
	require.NoError(t, err)
	assert.InDelta(t, 25.25, total, 1e-9)
}

func TestCalculateTotals(t *testing.T) {
	lines := []Line{
		{Game: testGame(1, "A", 10), Quantity: 2},
		{Game: testGame(2, "B", 5), Quantity: 1},
	}

	totals := CalculateTotals(lines)
	assert.Equal(t, 2, totals.LineCount)
	assert.Equal(t, 3, totals.ItemCount)
	assert.InDelta(t, 25.0, totals.Total, 1e-9)

	assert.Equal(t, Totals{}, CalculateTotals(nil))
}
