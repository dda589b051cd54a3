package order

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/your-org/gamevault-backend/internal/domain/cart"
	"github.com/your-org/gamevault-backend/internal/domain/catalog"
	"github.com/your-org/gamevault-backend/internal/infrastructure/storage"
)

func testLines() []cart.Line {
	return []cart.Line{
		{Game: catalog.Game{ID: 1, Title: "A", Price: 10}, Quantity: 2},
	}
}

func testAddress() ShippingAddress {
	return ShippingAddress{
		FullName: "Sam Lee",
		Email:    "sam@example.com",
		Address:  "2 Oak Ave",
		City:     "Portland",
		State:    "OR",
		ZipCode:  "97201",
	}
}

func TestCreateAppliesTax(t *testing.T) {
	ctx := context.Background()
	svc := NewService(storage.NewMemoryStore())

	created, err := svc.Create(ctx, testLines(), 20, testAddress(), "card")
	require.NoError(t, err)

	assert.InDelta(t, 22.0, created.Total, 1e-9)
	assert.Equal(t, PaymentStatusCompleted, created.PaymentStatus)
	assert.NotEmpty(t, created.ID)
	assert.False(t, created.CreatedAt.IsZero())
}

func TestListKeepsInsertionOrder(t *testing.T) {
	ctx := context.Background()
	store := storage.NewMemoryStore()
	svc := NewService(store)

	first, err := svc.Create(ctx, testLines(), 10, testAddress(), "card")
	require.NoError(t, err)
	second, err := svc.Create(ctx, testLines(), 20, testAddress(), "card")
	require.NoError(t, err)

	orders, err := svc.List(ctx)
	require.NoError(t, err)
	require.Len(t, orders, 2)
	assert.Equal(t, first.ID, orders[0].ID)
	assert.Equal(t, second.ID, orders[1].ID)
}

func TestGet(t *testing.T) {
	ctx := context.Background()
	svc := NewService(storage.NewMemoryStore())

	created, err := svc.Create(ctx, testLines(), 10, testAddress(), "card")
	require.NoError(t, err)

	fetched, err := svc.Get(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, created.ID, fetched.ID)
	assert.InDelta(t, created.Total, fetched.Total, 1e-9)

	_, err = svc.Get(ctx, "does-not-exist")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestListEmptyLedger(t *testing.T) {
	ctx := context.Background()
	svc := NewService(storage.NewMemoryStore())

	orders, err := svc.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, orders)
}
