package checkout

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/your-org/gamevault-backend/internal/domain/cart"
	"github.com/your-org/gamevault-backend/internal/domain/catalog"
	"github.com/your-org/gamevault-backend/internal/domain/order"
	"github.com/your-org/gamevault-backend/internal/infrastructure/storage"
)

func validForm() Form {
	return Form{
		FullName:   "Jordan Smith",
		Email:      "jordan@example.com",
		Address:    "1 Main St",
		City:       "Springfield",
		State:      "IL",
		ZipCode:    "62701",
		CardNumber: "4111111111111111",
		CardName:   "Jordan Smith",
		ExpiryDate: "12/27",
		CVV:        "123",
	}
}

func TestSubmitEmptyCart(t *testing.T) {
	ctx := context.Background()
	svc := NewService(storage.NewMemoryStore())

	_, fieldErrs, err := svc.Submit(ctx, validForm())
	assert.ErrorIs(t, err, ErrEmptyCart)
	assert.Nil(t, fieldErrs)
}

func TestSubmitValidationFailure(t *testing.T) {
	ctx := context.Background()
	store := storage.NewMemoryStore()
	svc := NewService(store)
	cartSvc := cart.NewService(store)

	_, err := cartSvc.Add(ctx, catalog.Game{ID: 1, Title: "A", Price: 10})
	require.NoError(t, err)

	form := validForm()
	form.Email = ""
	form.CVV = "   "

	_, fieldErrs, err := svc.Submit(ctx, form)
	assert.ErrorIs(t, err, ErrValidation)
	assert.Equal(t, map[string]string{"email": "Required", "cvv": "Required"}, fieldErrs)

	// Failed checkout leaves the cart alone.
	lines, err := cartSvc.List(ctx)
	require.NoError(t, err)
	assert.Len(t, lines, 1)
}

func TestFormValidateAllMissing(t *testing.T) {
	errs := Form{}.Validate()
	assert.Len(t, errs, 10)
	for _, msg := range errs {
		assert.Equal(t, "Required", msg)
	}
}

func TestSubmitCreatesOrderAndClearsCart(t *testing.T) {
	ctx := context.Background()
	store := storage.NewMemoryStore()
	svc := NewService(store)
	cartSvc := cart.NewService(store)
	orderSvc := order.NewService(store)

	_, err := cartSvc.Add(ctx, catalog.Game{ID: 1, Title: "A", Price: 10})
	require.NoError(t, err)
	_, err = cartSvc.Add(ctx, catalog.Game{ID: 2, Title: "B", Price: 15})
	require.NoError(t, err)

	created, fieldErrs, err := svc.Submit(ctx, validForm())
	require.NoError(t, err)
	require.Nil(t, fieldErrs)
	require.NotNil(t, created)

	// Tax is applied on top of the 25.00 cart total.
	assert.InDelta(t, 27.50, created.Total, 1e-9)
	assert.Equal(t, order.PaymentStatusCompleted, created.PaymentStatus)
	assert.Equal(t, "card", created.PaymentMethod)
	assert.NotEmpty(t, created.ID)
	assert.Len(t, created.Items, 2)
	assert.Equal(t, "Jordan Smith", created.ShippingAddress.FullName)

	// Cart is cleared and the order is in the ledger.
	lines, err := cartSvc.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, lines)

	fetched, err := orderSvc.Get(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, created.ID, fetched.ID)
}
