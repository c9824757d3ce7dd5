package application

import (
	"context"
	"errors"
	"testing"

	"github.com/bnema/storefront-cli/internal/domain"
	"github.com/bnema/storefront-cli/internal/logging"
	portmocks "github.com/bnema/storefront-cli/internal/ports/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func cartWith(items ...domain.CartItem) domain.CartView {
	return domain.CartView{Items: items}
}

func cartItem(id string, price float64, quantity int, variant string) domain.CartItem {
	return domain.CartItem{
		ID:       "line-" + id,
		Product:  &domain.Product{ID: domain.ProductID(id), Name: "Product " + id, Price: price},
		Quantity: quantity,
		Variant:  variant,
	}
}

func newTestCart(t *testing.T) (*Cart, *portmocks.MockCommerceAPI, *[]Event) {
	t.Helper()

	api := portmocks.NewMockCommerceAPI(t)
	bus := NewBus()
	events := recordEvents(bus, TopicCartChanged)

	return NewCart(api, bus, logging.Discard()), api, events
}

func TestCartAddPublishesThenReloads(t *testing.T) {
	t.Parallel()

	cart, api, events := newTestCart(t)
	reloaded := cartWith(cartItem("p1", 10, 2, ""))

	api.EXPECT().AddCartItem(mock.Anything, domain.CartLine{ProductID: "p1", Quantity: 2}).Return(nil).Once()
	api.EXPECT().GetCart(mock.Anything).Run(func(context.Context) {
		assert.Len(t, *events, 1, "cart.changed is published before the reload")
	}).Return(reloaded, nil).Once()

	view, err := cart.Add(context.Background(), domain.CartLine{ProductID: "p1", Quantity: 2})
	require.NoError(t, err)
	assert.Equal(t, reloaded, view)
	assert.Len(t, *events, 1)
}

func TestCartAddValidatesQuantityBeforeSubmitting(t *testing.T) {
	t.Parallel()

	cart, _, events := newTestCart(t)

	_, err := cart.Add(context.Background(), domain.CartLine{ProductID: "p1", Quantity: 0})
	require.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.Empty(t, *events)
}

func TestCartAddRejectsUnknownVariant(t *testing.T) {
	t.Parallel()

	cart, api, events := newTestCart(t)
	api.EXPECT().GetProduct(mock.Anything, domain.ProductID("p1")).Return(domain.Product{ID: "p1", Variants: []string{"red"}}, nil).Once()

	_, err := cart.Add(context.Background(), domain.CartLine{ProductID: "p1", Quantity: 1, Variant: "green"})
	require.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.Empty(t, *events)
}

func TestCartAddFailureLeavesStateAndDoesNotPublish(t *testing.T) {
	t.Parallel()

	cart, api, events := newTestCart(t)
	api.EXPECT().AddCartItem(mock.Anything, mock.Anything).Return(domain.ErrUnauthorized).Once()

	_, err := cart.Add(context.Background(), domain.CartLine{ProductID: "p1", Quantity: 1})
	require.ErrorIs(t, err, domain.ErrUnauthorized)
	assert.Empty(t, *events)
}

func TestCartReloadFailureAfterMutationIsNotAnError(t *testing.T) {
	t.Parallel()

	cart, api, events := newTestCart(t)
	api.EXPECT().RemoveCartItem(mock.Anything, domain.ProductID("p1")).Return(nil).Once()
	api.EXPECT().GetCart(mock.Anything).Return(domain.CartView{}, domain.ErrTransport).Once()

	view, err := cart.Remove(context.Background(), "p1")
	require.NoError(t, err)
	assert.Empty(t, view.Items)
	assert.Len(t, *events, 1)
}

func TestCartSetQuantityBelowOneRemoves(t *testing.T) {
	t.Parallel()

	cart, api, events := newTestCart(t)
	api.EXPECT().RemoveCartItem(mock.Anything, domain.ProductID("p1")).Return(nil).Once()
	api.EXPECT().GetCart(mock.Anything).Return(cartWith(), nil).Once()

	_, err := cart.SetQuantity(context.Background(), "p1", 0)
	require.NoError(t, err)
	assert.Len(t, *events, 1)
}

func TestCartSetQuantityRemovesThenReAddsWithVariant(t *testing.T) {
	t.Parallel()

	cart, api, events := newTestCart(t)
	before := cartWith(cartItem("p1", 10, 1, "red"))
	after := cartWith(cartItem("p1", 10, 3, "red"))

	var calls []string
	api.EXPECT().GetCart(mock.Anything).Return(before, nil).Once()
	api.EXPECT().RemoveCartItem(mock.Anything, domain.ProductID("p1")).Run(func(context.Context, domain.ProductID) {
		calls = append(calls, "remove")
	}).Return(nil).Once()
	api.EXPECT().AddCartItem(mock.Anything, domain.CartLine{ProductID: "p1", Quantity: 3, Variant: "red"}).Run(func(context.Context, domain.CartLine) {
		calls = append(calls, "add")
	}).Return(nil).Once()
	api.EXPECT().GetCart(mock.Anything).Return(after, nil).Once()

	view, err := cart.SetQuantity(context.Background(), "p1", 3)
	require.NoError(t, err)
	assert.Equal(t, []string{"remove", "add"}, calls)
	assert.Equal(t, after, view)
	assert.Len(t, *events, 1)
}

func TestCartSetQuantityReportsFailedReAdd(t *testing.T) {
	t.Parallel()

	cart, api, events := newTestCart(t)
	api.EXPECT().GetCart(mock.Anything).Return(cartWith(cartItem("p1", 10, 1, "")), nil).Once()
	api.EXPECT().RemoveCartItem(mock.Anything, domain.ProductID("p1")).Return(nil).Once()
	api.EXPECT().AddCartItem(mock.Anything, mock.Anything).Return(errors.New("out of stock")).Once()

	_, err := cart.SetQuantity(context.Background(), "p1", 5)
	require.Error(t, err)
	assert.ErrorContains(t, err, "re-add cart item")
	assert.Len(t, *events, 1, "the removal already changed the cart")
}

func TestCartCountSkipsLinesWithMissingProducts(t *testing.T) {
	t.Parallel()

	cart, api, _ := newTestCart(t)
	api.EXPECT().GetCart(mock.Anything).Return(cartWith(
		cartItem("p1", 10, 1, ""),
		domain.CartItem{ID: "orphan", Quantity: 4},
	), nil).Once()

	count, err := cart.Count(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}

func TestCartCheckoutReturnsURL(t *testing.T) {
	t.Parallel()

	cart, api, _ := newTestCart(t)
	api.EXPECT().CreateCheckoutSession(mock.Anything).Return("https://pay.example.com/s/1", nil).Once()

	url, err := cart.Checkout(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "https://pay.example.com/s/1", url)
}
