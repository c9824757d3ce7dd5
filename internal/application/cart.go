package application

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/bnema/storefront-cli/internal/domain"
	"github.com/bnema/storefront-cli/internal/ports"
)

// Cart mutates the server cart. Every successful mutation publishes
// TopicCartChanged and returns a freshly fetched view; the local view is
// never patched.
type Cart struct {
	api    ports.CommerceAPI
	bus    *Bus
	logger *slog.Logger
}

func NewCart(api ports.CommerceAPI, bus *Bus, logger *slog.Logger) *Cart {
	if logger == nil {
		logger = slog.Default()
	}

	return &Cart{api: api, bus: bus, logger: logger}
}

func (c *Cart) View(ctx context.Context) (domain.CartView, error) {
	return c.api.GetCart(ctx)
}

// Count is the number of cart lines whose product still resolves.
func (c *Cart) Count(ctx context.Context) (int, error) {
	view, err := c.api.GetCart(ctx)
	if err != nil {
		return 0, err
	}
	return view.ItemCount(), nil
}

// Add puts line into the cart. A variant is checked against the product
// before submission.
func (c *Cart) Add(ctx context.Context, line domain.CartLine) (domain.CartView, error) {
	if line.ProductID == "" {
		return domain.CartView{}, fmt.Errorf("add to cart: %w: empty product id", domain.ErrInvalidInput)
	}
	if line.Quantity < 1 {
		return domain.CartView{}, fmt.Errorf("add to cart: %w: quantity must be at least 1", domain.ErrInvalidInput)
	}

	if line.Variant != "" {
		product, err := c.api.GetProduct(ctx, line.ProductID)
		if err != nil {
			return domain.CartView{}, err
		}
		if !product.HasVariant(line.Variant) {
			return domain.CartView{}, fmt.Errorf("add to cart: %w: product %s has no variant %q", domain.ErrInvalidInput, line.ProductID, line.Variant)
		}
	}

	if err := c.api.AddCartItem(ctx, line); err != nil {
		return domain.CartView{}, err
	}

	return c.changed(ctx), nil
}

func (c *Cart) Remove(ctx context.Context, id domain.ProductID) (domain.CartView, error) {
	if err := c.api.RemoveCartItem(ctx, id); err != nil {
		return domain.CartView{}, err
	}

	return c.changed(ctx), nil
}

// SetQuantity replaces the line for id with quantity. There is no update
// endpoint, so this removes then re-adds; a quantity below 1 only removes.
// If the re-add fails the line stays removed, the change is still
// published, and the error is returned.
func (c *Cart) SetQuantity(ctx context.Context, id domain.ProductID, quantity int) (domain.CartView, error) {
	if quantity < 1 {
		return c.Remove(ctx, id)
	}

	current, err := c.api.GetCart(ctx)
	if err != nil {
		return domain.CartView{}, err
	}
	variant := ""
	if item, ok := current.FindItem(id); ok {
		variant = item.Variant
	}

	if err := c.api.RemoveCartItem(ctx, id); err != nil {
		return domain.CartView{}, err
	}

	if err := c.api.AddCartItem(ctx, domain.CartLine{ProductID: id, Quantity: quantity, Variant: variant}); err != nil {
		c.publish()
		return domain.CartView{}, fmt.Errorf("re-add cart item after removal: %w", err)
	}

	return c.changed(ctx), nil
}

// Checkout returns the external checkout URL for the current cart.
func (c *Cart) Checkout(ctx context.Context) (string, error) {
	return c.api.CreateCheckoutSession(ctx)
}

func (c *Cart) changed(ctx context.Context) domain.CartView {
	c.publish()

	view, err := c.api.GetCart(ctx)
	if err != nil {
		c.logger.Warn("reload cart", slog.String("error", err.Error()))
		return domain.CartView{}
	}
	return view
}

func (c *Cart) publish() {
	if c.bus == nil {
		return
	}
	c.bus.Publish(Event{Topic: TopicCartChanged, Source: SourceLocal})
}
