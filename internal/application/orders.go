package application

import (
	"context"

	"github.com/bnema/storefront-cli/internal/domain"
	"github.com/bnema/storefront-cli/internal/ports"
)

type Orders struct {
	api ports.CommerceAPI
}

func NewOrders(api ports.CommerceAPI) *Orders {
	return &Orders{api: api}
}

// Mine lists the signed-in user's orders.
func (o *Orders) Mine(ctx context.Context) ([]domain.Order, error) {
	return o.api.MyOrders(ctx)
}

// All lists every order. The API restricts it to admins.
func (o *Orders) All(ctx context.Context) ([]domain.Order, error) {
	return o.api.AllOrders(ctx)
}
