package ports

import (
	"context"

	"github.com/bnema/storefront-cli/internal/domain"
)

// CommerceAPI is the remote commerce service. Once SetCredential is called,
// every request carries it until ClearCredential.
type CommerceAPI interface {
	SetCredential(token string)
	ClearCredential()

	Login(ctx context.Context, email, password string) (domain.User, string, error)
	Me(ctx context.Context) (domain.User, error)

	ListProducts(ctx context.Context) ([]domain.Product, error)
	GetProduct(ctx context.Context, id domain.ProductID) (domain.Product, error)
	ListCategories(ctx context.Context) (domain.CategoryIndex, error)
	CreateProduct(ctx context.Context, product domain.NewProduct) (domain.Product, error)

	GetCart(ctx context.Context) (domain.CartView, error)
	AddCartItem(ctx context.Context, line domain.CartLine) error
	RemoveCartItem(ctx context.Context, id domain.ProductID) error
	CreateCheckoutSession(ctx context.Context) (string, error)

	MyOrders(ctx context.Context) ([]domain.Order, error)
	AllOrders(ctx context.Context) ([]domain.Order, error)
}
