package storeapi

import (
	"context"
	"fmt"
	"net/url"

	"github.com/bnema/storefront-cli/internal/domain"
	"github.com/bnema/storefront-cli/internal/ports"
	"github.com/bnema/storefront-cli/internal/validation"
)

// API maps the commerce endpoints onto domain types. Every decoded response
// is validated before it leaves this package.
type API struct {
	client *Client
}

var _ ports.CommerceAPI = (*API)(nil)

func NewAPI(client *Client) *API {
	return &API{client: client}
}

func (a *API) SetCredential(token string) {
	a.client.SetCredential(token)
}

func (a *API) ClearCredential() {
	a.client.ClearCredential()
}

func (a *API) Login(ctx context.Context, email string, password string) (domain.User, string, error) {
	var response loginResponse
	if err := a.client.Post(ctx, "/auth/login", loginRequest{Email: email, Password: password}, &response); err != nil {
		return domain.User{}, "", fmt.Errorf("login: %w", err)
	}
	if err := checkResponse("login", response); err != nil {
		return domain.User{}, "", err
	}

	return response.User.toDomain(), response.AccessToken, nil
}

func (a *API) Me(ctx context.Context) (domain.User, error) {
	var response userSchema
	if err := a.client.Get(ctx, "/users/me", &response); err != nil {
		return domain.User{}, fmt.Errorf("get current user: %w", err)
	}
	if err := checkResponse("current user", response); err != nil {
		return domain.User{}, err
	}

	return response.toDomain(), nil
}

func (a *API) ListProducts(ctx context.Context) ([]domain.Product, error) {
	var response []productSchema
	if err := a.client.Get(ctx, "/products", &response); err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}

	products := make([]domain.Product, 0, len(response))
	for _, item := range response {
		if err := checkResponse("product", item); err != nil {
			return nil, err
		}
		products = append(products, item.toDomain())
	}

	return products, nil
}

func (a *API) GetProduct(ctx context.Context, id domain.ProductID) (domain.Product, error) {
	if id == "" {
		return domain.Product{}, fmt.Errorf("get product: %w: empty product id", domain.ErrInvalidInput)
	}

	var response productSchema
	if err := a.client.Get(ctx, "/products/"+url.PathEscape(string(id)), &response); err != nil {
		return domain.Product{}, fmt.Errorf("get product %s: %w", id, err)
	}
	if err := checkResponse("product", response); err != nil {
		return domain.Product{}, err
	}

	return response.toDomain(), nil
}

func (a *API) ListCategories(ctx context.Context) (domain.CategoryIndex, error) {
	var response []string
	if err := a.client.Get(ctx, "/products/categories/list", &response); err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}

	return domain.NewCategoryIndex(response), nil
}

func (a *API) CreateProduct(ctx context.Context, product domain.NewProduct) (domain.Product, error) {
	var response productSchema
	if err := a.client.Post(ctx, "/products", toCreateProductRequest(product), &response); err != nil {
		return domain.Product{}, fmt.Errorf("create product: %w", err)
	}
	if err := checkResponse("created product", response); err != nil {
		return domain.Product{}, err
	}

	return response.toDomain(), nil
}

func (a *API) GetCart(ctx context.Context) (domain.CartView, error) {
	var response cartSchema
	if err := a.client.Get(ctx, "/cart", &response); err != nil {
		return domain.CartView{}, fmt.Errorf("get cart: %w", err)
	}
	if err := checkResponse("cart", response); err != nil {
		return domain.CartView{}, err
	}

	return response.toDomain(), nil
}

func (a *API) AddCartItem(ctx context.Context, line domain.CartLine) error {
	if line.ProductID == "" || line.Quantity < 1 {
		return fmt.Errorf("add cart item: %w: product id and a positive quantity are required", domain.ErrInvalidInput)
	}

	request := addCartItemRequest{
		ProductID: string(line.ProductID),
		Quantity:  line.Quantity,
		Variant:   line.Variant,
	}
	if err := a.client.Post(ctx, "/cart/items", request, nil); err != nil {
		return fmt.Errorf("add cart item %s: %w", line.ProductID, err)
	}

	return nil
}

func (a *API) RemoveCartItem(ctx context.Context, id domain.ProductID) error {
	if id == "" {
		return fmt.Errorf("remove cart item: %w: empty product id", domain.ErrInvalidInput)
	}

	if err := a.client.Delete(ctx, "/cart/items/"+url.PathEscape(string(id)), nil); err != nil {
		return fmt.Errorf("remove cart item %s: %w", id, err)
	}

	return nil
}

func (a *API) CreateCheckoutSession(ctx context.Context) (string, error) {
	var response checkoutResponse
	if err := a.client.Post(ctx, "/payments/checkout-session", nil, &response); err != nil {
		return "", fmt.Errorf("create checkout session: %w", err)
	}
	if err := checkResponse("checkout session", response); err != nil {
		return "", err
	}

	return response.URL, nil
}

func (a *API) MyOrders(ctx context.Context) ([]domain.Order, error) {
	return a.listOrders(ctx, "/orders/my")
}

func (a *API) AllOrders(ctx context.Context) ([]domain.Order, error) {
	return a.listOrders(ctx, "/orders")
}

func (a *API) listOrders(ctx context.Context, path string) ([]domain.Order, error) {
	var response []orderSchema
	if err := a.client.Get(ctx, path, &response); err != nil {
		return nil, fmt.Errorf("list orders: %w", err)
	}

	orders := make([]domain.Order, 0, len(response))
	for _, item := range response {
		if err := checkResponse("order", item); err != nil {
			return nil, err
		}
		orders = append(orders, item.toDomain())
	}

	return orders, nil
}

// checkResponse reports schema violations in a decoded body as ErrRemote;
// the server, not the caller, sent bad data.
func checkResponse(what string, value any) error {
	if err := validation.Struct(value); err != nil {
		return fmt.Errorf("%w: malformed %s response: %s", domain.ErrRemote, what, err.Error())
	}
	return nil
}
