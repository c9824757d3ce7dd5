package application

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/bnema/storefront-cli/internal/domain"
	"github.com/bnema/storefront-cli/internal/ports"
	"github.com/bnema/storefront-cli/internal/validation"
)

type Catalog struct {
	api    ports.CommerceAPI
	logger *slog.Logger
}

func NewCatalog(api ports.CommerceAPI, logger *slog.Logger) *Catalog {
	if logger == nil {
		logger = slog.Default()
	}

	return &Catalog{api: api, logger: logger}
}

// Products lists the catalog and applies filter locally.
func (c *Catalog) Products(ctx context.Context, filter domain.ProductFilter) ([]domain.Product, error) {
	products, err := c.api.ListProducts(ctx)
	if err != nil {
		return nil, err
	}

	return filter.Apply(products), nil
}

func (c *Catalog) Product(ctx context.Context, id domain.ProductID) (domain.Product, error) {
	return c.api.GetProduct(ctx, id)
}

func (c *Catalog) Categories(ctx context.Context) (domain.CategoryIndex, error) {
	return c.api.ListCategories(ctx)
}

// CreateProduct validates the submission before sending it.
func (c *Catalog) CreateProduct(ctx context.Context, product domain.NewProduct) (domain.Product, error) {
	product.Normalize()
	if err := validation.Struct(product); err != nil {
		return domain.Product{}, fmt.Errorf("create product: %w", err)
	}

	created, err := c.api.CreateProduct(ctx, product)
	if err != nil {
		return domain.Product{}, err
	}

	c.logger.Info("product created", slog.String("product_id", string(created.ID)))
	return created, nil
}
