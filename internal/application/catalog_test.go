package application

import (
	"context"
	"testing"

	"github.com/bnema/storefront-cli/internal/domain"
	"github.com/bnema/storefront-cli/internal/logging"
	portmocks "github.com/bnema/storefront-cli/internal/ports/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestCatalogProductsAppliesFilter(t *testing.T) {
	t.Parallel()

	api := portmocks.NewMockCommerceAPI(t)
	catalog := NewCatalog(api, logging.Discard())
	api.EXPECT().ListProducts(mock.Anything).Return([]domain.Product{
		{ID: "p1", Name: "Desk Lamp", Category: "Home", Price: 40},
		{ID: "p2", Name: "Mug", Description: "A lamp-shaped mug", Category: "Kitchen", Price: 12},
		{ID: "p3", Name: "Sofa", Category: "Home", Price: 2500},
	}, nil).Once()

	filter := domain.DefaultProductFilter()
	filter.Search = "LAMP"
	products, err := catalog.Products(context.Background(), filter)
	require.NoError(t, err)

	var ids []domain.ProductID
	for _, p := range products {
		ids = append(ids, p.ID)
	}
	assert.Equal(t, []domain.ProductID{"p1", "p2"}, ids)
}

func TestCatalogCreateProductValidatesBeforeSubmitting(t *testing.T) {
	t.Parallel()

	api := portmocks.NewMockCommerceAPI(t)
	catalog := NewCatalog(api, logging.Discard())

	_, err := catalog.CreateProduct(context.Background(), domain.NewProduct{Name: "  ", Price: 10})
	require.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = catalog.CreateProduct(context.Background(), domain.NewProduct{Name: "Lamp", Price: -1})
	require.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestCatalogCreateProductNormalizesSubmission(t *testing.T) {
	t.Parallel()

	api := portmocks.NewMockCommerceAPI(t)
	catalog := NewCatalog(api, logging.Discard())
	want := domain.NewProduct{Name: "Lamp", Price: 19.99, Category: domain.UncategorizedCategory, Stock: 2}

	api.EXPECT().CreateProduct(mock.Anything, want).Return(domain.Product{ID: "p9", Name: "Lamp"}, nil).Once()

	created, err := catalog.CreateProduct(context.Background(), domain.NewProduct{Name: " Lamp ", Price: 19.99, Stock: 2})
	require.NoError(t, err)
	assert.Equal(t, domain.ProductID("p9"), created.ID)
}

func TestCatalogPassesThroughLookups(t *testing.T) {
	t.Parallel()

	api := portmocks.NewMockCommerceAPI(t)
	catalog := NewCatalog(api, logging.Discard())
	api.EXPECT().GetProduct(mock.Anything, domain.ProductID("p1")).Return(domain.Product{}, domain.ErrNotFound).Once()
	api.EXPECT().ListCategories(mock.Anything).Return(domain.CategoryIndex{"Home"}, nil).Once()

	_, err := catalog.Product(context.Background(), "p1")
	require.ErrorIs(t, err, domain.ErrNotFound)

	categories, err := catalog.Categories(context.Background())
	require.NoError(t, err)
	assert.Equal(t, domain.CategoryIndex{"Home"}, categories)
}

func TestOrdersDelegatesToAPI(t *testing.T) {
	t.Parallel()

	api := portmocks.NewMockCommerceAPI(t)
	orders := NewOrders(api)
	mine := []domain.Order{{ID: "o1"}}
	all := []domain.Order{{ID: "o1"}, {ID: "o2"}}
	api.EXPECT().MyOrders(mock.Anything).Return(mine, nil).Once()
	api.EXPECT().AllOrders(mock.Anything).Return(all, nil).Once()

	got, err := orders.Mine(context.Background())
	require.NoError(t, err)
	assert.Equal(t, mine, got)

	got, err = orders.All(context.Background())
	require.NoError(t, err)
	assert.Equal(t, all, got)
}
