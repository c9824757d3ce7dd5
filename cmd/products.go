package cmd

import (
	"context"
	"errors"

	"github.com/bnema/storefront-cli/internal/adapters/render/views"
	"github.com/bnema/storefront-cli/internal/application"
	"github.com/bnema/storefront-cli/internal/domain"
	"github.com/spf13/cobra"
)

type productListing struct {
	Products   []domain.Product     `json:"products"`
	Categories domain.CategoryIndex `json:"categories"`
}

func newProductsCmd(a *app) *cobra.Command {
	defaults := domain.DefaultProductFilter()
	var filter domain.ProductFilter
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "products",
		Short: "List products, optionally filtered",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if filter.MinPrice > filter.MaxPrice {
				return failAction(cmd, "min price is above max price", domain.ErrInvalidInput)
			}

			listing := a.loadListing(cmd, filter, asJSON)
			if asJSON {
				return writeJSON(cmd, listing)
			}

			return writeRendered(cmd, views.RenderProducts(listing.Products, views.ProductListOptions{
				Filter:     filter,
				Categories: listing.Categories,
				Wishlist:   a.wishlist.Entries(cmd.Context()),
			}))
		},
	}

	cmd.Flags().StringVar(&filter.Search, "search", "", "Match product name or description (case-insensitive)")
	cmd.Flags().StringVar(&filter.Category, "category", defaults.Category, "Category label, or \"all\"")
	cmd.Flags().Float64Var(&filter.MinPrice, "min-price", defaults.MinPrice, "Minimum price (inclusive)")
	cmd.Flags().Float64Var(&filter.MaxPrice, "max-price", defaults.MaxPrice, "Maximum price (inclusive)")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Print products as JSON")

	cmd.AddCommand(
		newProductShowCmd(a),
		newProductCategoriesCmd(a),
	)

	return cmd
}

// loadListing fetches products and categories side by side. Either failure
// is logged and leaves that half empty.
func (a *app) loadListing(cmd *cobra.Command, filter domain.ProductFilter, quiet bool) productListing {
	listing := productListing{Products: []domain.Product{}, Categories: domain.CategoryIndex{}}

	mount := application.NewMount(a.bus)
	err := loadWithSpinner(cmd.Context(), cmd.ErrOrStderr(), quiet, "Loading products...", func(ctx context.Context) error {
		application.Load(ctx, mount, "products", func(ctx context.Context) ([]domain.Product, error) {
			return a.catalog.Products(ctx, filter)
		}, func(products []domain.Product, err error) {
			if err != nil {
				a.warnLoad("products", err)
				return
			}
			listing.Products = products
		})

		application.Load(ctx, mount, "categories", a.catalog.Categories, func(categories domain.CategoryIndex, err error) {
			if err != nil {
				a.warnLoad("categories", err)
				return
			}
			listing.Categories = categories
		})

		mount.Wait()
		return nil
	})
	if err != nil {
		a.warnLoad("products", err)
	}

	// No delivery runs after Unmount returns, so listing is safe to read.
	mount.Unmount()
	return listing
}

func newProductShowCmd(a *app) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "show <id>",
		Short: "Show one product",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id := domain.ProductID(args[0])
			product, err := a.catalog.Product(cmd.Context(), id)
			if err != nil {
				if !errors.Is(err, domain.ErrNotFound) {
					a.warnLoad("product", err)
				}
				return writeRendered(cmd, views.RenderProductNotFound(id))
			}

			if asJSON {
				return writeJSON(cmd, product)
			}

			return writeRendered(cmd, views.RenderProduct(product, a.wishlist.Contains(cmd.Context(), id)))
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Print the product as JSON")
	return cmd
}

func newProductCategoriesCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "categories",
		Short: "List product categories",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			categories, err := a.catalog.Categories(cmd.Context())
			if err != nil {
				a.warnLoad("categories", err)
				categories = nil
			}

			return writeRendered(cmd, views.RenderCategories(categories))
		},
	}
}
