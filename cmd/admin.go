package cmd

import (
	"fmt"

	"github.com/bnema/storefront-cli/internal/adapters/render/views"
	"github.com/bnema/storefront-cli/internal/domain"
	"github.com/spf13/cobra"
)

func newAdminCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:         "admin",
		Short:       "Store administration (admin role required)",
		Annotations: map[string]string{annotationSession: sessionAdmin},
	}

	products := &cobra.Command{
		Use:   "products",
		Short: "Manage the catalog",
	}
	products.AddCommand(newAdminProductCreateCmd(a))

	cmd.AddCommand(newAdminOrdersCmd(a), products)
	return cmd
}

func newAdminOrdersCmd(a *app) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "orders",
		Short: "List every order",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.writeOrders(cmd, a.orders.All, views.OrdersOptions{Admin: true}, asJSON)
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Print orders as JSON")
	return cmd
}

func newAdminProductCreateCmd(a *app) *cobra.Command {
	var (
		input     domain.NewProduct
		imageFile string
	)

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a product",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if imageFile != "" {
				image, err := imageDataURL(imageFile)
				if err != nil {
					return failAction(cmd, fmt.Sprintf("Failed to read image: %v", err), err)
				}
				input.Image = image
			}

			product, err := a.catalog.CreateProduct(cmd.Context(), input)
			if err != nil {
				return failAction(cmd, "Failed to create product", err)
			}
			notify(cmd, views.ToastSuccess, fmt.Sprintf("Created %s (%s)", product.Name, product.ID))

			filter := domain.DefaultProductFilter()
			listing := a.loadListing(cmd, filter, true)
			return writeRendered(cmd, views.RenderProducts(listing.Products, views.ProductListOptions{
				Filter:     filter,
				Categories: listing.Categories,
			}))
		},
	}

	cmd.Flags().StringVar(&input.Name, "name", "", "Product name")
	cmd.Flags().StringVar(&input.Description, "description", "", "Product description")
	cmd.Flags().Float64Var(&input.Price, "price", 0, "Price")
	cmd.Flags().StringVar(&input.Category, "category", "", "Category (defaults to "+domain.UncategorizedCategory+")")
	cmd.Flags().IntVar(&input.Stock, "stock", 0, "Units in stock")
	cmd.Flags().StringVar(&input.Image, "image", "", "Image URL")
	cmd.Flags().StringVar(&imageFile, "image-file", "", "Upload a local image (5 MB max)")
	_ = cmd.MarkFlagRequired("name")
	cmd.MarkFlagsMutuallyExclusive("image", "image-file")

	return cmd
}
