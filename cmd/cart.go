package cmd

import (
	"context"
	"fmt"
	"strconv"

	"github.com/bnema/storefront-cli/internal/adapters/render/views"
	"github.com/bnema/storefront-cli/internal/domain"
	"github.com/spf13/cobra"
)

func newCartCmd(a *app) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:         "cart",
		Short:       "Show and change your cart",
		Args:        cobra.NoArgs,
		Annotations: map[string]string{annotationSession: sessionAuthenticated},
		RunE: func(cmd *cobra.Command, _ []string) error {
			var view domain.CartView
			err := loadWithSpinner(cmd.Context(), cmd.ErrOrStderr(), asJSON, "Loading cart...", func(ctx context.Context) error {
				var err error
				view, err = a.cart.View(ctx)
				return err
			})
			if err != nil {
				a.warnLoad("cart", err)
				view = domain.CartView{}
			}

			if asJSON {
				return writeJSON(cmd, view)
			}
			return writeCart(cmd, view)
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Print the cart as JSON")

	cmd.AddCommand(
		newCartAddCmd(a),
		newCartRemoveCmd(a),
		newCartSetCmd(a),
		newCartCheckoutCmd(a),
	)

	return cmd
}

func newCartAddCmd(a *app) *cobra.Command {
	var quantity int
	var variant string

	cmd := &cobra.Command{
		Use:   "add <product-id>",
		Short: "Add a product to the cart",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			view, err := a.cart.Add(cmd.Context(), domain.CartLine{
				ProductID: domain.ProductID(args[0]),
				Quantity:  quantity,
				Variant:   variant,
			})
			if err != nil {
				return failAction(cmd, "Failed to add to cart", err)
			}

			notify(cmd, views.ToastSuccess, "Added to cart")
			return writeCart(cmd, view)
		},
	}

	cmd.Flags().IntVarP(&quantity, "quantity", "q", 1, "Quantity to add")
	cmd.Flags().StringVar(&variant, "variant", "", "Product variant")

	return cmd
}

func newCartRemoveCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:     "remove <product-id>",
		Aliases: []string{"rm"},
		Short:   "Remove a product from the cart",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			view, err := a.cart.Remove(cmd.Context(), domain.ProductID(args[0]))
			if err != nil {
				return failAction(cmd, "Failed to remove item", err)
			}

			notify(cmd, views.ToastSuccess, "Removed from cart")
			return writeCart(cmd, view)
		},
	}
}

func newCartSetCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "set <product-id> <quantity>",
		Short: "Set the quantity of a cart line; below 1 removes it",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			quantity, err := strconv.Atoi(args[1])
			if err != nil {
				return fmt.Errorf("parse quantity %q: %w", args[1], domain.ErrInvalidInput)
			}

			view, err := a.cart.SetQuantity(cmd.Context(), domain.ProductID(args[0]), quantity)
			if err != nil {
				return failAction(cmd, "Failed to update quantity", err)
			}

			notify(cmd, views.ToastSuccess, "Cart updated")
			return writeCart(cmd, view)
		},
	}
}

func newCartCheckoutCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "checkout",
		Short: "Start a checkout session and print its payment URL",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			url, err := a.cart.Checkout(cmd.Context())
			if err != nil {
				return failAction(cmd, "Checkout failed", err)
			}

			return writeRendered(cmd, views.RenderCheckout(url))
		},
	}
}

func writeCart(cmd *cobra.Command, view domain.CartView) error {
	return writeRendered(cmd, views.RenderCart(view))
}
