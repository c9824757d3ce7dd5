package cmd

import (
	"fmt"

	"github.com/bnema/storefront-cli/internal/adapters/render/views"
	"github.com/bnema/storefront-cli/internal/domain"
	"github.com/spf13/cobra"
)

func newWishlistCmd(a *app) *cobra.Command {
	var asJSON bool

	list := func(cmd *cobra.Command, _ []string) error {
		entries := a.wishlist.Entries(cmd.Context())
		if asJSON {
			return writeJSON(cmd, entries)
		}

		return writeRendered(cmd, views.RenderWishlist(entries))
	}

	cmd := &cobra.Command{
		Use:   "wishlist",
		Short: "Manage the local wishlist",
		Args:  cobra.NoArgs,
		RunE:  list,
	}
	cmd.PersistentFlags().BoolVar(&asJSON, "json", false, "Print the wishlist as JSON")

	cmd.AddCommand(
		&cobra.Command{
			Use:   "list",
			Short: "List wishlist entries",
			Args:  cobra.NoArgs,
			RunE:  list,
		},
		&cobra.Command{
			Use:   "count",
			Short: "Print the number of wishlist entries",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, _ []string) error {
				_, err := fmt.Fprintln(cmd.OutOrStdout(), a.wishlist.Count(cmd.Context()))
				return err
			},
		},
		newWishlistAddCmd(a),
		newWishlistRemoveCmd(a),
		newWishlistToggleCmd(a),
		newWishlistClearCmd(a),
	)

	return cmd
}

func newWishlistAddCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "add <product-id>",
		Short: "Save a product to the wishlist",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id := domain.ProductID(args[0])
			if a.wishlist.Contains(cmd.Context(), id) {
				notify(cmd, views.ToastInfo, "Already in wishlist")
				return nil
			}

			product, err := a.catalog.Product(cmd.Context(), id)
			if err != nil {
				return failAction(cmd, "Could not load product", err)
			}

			added, err := a.wishlist.Add(cmd.Context(), domain.EntryFromProduct(product))
			if err != nil {
				return failAction(cmd, "Could not save wishlist", err)
			}
			if added {
				notify(cmd, views.ToastSuccess, fmt.Sprintf("Added %s to wishlist", product.Name))
			} else {
				notify(cmd, views.ToastInfo, "Already in wishlist")
			}
			return nil
		},
	}
}

func newWishlistRemoveCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:     "remove <product-id>",
		Aliases: []string{"rm"},
		Short:   "Remove a product from the wishlist",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			removed, err := a.wishlist.Remove(cmd.Context(), domain.ProductID(args[0]))
			if err != nil {
				return failAction(cmd, "Could not save wishlist", err)
			}
			if removed {
				notify(cmd, views.ToastSuccess, "Removed from wishlist")
			}
			return nil
		},
	}
}

// Toggling off needs no network; toggling on snapshots the product first.
func newWishlistToggleCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "toggle <product-id>",
		Short: "Add a product when absent, remove it when present",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id := domain.ProductID(args[0])

			entry := domain.WishlistEntry{ID: id}
			if !a.wishlist.Contains(cmd.Context(), id) {
				product, err := a.catalog.Product(cmd.Context(), id)
				if err != nil {
					return failAction(cmd, "Could not load product", err)
				}
				entry = domain.EntryFromProduct(product)
			}

			present, err := a.wishlist.Toggle(cmd.Context(), entry)
			if err != nil {
				return failAction(cmd, "Could not save wishlist", err)
			}
			if present {
				notify(cmd, views.ToastSuccess, "Added to wishlist")
			} else {
				notify(cmd, views.ToastSuccess, "Removed from wishlist")
			}
			return nil
		},
	}
}

func newWishlistClearCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "clear",
		Short: "Remove every wishlist entry",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cleared, err := a.wishlist.Clear(cmd.Context())
			if err != nil {
				return failAction(cmd, "Could not clear wishlist", err)
			}
			if cleared {
				notify(cmd, views.ToastSuccess, "Wishlist cleared")
			}
			return nil
		},
	}
}
