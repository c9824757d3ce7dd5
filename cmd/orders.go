package cmd

import (
	"context"

	"github.com/bnema/storefront-cli/internal/adapters/render/views"
	"github.com/bnema/storefront-cli/internal/domain"
	"github.com/spf13/cobra"
)

func newOrdersCmd(a *app) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:         "orders",
		Short:       "List your orders",
		Args:        cobra.NoArgs,
		Annotations: map[string]string{annotationSession: sessionAuthenticated},
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.writeOrders(cmd, a.orders.Mine, views.OrdersOptions{}, asJSON)
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Print orders as JSON")
	return cmd
}

func (a *app) writeOrders(cmd *cobra.Command, load func(context.Context) ([]domain.Order, error), opts views.OrdersOptions, asJSON bool) error {
	var orders []domain.Order
	err := loadWithSpinner(cmd.Context(), cmd.ErrOrStderr(), asJSON, "Loading orders...", func(ctx context.Context) error {
		var err error
		orders, err = load(ctx)
		return err
	})
	if err != nil {
		a.warnLoad("orders", err)
		orders = []domain.Order{}
	}

	if asJSON {
		return writeJSON(cmd, orders)
	}

	return writeRendered(cmd, views.RenderOrders(orders, opts))
}
