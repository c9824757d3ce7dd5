package cmd

import (
	"context"
	"errors"
	"log/slog"

	"github.com/bnema/storefront-cli/internal/adapters/render/views"
	"github.com/bnema/storefront-cli/internal/application"
	"github.com/bnema/storefront-cli/internal/domain"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
)

func newWatchCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:         "watch",
		Short:       "Live dashboard of your cart and wishlist",
		Long:        "watch keeps a dashboard open and refreshes it whenever the wishlist changes, including changes made by other sf processes. The cart lives on the server; press r to reload it.",
		Args:        cobra.NoArgs,
		Annotations: map[string]string{annotationSession: sessionInit},
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx, cancel := context.WithCancel(cmd.Context())
			defer cancel()

			return a.runDashboard(ctx, cmd)
		},
	}
}

func (a *app) runDashboard(ctx context.Context, cmd *cobra.Command) error {
	loaders := views.DashboardLoaders{
		User: func() *domain.User {
			user, ok := a.session.Current()
			if !ok {
				return nil
			}
			return &user
		},
		WishlistCount: a.wishlist.Count,
	}
	if a.session.State().Authenticated() {
		loaders.CartCount = a.cart.Count
	}

	p := tea.NewProgram(
		views.NewDashboard(ctx, loaders),
		tea.WithContext(ctx),
		tea.WithInput(cmd.InOrStdin()),
		tea.WithOutput(cmd.OutOrStdout()),
	)

	mount := application.NewMount(a.bus)
	defer mount.Unmount()
	mount.Subscribe(application.TopicWishlistChanged, func(application.Event) {
		p.Send(views.RefreshMsg{Wishlist: true})
	})

	go func() {
		if err := a.wishlist.Sync(ctx, a.local); err != nil {
			a.logger.Warn("watch wishlist storage", slog.String("error", err.Error()))
		}
	}()

	_, err := p.Run()
	if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
		return nil
	}
	return err
}
