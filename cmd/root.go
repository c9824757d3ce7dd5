package cmd

import (
	"fmt"

	"github.com/bnema/storefront-cli/internal/adapters/render/views"
	"github.com/bnema/storefront-cli/internal/application"
	"github.com/bnema/storefront-cli/internal/config"
	"github.com/bnema/storefront-cli/internal/domain"
	"github.com/spf13/cobra"
)

// Command annotations read by the root pre-run hook. They apply to the
// annotated command and everything below it.
const (
	annotationWire    = "sf.wire"
	annotationSession = "sf.session"

	wireSkip = "skip"

	sessionInit          = "init"
	sessionAuthenticated = "authenticated"
	sessionAdmin         = "admin"
)

func Execute() error {
	return newRootCmd().Execute()
}

func newRootCmd() *cobra.Command {
	a := &app{}

	rootCmd := &cobra.Command{
		Use:           "sf",
		Short:         "Storefront CLI (sf): browse products, manage your cart and wishlist",
		Long:          "sf is a terminal client for the storefront commerce API. It lists and filters products, keeps a local wishlist in sync across sessions, manages the server cart and orders, and signs you in with a persisted credential.",
		SilenceUsage:  true,
		SilenceErrors: false,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.prepare(cmd)
		},
	}

	rootCmd.AddCommand(
		newVersionCmd(),
		newConfigCmd(),
		newProductsCmd(a),
		newLoginCmd(a),
		newLogoutCmd(a),
		newWhoamiCmd(a),
		newProfileCmd(a),
		newCartCmd(a),
		newWishlistCmd(a),
		newOrdersCmd(a),
		newAdminCmd(a),
		newWatchCmd(a),
	)

	return rootCmd
}

// prepare wires the app for cmd, restores the session when cmd needs it and
// enforces the command's access requirement.
func (a *app) prepare(cmd *cobra.Command) error {
	if annotation(cmd, annotationWire) == wireSkip {
		return nil
	}

	path, err := config.Path()
	if err != nil {
		return err
	}
	cfg, err := config.Load(path)
	if err != nil {
		return err
	}

	wired, err := wireApp(cfg, cmd.ErrOrStderr())
	if err != nil {
		return err
	}
	*a = *wired

	mode := annotation(cmd, annotationSession)
	if mode == "" {
		return nil
	}

	a.session.Initialize(cmd.Context())

	req := application.RequireNone
	switch mode {
	case sessionAuthenticated:
		req = application.RequireAuthenticated
	case sessionAdmin:
		req = application.RequireAdmin
	}

	decision, err := a.session.AuthorizeWait(cmd.Context(), req)
	if err != nil {
		return err
	}

	switch decision {
	case application.DecisionAllow:
		return nil
	case application.DecisionRedirectLogin:
		return fmt.Errorf("%w: run `sf login` first", domain.ErrLoginRequired)
	case application.DecisionAccessDenied:
		if err := writeRendered(cmd, views.RenderAccessDenied()); err != nil {
			return err
		}
		return domain.ErrAccessDenied
	default:
		return fmt.Errorf("unexpected access decision %s", decision)
	}
}

func annotation(cmd *cobra.Command, key string) string {
	for c := cmd; c != nil; c = c.Parent() {
		if value, ok := c.Annotations[key]; ok {
			return value
		}
	}
	return ""
}
