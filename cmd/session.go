package cmd

import (
	"fmt"

	"github.com/bnema/storefront-cli/internal/adapters/render/views"
	"github.com/bnema/storefront-cli/internal/domain"
	"github.com/spf13/cobra"
)

func newWhoamiCmd(a *app) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:         "whoami",
		Short:       "Show the signed-in user",
		Args:        cobra.NoArgs,
		Annotations: map[string]string{annotationSession: sessionAuthenticated},
		RunE: func(cmd *cobra.Command, _ []string) error {
			user, ok := a.session.Current()
			if !ok {
				return domain.ErrLoginRequired
			}
			if asJSON {
				return writeJSON(cmd, user)
			}

			line := user.DisplayName()
			if user.Email != "" && user.Email != line {
				line += fmt.Sprintf(" <%s>", user.Email)
			}
			if user.Role != "" {
				line += fmt.Sprintf(" (%s)", user.Role)
			}
			_, err := fmt.Fprintln(cmd.OutOrStdout(), line)
			return err
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Print the user as JSON")
	return cmd
}

func newProfileCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:         "profile",
		Short:       "Show your profile from the server",
		Args:        cobra.NoArgs,
		Annotations: map[string]string{annotationSession: sessionAuthenticated},
		RunE: func(cmd *cobra.Command, _ []string) error {
			user, err := a.session.Profile(cmd.Context())
			if err != nil {
				a.warnLoad("profile", err)
				user, _ = a.session.Current()
			}

			return writeRendered(cmd, views.RenderProfile(user))
		},
	}
}
