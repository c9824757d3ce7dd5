package cmd

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/bnema/storefront-cli/internal/adapters/render/views"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

// Seams for tests that cannot provide a terminal.
var (
	readPassword = term.ReadPassword
	isTerminal   = term.IsTerminal
)

func newLoginCmd(a *app) *cobra.Command {
	var email string
	var password string

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Sign in and persist the session credential",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			reader := bufio.NewReader(cmd.InOrStdin())

			if strings.TrimSpace(email) == "" {
				value, err := promptLine(reader, cmd.ErrOrStderr(), "Email: ")
				if err != nil {
					return fmt.Errorf("read email: %w", err)
				}
				email = value
			}
			if password == "" {
				value, err := promptPassword(cmd, reader)
				if err != nil {
					return fmt.Errorf("read password: %w", err)
				}
				password = value
			}

			user, err := a.session.SignIn(cmd.Context(), email, password)
			if err != nil {
				return failAction(cmd, "Login failed", err)
			}

			notify(cmd, views.ToastSuccess, fmt.Sprintf("Signed in as %s", user.DisplayName()))
			return nil
		},
	}

	cmd.Flags().StringVar(&email, "email", "", "Account email (prompted when omitted)")
	cmd.Flags().StringVar(&password, "password", "", "Account password (prompted without echo when omitted)")

	return cmd
}

func newLogoutCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Sign out and remove the stored credential",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := a.session.Logout(cmd.Context()); err != nil {
				return failAction(cmd, "Could not remove the stored credential", err)
			}

			notify(cmd, views.ToastInfo, "Signed out")
			return nil
		},
	}
}

func promptLine(reader *bufio.Reader, w io.Writer, prompt string) (string, error) {
	if _, err := fmt.Fprint(w, prompt); err != nil {
		return "", err
	}
	line, err := reader.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) && len(line) > 0 {
			return strings.TrimSpace(line), nil
		}
		return "", err
	}
	return strings.TrimSpace(line), nil
}

// promptPassword reads without echo from a terminal, or a plain line when
// stdin is piped.
func promptPassword(cmd *cobra.Command, reader *bufio.Reader) (string, error) {
	in, ok := cmd.InOrStdin().(*os.File)
	if !ok || !isTerminal(int(in.Fd())) {
		return promptLine(reader, cmd.ErrOrStderr(), "Password: ")
	}

	if _, err := fmt.Fprint(cmd.ErrOrStderr(), "Password: "); err != nil {
		return "", err
	}
	secret, err := readPassword(int(in.Fd()))
	_, _ = fmt.Fprintln(cmd.ErrOrStderr())
	if err != nil {
		return "", err
	}
	return string(secret), nil
}
