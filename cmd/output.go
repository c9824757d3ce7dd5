package cmd

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"

	"github.com/bnema/storefront-cli/internal/adapters/render/views"
	"github.com/bnema/storefront-cli/internal/adapters/storeapi"
	"github.com/bnema/storefront-cli/internal/validation"
	"github.com/spf13/cobra"
)

func writeRendered(cmd *cobra.Command, rendered string) error {
	_, err := fmt.Fprintln(cmd.OutOrStdout(), rendered)
	return err
}

func writeJSON(cmd *cobra.Command, v any) error {
	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func notify(cmd *cobra.Command, kind views.ToastKind, message string) {
	_, _ = fmt.Fprintln(cmd.ErrOrStderr(), views.RenderToast(kind, message))
}

// failAction reports a failed user action on stderr and returns err so the
// command exits non-zero.
func failAction(cmd *cobra.Command, fallback string, err error) error {
	notify(cmd, views.ToastError, userMessage(fallback, err))
	return err
}

// warnLoad logs a failed background load. The caller renders its empty state.
func (a *app) warnLoad(what string, err error) {
	a.logger.Warn("load "+what, slog.String("error", err.Error()))
}

func userMessage(fallback string, err error) string {
	var validationErr *validation.ValidationError
	if errors.As(err, &validationErr) {
		return fmt.Sprintf("%s: %s", fallback, validationErr.Error())
	}
	if msg := storeapi.MessageOf(err); msg != "" {
		return msg
	}
	return fallback
}
