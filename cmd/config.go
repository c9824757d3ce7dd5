package cmd

import (
	"fmt"

	"github.com/bnema/storefront-cli/internal/adapters/render/views"
	"github.com/bnema/storefront-cli/internal/config"
	"github.com/spf13/cobra"
)

func newConfigCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:         "config",
		Short:       "Show or change settings",
		Annotations: map[string]string{annotationWire: wireSkip},
	}

	cmd.AddCommand(newConfigShowCmd(), newConfigSetCmd())
	return cmd
}

func newConfigShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Print the effective settings",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			path, err := config.Path()
			if err != nil {
				return err
			}
			cfg, err := config.Load(path)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if _, err := fmt.Fprintf(out, "# %s\n", path); err != nil {
				return err
			}
			values := cfg.Values()
			for _, key := range config.Keys() {
				if _, err := fmt.Fprintf(out, "%s = %s\n", key, values[key]); err != nil {
					return err
				}
			}
			return nil
		},
	}
}

// set edits the file layer only, so environment overrides are not persisted.
func newConfigSetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "set <key> <value>",
		Short: "Persist one setting to the config file",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := config.Path()
			if err != nil {
				return err
			}
			cfg, err := config.LoadFile(path)
			if err != nil {
				return err
			}

			if err := cfg.Set(args[0], args[1]); err != nil {
				return err
			}
			if err := config.Save(path, cfg); err != nil {
				return err
			}

			notify(cmd, views.ToastSuccess, fmt.Sprintf("%s updated", args[0]))
			return nil
		},
	}
}
