package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/Neysixx/metanext/pkg/config"
	"github.com/Neysixx/metanext/pkg/output"
)

func newConfigCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage user preferences",
		Long: `Manage the per-user preferences file (output format and colors).

The file lives in the XDG config directory unless METANEXT_CONFIG
points elsewhere.`,
	}

	cmd.AddCommand(newConfigSetCmd())
	cmd.AddCommand(newConfigShowCmd())
	cmd.AddCommand(newConfigPathCmd())

	return cmd
}

func newConfigSetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "set <key> <value>",
		Short: "Set a preference",
		Long: fmt.Sprintf(`Set a preference and save it.

Keys: %s`, strings.Join(config.PreferenceKeys, ", ")),
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp(cmd)
			if err != nil {
				return err
			}

			key, value := args[0], args[1]
			if key == "output.format" {
				if m := output.NewManager(); !m.IsFormatSupported(value) {
					return fmt.Errorf("unsupported output format %q (supported: %s)", value, strings.Join(m.GetSupportedFormats(), ", "))
				}
			}

			if _, err := a.loader.SetPreference(key, value); err != nil {
				return err
			}
			fmt.Fprintf(a.out, "✓ Set %s = %s in %s\n", key, value, a.loader.PreferencesPath())
			return nil
		},
	}
}

func newConfigShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Print the effective preferences",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp(cmd)
			if err != nil {
				return err
			}
			return a.output().Format(a.out, a.prefs, "yaml")
		},
	}
}

func newConfigPathCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "path",
		Short: "Print the preferences file path",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp(cmd)
			if err != nil {
				return err
			}
			fmt.Fprintln(a.out, a.loader.PreferencesPath())
			return nil
		},
	}
}
