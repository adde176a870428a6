// Package main implements the MetaNext CLI.
package main

import (
	"fmt"
	"os"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

const appName = "metanext"

var (
	// Version is set at build time
	version = "0.1.0"
	// BuildDate is set at build time
	buildDate = "unknown"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   appName,
		Short: "MetaNext - SEO metadata for Next.js from one config file",
		Long: `MetaNext compiles a single SEO configuration into the metadata
records a Next.js application renders.

Describe the site once, override it per page, then let MetaNext
check the pages and generate the data file and component.`,
		Version:      fmt.Sprintf("%s (built %s)", version, buildDate),
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if noColor, _ := cmd.Flags().GetBool("no-color"); noColor {
				pterm.DisableColor()
			}
			dir, _ := cmd.Flags().GetString("dir")
			return loadEnvFiles(dir)
		},
	}

	// Add global flags
	cmd.PersistentFlags().BoolP("verbose", "v", false, "Enable verbose output")
	cmd.PersistentFlags().BoolP("debug", "d", false, "Enable debug mode")
	cmd.PersistentFlags().StringP("dir", "C", "", "Project directory (default: current directory)")
	cmd.PersistentFlags().Bool("no-color", false, "Disable colored output")

	// Add subcommands
	cmd.AddCommand(newInitCmd())
	cmd.AddCommand(newConfigureCmd())
	cmd.AddCommand(newDoctorCmd())
	cmd.AddCommand(newValidateCmd())
	cmd.AddCommand(newMetadataCmd())
	cmd.AddCommand(newConfigCmd())

	return cmd
}
