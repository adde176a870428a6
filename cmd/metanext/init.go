package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Neysixx/metanext/internal/scaffold"
	"github.com/Neysixx/metanext/pkg/output"
)

func newInitCmd() *cobra.Command {
	opts := scaffold.DefaultOptions()

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Create a starter SEO configuration",
		Long: `Create seo.yaml in the config directory (src/lib when the project
has a src directory, lib otherwise).

The file describes the site and a home page. Edit it, then run
'metanext doctor' and 'metanext configure'.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp(cmd)
			if err != nil {
				return err
			}

			if existing, err := a.loader.FindProjectFile(); err == nil && !opts.Force {
				return errors.New(output.RenderMessage("config_exists", map[string]interface{}{"path": existing}))
			}

			path := a.loader.Path("seo.yaml")
			if err := scaffold.NewScaffolder(a.logger).CreateConfig(path, opts); err != nil {
				return fmt.Errorf("failed to create configuration: %w", err)
			}

			fmt.Fprintln(a.out, "✓ "+output.RenderMessage("config_created", map[string]interface{}{"path": path}))
			fmt.Fprintf(a.out, "\nNext steps:\n  1. Describe your pages in %s\n  2. Run '%s doctor' to check them\n  3. Run '%s configure' to generate the files\n", path, appName, appName)
			return nil
		},
	}

	cmd.Flags().StringVar(&opts.SiteName, "name", opts.SiteName, "Site name")
	cmd.Flags().StringVar(&opts.BaseURL, "url", opts.BaseURL, "Site base URL")
	cmd.Flags().StringVar(&opts.SiteDescription, "description", opts.SiteDescription, "Site description")
	cmd.Flags().BoolVarP(&opts.Force, "force", "f", false, "Overwrite an existing configuration")

	return cmd
}
