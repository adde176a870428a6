package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Neysixx/metanext/pkg/metadata"
	"github.com/Neysixx/metanext/pkg/output"
)

func newMetadataCmd() *cobra.Command {
	var (
		format  string
		all     bool
		compact bool
	)

	cmd := &cobra.Command{
		Use:   "metadata [page]",
		Short: "Print the mapped metadata of a page",
		Long: `Print the metadata record a page renders: the site configuration
with the page's overrides applied.

Without a page name the site's own record is printed. Use --all to
print every page.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp(cmd)
			if err != nil {
				return err
			}

			project, _, err := a.loadProject()
			if err != nil {
				return err
			}

			var data interface{}
			switch {
			case all:
				data = metadata.ForPages(project)
			case len(args) == 1:
				rec, err := metadata.ForPage(project, args[0])
				if errors.Is(err, metadata.ErrPageNotFound) {
					return fmt.Errorf("%w (available: %v)", err, project.Pages.Names())
				}
				if err != nil {
					return err
				}
				data = rec
			default:
				data = metadata.Map(project.SiteConfig(), nil)
			}

			a.dump("metadata", data)
			m := a.output()
			m.SetConfig(output.NewFormatConfig().WithColors(a.color).WithCompact(compact))
			return m.Format(a.out, data, format)
		},
	}

	addOutputFlag(cmd.Flags(), &format, "json, yaml")
	cmd.Flags().BoolVar(&all, "all", false, "Print the metadata of every page")
	cmd.Flags().BoolVar(&compact, "compact", false, "Print JSON on a single line")

	return cmd
}
