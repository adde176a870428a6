package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Neysixx/metanext/internal/generate"
	"github.com/Neysixx/metanext/pkg/config"
	"github.com/Neysixx/metanext/pkg/output"
	"github.com/Neysixx/metanext/pkg/progress"
	"github.com/Neysixx/metanext/pkg/seo"
)

func newConfigureCmd() *cobra.Command {
	var validateOnly bool

	cmd := &cobra.Command{
		Use:   "configure",
		Short: "Validate the configuration and generate seo-data.json and seo.tsx",
		Long: `Read the SEO configuration, validate it and generate:
  - seo-data.json: the site, the pages and the mapped metadata of every page
  - seo.tsx:       the component that renders a page's tags

Generation is refused while the configuration has validation errors.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp(cmd)
			if err != nil {
				return err
			}

			var (
				project *seo.Project
				path    string
				result  *generate.Result
			)

			steps := []progress.Step{
				{Message: "Reading configuration...", Run: func() (err error) {
					project, path, err = a.loadProject()
					return err
				}},
				{Message: "Validating configuration...", Run: func() error {
					return config.NewValidator().Validate(project)
				}},
			}
			if !validateOnly {
				steps = append(steps, progress.Step{Message: "Generating files...", Run: func() (err error) {
					result, err = generate.NewGenerator(a.logger).Generate(project, a.loader.ConfigDir())
					return err
				}})
			}

			spinner := progress.DefaultConfig()
			spinner.Enabled = !a.debug && isTerminal(a.errOut)
			spinner.Writer = a.errOut
			if err := progress.RunSteps(spinner, "Done", steps...); err != nil {
				return err
			}

			if validateOnly {
				fmt.Fprintln(a.out, "✓ "+output.RenderMessage("config_valid", map[string]interface{}{"pages": len(project.Pages)}))
				return nil
			}

			a.logger.Verbose("Source: %s", path)
			for _, p := range result.Paths() {
				fmt.Fprintln(a.out, "✓ "+output.RenderMessage("generated", map[string]interface{}{"path": p}))
			}
			fmt.Fprintln(a.out, "\n"+output.RenderMessage("usage_hint", nil))
			return nil
		},
	}

	cmd.Flags().BoolVar(&validateOnly, "validate", false, "Only validate the configuration")

	return cmd
}
