package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Neysixx/metanext/pkg/config"
	"github.com/Neysixx/metanext/pkg/output"
)

func newValidateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Validate the structure of the SEO configuration",
		Long: `Validate the SEO configuration without generating anything.

This command checks:
  - the site section and its required name and baseUrl
  - that baseUrl is an absolute URL without a trailing slash
  - enumerated values (twitter.card, robots.googleBot.max-image-preview)
  - JSON-LD entries carrying @context and @type`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp(cmd)
			if err != nil {
				return err
			}

			project, path, err := a.loadProject()
			if err != nil {
				return err
			}

			messages := config.ValidateProject(project)
			if len(messages) > 0 {
				for _, msg := range messages {
					a.logger.Error(msg)
				}
				return fmt.Errorf("%s has %d validation error(s)", path, len(messages))
			}

			fmt.Fprintln(a.out, "✓ "+output.RenderMessage("config_valid", map[string]interface{}{"pages": len(project.Pages)}))
			return nil
		},
	}

	return cmd
}
