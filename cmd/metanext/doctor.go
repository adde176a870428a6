package main

import (
	"fmt"
	"io"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/Neysixx/metanext/pkg/doctor"
	"github.com/Neysixx/metanext/pkg/output"
)

func newDoctorCmd() *cobra.Command {
	var (
		strict bool
		format string
	)

	cmd := &cobra.Command{
		Use:   "doctor",
		Short: "Check every page for SEO problems",
		Long: `Check every page of the configuration:
  - title present and at most 60 characters
  - description present, plain text and at most 160 characters
  - JSON-LD structured data present

Findings are reported as errors, warnings and suggestions. Errors
only fail the command with --strict.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp(cmd)
			if err != nil {
				return err
			}

			project, _, err := a.loadProject()
			if err != nil {
				return err
			}

			report := doctor.Run(project)
			a.dump("report", report)

			if format != "" {
				if err := a.output().Format(a.out, report, format); err != nil {
					return err
				}
			} else {
				printReport(a.out, report)
			}

			if strict && report.HasErrors() {
				return fmt.Errorf("doctor found %d error(s): %w", len(report.Errors), report.Err())
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&strict, "strict", false, "Exit with an error when any error is found")
	addOutputFlag(cmd.Flags(), &format, "json, yaml, table")

	return cmd
}

func printReport(w io.Writer, report *doctor.Report) {
	if report.Total() == 0 {
		pterm.Success.WithWriter(w).Println("No issues found")
		return
	}

	heading := pterm.NewStyle(pterm.Bold)
	groups := []struct {
		title    string
		printer  *pterm.PrefixPrinter
		findings []string
	}{
		{"Errors", pterm.Error.WithWriter(w), report.Errors},
		{"Warnings", pterm.Warning.WithWriter(w), report.Warnings},
		{"Suggestions", pterm.Info.WithWriter(w), report.Suggestions},
	}

	for _, g := range groups {
		if len(g.findings) == 0 {
			continue
		}
		fmt.Fprintln(w, heading.Sprint(g.title))
		for _, f := range g.findings {
			g.printer.Println(f)
		}
		fmt.Fprintln(w)
	}

	fmt.Fprintln(w, output.RenderMessage("doctor_summary", map[string]interface{}{
		"errors":      len(report.Errors),
		"warnings":    len(report.Warnings),
		"suggestions": len(report.Suggestions),
	}))
}
