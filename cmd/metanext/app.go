package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/davecgh/go-spew/spew"
	"github.com/joho/godotenv"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"golang.org/x/term"

	"github.com/Neysixx/metanext/internal/logging"
	"github.com/Neysixx/metanext/pkg/config"
	"github.com/Neysixx/metanext/pkg/output"
	"github.com/Neysixx/metanext/pkg/seo"
)

// envFiles are loaded from the project directory, first match wins per key.
var envFiles = []string{".env.local", ".env"}

var dumper = spew.ConfigState{
	Indent:                  "  ",
	DisablePointerAddresses: true,
	DisableCapacities:       true,
	SortKeys:                true,
}

// app bundles what every command needs.
type app struct {
	loader *config.Loader
	logger logging.Logger
	prefs  *config.Preferences
	debug  bool
	color  bool
	out    io.Writer
	errOut io.Writer
}

func newApp(cmd *cobra.Command) (*app, error) {
	flags := cmd.Flags()
	verbose, _ := flags.GetBool("verbose")
	debug, _ := flags.GetBool("debug")
	dir, _ := flags.GetString("dir")
	noColor, _ := flags.GetBool("no-color")

	loader := config.NewLoader(appName, dir)
	prefs, err := loader.LoadPreferences()
	if err != nil {
		return nil, err
	}
	if !prefs.ColorEnabled() {
		pterm.DisableColor()
	}

	return &app{
		loader: loader,
		logger: logging.NewConsoleLoggerWithWriter(cmd.ErrOrStderr(), verbose || debug),
		prefs:  prefs,
		debug:  debug,
		color:  prefs.ColorEnabled() && !noColor,
		out:    cmd.OutOrStdout(),
		errOut: cmd.ErrOrStderr(),
	}, nil
}

// loadProject loads the project file of the working directory.
func (a *app) loadProject() (*seo.Project, string, error) {
	a.logger.Verbose("Looking for %v in %s", config.ProjectFiles, a.loader.ConfigDir())

	project, path, err := a.loader.Load()
	if errors.Is(err, config.ErrConfigNotFound) {
		return nil, "", fmt.Errorf("%w\nRun '%s init' to create one", err, appName)
	}
	if err != nil {
		return nil, path, err
	}

	a.logger.Verbose("Loaded %s (%d pages)", path, len(project.Pages))
	a.dump("project", project)
	return project, path, nil
}

// dump prints v to stderr in debug mode.
func (a *app) dump(label string, v interface{}) {
	if !a.debug {
		return
	}
	fmt.Fprintf(a.errOut, "--- %s ---\n", label)
	dumper.Fdump(a.errOut, v)
}

// output returns a formatter manager defaulting to the user's preferred
// format.
func (a *app) output() *output.Manager {
	m := output.NewManager()
	m.SetDefaultFormat(a.prefs.Output.Format)
	m.SetConfig(output.NewFormatConfig().WithColors(a.color))
	return m
}

// addOutputFlag registers --output/-o on fs.
func addOutputFlag(fs *pflag.FlagSet, target *string, formats string) {
	fs.StringVarP(target, "output", "o", "", "Output format ("+formats+")")
}

// loadEnvFiles loads the project's .env files into the environment without
// replacing variables that are already set.
func loadEnvFiles(dir string) error {
	if dir == "" {
		dir = "."
	}
	for _, name := range envFiles {
		path := filepath.Join(dir, name)
		if _, err := os.Stat(path); err != nil {
			continue
		}
		if err := godotenv.Load(path); err != nil {
			return fmt.Errorf("failed to load %s: %w", path, err)
		}
	}
	return nil
}

// isTerminal reports whether w is an interactive terminal.
func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}
