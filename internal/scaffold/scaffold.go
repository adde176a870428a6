// Package scaffold creates a starter SEO configuration from an embedded template.
package scaffold

import (
	"embed"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/Neysixx/metanext/internal/logging"
	"github.com/Neysixx/metanext/pkg/output"
)

//go:embed templates/seo.yaml
var templatesFS embed.FS

const configTemplate = "templates/seo.yaml"

// ErrConfigExists is returned when the target file exists and Force is not set.
var ErrConfigExists = errors.New("configuration already exists")

// Options fills the template placeholders.
type Options struct {
	SiteName        string
	BaseURL         string
	SiteDescription string
	// Force overwrites an existing file.
	Force bool
}

// DefaultOptions returns the placeholder values used when none are given.
func DefaultOptions() Options {
	return Options{
		SiteName:        "My Website",
		BaseURL:         "https://example.com",
		SiteDescription: "A short description of my website",
	}
}

// withDefaults fills empty fields and drops trailing slashes from BaseURL.
func (o Options) withDefaults() Options {
	def := DefaultOptions()
	if o.SiteName == "" {
		o.SiteName = def.SiteName
	}
	if o.BaseURL == "" {
		o.BaseURL = def.BaseURL
	}
	if o.SiteDescription == "" {
		o.SiteDescription = def.SiteDescription
	}
	o.BaseURL = strings.TrimRight(o.BaseURL, "/")
	return o
}

// Scaffolder handles project initialization from templates.
type Scaffolder struct {
	logger logging.Logger
	engine *output.TemplateEngine
}

// NewScaffolder creates a new Scaffolder. A nil logger discards messages.
func NewScaffolder(logger logging.Logger) *Scaffolder {
	if logger == nil {
		logger = logging.NewNullLogger()
	}
	return &Scaffolder{
		logger: logger,
		engine: output.NewTemplateEngine(),
	}
}

// Render returns the starter configuration for opts.
func (s *Scaffolder) Render(opts Options) ([]byte, error) {
	opts = opts.withDefaults()

	content, err := templatesFS.ReadFile(configTemplate)
	if err != nil {
		return nil, fmt.Errorf("failed to read template: %w", err)
	}

	rendered, err := s.engine.Render(string(content), map[string]interface{}{
		"siteName":        opts.SiteName,
		"baseUrl":         opts.BaseURL,
		"siteDescription": opts.SiteDescription,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to render template: %w", err)
	}

	return []byte(rendered), nil
}

// CreateConfig writes the starter configuration to path, creating parent
// directories. It refuses to replace an existing file unless opts.Force.
func (s *Scaffolder) CreateConfig(path string, opts Options) error {
	if _, err := os.Stat(path); err == nil && !opts.Force {
		return fmt.Errorf("%w: %s", ErrConfigExists, path)
	}

	data, err := s.Render(opts)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	s.logger.Verbose("Writing %s", path)
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}
