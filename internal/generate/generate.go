// Package generate writes the compiled SEO data file and the page component
// consumed by the Next.js application.
package generate

import (
	"bytes"
	"embed"
	"fmt"
	"os"
	"path/filepath"

	"github.com/Neysixx/metanext/internal/logging"
	"github.com/Neysixx/metanext/pkg/config"
	"github.com/Neysixx/metanext/pkg/metadata"
	"github.com/Neysixx/metanext/pkg/output"
	"github.com/Neysixx/metanext/pkg/seo"
)

//go:embed templates/seo.tsx
var templatesFS embed.FS

// Data is the content of the generated data file.
type Data struct {
	// Site is the site section as written in the project.
	Site *seo.Site `json:"site"`
	// SiteMetadata is the site section mapped on its own, for root layouts.
	SiteMetadata *metadata.Record `json:"siteMetadata"`
	// Pages are the page sections as written in the project.
	Pages seo.Pages `json:"pages"`
	// Metadata holds the mapped metadata of every page.
	Metadata metadata.PageRecords `json:"metadata"`
}

// BuildData compiles project into the data file content.
func BuildData(project *seo.Project) *Data {
	if project == nil {
		project = &seo.Project{}
	}
	return &Data{
		Site:         project.Site,
		SiteMetadata: metadata.Map(project.SiteConfig(), nil),
		Pages:        project.Pages,
		Metadata:     metadata.ForPages(project),
	}
}

// Result lists the files written by Generate.
type Result struct {
	DataPath      string
	ComponentPath string
}

// Paths returns the written files in a stable order.
func (r *Result) Paths() []string {
	return []string{r.DataPath, r.ComponentPath}
}

// Generator writes generated files.
type Generator struct {
	logger    logging.Logger
	formatter *output.JSONFormatter
}

// NewGenerator creates a Generator. A nil logger discards messages.
func NewGenerator(logger logging.Logger) *Generator {
	if logger == nil {
		logger = logging.NewNullLogger()
	}
	return &Generator{
		logger:    logger,
		formatter: output.NewJSONFormatter(),
	}
}

// Generate writes the data file and the component into dir.
func (g *Generator) Generate(project *seo.Project, dir string) (*Result, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create %s: %w", dir, err)
	}

	result := &Result{
		DataPath:      filepath.Join(dir, config.DataFile),
		ComponentPath: filepath.Join(dir, config.ComponentFile),
	}

	if err := g.WriteData(result.DataPath, BuildData(project)); err != nil {
		return nil, err
	}
	if err := g.WriteComponent(result.ComponentPath); err != nil {
		return nil, err
	}
	return result, nil
}

// WriteData encodes data as indented JSON into path.
func (g *Generator) WriteData(path string, data *Data) error {
	var buf bytes.Buffer
	if err := g.formatter.Format(&buf, data, output.NewFormatConfig()); err != nil {
		return fmt.Errorf("failed to encode %s: %w", filepath.Base(path), err)
	}

	g.logger.Verbose("Writing %s (%d pages)", path, len(data.Metadata))
	return writeFile(path, buf.Bytes())
}

// WriteComponent writes the page component into path.
func (g *Generator) WriteComponent(path string) error {
	content, err := templatesFS.ReadFile("templates/seo.tsx")
	if err != nil {
		return fmt.Errorf("failed to read component template: %w", err)
	}

	g.logger.Verbose("Writing %s", path)
	return writeFile(path, content)
}

func writeFile(path string, data []byte) error {
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}
