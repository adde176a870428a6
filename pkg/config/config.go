// Package config locates, loads and validates MetaNext SEO configurations.
package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/Neysixx/metanext/pkg/seo"
)

// Generated file names, written next to the project file.
const (
	DataFile      = "seo-data.json"
	ComponentFile = "seo.tsx"
)

// ProjectFiles lists the accepted project file names in lookup order.
var ProjectFiles = []string{"seo.yaml", "seo.yml", "seo.json"}

// ErrConfigNotFound is returned when no project file exists in the config directory.
var ErrConfigNotFound = errors.New("seo configuration not found")

// Loader handles locating and loading the project configuration.
type Loader struct {
	appName   string
	workDir   string
	envPrefix string
}

// NewLoader creates a new configuration loader rooted at workDir.
// An empty workDir means the current directory.
func NewLoader(appName, workDir string) *Loader {
	if workDir == "" {
		workDir = "."
	}
	return &Loader{
		appName:   appName,
		workDir:   workDir,
		envPrefix: strings.ToUpper(strings.ReplaceAll(appName, "-", "_")),
	}
}

// ConfigDir returns the directory holding the SEO files: src/lib when the
// project has a src directory, lib otherwise.
func (l *Loader) ConfigDir() string {
	if info, err := os.Stat(filepath.Join(l.workDir, "src")); err == nil && info.IsDir() {
		return filepath.Join(l.workDir, "src", "lib")
	}
	return filepath.Join(l.workDir, "lib")
}

// Path returns name joined to the config directory.
func (l *Loader) Path(name string) string {
	return filepath.Join(l.ConfigDir(), name)
}

// FindProjectFile returns the first existing project file in the config directory.
func (l *Loader) FindProjectFile() (string, error) {
	for _, name := range ProjectFiles {
		path := l.Path(name)
		if _, err := os.Stat(path); err == nil {
			return path, nil
		}
	}
	return "", fmt.Errorf("%w in %s (looked for %s)", ErrConfigNotFound, l.ConfigDir(), strings.Join(ProjectFiles, ", "))
}

// Load finds, parses and returns the project along with the file it came from.
// Environment overrides are applied to the site section.
func (l *Loader) Load() (*seo.Project, string, error) {
	path, err := l.FindProjectFile()
	if err != nil {
		return nil, "", err
	}

	project, err := LoadFile(path)
	if err != nil {
		return nil, path, err
	}

	l.applyEnvironmentOverrides(project)
	return project, path, nil
}

// LoadFile parses a project file. Files ending in .json are decoded as JSON,
// everything else as YAML.
func LoadFile(path string) (*seo.Project, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	format := "yaml"
	if strings.EqualFold(filepath.Ext(path), ".json") {
		format = "json"
	}

	project, err := Parse(data, format)
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", filepath.Base(path), err)
	}
	return project, nil
}

// Parse decodes a project document in the given format (json or yaml).
func Parse(data []byte, format string) (*seo.Project, error) {
	var project seo.Project

	switch format {
	case "json":
		if err := json.Unmarshal(data, &project); err != nil {
			return nil, err
		}
	case "yaml", "yml":
		if err := yaml.Unmarshal(data, &project); err != nil {
			return nil, err
		}
	default:
		return nil, fmt.Errorf("unsupported config format: %s", format)
	}

	return &project, nil
}

// applyEnvironmentOverrides patches the site section from the environment.
// <PREFIX>_SITE_NAME replaces site.name and <PREFIX>_BASE_URL replaces
// site.baseUrl. A project without a site is left alone so a missing site is
// still reported by validation.
func (l *Loader) applyEnvironmentOverrides(project *seo.Project) {
	if project == nil || project.Site == nil {
		return
	}

	v := viper.New()
	v.SetEnvPrefix(l.envPrefix)
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))

	if name := v.GetString("site.name"); name != "" {
		project.Site.Name = name
	}
	if baseURL := v.GetString("base-url"); baseURL != "" {
		project.Site.BaseURL = baseURL
	}
}
