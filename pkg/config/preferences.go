package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/adrg/xdg"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

// Preferences holds per-user CLI settings stored in the XDG config directory.
type Preferences struct {
	Output OutputPreferences `yaml:"output"`
}

// OutputPreferences controls how commands print results.
type OutputPreferences struct {
	Format string `yaml:"format,omitempty"`
	Color  *bool  `yaml:"color,omitempty"`
}

// DefaultPreferences returns the settings used when no preferences file exists.
func DefaultPreferences() *Preferences {
	return &Preferences{Output: OutputPreferences{Format: "json"}}
}

// ColorEnabled reports whether colored output is wanted. Unset means yes.
func (p *Preferences) ColorEnabled() bool {
	if p == nil || p.Output.Color == nil {
		return true
	}
	return *p.Output.Color
}

// PreferencesPath returns the preferences file path. <PREFIX>_CONFIG
// replaces the XDG location.
func (l *Loader) PreferencesPath() string {
	if customPath := os.Getenv(l.envPrefix + "_CONFIG"); customPath != "" {
		return customPath
	}
	return filepath.Join(xdg.ConfigHome, l.appName, "config.yaml")
}

// PreferenceKeys lists the keys accepted by SetPreference.
var PreferenceKeys = []string{"output.format", "output.color"}

// LoadPreferences reads user preferences. A missing file yields the defaults.
// <PREFIX>_OUTPUT_FORMAT and <PREFIX>_NO_COLOR take precedence over the file.
func (l *Loader) LoadPreferences() (*Preferences, error) {
	prefs, err := l.readPreferences()
	if err != nil {
		return nil, err
	}

	v := viper.New()
	v.SetEnvPrefix(l.envPrefix)
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))

	if format := v.GetString("output.format"); format != "" {
		prefs.Output.Format = format
	}
	if v.IsSet("no-color") && v.GetBool("no-color") {
		off := false
		prefs.Output.Color = &off
	}
	return prefs, nil
}

// readPreferences reads the preferences file alone, without environment
// overrides.
func (l *Loader) readPreferences() (*Preferences, error) {
	prefs := DefaultPreferences()

	path := l.PreferencesPath()
	data, err := os.ReadFile(path)
	switch {
	case os.IsNotExist(err):
	case err != nil:
		return nil, fmt.Errorf("failed to read preferences: %w", err)
	default:
		if err := yaml.Unmarshal(data, prefs); err != nil {
			return nil, fmt.Errorf("failed to parse preferences %s: %w", path, err)
		}
	}

	if prefs.Output.Format == "" {
		prefs.Output.Format = DefaultPreferences().Output.Format
	}
	return prefs, nil
}

// SetPreference stores one preference in the preferences file. Values set
// through the environment are not written back.
func (l *Loader) SetPreference(key, value string) (*Preferences, error) {
	prefs, err := l.readPreferences()
	if err != nil {
		return nil, err
	}

	switch key {
	case "output.format":
		if value == "" {
			return nil, fmt.Errorf("output.format must not be empty")
		}
		prefs.Output.Format = strings.ToLower(value)
	case "output.color":
		enabled, err := strconv.ParseBool(value)
		if err != nil {
			return nil, fmt.Errorf("output.color must be true or false (got %q)", value)
		}
		prefs.Output.Color = &enabled
	default:
		return nil, fmt.Errorf("unknown preference %q (known: %s)", key, strings.Join(PreferenceKeys, ", "))
	}

	if err := l.SavePreferences(prefs); err != nil {
		return nil, err
	}
	return prefs, nil
}

// SavePreferences writes prefs to the preferences path, creating the
// directory when needed.
func (l *Loader) SavePreferences(prefs *Preferences) error {
	path := l.PreferencesPath()

	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(prefs)
	if err != nil {
		return fmt.Errorf("failed to marshal preferences: %w", err)
	}

	if err := os.WriteFile(path, data, 0600); err != nil {
		return fmt.Errorf("failed to write preferences: %w", err)
	}
	return nil
}
