package output

import (
	"fmt"
	"io"
	"sort"
	"strings"
)

// Manager manages output formatters and selects one by name.
type Manager struct {
	formatters    map[string]Formatter
	defaultFormat string
	config        *FormatConfig
}

// NewManager creates a new output manager with the json, yaml and table
// formatters registered.
func NewManager() *Manager {
	m := &Manager{
		formatters:    make(map[string]Formatter),
		defaultFormat: "json",
		config:        NewFormatConfig(),
	}

	m.RegisterFormatter(NewJSONFormatter())
	m.RegisterFormatter(NewYAMLFormatter())
	m.RegisterFormatter(NewTableFormatter())

	return m
}

// RegisterFormatter registers a new formatter.
func (m *Manager) RegisterFormatter(formatter Formatter) {
	m.formatters[formatter.Name()] = formatter
}

// GetFormatter returns a formatter by name.
func (m *Manager) GetFormatter(name string) (Formatter, error) {
	formatter, ok := m.formatters[strings.ToLower(name)]
	if !ok {
		return nil, fmt.Errorf("formatter '%s' not found (supported: %s)", name, strings.Join(m.GetSupportedFormats(), ", "))
	}
	return formatter, nil
}

// SetDefaultFormat sets the format used when none is given.
func (m *Manager) SetDefaultFormat(format string) {
	m.defaultFormat = format
}

// SetConfig sets the format configuration.
func (m *Manager) SetConfig(config *FormatConfig) {
	m.config = config
}

// Format formats data using the named format, or the default one.
func (m *Manager) Format(w io.Writer, data interface{}, format string) error {
	if format == "" {
		format = m.defaultFormat
	}

	formatter, err := m.GetFormatter(format)
	if err != nil {
		return err
	}

	if !formatter.Supports(data) {
		return fmt.Errorf("formatter '%s' does not support data type %T", format, data)
	}

	return formatter.Format(w, data, m.config)
}

// IsFormatSupported reports whether a formatter is registered under format.
func (m *Manager) IsFormatSupported(format string) bool {
	_, ok := m.formatters[strings.ToLower(format)]
	return ok
}

// GetSupportedFormats returns the registered format names, sorted.
func (m *Manager) GetSupportedFormats() []string {
	formats := make([]string, 0, len(m.formatters))
	for name := range m.formatters {
		formats = append(formats, name)
	}
	sort.Strings(formats)
	return formats
}
