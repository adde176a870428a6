// Package output renders command results as JSON, YAML or tables and expands
// message templates.
package output

import "io"

// Formatter is the interface that all output formatters must implement.
type Formatter interface {
	// Format writes data to w according to the formatter's rules.
	Format(w io.Writer, data interface{}, config *FormatConfig) error

	// Name returns the name of the formatter (e.g., "json", "yaml", "table").
	Name() string

	// Supports returns true if the formatter can handle the given data type.
	Supports(data interface{}) bool
}

// FormatConfig contains configuration options for formatting output.
type FormatConfig struct {
	// Pretty enables indentation (JSON)
	Pretty bool

	// Colors enables colored output (tables)
	Colors bool

	// Compact writes JSON on a single line
	Compact bool

	// ShowHeaders controls header display (tables)
	ShowHeaders bool
}

// NewFormatConfig creates a new FormatConfig with sensible defaults.
func NewFormatConfig() *FormatConfig {
	return &FormatConfig{
		Pretty:      true,
		Colors:      true,
		ShowHeaders: true,
	}
}

// WithColors sets the colors option.
func (c *FormatConfig) WithColors(colors bool) *FormatConfig {
	c.Colors = colors
	return c
}

// WithCompact sets the compact option.
func (c *FormatConfig) WithCompact(compact bool) *FormatConfig {
	c.Compact = compact
	return c
}
