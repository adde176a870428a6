package output

import (
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

// YAMLFormatter formats output as YAML.
type YAMLFormatter struct {
	indent int
}

// NewYAMLFormatter creates a new YAML formatter.
func NewYAMLFormatter() *YAMLFormatter {
	return &YAMLFormatter{indent: 2}
}

// Name returns the formatter name.
func (f *YAMLFormatter) Name() string {
	return "yaml"
}

// Supports returns true: any value can be encoded.
func (f *YAMLFormatter) Supports(data interface{}) bool {
	return true
}

// Format formats the data as YAML and writes it to the writer.
func (f *YAMLFormatter) Format(w io.Writer, data interface{}, _ *FormatConfig) error {
	if data == nil {
		_, err := w.Write([]byte("null\n"))
		return err
	}

	encoder := yaml.NewEncoder(w)
	defer func() { _ = encoder.Close() }()
	encoder.SetIndent(f.indent)

	if err := encoder.Encode(data); err != nil {
		return fmt.Errorf("failed to encode YAML: %w", err)
	}
	return nil
}
