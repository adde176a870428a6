package output

import (
	"encoding/json"
	"fmt"
	"io"
)

// JSONFormatter formats output as JSON. HTML characters are written as-is
// so generated files stay readable.
type JSONFormatter struct {
	indent string
}

// NewJSONFormatter creates a new JSON formatter.
func NewJSONFormatter() *JSONFormatter {
	return &JSONFormatter{
		indent: "  ",
	}
}

// Name returns the formatter name.
func (f *JSONFormatter) Name() string {
	return "json"
}

// Supports returns true: any value can be encoded.
func (f *JSONFormatter) Supports(data interface{}) bool {
	return true
}

// Format encodes data as JSON followed by a newline.
func (f *JSONFormatter) Format(w io.Writer, data interface{}, config *FormatConfig) error {
	if config == nil {
		config = NewFormatConfig()
	}

	encoder := json.NewEncoder(w)
	encoder.SetEscapeHTML(false)
	if config.Pretty && !config.Compact {
		encoder.SetIndent("", f.indent)
	}

	if err := encoder.Encode(data); err != nil {
		return fmt.Errorf("failed to encode JSON: %w", err)
	}
	return nil
}
