package output

import (
	"fmt"
	"io"

	"github.com/pterm/pterm"
)

// Tabular is implemented by values that can be shown as a table.
type Tabular interface {
	TableHeader() []string
	TableRows() [][]string
}

// TableFormatter formats Tabular values and raw [][]string rows using pterm.
type TableFormatter struct{}

// NewTableFormatter creates a new table formatter.
func NewTableFormatter() *TableFormatter {
	return &TableFormatter{}
}

// Name returns the formatter name.
func (f *TableFormatter) Name() string {
	return "table"
}

// Supports returns true for Tabular values and [][]string.
func (f *TableFormatter) Supports(data interface{}) bool {
	switch data.(type) {
	case Tabular, [][]string:
		return true
	default:
		return false
	}
}

// Format renders the data as a table. An empty table writes nothing.
func (f *TableFormatter) Format(w io.Writer, data interface{}, config *FormatConfig) error {
	if config == nil {
		config = NewFormatConfig()
	}

	var tableData [][]string
	hasHeader := false

	switch v := data.(type) {
	case Tabular:
		rows := v.TableRows()
		if len(rows) == 0 {
			return nil
		}
		if header := v.TableHeader(); len(header) > 0 && config.ShowHeaders {
			tableData = append(tableData, header)
			hasHeader = true
		}
		tableData = append(tableData, rows...)
	case [][]string:
		if len(v) == 0 {
			return nil
		}
		tableData = v
		hasHeader = config.ShowHeaders
	default:
		return fmt.Errorf("unsupported data type for table formatting: %T", data)
	}

	table := pterm.DefaultTable.WithHasHeader(hasHeader)
	if config.Colors {
		table = table.WithHeaderStyle(pterm.NewStyle(pterm.FgLightCyan, pterm.Bold))
	} else if pterm.PrintColor {
		pterm.DisableColor()
		defer pterm.EnableColor()
	}

	rendered, err := table.WithData(tableData).Srender()
	if err != nil {
		return fmt.Errorf("failed to render table: %w", err)
	}

	_, err = fmt.Fprintln(w, rendered)
	return err
}
