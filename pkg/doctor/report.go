package doctor

import (
	"errors"
	"strings"
)

// Report holds the findings of a doctor run, grouped by severity.
// Each group keeps the order in which findings were produced.
type Report struct {
	Errors      []string `yaml:"errors" json:"errors"`
	Warnings    []string `yaml:"warnings" json:"warnings"`
	Suggestions []string `yaml:"suggestions" json:"suggestions"`
}

// NewReport returns an empty report with non-nil groups.
func NewReport() *Report {
	return &Report{
		Errors:      []string{},
		Warnings:    []string{},
		Suggestions: []string{},
	}
}

// AddError adds an error finding.
func (r *Report) AddError(msg string) {
	r.Errors = append(r.Errors, msg)
}

// AddWarning adds a warning finding.
func (r *Report) AddWarning(msg string) {
	r.Warnings = append(r.Warnings, msg)
}

// AddSuggestion adds a suggestion.
func (r *Report) AddSuggestion(msg string) {
	r.Suggestions = append(r.Suggestions, msg)
}

// HasErrors returns true if the report has any error finding.
func (r *Report) HasErrors() bool {
	return len(r.Errors) > 0
}

// Total returns the number of findings across all groups.
func (r *Report) Total() int {
	return len(r.Errors) + len(r.Warnings) + len(r.Suggestions)
}

// Merge returns a new report with the findings of r followed by those of
// other. Neither report is modified.
func (r *Report) Merge(other *Report) *Report {
	out := NewReport()
	for _, src := range []*Report{r, other} {
		if src == nil {
			continue
		}
		out.Errors = append(out.Errors, src.Errors...)
		out.Warnings = append(out.Warnings, src.Warnings...)
		out.Suggestions = append(out.Suggestions, src.Suggestions...)
	}
	return out
}

// Err returns the error findings joined into one error, or nil.
func (r *Report) Err() error {
	if !r.HasErrors() {
		return nil
	}
	return errors.New(strings.Join(r.Errors, "; "))
}

// TableHeader returns the column names used when the report is shown as a table.
func (r *Report) TableHeader() []string {
	return []string{"Severity", "Finding"}
}

// TableRows returns one row per finding: errors, then warnings, then suggestions.
func (r *Report) TableRows() [][]string {
	rows := make([][]string, 0, r.Total())
	for _, msg := range r.Errors {
		rows = append(rows, []string{"error", msg})
	}
	for _, msg := range r.Warnings {
		rows = append(rows, []string{"warning", msg})
	}
	for _, msg := range r.Suggestions {
		rows = append(rows, []string{"suggestion", msg})
	}
	return rows
}
