package output

import (
	"bytes"
	"strings"
	"testing"

	"github.com/pterm/pterm"
)

type findings struct {
	rows [][]string
}

func (f findings) TableHeader() []string  { return []string{"Severity", "Finding"} }
func (f findings) TableRows() [][]string { return f.rows }

func TestTableFormatter_Supports(t *testing.T) {
	f := NewTableFormatter()

	tests := []struct {
		name string
		data interface{}
		want bool
	}{
		{name: "tabular", data: findings{}, want: true},
		{name: "raw rows", data: [][]string{{"a"}}, want: true},
		{name: "string", data: "x", want: false},
		{name: "nil", data: nil, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := f.Supports(tt.data); got != tt.want {
				t.Errorf("Supports() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestTableFormatter_Format(t *testing.T) {
	var buf bytes.Buffer
	data := findings{rows: [][]string{
		{"error", `Page "home": title missing`},
		{"warning", `Page "blog": description too long (161 > 160)`},
	}}

	if err := NewTableFormatter().Format(&buf, data, NewFormatConfig().WithColors(false)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	out := buf.String()
	for _, want := range []string{"Severity", "Finding", `Page "home": title missing`, "warning"} {
		if !strings.Contains(out, want) {
			t.Errorf("expected output to contain %q, got:\n%s", want, out)
		}
	}
}

func TestTableFormatter_EmptyWritesNothing(t *testing.T) {
	var buf bytes.Buffer
	if err := NewTableFormatter().Format(&buf, findings{}, nil); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if buf.Len() != 0 {
		t.Errorf("expected no output, got %q", buf.String())
	}
}

func TestTableFormatter_Unsupported(t *testing.T) {
	var buf bytes.Buffer
	if err := NewTableFormatter().Format(&buf, 42, nil); err == nil {
		t.Error("expected error for unsupported data")
	}
}

func TestTableFormatter_KeepsColorDisabled(t *testing.T) {
	pterm.DisableColor()
	defer pterm.EnableColor()

	var buf bytes.Buffer
	data := findings{rows: [][]string{{"error", "x"}}}
	if err := NewTableFormatter().Format(&buf, data, NewFormatConfig().WithColors(false)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if pterm.PrintColor {
		t.Error("expected color to stay disabled after formatting")
	}
}

func TestTableFormatter_RestoresColor(t *testing.T) {
	pterm.EnableColor()

	var buf bytes.Buffer
	data := findings{rows: [][]string{{"error", "x"}}}
	if err := NewTableFormatter().Format(&buf, data, NewFormatConfig().WithColors(false)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !pterm.PrintColor {
		t.Error("expected color to be enabled again after formatting")
	}
}
