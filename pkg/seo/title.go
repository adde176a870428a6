package seo

import (
	"bytes"
	"encoding/json"
	"fmt"

	"gopkg.in/yaml.v3"
)

// Title is a page title. It is either a plain string or a template record
// holding a default title and a pattern such as "%s | Site".
type Title struct {
	Text     string
	Default  string
	Template string
	// IsTemplate marks the record form. A plain title only uses Text.
	IsTemplate bool
}

// titleRecord is the wire shape of the template form.
type titleRecord struct {
	Default  string `yaml:"default,omitempty" json:"default,omitempty"`
	Template string `yaml:"template,omitempty" json:"template,omitempty"`
}

// PlainTitle returns a plain string title.
func PlainTitle(text string) *Title {
	return &Title{Text: text}
}

// TemplateTitle returns a template record title.
func TemplateTitle(def, template string) *Title {
	return &Title{Default: def, Template: template, IsTemplate: true}
}

// String returns the text a reader would see: the plain text or the default.
func (t *Title) String() string {
	if t == nil {
		return ""
	}
	if t.IsTemplate {
		return t.Default
	}
	return t.Text
}

// IsZero reports whether the title carries nothing: nil, an empty string or
// a template record with neither default nor pattern.
func (t *Title) IsZero() bool {
	if t == nil {
		return true
	}
	if t.IsTemplate {
		return t.Default == "" && t.Template == ""
	}
	return t.Text == ""
}

// MarshalJSON writes a plain title as a JSON string and a template as an object.
func (t Title) MarshalJSON() ([]byte, error) {
	if !t.IsTemplate {
		return json.Marshal(t.Text)
	}
	return json.Marshal(titleRecord{Default: t.Default, Template: t.Template})
}

// UnmarshalJSON accepts either a JSON string or a {default, template} object.
func (t *Title) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*t = Title{Text: s}
		return nil
	}

	var rec titleRecord
	if err := json.Unmarshal(data, &rec); err != nil {
		return fmt.Errorf("title must be a string or an object with default/template: %w", err)
	}
	*t = Title{Default: rec.Default, Template: rec.Template, IsTemplate: true}
	return nil
}

// MarshalYAML writes a plain title as a scalar and a template as a mapping.
func (t Title) MarshalYAML() (interface{}, error) {
	if !t.IsTemplate {
		return t.Text, nil
	}
	return titleRecord{Default: t.Default, Template: t.Template}, nil
}

// UnmarshalYAML accepts either a scalar or a {default, template} mapping.
func (t *Title) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.ScalarNode:
		*t = Title{Text: node.Value}
		return nil
	case yaml.MappingNode:
		var rec titleRecord
		if err := node.Decode(&rec); err != nil {
			return err
		}
		*t = Title{Default: rec.Default, Template: rec.Template, IsTemplate: true}
		return nil
	default:
		return fmt.Errorf("line %d: title must be a string or a mapping with default/template", node.Line)
	}
}
