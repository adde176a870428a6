// Package metadata maps SEO configurations onto the metadata record a page
// renderer consumes.
//
// Map is the only entry point that merges: it takes a base configuration and
// an optional override and returns a fresh Record. Fields that are absent in
// both inputs are absent in the Record and are omitted when it is encoded.
package metadata

import (
	"bytes"
	"encoding/json"
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/Neysixx/metanext/pkg/seo"
)

// Record is the resolved page metadata.
type Record struct {
	Title           *seo.Title           `yaml:"title,omitempty" json:"title,omitempty"`
	Description     string               `yaml:"description,omitempty" json:"description,omitempty"`
	Keywords        []string             `yaml:"keywords,omitempty" json:"keywords,omitempty"`
	Creator         string               `yaml:"creator,omitempty" json:"creator,omitempty"`
	Publisher       string               `yaml:"publisher,omitempty" json:"publisher,omitempty"`
	Authors         []seo.Author         `yaml:"authors,omitempty" json:"authors,omitempty"`
	Manifest        string               `yaml:"manifest,omitempty" json:"manifest,omitempty"`
	Icons           *seo.Icons           `yaml:"icons,omitempty" json:"icons,omitempty"`
	FormatDetection *seo.FormatDetection `yaml:"formatDetection,omitempty" json:"formatDetection,omitempty"`
	OpenGraph       *seo.OpenGraph       `yaml:"openGraph,omitempty" json:"openGraph,omitempty"`
	Twitter         *seo.Twitter         `yaml:"twitter,omitempty" json:"twitter,omitempty"`
	Robots          *seo.Robots          `yaml:"robots,omitempty" json:"robots,omitempty"`
}

// Config converts r back into a configuration so it can be used as the base
// of another Map call.
func (r *Record) Config() *seo.Config {
	if r == nil {
		return &seo.Config{}
	}
	cfg := &seo.Config{
		Title:           r.Title,
		Description:     r.Description,
		Keywords:        r.Keywords,
		Creator:         r.Creator,
		Publisher:       r.Publisher,
		Authors:         r.Authors,
		Manifest:        r.Manifest,
		Icons:           r.Icons,
		FormatDetection: r.FormatDetection,
		OpenGraph:       r.OpenGraph,
		Twitter:         r.Twitter,
		Robots:          r.Robots,
	}
	return cfg.Clone()
}

// PageRecord pairs a page name with its resolved metadata.
type PageRecord struct {
	Name     string
	Metadata *Record
}

// PageRecords is an ordered list of page records. It encodes as a JSON
// object keyed by page name, in order.
type PageRecords []PageRecord

// Lookup returns the record of the named page.
func (p PageRecords) Lookup(name string) (*Record, bool) {
	for _, rec := range p {
		if rec.Name == name {
			return rec.Metadata, true
		}
	}
	return nil, false
}

// MarshalJSON encodes the records as a JSON object in order.
func (p PageRecords) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, rec := range p {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(rec.Name)
		if err != nil {
			return nil, err
		}
		value, err := json.Marshal(rec.Metadata)
		if err != nil {
			return nil, fmt.Errorf("page %q: %w", rec.Name, err)
		}
		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(value)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// MarshalYAML encodes the records as a mapping in order.
func (p PageRecords) MarshalYAML() (interface{}, error) {
	node := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
	for _, rec := range p {
		var value yaml.Node
		if err := value.Encode(rec.Metadata); err != nil {
			return nil, fmt.Errorf("page %q: %w", rec.Name, err)
		}
		node.Content = append(node.Content,
			&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: rec.Name},
			&value,
		)
	}
	return node, nil
}
