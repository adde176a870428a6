package seo

import (
	"bytes"
	"encoding/json"
	"fmt"

	"gopkg.in/yaml.v3"
)

// Project is the on-disk SEO document: one site section and the pages that
// override it.
type Project struct {
	Site  *Site `yaml:"site,omitempty" json:"site,omitempty"`
	Pages Pages `yaml:"pages,omitempty" json:"pages,omitempty"`
}

// Site is the site-level configuration. The document spells the base URL
// "baseUrl"; "url" is accepted as well.
type Site struct {
	Config  `yaml:",inline"`
	BaseURL string `yaml:"baseUrl,omitempty" json:"baseUrl,omitempty"`
}

// SiteConfig returns the site section as a Config, with URL resolved from
// baseUrl. It returns nil when the project has no site section.
func (p *Project) SiteConfig() *Config {
	if p == nil || p.Site == nil {
		return nil
	}
	cfg := p.Site.Config.Clone()
	cfg.URL, _ = p.Site.ResolveURL()
	return cfg
}

// ResolveURL returns the site URL and the key it was read from: baseUrl
// when set, url otherwise. Both are empty when neither is set.
func (s *Site) ResolveURL() (siteURL, key string) {
	switch {
	case s == nil:
		return "", ""
	case s.BaseURL != "":
		return s.BaseURL, "baseUrl"
	case s.URL != "":
		return s.URL, "url"
	default:
		return "", ""
	}
}

// Page is a named page fragment.
type Page struct {
	Name   string
	Config *Config
}

// Pages is an ordered mapping from page name to page fragment. Document
// order is preserved on decode and encode.
type Pages []Page

// Lookup returns the fragment registered under name.
func (p Pages) Lookup(name string) (*Config, bool) {
	for _, page := range p {
		if page.Name == name {
			return page.Config, true
		}
	}
	return nil, false
}

// Names returns the page names in document order.
func (p Pages) Names() []string {
	names := make([]string, len(p))
	for i, page := range p {
		names[i] = page.Name
	}
	return names
}

// Set replaces the fragment for name, or appends it when name is new.
func (p Pages) Set(name string, cfg *Config) Pages {
	for i := range p {
		if p[i].Name == name {
			out := append(Pages(nil), p...)
			out[i].Config = cfg
			return out
		}
	}
	return append(append(Pages(nil), p...), Page{Name: name, Config: cfg})
}

// UnmarshalYAML decodes a mapping node, keeping key order. A repeated key
// replaces the earlier entry in place.
func (p *Pages) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.MappingNode {
		return fmt.Errorf("line %d: pages must be a mapping of page name to configuration", node.Line)
	}

	var pages Pages
	for i := 0; i+1 < len(node.Content); i += 2 {
		key, value := node.Content[i], node.Content[i+1]

		var cfg *Config
		if err := value.Decode(&cfg); err != nil {
			return fmt.Errorf("page %q: %w", key.Value, err)
		}
		pages = pages.Set(key.Value, cfg)
	}

	*p = pages
	return nil
}

// MarshalYAML encodes the pages as a mapping in order.
func (p Pages) MarshalYAML() (interface{}, error) {
	node := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
	for _, page := range p {
		var value yaml.Node
		if err := value.Encode(page.Config); err != nil {
			return nil, fmt.Errorf("page %q: %w", page.Name, err)
		}
		node.Content = append(node.Content,
			&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: page.Name},
			&value,
		)
	}
	return node, nil
}

// UnmarshalJSON decodes a JSON object, keeping key order.
func (p *Pages) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))

	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if tok == nil {
		*p = nil
		return nil
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return fmt.Errorf("pages must be an object of page name to configuration")
	}

	var pages Pages
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return err
		}
		name, _ := tok.(string)

		var cfg *Config
		if err := dec.Decode(&cfg); err != nil {
			return fmt.Errorf("page %q: %w", name, err)
		}
		pages = pages.Set(name, cfg)
	}

	if _, err := dec.Token(); err != nil {
		return err
	}

	*p = pages
	return nil
}

// MarshalJSON encodes the pages as a JSON object in order.
func (p Pages) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, page := range p {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(page.Name)
		if err != nil {
			return nil, err
		}
		value, err := json.Marshal(page.Config)
		if err != nil {
			return nil, fmt.Errorf("page %q: %w", page.Name, err)
		}
		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(value)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}
