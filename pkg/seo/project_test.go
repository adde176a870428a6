package seo

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

const projectYAML = `
site:
  name: Acme
  baseUrl: https://acme.test
  title:
    default: Acme
    template: "%s | Acme"
  robots:
    index: false
pages:
  home:
    title: Home
    description: Welcome
  about:
    title: About us
  blog:
    title: Blog
    jsonld:
      - "@context": https://schema.org
        "@type": Blog
`

func TestProject_UnmarshalYAMLKeepsPageOrder(t *testing.T) {
	var p Project
	require.NoError(t, yaml.Unmarshal([]byte(projectYAML), &p))

	assert.Equal(t, []string{"home", "about", "blog"}, p.Pages.Names())

	home, ok := p.Pages.Lookup("home")
	require.True(t, ok)
	assert.Equal(t, "Home", home.Title.String())
	assert.False(t, home.Title.IsTemplate)
	assert.Equal(t, "Welcome", home.Description)

	blog, _ := p.Pages.Lookup("blog")
	require.Len(t, blog.JSONLD, 1)
	assert.Equal(t, "Blog", blog.JSONLD[0].Type())
	assert.Equal(t, "https://schema.org", blog.JSONLD[0].Context())

	require.NotNil(t, p.Site)
	assert.Equal(t, "Acme", p.Site.Name)
	assert.True(t, p.Site.Title.IsTemplate)
	assert.Equal(t, "%s | Acme", p.Site.Title.Template)
	require.NotNil(t, p.Site.Robots.Index)
	assert.False(t, *p.Site.Robots.Index)
}

func TestProject_UnmarshalJSONKeepsPageOrder(t *testing.T) {
	data := `{
		"site": {"name": "Acme", "baseUrl": "https://acme.test"},
		"pages": {
			"zeta": {"title": "Z"},
			"alpha": {"title": {"default": "A", "template": "%s | Acme"}},
			"mid": null
		}
	}`

	var p Project
	require.NoError(t, json.Unmarshal([]byte(data), &p))

	assert.Equal(t, []string{"zeta", "alpha", "mid"}, p.Pages.Names())

	alpha, _ := p.Pages.Lookup("alpha")
	assert.Equal(t, TemplateTitle("A", "%s | Acme"), alpha.Title)

	mid, ok := p.Pages.Lookup("mid")
	assert.True(t, ok)
	assert.Nil(t, mid)
}

func TestPages_DuplicateKeyReplacesInPlace(t *testing.T) {
	data := `{"a": {"title": "first"}, "b": {"title": "B"}, "a": {"title": "second"}}`

	var pages Pages
	require.NoError(t, json.Unmarshal([]byte(data), &pages))

	assert.Equal(t, []string{"a", "b"}, pages.Names())
	a, _ := pages.Lookup("a")
	assert.Equal(t, "second", a.Title.String())
}

func TestPages_MarshalRoundTripPreservesOrder(t *testing.T) {
	pages := Pages{
		{Name: "contact", Config: &Config{Description: "Reach us"}},
		{Name: "about", Config: &Config{Title: PlainTitle("About")}},
	}

	out, err := json.Marshal(pages)
	require.NoError(t, err)
	assert.JSONEq(t, `{"contact":{"description":"Reach us"},"about":{"title":"About"}}`, string(out))
	assert.Less(t, strings.Index(string(out), "contact"), strings.Index(string(out), "about"))

	y, err := yaml.Marshal(pages)
	require.NoError(t, err)

	var back Pages
	require.NoError(t, yaml.Unmarshal(y, &back))
	assert.Equal(t, []string{"contact", "about"}, back.Names())
}

func TestPages_RejectsNonMapping(t *testing.T) {
	var p Project
	err := yaml.Unmarshal([]byte("pages:\n  - home\n"), &p)
	assert.Error(t, err)

	err = json.Unmarshal([]byte(`{"pages": ["home"]}`), &p)
	assert.Error(t, err)
}

func TestPages_SetDoesNotAlias(t *testing.T) {
	orig := Pages{{Name: "home", Config: &Config{Description: "one"}}}
	updated := orig.Set("home", &Config{Description: "two"})

	first, _ := orig.Lookup("home")
	second, _ := updated.Lookup("home")
	assert.Equal(t, "one", first.Description)
	assert.Equal(t, "two", second.Description)
}

func TestProject_SiteConfig(t *testing.T) {
	tests := []struct {
		name    string
		project *Project
		wantURL string
		wantNil bool
	}{
		{
			name:    "nil project",
			project: nil,
			wantNil: true,
		},
		{
			name:    "missing site",
			project: &Project{},
			wantNil: true,
		},
		{
			name:    "baseUrl wins over url",
			project: &Project{Site: &Site{Config: Config{URL: "https://old.test"}, BaseURL: "https://new.test"}},
			wantURL: "https://new.test",
		},
		{
			name:    "url used when baseUrl is absent",
			project: &Project{Site: &Site{Config: Config{URL: "https://old.test"}}},
			wantURL: "https://old.test",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := tt.project.SiteConfig()
			if tt.wantNil {
				assert.Nil(t, cfg)
				return
			}
			require.NotNil(t, cfg)
			assert.Equal(t, tt.wantURL, cfg.URL)
		})
	}
}

func TestSite_ResolveURL(t *testing.T) {
	tests := []struct {
		name    string
		site    *Site
		wantURL string
		wantKey string
	}{
		{name: "nil site"},
		{name: "neither set", site: &Site{}},
		{name: "baseUrl", site: &Site{BaseURL: "https://a.test"}, wantURL: "https://a.test", wantKey: "baseUrl"},
		{name: "url", site: &Site{Config: Config{URL: "https://b.test"}}, wantURL: "https://b.test", wantKey: "url"},
		{
			name:    "baseUrl wins",
			site:    &Site{Config: Config{URL: "https://b.test"}, BaseURL: "https://a.test"},
			wantURL: "https://a.test",
			wantKey: "baseUrl",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			siteURL, key := tt.site.ResolveURL()
			assert.Equal(t, tt.wantURL, siteURL)
			assert.Equal(t, tt.wantKey, key)
		})
	}
}

func TestTitle_IsZero(t *testing.T) {
	tests := []struct {
		name  string
		title *Title
		want  bool
	}{
		{name: "nil", title: nil, want: true},
		{name: "empty string", title: PlainTitle(""), want: true},
		{name: "empty record", title: TemplateTitle("", ""), want: true},
		{name: "text", title: PlainTitle("Home"), want: false},
		{name: "default only", title: TemplateTitle("Home", ""), want: false},
		{name: "pattern only", title: TemplateTitle("", "%s | Acme"), want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.title.IsZero())
		})
	}
}
