package generate

import (
	"encoding/json"
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Neysixx/metanext/pkg/seo"
)

func sampleProject() *seo.Project {
	return &seo.Project{
		Site: &seo.Site{
			Config: seo.Config{
				Name:      "Acme",
				Title:     seo.TemplateTitle("Acme", "%s | Acme"),
				OpenGraph: &seo.OpenGraph{Type: "website"},
				Robots:    &seo.Robots{Index: seo.Bool(true)},
			},
			BaseURL: "https://acme.test",
		},
		Pages: seo.Pages{
			{Name: "pricing", Config: &seo.Config{Title: seo.PlainTitle("Pricing"), Robots: &seo.Robots{Index: seo.Bool(false)}}},
			{Name: "home", Config: &seo.Config{
				Title:  seo.PlainTitle("Home"),
				JSONLD: []seo.JSONLD{{"@context": "https://schema.org", "@type": "WebSite"}},
			}},
		},
	}
}

func TestBuildData(t *testing.T) {
	data := BuildData(sampleProject())

	require.NotNil(t, data.SiteMetadata)
	assert.Equal(t, "https://acme.test", data.SiteMetadata.OpenGraph.URL)
	assert.Equal(t, seo.TemplateTitle("Acme", "%s | Acme"), data.SiteMetadata.Title)

	require.Len(t, data.Metadata, 2)
	assert.Equal(t, "pricing", data.Metadata[0].Name)
	assert.False(t, *data.Metadata[0].Metadata.Robots.Index)
}

func TestBuildData_EmptyProject(t *testing.T) {
	data := BuildData(nil)

	out, err := json.Marshal(data)
	require.NoError(t, err)
	assert.JSONEq(t, `{"site":null,"siteMetadata":{},"pages":{},"metadata":{}}`, string(out))
}

func TestGenerate(t *testing.T) {
	dir := t.TempDir()

	result, err := NewGenerator(nil).Generate(sampleProject(), dir)
	require.NoError(t, err)
	assert.Equal(t, []string{result.DataPath, result.ComponentPath}, result.Paths())

	raw, err := os.ReadFile(result.DataPath)
	require.NoError(t, err)

	var decoded struct {
		Site     map[string]interface{}            `json:"site"`
		Pages    map[string]map[string]interface{} `json:"pages"`
		Metadata map[string]map[string]interface{} `json:"metadata"`
	}
	require.NoError(t, json.Unmarshal(raw, &decoded))

	assert.Equal(t, "https://acme.test", decoded.Site["baseUrl"])
	assert.Equal(t, "Acme", decoded.Site["name"])
	assert.Contains(t, decoded.Pages["home"], "jsonld")

	home := decoded.Metadata["home"]
	assert.Equal(t, "Home", home["title"])
	assert.NotContains(t, home, "jsonld")
	og := home["openGraph"].(map[string]interface{})
	assert.Equal(t, "https://acme.test", og["url"])
	assert.Equal(t, "Acme", og["siteName"])

	pricing := decoded.Metadata["pricing"]
	assert.Equal(t, false, pricing["robots"].(map[string]interface{})["index"])

	text := string(raw)
	metadataAt := strings.Index(text, `"metadata"`)
	require.Greater(t, metadataAt, 0)
	assert.Less(t, strings.Index(text[metadataAt:], `"pricing"`), strings.Index(text[metadataAt:], `"home"`))
	assert.True(t, strings.HasSuffix(text, "}\n"))

	component, err := os.ReadFile(result.ComponentPath)
	require.NoError(t, err)
	for _, want := range []string{
		`import data from "./seo-data.json";`,
		"[MetaNext] Page \"${name}\" not found in SEO config",
		"export function getSEO(name: string)",
		`rel="canonical"`,
		"application/ld+json",
	} {
		assert.Contains(t, string(component), want)
	}
}

func TestGenerate_OverwritesPreviousOutput(t *testing.T) {
	dir := t.TempDir()
	g := NewGenerator(nil)

	_, err := g.Generate(sampleProject(), dir)
	require.NoError(t, err)

	project := sampleProject()
	project.Pages = project.Pages[:1]
	result, err := g.Generate(project, dir)
	require.NoError(t, err)

	raw, err := os.ReadFile(result.DataPath)
	require.NoError(t, err)
	assert.NotContains(t, string(raw), `"home"`)
}
