package scaffold

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Neysixx/metanext/pkg/config"
	"github.com/Neysixx/metanext/pkg/doctor"
)

func TestRender_DefaultsProduceACleanProject(t *testing.T) {
	data, err := NewScaffolder(nil).Render(Options{})
	require.NoError(t, err)

	project, err := config.Parse(data, "yaml")
	require.NoError(t, err)

	assert.Empty(t, config.ValidateProject(project))
	assert.Equal(t, 0, doctor.Run(project).Total())

	assert.Equal(t, "My Website", project.Site.Name)
	assert.Equal(t, "https://example.com", project.Site.BaseURL)
	assert.Equal(t, "%s | My Website", project.Site.Title.Template)
	assert.Equal(t, []string{"home"}, project.Pages.Names())
}

func TestRender_QuotesUserValues(t *testing.T) {
	data, err := NewScaffolder(nil).Render(Options{
		SiteName:        `Acme: "Tools" & more`,
		BaseURL:         "https://acme.test/",
		SiteDescription: "# not a comment",
	})
	require.NoError(t, err)

	project, err := config.Parse(data, "yaml")
	require.NoError(t, err)

	assert.Equal(t, `Acme: "Tools" & more`, project.Site.Name)
	assert.Equal(t, "https://acme.test", project.Site.BaseURL, "trailing slash removed")
	assert.Equal(t, "# not a comment", project.Site.Description)

	home, ok := project.Pages.Lookup("home")
	require.True(t, ok)
	require.Len(t, home.JSONLD, 1)
	assert.Equal(t, `Acme: "Tools" & more`, home.JSONLD[0]["name"])
}

func TestRender_BracesInValues(t *testing.T) {
	names := []string{"Acme {beta}", "{{ siteName }}", "{path}"}

	for _, name := range names {
		t.Run(name, func(t *testing.T) {
			data, err := NewScaffolder(nil).Render(Options{SiteName: name, SiteDescription: "About {us}"})
			require.NoError(t, err)

			project, err := config.Parse(data, "yaml")
			require.NoError(t, err)
			assert.Equal(t, name, project.Site.Name)
			assert.Equal(t, "%s | "+name, project.Site.Title.Template)
			assert.Equal(t, "About {us}", project.Site.Description)
		})
	}
}

func TestCreateConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "src", "lib", "seo.yaml")
	s := NewScaffolder(nil)

	require.NoError(t, s.CreateConfig(path, Options{SiteName: "Acme"}))
	_, err := os.Stat(path)
	require.NoError(t, err)

	err = s.CreateConfig(path, Options{SiteName: "Other"})
	assert.True(t, errors.Is(err, ErrConfigExists))

	project, err := config.LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "Acme", project.Site.Name, "existing file untouched")

	require.NoError(t, s.CreateConfig(path, Options{SiteName: "Other", Force: true}))
	project, err = config.LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "Other", project.Site.Name)
}
