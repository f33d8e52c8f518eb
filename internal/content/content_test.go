package content

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/William-WYL/portfolio/internal/reveal"
)

func TestDefaultCatalogIsValid(t *testing.T) {
	cat := Default()
	require.NoError(t, cat.Validate())

	assert.Len(t, cat.Certificates, 6)
	assert.Len(t, cat.Skills, 8)
	assert.Len(t, cat.Projects, 3)
	assert.Len(t, cat.Testimonials, 3)
}

func TestDefaultReturnsFreshSlices(t *testing.T) {
	a := Default()
	a.Skills[0].Name = "changed"
	assert.Equal(t, "React", Default().Skills[0].Name)
}

func TestCertificateLookup(t *testing.T) {
	cat := Default()

	cert, ok := cat.Certificate(6)
	require.True(t, ok)
	assert.Equal(t, "Grade Report", cert.Title)

	_, ok = cat.Certificate(42)
	assert.False(t, ok)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(c *Catalog)
		wantErr string
	}{
		{"missing name", func(c *Catalog) { c.Profile.Name = " " }, "profile.name"},
		{"skill over 100", func(c *Catalog) { c.Skills[0].Level = 101 }, "outside 0-100"},
		{"negative skill", func(c *Catalog) { c.Skills[1].Level = -1 }, "outside 0-100"},
		{"duplicate certificate", func(c *Catalog) { c.Certificates[1].ID = 1 }, "duplicate id 1"},
		{"zero certificate id", func(c *Catalog) { c.Certificates[2].ID = 0 }, "id is required"},
		{"untitled project", func(c *Catalog) { c.Projects[0].Title = "" }, "title is required"},
		{"empty quote", func(c *Catalog) { c.Testimonials[0].Quote = "" }, "quote are required"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cat := Default()
			tt.mutate(&cat)
			err := cat.Validate()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestExportThenLoad(t *testing.T) {
	data, err := Export(Default())
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "content.yaml")
	require.NoError(t, os.WriteFile(path, data, 0o600))

	cat, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, Default(), cat)
}

func TestLoadEmptyPath(t *testing.T) {
	cat, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Default().Profile.Name, cat.Profile.Name)
}

func TestLoadErrors(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read content file")

	_, err = Parse([]byte("profile:\n  name: Me\nunknown_field: 1\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse content")

	_, err = Parse([]byte("profile:\n  name: Me\nskills:\n  - name: Go\n    level: 120\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "outside 0-100")
}

func TestMarkdown(t *testing.T) {
	out := string(Markdown("scored **90%**"))
	assert.Contains(t, out, "<strong>90%</strong>")

	out = string(Markdown("<script>alert(1)</script>"))
	assert.NotContains(t, out, "<script>")
}

func TestSections(t *testing.T) {
	secs := Sections()
	ids := make([]string, 0, len(secs))
	for _, s := range secs {
		ids = append(ids, s.ID)
	}
	assert.Equal(t, []string{
		SectionAbout, SectionSkills, SectionProjects,
		SectionCertifications, SectionTestimonials, SectionContact,
	}, ids)

	about, ok := SectionByID(SectionAbout)
	require.True(t, ok)
	assert.Equal(t, reveal.OnMount, about.Variant.Reveal)

	_, ok = SectionByID("blog")
	assert.False(t, ok)
}

func TestNewBoard(t *testing.T) {
	b := NewBoard()
	assert.True(t, b.Visible(SectionAbout))
	assert.False(t, b.Visible(SectionSkills))
	assert.True(t, b.Observe(SectionSkills, 0.2))
}
