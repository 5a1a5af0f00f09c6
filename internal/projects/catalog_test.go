package projects

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuiltinCatalog(t *testing.T) {
	t.Parallel()

	c := Builtin()
	require.Equal(t, 6, c.Len())
	require.Equal(t, []string{"kapray", "marketing", "taskapp", "restaurant", "portfolio", "seo"}, c.IDs())

	rec, err := c.Get("kapray")
	require.NoError(t, err)
	assert.Equal(t, "KaprayOfficial E-commerce Platform", rec.Title)
	assert.Equal(t, "ecommerce-bg", rec.ImageClass)
	assert.Equal(t, FormatText, rec.Format)
	assert.Equal(t, []string{"React", "Node.js", "MongoDB", "Stripe", "AWS"}, rec.Technologies)
}

func TestCatalogGetUnknown(t *testing.T) {
	t.Parallel()

	_, err := Builtin().Get("nonexistent-id")
	require.Error(t, err)
	require.True(t, errors.Is(err, ErrNotFound))
	require.Contains(t, err.Error(), "nonexistent-id")
}

func TestCatalogReturnsCopies(t *testing.T) {
	t.Parallel()

	c := Builtin()
	rec, err := c.Get("seo")
	require.NoError(t, err)
	rec.Results[0] = "changed"
	rec.Technologies = append(rec.Technologies, "extra")

	again, err := c.Get("seo")
	require.NoError(t, err)
	require.Equal(t, "250% increase in organic traffic", again.Results[0])
	require.Len(t, again.Technologies, 5)
}

func TestNewCatalogRejectsBadRecords(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		records []Record
		want    string
	}{
		{
			name:    "empty id",
			records: []Record{{Title: "No id"}},
			want:    "empty id",
		},
		{
			name:    "duplicate id",
			records: []Record{{ID: "a"}, {ID: "a"}},
			want:    "duplicate id",
		},
		{
			name:    "unknown format",
			records: []Record{{ID: "a", Format: "rst"}},
			want:    "unknown format",
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			_, err := NewCatalog(tt.records...)
			require.Error(t, err)
			require.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestCatalogFilter(t *testing.T) {
	t.Parallel()

	c := Builtin()
	ids := func(recs []Record) []string {
		out := make([]string, 0, len(recs))
		for _, r := range recs {
			out = append(out, r.ID)
		}
		return out
	}

	assert.Equal(t, c.IDs(), ids(c.Filter("")))
	assert.Equal(t, c.IDs(), ids(c.Filter(FilterAll)))
	assert.Equal(t, []string{"kapray", "restaurant", "portfolio"}, ids(c.Filter("web")))
	assert.Equal(t, []string{"marketing", "seo"}, ids(c.Filter("marketing")))
	assert.Empty(t, c.Filter("games"))
	assert.Equal(t, []string{"web", "marketing", "mobile"}, c.Categories())
}

func TestLoadFile(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "projects.yaml")
	src := `projects:
  - id: cli
    title: Terminal Mail
    image_class: cli-bg
    category: tools
    format: markdown
    description: "A **fast** mail client."
    challenge: Keep it small.
    solution: Go.
    results:
      - Shipped
      - Used daily
    technologies: [Go, IMAP]
    duration: 2 weeks
    role: Author
  - id: site
    title: Site
`
	require.NoError(t, os.WriteFile(path, []byte(src), 0o644))

	c, err := LoadFile(path)
	require.NoError(t, err)
	require.Equal(t, []string{"cli", "site"}, c.IDs())

	rec, err := c.Get("cli")
	require.NoError(t, err)
	assert.Equal(t, FormatMarkdown, rec.Format)
	assert.Equal(t, []string{"Shipped", "Used daily"}, rec.Results)
	assert.Equal(t, []string{"Go", "IMAP"}, rec.Technologies)

	site, err := c.Get("site")
	require.NoError(t, err)
	assert.Equal(t, FormatText, site.Format)
}

func TestLoadFileErrors(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	_, err := LoadFile(filepath.Join(dir, "missing.yaml"))
	require.ErrorContains(t, err, "read catalog")

	empty := filepath.Join(dir, "empty.yaml")
	require.NoError(t, os.WriteFile(empty, []byte("projects: []\n"), 0o644))
	_, err = LoadFile(empty)
	require.ErrorContains(t, err, "no projects")

	broken := filepath.Join(dir, "broken.yaml")
	require.NoError(t, os.WriteFile(broken, []byte("projects: [\n"), 0o644))
	_, err = LoadFile(broken)
	require.ErrorContains(t, err, "parse catalog")
}
