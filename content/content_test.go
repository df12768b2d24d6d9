package content

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultSections(t *testing.T) {
	st := Default()
	assert.Equal(t, []string{"summary", "education", "skills", "experience", "projects", "contact"}, st.IDs())

	sec, ok := st.Lookup("contact")
	require.True(t, ok)
	assert.Equal(t, "Let's Connect!", sec.Title)
	assert.Contains(t, sec.HTML, "<h2")
	assert.Contains(t, sec.HTML, `href="mailto:akankshamhadolkar@gmail.com"`)
}

func TestLookupUnknown(t *testing.T) {
	_, ok := Default().Lookup("hobbies")
	assert.False(t, ok)
	assert.Equal(t, "", Default().PlainText("hobbies"))
}

func TestPlainText(t *testing.T) {
	text := Default().PlainText("summary")
	assert.NotContains(t, text, "<")
	assert.True(t, strings.HasPrefix(text, "Hello, I"), text)
	assert.Contains(t, text, "Computer Vision")
}

func TestLoadErrors(t *testing.T) {
	_, err := Load([]byte("sections: []"))
	assert.ErrorIs(t, err, ErrNoSections)

	_, err = Load([]byte("sections: [{title: x}]"))
	assert.ErrorContains(t, err, "missing id")

	_, err = Load([]byte("sections: [{id: a}, {id: a}]"))
	assert.ErrorContains(t, err, "duplicate id")

	_, err = Load([]byte("sections: {"))
	assert.Error(t, err)
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sections.yaml")
	require.NoError(t, os.WriteFile(path, []byte("sections:\n  - id: x\n    title: X\n    body: \"# Hi\"\n"), 0o644))

	st, err := LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, 1, st.Len())
	sec, _ := st.Lookup("x")
	assert.Contains(t, sec.HTML, "<h1")

	_, err = LoadFile(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorContains(t, err, "missing.yaml")
}

func TestSectionsIsACopy(t *testing.T) {
	st := Default()
	secs := st.Sections()
	secs[0].Title = "changed"
	sec, _ := st.Lookup(secs[0].ID)
	assert.NotEqual(t, "changed", sec.Title)
}
