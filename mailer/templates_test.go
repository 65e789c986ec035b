package mailer

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadTemplateAndRender(t *testing.T) {
	dir := t.TempDir()
	src := `<p>Dear {{.MemberName}}, your loan closed {{.EmailDate}}. &copy; {{.Year}}</p>`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "notice.html"), []byte(src), 0o644))

	tmpl, err := LoadTemplate(dir, "notice.html")
	require.NoError(t, err)

	body, err := tmpl.Render(NoticeParams{MemberName: "Pat Member", EmailDate: "08/01/2026", Year: "2026"})
	require.NoError(t, err)
	assert.Contains(t, body, "Pat Member")
	assert.Contains(t, body, "08/01/2026")
	assert.Contains(t, body, "2026")
}

func TestLoadTemplateMissingFile(t *testing.T) {
	_, err := LoadTemplate(t.TempDir(), "nope.html")
	require.Error(t, err)
}
