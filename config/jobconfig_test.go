package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "job.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestLoadJobConfig(t *testing.T) {
	path := writeConfig(t, `
get_closed_accounts: "SELECT acctnbr FROM acct WHERE currmiaccttypcd IN ({{minor_codes}})"
csv_header:
  - ACCTNBR
  - RESULT
template_directory: templates
template_file: notice.html
`)

	cfg, err := LoadJobConfig(path)
	require.NoError(t, err)
	assert.Contains(t, cfg.GetClosedAccounts, "{{minor_codes}}")
	assert.Equal(t, []string{"ACCTNBR", "RESULT"}, cfg.CSVHeader)
	assert.Equal(t, "templates", cfg.TemplateDirectory)
	assert.Equal(t, "notice.html", cfg.TemplateFile)
}

func TestLoadJobConfigMissingFields(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"no query", "csv_header: [A]\ntemplate_directory: t\ntemplate_file: f\n"},
		{"no header", "get_closed_accounts: q\ntemplate_directory: t\ntemplate_file: f\n"},
		{"no template", "get_closed_accounts: q\ncsv_header: [A]\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadJobConfig(writeConfig(t, tt.body))
			assert.Error(t, err)
		})
	}
}

func TestLoadJobConfigMissingFile(t *testing.T) {
	_, err := LoadJobConfig(filepath.Join(t.TempDir(), "absent.yaml"))
	require.Error(t, err)
}
