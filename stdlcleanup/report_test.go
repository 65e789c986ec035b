package stdlcleanup

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bitbucket.org/ftfcu/closedloan_batch/models"
)

func TestWriteReport(t *testing.T) {
	path := filepath.Join(t.TempDir(), "report.csv")

	successes := []models.ReportRow{
		{EntityNbr: 1, AcctNbr: 11, EntityType: models.EntityTypePerson, CloseDate: "01-02-2026", Result: models.ResultSuccess},
	}
	fails := []models.ReportRow{
		{EntityNbr: 2, AcctNbr: 22, EntityType: models.EntityTypeOrganization, CloseDate: "01-03-2026", Result: models.ResultFail},
	}

	require.NoError(t, WriteReport(path, successes, fails))

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()

	rows, err := csv.NewReader(f).ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, []string{"ENTITY_NBR", "ACCTNBR", "ENTITY_TYPE", "CLOSE_DATE", "RESULT"}, rows[0])
	assert.Equal(t, []string{"1", "11", "pers", "01-02-2026", "Success"}, rows[1])
	assert.Equal(t, []string{"2", "22", "org", "01-03-2026", "Fail"}, rows[2])
}

func TestWriteReportRefusesExistingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "report.csv")
	require.NoError(t, os.WriteFile(path, []byte("prior run evidence"), 0o644))

	err := WriteReport(path, nil, nil)

	require.Error(t, err)
	prior, readErr := os.ReadFile(path)
	require.NoError(t, readErr)
	assert.Equal(t, "prior run evidence", string(prior))
}
