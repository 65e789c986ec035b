package stdlcleanup

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"

	"bitbucket.org/ftfcu/closedloan_batch/models"
)

var reportHeader = []string{"ENTITY_NBR", "ACCTNBR", "ENTITY_TYPE", "CLOSE_DATE", "RESULT"}

// WriteReport writes the cleanup report CSV, successes first then fails.
// The file must not already exist: a prior run's report is audit evidence
// and is never overwritten.
func WriteReport(path string, successes, fails []models.ReportRow) error {
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		return fmt.Errorf("open report %s: %w", path, err)
	}

	w := csv.NewWriter(f)
	w.Write(reportHeader)
	for _, row := range successes {
		w.Write(reportFields(row))
	}
	for _, row := range fails {
		w.Write(reportFields(row))
	}
	w.Flush()

	if err := w.Error(); err != nil {
		f.Close()
		return fmt.Errorf("write report %s: %w", path, err)
	}
	return f.Close()
}

func reportFields(row models.ReportRow) []string {
	return []string{
		strconv.FormatInt(row.EntityNbr, 10),
		strconv.FormatInt(row.AcctNbr, 10),
		string(row.EntityType),
		row.CloseDate,
		string(row.Result),
	}
}
