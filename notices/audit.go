package notices

import (
	"encoding/csv"
	"fmt"
	"os"
	"time"

	"bitbucket.org/ftfcu/closedloan_batch/models"
)

const auditTitle = "CONSUMER CLOSED LOANS EMAIL AUDIT LOG"

// WriteAuditLog writes the two-section audit file: header metadata, the
// EMAILS SENT section, the EXCEPTIONS section, and a terminal END marker.
// Section labels and the column header are fixed; downstream reconciliation
// parses them. Records keep their original relative order within each
// section. The file must not already exist.
func WriteAuditLog(path, effDate string, records []models.ClosedAccountRecord, header []string) error {
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		return fmt.Errorf("open audit log %s: %w", path, err)
	}

	var sent, exceptions []*models.ClosedAccountRecord
	for i := range records {
		if records[i].IsException {
			exceptions = append(exceptions, &records[i])
		} else {
			sent = append(sent, &records[i])
		}
	}

	w := csv.NewWriter(f)
	w.Write([]string{auditTitle})
	w.Write([]string{"RUN DATE: " + runDate()})
	w.Write([]string{"EFFDATE: " + effDate})
	w.Write(nil)

	w.Write([]string{"EMAILS SENT"})
	writeSection(w, header, sent)
	w.Write(nil)

	w.Write([]string{"EXCEPTIONS"})
	writeSection(w, header, exceptions)

	w.Write([]string{"END"})
	w.Flush()

	if err := w.Error(); err != nil {
		f.Close()
		return fmt.Errorf("write audit log %s: %w", path, err)
	}
	return f.Close()
}

func writeSection(w *csv.Writer, header []string, records []*models.ClosedAccountRecord) {
	if len(records) == 0 {
		w.Write([]string{"NONE"})
		w.Write(nil)
		return
	}

	w.Write(header)
	for _, rec := range records {
		row := make([]string, 0, len(header))
		for _, col := range header {
			row = append(row, rec.Field(col))
		}
		w.Write(row)
	}
	w.Write(nil)
}

// runDate is the report-local calendar date, pinned to the institution's
// home timezone so overnight runs date consistently.
func runDate() string {
	loc, err := time.LoadLocation("America/Los_Angeles")
	if err != nil {
		loc = time.Local
	}
	return time.Now().In(loc).Format("01/02/2006")
}
