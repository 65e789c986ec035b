package stdlcleanup

import (
	"context"
	"errors"
	"fmt"

	"github.com/go-sql-driver/mysql"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"bitbucket.org/ftfcu/closedloan_batch/models"
)

// UserfieldTable describes one entity userfield table targeted by the merge.
type UserfieldTable struct {
	Table     string
	KeyColumn string
}

var (
	PersUserfield = UserfieldTable{Table: "persuserfield", KeyColumn: "persnbr"}
	OrgUserfield  = UserfieldTable{Table: "orguserfield", KeyColumn: "orgnbr"}
)

// errReportOnly forces the transaction to roll back after a report-only
// batch while keeping the collected outcomes.
var errReportOnly = errors.New("report-only rollback")

type MergeExecutor struct {
	db  *gorm.DB
	log logrus.FieldLogger
}

func NewMergeExecutor(db *gorm.DB, log logrus.FieldLogger) *MergeExecutor {
	return &MergeExecutor{db: db, log: log}
}

// mergeStatement is the single conditional upsert run once per key. The
// userfield tables key on (entity number, userfieldcd), so the duplicate-key
// branch is the update path. One statement per key also sidesteps the
// driver's rows-changed reporting, which counts an update to already-current
// values as zero rows.
func mergeStatement(tbl UserfieldTable) string {
	return fmt.Sprintf(
		"INSERT INTO %s (%s, userfieldcd, value, datelastmaint) VALUES (?, 'STDL', 'PAPR', NOW()) "+
			"ON DUPLICATE KEY UPDATE value = 'PAPR', datelastmaint = NOW()",
		tbl.Table, tbl.KeyColumn)
}

// MergeSTDL upserts the STDL userfield to PAPR for every key, as one batch
// inside a single transaction with exactly one commit-or-rollback decision.
// Row-level MySQL errors (constraint violations) become failed outcomes and
// the batch continues; any other error is fatal and aborts the run. When
// reportOnly is set the transaction always rolls back, while outcomes are
// still reported so the run produces an accurate report.
func (m *MergeExecutor) MergeSTDL(ctx context.Context, tbl UserfieldTable, keys []int64, reportOnly bool) ([]models.MergeOutcome, error) {
	if len(keys) == 0 {
		return nil, nil
	}

	upsertSQL := mergeStatement(tbl)
	outcomes := make([]models.MergeOutcome, 0, len(keys))
	var rowsAffected int64

	err := m.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, key := range keys {
			res := tx.Exec(upsertSQL, key)
			if res.Error != nil {
				var myErr *mysql.MySQLError
				if !errors.As(res.Error, &myErr) {
					// Lost connection, cancelled context: fatal for the run.
					return res.Error
				}
				m.log.WithFields(logrus.Fields{
					"table":       tbl.Table,
					tbl.KeyColumn: key,
				}).Warnf("merge rejected: %v", res.Error)
				outcomes = append(outcomes, models.MergeOutcome{EntityNbr: key, ErrMsg: res.Error.Error()})
				continue
			}
			rowsAffected += res.RowsAffected
			outcomes = append(outcomes, models.MergeOutcome{EntityNbr: key, Succeeded: true})
		}
		if reportOnly {
			return errReportOnly
		}
		return nil
	})
	if err != nil && !errors.Is(err, errReportOnly) {
		return nil, fmt.Errorf("merge %s: %w", tbl.Table, err)
	}

	m.log.WithFields(logrus.Fields{
		"table":       tbl.Table,
		"keys":        len(keys),
		"rows":        rowsAffected,
		"report_only": reportOnly,
	}).Info("STDL merge batch complete")

	return outcomes, nil
}
