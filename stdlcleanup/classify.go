package stdlcleanup

import "bitbucket.org/ftfcu/closedloan_batch/models"

// ClassifyOutcomes partitions the original records by merge outcome, keyed
// purely by entity number: if one key failed, every record for that entity
// is reported as failed, even though only one merge ran for the key. Every
// record lands in exactly one list, in original record order.
func ClassifyOutcomes(records []models.EntityRecord, outcomes []models.MergeOutcome) (fails, successes []models.ReportRow) {
	failedKeys := make(map[int64]struct{})
	for _, o := range outcomes {
		if !o.Succeeded {
			failedKeys[o.EntityNbr] = struct{}{}
		}
	}

	for _, rec := range records {
		row := models.ReportRow{
			EntityNbr:  rec.EntityNbr,
			AcctNbr:    rec.AcctNbr,
			EntityType: rec.EntityType,
			CloseDate:  rec.CloseDate,
			Result:     models.ResultSuccess,
		}
		if _, failed := failedKeys[rec.EntityNbr]; failed {
			row.Result = models.ResultFail
			fails = append(fails, row)
		} else {
			successes = append(successes, row)
		}
	}

	return fails, successes
}
