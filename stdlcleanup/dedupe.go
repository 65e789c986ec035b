package stdlcleanup

import "bitbucket.org/ftfcu/closedloan_batch/models"

// UniqueEntityNbrs collapses records down to the distinct entity numbers for
// the merge batch, preserving first-seen order. An empty input yields an
// empty set and the merge is skipped entirely.
func UniqueEntityNbrs(records []models.EntityRecord) []int64 {
	inResult := make(map[int64]bool, len(records))
	var result []int64
	for _, rec := range records {
		if _, ok := inResult[rec.EntityNbr]; !ok {
			inResult[rec.EntityNbr] = true
			result = append(result, rec.EntityNbr)
		}
	}
	return result
}
