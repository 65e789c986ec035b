package stdlcleanup

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bitbucket.org/ftfcu/closedloan_batch/models"
)

func TestClassifyOutcomesPartition(t *testing.T) {
	records := []models.EntityRecord{
		{EntityNbr: 1, AcctNbr: 11, EntityType: models.EntityTypePerson, CloseDate: "01-02-2026"},
		{EntityNbr: 2, AcctNbr: 22, EntityType: models.EntityTypePerson, CloseDate: "01-03-2026"},
		{EntityNbr: 3, AcctNbr: 33, EntityType: models.EntityTypeOrganization, CloseDate: "01-04-2026"},
	}
	outcomes := []models.MergeOutcome{
		{EntityNbr: 1, Succeeded: true},
		{EntityNbr: 2, Succeeded: false, ErrMsg: "ORA constraint"},
		{EntityNbr: 3, Succeeded: true},
	}

	fails, successes := ClassifyOutcomes(records, outcomes)

	require.Len(t, fails, 1)
	require.Len(t, successes, 2)
	assert.Equal(t, int64(2), fails[0].EntityNbr)
	assert.Equal(t, models.ResultFail, fails[0].Result)
	for _, row := range successes {
		assert.Equal(t, models.ResultSuccess, row.Result)
	}
	// Every record lands in exactly one list.
	assert.Equal(t, len(records), len(fails)+len(successes))
}

// A failed entity number takes every record sharing it into the fail list,
// even though only one merge ran for the key.
func TestClassifyOutcomesFailurePropagatesPerKey(t *testing.T) {
	records := []models.EntityRecord{
		{EntityNbr: 7, AcctNbr: 71},
		{EntityNbr: 7, AcctNbr: 72},
		{EntityNbr: 8, AcctNbr: 81},
		{EntityNbr: 7, AcctNbr: 73},
	}
	outcomes := []models.MergeOutcome{
		{EntityNbr: 7, Succeeded: false, ErrMsg: "rejected"},
		{EntityNbr: 8, Succeeded: true},
	}

	fails, successes := ClassifyOutcomes(records, outcomes)

	require.Len(t, fails, 3)
	require.Len(t, successes, 1)
	assert.Equal(t, []int64{71, 72, 73}, []int64{fails[0].AcctNbr, fails[1].AcctNbr, fails[2].AcctNbr})
	assert.Equal(t, int64(81), successes[0].AcctNbr)
}

func TestClassifyOutcomesEmpty(t *testing.T) {
	fails, successes := ClassifyOutcomes(nil, nil)
	assert.Empty(t, fails)
	assert.Empty(t, successes)
}
