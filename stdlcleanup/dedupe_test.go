package stdlcleanup

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"bitbucket.org/ftfcu/closedloan_batch/models"
)

func TestUniqueEntityNbrs(t *testing.T) {
	records := []models.EntityRecord{
		{EntityNbr: 100, AcctNbr: 1},
		{EntityNbr: 200, AcctNbr: 2},
		{EntityNbr: 100, AcctNbr: 3},
		{EntityNbr: 300, AcctNbr: 4},
		{EntityNbr: 200, AcctNbr: 5},
	}

	assert.Equal(t, []int64{100, 200, 300}, UniqueEntityNbrs(records))
}

func TestUniqueEntityNbrsEmpty(t *testing.T) {
	assert.Empty(t, UniqueEntityNbrs(nil))
	assert.Empty(t, UniqueEntityNbrs([]models.EntityRecord{}))
}
