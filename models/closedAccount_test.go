package models

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestDispositionIsException(t *testing.T) {
	exceptions := []Disposition{
		DispositionInvalidEmail,
		DispositionNonzeroBalance,
		DispositionActiveNotice,
		DispositionSendFailed,
	}
	skips := []Disposition{
		DispositionSent,
		DispositionAlreadySent,
		DispositionDisabled,
		DispositionPending,
	}

	for _, d := range exceptions {
		assert.True(t, d.IsException(), "%s", d)
	}
	for _, d := range skips {
		assert.False(t, d.IsException(), "%s", d)
	}
}

func TestBalanceOrZero(t *testing.T) {
	var rec ClosedAccountRecord
	assert.True(t, rec.BalanceOrZero().IsZero())

	rec.Balance = decimal.NullDecimal{Decimal: decimal.RequireFromString("150.00"), Valid: true}
	assert.False(t, rec.BalanceOrZero().IsZero())

	rec.Balance = decimal.NullDecimal{Decimal: decimal.RequireFromString("0.00"), Valid: true}
	assert.True(t, rec.BalanceOrZero().IsZero())
}

func TestFieldRendering(t *testing.T) {
	inactive := time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)
	rec := ClosedAccountRecord{
		AcctNbr:          42,
		EmailAddr:        "a@b.com",
		Balance:          decimal.NullDecimal{Decimal: decimal.RequireFromString("12.30"), Valid: true},
		MemberName:       "Pat Member",
		EmailDate:        "08/01/2026",
		NoteClassCd:      "8FDI",
		NoteInactiveDate: &inactive,
	}
	rec.SetDisposition(DispositionNonzeroBalance)

	assert.Equal(t, "42", rec.Field("ACCTNBR"))
	assert.Equal(t, "a@b.com", rec.Field("EMAILADDR"))
	assert.Equal(t, "12.3", rec.Field("BALANCE"))
	assert.Equal(t, "Pat Member", rec.Field("MEMBERNAME"))
	assert.Equal(t, "08/01/2026", rec.Field("EMAILDATE"))
	assert.Equal(t, "8FDI", rec.Field("FDI_NOTECLASSCD"))
	assert.Equal(t, "09/01/2026", rec.Field("FDI_INACTIVE_DATE"))
	assert.Equal(t, "Account Has Balance", rec.Field("RESULT"))
	assert.Equal(t, "Y", rec.Field("EXCPYN"))

	// Header names are case-insensitive; unknown columns render empty.
	assert.Equal(t, "42", rec.Field("acctnbr"))
	assert.Equal(t, "", rec.Field("UNKNOWN"))
}

func TestFieldNullValues(t *testing.T) {
	rec := ClosedAccountRecord{AcctNbr: 7}

	assert.Equal(t, "", rec.Field("BALANCE"))
	assert.Equal(t, "", rec.Field("FDI_INACTIVE_DATE"))
	assert.Equal(t, "N", rec.Field("EXCPYN"))
	assert.Equal(t, "", rec.Field("RESULT"))
}
