package notices

import (
	"time"

	"github.com/go-playground/validator/v10"

	"bitbucket.org/ftfcu/closedloan_batch/models"
)

var validate = validator.New()

// ValidEmail reports whether addr has a deliverable shape. Empty addresses
// are invalid.
func ValidEmail(addr string) bool {
	if addr == "" {
		return false
	}
	return validate.Var(addr, "email") == nil
}

// HasActiveFDINote reports whether the account carries an 8FDI note whose
// inactive date has not yet passed.
func HasActiveFDINote(rec *models.ClosedAccountRecord, now time.Time) bool {
	if rec.NoteClassCd != "8FDI" {
		return false
	}
	if rec.NoteInactiveDate == nil {
		return false
	}
	return !rec.NoteInactiveDate.Before(now)
}

// Evaluate applies the skip and exception rules to one record, stamping the
// disposition when a rule matches, and reports whether the record is
// eligible for a send. Rule order is fixed: the duplicate-recipient check
// runs first so a second closed account for an already-notified member is
// never misreported as an exception; the remaining business exclusions keep
// a fixed order for deterministic audit output.
func Evaluate(rec *models.ClosedAccountRecord, guard *Guard, now time.Time) bool {
	switch {
	case guard.Seen(rec.EmailAddr):
		rec.SetDisposition(models.DispositionAlreadySent)
	case !ValidEmail(rec.EmailAddr):
		rec.SetDisposition(models.DispositionInvalidEmail)
	case !rec.BalanceOrZero().IsZero():
		rec.SetDisposition(models.DispositionNonzeroBalance)
	case HasActiveFDINote(rec, now):
		rec.SetDisposition(models.DispositionActiveNotice)
	default:
		return true
	}
	return false
}
