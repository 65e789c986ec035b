package models

import (
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// Disposition is the final classification of a closed-account record. The
// string value is the audit-log text for the RESULT column.
type Disposition string

const (
	DispositionPending        Disposition = ""
	DispositionSent           Disposition = "Email Sent"
	DispositionAlreadySent    Disposition = "Email Already Sent"
	DispositionInvalidEmail   Disposition = "Email Address Invalid"
	DispositionNonzeroBalance Disposition = "Account Has Balance"
	DispositionActiveNotice   Disposition = "Existing Active 8FDI Note"
	DispositionDisabled       Disposition = "Email Send Disabled"
	DispositionSendFailed     Disposition = "Email Failed"
)

// IsException reports whether the disposition lands the record in the
// EXCEPTIONS section of the audit log. Duplicate suppression and disabled
// sending are legitimate skips, not exceptions.
func (d Disposition) IsException() bool {
	switch d {
	case DispositionInvalidEmail, DispositionNonzeroBalance, DispositionActiveNotice, DispositionSendFailed:
		return true
	}
	return false
}

// ClosedAccountRecord is one closed loan candidate for a notice email.
// Disposition and IsException are written exactly once during processing and
// never reset.
type ClosedAccountRecord struct {
	AcctNbr          int64               `gorm:"column:acctnbr"`
	EmailAddr        string              `gorm:"column:emailaddr"`
	Balance          decimal.NullDecimal `gorm:"column:balance"`
	MemberName       string              `gorm:"column:membername"`
	EmailDate        string              `gorm:"column:emaildate"`
	NoteClassCd      string              `gorm:"column:fdi_noteclasscd"`
	NoteInactiveDate *time.Time          `gorm:"column:fdi_inactive_date"`

	Disposition Disposition `gorm:"-"`
	IsException bool        `gorm:"-"`
}

func (r *ClosedAccountRecord) SetDisposition(d Disposition) {
	r.Disposition = d
	r.IsException = d.IsException()
}

// BalanceOrZero treats a null balance as zero.
func (r *ClosedAccountRecord) BalanceOrZero() decimal.Decimal {
	if r.Balance.Valid {
		return r.Balance.Decimal
	}
	return decimal.Zero
}

// Field renders the audit-log value for a configured column name. Column
// names follow the extraction query's result columns.
func (r *ClosedAccountRecord) Field(name string) string {
	switch strings.ToUpper(name) {
	case "ACCTNBR":
		return strconv.FormatInt(r.AcctNbr, 10)
	case "EMAILADDR":
		return r.EmailAddr
	case "BALANCE":
		if r.Balance.Valid {
			return r.Balance.Decimal.String()
		}
		return ""
	case "MEMBERNAME":
		return r.MemberName
	case "EMAILDATE":
		return r.EmailDate
	case "FDI_NOTECLASSCD":
		return r.NoteClassCd
	case "FDI_INACTIVE_DATE":
		if r.NoteInactiveDate != nil {
			return r.NoteInactiveDate.Format("01/02/2006")
		}
		return ""
	case "RESULT":
		return string(r.Disposition)
	case "EXCPYN":
		if r.IsException {
			return "Y"
		}
		return "N"
	}
	return ""
}
