package models

type EntityType string

const (
	EntityTypePerson       EntityType = "pers"
	EntityTypeOrganization EntityType = "org"
)

// EntityRecord is one row of the closed-account extraction for the STDL
// cleanup. One entity can own several closed accounts, so EntityNbr is not
// unique across a result set. Read-only after scan.
type EntityRecord struct {
	EntityType EntityType `gorm:"column:entity_type"`
	EntityNbr  int64      `gorm:"column:entity_number"`
	AcctNbr    int64      `gorm:"column:acctnbr"`
	EntityName string     `gorm:"column:entity_name"`
	CloseDate  string     `gorm:"column:close_date"`
	CurrSTDL   string     `gorm:"column:curr_stdl"`
}

// MergeOutcome is the per-key result of the STDL merge batch. Not persisted;
// only used to classify records for the report.
type MergeOutcome struct {
	EntityNbr int64
	Succeeded bool
	ErrMsg    string
}

type MergeResult string

const (
	ResultSuccess MergeResult = "Success"
	ResultFail    MergeResult = "Fail"
)

// ReportRow is one line of the cleanup report, one per input EntityRecord.
type ReportRow struct {
	EntityNbr  int64
	AcctNbr    int64
	EntityType EntityType
	CloseDate  string
	Result     MergeResult
}
