package stdlcleanup

import (
	"context"
	"fmt"
	"strings"

	"gorm.io/gorm"

	"bitbucket.org/ftfcu/closedloan_batch/models"
)

// Close-date join variants. A pinned run date takes the status-history rows
// whose effective date matches it; a full cleanup takes the latest status
// history row per account.
const runDateJoin = `
	JOIN acctacctstathist ah
		ON a.acctnbr = ah.acctnbr
		AND ah.acctstatcd = a.curracctstatcd
		AND DATE(ah.effdatetime) = STR_TO_DATE(?, '%m-%d-%Y')
		AND ah.timeuniqueextn = (
			SELECT MAX(timeuniqueextn)
			FROM acctacctstathist
			WHERE acctnbr = ah.acctnbr
			AND acctstatcd = ah.acctstatcd
			AND effdatetime = ah.effdatetime
		)
`

const fullCleanupJoin = `
	JOIN acctacctstathist ah
		ON a.acctnbr = ah.acctnbr
		AND ah.acctstatcd = a.curracctstatcd
		AND ah.effdatetime = (
			SELECT MAX(effdatetime)
			FROM acctacctstathist
			WHERE acctnbr = ah.acctnbr
			AND acctstatcd = ah.acctstatcd
			AND timeuniqueextn = ah.timeuniqueextn
		)
		AND ah.timeuniqueextn = (
			SELECT MAX(timeuniqueextn)
			FROM acctacctstathist
			WHERE acctnbr = ah.acctnbr
			AND acctstatcd = ah.acctstatcd
			AND effdatetime = ah.effdatetime
		)
`

// eligibilityClause encodes when a closed account's owner no longer
// qualifies for the paper-statement exemption: no remaining active deposit
// or loan account, unless the only open account is a safe deposit box lease
// or a retirement plan.
const eligibilityClause = `
	AND (
		NOT EXISTS (
			SELECT 1
			FROM acct
			WHERE %[1]s = a.%[1]s
			AND mjaccttypcd IN ('SAV', 'CNS', 'MTG', 'EXT', 'CML', 'CK', 'TD')
			AND curracctstatcd IN ('ACT', 'IACT', 'DORM', 'NPFM')
			LIMIT 1
		)
		OR EXISTS (
			SELECT 1
			FROM acct
			WHERE %[1]s = a.%[1]s
			AND mjaccttypcd = 'LEAS'
			AND currmiaccttypcd = 'SDB'
			AND curracctstatcd IN ('ACT', 'IACT', 'DORM', 'NPFM')
			AND NOT EXISTS (
				SELECT 1
				FROM acct
				WHERE %[1]s = a.%[1]s
				AND mjaccttypcd != 'LEAS'
				AND currmiaccttypcd != 'SDB'
				AND curracctstatcd IN ('ACT', 'IACT', 'DORM', 'NPFM')
				LIMIT 1
			)
			LIMIT 1
		)
		OR EXISTS (
			SELECT 1
			FROM acct
			WHERE %[1]s = a.%[1]s
			AND mjaccttypcd = 'RTMT'
			AND curracctstatcd IN ('ACT', 'IACT', 'DORM', 'NPFM')
			AND NOT EXISTS (
				SELECT 1
				FROM acct
				WHERE %[1]s = a.%[1]s
				AND mjaccttypcd != 'RTMT'
				AND curracctstatcd IN ('ACT', 'IACT', 'DORM', 'NPFM')
			)
			LIMIT 1
		)
	)
`

// extractionSQL builds the person-and-organization union for one run. The
// run date is bound, never spliced into the text.
func extractionSQL(runDate string, fullCleanup bool) (string, []interface{}) {
	closeDateJoin := fullCleanupJoin
	var args []interface{}
	if !fullCleanup {
		closeDateJoin = runDateJoin
		// The join appears in both union branches.
		args = []interface{}{runDate, runDate}
	}

	persBranch := fmt.Sprintf(`
	SELECT DISTINCT
		'pers' AS entity_type,
		p.persnbr AS entity_number,
		a.acctnbr,
		CONCAT(p.firstname, ' ', p.lastname) AS entity_name,
		DATE_FORMAT(ah.effdatetime, '%%m-%%d-%%Y') AS close_date,
		pu.value AS curr_stdl
	FROM pers p
	JOIN acct a
		ON p.persnbr = a.taxrptforpersnbr
	LEFT JOIN persuserfield pu
		ON p.persnbr = pu.persnbr
		AND pu.userfieldcd = 'STDL'
		AND pu.value != 'PAPR'
	%s
	WHERE a.mjaccttypcd IN ('SAV', 'CNS', 'MTG', 'CML')
	AND a.curracctstatcd = 'CLS'
	%s`, closeDateJoin, fmt.Sprintf(eligibilityClause, "taxrptforpersnbr"))

	orgBranch := fmt.Sprintf(`
	SELECT DISTINCT
		'org' AS entity_type,
		o.orgnbr AS entity_number,
		a.acctnbr,
		o.orgname AS entity_name,
		DATE_FORMAT(ah.effdatetime, '%%m-%%d-%%Y') AS close_date,
		ou.value AS curr_stdl
	FROM org o
	JOIN acct a
		ON o.orgnbr = a.taxrptfororgnbr
	LEFT JOIN orguserfield ou
		ON o.orgnbr = ou.orgnbr
		AND ou.userfieldcd = 'STDL'
		AND ou.value != 'PAPR'
	%s
	WHERE a.mjaccttypcd IN ('SAV', 'CNS', 'MTG', 'CML')
	AND a.curracctstatcd = 'CLS'
	%s`, closeDateJoin, fmt.Sprintf(eligibilityClause, "taxrptfororgnbr"))

	return persBranch + "\n\tUNION\n" + orgBranch, args
}

// FetchEntityRecords runs the extraction and splits the result set by entity
// type.
func FetchEntityRecords(ctx context.Context, db *gorm.DB, runDate string, fullCleanup bool) (pers, org []models.EntityRecord, err error) {
	query, args := extractionSQL(runDate, fullCleanup)

	var rows []models.EntityRecord
	if err := db.WithContext(ctx).Raw(query, args...).Scan(&rows).Error; err != nil {
		return nil, nil, fmt.Errorf("fetch entity records: %w", err)
	}

	for _, row := range rows {
		switch row.EntityType {
		case models.EntityTypePerson:
			pers = append(pers, row)
		case models.EntityTypeOrganization:
			org = append(org, row)
		default:
			return nil, nil, fmt.Errorf("unexpected entity type %q for acct %d",
				strings.TrimSpace(string(row.EntityType)), row.AcctNbr)
		}
	}

	return pers, org, nil
}
