package notices

import (
	"context"
	"database/sql"
	"fmt"
	"regexp"
	"strings"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"bitbucket.org/ftfcu/closedloan_batch/config"
	"bitbucket.org/ftfcu/closedloan_batch/models"
)

var minorCodePattern = regexp.MustCompile(`^[A-Z0-9]{1,8}$`)

// FormatMinorCodes validates and quotes the comma-separated minor-code list
// for splicing into the extraction query's IN clause. The query source
// cannot bind list parameters, so every code is checked here before it
// touches the SQL text.
func FormatMinorCodes(codes string) (string, error) {
	if strings.TrimSpace(codes) == "" {
		return "", nil
	}

	parts := strings.Split(codes, ",")
	quoted := make([]string, 0, len(parts))
	for _, part := range parts {
		code := strings.ToUpper(strings.TrimSpace(part))
		if !minorCodePattern.MatchString(code) {
			return "", fmt.Errorf("invalid minor code %q", part)
		}
		quoted = append(quoted, "'"+code+"'")
	}

	return strings.Join(quoted, ","), nil
}

// FetchClosedAccounts runs the configured extraction query for one effective
// date. The effective date is bound; the minor-code list is the one
// string-substitution point, validated above.
func FetchClosedAccounts(ctx context.Context, db *gorm.DB, cfg *config.JobConfig, effDate, minorCodes string, log logrus.FieldLogger) ([]models.ClosedAccountRecord, error) {
	formatted, err := FormatMinorCodes(minorCodes)
	if err != nil {
		return nil, err
	}
	query := strings.ReplaceAll(cfg.GetClosedAccounts, "{{minor_codes}}", formatted)

	var records []models.ClosedAccountRecord
	if err := db.WithContext(ctx).Raw(query, sql.Named("effdate", effDate)).Scan(&records).Error; err != nil {
		return nil, fmt.Errorf("fetch closed accounts: %w", err)
	}

	for _, rec := range records {
		log.WithField("acctnbr", rec.AcctNbr).Debug("closed account candidate")
	}
	log.Infof("found %d closed accounts to process", len(records))

	return records, nil
}
