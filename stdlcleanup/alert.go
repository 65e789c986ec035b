package stdlcleanup

import (
	"fmt"

	"bitbucket.org/ftfcu/closedloan_batch/mailer"
)

const (
	alertSubject = "Statement Delivery Method Update Alert"
	alertBody    = "One or more statement delivery method updates has failed. Please see log file(s) in Identifi."
)

// SendFailureAlert notifies the back-office distribution list that the run
// had failed merges. A plain-text message per recipient; the first transport
// error aborts, since alerting is all-or-nothing for the scheduler.
func SendFailureAlert(sender mailer.Sender, from string, recipients []string) error {
	for _, to := range recipients {
		if err := sender.Send(from, "", to, alertSubject, alertBody, mailer.ContentTypePlain); err != nil {
			return fmt.Errorf("send failure alert to %s: %w", to, err)
		}
	}
	return nil
}
