package notices

import (
	"strconv"
	"time"

	"github.com/sirupsen/logrus"

	"bitbucket.org/ftfcu/closedloan_batch/mailer"
	"bitbucket.org/ftfcu/closedloan_batch/models"
)

const (
	noticeSubject   = "Your Closed Automobile Loan"
	fromDisplayName = "First Tech Federal Credit Union"
)

// Renderer produces the member-specific notice body.
type Renderer interface {
	Render(mailer.NoticeParams) (string, error)
}

type DispatcherConfig struct {
	FromAddr     string
	TestOverride string
	SendEnabled  bool
	Production   bool
}

// Dispatcher sends the notice for records the evaluator passed through and
// stamps the outcome on them. Per-record transport failures are logged and
// recorded, never propagated; the loop must keep going.
type Dispatcher struct {
	sender   mailer.Sender
	template Renderer
	guard    *Guard
	log      logrus.FieldLogger
	cfg      DispatcherConfig
}

func NewDispatcher(sender mailer.Sender, template Renderer, guard *Guard, log logrus.FieldLogger, cfg DispatcherConfig) *Dispatcher {
	return &Dispatcher{sender: sender, template: template, guard: guard, log: log, cfg: cfg}
}

// Dispatch handles one eligible record. The recipient claims its guard slot
// whether or not the send goes through.
func (d *Dispatcher) Dispatch(rec *models.ClosedAccountRecord) {
	defer d.guard.Register(rec.EmailAddr)

	// Non-production environments and disabled sending short-circuit before
	// the template or transport is touched. A skip, not an exception.
	if !d.cfg.SendEnabled || !d.cfg.Production {
		rec.SetDisposition(models.DispositionDisabled)
		return
	}

	to := rec.EmailAddr
	if d.cfg.TestOverride != "" {
		to = d.cfg.TestOverride
	}

	body, err := d.template.Render(mailer.NoticeParams{
		MemberName: rec.MemberName,
		EmailDate:  rec.EmailDate,
		Year:       strconv.Itoa(time.Now().Year()),
	})
	if err == nil {
		err = d.sender.Send(d.cfg.FromAddr, fromDisplayName, to, noticeSubject, body, mailer.ContentTypeHTML)
	}
	if err != nil {
		d.log.WithFields(logrus.Fields{
			"acctnbr": rec.AcctNbr,
			"to":      to,
		}).Errorf("notice send failed: %v", err)
		rec.SetDisposition(models.DispositionSendFailed)
		return
	}

	rec.SetDisposition(models.DispositionSent)
}

// ProcessRecords evaluates and dispatches every record sequentially in list
// order. Send order must match audit order, so there is no concurrency here.
func ProcessRecords(records []models.ClosedAccountRecord, guard *Guard, d *Dispatcher) {
	for i := range records {
		rec := &records[i]
		if Evaluate(rec, guard, time.Now()) {
			d.Dispatch(rec)
		}
	}
}
