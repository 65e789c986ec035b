package main

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"bitbucket.org/ftfcu/closedloan_batch/config"
	"bitbucket.org/ftfcu/closedloan_batch/mailer"
	"bitbucket.org/ftfcu/closedloan_batch/models"
	"bitbucket.org/ftfcu/closedloan_batch/stdlcleanup"
)

func newStdlCleanupCmd(root *rootOptions) *cobra.Command {
	var (
		runDate         string
		fullCleanup     bool
		sendAlert       bool
		alertRecipients string
	)

	cmd := &cobra.Command{
		Use:   "stdl-cleanup",
		Short: "Reset the statement delivery preference to paper for closed-out members",
		PreRunE: func(cmd *cobra.Command, _ []string) error {
			if !fullCleanup && runDate == "" {
				return errors.New("one of --run-date or --full-cleanup is required")
			}
			if runDate != "" {
				if _, err := time.Parse("01-02-2006", runDate); err != nil {
					return errors.New("--run-date must be MM-DD-YYYY")
				}
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runStdlCleanup(cmd.Context(), root, runDate, fullCleanup, sendAlert, alertRecipients)
		},
	}

	cmd.Flags().StringVar(&runDate, "run-date", "", "process accounts closed on this date (MM-DD-YYYY)")
	cmd.Flags().BoolVar(&fullCleanup, "full-cleanup", false, "process every currently closed account")
	cmd.Flags().BoolVar(&sendAlert, "send-alert", false, "email the back office when any merge fails")
	cmd.Flags().StringVar(&alertRecipients, "alert-recipients", "", "comma-separated alert recipients")
	cmd.MarkFlagsMutuallyExclusive("run-date", "full-cleanup")

	return cmd
}

func runStdlCleanup(ctx context.Context, root *rootOptions, runDate string, fullCleanup, sendAlert bool, alertRecipients string) error {
	log := config.GetLogger().WithFields(logrus.Fields{
		"job":    "stdl-cleanup",
		"run_id": root.runID,
	})

	path, err := outputFilePath(root)
	if err != nil {
		return err
	}

	if err := config.ConnectDatabase(); err != nil {
		return err
	}
	db := config.GetDB()

	pers, org, err := stdlcleanup.FetchEntityRecords(ctx, db, runDate, fullCleanup)
	if err != nil {
		return err
	}
	log.Infof("fetched %d person and %d organization records", len(pers), len(org))

	exec := stdlcleanup.NewMergeExecutor(db, log)

	var successes, fails []models.ReportRow
	for _, batch := range []struct {
		tbl     stdlcleanup.UserfieldTable
		records []models.EntityRecord
	}{
		{stdlcleanup.PersUserfield, pers},
		{stdlcleanup.OrgUserfield, org},
	} {
		outcomes, err := exec.MergeSTDL(ctx, batch.tbl, stdlcleanup.UniqueEntityNbrs(batch.records), root.reportOnly)
		if err != nil {
			return err
		}
		f, s := stdlcleanup.ClassifyOutcomes(batch.records, outcomes)
		fails = append(fails, f...)
		successes = append(successes, s...)
	}

	if err := stdlcleanup.WriteReport(path, successes, fails); err != nil {
		return err
	}
	log.Infof("report written to %s: %d successes, %d fails", path, len(successes), len(fails))

	switch {
	case len(fails) == 0:
		log.Info("no failed inserts/updates to report; no alert sent")
	case !sendAlert:
		log.Warnf("%d failed merges; alerting disabled", len(fails))
	case strings.TrimSpace(alertRecipients) == "":
		log.Warn("alerting enabled but no recipients configured; skipping alert")
	default:
		smtpCfg, err := mailer.SMTPConfigFromEnv()
		if err != nil {
			return err
		}
		sender := mailer.NewSMTPSender(smtpCfg)
		if err := stdlcleanup.SendFailureAlert(sender, root.fromAddr, strings.Split(alertRecipients, ",")); err != nil {
			return err
		}
		log.Info("failure alert sent")
	}

	return nil
}
