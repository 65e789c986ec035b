package main

import (
	"context"
	"errors"
	"regexp"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"bitbucket.org/ftfcu/closedloan_batch/config"
	"bitbucket.org/ftfcu/closedloan_batch/mailer"
	"bitbucket.org/ftfcu/closedloan_batch/notices"
)

// defaultMinorCodes is the standard closed-loan minor account type list.
const defaultMinorCodes = "NACL,NAIL,UAOE,UACL,INRV,INAU,INUA,OVCL,OVOE,UAIL"

var effDatePattern = regexp.MustCompile(`^\d{2}[-./]\d{2}[-./]\d{4}$`)

func newEmailNoticesCmd(root *rootOptions) *cobra.Command {
	var (
		configPath string
		effDate    string
		minorCodes string
		testEmail  string
		sendEmail  bool
	)

	cmd := &cobra.Command{
		Use:   "email-notices",
		Short: "Send one-time closed loan notification emails and write the audit log",
		PreRunE: func(cmd *cobra.Command, _ []string) error {
			if !effDatePattern.MatchString(effDate) {
				return errors.New("--effdate must be MM-DD-YYYY")
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runEmailNotices(cmd.Context(), root, configPath, effDate, minorCodes, testEmail, sendEmail)
		},
	}

	cmd.Flags().StringVar(&configPath, "config", "", "job config YAML path (required)")
	cmd.Flags().StringVar(&effDate, "effdate", "", "effective close date, MM-DD-YYYY (required)")
	cmd.Flags().StringVar(&minorCodes, "minor-codes", defaultMinorCodes, "comma-separated minor account type codes")
	cmd.Flags().StringVar(&testEmail, "test-email", "", "override every recipient with this address")
	cmd.Flags().BoolVar(&sendEmail, "send-email", false, "actually send notification emails")
	cmd.MarkFlagRequired("config")
	cmd.MarkFlagRequired("effdate")

	return cmd
}

func runEmailNotices(ctx context.Context, root *rootOptions, configPath, effDate, minorCodes, testEmail string, sendEmail bool) error {
	log := config.GetLogger().WithFields(logrus.Fields{
		"job":    "email-notices",
		"run_id": root.runID,
	})

	jobCfg, err := config.LoadJobConfig(configPath)
	if err != nil {
		return err
	}

	path, err := outputFilePath(root)
	if err != nil {
		return err
	}

	tmpl, err := mailer.LoadTemplate(jobCfg.TemplateDirectory, jobCfg.TemplateFile)
	if err != nil {
		return err
	}

	if err := config.ConnectDatabase(); err != nil {
		return err
	}

	records, err := notices.FetchClosedAccounts(ctx, config.GetDB(), jobCfg, effDate, minorCodes, log)
	if err != nil {
		return err
	}

	production := isProductionEnvironment()
	var sender mailer.Sender
	if sendEmail && production {
		smtpCfg, err := mailer.SMTPConfigFromEnv()
		if err != nil {
			return err
		}
		sender = mailer.NewSMTPSender(smtpCfg)
	}

	guard := notices.NewGuard()
	dispatcher := notices.NewDispatcher(sender, tmpl, guard, log, notices.DispatcherConfig{
		FromAddr:     root.fromAddr,
		TestOverride: testEmail,
		SendEnabled:  sendEmail,
		Production:   production,
	})

	notices.ProcessRecords(records, guard, dispatcher)

	if err := notices.WriteAuditLog(path, effDate, records, jobCfg.CSVHeader); err != nil {
		return err
	}
	log.Infof("audit log written to %s for %d records", path, len(records))

	return nil
}
