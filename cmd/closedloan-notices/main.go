package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"bitbucket.org/ftfcu/closedloan_batch/config"
)

const defaultFromAddr = "member.communications@firsttechfed.com"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		config.GetLogger().Errorf("run failed: %v", err)
		os.Exit(1)
	}
}

// rootOptions carries the flags shared by both run modes plus the run id
// minted for this invocation.
type rootOptions struct {
	outputPath string
	outputFile string
	reportOnly bool
	logLevel   string
	fromAddr   string
	runID      string
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}

	root := &cobra.Command{
		Use:           "closedloan-notices",
		Short:         "Back-office batch jobs for closed-account statement cleanup and closed-loan notices",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if err := config.SetLogLevel(opts.logLevel); err != nil {
				return fmt.Errorf("invalid --log-level: %w", err)
			}
			opts.runID = uuid.NewString()
			return nil
		},
	}

	pf := root.PersistentFlags()
	pf.StringVar(&opts.outputPath, "output-path", "", "directory for the run report (required)")
	pf.StringVar(&opts.outputFile, "output-file", "", "report file name, .csv (required)")
	pf.BoolVar(&opts.reportOnly, "report-only", false, "classify and report without persisting merge changes")
	pf.StringVar(&opts.logLevel, "log-level", "info", "log level (debug, info, warn, error)")
	pf.StringVar(&opts.fromAddr, "from", defaultFromAddr, "from address for outgoing mail")
	root.MarkPersistentFlagRequired("output-path")
	root.MarkPersistentFlagRequired("output-file")

	root.AddCommand(newStdlCleanupCmd(opts))
	root.AddCommand(newEmailNoticesCmd(opts))

	return root
}

// outputFilePath joins and checks the report path. An already-existing file
// is fatal before any work starts: a prior run's report is never silently
// overwritten.
func outputFilePath(opts *rootOptions) (string, error) {
	path := filepath.Join(opts.outputPath, opts.outputFile)
	if _, err := os.Stat(path); err == nil {
		return "", fmt.Errorf("output file already exists at %s", path)
	} else if !errors.Is(err, os.ErrNotExist) {
		return "", err
	}
	return path, nil
}

// isProductionEnvironment checks the scheduler's home variable. Its absence
// means a local dev run and no mail may go out.
func isProductionEnvironment() bool {
	return os.Getenv("AW_HOME") != ""
}
