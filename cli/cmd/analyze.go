package cmd

import (
	"errors"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/sprakvakt/sprakvakt"
)

// analyzeDirectory loads the (optional) project configuration and runs the
// analyzer over the configured directory.
func analyzeDirectory(logger logrus.FieldLogger) (sprakvakt.Session, error) {
	cfg, err := sprakvakt.LoadConfig(directory)
	if err != nil && !errors.Is(err, sprakvakt.ErrNoConfig) {
		return sprakvakt.Session{}, err
	}
	opts := cfg.ScanOptions(logger)
	opts.Verbose = verbose
	return sprakvakt.Analyze(
		sprakvakt.Options{Scan: opts},
		logger,
		os.DirFS(directory),
	)
}

var (
	analyzeCmd = &cobra.Command{
		Use:   "analyze",
		Short: "Scan the directory tree and write the review report to stdout",
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) != 0 {
				_ = cmd.Help()
				return errors.New("too many arguments")
			}
			logger := newLogger()
			session, err := analyzeDirectory(logger)
			if err != nil {
				return err
			}
			if len(session.ParsedFiles) == 0 {
				logger.Warn("no reviewable source files found in given path")
			}
			return session.Report(os.Stdout, verbose)
		},
	}
)

func init() {
	rootCmd.AddCommand(analyzeCmd)
}
