package cmd

import (
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var (
	rootCmd = &cobra.Command{
		Use:          "sprakvakt",
		Short:        "sprakvakt",
		SilenceUsage: true,
		Long:         `Opinionated i18n/l10n static analyzer for C/C++/C# source trees.`,
	}

	directory string
	verbose   bool
)

// Execute executes the root command.
func Execute() error {
	rootCmd.PersistentFlags().StringVarP(&directory, "directory", "d", ".", "path to directory and subtree which will be scanned for source files")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "include parser diagnostics and modernization suggestions")
	return rootCmd.Execute()
}

func newLogger() logrus.FieldLogger {
	logger := logrus.New()
	if verbose {
		logger.SetLevel(logrus.DebugLevel)
	}
	return logger
}
