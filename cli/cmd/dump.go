package cmd

import (
	"errors"
	"fmt"

	"github.com/alecthomas/repr"
	"github.com/spf13/cobra"
)

var (
	dumpCmd = &cobra.Command{
		Use:   "dump",
		Short: "Scan the directory tree and dump the raw result buckets (debugging aid)",
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) != 0 {
				_ = cmd.Help()
				return errors.New("too many arguments")
			}
			session, err := analyzeDirectory(newLogger())
			if err != nil {
				return err
			}
			fmt.Println(repr.String(session.Results, repr.Indent("  ")))
			return nil
		},
	}
)

func init() {
	rootCmd.AddCommand(dumpCmd)
}
