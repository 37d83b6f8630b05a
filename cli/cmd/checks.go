package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/sprakvakt/sprakvakt"
)

var (
	checksCmd = &cobra.Command{
		Use:   "checks",
		Short: "Print the checks enabled by the configuration in the scanned directory",
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) != 0 {
				_ = cmd.Help()
				return errors.New("too many arguments")
			}
			logger := newLogger()
			cfg, err := sprakvakt.LoadConfig(directory)
			if err != nil && !errors.Is(err, sprakvakt.ErrNoConfig) {
				return err
			}
			opts := cfg.ScanOptions(logger)
			for _, name := range opts.Style.Names() {
				fmt.Println(name)
			}
			return nil
		},
	}
)

func init() {
	rootCmd.AddCommand(checksCmd)
}
