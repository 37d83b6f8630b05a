package main

import (
	"os"

	"github.com/sprakvakt/sprakvakt/cli/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
