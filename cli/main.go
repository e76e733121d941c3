package main

import (
	"os"

	"github.com/triagehq/logtriage/cli/cmd"
)

func main() {
	if err := cmd.NewRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
