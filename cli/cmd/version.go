package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/triagehq/logtriage/internal/version"
)

func newCmdVersion() *cobra.Command {
	var short bool

	cmd := &cobra.Command{
		Use:   "version",
		Short: "Print the version and exit",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if short {
				fmt.Println(version.Version)
				return nil
			}
			fmt.Printf("logtriage version %s\n", version.Version)
			return nil
		},
	}

	cmd.Flags().BoolVar(&short, "short", false, "print the version number only")
	return cmd
}
