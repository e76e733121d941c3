// Package cmd implements logtriage's Cobra command tree: run, query,
// version, completion, and doc, grounded on the teacher's own
// cli/cmd/root.go (RootCmd as a package var, PersistentPreRunE wiring
// logging, command registration in init).
package cmd

import (
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/triagehq/logtriage/internal/config"
)

var commonFlags *config.Flags

// RootCmd is the logtriage root command.
var RootCmd = &cobra.Command{
	Use:   "logtriage",
	Short: "logtriage triages live logs from Docker, Kubernetes, files, and stdin",
	Long: `logtriage collects logs from one or more running sources into an
in-memory, sequence-numbered store, and lets you query and watch them
expand through a domain-aware term graph rather than matching only the
literal words you typed.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := commonFlags.Resolve()
		if err != nil {
			return err
		}
		config.ConfigureLogging(cfg)
		cmd.SetContext(withConfig(cmd.Context(), cfg))
		return nil
	},
}

func init() {
	commonFlags = config.RegisterFlags(RootCmd.PersistentFlags())

	RootCmd.AddCommand(newCmdRun())
	RootCmd.AddCommand(newCmdQuery())
	RootCmd.AddCommand(newCmdVersion())
	RootCmd.AddCommand(newCmdCompletion())
	RootCmd.AddCommand(newCmdDoc())
}

// NewRootCmd returns the root command, for cli/main.go to Execute.
func NewRootCmd() *cobra.Command {
	return RootCmd
}

// recoverToFatal recovers a panic raised by an Internal invariant
// violation (store.go's own contract per spec.md §7) and logs it as an
// error-level structured entry before re-panicking into a nonzero exit, the
// same top-level-recover-and-rethrow shape the teacher's RunE error
// handling funnels into a single os.Exit(1) in cli/main.go.
func recoverToFatal() {
	if r := recover(); r != nil {
		log.WithField("panic", r).Error("internal invariant violation")
		panic(r)
	}
}
