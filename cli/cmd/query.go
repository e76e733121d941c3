package cmd

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/triagehq/logtriage/internal/query"
	"github.com/triagehq/logtriage/internal/store"
	"github.com/triagehq/logtriage/internal/table"
)

func newCmdQuery() *cobra.Command {
	var (
		greed   int
		collect time.Duration
		alpha   float64
		beta    float64
	)

	cmd := &cobra.Command{
		Use:   "query [text]",
		Short: "Collect briefly from the configured sources, then run one query and print the matches",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			defer recoverToFatal()
			cfg := configFromContext(cmd.Context())

			s := store.New(cfg.Store.Capacity, cfg.Store.BroadcastCapacity)

			sources, err := buildSources(cfg.Ingest)
			if err != nil {
				return err
			}

			ctx, cancel := context.WithTimeout(cmd.Context(), collect)
			for _, src := range sources {
				go src.Run(ctx, s)
			}
			<-ctx.Done()
			cancel()

			if greed < 0 {
				greed = cfg.Store.DefaultGreed
			}
			if !cmd.Flags().Changed("rank-alpha") {
				alpha = cfg.Rank.Alpha
			}
			if !cmd.Flags().Changed("rank-beta") {
				beta = cfg.Rank.Beta
			}
			w := query.Weights{Alpha: alpha, Beta: beta}

			// The collection context is already cancelled; run the query
			// against a fresh, uncancelled context since Execute itself
			// does no further waiting.
			results, err := query.Execute(context.Background(), s, args[0], greed, store.Filter{}, w)
			if err != nil {
				return fmt.Errorf("query: %w", err)
			}

			entries := make([]store.Entry, 0, len(results))
			for _, r := range results {
				if e, ok := s.Get(r.Seq); ok {
					entries = append(entries, e)
				}
			}
			status := okStatus
			if len(entries) == 0 {
				status = warnStatus
			}
			fmt.Fprintf(cmd.ErrOrStderr(), "%s %d match(es)\n", status, len(entries))
			table.Render(os.Stdout, entries)
			return nil
		},
	}

	cmd.Flags().IntVar(&greed, "greed", -1, "greed level for bare terms (default: store.default_greed from config)")
	cmd.Flags().DurationVar(&collect, "collect", 2*time.Second, "how long to collect from sources before running the query")
	cmd.Flags().Float64Var(&alpha, "rank-alpha", query.DefaultWeights.Alpha, "match-density weight (default: rank.alpha from config)")
	cmd.Flags().Float64Var(&beta, "rank-beta", query.DefaultWeights.Beta, "recency weight (default: rank.beta from config)")

	return cmd
}
