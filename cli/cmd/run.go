package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/triagehq/logtriage/internal/admin"
	"github.com/triagehq/logtriage/internal/ingest"
	"github.com/triagehq/logtriage/internal/store"
	"github.com/triagehq/logtriage/internal/table"
	"github.com/triagehq/logtriage/internal/tui"
	"github.com/triagehq/logtriage/internal/view"
)

func newCmdRun() *cobra.Command {
	var headless bool

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Ingest configured log sources and watch them live",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			defer recoverToFatal()
			cfg := configFromContext(cmd.Context())

			s := store.New(cfg.Store.Capacity, cfg.Store.BroadcastCapacity)

			sources, err := buildSources(cfg.Ingest)
			if err != nil {
				fmt.Fprintf(cmd.ErrOrStderr(), "%s could not build ingest sources: %v\n", failStatus, err)
				return err
			}
			fmt.Fprintf(cmd.ErrOrStderr(), "%s ingesting from %d source(s), admin on %s\n", okStatus, len(sources), cfg.Admin.Addr)

			ctx, cancel := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer cancel()

			var wg sync.WaitGroup
			for _, src := range sources {
				wg.Add(1)
				go func(src ingest.Source) {
					defer wg.Done()
					if err := src.Run(ctx, s); err != nil && ctx.Err() == nil {
						log.WithError(err).Warn("ingest source exited")
					}
				}(src)
			}

			reg := prometheus.NewRegistry()
			metrics := admin.NewMetrics(reg)
			adminSrv := admin.NewServer(cfg.Admin.Addr, s, metrics)
			go func() {
				if err := adminSrv.ListenAndServe(); err != nil {
					log.WithError(err).Debug("admin server stopped")
				}
			}()
			defer adminSrv.Close()

			v := view.New(s, store.Filter{})
			defer v.Close()

			if headless {
				err = runHeadless(ctx, v)
			} else {
				dash := tui.NewDashboard(v)
				if cfg.UI.RefreshMS > 0 {
					dash.RefreshRate = time.Duration(cfg.UI.RefreshMS) * time.Millisecond
				}
				err = dash.Run(ctx)
			}

			wg.Wait()
			if err == context.Canceled {
				return nil
			}
			return err
		},
	}

	cmd.Flags().BoolVar(&headless, "headless", false, "print a plain-text table instead of the live terminal dashboard")
	return cmd
}

// runHeadless prints the View's current window, then every newly arrived
// batch, as plain tables — the non-interactive analogue of the termbox
// dashboard, for piping into another process.
func runHeadless(ctx context.Context, v *view.View) error {
	table.Render(os.Stdout, v.Backfill(ctx))
	for {
		entries, err := v.Poll(ctx)
		if err != nil {
			return err
		}
		if len(entries) > 0 {
			table.Render(os.Stdout, entries)
		}
		if ctx.Err() != nil {
			return ctx.Err()
		}
	}
}
