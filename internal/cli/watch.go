package cli

import (
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"astrosort/internal/config"
	"astrosort/internal/orchestrator"
	"astrosort/internal/output"
	"astrosort/internal/watcher"
)

func newWatchCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "watch",
		Short: "Watch the collection root and normalize as new folders arrive",
		Long: `Watch runs one normalization pass immediately, then monitors the
collection root and re-runs after new folders appear and activity settles.
Stop with Ctrl-C to see a session summary.`,
		Args: cobra.NoArgs,
		RunE: runWatch,
	}
}

func runWatch(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return err
	}

	out := output.New(output.Config{
		Verbose:   verbose,
		Writer:    cmd.OutOrStdout(),
		ErrWriter: cmd.ErrOrStderr(),
	})

	runOnce := func() {
		report, err := orchestrator.Run(cfg, orchestrator.RunOptions{})
		if err != nil {
			out.Warn("%v", err)
			return
		}
		printReport(out, report, false)
	}

	// Initial pass before watching, so a backlog is cleared immediately.
	runOnce()

	w := watcher.New(&watcher.WatchConfig{DebounceSeconds: cfg.Watch.DebounceSeconds}, runOnce)
	if err := w.Start(cfg.RootDirectory); err != nil {
		return err
	}
	out.Info("Watching %s (Ctrl-C to stop)", cfg.RootDirectory)

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	<-stop

	summary := w.Stop()
	out.Info("Watch session: %d runs triggered in %s", summary.RunsTriggered, summary.Duration.Round(time.Second))
	return nil
}
