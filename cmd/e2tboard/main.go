package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"time"

	"github.com/carlmjohnson/versioninfo"
	tea "github.com/charmbracelet/bubbletea"
	_ "github.com/joho/godotenv/autoload"
	"github.com/rs/zerolog"

	"github.com/e2t/leaderboard/internal/api"
	"github.com/e2t/leaderboard/internal/config"
	"github.com/e2t/leaderboard/internal/logging"
	"github.com/e2t/leaderboard/internal/schedule"
	"github.com/e2t/leaderboard/internal/ui"
)

// fetchTimeout bounds the initial load and manual refreshes; scheduled
// refreshes live under the poller's context instead.
const fetchTimeout = 30 * time.Second

func main() {
	appVersion := versioninfo.Short()

	cfg, err := config.ParseFlags(appVersion)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	logger, closeLog, err := logging.Setup(cfg.LogFile)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	logger.Info().Str("version", appVersion).Str("api_url", cfg.APIURL).Bool("demo", cfg.Demo).Msg("starting")

	load := newLoader(cfg, logger)

	fetch := func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), fetchTimeout)
		defer cancel()
		snap, err := load(ctx)
		if err != nil {
			return ui.RefreshErrMsg{Err: err}
		}
		return ui.SnapshotMsg{Snapshot: snap}
	}

	model := ui.NewModel(schedule.Real(), fetch, appVersion)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
		tea.WithoutSignalHandler(),
	)

	refresh := func(ctx context.Context) error {
		snap, err := load(ctx)
		if err != nil {
			p.Send(ui.RefreshErrMsg{Err: err})
			return err
		}
		p.Send(ui.SnapshotMsg{Snapshot: snap})
		return nil
	}
	poller := schedule.NewPoller(schedule.Real(), refresh, logger.With().Str("component", "poller").Logger())

	cleanup := newCleanupManager(5*time.Second, logger.With().Str("component", "cleanup").Logger())
	cleanup.registerFunc("poller", func() error {
		poller.Stop()
		return nil
	})

	if err := poller.Start(); err != nil {
		logger.Error().Err(err).Msg("poll chain failed to start")
		fmt.Fprintln(os.Stderr, err)
		closeLog()
		os.Exit(1)
	}

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, platformSignals()...)

	go func() {
		for sig := range sigChan {
			if isSuspendSignal(sig) {
				logger.Debug().Str("signal", sig.String()).Msg("ignoring suspend request")
				continue
			}
			logger.Info().Str("signal", sig.String()).Msg("received signal")
			cleanup.execute()
			p.Kill()
			return
		}
	}()

	_, runErr := p.Run()
	cleanup.execute()
	logger.Info().Msg("stopped")
	closeLog()
	if runErr != nil {
		fmt.Fprintln(os.Stderr, "Error running program:", runErr)
		os.Exit(1)
	}
}

// newLoader returns the snapshot source: generated demo data or the
// live API client.
func newLoader(cfg *config.Config, logger zerolog.Logger) func(context.Context) (*api.Snapshot, error) {
	if cfg.Demo {
		return func(context.Context) (*api.Snapshot, error) {
			return api.DemoSnapshot(time.Now()), nil
		}
	}
	client := api.NewClient(cfg.APIURL, cfg.APIToken, logger.With().Str("component", "api").Logger())
	return client.Latest
}
