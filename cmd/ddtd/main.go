package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/adrg/xdg"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/jihokang/ddtd/internal/catalog"
	"github.com/jihokang/ddtd/internal/logging"
	"github.com/jihokang/ddtd/internal/period"
	"github.com/jihokang/ddtd/internal/scheduler"
	"github.com/jihokang/ddtd/internal/storage"
	"github.com/jihokang/ddtd/internal/tasks"
	"github.com/jihokang/ddtd/internal/timers"
	"github.com/jihokang/ddtd/internal/update"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "ddtd failed: %v\n", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var (
		startPreset string
		resetHour   int
		zoneName    string
		dbPath      string
		notify      bool
	)

	cmd := &cobra.Command{
		Use:   "ddtd",
		Short: "Daily and weekly chore tracker with respawn timers",
		Long: `ddtd tracks a game's daily and weekly chores against its reset
clock, runs respawn countdown timers, and notifies when they finish.
Progress and timers survive restarts.`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg := update.RuntimeConfigFromEnv(update.DefaultRuntimeConfig())
			// Flags beat environment, environment beats defaults.
			if cmd.Flags().Changed("reset-hour") {
				cfg.ResetHour = resetHour
			}
			if cmd.Flags().Changed("timezone") {
				cfg.ZoneName = zoneName
			}
			if cmd.Flags().Changed("db") {
				cfg.DBPath = dbPath
			}
			if cmd.Flags().Changed("notify") {
				cfg.DesktopNotifications = notify
			}
			if cfg.ResetHour < 0 || cfg.ResetHour > 23 {
				return fmt.Errorf("reset hour %d out of range 0-23", cfg.ResetHour)
			}
			return run(cfg, startPreset)
		},
	}

	cmd.Flags().StringVar(&startPreset, "start", "", "start a timer preset by id before opening the UI")
	cmd.Flags().IntVar(&resetHour, "reset-hour", period.DefaultResetHour, "hour of day the game resets at")
	cmd.Flags().StringVar(&zoneName, "timezone", period.DefaultZoneName, "IANA zone of the game server clock")
	cmd.Flags().StringVar(&dbPath, "db", "", "path to the state database")
	cmd.Flags().BoolVar(&notify, "notify", false, "send desktop notifications when timers finish")
	return cmd
}

func run(cfg update.RuntimeConfig, startPreset string) error {
	log, logCloser, err := logging.Open(logging.DefaultLogPath(), slog.LevelInfo)
	if err != nil {
		log = logging.Nop()
	} else {
		defer logCloser.Close()
	}

	zone, err := time.LoadLocation(cfg.ZoneName)
	if err != nil {
		log.Warn("unknown timezone, falling back to server zone", "zone", cfg.ZoneName)
		zone = period.ServerZone()
	}

	path := cfg.DBPath
	if path == "" {
		path = filepath.Join(xdg.DataHome, "ddtd", "ddtd.db")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create data dir: %w", err)
	}
	store, err := storage.OpenSQLite(path)
	if err != nil {
		return fmt.Errorf("open state database: %w", err)
	}
	defer store.Close()

	ctx := context.Background()
	taskStore := tasks.NewStore(store, log)
	taskStore.Load(ctx)
	registry := timers.NewRegistry(store, log)
	registry.Load(ctx)

	var notifier timers.Notifier = timers.NoopNotifier{}
	if cfg.DesktopNotifications {
		notifier = timers.DesktopNotifier{}
	}
	dispatcher := timers.NewDispatcher(registry, store, notifier, cfg.DesktopNotifications, log)
	dispatcher.Load(ctx)

	if startPreset != "" {
		startDeepLink(ctx, registry, startPreset, log)
	}

	engine, err := scheduler.NewEngine(time.Second, cfg.TickBuffer)
	if err != nil {
		return err
	}
	engine.Start()
	defer engine.Stop()

	m, err := update.NewModel(update.Deps{
		TaskStore:  taskStore,
		Registry:   registry,
		Dispatcher: dispatcher,
		Engine:     engine,
		Config:     cfg,
		Zone:       zone,
		Log:        log,
	})
	if err != nil {
		return err
	}

	log.Info("starting", "db", path, "zone", zone.String(), "reset_hour", cfg.ResetHour)
	if _, err := tea.NewProgram(m).Run(); err != nil {
		return fmt.Errorf("run ui: %w", err)
	}
	return nil
}

// startDeepLink handles --start: unknown presets are ignored and a
// preset that already has a live run is not started twice.
func startDeepLink(ctx context.Context, registry *timers.Registry, presetID string, log *slog.Logger) {
	preset, ok, err := catalog.PresetByID(presetID)
	if err != nil {
		log.Error("preset catalog unavailable", "error", err)
		return
	}
	if !ok {
		log.Warn("unknown preset in --start", "preset", presetID)
		return
	}
	run, started, err := registry.StartIfIdle(ctx, preset, time.Now().Unix())
	if err != nil {
		log.Error("start preset", "preset", presetID, "error", err)
		return
	}
	if !started {
		log.Info("preset already running", "preset", presetID)
		return
	}
	log.Info("preset started", "preset", presetID, "run", run.RunID)
}
