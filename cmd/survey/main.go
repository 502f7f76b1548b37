package main

import (
	"fmt"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/spf13/cobra"

	"github.com/Garsondee/Drone-Survey/internal/config"
	"github.com/Garsondee/Drone-Survey/internal/game"
	"github.com/Garsondee/Drone-Survey/internal/logger"
)

var (
	// Version info (set by ldflags)
	version = "dev"

	// Flags
	configPath string
	debug      bool
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		// Error already printed by cobra
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "survey",
		Short: "Drone survey viewer",
		Long: `survey opens the drone survey window: a generated satellite terrain with
a toggleable zone overlay and an animated survey drone.

Keys:
  O  toggle overlay      R  reset view
  1  safe zone           2  warning zone      3  critical zone
  X  dismiss message     C  copy status       H  toggle legend`,
		Version:      version,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runWindow()
		},
	}

	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "config file path (default ./survey.yaml or ~/.config/survey/survey.yaml)")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug logging")

	rootCmd.AddCommand(newSnapshotCmd())
	return rootCmd
}

// loadConfig honours --config and --debug.
func loadConfig() (*config.Config, error) {
	var cfg *config.Config
	var err error
	if configPath != "" {
		cfg, err = config.LoadFromPath(configPath)
	} else {
		cfg, err = config.Load()
	}
	if err != nil {
		return nil, err
	}
	if debug {
		cfg.Log.Level = "debug"
	}
	return cfg, nil
}

func runWindow() error {
	cfg, err := loadConfig()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	log := logger.New(logger.Options{Level: cfg.Log.Level, Path: cfg.Log.Path})
	defer func() { _ = log.Close() }()

	app, err := game.New(cfg, log.Logger)
	if err != nil {
		return err
	}

	ebiten.SetWindowTitle(cfg.Window.Title)
	ebiten.SetWindowSize(cfg.Window.Width, cfg.Window.Height)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(cfg.Window.TPS)

	if err := ebiten.RunGame(app); err != nil {
		log.Error("window closed with error", "err", err)
		return err
	}
	if warn, errs := log.Counts(); warn+errs > 0 {
		log.Info("session finished", "warnings", warn, "errors", errs)
	}
	return nil
}
