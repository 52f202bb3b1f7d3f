// Package main is the entry point for the tablescape still life viewer.
package main

import (
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/driftglass/tablescape/internal/app"
	"github.com/driftglass/tablescape/internal/config"
	"github.com/driftglass/tablescape/internal/logger"
)

func main() {
	config.ParseFlags()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "config: %v\n", err)
		os.Exit(1)
	}

	if err := logger.Init(cfg.Logging.Level, cfg.Logging.LogFile); err != nil {
		fmt.Fprintf(os.Stderr, "logger: %v\n", err)
		os.Exit(1)
	}

	if err := run(cfg); err != nil {
		logger.Error("exiting on error", zap.Error(err))
		logger.Sync()
		os.Exit(1)
	}
	logger.Sync()
}

func run(cfg *config.Config) error {
	logger.Info("=== Tablescape ===")
	logger.Sugar.Debugf("config: %+v", cfg)

	a, err := app.New(cfg)
	if err != nil {
		return err
	}
	defer a.Close()

	if err := a.Run(); err != nil {
		return err
	}

	logger.Info("closed normally")
	return nil
}
