// Package main is the entry point for the SimpleForest viewer.
package main

import (
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/Faultbox/simpleforest/internal/app"
	"github.com/Faultbox/simpleforest/internal/config"
	"github.com/Faultbox/simpleforest/internal/game"
	"github.com/Faultbox/simpleforest/internal/logger"
)

func main() {
	// Parse CLI flags first
	config.ParseFlags()

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Config error: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger
	if err := logger.Init(cfg.Logging.Level, cfg.Logging.LogFile); err != nil {
		fmt.Fprintf(os.Stderr, "Logger error: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	logger.Info("=== SimpleForest ===")
	logger.Sugar.Debugf("Config: %+v", cfg)

	if path := config.WriteConfigPath(); path != "" {
		if err := cfg.SaveTo(path); err != nil {
			logger.Error("writing config failed", zap.Error(err))
			os.Exit(1)
		}
		logger.Info("config written", zap.String("path", path))
		return
	}

	if err := run(cfg); err != nil {
		logger.Error("forest exited with error", zap.Error(err))
		logger.Sync()
		os.Exit(1)
	}
	logger.Info("window closed normally")
}

func run(cfg *config.Config) error {
	a, err := app.New(cfg, logger.Log)
	if err != nil {
		return err
	}

	g, err := game.New(a, logger.Log)
	if err != nil {
		return err
	}
	defer g.Close()

	return g.Run()
}
