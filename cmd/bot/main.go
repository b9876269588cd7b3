package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/kapu/nova-discord-bot/internal/app"
	"github.com/kapu/nova-discord-bot/internal/config"
	"github.com/kapu/nova-discord-bot/internal/constants"
	"github.com/kapu/nova-discord-bot/internal/util"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}

	logger, err := util.EnableFileLoggingWithLevel(util.LogConfig{
		Dir:        cfg.Logging.Dir,
		MaxSizeMB:  cfg.Logging.MaxSizeMB,
		MaxBackups: cfg.Logging.MaxBackups,
		MaxAgeDays: cfg.Logging.MaxAgeDays,
		Compress:   cfg.Logging.Compress,
	}, "bot.log", cfg.Logging.Level)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}

	logger.Info("Nova Discord Bot starting...",
		slog.String("version", cfg.Version),
		slog.String("log_level", cfg.Logging.Level),
	)

	buildCtx, buildCancel := context.WithTimeout(context.Background(), constants.AppTimeout.Build)
	runtime, err := app.BuildRuntime(buildCtx, cfg, logger)
	buildCancel()
	if err != nil {
		logger.Error("Failed to assemble application services", slog.Any("error", err))
		os.Exit(1)
	}

	if err := runtime.Run(); err != nil {
		logger.Error("Runtime exited with error", slog.Any("error", err))
		os.Exit(1)
	}
}
