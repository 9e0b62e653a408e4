package main

import (
	"log/slog"
	"os"

	"github.com/joho/godotenv"

	"github.com/agenthands/graphparity/internal/config"
	"github.com/agenthands/graphparity/internal/core"
	"github.com/agenthands/graphparity/internal/logger"
	"github.com/agenthands/graphparity/internal/server"
)

func main() {
	envErr := godotenv.Load()

	cfg := config.Default()
	if path := os.Getenv("CONFIG_PATH"); path != "" {
		var err error
		if cfg, err = config.Load(path); err != nil {
			slog.Error("failed to load configuration", "err", err)
			os.Exit(1)
		}
	}
	if err := cfg.ApplyEnv(); err != nil {
		slog.Error("invalid environment", "err", err)
		os.Exit(1)
	}

	level, err := logger.ParseLevel(cfg.LogLevel)
	if err != nil {
		slog.Error("invalid log level", "err", err)
		os.Exit(1)
	}
	logger.Init(level)
	if envErr != nil {
		slog.Debug("no .env file found, using defaults")
	}

	srv := server.NewServer(core.NewChecker(cfg), cfg)
	r := srv.SetupRouter()

	slog.Info("starting server", "port", cfg.Server.Port, "data_dir", cfg.Server.DataDir, "graph", cfg.Neo4j.URI != "")
	if err := r.Run(":" + cfg.Server.Port); err != nil {
		slog.Error("server stopped", "err", err)
		os.Exit(1)
	}
}
