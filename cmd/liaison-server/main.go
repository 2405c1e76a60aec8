package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"liaison/internal/config"
	"liaison/internal/letter"
	"liaison/internal/logging"
	"liaison/internal/registry"
	"liaison/internal/roster"
	"liaison/internal/web"
)

func main() {
	// Load .env file if it exists (Overload overwrites existing env vars)
	if err := godotenv.Overload(); err != nil {
		slog.Info("no .env file found, using environment variables")
	} else {
		slog.Info("loaded .env file (overwriting existing env vars)")
	}

	// Load and validate configuration
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load configuration", "error", err)
		os.Exit(1)
	}

	// Setup structured logging based on config
	logging.Setup(cfg.Logging.Level, cfg.Logging.Format)

	slog.Info("configuration loaded",
		"port", cfg.Server.Port,
		"roster_path", cfg.Roster.Path,
		"registry_path", cfg.Registry.Path,
		"rate_limit_enabled", cfg.Rate.Enabled,
	)

	// Facility directory: built-in unless a JSON override is configured
	hospitals := letter.DefaultHospitals
	if cfg.Letter.HospitalsFile != "" {
		hospitals, err = letter.LoadHospitals(cfg.Letter.HospitalsFile)
		if err != nil {
			slog.Error("failed to load hospitals file", "path", cfg.Letter.HospitalsFile, "error", err)
			os.Exit(1)
		}
	}
	slog.Info("hospital directory ready", "facilities", len(hospitals))

	reg := registry.NewStore(cfg.Registry.Path)
	renderer := letter.TextRenderer{Company: letter.Company{
		Name:    cfg.Letter.CompanyName,
		Address: cfg.Letter.CompanyAddress,
		Phone:   cfg.Letter.CompanyPhone,
		Fax:     cfg.Letter.CompanyFax,
	}}
	letters := letter.NewService(hospitals, cfg.Letter.DefaultCareType, renderer, reg)

	// The reload handler reuses the same loader as startup
	loadRoster := func() ([]roster.Record, error) {
		return roster.LoadFile(cfg.Roster.Path, cfg.Roster.DelimiterRune(), cfg.Roster.Encoding)
	}

	records, err := loadRoster()
	if err != nil {
		// Manual entry on the letter form still works, so start anyway
		slog.Error("failed to load roster, starting with an empty index",
			"path", cfg.Roster.Path, "error", err)
		records = nil
	} else {
		slog.Info("roster loaded", "path", cfg.Roster.Path, "records", len(records))
	}

	server := web.NewServer(letters, roster.NewIndex(records), loadRoster, cfg)

	// Graceful shutdown
	go func() {
		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
		<-sigCh

		slog.Info("shutting down...")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
		defer cancel()

		if err := server.Shutdown(shutdownCtx); err != nil {
			slog.Error("shutdown error", "error", err)
		}
	}()

	// Start server (uses addr from config internally)
	slog.Info("server starting", "addr", cfg.Server.Addr())
	if err := server.Start(); err != nil {
		slog.Info("server stopped", "error", err)
	}
}
