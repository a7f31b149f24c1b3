// cmd/exporter/main.go
//
// Headless export tool. Logs into the inventory backend with credentials
// taken from the environment, pulls the full item listing, and writes it
// to a local XLSX or JSON file. Useful for cron-driven backups where the
// browser UI is not available.
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/awidjaja/stokgate/internal/adapters/backend"
	"github.com/awidjaja/stokgate/internal/core/domain"
	"github.com/awidjaja/stokgate/internal/core/services"
)

func main() {
	var (
		backendURL = flag.String("backend", envOr("STOKGATE_BACKEND_URL", "http://localhost:5000"), "backend base URL")
		format     = flag.String("format", "xlsx", "output format: xlsx or json")
		output     = flag.String("output", "", "output file path (default items_export_<timestamp>.<format>)")
		search     = flag.String("search", "", "optional serial number filter")
		timeout    = flag.Duration("timeout", 2*time.Minute, "overall run timeout")
		verbose    = flag.Bool("verbose", false, "enable debug logging")
	)
	flag.Parse()

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	if err := run(logger, *backendURL, *format, *output, *search, *timeout); err != nil {
		logger.Error("export failed", slog.String("error", err.Error()))
		os.Exit(1)
	}
}

func run(logger *slog.Logger, backendURL, format, output, search string, timeout time.Duration) error {
	if format != "xlsx" && format != "json" {
		return fmt.Errorf("unsupported format %q, want xlsx or json", format)
	}

	email := os.Getenv("STOKGATE_EMAIL")
	password := os.Getenv("STOKGATE_PASSWORD")
	if email == "" || password == "" {
		return fmt.Errorf("STOKGATE_EMAIL and STOKGATE_PASSWORD must be set")
	}

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	client, err := backend.NewClient(backend.Config{
		BaseURL: backendURL,
		Timeout: 30 * time.Second,
	}, logger)
	if err != nil {
		return fmt.Errorf("creating backend client: %w", err)
	}

	logger.Info("logging in", slog.String("backend", backendURL))
	if err := client.Login(ctx, domain.Credentials{Email: email, Password: password}); err != nil {
		return fmt.Errorf("login: %w", err)
	}
	defer func() {
		if err := client.Logout(context.Background()); err != nil {
			logger.Warn("logout failed", slog.String("error", err.Error()))
		}
	}()

	export := services.NewExportService(client, logger)

	items, err := export.FetchAll(ctx, search)
	if err != nil {
		return fmt.Errorf("fetching items: %w", err)
	}
	logger.Info("items fetched", slog.Int("count", len(items)))

	var data []byte
	switch format {
	case "xlsx":
		data, err = export.BuildXLSX(items)
	case "json":
		data, err = export.BuildJSON(items, search)
	}
	if err != nil {
		return fmt.Errorf("building %s export: %w", format, err)
	}

	if output == "" {
		output = fmt.Sprintf("items_export_%s.%s", time.Now().Format("20060102_150405"), format)
	}

	if err := os.WriteFile(output, data, 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", output, err)
	}

	logger.Info("export written",
		slog.String("path", output),
		slog.Int("bytes", len(data)),
	)
	return nil
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
