// cmd/gateway/main.go
package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/redis/go-redis/v9"

	"github.com/awidjaja/stokgate/internal/adapters/backend"
	redis_a "github.com/awidjaja/stokgate/internal/adapters/redis_adapter"
	"github.com/awidjaja/stokgate/internal/core/domain"
	"github.com/awidjaja/stokgate/internal/core/ports"
	"github.com/awidjaja/stokgate/internal/core/services"
	"github.com/awidjaja/stokgate/internal/handlers"
	"github.com/awidjaja/stokgate/internal/handlers/middleware"
	"github.com/awidjaja/stokgate/internal/pkg/config"
	"github.com/awidjaja/stokgate/internal/pkg/logger"
	"github.com/awidjaja/stokgate/web"
)

// Build information injected at compile time
var (
	Version   = "dev"
	BuildTime = "unknown"
)

func main() {
	log := logger.SetupLogger("debug", "json")
	slogger := log.Logger

	slogger.Info("starting stokgate admin gateway",
		slog.String("version", Version),
		slog.String("build_time", BuildTime),
	)

	cfg, err := config.Load(slogger)
	if err != nil {
		slogger.Error("failed to load configuration", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// Reconfigure logger with loaded settings
	log = logger.SetupLogger(cfg.App.LogLevel, cfg.App.LogFormat)
	slogger = log.Logger
	slogger.Info("configuration loaded",
		slog.String("environment", cfg.App.Environment),
		slog.String("backend", cfg.Backend.BaseURL),
	)

	ctx := context.Background()

	deps, err := initializeDependencies(ctx, cfg, slogger)
	if err != nil {
		slogger.Error("failed to initialize dependencies", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer deps.cleanup()

	server := setupHTTPServer(cfg, deps, log)

	serverErrors := make(chan error, 1)
	go func() {
		slogger.Info("starting HTTP server",
			slog.String("address", cfg.GetServerAddress()))
		serverErrors <- server.ListenAndServe()
	}()

	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM, syscall.SIGQUIT)

	select {
	case err := <-serverErrors:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			slogger.Error("server error", slog.String("error", err.Error()))
		}
	case sig := <-shutdown:
		slogger.Info("shutdown signal received", slog.String("signal", sig.String()))

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), cfg.Server.GracefulTimeout)
		defer shutdownCancel()

		if err := server.Shutdown(shutdownCtx); err != nil {
			slogger.Error("failed to gracefully shutdown server", slog.String("error", err.Error()))
			server.Close()
		}

		slogger.Info("server shutdown complete")
	}
}

// dependencies holds everything the gateway wires together
type dependencies struct {
	redisClient *redis.Client
	cache       ports.QueryCache
	backend     *backend.Client

	authHandler      *handlers.AuthHandler
	homeHandler      *handlers.HomeHandler
	typesHandler     *handlers.TypesHandler
	sellHandler      *handlers.SellHandler
	invoicesHandler  *handlers.InvoicesHandler
	dashboardHandler *handlers.DashboardHandler
	exportHandler    *handlers.ExportHandler
	healthHandler    *handlers.HealthHandler
}

func (d *dependencies) cleanup() {
	if d.redisClient != nil {
		d.redisClient.Close()
	}
}

func initializeDependencies(ctx context.Context, cfg *config.Config, slogger *slog.Logger) (*dependencies, error) {
	deps := &dependencies{}

	slogger.Info("connecting to Redis",
		slog.String("host", cfg.Redis.Host),
		slog.String("port", cfg.Redis.Port),
	)

	redisClient := redis.NewClient(&redis.Options{
		Addr:            cfg.GetRedisAddress(),
		Password:        cfg.Redis.Password,
		DB:              cfg.Redis.DB,
		MaxRetries:      cfg.Redis.MaxRetries,
		MinRetryBackoff: cfg.Redis.MinRetryBackoff,
		MaxRetryBackoff: cfg.Redis.MaxRetryBackoff,
		DialTimeout:     cfg.Redis.DialTimeout,
		ReadTimeout:     cfg.Redis.ReadTimeout,
		WriteTimeout:    cfg.Redis.WriteTimeout,
		PoolSize:        cfg.Redis.PoolSize,
		MinIdleConns:    cfg.Redis.MinIdleConns,
		PoolTimeout:     cfg.Redis.PoolTimeout,
	})

	if err := redisClient.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}
	deps.redisClient = redisClient
	deps.cache = redis_a.NewCache(redisClient, cfg.Redis.TTL, slogger)

	slogger.Info("creating backend client",
		slog.String("base_url", cfg.Backend.BaseURL))

	client, err := backend.NewClient(backend.Config{
		BaseURL: cfg.Backend.BaseURL,
		Timeout: cfg.Backend.Timeout,
	}, slogger)
	if err != nil {
		return nil, fmt.Errorf("failed to create backend client: %w", err)
	}
	deps.backend = client

	renderer, err := handlers.NewRenderer(slogger)
	if err != nil {
		return nil, fmt.Errorf("failed to build renderer: %w", err)
	}

	// One memoized table query per data shape.
	items := services.NewTableQuery("items", func(ctx context.Context, req domain.PageRequest) ([]domain.Item, int, error) {
		return client.Items(ctx, req)
	}, deps.cache, cfg.UI.CacheTTL, slogger)
	warranties := services.NewTableQuery("warranty", func(ctx context.Context, req domain.PageRequest) ([]domain.Warranty, int, error) {
		return client.Warranties(ctx, req)
	}, deps.cache, cfg.UI.CacheTTL, slogger)
	sold := services.NewTableQuery("sold", func(ctx context.Context, req domain.PageRequest) ([]domain.SoldRecord, int, error) {
		return client.SoldRecords(ctx, req)
	}, deps.cache, cfg.UI.CacheTTL, slogger)
	invoices := services.NewTableQuery("invoices", func(ctx context.Context, req domain.PageRequest) ([]domain.Invoice, int, error) {
		return client.Invoices(ctx, req)
	}, deps.cache, cfg.UI.CacheTTL, slogger)

	sellService := services.NewSellService(client, deps.cache, cfg.UI.SearchDebounce, slogger)
	exportService := services.NewExportService(client, slogger)

	deps.authHandler = handlers.NewAuthHandler(client, deps.cache, renderer, slogger)
	deps.homeHandler = handlers.NewHomeHandler(items, warranties, sold, client, renderer, cfg.UI.PageSize, slogger)
	deps.typesHandler = handlers.NewTypesHandler(client, deps.cache, cfg.UI.CacheTTL, renderer, slogger)
	deps.sellHandler = handlers.NewSellHandler(sellService, renderer, slogger)
	deps.invoicesHandler = handlers.NewInvoicesHandler(invoices, client, renderer, cfg.UI.PageSize, slogger)
	deps.dashboardHandler = handlers.NewDashboardHandler(client, deps.cache, cfg.UI.CacheTTL, renderer, slogger)
	deps.exportHandler = handlers.NewExportHandler(exportService, slogger)
	deps.healthHandler = handlers.NewHealthHandler(client, deps.cache, cfg, slogger)

	slogger.Info("all dependencies initialized successfully")
	return deps, nil
}

func setupHTTPServer(cfg *config.Config, deps *dependencies, log *logger.Logger) *http.Server {
	mux := http.NewServeMux()

	// Apply middleware in reverse order (innermost first)
	var handler http.Handler = mux

	handler = middleware.Timeout(cfg.Server.WriteTimeout)(handler)

	if cfg.App.Environment != "test" {
		handler = middleware.RequestID(handler)
		handler = middleware.Logger(log)(handler)
		handler = middleware.Recovery(log.Logger)(handler)
	}

	if cfg.Security.RateLimitRequests > 0 {
		handler = middleware.RateLimit(cfg.Security.RateLimitRequests, cfg.Security.RateLimitDuration)(handler)
	}

	if cfg.Security.SecureHeaders {
		handler = middleware.SecureHeaders(handler)
	}

	handler = middleware.Compression(handler)

	registerRoutes(mux, deps, log.Logger)

	return &http.Server{
		Addr:           cfg.GetServerAddress(),
		Handler:        handler,
		ReadTimeout:    cfg.Server.ReadTimeout,
		WriteTimeout:   cfg.Server.WriteTimeout,
		IdleTimeout:    cfg.Server.IdleTimeout,
		MaxHeaderBytes: cfg.Server.MaxHeaderBytes,
		ErrorLog:       slog.NewLogLogger(log.Handler(), slog.LevelError),
	}
}

func registerRoutes(mux *http.ServeMux, deps *dependencies, slogger *slog.Logger) {
	guard := middleware.AuthGuard(deps.backend, slogger)
	protected := func(h http.HandlerFunc) http.Handler {
		return guard(h)
	}

	// Session
	mux.HandleFunc("GET /{$}", deps.authHandler.LoginPage)
	mux.HandleFunc("POST /login", deps.authHandler.Login)
	mux.HandleFunc("POST /logout", deps.authHandler.Logout)
	mux.HandleFunc("POST /logout-all", deps.authHandler.LogoutAll)

	// Tables
	mux.Handle("GET /home", protected(deps.homeHandler.Home))
	mux.Handle("POST /items/delete", protected(deps.homeHandler.DeleteItem))
	mux.Handle("PATCH /sold/edit", protected(deps.homeHandler.EditSold))

	// Types
	mux.Handle("GET /type", protected(deps.typesHandler.Page))
	mux.Handle("POST /type", protected(deps.typesHandler.Register))

	// Sell flow
	mux.Handle("GET /sell", protected(deps.sellHandler.Page))
	mux.Handle("GET /sell/search", protected(deps.sellHandler.Search))
	mux.Handle("POST /sell/cart/add", protected(deps.sellHandler.AddToCart))
	mux.Handle("POST /sell/cart/remove", protected(deps.sellHandler.RemoveFromCart))
	mux.Handle("POST /sell/submit", protected(deps.sellHandler.Submit))

	// Invoices
	mux.Handle("GET /invoices", protected(deps.invoicesHandler.Page))
	mux.Handle("POST /invoices/edit", protected(deps.invoicesHandler.Edit))
	mux.Handle("POST /invoices/delete", protected(deps.invoicesHandler.Delete))

	// Dashboard and export
	mux.Handle("GET /dashboard", protected(deps.dashboardHandler.Page))
	mux.Handle("GET /export/excel", protected(deps.exportHandler.ExportExcel))
	mux.Handle("GET /export/json", protected(deps.exportHandler.ExportJSON))

	// Operational endpoints
	mux.HandleFunc("GET /health", deps.healthHandler.Health)
	mux.HandleFunc("GET /ready", deps.healthHandler.Readiness)

	// Embedded assets
	mux.Handle("GET /static/", http.FileServerFS(web.Static))
}
