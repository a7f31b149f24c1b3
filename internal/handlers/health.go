// internal/handlers/health.go
package handlers

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"runtime"
	"time"

	"github.com/awidjaja/stokgate/internal/adapters/backend"
	"github.com/awidjaja/stokgate/internal/core/ports"
	"github.com/awidjaja/stokgate/internal/pkg/config"
)

// HealthHandler reports gateway liveness plus the state of its two
// dependencies: the query cache and the upstream inventory API.
type HealthHandler struct {
	auth      ports.AuthAPI
	cache     ports.QueryCache
	config    *config.Config
	logger    *slog.Logger
	startTime time.Time
}

// NewHealthHandler creates a new health handler
func NewHealthHandler(auth ports.AuthAPI, cache ports.QueryCache,
	cfg *config.Config, logger *slog.Logger) *HealthHandler {
	return &HealthHandler{
		auth:      auth,
		cache:     cache,
		config:    cfg,
		logger:    logger.With(slog.String("handler", "health")),
		startTime: time.Now(),
	}
}

// HealthStatus represents the health status of the gateway
type HealthStatus struct {
	Status      string                 `json:"status"`
	Version     string                 `json:"version"`
	Environment string                 `json:"environment"`
	Uptime      string                 `json:"uptime"`
	Timestamp   time.Time              `json:"timestamp"`
	Services    map[string]ServiceInfo `json:"services"`
	System      SystemInfo             `json:"system"`
}

// ServiceInfo represents the status of a dependency
type ServiceInfo struct {
	Status       string `json:"status"`
	Message      string `json:"message,omitempty"`
	ResponseTime string `json:"response_time,omitempty"`
}

// SystemInfo represents system-level information
type SystemInfo struct {
	GoVersion     string `json:"go_version"`
	NumGoroutines int    `json:"num_goroutines"`
	NumCPU        int    `json:"num_cpu"`
	MemoryAllocMB uint64 `json:"memory_alloc_mb"`
	NumGC         uint32 `json:"num_gc"`
}

// Health handles the /health endpoint
func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	health := HealthStatus{
		Status:      "healthy",
		Version:     h.config.App.Version,
		Environment: h.config.App.Environment,
		Uptime:      time.Since(h.startTime).Round(time.Second).String(),
		Timestamp:   time.Now(),
		Services:    make(map[string]ServiceInfo),
		System:      h.getSystemInfo(),
	}

	cacheStatus := h.checkCache(ctx)
	health.Services["cache"] = cacheStatus
	if cacheStatus.Status != "healthy" {
		health.Status = "degraded"
	}

	backendStatus := h.checkBackend(ctx)
	health.Services["backend"] = backendStatus
	if backendStatus.Status != "healthy" {
		health.Status = "degraded"
	}

	statusCode := http.StatusOK
	if health.Status == "degraded" {
		statusCode = http.StatusServiceUnavailable
	}

	w.Header().Set("Cache-Control", "no-cache, no-store, must-revalidate")
	respondJSON(w, h.logger, statusCode, health)
}

// Readiness handles the /ready endpoint. The gateway is ready once the
// cache answers; the upstream session is established by the operator later.
func (h *HealthHandler) Readiness(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 3*time.Second)
	defer cancel()

	ready := true
	details := make(map[string]string)

	if err := h.cache.Ping(ctx); err != nil {
		ready = false
		details["cache"] = "not ready"
	} else {
		details["cache"] = "ready"
	}

	statusCode := http.StatusOK
	if !ready {
		statusCode = http.StatusServiceUnavailable
	}

	w.Header().Set("Cache-Control", "no-cache, no-store, must-revalidate")
	respondJSON(w, h.logger, statusCode, map[string]interface{}{
		"ready":   ready,
		"details": details,
	})
}

// checkCache pings the query cache.
func (h *HealthHandler) checkCache(ctx context.Context) ServiceInfo {
	start := time.Now()
	info := ServiceInfo{Status: "healthy"}

	if err := h.cache.Ping(ctx); err != nil {
		info.Status = "unhealthy"
		info.Message = err.Error()
		h.logger.ErrorContext(ctx, "cache health check failed",
			slog.String("error", err.Error()))
		return info
	}

	info.ResponseTime = time.Since(start).String()
	return info
}

// checkBackend probes the upstream auth-check endpoint. A completed
// response, authenticated or not, means the backend is reachable; only a
// transport failure marks it unhealthy.
func (h *HealthHandler) checkBackend(ctx context.Context) ServiceInfo {
	start := time.Now()
	info := ServiceInfo{Status: "healthy"}

	if err := h.auth.CheckSession(ctx); err != nil {
		var statusErr *backend.StatusError
		if !errors.As(err, &statusErr) {
			info.Status = "unhealthy"
			info.Message = err.Error()
			h.logger.ErrorContext(ctx, "backend health check failed",
				slog.String("error", err.Error()))
			return info
		}
		info.Message = "reachable, no active session"
	}

	info.ResponseTime = time.Since(start).String()
	return info
}

// getSystemInfo returns system-level information
func (h *HealthHandler) getSystemInfo() SystemInfo {
	var memStats runtime.MemStats
	runtime.ReadMemStats(&memStats)

	return SystemInfo{
		GoVersion:     runtime.Version(),
		NumGoroutines: runtime.NumGoroutine(),
		NumCPU:        runtime.NumCPU(),
		MemoryAllocMB: memStats.Alloc / 1024 / 1024,
		NumGC:         memStats.NumGC,
	}
}
