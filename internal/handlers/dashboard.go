// internal/handlers/dashboard.go
package handlers

import (
	"log/slog"
	"net/http"
	"time"

	redis_a "github.com/awidjaja/stokgate/internal/adapters/redis_adapter"
	"github.com/awidjaja/stokgate/internal/core/domain"
	"github.com/awidjaja/stokgate/internal/core/ports"
)

// DashboardHandler renders the stock overview: items by sale status and by
// registered type. Both aggregates are memoized under the dash prefix.
type DashboardHandler struct {
	backend  ports.InventoryAPI
	cache    ports.QueryCache
	cacheTTL time.Duration
	renderer *Renderer
	logger   *slog.Logger
}

// NewDashboardHandler creates a new dashboard handler
func NewDashboardHandler(inventory ports.InventoryAPI, cache ports.QueryCache,
	cacheTTL time.Duration, renderer *Renderer, logger *slog.Logger) *DashboardHandler {
	return &DashboardHandler{
		backend:  inventory,
		cache:    cache,
		cacheTTL: cacheTTL,
		renderer: renderer,
		logger:   logger.With(slog.String("handler", "dashboard")),
	}
}

type dashboardPageData struct {
	Flash      string
	Status     domain.StatusCount
	TypeCounts map[string]int
}

// Page handles GET /dashboard
func (h *DashboardHandler) Page(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	data := dashboardPageData{Flash: popFlash(w, r)}

	statusKey := redis_a.BuildKey(redis_a.PrefixDashboard, "status")
	if err := h.cache.GetOrSet(ctx, statusKey, &data.Status, func() (interface{}, error) {
		return h.backend.StatusCounts(ctx)
	}, h.cacheTTL); err != nil {
		h.logger.ErrorContext(ctx, "failed to load status counts",
			slog.String("error", err.Error()))
		data.Flash = "Could not load dashboard data from the backend"
	}

	typesKey := redis_a.BuildKey(redis_a.PrefixDashboard, "types")
	if err := h.cache.GetOrSet(ctx, typesKey, &data.TypeCounts, func() (interface{}, error) {
		return h.backend.TypeCounts(ctx)
	}, h.cacheTTL); err != nil {
		h.logger.ErrorContext(ctx, "failed to load type counts",
			slog.String("error", err.Error()))
		data.Flash = "Could not load dashboard data from the backend"
	}

	h.renderer.Render(w, http.StatusOK, "dashboard", data)
}
