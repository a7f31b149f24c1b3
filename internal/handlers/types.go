// internal/handlers/types.go
package handlers

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/shopspring/decimal"

	redis_a "github.com/awidjaja/stokgate/internal/adapters/redis_adapter"
	"github.com/awidjaja/stokgate/internal/core/domain"
	"github.com/awidjaja/stokgate/internal/core/ports"
)

// TypesHandler serves the item-type list and the registration form.
type TypesHandler struct {
	backend  ports.InventoryAPI
	cache    ports.QueryCache
	cacheTTL time.Duration
	renderer *Renderer
	logger   *slog.Logger
}

// NewTypesHandler creates a new types handler
func NewTypesHandler(inventory ports.InventoryAPI, cache ports.QueryCache,
	cacheTTL time.Duration, renderer *Renderer, logger *slog.Logger) *TypesHandler {
	return &TypesHandler{
		backend:  inventory,
		cache:    cache,
		cacheTTL: cacheTTL,
		renderer: renderer,
		logger:   logger.With(slog.String("handler", "types")),
	}
}

type typesPageData struct {
	Flash string
	Types []domain.ItemType
}

// Page handles GET /type
func (h *TypesHandler) Page(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	data := typesPageData{Flash: popFlash(w, r)}

	key := redis_a.BuildKey(redis_a.PrefixTypes, "all")
	err := h.cache.GetOrSet(ctx, key, &data.Types, func() (interface{}, error) {
		return h.backend.ItemTypes(ctx)
	}, h.cacheTTL)
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to load item types",
			slog.String("error", err.Error()))
		data.Flash = "Could not load item types from the backend"
	}

	h.renderer.Render(w, http.StatusOK, "types", data)
}

// Register handles POST /type
func (h *TypesHandler) Register(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	if err := r.ParseForm(); err != nil {
		setFlash(w, "Invalid form")
		http.Redirect(w, r, "/type", http.StatusSeeOther)
		return
	}

	price, err := decimal.NewFromString(r.PostFormValue("price"))
	if err != nil {
		setFlash(w, "Price must be a number")
		http.Redirect(w, r, "/type", http.StatusSeeOther)
		return
	}

	newType := domain.NewItemType{
		TypeName: r.PostFormValue("item_type"),
		Price:    price,
	}
	if err := newType.Validate(); err != nil {
		setFlash(w, "Type name and a positive price are required")
		http.Redirect(w, r, "/type", http.StatusSeeOther)
		return
	}

	if err := h.backend.RegisterItemType(ctx, newType); err != nil {
		h.logger.ErrorContext(ctx, "failed to register item type",
			slog.String("type_name", newType.TypeName),
			slog.String("error", err.Error()))
		setFlash(w, "Registering the type failed")
		http.Redirect(w, r, "/type", http.StatusSeeOther)
		return
	}

	if err := h.cache.DeletePattern(ctx, string(redis_a.PrefixTypes)+":*"); err != nil {
		h.logger.WarnContext(ctx, "failed to invalidate type cache",
			slog.String("error", err.Error()))
	}

	h.logger.InfoContext(ctx, "item type registered",
		slog.String("type_name", newType.TypeName),
		slog.String("price", newType.Price.String()))

	setFlash(w, "Type registered")
	http.Redirect(w, r, "/type", http.StatusSeeOther)
}
