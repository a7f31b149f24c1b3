// internal/handlers/home.go
package handlers

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/awidjaja/stokgate/internal/adapters/backend"
	"github.com/awidjaja/stokgate/internal/core/domain"
	"github.com/awidjaja/stokgate/internal/core/ports"
	"github.com/awidjaja/stokgate/internal/core/services"
)

// Tab names accepted by the home view.
const (
	TabItems    = "items"
	TabWarranty = "warranty"
	TabSold     = "sold"
)

// HomeHandler renders the tabbed item/warranty/sold tables and the row
// actions they offer. Each tab reads through its own memoized table query.
type HomeHandler struct {
	items      *services.TableQuery[domain.Item]
	warranties *services.TableQuery[domain.Warranty]
	sold       *services.TableQuery[domain.SoldRecord]
	backend    ports.InventoryAPI
	renderer   *Renderer
	pageSize   int
	logger     *slog.Logger
}

// NewHomeHandler creates a new home handler
func NewHomeHandler(
	items *services.TableQuery[domain.Item],
	warranties *services.TableQuery[domain.Warranty],
	sold *services.TableQuery[domain.SoldRecord],
	inventory ports.InventoryAPI,
	renderer *Renderer,
	pageSize int,
	logger *slog.Logger,
) *HomeHandler {
	return &HomeHandler{
		items:      items,
		warranties: warranties,
		sold:       sold,
		backend:    inventory,
		renderer:   renderer,
		pageSize:   pageSize,
		logger:     logger.With(slog.String("handler", "home")),
	}
}

type homePageData struct {
	Tab        string
	Flash      string
	Info       domain.PageInfo
	Items      []domain.Item
	Warranties []domain.Warranty
	Sold       []domain.SoldRecord
}

// Home handles GET /home?tab=&page=&search=
func (h *HomeHandler) Home(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	tab := r.URL.Query().Get("tab")
	switch tab {
	case TabItems, TabWarranty, TabSold:
	default:
		tab = TabItems
	}

	req := parsePageRequest(r, h.pageSize)
	data := homePageData{Tab: tab, Flash: popFlash(w, r)}

	var err error
	switch tab {
	case TabItems:
		var page services.Page[domain.Item]
		page, err = h.items.Load(ctx, req)
		data.Items, data.Info = page.Rows, page.Info
	case TabWarranty:
		var page services.Page[domain.Warranty]
		page, err = h.warranties.Load(ctx, req)
		data.Warranties, data.Info = page.Rows, page.Info
	case TabSold:
		var page services.Page[domain.SoldRecord]
		page, err = h.sold.Load(ctx, req)
		data.Sold, data.Info = page.Rows, page.Info
	}

	if err != nil {
		h.logger.ErrorContext(ctx, "failed to load table page",
			slog.String("tab", tab),
			slog.Int("page", req.Page),
			slog.String("error", err.Error()))
		data.Flash = "Could not load " + tab + " from the backend"
		data.Info = domain.PageInfo{Page: req.Page, Size: req.Size, Search: req.Search}
	}

	h.renderer.Render(w, http.StatusOK, "home", data)
}

// DeleteItem handles POST /items/delete with the RFID tag in the form.
func (h *HomeHandler) DeleteItem(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	tag := r.PostFormValue("tag")
	if tag == "" {
		setFlash(w, "Missing item tag")
		http.Redirect(w, r, "/home?tab=items", http.StatusSeeOther)
		return
	}

	if err := h.backend.DeleteItem(ctx, tag); err != nil {
		h.logger.ErrorContext(ctx, "failed to delete item",
			slog.String("rfid_tag", tag),
			slog.String("error", err.Error()))

		var statusErr *backend.StatusError
		if errors.As(err, &statusErr) && statusErr.Code == http.StatusNotFound {
			setFlash(w, "Item not found")
		} else {
			setFlash(w, "Delete failed")
		}
		http.Redirect(w, r, "/home?tab=items", http.StatusSeeOther)
		return
	}

	h.items.Invalidate(ctx)

	h.logger.InfoContext(ctx, "item deleted", slog.String("rfid_tag", tag))
	setFlash(w, "Item deleted")
	http.Redirect(w, r, "/home?tab=items", http.StatusSeeOther)
}

// EditSold handles PATCH /sold/edit. The body carries the record ID plus
// exactly one edited field.
func (h *HomeHandler) EditSold(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var patch domain.SoldRecordPatch
	if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
		respondError(w, h.logger, http.StatusBadRequest, "Invalid request body")
		return
	}

	if err := patch.Validate(); err != nil {
		respondError(w, h.logger, http.StatusBadRequest, err.Error())
		return
	}

	if err := h.backend.EditSoldRecord(ctx, patch); err != nil {
		h.logger.ErrorContext(ctx, "failed to edit sold record",
			slog.Int("id", patch.ID),
			slog.String("error", err.Error()))
		respondError(w, h.logger, http.StatusBadGateway, "Edit failed upstream")
		return
	}

	h.sold.Invalidate(ctx)

	respondJSON(w, h.logger, http.StatusOK, map[string]any{"id": patch.ID})
}

// parsePageRequest reads the shared pagination parameters. Values outside
// the valid range fall back to page one and the default size.
func parsePageRequest(r *http.Request, size int) domain.PageRequest {
	if size <= 0 {
		size = domain.DefaultPageSize
	}
	req := domain.PageRequest{
		Page:   1,
		Size:   size,
		Search: r.URL.Query().Get("search"),
	}

	if raw := r.URL.Query().Get("page"); raw != "" {
		if page, err := strconv.Atoi(raw); err == nil && page > 0 {
			req.Page = page
		}
	}

	return req
}
