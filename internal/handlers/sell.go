// internal/handlers/sell.go
package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/awidjaja/stokgate/internal/core/domain"
	"github.com/awidjaja/stokgate/internal/core/services"
)

// SellHandler serves the sell page: live availability lookup, the selection
// cart and the bulk submit.
type SellHandler struct {
	sell     *services.SellService
	renderer *Renderer
	logger   *slog.Logger
}

// NewSellHandler creates a new sell handler
func NewSellHandler(sell *services.SellService, renderer *Renderer, logger *slog.Logger) *SellHandler {
	return &SellHandler{
		sell:     sell,
		renderer: renderer,
		logger:   logger.With(slog.String("handler", "sell")),
	}
}

type sellPageData struct {
	Flash string
	Cart  []domain.AvailableItem
}

// Page handles GET /sell
func (h *SellHandler) Page(w http.ResponseWriter, r *http.Request) {
	h.renderer.Render(w, http.StatusOK, "sell", sellPageData{
		Flash: popFlash(w, r),
		Cart:  h.sell.Cart().Items(),
	})
}

// Search handles GET /sell/search?q=. Bursts of keystrokes collapse into a
// single upstream lookup; superseded requests return 204 so the page keeps
// the newer response.
func (h *SellHandler) Search(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	term := r.URL.Query().Get("q")

	items, err := h.sell.Search(ctx, term)
	if err != nil {
		if errors.Is(err, services.ErrSuperseded) {
			w.WriteHeader(http.StatusNoContent)
			return
		}
		h.logger.ErrorContext(ctx, "availability lookup failed",
			slog.String("term", term),
			slog.String("error", err.Error()))
		respondError(w, h.logger, http.StatusBadGateway, "Lookup failed upstream")
		return
	}

	respondJSON(w, h.logger, http.StatusOK, items)
}

// AddToCart handles POST /sell/cart/add with the serial number in the form.
// The item must still be available; re-adding a serial keeps one entry.
func (h *SellHandler) AddToCart(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	sn := r.PostFormValue("sn")
	if sn == "" {
		setFlash(w, "Missing serial number")
		http.Redirect(w, r, "/sell", http.StatusSeeOther)
		return
	}

	item, err := h.sell.Available(ctx, sn)
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to resolve item for cart",
			slog.String("serial_number", sn),
			slog.String("error", err.Error()))
		setFlash(w, "Item is not available")
		http.Redirect(w, r, "/sell", http.StatusSeeOther)
		return
	}

	h.sell.Cart().Add(item)
	http.Redirect(w, r, "/sell", http.StatusSeeOther)
}

// RemoveFromCart handles POST /sell/cart/remove.
func (h *SellHandler) RemoveFromCart(w http.ResponseWriter, r *http.Request) {
	if sn := r.PostFormValue("sn"); sn != "" {
		h.sell.Cart().Remove(sn)
	}
	http.Redirect(w, r, "/sell", http.StatusSeeOther)
}

// Submit handles POST /sell/submit. Validation failures never reach the
// backend; the form state survives so the operator can correct it.
func (h *SellHandler) Submit(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	invoice := r.PostFormValue("invoice")
	shop := r.PostFormValue("ol_shop")

	if err := h.sell.Submit(ctx, invoice, shop); err != nil {
		if errors.Is(err, domain.ErrEmptySelection) {
			setFlash(w, "Select at least one item first")
		} else {
			h.logger.ErrorContext(ctx, "bulk sale failed",
				slog.String("invoice", invoice),
				slog.String("error", err.Error()))
			setFlash(w, "Sale was not accepted")
		}
		http.Redirect(w, r, "/sell", http.StatusSeeOther)
		return
	}

	h.logger.InfoContext(ctx, "bulk sale submitted",
		slog.String("invoice", invoice),
		slog.String("ol_shop", shop))

	setFlash(w, "Sale recorded")
	http.Redirect(w, r, "/sell", http.StatusSeeOther)
}
