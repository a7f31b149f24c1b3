// internal/handlers/invoices.go
package handlers

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/awidjaja/stokgate/internal/core/domain"
	"github.com/awidjaja/stokgate/internal/core/ports"
	"github.com/awidjaja/stokgate/internal/core/services"
)

// InvoicesHandler serves the paginated invoice list with inline edit and
// delete.
type InvoicesHandler struct {
	invoices *services.TableQuery[domain.Invoice]
	backend  ports.InventoryAPI
	renderer *Renderer
	pageSize int
	logger   *slog.Logger
}

// NewInvoicesHandler creates a new invoices handler
func NewInvoicesHandler(invoices *services.TableQuery[domain.Invoice],
	inventory ports.InventoryAPI, renderer *Renderer, pageSize int,
	logger *slog.Logger) *InvoicesHandler {
	return &InvoicesHandler{
		invoices: invoices,
		backend:  inventory,
		renderer: renderer,
		pageSize: pageSize,
		logger:   logger.With(slog.String("handler", "invoices")),
	}
}

type invoicesPageData struct {
	Tab      string
	Flash    string
	Info     domain.PageInfo
	Invoices []domain.Invoice
}

// Page handles GET /invoices?page=&search=
func (h *InvoicesHandler) Page(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	req := parsePageRequest(r, h.pageSize)
	data := invoicesPageData{Flash: popFlash(w, r)}

	page, err := h.invoices.Load(ctx, req)
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to load invoices",
			slog.Int("page", req.Page),
			slog.String("error", err.Error()))
		data.Flash = "Could not load invoices from the backend"
		data.Info = domain.PageInfo{Page: req.Page, Size: req.Size, Search: req.Search}
	} else {
		data.Invoices, data.Info = page.Rows, page.Info
	}

	h.renderer.Render(w, http.StatusOK, "invoices", data)
}

// Edit handles POST /invoices/edit
func (h *InvoicesHandler) Edit(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, err := strconv.Atoi(r.PostFormValue("id"))
	if err != nil {
		setFlash(w, "Invalid invoice ID")
		http.Redirect(w, r, "/invoices", http.StatusSeeOther)
		return
	}

	edit := domain.InvoiceEdit{
		Invoice:    r.PostFormValue("invoice"),
		OnlineShop: r.PostFormValue("ol_shop"),
	}
	if err := edit.Validate(); err != nil {
		setFlash(w, "Nothing to change")
		http.Redirect(w, r, "/invoices", http.StatusSeeOther)
		return
	}

	if err := h.backend.EditInvoice(ctx, id, edit); err != nil {
		h.logger.ErrorContext(ctx, "failed to edit invoice",
			slog.Int("id", id),
			slog.String("error", err.Error()))
		setFlash(w, "Saving the invoice failed")
		http.Redirect(w, r, "/invoices", http.StatusSeeOther)
		return
	}

	h.invoices.Invalidate(ctx)

	h.logger.InfoContext(ctx, "invoice edited", slog.Int("id", id))
	setFlash(w, "Invoice saved")
	http.Redirect(w, r, "/invoices", http.StatusSeeOther)
}

// Delete handles POST /invoices/delete
func (h *InvoicesHandler) Delete(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, err := strconv.Atoi(r.PostFormValue("id"))
	if err != nil {
		setFlash(w, "Invalid invoice ID")
		http.Redirect(w, r, "/invoices", http.StatusSeeOther)
		return
	}

	if err := h.backend.DeleteInvoice(ctx, id); err != nil {
		h.logger.ErrorContext(ctx, "failed to delete invoice",
			slog.Int("id", id),
			slog.String("error", err.Error()))
		setFlash(w, "Deleting the invoice failed")
		http.Redirect(w, r, "/invoices", http.StatusSeeOther)
		return
	}

	h.invoices.Invalidate(ctx)

	h.logger.InfoContext(ctx, "invoice deleted", slog.Int("id", id))
	setFlash(w, "Invoice deleted")
	http.Redirect(w, r, "/invoices", http.StatusSeeOther)
}
