// internal/handlers/export.go
package handlers

import (
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/awidjaja/stokgate/internal/core/services"
)

// ExportHandler streams the full item table as an XLSX or JSON download.
// Exports always bypass the query cache: a snapshot must reflect the
// backend, not the memoized pages.
type ExportHandler struct {
	export *services.ExportService
	logger *slog.Logger
}

// NewExportHandler creates a new export handler
func NewExportHandler(export *services.ExportService, logger *slog.Logger) *ExportHandler {
	return &ExportHandler{
		export: export,
		logger: logger.With(slog.String("handler", "export")),
	}
}

// ExportExcel handles GET /export/excel
func (h *ExportHandler) ExportExcel(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	search := r.URL.Query().Get("search")

	items, err := h.export.FetchAll(ctx, search)
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to fetch items for export",
			slog.String("error", err.Error()))
		respondError(w, h.logger, http.StatusBadGateway, "Failed to retrieve data")
		return
	}

	data, err := h.export.BuildXLSX(items)
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to build XLSX export",
			slog.String("error", err.Error()))
		respondError(w, h.logger, http.StatusInternalServerError, "Failed to generate Excel file")
		return
	}

	filename := fmt.Sprintf("items_export_%s.xlsx", time.Now().Format("20060102_150405"))
	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, filename))
	w.Header().Set("Content-Length", strconv.Itoa(len(data)))
	w.Header().Set("Cache-Control", "no-cache, no-store, must-revalidate")

	if _, err := w.Write(data); err != nil {
		h.logger.ErrorContext(ctx, "failed to write Excel response",
			slog.String("error", err.Error()))
		return
	}

	h.logger.InfoContext(ctx, "Excel export completed",
		slog.Int("total_rows", len(items)),
		slog.String("filename", filename))
}

// ExportJSON handles GET /export/json
func (h *ExportHandler) ExportJSON(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	search := r.URL.Query().Get("search")

	items, err := h.export.FetchAll(ctx, search)
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to fetch items for export",
			slog.String("error", err.Error()))
		respondError(w, h.logger, http.StatusBadGateway, "Failed to retrieve data")
		return
	}

	data, err := h.export.BuildJSON(items, search)
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to build JSON export",
			slog.String("error", err.Error()))
		respondError(w, h.logger, http.StatusInternalServerError, "Failed to generate JSON")
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Content-Length", strconv.Itoa(len(data)))
	w.Header().Set("Cache-Control", "no-cache, no-store, must-revalidate")

	if _, err := w.Write(data); err != nil {
		h.logger.ErrorContext(ctx, "failed to write JSON response",
			slog.String("error", err.Error()))
		return
	}

	h.logger.InfoContext(ctx, "JSON export completed",
		slog.Int("total_rows", len(items)))
}
