// internal/core/services/export.go
package services

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strconv"
	"time"

	"github.com/tealeg/xlsx/v3"

	"github.com/awidjaja/stokgate/internal/core/domain"
	"github.com/awidjaja/stokgate/internal/core/ports"
)

// exportPageSize is the fetch size for export pagination, larger than the
// table views since nothing renders in between.
const exportPageSize = 100

// ExportMetadata describes one completed export.
type ExportMetadata struct {
	ExportDate time.Time `json:"export_date"`
	TotalItems int       `json:"total_items"`
	Search     string    `json:"search,omitempty"`
}

// JSONExport is the JSON export payload.
type JSONExport struct {
	Items    []domain.Item  `json:"items"`
	Metadata ExportMetadata `json:"metadata"`
}

// ExportService materializes the full item table as a file, walking the
// paginated backend until every record is in hand.
type ExportService struct {
	backend ports.InventoryAPI
	logger  *slog.Logger
}

// NewExportService creates an export service.
func NewExportService(backend ports.InventoryAPI, logger *slog.Logger) *ExportService {
	return &ExportService{
		backend: backend,
		logger:  logger.With(slog.String("service", "export")),
	}
}

// FetchAll pages through the item table until the reported total is
// reached. search narrows the export the same way it narrows the table.
func (s *ExportService) FetchAll(ctx context.Context, search string) ([]domain.Item, error) {
	var all []domain.Item

	for page := 1; ; page++ {
		req := domain.PageRequest{Page: page, Size: exportPageSize, Search: search}
		items, total, err := s.backend.Items(ctx, req)
		if err != nil {
			return nil, fmt.Errorf("fetching export page %d: %w", page, err)
		}

		all = append(all, items...)
		if len(all) >= total || len(items) == 0 {
			break
		}
	}

	s.logger.InfoContext(ctx, "fetched items for export",
		slog.Int("count", len(all)),
		slog.String("search", search))

	return all, nil
}

// BuildXLSX renders the items as a single-sheet workbook.
func (s *ExportService) BuildXLSX(items []domain.Item) ([]byte, error) {
	file := xlsx.NewFile()

	sheet, err := file.AddSheet("Items")
	if err != nil {
		return nil, fmt.Errorf("adding worksheet: %w", err)
	}

	headers := []string{
		"ID", "Serial Number", "RFID Tag", "Item Name", "Type", "Warranty",
		"Status", "Cost", "Margin", "Quantity", "Batch", "Created At",
	}
	headerRow := sheet.AddRow()
	for _, header := range headers {
		cell := headerRow.AddCell()
		cell.Value = header
		cell.GetStyle().Font.Bold = true
	}

	for _, item := range items {
		row := sheet.AddRow()
		for _, value := range []string{
			strconv.Itoa(item.ID),
			item.SerialNumber,
			item.RFIDTag,
			item.ItemName,
			item.TypeRef,
			item.Warranty,
			string(item.Status),
			item.Cost.String(),
			item.Margin.String(),
			strconv.Itoa(item.Quantity),
			strconv.Itoa(item.Batch),
			item.CreatedAt.Format("2006-01-02 15:04:05"),
		} {
			row.AddCell().Value = value
		}
	}

	// Column indexes are 1-based in xlsx.
	for i := range headers {
		sheet.SetColWidth(i+1, i+1, 15)
	}

	var buffer bytes.Buffer
	if err := file.Write(&buffer); err != nil {
		return nil, fmt.Errorf("writing workbook: %w", err)
	}

	return buffer.Bytes(), nil
}

// BuildJSON renders the items as a JSON document with export metadata.
func (s *ExportService) BuildJSON(items []domain.Item, search string) ([]byte, error) {
	payload := JSONExport{
		Items: items,
		Metadata: ExportMetadata{
			ExportDate: time.Now(),
			TotalItems: len(items),
			Search:     search,
		},
	}

	data, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("marshaling export: %w", err)
	}
	return data, nil
}
