// internal/adapters/backend/invoices.go
package backend

import (
	"context"
	"net/http"
	"strconv"

	"github.com/awidjaja/stokgate/internal/core/domain"
)

type invoicesResponse struct {
	Invoices []domain.Invoice `json:"invoices"`
	Count    int              `json:"count"`
}

type typeCountResponse struct {
	Counts map[string]int `json:"type_counts"`
}

// Invoices returns one page of invoices plus the total count.
func (c *Client) Invoices(ctx context.Context, req domain.PageRequest) ([]domain.Invoice, int, error) {
	var resp invoicesResponse
	if err := c.do(ctx, http.MethodGet, "/api/item/get-all-invoices", pageQuery(req), nil, &resp); err != nil {
		return nil, 0, err
	}
	return resp.Invoices, resp.Count, nil
}

// EditInvoice updates the invoice string or shop of an invoice.
func (c *Client) EditInvoice(ctx context.Context, id int, edit domain.InvoiceEdit) error {
	return c.do(ctx, http.MethodPatch, "/api/item/edit-invoice/"+strconv.Itoa(id), nil, edit, nil)
}

// DeleteInvoice removes an invoice and resets its items to unsold.
func (c *Client) DeleteInvoice(ctx context.Context, id int) error {
	return c.do(ctx, http.MethodDelete, "/api/item/delete-invoice/"+strconv.Itoa(id), nil, nil, nil)
}

// StatusCounts returns item totals grouped by sale status.
func (c *Client) StatusCounts(ctx context.Context) (domain.StatusCount, error) {
	var counts domain.StatusCount
	if err := c.do(ctx, http.MethodGet, "/api/item/get-status-count", nil, nil, &counts); err != nil {
		return domain.StatusCount{}, err
	}
	return counts, nil
}

// TypeCounts returns item totals grouped by type name.
func (c *Client) TypeCounts(ctx context.Context) (map[string]int, error) {
	var resp typeCountResponse
	if err := c.do(ctx, http.MethodGet, "/api/item/get-type-count", nil, nil, &resp); err != nil {
		return nil, err
	}
	return resp.Counts, nil
}
