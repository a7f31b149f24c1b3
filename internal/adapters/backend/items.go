// internal/adapters/backend/items.go
package backend

import (
	"context"
	"net/http"
	"net/url"
	"strconv"

	"github.com/awidjaja/stokgate/internal/core/domain"
)

// Response envelopes, matching the backend's wire format.
type itemsResponse struct {
	Items     []domain.Item `json:"items"`
	ItemCount int           `json:"item_count"`
}

type typesResponse struct {
	Types []domain.ItemType `json:"types"`
}

type availResponse struct {
	Items []domain.AvailableItem `json:"items"`
}

type soldResponse struct {
	SoldItems      []domain.SoldRecord `json:"sold_items"`
	SoldItemsCount int                 `json:"sold_items_count"`
}

type warrantiesResponse struct {
	Warranties    []domain.Warranty `json:"warranties"`
	WarrantyCount int               `json:"warranty_count"`
}

func pageQuery(req domain.PageRequest) url.Values {
	q := url.Values{}
	q.Set("limit", strconv.Itoa(req.Limit()))
	q.Set("offset", strconv.Itoa(req.Offset()))
	q.Set("search", req.Search)
	return q
}

// ItemTypes lists every registered item type.
func (c *Client) ItemTypes(ctx context.Context) ([]domain.ItemType, error) {
	var resp typesResponse
	if err := c.do(ctx, http.MethodGet, "/api/item/get-types", nil, nil, &resp); err != nil {
		return nil, err
	}
	return resp.Types, nil
}

// RegisterItemType creates a new item type.
func (c *Client) RegisterItemType(ctx context.Context, t domain.NewItemType) error {
	return c.do(ctx, http.MethodPost, "/api/item/register-item-type", nil, t, nil)
}

// Items returns one page of the item table plus the total count.
func (c *Client) Items(ctx context.Context, req domain.PageRequest) ([]domain.Item, int, error) {
	var resp itemsResponse
	if err := c.do(ctx, http.MethodGet, "/api/item/get-items", pageQuery(req), nil, &resp); err != nil {
		return nil, 0, err
	}
	return resp.Items, resp.ItemCount, nil
}

// AvailableItems looks up unsold items by serial number for the sell flow.
func (c *Client) AvailableItems(ctx context.Context, search string) ([]domain.AvailableItem, error) {
	q := url.Values{}
	q.Set("search", search)

	var resp availResponse
	if err := c.do(ctx, http.MethodGet, "/api/item/get-avail-item", q, nil, &resp); err != nil {
		return nil, err
	}
	return resp.Items, nil
}

// DeleteItem removes an item by its RFID tag.
func (c *Client) DeleteItem(ctx context.Context, rfidTag string) error {
	return c.do(ctx, http.MethodDelete, "/api/item/delete/"+url.PathEscape(rfidTag), nil, nil, nil)
}

// SellBulk registers the whole selection as sold against one invoice.
func (c *Client) SellBulk(ctx context.Context, sale domain.BulkSale) error {
	return c.do(ctx, http.MethodPost, "/api/item/item-sold-bulk", nil, sale, nil)
}

// SoldRecords returns one page of sold records plus the total count.
func (c *Client) SoldRecords(ctx context.Context, req domain.PageRequest) ([]domain.SoldRecord, int, error) {
	var resp soldResponse
	if err := c.do(ctx, http.MethodGet, "/api/item/get-sold-items", pageQuery(req), nil, &resp); err != nil {
		return nil, 0, err
	}
	return resp.SoldItems, resp.SoldItemsCount, nil
}

// EditSoldRecord pushes a single changed field of a sold record.
func (c *Client) EditSoldRecord(ctx context.Context, patch domain.SoldRecordPatch) error {
	return c.do(ctx, http.MethodPatch, "/api/item/edit-item-sold", nil, patch, nil)
}

// Warranties returns one page of warranty records plus the total count.
func (c *Client) Warranties(ctx context.Context, req domain.PageRequest) ([]domain.Warranty, int, error) {
	var resp warrantiesResponse
	if err := c.do(ctx, http.MethodGet, "/api/item/get-warranties", pageQuery(req), nil, &resp); err != nil {
		return nil, 0, err
	}
	return resp.Warranties, resp.WarrantyCount, nil
}
