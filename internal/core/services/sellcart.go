// internal/core/services/sellcart.go
package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sort"
	"sync"
	"time"

	"github.com/awidjaja/stokgate/internal/core/domain"
	"github.com/awidjaja/stokgate/internal/core/ports"
)

// ErrNotAvailable means a serial number no longer resolves to an unsold
// item, typically because it was sold between the lookup and the pick.
var ErrNotAvailable = errors.New("item not available")

// SellCart is the current sell-flow selection, keyed by serial number so
// re-adding the same physical unit can never produce a duplicate entry,
// whatever object the row was rendered from.
type SellCart struct {
	mu    sync.Mutex
	items map[string]domain.AvailableItem
}

// NewSellCart creates an empty cart.
func NewSellCart() *SellCart {
	return &SellCart{items: make(map[string]domain.AvailableItem)}
}

// Add puts an item into the selection. Adding an already selected serial
// number overwrites in place and reports false.
func (c *SellCart) Add(item domain.AvailableItem) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	_, exists := c.items[item.SerialNumber]
	c.items[item.SerialNumber] = item
	return !exists
}

// Remove drops a serial number from the selection.
func (c *SellCart) Remove(serialNumber string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	if _, exists := c.items[serialNumber]; !exists {
		return false
	}
	delete(c.items, serialNumber)
	return true
}

// Items returns the selection sorted by serial number for stable rendering.
func (c *SellCart) Items() []domain.AvailableItem {
	c.mu.Lock()
	defer c.mu.Unlock()

	items := make([]domain.AvailableItem, 0, len(c.items))
	for _, item := range c.items {
		items = append(items, item)
	}
	sort.Slice(items, func(i, j int) bool {
		return items[i].SerialNumber < items[j].SerialNumber
	})
	return items
}

// Tags returns the RFID tags of the selection, the shape the bulk-sell
// endpoint wants.
func (c *SellCart) Tags() []string {
	items := c.Items()
	tags := make([]string, len(items))
	for i, item := range items {
		tags[i] = item.RFIDTag
	}
	return tags
}

// Len returns the selection size.
func (c *SellCart) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.items)
}

// Clear empties the selection.
func (c *SellCart) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.items = make(map[string]domain.AvailableItem)
}

// SellService drives the sell flow: debounced availability search, the
// selection cart, and the final bulk submit.
type SellService struct {
	backend  ports.InventoryAPI
	cache    ports.QueryCache
	cart     *SellCart
	debounce *Debouncer[[]domain.AvailableItem]
	logger   *slog.Logger
}

// NewSellService creates the sell flow service. debounceWindow is the quiet
// period the live search waits after the last keystroke.
func NewSellService(backend ports.InventoryAPI, cache ports.QueryCache,
	debounceWindow time.Duration, logger *slog.Logger) *SellService {
	return &SellService{
		backend:  backend,
		cache:    cache,
		cart:     NewSellCart(),
		debounce: NewDebouncer[[]domain.AvailableItem](debounceWindow),
		logger:   logger.With(slog.String("service", "sell")),
	}
}

// Cart exposes the current selection.
func (s *SellService) Cart() *SellCart { return s.cart }

// Search looks up unsold items matching the serial number fragment. An
// empty term resolves to no results without touching the backend, and
// rapid successive calls coalesce so only the final term is queried.
func (s *SellService) Search(ctx context.Context, term string) ([]domain.AvailableItem, error) {
	if term == "" {
		return []domain.AvailableItem{}, nil
	}

	return s.debounce.Do(ctx, func(ctx context.Context) ([]domain.AvailableItem, error) {
		items, err := s.backend.AvailableItems(ctx, term)
		if err != nil {
			return nil, fmt.Errorf("searching available items: %w", err)
		}
		if items == nil {
			items = []domain.AvailableItem{}
		}
		return items, nil
	})
}

// Available resolves one exact serial number through the availability
// lookup, the step between picking a search result and the cart.
func (s *SellService) Available(ctx context.Context, serialNumber string) (domain.AvailableItem, error) {
	items, err := s.backend.AvailableItems(ctx, serialNumber)
	if err != nil {
		return domain.AvailableItem{}, fmt.Errorf("resolving available item: %w", err)
	}

	for _, item := range items {
		if item.SerialNumber == serialNumber {
			return item, nil
		}
	}
	return domain.AvailableItem{}, ErrNotAvailable
}

// Submit registers the whole selection as sold against one invoice. The
// payload is validated before anything is sent; an empty selection or a
// blank invoice never reaches the backend. On success the cart is cleared
// and every table the sale could have changed is invalidated.
func (s *SellService) Submit(ctx context.Context, invoice, onlineShop string) error {
	sale := domain.BulkSale{
		ItemTags:   s.cart.Tags(),
		Invoice:    invoice,
		OnlineShop: onlineShop,
	}
	if err := sale.Validate(); err != nil {
		return err
	}

	if err := s.backend.SellBulk(ctx, sale); err != nil {
		return fmt.Errorf("submitting bulk sale: %w", err)
	}

	s.logger.InfoContext(ctx, "bulk sale submitted",
		slog.String("invoice", invoice),
		slog.String("online_shop", onlineShop),
		slog.Int("items", len(sale.ItemTags)))

	s.cart.Clear()
	s.invalidateAfterSale(ctx)
	return nil
}

// invalidateAfterSale drops every cached view a completed sale can change.
func (s *SellService) invalidateAfterSale(ctx context.Context) {
	for _, pattern := range []string{"items:*", "sold:*", "invoices:*", "avail:*", "dash:*"} {
		if err := s.cache.DeletePattern(ctx, pattern); err != nil {
			s.logger.WarnContext(ctx, "cache invalidation failed",
				slog.String("pattern", pattern),
				slog.String("error", err.Error()))
		}
	}
}
