package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/awidjaja/stokgate/internal/core/domain"
	"github.com/awidjaja/stokgate/internal/core/services"
	"github.com/awidjaja/stokgate/test/helpers"
	"github.com/awidjaja/stokgate/test/mocks"
)

func availItem(sn, tag string) domain.AvailableItem {
	return domain.AvailableItem{SerialNumber: sn, RFIDTag: tag, TypeRef: "hAP ax2"}
}

func TestSellCart_AddKeysBySerialNumber(t *testing.T) {
	cart := services.NewSellCart()

	assert.True(t, cart.Add(availItem("SN-1", "RFID-1")))
	assert.True(t, cart.Add(availItem("SN-2", "RFID-2")))

	// The same physical unit re-added from a fresh search result is not a
	// second entry, even though it is a different value.
	assert.False(t, cart.Add(availItem("SN-1", "RFID-1")))
	assert.Equal(t, 2, cart.Len())

	tags := cart.Tags()
	assert.Equal(t, []string{"RFID-1", "RFID-2"}, tags)
}

func TestSellCart_RemoveAndClear(t *testing.T) {
	cart := services.NewSellCart()
	cart.Add(availItem("SN-1", "RFID-1"))
	cart.Add(availItem("SN-2", "RFID-2"))

	assert.True(t, cart.Remove("SN-1"))
	assert.False(t, cart.Remove("SN-1"), "double remove is a no-op")
	assert.Equal(t, 1, cart.Len())

	cart.Clear()
	assert.Equal(t, 0, cart.Len())
	assert.Empty(t, cart.Items())
}

func TestSellCart_ItemsSortedBySerial(t *testing.T) {
	cart := services.NewSellCart()
	cart.Add(availItem("SN-3", "RFID-3"))
	cart.Add(availItem("SN-1", "RFID-1"))
	cart.Add(availItem("SN-2", "RFID-2"))

	items := cart.Items()
	require.Len(t, items, 3)
	assert.Equal(t, "SN-1", items[0].SerialNumber)
	assert.Equal(t, "SN-2", items[1].SerialNumber)
	assert.Equal(t, "SN-3", items[2].SerialNumber)
}

func TestSellService_SearchEmptyTermSkipsBackend(t *testing.T) {
	ctrl := gomock.NewController(t)
	backend := mocks.NewMockInventoryAPI(ctrl)
	// No expectations: any backend call fails the test.

	svc := services.NewSellService(backend, newTestCache(t), time.Millisecond, helpers.TestLogger())

	items, err := svc.Search(context.Background(), "")
	require.NoError(t, err)
	assert.Empty(t, items)
}

func TestSellService_SearchDebouncesKeystrokes(t *testing.T) {
	ctrl := gomock.NewController(t)
	backend := mocks.NewMockInventoryAPI(ctrl)
	backend.EXPECT().
		AvailableItems(gomock.Any(), "SN-12").
		Return([]domain.AvailableItem{availItem("SN-12", "RFID-12")}, nil).
		Times(1)

	svc := services.NewSellService(backend, newTestCache(t), 30*time.Millisecond, helpers.TestLogger())
	ctx := context.Background()

	errCh := make(chan error, 1)
	go func() {
		_, err := svc.Search(ctx, "SN-1")
		errCh <- err
	}()

	time.Sleep(10 * time.Millisecond)
	items, err := svc.Search(ctx, "SN-12")
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "SN-12", items[0].SerialNumber)

	assert.ErrorIs(t, <-errCh, services.ErrSuperseded)
}

func TestSellService_SubmitValidatesBeforeSending(t *testing.T) {
	tests := []struct {
		name    string
		setup   func(*services.SellService)
		invoice string
		shop    string
		wantErr error
	}{
		{
			name:    "empty_selection",
			setup:   func(s *services.SellService) {},
			invoice: "INV-1",
			shop:    "tokopedia",
			wantErr: domain.ErrEmptySelection,
		},
		{
			name: "blank_invoice",
			setup: func(s *services.SellService) {
				s.Cart().Add(availItem("SN-1", "RFID-1"))
			},
			invoice: "",
			shop:    "tokopedia",
		},
		{
			name: "blank_shop",
			setup: func(s *services.SellService) {
				s.Cart().Add(availItem("SN-1", "RFID-1"))
			},
			invoice: "INV-1",
			shop:    "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			backend := mocks.NewMockInventoryAPI(ctrl)
			// No SellBulk expectation: validation failures must not reach
			// the backend.

			svc := services.NewSellService(backend, newTestCache(t), time.Millisecond, helpers.TestLogger())
			tt.setup(svc)

			err := svc.Submit(context.Background(), tt.invoice, tt.shop)
			require.Error(t, err)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			}
		})
	}
}

func TestSellService_SubmitSellsClearsAndInvalidates(t *testing.T) {
	ctrl := gomock.NewController(t)
	backend := mocks.NewMockInventoryAPI(ctrl)
	backend.EXPECT().
		SellBulk(gomock.Any(), domain.BulkSale{
			ItemTags:   []string{"RFID-1", "RFID-2"},
			Invoice:    "INV-1",
			OnlineShop: "shopee",
		}).
		Return(nil)

	cache := newTestCache(t)
	ctx := context.Background()

	// Populate caches the sale must invalidate, and one it must keep.
	for _, key := range []string{"items:0:", "sold:0:", "invoices:0:", "avail:SN", "dash:status"} {
		require.NoError(t, cache.Set(ctx, key, "cached"))
	}
	require.NoError(t, cache.Set(ctx, "types", "cached"))

	svc := services.NewSellService(backend, cache, time.Millisecond, helpers.TestLogger())
	svc.Cart().Add(availItem("SN-1", "RFID-1"))
	svc.Cart().Add(availItem("SN-2", "RFID-2"))

	require.NoError(t, svc.Submit(ctx, "INV-1", "shopee"))
	assert.Equal(t, 0, svc.Cart().Len(), "selection resets after a successful sale")

	var out string
	for _, key := range []string{"items:0:", "sold:0:", "invoices:0:", "avail:SN", "dash:status"} {
		assert.Error(t, cache.Get(ctx, key, &out), "key %s should be invalidated", key)
	}
	assert.NoError(t, cache.Get(ctx, "types", &out), "type cache is unaffected by sales")
}

func TestSellService_SubmitBackendFailureKeepsCart(t *testing.T) {
	ctrl := gomock.NewController(t)
	backend := mocks.NewMockInventoryAPI(ctrl)
	backend.EXPECT().
		SellBulk(gomock.Any(), gomock.Any()).
		Return(assert.AnError)

	svc := services.NewSellService(backend, newTestCache(t), time.Millisecond, helpers.TestLogger())
	svc.Cart().Add(availItem("SN-1", "RFID-1"))

	err := svc.Submit(context.Background(), "INV-1", "tokopedia")
	require.Error(t, err)
	assert.Equal(t, 1, svc.Cart().Len(), "a failed submit keeps the selection for retry")
}

func BenchmarkSellCart_AddRemove(b *testing.B) {
	cart := services.NewSellCart()
	item := availItem("SN-1", "RFID-1")

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		cart.Add(item)
		cart.Remove("SN-1")
	}
}
