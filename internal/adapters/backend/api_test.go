package backend_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/awidjaja/stokgate/internal/adapters/backend"
	"github.com/awidjaja/stokgate/internal/core/domain"
	"github.com/awidjaja/stokgate/test/helpers"
)

func loggedInClient(t *testing.T, fb *helpers.FakeBackend) *backend.Client {
	t.Helper()
	client, err := backend.NewClient(backend.Config{
		BaseURL: fb.URL(),
		Timeout: 5 * time.Second,
	}, helpers.TestLogger())
	require.NoError(t, err)
	require.NoError(t, client.Login(context.Background(), domain.Credentials{
		Email:    fb.Email,
		Password: fb.Password,
	}))
	return client
}

func TestClient_ItemsPagination(t *testing.T) {
	fb := helpers.NewFakeBackend(t)
	fb.Items = helpers.CreateTestItems(25)
	client := loggedInClient(t, fb)
	ctx := context.Background()

	t.Run("first_page", func(t *testing.T) {
		items, total, err := client.Items(ctx, domain.PageRequest{Page: 1, Size: 10})
		require.NoError(t, err)
		assert.Equal(t, 25, total)
		require.Len(t, items, 10)
		assert.Equal(t, "SN-0001", items[0].SerialNumber)
	})

	t.Run("last_page_is_short", func(t *testing.T) {
		items, total, err := client.Items(ctx, domain.PageRequest{Page: 3, Size: 10})
		require.NoError(t, err)
		assert.Equal(t, 25, total)
		require.Len(t, items, 5)
		assert.Equal(t, "SN-0021", items[0].SerialNumber)
	})

	t.Run("search_narrows_results", func(t *testing.T) {
		items, total, err := client.Items(ctx, domain.PageRequest{Page: 1, Size: 10, Search: "SN-0004"})
		require.NoError(t, err)
		assert.Equal(t, 1, total)
		require.Len(t, items, 1)
	})
}

func TestClient_SellBulkMarksItemsSold(t *testing.T) {
	fb := helpers.NewFakeBackend(t)
	fb.Items = helpers.CreateTestItems(3)
	client := loggedInClient(t, fb)
	ctx := context.Background()

	err := client.SellBulk(ctx, domain.BulkSale{
		ItemTags:   []string{"RFID-0001", "RFID-0003"},
		Invoice:    "INV-900",
		OnlineShop: "shopee",
	})
	require.NoError(t, err)

	avail, err := client.AvailableItems(ctx, "")
	require.NoError(t, err)
	require.Len(t, avail, 1)
	assert.Equal(t, "SN-0002", avail[0].SerialNumber)

	sold, total, err := client.SoldRecords(ctx, domain.PageRequest{Page: 1, Size: 10})
	require.NoError(t, err)
	assert.Equal(t, 2, total)
	require.Len(t, sold, 2)
	assert.Equal(t, "INV-900", sold[0].Invoice)

	invoices, count, err := client.Invoices(ctx, domain.PageRequest{Page: 1, Size: 10})
	require.NoError(t, err)
	assert.Equal(t, 1, count)
	assert.Equal(t, "INV-900", invoices[0].InvoiceStr)
}

func TestClient_EditSoldRecordSingleField(t *testing.T) {
	fb := helpers.NewFakeBackend(t)
	fb.Sold = helpers.CreateTestSoldRecords(2)
	client := loggedInClient(t, fb)
	ctx := context.Background()

	paid := "unpaid"
	err := client.EditSoldRecord(ctx, domain.SoldRecordPatch{ID: 1, PaymentStatus: &paid})
	require.NoError(t, err)

	sold, _, err := client.SoldRecords(ctx, domain.PageRequest{Page: 1, Size: 10})
	require.NoError(t, err)
	assert.Equal(t, "unpaid", sold[0].PaymentStatus)
	assert.Equal(t, "paid", sold[1].PaymentStatus, "only the patched record changes")
}

func TestClient_RegisterAndListTypes(t *testing.T) {
	fb := helpers.NewFakeBackend(t)
	client := loggedInClient(t, fb)
	ctx := context.Background()

	err := client.RegisterItemType(ctx, domain.NewItemType{
		TypeName: "RB5009",
		Price:    decimal.NewFromInt(3200000),
	})
	require.NoError(t, err)

	types, err := client.ItemTypes(ctx)
	require.NoError(t, err)
	require.Len(t, types, 1)
	assert.Equal(t, "RB5009", types[0].TypeName)
	assert.True(t, types[0].Price.Equal(decimal.NewFromInt(3200000)))
}

func TestClient_DeleteItemByTag(t *testing.T) {
	fb := helpers.NewFakeBackend(t)
	fb.Items = helpers.CreateTestItems(2)
	client := loggedInClient(t, fb)
	ctx := context.Background()

	require.NoError(t, client.DeleteItem(ctx, "RFID-0001"))

	_, total, err := client.Items(ctx, domain.PageRequest{Page: 1, Size: 10})
	require.NoError(t, err)
	assert.Equal(t, 1, total)

	err = client.DeleteItem(ctx, "RFID-0001")
	var statusErr *backend.StatusError
	require.ErrorAs(t, err, &statusErr)
	assert.Equal(t, 404, statusErr.Code)
}

func TestClient_ExpiredSessionRecoversTransparently(t *testing.T) {
	fb := helpers.NewFakeBackend(t)
	fb.Items = helpers.CreateTestItems(1)
	client := loggedInClient(t, fb)
	ctx := context.Background()

	fb.ExpireSessions()

	// The caller never sees the expiry; the client refreshes and replays.
	_, total, err := client.Items(ctx, domain.PageRequest{Page: 1, Size: 10})
	require.NoError(t, err)
	assert.Equal(t, 1, total)
	assert.Equal(t, 1, fb.Requests("/api/user/refresh"))
	assert.Equal(t, 2, fb.Requests("/api/item/get-items"))
}

func TestClient_DashboardCounts(t *testing.T) {
	fb := helpers.NewFakeBackend(t)
	fb.Items = helpers.CreateTestItems(6)
	fb.Items[0].Status = domain.StatusSoldPending
	fb.Items[1].Status = domain.StatusSoldShipped
	client := loggedInClient(t, fb)
	ctx := context.Background()

	counts, err := client.StatusCounts(ctx)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusCount{NotSold: 4, SoldPending: 1, SoldShipped: 1}, counts)

	byType, err := client.TypeCounts(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, byType["hAP ax2"])
}
