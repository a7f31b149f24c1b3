package handlers_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/awidjaja/stokgate/internal/core/domain"
	"github.com/awidjaja/stokgate/internal/core/services"
	"github.com/awidjaja/stokgate/internal/handlers"
	"github.com/awidjaja/stokgate/test/helpers"
	"github.com/awidjaja/stokgate/test/mocks"
)

type sellFixture struct {
	handler *handlers.SellHandler
	service *services.SellService
	backend *mocks.MockInventoryAPI
}

func newSellFixture(t *testing.T, ctrl *gomock.Controller) *sellFixture {
	t.Helper()

	backend := mocks.NewMockInventoryAPI(ctrl)
	cache := helpers.NewTestCache(t, helpers.SetupTestRedis(t).Client)
	logger := helpers.TestLogger()

	service := services.NewSellService(backend, cache, time.Millisecond, logger)

	renderer, err := handlers.NewRenderer(logger)
	require.NoError(t, err)

	return &sellFixture{
		handler: handlers.NewSellHandler(service, renderer, logger),
		service: service,
		backend: backend,
	}
}

func TestSellHandler_PageShowsCart(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	fx := newSellFixture(t, ctrl)
	fx.service.Cart().Add(domain.AvailableItem{SerialNumber: "SN-77", RFIDTag: "RFID-77", TypeRef: "hAP ax2"})

	w := httptest.NewRecorder()
	fx.handler.Page(w, httptest.NewRequest("GET", "/sell", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "SN-77")
	assert.Contains(t, w.Body.String(), "Selection (1)")
}

func TestSellHandler_SearchReturnsMatches(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	fx := newSellFixture(t, ctrl)
	fx.backend.EXPECT().
		AvailableItems(gomock.Any(), "SN-1").
		Return([]domain.AvailableItem{{SerialNumber: "SN-12", RFIDTag: "RFID-12", TypeRef: "hEX S"}}, nil)

	w := httptest.NewRecorder()
	fx.handler.Search(w, httptest.NewRequest("GET", "/sell/search?q=SN-1", nil))

	assert.Equal(t, http.StatusOK, w.Code)

	var items []domain.AvailableItem
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &items))
	require.Len(t, items, 1)
	assert.Equal(t, "SN-12", items[0].SerialNumber)
}

func TestSellHandler_SearchEmptyTermSkipsBackend(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	// No expectation on the backend: a blank term must not produce a call.
	fx := newSellFixture(t, ctrl)

	w := httptest.NewRecorder()
	fx.handler.Search(w, httptest.NewRequest("GET", "/sell/search?q=", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, "[]", w.Body.String())
}

func TestSellHandler_AddToCart(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	fx := newSellFixture(t, ctrl)
	fx.backend.EXPECT().
		AvailableItems(gomock.Any(), "SN-12").
		Return([]domain.AvailableItem{{SerialNumber: "SN-12", RFIDTag: "RFID-12", TypeRef: "hEX S"}}, nil)

	w := httptest.NewRecorder()
	fx.handler.AddToCart(w, postForm("/sell/cart/add", url.Values{"sn": {"SN-12"}}))

	assert.Equal(t, http.StatusSeeOther, w.Code)
	assert.Equal(t, 1, fx.service.Cart().Len())
}

func TestSellHandler_AddToCartUnavailableItem(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	fx := newSellFixture(t, ctrl)
	fx.backend.EXPECT().
		AvailableItems(gomock.Any(), "SN-99").
		Return([]domain.AvailableItem{}, nil)

	w := httptest.NewRecorder()
	fx.handler.AddToCart(w, postForm("/sell/cart/add", url.Values{"sn": {"SN-99"}}))

	assert.Equal(t, http.StatusSeeOther, w.Code)
	assert.Equal(t, 0, fx.service.Cart().Len())
}

func TestSellHandler_RemoveFromCart(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	fx := newSellFixture(t, ctrl)
	fx.service.Cart().Add(domain.AvailableItem{SerialNumber: "SN-12", RFIDTag: "RFID-12"})

	w := httptest.NewRecorder()
	fx.handler.RemoveFromCart(w, postForm("/sell/cart/remove", url.Values{"sn": {"SN-12"}}))

	assert.Equal(t, http.StatusSeeOther, w.Code)
	assert.Equal(t, 0, fx.service.Cart().Len())
}

func TestSellHandler_SubmitEmptySelectionMakesNoUpstreamCall(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	// No SellBulk expectation: validation fails before the network.
	fx := newSellFixture(t, ctrl)

	w := httptest.NewRecorder()
	fx.handler.Submit(w, postForm("/sell/submit", url.Values{
		"invoice": {"INV-1"},
		"ol_shop": {"tokopedia"},
	}))

	assert.Equal(t, http.StatusSeeOther, w.Code)
	assert.Equal(t, "/sell", w.Header().Get("Location"))
}

func TestSellHandler_SubmitSellsSelection(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	fx := newSellFixture(t, ctrl)
	fx.service.Cart().Add(domain.AvailableItem{SerialNumber: "SN-12", RFIDTag: "RFID-12"})

	fx.backend.EXPECT().
		SellBulk(gomock.Any(), domain.BulkSale{
			ItemTags:   []string{"RFID-12"},
			Invoice:    "INV-1",
			OnlineShop: "tokopedia",
		}).
		Return(nil)

	w := httptest.NewRecorder()
	fx.handler.Submit(w, postForm("/sell/submit", url.Values{
		"invoice": {"INV-1"},
		"ol_shop": {"tokopedia"},
	}))

	assert.Equal(t, http.StatusSeeOther, w.Code)
	assert.Equal(t, 0, fx.service.Cart().Len())
}
