package handlers_test

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/awidjaja/stokgate/internal/core/domain"
	"github.com/awidjaja/stokgate/internal/handlers"
	"github.com/awidjaja/stokgate/test/helpers"
	"github.com/awidjaja/stokgate/test/mocks"
)

func newTypesHandler(t *testing.T, ctrl *gomock.Controller) (*handlers.TypesHandler, *mocks.MockInventoryAPI) {
	t.Helper()

	backend := mocks.NewMockInventoryAPI(ctrl)
	cache := helpers.NewTestCache(t, helpers.SetupTestRedis(t).Client)
	logger := helpers.TestLogger()

	renderer, err := handlers.NewRenderer(logger)
	require.NoError(t, err)

	return handlers.NewTypesHandler(backend, cache, time.Minute, renderer, logger), backend
}

func TestTypesHandler_PageListsTypes(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h, backend := newTypesHandler(t, ctrl)
	backend.EXPECT().ItemTypes(gomock.Any()).Return([]domain.ItemType{
		{ID: 1, TypeName: "hAP ax2", Price: decimal.NewFromInt(750000)},
		{ID: 2, TypeName: "hEX S", Price: decimal.NewFromInt(620000)},
	}, nil)

	w := httptest.NewRecorder()
	h.Page(w, httptest.NewRequest("GET", "/type", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "hAP ax2")
	assert.Contains(t, w.Body.String(), "hEX S")
}

func TestTypesHandler_PageMemoizesListing(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h, backend := newTypesHandler(t, ctrl)
	backend.EXPECT().ItemTypes(gomock.Any()).Return([]domain.ItemType{
		{ID: 1, TypeName: "hAP ax2", Price: decimal.NewFromInt(750000)},
	}, nil).Times(1)

	for i := 0; i < 3; i++ {
		w := httptest.NewRecorder()
		h.Page(w, httptest.NewRequest("GET", "/type", nil))
		assert.Equal(t, http.StatusOK, w.Code)
	}
}

func TestTypesHandler_Register(t *testing.T) {
	tests := []struct {
		name       string
		form       url.Values
		expectCall bool
	}{
		{
			name:       "valid_type_registered",
			form:       url.Values{"item_type": {"cAP ac"}, "price": {"540000.50"}},
			expectCall: true,
		},
		{
			name: "zero_price_rejected_locally",
			form: url.Values{"item_type": {"cAP ac"}, "price": {"0"}},
		},
		{
			name: "missing_name_rejected_locally",
			form: url.Values{"price": {"540000"}},
		},
		{
			name: "unparseable_price_rejected_locally",
			form: url.Values{"item_type": {"cAP ac"}, "price": {"abc"}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			h, backend := newTypesHandler(t, ctrl)
			if tt.expectCall {
				backend.EXPECT().
					RegisterItemType(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ any, newType domain.NewItemType) error {
						assert.Equal(t, tt.form.Get("item_type"), newType.TypeName)
						assert.True(t, newType.Price.IsPositive())
						return nil
					})
			}

			w := httptest.NewRecorder()
			h.Register(w, postForm("/type", tt.form))

			assert.Equal(t, http.StatusSeeOther, w.Code)
			assert.Equal(t, "/type", w.Header().Get("Location"))
		})
	}
}
