package handlers_test

import (
	"context"
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

func newInvoicesHandler(t *testing.T, ctrl *gomock.Controller) (*handlers.InvoicesHandler, *mocks.MockInventoryAPI) {
	t.Helper()

	backend := mocks.NewMockInventoryAPI(ctrl)
	cache := helpers.NewTestCache(t, helpers.SetupTestRedis(t).Client)
	logger := helpers.TestLogger()

	invoices := services.NewTableQuery("invoices", func(ctx context.Context, req domain.PageRequest) ([]domain.Invoice, int, error) {
		return backend.Invoices(ctx, req)
	}, cache, time.Minute, logger)

	renderer, err := handlers.NewRenderer(logger)
	require.NoError(t, err)

	return handlers.NewInvoicesHandler(invoices, backend, renderer, domain.DefaultPageSize, logger), backend
}

func TestInvoicesHandler_Page(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h, backend := newInvoicesHandler(t, ctrl)
	backend.EXPECT().
		Invoices(gomock.Any(), domain.PageRequest{Page: 1, Size: 10}).
		Return([]domain.Invoice{
			{ID: 1, InvoiceStr: "INV-001", Status: "paid", OnlineShop: "tokopedia"},
			{ID: 2, InvoiceStr: "INV-002", Status: "unpaid", OnlineShop: "shopee"},
		}, 2, nil)

	w := httptest.NewRecorder()
	h.Page(w, httptest.NewRequest("GET", "/invoices", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "INV-001")
	assert.Contains(t, w.Body.String(), "INV-002")
}

func TestInvoicesHandler_Edit(t *testing.T) {
	tests := []struct {
		name       string
		form       url.Values
		expectCall bool
	}{
		{
			name:       "edit_both_fields",
			form:       url.Values{"id": {"5"}, "invoice": {"INV-005b"}, "ol_shop": {"shopee"}},
			expectCall: true,
		},
		{
			name: "non_numeric_id_rejected",
			form: url.Values{"id": {"five"}, "invoice": {"INV-005b"}},
		},
		{
			name: "empty_edit_rejected",
			form: url.Values{"id": {"5"}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			h, backend := newInvoicesHandler(t, ctrl)
			if tt.expectCall {
				backend.EXPECT().
					EditInvoice(gomock.Any(), 5, domain.InvoiceEdit{
						Invoice:    tt.form.Get("invoice"),
						OnlineShop: tt.form.Get("ol_shop"),
					}).
					Return(nil)
			}

			w := httptest.NewRecorder()
			h.Edit(w, postForm("/invoices/edit", tt.form))

			assert.Equal(t, http.StatusSeeOther, w.Code)
			assert.Equal(t, "/invoices", w.Header().Get("Location"))
		})
	}
}

func TestInvoicesHandler_Delete(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h, backend := newInvoicesHandler(t, ctrl)
	backend.EXPECT().DeleteInvoice(gomock.Any(), 9).Return(nil)

	w := httptest.NewRecorder()
	h.Delete(w, postForm("/invoices/delete", url.Values{"id": {"9"}}))

	assert.Equal(t, http.StatusSeeOther, w.Code)
	assert.Equal(t, "/invoices", w.Header().Get("Location"))
}

func TestInvoicesHandler_DeleteFailureFlashesError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h, backend := newInvoicesHandler(t, ctrl)
	backend.EXPECT().DeleteInvoice(gomock.Any(), 9).Return(assert.AnError)

	w := httptest.NewRecorder()
	h.Delete(w, postForm("/invoices/delete", url.Values{"id": {"9"}}))

	// Still a redirect; the failure travels as a flash message.
	assert.Equal(t, http.StatusSeeOther, w.Code)

	var flashed bool
	for _, cookie := range w.Result().Cookies() {
		if cookie.Name == "stokgate_flash" && cookie.Value != "" {
			flashed = true
		}
	}
	assert.True(t, flashed)
}
