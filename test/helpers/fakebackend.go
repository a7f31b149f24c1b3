// test/helpers/fakebackend.go
package helpers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"sync"
	"testing"

	"github.com/google/uuid"

	"github.com/awidjaja/stokgate/internal/core/domain"
)

// FakeBackend is an in-memory stand-in for the upstream inventory API. It
// issues cookie sessions, serves paginated reads and applies writes, and
// counts requests per path so tests can assert call patterns.
type FakeBackend struct {
	Server *httptest.Server

	mu       sync.Mutex
	Email    string
	Password string

	Items    []domain.Item
	Types    []domain.ItemType
	Sold     []domain.SoldRecord
	Warranty []domain.Warranty
	Invoices []domain.Invoice

	sessions map[string]bool // token -> still valid
	requests map[string]int
}

// NewFakeBackend starts the fake upstream with the given seed data.
func NewFakeBackend(t *testing.T) *FakeBackend {
	t.Helper()

	fb := &FakeBackend{
		Email:    "ops@example.com",
		Password: "hunter2",
		sessions: make(map[string]bool),
		requests: make(map[string]int),
	}
	fb.Server = httptest.NewServer(fb.routes())
	t.Cleanup(fb.Server.Close)
	return fb
}

// URL returns the fake backend's base URL.
func (fb *FakeBackend) URL() string { return fb.Server.URL }

// Requests returns how many times a path has been hit.
func (fb *FakeBackend) Requests(path string) int {
	fb.mu.Lock()
	defer fb.mu.Unlock()
	return fb.requests[path]
}

// ExpireSessions invalidates every live token so the next authenticated
// request draws a 403 until the client refreshes.
func (fb *FakeBackend) ExpireSessions() {
	fb.mu.Lock()
	defer fb.mu.Unlock()
	for token := range fb.sessions {
		fb.sessions[token] = false
	}
}

func (fb *FakeBackend) routes() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("POST /api/user/login", fb.handleLogin)
	mux.HandleFunc("GET /api/user/auth-client", fb.authed(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))
	mux.HandleFunc("POST /api/user/refresh", fb.handleRefresh)
	mux.HandleFunc("POST /api/user/logout", fb.handleLogout)
	mux.HandleFunc("POST /api/user/logout-all", fb.handleLogout)

	mux.HandleFunc("GET /api/item/get-items", fb.authed(fb.handleItems))
	mux.HandleFunc("GET /api/item/get-types", fb.authed(fb.handleTypes))
	mux.HandleFunc("POST /api/item/register-item-type", fb.authed(fb.handleRegisterType))
	mux.HandleFunc("GET /api/item/get-avail-item", fb.authed(fb.handleAvail))
	mux.HandleFunc("DELETE /api/item/delete/{tag}", fb.authed(fb.handleDeleteItem))
	mux.HandleFunc("POST /api/item/item-sold-bulk", fb.authed(fb.handleSellBulk))
	mux.HandleFunc("GET /api/item/get-sold-items", fb.authed(fb.handleSold))
	mux.HandleFunc("PATCH /api/item/edit-item-sold", fb.authed(fb.handleEditSold))
	mux.HandleFunc("GET /api/item/get-warranties", fb.authed(fb.handleWarranties))
	mux.HandleFunc("GET /api/item/get-all-invoices", fb.authed(fb.handleInvoices))
	mux.HandleFunc("PATCH /api/item/edit-invoice/{id}", fb.authed(fb.handleEditInvoice))
	mux.HandleFunc("DELETE /api/item/delete-invoice/{id}", fb.authed(fb.handleDeleteInvoice))
	mux.HandleFunc("GET /api/item/get-status-count", fb.authed(fb.handleStatusCount))
	mux.HandleFunc("GET /api/item/get-type-count", fb.authed(fb.handleTypeCount))

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fb.mu.Lock()
		fb.requests[r.URL.Path]++
		fb.mu.Unlock()
		mux.ServeHTTP(w, r)
	})
}

func (fb *FakeBackend) authed(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		cookie, err := r.Cookie("access_token")
		if err != nil {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}

		fb.mu.Lock()
		valid, known := fb.sessions[cookie.Value]
		fb.mu.Unlock()

		if !known {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		if !valid {
			// Known but expired token, the refresh-me signal.
			w.WriteHeader(http.StatusForbidden)
			return
		}
		next(w, r)
	}
}

func (fb *FakeBackend) issueToken(w http.ResponseWriter) {
	token := uuid.NewString()
	fb.mu.Lock()
	fb.sessions[token] = true
	fb.mu.Unlock()
	http.SetCookie(w, &http.Cookie{Name: "access_token", Value: token, Path: "/"})
}

func (fb *FakeBackend) handleLogin(w http.ResponseWriter, r *http.Request) {
	var creds domain.Credentials
	if err := json.NewDecoder(r.Body).Decode(&creds); err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}
	if creds.Email != fb.Email || creds.Password != fb.Password {
		w.WriteHeader(http.StatusUnauthorized)
		return
	}
	fb.issueToken(w)
	w.WriteHeader(http.StatusOK)
}

func (fb *FakeBackend) handleRefresh(w http.ResponseWriter, r *http.Request) {
	// A real backend checks the refresh cookie; for tests any prior session
	// is enough to rotate.
	if _, err := r.Cookie("access_token"); err != nil {
		w.WriteHeader(http.StatusUnauthorized)
		return
	}
	fb.issueToken(w)
	w.WriteHeader(http.StatusOK)
}

func (fb *FakeBackend) handleLogout(w http.ResponseWriter, r *http.Request) {
	fb.ExpireSessions()
	w.WriteHeader(http.StatusOK)
}

func page[T any](r *http.Request, all []T, match func(T, string) bool) ([]T, int) {
	search := r.URL.Query().Get("search")
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))
	offset, _ := strconv.Atoi(r.URL.Query().Get("offset"))
	if limit <= 0 {
		limit = domain.DefaultPageSize
	}

	filtered := make([]T, 0, len(all))
	for _, row := range all {
		if search == "" || match(row, strings.ToLower(search)) {
			filtered = append(filtered, row)
		}
	}

	total := len(filtered)
	if offset >= total {
		return []T{}, total
	}
	end := offset + limit
	if end > total {
		end = total
	}
	return filtered[offset:end], total
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(v)
}

func (fb *FakeBackend) handleItems(w http.ResponseWriter, r *http.Request) {
	fb.mu.Lock()
	defer fb.mu.Unlock()

	rows, total := page(r, fb.Items, func(it domain.Item, q string) bool {
		return strings.Contains(strings.ToLower(it.ItemName), q) ||
			strings.Contains(strings.ToLower(it.SerialNumber), q)
	})
	writeJSON(w, map[string]any{"items": rows, "item_count": total})
}

func (fb *FakeBackend) handleTypes(w http.ResponseWriter, r *http.Request) {
	fb.mu.Lock()
	defer fb.mu.Unlock()
	writeJSON(w, map[string]any{"types": fb.Types})
}

func (fb *FakeBackend) handleRegisterType(w http.ResponseWriter, r *http.Request) {
	var payload domain.NewItemType
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	fb.mu.Lock()
	fb.Types = append(fb.Types, domain.ItemType{
		ID:       len(fb.Types) + 1,
		TypeName: payload.TypeName,
		Price:    payload.Price,
	})
	fb.mu.Unlock()
	w.WriteHeader(http.StatusCreated)
}

func (fb *FakeBackend) handleAvail(w http.ResponseWriter, r *http.Request) {
	search := strings.ToLower(r.URL.Query().Get("search"))

	fb.mu.Lock()
	defer fb.mu.Unlock()

	avail := []domain.AvailableItem{}
	for _, it := range fb.Items {
		if it.Sold {
			continue
		}
		if search != "" && !strings.Contains(strings.ToLower(it.SerialNumber), search) {
			continue
		}
		avail = append(avail, domain.AvailableItem{
			ID:           it.ID,
			SerialNumber: it.SerialNumber,
			RFIDTag:      it.RFIDTag,
			TypeRef:      it.TypeRef,
		})
	}
	writeJSON(w, map[string]any{"items": avail})
}

func (fb *FakeBackend) handleDeleteItem(w http.ResponseWriter, r *http.Request) {
	tag := r.PathValue("tag")

	fb.mu.Lock()
	defer fb.mu.Unlock()

	for i, it := range fb.Items {
		if it.RFIDTag == tag {
			fb.Items = append(fb.Items[:i], fb.Items[i+1:]...)
			w.WriteHeader(http.StatusOK)
			return
		}
	}
	w.WriteHeader(http.StatusNotFound)
}

func (fb *FakeBackend) handleSellBulk(w http.ResponseWriter, r *http.Request) {
	var sale domain.BulkSale
	if err := json.NewDecoder(r.Body).Decode(&sale); err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}
	if len(sale.ItemTags) == 0 || sale.Invoice == "" {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	fb.mu.Lock()
	defer fb.mu.Unlock()

	tags := make(map[string]bool, len(sale.ItemTags))
	for _, tag := range sale.ItemTags {
		tags[tag] = true
	}
	for i := range fb.Items {
		if tags[fb.Items[i].RFIDTag] {
			fb.Items[i].Sold = true
			fb.Items[i].Status = domain.StatusSoldPending
			fb.Sold = append(fb.Sold, domain.SoldRecord{
				ID:         len(fb.Sold) + 1,
				ItemSN:     fb.Items[i].SerialNumber,
				ItemTag:    fb.Items[i].RFIDTag,
				Invoice:    sale.Invoice,
				OnlineShop: sale.OnlineShop,
			})
		}
	}
	fb.Invoices = append(fb.Invoices, domain.Invoice{
		ID:         len(fb.Invoices) + 1,
		InvoiceStr: sale.Invoice,
		Status:     "pending",
		OnlineShop: sale.OnlineShop,
	})
	w.WriteHeader(http.StatusCreated)
}

func (fb *FakeBackend) handleSold(w http.ResponseWriter, r *http.Request) {
	fb.mu.Lock()
	defer fb.mu.Unlock()

	rows, total := page(r, fb.Sold, func(s domain.SoldRecord, q string) bool {
		return strings.Contains(strings.ToLower(s.ItemSN), q) ||
			strings.Contains(strings.ToLower(s.Invoice), q)
	})
	writeJSON(w, map[string]any{"sold_items": rows, "sold_items_count": total})
}

func (fb *FakeBackend) handleEditSold(w http.ResponseWriter, r *http.Request) {
	var patch domain.SoldRecordPatch
	if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	fb.mu.Lock()
	defer fb.mu.Unlock()

	for i := range fb.Sold {
		if fb.Sold[i].ID == patch.ID {
			if patch.PaymentStatus != nil {
				fb.Sold[i].PaymentStatus = *patch.PaymentStatus
			}
			if patch.Journaled != nil {
				fb.Sold[i].Journaled = *patch.Journaled
			}
			w.WriteHeader(http.StatusOK)
			return
		}
	}
	w.WriteHeader(http.StatusNotFound)
}

func (fb *FakeBackend) handleWarranties(w http.ResponseWriter, r *http.Request) {
	fb.mu.Lock()
	defer fb.mu.Unlock()

	rows, total := page(r, fb.Warranty, func(wr domain.Warranty, q string) bool {
		return strings.Contains(strings.ToLower(wr.ItemSN), q) ||
			strings.Contains(strings.ToLower(wr.CustName), q)
	})
	writeJSON(w, map[string]any{"warranties": rows, "warranty_count": total})
}

func (fb *FakeBackend) handleInvoices(w http.ResponseWriter, r *http.Request) {
	fb.mu.Lock()
	defer fb.mu.Unlock()

	rows, total := page(r, fb.Invoices, func(inv domain.Invoice, q string) bool {
		return strings.Contains(strings.ToLower(inv.InvoiceStr), q)
	})
	writeJSON(w, map[string]any{"invoices": rows, "count": total})
}

func (fb *FakeBackend) handleEditInvoice(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(r.PathValue("id"))
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}
	var edit domain.InvoiceEdit
	if err := json.NewDecoder(r.Body).Decode(&edit); err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	fb.mu.Lock()
	defer fb.mu.Unlock()

	for i := range fb.Invoices {
		if fb.Invoices[i].ID == id {
			if edit.Invoice != "" {
				fb.Invoices[i].InvoiceStr = edit.Invoice
			}
			if edit.OnlineShop != "" {
				fb.Invoices[i].OnlineShop = edit.OnlineShop
			}
			w.WriteHeader(http.StatusOK)
			return
		}
	}
	w.WriteHeader(http.StatusNotFound)
}

func (fb *FakeBackend) handleDeleteInvoice(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(r.PathValue("id"))
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	fb.mu.Lock()
	defer fb.mu.Unlock()

	for i, inv := range fb.Invoices {
		if inv.ID == id {
			fb.Invoices = append(fb.Invoices[:i], fb.Invoices[i+1:]...)
			w.WriteHeader(http.StatusOK)
			return
		}
	}
	w.WriteHeader(http.StatusNotFound)
}

func (fb *FakeBackend) handleStatusCount(w http.ResponseWriter, r *http.Request) {
	fb.mu.Lock()
	defer fb.mu.Unlock()

	var counts domain.StatusCount
	for _, it := range fb.Items {
		switch it.Status {
		case domain.StatusSoldPending:
			counts.SoldPending++
		case domain.StatusSoldShipped:
			counts.SoldShipped++
		default:
			counts.NotSold++
		}
	}
	writeJSON(w, counts)
}

func (fb *FakeBackend) handleTypeCount(w http.ResponseWriter, r *http.Request) {
	fb.mu.Lock()
	defer fb.mu.Unlock()

	counts := make(map[string]int)
	for _, it := range fb.Items {
		counts[it.TypeRef]++
	}
	writeJSON(w, map[string]any{"type_counts": counts})
}
