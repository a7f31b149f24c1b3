// internal/core/ports/backend.go
package ports

import (
	"context"

	"github.com/awidjaja/stokgate/internal/core/domain"
)

// AuthAPI is the session surface of the backend. Implementations attach the
// session cookie to every call and transparently recover once from an
// expired access token.
type AuthAPI interface {
	// Login establishes the upstream session. The credential cookies land in
	// the client's jar as a side effect.
	Login(ctx context.Context, creds domain.Credentials) error

	// CheckSession probes the auth-check endpoint. A nil error means the
	// session is valid (2xx); any completed non-2xx response or transport
	// failure is returned as an error.
	CheckSession(ctx context.Context) error

	// Logout ends the current session.
	Logout(ctx context.Context) error

	// LogoutAll revokes every session of the user.
	LogoutAll(ctx context.Context) error
}

// InventoryAPI is the item surface of the backend. Paginated reads return
// one page of records plus the total count.
type InventoryAPI interface {
	ItemTypes(ctx context.Context) ([]domain.ItemType, error)
	RegisterItemType(ctx context.Context, t domain.NewItemType) error

	Items(ctx context.Context, req domain.PageRequest) ([]domain.Item, int, error)
	AvailableItems(ctx context.Context, search string) ([]domain.AvailableItem, error)
	DeleteItem(ctx context.Context, rfidTag string) error

	SellBulk(ctx context.Context, sale domain.BulkSale) error
	SoldRecords(ctx context.Context, req domain.PageRequest) ([]domain.SoldRecord, int, error)
	EditSoldRecord(ctx context.Context, patch domain.SoldRecordPatch) error

	Warranties(ctx context.Context, req domain.PageRequest) ([]domain.Warranty, int, error)

	Invoices(ctx context.Context, req domain.PageRequest) ([]domain.Invoice, int, error)
	EditInvoice(ctx context.Context, id int, edit domain.InvoiceEdit) error
	DeleteInvoice(ctx context.Context, id int) error

	StatusCounts(ctx context.Context) (domain.StatusCount, error)
	TypeCounts(ctx context.Context) (map[string]int, error)
}

// BackendAPI is the full client surface, as one dependency for wiring.
type BackendAPI interface {
	AuthAPI
	InventoryAPI
}
