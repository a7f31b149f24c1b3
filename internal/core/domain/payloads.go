// internal/core/domain/payloads.go
package domain

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

// validate is the shared validator instance for form payloads. Validation
// failures block the request before anything reaches the backend.
var validate = validator.New(validator.WithRequiredStructEnabled())

// ErrEmptySelection rejects a bulk sale submitted with no items picked.
var ErrEmptySelection = errors.New("no items selected")

// Credentials is the login form payload. It lives only for the duration of
// the submit; the gateway never stores it.
type Credentials struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// Validate checks the login form before it is sent upstream.
func (c Credentials) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("invalid credentials payload: %w", err)
	}
	return nil
}

// NewItemType is the create-type form payload.
type NewItemType struct {
	TypeName string          `json:"item_type" validate:"required"`
	Price    decimal.Decimal `json:"price"`
}

// Validate requires a name and a strictly positive price.
func (t NewItemType) Validate() error {
	if err := validate.Struct(t); err != nil {
		return fmt.Errorf("invalid item type payload: %w", err)
	}
	if !t.Price.IsPositive() {
		return errors.New("price must be greater than zero")
	}
	return nil
}

// BulkSale registers every selected item against one invoice in a single
// request. ItemTags carries the RFID tags of the selection.
type BulkSale struct {
	ItemTags   []string `json:"item_tags" validate:"required,min=1,dive,required"`
	Invoice    string   `json:"invoice" validate:"required"`
	OnlineShop string   `json:"ol_shop" validate:"required"`
}

// Validate enforces the sell-flow preconditions: non-empty invoice, shop and
// selection. A failure here means no network call is made.
func (s BulkSale) Validate() error {
	if len(s.ItemTags) == 0 {
		return ErrEmptySelection
	}
	if err := validate.Struct(s); err != nil {
		return fmt.Errorf("invalid bulk sale payload: %w", err)
	}
	return nil
}

// SoldRecordPatch updates exactly one locally edited field of a sold record.
// Nil pointers are omitted from the request body.
type SoldRecordPatch struct {
	ID            int     `json:"id" validate:"required"`
	PaymentStatus *string `json:"payment_status,omitempty"`
	Journaled     *bool   `json:"journaled,omitempty"`
}

// Validate requires an ID and exactly one field to change.
func (p SoldRecordPatch) Validate() error {
	if err := validate.Struct(p); err != nil {
		return fmt.Errorf("invalid sold record patch: %w", err)
	}
	set := 0
	if p.PaymentStatus != nil {
		set++
	}
	if p.Journaled != nil {
		set++
	}
	if set != 1 {
		return errors.New("exactly one field must be patched")
	}
	return nil
}

// InvoiceEdit is the inline invoice edit payload.
type InvoiceEdit struct {
	Invoice    string `json:"invoice"`
	OnlineShop string `json:"ol_shop"`
}

// Validate requires at least one field to be present.
func (e InvoiceEdit) Validate() error {
	if e.Invoice == "" && e.OnlineShop == "" {
		return errors.New("nothing to edit")
	}
	return nil
}
