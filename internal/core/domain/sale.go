// internal/core/domain/sale.go
package domain

import "time"

// SoldRecord is one row of the sold-items table. PaymentStatus and Journaled
// are the only fields the operator edits after the fact, one at a time.
type SoldRecord struct {
	ID            int       `json:"id"`
	ItemSN        string    `json:"item_sn"`
	ItemTag       string    `json:"item_tag"`
	DatetimeSold  time.Time `json:"datetime_sold"`
	Invoice       string    `json:"invoice"`
	OnlineShop    string    `json:"ol_shop"`
	PaymentStatus string    `json:"payment_status"`
	Journaled     bool      `json:"journaled"`
}

// Invoice groups sold records under one order reference.
type Invoice struct {
	ID         int    `json:"id"`
	InvoiceStr string `json:"invoice_str"`
	Status     string `json:"status"`
	OnlineShop string `json:"online_shop"`
}
