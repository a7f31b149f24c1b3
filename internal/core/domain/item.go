// internal/core/domain/item.go
package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// ItemStatus mirrors the status values the backend reports for an item.
type ItemStatus string

// Status constants
const (
	StatusNotSold     ItemStatus = "not sold"
	StatusSoldPending ItemStatus = "sold pending"
	StatusSoldShipped ItemStatus = "sold shipped"
)

// Item is one inventory row as the backend serves it. The gateway never
// mutates items beyond delete and bulk-sell; everything else is display.
type Item struct {
	ID           int             `json:"id"`
	SerialNumber string          `json:"serial_number"`
	RFIDTag      string          `json:"rfid_tag"`
	ItemName     string          `json:"item_name"`
	Warranty     string          `json:"warranty"`
	Sold         bool            `json:"sold"`
	Cost         decimal.Decimal `json:"modal"`
	Margin       decimal.Decimal `json:"keuntungan"`
	Quantity     int             `json:"quantity"`
	Batch        int             `json:"batch"`
	Status       ItemStatus      `json:"status"`
	TypeRef      string          `json:"type_ref"`
	CreatedAt    time.Time       `json:"createdat"`
}

// ItemType is a registered item type with its list price.
type ItemType struct {
	ID       int             `json:"id"`
	TypeName string          `json:"item_type"`
	Price    decimal.Decimal `json:"price"`
}

// AvailableItem is the trimmed item shape the availability lookup returns
// for the sell flow. SerialNumber is the identity the sell cart keys on.
type AvailableItem struct {
	ID           int    `json:"id"`
	SerialNumber string `json:"serial_number"`
	RFIDTag      string `json:"rfid_tag"`
	TypeRef      string `json:"type_ref"`
}

// Warranty is a read-only warranty record.
type Warranty struct {
	ItemSN       string    `json:"item_sn"`
	PurchaseDate time.Time `json:"purchase_date"`
	Expiration   time.Time `json:"expiration"`
	CustName     string    `json:"cust_name"`
	CustEmail    string    `json:"cust_email"`
	CustPhone    string    `json:"cust_phone"`
}

// StatusCount aggregates items by sale status for the dashboard.
type StatusCount struct {
	NotSold     int `json:"not_sold"`
	SoldPending int `json:"sold_pending"`
	SoldShipped int `json:"sold_shipped"`
}
