package domain_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/awidjaja/stokgate/internal/core/domain"
)

func TestCredentials_Validate(t *testing.T) {
	valid := domain.Credentials{Email: "ops@example.com", Password: "hunter2"}
	require.NoError(t, valid.Validate())

	assert.Error(t, domain.Credentials{Email: "", Password: "x"}.Validate())
	assert.Error(t, domain.Credentials{Email: "ops@example.com"}.Validate())
	assert.Error(t, domain.Credentials{Email: "not-an-email", Password: "x"}.Validate())
}

func TestNewItemType_Validate(t *testing.T) {
	valid := domain.NewItemType{TypeName: "hAP ax2", Price: decimal.NewFromInt(950000)}
	require.NoError(t, valid.Validate())

	assert.Error(t, domain.NewItemType{Price: decimal.NewFromInt(100)}.Validate())
	assert.Error(t, domain.NewItemType{TypeName: "hAP ax2"}.Validate())
	assert.Error(t, domain.NewItemType{TypeName: "hAP ax2", Price: decimal.NewFromInt(-5)}.Validate())
}

func TestBulkSale_Validate(t *testing.T) {
	valid := domain.BulkSale{
		ItemTags:   []string{"RFID123", "RFID124"},
		Invoice:    "INV-2026-001",
		OnlineShop: "tokopedia",
	}
	require.NoError(t, valid.Validate())

	empty := domain.BulkSale{Invoice: "INV-1", OnlineShop: "shop"}
	assert.ErrorIs(t, empty.Validate(), domain.ErrEmptySelection)

	noInvoice := domain.BulkSale{ItemTags: []string{"RFID123"}, OnlineShop: "shop"}
	assert.Error(t, noInvoice.Validate())

	noShop := domain.BulkSale{ItemTags: []string{"RFID123"}, Invoice: "INV-1"}
	assert.Error(t, noShop.Validate())
}

func TestSoldRecordPatch_Validate(t *testing.T) {
	status := "paid"
	journaled := true

	require.NoError(t, domain.SoldRecordPatch{ID: 7, PaymentStatus: &status}.Validate())
	require.NoError(t, domain.SoldRecordPatch{ID: 7, Journaled: &journaled}.Validate())

	assert.Error(t, domain.SoldRecordPatch{ID: 7}.Validate())
	assert.Error(t, domain.SoldRecordPatch{ID: 7, PaymentStatus: &status, Journaled: &journaled}.Validate())
	assert.Error(t, domain.SoldRecordPatch{PaymentStatus: &status}.Validate())
}
